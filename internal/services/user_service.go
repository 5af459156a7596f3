// internal/services/user_service.go
package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/modaluxe/backoffice/internal/models"
	"github.com/modaluxe/backoffice/internal/utils"
)

type UserService struct {
	db *gorm.DB
}

type CreateUserRequest struct {
	Email    string          `json:"email" validate:"required,email"`
	Password string          `json:"password" validate:"required,min=8"`
	FullName *string         `json:"full_name,omitempty" validate:"omitempty,max=255"`
	Role     models.UserRole `json:"role,omitempty" validate:"omitempty,oneof=admin manager user"`
}

type UpdateUserRequest struct {
	ID        uuid.UUID        `json:"id" validate:"required"`
	Email     *string          `json:"email,omitempty" validate:"omitempty,email"`
	Password  *string          `json:"password,omitempty" validate:"omitempty,min=8"`
	FullName  *string          `json:"full_name,omitempty" validate:"omitempty,max=255"`
	AvatarURL *string          `json:"avatar_url,omitempty"`
	Role      *models.UserRole `json:"role,omitempty" validate:"omitempty,oneof=admin manager user"`
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

func (s *UserService) ListUsers(params utils.ListParams) ([]models.User, int64, error) {
	query := s.db.Model(&models.User{})

	if params.Search != "" {
		search := "%" + params.Search + "%"
		query = query.Where("email ILIKE ? OR full_name ILIKE ?", search, search)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count users: %w", err)
	}

	query = utils.ApplySort(query, params, []string{"email", "full_name", "role", "created_at"}, "created_at DESC")
	query = utils.ApplyPagination(query, params)

	var users []models.User
	if err := query.Find(&users).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to fetch users: %w", err)
	}

	return users, total, nil
}

func (s *UserService) GetUser(id uuid.UUID) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return &user, nil
}

func (s *UserService) CreateUser(req *CreateUserRequest) (*models.User, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if taken, err := s.emailTaken(req.Email, uuid.Nil); err != nil {
		return nil, err
	} else if taken {
		return nil, ErrEmailTaken
	}

	role := req.Role
	if role == "" {
		role = models.UserRoleUser
	}

	user := &models.User{
		Email:    req.Email,
		FullName: req.FullName,
		Role:     role,
	}
	if err := user.SetPassword(req.Password); err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	if err := s.db.Create(user).Error; err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}

func (s *UserService) UpdateUser(req *UpdateUserRequest) (*models.User, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	var user models.User
	if err := s.db.First(&user, req.ID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	updates := map[string]interface{}{}

	if req.Email != nil && *req.Email != user.Email {
		if taken, err := s.emailTaken(*req.Email, user.ID); err != nil {
			return nil, err
		} else if taken {
			return nil, ErrEmailTaken
		}
		updates["email"] = *req.Email
	}
	if req.FullName != nil {
		updates["full_name"] = nullableString(*req.FullName)
	}
	if req.AvatarURL != nil {
		updates["avatar_url"] = nullableString(*req.AvatarURL)
	}
	if req.Role != nil {
		updates["role"] = *req.Role
	}
	if req.Password != nil {
		if err := user.SetPassword(*req.Password); err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		updates["password_hash"] = user.PasswordHash
	}

	if len(updates) > 0 {
		if err := s.db.Model(&user).Updates(updates).Error; err != nil {
			return nil, fmt.Errorf("failed to update user: %w", err)
		}
	}

	return &user, nil
}

// DeleteUser removes an account. The acting admin cannot delete themselves,
// which keeps the panel from locking out its last administrator.
func (s *UserService) DeleteUser(id, actorID uuid.UUID) error {
	if id == actorID {
		return ErrSelfDelete
	}

	var user models.User
	if err := s.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("database error: %w", err)
	}

	if err := s.db.Delete(&user).Error; err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}

	return nil
}

func (s *UserService) emailTaken(email string, excludeID uuid.UUID) (bool, error) {
	query := s.db.Model(&models.User{}).Where("email = ?", email)
	if excludeID != uuid.Nil {
		query = query.Where("id != ?", excludeID)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check email uniqueness: %w", err)
	}
	return count > 0, nil
}
