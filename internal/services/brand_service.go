// internal/services/brand_service.go
package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/modaluxe/backoffice/internal/models"
	"github.com/modaluxe/backoffice/internal/utils"
)

type BrandService struct {
	db *gorm.DB
}

type CreateBrandRequest struct {
	Name        string  `json:"name" validate:"required,max=255"`
	Slug        string  `json:"slug" validate:"omitempty,slug"`
	Description *string `json:"description,omitempty"`
	LogoURL     *string `json:"logo_url,omitempty" validate:"omitempty,url"`
	WebsiteURL  *string `json:"website_url,omitempty" validate:"omitempty,url"`
	IsActive    *bool   `json:"is_active,omitempty"`
}

type UpdateBrandRequest struct {
	Name        *string `json:"name,omitempty" validate:"omitempty,max=255"`
	Slug        *string `json:"slug,omitempty" validate:"omitempty,slug"`
	Description *string `json:"description,omitempty"`
	LogoURL     *string `json:"logo_url,omitempty"`
	WebsiteURL  *string `json:"website_url,omitempty"`
	IsActive    *bool   `json:"is_active,omitempty"`
}

func NewBrandService(db *gorm.DB) *BrandService {
	return &BrandService{db: db}
}

// ListBrands returns the whole collection ordered by name.
func (s *BrandService) ListBrands(params utils.ListParams) ([]models.Brand, int64, error) {
	query := s.db.Model(&models.Brand{})

	if params.Search != "" {
		searchTerm := "%" + strings.ToLower(params.Search) + "%"
		query = query.Where("LOWER(name) LIKE ? OR LOWER(slug) LIKE ?", searchTerm, searchTerm)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count brands: %w", err)
	}

	allowedSortFields := []string{"name", "slug", "created_at", "updated_at"}
	query = utils.ApplySort(query, params, allowedSortFields, "name ASC")
	query = utils.ApplyPagination(query, params)

	var brands []models.Brand
	if err := query.Find(&brands).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to fetch brands: %w", err)
	}

	return brands, total, nil
}

func (s *BrandService) CreateBrand(req *CreateBrandRequest) (*models.Brand, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	slug := req.Slug
	if slug == "" {
		slug = utils.Slugify(req.Name)
	}

	if taken, err := s.slugTaken(slug, nil); err != nil {
		return nil, err
	} else if taken {
		return nil, ErrSlugTaken
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	brand := &models.Brand{
		Name:        req.Name,
		Slug:        slug,
		Description: req.Description,
		LogoURL:     req.LogoURL,
		WebsiteURL:  req.WebsiteURL,
		IsActive:    isActive,
	}

	if err := s.db.Create(brand).Error; err != nil {
		return nil, fmt.Errorf("failed to create brand: %w", err)
	}

	return brand, nil
}

func (s *BrandService) UpdateBrand(id uuid.UUID, req *UpdateBrandRequest) (*models.Brand, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	var brand models.Brand
	if err := s.db.First(&brand, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	if req.Slug != nil && *req.Slug != brand.Slug {
		if taken, err := s.slugTaken(*req.Slug, &id); err != nil {
			return nil, err
		} else if taken {
			return nil, ErrSlugTaken
		}
	}

	updates := make(map[string]interface{})
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Slug != nil {
		updates["slug"] = *req.Slug
	}
	if req.Description != nil {
		updates["description"] = nullableString(*req.Description)
	}
	if req.LogoURL != nil {
		updates["logo_url"] = nullableString(*req.LogoURL)
	}
	if req.WebsiteURL != nil {
		updates["website_url"] = nullableString(*req.WebsiteURL)
	}
	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
	}

	if len(updates) > 0 {
		if err := s.db.Model(&brand).Updates(updates).Error; err != nil {
			return nil, fmt.Errorf("failed to update brand: %w", err)
		}
	}

	s.db.First(&brand, "id = ?", id)
	return &brand, nil
}

// DeleteBrand refuses to remove a brand that products still reference,
// the same referential rule categories follow.
func (s *BrandService) DeleteBrand(id uuid.UUID) error {
	var brand models.Brand
	if err := s.db.First(&brand, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("database error: %w", err)
	}

	var productCount int64
	if err := s.db.Model(&models.Product{}).Where("brand_id = ?", id).Count(&productCount).Error; err != nil {
		return fmt.Errorf("failed to check product references: %w", err)
	}
	if productCount > 0 {
		return ErrBrandInUse
	}

	if err := s.db.Delete(&brand).Error; err != nil {
		return fmt.Errorf("failed to delete brand: %w", err)
	}

	return nil
}

func (s *BrandService) slugTaken(slug string, excludeID *uuid.UUID) (bool, error) {
	query := s.db.Model(&models.Brand{}).Where("slug = ?", slug)
	if excludeID != nil {
		query = query.Where("id <> ?", *excludeID)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check slug: %w", err)
	}
	return count > 0, nil
}
