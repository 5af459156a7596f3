// internal/models/user.go
package models

import (
	"time"

	"golang.org/x/crypto/bcrypt"
)

type User struct {
	BaseModel
	Email        string     `json:"email" gorm:"uniqueIndex;size:255;not null"`
	PasswordHash string     `json:"-" gorm:"size:255;not null"`
	FullName     *string    `json:"full_name" gorm:"size:255"`
	AvatarURL    *string    `json:"avatar_url" gorm:"size:500"`
	Role         UserRole   `json:"role" gorm:"type:varchar(20);default:'user';not null;index"`
	LastLoginAt  *time.Time `json:"last_login_at"`
}

func (u *User) SetPassword(password string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.PasswordHash = string(hashedPassword)
	return nil
}

func (u *User) CheckPassword(password string) error {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password))
}

// CanManageCatalog reports whether the user may touch catalog resources.
func (u *User) CanManageCatalog() bool {
	return u.Role == UserRoleAdmin || u.Role == UserRoleManager
}
