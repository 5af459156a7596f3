// internal/models/brand.go
package models

type Brand struct {
	BaseModel
	Name        string  `json:"name" gorm:"size:255;not null"`
	Slug        string  `json:"slug" gorm:"uniqueIndex;size:255;not null"`
	Description *string `json:"description" gorm:"type:text"`
	LogoURL     *string `json:"logo_url" gorm:"size:500"`
	WebsiteURL  *string `json:"website_url" gorm:"size:500"`
	IsActive    bool    `json:"is_active" gorm:"default:true"`

	// Relationships
	Products []Product `json:"products,omitempty" gorm:"foreignKey:BrandID"`
}
