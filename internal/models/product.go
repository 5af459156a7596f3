// internal/models/product.go
package models

import (
	"github.com/google/uuid"
	"github.com/lib/pq"
)

type Product struct {
	BaseModel
	Name             string         `json:"name" gorm:"size:255;not null"`
	Slug             string         `json:"slug" gorm:"uniqueIndex;size:255;not null"`
	Description      *string        `json:"description" gorm:"type:text"`
	ShortDescription *string        `json:"short_description" gorm:"size:500"`
	SKU              string         `json:"sku" gorm:"uniqueIndex;size:100;not null"`
	Price            float64        `json:"price" gorm:"type:decimal(10,2);not null"`
	ComparePrice     *float64       `json:"compare_price" gorm:"type:decimal(10,2)"`
	CostPrice        *float64       `json:"cost_price" gorm:"type:decimal(10,2)"`
	CategoryID       uuid.UUID      `json:"category_id" gorm:"type:uuid;not null;index"`
	BrandID          *uuid.UUID     `json:"brand_id" gorm:"type:uuid;index"`
	Images           pq.StringArray `json:"images" gorm:"type:text[]"`
	Tags             pq.StringArray `json:"tags" gorm:"type:text[]"`
	Weight           *float64       `json:"weight" gorm:"type:decimal(10,3)"`
	Dimensions       JSONB          `json:"dimensions" gorm:"type:jsonb"`
	InventoryQty     int            `json:"inventory_quantity" gorm:"column:inventory_quantity;default:0"`
	TrackInventory   bool           `json:"track_inventory" gorm:"default:true"`
	AllowBackorder   bool           `json:"allow_backorder" gorm:"default:false"`
	IsDigital        bool           `json:"is_digital" gorm:"default:false"`
	IsActive         bool           `json:"is_active" gorm:"default:true"`
	SEOTitle         *string        `json:"seo_title" gorm:"size:255"`
	SEODescription   *string        `json:"seo_description" gorm:"size:500"`

	// Relationships
	Category Category         `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
	Brand    *Brand           `json:"brand,omitempty" gorm:"foreignKey:BrandID"`
	Variants []ProductVariant `json:"variants,omitempty" gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
}
