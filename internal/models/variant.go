// internal/models/variant.go
package models

import (
	"github.com/google/uuid"
)

// ProductVariant is a sellable variation of one product. The attribute map
// is free-form: keys are suggested by variant templates but never enforced.
type ProductVariant struct {
	BaseModel
	ProductID    uuid.UUID `json:"product_id" gorm:"type:uuid;not null;index"`
	Name         string    `json:"name" gorm:"size:255;not null"`
	SKU          string    `json:"sku" gorm:"uniqueIndex;size:100;not null"`
	Price        float64   `json:"price" gorm:"type:decimal(10,2);not null"`
	ComparePrice *float64  `json:"compare_price" gorm:"type:decimal(10,2)"`
	CostPrice    *float64  `json:"cost_price" gorm:"type:decimal(10,2)"`
	InventoryQty int       `json:"inventory_quantity" gorm:"column:inventory_quantity;default:0"`
	Attributes   JSONB     `json:"attributes" gorm:"type:jsonb"`
	ImageURL     *string   `json:"image_url" gorm:"size:500"`
	IsActive     bool      `json:"is_active" gorm:"default:true"`

	// Relationships
	Product *Product `json:"product,omitempty" gorm:"foreignKey:ProductID"`
}
