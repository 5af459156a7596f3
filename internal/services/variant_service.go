// internal/services/variant_service.go
package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/modaluxe/backoffice/internal/models"
	"github.com/modaluxe/backoffice/internal/utils"
	"github.com/modaluxe/backoffice/internal/variants"
)

type VariantService struct {
	db *gorm.DB
}

type CreateVariantRequest struct {
	Name         string                 `json:"name" validate:"required,max=255"`
	SKU          string                 `json:"sku" validate:"required,max=100"`
	Price        float64                `json:"price" validate:"required,min=0"`
	ComparePrice *float64               `json:"compare_price,omitempty" validate:"omitempty,min=0"`
	CostPrice    *float64               `json:"cost_price,omitempty" validate:"omitempty,min=0"`
	InventoryQty int                    `json:"inventory_quantity" validate:"min=0"`
	Attributes   map[string]interface{} `json:"attributes,omitempty"`
	Template     string                 `json:"template,omitempty"`
	ImageURL     *string                `json:"image_url,omitempty" validate:"omitempty,url"`
	IsActive     *bool                  `json:"is_active,omitempty"`
}

type UpdateVariantRequest struct {
	Name         *string                `json:"name,omitempty" validate:"omitempty,max=255"`
	SKU          *string                `json:"sku,omitempty" validate:"omitempty,max=100"`
	Price        *float64               `json:"price,omitempty" validate:"omitempty,min=0"`
	ComparePrice *float64               `json:"compare_price,omitempty" validate:"omitempty,min=0"`
	CostPrice    *float64               `json:"cost_price,omitempty" validate:"omitempty,min=0"`
	InventoryQty *int                   `json:"inventory_quantity,omitempty" validate:"omitempty,min=0"`
	Attributes   map[string]interface{} `json:"attributes,omitempty"`
	ImageURL     *string                `json:"image_url,omitempty"`
	IsActive     *bool                  `json:"is_active,omitempty"`
}

func NewVariantService(db *gorm.DB) *VariantService {
	return &VariantService{db: db}
}

// ListVariants returns a product's variants oldest first, the order the
// variant editor displays them in.
func (s *VariantService) ListVariants(productID uuid.UUID) ([]models.ProductVariant, error) {
	// The parent must exist so a bad product ID fails loudly instead of
	// returning an empty list
	var product models.Product
	if err := s.db.First(&product, "id = ?", productID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	var list []models.ProductVariant
	if err := s.db.Where("product_id = ?", productID).
		Order("created_at ASC").
		Find(&list).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch variants: %w", err)
	}

	return list, nil
}

func (s *VariantService) GetVariant(id uuid.UUID) (*models.ProductVariant, error) {
	var variant models.ProductVariant
	if err := s.db.First(&variant, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return &variant, nil
}

func (s *VariantService) CreateVariant(productID uuid.UUID, req *CreateVariantRequest) (*models.ProductVariant, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	var product models.Product
	if err := s.db.First(&product, "id = ?", productID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	if taken, err := s.skuTaken(req.SKU, nil); err != nil {
		return nil, err
	} else if taken {
		return nil, ErrSKUTaken
	}

	attrs := req.Attributes
	if attrs == nil {
		attrs = make(map[string]interface{})
	}

	// A named template seeds its default attribute values without touching
	// keys the caller already set
	if req.Template != "" {
		if tpl, ok := variants.Lookup(req.Template); ok {
			attrs = variants.ApplyDefaults(tpl, attrs)
		}
	}

	variant := &models.ProductVariant{
		ProductID:    productID,
		Name:         req.Name,
		SKU:          req.SKU,
		Price:        req.Price,
		ComparePrice: req.ComparePrice,
		CostPrice:    req.CostPrice,
		InventoryQty: req.InventoryQty,
		Attributes:   models.JSONB(attrs),
		ImageURL:     req.ImageURL,
		IsActive:     boolOrDefault(req.IsActive, true),
	}

	if err := s.db.Create(variant).Error; err != nil {
		return nil, fmt.Errorf("failed to create variant: %w", err)
	}

	return variant, nil
}

func (s *VariantService) UpdateVariant(id uuid.UUID, req *UpdateVariantRequest) (*models.ProductVariant, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	var variant models.ProductVariant
	if err := s.db.First(&variant, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	if req.SKU != nil && *req.SKU != variant.SKU {
		if taken, err := s.skuTaken(*req.SKU, &id); err != nil {
			return nil, err
		} else if taken {
			return nil, ErrSKUTaken
		}
	}

	updates := make(map[string]interface{})
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.SKU != nil {
		updates["sku"] = *req.SKU
	}
	if req.Price != nil {
		updates["price"] = *req.Price
	}
	if req.ComparePrice != nil {
		updates["compare_price"] = *req.ComparePrice
	}
	if req.CostPrice != nil {
		updates["cost_price"] = *req.CostPrice
	}
	if req.InventoryQty != nil {
		updates["inventory_quantity"] = *req.InventoryQty
	}
	if req.Attributes != nil {
		// The attribute map is replaced wholesale: the form always submits
		// the complete current set
		updates["attributes"] = models.JSONB(req.Attributes)
	}
	if req.ImageURL != nil {
		updates["image_url"] = nullableString(*req.ImageURL)
	}
	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
	}

	if len(updates) > 0 {
		if err := s.db.Model(&variant).Updates(updates).Error; err != nil {
			return nil, fmt.Errorf("failed to update variant: %w", err)
		}
	}

	s.db.First(&variant, "id = ?", id)
	return &variant, nil
}

func (s *VariantService) DeleteVariant(id uuid.UUID) error {
	var variant models.ProductVariant
	if err := s.db.First(&variant, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("database error: %w", err)
	}

	if err := s.db.Delete(&variant).Error; err != nil {
		return fmt.Errorf("failed to delete variant: %w", err)
	}

	return nil
}

func (s *VariantService) skuTaken(sku string, excludeID *uuid.UUID) (bool, error) {
	query := s.db.Model(&models.ProductVariant{}).Where("sku = ?", sku)
	if excludeID != nil {
		query = query.Where("id <> ?", *excludeID)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check sku: %w", err)
	}
	return count > 0, nil
}
