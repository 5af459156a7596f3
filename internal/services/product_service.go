// internal/services/product_service.go
package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"github.com/modaluxe/backoffice/internal/models"
	"github.com/modaluxe/backoffice/internal/utils"
)

type ProductService struct {
	db *gorm.DB
}

type CreateProductRequest struct {
	Name             string                 `json:"name" validate:"required,max=255"`
	Slug             string                 `json:"slug" validate:"omitempty,slug"`
	Description      *string                `json:"description,omitempty"`
	ShortDescription *string                `json:"short_description,omitempty" validate:"omitempty,max=500"`
	SKU              string                 `json:"sku" validate:"required,max=100"`
	Price            float64                `json:"price" validate:"required,min=0"`
	ComparePrice     *float64               `json:"compare_price,omitempty" validate:"omitempty,min=0"`
	CostPrice        *float64               `json:"cost_price,omitempty" validate:"omitempty,min=0"`
	CategoryID       uuid.UUID              `json:"category_id" validate:"required"`
	BrandID          *uuid.UUID             `json:"brand_id,omitempty"`
	Images           []string               `json:"images,omitempty"`
	Tags             []string               `json:"tags,omitempty"`
	Weight           *float64               `json:"weight,omitempty" validate:"omitempty,min=0"`
	Dimensions       map[string]interface{} `json:"dimensions,omitempty"`
	InventoryQty     int                    `json:"inventory_quantity" validate:"min=0"`
	TrackInventory   *bool                  `json:"track_inventory,omitempty"`
	AllowBackorder   *bool                  `json:"allow_backorder,omitempty"`
	IsDigital        *bool                  `json:"is_digital,omitempty"`
	IsActive         *bool                  `json:"is_active,omitempty"`
	SEOTitle         *string                `json:"seo_title,omitempty" validate:"omitempty,max=255"`
	SEODescription   *string                `json:"seo_description,omitempty" validate:"omitempty,max=500"`
}

type UpdateProductRequest struct {
	Name             *string                `json:"name,omitempty" validate:"omitempty,max=255"`
	Slug             *string                `json:"slug,omitempty" validate:"omitempty,slug"`
	Description      *string                `json:"description,omitempty"`
	ShortDescription *string                `json:"short_description,omitempty" validate:"omitempty,max=500"`
	SKU              *string                `json:"sku,omitempty" validate:"omitempty,max=100"`
	Price            *float64               `json:"price,omitempty" validate:"omitempty,min=0"`
	ComparePrice     *float64               `json:"compare_price,omitempty" validate:"omitempty,min=0"`
	CostPrice        *float64               `json:"cost_price,omitempty" validate:"omitempty,min=0"`
	CategoryID       *uuid.UUID             `json:"category_id,omitempty"`
	BrandID          *uuid.UUID             `json:"brand_id,omitempty"`
	Images           []string               `json:"images,omitempty"`
	Tags             []string               `json:"tags,omitempty"`
	Weight           *float64               `json:"weight,omitempty" validate:"omitempty,min=0"`
	Dimensions       map[string]interface{} `json:"dimensions,omitempty"`
	InventoryQty     *int                   `json:"inventory_quantity,omitempty" validate:"omitempty,min=0"`
	TrackInventory   *bool                  `json:"track_inventory,omitempty"`
	AllowBackorder   *bool                  `json:"allow_backorder,omitempty"`
	IsDigital        *bool                  `json:"is_digital,omitempty"`
	IsActive         *bool                  `json:"is_active,omitempty"`
	SEOTitle         *string                `json:"seo_title,omitempty" validate:"omitempty,max=255"`
	SEODescription   *string                `json:"seo_description,omitempty" validate:"omitempty,max=500"`
}

func NewProductService(db *gorm.DB) *ProductService {
	return &ProductService{db: db}
}

// ListProducts returns the collection newest first with category and brand
// preloaded for the list table's name columns.
func (s *ProductService) ListProducts(params utils.ListParams) ([]models.Product, int64, error) {
	query := s.db.Model(&models.Product{}).Preload("Category").Preload("Brand")

	if params.Search != "" {
		searchTerm := "%" + strings.ToLower(params.Search) + "%"
		query = query.Where("LOWER(name) LIKE ? OR LOWER(sku) LIKE ? OR LOWER(slug) LIKE ?",
			searchTerm, searchTerm, searchTerm)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count products: %w", err)
	}

	allowedSortFields := []string{"name", "slug", "sku", "price", "inventory_quantity", "created_at", "updated_at"}
	query = utils.ApplySort(query, params, allowedSortFields, "created_at DESC")
	query = utils.ApplyPagination(query, params)

	var products []models.Product
	if err := query.Find(&products).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to fetch products: %w", err)
	}

	return products, total, nil
}

func (s *ProductService) GetProduct(id uuid.UUID) (*models.Product, error) {
	var product models.Product
	if err := s.db.Preload("Category").Preload("Brand").Preload("Variants").
		First(&product, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return &product, nil
}

func (s *ProductService) CreateProduct(req *CreateProductRequest) (*models.Product, error) {
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

	if taken, err := s.skuTaken(req.SKU, nil); err != nil {
		return nil, err
	} else if taken {
		return nil, ErrSKUTaken
	}

	// The category reference must resolve before inserting
	var category models.Category
	if err := s.db.First(&category, "id = ?", req.CategoryID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: category", ErrNotFound)
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	product := &models.Product{
		Name:             req.Name,
		Slug:             slug,
		Description:      req.Description,
		ShortDescription: req.ShortDescription,
		SKU:              req.SKU,
		Price:            req.Price,
		ComparePrice:     req.ComparePrice,
		CostPrice:        req.CostPrice,
		CategoryID:       req.CategoryID,
		BrandID:          req.BrandID,
		Images:           pqStringArray(req.Images),
		Tags:             pqStringArray(req.Tags),
		Weight:           req.Weight,
		Dimensions:       models.JSONB(req.Dimensions),
		InventoryQty:     req.InventoryQty,
		TrackInventory:   boolOrDefault(req.TrackInventory, true),
		AllowBackorder:   boolOrDefault(req.AllowBackorder, false),
		IsDigital:        boolOrDefault(req.IsDigital, false),
		IsActive:         boolOrDefault(req.IsActive, true),
		SEOTitle:         req.SEOTitle,
		SEODescription:   req.SEODescription,
	}

	if err := s.db.Create(product).Error; err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	s.db.Preload("Category").Preload("Brand").First(product, "id = ?", product.ID)
	return product, nil
}

func (s *ProductService) UpdateProduct(id uuid.UUID, req *UpdateProductRequest) (*models.Product, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	var product models.Product
	if err := s.db.First(&product, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	if req.Slug != nil && *req.Slug != product.Slug {
		if taken, err := s.slugTaken(*req.Slug, &id); err != nil {
			return nil, err
		} else if taken {
			return nil, ErrSlugTaken
		}
	}

	if req.SKU != nil && *req.SKU != product.SKU {
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
	if req.Slug != nil {
		updates["slug"] = *req.Slug
	}
	if req.Description != nil {
		updates["description"] = nullableString(*req.Description)
	}
	if req.ShortDescription != nil {
		updates["short_description"] = nullableString(*req.ShortDescription)
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
	if req.CategoryID != nil {
		updates["category_id"] = *req.CategoryID
	}
	if req.BrandID != nil {
		if *req.BrandID == uuid.Nil {
			updates["brand_id"] = nil
		} else {
			updates["brand_id"] = *req.BrandID
		}
	}
	if req.Images != nil {
		updates["images"] = pqStringArray(req.Images)
	}
	if req.Tags != nil {
		updates["tags"] = pqStringArray(req.Tags)
	}
	if req.Weight != nil {
		updates["weight"] = *req.Weight
	}
	if req.Dimensions != nil {
		updates["dimensions"] = models.JSONB(req.Dimensions)
	}
	if req.InventoryQty != nil {
		updates["inventory_quantity"] = *req.InventoryQty
	}
	if req.TrackInventory != nil {
		updates["track_inventory"] = *req.TrackInventory
	}
	if req.AllowBackorder != nil {
		updates["allow_backorder"] = *req.AllowBackorder
	}
	if req.IsDigital != nil {
		updates["is_digital"] = *req.IsDigital
	}
	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
	}
	if req.SEOTitle != nil {
		updates["seo_title"] = nullableString(*req.SEOTitle)
	}
	if req.SEODescription != nil {
		updates["seo_description"] = nullableString(*req.SEODescription)
	}

	if len(updates) > 0 {
		if err := s.db.Model(&product).Updates(updates).Error; err != nil {
			return nil, fmt.Errorf("failed to update product: %w", err)
		}
	}

	s.db.Preload("Category").Preload("Brand").First(&product, "id = ?", id)
	return &product, nil
}

// DeleteProduct removes the product; its variants go with it through the
// cascading foreign key.
func (s *ProductService) DeleteProduct(id uuid.UUID) error {
	var product models.Product
	if err := s.db.First(&product, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("database error: %w", err)
	}

	if err := s.db.Delete(&product).Error; err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}

	return nil
}

func (s *ProductService) slugTaken(slug string, excludeID *uuid.UUID) (bool, error) {
	query := s.db.Model(&models.Product{}).Where("slug = ?", slug)
	if excludeID != nil {
		query = query.Where("id <> ?", *excludeID)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check slug: %w", err)
	}
	return count > 0, nil
}

func (s *ProductService) skuTaken(sku string, excludeID *uuid.UUID) (bool, error) {
	query := s.db.Model(&models.Product{}).Where("sku = ?", sku)
	if excludeID != nil {
		query = query.Where("id <> ?", *excludeID)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check sku: %w", err)
	}
	return count > 0, nil
}

func boolOrDefault(b *bool, def bool) bool {
	if b != nil {
		return *b
	}
	return def
}

func pqStringArray(v []string) pq.StringArray {
	return pq.StringArray(v)
}
