// internal/services/errors.go
package services

import "errors"

// Sentinel errors the handlers translate into HTTP responses.
var (
	ErrNotFound            = errors.New("record not found")
	ErrSlugTaken           = errors.New("slug already exists")
	ErrSKUTaken            = errors.New("sku already exists")
	ErrEmailTaken          = errors.New("email already exists")
	ErrCategoryInUse       = errors.New("category is referenced by products")
	ErrCategoryHasChildren = errors.New("category has subcategories")
	ErrBrandInUse          = errors.New("brand is referenced by products")
	ErrInvalidCredentials  = errors.New("invalid email or password")
	ErrSelfDelete          = errors.New("cannot delete own account")
)
