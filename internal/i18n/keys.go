// internal/i18n/keys.go
package i18n

// Translation keys constants
const (
	// Authentication
	KeyAuthRequired           = "auth.required"
	KeyAuthInvalidToken       = "auth.invalid_token"
	KeyAuthTokenExpired       = "auth.token_expired"
	KeyAuthInvalidCredentials = "auth.invalid_credentials"
	KeyAuthUserExists         = "auth.user_exists"
	KeyAuthLoginSuccess       = "auth.login_success"
	KeyAuthLogoutSuccess      = "auth.logout_success"
	KeyAuthRegisterSuccess    = "auth.register_success"
	KeyAuthAccessDenied       = "auth.access_denied"

	// Users
	KeyUserCreated     = "user.created"
	KeyUserUpdated     = "user.updated"
	KeyUserDeleted     = "user.deleted"
	KeyUserNotFound    = "user.not_found"
	KeyUserEmailExists = "user.email_exists"
	KeyUserSelfDelete  = "user.self_delete"

	// Categories
	KeyCategoryCreated     = "category.created"
	KeyCategoryUpdated     = "category.updated"
	KeyCategoryDeleted     = "category.deleted"
	KeyCategoryNotFound    = "category.not_found"
	KeyCategorySlugExists  = "category.slug_exists"
	KeyCategoryHasProducts = "category.has_products"
	KeyCategoryHasChildren = "category.has_children"

	// Brands
	KeyBrandCreated     = "brand.created"
	KeyBrandUpdated     = "brand.updated"
	KeyBrandDeleted     = "brand.deleted"
	KeyBrandNotFound    = "brand.not_found"
	KeyBrandSlugExists  = "brand.slug_exists"
	KeyBrandHasProducts = "brand.has_products"

	// Products
	KeyProductCreated    = "product.created"
	KeyProductUpdated    = "product.updated"
	KeyProductDeleted    = "product.deleted"
	KeyProductNotFound   = "product.not_found"
	KeyProductSlugExists = "product.slug_exists"
	KeyProductSKUExists  = "product.sku_exists"

	// Variants
	KeyVariantCreated   = "variant.created"
	KeyVariantUpdated   = "variant.updated"
	KeyVariantDeleted   = "variant.deleted"
	KeyVariantNotFound  = "variant.not_found"
	KeyVariantSKUExists = "variant.sku_exists"

	// Variant templates
	KeyTemplateNotFound  = "template.not_found"
	KeyAttributeNoOption = "template.attribute_no_options"

	// Validation
	KeyValidationRequired = "validation.required"
	KeyValidationInvalid  = "validation.invalid"

	// File Upload
	KeyFileUploadSuccess = "file.upload_success"
	KeyFileUploadFailed  = "file.upload_failed"
	KeyFileDeleted       = "file.deleted"
	KeyFileInvalidType   = "file.invalid_type"
	KeyFileTooLarge      = "file.too_large"
	KeyFileNotProvided   = "file.not_provided"
	KeyFilePathRequired  = "file.path_required"
)
