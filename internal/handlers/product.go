// internal/handlers/product.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/modaluxe/backoffice/internal/i18n"
	"github.com/modaluxe/backoffice/internal/services"
	"github.com/modaluxe/backoffice/internal/utils"
)

type ProductHandler struct {
	productService *services.ProductService
}

func NewProductHandler(productService *services.ProductService) *ProductHandler {
	return &ProductHandler{
		productService: productService,
	}
}

// GET /v1/admin/products
func (h *ProductHandler) List(c *gin.Context) {
	params := utils.GetListParams(c)

	products, total, err := h.productService.ListProducts(params)
	if err != nil {
		utils.InternalErrorResponse(c, "")
		return
	}

	utils.SetListHeaders(c, total, params)
	utils.CollectionResponse(c, "products", products)
}

// GET /v1/admin/products/:id
func (h *ProductHandler) Get(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "id"))
		return
	}

	product, err := h.productService.GetProduct(id)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			utils.NotFoundResponse(c, i18n.KeyProductNotFound)
			return
		}
		utils.InternalErrorResponse(c, "")
		return
	}

	utils.ResourceResponse(c, "product", product)
}

// POST /v1/admin/products
func (h *ProductHandler) Create(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	var req services.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"))
		return
	}

	product, err := h.productService.CreateProduct(&req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrSlugTaken):
			utils.ErrorResponse(c, http.StatusConflict, i18n.T(lang, i18n.KeyProductSlugExists))
		case errors.Is(err, services.ErrSKUTaken):
			utils.ErrorResponse(c, http.StatusConflict, i18n.T(lang, i18n.KeyProductSKUExists))
		case errors.Is(err, services.ErrNotFound):
			utils.NotFoundResponse(c, i18n.KeyCategoryNotFound)
		default:
			utils.BadRequestResponse(c, err.Error())
		}
		return
	}

	utils.CreatedResponse(c, "product", product)
}

// PUT /v1/admin/products
func (h *ProductHandler) Update(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	var req struct {
		ID uuid.UUID `json:"id"`
		services.UpdateProductRequest
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"))
		return
	}
	if req.ID == uuid.Nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationRequired, "id"))
		return
	}

	product, err := h.productService.UpdateProduct(req.ID, &req.UpdateProductRequest)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNotFound):
			utils.NotFoundResponse(c, i18n.KeyProductNotFound)
		case errors.Is(err, services.ErrSlugTaken):
			utils.ErrorResponse(c, http.StatusConflict, i18n.T(lang, i18n.KeyProductSlugExists))
		case errors.Is(err, services.ErrSKUTaken):
			utils.ErrorResponse(c, http.StatusConflict, i18n.T(lang, i18n.KeyProductSKUExists))
		default:
			utils.BadRequestResponse(c, err.Error())
		}
		return
	}

	utils.ResourceResponse(c, "product", product)
}

// DELETE /v1/admin/products?id=
// Variants go with the product through the DB-level cascade.
func (h *ProductHandler) Delete(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	id, err := uuid.Parse(c.Query("id"))
	if err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationRequired, "id"))
		return
	}

	if err := h.productService.DeleteProduct(id); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			utils.NotFoundResponse(c, i18n.KeyProductNotFound)
			return
		}
		utils.InternalErrorResponse(c, "")
		return
	}

	utils.MessageResponse(c, i18n.T(lang, i18n.KeyProductDeleted))
}
