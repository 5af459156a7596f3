// internal/handlers/variant.go
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

type VariantHandler struct {
	variantService *services.VariantService
}

func NewVariantHandler(variantService *services.VariantService) *VariantHandler {
	return &VariantHandler{
		variantService: variantService,
	}
}

// GET /v1/admin/products/:id/variants
func (h *VariantHandler) ListForProduct(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "product id"))
		return
	}

	variants, err := h.variantService.ListVariants(productID)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			utils.NotFoundResponse(c, i18n.KeyProductNotFound)
			return
		}
		utils.InternalErrorResponse(c, "")
		return
	}

	utils.CollectionResponse(c, "variants", variants)
}

// POST /v1/admin/products/:id/variants
func (h *VariantHandler) Create(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "product id"))
		return
	}

	var req services.CreateVariantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"))
		return
	}

	variant, err := h.variantService.CreateVariant(productID, &req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNotFound):
			utils.NotFoundResponse(c, i18n.KeyProductNotFound)
		case errors.Is(err, services.ErrSKUTaken):
			utils.ErrorResponse(c, http.StatusConflict, i18n.T(lang, i18n.KeyVariantSKUExists))
		default:
			utils.BadRequestResponse(c, err.Error())
		}
		return
	}

	utils.CreatedResponse(c, "variant", variant)
}

// GET /v1/admin/variants/:id
func (h *VariantHandler) Get(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "id"))
		return
	}

	variant, err := h.variantService.GetVariant(id)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			utils.NotFoundResponse(c, i18n.KeyVariantNotFound)
			return
		}
		utils.InternalErrorResponse(c, "")
		return
	}

	utils.ResourceResponse(c, "variant", variant)
}

// PUT /v1/admin/variants/:id
func (h *VariantHandler) Update(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "id"))
		return
	}

	var req services.UpdateVariantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"))
		return
	}

	variant, err := h.variantService.UpdateVariant(id, &req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNotFound):
			utils.NotFoundResponse(c, i18n.KeyVariantNotFound)
		case errors.Is(err, services.ErrSKUTaken):
			utils.ErrorResponse(c, http.StatusConflict, i18n.T(lang, i18n.KeyVariantSKUExists))
		default:
			utils.BadRequestResponse(c, err.Error())
		}
		return
	}

	utils.ResourceResponse(c, "variant", variant)
}

// DELETE /v1/admin/variants/:id
func (h *VariantHandler) Delete(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "id"))
		return
	}

	if err := h.variantService.DeleteVariant(id); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			utils.NotFoundResponse(c, i18n.KeyVariantNotFound)
			return
		}
		utils.InternalErrorResponse(c, "")
		return
	}

	utils.MessageResponse(c, i18n.T(lang, i18n.KeyVariantDeleted))
}
