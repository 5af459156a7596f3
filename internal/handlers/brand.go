// internal/handlers/brand.go
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

type BrandHandler struct {
	brandService *services.BrandService
}

func NewBrandHandler(brandService *services.BrandService) *BrandHandler {
	return &BrandHandler{
		brandService: brandService,
	}
}

// GET /v1/admin/brands
func (h *BrandHandler) List(c *gin.Context) {
	params := utils.GetListParams(c)

	brands, total, err := h.brandService.ListBrands(params)
	if err != nil {
		utils.InternalErrorResponse(c, "")
		return
	}

	utils.SetListHeaders(c, total, params)
	utils.CollectionResponse(c, "brands", brands)
}

// POST /v1/admin/brands
func (h *BrandHandler) Create(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	var req services.CreateBrandRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"))
		return
	}

	brand, err := h.brandService.CreateBrand(&req)
	if err != nil {
		if errors.Is(err, services.ErrSlugTaken) {
			utils.ErrorResponse(c, http.StatusConflict, i18n.T(lang, i18n.KeyBrandSlugExists))
			return
		}
		utils.BadRequestResponse(c, err.Error())
		return
	}

	utils.CreatedResponse(c, "brand", brand)
}

// PUT /v1/admin/brands
func (h *BrandHandler) Update(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	var req struct {
		ID uuid.UUID `json:"id"`
		services.UpdateBrandRequest
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"))
		return
	}
	if req.ID == uuid.Nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationRequired, "id"))
		return
	}

	brand, err := h.brandService.UpdateBrand(req.ID, &req.UpdateBrandRequest)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNotFound):
			utils.NotFoundResponse(c, i18n.KeyBrandNotFound)
		case errors.Is(err, services.ErrSlugTaken):
			utils.ErrorResponse(c, http.StatusConflict, i18n.T(lang, i18n.KeyBrandSlugExists))
		default:
			utils.BadRequestResponse(c, err.Error())
		}
		return
	}

	utils.ResourceResponse(c, "brand", brand)
}

// DELETE /v1/admin/brands?id=
func (h *BrandHandler) Delete(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	id, err := uuid.Parse(c.Query("id"))
	if err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationRequired, "id"))
		return
	}

	if err := h.brandService.DeleteBrand(id); err != nil {
		switch {
		case errors.Is(err, services.ErrNotFound):
			utils.NotFoundResponse(c, i18n.KeyBrandNotFound)
		case errors.Is(err, services.ErrBrandInUse):
			utils.ErrorResponse(c, http.StatusConflict, i18n.T(lang, i18n.KeyBrandHasProducts))
		default:
			utils.InternalErrorResponse(c, "")
		}
		return
	}

	utils.MessageResponse(c, i18n.T(lang, i18n.KeyBrandDeleted))
}
