// internal/handlers/category.go
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

type CategoryHandler struct {
	categoryService *services.CategoryService
}

func NewCategoryHandler(categoryService *services.CategoryService) *CategoryHandler {
	return &CategoryHandler{
		categoryService: categoryService,
	}
}

// GET /v1/admin/categories
func (h *CategoryHandler) List(c *gin.Context) {
	params := utils.GetListParams(c)

	categories, total, err := h.categoryService.ListCategories(params)
	if err != nil {
		utils.InternalErrorResponse(c, "")
		return
	}

	utils.SetListHeaders(c, total, params)
	utils.CollectionResponse(c, "categories", categories)
}

// POST /v1/admin/categories
func (h *CategoryHandler) Create(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	var req services.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"))
		return
	}

	category, err := h.categoryService.CreateCategory(&req)
	if err != nil {
		if errors.Is(err, services.ErrSlugTaken) {
			utils.ErrorResponse(c, http.StatusConflict, i18n.T(lang, i18n.KeyCategorySlugExists))
			return
		}
		utils.BadRequestResponse(c, err.Error())
		return
	}

	utils.CreatedResponse(c, "category", category)
}

// PUT /v1/admin/categories
// The record id travels in the body alongside the partial update.
func (h *CategoryHandler) Update(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	var req struct {
		ID uuid.UUID `json:"id"`
		services.UpdateCategoryRequest
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"))
		return
	}
	if req.ID == uuid.Nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationRequired, "id"))
		return
	}

	category, err := h.categoryService.UpdateCategory(req.ID, &req.UpdateCategoryRequest)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNotFound):
			utils.NotFoundResponse(c, i18n.KeyCategoryNotFound)
		case errors.Is(err, services.ErrSlugTaken):
			utils.ErrorResponse(c, http.StatusConflict, i18n.T(lang, i18n.KeyCategorySlugExists))
		default:
			utils.BadRequestResponse(c, err.Error())
		}
		return
	}

	utils.ResourceResponse(c, "category", category)
}

// DELETE /v1/admin/categories?id=
func (h *CategoryHandler) Delete(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	id, err := uuid.Parse(c.Query("id"))
	if err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationRequired, "id"))
		return
	}

	if err := h.categoryService.DeleteCategory(id); err != nil {
		switch {
		case errors.Is(err, services.ErrNotFound):
			utils.NotFoundResponse(c, i18n.KeyCategoryNotFound)
		case errors.Is(err, services.ErrCategoryInUse):
			utils.ErrorResponse(c, http.StatusConflict, i18n.T(lang, i18n.KeyCategoryHasProducts))
		case errors.Is(err, services.ErrCategoryHasChildren):
			utils.ErrorResponse(c, http.StatusConflict, i18n.T(lang, i18n.KeyCategoryHasChildren))
		default:
			utils.InternalErrorResponse(c, "")
		}
		return
	}

	utils.MessageResponse(c, i18n.T(lang, i18n.KeyCategoryDeleted))
}
