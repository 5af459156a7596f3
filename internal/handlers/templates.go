// internal/handlers/templates.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/modaluxe/backoffice/internal/i18n"
	"github.com/modaluxe/backoffice/internal/utils"
	"github.com/modaluxe/backoffice/internal/variants"
)

// TemplateHandler serves the static variant template registry so the
// admin form layer can render attribute pickers.
type TemplateHandler struct{}

func NewTemplateHandler() *TemplateHandler {
	return &TemplateHandler{}
}

// GET /v1/admin/variant-templates
func (h *TemplateHandler) List(c *gin.Context) {
	utils.CollectionResponse(c, "templates", variants.All())
}

// GET /v1/admin/variant-templates/:name
func (h *TemplateHandler) Get(c *gin.Context) {
	tpl, ok := variants.Lookup(c.Param("name"))
	if !ok {
		utils.NotFoundResponse(c, i18n.KeyTemplateNotFound)
		return
	}
	utils.ResourceResponse(c, "template", tpl)
}

// GET /v1/admin/attribute-options/:key
func (h *TemplateHandler) AttributeOptions(c *gin.Context) {
	opts := variants.AttributeOptions(c.Param("key"))
	if opts == nil {
		utils.NotFoundResponse(c, i18n.KeyAttributeNoOption)
		return
	}
	utils.CollectionResponse(c, "options", opts)
}
