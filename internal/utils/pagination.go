// internal/utils/pagination.go
package utils

import (
	"math"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ListParams are optional on every list endpoint. The admin frontend
// reloads whole collections, so a missing limit means "no pagination";
// offset/limit only apply when the caller asks for a page.
type ListParams struct {
	Page   int    `json:"page"`
	Limit  int    `json:"limit"`
	Sort   string `json:"sort"`
	Order  string `json:"order"`
	Search string `json:"search"`
}

func GetListParams(c *gin.Context) ListParams {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))
	sort := c.Query("sort")
	order := c.DefaultQuery("order", "desc")
	search := c.Query("search")

	// Validate and set defaults
	if page < 1 {
		page = 1
	}
	if limit < 0 || limit > 500 {
		limit = 0
	}
	if order != "asc" && order != "desc" {
		order = "desc"
	}

	return ListParams{
		Page:   page,
		Limit:  limit,
		Sort:   sort,
		Order:  order,
		Search: search,
	}
}

func (p ListParams) Paginated() bool {
	return p.Limit > 0
}

func ApplyPagination(db *gorm.DB, params ListParams) *gorm.DB {
	if !params.Paginated() {
		return db
	}
	offset := (params.Page - 1) * params.Limit
	return db.Offset(offset).Limit(params.Limit)
}

func ApplySort(db *gorm.DB, params ListParams, allowedSortFields []string, defaultOrder string) *gorm.DB {
	if params.Sort == "" {
		return db.Order(defaultOrder)
	}

	// Validate sort field
	validSort := false
	for _, field := range allowedSortFields {
		if field == params.Sort {
			validSort = true
			break
		}
	}

	if !validSort {
		return db.Order(defaultOrder)
	}

	return db.Order(params.Sort + " " + params.Order)
}

func SetListHeaders(c *gin.Context, total int64, params ListParams) {
	c.Header("X-Total-Count", strconv.FormatInt(total, 10))
	if params.Paginated() {
		totalPages := int(math.Ceil(float64(total) / float64(params.Limit)))
		c.Header("X-Page", strconv.Itoa(params.Page))
		c.Header("X-Per-Page", strconv.Itoa(params.Limit))
		c.Header("X-Total-Pages", strconv.Itoa(totalPages))
	}
}
