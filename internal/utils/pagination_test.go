package utils

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func paramsForQuery(t *testing.T, query string) ListParams {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/v1/admin/products?"+query, nil)
	return GetListParams(c)
}

func TestGetListParamsDefaults(t *testing.T) {
	params := paramsForQuery(t, "")

	assert.Equal(t, 1, params.Page)
	assert.Equal(t, 0, params.Limit, "no limit means the full collection")
	assert.False(t, params.Paginated())
	assert.Equal(t, "desc", params.Order)
	assert.Empty(t, params.Search)
}

func TestGetListParamsExplicit(t *testing.T) {
	params := paramsForQuery(t, "page=3&limit=25&sort=name&order=asc&search=chaussures")

	assert.Equal(t, 3, params.Page)
	assert.Equal(t, 25, params.Limit)
	assert.True(t, params.Paginated())
	assert.Equal(t, "name", params.Sort)
	assert.Equal(t, "asc", params.Order)
	assert.Equal(t, "chaussures", params.Search)
}

func TestGetListParamsClampsBadValues(t *testing.T) {
	params := paramsForQuery(t, "page=-2&limit=9999&order=sideways")

	assert.Equal(t, 1, params.Page)
	assert.Equal(t, 0, params.Limit, "oversized limits fall back to unpaginated")
	assert.Equal(t, "desc", params.Order)
}

func TestSetListHeaders(t *testing.T) {
	gin.SetMode(gin.TestMode)
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)

	SetListHeaders(c, 42, ListParams{Page: 2, Limit: 10})

	assert.Equal(t, "42", rec.Header().Get("X-Total-Count"))
	assert.Equal(t, "2", rec.Header().Get("X-Page"))
	assert.Equal(t, "10", rec.Header().Get("X-Per-Page"))
	assert.Equal(t, "5", rec.Header().Get("X-Total-Pages"))
}

func TestSetListHeadersUnpaginated(t *testing.T) {
	gin.SetMode(gin.TestMode)
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)

	SetListHeaders(c, 7, ListParams{Page: 1, Limit: 0})

	assert.Equal(t, "7", rec.Header().Get("X-Total-Count"))
	assert.Empty(t, rec.Header().Get("X-Total-Pages"))
}
