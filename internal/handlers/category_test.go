package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/modaluxe/backoffice/internal/services"
)

func categoryTestRouter(t *testing.T) (*gin.Engine, sqlmock.Sqlmock) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	h := NewCategoryHandler(services.NewCategoryService(db))
	r := gin.New()
	r.GET("/v1/admin/categories", h.List)
	r.DELETE("/v1/admin/categories", h.Delete)
	return r, mock
}

func TestCategoryListEnvelope(t *testing.T) {
	r, mock := categoryTestRouter(t)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "categories"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(`SELECT \* FROM "categories" ORDER BY sort_order ASC`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "slug"}).
			AddRow(uuid.New(), "Parfums", "parfums"))

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest("GET", "/v1/admin/categories", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "1", rec.Header().Get("X-Total-Count"))

	var body map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Contains(t, body, "categories", "list responses wrap the collection in a named field")

	var categories []map[string]interface{}
	require.NoError(t, json.Unmarshal(body["categories"], &categories))
	require.Len(t, categories, 1)
	assert.Equal(t, "Parfums", categories[0]["name"])
}

func TestCategoryDeleteInUseReturnsErrorEnvelope(t *testing.T) {
	r, mock := categoryTestRouter(t)
	id := uuid.New()

	mock.ExpectQuery(`SELECT \* FROM "categories" WHERE id = `).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "slug"}).AddRow(id, "Parfums", "parfums"))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "products" WHERE category_id = `).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest("DELETE", "/v1/admin/categories?id="+id.String(), nil))

	require.Equal(t, http.StatusConflict, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.NotEmpty(t, body["error"], "failures carry a flat error field")
}

func TestCategoryDeleteMissingID(t *testing.T) {
	r, _ := categoryTestRouter(t)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest("DELETE", "/v1/admin/categories", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "error")
}
