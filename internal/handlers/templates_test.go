package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func templateTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewTemplateHandler()
	r := gin.New()
	r.GET("/v1/admin/variant-templates", h.List)
	r.GET("/v1/admin/variant-templates/:name", h.Get)
	r.GET("/v1/admin/attribute-options/:key", h.AttributeOptions)
	return r
}

func TestTemplateList(t *testing.T) {
	r := templateTestRouter()
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest("GET", "/v1/admin/variant-templates", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Templates []struct {
			Key  string `json:"key"`
			Name string `json:"name"`
		} `json:"templates"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Templates, 5)
	assert.Equal(t, "clothing", body.Templates[0].Key)
	assert.Equal(t, "Vêtements", body.Templates[0].Name)
}

func TestTemplateGet(t *testing.T) {
	r := templateTestRouter()
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest("GET", "/v1/admin/variant-templates/perfume", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Template struct {
			Attributes    []string          `json:"attributes"`
			DefaultValues map[string]string `json:"default_values"`
		} `json:"template"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, []string{"volume", "concentration"}, body.Template.Attributes)
	assert.Equal(t, "eau-de-toilette", body.Template.DefaultValues["concentration"])
}

func TestTemplateGetUnknown(t *testing.T) {
	r := templateTestRouter()
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest("GET", "/v1/admin/variant-templates/furniture", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "error")
}

func TestAttributeOptions(t *testing.T) {
	r := templateTestRouter()
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest("GET", "/v1/admin/attribute-options/fit", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Options []struct {
			Value string `json:"value"`
			Label string `json:"label"`
		} `json:"options"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Options, 3)
	assert.Equal(t, "slim", body.Options[0].Value)
	assert.Equal(t, "Coupe Slim", body.Options[0].Label)
}

func TestAttributeOptionsUnknownKey(t *testing.T) {
	r := templateTestRouter()
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest("GET", "/v1/admin/attribute-options/engine", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
