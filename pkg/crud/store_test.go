package crud

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCategory struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Slug     string `json:"slug"`
	IsActive bool   `json:"is_active"`
}

// fakeCategoryAPI is an in-memory stand-in for the back-office resource
// endpoints: wrapped list responses, 201 on create, id-in-body updates,
// id-in-query deletes, and {"error": ...} on every failure.
type fakeCategoryAPI struct {
	mu      sync.Mutex
	nextID  int
	records []testCategory
	inUse   map[string]bool // category id -> referenced by a product
}

func newFakeCategoryAPI() *fakeCategoryAPI {
	return &fakeCategoryAPI{nextID: 1, inUse: map[string]bool{}}
}

func (f *fakeCategoryAPI) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/v1/admin/categories", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()

		switch r.Method {
		case http.MethodGet:
			writeJSON(w, http.StatusOK, map[string]interface{}{"categories": f.records})
		case http.MethodPost:
			var req testCategory
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Name == "" {
				writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid input"})
				return
			}
			for _, rec := range f.records {
				if rec.Slug == req.Slug {
					writeJSON(w, http.StatusConflict, map[string]string{"error": "This slug already exists"})
					return
				}
			}
			req.ID = fmt.Sprintf("cat-%d", f.nextID)
			f.nextID++
			req.IsActive = true
			f.records = append(f.records, req)
			writeJSON(w, http.StatusCreated, map[string]interface{}{"category": req})
		case http.MethodPut:
			var req map[string]interface{}
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid input"})
				return
			}
			id, _ := req["id"].(string)
			for i, rec := range f.records {
				if rec.ID == id {
					if name, ok := req["name"].(string); ok {
						f.records[i].Name = name
					}
					if active, ok := req["is_active"].(bool); ok {
						f.records[i].IsActive = active
					}
					writeJSON(w, http.StatusOK, map[string]interface{}{"category": f.records[i]})
					return
				}
			}
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "Category not found"})
		case http.MethodDelete:
			id := r.URL.Query().Get("id")
			if f.inUse[id] {
				writeJSON(w, http.StatusConflict, map[string]string{"error": "Category is used by products"})
				return
			}
			for i, rec := range f.records {
				if rec.ID == id {
					f.records = append(f.records[:i], f.records[i+1:]...)
					writeJSON(w, http.StatusOK, map[string]string{"message": "Category deleted"})
					return
				}
			}
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "Category not found"})
		}
	})
	return mux
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func newCategoryStore(t *testing.T, api *fakeCategoryAPI, opts ...StoreOption[testCategory]) *Store[testCategory] {
	t.Helper()
	srv := httptest.NewServer(api.handler())
	t.Cleanup(srv.Close)
	client := NewClient(srv.URL, WithToken("test-token"))
	return NewStore[testCategory](client, "v1/admin/categories", opts...)
}

func TestReloadPopulatesRecords(t *testing.T) {
	api := newFakeCategoryAPI()
	api.records = []testCategory{
		{ID: "cat-a", Name: "Shoes", Slug: "shoes", IsActive: true},
		{ID: "cat-b", Name: "Bags", Slug: "bags", IsActive: true},
	}
	store := newCategoryStore(t, api, WithCollectionKey[testCategory]("categories"))

	assert.False(t, store.Loaded())
	store.Reload(context.Background())

	require.True(t, store.Loaded())
	assert.False(t, store.Loading())
	assert.Empty(t, store.Err())
	require.Len(t, store.Records(), 2)
	assert.Equal(t, "Shoes", store.Records()[0].Name)
}

func TestReloadIsIdempotent(t *testing.T) {
	api := newFakeCategoryAPI()
	api.records = []testCategory{{ID: "cat-a", Name: "Shoes", Slug: "shoes"}}
	store := newCategoryStore(t, api, WithCollectionKey[testCategory]("categories"))

	store.Reload(context.Background())
	first := store.Records()
	store.Reload(context.Background())

	assert.Equal(t, first, store.Records())
	assert.True(t, store.Loaded())
}

func TestAutoDetectCollectionKey(t *testing.T) {
	api := newFakeCategoryAPI()
	api.records = []testCategory{{ID: "cat-a", Name: "Shoes", Slug: "shoes"}}
	store := newCategoryStore(t, api) // no declared key

	store.Reload(context.Background())

	require.True(t, store.Loaded())
	require.Len(t, store.Records(), 1)
	assert.Equal(t, "cat-a", store.Records()[0].ID)
}

func TestCreateAppendsThroughReload(t *testing.T) {
	api := newFakeCategoryAPI()
	store := newCategoryStore(t, api, WithCollectionKey[testCategory]("categories"))
	store.Reload(context.Background())

	ok := store.Create(context.Background(), map[string]interface{}{
		"name": "Perfume",
		"slug": "perfume",
	})

	require.True(t, ok)
	assert.Empty(t, store.Err())
	require.Len(t, store.Records(), 1)
	assert.Equal(t, "Perfume", store.Records()[0].Name)
	assert.True(t, store.Records()[0].IsActive, "server defaults new categories to active")
}

func TestCreateDuplicateSlugFails(t *testing.T) {
	api := newFakeCategoryAPI()
	store := newCategoryStore(t, api, WithCollectionKey[testCategory]("categories"))
	require.True(t, store.Create(context.Background(), map[string]interface{}{"name": "Shoes", "slug": "shoes"}))

	ok := store.Create(context.Background(), map[string]interface{}{"name": "Shoes 2", "slug": "shoes"})

	assert.False(t, ok)
	assert.Equal(t, "This slug already exists", store.Err())
	assert.Len(t, store.Records(), 1, "collection untouched on failure")
}

func TestErrorClearedOnNextOperation(t *testing.T) {
	api := newFakeCategoryAPI()
	store := newCategoryStore(t, api, WithCollectionKey[testCategory]("categories"))
	store.Create(context.Background(), map[string]interface{}{"name": "Shoes", "slug": "shoes"})
	store.Create(context.Background(), map[string]interface{}{"name": "Dup", "slug": "shoes"})
	require.NotEmpty(t, store.Err())

	store.Reload(context.Background())

	assert.Empty(t, store.Err())
}

func TestUpdateSendsIDInBody(t *testing.T) {
	api := newFakeCategoryAPI()
	store := newCategoryStore(t, api, WithCollectionKey[testCategory]("categories"))
	require.True(t, store.Create(context.Background(), map[string]interface{}{"name": "Shoes", "slug": "shoes"}))
	id := store.Records()[0].ID

	ok := store.Update(context.Background(), id, map[string]interface{}{"name": "Footwear"})

	require.True(t, ok)
	assert.Equal(t, "Footwear", store.Records()[0].Name)
}

func TestUpdateUnknownIDFails(t *testing.T) {
	api := newFakeCategoryAPI()
	store := newCategoryStore(t, api, WithCollectionKey[testCategory]("categories"))
	store.Reload(context.Background())

	ok := store.Update(context.Background(), "cat-missing", map[string]interface{}{"name": "X"})

	assert.False(t, ok)
	assert.Equal(t, "Category not found", store.Err())
}

func TestRemoveDeletesByQueryParam(t *testing.T) {
	api := newFakeCategoryAPI()
	store := newCategoryStore(t, api, WithCollectionKey[testCategory]("categories"))
	require.True(t, store.Create(context.Background(), map[string]interface{}{"name": "Shoes", "slug": "shoes"}))
	id := store.Records()[0].ID

	ok := store.Remove(context.Background(), id)

	require.True(t, ok)
	assert.Empty(t, store.Records())
}

func TestRemoveInUseCategoryRejected(t *testing.T) {
	api := newFakeCategoryAPI()
	store := newCategoryStore(t, api, WithCollectionKey[testCategory]("categories"))
	require.True(t, store.Create(context.Background(), map[string]interface{}{"name": "Shoes", "slug": "shoes"}))
	id := store.Records()[0].ID
	api.mu.Lock()
	api.inUse[id] = true
	api.mu.Unlock()

	ok := store.Remove(context.Background(), id)

	assert.False(t, ok)
	assert.Equal(t, "Category is used by products", store.Err())
	assert.Len(t, store.Records(), 1)
}

func TestTransportFailureRecordsUnknownError(t *testing.T) {
	client := NewClient("http://127.0.0.1:0") // unroutable
	store := NewStore[testCategory](client, "v1/admin/categories")

	store.Reload(context.Background())

	assert.False(t, store.Loaded())
	assert.Equal(t, ErrUnknown, store.Err())
}

func TestMalformedErrorBodyFallsBack(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("<html>gateway error</html>"))
	}))
	defer srv.Close()
	store := NewStore[testCategory](NewClient(srv.URL), "v1/admin/categories")

	store.Reload(context.Background())

	assert.Equal(t, ErrUnknown, store.Err())
}

func TestLastReloadWins(t *testing.T) {
	// Two servers standing in for two interleaved responses: whichever
	// reload is applied last determines the visible collection.
	api := newFakeCategoryAPI()
	api.records = []testCategory{{ID: "cat-old", Name: "Old", Slug: "old"}}
	store := newCategoryStore(t, api, WithCollectionKey[testCategory]("categories"))

	store.Reload(context.Background())
	api.mu.Lock()
	api.records = []testCategory{{ID: "cat-new", Name: "New", Slug: "new"}}
	api.mu.Unlock()
	store.Reload(context.Background())

	require.Len(t, store.Records(), 1)
	assert.Equal(t, "cat-new", store.Records()[0].ID)
}

func TestVariantStoreRoutes(t *testing.T) {
	var gotPaths []string
	var mu sync.Mutex
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		gotPaths = append(gotPaths, r.Method+" "+r.URL.Path)
		mu.Unlock()
		if r.Method == http.MethodGet {
			writeJSON(w, http.StatusOK, map[string]interface{}{"variants": []testCategory{}})
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"message": "ok"})
	}))
	defer srv.Close()

	store := NewVariantStore[testCategory](NewClient(srv.URL), "prod-1")
	store.Update(context.Background(), "var-9", map[string]interface{}{"price": 10})
	store.Remove(context.Background(), "var-9")

	mu.Lock()
	defer mu.Unlock()
	assert.Contains(t, gotPaths, "PUT /v1/admin/variants/var-9")
	assert.Contains(t, gotPaths, "DELETE /v1/admin/variants/var-9")
	assert.Contains(t, gotPaths, "GET /v1/admin/products/prod-1/variants")
}

func TestCollectionFieldDeclaredKey(t *testing.T) {
	body := []byte(`{"total": 2, "categories": [{"id":"a"}], "extras": [1,2]}`)
	raw, err := collectionField(body, "categories")
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":"a"}]`, string(raw))
}

func TestCollectionFieldAutoDetectTakesFirstArray(t *testing.T) {
	body := []byte(`{"meta": {"page": 1}, "brands": [{"id":"b"}], "tags": ["x"]}`)
	raw, err := collectionField(body, "")
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":"b"}]`, string(raw))
}

func TestCollectionFieldMissing(t *testing.T) {
	_, err := collectionField([]byte(`{"message": "ok"}`), "categories")
	assert.Error(t, err)

	_, err = collectionField([]byte(`[1,2,3]`), "")
	assert.Error(t, err)
}

func TestErrorMessageParsing(t *testing.T) {
	assert.Equal(t, "Ce slug existe déjà", errorMessage([]byte(`{"error":"Ce slug existe déjà"}`)))
	assert.Equal(t, ErrUnknown, errorMessage([]byte(`{}`)))
	assert.Equal(t, ErrUnknown, errorMessage([]byte(`not json`)))
}

func TestClientJoinsPaths(t *testing.T) {
	var gotPath, gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		writeJSON(w, http.StatusOK, map[string]interface{}{"items": []int{}})
	}))
	defer srv.Close()

	client := NewClient(srv.URL+"/", WithToken("abc"))
	resp, err := client.do(context.Background(), http.MethodGet, "/v1/items", nil)
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, "/v1/items", gotPath)
	assert.True(t, strings.HasPrefix(gotAuth, "Bearer "))
}
