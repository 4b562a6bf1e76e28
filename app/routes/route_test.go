package routes

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Rakhulsr/go-warehouse/app/configs"
	"github.com/Rakhulsr/go-warehouse/app/models/migrations"
	"github.com/Rakhulsr/go-warehouse/app/services"
	"github.com/glebarez/sqlite"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func newTestRouter(t *testing.T) *mux.Router {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), configs.GormConfig())
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })
	require.NoError(t, migrations.AutoMigrate(db))

	logger := zap.NewNop()
	svc, err := services.NewServices(db, "sqlite", logger)
	require.NoError(t, err)
	return NewRouter(svc, configs.ENV{DefaultPageLen: 20}, logger)
}

func do(t *testing.T, router http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeID(t *testing.T, rec *httptest.ResponseRecorder) uint {
	t.Helper()
	var payload struct {
		ID uint `json:"id"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	require.NotZero(t, payload.ID)
	return payload.ID
}

func TestMappingRoutes(t *testing.T) {
	router := newTestRouter(t)

	rec := do(t, router, http.MethodPost, "/admin/categories", map[string]any{"name": "Men"})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	men := decodeID(t, rec)

	rec = do(t, router, http.MethodPost, "/admin/subcategories", map[string]any{"name": "Shirts"})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	shirts := decodeID(t, rec)

	rec = do(t, router, http.MethodPost, "/admin/mappings", map[string]any{"category_id": men, "subcategory_id": shirts})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	mappingID := decodeID(t, rec)

	rec = do(t, router, http.MethodPost, "/admin/mappings", map[string]any{"category_id": men, "subcategory_id": shirts})
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = do(t, router, http.MethodPost, "/admin/mappings", map[string]any{"category_id": men, "subcategory_id": 999})
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(t, router, http.MethodPost, "/admin/mappings", map[string]any{"category_id": men})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "subcategory_id")

	rec = do(t, router, http.MethodGet, fmt.Sprintf("/admin/categories/%d/subcategories", men), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var subs []struct {
		ID   uint   `json:"id"`
		Name string `json:"name"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &subs))
	require.Len(t, subs, 1)
	assert.Equal(t, "Shirts", subs[0].Name)

	rec = do(t, router, http.MethodGet, fmt.Sprintf("/admin/subcategories/%d/categories", shirts), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"name":"Men"`)

	rec = do(t, router, http.MethodGet, "/admin/categories/999/subcategories", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(t, router, http.MethodDelete, fmt.Sprintf("/admin/mappings/%d", mappingID), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"removed":true}`, rec.Body.String())

	rec = do(t, router, http.MethodDelete, fmt.Sprintf("/admin/mappings/%d", mappingID), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"removed":false}`, rec.Body.String())

	rec = do(t, router, http.MethodDelete, "/admin/mappings/abc", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSizeTypeRoutes(t *testing.T) {
	router := newTestRouter(t)

	category := decodeID(t, do(t, router, http.MethodPost, "/admin/categories", map[string]any{"name": "Apparel"}))
	gender := decodeID(t, do(t, router, http.MethodPost, "/admin/genders", map[string]any{"name": "Male"}))
	clothing := decodeID(t, do(t, router, http.MethodPost, "/admin/clothing-sizes", map[string]any{"size_value": "M", "gender_id": gender}))
	shoe := decodeID(t, do(t, router, http.MethodPost, "/admin/shoe-sizes", map[string]any{
		"size_value":   "42",
		"gender_id":    gender,
		"measurements": map[string]string{"length_cm": "26.5"},
	}))

	rec := do(t, router, http.MethodPost, "/admin/size-types", map[string]any{"category_id": category})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	rec = do(t, router, http.MethodPost, "/admin/size-types", map[string]any{
		"category_id": category, "clothing_size_id": clothing, "shoe_size_id": shoe,
	})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	rec = do(t, router, http.MethodPost, "/admin/size-types", map[string]any{"category_id": category, "clothing_size_id": 999})
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(t, router, http.MethodPost, "/admin/size-types", map[string]any{"category_id": category, "clothing_size_id": clothing})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var created struct {
		SizeType struct {
			ID uint `json:"id"`
		} `json:"size_type"`
		Resolved struct {
			SizeValue *string `json:"size_value"`
			Kind      *string `json:"kind"`
			Gender    *struct {
				Name string `json:"name"`
			} `json:"gender"`
		} `json:"resolved"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	require.NotNil(t, created.Resolved.SizeValue)
	assert.Equal(t, "M", *created.Resolved.SizeValue)
	assert.Equal(t, "clothing", *created.Resolved.Kind)
	assert.Equal(t, "Male", created.Resolved.Gender.Name)

	path := fmt.Sprintf("/admin/size-types/%d", created.SizeType.ID)
	rec = do(t, router, http.MethodPut, path, map[string]any{"category_id": category, "shoe_size_id": shoe})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = do(t, router, http.MethodGet, path, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"kind":"shoes"`)
	assert.Contains(t, rec.Body.String(), `"clothing_size_id":null`)

	rec = do(t, router, http.MethodPut, path, map[string]any{"category_id": category})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	rec = do(t, router, http.MethodGet, "/admin/size-types/audit", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestCatalogAndStorageRoutes(t *testing.T) {
	router := newTestRouter(t)

	men := decodeID(t, do(t, router, http.MethodPost, "/admin/categories", map[string]any{"name": "Men"}))
	shirts := decodeID(t, do(t, router, http.MethodPost, "/admin/subcategories", map[string]any{"name": "Shirts"}))

	product := map[string]any{"name": "Oxford Shirt", "category_id": men, "subcategory_id": shirts}
	rec := do(t, router, http.MethodPost, "/admin/products", product)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	do(t, router, http.MethodPost, "/admin/mappings", map[string]any{"category_id": men, "subcategory_id": shirts})
	rec = do(t, router, http.MethodPost, "/admin/products", product)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	productID := decodeID(t, rec)

	rec = do(t, router, http.MethodPost, "/admin/variants", map[string]any{"product_id": productID, "sku": "OX-M", "price": "150000"})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Contains(t, rec.Body.String(), `"price_display":"Rp 150.000"`)
	variantID := decodeID(t, rec)

	rec = do(t, router, http.MethodPost, "/admin/variants", map[string]any{"product_id": productID, "sku": "OX-M", "price": "150000"})
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = do(t, router, http.MethodGet, "/admin/products?q=oxford", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"total":1`)

	zone := decodeID(t, do(t, router, http.MethodPost, "/admin/zones", map[string]any{"code": "A", "name": "Apparel"}))
	rack := decodeID(t, do(t, router, http.MethodPost, "/admin/racks", map[string]any{"zone_id": zone, "code": "R01"}))
	rec = do(t, router, http.MethodPost, "/admin/locations", map[string]any{"rack_id": rack, "bin": "01"})
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"code":"A-R01-01"`)
	location := decodeID(t, rec)

	rec = do(t, router, http.MethodPost, "/admin/stock-movements", map[string]any{
		"variant_id": variantID, "location_id": location, "movement_type": "in", "quantity": 0,
	})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	rec = do(t, router, http.MethodPost, "/admin/stock-movements", map[string]any{
		"variant_id": variantID, "location_id": location, "movement_type": "in", "quantity": 5,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = do(t, router, http.MethodGet, fmt.Sprintf("/admin/variants/%d/stock-movements", variantID), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"total":1`)

	rec = do(t, router, http.MethodGet, "/admin/dashboard", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"total_categories":1,"total_subcategories":1,"total_mappings":1,"total_products":1,"invalid_size_types":0}`, rec.Body.String())
}

func TestDashboardCountsActiveMappings(t *testing.T) {
	router := newTestRouter(t)

	men := decodeID(t, do(t, router, http.MethodPost, "/admin/categories", map[string]any{"name": "Men"}))
	women := decodeID(t, do(t, router, http.MethodPost, "/admin/categories", map[string]any{"name": "Women"}))
	shirts := decodeID(t, do(t, router, http.MethodPost, "/admin/subcategories", map[string]any{"name": "Shirts"}))

	do(t, router, http.MethodPost, "/admin/mappings", map[string]any{"category_id": men, "subcategory_id": shirts})
	mappingID := decodeID(t, do(t, router, http.MethodPost, "/admin/mappings", map[string]any{"category_id": women, "subcategory_id": shirts}))

	rec := do(t, router, http.MethodPatch, fmt.Sprintf("/admin/mappings/%d", mappingID), map[string]any{"status": "Unavailable"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = do(t, router, http.MethodGet, "/admin/dashboard", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"total_categories":2,"total_subcategories":1,"total_mappings":1,"total_products":0,"invalid_size_types":0}`, rec.Body.String())
}

func TestListProductsCapsPageSize(t *testing.T) {
	router := newTestRouter(t)

	rec := do(t, router, http.MethodGet, "/admin/products?page_size=1000000", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"page_size":100`)

	rec = do(t, router, http.MethodGet, "/admin/products?page_size=5", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"page_size":5`)
}
