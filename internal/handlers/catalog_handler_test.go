package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"furniture_store/internal/models"
	"furniture_store/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

type stubCatalogService struct {
	services.CatalogService
	products       []models.Product
	listCategoryID uint
}

func (s *stubCatalogService) ListProducts(categoryID uint, search string) ([]models.Product, error) {
	s.listCategoryID = categoryID
	return s.products, nil
}

func listProductsRequest(t *testing.T, query string) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/products"+query, nil)
	return c, w
}

func TestListProductsRejectsMalformedCategoryID(t *testing.T) {
	h := NewCatalogHandler(&stubCatalogService{}, nil)

	c, w := listProductsRequest(t, "?category_id=furniture")
	h.ListProducts(c)

	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListProductsFiltersByCategory(t *testing.T) {
	catalog := &stubCatalogService{products: []models.Product{{ID: 1, Name: "Oak Dining Table"}}}
	h := NewCatalogHandler(catalog, nil)

	c, w := listProductsRequest(t, "?category_id=3")
	h.ListProducts(c)

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, uint(3), catalog.listCategoryID)

	var got []models.Product
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Len(t, got, 1)
}
