package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"furniture_store/internal/middleware"
	"furniture_store/internal/models"
	"furniture_store/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

type stubOrderService struct {
	services.OrderService
	checkoutOrder *models.Order
}

func (s *stubOrderService) Checkout(userID uint, items []services.CheckoutItem, paymentMethod string) (*models.Order, error) {
	return s.checkoutOrder, nil
}

type stubCartService struct {
	services.CartService
	items    []services.CheckoutItem
	clearErr error
}

func (s *stubCartService) CheckoutItems(userID uint) ([]services.CheckoutItem, error) {
	return s.items, nil
}

func (s *stubCartService) Clear(userID uint) error {
	return s.clearErr
}

func checkoutRequest(t *testing.T, userID uint) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Set(middleware.ContextUserID, userID)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/checkout", strings.NewReader(`{"payment_method":"cod"}`))
	c.Request.Header.Set("Content-Type", "application/json")
	return c, w
}

func TestCheckoutReturnsOrder(t *testing.T) {
	order := &models.Order{ID: 1, OrderCode: "ORD-AAAA1111", UserID: 7, Status: string(models.OrderPending)}
	h := NewOrderHandler(
		&stubOrderService{checkoutOrder: order},
		&stubCartService{items: []services.CheckoutItem{{ProductID: 1, Quantity: 2}}},
	)

	c, w := checkoutRequest(t, 7)
	h.Checkout(c)

	require.Equal(t, http.StatusCreated, w.Code)

	var got models.Order
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Equal(t, "ORD-AAAA1111", got.OrderCode)
}

func TestCheckoutCartClearFailureStillReturnsOrder(t *testing.T) {
	order := &models.Order{ID: 1, OrderCode: "ORD-AAAA1111", UserID: 7, Status: string(models.OrderPending)}
	h := NewOrderHandler(
		&stubOrderService{checkoutOrder: order},
		&stubCartService{
			items:    []services.CheckoutItem{{ProductID: 1, Quantity: 2}},
			clearErr: errors.New("redis down"),
		},
	)

	c, w := checkoutRequest(t, 7)
	h.Checkout(c)

	// The order is already placed, so the client must still see it
	require.Equal(t, http.StatusCreated, w.Code)

	var got struct {
		Order   models.Order `json:"order"`
		Warning string       `json:"warning"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Equal(t, "ORD-AAAA1111", got.Order.OrderCode)
	require.NotEmpty(t, got.Warning)
}
