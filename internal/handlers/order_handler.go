package handlers

import (
	"net/http"

	"furniture_store/internal/middleware"
	"furniture_store/internal/services"

	"github.com/gin-gonic/gin"
)

// OrderHandler is the customer-facing order surface: checkout, tracking, the
// owner's cancel, and reorder.
type OrderHandler struct {
	orderService services.OrderService
	cartService  services.CartService
}

func NewOrderHandler(orderService services.OrderService, cartService services.CartService) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
		cartService:  cartService,
	}
}

func (h *OrderHandler) Checkout(c *gin.Context) {
	var req struct {
		PaymentMethod string `json:"payment_method" binding:"required,oneof=gcash cod"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err)
		return
	}

	userID := middleware.UserID(c)
	items, err := h.cartService.CheckoutItems(userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	order, err := h.orderService.Checkout(userID, items, req.PaymentMethod)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	if err := h.cartService.Clear(userID); err != nil {
		// The order is already placed; a stale cart is recoverable, so the
		// client still gets the order back.
		c.JSON(http.StatusCreated, gin.H{
			"order":   order,
			"warning": "Order placed but cart could not be cleared",
		})
		return
	}

	c.JSON(http.StatusCreated, order)
}

func (h *OrderHandler) ListMyOrders(c *gin.Context) {
	orders, err := h.orderService.GetOrdersByUser(middleware.UserID(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

func (h *OrderHandler) GetMyOrder(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid order id")
		return
	}

	order, err := h.orderService.GetOrderByID(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if order.UserID != middleware.UserID(c) {
		respondError(c, http.StatusForbidden, services.ErrNotOrderOwner.Error())
		return
	}
	c.JSON(http.StatusOK, order)
}

func (h *OrderHandler) CancelOrder(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid order id")
		return
	}

	order, err := h.orderService.CancelByOwner(id, middleware.UserID(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

func (h *OrderHandler) Reorder(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid order id")
		return
	}

	order, err := h.orderService.Reorder(id, middleware.UserID(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, order)
}
