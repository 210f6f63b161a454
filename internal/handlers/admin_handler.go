package handlers

import (
	"net/http"
	"strconv"

	"furniture_store/internal/models"
	"furniture_store/internal/orderview"
	"furniture_store/internal/services"

	"github.com/gin-gonic/gin"
)

// AdminHandler is the back-office surface: catalog management, user
// management, and the order lifecycle controls (transitions, lock, undo).
type AdminHandler struct {
	catalogService services.CatalogService
	userService    services.UserService
	orderService   services.OrderService
}

func NewAdminHandler(
	catalogService services.CatalogService,
	userService services.UserService,
	orderService services.OrderService,
) *AdminHandler {
	return &AdminHandler{
		catalogService: catalogService,
		userService:    userService,
		orderService:   orderService,
	}
}

// Product management

func (h *AdminHandler) CreateProduct(c *gin.Context) {
	var req struct {
		Name        string  `json:"name" binding:"required"`
		Description string  `json:"description"`
		Price       float64 `json:"price" binding:"required,min=0"`
		Stock       int     `json:"stock" binding:"min=0"`
		CategoryID  uint    `json:"category_id" binding:"required"`
		ImageURL    string  `json:"image_url"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err)
		return
	}

	product := &models.Product{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Stock:       req.Stock,
		CategoryID:  req.CategoryID,
		ImageURL:    req.ImageURL,
		IsActive:    true,
	}
	if err := h.catalogService.CreateProduct(product); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, product)
}

func (h *AdminHandler) UpdateProduct(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid product id")
		return
	}

	product, err := h.catalogService.GetProductByID(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	var req struct {
		Name        string  `json:"name"`
		Description string  `json:"description"`
		Price       float64 `json:"price" binding:"min=0"`
		Stock       *int    `json:"stock" binding:"omitempty,min=0"`
		CategoryID  uint    `json:"category_id"`
		ImageURL    string  `json:"image_url"`
		IsActive    *bool   `json:"is_active"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err)
		return
	}

	if req.Name != "" {
		product.Name = req.Name
	}
	if req.Description != "" {
		product.Description = req.Description
	}
	if req.Price != 0 {
		product.Price = req.Price
	}
	if req.Stock != nil {
		product.Stock = *req.Stock
	}
	if req.CategoryID != 0 {
		product.CategoryID = req.CategoryID
	}
	if req.ImageURL != "" {
		product.ImageURL = req.ImageURL
	}
	if req.IsActive != nil {
		product.IsActive = *req.IsActive
	}

	if err := h.catalogService.UpdateProduct(product); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, product)
}

func (h *AdminHandler) DeleteProduct(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid product id")
		return
	}
	if err := h.catalogService.DeleteProduct(id); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// Category management

func (h *AdminHandler) CreateCategory(c *gin.Context) {
	var req struct {
		Name        string `json:"name" binding:"required"`
		Description string `json:"description"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err)
		return
	}

	category := &models.Category{Name: req.Name, Description: req.Description}
	if err := h.catalogService.CreateCategory(category); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, category)
}

func (h *AdminHandler) UpdateCategory(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid category id")
		return
	}

	category, err := h.catalogService.GetCategoryByID(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	var req struct {
		Name        string `json:"name"`
		Description string `json:"description"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err)
		return
	}

	if req.Name != "" {
		category.Name = req.Name
	}
	if req.Description != "" {
		category.Description = req.Description
	}

	if err := h.catalogService.UpdateCategory(category); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, category)
}

func (h *AdminHandler) DeleteCategory(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid category id")
		return
	}
	if err := h.catalogService.DeleteCategory(id); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// User management

func (h *AdminHandler) ListUsers(c *gin.Context) {
	users, err := h.userService.GetAllUsers()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

func (h *AdminHandler) UpdateUser(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid user id")
		return
	}

	var req struct {
		Role     string `json:"role" binding:"omitempty,oneof=admin customer"`
		IsActive *bool  `json:"is_active"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err)
		return
	}

	var user *models.User
	if req.Role != "" {
		user, err = h.userService.SetRole(id, models.UserRole(req.Role))
		if err != nil {
			respondServiceError(c, err)
			return
		}
	}
	if req.IsActive != nil {
		user, err = h.userService.SetActive(id, *req.IsActive)
		if err != nil {
			respondServiceError(c, err)
			return
		}
	}
	if user == nil {
		user, err = h.userService.GetUserByID(id)
		if err != nil {
			respondServiceError(c, err)
			return
		}
	}
	c.JSON(http.StatusOK, user)
}

func (h *AdminHandler) DeleteUser(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid user id")
		return
	}
	if err := h.userService.DeleteUser(id); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// Order management

// ListOrders builds the admin orders view: the full order list reduced
// through the view state with the requested filter and sort applied.
func (h *AdminHandler) ListOrders(c *gin.Context) {
	orders, err := h.orderService.GetAllOrders()
	if err != nil {
		respondServiceError(c, err)
		return
	}

	state := orderview.Reduce(orderview.NewState(), orderview.OrdersLoaded{Orders: orders})

	if status := c.Query("status"); status != "" {
		if !models.ValidStatus(models.OrderStatus(status)) {
			respondError(c, http.StatusBadRequest, "Unknown order status")
			return
		}
		state = orderview.Reduce(state, orderview.FilterChanged{Status: models.OrderStatus(status)})
	}
	if sortField := c.Query("sort"); sortField != "" {
		ascending := c.Query("dir") == "asc"
		state = orderview.Reduce(state, orderview.SortChanged{Field: sortField, Ascending: ascending})
	}

	c.JSON(http.StatusOK, state.Visible())
}

func (h *AdminHandler) GetOrder(c *gin.Context) {
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
	c.JSON(http.StatusOK, gin.H{
		"order":   order,
		"actions": models.ActionsFor(models.OrderStatus(order.Status)),
	})
}

func (h *AdminHandler) ApplyOrderAction(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid order id")
		return
	}

	var req struct {
		Action string `json:"action" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err)
		return
	}

	order, err := h.orderService.ApplyTransition(id, models.OrderAction(req.Action))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

func (h *AdminHandler) ToggleOrderLock(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid order id")
		return
	}

	order, err := h.orderService.ToggleLock(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

func (h *AdminHandler) OrderHistory(c *gin.Context) {
	c.JSON(http.StatusOK, h.orderService.History())
}

func (h *AdminHandler) UndoOrderAction(c *gin.Context) {
	entryID, err := strconv.ParseInt(c.Param("entry_id"), 10, 64)
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid history entry id")
		return
	}

	order, err := h.orderService.Undo(entryID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

func (h *AdminHandler) DeleteOrder(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid order id")
		return
	}
	if err := h.orderService.DeleteOrder(id); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
