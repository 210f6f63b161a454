package handlers

import (
	"net/http"
	"strconv"

	"furniture_store/internal/middleware"
	"furniture_store/internal/services"

	"github.com/gin-gonic/gin"
)

type CatalogHandler struct {
	catalogService services.CatalogService
	reviewService  services.ReviewService
}

func NewCatalogHandler(catalogService services.CatalogService, reviewService services.ReviewService) *CatalogHandler {
	return &CatalogHandler{
		catalogService: catalogService,
		reviewService:  reviewService,
	}
}

func (h *CatalogHandler) ListProducts(c *gin.Context) {
	var categoryID uint
	if raw := c.Query("category_id"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			respondError(c, http.StatusBadRequest, "Invalid category id")
			return
		}
		categoryID = uint(parsed)
	}
	search := c.Query("q")

	products, err := h.catalogService.ListProducts(categoryID, search)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, products)
}

func (h *CatalogHandler) GetProduct(c *gin.Context) {
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
	c.JSON(http.StatusOK, product)
}

func (h *CatalogHandler) ListCategories(c *gin.Context) {
	categories, err := h.catalogService.GetAllCategories()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, categories)
}

func (h *CatalogHandler) ListReviews(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid product id")
		return
	}

	reviews, err := h.reviewService.GetProductReviews(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, reviews)
}

func (h *CatalogHandler) AddReview(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid product id")
		return
	}

	var req struct {
		Rating  int    `json:"rating" binding:"required,min=1,max=5"`
		Comment string `json:"comment"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err)
		return
	}

	review, err := h.reviewService.AddReview(middleware.UserID(c), id, req.Rating, req.Comment)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, review)
}

func (h *CatalogHandler) DeleteReview(c *gin.Context) {
	id, err := parseIDParam(c, "review_id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid review id")
		return
	}

	if err := h.reviewService.DeleteReview(id, middleware.UserID(c), middleware.Role(c)); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

func parseIDParam(c *gin.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
