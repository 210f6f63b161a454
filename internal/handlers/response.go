package handlers

import (
	"errors"
	"net/http"

	"furniture_store/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// ErrorDetail points at the request field that failed validation.
type ErrorDetail struct {
	Path string `json:"path"`
	Info string `json:"info"`
}

func respondError(c *gin.Context, httpCode int, message string) {
	c.JSON(httpCode, gin.H{"error": message})
}

// respondValidationError returns a 400 with per-field details when the
// binding error came from the validator.
func respondValidationError(c *gin.Context, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		details := make([]ErrorDetail, 0, len(validationErrs))
		for _, fieldErr := range validationErrs {
			details = append(details, ErrorDetail{
				Path: fieldErr.Field(),
				Info: validationMessage(fieldErr),
			})
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": details})
		return
	}
	respondError(c, http.StatusBadRequest, "Invalid request format")
}

func validationMessage(fieldErr validator.FieldError) string {
	switch fieldErr.Tag() {
	case "required":
		return fieldErr.Field() + " is required"
	case "email":
		return fieldErr.Field() + " must be a valid email address"
	case "min":
		return fieldErr.Field() + " must be at least " + fieldErr.Param()
	case "max":
		return fieldErr.Field() + " must be at most " + fieldErr.Param()
	case "oneof":
		return fieldErr.Field() + " must be one of: " + fieldErr.Param()
	default:
		return fieldErr.Field() + " is invalid"
	}
}

// respondServiceError maps service sentinels onto HTTP status codes.
func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrOrderNotFound),
		errors.Is(err, services.ErrProductNotFound),
		errors.Is(err, services.ErrCategoryNotFound),
		errors.Is(err, services.ErrReviewNotFound),
		errors.Is(err, services.ErrUserNotFound),
		errors.Is(err, services.ErrHistoryEntryNotFound):
		respondError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, services.ErrOrderLocked),
		errors.Is(err, services.ErrInvalidTransition),
		errors.Is(err, services.ErrCancelNotAllowed),
		errors.Is(err, services.ErrReorderNotAllowed),
		errors.Is(err, services.ErrEmailTaken):
		respondError(c, http.StatusConflict, err.Error())
	case errors.Is(err, services.ErrNotOrderOwner),
		errors.Is(err, services.ErrNotReviewAuthor):
		respondError(c, http.StatusForbidden, err.Error())
	case errors.Is(err, services.ErrInvalidCredentials),
		errors.Is(err, services.ErrAccountDisabled):
		respondError(c, http.StatusUnauthorized, err.Error())
	case errors.Is(err, services.ErrEmptyCart),
		errors.Is(err, services.ErrProductUnavailable),
		errors.Is(err, services.ErrInsufficientStock),
		errors.Is(err, services.ErrInvalidRating),
		errors.Is(err, services.ErrInvalidQuantity):
		respondError(c, http.StatusBadRequest, err.Error())
	default:
		respondError(c, http.StatusInternalServerError, "Internal server error")
	}
}
