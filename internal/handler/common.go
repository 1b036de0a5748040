package handler

import (
	"errors"
	"math"
	"net/http"

	"tailspin/backend/internal/models"
	"tailspin/backend/internal/validation"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ErrorResponse represents a generic error response.
type ErrorResponse struct {
	Error string `json:"error" example:"An error message"`
}

// MessageResponse represents a generic confirmation response.
type MessageResponse struct {
	Message string `json:"message" example:"Deleted successfully"`
}

// Referential failures share the not-found contract of a missing row. The
// messages are part of the API and are surfaced verbatim.
var (
	errPublisherNotFound = errors.New("Publisher not found")
	errCategoryNotFound  = errors.New("Category not found")
)

// bindPayload decodes the request body into a generic map. A missing,
// malformed, or empty JSON object body is rejected with 400; an empty object
// is never treated as "zero fields to apply".
func bindPayload(c *gin.Context) (map[string]any, bool) {
	var data map[string]any
	if err := c.ShouldBindJSON(&data); err != nil || len(data) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No data provided"})
		return nil, false
	}
	return data, true
}

// foreignKeyID coerces a decoded JSON value into a row id. Anything that is
// not a non-negative whole number cannot match an existing row, so callers
// treat a false return the same as a failed lookup.
func foreignKeyID(value any) (uint, bool) {
	f, ok := value.(float64)
	if !ok || f < 0 || f != math.Trunc(f) {
		return 0, false
	}
	return uint(f), true
}

// checkPublisherExists verifies that value references an existing publisher.
func checkPublisherExists(tx *gorm.DB, value any) error {
	id, ok := foreignKeyID(value)
	if !ok {
		return errPublisherNotFound
	}
	var count int64
	if err := tx.Model(&models.Publisher{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return errPublisherNotFound
	}
	return nil
}

// checkCategoryExists verifies that value references an existing category.
func checkCategoryExists(tx *gorm.DB, value any) error {
	id, ok := foreignKeyID(value)
	if !ok {
		return errCategoryNotFound
	}
	var count int64
	if err := tx.Model(&models.Category{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return errCategoryNotFound
	}
	return nil
}

// respondWriteError maps a failure from a write path onto the API error
// contract: referential failures are 404, validation failures 400, anything
// else an opaque 500 so internal detail never leaks to the client.
func respondWriteError(c *gin.Context, err error) {
	var vErr *validation.Error
	switch {
	case errors.Is(err, errPublisherNotFound), errors.Is(err, errCategoryNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.As(err, &vErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": vErr.Message})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
