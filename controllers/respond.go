package controllers

import (
	"errors"
	"net/http"

	"github.com/MehulKanani556/Dance-Fitme/services"

	"github.com/gin-gonic/gin"
)

// respondError maps service errors onto HTTP statuses. Store-level failures
// fall through as a generic 500 without leaking internals.
func respondError(c *gin.Context, err error) {
	var ve *services.ValidationError
	switch {
	case errors.As(err, &ve):
		c.JSON(http.StatusBadRequest, gin.H{"error": ve.Msg})
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, services.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": "not authorized"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "server error"})
	}
}
