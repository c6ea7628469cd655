package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"order_kiosk/internal/apperrors"
)

// respondError maps the error taxonomy onto HTTP statuses. Validation
// failures carry the full field list so the kiosk can show every
// correction at once.
func respondError(c *gin.Context, err error) {
	var verr *apperrors.ValidationError
	if errors.As(err, &verr) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":  "validation failed",
			"fields": verr.Fields,
		})
		return
	}

	var notFound *apperrors.NotFoundError
	if errors.As(err, &notFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": notFound.Error()})
		return
	}

	var conflict *apperrors.ConflictError
	if errors.As(err, &conflict) {
		c.JSON(http.StatusConflict, gin.H{"error": "order could not be committed, please retry"})
		return
	}

	log.Printf("Internal error: %v", err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
}
