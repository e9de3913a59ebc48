package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/stenobot-io/stenobot/pkg/credentials"
	"github.com/stenobot-io/stenobot/pkg/services"
)

// respondServiceError maps service-layer errors to HTTP error responses.
// Every message quotes API codes only; numeric state codes never appear.
func respondServiceError(c *gin.Context, err error) {
	var validErr *services.ValidationError
	if errors.As(err, &validErr) {
		c.JSON(http.StatusBadRequest, gin.H{"error": validErr.Error()})
		return
	}
	var comboErr *services.InvalidEventCombinationError
	if errors.As(err, &comboErr) {
		c.JSON(http.StatusBadRequest, gin.H{"error": comboErr.Error()})
		return
	}
	var transErr *services.IllegalTransitionError
	if errors.As(err, &transErr) {
		c.JSON(http.StatusConflict, gin.H{"error": transErr.Error()})
		return
	}
	if errors.Is(err, services.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "resource not found"})
		return
	}
	if errors.Is(err, services.ErrAlreadyExists) {
		c.JSON(http.StatusConflict, gin.H{"error": "resource already exists"})
		return
	}
	if errors.Is(err, services.ErrOptimisticConflict) {
		c.JSON(http.StatusConflict, gin.H{"error": "concurrent modification, retry the request"})
		return
	}
	if errors.Is(err, services.ErrUndefinedEventKind) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown event kind"})
		return
	}
	if errors.Is(err, credentials.ErrDecryptionFailed) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "credential could not be decrypted"})
		return
	}

	// Unexpected error: log the detail, return a generic message.
	slog.Error("unexpected service error", "error", err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
}
