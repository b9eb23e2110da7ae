package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jeffleon2/draftea-checkout-gateway/internal/models"
	"github.com/sirupsen/logrus"
)

// StatusFor maps a gateway error to its HTTP status.
func StatusFor(err *models.GatewayError) int {
	switch err.Type {
	case models.ErrorTypeAuthentication:
		return http.StatusUnauthorized
	case models.ErrorTypePermission:
		return http.StatusForbidden
	case models.ErrorTypeValidation:
		return http.StatusBadRequest
	case models.ErrorTypeNotFound:
		return http.StatusNotFound
	case models.ErrorTypeSessionState:
		switch {
		case errors.Is(err, models.ErrSessionNotFound):
			return http.StatusNotFound
		case errors.Is(err, models.ErrSessionExpired):
			return http.StatusGone
		default:
			return http.StatusConflict
		}
	default:
		return http.StatusInternalServerError
	}
}

// abortWithError writes the {error:{type, code, message}} envelope.
func abortWithError(c *gin.Context, err error) {
	gerr := models.AsGatewayError(err)
	status := StatusFor(gerr)
	if status >= http.StatusInternalServerError {
		logrus.WithFields(logrus.Fields{
			"path": c.FullPath(),
			"code": gerr.Code,
		}).Errorf("Request failed: %v", err)
	}
	c.AbortWithStatusJSON(status, gin.H{"error": gerr})
}
