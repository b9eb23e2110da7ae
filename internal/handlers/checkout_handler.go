package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jeffleon2/draftea-checkout-gateway/internal/models"
	"github.com/jeffleon2/draftea-checkout-gateway/internal/models/dto"
)

type CheckoutService interface {
	Confirm(ctx context.Context, sessionID string, req *dto.ConfirmPaymentRequest) (*models.Payment, error)
}

type CheckoutHandler struct {
	Service CheckoutService
}

func NewCheckoutHandler(s CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{Service: s}
}

// POST /api/payments/:id/confirm, where :id is the session id
//
// Called by the shopper's browser, so it carries no merchant API key.
// A declined payment is still a 200; the body says why it failed.
func (h *CheckoutHandler) Confirm(c *gin.Context) {
	var req dto.ConfirmPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, models.NewValidationError("invalid_request", "Invalid request body"))
		return
	}

	payment, err := h.Service.Confirm(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, payment)
}
