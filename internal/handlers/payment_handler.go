package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jeffleon2/draftea-checkout-gateway/internal/models"
	"github.com/jeffleon2/draftea-checkout-gateway/internal/models/dto"
)

type PaymentService interface {
	ListPayments(ctx context.Context, merchantID string, query *dto.ListPaymentsQuery) (*dto.PaymentList, error)
	GetPayment(ctx context.Context, merchantID, id string) (*models.Payment, error)
}

type PaymentHandler struct {
	Service PaymentService
}

func NewPaymentHandler(s PaymentService) *PaymentHandler {
	return &PaymentHandler{Service: s}
}

// GET /api/payments
func (h *PaymentHandler) ListPayments(c *gin.Context) {
	var query dto.ListPaymentsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		abortWithError(c, models.NewValidationError("invalid_query", "Invalid query parameters"))
		return
	}

	merchant := CurrentMerchant(c)
	list, err := h.Service.ListPayments(c.Request.Context(), merchant.ID, &query)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, list)
}

// GET /api/payments/:id
func (h *PaymentHandler) GetPayment(c *gin.Context) {
	merchant := CurrentMerchant(c)
	payment, err := h.Service.GetPayment(c.Request.Context(), merchant.ID, c.Param("id"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, payment)
}
