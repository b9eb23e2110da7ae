package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/jeffleon2/draftea-checkout-gateway/internal/models"
	"github.com/jeffleon2/draftea-checkout-gateway/internal/models/dto"
)

type SessionService interface {
	CreateSession(ctx context.Context, merchantID string, req *dto.CreateSessionRequest) (*models.PaymentSession, error)
	GetMerchantSession(ctx context.Context, merchantID, id string) (*models.PaymentSession, error)
}

type SessionHandler struct {
	Service SessionService
	// HostedCheckoutURL is the checkout page base used when the request has no Origin.
	HostedCheckoutURL string
}

func NewSessionHandler(s SessionService, hostedCheckoutURL string) *SessionHandler {
	return &SessionHandler{Service: s, HostedCheckoutURL: hostedCheckoutURL}
}

// POST /api/checkout/sessions
func (h *SessionHandler) CreateSession(c *gin.Context) {
	var req dto.CreateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, bindError(err))
		return
	}

	merchant := CurrentMerchant(c)
	session, err := h.Service.CreateSession(c.Request.Context(), merchant.ID, &req)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewCreateSessionResponse(session, h.hostedURL(c, session.ID)))
}

// GET /api/checkout/sessions/:id
func (h *SessionHandler) GetSession(c *gin.Context) {
	merchant := CurrentMerchant(c)
	session, err := h.Service.GetMerchantSession(c.Request.Context(), merchant.ID, c.Param("id"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

func (h *SessionHandler) hostedURL(c *gin.Context, sessionID string) string {
	base := strings.TrimSpace(c.GetHeader("Origin"))
	if base == "" || base == "null" {
		base = h.HostedCheckoutURL
	}
	return strings.TrimRight(base, "/") + "/checkout/" + sessionID
}

// bindError reports a wrongly typed amount (fractional, string) as an invalid
// amount; anything else is a malformed body.
func bindError(err error) error {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field == "amount" {
		return models.ErrInvalidAmount
	}
	return models.NewValidationError("invalid_request", "Invalid request body")
}
