package dto

import (
	"strings"
	"time"

	"github.com/jeffleon2/draftea-checkout-gateway/internal/models"
)

const DefaultCurrency = "USD"

type CreateSessionRequest struct {
	Amount      int64                  `json:"amount"`
	Currency    string                 `json:"currency"`
	Description string                 `json:"description"`
	Metadata    map[string]interface{} `json:"metadata"`
	ReturnURL   string                 `json:"return_url"`
	CancelURL   string                 `json:"cancel_url"`
}

func (r *CreateSessionRequest) Sanitize() {
	r.Currency = strings.ToUpper(strings.TrimSpace(r.Currency))
	if r.Currency == "" {
		r.Currency = DefaultCurrency
	}
	r.Description = strings.TrimSpace(r.Description)
	r.ReturnURL = strings.TrimSpace(r.ReturnURL)
	r.CancelURL = strings.TrimSpace(r.CancelURL)
}

func (r *CreateSessionRequest) Validate() error {
	if r.Amount <= 0 {
		return models.ErrInvalidAmount
	}
	if len(r.Currency) != 3 {
		return models.ErrInvalidCurrency
	}
	for _, c := range r.Currency {
		if c < 'A' || c > 'Z' {
			return models.ErrInvalidCurrency
		}
	}
	return nil
}

func (r *CreateSessionRequest) ToEntity(merchantID string) *models.PaymentSession {
	metadata := r.Metadata
	if metadata == nil {
		metadata = map[string]interface{}{}
	}
	return &models.PaymentSession{
		MerchantID:  merchantID,
		Amount:      r.Amount,
		Currency:    r.Currency,
		Description: r.Description,
		Metadata:    metadata,
		ReturnURL:   r.ReturnURL,
		CancelURL:   r.CancelURL,
		Status:      models.SessionRequiresPaymentMethod,
	}
}

type CreateSessionResponse struct {
	ID          string               `json:"id"`
	HostedURL   string               `json:"hosted_url"`
	WidgetToken string               `json:"widget_token"`
	Amount      int64                `json:"amount"`
	Currency    string               `json:"currency"`
	Status      models.SessionStatus `json:"status"`
	ExpiresAt   time.Time            `json:"expires_at"`
}

func NewCreateSessionResponse(s *models.PaymentSession, hostedURL string) CreateSessionResponse {
	return CreateSessionResponse{
		ID:          s.ID,
		HostedURL:   hostedURL,
		WidgetToken: s.WidgetToken,
		Amount:      s.Amount,
		Currency:    s.Currency,
		Status:      s.Status,
		ExpiresAt:   s.ExpiresAt,
	}
}
