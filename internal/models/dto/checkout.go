package dto

import (
	"strings"

	"github.com/jeffleon2/draftea-checkout-gateway/internal/models"
)

type CardDetails struct {
	Number   string `json:"number"`
	ExpMonth int    `json:"exp_month"`
	ExpYear  int    `json:"exp_year"`
	CVC      string `json:"cvc"`
}

type BankDetails struct {
	Routing string `json:"routing"`
	Account string `json:"account"`
}

type ConfirmPaymentRequest struct {
	Method models.PaymentMethod `json:"method"`
	Card   *CardDetails         `json:"card,omitempty"`
	Bank   *BankDetails         `json:"bank,omitempty"`
}

func (r *ConfirmPaymentRequest) Sanitize() {
	r.Method = models.PaymentMethod(strings.ToLower(strings.TrimSpace(string(r.Method))))
	if r.Card != nil {
		r.Card.Number = strings.TrimSpace(r.Card.Number)
		r.Card.CVC = strings.TrimSpace(r.Card.CVC)
	}
	if r.Bank != nil {
		r.Bank.Routing = strings.TrimSpace(r.Bank.Routing)
		r.Bank.Account = strings.TrimSpace(r.Bank.Account)
	}
}

// Validate checks that the details for the chosen method are filled in.
// Whether they describe a payable instrument is the simulator's call.
func (r *ConfirmPaymentRequest) Validate() error {
	switch r.Method {
	case models.MethodCard:
		if r.Card == nil || r.Card.Number == "" || r.Card.CVC == "" || r.Card.ExpMonth == 0 || r.Card.ExpYear == 0 {
			return models.NewValidationError("missing_card_details", "Please fill in all card details")
		}
		if r.Card.ExpMonth < 1 || r.Card.ExpMonth > 12 {
			return models.NewValidationError("invalid_expiry_month", "Card expiry month must be between 1 and 12")
		}
	case models.MethodBank:
		if r.Bank == nil || r.Bank.Routing == "" || r.Bank.Account == "" {
			return models.NewValidationError("missing_bank_details", "Please fill in all bank details")
		}
	default:
		return models.NewValidationError("invalid_payment_method", "Payment method must be card or bank")
	}
	return nil
}
