package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type SessionStatus string

const (
	SessionRequiresPaymentMethod SessionStatus = "requires_payment_method"
	SessionProcessing            SessionStatus = "processing"
	SessionSucceeded             SessionStatus = "succeeded"
	SessionFailed                SessionStatus = "failed"
)

func (s SessionStatus) IsTerminal() bool {
	return s == SessionSucceeded || s == SessionFailed
}

// PaymentSession is a time-boxed intent to collect one payment of a fixed amount.
// Only the checkout processor changes Status after creation.
type PaymentSession struct {
	ID          string            `gorm:"primaryKey" json:"id"`
	MerchantID  string            `gorm:"index;not null" json:"merchant_id"`
	Amount      int64             `gorm:"not null" json:"amount"`
	Currency    string            `gorm:"size:3;not null;default:USD" json:"currency"`
	Description string            `json:"description"`
	Metadata    datatypes.JSONMap `json:"metadata"`
	ReturnURL   string            `json:"return_url,omitempty"`
	CancelURL   string            `json:"cancel_url,omitempty"`
	WidgetToken string            `json:"-"`
	Status      SessionStatus     `gorm:"index;not null" json:"status"`
	ExpiresAt   time.Time         `gorm:"not null" json:"expires_at"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}

func (s *PaymentSession) BeforeCreate(tx *gorm.DB) (err error) {
	if s.ID == "" {
		s.ID = uuid.New().String()
	}
	return
}

// ExpiredAt reports whether the session can no longer be paid at the given instant.
func (s *PaymentSession) ExpiredAt(now time.Time) bool {
	return now.After(s.ExpiresAt)
}
