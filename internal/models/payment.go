package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PaymentStatus string
type PaymentMethod string
type FailureReason string

const (
	PaymentSucceeded PaymentStatus = "succeeded"
	PaymentFailed    PaymentStatus = "failed"

	MethodCard PaymentMethod = "card"
	MethodBank PaymentMethod = "bank"

	ReasonGenericDecline       FailureReason = "generic_decline"
	ReasonInsufficientFunds    FailureReason = "insufficient_funds"
	ReasonInvalidCardNumber    FailureReason = "invalid_card_number"
	ReasonInvalidRoutingNumber FailureReason = "invalid_routing_number"

	FraudReasonHighValue = "high_value_transaction"
)

// Payment is the immutable record of one processed checkout attempt.
// FeeAmount and NetAmount stay zero unless Status is succeeded.
type Payment struct {
	ID            string         `gorm:"primaryKey" json:"id"`
	SessionID     string         `gorm:"uniqueIndex;not null" json:"session_id"`
	MerchantID    string         `gorm:"index;not null" json:"merchant_id"`
	Amount        int64          `gorm:"not null" json:"amount"`
	Currency      string         `gorm:"size:3;not null" json:"currency"`
	Method        PaymentMethod  `gorm:"not null" json:"method"`
	MaskedDetails string         `gorm:"not null" json:"masked_details"`
	Status        PaymentStatus  `gorm:"index;not null" json:"status"`
	FailureReason *FailureReason `json:"failure_reason"`
	FeeAmount     int64          `gorm:"not null;default:0" json:"fee_amount"`
	NetAmount     int64          `gorm:"not null;default:0" json:"net_amount"`
	CreatedAt     time.Time      `gorm:"index" json:"created_at"`
}

func (p *Payment) BeforeCreate(tx *gorm.DB) (err error) {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	return
}

func (p *Payment) Succeeded() bool {
	return p.Status == PaymentSucceeded
}

func (m PaymentMethod) IsValid() bool {
	switch m {
	case MethodCard, MethodBank:
		return true
	default:
		return false
	}
}

func (s PaymentStatus) IsValid() bool {
	switch s {
	case PaymentSucceeded, PaymentFailed:
		return true
	default:
		return false
	}
}

type FraudFlag struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	PaymentID string    `gorm:"index;not null" json:"payment_id"`
	Reason    string    `gorm:"not null" json:"reason"`
	Score     int       `gorm:"not null" json:"score"`
	CreatedAt time.Time `json:"created_at"`
}

func (f *FraudFlag) BeforeCreate(tx *gorm.DB) (err error) {
	if f.ID == "" {
		f.ID = uuid.New().String()
	}
	return
}
