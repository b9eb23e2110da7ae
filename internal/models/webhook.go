package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type WebhookEventType string
type DeliveryStatus string

const (
	EventPaymentSucceeded WebhookEventType = "payment.succeeded"
	EventPaymentFailed    WebhookEventType = "payment.failed"

	DeliveryPending   DeliveryStatus = "pending"
	DeliveryDelivered DeliveryStatus = "delivered"
	DeliveryFailed    DeliveryStatus = "failed"

	SignatureHeader = "X-Gateway-Signature"
	EventTypeHeader = "X-Gateway-Event"
)

func EventTypeFor(status PaymentStatus) WebhookEventType {
	if status == PaymentSucceeded {
		return EventPaymentSucceeded
	}
	return EventPaymentFailed
}

// WebhookEvent is one notification owed to one endpoint. Payload keeps the exact
// bytes that get signed and sent, so the column is json rather than jsonb.
type WebhookEvent struct {
	ID             string           `gorm:"primaryKey" json:"id"`
	MerchantID     string           `gorm:"index;not null" json:"merchant_id"`
	EndpointID     string           `gorm:"index;not null" json:"endpoint_id"`
	Type           WebhookEventType `gorm:"not null" json:"type"`
	Payload        datatypes.JSON   `gorm:"type:json;not null" json:"payload"`
	DeliveryStatus DeliveryStatus   `gorm:"index;not null;default:pending" json:"delivery_status"`
	AttemptCount   int              `gorm:"not null;default:0" json:"attempt_count"`
	LastError      string           `json:"last_error,omitempty"`
	DeliveredAt    *time.Time       `json:"delivered_at,omitempty"`
	CreatedAt      time.Time        `json:"created_at"`
	UpdatedAt      time.Time        `json:"updated_at"`
}

func (e *WebhookEvent) BeforeCreate(tx *gorm.DB) (err error) {
	if e.ID == "" {
		e.ID = NewEventID()
	}
	return
}

func NewEventID() string {
	return "evt_" + strings.ReplaceAll(uuid.New().String(), "-", "")
}

// EventEnvelope is the body POSTed to merchant endpoints.
type EventEnvelope struct {
	ID      string           `json:"id"`
	Type    WebhookEventType `json:"type"`
	Created int64            `json:"created"`
	Data    EventData        `json:"data"`
}

type EventData struct {
	Object *Payment `json:"object"`
}
