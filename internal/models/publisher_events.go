package models

import "time"

const (
	WebhookDeliveryTopic  = "webhooks.delivery.requested"
	PaymentCompletedTopic = "payments.completed"
	PaymentsDLQTopic      = "payments.dlq"
)

type WebhookDeliveryRequestedEvent struct {
	EventID    string    `json:"event_id"`
	MerchantID string    `json:"merchant_id"`
	EndpointID string    `json:"endpoint_id"`
	Type       string    `json:"type"`
	CreatedAt  time.Time `json:"created_at"`
}

func (e WebhookDeliveryRequestedEvent) PartitionKey() string {
	return e.EventID
}

type PaymentCompletedEvent struct {
	ID            string    `json:"id"`
	SessionID     string    `json:"session_id"`
	MerchantID    string    `json:"merchant_id"`
	Amount        int64     `json:"amount"`
	Currency      string    `json:"currency"`
	Method        string    `json:"method"`
	Status        string    `json:"status"`
	FailureReason string    `json:"failure_reason,omitempty"`
	FeeAmount     int64     `json:"fee_amount"`
	NetAmount     int64     `json:"net_amount"`
	CreatedAt     time.Time `json:"created_at"`
}

func (e PaymentCompletedEvent) PartitionKey() string {
	return e.SessionID
}

type DLQMessage struct {
	OriginalTopic string    `json:"original_topic"`
	Key           string    `json:"key"`
	Value         string    `json:"value"`
	Timestamp     time.Time `json:"timestamp"`
	Attempts      int       `json:"attempts"`
}
