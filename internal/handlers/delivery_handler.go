package handlers

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jeffleon2/draftea-checkout-gateway/internal/models"
	"github.com/sirupsen/logrus"
)

type WebhookDeliverer interface {
	Deliver(ctx context.Context, eventID string) error
}

// DeliveryHandler turns Kafka delivery requests into webhook delivery attempts.
type DeliveryHandler struct {
	Service WebhookDeliverer
}

func NewDeliveryHandler(s WebhookDeliverer) *DeliveryHandler {
	return &DeliveryHandler{Service: s}
}

func (h *DeliveryHandler) HandleEvents(ctx context.Context, topic string, value []byte) error {
	switch topic {
	case models.WebhookDeliveryTopic:
		var event models.WebhookDeliveryRequestedEvent
		if err := json.Unmarshal(value, &event); err != nil {
			logrus.Errorf("Error parsing webhook delivery event %s", err.Error())
			return fmt.Errorf("error parsing webhook delivery event %w", err)
		}
		if event.EventID == "" {
			return fmt.Errorf("webhook delivery event without event_id")
		}
		if err := h.Service.Deliver(ctx, event.EventID); err != nil {
			return fmt.Errorf("error delivering webhook %s: %w", event.EventID, err)
		}
		return nil
	default:
		logrus.Errorf("topic not allowed %s", topic)
		return fmt.Errorf("topic not allowed %s", topic)
	}
}
