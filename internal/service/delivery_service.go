package service

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/jeffleon2/draftea-checkout-gateway/internal/metrics"
	"github.com/jeffleon2/draftea-checkout-gateway/internal/models"
	"github.com/sirupsen/logrus"
)

const DefaultWebhookMaxAttempts = 5

// Sender POSTs a signed webhook body and reports the response status code.
type Sender interface {
	Send(ctx context.Context, url string, headers map[string]string, body []byte) (int, error)
}

// DeliveryService sends pending webhook events to merchant endpoints.
type DeliveryService struct {
	Events      WebhookEventRepo
	Endpoints   WebhookEndpointRepo
	Sender      Sender
	MaxAttempts int
	Now         func() time.Time
}

func NewDeliveryService(events WebhookEventRepo, endpoints WebhookEndpointRepo, sender Sender, maxAttempts int) *DeliveryService {
	if maxAttempts <= 0 {
		maxAttempts = DefaultWebhookMaxAttempts
	}
	return &DeliveryService{
		Events:      events,
		Endpoints:   endpoints,
		Sender:      sender,
		MaxAttempts: maxAttempts,
		Now:         time.Now,
	}
}

// Sign returns the signature header value for payload: "sha256=" followed by
// the hex HMAC-SHA256 of the exact bytes under the endpoint secret.
func Sign(secret string, payload []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(payload)
	return "sha256=" + hex.EncodeToString(mac.Sum(nil))
}

// Deliver makes one delivery attempt for eventID.
//
// A failed attempt leaves the event pending until MaxAttempts is reached;
// RequeuePendingWebhooks schedules the next one. Errors are returned only
// when the store could not be read or written.
func (s *DeliveryService) Deliver(ctx context.Context, eventID string) error {
	event, err := s.Events.GetByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, models.ErrRecordNotFound) {
			logrus.WithField("event_id", eventID).Warn("Webhook event not found, skipping delivery")
			return nil
		}
		return fmt.Errorf("error loading webhook event %s: %w", eventID, err)
	}

	if event.DeliveryStatus != models.DeliveryPending {
		return nil
	}

	log := logrus.WithFields(logrus.Fields{
		"event_id":    event.ID,
		"endpoint_id": event.EndpointID,
	})

	endpoint, err := s.Endpoints.GetByID(ctx, event.EndpointID)
	if err != nil && !errors.Is(err, models.ErrRecordNotFound) {
		return fmt.Errorf("error loading webhook endpoint %s: %w", event.EndpointID, err)
	}
	if endpoint == nil || !endpoint.Active {
		log.Warn("Webhook endpoint inactive or missing, giving up")
		metrics.WebhookDeliveriesTotal.WithLabelValues("abandoned").Inc()
		return s.Events.UpdateColumns(ctx, event.ID, map[string]interface{}{
			"delivery_status": models.DeliveryFailed,
			"last_error":      "endpoint inactive or missing",
		})
	}

	headers := map[string]string{
		"Content-Type":         "application/json",
		models.SignatureHeader: Sign(endpoint.Secret, event.Payload),
		models.EventTypeHeader: string(event.Type),
	}

	attempts := event.AttemptCount + 1
	status, sendErr := s.Sender.Send(ctx, endpoint.URL, headers, event.Payload)
	if sendErr == nil && status >= 200 && status < 300 {
		now := s.Now().UTC()
		if err := s.Events.UpdateColumns(ctx, event.ID, map[string]interface{}{
			"delivery_status": models.DeliveryDelivered,
			"attempt_count":   attempts,
			"last_error":      "",
			"delivered_at":    now,
		}); err != nil {
			return fmt.Errorf("error marking webhook event %s delivered: %w", event.ID, err)
		}
		if err := s.Endpoints.UpdateColumns(ctx, endpoint.ID, map[string]interface{}{"last_delivered_at": now}); err != nil {
			log.Warnf("Error updating endpoint last delivery: %s", err.Error())
		}
		metrics.WebhookDeliveriesTotal.WithLabelValues("delivered").Inc()
		log.Info("Webhook delivered")
		return nil
	}

	reason := fmt.Sprintf("endpoint responded with status %d", status)
	if sendErr != nil {
		reason = sendErr.Error()
	}

	values := map[string]interface{}{
		"attempt_count": attempts,
		"last_error":    reason,
	}
	exhausted := attempts >= s.MaxAttempts
	if exhausted {
		values["delivery_status"] = models.DeliveryFailed
	}
	if err := s.Events.UpdateColumns(ctx, event.ID, values); err != nil {
		return fmt.Errorf("error recording webhook attempt for %s: %w", event.ID, err)
	}

	if exhausted {
		metrics.WebhookDeliveriesTotal.WithLabelValues("failed").Inc()
		log.Errorf("Webhook delivery failed after %d attempts: %s", attempts, reason)
		return nil
	}

	metrics.WebhookDeliveriesTotal.WithLabelValues("retry").Inc()
	log.Warnf("Webhook attempt %d/%d failed: %s", attempts, s.MaxAttempts, reason)
	return nil
}
