package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/jeffleon2/draftea-checkout-gateway/internal/models"
	"github.com/sirupsen/logrus"
	"gorm.io/datatypes"
)

type WebhookEndpointRepo interface {
	GetByID(ctx context.Context, id string) (*models.WebhookEndpoint, error)
	List(ctx context.Context, opts models.ListOptions) (*[]models.WebhookEndpoint, error)
	UpdateColumns(ctx context.Context, id string, values map[string]interface{}) error
}

type WebhookEventRepo interface {
	Create(ctx context.Context, event *models.WebhookEvent) error
	GetByID(ctx context.Context, id string) (*models.WebhookEvent, error)
	List(ctx context.Context, opts models.ListOptions) (*[]models.WebhookEvent, error)
	UpdateColumns(ctx context.Context, id string, values map[string]interface{}) error
}

// WebhookService records one pending event per active merchant endpoint and
// asks the delivery worker to send it.
type WebhookService struct {
	Endpoints WebhookEndpointRepo
	Events    WebhookEventRepo
	Publisher Publisher
	Now       func() time.Time
}

func NewWebhookService(endpoints WebhookEndpointRepo, events WebhookEventRepo, publisher Publisher) *WebhookService {
	return &WebhookService{
		Endpoints: endpoints,
		Events:    events,
		Publisher: publisher,
		Now:       time.Now,
	}
}

// Dispatch fans out to every active endpoint of the payment's merchant.
// A failing endpoint does not stop the others; all failures are joined.
func (s *WebhookService) Dispatch(ctx context.Context, payment *models.Payment) error {
	endpoints, err := s.Endpoints.List(ctx, models.ListOptions{
		Filters: []models.Filter{
			models.Where("merchant_id = ?", payment.MerchantID),
			models.Where("active = ?", true),
		},
	})
	if err != nil {
		return fmt.Errorf("error loading webhook endpoints: %w", err)
	}
	if len(*endpoints) == 0 {
		logrus.WithField("merchant_id", payment.MerchantID).Debug("No active webhook endpoints")
		return nil
	}

	errs := make([]error, len(*endpoints))
	var wg sync.WaitGroup
	for i, endpoint := range *endpoints {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs[i] = s.dispatchTo(ctx, endpoint, payment)
		}()
	}
	wg.Wait()

	return errors.Join(errs...)
}

func (s *WebhookService) dispatchTo(ctx context.Context, endpoint models.WebhookEndpoint, payment *models.Payment) error {
	eventType := models.EventTypeFor(payment.Status)
	envelope := models.EventEnvelope{
		ID:      models.NewEventID(),
		Type:    eventType,
		Created: s.Now().Unix(),
		Data:    models.EventData{Object: payment},
	}

	payload, err := json.Marshal(envelope)
	if err != nil {
		return fmt.Errorf("error marshaling webhook payload for endpoint %s: %w", endpoint.ID, err)
	}

	event := &models.WebhookEvent{
		ID:             envelope.ID,
		MerchantID:     payment.MerchantID,
		EndpointID:     endpoint.ID,
		Type:           eventType,
		Payload:        datatypes.JSON(payload),
		DeliveryStatus: models.DeliveryPending,
	}
	if err := s.Events.Create(ctx, event); err != nil {
		return fmt.Errorf("error saving webhook event for endpoint %s: %w", endpoint.ID, err)
	}

	request := models.WebhookDeliveryRequestedEvent{
		EventID:    event.ID,
		MerchantID: event.MerchantID,
		EndpointID: event.EndpointID,
		Type:       string(event.Type),
		CreatedAt:  s.Now().UTC(),
	}
	if err := s.Publisher.Publish(ctx, models.WebhookDeliveryTopic, request); err != nil {
		// the event stays pending and is picked up by the requeue job
		return fmt.Errorf("error requesting delivery of %s: %w", event.ID, err)
	}

	logrus.WithFields(logrus.Fields{
		"event_id":    event.ID,
		"endpoint_id": endpoint.ID,
		"type":        event.Type,
	}).Info("Webhook event queued")

	return nil
}
