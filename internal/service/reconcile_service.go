package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jeffleon2/draftea-checkout-gateway/internal/metrics"
	"github.com/jeffleon2/draftea-checkout-gateway/internal/models"
	"github.com/sirupsen/logrus"
)

const reconcileBatchSize = 100

// ReconcileService repairs state that a crashed or failed checkout left behind.
type ReconcileService struct {
	Sessions    SessionRepo
	Payments    PaymentRepo
	Events      WebhookEventRepo
	Publisher   Publisher
	StuckAfter  time.Duration
	RetryAfter  time.Duration
	MaxAttempts int
	Now         func() time.Time
}

func NewReconcileService(
	sessions SessionRepo,
	payments PaymentRepo,
	events WebhookEventRepo,
	publisher Publisher,
	stuckAfter, retryAfter time.Duration,
	maxAttempts int,
) *ReconcileService {
	if maxAttempts <= 0 {
		maxAttempts = DefaultWebhookMaxAttempts
	}
	return &ReconcileService{
		Sessions:    sessions,
		Payments:    payments,
		Events:      events,
		Publisher:   publisher,
		StuckAfter:  stuckAfter,
		RetryAfter:  retryAfter,
		MaxAttempts: maxAttempts,
		Now:         time.Now,
	}
}

// ReconcileStuckSessions settles sessions left in processing longer than
// StuckAfter. A session with a recorded payment takes the payment's status;
// one without is handed back to requires_payment_method.
func (s *ReconcileService) ReconcileStuckSessions(ctx context.Context) (int, error) {
	cutoff := s.Now().Add(-s.StuckAfter)
	sessions, err := s.Sessions.List(ctx, models.ListOptions{
		Filters: []models.Filter{
			models.Where("status = ?", models.SessionProcessing),
			models.Where("updated_at < ?", cutoff),
		},
		Order: "updated_at ASC",
		Limit: reconcileBatchSize,
	})
	if err != nil {
		return 0, fmt.Errorf("error listing stuck sessions: %w", err)
	}

	var errs []error
	repaired := 0
	for _, session := range *sessions {
		target := models.SessionRequiresPaymentMethod
		payment, err := s.Payments.FindOne(ctx, map[string]interface{}{"session_id": session.ID})
		switch {
		case err == nil:
			target = models.SessionStatus(payment.Status)
		case !errors.Is(err, models.ErrRecordNotFound):
			errs = append(errs, fmt.Errorf("error loading payment of session %s: %w", session.ID, err))
			continue
		}

		moved, err := s.Sessions.TransitionStatus(ctx, session.ID, models.SessionProcessing, target)
		if err != nil {
			errs = append(errs, fmt.Errorf("error reconciling session %s: %w", session.ID, err))
			continue
		}
		if !moved {
			continue
		}

		repaired++
		metrics.SessionsReconciledTotal.WithLabelValues(string(target)).Inc()
		logrus.WithFields(logrus.Fields{
			"session_id": session.ID,
			"status":     target,
		}).Warn("Reconciled stuck session")
	}

	return repaired, errors.Join(errs...)
}

// RequeuePendingWebhooks asks for another delivery of pending events that have
// not been touched for RetryAfter and still have attempts left.
func (s *ReconcileService) RequeuePendingWebhooks(ctx context.Context) (int, error) {
	cutoff := s.Now().Add(-s.RetryAfter)
	events, err := s.Events.List(ctx, models.ListOptions{
		Filters: []models.Filter{
			models.Where("delivery_status = ?", models.DeliveryPending),
			models.Where("attempt_count < ?", s.MaxAttempts),
			models.Where("updated_at < ?", cutoff),
		},
		Order: "updated_at ASC",
		Limit: reconcileBatchSize,
	})
	if err != nil {
		return 0, fmt.Errorf("error listing pending webhook events: %w", err)
	}

	var errs []error
	requeued := 0
	for _, event := range *events {
		request := models.WebhookDeliveryRequestedEvent{
			EventID:    event.ID,
			MerchantID: event.MerchantID,
			EndpointID: event.EndpointID,
			Type:       string(event.Type),
			CreatedAt:  s.Now().UTC(),
		}
		if err := s.Publisher.Publish(ctx, models.WebhookDeliveryTopic, request); err != nil {
			errs = append(errs, fmt.Errorf("error requeueing webhook event %s: %w", event.ID, err))
			continue
		}
		requeued++
	}

	if requeued > 0 {
		logrus.Infof("Requeued %d pending webhook events", requeued)
	}
	return requeued, errors.Join(errs...)
}
