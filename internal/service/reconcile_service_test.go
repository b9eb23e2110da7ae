package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jeffleon2/draftea-checkout-gateway/internal/models"
	"github.com/jeffleon2/draftea-checkout-gateway/internal/service"
	"github.com/jeffleon2/draftea-checkout-gateway/internal/service/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type reconcileMocks struct {
	sessions  *mocks.MockSessionRepo
	payments  *mocks.MockPaymentRepo
	events    *mocks.MockWebhookEventRepo
	publisher *mocks.MockPublisher
}

func newReconcileService(t *testing.T) (*service.ReconcileService, reconcileMocks) {
	m := reconcileMocks{
		sessions:  mocks.NewMockSessionRepo(t),
		payments:  mocks.NewMockPaymentRepo(t),
		events:    mocks.NewMockWebhookEventRepo(t),
		publisher: mocks.NewMockPublisher(t),
	}
	svc := service.NewReconcileService(m.sessions, m.payments, m.events, m.publisher, 5*time.Minute, time.Minute, 5)
	svc.Now = func() time.Time { return t0 }
	return svc, m
}

func TestReconcileStuckSessions(t *testing.T) {
	svc, m := newReconcileService(t)
	ctx := context.Background()

	m.sessions.EXPECT().
		List(ctx, models.ListOptions{
			Filters: []models.Filter{
				models.Where("status = ?", models.SessionProcessing),
				models.Where("updated_at < ?", t0.Add(-5*time.Minute)),
			},
			Order: "updated_at ASC",
			Limit: 100,
		}).
		Return(&[]models.PaymentSession{{ID: "s-paid"}, {ID: "s-orphan"}, {ID: "s-raced"}}, nil).
		Once()

	m.payments.EXPECT().
		FindOne(ctx, map[string]interface{}{"session_id": "s-paid"}).
		Return(&models.Payment{ID: "p-1", Status: models.PaymentFailed}, nil).
		Once()
	m.payments.EXPECT().
		FindOne(ctx, map[string]interface{}{"session_id": "s-orphan"}).
		Return(nil, models.ErrRecordNotFound).
		Once()
	m.payments.EXPECT().
		FindOne(ctx, map[string]interface{}{"session_id": "s-raced"}).
		Return(nil, models.ErrRecordNotFound).
		Once()

	m.sessions.EXPECT().
		TransitionStatus(ctx, "s-paid", models.SessionProcessing, models.SessionFailed).
		Return(true, nil).
		Once()
	m.sessions.EXPECT().
		TransitionStatus(ctx, "s-orphan", models.SessionProcessing, models.SessionRequiresPaymentMethod).
		Return(true, nil).
		Once()
	m.sessions.EXPECT().
		TransitionStatus(ctx, "s-raced", models.SessionProcessing, models.SessionRequiresPaymentMethod).
		Return(false, nil).
		Once()

	repaired, err := svc.ReconcileStuckSessions(ctx)

	require.NoError(t, err)
	assert.Equal(t, 2, repaired)
}

func TestReconcileStuckSessions_ContinuesPastErrors(t *testing.T) {
	svc, m := newReconcileService(t)
	ctx := context.Background()

	m.sessions.EXPECT().List(ctx, mock.Anything).
		Return(&[]models.PaymentSession{{ID: "s-1"}, {ID: "s-2"}}, nil).
		Once()
	m.payments.EXPECT().
		FindOne(ctx, map[string]interface{}{"session_id": "s-1"}).
		Return(nil, errors.New("timeout")).
		Once()
	m.payments.EXPECT().
		FindOne(ctx, map[string]interface{}{"session_id": "s-2"}).
		Return(&models.Payment{Status: models.PaymentSucceeded}, nil).
		Once()
	m.sessions.EXPECT().
		TransitionStatus(ctx, "s-2", models.SessionProcessing, models.SessionSucceeded).
		Return(true, nil).
		Once()

	repaired, err := svc.ReconcileStuckSessions(ctx)

	assert.Error(t, err)
	assert.Equal(t, 1, repaired)
}

func TestRequeuePendingWebhooks(t *testing.T) {
	svc, m := newReconcileService(t)
	ctx := context.Background()

	m.events.EXPECT().
		List(ctx, models.ListOptions{
			Filters: []models.Filter{
				models.Where("delivery_status = ?", models.DeliveryPending),
				models.Where("attempt_count < ?", 5),
				models.Where("updated_at < ?", t0.Add(-time.Minute)),
			},
			Order: "updated_at ASC",
			Limit: 100,
		}).
		Return(&[]models.WebhookEvent{
			{ID: "evt_a", MerchantID: "m-1", EndpointID: "we-1", Type: models.EventPaymentSucceeded},
			{ID: "evt_b", MerchantID: "m-1", EndpointID: "we-2", Type: models.EventPaymentFailed},
		}, nil).
		Once()
	m.publisher.EXPECT().
		Publish(ctx, models.WebhookDeliveryTopic, mock.MatchedBy(func(evt models.WebhookDeliveryRequestedEvent) bool {
			return evt.EventID == "evt_a" && evt.EndpointID == "we-1"
		})).
		Return(nil).
		Once()
	m.publisher.EXPECT().
		Publish(ctx, models.WebhookDeliveryTopic, mock.MatchedBy(func(evt models.WebhookDeliveryRequestedEvent) bool {
			return evt.EventID == "evt_b"
		})).
		Return(errors.New("broker down")).
		Once()

	requeued, err := svc.RequeuePendingWebhooks(ctx)

	assert.Error(t, err)
	assert.Equal(t, 1, requeued)
}
