package service_test

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"testing"
	"time"

	"github.com/jeffleon2/draftea-checkout-gateway/internal/models"
	"github.com/jeffleon2/draftea-checkout-gateway/internal/service"
	"github.com/jeffleon2/draftea-checkout-gateway/internal/service/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

var eventPayload = []byte(`{"id":"evt_1","type":"payment.succeeded","created":1,"data":{"object":{"id":"p-1"}}}`)

type deliveryMocks struct {
	events    *mocks.MockWebhookEventRepo
	endpoints *mocks.MockWebhookEndpointRepo
	sender    *mocks.MockSender
}

func newDeliveryService(t *testing.T) (*service.DeliveryService, deliveryMocks) {
	m := deliveryMocks{
		events:    mocks.NewMockWebhookEventRepo(t),
		endpoints: mocks.NewMockWebhookEndpointRepo(t),
		sender:    mocks.NewMockSender(t),
	}
	svc := service.NewDeliveryService(m.events, m.endpoints, m.sender, 5)
	svc.Now = func() time.Time { return t0 }
	return svc, m
}

func pendingEvent(attempts int) *models.WebhookEvent {
	return &models.WebhookEvent{
		ID:             "evt_1",
		MerchantID:     "m-1",
		EndpointID:     "we-1",
		Type:           models.EventPaymentSucceeded,
		Payload:        datatypes.JSON(eventPayload),
		DeliveryStatus: models.DeliveryPending,
		AttemptCount:   attempts,
	}
}

func activeEndpoint() *models.WebhookEndpoint {
	return &models.WebhookEndpoint{ID: "we-1", MerchantID: "m-1", URL: "https://merchant.example/hook", Secret: "whsec_test", Active: true}
}

func TestSign_VerifiesWithEndpointSecret(t *testing.T) {
	mac := hmac.New(sha256.New, []byte("whsec_test"))
	mac.Write(eventPayload)
	want := "sha256=" + hex.EncodeToString(mac.Sum(nil))

	assert.Equal(t, want, service.Sign("whsec_test", eventPayload))
	assert.NotEqual(t, want, service.Sign("other", eventPayload))
}

func TestDeliver_Success(t *testing.T) {
	svc, m := newDeliveryService(t)
	ctx := context.Background()

	m.events.EXPECT().GetByID(ctx, "evt_1").Return(pendingEvent(0), nil).Once()
	m.endpoints.EXPECT().GetByID(ctx, "we-1").Return(activeEndpoint(), nil).Once()
	m.sender.EXPECT().
		Send(ctx, "https://merchant.example/hook", map[string]string{
			"Content-Type":        "application/json",
			"X-Gateway-Signature": service.Sign("whsec_test", eventPayload),
			"X-Gateway-Event":     "payment.succeeded",
		}, []byte(eventPayload)).
		Return(200, nil).
		Once()
	m.events.EXPECT().
		UpdateColumns(ctx, "evt_1", map[string]interface{}{
			"delivery_status": models.DeliveryDelivered,
			"attempt_count":   1,
			"last_error":      "",
			"delivered_at":    t0,
		}).
		Return(nil).
		Once()
	m.endpoints.EXPECT().
		UpdateColumns(ctx, "we-1", map[string]interface{}{"last_delivered_at": t0}).
		Return(nil).
		Once()

	assert.NoError(t, svc.Deliver(ctx, "evt_1"))
}

func TestDeliver_FailedAttemptStaysPending(t *testing.T) {
	svc, m := newDeliveryService(t)
	ctx := context.Background()

	m.events.EXPECT().GetByID(ctx, "evt_1").Return(pendingEvent(1), nil).Once()
	m.endpoints.EXPECT().GetByID(ctx, "we-1").Return(activeEndpoint(), nil).Once()
	m.sender.EXPECT().Send(ctx, mock.Anything, mock.Anything, mock.Anything).Return(500, nil).Once()
	m.events.EXPECT().
		UpdateColumns(ctx, "evt_1", map[string]interface{}{
			"attempt_count": 2,
			"last_error":    "endpoint responded with status 500",
		}).
		Return(nil).
		Once()

	assert.NoError(t, svc.Deliver(ctx, "evt_1"))
}

func TestDeliver_StoreErrorIsReturned(t *testing.T) {
	svc, m := newDeliveryService(t)
	ctx := context.Background()

	m.events.EXPECT().GetByID(ctx, "evt_1").Return(pendingEvent(0), nil).Once()
	m.endpoints.EXPECT().GetByID(ctx, "we-1").Return(activeEndpoint(), nil).Once()
	m.sender.EXPECT().Send(ctx, mock.Anything, mock.Anything, mock.Anything).Return(503, nil).Once()
	m.events.EXPECT().UpdateColumns(ctx, "evt_1", mock.Anything).Return(errors.New("db down")).Once()

	err := svc.Deliver(ctx, "evt_1")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "evt_1")
}

func TestDeliver_MarksFailedAfterMaxAttempts(t *testing.T) {
	svc, m := newDeliveryService(t)
	ctx := context.Background()

	m.events.EXPECT().GetByID(ctx, "evt_1").Return(pendingEvent(4), nil).Once()
	m.endpoints.EXPECT().GetByID(ctx, "we-1").Return(activeEndpoint(), nil).Once()
	m.sender.EXPECT().Send(ctx, mock.Anything, mock.Anything, mock.Anything).Return(0, errors.New("dial tcp: connection refused")).Once()
	m.events.EXPECT().
		UpdateColumns(ctx, "evt_1", map[string]interface{}{
			"attempt_count":   5,
			"last_error":      "dial tcp: connection refused",
			"delivery_status": models.DeliveryFailed,
		}).
		Return(nil).
		Once()

	assert.NoError(t, svc.Deliver(ctx, "evt_1"))
}

func TestDeliver_SettledEventIsSkipped(t *testing.T) {
	for _, status := range []models.DeliveryStatus{models.DeliveryDelivered, models.DeliveryFailed} {
		svc, m := newDeliveryService(t)
		ctx := context.Background()
		event := pendingEvent(1)
		event.DeliveryStatus = status

		m.events.EXPECT().GetByID(ctx, "evt_1").Return(event, nil).Once()

		assert.NoError(t, svc.Deliver(ctx, "evt_1"))
		m.sender.AssertNotCalled(t, "Send", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	}
}

func TestDeliver_UnknownEvent(t *testing.T) {
	svc, m := newDeliveryService(t)
	ctx := context.Background()

	m.events.EXPECT().GetByID(ctx, "evt_missing").Return(nil, models.ErrRecordNotFound).Once()

	assert.NoError(t, svc.Deliver(ctx, "evt_missing"))
}

func TestDeliver_InactiveEndpointGivesUp(t *testing.T) {
	svc, m := newDeliveryService(t)
	ctx := context.Background()
	endpoint := activeEndpoint()
	endpoint.Active = false

	m.events.EXPECT().GetByID(ctx, "evt_1").Return(pendingEvent(0), nil).Once()
	m.endpoints.EXPECT().GetByID(ctx, "we-1").Return(endpoint, nil).Once()
	m.events.EXPECT().
		UpdateColumns(ctx, "evt_1", mock.MatchedBy(func(v map[string]interface{}) bool {
			return v["delivery_status"] == models.DeliveryFailed
		})).
		Return(nil).
		Once()

	assert.NoError(t, svc.Deliver(ctx, "evt_1"))
	m.sender.AssertNotCalled(t, "Send", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestDeliver_MissingEndpointGivesUp(t *testing.T) {
	svc, m := newDeliveryService(t)
	ctx := context.Background()

	m.events.EXPECT().GetByID(ctx, "evt_1").Return(pendingEvent(0), nil).Once()
	m.endpoints.EXPECT().GetByID(ctx, "we-1").Return(nil, models.ErrRecordNotFound).Once()
	m.events.EXPECT().UpdateColumns(ctx, "evt_1", mock.Anything).Return(nil).Once()

	assert.NoError(t, svc.Deliver(ctx, "evt_1"))
}
