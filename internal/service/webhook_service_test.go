package service_test

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/jeffleon2/draftea-checkout-gateway/internal/models"
	"github.com/jeffleon2/draftea-checkout-gateway/internal/service"
	"github.com/jeffleon2/draftea-checkout-gateway/internal/service/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func endpointFilters(merchantID string) models.ListOptions {
	return models.ListOptions{
		Filters: []models.Filter{
			models.Where("merchant_id = ?", merchantID),
			models.Where("active = ?", true),
		},
	}
}

func succeededPayment() *models.Payment {
	return &models.Payment{
		ID:         "p-1",
		SessionID:  "s-1",
		MerchantID: "m-1",
		Amount:     4999,
		Currency:   "USD",
		Method:     models.MethodCard,
		Status:     models.PaymentSucceeded,
		FeeAmount:  155,
		NetAmount:  4844,
	}
}

func TestDispatch_NoEndpoints(t *testing.T) {
	endpoints := mocks.NewMockWebhookEndpointRepo(t)
	events := mocks.NewMockWebhookEventRepo(t)
	publisher := mocks.NewMockPublisher(t)
	svc := service.NewWebhookService(endpoints, events, publisher)
	ctx := context.Background()

	endpoints.EXPECT().List(ctx, endpointFilters("m-1")).Return(&[]models.WebhookEndpoint{}, nil).Once()

	err := svc.Dispatch(ctx, succeededPayment())

	assert.NoError(t, err)
	events.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestDispatch_OneEventPerEndpoint(t *testing.T) {
	endpoints := mocks.NewMockWebhookEndpointRepo(t)
	events := mocks.NewMockWebhookEventRepo(t)
	publisher := mocks.NewMockPublisher(t)
	svc := service.NewWebhookService(endpoints, events, publisher)
	svc.Now = func() time.Time { return t0 }
	ctx := context.Background()

	endpoints.EXPECT().List(ctx, endpointFilters("m-1")).Return(&[]models.WebhookEndpoint{
		{ID: "we-1", MerchantID: "m-1", URL: "https://a.example/hook", Active: true},
		{ID: "we-2", MerchantID: "m-1", URL: "https://b.example/hook", Active: true},
	}, nil).Once()

	var mu sync.Mutex
	created := map[string]*models.WebhookEvent{}
	events.EXPECT().
		Create(ctx, mock.AnythingOfType("*models.WebhookEvent")).
		Run(func(ctx context.Context, event *models.WebhookEvent) {
			mu.Lock()
			defer mu.Unlock()
			created[event.EndpointID] = event
		}).
		Return(nil).
		Times(2)
	publisher.EXPECT().
		Publish(ctx, models.WebhookDeliveryTopic, mock.MatchedBy(func(evt models.WebhookDeliveryRequestedEvent) bool {
			return strings.HasPrefix(evt.EventID, "evt_") && evt.MerchantID == "m-1" && evt.Type == "payment.succeeded"
		})).
		Return(nil).
		Times(2)

	err := svc.Dispatch(ctx, succeededPayment())

	require.NoError(t, err)
	require.Len(t, created, 2)
	assert.NotEqual(t, created["we-1"].ID, created["we-2"].ID)

	for _, event := range created {
		assert.Equal(t, models.DeliveryPending, event.DeliveryStatus)
		assert.Equal(t, 0, event.AttemptCount)
		assert.Equal(t, models.EventPaymentSucceeded, event.Type)

		var envelope struct {
			ID      string `json:"id"`
			Type    string `json:"type"`
			Created int64  `json:"created"`
			Data    struct {
				Object models.Payment `json:"object"`
			} `json:"data"`
		}
		require.NoError(t, json.Unmarshal(event.Payload, &envelope))
		assert.Equal(t, event.ID, envelope.ID)
		assert.Equal(t, "payment.succeeded", envelope.Type)
		assert.Equal(t, t0.Unix(), envelope.Created)
		assert.Equal(t, "p-1", envelope.Data.Object.ID)
		assert.Equal(t, int64(4844), envelope.Data.Object.NetAmount)
	}
}

func TestDispatch_FailedPaymentEventType(t *testing.T) {
	endpoints := mocks.NewMockWebhookEndpointRepo(t)
	events := mocks.NewMockWebhookEventRepo(t)
	publisher := mocks.NewMockPublisher(t)
	svc := service.NewWebhookService(endpoints, events, publisher)
	ctx := context.Background()
	payment := succeededPayment()
	payment.Status = models.PaymentFailed

	endpoints.EXPECT().List(ctx, endpointFilters("m-1")).Return(&[]models.WebhookEndpoint{{ID: "we-1", Active: true}}, nil).Once()
	events.EXPECT().
		Create(ctx, mock.MatchedBy(func(e *models.WebhookEvent) bool { return e.Type == models.EventPaymentFailed })).
		Return(nil).
		Once()
	publisher.EXPECT().Publish(ctx, models.WebhookDeliveryTopic, mock.Anything).Return(nil).Once()

	assert.NoError(t, svc.Dispatch(ctx, payment))
}

func TestDispatch_OneEndpointFailureDoesNotStopOthers(t *testing.T) {
	endpoints := mocks.NewMockWebhookEndpointRepo(t)
	events := mocks.NewMockWebhookEventRepo(t)
	publisher := mocks.NewMockPublisher(t)
	svc := service.NewWebhookService(endpoints, events, publisher)
	ctx := context.Background()

	endpoints.EXPECT().List(ctx, endpointFilters("m-1")).Return(&[]models.WebhookEndpoint{
		{ID: "we-bad", Active: true},
		{ID: "we-good", Active: true},
	}, nil).Once()
	events.EXPECT().
		Create(ctx, mock.MatchedBy(func(e *models.WebhookEvent) bool { return e.EndpointID == "we-bad" })).
		Return(errors.New("insert failed")).
		Once()
	events.EXPECT().
		Create(ctx, mock.MatchedBy(func(e *models.WebhookEvent) bool { return e.EndpointID == "we-good" })).
		Return(nil).
		Once()
	publisher.EXPECT().
		Publish(ctx, models.WebhookDeliveryTopic, mock.MatchedBy(func(evt models.WebhookDeliveryRequestedEvent) bool {
			return evt.EndpointID == "we-good"
		})).
		Return(nil).
		Once()

	err := svc.Dispatch(ctx, succeededPayment())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "we-bad")
}

func TestDispatch_EndpointLookupError(t *testing.T) {
	endpoints := mocks.NewMockWebhookEndpointRepo(t)
	svc := service.NewWebhookService(endpoints, mocks.NewMockWebhookEventRepo(t), mocks.NewMockPublisher(t))
	ctx := context.Background()

	endpoints.EXPECT().List(ctx, endpointFilters("m-1")).Return(nil, errors.New("timeout")).Once()

	assert.Error(t, svc.Dispatch(ctx, succeededPayment()))
}
