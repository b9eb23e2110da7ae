package app_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jeffleon2/draftea-checkout-gateway/config"
	"github.com/jeffleon2/draftea-checkout-gateway/internal/app"
	"github.com/jeffleon2/draftea-checkout-gateway/internal/database"
	"github.com/jeffleon2/draftea-checkout-gateway/internal/handlers"
	"github.com/jeffleon2/draftea-checkout-gateway/internal/models"
	"github.com/jeffleon2/draftea-checkout-gateway/internal/models/dto"
	"github.com/jeffleon2/draftea-checkout-gateway/internal/service"
	"github.com/jeffleon2/draftea-checkout-gateway/internal/simulator"
	"github.com/jeffleon2/draftea-checkout-gateway/internal/subscriber"
	kafka "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const testAPIKey = "sk_test_integration"

type recordingPublisher struct {
	mu       sync.Mutex
	messages map[string][]interface{}
}

func (p *recordingPublisher) Publish(ctx context.Context, topic string, message interface{}) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.messages == nil {
		p.messages = map[string][]interface{}{}
	}
	p.messages[topic] = append(p.messages[topic], message)
	return nil
}

func (p *recordingPublisher) deliveryRequests() []models.WebhookDeliveryRequestedEvent {
	p.mu.Lock()
	defer p.mu.Unlock()
	var out []models.WebhookDeliveryRequestedEvent
	for _, m := range p.messages[models.WebhookDeliveryTopic] {
		out = append(out, m.(models.WebhookDeliveryRequestedEvent))
	}
	return out
}

func (p *recordingPublisher) count(topic string) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.messages[topic])
}

type nopSender struct{}

func (nopSender) Send(ctx context.Context, url string, headers map[string]string, body []byte) (int, error) {
	return http.StatusOK, nil
}

// downSender answers every webhook with 503.
type downSender struct {
	calls atomic.Int32
}

func (s *downSender) Send(ctx context.Context, url string, headers map[string]string, body []byte) (int, error) {
	s.calls.Add(1)
	return http.StatusServiceUnavailable, nil
}

type gateway struct {
	db        *gorm.DB
	router    *gin.Engine
	publisher *recordingPublisher
	services  *app.Services
}

func newGateway(t *testing.T) *gateway {
	t.Helper()
	return newGatewayWithSender(t, nopSender{})
}

func newGatewayWithSender(t *testing.T, sender service.Sender) *gateway {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, database.Migrate(db))
	require.NoError(t, database.SeedSandbox(db, database.SandboxSeed{
		APIKey:        testAPIKey,
		WebhookURL:    "https://merchant.example/hooks/a",
		WebhookSecret: "whsec_a",
	}))
	require.NoError(t, db.Create(&models.WebhookEndpoint{
		MerchantID: database.SandboxMerchantID,
		URL:        "https://merchant.example/hooks/b",
		Secret:     "whsec_b",
		Active:     true,
	}).Error)

	cfg := &config.Config{
		APP: config.APP{HostedCheckoutURL: "http://localhost:5173"},
		Checkout: config.Checkout{
			SessionTTL:     time.Hour,
			FeePercent:     2.5,
			FeeFixed:       30,
			FraudThreshold: 100000,
			FraudScore:     85,
			ReconcileAfter: 5 * time.Minute,
		},
		Webhook: config.Webhook{MaxAttempts: 5, RetryAfter: time.Minute},
	}

	pub := &recordingPublisher{}
	sim := simulator.New(simulator.FixedChance(true), 0)
	services := app.NewServices(cfg, db, pub, sim, sender)
	t.Cleanup(services.Auth.Wait)

	return &gateway{db: db, router: app.NewRouter(cfg, services), publisher: pub, services: services}
}

func (g *gateway) do(method, path, body string, withKey bool) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if withKey {
		req.Header.Set("X-API-Key", testAPIKey)
	}
	rec := httptest.NewRecorder()
	g.router.ServeHTTP(rec, req)
	return rec
}

func (g *gateway) createSession(t *testing.T, amount int64) dto.CreateSessionResponse {
	t.Helper()
	rec := g.do(http.MethodPost, "/api/checkout/sessions", fmt.Sprintf(`{"amount":%d,"currency":"usd"}`, amount), true)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var session dto.CreateSessionResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &session))
	return session
}

const cardBody = `{"method":"card","card":{"number":"4242424242424242","exp_month":12,"exp_year":2030,"cvc":"123"}}`

func TestCheckoutEndToEnd(t *testing.T) {
	g := newGateway(t)

	session := g.createSession(t, 4999)
	assert.Equal(t, "USD", session.Currency)
	assert.Equal(t, "http://localhost:5173/checkout/"+session.ID, session.HostedURL)

	rec := g.do(http.MethodPost, "/api/payments/"+session.ID+"/confirm", cardBody, false)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var payment models.Payment
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payment))
	assert.Equal(t, models.PaymentSucceeded, payment.Status)
	assert.Equal(t, int64(155), payment.FeeAmount)
	assert.Equal(t, int64(4844), payment.NetAmount)
	assert.Equal(t, "**** **** **** 4242", payment.MaskedDetails)

	var stored models.PaymentSession
	require.NoError(t, g.db.First(&stored, "id = ?", session.ID).Error)
	assert.Equal(t, models.SessionSucceeded, stored.Status)

	var events []models.WebhookEvent
	require.NoError(t, g.db.Find(&events).Error)
	assert.Len(t, events, 2)
	for _, e := range events {
		assert.Equal(t, models.EventPaymentSucceeded, e.Type)
		assert.Equal(t, models.DeliveryPending, e.DeliveryStatus)
	}
	assert.Equal(t, 2, g.publisher.count(models.WebhookDeliveryTopic))
	assert.Equal(t, 1, g.publisher.count(models.PaymentCompletedTopic))

	var flags int64
	require.NoError(t, g.db.Model(&models.FraudFlag{}).Count(&flags).Error)
	assert.Zero(t, flags)

	rec = g.do(http.MethodPost, "/api/payments/"+session.ID+"/confirm", cardBody, false)
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = g.do(http.MethodGet, "/api/payments/"+payment.ID, "", true)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = g.do(http.MethodGet, "/api/payments?status=succeeded", "", true)
	require.Equal(t, http.StatusOK, rec.Code)
	var list dto.PaymentList
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	assert.Equal(t, int64(1), list.Total)
	assert.False(t, list.HasMore)
}

func TestConcurrentConfirmsPayOnce(t *testing.T) {
	g := newGateway(t)
	session := g.createSession(t, 2500)

	const shoppers = 8
	codes := make([]int, shoppers)
	var wg sync.WaitGroup
	for i := 0; i < shoppers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			codes[i] = g.do(http.MethodPost, "/api/payments/"+session.ID+"/confirm", cardBody, false).Code
		}(i)
	}
	wg.Wait()

	ok := 0
	for _, code := range codes {
		if code == http.StatusOK {
			ok++
		} else {
			assert.Equal(t, http.StatusConflict, code)
		}
	}
	assert.Equal(t, 1, ok)

	var payments int64
	require.NoError(t, g.db.Model(&models.Payment{}).Where("session_id = ?", session.ID).Count(&payments).Error)
	assert.Equal(t, int64(1), payments)
}

func TestHighValuePaymentIsFlagged(t *testing.T) {
	g := newGateway(t)
	session := g.createSession(t, 100001)

	rec := g.do(http.MethodPost, "/api/payments/"+session.ID+"/confirm", cardBody, false)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var flags []models.FraudFlag
	require.NoError(t, g.db.Find(&flags).Error)
	require.Len(t, flags, 1)
	assert.Equal(t, models.FraudReasonHighValue, flags[0].Reason)
	assert.Equal(t, 85, flags[0].Score)
}

func TestDeclinedCardStillSettlesSession(t *testing.T) {
	g := newGateway(t)
	session := g.createSession(t, 1000)

	body := `{"method":"card","card":{"number":"4000000000009995","exp_month":1,"exp_year":2030,"cvc":"999"}}`
	rec := g.do(http.MethodPost, "/api/payments/"+session.ID+"/confirm", body, false)
	require.Equal(t, http.StatusOK, rec.Code)

	var payment models.Payment
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payment))
	assert.Equal(t, models.PaymentFailed, payment.Status)
	require.NotNil(t, payment.FailureReason)
	assert.Equal(t, models.ReasonInsufficientFunds, *payment.FailureReason)
	assert.Zero(t, payment.FeeAmount)

	var stored models.PaymentSession
	require.NoError(t, g.db.First(&stored, "id = ?", session.ID).Error)
	assert.Equal(t, models.SessionFailed, stored.Status)
}

func TestWebhookDeliveryMarksEventDelivered(t *testing.T) {
	g := newGateway(t)
	session := g.createSession(t, 4999)
	require.Equal(t, http.StatusOK, g.do(http.MethodPost, "/api/payments/"+session.ID+"/confirm", cardBody, false).Code)

	var events []models.WebhookEvent
	require.NoError(t, g.db.Find(&events).Error)
	require.NotEmpty(t, events)

	require.NoError(t, g.services.Delivery.Deliver(context.Background(), events[0].ID))

	var delivered models.WebhookEvent
	require.NoError(t, g.db.First(&delivered, "id = ?", events[0].ID).Error)
	assert.Equal(t, models.DeliveryDelivered, delivered.DeliveryStatus)
	assert.Equal(t, 1, delivered.AttemptCount)
	assert.NotNil(t, delivered.DeliveredAt)
}

func TestMerchantRoutesRequireKey(t *testing.T) {
	g := newGateway(t)

	rec := g.do(http.MethodPost, "/api/checkout/sessions", `{"amount":100}`, false)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = g.do(http.MethodGet, "/api/payments", "", false)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = g.do(http.MethodGet, "/health", "", false)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestFailedWebhookAttemptIsRequeued(t *testing.T) {
	sender := &downSender{}
	g := newGatewayWithSender(t, sender)
	session := g.createSession(t, 4999)
	require.Equal(t, http.StatusOK, g.do(http.MethodPost, "/api/payments/"+session.ID+"/confirm", cardBody, false).Code)

	requests := g.publisher.deliveryRequests()
	require.Len(t, requests, 2)
	value, err := json.Marshal(requests[0])
	require.NoError(t, err)

	consumer := &subscriber.KafkaConsumer{
		DLQPublisher: g.publisher,
		RetryConfig:  config.RetryConfig{MaxAttempts: 5, BaseDelay: time.Millisecond, MaxDelay: time.Millisecond},
	}
	deliveryHandler := handlers.NewDeliveryHandler(g.services.Delivery)
	consumer.ProcessMessage(context.Background(), kafka.Message{Topic: models.WebhookDeliveryTopic, Value: value}, deliveryHandler.HandleEvents)

	assert.Equal(t, int32(1), sender.calls.Load())
	assert.Zero(t, g.publisher.count(models.PaymentsDLQTopic))

	var event models.WebhookEvent
	require.NoError(t, g.db.First(&event, "id = ?", requests[0].EventID).Error)
	assert.Equal(t, models.DeliveryPending, event.DeliveryStatus)
	assert.Equal(t, 1, event.AttemptCount)
	assert.Contains(t, event.LastError, "503")

	g.services.Reconcile.Now = func() time.Time { return time.Now().Add(2 * time.Minute) }
	requeued, err := g.services.Reconcile.RequeuePendingWebhooks(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, requeued)

	var again int
	for _, r := range g.publisher.deliveryRequests() {
		if r.EventID == requests[0].EventID {
			again++
		}
	}
	assert.Equal(t, 2, again)
}
