package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jeffleon2/draftea-checkout-gateway/config"
	"github.com/jeffleon2/draftea-checkout-gateway/internal/database"
	"github.com/jeffleon2/draftea-checkout-gateway/internal/delivery"
	"github.com/jeffleon2/draftea-checkout-gateway/internal/fee"
	handlers "github.com/jeffleon2/draftea-checkout-gateway/internal/handlers"
	"github.com/jeffleon2/draftea-checkout-gateway/internal/metrics"
	"github.com/jeffleon2/draftea-checkout-gateway/internal/models"
	"github.com/jeffleon2/draftea-checkout-gateway/internal/publisher"
	"github.com/jeffleon2/draftea-checkout-gateway/internal/repository/posgrest"
	"github.com/jeffleon2/draftea-checkout-gateway/internal/service"
	"github.com/jeffleon2/draftea-checkout-gateway/internal/simulator"
	"github.com/jeffleon2/draftea-checkout-gateway/internal/subscriber"
	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const shutdownTimeout = 15 * time.Second

type App struct {
	config    *config.Config
	Router    *gin.Engine
	Services  *Services
	publisher *publisher.KafkaPublisher
	consumer  *subscriber.KafkaConsumer
	scheduler *cron.Cron

	stopConsumer context.CancelFunc
}

// Services is the wired processing core.
type Services struct {
	Auth      *service.AuthService
	Sessions  *service.SessionService
	Checkout  *service.CheckoutService
	Payments  *service.PaymentService
	Webhooks  *service.WebhookService
	Delivery  *service.DeliveryService
	Reconcile *service.ReconcileService
}

func (a *App) Initialize(cfg *config.Config) {
	a.config = cfg
	configureLogging(cfg.APP)

	db, err := cfg.DB.GormConnect()
	if err != nil {
		logrus.Fatalf("failed to connect to database: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		logrus.Fatalf("failed to auto migrate: %v", err)
	}

	if cfg.APP.ENV == "local" {
		seed := database.SandboxSeed{
			APIKey:        cfg.APP.SandboxAPIKey,
			WebhookURL:    cfg.APP.SandboxWebhookURL,
			WebhookSecret: cfg.APP.SandboxWebhookSecret,
		}
		if err := database.SeedSandbox(db, seed); err != nil {
			logrus.Warnf("failed to seed sandbox merchant: %v", err)
		}
	}

	brokers := strings.Split(cfg.Kafka.Brokers, ",")
	publishTopics := strings.Split(cfg.Kafka.PublishTopics, ",")
	a.publisher = publisher.NewKafkaPublisher(brokers, publishTopics, cfg.GetRetryConfig())

	sim := simulator.New(simulator.NewRandomChance(cfg.Checkout.SimulatorSeed), cfg.Checkout.SimulatedLatency)
	sender := delivery.NewHTTPSender(cfg.Webhook.Timeout)
	a.Services = NewServices(cfg, db, a.publisher, sim, sender)

	metrics.RegisterMetrics()
	if cfg.APP.ENV == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	a.Router = NewRouter(cfg, a.Services)

	a.initSubscribers(brokers)
	a.initScheduler()
}

// NewServices wires the processing core over db.
func NewServices(cfg *config.Config, db *gorm.DB, pub service.Publisher, sim service.PaymentSimulator, sender service.Sender) *Services {
	merchantRepo := posgrest.New[models.Merchant](db)
	apiKeyRepo := posgrest.New[models.ApiKey](db)
	sessionRepo := posgrest.New[models.PaymentSession](db)
	paymentRepo := posgrest.New[models.Payment](db)
	fraudRepo := posgrest.New[models.FraudFlag](db)
	settingRepo := posgrest.New[models.PlatformSetting](db)
	endpointRepo := posgrest.New[models.WebhookEndpoint](db)
	eventRepo := posgrest.New[models.WebhookEvent](db)

	sessions := service.NewSessionService(sessionRepo, cfg.Checkout.SessionTTL)
	settings := service.NewSettingsService(settingRepo, fee.New(cfg.Checkout.FeePercent, cfg.Checkout.FeeFixed))
	fraud := service.NewFraudService(fraudRepo, cfg.Checkout.FraudThreshold, cfg.Checkout.FraudScore)
	webhooks := service.NewWebhookService(endpointRepo, eventRepo, pub)

	return &Services{
		Auth:      service.NewAuthService(apiKeyRepo, merchantRepo),
		Sessions:  sessions,
		Checkout:  service.NewCheckoutService(sessions, sessionRepo, paymentRepo, sim, settings, fraud, webhooks, pub),
		Payments:  service.NewPaymentService(paymentRepo),
		Webhooks:  webhooks,
		Delivery:  service.NewDeliveryService(eventRepo, endpointRepo, sender, cfg.Webhook.MaxAttempts),
		Reconcile: service.NewReconcileService(sessionRepo, paymentRepo, eventRepo, pub, cfg.Checkout.ReconcileAfter, cfg.Webhook.RetryAfter, cfg.Webhook.MaxAttempts),
	}
}

func NewRouter(cfg *config.Config, s *Services) *gin.Engine {
	router := gin.Default()
	router.Use(handlers.CORS())
	RegisterRoutes(router, Handlers{
		Sessions: handlers.NewSessionHandler(s.Sessions, cfg.APP.HostedCheckoutURL),
		Checkout: handlers.NewCheckoutHandler(s.Checkout),
		Payments: handlers.NewPaymentHandler(s.Payments),
		Auth:     s.Auth,
	})
	return router
}

// Run serves HTTP until ctx is done, then drains the background workers.
func (a *App) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", a.config.APP.PORT),
		Handler: a.Router,
	}

	errCh := make(chan error, 1)
	go func() {
		logrus.Infof("Checkout gateway listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return err
		}
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logrus.Errorf("Error shutting down http server: %v", err)
	}
	<-a.scheduler.Stop().Done()
	a.stopConsumer()
	if err := a.consumer.Close(); err != nil {
		logrus.Errorf("Error closing consumer: %v", err)
	}
	a.Services.Auth.Wait()
	if err := a.publisher.Close(); err != nil {
		logrus.Errorf("Error closing publisher: %v", err)
	}

	logrus.Info("Checkout gateway stopped")
	return nil
}

func (a *App) initSubscribers(brokers []string) {
	topics := strings.Split(a.config.Kafka.SubscriberTopics, ",")
	a.consumer = subscriber.NewMultiTopicConsumer(brokers, topics, a.config.Kafka.ConsumerGroup, a.publisher, a.config.GetRetryConfig(), a.config.Kafka.ConsumerWorkers)

	ctx, cancel := context.WithCancel(context.Background())
	a.stopConsumer = cancel

	deliveryHandler := handlers.NewDeliveryHandler(a.Services.Delivery)
	a.consumer.Listen(ctx, func(ctx context.Context, topic string, value []byte) error {
		logrus.Debugf("Received message → topic=%s value=%s", topic, string(value))
		return deliveryHandler.HandleEvents(ctx, topic, value)
	})
}

func (a *App) initScheduler() {
	a.scheduler = cron.New()
	reconcile := a.Services.Reconcile

	if _, err := a.scheduler.AddFunc(a.config.Checkout.ReconcileSchedule, func() {
		if _, err := reconcile.ReconcileStuckSessions(context.Background()); err != nil {
			logrus.Errorf("Error reconciling sessions: %v", err)
		}
	}); err != nil {
		logrus.Fatalf("invalid reconcile schedule %q: %v", a.config.Checkout.ReconcileSchedule, err)
	}

	if _, err := a.scheduler.AddFunc(a.config.Webhook.RetrySchedule, func() {
		if _, err := reconcile.RequeuePendingWebhooks(context.Background()); err != nil {
			logrus.Errorf("Error requeueing webhooks: %v", err)
		}
	}); err != nil {
		logrus.Fatalf("invalid webhook retry schedule %q: %v", a.config.Webhook.RetrySchedule, err)
	}

	a.scheduler.Start()
}

func configureLogging(cfg config.APP) {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		logrus.Warnf("Unknown log level %q, using info", cfg.LogLevel)
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)
}
