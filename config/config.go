package config

import (
	"os"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func New() (*Config, error) {
	var Config Config
	err := godotenv.Load(".env")
	if err != nil {
		logrus.Warn("Error can't get the environment variables by file")
	}
	if err := env.Parse(&Config); err != nil {
		logrus.Fatalf("Error initializing: %s", err.Error())
		os.Exit(1)
	}
	return &Config, nil
}

type Config struct {
	APP
	DB
	Kafka
	Checkout
	Webhook
}

type DB struct {
	HOST     string `env:"DB_HOST"`
	USER     string `env:"DB_USER"`
	PASSWORD string `env:"DB_PASSWORD"`
	NAME     string `env:"DB_NAME"`
	PORT     string `env:"DB_PORT"`
	SSLMODE  string `env:"DB_SSLMODE" envDefault:"disable"`
}

type APP struct {
	PORT     string `env:"APP_PORT" envDefault:"8080"`
	ENV      string `env:"GO_ENV" envDefault:"production"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
	// HostedCheckoutURL is used for hosted_url when the request carries no Origin header.
	HostedCheckoutURL string `env:"HOSTED_CHECKOUT_URL" envDefault:"http://localhost:5173"`

	// Sandbox* seed a merchant for local runs (GO_ENV=local).
	SandboxAPIKey        string `env:"SANDBOX_API_KEY" envDefault:"sk_test_sandbox"`
	SandboxWebhookURL    string `env:"SANDBOX_WEBHOOK_URL"`
	SandboxWebhookSecret string `env:"SANDBOX_WEBHOOK_SECRET" envDefault:"whsec_sandbox"`
}

type Kafka struct {
	Brokers          string `env:"KAFKA_BROKERS" envDefault:"localhost:9092"`
	ConsumerGroup    string `env:"KAFKA_GATEWAY_GROUP_ID" envDefault:"checkout-gateway"`
	PublishTopics    string `env:"KAFKA_PUBLISH_TOPICS" envDefault:"webhooks.delivery.requested,payments.completed,payments.dlq"`
	SubscriberTopics string `env:"KAFKA_SUBSCRIBER_TOPICS" envDefault:"webhooks.delivery.requested"`
	ConsumerWorkers  int    `env:"KAFKA_CONSUMER_WORKERS" envDefault:"8"`

	RetryMaxAttempts int           `env:"KAFKA_RETRY_MAX_ATTEMPTS" envDefault:"5"`
	RetryBaseDelay   time.Duration `env:"KAFKA_RETRY_BASE_DELAY" envDefault:"100ms"`
	RetryMaxDelay    time.Duration `env:"KAFKA_RETRY_MAX_DELAY" envDefault:"10s"`
	RetryJitter      bool          `env:"KAFKA_RETRY_JITTER" envDefault:"true"`
}

// Checkout holds the money and risk knobs of the processing core.
type Checkout struct {
	SessionTTL       time.Duration `env:"CHECKOUT_SESSION_TTL" envDefault:"1h"`
	FeePercent       float64       `env:"CHECKOUT_FEE_PERCENT" envDefault:"2.5"`
	FeeFixed         int64         `env:"CHECKOUT_FEE_FIXED" envDefault:"30"`
	FraudThreshold   int64         `env:"FRAUD_HIGH_VALUE_THRESHOLD" envDefault:"100000"`
	FraudScore       int           `env:"FRAUD_HIGH_VALUE_SCORE" envDefault:"85"`
	SimulatedLatency time.Duration `env:"CHECKOUT_SIMULATED_LATENCY" envDefault:"2s"`
	// SimulatorSeed fixes the random source of the simulator; zero means seed from the clock.
	SimulatorSeed     uint64        `env:"CHECKOUT_SIMULATOR_SEED" envDefault:"0"`
	ReconcileSchedule string        `env:"RECONCILE_SCHEDULE" envDefault:"@every 1m"`
	ReconcileAfter    time.Duration `env:"RECONCILE_AFTER" envDefault:"5m"`
}

type Webhook struct {
	MaxAttempts   int           `env:"WEBHOOK_MAX_ATTEMPTS" envDefault:"5"`
	Timeout       time.Duration `env:"WEBHOOK_TIMEOUT" envDefault:"10s"`
	RetrySchedule string        `env:"WEBHOOK_RETRY_SCHEDULE" envDefault:"@every 30s"`
	RetryAfter    time.Duration `env:"WEBHOOK_RETRY_AFTER" envDefault:"1m"`
}

type RetryConfig struct {
	MaxAttempts int
	BaseDelay   time.Duration
	MaxDelay    time.Duration
	Jitter      bool
}

func (k Kafka) GetRetryConfig() RetryConfig {
	return RetryConfig{
		MaxAttempts: k.RetryMaxAttempts,
		BaseDelay:   k.RetryBaseDelay,
		MaxDelay:    k.RetryMaxDelay,
		Jitter:      k.RetryJitter,
	}
}
