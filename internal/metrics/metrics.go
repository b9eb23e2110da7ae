package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	SessionsCreatedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "checkout_sessions_created_total",
			Help: "Total number of checkout sessions created",
		},
		[]string{"currency"},
	)

	PaymentsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "checkout_payments_total",
			Help: "Total number of processed payments",
		},
		[]string{"method", "status"},
	)

	PaymentAmounts = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "checkout_payment_amounts",
			Help:    "Distribution of payment amounts in minor units",
			Buckets: prometheus.ExponentialBuckets(100, 4, 10),
		},
		[]string{"currency"},
	)

	FraudFlagsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "checkout_fraud_flags_total",
			Help: "Total number of fraud flags raised",
		},
		[]string{"reason"},
	)

	WebhookDeliveriesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "checkout_webhook_deliveries_total",
			Help: "Webhook delivery attempts by outcome",
		},
		[]string{"outcome"},
	)

	SessionsReconciledTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "checkout_sessions_reconciled_total",
			Help: "Sessions moved out of processing by the reconciler",
		},
		[]string{"status"},
	)
)

var registerOnce sync.Once

func RegisterMetrics() {
	registerOnce.Do(func() {
		prometheus.MustRegister(
			SessionsCreatedTotal,
			PaymentsTotal,
			PaymentAmounts,
			FraudFlagsTotal,
			WebhookDeliveriesTotal,
			SessionsReconciledTotal,
		)
	})
}
