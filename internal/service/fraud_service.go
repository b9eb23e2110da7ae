package service

import (
	"context"
	"fmt"

	"github.com/jeffleon2/draftea-checkout-gateway/internal/metrics"
	"github.com/jeffleon2/draftea-checkout-gateway/internal/models"
	"github.com/sirupsen/logrus"
)

const (
	DefaultFraudThreshold = 100000
	DefaultFraudScore     = 85
)

type FraudFlagRepo interface {
	Create(ctx context.Context, flag *models.FraudFlag) error
}

// FraudService flags successful payments that look risky.
// The only rule today is the high-value check: amounts strictly above
// Threshold minor units get one flag with Score.
type FraudService struct {
	Repo      FraudFlagRepo
	Threshold int64
	Score     int
}

// NewFraudService builds the service. A zero threshold flags every successful
// payment; negative thresholds and scores outside 0..100 fall back to the
// defaults.
func NewFraudService(repo FraudFlagRepo, threshold int64, score int) *FraudService {
	if threshold < 0 {
		logrus.Warnf("Invalid fraud threshold %d, using %d", threshold, DefaultFraudThreshold)
		threshold = DefaultFraudThreshold
	}
	if score < 0 || score > 100 {
		logrus.Warnf("Invalid fraud score %d, using %d", score, DefaultFraudScore)
		score = DefaultFraudScore
	}
	return &FraudService{
		Repo:      repo,
		Threshold: threshold,
		Score:     score,
	}
}

// Evaluate persists a flag for payment when a rule matches and returns it.
// A nil flag with nil error means the payment is clean.
func (s *FraudService) Evaluate(ctx context.Context, payment *models.Payment) (*models.FraudFlag, error) {
	if !payment.Succeeded() || payment.Amount <= s.Threshold {
		return nil, nil
	}

	flag := &models.FraudFlag{
		PaymentID: payment.ID,
		Reason:    models.FraudReasonHighValue,
		Score:     s.Score,
	}
	if err := s.Repo.Create(ctx, flag); err != nil {
		return nil, fmt.Errorf("error saving fraud flag for payment %s: %w", payment.ID, err)
	}

	metrics.FraudFlagsTotal.WithLabelValues(flag.Reason).Inc()
	logrus.WithFields(logrus.Fields{
		"payment_id": payment.ID,
		"amount":     payment.Amount,
		"score":      flag.Score,
	}).Warn("High value payment flagged for review")

	return flag, nil
}
