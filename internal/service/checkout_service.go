package service

import (
	"context"
	"errors"
	"time"

	"github.com/jeffleon2/draftea-checkout-gateway/internal/fee"
	"github.com/jeffleon2/draftea-checkout-gateway/internal/metrics"
	"github.com/jeffleon2/draftea-checkout-gateway/internal/models"
	"github.com/jeffleon2/draftea-checkout-gateway/internal/models/dto"
	"github.com/jeffleon2/draftea-checkout-gateway/internal/simulator"
	"github.com/sirupsen/logrus"
)

// Publisher defines the interface for publishing events to Kafka topics.
type Publisher interface {
	Publish(ctx context.Context, topic string, message interface{}) error
}

type PaymentRepo interface {
	Create(ctx context.Context, payment *models.Payment) error
	GetByID(ctx context.Context, id string) (*models.Payment, error)
	FindOne(ctx context.Context, conds map[string]interface{}) (*models.Payment, error)
	List(ctx context.Context, opts models.ListOptions) (*[]models.Payment, error)
	Count(ctx context.Context, filters []models.Filter) (int64, error)
}

type PayableSessions interface {
	GetSessionForCheckout(ctx context.Context, id string) (*models.PaymentSession, error)
}

type SessionTransitioner interface {
	TransitionStatus(ctx context.Context, id string, from, to interface{}) (bool, error)
}

type PaymentSimulator interface {
	Simulate(ctx context.Context, req simulator.Request) (simulator.Result, error)
}

type FeeSchedule interface {
	Current(ctx context.Context) fee.Schedule
}

type FraudEvaluator interface {
	Evaluate(ctx context.Context, payment *models.Payment) (*models.FraudFlag, error)
}

type WebhookDispatcher interface {
	Dispatch(ctx context.Context, payment *models.Payment) error
}

// CheckoutService drives a session from requires_payment_method to a terminal
// status, producing exactly one Payment per session.
type CheckoutService struct {
	Sessions    PayableSessions
	Transitions SessionTransitioner
	Payments    PaymentRepo
	Simulator   PaymentSimulator
	Fees        FeeSchedule
	Fraud       FraudEvaluator
	Webhooks    WebhookDispatcher
	Publisher   Publisher
	Now         func() time.Time
}

func NewCheckoutService(
	sessions PayableSessions,
	transitions SessionTransitioner,
	payments PaymentRepo,
	sim PaymentSimulator,
	fees FeeSchedule,
	fraud FraudEvaluator,
	webhooks WebhookDispatcher,
	publisher Publisher,
) *CheckoutService {
	return &CheckoutService{
		Sessions:    sessions,
		Transitions: transitions,
		Payments:    payments,
		Simulator:   sim,
		Fees:        fees,
		Fraud:       fraud,
		Webhooks:    webhooks,
		Publisher:   publisher,
		Now:         time.Now,
	}
}

// Confirm processes one checkout attempt for sessionID.
//
// A decline is not an error: the returned Payment carries the failure reason.
// Errors are returned only when the attempt could not be made or recorded.
// Once the session is claimed the attempt no longer follows ctx cancellation.
func (s *CheckoutService) Confirm(ctx context.Context, sessionID string, req *dto.ConfirmPaymentRequest) (*models.Payment, error) {
	req.Sanitize()
	if err := req.Validate(); err != nil {
		return nil, err
	}

	session, err := s.Sessions.GetSessionForCheckout(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	claimed, err := s.Transitions.TransitionStatus(ctx, session.ID, models.SessionRequiresPaymentMethod, models.SessionProcessing)
	if err != nil {
		logrus.WithField("session_id", session.ID).Errorf("Error claiming session: %s", err.Error())
		return nil, models.NewProcessingError(err)
	}
	if !claimed {
		return nil, models.ErrSessionNotPayable
	}

	ctx = context.WithoutCancel(ctx)
	log := logrus.WithFields(logrus.Fields{
		"session_id":  session.ID,
		"merchant_id": session.MerchantID,
		"method":      req.Method,
	})

	result, err := s.Simulator.Simulate(ctx, simulationRequest(req))
	if err != nil {
		log.Errorf("Error simulating payment: %s", err.Error())
		s.release(ctx, session.ID)
		return nil, models.NewProcessingError(err)
	}

	feeAmount, netAmount := s.Fees.Current(ctx).Apply(session.Amount, result.Succeeded)
	payment := &models.Payment{
		SessionID:     session.ID,
		MerchantID:    session.MerchantID,
		Amount:        session.Amount,
		Currency:      session.Currency,
		Method:        req.Method,
		MaskedDetails: result.MaskedDetails,
		Status:        result.Status(),
		FailureReason: result.FailureReason,
		FeeAmount:     feeAmount,
		NetAmount:     netAmount,
		CreatedAt:     s.Now().UTC(),
	}

	if err := s.Payments.Create(ctx, payment); err != nil {
		log.Errorf("Error saving payment: %s", err.Error())
		s.release(ctx, session.ID)
		return nil, models.NewProcessingError(err)
	}

	final := models.SessionFailed
	if payment.Succeeded() {
		final = models.SessionSucceeded
	}
	moved, err := s.Transitions.TransitionStatus(ctx, session.ID, models.SessionProcessing, final)
	if err != nil || !moved {
		// the payment exists, so the reconciler can finish the session
		log.WithField("payment_id", payment.ID).Errorf("Error finalising session to %s: %v", final, err)
	}

	metrics.PaymentsTotal.WithLabelValues(string(payment.Method), string(payment.Status)).Inc()
	metrics.PaymentAmounts.WithLabelValues(payment.Currency).Observe(float64(payment.Amount))
	log.WithFields(logrus.Fields{
		"payment_id": payment.ID,
		"status":     payment.Status,
		"fee":        payment.FeeAmount,
	}).Info("Payment processed")

	if _, err := s.Fraud.Evaluate(ctx, payment); err != nil {
		log.Errorf("Error evaluating fraud: %s", err.Error())
	}

	if err := s.Webhooks.Dispatch(ctx, payment); err != nil {
		log.Errorf("Error dispatching webhooks: %s", err.Error())
	}

	if err := s.Publisher.Publish(ctx, models.PaymentCompletedTopic, completedEvent(payment)); err != nil {
		log.Errorf("Error publishing payment completed event: %s", err.Error())
	}

	return payment, nil
}

// release hands a claimed session back when no payment could be recorded.
func (s *CheckoutService) release(ctx context.Context, sessionID string) {
	ok, err := s.Transitions.TransitionStatus(ctx, sessionID, models.SessionProcessing, models.SessionRequiresPaymentMethod)
	if err == nil && !ok {
		err = errors.New("session no longer processing")
	}
	if err != nil {
		logrus.WithField("session_id", sessionID).Errorf("Error releasing session: %s", err.Error())
	}
}

func simulationRequest(req *dto.ConfirmPaymentRequest) simulator.Request {
	out := simulator.Request{Method: req.Method}
	if req.Card != nil {
		out.Card = &simulator.Card{Number: req.Card.Number}
	}
	if req.Bank != nil {
		out.Bank = &simulator.Bank{Routing: req.Bank.Routing, Account: req.Bank.Account}
	}
	return out
}

func completedEvent(p *models.Payment) models.PaymentCompletedEvent {
	evt := models.PaymentCompletedEvent{
		ID:         p.ID,
		SessionID:  p.SessionID,
		MerchantID: p.MerchantID,
		Amount:     p.Amount,
		Currency:   p.Currency,
		Method:     string(p.Method),
		Status:     string(p.Status),
		FeeAmount:  p.FeeAmount,
		NetAmount:  p.NetAmount,
		CreatedAt:  p.CreatedAt,
	}
	if p.FailureReason != nil {
		evt.FailureReason = string(*p.FailureReason)
	}
	return evt
}
