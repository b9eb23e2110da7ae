package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/jeffleon2/draftea-checkout-gateway/internal/metrics"
	"github.com/jeffleon2/draftea-checkout-gateway/internal/models"
	"github.com/jeffleon2/draftea-checkout-gateway/internal/models/dto"
	"github.com/sirupsen/logrus"
)

const DefaultSessionTTL = time.Hour

// SessionRepo defines the persistence operations for checkout sessions.
// TransitionStatus must be a single conditional update so that concurrent
// checkout attempts on one session cannot both leave requires_payment_method.
type SessionRepo interface {
	Create(ctx context.Context, session *models.PaymentSession) error
	GetByID(ctx context.Context, id string) (*models.PaymentSession, error)
	List(ctx context.Context, opts models.ListOptions) (*[]models.PaymentSession, error)
	TransitionStatus(ctx context.Context, id string, from, to interface{}) (bool, error)
}

// SessionService creates checkout sessions and decides whether one is payable.
type SessionService struct {
	Repo SessionRepo
	TTL  time.Duration
	Now  func() time.Time
}

func NewSessionService(repo SessionRepo, ttl time.Duration) *SessionService {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return &SessionService{
		Repo: repo,
		TTL:  ttl,
		Now:  time.Now,
	}
}

// CreateSession validates the request and persists a session awaiting a payment method.
func (s *SessionService) CreateSession(ctx context.Context, merchantID string, req *dto.CreateSessionRequest) (*models.PaymentSession, error) {
	req.Sanitize()
	if err := req.Validate(); err != nil {
		return nil, err
	}

	token, err := newWidgetToken()
	if err != nil {
		return nil, fmt.Errorf("error generating widget token: %w", err)
	}

	session := req.ToEntity(merchantID)
	now := s.Now().UTC()
	session.WidgetToken = token
	session.CreatedAt = now
	session.ExpiresAt = now.Add(s.TTL)

	if err := s.Repo.Create(ctx, session); err != nil {
		logrus.WithField("merchant_id", merchantID).Errorf("Session creation error: %s", err.Error())
		return nil, models.NewPersistenceError("Failed to create payment session", err)
	}

	metrics.SessionsCreatedTotal.WithLabelValues(session.Currency).Inc()
	logrus.WithFields(logrus.Fields{
		"session_id":  session.ID,
		"merchant_id": merchantID,
		"amount":      session.Amount,
		"currency":    session.Currency,
	}).Info("Payment session created")

	return session, nil
}

// GetSessionForCheckout returns the session only while it can still be paid.
// Expiry is judged against the clock at call time.
func (s *SessionService) GetSessionForCheckout(ctx context.Context, id string) (*models.PaymentSession, error) {
	session, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}

	if session.Status != models.SessionRequiresPaymentMethod {
		return nil, models.ErrSessionNotPayable
	}

	if session.ExpiredAt(s.Now()) {
		return nil, models.ErrSessionExpired
	}

	return session, nil
}

// GetMerchantSession returns a session owned by merchantID; other merchants' sessions read as missing.
func (s *SessionService) GetMerchantSession(ctx context.Context, merchantID, id string) (*models.PaymentSession, error) {
	session, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if session.MerchantID != merchantID {
		return nil, models.ErrSessionNotFound
	}
	return session, nil
}

func (s *SessionService) load(ctx context.Context, id string) (*models.PaymentSession, error) {
	session, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, models.ErrRecordNotFound) {
			return nil, models.ErrSessionNotFound
		}
		return nil, models.NewPersistenceError("Failed to load payment session", err)
	}
	return session, nil
}

func newWidgetToken() (string, error) {
	b := make([]byte, 8)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return "wt_" + hex.EncodeToString(b), nil
}
