package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/jeffleon2/draftea-checkout-gateway/internal/models"
	"github.com/sirupsen/logrus"
)

const touchTimeout = 5 * time.Second

// ApiKeyRepo defines the persistence operations the authenticator needs on api keys.
type ApiKeyRepo interface {
	FindOne(ctx context.Context, conds map[string]interface{}) (*models.ApiKey, error)
	UpdateColumns(ctx context.Context, id string, values map[string]interface{}) error
}

// MerchantRepo defines read access to merchant records.
type MerchantRepo interface {
	GetByID(ctx context.Context, id string) (*models.Merchant, error)
}

// AuthService validates merchant API keys against their stored SHA-256 hashes.
type AuthService struct {
	Keys      ApiKeyRepo
	Merchants MerchantRepo
	Now       func() time.Time

	pending sync.WaitGroup
}

func NewAuthService(keys ApiKeyRepo, merchants MerchantRepo) *AuthService {
	return &AuthService{
		Keys:      keys,
		Merchants: merchants,
		Now:       time.Now,
	}
}

// ExtractAPIKey picks the credential from the request headers.
// A bearer token wins over the X-API-Key header when both are present.
func ExtractAPIKey(authorization, apiKeyHeader string) string {
	authorization = strings.TrimSpace(authorization)
	if len(authorization) > len("Bearer ") && strings.EqualFold(authorization[:len("Bearer ")], "Bearer ") {
		if key := strings.TrimSpace(authorization[len("Bearer "):]); key != "" {
			return key
		}
	}
	return strings.TrimSpace(apiKeyHeader)
}

// HashAPIKey returns the hex-encoded SHA-256 digest stored for a secret key.
func HashAPIKey(raw string) string {
	sum := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(sum[:])
}

// Authenticate resolves rawKey to the approved merchant that owns it.
//
// On success the key's last_used_at is refreshed in the background; a failure
// there is logged and never reaches the caller.
func (s *AuthService) Authenticate(ctx context.Context, rawKey string) (*models.Merchant, error) {
	if rawKey == "" {
		return nil, models.ErrMissingCredential
	}

	key, err := s.Keys.FindOne(ctx, map[string]interface{}{
		"secret_key_hash": HashAPIKey(rawKey),
		"active":          true,
	})
	if err != nil {
		if errors.Is(err, models.ErrRecordNotFound) {
			return nil, models.ErrInvalidCredential
		}
		return nil, models.NewPersistenceError("Failed to verify API key", err)
	}

	merchant, err := s.Merchants.GetByID(ctx, key.MerchantID)
	if err != nil {
		if errors.Is(err, models.ErrRecordNotFound) {
			return nil, models.ErrInvalidCredential
		}
		return nil, models.NewPersistenceError("Failed to load merchant", err)
	}

	if !merchant.IsApproved() {
		return nil, models.ErrMerchantNotApproved
	}

	s.touch(ctx, key.ID)

	return merchant, nil
}

// Wait blocks until every background last_used_at update has finished.
func (s *AuthService) Wait() {
	s.pending.Wait()
}

func (s *AuthService) touch(ctx context.Context, keyID string) {
	usedAt := s.Now().UTC()
	s.pending.Add(1)
	go func() {
		defer s.pending.Done()
		ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), touchTimeout)
		defer cancel()
		if err := s.Keys.UpdateColumns(ctx, keyID, map[string]interface{}{"last_used_at": usedAt}); err != nil {
			logrus.WithField("api_key_id", keyID).Warnf("Error updating api key last use: %s", err.Error())
		}
	}()
}
