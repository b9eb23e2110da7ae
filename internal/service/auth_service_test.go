package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jeffleon2/draftea-checkout-gateway/internal/models"
	"github.com/jeffleon2/draftea-checkout-gateway/internal/service"
	"github.com/jeffleon2/draftea-checkout-gateway/internal/service/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func keyConds(raw string) map[string]interface{} {
	return map[string]interface{}{
		"secret_key_hash": service.HashAPIKey(raw),
		"active":          true,
	}
}

func TestHashAPIKey(t *testing.T) {
	assert.Equal(t, "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad", service.HashAPIKey("abc"))
}

func TestExtractAPIKey(t *testing.T) {
	assert.Equal(t, "sk_bearer", service.ExtractAPIKey("Bearer sk_bearer", "sk_header"))
	assert.Equal(t, "sk_bearer", service.ExtractAPIKey("bearer  sk_bearer ", ""))
	assert.Equal(t, "sk_header", service.ExtractAPIKey("", "sk_header"))
	assert.Equal(t, "sk_header", service.ExtractAPIKey("Basic abc", "sk_header"))
	assert.Equal(t, "sk_header", service.ExtractAPIKey("Bearer ", "sk_header"))
	assert.Equal(t, "", service.ExtractAPIKey("", ""))
}

func TestAuthenticate_MissingKey(t *testing.T) {
	keys := mocks.NewMockApiKeyRepo(t)
	merchants := mocks.NewMockMerchantRepo(t)
	auth := service.NewAuthService(keys, merchants)

	merchant, err := auth.Authenticate(context.Background(), "")

	assert.Nil(t, merchant)
	assert.ErrorIs(t, err, models.ErrMissingCredential)
}

func TestAuthenticate_UnknownKey(t *testing.T) {
	keys := mocks.NewMockApiKeyRepo(t)
	merchants := mocks.NewMockMerchantRepo(t)
	auth := service.NewAuthService(keys, merchants)
	ctx := context.Background()

	keys.EXPECT().
		FindOne(ctx, keyConds("sk_unknown")).
		Return(nil, models.ErrRecordNotFound).
		Once()

	merchant, err := auth.Authenticate(ctx, "sk_unknown")

	assert.Nil(t, merchant)
	assert.ErrorIs(t, err, models.ErrInvalidCredential)
}

func TestAuthenticate_StoreError(t *testing.T) {
	keys := mocks.NewMockApiKeyRepo(t)
	merchants := mocks.NewMockMerchantRepo(t)
	auth := service.NewAuthService(keys, merchants)
	ctx := context.Background()

	keys.EXPECT().
		FindOne(ctx, keyConds("sk_live")).
		Return(nil, errors.New("connection refused")).
		Once()

	_, err := auth.Authenticate(ctx, "sk_live")

	require.Error(t, err)
	assert.Equal(t, models.ErrorTypeAPI, models.AsGatewayError(err).Type)
}

func TestAuthenticate_MerchantNotApproved(t *testing.T) {
	for _, status := range []models.MerchantStatus{models.MerchantStatusPending, models.MerchantStatusBlocked} {
		keys := mocks.NewMockApiKeyRepo(t)
		merchants := mocks.NewMockMerchantRepo(t)
		auth := service.NewAuthService(keys, merchants)
		ctx := context.Background()

		keys.EXPECT().
			FindOne(ctx, keyConds("sk_live")).
			Return(&models.ApiKey{ID: "key-1", MerchantID: "m-1", Active: true}, nil).
			Once()
		merchants.EXPECT().
			GetByID(ctx, "m-1").
			Return(&models.Merchant{ID: "m-1", Status: status}, nil).
			Once()

		merchant, err := auth.Authenticate(ctx, "sk_live")

		assert.Nil(t, merchant, status)
		assert.ErrorIs(t, err, models.ErrMerchantNotApproved, status)
		keys.AssertNotCalled(t, "UpdateColumns", mock.Anything, mock.Anything, mock.Anything)
	}
}

func TestAuthenticate_Success_RecordsLastUse(t *testing.T) {
	keys := mocks.NewMockApiKeyRepo(t)
	merchants := mocks.NewMockMerchantRepo(t)
	auth := service.NewAuthService(keys, merchants)
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	auth.Now = func() time.Time { return now }
	ctx := context.Background()

	keys.EXPECT().
		FindOne(ctx, keyConds("sk_live")).
		Return(&models.ApiKey{ID: "key-1", MerchantID: "m-1", Active: true}, nil).
		Once()
	merchants.EXPECT().
		GetByID(ctx, "m-1").
		Return(&models.Merchant{ID: "m-1", Status: models.MerchantStatusApproved}, nil).
		Once()
	keys.EXPECT().
		UpdateColumns(mock.Anything, "key-1", map[string]interface{}{"last_used_at": now}).
		Return(nil).
		Once()

	merchant, err := auth.Authenticate(ctx, "sk_live")
	auth.Wait()

	require.NoError(t, err)
	assert.Equal(t, "m-1", merchant.ID)
}

func TestAuthenticate_LastUseFailureIsIgnored(t *testing.T) {
	keys := mocks.NewMockApiKeyRepo(t)
	merchants := mocks.NewMockMerchantRepo(t)
	auth := service.NewAuthService(keys, merchants)
	ctx, cancel := context.WithCancel(context.Background())

	keys.EXPECT().
		FindOne(ctx, keyConds("sk_live")).
		Return(&models.ApiKey{ID: "key-1", MerchantID: "m-1", Active: true}, nil).
		Once()
	merchants.EXPECT().
		GetByID(ctx, "m-1").
		Return(&models.Merchant{ID: "m-1", Status: models.MerchantStatusApproved}, nil).
		Once()
	keys.EXPECT().
		UpdateColumns(mock.Anything, "key-1", mock.Anything).
		RunAndReturn(func(ctx context.Context, id string, values map[string]interface{}) error {
			assert.NoError(t, ctx.Err())
			return errors.New("write timeout")
		}).
		Once()

	merchant, err := auth.Authenticate(ctx, "sk_live")
	cancel()
	auth.Wait()

	require.NoError(t, err)
	assert.Equal(t, "m-1", merchant.ID)
}
