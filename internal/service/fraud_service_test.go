package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/jeffleon2/draftea-checkout-gateway/internal/models"
	"github.com/jeffleon2/draftea-checkout-gateway/internal/service"
	"github.com/jeffleon2/draftea-checkout-gateway/internal/service/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestEvaluate_ExactThreshold_NoFlag(t *testing.T) {
	repo := mocks.NewMockFraudFlagRepo(t)
	fraud := service.NewFraudService(repo, 100000, 85)

	flag, err := fraud.Evaluate(context.Background(), &models.Payment{ID: "p-1", Amount: 100000, Status: models.PaymentSucceeded})

	assert.NoError(t, err)
	assert.Nil(t, flag)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestEvaluate_AboveThreshold_Flagged(t *testing.T) {
	repo := mocks.NewMockFraudFlagRepo(t)
	fraud := service.NewFraudService(repo, 100000, 85)
	ctx := context.Background()

	repo.EXPECT().
		Create(ctx, mock.MatchedBy(func(f *models.FraudFlag) bool {
			return f.PaymentID == "p-1" &&
				f.Reason == "high_value_transaction" &&
				f.Score == 85
		})).
		Return(nil).
		Once()

	flag, err := fraud.Evaluate(ctx, &models.Payment{ID: "p-1", Amount: 100001, Status: models.PaymentSucceeded})

	require.NoError(t, err)
	require.NotNil(t, flag)
	assert.Equal(t, 85, flag.Score)
}

func TestEvaluate_FailedPayment_NoFlag(t *testing.T) {
	repo := mocks.NewMockFraudFlagRepo(t)
	fraud := service.NewFraudService(repo, 100000, 85)

	flag, err := fraud.Evaluate(context.Background(), &models.Payment{ID: "p-1", Amount: 200000, Status: models.PaymentFailed})

	assert.NoError(t, err)
	assert.Nil(t, flag)
}

func TestEvaluate_RepoError(t *testing.T) {
	repo := mocks.NewMockFraudFlagRepo(t)
	fraud := service.NewFraudService(repo, -1, 101)
	ctx := context.Background()

	repo.EXPECT().Create(ctx, mock.Anything).Return(errors.New("insert failed")).Once()

	flag, err := fraud.Evaluate(ctx, &models.Payment{ID: "p-1", Amount: 500000, Status: models.PaymentSucceeded})

	assert.Error(t, err)
	assert.Nil(t, flag)
	assert.Equal(t, int64(service.DefaultFraudThreshold), fraud.Threshold)
	assert.Equal(t, service.DefaultFraudScore, fraud.Score)
}

func TestEvaluate_ZeroThresholdFlagsEverySuccess(t *testing.T) {
	repo := mocks.NewMockFraudFlagRepo(t)
	fraud := service.NewFraudService(repo, 0, 40)
	ctx := context.Background()

	repo.EXPECT().
		Create(ctx, mock.MatchedBy(func(f *models.FraudFlag) bool { return f.PaymentID == "p-1" && f.Score == 40 })).
		Return(nil).
		Once()

	flag, err := fraud.Evaluate(ctx, &models.Payment{ID: "p-1", Amount: 1, Status: models.PaymentSucceeded})
	require.NoError(t, err)
	assert.NotNil(t, flag)
	assert.Equal(t, int64(0), fraud.Threshold)

	flag, err = fraud.Evaluate(ctx, &models.Payment{ID: "p-2", Amount: 1, Status: models.PaymentFailed})
	require.NoError(t, err)
	assert.Nil(t, flag)
}
