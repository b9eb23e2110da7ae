package service

import (
	"context"
	"errors"

	"github.com/jeffleon2/draftea-checkout-gateway/internal/models"
	"github.com/jeffleon2/draftea-checkout-gateway/internal/models/dto"
)

// PaymentService serves the merchant's read-only view of processed payments.
type PaymentService struct {
	Repo PaymentRepo
}

// NewPaymentService creates a new PaymentService with the provided repository.
func NewPaymentService(repo PaymentRepo) *PaymentService {
	return &PaymentService{
		Repo: repo,
	}
}

// ListPayments returns one page of the merchant's payments, newest first,
// together with the total number of matches.
func (s *PaymentService) ListPayments(ctx context.Context, merchantID string, query *dto.ListPaymentsQuery) (*dto.PaymentList, error) {
	query.Sanitize()
	if err := query.Validate(); err != nil {
		return nil, err
	}

	opts := query.ToListOptions(merchantID)
	payments, err := s.Repo.List(ctx, opts)
	if err != nil {
		return nil, models.NewPersistenceError("Failed to list payments", err)
	}

	total, err := s.Repo.Count(ctx, opts.Filters)
	if err != nil {
		return nil, models.NewPersistenceError("Failed to count payments", err)
	}

	data := *payments
	if data == nil {
		data = []models.Payment{}
	}

	return &dto.PaymentList{
		Data:    data,
		HasMore: int64(opts.Offset+len(data)) < total,
		Total:   total,
	}, nil
}

// GetPayment returns a payment owned by merchantID.
func (s *PaymentService) GetPayment(ctx context.Context, merchantID, id string) (*models.Payment, error) {
	payment, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, models.ErrRecordNotFound) {
			return nil, models.ErrPaymentNotFound
		}
		return nil, models.NewPersistenceError("Failed to load payment", err)
	}
	if payment.MerchantID != merchantID {
		return nil, models.ErrPaymentNotFound
	}
	return payment, nil
}
