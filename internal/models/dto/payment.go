package dto

import (
	"strings"
	"time"

	"github.com/jeffleon2/draftea-checkout-gateway/internal/models"
)

const (
	DefaultPageLimit = 20
	MaxPageLimit     = 100
)

type ListPaymentsQuery struct {
	Limit         int        `form:"limit"`
	Offset        int        `form:"offset"`
	Status        string     `form:"status"`
	CreatedAfter  *time.Time `form:"created_after" time_format:"2006-01-02T15:04:05Z07:00"`
	CreatedBefore *time.Time `form:"created_before" time_format:"2006-01-02T15:04:05Z07:00"`
}

func (q *ListPaymentsQuery) Sanitize() {
	q.Status = strings.ToLower(strings.TrimSpace(q.Status))
	if q.Limit <= 0 {
		q.Limit = DefaultPageLimit
	}
	if q.Limit > MaxPageLimit {
		q.Limit = MaxPageLimit
	}
	if q.Offset < 0 {
		q.Offset = 0
	}
}

func (q *ListPaymentsQuery) Validate() error {
	if q.Status != "" && !models.PaymentStatus(q.Status).IsValid() {
		return models.NewValidationError("invalid_status", "Status must be succeeded or failed")
	}
	if q.CreatedAfter != nil && q.CreatedBefore != nil && q.CreatedAfter.After(*q.CreatedBefore) {
		return models.NewValidationError("invalid_range", "created_after must not be later than created_before")
	}
	return nil
}

// ToListOptions scopes the query to one merchant, newest first.
func (q *ListPaymentsQuery) ToListOptions(merchantID string) models.ListOptions {
	filters := []models.Filter{models.Where("merchant_id = ?", merchantID)}
	if q.Status != "" {
		filters = append(filters, models.Where("status = ?", q.Status))
	}
	if q.CreatedAfter != nil {
		filters = append(filters, models.Where("created_at >= ?", *q.CreatedAfter))
	}
	if q.CreatedBefore != nil {
		filters = append(filters, models.Where("created_at <= ?", *q.CreatedBefore))
	}
	return models.ListOptions{
		Filters: filters,
		Order:   "created_at DESC",
		Limit:   q.Limit,
		Offset:  q.Offset,
	}
}

type PaymentList struct {
	Data    []models.Payment `json:"data"`
	HasMore bool             `json:"has_more"`
	Total   int64            `json:"total"`
}
