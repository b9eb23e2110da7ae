// Package fee computes the platform fee taken from a payment.
//
// The percentage term is rounded half away from zero to whole minor units
// before the fixed term is added: fee = round(amount * percent / 100) + fixed.
package fee

import (
	"context"

	"github.com/shopspring/decimal"
)

const (
	DefaultPercent = 2.5
	DefaultFixed   = 30
)

var hundred = decimal.NewFromInt(100)

type Schedule struct {
	Percent decimal.Decimal
	Fixed   int64
}

func Default() Schedule {
	return New(DefaultPercent, DefaultFixed)
}

func New(percent float64, fixed int64) Schedule {
	return Schedule{Percent: decimal.NewFromFloat(percent), Fixed: fixed}
}

// Fee returns the fee owed on a successful payment of amount minor units.
func (s Schedule) Fee(amount int64) int64 {
	// decimal.Round rounds half away from zero.
	pct := decimal.NewFromInt(amount).Mul(s.Percent).Div(hundred).Round(0)
	return pct.IntPart() + s.Fixed
}

// Apply returns fee and net for an outcome; both are zero when the payment failed.
func (s Schedule) Apply(amount int64, succeeded bool) (feeAmount, netAmount int64) {
	if !succeeded {
		return 0, 0
	}
	feeAmount = s.Fee(amount)
	return feeAmount, amount - feeAmount
}

// Current lets a fixed Schedule stand in wherever a per-attempt schedule source is expected.
func (s Schedule) Current(ctx context.Context) Schedule {
	return s
}
