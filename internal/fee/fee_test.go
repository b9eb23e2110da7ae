package fee_test

import (
	"context"
	"testing"

	"github.com/jeffleon2/draftea-checkout-gateway/internal/fee"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFee_DefaultSchedule(t *testing.T) {
	cases := []struct {
		amount int64
		fee    int64
		net    int64
	}{
		{amount: 100, fee: 33, net: 67},
		{amount: 4999, fee: 155, net: 4844},
		{amount: 1000000, fee: 25030, net: 974970},
	}

	schedule := fee.Default()
	for _, tc := range cases {
		feeAmount, netAmount := schedule.Apply(tc.amount, true)
		assert.Equal(t, tc.fee, feeAmount, "fee for %d", tc.amount)
		assert.Equal(t, tc.net, netAmount, "net for %d", tc.amount)
	}
}

func TestFee_FailedPaymentIsZero(t *testing.T) {
	schedule := fee.Default()

	for _, amount := range []int64{100, 4999, 1000000} {
		feeAmount, netAmount := schedule.Apply(amount, false)
		assert.Zero(t, feeAmount)
		assert.Zero(t, netAmount)
	}
}

func TestFee_RoundsHalfAwayFromZero(t *testing.T) {
	schedule := fee.Schedule{Percent: decimal.NewFromFloat(2.5), Fixed: 0}

	// 20 * 2.5% = 0.5 -> 1, 60 * 2.5% = 1.5 -> 2, 19 * 2.5% = 0.475 -> 0
	assert.Equal(t, int64(1), schedule.Fee(20))
	assert.Equal(t, int64(2), schedule.Fee(60))
	assert.Equal(t, int64(0), schedule.Fee(19))
}

func TestFee_CustomSchedule(t *testing.T) {
	schedule := fee.New(2.9, 25)

	assert.Equal(t, int64(315), schedule.Fee(10000))
	assert.Equal(t, schedule, schedule.Current(context.Background()))
}
