// Package simulator decides the outcome of sandbox card and bank payments.
package simulator

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jeffleon2/draftea-checkout-gateway/internal/models"
)

const (
	CardAlwaysSucceeds    = "4242424242424242"
	CardGenericDecline    = "4000000000000002"
	CardInsufficientFunds = "4000000000009995"

	BankSuccessRouting = "110000000"
	BankSuccessAccount = "000123456789"
	BankInvalidRouting = "000000000"
)

const (
	luhnCardSuccessRate = 0.8
	bankSuccessRate     = 0.9
)

type Card struct {
	Number string
}

type Bank struct {
	Routing string
	Account string
}

type Request struct {
	Method models.PaymentMethod
	Card   *Card
	Bank   *Bank
}

type Result struct {
	Succeeded     bool
	FailureReason *models.FailureReason
	MaskedDetails string
}

func (r Result) Status() models.PaymentStatus {
	if r.Succeeded {
		return models.PaymentSucceeded
	}
	return models.PaymentFailed
}

type Simulator struct {
	chance  Chance
	latency time.Duration
}

func New(chance Chance, latency time.Duration) *Simulator {
	return &Simulator{chance: chance, latency: latency}
}

// Simulate waits out the simulated network latency and evaluates the request.
func (s *Simulator) Simulate(ctx context.Context, req Request) (Result, error) {
	if s.latency > 0 {
		timer := time.NewTimer(s.latency)
		defer timer.Stop()
		select {
		case <-timer.C:
		case <-ctx.Done():
			return Result{}, ctx.Err()
		}
	}

	switch req.Method {
	case models.MethodCard:
		if req.Card == nil {
			return Result{}, fmt.Errorf("card details missing")
		}
		return s.SimulateCard(*req.Card), nil
	case models.MethodBank:
		if req.Bank == nil {
			return Result{}, fmt.Errorf("bank details missing")
		}
		return s.SimulateBank(*req.Bank), nil
	default:
		return Result{}, fmt.Errorf("unsupported payment method %q", req.Method)
	}
}

func (s *Simulator) SimulateCard(card Card) Result {
	number := Digits(card.Number)
	res := Result{MaskedDetails: "**** **** **** " + lastFour(number)}

	switch {
	case number == CardAlwaysSucceeds:
		res.Succeeded = true
	case number == CardGenericDecline:
		res.FailureReason = reason(models.ReasonGenericDecline)
	case number == CardInsufficientFunds:
		res.FailureReason = reason(models.ReasonInsufficientFunds)
	case ValidLuhn(number):
		res.Succeeded = s.chance.Outcome(luhnCardSuccessRate)
		if !res.Succeeded {
			res.FailureReason = reason(models.ReasonGenericDecline)
		}
	default:
		res.FailureReason = reason(models.ReasonInvalidCardNumber)
	}
	return res
}

func (s *Simulator) SimulateBank(bank Bank) Result {
	res := Result{MaskedDetails: "****" + lastFour(bank.Account) + " (" + bank.Routing + ")"}

	switch {
	case bank.Routing == BankSuccessRouting && bank.Account == BankSuccessAccount:
		res.Succeeded = true
	case bank.Routing == BankInvalidRouting:
		res.FailureReason = reason(models.ReasonInvalidRoutingNumber)
	default:
		res.Succeeded = s.chance.Outcome(bankSuccessRate)
		if !res.Succeeded {
			res.FailureReason = reason(models.ReasonInsufficientFunds)
		}
	}
	return res
}

// Digits drops every non-digit character.
func Digits(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, c := range s {
		if c >= '0' && c <= '9' {
			b.WriteRune(c)
		}
	}
	return b.String()
}

// ValidLuhn reports whether a digit string passes the Luhn checksum.
// An empty string is not a card number.
func ValidLuhn(digits string) bool {
	if digits == "" {
		return false
	}
	sum := 0
	double := false
	for i := len(digits) - 1; i >= 0; i-- {
		d := int(digits[i] - '0')
		if d < 0 || d > 9 {
			return false
		}
		if double {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
		double = !double
	}
	return sum%10 == 0
}

func lastFour(s string) string {
	if len(s) <= 4 {
		return s
	}
	return s[len(s)-4:]
}

func reason(r models.FailureReason) *models.FailureReason {
	return &r
}
