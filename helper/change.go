package helper

import (
	"fmt"
	"math"

	"cinema_ops/model"
)

// DenominationLadder is the fixed, descending set of currency units used
// for change breakdown. The greedy reduction below is optimal only for
// canonical ladders like this one; swapping in an arbitrary ladder is not
// supported.
var DenominationLadder = []float64{100, 50, 20, 10, 5, 2, 1, 0.50, 0.25, 0.10, 0.05, 0.01}

// RoundMoney rounds to the cent. Every monetary intermediate goes through
// here so amounts never drift from exact cent values.
func RoundMoney(v float64) float64 {
	return math.Round(v*100) / 100
}

// MoneyCents converts an amount to integer cents.
func MoneyCents(v float64) int64 {
	return int64(math.Round(v * 100))
}

// FormatDenomination renders a ladder value the way breakdown keys are
// stored: two decimals, no symbol.
func FormatDenomination(denom float64) string {
	return fmt.Sprintf("%.2f", denom)
}

// ComputeChange settles a cash payment: it returns the change amount and a
// denomination-by-denomination breakdown that sums to it exactly. Paying
// less than owed fails with ErrInsufficientPayment; a negative owed amount
// is rejected as invalid input. Equal amounts produce zero change and an
// empty breakdown.
func ComputeChange(owed, paid float64) (float64, model.ChangeBreakdown, error) {
	if owed < 0 {
		return 0, nil, model.ErrInvalidInput
	}
	owedCents := MoneyCents(owed)
	paidCents := MoneyCents(paid)
	if paidCents < owedCents {
		return 0, nil, model.ErrInsufficientPayment
	}

	breakdown := model.ChangeBreakdown{}
	remaining := paidCents - owedCents
	change := float64(remaining) / 100

	// Greedy largest-first walk down the ladder, in integer cents.
	for _, denom := range DenominationLadder {
		if remaining <= 0 {
			break
		}
		denomCents := MoneyCents(denom)
		count := remaining / denomCents
		if count > 0 {
			breakdown[FormatDenomination(denom)] = int(count)
			remaining -= count * denomCents
		}
	}
	return change, breakdown, nil
}
