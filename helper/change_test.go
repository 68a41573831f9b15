package helper

import (
	"errors"
	"testing"

	"cinema_ops/model"
)

func TestComputeChangeExact(t *testing.T) {
	change, breakdown, err := ComputeChange(10.00, 10.00)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if change != 0 {
		t.Errorf("change = %v, want 0", change)
	}
	if len(breakdown) != 0 {
		t.Errorf("breakdown = %v, want empty", breakdown)
	}
}

func TestComputeChangeBreakdown(t *testing.T) {
	tests := []struct {
		name string
		owed float64
		paid float64
		want model.ChangeBreakdown
	}{
		{
			name: "one fifty",
			owed: 18.50, paid: 20.00,
			want: model.ChangeBreakdown{"1.00": 1, "0.50": 1},
		},
		{
			name: "seven cents",
			owed: 9.93, paid: 10.00,
			want: model.ChangeBreakdown{"0.05": 1, "0.01": 2},
		},
		{
			name: "large note",
			owed: 12.25, paid: 100.00,
			want: model.ChangeBreakdown{"50.00": 1, "20.00": 1, "10.00": 1, "5.00": 1, "2.00": 1, "0.50": 1, "0.25": 1},
		},
		{
			name: "single cent",
			owed: 19.99, paid: 20.00,
			want: model.ChangeBreakdown{"0.01": 1},
		},
		{
			name: "quarter preferred over dimes",
			owed: 0.75, paid: 1.00,
			want: model.ChangeBreakdown{"0.25": 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			change, breakdown, err := ComputeChange(tt.owed, tt.paid)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(breakdown) != len(tt.want) {
				t.Fatalf("breakdown = %v, want %v", breakdown, tt.want)
			}
			for denom, count := range tt.want {
				if breakdown[denom] != count {
					t.Errorf("breakdown[%s] = %d, want %d", denom, breakdown[denom], count)
				}
			}
			if got := breakdown.Total(); got != change {
				t.Errorf("breakdown sums to %v, change is %v", got, change)
			}
		})
	}
}

func TestComputeChangeInsufficient(t *testing.T) {
	_, _, err := ComputeChange(20.00, 19.99)
	if !errors.Is(err, model.ErrInsufficientPayment) {
		t.Fatalf("err = %v, want ErrInsufficientPayment", err)
	}
}

func TestComputeChangeNegativeOwed(t *testing.T) {
	_, _, err := ComputeChange(-0.01, 5.00)
	if !errors.Is(err, model.ErrInvalidInput) {
		t.Fatalf("err = %v, want ErrInvalidInput", err)
	}
}

// Float inputs that are not exact binary fractions must still settle to
// the cent.
func TestComputeChangeSumsExactly(t *testing.T) {
	pairs := []struct{ owed, paid float64 }{
		{0.10, 0.30},
		{1.13, 2.00},
		{7.77, 50.00},
		{99.99, 100.00},
		{33.33, 66.66},
	}
	for _, p := range pairs {
		change, breakdown, err := ComputeChange(p.owed, p.paid)
		if err != nil {
			t.Fatalf("ComputeChange(%v, %v): %v", p.owed, p.paid, err)
		}
		if MoneyCents(change) != MoneyCents(p.paid)-MoneyCents(p.owed) {
			t.Errorf("change for (%v, %v) = %v", p.owed, p.paid, change)
		}
		if breakdown.Total() != change {
			t.Errorf("breakdown for (%v, %v) sums to %v, change is %v", p.owed, p.paid, breakdown.Total(), change)
		}
	}
}
