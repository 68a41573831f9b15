package helper

import (
	"errors"
	"testing"
	"time"

	"cinema_ops/model"
)

func TestComputeTicketPrice(t *testing.T) {
	tests := []struct {
		name    string
		kind    model.TicketKind
		face    float64
		want    float64
		wantErr bool
	}{
		{"full at face", model.TicketFullPrice, 20.00, 20.00, false},
		{"discounted half", model.TicketDiscounted, 20.00, 10.00, false},
		{"discounted rounds to cent", model.TicketDiscounted, 9.99, 5.00, false},
		{"zero face", model.TicketFullPrice, 0, 0, false},
		{"negative face", model.TicketFullPrice, -1, 0, true},
		{"unknown kind", model.TicketKind("VIP"), 20.00, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ComputeTicketPrice(tt.kind, tt.face)
			if tt.wantErr {
				if !errors.Is(err, model.ErrInvalidInput) {
					t.Fatalf("err = %v, want ErrInvalidInput", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("price = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTicketKindLabel(t *testing.T) {
	if got := TicketKindLabel(model.TicketFullPrice, ""); got != "Full price" {
		t.Errorf("full label = %q", got)
	}
	if got := TicketKindLabel(model.TicketDiscounted, "Student"); got != "Discounted (Student)" {
		t.Errorf("discounted label = %q", got)
	}
	if got := TicketKindLabel(model.TicketDiscounted, ""); got != "Discounted" {
		t.Errorf("bare discounted label = %q", got)
	}
}

func TestEarnedPoints(t *testing.T) {
	if got := EarnedPoints(12.75); got != 12 {
		t.Errorf("EarnedPoints(12.75) = %d, want 12", got)
	}
	if got := EarnedPoints(0); got != 0 {
		t.Errorf("EarnedPoints(0) = %d, want 0", got)
	}
	if got := EarnedPoints(-3); got != 0 {
		t.Errorf("EarnedPoints(-3) = %d, want 0", got)
	}
}

func TestRedemptionDiscount(t *testing.T) {
	if got := RedemptionDiscount(40, 10.00); got != 2.00 {
		t.Errorf("RedemptionDiscount(40, 10) = %v, want 2.00", got)
	}
	// Capped at the price.
	if got := RedemptionDiscount(1000, 3.00); got != 3.00 {
		t.Errorf("RedemptionDiscount(1000, 3) = %v, want 3.00", got)
	}
	if got := RedemptionDiscount(0, 10.00); got != 0 {
		t.Errorf("RedemptionDiscount(0, 10) = %v, want 0", got)
	}
}

func TestCalculateBasePrice(t *testing.T) {
	// Monday afternoon, plain 2D: base only.
	monday := time.Date(2026, 3, 2, 14, 0, 0, 0, time.UTC)
	if got := CalculateBasePrice(monday, "2D"); got != 8.00 {
		t.Errorf("weekday 2D = %v, want 8.00", got)
	}

	// Saturday evening IMAX: base + format + golden hour + weekend.
	saturday := time.Date(2026, 3, 7, 19, 0, 0, 0, time.UTC)
	if got := CalculateBasePrice(saturday, "IMAX"); got != 16.00 {
		t.Errorf("saturday evening IMAX = %v, want 16.00", got)
	}
}

func TestCalculateRentalPrice(t *testing.T) {
	room := &model.Room{HourlyRentalRate: 75.00}
	start := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)

	// Started hours round up.
	if got := CalculateRentalPrice(room, start, start.Add(2*time.Hour)); got != 150.00 {
		t.Errorf("2h = %v, want 150.00", got)
	}
	if got := CalculateRentalPrice(room, start, start.Add(90*time.Minute)); got != 150.00 {
		t.Errorf("1h30 = %v, want 150.00", got)
	}
	if got := CalculateRentalPrice(room, start, start.Add(10*time.Minute)); got != 75.00 {
		t.Errorf("10m = %v, want 75.00", got)
	}
}
