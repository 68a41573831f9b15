package helper

import (
	"strings"
	"testing"
	"time"

	"cinema_ops/model"
)

func TestFormatMoney(t *testing.T) {
	if got := FormatMoney(18.5, DefaultMoneyFormat); got != "$18.50" {
		t.Errorf("FormatMoney = %q", got)
	}
	eu := MoneyFormat{Symbol: "€", DecimalSep: ","}
	if got := FormatMoney(18.5, eu); got != "€18,50" {
		t.Errorf("FormatMoney eu = %q", got)
	}
}

func TestTicketReceipt(t *testing.T) {
	checkedIn := time.Date(2026, 3, 7, 18, 45, 0, 0, time.UTC)
	ticket := &model.Ticket{
		TicketCode:      "TKT-abc123",
		Kind:            model.TicketDiscounted,
		DiscountReason:  "Student",
		SeatRow:         "B",
		SeatNumber:      4,
		Price:           10.00,
		PaymentMethod:   "CASH",
		AmountPaid:      20.00,
		ChangeAmount:    10.00,
		ChangeBreakdown: model.ChangeBreakdown{"10.00": 1},
		PointsEarned:    10,
		CheckedIn:       true,
		CheckedInAt:     &checkedIn,
	}

	out := TicketReceipt(ticket, "The Long Night", DefaultMoneyFormat)

	for _, want := range []string{
		"TICKET TKT-abc123",
		"The Long Night",
		"Seat B4  Discounted (Student)",
		"Price:  $10.00",
		"Paid:   $20.00 (CASH)",
		"Change: $10.00",
		"1 x 10.00",
		"Points earned: 10",
		"Checked in at 2026-03-07 18:45",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("receipt missing %q:\n%s", want, out)
		}
	}
}

func TestRenderSeatMap(t *testing.T) {
	seats := []model.Seat{
		{DTO: model.DTO{ID: 1}, Row: "A", Number: 1, Kind: model.SeatAccessible},
		{DTO: model.DTO{ID: 2}, Row: "A", Number: 2, Kind: model.SeatCouple},
		{DTO: model.DTO{ID: 3}, Row: "B", Number: 1, Kind: model.SeatNormal},
	}
	out := RenderSeatMap(seats, map[uint]bool{3: true})

	if !strings.Contains(out, "[A1&]") {
		t.Errorf("missing accessible mark:\n%s", out)
	}
	if !strings.Contains(out, "[A2=]") {
		t.Errorf("missing couple mark:\n%s", out)
	}
	if !strings.Contains(out, "(B1)") {
		t.Errorf("missing reserved mark:\n%s", out)
	}
	if strings.Count(out, "\n") != 2 {
		t.Errorf("expected two rows:\n%s", out)
	}
}
