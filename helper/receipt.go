package helper

import (
	"fmt"
	"strings"

	"cinema_ops/model"
)

// MoneyFormat carries the locale-specific bits of money rendering. It is
// passed explicitly so formatting stays a pure function.
type MoneyFormat struct {
	Symbol     string
	DecimalSep string
}

var DefaultMoneyFormat = MoneyFormat{Symbol: "$", DecimalSep: "."}

// FormatMoney renders an amount with two decimals in the given format.
func FormatMoney(amount float64, f MoneyFormat) string {
	s := fmt.Sprintf("%.2f", RoundMoney(amount))
	if f.DecimalSep != "." {
		s = strings.Replace(s, ".", f.DecimalSep, 1)
	}
	return f.Symbol + s
}

// TicketReceipt renders the printable receipt for a ticket: variant and
// seat, settlement lines with the change breakdown, points movement and
// check-in state. Layout is plain fixed-width text.
func TicketReceipt(t *model.Ticket, movieTitle string, f MoneyFormat) string {
	var b strings.Builder

	fmt.Fprintf(&b, "TICKET %s\n", t.TicketCode)
	fmt.Fprintf(&b, "%s\n", movieTitle)
	fmt.Fprintf(&b, "Seat %s%d  %s\n", t.SeatRow, t.SeatNumber, TicketKindLabel(t.Kind, t.DiscountReason))
	if t.IsAdvance {
		fmt.Fprintf(&b, "Advance surcharge: %s\n", FormatMoney(t.AdvanceSurcharge, f))
	}
	fmt.Fprintf(&b, "Price:  %s\n", FormatMoney(t.Price, f))
	if t.PointsSpent > 0 {
		fmt.Fprintf(&b, "Points redeemed: %d (-%s)\n", t.PointsSpent, FormatMoney(RedemptionDiscount(t.PointsSpent, t.Price), f))
	}
	fmt.Fprintf(&b, "Paid:   %s (%s)\n", FormatMoney(t.AmountPaid, f), t.PaymentMethod)
	fmt.Fprintf(&b, "Change: %s\n", FormatMoney(t.ChangeAmount, f))
	for _, line := range t.ChangeBreakdown.Lines() {
		fmt.Fprintf(&b, "  %s\n", line)
	}
	if t.PointsEarned > 0 {
		fmt.Fprintf(&b, "Points earned: %d\n", t.PointsEarned)
	}
	if t.CheckedIn && t.CheckedInAt != nil {
		fmt.Fprintf(&b, "Checked in at %s\n", t.CheckedInAt.Format("2006-01-02 15:04"))
	} else {
		b.WriteString("Not checked in\n")
	}
	return b.String()
}

// RenderSeatMap draws the room grid row by row. Available seats print as
// [A1], reserved or held ones as (A1); couple seats get a trailing '=' and
// accessible seats a trailing '&'. The reserved set is keyed by seat ID.
func RenderSeatMap(seats []model.Seat, reserved map[uint]bool) string {
	var b strings.Builder
	currentRow := ""
	for _, s := range seats {
		if s.Row != currentRow {
			if currentRow != "" {
				b.WriteByte('\n')
			}
			currentRow = s.Row
			fmt.Fprintf(&b, "%-3s", s.Row)
		}
		mark := ""
		switch s.Kind {
		case model.SeatCouple:
			mark = "="
		case model.SeatAccessible:
			mark = "&"
		}
		if reserved[s.ID] {
			fmt.Fprintf(&b, " (%s%s)", s.Label(), mark)
		} else {
			fmt.Fprintf(&b, " [%s%s]", s.Label(), mark)
		}
	}
	if currentRow != "" {
		b.WriteByte('\n')
	}
	return b.String()
}
