package helper

import (
	"fmt"
	"time"

	"cinema_ops/model"
)

const (
	// AdvanceSurcharge is added per ticket bought ahead of the screening day.
	AdvanceSurcharge = 1.50

	// RedeemPointValue is the currency value of one loyalty point when
	// redeemed against a ticket.
	RedeemPointValue = 0.05

	// Earn rate: one point per whole currency unit of the settled price.
	pointsPerCurrencyUnit = 1
)

// ComputeTicketPrice resolves the effective price of a ticket variant from
// its face price. FULL sells at face; DISCOUNTED at half face, rounded to
// the cent.
func ComputeTicketPrice(kind model.TicketKind, facePrice float64) (float64, error) {
	if facePrice < 0 {
		return 0, model.ErrInvalidInput
	}
	switch kind {
	case model.TicketFullPrice:
		return RoundMoney(facePrice), nil
	case model.TicketDiscounted:
		return RoundMoney(facePrice / 2), nil
	default:
		return 0, model.ErrInvalidInput
	}
}

// TicketKindLabel is the human-readable variant name shown on receipts,
// e.g. "Full price" or "Discounted (Student)".
func TicketKindLabel(kind model.TicketKind, reason string) string {
	switch kind {
	case model.TicketDiscounted:
		if reason == "" {
			return "Discounted"
		}
		return fmt.Sprintf("Discounted (%s)", reason)
	default:
		return "Full price"
	}
}

// EarnedPoints is the loyalty credit for a settled ticket price. The rate
// is a venue policy, not part of the settlement arithmetic.
func EarnedPoints(price float64) int {
	if price <= 0 {
		return 0
	}
	return int(price) * pointsPerCurrencyUnit
}

// RedemptionDiscount converts spent points into a price discount, capped
// at the price itself so a redemption can never drive the owed amount
// negative.
func RedemptionDiscount(points int, price float64) float64 {
	if points <= 0 {
		return 0
	}
	discount := RoundMoney(float64(points) * RedeemPointValue)
	if discount > price {
		return price
	}
	return discount
}

// CalculateBasePrice sets a screening's seat base price from its slot:
// premium formats, the 18-22 golden hour and weekends each raise it.
func CalculateBasePrice(startTime time.Time, format string) float64 {
	base := 8.00

	switch format {
	case "IMAX":
		base += 4.00
	case "4DX":
		base += 3.00
	case "3D":
		base += 1.50
	}

	hour := startTime.Hour()
	if hour >= 18 && hour < 22 {
		base += 2.00
	}

	if startTime.Weekday() == time.Saturday || startTime.Weekday() == time.Sunday {
		base += 2.00
	}

	return base
}

// CalculateRentalPrice charges per started hour at the room's rate.
func CalculateRentalPrice(room *model.Room, start, end time.Time) float64 {
	hours := int(end.Sub(start).Hours())
	if end.Sub(start)%time.Hour != 0 {
		hours++
	}
	if hours < 1 {
		hours = 1
	}
	return RoundMoney(float64(hours) * room.HourlyRentalRate)
}
