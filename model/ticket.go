package model

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"sort"
	"strconv"
	"time"
)

type TicketKind string

const (
	TicketFullPrice  TicketKind = "FULL"
	TicketDiscounted TicketKind = "DISCOUNTED"
)

type TicketStatus string

const (
	TicketIssued    TicketStatus = "ISSUED"
	TicketUsed      TicketStatus = "USED"
	TicketExpired   TicketStatus = "EXPIRED"
	TicketCancelled TicketStatus = "CANCELLED"
)

// ChangeBreakdown maps a denomination (formatted with two decimals, e.g.
// "5.00") to the count of units returned. Keys are formatted strings so
// the mapping serializes and round-trips byte-identically.
type ChangeBreakdown map[string]int

func (b ChangeBreakdown) Value() (driver.Value, error) {
	if len(b) == 0 {
		return "{}", nil
	}
	data, err := json.Marshal(b)
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

func (b *ChangeBreakdown) Scan(value any) error {
	if value == nil {
		*b = ChangeBreakdown{}
		return nil
	}
	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return errors.New("unsupported type for change breakdown")
	}
	if len(data) == 0 {
		*b = ChangeBreakdown{}
		return nil
	}
	return json.Unmarshal(data, b)
}

// Total sums denomination * count, rounded to the cent.
func (b ChangeBreakdown) Total() float64 {
	cents := int64(0)
	for denom, count := range b {
		v, err := strconv.ParseFloat(denom, 64)
		if err != nil {
			continue
		}
		cents += int64(math.Round(v*100)) * int64(count)
	}
	return float64(cents) / 100
}

// Lines renders the breakdown largest denomination first, for receipts.
func (b ChangeBreakdown) Lines() []string {
	denoms := make([]float64, 0, len(b))
	for d := range b {
		v, err := strconv.ParseFloat(d, 64)
		if err != nil {
			continue
		}
		denoms = append(denoms, v)
	}
	sort.Sort(sort.Reverse(sort.Float64Slice(denoms)))
	lines := make([]string, 0, len(denoms))
	for _, d := range denoms {
		key := fmt.Sprintf("%.2f", d)
		lines = append(lines, fmt.Sprintf("%d x %s", b[key], key))
	}
	return lines
}

// Ticket is one sold position for one screening. The pricing variant is a
// tag rather than a subtype: FULL tickets sell at face price, DISCOUNTED
// at half face price with a reason string (student, senior, ...).
type Ticket struct {
	DTO
	TicketCode     string     `gorm:"size:24;uniqueIndex" json:"ticketCode"`
	Kind           TicketKind `gorm:"not null;default:'FULL'" json:"kind"`
	DiscountReason string     `gorm:"size:40" json:"discountReason,omitempty"`

	// Seat position duplicated from the seat for display.
	SeatRow    string `json:"seatRow"`
	SeatNumber int    `json:"seatNumber"`

	FacePrice        float64 `gorm:"not null" json:"facePrice"`
	Price            float64 `gorm:"not null" json:"price"`
	IsAdvance        bool    `gorm:"default:false" json:"isAdvance"`
	AdvanceSurcharge float64 `gorm:"default:0" json:"advanceSurcharge"`

	PaymentMethod   string          `json:"paymentMethod"`
	AmountPaid      float64         `json:"amountPaid"`
	ChangeAmount    float64         `json:"changeAmount"`
	ChangeBreakdown ChangeBreakdown `gorm:"type:text" json:"changeBreakdown"`

	PointsSpent  int `gorm:"default:0" json:"pointsSpent"`
	PointsEarned int `gorm:"default:0" json:"pointsEarned"`

	PurchasedAt time.Time    `json:"purchasedAt"`
	Status      TicketStatus `gorm:"not null;default:'ISSUED'" json:"status"`
	CheckedIn   bool         `gorm:"default:false" json:"checkedIn"`
	CheckedInAt *time.Time   `json:"checkedInAt,omitempty"`
	CancelledAt *time.Time   `json:"cancelledAt,omitempty"`

	ScreeningId     uint  `json:"screeningId"`
	SeatId          uint  `json:"seatId"`
	ScreeningSeatId uint  `json:"screeningSeatId"`
	CustomerId      *uint `gorm:"default:null" json:"customerId"`

	Screening Screening `gorm:"foreignKey:ScreeningId" json:"-"`
	Seat      Seat      `gorm:"foreignKey:SeatId" json:"-"`
	Customer  *Customer `gorm:"foreignKey:CustomerId;constraint:OnDelete:SET NULL" json:"-"`
}

// CheckIn marks attendance exactly once. A second attempt fails without
// touching the recorded timestamp.
func (t *Ticket) CheckIn(now time.Time) error {
	if t.CheckedIn {
		return ErrDoubleCheckIn
	}
	if t.Status != TicketIssued {
		return ErrTicketNotActive
	}
	t.CheckedIn = true
	t.CheckedInAt = &now
	t.Status = TicketUsed
	return nil
}

type SeatSelection struct {
	SeatId         uint       `json:"seatId" validate:"required,gt=0"`
	Kind           TicketKind `json:"kind" validate:"required,oneof=FULL DISCOUNTED"`
	DiscountReason string     `json:"discountReason" validate:"omitempty,max=40"`
}

type PurchaseTicketInput struct {
	Seat          SeatSelection `json:"seat" validate:"required"`
	PaymentMethod string        `json:"paymentMethod" validate:"required,oneof=CASH CARD"`
	AmountPaid    float64       `json:"amountPaid" validate:"required,gt=0"`
	RedeemPoints  int           `json:"redeemPoints" validate:"gte=0"`
	IsAdvance     bool          `json:"isAdvance"`
	HeldBy        string        `json:"heldBy"`
	CustomerEmail string        `json:"customerEmail" validate:"omitempty,email"`
}

type FilterTicketInput struct {
	Pagination
	ScreeningId uint         `json:"screeningId" validate:"omitempty,gt=0"`
	Status      TicketStatus `json:"status" validate:"omitempty,oneof=ISSUED USED EXPIRED CANCELLED"`
	StartDate   *time.Time   `json:"startDate" validate:"omitempty"`
	EndDate     *time.Time   `json:"endDate" validate:"omitempty"`
}
