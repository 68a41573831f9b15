package model

import "time"

type ScreeningStatus string

const (
	ScreeningUpcoming ScreeningStatus = "UPCOMING"
	ScreeningOngoing  ScreeningStatus = "ONGOING"
	ScreeningEnded    ScreeningStatus = "ENDED"
)

type Screening struct {
	DTO
	PublicCode string          `gorm:"size:16;uniqueIndex" json:"publicCode"`
	StartTime  time.Time       `validate:"required" json:"start"`
	EndTime    time.Time       `validate:"required" json:"end"`
	Price      float64         `json:"price"`
	Status     ScreeningStatus `gorm:"not null;default:'UPCOMING'" json:"status"`
	Format     string          `gorm:"size:10" json:"format"` // 2D, 3D, IMAX, 4DX
	MovieId    uint            `json:"movieId"`
	RoomId     uint            `json:"roomId"`
	Movie      Movie           `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;foreignKey:MovieId" json:"Movie"`
	Room       Room            `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;foreignKey:RoomId" json:"Room"`

	Tickets []Ticket `gorm:"foreignKey:ScreeningId" json:"tickets"`
}

// Seat availability is screening-scoped: one ScreeningSeat row exists per
// (screening, seat), created in bulk when the screening is scheduled. The
// physical Seat stays immutable; all state transitions happen here.
const (
	SeatAvailable = "AVAILABLE"
	SeatHeld      = "HELD"
	SeatReserved  = "RESERVED"
)

type ScreeningSeat struct {
	DTO
	ScreeningId uint       `gorm:"index:idx_screening_seat,unique" json:"screeningId"`
	SeatId      uint       `gorm:"index:idx_screening_seat,unique" json:"seatId"`
	SeatRow     string     `json:"seatRow"`
	SeatNumber  int        `json:"seatNumber"`
	Status      string     `gorm:"not null;default:'AVAILABLE'" json:"status"`
	HeldBy      string     `json:"heldBy"`
	ExpiredAt   *time.Time `json:"expiredAt"`
	TicketId    *uint      `json:"ticketId"`
	Screening   Screening  `json:"-"`
	Seat        Seat       `json:"Seat"`
}

// Reserve moves the seat to RESERVED. Legal from AVAILABLE, or from HELD
// when the hold belongs to the purchasing session. Invoked exactly once
// per successful ticket issuance.
func (s *ScreeningSeat) Reserve(heldBy string) error {
	switch s.Status {
	case SeatAvailable:
	case SeatHeld:
		if s.HeldBy != heldBy {
			return ErrSeatUnavailable
		}
	default:
		return ErrSeatUnavailable
	}
	s.Status = SeatReserved
	s.HeldBy = ""
	s.ExpiredAt = nil
	return nil
}

// Release returns a reserved seat to AVAILABLE on ticket cancellation.
func (s *ScreeningSeat) Release() error {
	if s.Status != SeatReserved {
		return ErrSeatNotReserved
	}
	s.Status = SeatAvailable
	s.TicketId = nil
	return nil
}

// Hold parks the seat for a buyer session until expiry.
func (s *ScreeningSeat) Hold(heldBy string, until time.Time) error {
	if s.Status != SeatAvailable {
		return ErrSeatUnavailable
	}
	s.Status = SeatHeld
	s.HeldBy = heldBy
	s.ExpiredAt = &until
	return nil
}

// ReleaseHold frees a held seat; only the holding session may do so.
func (s *ScreeningSeat) ReleaseHold(heldBy string) error {
	if s.Status != SeatHeld || s.HeldBy != heldBy {
		return ErrSeatNotHeld
	}
	s.Status = SeatAvailable
	s.HeldBy = ""
	s.ExpiredAt = nil
	return nil
}

type CreateScreeningInput struct {
	MovieId   uint      `json:"movieId" validate:"required,gt=0"`
	RoomId    uint      `json:"roomId" validate:"required,gt=0"`
	StartTime time.Time `json:"startTime" validate:"required"`
	EndTime   time.Time `json:"endTime" validate:"required,gtfield=StartTime"`
	Format    string    `json:"format" validate:"required,oneof=2D 3D IMAX 4DX"`
	Price     *float64  `json:"price" validate:"omitempty,gt=0"` // computed from the time-slot policy when omitted
}

type FilterScreeningInput struct {
	Pagination
	MovieId   uint   `json:"movieId" validate:"omitempty,gt=0"`
	RoomId    uint   `json:"roomId" validate:"omitempty,gt=0"`
	StartDate string `query:"startDate"`
	EndDate   string `query:"endDate"`
	Status    string `json:"status" validate:"omitempty,oneof=UPCOMING ONGOING ENDED"`
}
