package model

import "time"

type RentalStatus string

const (
	RentalConfirmed RentalStatus = "CONFIRMED"
	RentalCancelled RentalStatus = "CANCELLED"
)

// RoomRental books an entire room for a private event. Scheduling conflict
// resolution against screenings lives with the scheduling layer; creation
// only rejects overlaps with other confirmed rentals.
type RoomRental struct {
	DTO
	RoomId      uint         `json:"roomId"`
	Room        Room         `gorm:"foreignKey:RoomId" json:"-"`
	RenterName  string       `gorm:"not null" json:"renterName"`
	RenterEmail string       `gorm:"not null" json:"renterEmail"`
	Phone       string       `json:"phone"`
	StartTime   time.Time    `gorm:"not null" json:"startTime"`
	EndTime     time.Time    `gorm:"not null" json:"endTime"`
	Price       float64      `json:"price"`
	Status      RentalStatus `gorm:"not null;default:'CONFIRMED'" json:"status"`
	CancelledAt *time.Time   `json:"cancelledAt,omitempty"`
}

type CreateRentalInput struct {
	RoomId      uint      `json:"roomId" validate:"required,gt=0"`
	RenterName  string    `json:"renterName" validate:"required"`
	RenterEmail string    `json:"renterEmail" validate:"required,email"`
	Phone       string    `json:"phone" validate:"omitempty"`
	StartTime   time.Time `json:"startTime" validate:"required"`
	EndTime     time.Time `json:"endTime" validate:"required,gtfield=StartTime"`
}
