package model

type RoomStatus string

const (
	RoomAvailable   RoomStatus = "available"
	RoomMaintenance RoomStatus = "maintenance"
	RoomClosed      RoomStatus = "closed"
)

type Room struct {
	DTO
	Name       string     `gorm:"not null" validate:"required" json:"name"`
	RoomNumber uint       `json:"roomNumber" validate:"required,min=1"`
	Capacity   int        `gorm:"not null" json:"capacity"`
	Status     RoomStatus `gorm:"not null;default:'available'" json:"status"`

	// Quotas requested at creation time. The realized counts can be lower
	// when the capacity budget runs out; seats are the source of truth.
	CoupleQuota     int `gorm:"default:0" json:"coupleQuota"`
	AccessibleQuota int `gorm:"default:0" json:"accessibleQuota"`

	HourlyRentalRate float64 `gorm:"default:0" json:"hourlyRentalRate"`

	Seats []Seat `gorm:"foreignKey:RoomId;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"seats"`
}

type CreateRoomInput struct {
	Name             string   `json:"name" validate:"required"`
	RoomNumber       uint     `json:"roomNumber" validate:"required,min=1"`
	Capacity         int      `json:"capacity" validate:"required,gt=0"`
	CoupleQuota      int      `json:"coupleQuota" validate:"gte=0"`
	AccessibleQuota  int      `json:"accessibleQuota" validate:"gte=0"`
	HourlyRentalRate *float64 `json:"hourlyRentalRate" validate:"omitempty,gte=0"`
}

type EditRoomInput struct {
	Name             *string     `json:"name"`
	RoomNumber       *uint       `json:"roomNumber" validate:"omitempty,min=1"`
	Status           *RoomStatus `json:"status" validate:"omitempty,oneof=available maintenance closed"`
	HourlyRentalRate *float64    `json:"hourlyRentalRate" validate:"omitempty,gte=0"`
}
