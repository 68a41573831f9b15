package model

import "fmt"

type SeatKind string

const (
	SeatNormal     SeatKind = "NORMAL"
	SeatCouple     SeatKind = "COUPLE"
	SeatAccessible SeatKind = "ACCESSIBLE"
)

// Seat is one addressable physical position in a room. The layout is
// generated once when the room is created and never regenerated; a couple
// seat occupies two capacity units but remains a single position.
type Seat struct {
	DTO
	Row          string   `gorm:"not null" json:"row"`
	Number       int      `gorm:"not null" validate:"min=1" json:"number"`
	Units        int      `gorm:"not null;default:1" json:"units"`
	Kind         SeatKind `gorm:"not null;default:'NORMAL'" json:"kind"`
	Preferential bool     `gorm:"default:false" json:"preferential"`
	RoomId       uint     `json:"roomId"`
	Room         Room     `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
}

// PriceModifier scales the screening base price by seat kind. A couple
// seat is sold as one ticket covering both units.
func (s *Seat) PriceModifier() float64 {
	if s.Kind == SeatCouple {
		return 2
	}
	return 1
}

// Label is the display position, e.g. "C7".
func (s *Seat) Label() string {
	return fmt.Sprintf("%s%d", s.Row, s.Number)
}
