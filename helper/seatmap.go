package helper

import (
	"math"

	"cinema_ops/model"
)

// GenerateSeatMap synthesizes the full seat layout for a room from its
// capacity and special-seat quotas. It runs exactly once, at room creation.
//
// Row count is ceil(sqrt(capacity)) and each row takes ceil(capacity/rows)
// positions; the last row may be partial. Walking positions row by row,
// each one is decided in strict priority order:
//
//  1. accessible quota remaining        -> ACCESSIBLE, 1 unit
//  2. couple quota remaining AND at
//     least 2 capacity units left       -> COUPLE, 2 units
//  3. otherwise                         -> NORMAL, 1 unit
//
// A couple seat is never placed when it would overshoot the capacity
// budget; quotas that cannot be satisfied are left unconsumed rather than
// reported. Seats in the first row are flagged preferential. The output is
// deterministic: identical inputs yield an identical sequence.
//
// Non-positive capacity yields an empty layout, not an error: the caller
// validates capacity before it gets here.
func GenerateSeatMap(capacity, coupleQuota, accessibleQuota int) []model.Seat {
	seats := []model.Seat{}
	if capacity <= 0 {
		return seats
	}

	rows := int(math.Ceil(math.Sqrt(float64(capacity))))
	seatsPerRow := int(math.Ceil(float64(capacity) / float64(rows)))

	units := 0
	for row := 0; units < capacity; row++ {
		label := RowLabel(row)
		for number := 1; number <= seatsPerRow && units < capacity; number++ {
			seat := model.Seat{
				Row:          label,
				Number:       number,
				Units:        1,
				Kind:         model.SeatNormal,
				Preferential: row == 0,
			}
			switch {
			case accessibleQuota > 0:
				seat.Kind = model.SeatAccessible
				accessibleQuota--
			case coupleQuota > 0 && capacity-units >= 2:
				seat.Kind = model.SeatCouple
				seat.Units = 2
				coupleQuota--
			}
			units += seat.Units
			seats = append(seats, seat)
		}
	}
	return seats
}

// RowLabel converts a zero-based row index to its letter label: A..Z, then
// AA, AB, ... like spreadsheet columns.
func RowLabel(index int) string {
	label := ""
	for index >= 0 {
		label = string(rune('A'+index%26)) + label
		index = index/26 - 1
	}
	return label
}

// CountSeatUnits sums the capacity units of a layout. For a generated map
// this equals the room capacity exactly.
func CountSeatUnits(seats []model.Seat) int {
	total := 0
	for _, s := range seats {
		total += s.Units
	}
	return total
}

// SeatKindCounts reports how many seats of each kind a layout realized.
// The create-room response uses it to show which quotas were satisfied.
func SeatKindCounts(seats []model.Seat) map[model.SeatKind]int {
	counts := map[model.SeatKind]int{}
	for _, s := range seats {
		counts[s.Kind]++
	}
	return counts
}
