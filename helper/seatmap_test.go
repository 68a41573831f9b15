package helper

import (
	"reflect"
	"testing"

	"cinema_ops/model"
)

func TestGenerateSeatMapUnitsMatchCapacity(t *testing.T) {
	for _, tc := range []struct {
		capacity, couple, accessible int
	}{
		{1, 0, 0},
		{2, 1, 0},
		{10, 2, 1},
		{50, 5, 3},
		{100, 10, 4},
		{97, 40, 10},
	} {
		seats := GenerateSeatMap(tc.capacity, tc.couple, tc.accessible)
		if got := CountSeatUnits(seats); got != tc.capacity {
			t.Errorf("GenerateSeatMap(%d, %d, %d) units = %d, want %d",
				tc.capacity, tc.couple, tc.accessible, got, tc.capacity)
		}
	}
}

func TestGenerateSeatMapNonPositiveCapacity(t *testing.T) {
	if seats := GenerateSeatMap(0, 2, 1); len(seats) != 0 {
		t.Errorf("capacity 0 produced %d seats", len(seats))
	}
	if seats := GenerateSeatMap(-5, 0, 0); len(seats) != 0 {
		t.Errorf("negative capacity produced %d seats", len(seats))
	}
}

func TestGenerateSeatMapLayout(t *testing.T) {
	// capacity 10 -> 4 rows of up to 3 positions; accessible fills first,
	// then couples, then normals until exactly 10 units are placed.
	seats := GenerateSeatMap(10, 2, 1)

	if len(seats) != 8 {
		t.Fatalf("seat count = %d, want 8", len(seats))
	}

	counts := SeatKindCounts(seats)
	if counts[model.SeatAccessible] != 1 {
		t.Errorf("accessible = %d, want 1", counts[model.SeatAccessible])
	}
	if counts[model.SeatCouple] != 2 {
		t.Errorf("couple = %d, want 2", counts[model.SeatCouple])
	}
	if counts[model.SeatNormal] != 5 {
		t.Errorf("normal = %d, want 5", counts[model.SeatNormal])
	}

	// Accessible comes before any couple seat.
	if seats[0].Kind != model.SeatAccessible {
		t.Errorf("first seat kind = %s, want accessible", seats[0].Kind)
	}
	if seats[1].Kind != model.SeatCouple || seats[2].Kind != model.SeatCouple {
		t.Errorf("seats 2-3 = %s, %s, want couple", seats[1].Kind, seats[2].Kind)
	}

	// Preferential marks exactly the first row.
	for _, s := range seats {
		if got, want := s.Preferential, s.Row == "A"; got != want {
			t.Errorf("seat %s preferential = %v, want %v", s.Label(), got, want)
		}
	}
}

// A couple seat is never placed when only one capacity unit is left, even
// with quota remaining.
func TestGenerateSeatMapCoupleBudgetGuard(t *testing.T) {
	seats := GenerateSeatMap(3, 5, 0)

	if got := CountSeatUnits(seats); got != 3 {
		t.Fatalf("units = %d, want 3", got)
	}
	counts := SeatKindCounts(seats)
	if counts[model.SeatCouple] != 1 {
		t.Errorf("couple = %d, want 1", counts[model.SeatCouple])
	}
	last := seats[len(seats)-1]
	if last.Kind != model.SeatNormal || last.Units != 1 {
		t.Errorf("last seat = %s/%d units, want normal/1", last.Kind, last.Units)
	}
}

func TestGenerateSeatMapDeterministic(t *testing.T) {
	a := GenerateSeatMap(48, 6, 2)
	b := GenerateSeatMap(48, 6, 2)
	if !reflect.DeepEqual(a, b) {
		t.Error("identical inputs produced different layouts")
	}
}

func TestRowLabel(t *testing.T) {
	for _, tc := range []struct {
		index int
		want  string
	}{
		{0, "A"},
		{1, "B"},
		{25, "Z"},
		{26, "AA"},
		{27, "AB"},
		{51, "AZ"},
		{52, "BA"},
	} {
		if got := RowLabel(tc.index); got != tc.want {
			t.Errorf("RowLabel(%d) = %q, want %q", tc.index, got, tc.want)
		}
	}
}
