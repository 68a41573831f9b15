package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScreeningSeatReserve(t *testing.T) {
	seat := &ScreeningSeat{Status: SeatAvailable}

	require.NoError(t, seat.Reserve("USER_1"))
	assert.Equal(t, SeatReserved, seat.Status)

	// Reserving a reserved seat fails and leaves state untouched.
	err := seat.Reserve("USER_2")
	assert.ErrorIs(t, err, ErrSeatUnavailable)
	assert.Equal(t, SeatReserved, seat.Status)
}

func TestScreeningSeatReserveFromOwnHold(t *testing.T) {
	until := time.Now().Add(10 * time.Minute)
	seat := &ScreeningSeat{Status: SeatAvailable}
	require.NoError(t, seat.Hold("USER_7", until))

	// Another session cannot buy through someone else's hold.
	assert.ErrorIs(t, seat.Reserve("USER_8"), ErrSeatUnavailable)
	assert.Equal(t, SeatHeld, seat.Status)

	// The holder can.
	require.NoError(t, seat.Reserve("USER_7"))
	assert.Equal(t, SeatReserved, seat.Status)
	assert.Empty(t, seat.HeldBy)
	assert.Nil(t, seat.ExpiredAt)
}

func TestScreeningSeatReleaseThenReserve(t *testing.T) {
	ticketId := uint(42)
	seat := &ScreeningSeat{Status: SeatReserved, TicketId: &ticketId}

	require.NoError(t, seat.Release())
	assert.Equal(t, SeatAvailable, seat.Status)
	assert.Nil(t, seat.TicketId)

	// Released seats go straight back on sale.
	assert.NoError(t, seat.Reserve("USER_9"))
}

func TestScreeningSeatReleaseNotReserved(t *testing.T) {
	seat := &ScreeningSeat{Status: SeatAvailable}
	assert.ErrorIs(t, seat.Release(), ErrSeatNotReserved)

	held := &ScreeningSeat{Status: SeatHeld, HeldBy: "USER_1"}
	assert.ErrorIs(t, held.Release(), ErrSeatNotReserved)
}

func TestScreeningSeatReleaseHold(t *testing.T) {
	until := time.Now().Add(10 * time.Minute)
	seat := &ScreeningSeat{Status: SeatAvailable}
	require.NoError(t, seat.Hold("USER_1", until))

	assert.ErrorIs(t, seat.ReleaseHold("USER_2"), ErrSeatNotHeld)
	assert.Equal(t, SeatHeld, seat.Status)

	require.NoError(t, seat.ReleaseHold("USER_1"))
	assert.Equal(t, SeatAvailable, seat.Status)
	assert.Empty(t, seat.HeldBy)
}

func TestScreeningSeatHoldUnavailable(t *testing.T) {
	until := time.Now().Add(10 * time.Minute)
	seat := &ScreeningSeat{Status: SeatReserved}
	assert.ErrorIs(t, seat.Hold("USER_1", until), ErrSeatUnavailable)
}
