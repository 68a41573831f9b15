package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTicketCheckInOnce(t *testing.T) {
	now := time.Now()
	ticket := &Ticket{Status: TicketIssued}

	require.NoError(t, ticket.CheckIn(now))
	assert.True(t, ticket.CheckedIn)
	assert.Equal(t, TicketUsed, ticket.Status)
	require.NotNil(t, ticket.CheckedInAt)
	first := *ticket.CheckedInAt

	// The second attempt fails and the original timestamp survives.
	err := ticket.CheckIn(now.Add(5 * time.Minute))
	assert.ErrorIs(t, err, ErrDoubleCheckIn)
	assert.Equal(t, first, *ticket.CheckedInAt)
}

func TestTicketCheckInInactive(t *testing.T) {
	for _, status := range []TicketStatus{TicketExpired, TicketCancelled} {
		ticket := &Ticket{Status: status}
		err := ticket.CheckIn(time.Now())
		assert.ErrorIs(t, err, ErrTicketNotActive, "status %s", status)
		assert.False(t, ticket.CheckedIn)
	}
}

func TestChangeBreakdownValueScan(t *testing.T) {
	original := ChangeBreakdown{"10.00": 1, "0.50": 2, "0.01": 3}

	v, err := original.Value()
	require.NoError(t, err)

	var restored ChangeBreakdown
	require.NoError(t, restored.Scan(v))
	assert.Equal(t, original, restored)
}

func TestChangeBreakdownScanEmpty(t *testing.T) {
	var b ChangeBreakdown
	require.NoError(t, b.Scan(nil))
	assert.Empty(t, b)

	v, err := ChangeBreakdown{}.Value()
	require.NoError(t, err)
	assert.Equal(t, "{}", v)
}

func TestChangeBreakdownTotal(t *testing.T) {
	b := ChangeBreakdown{"10.00": 1, "0.50": 2, "0.01": 3}
	assert.Equal(t, 11.03, b.Total())
	assert.Equal(t, 0.0, ChangeBreakdown{}.Total())
}

func TestChangeBreakdownLines(t *testing.T) {
	b := ChangeBreakdown{"0.50": 2, "10.00": 1}
	assert.Equal(t, []string{"1 x 10.00", "2 x 0.50"}, b.Lines())
}
