package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEarnPoints(t *testing.T) {
	c := &Customer{Points: 10}

	c.EarnPoints(5)
	assert.Equal(t, 15, c.Points)

	// Non-positive credits are a no-op.
	c.EarnPoints(0)
	c.EarnPoints(-3)
	assert.Equal(t, 15, c.Points)
}

func TestSpendPoints(t *testing.T) {
	c := &Customer{Points: 50}

	assert.True(t, c.SpendPoints(20))
	assert.Equal(t, 30, c.Points)

	// Overdraft refused, balance untouched.
	assert.False(t, c.SpendPoints(60))
	assert.Equal(t, 30, c.Points)

	assert.False(t, c.SpendPoints(0))
	assert.False(t, c.SpendPoints(-5))
	assert.Equal(t, 30, c.Points)

	// Spending the exact balance empties it.
	assert.True(t, c.SpendPoints(30))
	assert.Equal(t, 0, c.Points)
}
