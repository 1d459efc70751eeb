package testutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFixedClock(t *testing.T) {
	start := time.Date(2025, 6, 15, 20, 0, 0, 0, time.UTC)
	clock := NewFixedClock(start)

	assert.True(t, clock.Now().Equal(start))
	assert.True(t, clock.Now().Equal(start), "frozen between reads")

	clock.Advance(48 * time.Hour)
	assert.True(t, clock.Now().Equal(start.Add(48*time.Hour)))

	reset := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	clock.Set(reset)
	assert.True(t, clock.Now().Equal(reset))
}
