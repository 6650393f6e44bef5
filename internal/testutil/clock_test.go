package testutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFixedClock_StaysPut(t *testing.T) {
	instant := time.Date(2026, 1, 5, 10, 30, 0, 0, time.UTC)
	clock := NewFixedClock(instant)

	assert.Equal(t, instant, clock.Now())
	assert.Equal(t, instant, clock.Now(), "repeated reads return the same instant")
}

func TestFixedClock_Advance(t *testing.T) {
	instant := time.Date(2026, 1, 5, 10, 30, 0, 0, time.UTC)
	clock := NewFixedClock(instant)

	clock.Advance(90 * time.Second)
	assert.Equal(t, instant.Add(90*time.Second), clock.Now())

	clock.Advance(-time.Minute)
	assert.Equal(t, instant.Add(30*time.Second), clock.Now())
}

func TestFixedClock_NowAsClockFunc(t *testing.T) {
	// Scenario: components take a func() time.Time. The method value
	// plugs in directly.
	clock := NewFixedClock(time.Date(2026, 1, 5, 10, 30, 0, 0, time.UTC))

	var now func() time.Time = clock.Now
	assert.Equal(t, "2026-01-05_10-30-00", now().Format("2006-01-02_15-04-05"))
}
