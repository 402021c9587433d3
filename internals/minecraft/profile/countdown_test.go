package profile

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var now = time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)

func TestTickEligibleAfterThirtyDays(t *testing.T) {
	status := &NameChangeStatus{CreatedAt: now.Add(-NameChangeInterval - time.Second)}

	c := status.Tick(now)
	assert.True(t, c.Done())
	assert.True(t, status.NameChangeAllowed)
	assert.Equal(t, "0d 0h 0m 0s", c.String())
}

func TestTickNotEligibleYet(t *testing.T) {
	status := &NameChangeStatus{CreatedAt: now.Add(-time.Second)}

	c := status.Tick(now)
	assert.False(t, c.Done())
	assert.False(t, status.NameChangeAllowed)
	assert.Equal(t, Countdown{
		Remaining: NameChangeInterval - time.Second,
		Days:      29,
		Hours:     23,
		Minutes:   59,
		Seconds:   59,
	}, c)
	assert.Equal(t, "29d 23h 59m 59s", c.String())
}

func TestChangedAtTakesPrecedence(t *testing.T) {
	changedAt := now.Add(-10 * 24 * time.Hour)
	status := &NameChangeStatus{
		CreatedAt: now.Add(-365 * 24 * time.Hour),
		ChangedAt: &changedAt,
	}

	assert.Equal(t, 20*24*time.Hour, status.Remaining(now))
	assert.False(t, status.Eligible(now))
	assert.Equal(t, changedAt.Add(NameChangeInterval), status.NextChange())
}

func TestTickKeepsServerAllowance(t *testing.T) {
	status := &NameChangeStatus{CreatedAt: now, NameChangeAllowed: true}

	status.Tick(now)
	assert.True(t, status.NameChangeAllowed)
	assert.True(t, status.Eligible(now))
}

func TestNewCountdownTruncates(t *testing.T) {
	c := NewCountdown(25*time.Hour + 61*time.Minute + 1500*time.Millisecond)
	assert.Equal(t, "1d 2h 1m 1s", c.String())
}
