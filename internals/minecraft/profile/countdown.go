package profile

import (
	"fmt"
	"time"
)

// Countdown is the time left until the next name change, split into units
type Countdown struct {
	Remaining time.Duration
	Days      int64
	Hours     int64
	Minutes   int64
	Seconds   int64
}

// NewCountdown splits d into days, hours, minutes and seconds (floored).
// A negative duration results in all zero components.
func NewCountdown(d time.Duration) Countdown {
	c := Countdown{Remaining: d}
	if d <= 0 {
		return c
	}
	total := int64(d / time.Second)
	c.Seconds = total % 60
	c.Minutes = (total / 60) % 60
	c.Hours = (total / 60 / 60) % 24
	c.Days = total / 60 / 60 / 24
	return c
}

// Done reports whether the waiting time is over
func (c Countdown) Done() bool {
	return c.Remaining <= 0
}

func (c Countdown) String() string {
	return fmt.Sprintf("%dd %dh %dm %ds", c.Days, c.Hours, c.Minutes, c.Seconds)
}

// LastChange returns ChangedAt if set, CreatedAt otherwise
func (s *NameChangeStatus) LastChange() time.Time {
	if s.ChangedAt != nil {
		return *s.ChangedAt
	}
	return s.CreatedAt
}

// NextChange returns the time the name can be changed again
func (s *NameChangeStatus) NextChange() time.Time {
	return s.LastChange().Add(NameChangeInterval)
}

// Remaining returns the time left until the next name change relative to now
func (s *NameChangeStatus) Remaining(now time.Time) time.Duration {
	return s.NextChange().Sub(now)
}

// Eligible reports whether a name change is possible at now, either because
// the server said so or because the waiting time is over.
func (s *NameChangeStatus) Eligible(now time.Time) bool {
	return s.NameChangeAllowed || s.Remaining(now) <= 0
}

// Tick recomputes the countdown. Once the waiting time is over NameChangeAllowed
// is set to true, regardless of what the server reported last.
func (s *NameChangeStatus) Tick(now time.Time) Countdown {
	c := NewCountdown(s.Remaining(now))
	if c.Done() {
		s.NameChangeAllowed = true
	}
	return c
}
