package utils

import "time"

// Clock abstracts time retrieval so sync logic is deterministic in tests.
type Clock interface {
	Now() time.Time
}

// RealClock returns the actual current time in UTC.
type RealClock struct{}

func (RealClock) Now() time.Time { return time.Now().UTC() }

// FixedClock always returns T. Tick advances it.
type FixedClock struct {
	T time.Time
}

func (c *FixedClock) Now() time.Time { return c.T }

// Tick moves the clock forward by d and returns the new time.
func (c *FixedClock) Tick(d time.Duration) time.Time {
	c.T = c.T.Add(d)
	return c.T
}
