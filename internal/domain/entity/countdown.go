package entity

import "time"

// Countdown is a titled target time paired with the handle of its scheduled alert.
// Values are immutable once committed to the store.
type Countdown struct {
	ID         string
	Title      string
	TargetTime time.Time
	// ScheduleHandle cancels the alert. When Degraded is set it holds the
	// countdown's own ID and no scheduler knows about it.
	ScheduleHandle string
	Degraded       bool
	CreatedAt      time.Time
}

// Remaining returns the time left until TargetTime, negative once it has passed.
func (c Countdown) Remaining(now time.Time) time.Duration {
	return c.TargetTime.Sub(now)
}
