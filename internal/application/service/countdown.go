package service

import (
	"context"
	"countdown/internal/domain/entity"
	"time"
)

// CountdownService owns the ordered list of countdowns and keeps it in step
// with the scheduled notifications.
type CountdownService interface {
	// Create validates the input, schedules the notification and prepends the
	// new countdown. Fails only with ErrEmptyTitle or ErrPastTarget.
	Create(ctx context.Context, title string, targetTime time.Time) (entity.Countdown, error)
	// Delete cancels the countdown's notification and removes it. Unknown IDs
	// are a no-op. Reports whether a countdown was removed.
	Delete(ctx context.Context, id string) bool
	// List returns a snapshot of the countdowns, most recently created first.
	List() []entity.Countdown
}
