package service

import (
	"context"
	"countdown/internal/domain/entity"
	"time"

	"github.com/robfig/cron/v3"
)

// NotificationScheduler schedules and cancels one-shot alerts.
type NotificationScheduler interface {
	// Schedule arranges for n to be delivered at `at` and returns an opaque handle.
	// Fails with ErrScheduling.
	Schedule(ctx context.Context, at time.Time, n entity.Notification) (string, error)
	// Cancel removes a pending alert. Not idempotent: unknown, fired or already
	// cancelled handles fail with ErrHandleNotFound.
	Cancel(ctx context.Context, handle string) error
}

// Deliverer hands a fired notification to the user.
type Deliverer interface {
	Deliver(ctx context.Context, n entity.Notification) error
}

// jobRunner is the subset of the cron scheduler used by the services.
type jobRunner interface {
	AddJob(spec string, cmd func()) (cron.EntryID, error)
	RemoveJob(id cron.EntryID)
}
