package service

import (
	"context"
	"countdown/internal/domain/entity"
	"countdown/internal/domain/repository"
	appErrors "countdown/internal/pkg/errors"
	"countdown/internal/pkg/logger"
	"countdown/internal/pkg/metrics"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/xid"
)

type cronNotificationScheduler struct {
	runner       jobRunner
	deliverer    Deliverer
	deliveryRepo repository.DeliveryRepository
	metrics      *metrics.Metrics
	log          logger.Logger
	now          func() time.Time
	// handle -> pending cron entry
	jobStore map[string]cron.EntryID
	mu       sync.Mutex // Protect jobStore access
}

// NewNotificationScheduler creates a NotificationScheduler backed by cron jobs.
// Fired notifications go to deliverer and are recorded in deliveryRepo.
func NewNotificationScheduler(
	runner jobRunner,
	deliverer Deliverer,
	deliveryRepo repository.DeliveryRepository,
	m *metrics.Metrics,
	log logger.Logger,
) NotificationScheduler {
	return &cronNotificationScheduler{
		runner:       runner,
		deliverer:    deliverer,
		deliveryRepo: deliveryRepo,
		metrics:      m,
		log:          log,
		now:          time.Now,
		jobStore:     make(map[string]cron.EntryID),
	}
}

// formatCronSpec generates a cron spec string firing at t, rounded up to the
// next whole second so the alert never fires early.
func formatCronSpec(t time.Time) string {
	if t.Nanosecond() != 0 {
		t = t.Truncate(time.Second).Add(time.Second)
	}
	t = t.Local()
	// Seconds Minutes Hours DayOfMonth Month DayOfWeek
	return fmt.Sprintf("%d %d %d %d %d *", t.Second(), t.Minute(), t.Hour(), t.Day(), int(t.Month()))
}

// takeJob removes and returns the cron entry for a handle.
func (s *cronNotificationScheduler) takeJob(handle string) (cron.EntryID, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	entryID, ok := s.jobStore[handle]
	if ok {
		delete(s.jobStore, handle)
	}
	return entryID, ok
}

// Schedule adds a cron job that fires once at `at`.
func (s *cronNotificationScheduler) Schedule(ctx context.Context, at time.Time, n entity.Notification) (string, error) {
	if at.IsZero() || !at.After(s.now()) {
		return "", fmt.Errorf("%w: cannot schedule notification with past or zero time %v", appErrors.ErrScheduling, at)
	}
	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("%w: %v", appErrors.ErrScheduling, err)
	}

	handle := xid.New().String()
	spec := formatCronSpec(at)

	jobFunc := func() {
		s.fire(handle, at, n)
	}

	// Hold the lock until the entry is stored so a fast firing job always finds it.
	s.mu.Lock()
	defer s.mu.Unlock()
	entryID, err := s.runner.AddJob(spec, jobFunc)
	if err != nil {
		return "", fmt.Errorf("%w: %v", appErrors.ErrScheduling, err)
	}
	s.jobStore[handle] = entryID

	s.log.Info(fmt.Sprintf("Scheduled notification %s at %v (Job ID: %d)", handle, at, entryID))
	return handle, nil
}

// Cancel removes the cron job for a pending handle.
func (s *cronNotificationScheduler) Cancel(ctx context.Context, handle string) error {
	entryID, ok := s.takeJob(handle)
	if !ok {
		return fmt.Errorf("%w: %s", appErrors.ErrHandleNotFound, handle)
	}
	s.runner.RemoveJob(entryID)
	s.log.Info(fmt.Sprintf("Cancelled notification %s (Job ID: %d)", handle, entryID))
	return nil
}

// fire delivers a notification and records the outcome. A handle cancelled
// while the job was being dispatched is skipped.
func (s *cronNotificationScheduler) fire(handle string, at time.Time, n entity.Notification) {
	// Cron expressions have no year field, so a target more than a year out matches
	// early. Leave the entry registered for a later yearly match.
	if s.now().Before(at.Truncate(time.Second)) {
		s.log.Debug(fmt.Sprintf("Notification %s matched before its target %v, waiting.", handle, at))
		return
	}

	entryID, ok := s.takeJob(handle)
	if !ok {
		s.log.Debug(fmt.Sprintf("Notification %s fired after cancellation, skipping.", handle))
		return
	}
	// Drop the yearly entry so it only fires once.
	s.runner.RemoveJob(entryID)

	ctx := context.Background()
	s.log.Info(fmt.Sprintf("Executing notification job %s", handle))

	delivery := &entity.Delivery{
		Handle:      handle,
		Title:       n.Title,
		Body:        n.Body,
		TargetTime:  at,
		DeliveredAt: s.now(),
	}
	err := s.deliverer.Deliver(ctx, n)
	s.metrics.ObserveDelivery(err)
	if err != nil {
		delivery.Error = err.Error()
		s.log.Error(fmt.Sprintf("Failed to deliver notification %s", handle), fmt.Errorf("%w: %v", appErrors.ErrDelivery, err))
	}

	if s.deliveryRepo == nil {
		return
	}
	if _, err := s.deliveryRepo.Create(ctx, delivery); err != nil {
		s.log.Error(fmt.Sprintf("Failed to record delivery for notification %s", handle), err)
	}
}
