package service

import (
	"context"
	"countdown/internal/domain/entity"
	appErrors "countdown/internal/pkg/errors"
	"countdown/internal/pkg/logger"
	"countdown/internal/pkg/metrics"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
)

// NotificationBody is the fixed body sent with every countdown notification.
const NotificationBody = "Your countdown is ready!"

type countdownService struct {
	scheduler NotificationScheduler
	metrics   *metrics.Metrics
	log       logger.Logger
	now       func() time.Time
	newID     func() string

	// mu is held for the whole of each operation, scheduler call included,
	// so operations run one at a time.
	mu         sync.Mutex
	countdowns []entity.Countdown
}

// NewCountdownService creates an empty CountdownService.
func NewCountdownService(scheduler NotificationScheduler, m *metrics.Metrics, log logger.Logger) CountdownService {
	return &countdownService{
		scheduler: scheduler,
		metrics:   m,
		log:       log,
		now:       time.Now,
		newID:     uuid.NewString,
	}
}

// Create validates the input, schedules the notification and prepends the countdown.
func (s *countdownService) Create(ctx context.Context, title string, targetTime time.Time) (entity.Countdown, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if title == "" {
		return entity.Countdown{}, appErrors.ErrEmptyTitle
	}
	now := s.now()
	if !targetTime.After(now) {
		return entity.Countdown{}, appErrors.ErrPastTarget
	}

	id := s.newID()
	for s.indexOf(id) >= 0 {
		id = s.newID()
	}

	countdown := entity.Countdown{
		ID:         id,
		Title:      title,
		TargetTime: targetTime,
		CreatedAt:  now,
	}

	handle, err := s.scheduler.Schedule(ctx, targetTime, entity.Notification{
		Title: title,
		Body:  NotificationBody,
	})
	switch {
	case err != nil:
		s.log.Error(fmt.Sprintf("Failed to schedule notification for countdown %s, falling back to degraded handle", id), err)
		countdown.ScheduleHandle = id
		countdown.Degraded = true
	case handle == "":
		s.log.Warn(fmt.Sprintf("Scheduler returned an empty handle for countdown %s, falling back to degraded handle", id))
		countdown.ScheduleHandle = id
		countdown.Degraded = true
	default:
		countdown.ScheduleHandle = handle
	}

	s.countdowns = append([]entity.Countdown{countdown}, s.countdowns...)
	s.metrics.ObserveCreated(countdown.Degraded, len(s.countdowns))
	s.log.Info(fmt.Sprintf("Created countdown %s %q for %v (handle %s)", id, title, targetTime, countdown.ScheduleHandle))
	return countdown, nil
}

// Delete cancels the notification and removes the countdown regardless of the outcome.
func (s *countdownService) Delete(ctx context.Context, id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx < 0 {
		s.log.Debug(fmt.Sprintf("No countdown %s to delete.", id))
		return false
	}
	countdown := s.countdowns[idx]

	cancelFailed := false
	if countdown.ScheduleHandle != "" {
		if err := s.scheduler.Cancel(ctx, countdown.ScheduleHandle); err != nil {
			cancelFailed = true
			s.log.Error(fmt.Sprintf("Failed to cancel notification %s for countdown %s", countdown.ScheduleHandle, id),
				fmt.Errorf("%w: %v", appErrors.ErrCancellation, err))
		}
	}

	s.countdowns = slices.Delete(s.countdowns, idx, idx+1)
	s.metrics.ObserveDeleted(cancelFailed, len(s.countdowns))
	s.log.Info(fmt.Sprintf("Deleted countdown %s", id))
	return true
}

// List returns a copy of the countdowns in store order.
func (s *countdownService) List() []entity.Countdown {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.countdowns)
}

func (s *countdownService) indexOf(id string) int {
	return slices.IndexFunc(s.countdowns, func(c entity.Countdown) bool {
		return c.ID == id
	})
}
