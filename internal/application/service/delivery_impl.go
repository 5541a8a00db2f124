package service

import (
	"context"
	"countdown/internal/application/dto"
	"countdown/internal/domain/repository"
	appErrors "countdown/internal/pkg/errors"
	"countdown/internal/pkg/logger"
	"fmt"
	"time"
)

const (
	defaultDeliveryLimit = 20
	maxDeliveryLimit     = 200
)

type deliveryService struct {
	deliveryRepo repository.DeliveryRepository
	runner       jobRunner
	log          logger.Logger
	now          func() time.Time
}

// NewDeliveryService creates a new instance of DeliveryService implementation.
func NewDeliveryService(deliveryRepo repository.DeliveryRepository, runner jobRunner, log logger.Logger) DeliveryService {
	return &deliveryService{
		deliveryRepo: deliveryRepo,
		runner:       runner,
		log:          log,
		now:          time.Now,
	}
}

// ListRecent returns up to limit deliveries, newest first. Out of range limits use the default.
func (s *deliveryService) ListRecent(ctx context.Context, limit int) ([]dto.DeliveryResponse, error) {
	if limit <= 0 || limit > maxDeliveryLimit {
		limit = defaultDeliveryLimit
	}
	deliveries, err := s.deliveryRepo.FindRecent(ctx, limit)
	if err != nil {
		s.log.Error("Failed to list recent deliveries", err)
		return nil, fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
	}
	return dto.ToDeliveryResponseList(deliveries), nil
}

// Prune deletes deliveries older than retention.
func (s *deliveryService) Prune(ctx context.Context, retention time.Duration) error {
	threshold := s.now().Add(-retention)
	if err := s.deliveryRepo.DeleteOlderThan(ctx, threshold); err != nil {
		s.log.Error("Failed to prune delivery log", err)
		return fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
	}
	s.log.Info(fmt.Sprintf("Pruned deliveries older than %v", threshold))
	return nil
}

// SchedulePrune runs Prune on the given cron spec.
func (s *deliveryService) SchedulePrune(spec string, retention time.Duration) error {
	entryID, err := s.runner.AddJob(spec, func() {
		// Errors are already logged by Prune.
		_ = s.Prune(context.Background(), retention)
	})
	if err != nil {
		return fmt.Errorf("%w: %v", appErrors.ErrScheduling, err)
	}
	s.log.Info(fmt.Sprintf("Scheduled delivery log pruning %q (Job ID: %d)", spec, entryID))
	return nil
}
