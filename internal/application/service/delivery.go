package service

import (
	"context"
	"countdown/internal/application/dto"
	"time"
)

// DeliveryService exposes the log of fired notifications.
type DeliveryService interface {
	// ListRecent returns up to limit deliveries, newest first.
	ListRecent(ctx context.Context, limit int) ([]dto.DeliveryResponse, error)
	// Prune deletes deliveries older than retention.
	Prune(ctx context.Context, retention time.Duration) error
	// SchedulePrune runs Prune on the given cron spec.
	SchedulePrune(spec string, retention time.Duration) error
}
