package repository

import (
	"context"
	"countdown/internal/domain/entity"
	"time"
)

// DeliveryRepository defines the interface for the notification delivery log.
type DeliveryRepository interface {
	// Create stores a delivery record. Returns the ID of the created record.
	Create(ctx context.Context, delivery *entity.Delivery) (uint, error)
	// FindByHandle retrieves the delivery for a schedule handle.
	FindByHandle(ctx context.Context, handle string) (*entity.Delivery, error)
	// FindRecent retrieves up to limit deliveries, newest first.
	FindRecent(ctx context.Context, limit int) ([]*entity.Delivery, error)
	// DeleteOlderThan deletes deliveries recorded before the threshold.
	DeleteOlderThan(ctx context.Context, threshold time.Time) error
}
