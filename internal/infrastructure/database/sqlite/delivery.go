package sqlite

import (
	"context"
	"countdown/internal/domain/entity"
	"countdown/internal/domain/repository"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
)

type deliveryRepository struct {
	db *gorm.DB
}

// NewDeliveryRepository creates a new instance of DeliveryRepository.
func NewDeliveryRepository(db *gorm.DB) repository.DeliveryRepository {
	return &deliveryRepository{db: db}
}

// Create stores a delivery record. Returns the ID of the created record.
func (r *deliveryRepository) Create(ctx context.Context, delivery *entity.Delivery) (uint, error) {
	if err := r.db.WithContext(ctx).Create(delivery).Error; err != nil {
		return 0, fmt.Errorf("failed to create delivery for handle %s: %w", delivery.Handle, err)
	}
	return delivery.ID, nil
}

// FindByHandle retrieves the delivery for a schedule handle.
func (r *deliveryRepository) FindByHandle(ctx context.Context, handle string) (*entity.Delivery, error) {
	var delivery entity.Delivery
	if err := r.db.WithContext(ctx).Where("handle = ?", handle).First(&delivery).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("delivery for handle %s not found: %w", handle, err)
		}
		return nil, fmt.Errorf("failed to find delivery by handle %s: %w", handle, err)
	}
	return &delivery, nil
}

// FindRecent retrieves up to limit deliveries, newest first.
func (r *deliveryRepository) FindRecent(ctx context.Context, limit int) ([]*entity.Delivery, error) {
	var deliveries []*entity.Delivery
	if err := r.db.WithContext(ctx).Order("delivered_at desc").Order("id desc").Limit(limit).Find(&deliveries).Error; err != nil {
		return nil, fmt.Errorf("failed to find recent deliveries: %w", err)
	}
	return deliveries, nil
}

// DeleteOlderThan deletes deliveries recorded before the threshold.
func (r *deliveryRepository) DeleteOlderThan(ctx context.Context, threshold time.Time) error {
	if err := r.db.WithContext(ctx).Where("delivered_at < ?", threshold).Delete(&entity.Delivery{}).Error; err != nil {
		return fmt.Errorf("failed to delete deliveries older than %v: %w", threshold, err)
	}
	return nil
}
