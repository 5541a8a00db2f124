package service

import (
	"context"
	"countdown/internal/domain/entity"
	"countdown/internal/pkg/logger"
	"fmt"
)

type logDeliverer struct {
	log logger.Logger
}

// NewLogDeliverer returns a Deliverer that only writes the notification to the log.
func NewLogDeliverer(log logger.Logger) Deliverer {
	return &logDeliverer{log: log}
}

func (d *logDeliverer) Deliver(ctx context.Context, n entity.Notification) error {
	d.log.Info(fmt.Sprintf("NOTIFICATION: %s - %s", n.Title, n.Body))
	return nil
}
