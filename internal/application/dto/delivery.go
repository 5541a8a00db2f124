package dto

import (
	"countdown/internal/domain/entity"
	"time"
)

// DeliveryResponse is the DTO for one entry of the delivery log.
type DeliveryResponse struct {
	Title       string    `json:"title"`
	Body        string    `json:"body"`
	TargetTime  time.Time `json:"target_time"`
	DeliveredAt time.Time `json:"delivered_at"`
	Error       string    `json:"error,omitempty"`
}

// ToDeliveryResponseList converts delivery records to DTOs.
func ToDeliveryResponseList(deliveries []*entity.Delivery) []DeliveryResponse {
	list := make([]DeliveryResponse, len(deliveries))
	for i, d := range deliveries {
		list[i] = DeliveryResponse{
			Title:       d.Title,
			Body:        d.Body,
			TargetTime:  d.TargetTime,
			DeliveredAt: d.DeliveredAt,
			Error:       d.Error,
		}
	}
	return list
}
