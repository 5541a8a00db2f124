package dto

import (
	"countdown/internal/domain/entity"
	"time"
)

// CreateCountdownRequest is the DTO for creating a countdown.
// Either TargetTime or both Date and Time must be set.
type CreateCountdownRequest struct {
	Title      string     `json:"title"`
	TargetTime *time.Time `json:"target_time,omitempty"`
	Date       string     `json:"date,omitempty"` // 2006-01-02
	Time       string     `json:"time,omitempty"` // 15:04
}

// CountdownResponse is the DTO for sending a countdown to the client.
type CountdownResponse struct {
	ID               string    `json:"id"`
	Title            string    `json:"title"`
	TargetTime       time.Time `json:"target_time"`
	RemainingSeconds int64     `json:"remaining_seconds"`
	Degraded         bool      `json:"degraded,omitempty"`
}

// ToCountdownResponse converts an entity.Countdown to a CountdownResponse DTO.
func ToCountdownResponse(c entity.Countdown, now time.Time) CountdownResponse {
	return CountdownResponse{
		ID:               c.ID,
		Title:            c.Title,
		TargetTime:       c.TargetTime,
		RemainingSeconds: int64(c.Remaining(now) / time.Second),
		Degraded:         c.Degraded,
	}
}

// ToCountdownResponseList converts countdowns to DTOs, preserving order.
func ToCountdownResponseList(countdowns []entity.Countdown, now time.Time) []CountdownResponse {
	list := make([]CountdownResponse, len(countdowns))
	for i, c := range countdowns {
		list[i] = ToCountdownResponse(c, now)
	}
	return list
}
