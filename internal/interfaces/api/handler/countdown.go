package handler

import (
	"countdown/internal/application/dto"
	"countdown/internal/application/service"
	"countdown/internal/domain/constant"
	appErrors "countdown/internal/pkg/errors"
	"countdown/internal/pkg/logger"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

const (
	dateLayout  = "2006-01-02"
	clockLayout = "15:04"
)

// errorResponse is the JSON body for failed requests.
type errorResponse struct {
	Error string `json:"error"`
}

// CountdownHandler serves the countdown list.
type CountdownHandler struct {
	countdownService service.CountdownService
	log              logger.Logger
	now              func() time.Time
	loc              *time.Location
}

// NewCountdownHandler creates a new CountdownHandler. Separate date and time
// fields are interpreted in loc.
func NewCountdownHandler(countdownService service.CountdownService, loc *time.Location, log logger.Logger) *CountdownHandler {
	if loc == nil {
		loc = time.Local
	}
	return &CountdownHandler{
		countdownService: countdownService,
		log:              log,
		now:              time.Now,
		loc:              loc,
	}
}

// Create handles POST /countdowns.
func (h *CountdownHandler) Create(c echo.Context) error {
	var req dto.CreateCountdownRequest
	if err := c.Bind(&req); err != nil {
		h.log.Warn(fmt.Sprintf("Invalid create countdown body: %v", err))
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request body"})
	}

	// Title is validated before the time so an empty title always reports ErrEmptyTitle.
	if req.Title == "" {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: appErrors.ErrEmptyTitle.Error()})
	}

	target, err := h.pickTargetTime(req)
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	countdown, err := h.countdownService.Create(c.Request().Context(), req.Title, target)
	if err != nil {
		if errors.Is(err, appErrors.ErrEmptyTitle) || errors.Is(err, appErrors.ErrPastTarget) {
			return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		}
		h.log.Error("Failed to create countdown", err)
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "failed to create countdown"})
	}
	return c.JSON(http.StatusCreated, dto.ToCountdownResponse(countdown, h.now()))
}

// List handles GET /countdowns.
func (h *CountdownHandler) List(c echo.Context) error {
	return c.JSON(http.StatusOK, dto.ToCountdownResponseList(h.countdownService.List(), h.now()))
}

// Delete handles DELETE /countdowns/:id. Unknown IDs still answer 204.
func (h *CountdownHandler) Delete(c echo.Context) error {
	h.countdownService.Delete(c.Request().Context(), c.Param("id"))
	return c.NoContent(http.StatusNoContent)
}

// pickTargetTime runs the request through the date/time picker: a full
// target_time is a combined selection, date plus time is the two-step flow.
func (h *CountdownHandler) pickTargetTime(req dto.CreateCountdownRequest) (time.Time, error) {
	now := h.now().In(h.loc)

	if req.TargetTime != nil {
		p := service.NewDateTimePicker(constant.ModeCombined, now)
		if err := p.SelectDateTime(*req.TargetTime); err != nil {
			return time.Time{}, err
		}
		v, _ := p.Value()
		return v, nil
	}

	if req.Date == "" || req.Time == "" {
		return time.Time{}, fmt.Errorf("%w: target_time or date and time are required", appErrors.ErrInvalidDateTime)
	}
	date, err := time.ParseInLocation(dateLayout, req.Date, h.loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: date %q", appErrors.ErrInvalidDateTime, req.Date)
	}
	clock, err := time.Parse(clockLayout, req.Time)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: time %q", appErrors.ErrInvalidDateTime, req.Time)
	}

	p := service.NewDateTimePicker(constant.ModeTwoStep, now)
	if err := p.SelectDate(date); err != nil {
		return time.Time{}, err
	}
	if err := p.SelectTime(clock.Hour(), clock.Minute()); err != nil {
		return time.Time{}, err
	}
	v, _ := p.Value()
	return v, nil
}
