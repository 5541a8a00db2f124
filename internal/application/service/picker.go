package service

import (
	"countdown/internal/domain/constant"
	appErrors "countdown/internal/pkg/errors"
	"fmt"
	"time"
)

// DateTimePicker tracks the date/time selection that feeds Create.
// In ModeTwoStep the date is chosen first and the time second; in
// ModeCombined both arrive in one selection.
type DateTimePicker struct {
	mode  constant.PickerMode
	step  constant.PickerStep
	value time.Time
}

// NewDateTimePicker starts a selection at StepSelectingDate with initial as the current value.
func NewDateTimePicker(mode constant.PickerMode, initial time.Time) *DateTimePicker {
	return &DateTimePicker{
		mode:  mode,
		step:  constant.StepSelectingDate,
		value: initial,
	}
}

// Step returns the current selection step.
func (p *DateTimePicker) Step() constant.PickerStep {
	return p.step
}

// Value returns the current selection and whether it is complete.
func (p *DateTimePicker) Value() (time.Time, bool) {
	return p.value, p.step == constant.StepDone
}

// SelectDate keeps the time of day and replaces the calendar date.
func (p *DateTimePicker) SelectDate(date time.Time) error {
	if p.mode != constant.ModeTwoStep || p.step != constant.StepSelectingDate {
		return fmt.Errorf("%w: select date at %s", appErrors.ErrInvalidPickerStep, p.step)
	}
	y, m, d := date.Date()
	p.value = time.Date(y, m, d, p.value.Hour(), p.value.Minute(), 0, 0, date.Location())
	p.step = constant.StepSelectingTime
	return nil
}

// SelectTime sets the time of day on the chosen date and completes the selection.
func (p *DateTimePicker) SelectTime(hour, minute int) error {
	if p.mode != constant.ModeTwoStep || p.step != constant.StepSelectingTime {
		return fmt.Errorf("%w: select time at %s", appErrors.ErrInvalidPickerStep, p.step)
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return fmt.Errorf("%w: %02d:%02d", appErrors.ErrInvalidDateTime, hour, minute)
	}
	y, m, d := p.value.Date()
	p.value = time.Date(y, m, d, hour, minute, 0, 0, p.value.Location())
	p.step = constant.StepDone
	return nil
}

// SelectDateTime takes a full date and time in one step.
func (p *DateTimePicker) SelectDateTime(t time.Time) error {
	if p.mode != constant.ModeCombined || p.step != constant.StepSelectingDate {
		return fmt.Errorf("%w: select date and time at %s", appErrors.ErrInvalidPickerStep, p.step)
	}
	p.value = t
	p.step = constant.StepDone
	return nil
}

// Reset returns to StepSelectingDate, keeping the last value.
func (p *DateTimePicker) Reset() {
	p.step = constant.StepSelectingDate
}
