package constant

// PickerStep defines the states of the date/time selection flow.
type PickerStep int

const (
	// StepSelectingDate waits for a date (two-step) or a full date and time (combined).
	StepSelectingDate PickerStep = iota
	// StepSelectingTime waits for the time of day after a date was chosen.
	StepSelectingTime
	// StepDone holds a complete date and time.
	StepDone
)

func (s PickerStep) String() string {
	switch s {
	case StepSelectingDate:
		return "selecting_date"
	case StepSelectingTime:
		return "selecting_time"
	case StepDone:
		return "done"
	default:
		return "unknown"
	}
}

// PickerMode selects how the date and time are entered.
type PickerMode int

const (
	// ModeTwoStep asks for the date, then the time.
	ModeTwoStep PickerMode = iota
	// ModeCombined takes date and time in a single selection.
	ModeCombined
)
