package errors

import "errors"

// Custom application errors
var (
	ErrEmptyTitle        = errors.New("title must not be empty")                 // Create called with an empty title
	ErrPastTarget        = errors.New("target time must be in the future")       // Create called with a non-future target time
	ErrInvalidDateTime   = errors.New("invalid date/time format")                // Malformed date or time from the client
	ErrInvalidPickerStep = errors.New("date/time picker is not at that step")    // Picker operation out of order
	ErrScheduling        = errors.New("failed to schedule notification")         // Scheduler rejected or failed a schedule request
	ErrCancellation      = errors.New("failed to cancel notification")           // Scheduler failed a cancel request
	ErrHandleNotFound    = errors.New("no pending notification for that handle") // Unknown, fired or already cancelled handle
	ErrDatabaseOperation = errors.New("database operation failed")               // Generic database error
	ErrDelivery          = errors.New("failed to deliver notification")          // Deliverer (LINE API) error
)
