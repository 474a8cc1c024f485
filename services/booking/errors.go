package booking

import (
	"errors"
	"strings"
)

var (
	// ErrInvalidTransition is returned when an operation is not legal
	// in the session's current wizard state.
	ErrInvalidTransition = errors.New("operation not allowed in the current booking step")

	// ErrRunInProgress is returned when a submit arrives while the
	// automation sequence is already running.
	ErrRunInProgress = errors.New("booking is already being processed")

	// ErrDateNotBookable is returned for past dates or the doctor's
	// off days.
	ErrDateNotBookable = errors.New("the selected date is not available for this doctor")

	// ErrInvalidSlot is returned when the requested time is not among
	// the generated slots for the selected date.
	ErrInvalidSlot = errors.New("the selected time slot is not available")
)

// ValidationError reports the required draft fields that are missing.
type ValidationError struct {
	Missing []string
}

func (e *ValidationError) Error() string {
	return "missing required fields: " + strings.Join(e.Missing, ", ")
}
