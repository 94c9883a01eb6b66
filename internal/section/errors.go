package section

import (
	"errors"
	"fmt"
)

// Error kinds returned by the transformed-section computations.
var (
	// ErrInvalidInput indicates a missing, non-finite or non-positive parameter.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidShape indicates a shape that is not one of the recognized kinds.
	ErrInvalidShape = errors.New("unsupported shape")

	// ErrShallowAngle indicates a brace too close to parallel with the span
	// for its breadth to be derived from the plan width.
	ErrShallowAngle = errors.New("brace angle too shallow; enter intercept breadth b directly")

	// ErrNoActiveSegments indicates a brace without any segment of positive
	// height and real shape.
	ErrNoActiveSegments = errors.New("brace has no active segments")
)

// InputError names the parameter that failed validation
type InputError struct {
	Param string
}

func (e *InputError) Error() string {
	return fmt.Sprintf("%s must be a finite, positive number", e.Param)
}

func (e *InputError) Unwrap() error {
	return ErrInvalidInput
}
