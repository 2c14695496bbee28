package recolor

import "errors"

var (
	// ErrNoMatchingColors is returned when no recognized name is present in
	// both palettes. Callers typically fall back to the unmodified image.
	ErrNoMatchingColors = errors.New("no matching colors in target and reference palettes")
	// ErrDivisionByZero is returned when a factor would divide by zero.
	ErrDivisionByZero = errors.New("division by zero")
	// ErrUnknownLabel is returned when a matched name has no cluster in the
	// model.
	ErrUnknownLabel = errors.New("unknown cluster label")
	// ErrUnknownMethod is returned for an unrecognized recoloring method.
	ErrUnknownMethod = errors.New("unknown recoloring method")
)
