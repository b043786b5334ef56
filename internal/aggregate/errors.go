package aggregate

import "errors"

var (
	// ErrInputMismatch is returned when items, sentiments and issues are not the same length.
	ErrInputMismatch = errors.New("input sequences are not aligned")
	// ErrEmptyInput is returned when there is nothing to aggregate.
	ErrEmptyInput = errors.New("no feedback to aggregate")
)
