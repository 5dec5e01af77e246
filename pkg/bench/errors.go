package bench

import "errors"

var (
	// ErrNeedleCount indicates a negative needle count.
	ErrNeedleCount = errors.New("invalid needle count")
	// ErrUnknownUnit indicates a unit name or pattern that selects nothing.
	ErrUnknownUnit = errors.New("unknown benchmark unit")
)
