package window

import "errors"

var (
	// ErrInsufficientSequence indicates the sequence is shorter than one
	// full input/output window. Downstream training cannot proceed with
	// zero samples, so callers should treat this as fatal for the run.
	ErrInsufficientSequence = errors.New("window: sequence shorter than one full input/output window")
	// ErrWindowSize indicates a non-positive input or output length.
	ErrWindowSize = errors.New("window: input and output lengths must be positive")
	// ErrSampleCount indicates a non-positive validation sample count.
	ErrSampleCount = errors.New("window: validation sample count must be positive")
)
