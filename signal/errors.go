package signal

import "errors"

var (
	// ErrInvalidArgument reports an argument the operation cannot work with:
	// an unknown window name, an input shorter than the requested window, a
	// reversed frequency band or a NaN threshold.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrInsufficientData reports a signal with too few mean-level crossings
	// for a duration-based estimate.
	ErrInsufficientData = errors.New("insufficient data")
)
