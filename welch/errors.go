package welch

import (
	"errors"
	"fmt"
)

// Errors reported at estimator construction.
var (
	ErrEmptySignal     = errors.New("welch: signal must not be empty")
	ErrSampleRate      = errors.New("welch: sampling frequency must be > 0")
	ErrOverlapFraction = errors.New("welch: overlap fraction must be in [0, 1)")
	ErrShortSignal     = errors.New("welch: signal too short to form a segment")
)

func configError(err error) error {
	return fmt.Errorf("welch: invalid configuration: %w", err)
}
