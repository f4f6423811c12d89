package window

import (
	"errors"
	"fmt"
)

var errMismatchedLength = errors.New("window: samples and coefficients must have same length")

func validateLength(size int) error {
	if size <= 0 {
		return fmt.Errorf("window: size must be > 0: %d", size)
	}
	return nil
}

func errUnknownType(name string) error {
	return fmt.Errorf("window: unknown window type %q", name)
}

func errDegenerate(t Type, length int) error {
	return fmt.Errorf("window: %s window of length %d has zero energy", t, length)
}
