package phase

import (
	"errors"
	"fmt"
)

// #region errors

// ErrInvalidSpeciesRange reports a species range that violates the caller
// contract: empty, reversed, or outside the system arrays.
var ErrInvalidSpeciesRange = errors.New("invalid species range")

// #endregion errors

// #region species-range

// SpeciesRange is an inclusive index range [First, Last] into the
// system-wide species arrays. Species of one phase are contiguous, so a
// range plus the shared arrays fully identifies a phase's composition.
type SpeciesRange struct {
	First int
	Last  int
}

// Len returns the number of species in the range.
func (r SpeciesRange) Len() int {
	return r.Last - r.First + 1
}

// Validate checks the range against arrays of length n.
func (r SpeciesRange) Validate(n int) error {
	switch {
	case r.First < 0:
		return fmt.Errorf("%w: first index %d is negative", ErrInvalidSpeciesRange, r.First)
	case r.Last < r.First:
		return fmt.Errorf("%w: empty or reversed [%d, %d]", ErrInvalidSpeciesRange, r.First, r.Last)
	case r.Last >= n:
		return fmt.Errorf("%w: last index %d exceeds array length %d", ErrInvalidSpeciesRange, r.Last, n)
	}
	return nil
}

// #endregion species-range
