package magnetic

import (
	"fmt"
	"math"

	"github.com/mwittkop/magterm/internal/phase"
)

// #region compose-params

// ComposeParams aggregates per-species coefficients into phase-level
// magnetic parameters. coeffs and x must be the phase's species slices,
// index-aligned. The aggregates are mole-fraction-weighted sums; the phase
// composition need not sum to 1 and is not normalized here.
func ComposeParams(coeffs []phase.Coefficients, x []float64, m phase.Model) (Params, error) {
	if len(coeffs) == 0 {
		return Params{}, fmt.Errorf("%w: no species", phase.ErrInvalidSpeciesRange)
	}
	if len(coeffs) != len(x) {
		return Params{}, fmt.Errorf("%w: %d coefficient rows vs %d mole fractions",
			phase.ErrInvalidSpeciesRange, len(coeffs), len(x))
	}
	if m.Exponent == 0 || math.IsNaN(m.Exponent) || math.IsInf(m.Exponent, 0) {
		return Params{}, fmt.Errorf("%w: p = %v", ErrInvalidExponent, m.Exponent)
	}

	var criticalTemp, meanMoment float64
	for i, c := range coeffs {
		criticalTemp += x[i] * c.CriticalTemp
		meanMoment += x[i] * c.Moment
	}

	// A negative aggregate is a Néel temperature stored under the
	// antiferromagnetic sign convention: un-flip and scale both aggregates
	// by the structure factor.
	if criticalTemp < 0 {
		criticalTemp = -criticalTemp * m.StructureFactor
		meanMoment = -meanMoment * m.StructureFactor
	}

	// A zero critical temperature is a valid no-ordering state, so the
	// moment only has to be in the logarithm's domain when the phase will
	// actually be evaluated.
	if criticalTemp != 0 && meanMoment <= -1 {
		return Params{}, fmt.Errorf("%w: mean moment %v", ErrInvalidMagneticMoment, meanMoment)
	}

	return Params{
		CriticalTemp:    criticalTemp,
		MeanMoment:      meanMoment,
		StructureFactor: m.StructureFactor,
		Exponent:        m.Exponent,
	}, nil
}

// #endregion compose-params
