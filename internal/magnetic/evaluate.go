package magnetic

import (
	"fmt"
	"math"

	"github.com/mwittkop/magterm/internal/phase"
)

// #region evaluate

// Evaluate computes the magnetic Gibbs-energy contribution for every
// species of one phase. coeffs and energy must be the phase's species
// slices, index-aligned; each energy entry is overwritten exactly once,
// never accumulated. When the corrected critical temperature is zero the
// phase has no magnetic ordering contribution and energy is left exactly
// as the caller provided it.
//
// Evaluate is pure with respect to its inputs except for energy. Calls
// for different phases may run concurrently as long as their energy
// slices are disjoint and the shared read-only inputs are not mutated.
func Evaluate(p Params, coeffs []phase.Coefficients, temperature float64, energy []float64) (Outcome, error) {
	if len(coeffs) == 0 {
		return Outcome{}, fmt.Errorf("%w: no species", phase.ErrInvalidSpeciesRange)
	}
	if len(energy) != len(coeffs) {
		return Outcome{}, fmt.Errorf("%w: %d coefficient rows vs %d energy entries",
			phase.ErrInvalidSpeciesRange, len(coeffs), len(energy))
	}
	if temperature <= 0 || math.IsNaN(temperature) || math.IsInf(temperature, 0) {
		return Outcome{}, fmt.Errorf("%w: T = %v", ErrInvalidTemperature, temperature)
	}
	if p.Exponent == 0 || math.IsNaN(p.Exponent) || math.IsInf(p.Exponent, 0) {
		return Outcome{}, fmt.Errorf("%w: p = %v", ErrInvalidExponent, p.Exponent)
	}
	if p.CriticalTemp < 0 || math.IsNaN(p.CriticalTemp) || math.IsInf(p.CriticalTemp, 0) {
		return Outcome{}, fmt.Errorf("%w: Tc = %v", ErrInvalidCriticalTemperature, p.CriticalTemp)
	}

	if p.CriticalTemp == 0 {
		return Outcome{Skipped: true}, nil
	}

	if p.MeanMoment <= -1 {
		return Outcome{}, fmt.Errorf("%w: mean moment %v", ErrInvalidMagneticMoment, p.MeanMoment)
	}

	tau := temperature / p.CriticalTemp
	invPMinusOne := 1.0/p.Exponent - 1.0
	d := seriesNorm(invPMinusOne)

	var g, slope float64
	regime := RegimeOrdered
	if tau > 1 {
		regime = RegimeParamagnetic
		g, slope = paramagneticRegime(tau, p.CriticalTemp, d)
	} else {
		g, slope = orderedRegime(tau, p.CriticalTemp, temperature, p.Exponent, invPMinusOne, d)
	}

	logMoment := math.Log(1.0 + p.MeanMoment)
	for i, c := range coeffs {
		// The temperature-difference factor flips sign with the regime.
		var tempDiff float64
		if regime == RegimeParamagnetic {
			tempDiff = (p.CriticalTemp - c.CriticalTemp) * slope
		} else {
			tempDiff = (c.CriticalTemp - p.CriticalTemp) * slope
		}
		energy[i] = g*((c.Moment-p.MeanMoment)/(1.0+p.MeanMoment)) + logMoment*(tempDiff+g)
	}

	return Outcome{Regime: regime, Tau: tau, G: g, Slope: slope}, nil
}

// #endregion evaluate

// #region evaluate-phase

// EvaluatePhase is the boundary entry point for the surrounding solver:
// it validates the phase's species range against the full system arrays,
// composes the phase-level parameters, and evaluates. Only the energy
// entries inside the phase's range can be written; everything else is
// left as found.
func EvaluatePhase(ph phase.Phase, coeffs []phase.Coefficients, x []float64, temperature float64, energy []float64) (Outcome, error) {
	n := len(coeffs)
	if len(x) != n || len(energy) != n {
		return Outcome{}, fmt.Errorf("%w: system arrays disagree (%d coefficients, %d fractions, %d energies)",
			phase.ErrInvalidSpeciesRange, n, len(x), len(energy))
	}
	if err := ph.Range.Validate(n); err != nil {
		return Outcome{}, fmt.Errorf("phase %s: %w", ph.Name, err)
	}

	lo, hi := ph.Range.First, ph.Range.Last+1
	params, err := ComposeParams(coeffs[lo:hi], x[lo:hi], ph.Model)
	if err != nil {
		return Outcome{}, fmt.Errorf("phase %s: %w", ph.Name, err)
	}
	out, err := Evaluate(params, coeffs[lo:hi], temperature, energy[lo:hi])
	if err != nil {
		return Outcome{}, fmt.Errorf("phase %s: %w", ph.Name, err)
	}
	return out, nil
}

// #endregion evaluate-phase
