package replay

import (
	"fmt"
	"math"

	"github.com/mwittkop/magterm/internal/magnetic"
)

// #region types

// Case statuses. An "error" case hit a parameter-validation rejection or a
// fixture inconsistency; "fail" means the evaluation ran but disagreed
// with the recorded expectations.
const (
	StatusPass  = "pass"
	StatusFail  = "fail"
	StatusError = "error"
)

// Result captures the outcome of replaying one fixture case.
type Result struct {
	Label   string
	Status  string // StatusPass | StatusFail | StatusError
	Reason  string
	Outcome magnetic.Outcome
	Energy  []float64
}

// Summary provides aggregate stats from a replay run.
type Summary struct {
	TotalCases int
	Passed     int
	Failed     int
	Errors     int
}

// sentinel pre-fills the energy slice so that skip cases can verify the
// evaluator left every entry untouched.
const sentinel = -1.0e308

// defaultTolerance applies when a case does not set one.
const defaultTolerance = 1e-9

// #endregion types

// #region replay

// Replay runs every case of a fixture through the evaluation pipeline,
// comparing outcome and per-species energies against the recorded
// expectations. Operates entirely in-memory.
func Replay(f *Fixture) []Result {
	coeffs := f.Coefficients()
	model := f.Model.ToModel()
	results := make([]Result, 0, len(f.Cases))

	for _, c := range f.Cases {
		r := Result{Label: c.Label}

		if len(c.MoleFractions) != len(coeffs) {
			r.Status = StatusError
			r.Reason = fmt.Sprintf("%d mole fractions for %d species", len(c.MoleFractions), len(coeffs))
			results = append(results, r)
			continue
		}

		params, err := magnetic.ComposeParams(coeffs, c.MoleFractions, model)
		if err != nil {
			r.Status = StatusError
			r.Reason = err.Error()
			results = append(results, r)
			continue
		}

		energy := make([]float64, len(coeffs))
		for i := range energy {
			energy[i] = sentinel
		}
		out, err := magnetic.Evaluate(params, coeffs, c.Temperature, energy)
		if err != nil {
			r.Status = StatusError
			r.Reason = err.Error()
			results = append(results, r)
			continue
		}
		r.Outcome = out
		r.Energy = energy

		r.Status, r.Reason = compare(c, out, energy)
		results = append(results, r)
	}

	return results
}

// compare checks one case's outcome and energies against expectations.
func compare(c FixtureCase, out magnetic.Outcome, energy []float64) (string, string) {
	if c.ExpectOutcome == "skipped" {
		if !out.Skipped {
			return StatusFail, "expected skip, got evaluation"
		}
		for i, e := range energy {
			if e != sentinel {
				return StatusFail, fmt.Sprintf("energy[%d] written on skip path", i)
			}
		}
		return StatusPass, "skipped as expected"
	}

	if out.Skipped {
		return StatusFail, "expected evaluation, got skip"
	}
	if len(c.ExpectEnergy) != len(energy) {
		return StatusError, fmt.Sprintf("%d expected energies for %d species", len(c.ExpectEnergy), len(energy))
	}

	tol := c.Tolerance
	if tol == 0 {
		tol = defaultTolerance
	}
	for i, want := range c.ExpectEnergy {
		scale := math.Abs(want)
		if scale < 1 {
			scale = 1
		}
		if diff := math.Abs(energy[i] - want); diff > tol*scale {
			return StatusFail, fmt.Sprintf("energy[%d] = %.12g, want %.12g (diff %g)", i, energy[i], want, diff)
		}
	}
	return StatusPass, "energies within tolerance"
}

// Summarize computes aggregate stats from replay results.
func Summarize(results []Result) Summary {
	s := Summary{TotalCases: len(results)}
	for _, r := range results {
		switch r.Status {
		case StatusPass:
			s.Passed++
		case StatusFail:
			s.Failed++
		case StatusError:
			s.Errors++
		}
	}
	return s
}

// #endregion replay
