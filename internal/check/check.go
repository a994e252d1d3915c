package check

import (
	"fmt"
	"math"

	"github.com/mwittkop/magterm/internal/magnetic"
)

// #region harness

// Harness runs lightweight validation on a phase evaluation's output
// before the energies are handed back to the surrounding solver.
type Harness struct {
	config Config
}

// NewHarness creates a harness with the given configuration.
func NewHarness(config Config) *Harness {
	return &Harness{config: config}
}

// Run validates one evaluation outcome and its written energy slice.
// Skipped evaluations pass trivially: nothing was written.
func (h *Harness) Run(out magnetic.Outcome, energy []float64) Result {
	if out.Skipped {
		return Result{Passed: true, Reason: "skipped: no magnetic ordering"}
	}

	var metrics []Metric
	passed := true
	var failReasons []string

	// 1. Finiteness: every written entry must be a finite double.
	finite := true
	for _, e := range energy {
		if math.IsNaN(e) || math.IsInf(e, 0) {
			finite = false
			break
		}
	}
	metrics = append(metrics, Metric{Name: "finite", Value: boolValue(finite), Pass: finite})
	if !finite {
		passed = false
		failReasons = append(failReasons, "non-finite energy entry")
	}

	// 2. Magnitude bound on the largest written entry.
	var maxAbs float64
	for _, e := range energy {
		if a := math.Abs(e); a > maxAbs {
			maxAbs = a
		}
	}
	magnitudePass := maxAbs <= h.config.MaxAbsEnergy
	metrics = append(metrics, Metric{Name: "max_abs_energy", Value: maxAbs, Pass: magnitudePass})
	if !magnitudePass {
		passed = false
		failReasons = append(failReasons, fmt.Sprintf("max |energy| %.4g exceeds %.4g", maxAbs, h.config.MaxAbsEnergy))
	}

	// 3. Regime-boundary proximity: informational, does not block. The two
	// series agree at tau=1 only to series truncation accuracy.
	boundaryDist := math.Abs(out.Tau - 1.0)
	boundaryPass := boundaryDist >= h.config.TauWarnWindow
	metrics = append(metrics, Metric{Name: "tau_boundary_distance", Value: boundaryDist, Pass: boundaryPass})

	reason := "all checks passed"
	if !passed {
		reason = fmt.Sprintf("check failed: %s", failReasons[0])
		if len(failReasons) > 1 {
			reason = fmt.Sprintf("check failed: %d checks: %s", len(failReasons), failReasons[0])
		}
	}

	return Result{
		Passed:  passed,
		Metrics: metrics,
		Reason:  reason,
	}
}

// #endregion harness

// #region helpers

func boolValue(b bool) float64 {
	if b {
		return 1
	}
	return 0
}

// #endregion helpers
