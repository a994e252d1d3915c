package magnetic

import (
	"errors"
	"testing"

	"github.com/mwittkop/magterm/internal/phase"
)

func TestComposeParamsSingleSpeciesIdentity(t *testing.T) {
	// At mole fraction 1.0 the weighted aggregates degenerate to the
	// species' own coefficients.
	coeffs := []phase.Coefficients{{CriticalTemp: 1043.0, Moment: 2.22}}
	p, err := ComposeParams(coeffs, []float64{1.0}, phase.BCC())
	if err != nil {
		t.Fatalf("ComposeParams: %v", err)
	}
	if p.CriticalTemp != 1043.0 {
		t.Fatalf("expected Tc 1043, got %v", p.CriticalTemp)
	}
	if p.MeanMoment != 2.22 {
		t.Fatalf("expected moment 2.22, got %v", p.MeanMoment)
	}
}

func TestComposeParamsWeighting(t *testing.T) {
	coeffs := []phase.Coefficients{
		{CriticalTemp: 1043.0, Moment: 2.22},
		{CriticalTemp: 633.0, Moment: 0.52},
	}
	x := []float64{0.7, 0.3}
	p, err := ComposeParams(coeffs, x, phase.BCC())
	if err != nil {
		t.Fatalf("ComposeParams: %v", err)
	}
	wantTc := 0.7*1043.0 + 0.3*633.0
	wantMoment := 0.7*2.22 + 0.3*0.52
	if p.CriticalTemp != wantTc {
		t.Fatalf("expected Tc %v, got %v", wantTc, p.CriticalTemp)
	}
	if p.MeanMoment != wantMoment {
		t.Fatalf("expected moment %v, got %v", wantMoment, p.MeanMoment)
	}
}

func TestComposeParamsNeelCorrection(t *testing.T) {
	// A negative stored critical temperature is a Néel temperature: both
	// aggregates get negated and scaled by the structure factor.
	factor := 1.0 / 3.0
	coeffs := []phase.Coefficients{{CriticalTemp: -311.5, Moment: -0.008}}
	m := phase.Model{StructureFactor: factor, Exponent: 0.28}

	p, err := ComposeParams(coeffs, []float64{1.0}, m)
	if err != nil {
		t.Fatalf("ComposeParams: %v", err)
	}
	if want := 311.5 * factor; p.CriticalTemp != want {
		t.Fatalf("expected corrected Tc %v, got %v", want, p.CriticalTemp)
	}
	if want := 0.008 * factor; p.MeanMoment != want {
		t.Fatalf("expected corrected moment %v, got %v", want, p.MeanMoment)
	}
}

func TestComposeParamsRejectsBadExponent(t *testing.T) {
	coeffs := []phase.Coefficients{{CriticalTemp: 1000.0, Moment: 2.2}}
	m := phase.Model{StructureFactor: 1.0, Exponent: 0}
	if _, err := ComposeParams(coeffs, []float64{1.0}, m); !errors.Is(err, ErrInvalidExponent) {
		t.Fatalf("expected ErrInvalidExponent, got %v", err)
	}
}

func TestComposeParamsRejectsMomentBelowMinusOne(t *testing.T) {
	coeffs := []phase.Coefficients{{CriticalTemp: 1000.0, Moment: -1.5}}
	if _, err := ComposeParams(coeffs, []float64{1.0}, phase.BCC()); !errors.Is(err, ErrInvalidMagneticMoment) {
		t.Fatalf("expected ErrInvalidMagneticMoment, got %v", err)
	}
}

func TestComposeParamsMomentUncheckedWhenNoOrdering(t *testing.T) {
	// With a zero critical temperature the phase is never evaluated, so
	// the logarithm domain does not apply.
	coeffs := []phase.Coefficients{{CriticalTemp: 0, Moment: -1.5}}
	p, err := ComposeParams(coeffs, []float64{1.0}, phase.BCC())
	if err != nil {
		t.Fatalf("ComposeParams: %v", err)
	}
	if p.CriticalTemp != 0 {
		t.Fatalf("expected zero Tc, got %v", p.CriticalTemp)
	}
}

func TestComposeParamsRejectsMismatchedLengths(t *testing.T) {
	coeffs := []phase.Coefficients{{CriticalTemp: 1000.0, Moment: 2.2}}
	if _, err := ComposeParams(coeffs, []float64{0.5, 0.5}, phase.BCC()); !errors.Is(err, phase.ErrInvalidSpeciesRange) {
		t.Fatalf("expected ErrInvalidSpeciesRange, got %v", err)
	}
	if _, err := ComposeParams(nil, nil, phase.BCC()); !errors.Is(err, phase.ErrInvalidSpeciesRange) {
		t.Fatalf("expected ErrInvalidSpeciesRange for empty input, got %v", err)
	}
}
