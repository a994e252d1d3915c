package replay

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/mwittkop/magterm/internal/phase"
)

// #region fixture-types

// Fixture is the top-level JSON structure for a recorded evaluation
// scenario: one phase's model and species, replayed over a list of
// composition/temperature cases with expected results.
type Fixture struct {
	Description string           `json:"description"`
	Model       FixtureModel     `json:"model"`
	Species     []FixtureSpecies `json:"species"`
	Cases       []FixtureCase    `json:"cases"`
}

// FixtureModel mirrors phase.Model with JSON tags.
type FixtureModel struct {
	StructureFactor float64 `json:"structure_factor"`
	Exponent        float64 `json:"exponent"`
}

// FixtureSpecies names one species and carries its coefficients.
type FixtureSpecies struct {
	Name         string  `json:"name"`
	CriticalTemp float64 `json:"critical_temp"`
	Moment       float64 `json:"moment"`
}

// FixtureCase is a single recorded evaluation with its expectations.
// ExpectEnergy is index-aligned with the fixture's species list and only
// consulted when the expected outcome is "evaluated".
type FixtureCase struct {
	Label         string    `json:"label"`
	MoleFractions []float64 `json:"mole_fractions"`
	Temperature   float64   `json:"temperature"`
	ExpectOutcome string    `json:"expect_outcome"` // "evaluated" | "skipped"
	ExpectEnergy  []float64 `json:"expect_energy,omitempty"`
	Tolerance     float64   `json:"tolerance,omitempty"` // relative; defaults to 1e-9
}

// #endregion fixture-types

// #region fixture-loader

// LoadFixture reads and parses a JSON fixture file.
func LoadFixture(path string) (*Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fixture %s: %w", path, err)
	}
	var f Fixture
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse fixture %s: %w", path, err)
	}
	return &f, nil
}

// ToModel converts the fixture model to a domain phase.Model.
func (m FixtureModel) ToModel() phase.Model {
	return phase.Model{
		StructureFactor: m.StructureFactor,
		Exponent:        m.Exponent,
	}
}

// Coefficients extracts the species coefficient rows in fixture order.
func (f *Fixture) Coefficients() []phase.Coefficients {
	coeffs := make([]phase.Coefficients, len(f.Species))
	for i, s := range f.Species {
		coeffs[i] = phase.Coefficients{CriticalTemp: s.CriticalTemp, Moment: s.Moment}
	}
	return coeffs
}

// #endregion fixture-loader
