package phase

// #region coefficients

// Coefficients holds the per-species magnetic parameters of the
// Hillert-Jarl model. The critical temperature coefficient is a Curie
// temperature in kelvin; antiferromagnetic species store a Néel
// temperature as a negative value scaled by the phase structure factor.
type Coefficients struct {
	CriticalTemp float64 // critical temperature coefficient (K)
	Moment       float64 // mean magnetic moment coefficient (Bohr magnetons)
}

// #endregion coefficients

// #region model

// Model holds the magnetic parameters that are constant across every
// species of one phase. Upstream data preparation is responsible for the
// equal-factor/equal-exponent invariant; this package does not re-check it
// per species.
type Model struct {
	StructureFactor float64 // scaling applied when un-flipping a stored Néel temperature
	Exponent        float64 // structure-dependent exponent p of the polynomial series
}

// BCC returns the model constants for body-centered cubic phases.
func BCC() Model {
	return Model{StructureFactor: 1.0, Exponent: 0.40}
}

// FCC returns the model constants for face-centered cubic phases.
func FCC() Model {
	return Model{StructureFactor: 1.0 / 3.0, Exponent: 0.28}
}

// HCP returns the model constants for hexagonal close-packed phases,
// which share the FCC parameterization.
func HCP() Model {
	return FCC()
}

// #endregion model

// #region phase

// Phase is one solution phase: a contiguous slice of the system species
// arrays plus the model constants shared by those species.
type Phase struct {
	Name  string
	Range SpeciesRange
	Model Model
}

// #endregion phase
