package magnetic

// #region params

// Params holds the phase-level magnetic parameters for one evaluation:
// the mole-fraction-weighted aggregates after the antiferromagnetic sign
// correction, plus the phase model constants they were composed under.
type Params struct {
	CriticalTemp    float64 // corrected ordering temperature (K), >= 0
	MeanMoment      float64 // corrected mean magnetic moment
	StructureFactor float64
	Exponent        float64 // structure exponent p
}

// #endregion params

// #region regime

// Regime identifies which side of the ordering temperature an evaluation
// fell on. The two regimes use disjoint closed-form series.
type Regime string

const (
	// RegimeOrdered covers tau <= 1 (at or below the ordering temperature).
	RegimeOrdered Regime = "ordered"
	// RegimeParamagnetic covers tau > 1.
	RegimeParamagnetic Regime = "paramagnetic"
)

// #endregion regime

// #region outcome

// Outcome carries the phase-level diagnostics of one evaluation. Tau, G,
// and Slope are shared by every species of the call; per-species output
// differs only through the species' own coefficients.
type Outcome struct {
	Skipped bool // true when the corrected critical temperature is zero
	Regime  Regime
	Tau     float64
	G       float64
	Slope   float64
}

// #endregion outcome
