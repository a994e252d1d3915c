package logging

import "time"

// #region outcome

// Evaluation outcomes recorded in the provenance log.
const (
	OutcomeEvaluated = "evaluated"
	OutcomeSkipped   = "skipped"
	OutcomeRejected  = "rejected"
)

// #endregion outcome

// #region entry

// Entry is one evaluation provenance row: which coefficient set was used,
// for which phase and temperature, and how the evaluation ended.
type Entry struct {
	SetID       string
	PhaseName   string
	Temperature float64
	Regime      string // empty for skipped and rejected evaluations
	Tau         float64
	Outcome     string // OutcomeEvaluated | OutcomeSkipped | OutcomeRejected
	Reason      string
	CreatedAt   time.Time
}

// #endregion entry
