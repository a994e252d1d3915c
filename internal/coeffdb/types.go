package coeffdb

import (
	"time"

	"github.com/google/uuid"

	"github.com/mwittkop/magterm/internal/phase"
)

// #region set-record

// SetRecord is one versioned magnetic coefficient set: an ordered species
// list with per-species coefficients. Revisions link to their parent so
// an assessment history survives re-fits.
type SetRecord struct {
	SetID     string
	ParentID  string
	Label     string
	Species   []string
	Coeffs    []phase.Coefficients
	CreatedAt time.Time
}

// NewSet creates a fresh root set with a generated ID.
func NewSet(label string, species []string, coeffs []phase.Coefficients) SetRecord {
	return SetRecord{
		SetID:     uuid.New().String(),
		Label:     label,
		Species:   species,
		Coeffs:    coeffs,
		CreatedAt: time.Now().UTC(),
	}
}

// NewRevision derives a child set carrying updated coefficients for the
// same species list.
func (r SetRecord) NewRevision(label string, coeffs []phase.Coefficients) SetRecord {
	return SetRecord{
		SetID:     uuid.New().String(),
		ParentID:  r.SetID,
		Label:     label,
		Species:   r.Species,
		Coeffs:    coeffs,
		CreatedAt: time.Now().UTC(),
	}
}

// SpeciesIndex returns the position of a species name, or -1.
func (r SetRecord) SpeciesIndex(name string) int {
	for i, s := range r.Species {
		if s == name {
			return i
		}
	}
	return -1
}

// #endregion set-record
