package logging

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/mwittkop/magterm/internal/coeffdb"
	"github.com/mwittkop/magterm/internal/phase"
)

func testStore(t *testing.T) *coeffdb.Store {
	t.Helper()
	s, err := coeffdb.NewStore(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestLogAndListEvaluations(t *testing.T) {
	s := testStore(t)
	set := coeffdb.NewSet("t", []string{"FE"}, []phase.Coefficients{{CriticalTemp: 1043.0, Moment: 2.22}})
	if err := s.SaveSet(set); err != nil {
		t.Fatalf("SaveSet: %v", err)
	}

	entries := []Entry{
		{SetID: set.SetID, PhaseName: "BCC_A2", Temperature: 500.0, Regime: "ordered", Tau: 0.48, Outcome: OutcomeEvaluated},
		{SetID: set.SetID, PhaseName: "LIQUID", Temperature: 500.0, Outcome: OutcomeSkipped, Reason: "no magnetic ordering"},
		{SetID: set.SetID, PhaseName: "BCC_A2", Temperature: -3.0, Outcome: OutcomeRejected, Reason: "invalid temperature"},
	}
	for _, e := range entries {
		if err := LogEvaluation(s.DB(), e); err != nil {
			t.Fatalf("LogEvaluation: %v", err)
		}
	}

	got, err := ListEvaluations(s.DB(), set.SetID, 10)
	if err != nil {
		t.Fatalf("ListEvaluations: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(got))
	}

	// Most recent first.
	if got[0].Outcome != OutcomeRejected || got[0].Reason != "invalid temperature" {
		t.Fatalf("unexpected first row: %+v", got[0])
	}
	if got[2].Regime != "ordered" || got[2].Tau != 0.48 {
		t.Fatalf("unexpected last row: %+v", got[2])
	}
	if got[1].Regime != "" {
		t.Fatalf("expected empty regime for skipped row, got %q", got[1].Regime)
	}
	if got[0].CreatedAt.IsZero() {
		t.Fatal("expected a populated timestamp")
	}
}

func TestLogEvaluationFillsTimestamp(t *testing.T) {
	s := testStore(t)
	set := coeffdb.NewSet("t", []string{"FE"}, []phase.Coefficients{{CriticalTemp: 1043.0, Moment: 2.22}})
	if err := s.SaveSet(set); err != nil {
		t.Fatalf("SaveSet: %v", err)
	}

	before := time.Now().UTC().Add(-time.Second)
	if err := LogEvaluation(s.DB(), Entry{SetID: set.SetID, PhaseName: "BCC_A2", Temperature: 800.0, Outcome: OutcomeEvaluated}); err != nil {
		t.Fatalf("LogEvaluation: %v", err)
	}
	got, err := ListEvaluations(s.DB(), set.SetID, 1)
	if err != nil {
		t.Fatalf("ListEvaluations: %v", err)
	}
	if len(got) != 1 || got[0].CreatedAt.Before(before) {
		t.Fatalf("expected auto-filled timestamp, got %+v", got)
	}
}
