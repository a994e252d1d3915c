package coeffdb

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mwittkop/magterm/internal/phase"
)

func tempStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func sampleSet() SetRecord {
	return NewSet("test assessment", []string{"FE", "NI", "CR"}, []phase.Coefficients{
		{CriticalTemp: 1043.0, Moment: 2.22},
		{CriticalTemp: 633.0, Moment: 0.52},
		{CriticalTemp: -311.5, Moment: -0.008},
	})
}

func TestSaveAndGetSet(t *testing.T) {
	s := tempStore(t)
	rec := sampleSet()
	require.NoError(t, s.SaveSet(rec))

	got, err := s.GetSet(rec.SetID)
	require.NoError(t, err)
	require.Equal(t, rec.SetID, got.SetID)
	require.Equal(t, rec.Label, got.Label)
	require.Equal(t, rec.Species, got.Species)
	require.Equal(t, rec.Coeffs, got.Coeffs)
	require.Empty(t, got.ParentID)
}

func TestFirstSetBecomesActive(t *testing.T) {
	s := tempStore(t)
	first := sampleSet()
	require.NoError(t, s.SaveSet(first))

	second := NewSet("second", []string{"CO"}, []phase.Coefficients{{CriticalTemp: 1396.0, Moment: 1.35}})
	require.NoError(t, s.SaveSet(second))

	active, err := s.GetActive()
	require.NoError(t, err)
	require.Equal(t, first.SetID, active.SetID, "saving a later set must not steal the active pointer")
}

func TestSetActive(t *testing.T) {
	s := tempStore(t)
	first := sampleSet()
	require.NoError(t, s.SaveSet(first))
	second := first.NewRevision("refit", []phase.Coefficients{
		{CriticalTemp: 1044.0, Moment: 2.21},
		{CriticalTemp: 633.0, Moment: 0.52},
		{CriticalTemp: -311.5, Moment: -0.008},
	})
	require.NoError(t, s.SaveSet(second))

	require.NoError(t, s.SetActive(second.SetID))
	active, err := s.GetActive()
	require.NoError(t, err)
	require.Equal(t, second.SetID, active.SetID)
	require.Equal(t, first.SetID, active.ParentID)

	require.Error(t, s.SetActive("no-such-set"))
}

func TestRevisionKeepsSpecies(t *testing.T) {
	rec := sampleSet()
	rev := rec.NewRevision("refit", rec.Coeffs)
	require.Equal(t, rec.Species, rev.Species)
	require.Equal(t, rec.SetID, rev.ParentID)
	require.NotEqual(t, rec.SetID, rev.SetID)
}

func TestListSets(t *testing.T) {
	s := tempStore(t)
	rec := sampleSet()
	require.NoError(t, s.SaveSet(rec))

	sets, err := s.ListSets(10)
	require.NoError(t, err)
	require.Len(t, sets, 1)
	require.Equal(t, rec.SetID, sets[0].SetID)
	require.Equal(t, rec.Coeffs, sets[0].Coeffs)
}

func TestSpeciesIndex(t *testing.T) {
	rec := sampleSet()
	require.Equal(t, 1, rec.SpeciesIndex("NI"))
	require.Equal(t, -1, rec.SpeciesIndex("MN"))
}

func TestSaveSetRejectsMisalignedRows(t *testing.T) {
	s := tempStore(t)
	rec := sampleSet()
	rec.Coeffs = rec.Coeffs[:2]
	require.Error(t, s.SaveSet(rec))
}
