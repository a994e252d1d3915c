package phase

import (
	"errors"
	"testing"
)

func TestRangeValidateAccepts(t *testing.T) {
	cases := []struct {
		r SpeciesRange
		n int
	}{
		{SpeciesRange{0, 0}, 1},
		{SpeciesRange{0, 3}, 4},
		{SpeciesRange{2, 5}, 8},
	}
	for _, c := range cases {
		if err := c.r.Validate(c.n); err != nil {
			t.Fatalf("Validate(%v, n=%d): %v", c.r, c.n, err)
		}
	}
}

func TestRangeValidateRejects(t *testing.T) {
	cases := []struct {
		name string
		r    SpeciesRange
		n    int
	}{
		{"negative first", SpeciesRange{-1, 2}, 4},
		{"reversed", SpeciesRange{3, 1}, 4},
		{"empty by convention", SpeciesRange{2, 1}, 4},
		{"past end", SpeciesRange{0, 4}, 4},
	}
	for _, c := range cases {
		err := c.r.Validate(c.n)
		if err == nil {
			t.Fatalf("%s: expected error", c.name)
		}
		if !errors.Is(err, ErrInvalidSpeciesRange) {
			t.Fatalf("%s: expected ErrInvalidSpeciesRange, got %v", c.name, err)
		}
	}
}

func TestRangeLen(t *testing.T) {
	if got := (SpeciesRange{2, 5}).Len(); got != 4 {
		t.Fatalf("expected len 4, got %d", got)
	}
	if got := (SpeciesRange{0, 0}).Len(); got != 1 {
		t.Fatalf("expected len 1, got %d", got)
	}
}

func TestLatticeModels(t *testing.T) {
	bcc := BCC()
	if bcc.Exponent != 0.40 || bcc.StructureFactor != 1.0 {
		t.Fatalf("unexpected BCC constants: %+v", bcc)
	}
	fcc := FCC()
	if fcc.Exponent != 0.28 {
		t.Fatalf("unexpected FCC exponent: %v", fcc.Exponent)
	}
	if HCP() != fcc {
		t.Fatal("HCP should share the FCC parameterization")
	}
}
