package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/mwittkop/magterm/internal/coeffdb"
	"github.com/mwittkop/magterm/internal/phase"
)

// #region main

// Seeds a coefficient database with a reference set of magnetic species
// coefficients: critical temperature in kelvin and mean moment in Bohr
// magnetons per atom. CR carries a negative critical temperature, which
// the evaluator folds through the Neel correction.
func main() {
	dbPath := flag.String("db", "magterm.db", "path to coefficient database")
	label := flag.String("label", "reference-elements", "label for the new set")
	activate := flag.Bool("activate", false, "mark the new set active even if one exists")
	flag.Parse()

	species := []string{"FE", "NI", "CO", "CR"}
	coeffs := []phase.Coefficients{
		{CriticalTemp: 1043.0, Moment: 2.22},
		{CriticalTemp: 633.0, Moment: 0.52},
		{CriticalTemp: 1396.0, Moment: 1.35},
		{CriticalTemp: -311.5, Moment: -0.008},
	}

	fmt.Println("=== Coefficient Seed Tool ===")
	fmt.Printf("  DB: %s | Label: %s\n", *dbPath, *label)

	store, err := coeffdb.NewStore(*dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open db: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	rec := coeffdb.NewSet(*label, species, coeffs)
	if err := store.SaveSet(rec); err != nil {
		fmt.Fprintf(os.Stderr, "save set: %v\n", err)
		os.Exit(1)
	}
	if *activate {
		if err := store.SetActive(rec.SetID); err != nil {
			fmt.Fprintf(os.Stderr, "activate: %v\n", err)
			os.Exit(1)
		}
	}

	fmt.Printf("Saved set %s with %d species:\n", rec.SetID, len(species))
	for i, name := range species {
		fmt.Printf("  %-4s  Tc = %8.1f K  moment = %7.3f\n", name, coeffs[i].CriticalTemp, coeffs[i].Moment)
	}

	active, err := store.GetActive()
	if err != nil {
		fmt.Fprintf(os.Stderr, "read active: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Active set: %s (%s)\n", active.SetID, active.Label)
}

// #endregion main
