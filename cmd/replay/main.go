package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/mwittkop/magterm/internal/replay"
)

// #region main

func main() {
	fixturePath := flag.String("fixture", "", "path to fixture JSON")
	verbose := flag.Bool("verbose", false, "print energies for passing cases too")
	flag.Parse()

	if *fixturePath == "" {
		fmt.Fprintln(os.Stderr, "usage: replay --fixture path/to/fixture.json [--verbose]")
		os.Exit(2)
	}

	os.Exit(run(*fixturePath, *verbose))
}

func run(fixturePath string, verbose bool) int {
	f, err := replay.LoadFixture(fixturePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load fixture: %v\n", err)
		return 2
	}

	fmt.Printf("=== Replay: %s ===\n", f.Description)
	fmt.Printf("  %d species, %d cases\n\n", len(f.Species), len(f.Cases))

	results := replay.Replay(f)
	for _, r := range results {
		marker := map[string]string{
			replay.StatusPass:  "PASS ",
			replay.StatusFail:  "FAIL ",
			replay.StatusError: "ERROR",
		}[r.Status]
		fmt.Printf("[%s] %-24s %s\n", marker, r.Label, r.Reason)
		if r.Status == replay.StatusFail || (verbose && r.Status == replay.StatusPass) {
			if !r.Outcome.Skipped {
				fmt.Printf("        regime=%s tau=%.6f g=%.12g\n", r.Outcome.Regime, r.Outcome.Tau, r.Outcome.G)
				for i, e := range r.Energy {
					fmt.Printf("        energy[%d] = %.12g\n", i, e)
				}
			}
		}
	}

	s := replay.Summarize(results)
	fmt.Printf("\n%d cases: %d passed, %d failed, %d errors\n",
		s.TotalCases, s.Passed, s.Failed, s.Errors)
	if s.Failed > 0 || s.Errors > 0 {
		return 1
	}
	return 0
}

// #endregion main
