package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/mwittkop/magterm/internal/coeffdb"
	"github.com/mwittkop/magterm/internal/logging"
)

// #region main

func main() {
	dbPath := flag.String("db", "", "path to magterm.db")
	last := flag.Int("last", 20, "show N most recent entries")
	setID := flag.String("set", "", "show single set detail with its evaluation log")
	jsonOut := flag.Bool("json", false, "output as JSON instead of table")
	flag.Parse()

	if *dbPath == "" {
		fmt.Fprintln(os.Stderr, "usage: inspect --db path/to/magterm.db [--last N] [--set id] [--json]")
		os.Exit(2)
	}

	store, err := coeffdb.NewStore(*dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open db: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if *setID != "" {
		err = runDetailMode(store, *setID, *last, *jsonOut)
	} else {
		err = runListMode(store, *last, *jsonOut)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// #endregion main

// #region list-mode

type listRow struct {
	SetID     string `json:"set_id"`
	ParentID  string `json:"parent_id,omitempty"`
	Label     string `json:"label"`
	Species   int    `json:"species"`
	Active    bool   `json:"active"`
	CreatedAt string `json:"created_at"`
}

func runListMode(store *coeffdb.Store, last int, jsonOut bool) error {
	sets, err := store.ListSets(last)
	if err != nil {
		return err
	}
	if len(sets) == 0 {
		fmt.Fprintln(os.Stderr, "no coefficient sets found")
		return nil
	}

	activeID := ""
	if active, err := store.GetActive(); err == nil {
		activeID = active.SetID
	}

	rows := make([]listRow, len(sets))
	for i, s := range sets {
		rows[i] = listRow{
			SetID:     s.SetID,
			ParentID:  s.ParentID,
			Label:     s.Label,
			Species:   len(s.Species),
			Active:    s.SetID == activeID,
			CreatedAt: s.CreatedAt.Format("2006-01-02T15:04:05Z"),
		}
	}

	if jsonOut {
		return printJSON(rows)
	}

	fmt.Printf("%-12s  %-12s  %-24s  %7s  %-6s  %s\n",
		"Set", "Parent", "Label", "Species", "Active", "Created")
	for _, r := range rows {
		active := ""
		if r.Active {
			active = "*"
		}
		fmt.Printf("%-12s  %-12s  %-24s  %7d  %-6s  %s\n",
			shortID(r.SetID), shortID(r.ParentID), r.Label, r.Species, active, r.CreatedAt)
	}
	return nil
}

// #endregion list-mode

// #region detail-mode

type detailOutput struct {
	SetID     string          `json:"set_id"`
	ParentID  string          `json:"parent_id,omitempty"`
	Label     string          `json:"label"`
	CreatedAt string          `json:"created_at"`
	Species   []speciesDetail `json:"species"`
	EvalLog   []evalDetail    `json:"eval_log,omitempty"`
}

type speciesDetail struct {
	Name         string  `json:"name"`
	CriticalTemp float64 `json:"critical_temp"`
	Moment       float64 `json:"moment"`
}

type evalDetail struct {
	Phase       string  `json:"phase"`
	Temperature float64 `json:"temperature"`
	Regime      string  `json:"regime,omitempty"`
	Tau         float64 `json:"tau,omitempty"`
	Outcome     string  `json:"outcome"`
	Reason      string  `json:"reason,omitempty"`
	CreatedAt   string  `json:"created_at"`
}

func runDetailMode(store *coeffdb.Store, setID string, last int, jsonOut bool) error {
	rec, err := store.GetSet(setID)
	if err != nil {
		return err
	}
	entries, err := logging.ListEvaluations(store.DB(), setID, last)
	if err != nil {
		return err
	}

	out := detailOutput{
		SetID:     rec.SetID,
		ParentID:  rec.ParentID,
		Label:     rec.Label,
		CreatedAt: rec.CreatedAt.Format("2006-01-02T15:04:05Z"),
	}
	for i, name := range rec.Species {
		out.Species = append(out.Species, speciesDetail{
			Name:         name,
			CriticalTemp: rec.Coeffs[i].CriticalTemp,
			Moment:       rec.Coeffs[i].Moment,
		})
	}
	for _, e := range entries {
		out.EvalLog = append(out.EvalLog, evalDetail{
			Phase:       e.PhaseName,
			Temperature: e.Temperature,
			Regime:      e.Regime,
			Tau:         e.Tau,
			Outcome:     e.Outcome,
			Reason:      e.Reason,
			CreatedAt:   e.CreatedAt.Format("2006-01-02T15:04:05Z"),
		})
	}

	if jsonOut {
		return printJSON(out)
	}

	fmt.Printf("Set:     %s\n", out.SetID)
	if out.ParentID != "" {
		fmt.Printf("Parent:  %s\n", out.ParentID)
	}
	fmt.Printf("Label:   %s\n", out.Label)
	fmt.Printf("Created: %s\n\n", out.CreatedAt)

	fmt.Printf("%-6s  %12s  %10s\n", "Name", "Tc (K)", "Moment")
	for _, s := range out.Species {
		fmt.Printf("%-6s  %12.2f  %10.4f\n", s.Name, s.CriticalTemp, s.Moment)
	}

	if len(out.EvalLog) == 0 {
		fmt.Println("\nNo evaluations logged.")
		return nil
	}
	fmt.Printf("\nRecent evaluations (newest first):\n")
	fmt.Printf("%-16s  %9s  %-14s  %8s  %-10s  %s\n",
		"Phase", "T (K)", "Regime", "Tau", "Outcome", "Time")
	for _, e := range out.EvalLog {
		regime := e.Regime
		if regime == "" {
			regime = "-"
		}
		fmt.Printf("%-16s  %9.1f  %-14s  %8.4f  %-10s  %s\n",
			e.Phase, e.Temperature, regime, e.Tau, e.Outcome, e.CreatedAt)
	}
	return nil
}

// #endregion detail-mode

// #region helpers

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	if id == "" {
		return "-"
	}
	return id
}

func printJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// #endregion helpers
