package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/mwittkop/magterm/internal/check"
	"github.com/mwittkop/magterm/internal/coeffdb"
	"github.com/mwittkop/magterm/internal/config"
	"github.com/mwittkop/magterm/internal/log"
	"github.com/mwittkop/magterm/internal/logging"
	"github.com/mwittkop/magterm/internal/magnetic"
	"github.com/mwittkop/magterm/internal/phase"
)

// #region main

func main() {
	configPath := flag.String("config", "", "path to magterm.yaml (omit to use env/defaults)")
	flag.Parse()

	var cfg config.Config
	var err error
	if *configPath != "" {
		cfg, err = config.Load(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "config: %v\n", err)
			os.Exit(2)
		}
	} else {
		cfg = config.FromEnv()
	}

	log.Configure(log.Config{Level: cfg.LogLevel})
	logger := log.Component("sweep")

	store, err := coeffdb.NewStore(cfg.DBPath)
	if err != nil {
		logger.Fatal().Err(err).Str("db", cfg.DBPath).Msg("open coefficient store")
	}
	defer store.Close()

	var set coeffdb.SetRecord
	if cfg.SetID != "" {
		set, err = store.GetSet(cfg.SetID)
	} else {
		set, err = store.GetActive()
	}
	if err != nil {
		logger.Fatal().Err(err).Msg("resolve coefficient set (run seed-coeffs first?)")
	}
	logger.Info().
		Str("set", set.SetID).
		Str("label", set.Label).
		Int("species", len(set.Species)).
		Msg("coefficient set loaded")

	phases, err := buildPhases(cfg, len(set.Species))
	if err != nil {
		logger.Fatal().Err(err).Msg("phase configuration")
	}
	if len(phases) == 0 {
		logger.Warn().Msg("no phases configured, nothing to evaluate")
		return
	}

	harness := check.NewHarness(check.DefaultConfig())
	x := composeFractions(cfg, len(set.Species))
	energy := make([]float64, len(set.Species))

	rejected := 0
	for temp := cfg.Sweep.Start; temp <= cfg.Sweep.Stop; temp += cfg.Sweep.Step {
		for _, ph := range phases {
			if !runPhase(store, harness, set, ph, x, temp, energy, logger) {
				rejected++
			}
		}
	}
	if rejected > 0 {
		logger.Warn().Int("rejected", rejected).Msg("sweep finished with rejected evaluations")
		os.Exit(1)
	}
	logger.Info().Msg("sweep finished")
}

// #endregion main

// #region run-phase

// runPhase evaluates one phase at one temperature, validates the output,
// and writes a provenance row. Returns false when the evaluation was
// rejected or failed the post-evaluation checks.
func runPhase(
	store *coeffdb.Store,
	harness *check.Harness,
	set coeffdb.SetRecord,
	ph phase.Phase,
	x []float64,
	temp float64,
	energy []float64,
	logger zerolog.Logger,
) bool {
	out, err := magnetic.EvaluatePhase(ph, set.Coeffs, x, temp, energy)
	if err != nil {
		logger.Warn().Err(err).Str("phase", ph.Name).Float64("temp_k", temp).Msg("evaluation rejected")
		logProvenance(store, logging.Entry{
			SetID:       set.SetID,
			PhaseName:   ph.Name,
			Temperature: temp,
			Outcome:     logging.OutcomeRejected,
			Reason:      err.Error(),
		}, logger)
		return false
	}

	if out.Skipped {
		logger.Debug().Str("phase", ph.Name).Float64("temp_k", temp).Msg("no magnetic ordering, skipped")
		logProvenance(store, logging.Entry{
			SetID:       set.SetID,
			PhaseName:   ph.Name,
			Temperature: temp,
			Outcome:     logging.OutcomeSkipped,
			Reason:      "zero critical temperature",
		}, logger)
		return true
	}

	lo, hi := ph.Range.First, ph.Range.Last+1
	res := harness.Run(out, energy[lo:hi])
	if !res.Passed {
		logger.Warn().Str("phase", ph.Name).Float64("temp_k", temp).Str("reason", res.Reason).Msg("post-evaluation check failed")
	}

	logger.Info().
		Str("phase", ph.Name).
		Float64("temp_k", temp).
		Str("regime", string(out.Regime)).
		Float64("tau", out.Tau).
		Float64("g", out.G).
		Msg("phase evaluated")
	logProvenance(store, logging.Entry{
		SetID:       set.SetID,
		PhaseName:   ph.Name,
		Temperature: temp,
		Regime:      string(out.Regime),
		Tau:         out.Tau,
		Outcome:     logging.OutcomeEvaluated,
		Reason:      res.Reason,
	}, logger)
	return res.Passed
}

func logProvenance(store *coeffdb.Store, entry logging.Entry, logger zerolog.Logger) {
	if err := logging.LogEvaluation(store.DB(), entry); err != nil {
		logger.Error().Err(err).Msg("provenance write failed")
	}
}

// #endregion run-phase

// #region helpers

func buildPhases(cfg config.Config, speciesCount int) ([]phase.Phase, error) {
	phases := make([]phase.Phase, 0, len(cfg.Phases))
	for _, pc := range cfg.Phases {
		ph, err := pc.ToPhase()
		if err != nil {
			return nil, err
		}
		if err := ph.Range.Validate(speciesCount); err != nil {
			return nil, err
		}
		phases = append(phases, ph)
	}
	return phases, nil
}

// composeFractions lays each phase's composition into the system-wide
// mole-fraction array. Phase ranges are disjoint by the contiguity
// contract, so later phases never overwrite earlier ones.
func composeFractions(cfg config.Config, speciesCount int) []float64 {
	x := make([]float64, speciesCount)
	for _, pc := range cfg.Phases {
		for i, v := range pc.MoleFractions {
			if idx := pc.First + i; idx < speciesCount {
				x[idx] = v
			}
		}
	}
	return x
}

// #endregion helpers
