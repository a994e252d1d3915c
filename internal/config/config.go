package config

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/mwittkop/magterm/internal/phase"
)

// #region types

// Sweep describes the temperature range a run evaluates, in kelvin.
type Sweep struct {
	Start float64 `yaml:"start"`
	Stop  float64 `yaml:"stop"`
	Step  float64 `yaml:"step"`
}

// PhaseConfig describes one solution phase to evaluate: its lattice and
// its contiguous slice of the coefficient set's species list.
type PhaseConfig struct {
	Name    string `yaml:"name"`
	Lattice string `yaml:"lattice"` // "bcc" | "fcc" | "hcp"
	First   int    `yaml:"first"`
	Last    int    `yaml:"last"`
	// MoleFractions holds the phase's composition, index-aligned with
	// [First, Last]. Need not sum to 1.
	MoleFractions []float64 `yaml:"mole_fractions"`
}

// Config is the full run configuration for the magterm binaries.
type Config struct {
	DBPath   string        `yaml:"db_path"`
	SetID    string        `yaml:"set_id"` // empty selects the active set
	LogLevel string        `yaml:"log_level"`
	Sweep    Sweep         `yaml:"sweep"`
	Phases   []PhaseConfig `yaml:"phases"`
}

// #endregion types

// #region defaults

// Default returns a runnable configuration with no phases.
func Default() Config {
	return Config{
		DBPath:   "magterm.db",
		LogLevel: "info",
		Sweep:    Sweep{Start: 300.0, Stop: 2000.0, Step: 100.0},
	}
}

// #endregion defaults

// #region load

// Load reads a YAML configuration file, applies MAGTERM_* environment
// overrides, and validates the result. Unknown YAML keys are rejected.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}

	cfg.applyEnv()
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// FromEnv returns the default configuration with environment overrides,
// for runs without a config file.
func FromEnv() Config {
	cfg := Default()
	cfg.applyEnv()
	return cfg
}

func (c *Config) applyEnv() {
	if v := os.Getenv("MAGTERM_DB"); v != "" {
		c.DBPath = v
	}
	if v := os.Getenv("MAGTERM_SET"); v != "" {
		c.SetID = v
	}
	if v := os.Getenv("MAGTERM_LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
}

// #endregion load

// #region validate

// Validate checks sweep sanity and per-phase ranges.
func (c Config) Validate() error {
	if c.DBPath == "" {
		return fmt.Errorf("db_path is empty")
	}
	if c.Sweep.Step <= 0 {
		return fmt.Errorf("sweep step %v must be positive", c.Sweep.Step)
	}
	if c.Sweep.Stop < c.Sweep.Start {
		return fmt.Errorf("sweep stop %v below start %v", c.Sweep.Stop, c.Sweep.Start)
	}
	if c.Sweep.Start <= 0 {
		return fmt.Errorf("sweep start %v must be positive", c.Sweep.Start)
	}
	for _, p := range c.Phases {
		if p.Name == "" {
			return fmt.Errorf("phase with empty name")
		}
		if _, err := p.Model(); err != nil {
			return err
		}
		r := phase.SpeciesRange{First: p.First, Last: p.Last}
		if p.Last < p.First || p.First < 0 {
			return fmt.Errorf("phase %s: bad species range [%d, %d]", p.Name, p.First, p.Last)
		}
		if len(p.MoleFractions) != r.Len() {
			return fmt.Errorf("phase %s: %d mole fractions for %d species", p.Name, len(p.MoleFractions), r.Len())
		}
		for i, x := range p.MoleFractions {
			if x < 0 {
				return fmt.Errorf("phase %s: negative mole fraction at %d", p.Name, i)
			}
		}
	}
	return nil
}

// Model maps the configured lattice name to its phase model constants.
func (p PhaseConfig) Model() (phase.Model, error) {
	switch p.Lattice {
	case "bcc":
		return phase.BCC(), nil
	case "fcc":
		return phase.FCC(), nil
	case "hcp":
		return phase.HCP(), nil
	default:
		return phase.Model{}, fmt.Errorf("phase %s: unknown lattice %q", p.Name, p.Lattice)
	}
}

// ToPhase builds the domain phase for evaluation.
func (p PhaseConfig) ToPhase() (phase.Phase, error) {
	m, err := p.Model()
	if err != nil {
		return phase.Phase{}, err
	}
	return phase.Phase{
		Name:  p.Name,
		Range: phase.SpeciesRange{First: p.First, Last: p.Last},
		Model: m,
	}, nil
}

// #endregion validate
