package check

// #region config

// Config holds thresholds for post-evaluation validation.
type Config struct {
	MaxAbsEnergy  float64 // reject entries whose magnitude exceeds this
	TauWarnWindow float64 // warn when |tau - 1| falls inside this window
}

// DefaultConfig returns thresholds generous enough for any physically
// assessed coefficient set.
func DefaultConfig() Config {
	return Config{
		MaxAbsEnergy:  1e6,
		TauWarnWindow: 1e-3,
	}
}

// #endregion config

// #region metric

// Metric captures a single validation check result.
type Metric struct {
	Name  string
	Value float64
	Pass  bool
}

// #endregion metric

// #region result

// Result is the output of post-evaluation validation.
type Result struct {
	Passed  bool
	Metrics []Metric
	Reason  string
}

// #endregion result
