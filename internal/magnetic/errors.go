package magnetic

import "errors"

// #region errors

// Invalid-parameter kinds. Each rejects a single phase evaluation; the
// computation is deterministic, so callers should substitute or abort
// rather than retry.
var (
	// ErrInvalidExponent reports a zero or non-finite structure exponent p.
	ErrInvalidExponent = errors.New("invalid structure exponent")

	// ErrInvalidMagneticMoment reports a corrected mean moment <= -1, which
	// would put the moment logarithm outside its domain.
	ErrInvalidMagneticMoment = errors.New("invalid mean magnetic moment")

	// ErrInvalidTemperature reports a non-positive or non-finite system
	// temperature.
	ErrInvalidTemperature = errors.New("invalid temperature")

	// ErrInvalidCriticalTemperature reports a negative or non-finite
	// corrected critical temperature.
	ErrInvalidCriticalTemperature = errors.New("invalid critical temperature")
)

// #endregion errors
