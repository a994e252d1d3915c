package magnetic

// #region series-norm

// seriesNorm computes the normalization constant D of the Hillert-Jarl
// polynomial for a given 1/p - 1.
func seriesNorm(invPMinusOne float64) float64 {
	return 518.0/1125.0 + (11692.0/15975.0)*invPMinusOne
}

// #endregion series-norm

// #region paramagnetic

// paramagneticRegime evaluates the high-temperature series (tau > 1) in
// inverse fifth powers of tau. Its slope has no leading temperature term;
// compare orderedRegime.
func paramagneticRegime(tau, criticalTemp, d float64) (g, slope float64) {
	t5 := 1.0 / (tau * tau * tau * tau * tau)
	t15 := t5 * t5 * t5
	t25 := t5 * t5 * t15

	g = -(t5/10.0 + t15/315.0 + t25/1500.0) / d
	slope = (1.0 / (d * criticalTemp)) * (t5/2.0 + t15/21.0 + t25/60.0)
	return g, slope
}

// #endregion paramagnetic

// #region ordered

// orderedRegime evaluates the low-temperature series (tau <= 1) in third
// powers of tau. The slope carries an extra leading term in the system
// temperature that the paramagnetic branch does not have; the asymmetry is
// part of the model, not an artifact.
func orderedRegime(tau, criticalTemp, temperature, p, invPMinusOne, d float64) (g, slope float64) {
	t3 := tau * tau * tau
	t9 := t3 * t3 * t3
	t15 := t3 * t3 * t9

	g = 1.0 - (79.0/(140.0*p*tau)+(474.0/497.0)*invPMinusOne*(t3/6.0+t9/135.0+t15/600.0))/d
	slope = -79.0/(140.0*p*temperature) + (474.0/(497.0*criticalTemp))*invPMinusOne*(t3/2.0+t9/15.0+t15/40.0)
	slope = slope / d
	return g, slope
}

// #endregion ordered
