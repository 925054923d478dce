// Package statistics puts error bars on simulated win rates.
package statistics

import (
	"fmt"
	"math"
)

// z95 is the two-sided 95% normal quantile.
const z95 = 1.96

// Proportion is a count of successes out of a number of independent trials,
// e.g. contests a participant won or shared out of all simulated contests.
type Proportion struct {
	Successes int
	Trials    int
}

// Rate returns the observed success rate in [0, 1]
func (p Proportion) Rate() float64 {
	if p.Trials == 0 {
		return 0
	}
	return float64(p.Successes) / float64(p.Trials)
}

// Variance returns the binomial variance of a single trial
func (p Proportion) Variance() float64 {
	r := p.Rate()
	return r * (1 - r)
}

// StdError returns the standard error of the rate
func (p Proportion) StdError() float64 {
	if p.Trials == 0 {
		return 0
	}
	return math.Sqrt(p.Variance() / float64(p.Trials))
}

// ConfidenceInterval95 returns the normal-approximation 95% interval for the
// rate, clamped to [0, 1].
func (p Proportion) ConfidenceInterval95() (float64, float64) {
	rate := p.Rate()
	margin := z95 * p.StdError()
	return math.Max(0, rate-margin), math.Min(1, rate+margin)
}

// Validate checks the counts are consistent
func (p Proportion) Validate() error {
	if p.Trials < 0 {
		return fmt.Errorf("invalid trials count: %d", p.Trials)
	}
	if p.Successes < 0 {
		return fmt.Errorf("invalid successes count: %d", p.Successes)
	}
	if p.Successes > p.Trials {
		return fmt.Errorf("successes (%d) exceed trials (%d)", p.Successes, p.Trials)
	}
	return nil
}
