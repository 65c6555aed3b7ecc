package engine

import "time"

// SpeedCurve derives the simulation tick period from the cumulative score.
// Pure; monotonically non-increasing in score, floored at Min.
type SpeedCurve struct {
	Base      time.Duration // Period at score zero
	Decrement time.Duration // Period reduction per point of score
	Min       time.Duration // Hard floor, never undercut
}

// PeriodFor returns max(Base - score*Decrement, Min).
func (s SpeedCurve) PeriodFor(score int) time.Duration {
	p := s.Base - time.Duration(score)*s.Decrement
	if p < s.Min {
		return s.Min
	}
	return p
}
