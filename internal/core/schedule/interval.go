// Package schedule gates periodic work driven from a frame loop.
package schedule

import "time"

// Interval fires at most once per period when polled.
type Interval struct {
	period time.Duration
	last   time.Time
}

// NewInterval creates an interval gate. Non-positive periods fire on every poll.
func NewInterval(period time.Duration) *Interval {
	return &Interval{period: period}
}

// Period returns the configured period.
func (interval *Interval) Period() time.Duration {
	return interval.period
}

// Due reports whether a period elapsed since the last firing. The first
// poll arms the gate without firing. When the loop falls more than one
// period behind, missed firings are collapsed into one.
func (interval *Interval) Due(now time.Time) bool {
	if interval.last.IsZero() {
		interval.last = now
		return interval.period <= 0
	}
	if interval.period <= 0 {
		interval.last = now
		return true
	}
	elapsed := now.Sub(interval.last)
	if elapsed < interval.period {
		return false
	}
	if elapsed >= 2*interval.period {
		interval.last = now
	} else {
		interval.last = interval.last.Add(interval.period)
	}
	return true
}

// Reset disarms the gate.
func (interval *Interval) Reset() {
	interval.last = time.Time{}
}
