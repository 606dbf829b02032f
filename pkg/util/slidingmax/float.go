// Copyright 2025 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package slidingmax

// Float64 is a Tracker specialized to float64 values. It exists for callers
// of the common numeric case who want a zero default instead of an explicit
// absence marker: its Current returns 0 when nothing has been ingested,
// whereas Tracker.Current reports ok=false.
type Float64 struct {
	t *Tracker[float64]
}

// NewFloat64 returns a Float64 over the most recent windowSize values.
// windowSize must be at least 1.
func NewFloat64(windowSize int) (*Float64, error) {
	t, err := New[float64](windowSize)
	if err != nil {
		return nil, err
	}
	return &Float64{t: t}, nil
}

// Advance incorporates v into the window and returns the maximum over the
// most recent windowSize arrivals (v included).
func (f *Float64) Advance(v float64) float64 {
	return f.t.Advance(v)
}

// Current returns the maximum over the most recent windowSize arrivals, or 0
// if nothing has been ingested. It does not mutate the tracker.
func (f *Float64) Current() float64 {
	v, ok := f.t.Current()
	if !ok {
		return 0
	}
	return v
}

// Reset returns the tracker to its just-constructed state.
func (f *Float64) Reset() {
	f.t.Reset()
}

// WindowSize returns the number of most recent arrivals considered when
// computing the maximum.
func (f *Float64) WindowSize() int {
	return f.t.WindowSize()
}
