// Copyright 2025 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

// Package slidingmax maintains the maximum over the most recent N values of
// a stream, incrementally and in amortized O(1) time per value.
//
// The tracker keeps a deque of candidate maxima sorted by decreasing value
// from front to back, so the back of the deque is always the current window
// maximum. On each arrival it evicts from the back when the back's ring
// buffer slot is about to be reused (expiry), and from the front any older
// values that the new arrival dominates. Each value is pushed and popped at
// most once, so a stream of M values costs O(M) deque operations total
// rather than O(M*N) window rescans.
package slidingmax

import (
	"cmp"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/slidingmax/pkg/util/ring"
)

// entry is a queued candidate maximum. slot is the cyclic position the value
// occupies in the logical ring buffer of the last windowSize arrivals; it is
// how the tracker detects that a candidate has aged out of the window.
type entry[T any] struct {
	slot  int
	value T
}

// Tracker reports, after each arrival, the maximum over the most recent
// windowSize arrivals. All ordering decisions are delegated to the
// comparator supplied at construction, including any tie-break behavior it
// encodes; when the comparator reports two values equal, the tracker retains
// the newer one.
//
// A Tracker is not safe for concurrent use.
type Tracker[T any] struct {
	cmp func(a, b T) int
	// candidates holds entries in decreasing value order from front to
	// back. The back is the current window maximum. An entry is removed the
	// moment it can no longer become the maximum: either a newer
	// greater-or-equal value arrived (domination, removal from the front)
	// or its slot is about to be reused (expiry, removal from the back).
	// Only the maximum can survive long enough to expire, so the expiry
	// check on the back alone suffices.
	candidates ring.Buffer[entry[T]]
	windowSize int
	// nextSlot is the slot the next arrival will occupy, in [0, windowSize).
	nextSlot int
}

// New returns a Tracker over the most recent windowSize values, ordered by
// cmp.Compare. For floating-point element types this gives a total order in
// which NaN sorts before all other values, so NaN inputs cannot corrupt the
// tracker (they are simply never reported as the maximum while any non-NaN
// value is in the window).
//
// windowSize must be at least 1.
func New[T cmp.Ordered](windowSize int) (*Tracker[T], error) {
	return NewFunc[T](windowSize, cmp.Compare[T])
}

// NewFunc returns a Tracker over the most recent windowSize values, ordered
// by the supplied comparator. The comparator must return a negative number
// if a sorts before b, zero if they sort equal, and a positive number if a
// sorts after b, and must be consistent for every pair of values the caller
// will push.
//
// windowSize must be at least 1.
func NewFunc[T any](windowSize int, compare func(a, b T) int) (*Tracker[T], error) {
	if windowSize < 1 {
		return nil, errors.Errorf("window size must be at least 1, got %d", windowSize)
	}
	t := &Tracker[T]{
		cmp:        compare,
		candidates: ring.MakeBuffer[entry[T]](windowSize),
		windowSize: windowSize,
	}
	return t, nil
}

// Advance incorporates v into the window, retiring the arrival that v's slot
// displaces, and returns the maximum over the most recent windowSize
// arrivals (v included).
func (t *Tracker[T]) Advance(v T) T {
	// Expire the oldest slot. A non-maximum candidate is always dominated
	// by a newer value before its slot can come back around, so only the
	// back can hold the expiring slot.
	if t.candidates.Len() > 0 && t.candidates.GetLast().slot == t.nextSlot {
		t.candidates.RemoveLast()
	}
	e := entry[T]{slot: t.nextSlot, value: v}
	switch {
	case t.candidates.Len() == 0:
		t.candidates.AddLast(e)
	case t.cmp(v, t.candidates.GetLast().value) >= 0:
		// v dominates the entire window. Ties go to the newer value.
		t.candidates.Reset()
		t.candidates.AddLast(e)
	default:
		// v is below the current maximum but dominates any older
		// candidates that sort less than or equal to it.
		for t.cmp(v, t.candidates.GetFirst().value) >= 0 {
			t.candidates.RemoveFirst()
		}
		t.candidates.AddFirst(e)
	}
	t.nextSlot = (t.nextSlot + 1) % t.windowSize
	return t.candidates.GetLast().value
}

// Current returns the maximum over the most recent windowSize arrivals, or
// ok=false if nothing has been ingested since construction (or the last
// Reset). It does not mutate the tracker.
func (t *Tracker[T]) Current() (_ T, ok bool) {
	if t.candidates.Len() == 0 {
		var zero T
		return zero, false
	}
	return t.candidates.GetLast().value, true
}

// Reset returns the tracker to its just-constructed state. The candidate
// deque's memory is retained.
func (t *Tracker[T]) Reset() {
	t.candidates.Reset()
	t.nextSlot = 0
}

// WindowSize returns the number of most recent arrivals considered when
// computing the maximum.
func (t *Tracker[T]) WindowSize() int {
	return t.windowSize
}
