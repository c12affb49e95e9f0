package iet

import (
	"github.com/flatsurfgo/intervalxt/label"
	"github.com/flatsurfgo/intervalxt/lengths"
)

// SimilarityTracker detects exact loops in the sequence of IETs produced by
// induction when SAF=0, certifying minimality via auto-similarity (e.g. the
// Arnoux-Yoccoz example). The zero value is ready to use.
type SimilarityTracker struct {
	hasSnapshot     bool
	topLabels       []label.Label
	bottomPositions []int
	snapshot        lengths.Lengths
	periodBound     int
	ttl             int
}

// loop decrements the time-to-live counter; once it drops below zero the
// tracker resets against the current IET and reports no loop found.
// Otherwise it reports whether e matches the last snapshot: same size, same
// bottom permutation (as positions into top), and every consecutive pair of
// top labels has the same length ratio as in the snapshot.
func (t *SimilarityTracker) loop(e *IET) bool {
	t.ttl--
	if t.ttl < 0 {
		t.reset(e)

		return false
	}

	if !t.hasSnapshot || e.size != len(t.topLabels) {
		return false
	}

	top := e.Top()
	bottom := e.Bottom()

	pos := make(map[label.Label]int, len(top))
	for i, l := range top {
		pos[l] = i
	}
	for i, l := range bottom {
		if pos[l] != t.bottomPositions[i] {
			return false
		}
	}

	for i := 0; i+1 < len(top); i++ {
		a, b := top[i], top[i+1]
		if !e.lengths.Similar(a, b, t.snapshot, a, b) {
			return false
		}
	}

	return true
}

// reset captures the current top order, records the bottom permutation as
// positions into that order, restricts the current Lengths to those labels
// and detaches it from wrapper state, and doubles the tracker's patience.
func (t *SimilarityTracker) reset(e *IET) {
	top := e.Top()
	bottom := e.Bottom()

	pos := make(map[label.Label]int, len(top))
	for i, l := range top {
		pos[l] = i
	}
	bottomPositions := make([]int, len(bottom))
	for i, l := range bottom {
		bottomPositions[i] = pos[l]
	}

	t.topLabels = top
	t.bottomPositions = bottomPositions
	t.snapshot = e.lengths.Only(top).Forget()
	t.hasSnapshot = true

	if t.periodBound == 0 {
		t.periodBound = 1
	}
	t.ttl = t.periodBound
	t.periodBound *= 2
}
