package iet

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flatsurfgo/intervalxt/label"
	"github.com/flatsurfgo/intervalxt/vectorlengths"
)

// Exercises zorichStep directly: top [a,b], bottom [b,a], lengths [23,5].
// 23 = 4*5 + 3, so one step should leave a at 3, b untouched at 5, with the
// permutation itself unchanged.
func TestZorichStepPerformsOneFloorDivisionStep(t *testing.T) {
	alloc := label.NewAllocator()
	a, b := alloc.New(), alloc.New()
	ls := vectorlengths.NewRational(map[label.Label]int64{a: 23, b: 5})

	e, err := New(ls, []label.Label{a, b}, []label.Label{b, a})
	require.NoError(t, err)

	closed := e.zorichStep()
	assert.False(t, closed)

	assert.Equal(t, []label.Label{a, b}, e.Top())
	assert.Equal(t, []label.Label{b, a}, e.Bottom())

	gotA := e.lengths.Get(a).(*big.Float)
	gotB := e.lengths.Get(b).(*big.Float)
	assert.Equal(t, 0, gotA.Cmp(big.NewFloat(3)))
	assert.Equal(t, 0, gotB.Cmp(big.NewFloat(5)))
}

// A fresh SimilarityTracker.loop call, immediately following reset on a
// state with the same top order, same bottom-as-positions, and proportional
// lengths, must report a loop: that agreement is exactly what reset
// captured.
func TestSimilarityTrackerLoopAgreesWithALaterProportionalState(t *testing.T) {
	alloc := label.NewAllocator()
	a, b, c := alloc.New(), alloc.New(), alloc.New()

	ls1 := vectorlengths.NewRational(map[label.Label]int64{a: 2, b: 3, c: 5})
	e1, err := New(ls1, []label.Label{a, b, c}, []label.Label{c, a, b})
	require.NoError(t, err)

	var tracker SimilarityTracker
	tracker.reset(e1)

	ls2 := vectorlengths.NewRational(map[label.Label]int64{a: 4, b: 6, c: 10})
	e2, err := New(ls2, []label.Label{a, b, c}, []label.Label{c, a, b})
	require.NoError(t, err)

	assert.True(t, tracker.loop(e2))
}

// A state whose bottom permutation no longer matches the reset snapshot
// cannot be the loop reset was looking for, regardless of lengths.
func TestSimilarityTrackerLoopRejectsAMismatchedPermutation(t *testing.T) {
	alloc := label.NewAllocator()
	a, b, c := alloc.New(), alloc.New(), alloc.New()

	ls1 := vectorlengths.NewRational(map[label.Label]int64{a: 2, b: 3, c: 5})
	e1, err := New(ls1, []label.Label{a, b, c}, []label.Label{c, a, b})
	require.NoError(t, err)

	var tracker SimilarityTracker
	tracker.reset(e1)

	ls2 := vectorlengths.NewRational(map[label.Label]int64{a: 4, b: 6, c: 10})
	e2, err := New(ls2, []label.Label{a, b, c}, []label.Label{a, b, c})
	require.NoError(t, err)

	assert.False(t, tracker.loop(e2))
}
