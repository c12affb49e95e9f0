package iet_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flatsurfgo/intervalxt/iet"
	"github.com/flatsurfgo/intervalxt/label"
	"github.com/flatsurfgo/intervalxt/vectorlengths"
)

func TestNewRejectsEmpty(t *testing.T) {
	ls := vectorlengths.NewRational(nil)
	_, err := iet.New(ls, nil, nil)
	assert.ErrorIs(t, err, iet.ErrEmpty)
}

func TestNewRejectsLengthMismatch(t *testing.T) {
	alloc := label.NewAllocator()
	a, b := alloc.New(), alloc.New()
	ls := vectorlengths.NewRational(map[label.Label]int64{a: 1, b: 1})

	_, err := iet.New(ls, []label.Label{a, b}, []label.Label{a})
	assert.ErrorIs(t, err, iet.ErrLabelMismatch)
}

func TestNewRejectsDuplicateInTop(t *testing.T) {
	alloc := label.NewAllocator()
	a, b := alloc.New(), alloc.New()
	ls := vectorlengths.NewRational(map[label.Label]int64{a: 1, b: 1})

	_, err := iet.New(ls, []label.Label{a, a}, []label.Label{a, b})
	assert.ErrorIs(t, err, iet.ErrLabelMismatch)
}

func TestNewRejectsMismatchedLabelSet(t *testing.T) {
	alloc := label.NewAllocator()
	a, b, c := alloc.New(), alloc.New(), alloc.New()
	ls := vectorlengths.NewRational(map[label.Label]int64{a: 1, b: 1, c: 1})

	_, err := iet.New(ls, []label.Label{a, b}, []label.Label{a, c})
	assert.ErrorIs(t, err, iet.ErrLabelMismatch)
}

func TestNewAcceptsValidPermutation(t *testing.T) {
	alloc := label.NewAllocator()
	a, b := alloc.New(), alloc.New()
	ls := vectorlengths.NewRational(map[label.Label]int64{a: 3, b: 2})

	e, err := iet.New(ls, []label.Label{a, b}, []label.Label{b, a})
	require.NoError(t, err)
	assert.Equal(t, 2, e.Size())
	assert.Equal(t, []label.Label{a, b}, e.Top())
	assert.Equal(t, []label.Label{b, a}, e.Bottom())
	assert.False(t, e.Swapped())
}

func TestSwapFlipsTopAndBottomAndOrientation(t *testing.T) {
	alloc := label.NewAllocator()
	a, b := alloc.New(), alloc.New()
	ls := vectorlengths.NewRational(map[label.Label]int64{a: 3, b: 2})
	e, err := iet.New(ls, []label.Label{a, b}, []label.Label{b, a})
	require.NoError(t, err)

	e.Swap()

	assert.True(t, e.Swapped())
	assert.Equal(t, []label.Label{b, a}, e.Top())
	assert.Equal(t, []label.Label{a, b}, e.Bottom())
}

func TestReduceSplitsAtMatchingHeadLabel(t *testing.T) {
	alloc := label.NewAllocator()
	a, b := alloc.New(), alloc.New()
	ls := vectorlengths.NewRational(map[label.Label]int64{a: 1, b: 1})

	e, err := iet.New(ls, []label.Label{a, b}, []label.Label{a, b})
	require.NoError(t, err)

	right, ok := e.Reduce()
	require.True(t, ok)
	assert.Equal(t, 1, e.Size())
	assert.Equal(t, []label.Label{a}, e.Top())
	assert.Equal(t, []label.Label{a}, e.Bottom())

	assert.Equal(t, 1, right.Size())
	assert.Equal(t, []label.Label{b}, right.Top())
	assert.Equal(t, []label.Label{b}, right.Bottom())
}

func TestReduceSplitsAfterAPrefixLargerThanOne(t *testing.T) {
	alloc := label.NewAllocator()
	a, b, c := alloc.New(), alloc.New(), alloc.New()
	ls := vectorlengths.NewRational(map[label.Label]int64{a: 1, b: 1, c: 1})

	e, err := iet.New(ls, []label.Label{a, b, c}, []label.Label{b, a, c})
	require.NoError(t, err)

	right, ok := e.Reduce()
	require.True(t, ok)
	assert.Equal(t, 2, e.Size())
	assert.Equal(t, []label.Label{a, b}, e.Top())
	assert.Equal(t, []label.Label{b, a}, e.Bottom())

	assert.Equal(t, 1, right.Size())
	assert.Equal(t, []label.Label{c}, right.Top())
	assert.Equal(t, []label.Label{c}, right.Bottom())
}

func TestReduceReportsFalseForAnIrreduciblePermutation(t *testing.T) {
	alloc := label.NewAllocator()
	a, b, c := alloc.New(), alloc.New(), alloc.New()
	ls := vectorlengths.NewRational(map[label.Label]int64{a: 1, b: 1, c: 1})

	e, err := iet.New(ls, []label.Label{a, b, c}, []label.Label{c, b, a})
	require.NoError(t, err)

	_, ok := e.Reduce()
	assert.False(t, ok)
}

func TestInduceClassifiesASingleIntervalAsACylinder(t *testing.T) {
	alloc := label.NewAllocator()
	a := alloc.New()
	ls := vectorlengths.NewRational(map[label.Label]int64{a: 1})
	e, err := iet.New(ls, []label.Label{a}, []label.Label{a})
	require.NoError(t, err)

	c := e.Induce(iet.Unbounded)
	assert.True(t, iet.IsCylinder(c))
}

func TestInduceOnAnImmediatelyReducibleIETReportsASeparatingConnection(t *testing.T) {
	alloc := label.NewAllocator()
	a, b := alloc.New(), alloc.New()
	ls := vectorlengths.NewRational(map[label.Label]int64{a: 3, b: 5})
	e, err := iet.New(ls, []label.Label{a, b}, []label.Label{a, b})
	require.NoError(t, err)

	c := e.Induce(iet.Unbounded)
	bottomLabel, topLabel, right, ok := iet.AsSeparatingConnection(c)
	require.True(t, ok)
	assert.True(t, bottomLabel.Equal(a))
	assert.True(t, topLabel.Equal(a))
	require.NotNil(t, right)
	assert.Equal(t, 1, right.Size())
}

func TestInduceOnARotationEventuallyMergesTheTwoLabels(t *testing.T) {
	alloc := label.NewAllocator()
	a, b := alloc.New(), alloc.New()
	ls := vectorlengths.NewRational(map[label.Label]int64{a: 3, b: 2})
	e, err := iet.New(ls, []label.Label{a, b}, []label.Label{b, a})
	require.NoError(t, err)

	c := e.Induce(iet.Unbounded)
	bottomLabel, topLabel, ok := iet.AsNonSeparatingConnection(c)
	require.True(t, ok)
	assert.False(t, bottomLabel.IsZero())
	assert.False(t, topLabel.IsZero())
}

func TestInduceRespectsAFiniteStepBudget(t *testing.T) {
	alloc := label.NewAllocator()
	a, b := alloc.New(), alloc.New()
	ls := vectorlengths.NewRational(map[label.Label]int64{a: 987, b: 610})
	e, err := iet.New(ls, []label.Label{a, b}, []label.Label{b, a})
	require.NoError(t, err)

	c := e.Induce(1)
	assert.True(t, iet.LimitReached(c))
}

func TestSAFInvariantIsZeroOnTheTrivialRationalBasis(t *testing.T) {
	alloc := label.NewAllocator()
	a, b, c := alloc.New(), alloc.New(), alloc.New()
	ls := vectorlengths.NewRational(map[label.Label]int64{a: 3, b: 5, c: 2})
	e, err := iet.New(ls, []label.Label{a, b, c}, []label.Label{c, b, a})
	require.NoError(t, err)

	saf := e.SAFInvariant()
	for _, coord := range saf {
		assert.Equal(t, 0, coord.Sign())
	}
}

func TestBoshernitzanNoPeriodicTrajectoryIsFalseUnderTheRationalBasis(t *testing.T) {
	alloc := label.NewAllocator()
	a, b, c := alloc.New(), alloc.New(), alloc.New()
	ls := vectorlengths.NewRational(map[label.Label]int64{a: 3, b: 5, c: 2})
	e, err := iet.New(ls, []label.Label{a, b, c}, []label.Label{c, b, a})
	require.NoError(t, err)

	assert.False(t, e.BoshernitzanNoPeriodicTrajectory())
}
