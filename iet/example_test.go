package iet_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flatsurfgo/intervalxt/iet"
	"github.com/flatsurfgo/intervalxt/label"
	"github.com/flatsurfgo/intervalxt/vectorlengths"
)

func sqrt2Rotation(t *testing.T) (*iet.IET, label.Label, label.Label) {
	t.Helper()

	sqrt2 := vectorlengths.SqrtRoot(2, 200, 200)
	basis := []*big.Float{big.NewFloat(1), sqrt2}

	alloc := label.NewAllocator()
	a := alloc.New() // sqrt(2)
	b := alloc.New() // 1

	coeff := map[label.Label][]*big.Rat{
		a: {big.NewRat(0, 1), big.NewRat(1, 1)},
		b: {big.NewRat(1, 1), big.NewRat(0, 1)},
	}
	ls := vectorlengths.New(basis, coeff, 200)

	e, err := iet.New(ls, []label.Label{a, b}, []label.Label{b, a})
	require.NoError(t, err)

	return e, a, b
}

// Property 5: saf(swap(iet)) == -saf(iet).
func TestSAFInvariantNegatesUnderSwap(t *testing.T) {
	e, _, _ := sqrt2Rotation(t)

	before := e.SAFInvariant()
	require.NotEmpty(t, before)

	e.Swap()
	after := e.SAFInvariant()

	require.Len(t, after, len(before))
	for i, c := range before {
		want := new(big.Rat).Neg(c)
		assert.Equal(t, 0, want.Cmp(after[i]), "coordinate %d: want %v, got %v", i, want, after[i])
	}
}

// S5 (first half): over the basis [1, sqrt(2)], the rotation exchanging a
// (length sqrt(2)) and b (length 1) is never periodic, and the Boshernitzan
// affine-subspace criterion certifies this on the untouched IET, before any
// induction step runs: the translation matrix for this two-label swap is
// [[coeff(b)[0], -coeff(a)[0]], [coeff(b)[1], -coeff(a)[1]]], which for
// coeff(a)=[0,1], coeff(b)=[1,0] has trivial (zero-only) null space.
func TestBoshernitzanNoPeriodicTrajectoryOnTheSqrt2Rotation(t *testing.T) {
	e, _, _ := sqrt2Rotation(t)

	assert.True(t, e.BoshernitzanNoPeriodicTrajectory())
}
