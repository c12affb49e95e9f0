package affine_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flatsurfgo/intervalxt/affine"
)

func rat(n int64) *big.Rat { return big.NewRat(n, 1) }

func TestHasNonNegativeVectorOnLine(t *testing.T) {
	// {(x,y) : x - y = 0}: the line x=y contains (1,1) >= 0.
	a := [][]*big.Rat{{rat(1), rat(-1)}}
	y := []*big.Rat{rat(0)}
	s, err := affine.NewFromSystem(a, y)
	require.NoError(t, err)

	assert.True(t, s.HasNonNegativeVector())
	assert.True(t, s.HasPositiveVector())
	ok, err := s.HasNonZeroNonNegativeVector()
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestHasNoNonNegativeVectorWhenForcedOppositeSigns(t *testing.T) {
	// {(x,y) : x + y = 0, x - 1 = 0} => x=1, y=-1: not non-negative.
	a := [][]*big.Rat{
		{rat(1), rat(1)},
		{rat(1), rat(0)},
	}
	y := []*big.Rat{rat(0), rat(1)}
	s, err := affine.NewFromSystem(a, y)
	require.NoError(t, err)

	assert.False(t, s.HasNonNegativeVector())
}

func TestHasNonZeroNonNegativeVectorRejectsInhomogeneous(t *testing.T) {
	a := [][]*big.Rat{{rat(1), rat(0)}}
	y := []*big.Rat{rat(1)}
	s, err := affine.NewFromSystem(a, y)
	require.NoError(t, err)

	_, err = s.HasNonZeroNonNegativeVector()
	assert.ErrorIs(t, err, affine.ErrInhomogeneousSystem)
}

func TestZeroSubspaceHasOnlyTheOriginSoNoNonZeroVector(t *testing.T) {
	// {(x,y) : x=0, y=0}: only the origin, which is non-negative but zero.
	a := [][]*big.Rat{
		{rat(1), rat(0)},
		{rat(0), rat(1)},
	}
	y := []*big.Rat{rat(0), rat(0)}
	s, err := affine.NewFromSystem(a, y)
	require.NoError(t, err)

	assert.True(t, s.HasNonNegativeVector())
	ok, err := s.HasNonZeroNonNegativeVector()
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestHasPositiveVectorFailsWhenOneCoordinatePinnedToZero(t *testing.T) {
	a := [][]*big.Rat{{rat(0), rat(1)}}
	y := []*big.Rat{rat(0)}
	s, err := affine.NewFromSystem(a, y)
	require.NoError(t, err)

	assert.False(t, s.HasPositiveVector())
	assert.True(t, s.HasNonNegativeVector())
}

func TestNewFromGenerators(t *testing.T) {
	s, err := affine.NewFromGenerators([][]*big.Rat{{rat(1), rat(1)}})
	require.NoError(t, err)
	assert.True(t, s.HasPositiveVector())
}

func TestInconsistentSystemIsInfeasible(t *testing.T) {
	a := [][]*big.Rat{
		{rat(1)},
		{rat(1)},
	}
	y := []*big.Rat{rat(0), rat(1)}
	s, err := affine.NewFromSystem(a, y)
	require.NoError(t, err)

	assert.False(t, s.HasNonNegativeVector())
	assert.False(t, s.HasPositiveVector())
}
