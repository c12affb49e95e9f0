package decomposition_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flatsurfgo/intervalxt/decomposition"
	"github.com/flatsurfgo/intervalxt/label"
	"github.com/flatsurfgo/intervalxt/vectorlengths"
)

// allConnections flattens every non-empty connection list reported by a
// component's Left and Right perimeters into one slice.
func allConnections(c *decomposition.Component) []decomposition.Connection {
	var out []decomposition.Connection
	for _, side := range [][][]decomposition.Connection{c.Left(), c.Right()} {
		for _, conns := range side {
			out = append(out, conns...)
		}
	}

	return out
}

// assertEveryConnectionHasExactlyOneNegation checks that, across the given
// connections, every entry is the negation of exactly one other entry.
func assertEveryConnectionHasExactlyOneNegation(t *testing.T, conns []decomposition.Connection) {
	t.Helper()

	for i, c := range conns {
		want := c.Negate()
		matches := 0
		for j, other := range conns {
			if i == j {
				continue
			}
			if other == want {
				matches++
			}
		}
		assert.Equal(t, 1, matches, "connection %d (%+v) has %d negation partners, want 1", i, c, matches)
	}
}

// S2: a single two-interval cylinder's sole right connection is the
// negative of its sole left connection.
func TestDecomposeOfATwoIntervalCylinderPairsItsSingleLeftAndRightConnections(t *testing.T) {
	alloc := label.NewAllocator()
	a, b := alloc.New(), alloc.New()
	ls := vectorlengths.NewRational(map[label.Label]int64{a: 1, b: 1})

	d, err := decomposition.New(ls, []label.Label{a, b}, []label.Label{b, a})
	require.NoError(t, err)

	ok := d.Decompose(nil, -1)
	require.True(t, ok)

	root := d.Root()
	require.NotNil(t, root.Cylinder())
	assert.True(t, *root.Cylinder())

	conns := allConnections(root)
	require.Len(t, conns, 2)
	assertEveryConnectionHasExactlyOneNegation(t, conns)
}

// S3: nested cylinders. The whole 3-label permutation is irreducible, so
// induction first merges a into c (a non-separating connection), and only
// the resulting two-label IET splits, separating b from c. Every connection
// reported across the two final cylinders is antiparallel to exactly one
// other, including the degenerate self-paired boundary between b and b.
func TestDecomposeOfNestedCylindersPairsEveryReportedConnection(t *testing.T) {
	alloc := label.NewAllocator()
	a, b, c := alloc.New(), alloc.New(), alloc.New()
	ls := vectorlengths.NewRational(map[label.Label]int64{a: 1, b: 1, c: 1})

	d, err := decomposition.New(ls, []label.Label{a, b, c}, []label.Label{c, b, a})
	require.NoError(t, err)

	ok := d.Decompose(nil, -1)
	require.True(t, ok)

	comps := d.Components()
	require.Len(t, comps, 2)
	for _, comp := range comps {
		require.NotNil(t, comp.Cylinder())
		assert.True(t, *comp.Cylinder())
	}

	var all []decomposition.Connection
	for _, comp := range comps {
		all = append(all, allConnections(comp)...)
	}
	require.Len(t, all, 4)
	assertEveryConnectionHasExactlyOneNegation(t, all)
}

// S5: over the basis [1, sqrt(2)], the rotation exchanging a (length
// sqrt(2)) and b (length 1) has no periodic trajectory. decompose marks the
// component withoutPeriodicTrajectory (not cylinder), and since nothing had
// a chance to record a connection before the Boshernitzan certificate landed
// on this still-unsplit root, it is also certified Keane.
func TestDecomposeOfTheSqrt2RotationCertifiesWithoutPeriodicTrajectory(t *testing.T) {
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

	d, err := decomposition.New(ls, []label.Label{a, b}, []label.Label{b, a})
	require.NoError(t, err)

	ok := d.Decompose(nil, -1)
	require.True(t, ok)

	root := d.Root()
	require.NotNil(t, root.WithoutPeriodicTrajectory())
	assert.True(t, *root.WithoutPeriodicTrajectory())
	require.NotNil(t, root.Cylinder())
	assert.False(t, *root.Cylinder())
	require.NotNil(t, root.Keane())
	assert.True(t, *root.Keane())
}

// S6: the Arnoux-Yoccoz interval exchange over the cubic field
// a^3 - a^2 - a - 1 = 0 is the textbook example of SAF=0 auto-similarity: its
// first DecompositionStep call reaches WithoutPeriodicTrajectoryAutoSimilar
// without ever finding a reducible prefix or an exact length match.
func TestDecomposeOfArnouxYoccozReachesAutoSimilarWithoutPeriodicTrajectory(t *testing.T) {
	root := vectorlengths.CubicRoot(-1, -1, -1, 1, 2, 200, 200) // ~1.839286755

	one := new(big.Float).SetPrec(200).SetInt64(1)
	squared := new(big.Float).SetPrec(200).Mul(root, root)
	basis := []*big.Float{one, root, squared}

	alloc := label.NewAllocator()
	a, b, c, d, e, f, g := alloc.New(), alloc.New(), alloc.New(), alloc.New(), alloc.New(), alloc.New(), alloc.New()

	rat := func(n, m int64) *big.Rat { return big.NewRat(n, m) }
	zeroRat, oneRat := rat(0, 1), rat(1, 1)
	coeff := map[label.Label][]*big.Rat{
		a: {oneRat, oneRat, zeroRat},         // a+1
		b: {rat(-1, 1), rat(-1, 1), oneRat},  // a^2-a-1
		c: {zeroRat, zeroRat, oneRat},        // a^2
		d: {zeroRat, oneRat, zeroRat},        // a
		e: {zeroRat, oneRat, zeroRat},        // a
		f: {oneRat, zeroRat, zeroRat},        // 1
		g: {oneRat, zeroRat, zeroRat},        // 1
	}
	ls := vectorlengths.New(basis, coeff, 200)

	top := []label.Label{a, b, c, d, e, f, g}
	bottom := []label.Label{b, e, d, g, f, c, a}

	dec, err := decomposition.New(ls, top, bottom)
	require.NoError(t, err)

	result := dec.Root().DecompositionStep(decomposition.Unbounded)
	require.Equal(t, decomposition.StepWithoutPeriodicTrajectory, result.Outcome)

	root2 := dec.Root()
	require.NotNil(t, root2.WithoutPeriodicTrajectory())
	assert.True(t, *root2.WithoutPeriodicTrajectory())
}
