package lengths

import (
	"math/big"

	"github.com/flatsurfgo/intervalxt/label"
)

// Value is the opaque, value-comparable result of Get. Concrete backends
// choose their own underlying type (a *big.Rat, a wrapped algebraic number,
// ...); callers of this package must not assume anything about Value beyond
// the comparability the backend itself documents.
type Value interface{}

// Lengths maps label.Label to a strictly positive length and exposes the
// small set of mutating operations the IET kernel needs to drive Zorich
// induction. All mutations act on an internal accumulator stack of pushed
// labels whose logical value is the sum of their lengths; every push must be
// matched by a pop, Clear, Subtract, or SubtractRepeated before a new
// high-level kernel operation begins.
//
// Implementations are mutated in place and must not be shared between two
// IETs driven concurrently.
type Lengths interface {
	// Push pushes label l onto the accumulator.
	Push(l label.Label)

	// Pop pops the most recently pushed label. Precondition: the
	// accumulator is non-empty; violating it is a programmer error.
	Pop()

	// Clear empties the accumulator.
	Clear()

	// Cmp returns the sign of sum(accumulator) - length(l): negative if
	// the accumulator is smaller, zero if equal, positive if larger.
	Cmp(l label.Label) int

	// CmpLabels returns the sign of length(a) - length(b).
	CmpLabels(a, b label.Label) int

	// Subtract sets length(l) <- length(l) - sum(accumulator) and clears
	// the accumulator. Postcondition: the result is strictly positive.
	Subtract(l label.Label)

	// SubtractRepeated floor-divides length(l) by sum(accumulator),
	// subtracts that many copies (leaving a strictly positive residual),
	// then finds the shortest prefix of the accumulator whose sum exceeds
	// the residual and subtracts the labels up to but not including the
	// first such label. It returns that label and clears the accumulator.
	SubtractRepeated(l label.Label) label.Label

	// Coefficients returns, for each of labels, its length expressed as a
	// rational-coefficient vector in a basis common to every label this
	// Lengths was constructed over.
	Coefficients(labels []label.Label) [][]*big.Rat

	// Get returns the length of l as an opaque, backend-comparable Value.
	Get(l label.Label) Value

	// Only returns a copy of this Lengths retaining only the given
	// labels; every other label is logically zeroed.
	Only(keep []label.Label) Lengths

	// Forget returns a copy of this Lengths stripped of any wrapper
	// state (in particular, of any Adapter); used when snapshotting to
	// break reference cycles back to a decomposition.
	Forget() Lengths

	// Similar reports whether length(a)*other.length(bb) ==
	// length(b)*other.length(aa), i.e. projective equality of the two
	// ratios, without requiring either ratio to be individually
	// representable.
	Similar(a, b label.Label, other Lengths, aa, bb label.Label) bool

	// Render returns a short textual name for l, for display only.
	Render(l label.Label) string
}
