package intervalxt

import (
	"github.com/flatsurfgo/intervalxt/decomposition"
	"github.com/flatsurfgo/intervalxt/label"
	"github.com/flatsurfgo/intervalxt/lengths"
	"github.com/flatsurfgo/intervalxt/vectorlengths"
)

// Re-exported so callers driving the common case never need to import the
// decomposition/label/lengths packages by name.
type (
	DynamicalDecomposition = decomposition.DynamicalDecomposition
	Component              = decomposition.Component
	StepResult             = decomposition.StepResult
	StepOutcome            = decomposition.StepOutcome
	Connection             = decomposition.Connection
	Separatrix             = decomposition.Separatrix
	HalfEdge               = decomposition.HalfEdge
	Label                  = label.Label
	Allocator              = label.Allocator
	Lengths                = lengths.Lengths
)

// Unbounded is decomposition.Unbounded, re-exported for callers that only
// import this package.
const Unbounded = decomposition.Unbounded

// NewAllocator returns a ready-to-use label Allocator.
func NewAllocator() *Allocator { return label.NewAllocator() }

// New builds a DynamicalDecomposition over base with the given top/bottom
// label orderings. It is shorthand for decomposition.New.
func New(base Lengths, top, bottom []Label) (*DynamicalDecomposition, error) {
	return decomposition.New(base, top, bottom)
}

// NewRational builds a DynamicalDecomposition over the reference rational
// Lengths backend (vectorlengths.NewRational), for callers who don't need
// an algebraic length field and just want to exercise the decomposition
// with plain positive integer lengths.
func NewRational(lengthByLabel map[Label]int64, top, bottom []Label) (*DynamicalDecomposition, error) {
	return New(vectorlengths.NewRational(lengthByLabel), top, bottom)
}
