package label

import "fmt"

// Label is the opaque identity of a matched pair of intervals. The zero
// Label is not a valid label minted by any Allocator and is reserved as a
// sentinel for "no label" in internal bookkeeping.
type Label struct {
	id uint64
}

// Equal reports whether l and o carry the same id, i.e. for Labels from one
// Allocator, whether they were minted by the same call to New. Labels from
// different Allocators are compared by id alone.
func (l Label) Equal(o Label) bool {
	return l.id == o.id
}

// IsZero reports whether l is the zero value, i.e. was never minted.
func (l Label) IsZero() bool {
	return l.id == 0
}

// String renders a short, stable textual form used only for diagnostics;
// it is not the display name a Lengths.Render would produce.
func (l Label) String() string {
	return fmt.Sprintf("L%d", l.id)
}

// Allocator mints fresh, pairwise-distinct Labels. The zero Allocator is
// ready to use. An Allocator is not safe for concurrent use, matching the
// single-threaded, synchronous design of the rest of this module.
type Allocator struct {
	next uint64
}

// NewAllocator returns a ready-to-use Allocator.
func NewAllocator() *Allocator {
	return &Allocator{}
}

// New mints and returns a fresh Label, distinct from every Label this
// Allocator has returned before.
func (a *Allocator) New() Label {
	a.next++

	return Label{id: a.next}
}
