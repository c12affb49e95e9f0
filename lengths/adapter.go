package lengths

import (
	"math/big"

	"github.com/flatsurfgo/intervalxt/label"
)

// ConnectionMover is the callback a decomposition installs on an Adapter so
// that the adapter can thread saddle-connection bookkeeping through label
// merges without the lengths package importing the decomposition package
// (which would create an import cycle, since decomposition already depends
// on lengths). MoveConnections is called with minuend (the label whose
// length survives the subtraction, strictly positive afterwards) and
// subtrahend (the first label pushed onto the accumulator before the
// subtraction that triggered the call).
type ConnectionMover interface {
	MoveConnections(minuend, subtrahend label.Label)
}

// NopMover is a ConnectionMover that does nothing; useful for driving the
// IET kernel in isolation (tests, benchmarks) without a decomposition.
type NopMover struct{}

// MoveConnections implements ConnectionMover by doing nothing.
func (NopMover) MoveConnections(label.Label, label.Label) {}

// Adapter wraps an existing Lengths implementation and intercepts its
// mutating operations to maintain a local record of pushed labels (spec
// §4.7). On Subtract and SubtractRepeated it additionally invokes the
// installed ConnectionMover before delegating to the wrapped Lengths, then
// clears its own bookkeeping. Every other operation is delegated unchanged.
type Adapter struct {
	inner  Lengths
	mover  ConnectionMover
	pushed []label.Label
}

// NewAdapter wraps inner with saddle-connection bookkeeping, reporting
// every Subtract/SubtractRepeated merge to mover. If mover is nil, NopMover
// is used.
func NewAdapter(inner Lengths, mover ConnectionMover) *Adapter {
	if mover == nil {
		mover = NopMover{}
	}

	return &Adapter{inner: inner, mover: mover}
}

// SetMover replaces the installed ConnectionMover. Used by a decomposition
// to rebind its shared Adapter onto one component's bookkeeping before
// driving that component's induction.
func (a *Adapter) SetMover(mover ConnectionMover) {
	if mover == nil {
		mover = NopMover{}
	}
	a.mover = mover
}

// Push records l both on the wrapped Lengths and in the adapter's own
// ordered history of this accumulation round.
func (a *Adapter) Push(l label.Label) {
	a.pushed = append(a.pushed, l)
	a.inner.Push(l)
}

// Pop delegates to the wrapped Lengths and drops the most recently recorded
// pushed label.
func (a *Adapter) Pop() {
	if len(a.pushed) > 0 {
		a.pushed = a.pushed[:len(a.pushed)-1]
	}
	a.inner.Pop()
}

// Clear empties both the wrapped accumulator and the adapter's history.
func (a *Adapter) Clear() {
	a.pushed = a.pushed[:0]
	a.inner.Clear()
}

// Cmp delegates unchanged.
func (a *Adapter) Cmp(l label.Label) int { return a.inner.Cmp(l) }

// CmpLabels delegates unchanged.
func (a *Adapter) CmpLabels(x, y label.Label) int { return a.inner.CmpLabels(x, y) }

// Subtract reports the merge of the first-pushed label into minuend to the
// installed ConnectionMover, delegates the subtraction, then clears the
// accumulator history.
func (a *Adapter) Subtract(minuend label.Label) {
	if len(a.pushed) > 0 {
		a.mover.MoveConnections(minuend, a.pushed[0])
	}
	a.inner.Subtract(minuend)
	a.pushed = a.pushed[:0]
}

// SubtractRepeated reports the same merge as Subtract, delegates to the
// wrapped implementation, forwards its returned label unchanged, and clears
// the accumulator history.
func (a *Adapter) SubtractRepeated(minuend label.Label) label.Label {
	if len(a.pushed) > 0 {
		a.mover.MoveConnections(minuend, a.pushed[0])
	}
	result := a.inner.SubtractRepeated(minuend)
	a.pushed = a.pushed[:0]

	return result
}

// Coefficients delegates unchanged.
func (a *Adapter) Coefficients(ls []label.Label) [][]*big.Rat { return a.inner.Coefficients(ls) }

// Get delegates unchanged.
func (a *Adapter) Get(l label.Label) Value { return a.inner.Get(l) }

// Only returns a fresh Adapter around the wrapped Lengths' Only result,
// sharing this adapter's mover.
func (a *Adapter) Only(keep []label.Label) Lengths {
	return NewAdapter(a.inner.Only(keep), a.mover)
}

// Forget returns the wrapped Lengths' own Forget result, stripping the
// adapter wrapper entirely (SimilarityTracker snapshots use this to avoid
// holding a live reference back into the decomposition).
func (a *Adapter) Forget() Lengths {
	return a.inner.Forget()
}

// Similar delegates unchanged, unwrapping other if it is itself an Adapter
// so backends that type-assert their peer still recognize it.
func (a *Adapter) Similar(x, y label.Label, other Lengths, xx, yy label.Label) bool {
	if oa, ok := other.(*Adapter); ok {
		other = oa.inner
	}

	return a.inner.Similar(x, y, other, xx, yy)
}

// Render delegates unchanged.
func (a *Adapter) Render(l label.Label) string { return a.inner.Render(l) }

// Unwrap returns the Lengths this Adapter wraps.
func (a *Adapter) Unwrap() Lengths { return a.inner }
