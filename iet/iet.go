package iet

import (
	"math/big"

	"github.com/flatsurfgo/intervalxt/label"
	"github.com/flatsurfgo/intervalxt/lengths"
)

// IET is an interval exchange transformation: two orderings (top, bottom)
// of the same label set, a shared Lengths, and a logical orientation flag.
// The zero value is not valid; use New.
type IET struct {
	lengths lengths.Lengths
	nodes   []node
	headTop int
	headBot int
	size    int
	swapped bool

	safValid bool
	safCache []*big.Rat

	tracker SimilarityTracker
}

// New builds an IET from a shared Lengths and two label orderings. top and
// bottom must be permutations of the same label multiset with no
// repetitions, per the invariant every label occupies at most one top
// interval and one bottom interval.
func New(ls lengths.Lengths, top, bottom []label.Label) (*IET, error) {
	if len(top) == 0 || len(bottom) == 0 {
		return nil, ErrEmpty
	}
	if len(top) != len(bottom) {
		return nil, ErrLabelMismatch
	}

	topPos := make(map[label.Label]int, len(top))
	for i, l := range top {
		if _, dup := topPos[l]; dup {
			return nil, ErrLabelMismatch
		}
		topPos[l] = i
	}
	for _, l := range bottom {
		if _, ok := topPos[l]; !ok {
			return nil, ErrLabelMismatch
		}
		delete(topPos, l)
	}
	if len(topPos) != 0 {
		return nil, ErrLabelMismatch
	}

	e := &IET{lengths: ls}
	e.headTop = e.buildList(top)
	e.headBot = e.buildList(bottom)

	topIdx := make(map[label.Label]int, len(top))
	for n := e.headTop; n != nilIndex; n = e.nodes[n].next {
		topIdx[e.nodes[n].label] = n
	}
	for n := e.headBot; n != nilIndex; n = e.nodes[n].next {
		t := topIdx[e.nodes[n].label]
		e.nodes[n].twin = t
		e.nodes[t].twin = n
	}

	e.size = len(top)

	return e, nil
}

// Size returns the number of label pairs currently in the IET.
func (e *IET) Size() int { return e.size }

// Top returns the current top label ordering, left to right.
func (e *IET) Top() []label.Label { return e.walkLabels(e.headTop) }

// Bottom returns the current bottom label ordering, left to right.
func (e *IET) Bottom() []label.Label { return e.walkLabels(e.headBot) }

// Swapped reports whether Swap has been called an odd number of times.
func (e *IET) Swapped() bool { return e.swapped }

// Lengths returns the shared length backend driving this IET.
func (e *IET) Lengths() lengths.Lengths { return e.lengths }

// Swap exchanges the top and bottom lists and flips the orientation flag.
// SAFInvariant read afterwards has the opposite sign.
func (e *IET) Swap() {
	e.headTop, e.headBot = e.headBot, e.headTop
	e.swapped = !e.swapped
}

// Reduce scans for the smallest proper prefix of top (equivalently bottom)
// that is closed under label pairing; if found, the suffix is detached as a
// new IET sharing the same Lengths and returned, leaving the receiver
// holding the (now shorter) prefix. Returns (nil, false) if the IET is
// irreducible.
func (e *IET) Reduce() (*IET, bool) {
	state := make(map[label.Label]int8, e.size)
	topAhead, botAhead := 0, 0

	curTop, curBot := e.headTop, e.headBot
	k := 0

	for {
		lt := e.nodes[curTop].label
		if state[lt] == 2 {
			botAhead--
		} else {
			topAhead++
			state[lt] = 1
		}

		lb := e.nodes[curBot].label
		if state[lb] == 1 {
			topAhead--
		} else {
			botAhead++
			state[lb] = 2
		}

		k++
		if topAhead == 0 && botAhead == 0 {
			break
		}

		curTop = e.nodes[curTop].next
		curBot = e.nodes[curBot].next
	}

	suffixTopHead := e.nodes[curTop].next
	suffixBotHead := e.nodes[curBot].next
	if suffixTopHead == nilIndex {
		return nil, false
	}

	e.nodes[curTop].next = nilIndex
	e.nodes[suffixTopHead].prev = nilIndex
	e.nodes[curBot].next = nilIndex
	e.nodes[suffixBotHead].prev = nilIndex

	right := &IET{
		lengths: e.lengths,
		nodes:   e.nodes,
		headTop: suffixTopHead,
		headBot: suffixBotHead,
		size:    e.size - k,
	}

	e.size = k
	e.safValid = false

	return right, true
}
