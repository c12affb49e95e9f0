package iet

import (
	"github.com/flatsurfgo/intervalxt/internal/xt"
	"github.com/flatsurfgo/intervalxt/label"
)

const pkg = "iet"

// Unbounded is the step-budget sentinel accepted by Induce: run until a
// classification is reached, never stopping early for lack of budget.
const Unbounded = -1

// Classification is the closed sum type returned by Induce. Inspect it with
// LimitReached, IsCylinder, AsSeparatingConnection,
// AsNonSeparatingConnection, IsWithoutPeriodicTrajectoryBoshernitzan and
// IsWithoutPeriodicTrajectoryAutoSimilar; the implementations are
// unexported, so there is no exported way to construct one directly.
type Classification interface {
	isClassification()
}

type limitReached struct{}

func (limitReached) isClassification() {}

// LimitReached reports whether c is the "budget exhausted, no classification
// yet" outcome.
func LimitReached(c Classification) bool {
	_, ok := c.(limitReached)

	return ok
}

type cylinder struct{}

func (cylinder) isClassification() {}

// IsCylinder reports whether c classifies the IET as a single self-paired
// label, i.e. a cylinder.
func IsCylinder(c Classification) bool {
	_, ok := c.(cylinder)

	return ok
}

type separatingConnection struct {
	bottomLabel, topLabel label.Label
	right                 *IET
}

func (separatingConnection) isClassification() {}

// AsSeparatingConnection extracts the bottom/top labels bounding the
// discovered saddle connection and the detached right-hand IET, if c is that
// classification.
func AsSeparatingConnection(c Classification) (bottomLabel, topLabel label.Label, right *IET, ok bool) {
	sc, ok := c.(separatingConnection)
	if !ok {
		return label.Label{}, label.Label{}, nil, false
	}

	return sc.bottomLabel, sc.topLabel, sc.right, true
}

type nonSeparatingConnection struct {
	bottomLabel, topLabel label.Label
}

func (nonSeparatingConnection) isClassification() {}

// AsNonSeparatingConnection extracts the bottom/top labels of a discovered
// connection that merges the two labels into one, if c is that
// classification.
func AsNonSeparatingConnection(c Classification) (bottomLabel, topLabel label.Label, ok bool) {
	nc, ok := c.(nonSeparatingConnection)
	if !ok {
		return label.Label{}, label.Label{}, false
	}

	return nc.bottomLabel, nc.topLabel, true
}

type withoutPeriodicTrajectoryBoshernitzan struct{}

func (withoutPeriodicTrajectoryBoshernitzan) isClassification() {}

// IsWithoutPeriodicTrajectoryBoshernitzan reports whether c is the
// classification certified by the Boshernitzan rational affine subspace
// criterion.
func IsWithoutPeriodicTrajectoryBoshernitzan(c Classification) bool {
	_, ok := c.(withoutPeriodicTrajectoryBoshernitzan)

	return ok
}

type withoutPeriodicTrajectoryAutoSimilar struct{}

func (withoutPeriodicTrajectoryAutoSimilar) isClassification() {}

// IsWithoutPeriodicTrajectoryAutoSimilar reports whether c is the
// classification certified by the auto-similarity loop tracker (the SAF=0
// case).
func IsWithoutPeriodicTrajectoryAutoSimilar(c Classification) bool {
	_, ok := c.(withoutPeriodicTrajectoryAutoSimilar)

	return ok
}

// zorichStep performs one accelerated Zorich step on the current IET.
// Returns true iff the two leftmost intervals (after the step) share equal
// length — a saddle-connection or cylinder endpoint is now exposed.
func (e *IET) zorichStep() bool {
	top := e.headTop
	bottom := e.headBot

	if e.nodes[top].label.Equal(e.nodes[bottom].label) {
		return true
	}

	var pushed []int
	chainTail := nilIndex

	for {
		if e.nodes[bottom].label.Equal(e.nodes[top].label) {
			stop := e.lengths.SubtractRepeated(e.nodes[top].label)
			chainTail = nilIndex
			stopFound := false
			for _, idx := range pushed {
				if e.nodes[idx].label.Equal(stop) {
					chainTail = e.nodes[idx].prev
					stopFound = true

					break
				}
			}
			if !stopFound && len(pushed) > 0 {
				xt.Precondition(pkg, "subtractRepeated returned a label never pushed in this zorichStep")
			}

			break
		}

		e.lengths.Push(e.nodes[bottom].label)
		pushed = append(pushed, bottom)

		if e.lengths.Cmp(e.nodes[top].label) >= 0 {
			e.lengths.Pop()
			pushed = pushed[:len(pushed)-1]
			e.lengths.Subtract(e.nodes[top].label)
			chainTail = e.nodes[bottom].prev

			break
		}

		bottom = e.nodes[bottom].next
	}

	e.spliceBottomPrefix(top, chainTail)

	return e.lengths.CmpLabels(e.at(e.headTop), e.at(e.headBot)) == 0
}

// spliceBottomPrefix moves the bottom-list run [headBot..chainTail] (empty
// if chainTail is nilIndex) to sit immediately before top's twin.
func (e *IET) spliceBottomPrefix(top, chainTail int) {
	if chainTail == nilIndex {
		return
	}

	chainHead := e.headBot
	newHead := e.nodes[chainTail].next
	e.nodes[chainTail].next = nilIndex
	if newHead != nilIndex {
		e.nodes[newHead].prev = nilIndex
	}
	e.headBot = newHead

	before := e.nodes[top].twin
	e.insertChainBefore(&e.headBot, before, chainHead, chainTail)
}

// mergeNonSeparating merges the dropped label t (leftmost on top) into the
// retained label b (leftmost on bottom): b's bottom node takes over t's
// twin's position, and t disappears from top entirely.
func (e *IET) mergeNonSeparating() (bottomLabel, topLabel label.Label) {
	t := e.headTop
	b := e.headBot

	bottomLabel = e.nodes[b].label
	topLabel = e.nodes[t].label

	twinT := e.nodes[t].twin

	e.headBot = e.unlinkFront(e.headBot)
	e.replaceNode(&e.headBot, twinT, b)

	e.headTop = e.unlinkFront(e.headTop)

	e.size--
	e.safValid = false

	return bottomLabel, topLabel
}

// Induce drives Zorich induction for up to limit steps (Unbounded for no
// budget), stopping early once a step exposes two leftmost intervals of
// equal length. When SAF=0 the auto-similarity tracker is consulted before
// every step. Reducibility, the equal-length merge and the Boshernitzan
// criterion are checked once, after the step loop ends; with Unbounded, that
// loop ends only when a step exposes equal lengths or the tracker reports a
// loop.
func (e *IET) Induce(limit int) Classification {
	if e.size == 1 {
		return cylinder{}
	}

	foundSaddle := false

	if limit != 0 {
		saf := e.SAFInvariant()
		saf0 := e.isSAFZero()

		for i := 0; limit == Unbounded || i < limit; i++ {
			if saf0 && len(saf) != 0 {
				if e.tracker.loop(e) {
					return withoutPeriodicTrajectoryAutoSimilar{}
				}
			}

			foundSaddle = e.zorichStep()
			if foundSaddle {
				break
			}

			e.Swap()
			foundSaddle = e.zorichStep()
			e.Swap()
			if foundSaddle {
				break
			}
		}
	}

	if right, ok := e.Reduce(); ok {
		bottomLabel := e.lastLabel(e.headBot)
		topLabel := e.lastLabel(e.headTop)

		return separatingConnection{bottomLabel: bottomLabel, topLabel: topLabel, right: right}
	}

	if e.lengths.CmpLabels(e.at(e.headTop), e.at(e.headBot)) == 0 {
		bottomLabel, topLabel := e.mergeNonSeparating()

		return nonSeparatingConnection{bottomLabel: bottomLabel, topLabel: topLabel}
	}

	if e.BoshernitzanNoPeriodicTrajectory() {
		return withoutPeriodicTrajectoryBoshernitzan{}
	}

	return limitReached{}
}

func (e *IET) lastLabel(head int) label.Label {
	n := head
	for e.nodes[n].next != nilIndex {
		n = e.nodes[n].next
	}

	return e.nodes[n].label
}

// isSAFZero reports whether every coordinate of the SAF invariant vanishes.
func (e *IET) isSAFZero() bool {
	for _, c := range e.SAFInvariant() {
		if c.Sign() != 0 {
			return false
		}
	}

	return true
}
