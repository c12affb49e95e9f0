package decomposition

import (
	"github.com/flatsurfgo/intervalxt/iet"
	"github.com/flatsurfgo/intervalxt/internal/xt"
	"github.com/flatsurfgo/intervalxt/label"
	"github.com/flatsurfgo/intervalxt/lengths"
)

// Unbounded is the step-budget sentinel accepted by DecompositionStep and
// Decompose: run until a classification (or target) is reached, never
// stopping early for lack of budget.
const Unbounded = iet.Unbounded

// boshernitzanCost is the per-call induction step budget charged while
// probing for a classification.
// TODO: replace with a heuristic keyed on component size; spec leaves this
// an open tuning question and promises it must never change which
// classification a component eventually receives, only how many induce
// calls it takes to get there.
const boshernitzanCost = 1

// Component is a handle onto one component of a decomposition: one IET
// plus the connections recorded at its boundary.
type Component struct {
	state *State
	cs    *componentState
}

// Cylinder reports whether this component has been classified as a
// cylinder, or nil if undetermined.
func (c *Component) Cylinder() *bool { return c.cs.cylinder }

// WithoutPeriodicTrajectory reports whether this component has been
// certified to have no periodic trajectory, or nil if undetermined.
func (c *Component) WithoutPeriodicTrajectory() *bool { return c.cs.withoutPeriodicTrajectory }

// Keane reports whether this component has been certified Keane: without
// periodic trajectory and with no connection of any length ever recorded at
// its boundary. It is nil until WithoutPeriodicTrajectory first becomes
// true, and may then be false if connections were already recorded before
// the certification landed.
func (c *Component) Keane() *bool { return c.cs.keane }

// Top returns the current top label ordering.
func (c *Component) Top() []label.Label { return c.cs.iet.Top() }

// Bottom returns the current bottom label ordering.
func (c *Component) Bottom() []label.Label { return c.cs.iet.Bottom() }

// Left returns the left perimeter: one connection list per top label
// followed by one per bottom label, in that order.
func (c *Component) Left() [][]Connection { return c.corner(c.cs.topLeft, c.cs.bottomLeft) }

// Right returns the right perimeter: one connection list per top label
// followed by one per bottom label, in that order.
func (c *Component) Right() [][]Connection { return c.corner(c.cs.topRight, c.cs.bottomRight) }

func (c *Component) corner(top, bottom map[label.Label][]Connection) [][]Connection {
	t := c.Top()
	b := c.Bottom()
	out := make([][]Connection, 0, len(t)+len(b))
	for _, l := range t {
		out = append(out, top[l])
	}
	for _, l := range b {
		out = append(out, bottom[l])
	}

	return out
}

// TopContour returns the top contour as an ordered sequence of half-edges.
func (c *Component) TopContour() []HalfEdge { return c.contour(Top) }

// BottomContour returns the bottom contour as an ordered sequence of
// half-edges.
func (c *Component) BottomContour() []HalfEdge { return c.contour(Bottom) }

func (c *Component) contour(side Side) []HalfEdge {
	seq := c.Top()
	if side == Bottom {
		seq = c.Bottom()
	}
	out := make([]HalfEdge, len(seq))
	for i, l := range seq {
		out[i] = HalfEdge{Component: c, Label: l, Side: side}
	}

	return out
}

// Perimeter concatenates bottom, right, top, left into one ordered walk,
// used for display and equality.
func (c *Component) Perimeter() []PerimeterItem {
	var out []PerimeterItem
	for _, he := range c.BottomContour() {
		out = append(out, he)
	}
	for _, conns := range c.Right() {
		for _, conn := range conns {
			out = append(out, conn)
		}
	}
	for _, he := range c.TopContour() {
		out = append(out, he)
	}
	for _, conns := range c.Left() {
		for _, conn := range conns {
			out = append(out, conn)
		}
	}

	return out
}

func (c *Component) topSeparatrixAt(l label.Label) Separatrix {
	s := Separatrix{Label: l, Orientation: Antiparallel}
	conns := c.cs.topRight[l]
	for i := len(conns) - 1; i >= 0; i-- {
		s = Separatrix{Label: conns[i].Source.Label, Orientation: Antiparallel}
	}

	return s
}

func (c *Component) bottomSeparatrixAt(l label.Label) Separatrix {
	s := Separatrix{Label: l, Orientation: Parallel}
	conns := c.cs.bottomRight[l]
	for _, conn := range conns {
		s = Separatrix{Label: conn.Source.Label, Orientation: Parallel}
	}

	return s
}

// StepOutcome classifies the result of one DecompositionStep.
type StepOutcome int

const (
	StepLimitReached StepOutcome = iota
	StepCylinder
	StepSeparatingConnection
	StepNonSeparatingConnection
	StepWithoutPeriodicTrajectory
)

// StepResult is the outcome of DecompositionStep. Right is only set for
// StepSeparatingConnection.
type StepResult struct {
	Outcome StepOutcome
	Right   *Component
}

// DecompositionStep drives the IET kernel in boshernitzanCost-sized
// increments, translating the first non-limit-reached classification into
// component state and connection bookkeeping.
func (c *Component) DecompositionStep(limit int) StepResult {
	if adapter, ok := c.cs.iet.Lengths().(*lengths.Adapter); ok {
		adapter.SetMover(componentMover{state: c.state, cs: c.cs})
	}

	remaining := limit
	for remaining == iet.Unbounded || remaining > 0 {
		step := boshernitzanCost
		if remaining != iet.Unbounded && step > remaining {
			step = remaining
		}

		classification := c.cs.iet.Induce(step)
		if !iet.LimitReached(classification) {
			return c.integrate(classification)
		}

		if remaining != iet.Unbounded {
			remaining -= step
		}
	}

	return StepResult{Outcome: StepLimitReached}
}

func (c *Component) integrate(classification iet.Classification) StepResult {
	if iet.IsCylinder(classification) {
		c.cs.setCylinder(true)

		return StepResult{Outcome: StepCylinder}
	}

	if iet.IsWithoutPeriodicTrajectoryBoshernitzan(classification) || iet.IsWithoutPeriodicTrajectoryAutoSimilar(classification) {
		c.cs.setWithoutPeriodicTrajectory(true)
		c.cs.setKeane(c.cs.hasNoConnections())

		return StepResult{Outcome: StepWithoutPeriodicTrajectory}
	}

	if bottomLabel, topLabel, right, ok := iet.AsSeparatingConnection(classification); ok {
		conn := Connection{Source: c.bottomSeparatrixAt(bottomLabel), Target: c.topSeparatrixAt(topLabel)}
		rightComp := c.state.AddSeparatingConnection(c, conn, right)

		return StepResult{Outcome: StepSeparatingConnection, Right: rightComp}
	}

	if bottomLabel, topLabel, ok := iet.AsNonSeparatingConnection(classification); ok {
		conn := Connection{Source: c.bottomSeparatrixAt(bottomLabel), Target: c.topSeparatrixAt(topLabel)}
		c.state.AddNonSeparatingConnection(c, bottomLabel, topLabel, conn)

		return StepResult{Outcome: StepNonSeparatingConnection}
	}

	xt.Precondition(pkg, "induction returned an unrecognized classification")

	return StepResult{}
}

// DefaultTarget is satisfied once a component is a cylinder or has been
// certified to have no periodic trajectory.
func DefaultTarget(c *Component) bool {
	cyl := c.Cylinder()
	wpt := c.WithoutPeriodicTrajectory()

	return (cyl != nil && *cyl) || (wpt != nil && *wpt)
}

// Decompose repeatedly steps this component (and, recursively, any
// component spawned by a separating connection) until target is satisfied
// everywhere or the shared step budget limit is exhausted. A nil target
// defaults to DefaultTarget. Returns true iff every resulting leaf
// component satisfies target.
func (c *Component) Decompose(target func(*Component) bool, limit int) bool {
	if target == nil {
		target = DefaultTarget
	}
	remaining := limit

	return c.decompose(target, &remaining)
}

func (c *Component) decompose(target func(*Component) bool, remaining *int) bool {
	for !target(c) {
		if *remaining == 0 {
			return false
		}

		step := iet.Unbounded
		if *remaining != iet.Unbounded {
			step = 1
			*remaining--
		}

		result := c.DecompositionStep(step)
		switch result.Outcome {
		case StepLimitReached:
			return false
		case StepSeparatingConnection:
			if !result.Right.decompose(target, remaining) {
				return false
			}
		}
	}

	return true
}

// Inject pastes leftConnections/rightConnections onto either side of he
// (which must not already have connections on that side). For top
// half-edges both lists are reversed before insertion, reconciling visual
// and data ordering.
func (c *Component) Inject(he HalfEdge, leftConnections, rightConnections []Connection) {
	c.state.checkIntegrity()

	var left, right map[label.Label][]Connection
	if he.Side == Top {
		left, right = c.cs.topLeft, c.cs.topRight
	} else {
		left, right = c.cs.bottomLeft, c.cs.bottomRight
	}

	if len(left[he.Label]) != 0 || len(right[he.Label]) != 0 {
		xt.Precondition(pkg, "cannot inject into half-edge %v: it already has connections", he.Label)
	}

	l, r := leftConnections, rightConnections
	if he.Side == Top {
		l, r = reversedConnections(leftConnections), reversedConnections(rightConnections)
	}
	left[he.Label] = append(left[he.Label], l...)
	right[he.Label] = append(right[he.Label], r...)

	c.state.checkIntegrity()
}
