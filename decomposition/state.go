package decomposition

import (
	"github.com/flatsurfgo/intervalxt/iet"
	"github.com/flatsurfgo/intervalxt/internal/xt"
	"github.com/flatsurfgo/intervalxt/label"
	"github.com/flatsurfgo/intervalxt/lengths"
)

const pkg = "decomposition"

// componentState is the mutable record behind one Component handle: its
// IET and the four corner maps of connections recorded at its boundary
// labels. The zero value is not usable; build with newComponentState.
type componentState struct {
	iet *iet.IET

	cylinder                 *bool
	withoutPeriodicTrajectory *bool
	keane                    *bool

	topLeft, topRight       map[label.Label][]Connection
	bottomLeft, bottomRight map[label.Label][]Connection
}

func newComponentState(e *iet.IET) *componentState {
	return &componentState{
		iet:         e,
		topLeft:     make(map[label.Label][]Connection),
		topRight:    make(map[label.Label][]Connection),
		bottomLeft:  make(map[label.Label][]Connection),
		bottomRight: make(map[label.Label][]Connection),
	}
}

func (cs *componentState) setCylinder(v bool) {
	cs.cylinder = &v
	other := false
	cs.withoutPeriodicTrajectory = &other
}

func (cs *componentState) setWithoutPeriodicTrajectory(v bool) {
	cs.withoutPeriodicTrajectory = &v
	other := false
	cs.cylinder = &other
}

// hasNoConnections reports whether every corner map is empty: no connection
// of any length has ever been recorded against this component's boundary.
func (cs *componentState) hasNoConnections() bool {
	for _, m := range []map[label.Label][]Connection{cs.topLeft, cs.topRight, cs.bottomLeft, cs.bottomRight} {
		for _, conns := range m {
			if len(conns) > 0 {
				return false
			}
		}
	}

	return true
}

// setKeane certifies or rules out Keane minimality: an IET with no
// connection of any length. Only meaningful once withoutPeriodicTrajectory
// has been set; a component may be certified without periodic trajectory
// after already recording connections, in which case it is minimal but not
// Keane.
func (cs *componentState) setKeane(v bool) {
	cs.keane = &v
}

// State owns every Component of one decomposition. The zero value is
// ready to use; components are created via AddComponent.
type State struct {
	components []*componentState
}

// AddComponent appends a fresh component wrapping e and returns its
// handle.
func (s *State) AddComponent(e *iet.IET) *Component {
	cs := newComponentState(e)
	s.components = append(s.components, cs)

	return &Component{state: s, cs: cs}
}

// AddSeparatingConnection records conn as the boundary between left and a
// freshly created component for rightIET: conn on the rightmost bottom
// label of left, -conn on the leftmost bottom label of the new component.
// Any connections already recorded against left for labels that rightIET
// now owns are migrated across, since those labels had no component of
// their own to carry that bookkeeping until this split.
func (s *State) AddSeparatingConnection(left *Component, conn Connection, rightIET *iet.IET) *Component {
	leftBottom := left.cs.iet.Bottom()
	rightmost := leftBottom[len(leftBottom)-1]
	left.cs.bottomRight[rightmost] = append(left.cs.bottomRight[rightmost], conn)

	right := s.AddComponent(rightIET)
	rightBottom := rightIET.Bottom()
	leftmost := rightBottom[0]
	right.cs.bottomLeft[leftmost] = append(right.cs.bottomLeft[leftmost], conn.Negate())

	s.migrateSplitConnections(left.cs, right.cs, rightIET)
	s.checkIntegrity()

	return right
}

// migrateSplitConnections moves every corner-list entry recorded against a
// label rightIET now owns from left's maps into right's, preserving order.
// Called once per split, immediately after the new boundary connection is
// recorded on both sides.
func (s *State) migrateSplitConnections(left, right *componentState, rightIET *iet.IET) {
	owned := make(map[label.Label]bool, 2*len(rightIET.Top()))
	for _, l := range rightIET.Top() {
		owned[l] = true
	}
	for _, l := range rightIET.Bottom() {
		owned[l] = true
	}

	move := func(from, to map[label.Label][]Connection) {
		for l := range owned {
			v, ok := from[l]
			if !ok {
				continue
			}
			to[l] = append(append([]Connection{}, to[l]...), v...)
			delete(from, l)
		}
	}

	move(left.topLeft, right.topLeft)
	move(left.topRight, right.topRight)
	move(left.bottomLeft, right.bottomLeft)
	move(left.bottomRight, right.bottomRight)
}

// AddNonSeparatingConnection records newConnection as joining bottom label
// b to top label t within comp, then merges t's recorded connection lists
// into b's (t is about to vanish from the IET).
func (s *State) AddNonSeparatingConnection(comp *Component, b, t label.Label, newConnection Connection) {
	cs := comp.cs
	cs.bottomRight[b] = append(cs.bottomRight[b], newConnection)
	firstTop := cs.iet.Top()[0]
	cs.topLeft[firstTop] = append(cs.topLeft[firstTop], newConnection.Negate())

	s.mergeConnectionLists(cs, b, t, !cs.iet.Swapped())
	s.checkIntegrity()
}

// mergeConnectionLists moves every corner-list entry recorded against
// dropped into the matching corner list of survivor, preserving order:
// appended if minuendOnTop, prepended otherwise. Installed as the
// lengths.ConnectionMover callback driving every Subtract/SubtractRepeated
// during induction, and invoked directly once more for the terminal
// non-separating merge, which reaches equal lengths without ever calling
// Subtract.
func (s *State) mergeConnectionLists(cs *componentState, survivor, dropped label.Label, minuendOnTop bool) {
	if survivor.Equal(dropped) {
		return
	}

	merge := func(m map[label.Label][]Connection) {
		src := m[dropped]
		if len(src) == 0 {
			return
		}
		if minuendOnTop {
			m[survivor] = append(append([]Connection{}, m[survivor]...), src...)
		} else {
			m[survivor] = append(append([]Connection{}, src...), m[survivor]...)
		}
		delete(m, dropped)
	}

	merge(cs.topLeft)
	merge(cs.topRight)
	merge(cs.bottomLeft)
	merge(cs.bottomRight)
}

// checkIntegrity enforces the connection-integrity invariant: no boundary
// label may carry more than two recorded connections on one side, and if
// it carries two, they must be negatives of one another.
func (s *State) checkIntegrity() {
	corners := func(cs *componentState) []map[label.Label][]Connection {
		return []map[label.Label][]Connection{cs.topLeft, cs.topRight, cs.bottomLeft, cs.bottomRight}
	}

	for _, cs := range s.components {
		for _, m := range corners(cs) {
			for l, conns := range m {
				if len(conns) > 2 {
					xt.Precondition(pkg, "label %v carries more than two incident connections on one side", l)
				}
				if len(conns) == 2 && conns[0] != conns[1].Negate() {
					xt.Precondition(pkg, "label %v's two incident connections are not negatives of one another", l)
				}
			}
		}
	}
}

// componentMover routes a shared lengths.Adapter's merge callbacks to one
// component's bookkeeping. A component rebinds its adapter's mover to a
// fresh componentMover immediately before driving induction, so a single
// shared Lengths can serve every component of a decomposition without
// their bookkeeping crossing streams: one Lengths per decomposition,
// execution single-threaded, so rebinding ahead of each step is safe.
type componentMover struct {
	state *State
	cs    *componentState
}

// MoveConnections implements lengths.ConnectionMover.
func (m componentMover) MoveConnections(minuend, subtrahend label.Label) {
	m.state.mergeConnectionLists(m.cs, minuend, subtrahend, !m.cs.iet.Swapped())
}

var _ lengths.ConnectionMover = componentMover{}
