package decomposition

import "github.com/flatsurfgo/intervalxt/label"

// Side is the contour a HalfEdge lies on.
type Side int

const (
	Top Side = iota
	Bottom
)

// HalfEdge names one labeled interval on one contour of a Component.
type HalfEdge struct {
	Component *Component
	Label     label.Label
	Side      Side
}

// Neg returns h on the opposite contour, same label and component.
func (h HalfEdge) Neg() HalfEdge {
	s := Top
	if h.Side == Top {
		s = Bottom
	}

	return HalfEdge{Component: h.Component, Label: h.Label, Side: s}
}

// Next returns the half-edge immediately to the right of h on its contour.
func (h HalfEdge) Next() (HalfEdge, bool) { return h.adjacent(1) }

// Previous returns the half-edge immediately to the left of h on its
// contour.
func (h HalfEdge) Previous() (HalfEdge, bool) { return h.adjacent(-1) }

func (h HalfEdge) adjacent(delta int) (HalfEdge, bool) {
	seq := h.Component.cs.iet.Top()
	if h.Side == Bottom {
		seq = h.Component.cs.iet.Bottom()
	}
	for i, l := range seq {
		if l.Equal(h.Label) {
			j := i + delta
			if j < 0 || j >= len(seq) {
				return HalfEdge{}, false
			}

			return HalfEdge{Component: h.Component, Label: seq[j], Side: h.Side}, true
		}
	}

	return HalfEdge{}, false
}

// Separatrix returns the separatrix recorded where the next half-edge
// begins.
func (h HalfEdge) Separatrix() Separatrix {
	if h.Side == Top {
		return h.Component.topSeparatrixAt(h.Label)
	}

	return h.Component.bottomSeparatrixAt(h.Label)
}

// Cross returns the chain of perimeter items traversed counter-clockwise
// from one side of h to the other inside its component: right, self,
// reverse(left) for a top half-edge; left, self, right for a bottom
// half-edge.
func (h HalfEdge) Cross() []PerimeterItem {
	cs := h.Component.cs
	var out []PerimeterItem
	if h.Side == Top {
		for _, conn := range cs.topRight[h.Label] {
			out = append(out, conn)
		}
		out = append(out, h)
		for _, conn := range reversedConnections(cs.topLeft[h.Label]) {
			out = append(out, conn)
		}

		return out
	}

	for _, conn := range cs.bottomLeft[h.Label] {
		out = append(out, conn)
	}
	out = append(out, h)
	for _, conn := range cs.bottomRight[h.Label] {
		out = append(out, conn)
	}

	return out
}
