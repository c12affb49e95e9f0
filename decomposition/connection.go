package decomposition

import "github.com/flatsurfgo/intervalxt/label"

// Orientation is the direction from which a Separatrix is approached:
// Parallel follows the bottom contour's direction, Antiparallel the top
// contour's reversed direction.
type Orientation int

const (
	Parallel Orientation = iota
	Antiparallel
)

// Separatrix names one endpoint of a saddle connection: a label together
// with the direction the connection leaves it in.
type Separatrix struct {
	Label       label.Label
	Orientation Orientation
}

// Flipped returns s with its Orientation reversed.
func (s Separatrix) Flipped() Separatrix {
	o := Parallel
	if s.Orientation == Parallel {
		o = Antiparallel
	}

	return Separatrix{Label: s.Label, Orientation: o}
}

// Connection is a saddle connection joining two separatrices.
type Connection struct {
	Source, Target Separatrix
}

// Negate returns the same saddle connection traversed in the opposite
// direction: the endpoints swap roles and each flips orientation.
func (c Connection) Negate() Connection {
	return Connection{Source: c.Target.Flipped(), Target: c.Source.Flipped()}
}

// PerimeterItem is implemented by the two kinds of element a component's
// perimeter walk can produce: HalfEdge and Connection.
type PerimeterItem interface {
	isPerimeterItem()
}

func (HalfEdge) isPerimeterItem()   {}
func (Connection) isPerimeterItem() {}

func reversedConnections(in []Connection) []Connection {
	out := make([]Connection, len(in))
	for i, c := range in {
		out[len(in)-1-i] = c
	}

	return out
}
