package decomposition

import (
	"github.com/flatsurfgo/intervalxt/iet"
	"github.com/flatsurfgo/intervalxt/label"
	"github.com/flatsurfgo/intervalxt/lengths"
)

// DynamicalDecomposition owns the shared Lengths for one interval exchange
// transformation and the tree of Components its decomposition spawns.
type DynamicalDecomposition struct {
	state *State
	root  *Component
}

// New builds a DynamicalDecomposition from a base Lengths (wrapped in a
// lengths.Adapter the decomposition drives internally) and a top/bottom
// label ordering.
func New(base lengths.Lengths, top, bottom []label.Label) (*DynamicalDecomposition, error) {
	adapter := lengths.NewAdapter(base, nil)

	e, err := iet.New(adapter, top, bottom)
	if err != nil {
		return nil, err
	}

	state := &State{}
	root := state.AddComponent(e)

	return &DynamicalDecomposition{state: state, root: root}, nil
}

// Root returns the component the decomposition was built from.
func (d *DynamicalDecomposition) Root() *Component { return d.root }

// Components returns every component currently in the decomposition, in
// creation order.
func (d *DynamicalDecomposition) Components() []*Component {
	out := make([]*Component, len(d.state.components))
	for i, cs := range d.state.components {
		out[i] = &Component{state: d.state, cs: cs}
	}

	return out
}

// Decompose is shorthand for d.Root().Decompose(target, limit).
func (d *DynamicalDecomposition) Decompose(target func(*Component) bool, limit int) bool {
	return d.root.Decompose(target, limit)
}
