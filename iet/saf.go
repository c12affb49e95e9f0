package iet

import (
	"math/big"

	"github.com/flatsurfgo/intervalxt/affine"
	"github.com/flatsurfgo/intervalxt/internal/xt"
	"github.com/flatsurfgo/intervalxt/label"
)

// wedge computes the exterior product of two vectors of equal dimension d,
// returning the d(d-1)/2 components sum_i v1[i]*v2[j] - v1[j]*v2[i] for
// i<j, in lexicographic (i,j) order.
func wedge(v1, v2 []*big.Rat) []*big.Rat {
	d := len(v1)
	out := make([]*big.Rat, d*(d-1)/2)
	for i := range out {
		out[i] = new(big.Rat)
	}
	if d == 0 {
		return out
	}

	k := 0
	for i := 0; i < d-1; i++ {
		for j := i + 1; j < d; j++ {
			term := new(big.Rat).Mul(v1[i], v2[j])
			term.Sub(term, new(big.Rat).Mul(v1[j], v2[i]))
			out[k].Add(out[k], term)
			k++
		}
	}

	return out
}

func addInto(dst, src []*big.Rat) {
	for i := range dst {
		dst[i].Add(dst[i], src[i])
	}
}

// translation returns -sum(coefficients of labels on top strictly left of
// topLabel) + sum(coefficients of labels on bottom strictly left of
// bottomLabel).
func (e *IET) translation(topLabel, bottomLabel label.Label) []*big.Rat {
	coeffs := e.coefficientsOf(e.allLabels())
	dim := 0
	for _, c := range coeffs {
		dim = len(c)

		break
	}

	out := make([]*big.Rat, dim)
	for i := range out {
		out[i] = new(big.Rat)
	}

	for n := e.headTop; n != nilIndex && !e.nodes[n].label.Equal(topLabel); n = e.nodes[n].next {
		c := coeffs[e.nodes[n].label]
		for i := range out {
			out[i].Sub(out[i], c[i])
		}
	}
	for n := e.headBot; n != nilIndex && !e.nodes[n].label.Equal(bottomLabel); n = e.nodes[n].next {
		addInto(out, coeffs[e.nodes[n].label])
	}

	return out
}

func (e *IET) allLabels() []label.Label {
	var out []label.Label
	for n := e.headTop; n != nilIndex; n = e.nodes[n].next {
		out = append(out, e.nodes[n].label)
	}

	return out
}

func (e *IET) coefficientsOf(labels []label.Label) map[label.Label][]*big.Rat {
	vecs := e.lengths.Coefficients(labels)
	out := make(map[label.Label][]*big.Rat, len(labels))
	for i, l := range labels {
		out[l] = vecs[i]
	}

	return out
}

// SAFInvariant computes the Sah-Arnoux-Fathi invariant: for each label, the
// wedge of its coefficient vector with its own translation (top occurrence
// to bottom occurrence), summed over all labels. It is computed from the
// current top and bottom lists; Swap negates every translation and so
// negates the result.
func (e *IET) SAFInvariant() []*big.Rat {
	labels := e.allLabels()
	coeffs := e.coefficientsOf(labels)

	var sum []*big.Rat
	for _, l := range labels {
		w := wedge(coeffs[l], e.translation(l, l))
		if sum == nil {
			sum = make([]*big.Rat, len(w))
			for i := range sum {
				sum[i] = new(big.Rat)
			}
		}
		addInto(sum, w)
	}

	return sum
}

// BoshernitzanEquations transposes the matrix whose rows are the
// translations of every top interval: the returned matrix's rows are
// indexed by coefficient-vector dimension, columns by label (in top order).
func (e *IET) BoshernitzanEquations() [][]*big.Rat {
	top := e.Top()
	translations := make([][]*big.Rat, len(top))
	for i, l := range top {
		translations[i] = e.translation(l, l)
	}

	dim := 0
	if len(translations) > 0 {
		dim = len(translations[0])
	}

	relations := make([][]*big.Rat, dim)
	for d := 0; d < dim; d++ {
		relations[d] = make([]*big.Rat, len(translations))
		for i, t := range translations {
			relations[d][i] = t[d]
		}
	}

	return relations
}

// BoshernitzanNoPeriodicTrajectory returns true iff the rational affine
// subspace {x : Ax = 0} (A = BoshernitzanEquations) has no non-zero
// non-negative vector — a sufficient certificate for minimality. Always
// false when SAF=0 (the criterion is never useful there, see the similarity
// tracker path instead) or when the IET has a single interval.
func (e *IET) BoshernitzanNoPeriodicTrajectory() bool {
	if e.isSAFZero() {
		return false
	}
	if e.size <= 1 {
		return false
	}

	a := e.BoshernitzanEquations()
	y := make([]*big.Rat, len(a))
	for i := range y {
		y[i] = new(big.Rat)
	}

	space, err := affine.NewFromSystem(a, y)
	if err != nil {
		return false
	}

	ok, err := space.HasNonZeroNonNegativeVector()
	if err != nil {
		return false
	}

	return !ok
}

// BoshernitzanNoSaddleConnection returns true iff the affine system Ax = y
// has no non-negative vector, where y is the translation between the right
// endpoints of topLabel and bottomLabel. A zero y is an obvious connection,
// reported as false without consulting the oracle.
func (e *IET) BoshernitzanNoSaddleConnection(topLabel, bottomLabel label.Label) bool {
	if e.size <= 1 {
		return false
	}

	y := e.saddleConnectionValues(topLabel, bottomLabel)

	allZero := true
	for _, v := range y {
		if v.Sign() != 0 {
			allZero = false

			break
		}
	}
	if allZero {
		return false
	}

	space, err := affine.NewFromSystem(e.BoshernitzanEquations(), y)
	if err != nil {
		return false
	}

	return !space.HasNonNegativeVector()
}

// saddleConnectionValues returns the negated translation between the
// interval immediately to the right of topLabel and that to the right of
// bottomLabel.
func (e *IET) saddleConnectionValues(topLabel, bottomLabel label.Label) []*big.Rat {
	nextTop := e.labelAfter(e.headTop, topLabel)
	nextBot := e.labelAfter(e.headBot, bottomLabel)

	v := e.translation(nextTop, nextBot)
	for _, c := range v {
		c.Neg(c)
	}

	return v
}

func (e *IET) labelAfter(head int, l label.Label) label.Label {
	for n := head; n != nilIndex; n = e.nodes[n].next {
		if e.nodes[n].label.Equal(l) {
			next := e.nodes[n].next
			if next == nilIndex {
				xt.Precondition(pkg, "cannot select right endpoint of the last interval for a Boshernitzan saddle connection query")
			}

			return e.nodes[next].label
		}
	}

	return l
}
