package vectorlengths

import (
	"math/big"

	"github.com/flatsurfgo/intervalxt/internal/xt"
	"github.com/flatsurfgo/intervalxt/label"
	"github.com/flatsurfgo/intervalxt/lengths"
)

const pkg = "vectorlengths"

// New constructs a Lengths over basis, with each label in coeff assigned
// the given coefficient vector (which must have len(basis) entries). Every
// vector's real value (the dot product with basis) must be strictly
// positive; violating this is a precondition violation, matching the
// length-invariant of the core specification. prec is the big.Float
// precision in bits used for all derived real-value arithmetic; 0 selects
// DefaultPrecision.
func New(basis []*big.Float, coeff map[label.Label][]*big.Rat, prec uint) *Lengths {
	if len(basis) == 0 {
		xt.Precondition(pkg, "basis must be non-empty")
	}
	if prec == 0 {
		prec = DefaultPrecision
	}

	l := &Lengths{
		basis: make([]*big.Float, len(basis)),
		prec:  prec,
		coeff: make(map[label.Label][]*big.Rat, len(coeff)),
		names: make(map[label.Label]string, len(coeff)),
	}
	for i, b := range basis {
		l.basis[i] = new(big.Float).SetPrec(prec).Set(b)
	}
	for lbl, v := range coeff {
		if len(v) != len(basis) {
			xt.Precondition(pkg, "coefficient vector for %v has dimension %d, want %d", lbl, len(v), len(basis))
		}
		vec := cloneVector(v)
		l.coeff[lbl] = vec
		if l.realValue(vec).Sign() <= 0 {
			xt.Precondition(pkg, "label %v has non-positive length", lbl)
		}
	}

	return l
}

// NewRational is a convenience constructor over the trivial basis [1]: each
// label's length is exactly the given positive integer.
func NewRational(lengthsByLabel map[label.Label]int64) *Lengths {
	basis := []*big.Float{big.NewFloat(1)}
	coeff := make(map[label.Label][]*big.Rat, len(lengthsByLabel))
	for lbl, v := range lengthsByLabel {
		coeff[lbl] = []*big.Rat{new(big.Rat).SetInt64(v)}
	}

	return New(basis, coeff, DefaultPrecision)
}

// WithNames installs display names for Render, overriding label.Label's
// default String form. Returns l for chaining.
func (l *Lengths) WithNames(names map[label.Label]string) *Lengths {
	for lbl, name := range names {
		l.names[lbl] = name
	}

	return l
}

// realValue dots a coefficient vector with the basis at this Lengths'
// configured precision.
func (l *Lengths) realValue(v []*big.Rat) *big.Float {
	sum := new(big.Float).SetPrec(l.prec)
	term := new(big.Float).SetPrec(l.prec)
	rv := new(big.Float).SetPrec(l.prec)
	for i, c := range v {
		rv.SetRat(c)
		term.Mul(rv, l.basis[i])
		sum.Add(sum, term)
	}

	return sum
}

func (l *Lengths) vectorOf(lbl label.Label) []*big.Rat {
	v, ok := l.coeff[lbl]
	if !ok {
		xt.Precondition(pkg, "unknown label %v", lbl)
	}

	return v
}

func (l *Lengths) accumulated() []*big.Rat {
	sum := zeroVector(l.dim())
	for _, lbl := range l.pushedOrder {
		addVector(sum, l.vectorOf(lbl))
	}

	return sum
}

// Push implements lengths.Lengths.
func (l *Lengths) Push(lbl label.Label) {
	l.pushedOrder = append(l.pushedOrder, lbl)
}

// Pop implements lengths.Lengths.
func (l *Lengths) Pop() {
	if len(l.pushedOrder) == 0 {
		xt.Precondition(pkg, "Pop called on empty accumulator")
	}
	l.pushedOrder = l.pushedOrder[:len(l.pushedOrder)-1]
}

// Clear implements lengths.Lengths.
func (l *Lengths) Clear() {
	l.pushedOrder = l.pushedOrder[:0]
}

// Cmp implements lengths.Lengths.
func (l *Lengths) Cmp(lbl label.Label) int {
	return l.realValue(l.accumulated()).Cmp(l.realValue(l.vectorOf(lbl)))
}

// CmpLabels implements lengths.Lengths.
func (l *Lengths) CmpLabels(a, b label.Label) int {
	return l.realValue(l.vectorOf(a)).Cmp(l.realValue(l.vectorOf(b)))
}

// Subtract implements lengths.Lengths.
func (l *Lengths) Subtract(lbl label.Label) {
	acc := l.accumulated()
	v := l.vectorOf(lbl)
	subVector(v, acc)
	if l.realValue(v).Sign() <= 0 {
		xt.Precondition(pkg, "Subtract left non-positive length for %v", lbl)
	}
	l.Clear()
}

// SubtractRepeated implements lengths.Lengths.
func (l *Lengths) SubtractRepeated(lbl label.Label) label.Label {
	if len(l.pushedOrder) == 0 {
		xt.Precondition(pkg, "SubtractRepeated called on empty accumulator")
	}

	acc := l.accumulated()
	accValue := l.realValue(acc)
	minuendVector := l.vectorOf(lbl)
	minuendValue := l.realValue(minuendVector)

	ratio := new(big.Float).SetPrec(l.prec).Quo(minuendValue, accValue)
	m, _ := ratio.Int(nil)
	if m.Sign() < 0 {
		m.SetInt64(0)
	}

	subVector(minuendVector, scaleVector(acc, m.Int64()))
	if l.realValue(minuendVector).Sign() == 0 && m.Sign() > 0 {
		// lbl is an exact integer multiple of the accumulator: the usual
		// floor quotient leaves nothing to walk the prefix search against.
		// Back off one copy so the residual equals the full accumulator,
		// pushing the cut to the last pushed label instead.
		addVector(minuendVector, acc)
		m.Sub(m, big.NewInt(1))
	}
	residual := l.realValue(minuendVector)

	prefix := zeroVector(l.dim())
	var found label.Label
	for _, pushedLbl := range l.pushedOrder {
		next := cloneVector(prefix)
		addVector(next, l.vectorOf(pushedLbl))
		if l.realValue(next).Cmp(residual) > 0 {
			found = pushedLbl
			break
		}
		prefix = next
	}
	if found.IsZero() {
		if residual.Sign() == 0 || len(l.pushedOrder) == 0 {
			xt.Precondition(pkg, "SubtractRepeated: accumulator exhausted before exceeding residual")
		}
		// residual exactly equals the full accumulator (prefix currently
		// holds that full sum): the cut point is the last pushed label,
		// with every earlier label left in prefix.
		found = l.pushedOrder[len(l.pushedOrder)-1]
		subVector(prefix, l.vectorOf(found))
	}

	subVector(minuendVector, prefix)
	if l.realValue(minuendVector).Sign() <= 0 {
		xt.Precondition(pkg, "SubtractRepeated left non-positive length for %v", lbl)
	}
	l.Clear()

	return found
}

// Coefficients implements lengths.Lengths.
func (l *Lengths) Coefficients(labels []label.Label) [][]*big.Rat {
	out := make([][]*big.Rat, len(labels))
	for i, lbl := range labels {
		out[i] = cloneVector(l.vectorOf(lbl))
	}

	return out
}

// Get implements lengths.Lengths, returning a *big.Float.
func (l *Lengths) Get(lbl label.Label) lengths.Value {
	return l.realValue(l.vectorOf(lbl))
}

// Only implements lengths.Lengths: labels not in keep are zeroed, not
// removed, so later lookups of them still succeed (with length zero).
func (l *Lengths) Only(keep []label.Label) lengths.Lengths {
	keepSet := make(map[label.Label]struct{}, len(keep))
	for _, lbl := range keep {
		keepSet[lbl] = struct{}{}
	}

	out := &Lengths{
		basis: l.basis,
		prec:  l.prec,
		coeff: make(map[label.Label][]*big.Rat, len(l.coeff)),
		names: l.names,
	}
	for lbl, v := range l.coeff {
		if _, ok := keepSet[lbl]; ok {
			out.coeff[lbl] = cloneVector(v)
		} else {
			out.coeff[lbl] = zeroVector(l.dim())
		}
	}

	return out
}

// Forget implements lengths.Lengths by returning a deep, independent copy
// of this Lengths: vectorlengths.Lengths carries no wrapper state of its
// own, so Forget's only job here is to sever aliasing with the live
// instance.
func (l *Lengths) Forget() lengths.Lengths {
	out := &Lengths{
		basis: l.basis,
		prec:  l.prec,
		coeff: make(map[label.Label][]*big.Rat, len(l.coeff)),
		names: l.names,
	}
	for lbl, v := range l.coeff {
		out.coeff[lbl] = cloneVector(v)
	}

	return out
}

// Similar implements lengths.Lengths via a high-precision real-value ratio
// comparison (see package doc for why this is not an exact algebraic
// decision procedure).
func (l *Lengths) Similar(a, b label.Label, other lengths.Lengths, aa, bb label.Label) bool {
	o, ok := other.(*Lengths)
	if !ok {
		xt.Precondition(pkg, "Similar requires a peer *vectorlengths.Lengths")
	}

	lhs := new(big.Float).SetPrec(l.prec).Mul(l.realValue(l.vectorOf(a)), o.realValue(o.vectorOf(bb)))
	rhs := new(big.Float).SetPrec(l.prec).Mul(l.realValue(l.vectorOf(b)), o.realValue(o.vectorOf(aa)))

	// Both products are built from rounded basis values, so algebraically
	// equal ratios can differ in their last bits: a relative difference of
	// at most 2^-(prec/2) counts as equal.
	diff := new(big.Float).SetPrec(l.prec).Sub(lhs, rhs)
	diff.Abs(diff)
	bound := new(big.Float).SetPrec(l.prec).Abs(lhs)
	bound.SetMantExp(bound, -int(l.prec/2))

	return diff.Cmp(bound) <= 0
}

// Render implements lengths.Lengths.
func (l *Lengths) Render(lbl label.Label) string {
	if name, ok := l.names[lbl]; ok {
		return name
	}

	return lbl.String()
}

var _ lengths.Lengths = (*Lengths)(nil)
