package vectorlengths

import (
	"math/big"

	"github.com/flatsurfgo/intervalxt/label"
)

// DefaultPrecision is the big.Float mantissa precision, in bits, used when
// a Lengths is constructed without an explicit precision. It is generous
// enough to separate the real values used throughout this module's test
// scenarios, including the Arnoux-Yoccoz cubic field.
const DefaultPrecision = 256

// Lengths is a lengths.Lengths backend storing each label's length as an
// exact rational-coefficient vector over a shared real Basis. The zero
// value is not usable; construct with New or NewRational.
type Lengths struct {
	basis []*big.Float
	prec  uint
	coeff map[label.Label][]*big.Rat
	names map[label.Label]string

	pushedOrder []label.Label
}

// dim returns the dimension of the shared basis.
func (l *Lengths) dim() int { return len(l.basis) }

func zeroVector(dim int) []*big.Rat {
	v := make([]*big.Rat, dim)
	for i := range v {
		v[i] = new(big.Rat)
	}

	return v
}

func cloneVector(v []*big.Rat) []*big.Rat {
	out := make([]*big.Rat, len(v))
	for i, c := range v {
		out[i] = new(big.Rat).Set(c)
	}

	return out
}

func addVector(dst, src []*big.Rat) {
	for i := range dst {
		dst[i].Add(dst[i], src[i])
	}
}

func subVector(dst, src []*big.Rat) {
	for i := range dst {
		dst[i].Sub(dst[i], src[i])
	}
}

func scaleVector(v []*big.Rat, m int64) []*big.Rat {
	out := cloneVector(v)
	factor := new(big.Rat).SetInt64(m)
	for i := range out {
		out[i].Mul(out[i], factor)
	}

	return out
}
