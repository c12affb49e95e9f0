package affine

import "math/big"

// fmConstraint represents, over the k free parameters t_0..t_{k-1}, the
// inequality sum_i coeff[i]*t_i + coeff[k] >= 0 (or > 0 if strict). coeff
// has length k+1, the last entry being the constant term.
type fmConstraint struct {
	coeff  []*big.Rat
	strict bool
}

// eliminateOne runs one round of rational Fourier-Motzkin elimination,
// removing the leading coordinate of every constraint in cs, returning the
// resulting constraint set over the remaining variables (with the
// eliminated coordinate dropped from every coeff slice).
func eliminateOne(cs []fmConstraint) []fmConstraint {
	var zero, lower, upper []fmConstraint
	for _, c := range cs {
		switch sign := c.coeff[0].Sign(); {
		case sign == 0:
			zero = append(zero, fmConstraint{coeff: c.coeff[1:], strict: c.strict})
		case sign > 0:
			upper = append(upper, c)
		default:
			lower = append(lower, c)
		}
	}

	out := zero
	if len(lower) == 0 || len(upper) == 0 {
		// The eliminated variable is unconstrained from at least one side:
		// it can be driven to +/-infinity, so the other side's constraints
		// are always satisfiable and contribute nothing further.
		return out
	}

	for _, lo := range lower {
		for _, up := range upper {
			// lo: a*t0 + rest_lo >= 0 (a<0)  => t0 <= rest_lo'/(-a) ... combine directly:
			// scale so that the t0 coefficients cancel: up.coeff[0]*lo - lo.coeff[0]*up
			scaledLo := scaleConstraint(lo, up.coeff[0])
			scaledUp := scaleConstraint(up, new(big.Rat).Neg(lo.coeff[0]))
			combined := addConstraints(scaledLo, scaledUp)
			out = append(out, fmConstraint{coeff: combined.coeff[1:], strict: combined.strict})
		}
	}

	return out
}

func scaleConstraint(c fmConstraint, factor *big.Rat) fmConstraint {
	af := new(big.Rat).Abs(factor)
	out := make([]*big.Rat, len(c.coeff))
	for i, v := range c.coeff {
		out[i] = new(big.Rat).Mul(v, af)
	}

	return fmConstraint{coeff: out, strict: c.strict}
}

func addConstraints(a, b fmConstraint) fmConstraint {
	out := make([]*big.Rat, len(a.coeff))
	for i := range out {
		out[i] = new(big.Rat).Add(a.coeff[i], b.coeff[i])
	}

	return fmConstraint{coeff: out, strict: a.strict || b.strict}
}

// feasible decides, via repeated elimination, whether cs (over nvars free
// parameters) admits any solution.
func feasible(cs []fmConstraint, nvars int) bool {
	for v := 0; v < nvars; v++ {
		cs = eliminateOne(cs)
		if len(cs) == 0 {
			// No constraints left but variables remain: trivially feasible,
			// and elimination of the remaining variables contributes no
			// further constraints.
			return true
		}
	}

	for _, c := range cs {
		// Only the constant term (index 0) remains.
		sign := c.coeff[0].Sign()
		if c.strict {
			if sign <= 0 {
				return false
			}
		} else if sign < 0 {
			return false
		}
	}

	return true
}

// coordinateConstraints builds, for each ambient coordinate, the
// inequality particular[j] + sum_i nullBasis[i][j]*t_i >= 0 (or > 0 when
// strictAll is true), over k = len(nullBasis) free parameters.
func (s *Subspace) coordinateConstraints(strictAll bool) []fmConstraint {
	k := len(s.nullBasis)
	cs := make([]fmConstraint, s.dim)
	for j := 0; j < s.dim; j++ {
		coeff := make([]*big.Rat, k+1)
		for i := 0; i < k; i++ {
			coeff[i] = new(big.Rat).Set(s.nullBasis[i][j])
		}
		coeff[k] = new(big.Rat).Set(s.particular[j])
		cs[j] = fmConstraint{coeff: coeff, strict: strictAll}
	}

	return cs
}

// sumPositiveConstraint builds sum_j x_j > 0 over the free parameters.
func (s *Subspace) sumPositiveConstraint() fmConstraint {
	k := len(s.nullBasis)
	coeff := make([]*big.Rat, k+1)
	for i := range coeff {
		coeff[i] = new(big.Rat)
	}
	for j := 0; j < s.dim; j++ {
		for i := 0; i < k; i++ {
			coeff[i].Add(coeff[i], s.nullBasis[i][j])
		}
		coeff[k].Add(coeff[k], s.particular[j])
	}

	return fmConstraint{coeff: coeff, strict: true}
}

// HasNonNegativeVector reports whether this Subspace contains a vector x
// with every coordinate >= 0.
func (s *Subspace) HasNonNegativeVector() bool {
	if !s.feasible {
		return false
	}
	if s.dim == 0 {
		return true
	}

	return feasible(s.coordinateConstraints(false), len(s.nullBasis))
}

// HasPositiveVector reports whether this Subspace contains a vector x with
// every coordinate strictly > 0.
func (s *Subspace) HasPositiveVector() bool {
	if !s.feasible {
		return false
	}
	if s.dim == 0 {
		return true
	}

	return feasible(s.coordinateConstraints(true), len(s.nullBasis))
}

// HasNonZeroNonNegativeVector reports whether this Subspace, which must be
// homogeneous, contains a non-zero vector x with every coordinate >= 0. It
// returns ErrInhomogeneousSystem if the subspace was built from an affine
// system with y != 0: callers must check Homogeneous() (or simply only call
// this on subspaces known to be homogeneous, such as BoshernitzanEquations'
// output) before calling it.
func (s *Subspace) HasNonZeroNonNegativeVector() (bool, error) {
	if !s.homogeneous {
		return false, ErrInhomogeneousSystem
	}
	if !s.feasible {
		return false, nil
	}
	if s.dim == 0 {
		return false, nil
	}

	cs := s.coordinateConstraints(false)
	cs = append(cs, s.sumPositiveConstraint())

	return feasible(cs, len(s.nullBasis)), nil
}
