package affine

import "math/big"

// Subspace represents {x in Q^n : A x = y} as a particular solution plus a
// basis of the associated homogeneous null space. A zero-value Subspace is
// not valid; use NewFromSystem or NewFromGenerators.
type Subspace struct {
	dim         int
	homogeneous bool
	feasible    bool
	particular  []*big.Rat   // length dim; only meaningful if feasible
	nullBasis   [][]*big.Rat // each of length dim
}

// Dim returns the ambient dimension n.
func (s *Subspace) Dim() int { return s.dim }

// Homogeneous reports whether this Subspace was constructed with y = 0 (or
// from generators, which are always through the origin).
func (s *Subspace) Homogeneous() bool { return s.homogeneous }

// NewFromSystem builds the Subspace {x : A x = y}. Every row of A must have
// exactly dim columns and len(y) must equal len(A); dim is the ambient
// dimension, inferred from the first row of A. When A has no rows, dim is 0.
func NewFromSystem(a [][]*big.Rat, y []*big.Rat) (*Subspace, error) {
	if len(a) != len(y) {
		return nil, ErrDimensionMismatch
	}

	dim := 0
	if len(a) > 0 {
		dim = len(a[0])
	}
	for _, row := range a {
		if len(row) != dim {
			return nil, ErrDimensionMismatch
		}
	}

	homogeneous := true
	for _, c := range y {
		if c.Sign() != 0 {
			homogeneous = false

			break
		}
	}

	particular, nullBasis, feasible := solve(a, y, dim)

	return &Subspace{
		dim:         dim,
		homogeneous: homogeneous,
		feasible:    feasible,
		particular:  particular,
		nullBasis:   nullBasis,
	}, nil
}

// NewFromGenerators builds the linear Subspace spanned by generators,
// i.e. {x : x = sum_i c_i generators[i], c_i in Q}. All generators must
// share the same dimension.
func NewFromGenerators(generators [][]*big.Rat) (*Subspace, error) {
	dim := 0
	if len(generators) > 0 {
		dim = len(generators[0])
	}
	for _, g := range generators {
		if len(g) != dim {
			return nil, ErrDimensionMismatch
		}
	}

	basis := independentBasis(generators, dim)
	particular := make([]*big.Rat, dim)
	for i := range particular {
		particular[i] = new(big.Rat)
	}

	return &Subspace{
		dim:         dim,
		homogeneous: true,
		feasible:    true,
		particular:  particular,
		nullBasis:   basis,
	}, nil
}

// solve performs Gauss-Jordan elimination on the augmented matrix [A|y]
// over Q, returning a particular solution (free variables set to zero), a
// basis of the homogeneous null space, and whether the system is
// consistent at all.
func solve(a [][]*big.Rat, y []*big.Rat, dim int) (particular []*big.Rat, nullBasis [][]*big.Rat, feasible bool) {
	rows := len(a)
	// augmented[i] has dim+1 entries: coefficients then rhs.
	aug := make([][]*big.Rat, rows)
	for i := range aug {
		aug[i] = make([]*big.Rat, dim+1)
		for j := 0; j < dim; j++ {
			aug[i][j] = new(big.Rat).Set(a[i][j])
		}
		aug[i][dim] = new(big.Rat).Set(y[i])
	}

	pivotCol := make([]int, 0, dim)
	row := 0
	for col := 0; col < dim && row < rows; col++ {
		pivot := -1
		for r := row; r < rows; r++ {
			if aug[r][col].Sign() != 0 {
				pivot = r

				break
			}
		}
		if pivot == -1 {
			continue
		}
		aug[row], aug[pivot] = aug[pivot], aug[row]

		inv := new(big.Rat).Inv(aug[row][col])
		for j := 0; j <= dim; j++ {
			aug[row][j].Mul(aug[row][j], inv)
		}
		for r := 0; r < rows; r++ {
			if r == row || aug[r][col].Sign() == 0 {
				continue
			}
			factor := new(big.Rat).Set(aug[r][col])
			for j := 0; j <= dim; j++ {
				term := new(big.Rat).Mul(factor, aug[row][j])
				aug[r][j].Sub(aug[r][j], term)
			}
		}
		pivotCol = append(pivotCol, col)
		row++
	}

	// Any remaining row with all-zero coefficients but non-zero rhs means
	// the system is inconsistent.
	for r := row; r < rows; r++ {
		if aug[r][dim].Sign() != 0 {
			return nil, nil, false
		}
	}

	isPivot := make([]bool, dim)
	pivotRowOf := make([]int, dim)
	for i, col := range pivotCol {
		isPivot[col] = true
		pivotRowOf[col] = i
	}

	particular = make([]*big.Rat, dim)
	for j := 0; j < dim; j++ {
		if isPivot[j] {
			particular[j] = new(big.Rat).Set(aug[pivotRowOf[j]][dim])
		} else {
			particular[j] = new(big.Rat)
		}
	}

	var nb [][]*big.Rat
	for free := 0; free < dim; free++ {
		if isPivot[free] {
			continue
		}
		vec := make([]*big.Rat, dim)
		for j := range vec {
			vec[j] = new(big.Rat)
		}
		vec[free].SetInt64(1)
		for j, col := range pivotCol {
			vec[col].Neg(aug[j][free])
		}
		nb = append(nb, vec)
	}

	return particular, nb, true
}

// independentBasis reduces generators to a linearly independent spanning
// set via the same Gauss-Jordan machinery used by solve, reusing it with a
// zero right-hand side and reading off the row space instead of the null
// space: here we simply run elimination on the generators themselves
// (as rows) and keep the non-zero reduced rows, transposed back into the
// original coordinate system via elementary row operations only (no
// pivoting column swaps), so each returned vector remains a genuine linear
// combination of the inputs.
func independentBasis(generators [][]*big.Rat, dim int) [][]*big.Rat {
	rows := make([][]*big.Rat, len(generators))
	for i, g := range generators {
		rows[i] = cloneRow(g)
	}

	pivotRowIdx := 0
	for col := 0; col < dim && pivotRowIdx < len(rows); col++ {
		pivot := -1
		for r := pivotRowIdx; r < len(rows); r++ {
			if rows[r][col].Sign() != 0 {
				pivot = r

				break
			}
		}
		if pivot == -1 {
			continue
		}
		rows[pivotRowIdx], rows[pivot] = rows[pivot], rows[pivotRowIdx]

		inv := new(big.Rat).Inv(rows[pivotRowIdx][col])
		for j := 0; j < dim; j++ {
			rows[pivotRowIdx][j].Mul(rows[pivotRowIdx][j], inv)
		}
		for r := 0; r < len(rows); r++ {
			if r == pivotRowIdx || rows[r][col].Sign() == 0 {
				continue
			}
			factor := new(big.Rat).Set(rows[r][col])
			for j := 0; j < dim; j++ {
				term := new(big.Rat).Mul(factor, rows[pivotRowIdx][j])
				rows[r][j].Sub(rows[r][j], term)
			}
		}
		pivotRowIdx++
	}

	var basis [][]*big.Rat
	for _, r := range rows[:pivotRowIdx] {
		basis = append(basis, r)
	}

	return basis
}

func cloneRow(r []*big.Rat) []*big.Rat {
	out := make([]*big.Rat, len(r))
	for i, c := range r {
		out[i] = new(big.Rat).Set(c)
	}

	return out
}

// AddMultipleOfCoordinate applies the elementary transform x_i <- x_i +
// c*x_j to every vector defining this Subspace (the particular solution
// and every null-space basis vector), i.e. a change of coordinates that
// preserves the set of points described.
func (s *Subspace) AddMultipleOfCoordinate(i int, c *big.Rat, j int) {
	apply := func(v []*big.Rat) {
		term := new(big.Rat).Mul(c, v[j])
		v[i].Add(v[i], term)
	}
	apply(s.particular)
	for _, v := range s.nullBasis {
		apply(v)
	}
}

// SwapCoordinates exchanges coordinates i and j in every vector defining
// this Subspace.
func (s *Subspace) SwapCoordinates(i, j int) {
	swap := func(v []*big.Rat) { v[i], v[j] = v[j], v[i] }
	swap(s.particular)
	for _, v := range s.nullBasis {
		swap(v)
	}
}
