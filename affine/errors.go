package affine

import "errors"

// ErrInhomogeneousSystem is returned by HasNonZeroNonNegativeVector when
// the subspace was constructed from an affine system Ax = y with y != 0;
// that query is only defined for homogeneous subspaces.
var ErrInhomogeneousSystem = errors.New("affine: system is inhomogeneous")

// ErrDimensionMismatch is returned by constructors when the rows of A do
// not all share the same number of columns, or when len(y) != len(A), or
// when the supplied generators do not all share the same dimension.
var ErrDimensionMismatch = errors.New("affine: dimension mismatch")
