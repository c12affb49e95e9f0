// Package affine implements the Boshernitzan rational affine subspace
// oracle: given a system Ax = y over the rationals, decide whether the
// solution set contains a non-zero non-negative vector, a non-negative
// vector, or a strictly positive vector.
//
// No general LP/MIP solver is wired in here, so this package implements the
// exact rational algorithm itself: the solution set is parameterized via
// Gauss-Jordan elimination over *big.Rat into a particular solution plus a
// null-space basis, and each feasibility query is then answered by rational
// Fourier-Motzkin elimination over the free parameters — an exact, finite
// decision procedure.
package affine
