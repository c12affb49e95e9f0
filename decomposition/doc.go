// Package decomposition drives the IET kernel to completion and keeps the
// saddle-connection bookkeeping (which separatrices are joined to which,
// across however many components a translation surface splits into) in
// sync with every Zorich induction step.
//
// A DynamicalDecomposition owns one State, one shared Lengths (wrapped in a
// lengths.Adapter), and a tree of Components; new components are born from
// separating connections discovered while decomposing an existing one.
package decomposition
