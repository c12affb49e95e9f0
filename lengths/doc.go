// Package lengths declares the Lengths interface that every caller of this
// module must supply: a mapping from label.Label to a positive length,
// together with the handful of mutating operations the IET kernel needs to
// drive Zorich induction without ever learning which concrete number type
// (integer, rational, algebraic, transcendental) backs a given label.
//
// Lengths is the one required external collaborator of the decomposition
// engine; this package owns only the interface and the Adapter that layers
// saddle-connection bookkeeping on top of it. Concrete backends live in
// sibling packages such as vectorlengths.
package lengths
