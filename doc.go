// Package intervalxt decomposes an interval exchange transformation (IET)
// into periodic cylinders and Keane (minimal, no-periodic-trajectory)
// components via accelerated Zorich induction, tracking saddle connections
// on the evolving component boundaries as it goes.
//
// The package is organized as:
//
//	label/         — opaque label identity, minted by a caller-owned Allocator
//	lengths/       — the Lengths capability interface and its connection-
//	                 tracking Adapter
//	vectorlengths/ — a reference Lengths backend over exact rational
//	                 coefficient vectors
//	affine/        — exact rational affine subspaces, feeding the
//	                 Boshernitzan minimality criterion
//	iet/           — the induction kernel: Induce, Reduce, the SAF
//	                 invariant, the auto-similarity loop detector
//	decomposition/ — DynamicalDecomposition, Component, Connection,
//	                 Separatrix, HalfEdge: the bookkeeping layer built on
//	                 top of the kernel
//
// This root package is a thin facade over decomposition.New for the common
// case of driving a single IET to completion; for direct control over
// components, connections, and the step budget, use the decomposition
// package directly.
package intervalxt
