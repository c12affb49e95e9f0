// Package label defines Label, the opaque identity used throughout this
// module to name a matched pair of intervals in an interval exchange
// transformation.
//
// A Label carries no payload beyond its own identity: two Labels minted by
// the same Allocator compare equal iff they come from the same call to its
// New method. Allocator replaces the process-wide identifier generation of
// the C++ original with an explicit, caller-owned counter. Every Allocator
// counts from the same start, so Labels minted by two different Allocators
// can compare equal; Label cannot tell them apart.
package label
