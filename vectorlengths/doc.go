// Package vectorlengths is the reference lengths.Lengths backend shipped
// alongside this module so that every testable property and end-to-end
// scenario in the core specification can be exercised without forcing every
// caller to hand-write a length backend first.
//
// A label's length is stored as an exact rational-coefficient vector over a
// fixed, caller-supplied real Basis (one *big.Float per basis element,
// evaluated to the caller's chosen precision). Coefficients is exact:
// arithmetic on the vector is plain *big.Rat addition/subtraction, so it
// never loses precision across an arbitrarily long induction. Ordering
// operations (Cmp, CmpLabels, the floor division inside SubtractRepeated,
// and the ratio test in Similar) project the vector onto its real value via
// a high-precision *big.Float dot product with Basis; this is exact for a
// rational basis ([1]) and is a documented, sufficiently precise
// approximation for the algebraic bases the tests use (a quadratic field
// for the Keane example, a cubic field for the Arnoux-Yoccoz example).
//
// This mirrors a common numeric-kernel trade-off of building dense numeric
// kernels on a fixed-precision float type rather than an exact-arithmetic
// dependency; here the call is made one level up, at big.Float precision
// instead of float64, since the coefficients themselves must stay exact for
// the SAF invariant to be meaningful.
package vectorlengths
