// Package rational provides Magnitude, the exact non-negative fraction
// type used for term magnitudes in symbolic calculations.
//
// What & Why:
//
//	Algebraic cancellation only works if arithmetic is exact, so term
//	magnitudes are reduced integer fractions, never floats. A Magnitude
//	carries no sign: direction lives exclusively on the paired directed
//	unit, and any operation that would need a negative magnitude is the
//	caller's responsibility to express as a sign flip instead.
//
// Magnitudes are always stored in lowest terms. A zero denominator is an
// arithmetic invariant violation and panics (it can only arise from a
// defect, never from valid input), as does subtracting a larger Magnitude
// from a smaller one.
//
// Complexity:
//
//	All operations run in O(log min(n, d)) time (one gcd reduction).
package rational
