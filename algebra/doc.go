// Package algebra implements the signed basis elements of a fixed
// 16-element graded algebra over four spacetime axes (one temporal,
// three spatial) and the non-commutative full product that combines them.
//
// What & Why:
//
//	The algebra has exactly sixteen directed units: one point (grade 0),
//	four vectors, six bivectors, four trivectors and one quadrivector.
//	Every unit is a (Sign, Form) pair, where a Form is a grade-tagged
//	tuple of axes stored in one fixed canonical order per grade. The
//	full product of two units is again one of the sixteen units, with a
//	sign determined by the +--- metric and by the parity of the axis
//	transpositions ("pops") needed to cancel repeated axes and restore
//	canonical order.
//
// Construction APIs validate their input against the registry of allowed
// forms and return sentinel errors; the product itself is total over valid
// units and panics only on internal invariant violations (a wrong sign is
// undetectable downstream, so corruption aborts loudly).
//
// Complexity:
//
//	FullProduct runs in O(1): axis lists never exceed four elements.
//
// See product.go for the pop-counting rules and mvec for the Term and
// MultiVector layers built on top of this package.
package algebra
