// Package mvec provides the term and composite-quantity layers of the
// algebra: magnitude-and-symbol-weighted directed units (Term), additive
// collections of them (MultiVector), and the operations derived from the
// full product: simplification, grade projection, the conjugation
// operators, general division and the differential operator.
//
// What & Why:
//
//	A Term pairs an exact rational magnitude and a symbolic coefficient
//	with a directed unit from the algebra package. Two terms may be
//	summed only when their summation keys (form + rendered coefficient)
//	match; Simplify is the cancellation engine that groups terms by key,
//	folds each group and drops exact zeros. All operations are pure:
//	inputs are never mutated and term ownership is never shared.
//
// Products multiply term counts (Full is a Cartesian product), so callers
// should Simplify eagerly between steps to bound growth. Simplification
// is never implicit: algebraic identities only become visible after an
// explicit Simplify call.
//
// Complexity:
//
//	Full:     O(len(left) * len(right)) terms.
//	Simplify: O(n log n) over the term count.
package mvec
