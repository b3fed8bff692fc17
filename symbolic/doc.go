// Package symbolic implements Xi, the merge-tree representation of a
// term's symbolic coefficient.
//
// What & Why:
//
//	A term's coefficient is a product of named symbolic factors (each
//	possibly carrying accumulated partial-derivative tags) divided by
//	another such product. Concatenating strings eagerly would make
//	structurally-equal products built in different orders compare
//	unequal, so the coefficient is kept as a tree: leaves hold names,
//	internal nodes hold canonically sorted numerator and denominator
//	multisets. Merging is associative and commutative by construction,
//	and rendering is deterministic, so the rendered form serves as the
//	term summation key.
//
// Xi values are immutable: every operation returns a new tree.
//
// Complexity:
//
//	Merge and String are linear in tree size; trees stay small in
//	practice (a handful of factors per term).
package symbolic
