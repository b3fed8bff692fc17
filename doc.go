// Package spacetime is a symbolic computation engine for a fixed,
// 16-element graded algebra over four basis directions (one temporal,
// three spatial), with exact rational arithmetic throughout.
//
// 🚀 What is spacetime?
//
//	A library for building signed basis elements ("alphas"), combining
//	them under the algebra's non-commutative full product, and working
//	with composite symbolic sums ("multivectors") whose terms carry
//	exact rational magnitudes and symbolic coefficients:
//		• algebra: axes, signs, the 16-form registry and the full product
//		• rational: exact non-negative fraction magnitudes
//		• symbolic: the Xi merge-tree of symbolic coefficients
//		• mvec: terms, multivectors, simplification, conjugations,
//		        Van der Mark division and differential operators
//		• quantities: the standard named fields, zets and operators
//		• calc: declarative TOML calculation files
//
// ✨ Why choose spacetime?
//
//   - Exact – rational magnitudes and symbolic coefficients, never floats
//   - Deterministic – canonical orderings make every rendering reproducible
//   - Safe – construction validates against the registry; internal sign
//     invariants abort loudly instead of corrupting silently
//   - Pure Go – value semantics, no shared mutable state
//
// ⚙️ Quick start:
//
//	a, _ := algebra.ParseAlpha("31")
//	b, _ := algebra.ParseAlpha("01")
//	fmt.Println(algebra.FullProduct(a, b)) // -a03
//
//	f := quantities.Fields()
//	fmt.Println(mvec.Full(f, f).Simplify())
//
// The spacetime binary under cmd/spacetime exposes products, the Cayley
// table, calculation files and a small REPL on the command line.
package spacetime
