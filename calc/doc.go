// Package calc loads and runs declarative calculation files.
//
// What & Why:
//
//	Long-hand algebra sessions are repetitive: build a handful of named
//	multivectors, push them through a pipeline of products, conjugations
//	and projections, inspect the simplified results. A calculation file
//	captures such a session as a TOML document so it can be re-run and
//	versioned.
//
// File format:
//
//	title = "F squared"
//
//	[multivectors]
//	F = "23 31 12 01 02 03"
//
//	[[steps]]
//	op       = "full"     # full | div | dagger | reverse | diamond |
//	left     = "F"        # double_dagger | dual | project | simplify |
//	right    = "F"        # dmu_left | dmu_right
//	save     = "F2"
//	simplify = true
//
//	[[steps]]
//	op    = "project"
//	left  = "F2"
//	grade = 0
//	save  = "scalar"
//
// Step operands name either a multivector declared in the file, the
// result of an earlier step, or one of the standard quantities
// (G, Fields, B, E, T, A, ZetB..ZetE, Even, Odd). Every step's result is
// recorded in declaration order; `save` makes it addressable by later
// steps.
//
// Errors are recoverable and sentinel-wrapped: a file naming an unknown
// operand or operation reports which step failed.
package calc
