package mvec

import "github.com/katalvlaran/spacetime/algebra"

// The conjugation operators are pure structural transforms over terms.
// Each is defined by which grades it negates; only Dual touches the full
// product. Reversing a grade-n unit costs the (n-1)th triangular number
// of pops, which is odd exactly for bivectors and trivectors:
//
//	a    -> a     (0 pops)
//	ab   -> ba    (1 pop:  negate)
//	abc  -> cba   (3 pops: negate)
//	abcd -> dcba  (6 pops: unchanged)

// Reverse negates the bivector and trivector terms of the argument,
// leaving vectors, trivector-free grades and the quadrivector unchanged.
// Denoted with an over-tilde in notation.
// Complexity: O(n)
func Reverse(src TermSource) MultiVector {
	return mapTerms(src, func(t Term) Term {
		switch t.Form().Grade() {
		case 2, 3:
			return t.Negate()
		default:
			return t
		}
	})
}

// Hermitian computes the Hermitian conjugate (dagger): it negates every
// term whose unit squares to -ap under the full product and leaves the
// rest unchanged.
// Complexity: O(n)
func Hermitian(src TermSource) MultiVector {
	return mapTerms(src, func(t Term) Term {
		if algebra.FullProduct(t.Alpha(), t.Alpha()).Sign() == algebra.SignNeg {
			return t.Negate()
		}
		return t
	})
}

// Dagger is Hermitian under its notational name.
func Dagger(src TermSource) MultiVector {
	return Hermitian(src)
}

// Diamond negates everything with a direction: every non-point term.
// Equivalently, diamond(M) = 2<M>0 - M.
// Complexity: O(n)
func Diamond(src TermSource) MultiVector {
	return mapTerms(src, func(t Term) Term {
		if t.Form().Grade() == 0 {
			return t
		}
		return t.Negate()
	})
}

// DoubleDagger negates every term except the bivectors.
// Complexity: O(n)
func DoubleDagger(src TermSource) MultiVector {
	return mapTerms(src, func(t Term) Term {
		if t.Form().Grade() == 2 {
			return t
		}
		return t.Negate()
	})
}

// dualUnit is the fixed unit -a0123 that generates the dual.
var dualUnit = algebra.MustAlpha("-0123")

// Dual computes the dual of the argument, -a0123 ^ M, denoted with an
// overbar. The result is unsimplified, as with Full.
// Complexity: O(n)
func Dual(src TermSource) MultiVector {
	return Full(UnitTerm(dualUnit), src)
}

func mapTerms(src TermSource, f func(Term) Term) MultiVector {
	in := src.AsTerms()
	out := make([]Term, len(in))
	for i, t := range in {
		out[i] = f(t)
	}

	return MultiVector{terms: out}
}
