package mvec

// Division in a non-commutative algebra needs a fixed convention for the
// divisor; here division is "divide left INTO right" (left \ right).
// Single-term operands invert directly. General multivectors have no
// direct inverse, so the Van der Mark construction is used: an indirect
// projective inverse built from a chain of full products, exact rational
// arithmetic throughout.

import "github.com/katalvlaran/spacetime/algebra"

// Divide divides left into right. When both operands carry exactly one
// term this is the direct product of left's inverse with right; otherwise
// the Van der Mark general inverse is applied. The result is simplified.
//
// A divisor that fails to reduce to a single point-graded term means the
// operand is not invertible under this construction; that is a fatal
// input-algebra violation and panics.
// Complexity: O(len(left)^2 * len(right)) in the general case
func Divide(left, right TermSource) MultiVector {
	lterms := left.AsTerms()
	rterms := right.AsTerms()

	if len(lterms) == 1 && len(rterms) == 1 {
		return FromTerms([]Term{lterms[0].Inverse().FormProductWith(rterms[0])}).Simplify()
	}

	return vanDerMark(left, right)
}

// vanDerMark computes left \ right via the projective inverse:
//
//	phi     = simplify(left ^ dagger(left))
//	divisor = simplify(phi ^ diamond(phi))   -- must be one point term
//	inverse = simplify(dagger(left) ^ diamond(phi))
//	result  = simplify(inverse ^ right) / |divisor|
func vanDerMark(left, right TermSource) MultiVector {
	lDagger := Hermitian(left)
	phi := Full(left, lDagger).Simplify()
	diamondPhi := Diamond(phi)

	divisor := Full(phi, diamondPhi).Simplify()
	if divisor.Len() != 1 || divisor.terms[0].Form() != algebra.Point() {
		panic("mvec: van der Mark divisor did not reduce to a single point term; operand is not invertible")
	}

	inverse := Full(lDagger, diamondPhi).Simplify()
	result := Full(inverse, right).Simplify()

	scaled := make([]Term, 0, result.Len())
	for _, t := range result.terms {
		scaled = append(scaled, t.DivMagnitude(divisor.terms[0].Magnitude()))
	}

	return MultiVector{terms: scaled}
}
