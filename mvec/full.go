package mvec

// Full forms the Cartesian full product of two term sources: every term
// of left is combined with every term of right via FormProductWith, in
// order. The result is deliberately unsimplified (callers Simplify
// separately) and the operation is non-commutative.
// Complexity: O(len(left) * len(right))
func Full(left, right TermSource) MultiVector {
	lterms := left.AsTerms()
	rterms := right.AsTerms()

	terms := make([]Term, 0, len(lterms)*len(rterms))
	for _, lt := range lterms {
		for _, rt := range rterms {
			terms = append(terms, lt.FormProductWith(rt))
		}
	}

	return MultiVector{terms: terms}
}
