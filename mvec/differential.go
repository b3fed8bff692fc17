package mvec

import "github.com/katalvlaran/spacetime/algebra"

// Differential is a set of directed units applied as derivative
// multipliers. The units are stored pre-inverted so that application from
// either side is a plain full product.
type Differential struct {
	wrt []algebra.Alpha
}

// Side selects which side of each term a Differential multiplies from.
type Side int

const (
	// Left applies the operator as wrt ^ term.
	Left Side = iota

	// Right applies the operator as term ^ wrt.
	Right
)

// NewDifferential builds a differential operator over the given units.
// Complexity: O(len(wrt))
func NewDifferential(wrt ...algebra.Alpha) Differential {
	inverted := make([]algebra.Alpha, len(wrt))
	for i, w := range wrt {
		inverted[i] = w.Invert()
	}

	return Differential{wrt: inverted}
}

// ApplyLeft differentiates from the left: each term t becomes one term
// per stored unit w, with unit w ^ t.unit.
func (d Differential) ApplyLeft(src TermSource) MultiVector {
	return d.apply(src, Left)
}

// ApplyRight differentiates from the right: each term t becomes one term
// per stored unit w, with unit t.unit ^ w.
func (d Differential) ApplyRight(src TermSource) MultiVector {
	return d.apply(src, Right)
}

// apply flattens the (term, unit) pairs into one unsimplified term list,
// tagging each result with the form that was differentiated against.
// Complexity: O(len(src) * len(wrt))
func (d Differential) apply(src TermSource, side Side) MultiVector {
	in := src.AsTerms()

	terms := make([]Term, 0, len(in)*len(d.wrt))
	for _, t := range in {
		for _, w := range d.wrt {
			terms = append(terms, termPartial(t, w, side))
		}
	}

	return MultiVector{terms: terms}
}

func termPartial(t Term, wrt algebra.Alpha, side Side) Term {
	var a algebra.Alpha
	if side == Left {
		a = algebra.FullProduct(wrt, t.Alpha())
	} else {
		a = algebra.FullProduct(t.Alpha(), wrt)
	}

	return t.AddPartial(wrt).WithAlpha(a)
}
