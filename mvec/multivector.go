package mvec

import (
	"fmt"
	"sort"
	"strings"

	"github.com/katalvlaran/spacetime/algebra"
)

// TermSource is anything that can be decomposed into a flat term list.
// Term and MultiVector both implement it, so every derived operation in
// this package accepts either.
type TermSource interface {
	AsTerms() []Term
}

// MultiVector is an ordered collection of Terms spanning possibly several
// grades. Order carries no algebraic meaning; Simplify re-establishes the
// canonical order deterministically. A MultiVector owns its terms
// outright; accessors copy.
type MultiVector struct {
	terms []Term
}

// New returns an empty MultiVector.
func New() MultiVector {
	return MultiVector{}
}

// FromTerms builds a MultiVector owning a copy of the given terms.
func FromTerms(terms []Term) MultiVector {
	out := make([]Term, len(terms))
	copy(out, terms)

	return MultiVector{terms: out}
}

// FromSources flattens any number of term sources into one MultiVector.
func FromSources(srcs ...TermSource) MultiVector {
	var terms []Term
	for _, s := range srcs {
		terms = append(terms, s.AsTerms()...)
	}

	return MultiVector{terms: terms}
}

// Push appends a term. No deduplication happens here; that is Simplify's
// job.
func (m *MultiVector) Push(t Term) {
	m.terms = append(m.terms, t)
}

// Extend appends every term from the given source.
func (m *MultiVector) Extend(src TermSource) {
	m.terms = append(m.terms, src.AsTerms()...)
}

// AsTerms returns a copy of the term list, implementing TermSource.
func (m MultiVector) AsTerms() []Term {
	out := make([]Term, len(m.terms))
	copy(out, m.terms)

	return out
}

// Len returns the number of stored terms.
func (m MultiVector) Len() int {
	return len(m.terms)
}

// IsEmpty reports whether the MultiVector holds no terms.
func (m MultiVector) IsEmpty() bool {
	return len(m.terms) == 0
}

// Get returns the terms whose form equals f, in stored order.
func (m MultiVector) Get(f algebra.Form) []Term {
	var out []Term
	for _, t := range m.terms {
		if t.Form() == f {
			out = append(out, t)
		}
	}

	return out
}

// Simplify is the cancellation and normalization engine: terms are
// grouped by summation key, each group is folded with TryAdd, groups
// whose magnitude folds to exactly zero are dropped, and the survivors
// are sorted into canonical order. Simplify is idempotent and pure.
//
// Simplification is never applied implicitly: algebraic identities
// (matched +/- pairs collapsing, squares reducing to a point term) only
// become visible after this call.
// Complexity: O(n log n)
func (m MultiVector) Simplify() MultiVector {
	groups := make(map[Key][]Term, len(m.terms))
	var order []Key
	for _, t := range m.terms {
		k := t.SummationKey()
		if _, seen := groups[k]; !seen {
			order = append(order, k)
		}
		groups[k] = append(groups[k], t)
	}

	out := make([]Term, 0, len(order))
	for _, k := range order {
		group := groups[k]
		acc := group[0]
		for _, t := range group[1:] {
			summed, ok := acc.TryAdd(t)
			if !ok {
				// Grouping by key guarantees mergeability.
				panic("mvec: summation key mismatch inside a simplify group")
			}
			acc = summed
		}

		if !acc.Magnitude().IsZero() {
			out = append(out, acc)
		}
	}

	sort.SliceStable(out, func(i, j int) bool { return CompareTerms(out[i], out[j]) < 0 })

	return MultiVector{terms: out}
}

// Project keeps only the terms of the requested grade (0 = point through
// 4 = quadrivector). The grade discriminant alone is matched; axis
// payloads are ignored.
// Complexity: O(n)
func (m MultiVector) Project(grade int) MultiVector {
	var out []Term
	for _, t := range m.terms {
		if t.Form().Grade() == grade {
			out = append(out, t)
		}
	}

	return MultiVector{terms: out}
}

// String renders the MultiVector as a grade-grouped multi-line listing:
// one line per registry form that has terms, each listing the term
// coefficients in order.
func (m MultiVector) String() string {
	var b strings.Builder
	b.WriteString("{")

	for _, f := range algebra.AllowedForms() {
		terms := m.Get(f)
		if len(terms) == 0 {
			continue
		}

		coeffs := make([]string, len(terms))
		for i, t := range terms {
			coeffs[i] = signedCoeff(t)
		}
		b.WriteString(fmt.Sprintf("\n  a%s: (%s),", f, strings.Join(coeffs, ", ")))
	}
	b.WriteString("\n}")

	return b.String()
}

func signedCoeff(t Term) string {
	prefix := ""
	if t.Sign() == algebra.SignNeg {
		prefix = "-"
	}
	if !t.Magnitude().IsOne() {
		prefix += fmt.Sprintf("(%s)", t.Magnitude())
	}

	return prefix + t.XiString()
}
