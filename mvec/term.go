package mvec

import (
	"fmt"

	"github.com/katalvlaran/spacetime/algebra"
	"github.com/katalvlaran/spacetime/rational"
	"github.com/katalvlaran/spacetime/symbolic"
)

// Term is one magnitude-and-symbol-weighted directed unit. The stored
// magnitude is always non-negative; the term's actual sign lives on the
// Alpha, and every operation that would produce a negative magnitude
// flips the Alpha instead. Terms are immutable values.
type Term struct {
	mag   rational.Magnitude
	alpha algebra.Alpha
	xi    symbolic.Xi
}

// Key is the summation key of a Term: the pair that must match for two
// terms to be mergeable by addition. It is a comparable value suitable
// for map keys.
type Key struct {
	Form algebra.Form
	Xi   string
}

// NewTerm builds a magnitude-1 term whose symbolic coefficient is named
// after the unit's form: NewTerm(+a23) carries ξ23.
func NewTerm(a algebra.Alpha) Term {
	return NewTermSymbol(a.Form().String(), a)
}

// NewTermSymbol builds a magnitude-1 term with an explicit coefficient
// name. An empty symbol falls back to the form name.
func NewTermSymbol(symbol string, a algebra.Alpha) Term {
	if symbol == "" {
		symbol = a.Form().String()
	}

	return Term{mag: rational.One(), alpha: a, xi: symbolic.New(symbol)}
}

// UnitTerm lifts a bare directed unit into a magnitude-1 term with an
// empty coefficient, so that products against it leave the other side's
// coefficient untouched. Used by the dual and differential operators.
func UnitTerm(a algebra.Alpha) Term {
	return Term{mag: rational.One(), alpha: a, xi: symbolic.Empty()}
}

// NewTermSymbols builds a magnitude-1 term whose coefficient is the
// product of several named factors.
func NewTermSymbols(symbols []string, a algebra.Alpha) Term {
	xis := make([]symbolic.Xi, len(symbols))
	for i, s := range symbols {
		xis[i] = symbolic.New(s)
	}

	return Term{mag: rational.One(), alpha: a, xi: symbolic.Merge(xis...)}
}

// Magnitude returns the unsigned magnitude of this term.
func (t Term) Magnitude() rational.Magnitude { return t.mag }

// Alpha returns the directed unit of this term.
func (t Term) Alpha() algebra.Alpha { return t.alpha }

// Form returns the form of the underlying directed unit.
func (t Term) Form() algebra.Form { return t.alpha.Form() }

// Sign returns the sign of the underlying directed unit, which is the
// sign of the whole term.
func (t Term) Sign() algebra.Sign { return t.alpha.Sign() }

// Xi returns the symbolic coefficient of this term.
func (t Term) Xi() symbolic.Xi { return t.xi }

// XiString returns the canonical rendering of the coefficient.
func (t Term) XiString() string { return t.xi.String() }

// SummationKey returns the (form, rendered coefficient) pair that decides
// mergeability under addition.
func (t Term) SummationKey() Key {
	return Key{Form: t.Form(), Xi: t.XiString()}
}

// TryAdd attempts to sum two terms. It succeeds only when the summation
// keys match; callers group by key before folding. Matching signs add
// magnitudes; opposite signs subtract the smaller magnitude from the
// larger, flipping the surviving sign when the magnitudes cross, so the
// stored magnitude never goes negative.
// Complexity: O(1)
func (t Term) TryAdd(other Term) (Term, bool) {
	if t.SummationKey() != other.SummationKey() {
		return Term{}, false
	}

	if t.Sign() == other.Sign() {
		out := t
		out.mag = t.mag.Add(other.mag)
		return out, true
	}

	// A - B == -(B - A): subtract the smaller from the larger and keep
	// the larger side's sign.
	pos, neg := t, other
	if pos.mag.Cmp(neg.mag) >= 0 {
		pos.mag = pos.mag.Sub(neg.mag)
		return pos, true
	}

	neg.mag = neg.mag.Sub(pos.mag)
	return neg, true
}

// FormProductWith combines two terms under the full product of the
// algebra: magnitudes multiply, units combine via algebra.FullProduct and
// coefficients merge. Pure; neither operand is modified.
// Complexity: O(1)
func (t Term) FormProductWith(other Term) Term {
	return Term{
		mag:   t.mag.Mul(other.mag),
		alpha: algebra.FullProduct(t.alpha, other.alpha),
		xi:    symbolic.Merge(t.xi, other.xi),
	}
}

// Inverse returns the multiplicative inverse of this term: reciprocal
// magnitude, inverted unit and inverted coefficient.
func (t Term) Inverse() Term {
	return Term{
		mag:   t.mag.Inverse(),
		alpha: t.alpha.Invert(),
		xi:    t.xi.Inverse(),
	}
}

// Negate flips the sign of the underlying unit.
func (t Term) Negate() Term {
	out := t
	out.alpha = t.alpha.Negate()

	return out
}

// ScaleInt multiplies the term by an integer. Negative factors flip the
// unit's sign rather than storing a negative magnitude.
func (t Term) ScaleInt(n int64) Term {
	out := t
	if n < 0 {
		out.mag = t.mag.MulInt(uint64(-n))
		out.alpha = t.alpha.Negate()
	} else {
		out.mag = t.mag.MulInt(uint64(n))
	}

	return out
}

// Scale multiplies the term's magnitude by an exact rational factor.
func (t Term) Scale(m rational.Magnitude) Term {
	out := t
	out.mag = t.mag.Mul(m)

	return out
}

// DivMagnitude divides the term's magnitude by an exact rational factor.
func (t Term) DivMagnitude(m rational.Magnitude) Term {
	out := t
	out.mag = t.mag.Div(m)

	return out
}

// AddPartial records wrt's form as one applied partial derivative on the
// coefficient and returns the tagged term.
func (t Term) AddPartial(wrt algebra.Alpha) Term {
	out := t
	out.xi = t.xi.AddPartial(wrt.Form())

	return out
}

// WithAlpha replaces the directed unit, keeping magnitude and coefficient.
func (t Term) WithAlpha(a algebra.Alpha) Term {
	out := t
	out.alpha = a

	return out
}

// AsTerms implements TermSource for a single term.
func (t Term) AsTerms() []Term {
	return []Term{t}
}

// String renders the term as unit, parenthesized magnitude when not 1,
// then the coefficient: "-a23(3/2)(ξ23)".
func (t Term) String() string {
	magStr := ""
	if !t.mag.IsOne() {
		magStr = fmt.Sprintf("(%s)", t.mag)
	}
	if xiStr := t.XiString(); xiStr != "" {
		return fmt.Sprintf("%s%s(%s)", t.alpha, magStr, xiStr)
	}

	return fmt.Sprintf("%s%s", t.alpha, magStr)
}

// CompareTerms is the canonical term ordering used for deterministic
// display: registry index of the form, then coefficient, then sign, then
// magnitude.
func CompareTerms(a, b Term) int {
	if c := algebra.CompareForms(a.Form(), b.Form()); c != 0 {
		return c
	}
	if c := symbolic.Compare(a.xi, b.xi); c != 0 {
		return c
	}
	if a.Sign() != b.Sign() {
		if a.Sign() == algebra.SignPos {
			return -1
		}
		return 1
	}

	return a.mag.Cmp(b.mag)
}
