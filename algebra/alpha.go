package algebra

import (
	"fmt"
	"strings"
)

// Alpha is a directed unit of the algebra: a Sign paired with one of the
// 16 registry Forms. Alphas are immutable values; negation returns a new
// Alpha with the sign flipped and the form untouched.
type Alpha struct {
	sign Sign
	form Form
}

// NewAlpha pairs a sign with a form, validating the form against the
// registry. Returns ErrFormNotAllowed for any form outside the 16 allowed
// members (including allowed axis sets stored in a non-canonical order).
// Complexity: O(1)
func NewAlpha(sign Sign, form Form) (Alpha, error) {
	if _, ok := FormIndex(form); !ok {
		return Alpha{}, fmt.Errorf("%w: %q", ErrFormNotAllowed, form)
	}

	return Alpha{sign: sign, form: form}, nil
}

// AlphaFromAxes builds an Alpha from an explicit axis list, failing with
// ErrInvalidGrade or ErrFormNotAllowed as appropriate.
// Complexity: O(1)
func AlphaFromAxes(sign Sign, axes []Axis) (Alpha, error) {
	form, err := FormFromAxes(axes)
	if err != nil {
		return Alpha{}, err
	}

	return NewAlpha(sign, form)
}

// ParseAlpha parses the textual alpha notation used throughout the
// library: an optional leading sign, then either "p" or one to four axis
// indices, e.g. "p", "31", "-023", "+0123". An optional "a" prefix before
// the indices is accepted, so "-a31" parses the same as "-31".
// Returns ErrParseAlpha, ErrInvalidAxis or ErrFormNotAllowed on bad input.
// Complexity: O(1)
func ParseAlpha(s string) (Alpha, error) {
	rest := s
	sign := SignPos

	switch {
	case strings.HasPrefix(rest, "-"):
		sign = SignNeg
		rest = rest[1:]
	case strings.HasPrefix(rest, "+"):
		rest = rest[1:]
	}
	rest = strings.TrimPrefix(rest, "a")

	if rest == "" {
		return Alpha{}, fmt.Errorf("%w: %q", ErrParseAlpha, s)
	}
	if rest == "p" {
		return Alpha{sign: sign, form: Point()}, nil
	}

	axes := make([]Axis, 0, len(rest))
	for _, r := range rest {
		if r < '0' || r > '3' {
			return Alpha{}, fmt.Errorf("%w: %q in %q", ErrInvalidAxis, string(r), s)
		}
		axes = append(axes, Axis(r-'0'))
	}

	return AlphaFromAxes(sign, axes)
}

// MustAlpha is ParseAlpha for fixed, known-good notation; it panics on
// error. Intended for package-level constants and tests.
func MustAlpha(s string) Alpha {
	a, err := ParseAlpha(s)
	if err != nil {
		panic(err)
	}

	return a
}

// Sign returns the direction of this Alpha.
func (a Alpha) Sign() Sign {
	return a.sign
}

// Form returns the grade-tagged axis tuple of this Alpha.
func (a Alpha) Form() Form {
	return a.form
}

// IsPoint reports whether this Alpha is (either sign of) the point.
func (a Alpha) IsPoint() bool {
	return a.form == Point()
}

// Negate returns the Alpha with its sign flipped.
func (a Alpha) Negate() Alpha {
	return Alpha{sign: a.sign.Negate(), form: a.form}
}

// String renders the Alpha in sign-prefixed index notation, e.g. "-a23".
func (a Alpha) String() string {
	return fmt.Sprintf("%s%s", a.sign, "a"+a.form.String())
}
