package algebra

import (
	"fmt"
	"sort"
	"strings"
)

// Form is the grade-tagged axis tuple of a directed unit, independent of
// sign: the point (grade 0), a vector, a bivector, a trivector or the
// quadrivector. Forms are small comparable values; two Forms are equal iff
// their grade and axis tuples match exactly, ordering included.
//
// Forms built by the exported constructors may hold axes in any order, but
// only the 16 registry members (see AllowedForms) are accepted when
// constructing an Alpha.
type Form struct {
	grade int
	axes  [4]Axis
}

// Point returns the grade-0 form, the multiplicative identity of the algebra.
func Point() Form {
	return Form{}
}

// Vector returns the grade-1 form for a single axis.
func Vector(a Axis) Form {
	return Form{grade: 1, axes: [4]Axis{a}}
}

// Bivector returns the grade-2 form for an ordered axis pair.
func Bivector(a, b Axis) Form {
	return Form{grade: 2, axes: [4]Axis{a, b}}
}

// Trivector returns the grade-3 form for an ordered axis triple.
func Trivector(a, b, c Axis) Form {
	return Form{grade: 3, axes: [4]Axis{a, b, c}}
}

// Quadrivector returns the grade-4 form covering all four axes in the
// given order.
func Quadrivector(a, b, c, d Axis) Form {
	return Form{grade: 4, axes: [4]Axis{a, b, c, d}}
}

// FormFromAxes builds a Form of grade len(axes), preserving axis order.
// Returns ErrInvalidGrade when more than four axes are supplied.
// Complexity: O(1)
func FormFromAxes(axes []Axis) (Form, error) {
	if len(axes) > 4 {
		return Form{}, fmt.Errorf("%w: got %d axes", ErrInvalidGrade, len(axes))
	}

	f := Form{grade: len(axes)}
	copy(f.axes[:], axes)

	return f, nil
}

// Grade returns the number of axes in the form: 0 for the point through 4
// for the quadrivector.
func (f Form) Grade() int {
	return f.grade
}

// Axes returns a copy of the axis tuple in stored order.
func (f Form) Axes() []Axis {
	out := make([]Axis, f.grade)
	copy(out, f.axes[:f.grade])

	return out
}

// String renders the form as its concatenated axis indices, or "p" for
// the point: Bivector(Y, Z) renders as "23".
func (f Form) String() string {
	if f.grade == 0 {
		return "p"
	}

	var b strings.Builder
	for _, a := range f.axes[:f.grade] {
		b.WriteString(a.String())
	}

	return b.String()
}

// allowedForms is the fixed registry of the 16 directed-unit forms, listed
// in zet order (B, T, A, E). This ordering defines the canonical sort key
// for terms and the grouping used when rendering multivectors.
var allowedForms = [16]Form{
	// zet B
	Point(),
	Bivector(AxisY, AxisZ),
	Bivector(AxisZ, AxisX),
	Bivector(AxisX, AxisY),
	// zet T
	Vector(AxisT),
	Trivector(AxisT, AxisY, AxisZ),
	Trivector(AxisT, AxisZ, AxisX),
	Trivector(AxisT, AxisX, AxisY),
	// zet A
	Trivector(AxisX, AxisY, AxisZ),
	Vector(AxisX),
	Vector(AxisY),
	Vector(AxisZ),
	// zet E
	Quadrivector(AxisT, AxisX, AxisY, AxisZ),
	Bivector(AxisT, AxisX),
	Bivector(AxisT, AxisY),
	Bivector(AxisT, AxisZ),
}

// AllowedForms returns a copy of the 16-member form registry in canonical
// (zet) order.
// Complexity: O(1)
func AllowedForms() []Form {
	out := make([]Form, len(allowedForms))
	copy(out, allowedForms[:])

	return out
}

// AllowedFormStrings returns the rendered registry in canonical order:
// "p", "23", "31", "12", "0", ...
func AllowedFormStrings() []string {
	out := make([]string, len(allowedForms))
	for i, f := range allowedForms {
		out[i] = f.String()
	}

	return out
}

// FormIndex returns the position of f within the registry and whether f is
// a registry member at all.
// Complexity: O(1) (16 comparisons at most)
func FormIndex(f Form) (int, bool) {
	for i, allowed := range allowedForms {
		if f == allowed {
			return i, true
		}
	}

	return 0, false
}

// CompareForms orders two registry forms by their registry index. Both
// arguments must be registry members: a non-member here means an invalid
// form escaped construction validation, which is an internal defect.
// Complexity: O(1)
func CompareForms(a, b Form) int {
	ia, ok := FormIndex(a)
	if !ok {
		panic(fmt.Sprintf("algebra: %q is not an allowed spacetime form", a))
	}
	ib, ok := FormIndex(b)
	if !ok {
		panic(fmt.Sprintf("algebra: %q is not an allowed spacetime form", b))
	}

	switch {
	case ia < ib:
		return -1
	case ia > ib:
		return 1
	default:
		return 0
	}
}

// canonicalTargets maps every 2/3/4-element subset of the four axes
// (keyed by its sorted index string) to the canonical axis ordering used
// by the registry. Note the cyclic, not lexicographic, ordering of the
// mixed-grade entries: {1,3} orders as 31 and {0,1,3} as 031.
var canonicalTargets = map[string][]Axis{
	// bivectors, zet B
	"23": {AxisY, AxisZ},
	"13": {AxisZ, AxisX},
	"12": {AxisX, AxisY},
	// bivectors, zet E
	"01": {AxisT, AxisX},
	"02": {AxisT, AxisY},
	"03": {AxisT, AxisZ},
	// trivectors, zet T
	"023": {AxisT, AxisY, AxisZ},
	"013": {AxisT, AxisZ, AxisX},
	"012": {AxisT, AxisX, AxisY},
	// trivector, zet A
	"123": {AxisX, AxisY, AxisZ},
	// quadrivector
	"0123": {AxisT, AxisX, AxisY, AxisZ},
}

// targetOrdering returns the canonical ordering for the given axis multiset.
// The table is total over every duplicate-free 2/3/4-axis subset; a miss
// means the product algorithm produced an impossible axis set and aborts.
func targetOrdering(axes []Axis) []Axis {
	sorted := make([]Axis, len(axes))
	copy(sorted, axes)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	var key strings.Builder
	for _, a := range sorted {
		key.WriteString(a.String())
	}

	target, ok := canonicalTargets[key.String()]
	if !ok {
		panic(fmt.Sprintf("algebra: no canonical ordering for axis set %q", key.String()))
	}

	return target
}
