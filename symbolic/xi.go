package symbolic

import (
	"fmt"
	"sort"
	"strings"

	"github.com/katalvlaran/spacetime/algebra"
)

// Xi is one symbolic coefficient: either a leaf holding a factor name, or
// an internal node holding sorted numerator and denominator multisets of
// child coefficients. Both kinds may carry partial-derivative tags.
//
// The zero value is the empty Xi, a valid merge identity.
type Xi struct {
	value    string // leaf name; empty for internal and empty nodes
	partials []algebra.Form
	num      []Xi
	den      []Xi
}

// New returns a leaf Xi for the given factor name.
func New(value string) Xi {
	return Xi{value: value}
}

// Empty returns the empty Xi. Merging it into a product is a no-op.
func Empty() Xi {
	return Xi{}
}

// IsEmpty reports whether this Xi is the empty coefficient.
func (x Xi) IsEmpty() bool {
	return x.value == "" && len(x.partials) == 0 && len(x.num) == 0 && len(x.den) == 0
}

// Merge forms the product of the given coefficients. Tag-free internal
// nodes are flattened into the result so that merges never stack empty
// parents, which keeps Merge associative: merge(a, merge(b, c)) and
// merge(merge(a, b), c) build the identical tree. Children are kept in
// canonical sorted order.
// Complexity: O(n log n) over total child count
func Merge(xis ...Xi) Xi {
	var num, den []Xi
	for _, x := range xis {
		if x.value == "" && len(x.partials) == 0 {
			num = append(num, x.num...)
			den = append(den, x.den...)
		} else {
			num = append(num, x)
		}
	}

	sortXis(num)
	sortXis(den)

	return Xi{num: num, den: den}
}

// Inverse returns the multiplicative inverse of this Xi. Tag-free
// internal nodes invert by swapping their numerator and denominator
// multisets; leaves and tagged nodes invert by moving wholesale into the
// denominator of a fresh node. No symbolic cancellation happens here.
func (x Xi) Inverse() Xi {
	if x.value != "" || len(x.partials) > 0 {
		return Xi{den: []Xi{x.clone()}}
	}

	return Xi{
		num: copyXis(x.den),
		den: copyXis(x.num),
	}
}

// AddPartial returns this Xi with one more partial-derivative tag
// applied, keeping the tag list sorted for canonical comparison.
func (x Xi) AddPartial(wrt algebra.Form) Xi {
	out := x.clone()
	out.partials = append(out.partials, wrt)
	sortForms(out.partials)

	return out
}

// SetPartials returns this Xi with the tag list replaced (and sorted).
func (x Xi) SetPartials(partials []algebra.Form) Xi {
	out := x.clone()
	out.partials = copyForms(partials)
	sortForms(out.partials)

	return out
}

// Partials returns a copy of the applied partial-derivative tags.
func (x Xi) Partials() []algebra.Form {
	return copyForms(x.partials)
}

// String renders the coefficient as deterministic dotted-product text:
// leaves render as "ξname" behind their partial tags ("∂0∂1ξ23"),
// products group repeated factors into power notation ("ξ1^2.ξ2") and
// quotients render as "num/den" or "1/den". Rendering is injective over
// the equivalence classes Merge induces, which is what makes it usable
// as a summation key.
func (x Xi) String() string {
	partials := partialStr(x.partials)

	if x.value != "" {
		return fmt.Sprintf("%sξ%s", partials, x.value)
	}

	withPartials := func(s string) string {
		if partials == "" {
			return s
		}
		return fmt.Sprintf("%s(%s)", partials, s)
	}

	switch {
	case len(x.num) == 0 && len(x.den) == 0:
		// The empty Xi renders as the empty factor; callers treat it as 1.
		return withPartials("")
	case len(x.den) == 0:
		return withPartials(powerNotation(x.num))
	case len(x.num) == 0:
		return withPartials("1/" + powerNotation(x.den))
	default:
		return withPartials(powerNotation(x.num) + "/" + powerNotation(x.den))
	}
}

// Compare totally orders Xi trees: leaf names first (registry-indexed
// names before free names, free names alphabetically), then numerator
// children, denominator children and partial tags lexicographically.
// Compare returning 0 coincides with equal canonical renderings.
func Compare(a, b Xi) int {
	if c := compareValues(a.value, b.value); c != 0 {
		return c
	}
	if c := compareXiSlices(a.num, b.num); c != 0 {
		return c
	}
	if c := compareXiSlices(a.den, b.den); c != 0 {
		return c
	}

	return compareFormSlices(a.partials, b.partials)
}

// compareValues orders leaf names, placing names that match a registry
// form (e.g. "23", "012") in registry order ahead of all free names.
// Non-leaf markers (empty strings) compare equal so that structure
// breaks the tie.
func compareValues(l, r string) int {
	if l == "" || r == "" {
		return 0
	}

	il, okL := registryStringIndex(l)
	ir, okR := registryStringIndex(r)

	switch {
	case okL && okR:
		return il - ir
	case okL:
		return -1
	case okR:
		return 1
	default:
		return strings.Compare(l, r)
	}
}

var registryStrings = algebra.AllowedFormStrings()

func registryStringIndex(s string) (int, bool) {
	for i, rs := range registryStrings {
		if rs == s {
			return i, true
		}
	}

	return 0, false
}

// powerNotation renders sorted factors with repeats collapsed: ξa.ξa.ξb
// becomes "ξa^2.ξb".
func powerNotation(xis []Xi) string {
	sorted := copyXis(xis)
	sortXis(sorted)

	var parts []string
	for i := 0; i < len(sorted); {
		j := i
		for j < len(sorted) && Compare(sorted[i], sorted[j]) == 0 {
			j++
		}

		s := sorted[i].String()
		if count := j - i; count > 1 {
			s = fmt.Sprintf("%s^%d", s, count)
		}
		parts = append(parts, s)
		i = j
	}

	return strings.Join(parts, ".")
}

// partialStr concatenates the ∂-tags applied to a coefficient.
func partialStr(partials []algebra.Form) string {
	var b strings.Builder
	for _, p := range partials {
		b.WriteString("∂")
		b.WriteString(p.String())
	}

	return b.String()
}

func compareXiSlices(a, b []Xi) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		if c := Compare(a[i], b[i]); c != 0 {
			return c
		}
	}

	return len(a) - len(b)
}

func compareFormSlices(a, b []algebra.Form) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		if c := algebra.CompareForms(a[i], b[i]); c != 0 {
			return c
		}
	}

	return len(a) - len(b)
}

func sortXis(xis []Xi) {
	sort.SliceStable(xis, func(i, j int) bool { return Compare(xis[i], xis[j]) < 0 })
}

func sortForms(forms []algebra.Form) {
	sort.SliceStable(forms, func(i, j int) bool { return algebra.CompareForms(forms[i], forms[j]) < 0 })
}

func (x Xi) clone() Xi {
	return Xi{
		value:    x.value,
		partials: copyForms(x.partials),
		num:      copyXis(x.num),
		den:      copyXis(x.den),
	}
}

func copyXis(xis []Xi) []Xi {
	if xis == nil {
		return nil
	}
	out := make([]Xi, len(xis))
	copy(out, xis)

	return out
}

func copyForms(forms []algebra.Form) []algebra.Form {
	if forms == nil {
		return nil
	}
	out := make([]algebra.Form, len(forms))
	copy(out, forms)

	return out
}
