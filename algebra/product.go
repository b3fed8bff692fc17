// Full product of directed units
// ==============================
// The product is computed from a small set of allowed manipulations of
// the algebra's elements (writing aμ.aν as aμν):
//
//	(1)    ap.aμ == aμ.ap == aμ     (the point is the identity)
//	(2i)   a0^2  == ap              (temporal axes cancel cleanly)
//	(2ii)  ai^2  == -ap             (spatial axes cancel with a negation)
//	(3)    aμν   == -aνμ            (swapping adjacent axes negates: a "pop")
//
// Everything below is pop counting. Cancelling a repeated axis costs one
// pop per axis standing between its two occurrences; restoring canonical
// order after cancellation costs a number of pops whose parity is found by
// placing the front element and recursing on the relabelled remainder:
// when the front element's target position (0-indexed) is odd, placing it
// flips the sign. Off-by-ones here surface only as algebraic inconsistency
// far downstream, so the exhaustive tests in product_test.go are the
// authority on correctness, not this comment.
package algebra

import "sort"

// FullProduct computes the signed, canonical product of two directed
// units under the +--- metric and the registry's form orderings. It is
// total over valid Alphas: the registry is closed under the product, so
// the result is always constructible. A failure to resolve the resulting
// axis set is an internal defect and panics.
// Complexity: O(1) (axis lists are at most length four)
func FullProduct(i, j Alpha) Alpha {
	sign := i.sign.Combine(j.sign)

	// Multiplication by ap is idempotent on the form but still combines sign.
	if i.IsPoint() {
		return Alpha{sign: sign, form: j.form}
	}
	if j.IsPoint() {
		return Alpha{sign: sign, form: i.form}
	}

	popSign, axes := cancelRepeatedAxes(i.form, j.form)
	sign = sign.Combine(popSign)

	// Points and vectors have no ordering to restore.
	switch len(axes) {
	case 0:
		return Alpha{sign: sign, form: Point()}
	case 1:
		return Alpha{sign: sign, form: Vector(axes[0])}
	}

	orderSign, target := popToCanonicalOrdering(axes)
	sign = sign.Combine(orderSign)

	form, err := FormFromAxes(target)
	if err != nil {
		// cancelRepeatedAxes can never leave more than four axes.
		panic("algebra: product produced an oversized axis list: " + err.Error())
	}

	return Alpha{sign: sign, form: form}
}

// Invert returns the multiplicative inverse of a under the full product:
// the same form, with the sign corrected so that a ^ a.Invert() == +ap.
// Every directed unit is its own form-inverse; only the sign may differ.
// Complexity: O(1)
func (a Alpha) Invert() Alpha {
	square := FullProduct(a, a)

	return Alpha{sign: a.sign.Combine(square.sign), form: a.form}
}

// applyMetric folds one repeated axis's self-product into the sign:
// temporal axes square to +ap, spatial axes to -ap. This is the single
// place the +--- metric is hard coded.
func applyMetric(s Sign, a Axis) Sign {
	if a.IsSpatial() {
		return s.Combine(SignNeg)
	}

	return s
}

// cancelRepeatedAxes concatenates the axis lists of the two forms and
// removes each axis that appears in both, applying the metric and
// counting the pops needed to bring the pair adjacent. The returned sign
// starts from positive and must be combined with any accumulated sign.
func cancelRepeatedAxes(iForm, jForm Form) (Sign, []Axis) {
	iAxes := iForm.Axes()
	jAxes := jForm.Axes()
	sign := SignPos

	axes := make([]Axis, 0, len(iAxes)+len(jAxes))
	axes = append(axes, iAxes...)
	axes = append(axes, jAxes...)

	var repeated []Axis
	for _, a := range iAxes {
		for _, b := range jAxes {
			if a == b {
				repeated = append(repeated, a)
				break
			}
		}
	}

	for _, r := range repeated {
		sign = applyMetric(sign, r)

		p1, p2 := -1, -1
		for pos, a := range axes {
			if a == r {
				if p1 == -1 {
					p1 = pos
				} else {
					p2 = pos
					break
				}
			}
		}

		// p2-p1-1 pops bring the pair adjacent before they cancel.
		if (p2-p1-1)%2 == 1 {
			sign = sign.Combine(SignNeg)
		}

		// Remove the higher index first so the lower stays valid.
		axes = append(axes[:p2], axes[p2+1:]...)
		axes = append(axes[:p1], axes[p1+1:]...)
	}

	return sign, axes
}

// popToCanonicalOrdering determines the registry's target ordering for the
// remaining (duplicate-free) axes and counts the parity of the pops needed
// to permute into it: place the front element, flipping when its target
// position is odd, then relabel the remainder 0..n-1 and repeat.
func popToCanonicalOrdering(axes []Axis) (Sign, []Axis) {
	target := targetOrdering(axes)
	sign := SignPos

	if axisListsEqual(axes, target) {
		return sign, target
	}

	remaining := permutedPositions(axes, target)
	for len(remaining) > 1 {
		if remaining[0]%2 == 1 {
			sign = sign.Combine(SignNeg)
		}
		remaining = remaining[1:]

		sorted := make([]int, len(remaining))
		copy(sorted, remaining)
		sort.Ints(sorted)

		remaining = permutedPositions(remaining, sorted)
	}

	return sign, target
}

// permutedPositions maps each element of current to its position within
// target. current must be a duplicate-free permutation of target; anything
// else is an internal defect and panics.
func permutedPositions[T comparable](current, target []T) []int {
	out := make([]int, len(current))
	for i, c := range current {
		pos := -1
		for j, t := range target {
			if c == t {
				pos = j
				break
			}
		}
		if pos == -1 {
			panic("algebra: axis list is not a permutation of its canonical target")
		}
		out[i] = pos
	}

	return out
}

func axisListsEqual(a, b []Axis) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}
