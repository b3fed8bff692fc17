package algebra

// Sign is the direction carried by an Alpha: positive or negative.
// Signs form a group of order two under Combine.
type Sign int

const (
	// SignPos is the positive direction.
	SignPos Sign = iota

	// SignNeg is the negative direction.
	SignNeg
)

// Combine merges two signs under the conventional rules of arithmetic:
// the result is positive iff both signs agree.
// Complexity: O(1)
func (s Sign) Combine(other Sign) Sign {
	if s == other {
		return SignPos
	}

	return SignNeg
}

// Negate returns the opposite sign. Negation is its own inverse.
// Complexity: O(1)
func (s Sign) Negate() Sign {
	return s.Combine(SignNeg)
}

// String renders the sign as "+" or "-".
func (s Sign) String() string {
	if s == SignPos {
		return "+"
	}

	return "-"
}
