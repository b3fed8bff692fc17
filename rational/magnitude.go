package rational

import "fmt"

// Magnitude is a strictly exact, non-negative rational number stored in
// lowest terms. The zero value is the Magnitude 0.
type Magnitude struct {
	num uint64
	den uint64
}

// New builds a reduced Magnitude from a numerator and denominator.
// A zero denominator panics: it indicates a defect upstream, not a
// recoverable input error.
// Complexity: O(log min(n, d))
func New(num, den uint64) Magnitude {
	m := Magnitude{num: num, den: den}
	m.reduce()

	return m
}

// FromInt builds a whole-number Magnitude.
func FromInt(n uint64) Magnitude {
	return Magnitude{num: n, den: 1}
}

// One is the multiplicative identity.
func One() Magnitude {
	return Magnitude{num: 1, den: 1}
}

func (m *Magnitude) reduce() {
	if m.den == 0 {
		panic("rational: magnitude denominator is 0")
	}
	if m.num == 0 {
		m.den = 1
		return
	}

	g := gcd(m.num, m.den)
	m.num /= g
	m.den /= g
}

func gcd(a, b uint64) uint64 {
	for b != 0 {
		a, b = b, a%b
	}

	return a
}

// Num returns the reduced numerator.
func (m Magnitude) Num() uint64 { return m.num }

// Den returns the reduced denominator. Zero-valued Magnitudes normalize
// to denominator 1 on first use; the raw zero value reports 0 here.
func (m Magnitude) Den() uint64 { return m.den }

// IsZero reports whether the magnitude is exactly 0.
func (m Magnitude) IsZero() bool { return m.num == 0 }

// IsOne reports whether the magnitude is exactly 1.
func (m Magnitude) IsOne() bool { return m.num == 1 && m.den == 1 }

// Add returns m + other.
// Complexity: O(log min(n, d))
func (m Magnitude) Add(other Magnitude) Magnitude {
	return New(m.num*other.denOr1()+other.num*m.denOr1(), m.denOr1()*other.denOr1())
}

// Sub returns m - other. The caller must ensure m >= other: magnitudes
// are unsigned, so underflow is an invariant violation and panics.
// Complexity: O(log min(n, d))
func (m Magnitude) Sub(other Magnitude) Magnitude {
	a := m.num * other.denOr1()
	b := other.num * m.denOr1()
	if b > a {
		panic("rational: magnitude subtraction underflow; flip the unit sign instead")
	}

	return New(a-b, m.denOr1()*other.denOr1())
}

// Mul returns m * other.
// Complexity: O(log min(n, d))
func (m Magnitude) Mul(other Magnitude) Magnitude {
	return New(m.num*other.num, m.denOr1()*other.denOr1())
}

// MulInt returns m * n.
func (m Magnitude) MulInt(n uint64) Magnitude {
	return New(m.num*n, m.denOr1())
}

// Div returns m / other. Dividing by zero panics via the denominator
// invariant.
// Complexity: O(log min(n, d))
func (m Magnitude) Div(other Magnitude) Magnitude {
	return New(m.num*other.denOr1(), m.denOr1()*other.num)
}

// DivInt returns m / n.
func (m Magnitude) DivInt(n uint64) Magnitude {
	return New(m.num, m.denOr1()*n)
}

// Inverse returns 1 / m.
func (m Magnitude) Inverse() Magnitude {
	return New(m.denOr1(), m.num)
}

// Cmp totally orders magnitudes via cross-multiplication, returning
// -1, 0 or +1.
// Complexity: O(1)
func (m Magnitude) Cmp(other Magnitude) int {
	a := m.num * other.denOr1()
	b := other.num * m.denOr1()
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// Equal reports exact equality of the reduced fractions.
func (m Magnitude) Equal(other Magnitude) bool {
	return m.Cmp(other) == 0
}

// String renders the magnitude as "n" for whole numbers or "n/d" otherwise.
func (m Magnitude) String() string {
	if m.denOr1() == 1 {
		return fmt.Sprintf("%d", m.num)
	}

	return fmt.Sprintf("%d/%d", m.num, m.den)
}

// denOr1 treats the zero value's denominator as 1 so that the zero value
// behaves as the Magnitude 0 without an explicit constructor call.
func (m Magnitude) denOr1() uint64 {
	if m.den == 0 {
		return 1
	}

	return m.den
}
