package mvec_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/spacetime/algebra"
	"github.com/katalvlaran/spacetime/mvec"
)

// TestDivide_SingleTermSelf verifies a \ a lands on the positive point
// with magnitude 1.
func TestDivide_SingleTermSelf(t *testing.T) {
	for _, s := range []string{"p", "0", "31", "023", "123", "0123", "-12"} {
		a := mvec.FromTerms([]mvec.Term{mustTerm(s)})

		q := mvec.Divide(a, a)
		require.Equal(t, 1, q.Len(), "%s \\ %s", s, s)

		term := q.AsTerms()[0]
		assert.Equal(t, algebra.MustAlpha("p"), term.Alpha(), "%s \\ %s", s, s)
		assert.True(t, term.Magnitude().IsOne())
	}
}

// TestDivide_SingleTermPair verifies the direct-inverse path on distinct
// operands: 31 \ 01 applies invert(a31) ^ a01 with a coefficient quotient.
func TestDivide_SingleTermPair(t *testing.T) {
	left := mvec.FromTerms([]mvec.Term{mustTerm("31")})
	right := mvec.FromTerms([]mvec.Term{mustTerm("01")})

	q := mvec.Divide(left, right)
	require.Equal(t, 1, q.Len())

	term := q.AsTerms()[0]
	// invert(a31) == -a31, and -a31 ^ a01 == +a03.
	assert.Equal(t, algebra.MustAlpha("03"), term.Alpha())
	assert.Equal(t, "ξ01/ξ31", term.XiString())
}

// TestDivide_VanDerMark runs the general projective inverse on a
// two-term operand sharing one coefficient symbol, where the chain
// reduces exactly: M = ξf(a23 + a01), and M \ M folds back to the point.
func TestDivide_VanDerMark(t *testing.T) {
	m := mvec.FromTerms([]mvec.Term{
		mvec.NewTermSymbol("f", algebra.MustAlpha("23")),
		mvec.NewTermSymbol("f", algebra.MustAlpha("01")),
	})

	q := mvec.Divide(m, m)
	require.Equal(t, 1, q.Len(), "M \\ M must collapse to one term")

	term := q.AsTerms()[0]
	assert.Equal(t, algebra.MustAlpha("p"), term.Alpha())
	assert.True(t, term.Magnitude().IsOne(), "divisor scaling restores magnitude 1")
	assert.Equal(t, "ξf^4", term.XiString(), "the chain multiplies four coefficient factors")
}

// TestDivide_DegenerateDivisorPanics verifies the fatal guard when the
// Van der Mark divisor does not reduce to a single point term, which
// happens as soon as the operand's coefficients are distinct symbols.
func TestDivide_DegenerateDivisorPanics(t *testing.T) {
	m := mvec.FromTerms([]mvec.Term{mustTerm("p"), mustTerm("1")})

	assert.Panics(t, func() { mvec.Divide(m, m) })
}
