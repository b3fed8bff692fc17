package mvec_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/spacetime/algebra"
	"github.com/katalvlaran/spacetime/mvec"
	"github.com/katalvlaran/spacetime/rational"
)

// TestNewTerm_DefaultSymbol verifies the coefficient defaults to the
// form's own name.
func TestNewTerm_DefaultSymbol(t *testing.T) {
	term := mvec.NewTerm(algebra.MustAlpha("23"))

	assert.True(t, term.Magnitude().IsOne())
	assert.Equal(t, "ξ23", term.XiString())
	assert.Equal(t, mvec.Key{Form: term.Form(), Xi: "ξ23"}, term.SummationKey())

	// An empty explicit symbol falls back the same way.
	fallback := mvec.NewTermSymbol("", algebra.MustAlpha("23"))
	assert.Equal(t, term.SummationKey(), fallback.SummationKey())
}

// TestNewTermSymbols builds a multi-factor coefficient.
func TestNewTermSymbols(t *testing.T) {
	term := mvec.NewTermSymbols([]string{"b", "a"}, algebra.MustAlpha("0"))
	assert.Equal(t, "ξa.ξb", term.XiString())
}

// TestUnitTerm verifies the coefficient-free lift used by Dual and the
// differentials.
func TestUnitTerm(t *testing.T) {
	u := mvec.UnitTerm(algebra.MustAlpha("-0123"))

	assert.True(t, u.Xi().IsEmpty())
	assert.Equal(t, "-a0123", u.String(), "no parens for an empty coefficient")

	// Multiplying by a unit term leaves the other coefficient untouched.
	term := mvec.NewTerm(algebra.MustAlpha("23"))
	prod := u.FormProductWith(term)
	assert.Equal(t, "ξ23", prod.XiString())
}

// TestTryAdd covers the sign-aware magnitude folding.
func TestTryAdd(t *testing.T) {
	pos := mvec.NewTerm(algebra.MustAlpha("23"))
	neg := mvec.NewTerm(algebra.MustAlpha("-23"))

	// Matching signs add magnitudes.
	sum, ok := pos.TryAdd(pos)
	require.True(t, ok)
	assert.True(t, sum.Magnitude().Equal(rational.FromInt(2)))
	assert.Equal(t, algebra.SignPos, sum.Sign())

	// Opposite equal magnitudes cancel to zero.
	zero, ok := pos.TryAdd(neg)
	require.True(t, ok)
	assert.True(t, zero.Magnitude().IsZero())

	// Crossing magnitudes flip the surviving sign instead of going negative.
	big := neg.Scale(rational.New(3, 2))
	crossed, ok := pos.TryAdd(big)
	require.True(t, ok)
	assert.Equal(t, algebra.SignNeg, crossed.Sign())
	assert.True(t, crossed.Magnitude().Equal(rational.New(1, 2)))

	// Different forms never merge.
	_, ok = pos.TryAdd(mvec.NewTerm(algebra.MustAlpha("31")))
	assert.False(t, ok)

	// Same form, different coefficient never merges either.
	_, ok = pos.TryAdd(mvec.NewTermSymbol("other", algebra.MustAlpha("23")))
	assert.False(t, ok)
}

// TestFormProductWith verifies magnitudes multiply, units combine and
// coefficients merge.
func TestFormProductWith(t *testing.T) {
	left := mvec.NewTermSymbol("f", algebra.MustAlpha("1")).Scale(rational.FromInt(2))
	right := mvec.NewTermSymbol("g", algebra.MustAlpha("2")).Scale(rational.New(3, 2))

	prod := left.FormProductWith(right)

	assert.Equal(t, algebra.MustAlpha("12"), prod.Alpha())
	assert.True(t, prod.Magnitude().Equal(rational.FromInt(3)))
	assert.Equal(t, "ξf.ξg", prod.XiString())
}

// TestTerm_Inverse verifies the three-part inverse: reciprocal magnitude,
// inverted unit, inverted coefficient.
func TestTerm_Inverse(t *testing.T) {
	term := mvec.NewTermSymbol("f", algebra.MustAlpha("-31")).Scale(rational.FromInt(2))
	inv := term.Inverse()

	assert.True(t, inv.Magnitude().Equal(rational.New(1, 2)))
	assert.Equal(t, "1/ξf", inv.XiString())

	// The inverted unit satisfies a ^ invert(a) == +ap.
	assert.Equal(t, algebra.MustAlpha("p"),
		algebra.FullProduct(term.Alpha(), inv.Alpha()))
}

// TestTerm_Scaling covers integer and rational scaling plus the
// negative-factor sign flip.
func TestTerm_Scaling(t *testing.T) {
	term := mvec.NewTerm(algebra.MustAlpha("1"))

	scaled := term.ScaleInt(-2)
	assert.Equal(t, algebra.SignNeg, scaled.Sign(), "negative factors flip the unit")
	assert.True(t, scaled.Magnitude().Equal(rational.FromInt(2)))

	halved := term.DivMagnitude(rational.FromInt(2))
	assert.True(t, halved.Magnitude().Equal(rational.New(1, 2)))
}

// TestTerm_String pins the rendering format.
func TestTerm_String(t *testing.T) {
	term := mvec.NewTerm(algebra.MustAlpha("-23"))
	assert.Equal(t, "-a23(ξ23)", term.String())

	scaled := term.Scale(rational.New(3, 2))
	assert.Equal(t, "-a23(3/2)(ξ23)", scaled.String())
}

// TestCompareTerms verifies the display ordering keys.
func TestCompareTerms(t *testing.T) {
	p := mvec.NewTerm(algebra.MustAlpha("p"))
	b23 := mvec.NewTerm(algebra.MustAlpha("23"))
	e03 := mvec.NewTerm(algebra.MustAlpha("03"))

	assert.Negative(t, mvec.CompareTerms(p, b23), "registry index first")
	assert.Positive(t, mvec.CompareTerms(e03, b23))

	// Same key: positive sorts ahead of negative.
	assert.Negative(t, mvec.CompareTerms(b23, b23.Negate()))
	assert.Equal(t, 0, mvec.CompareTerms(b23, b23))
}
