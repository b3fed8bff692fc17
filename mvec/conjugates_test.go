package mvec_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/spacetime/algebra"
	"github.com/katalvlaran/spacetime/mvec"
	"github.com/katalvlaran/spacetime/quantities"
)

// TestReverse negates exactly the bivector and trivector grades.
func TestReverse(t *testing.T) {
	for _, term := range mvec.Reverse(quantities.G()).AsTerms() {
		wantNeg := term.Form().Grade() == 2 || term.Form().Grade() == 3
		if wantNeg {
			assert.Equal(t, algebra.SignNeg, term.Sign(), "reverse negates a%s", term.Form())
		} else {
			assert.Equal(t, algebra.SignPos, term.Sign(), "reverse keeps a%s", term.Form())
		}
	}

	g := quantities.G()
	assert.Equal(t, g, mvec.Reverse(mvec.Reverse(g)), "reverse is an involution")
}

// TestHermitian negates exactly the units squaring to -ap: under the
// +--- metric that is the spatial bivectors, all vectors but a0, the
// time-space trivectors and the quadrivector.
func TestHermitian(t *testing.T) {
	negated := map[string]bool{
		"23": true, "31": true, "12": true,
		"1": true, "2": true, "3": true,
		"023": true, "031": true, "012": true,
		"0123": true,
	}

	for _, term := range mvec.Hermitian(quantities.G()).AsTerms() {
		want := algebra.SignPos
		if negated[term.Form().String()] {
			want = algebra.SignNeg
		}
		assert.Equal(t, want, term.Sign(), "dagger of a%s", term.Form())
	}

	// Dagger is the notational alias.
	assert.Equal(t, mvec.Hermitian(quantities.Fields()), mvec.Dagger(quantities.Fields()))
}

// TestDiamond negates everything but the point.
func TestDiamond(t *testing.T) {
	m := mvec.FromSources(mustTerm("p"), quantities.B())

	for _, term := range mvec.Diamond(m).AsTerms() {
		if term.Form() == algebra.Point() {
			assert.Equal(t, algebra.SignPos, term.Sign())
		} else {
			assert.Equal(t, algebra.SignNeg, term.Sign())
		}
	}
}

// TestDoubleDagger negates everything except the bivectors.
func TestDoubleDagger(t *testing.T) {
	for _, term := range mvec.DoubleDagger(quantities.G()).AsTerms() {
		want := algebra.SignNeg
		if term.Form().Grade() == 2 {
			want = algebra.SignPos
		}
		assert.Equal(t, want, term.Sign(), "double dagger of a%s", term.Form())
	}
}

// TestDual left-multiplies by -a0123 without touching coefficients.
func TestDual(t *testing.T) {
	p := mvec.FromTerms([]mvec.Term{mvec.NewTermSymbol("f", algebra.MustAlpha("p"))})

	d := mvec.Dual(p)
	require.Equal(t, 1, d.Len())
	term := d.AsTerms()[0]
	assert.Equal(t, algebra.MustAlpha("-0123"), term.Alpha())
	assert.Equal(t, "ξf", term.XiString(), "the dual unit carries no coefficient")

	// The quadrivector duals back to the positive point.
	q := mvec.FromTerms([]mvec.Term{mustTerm("0123")})
	assert.Equal(t, algebra.MustAlpha("p"), mvec.Dual(q).AsTerms()[0].Alpha())

	// Applying the dual twice negates, since (-a0123)^(-a0123) == -ap.
	dd := mvec.Dual(mvec.Dual(p)).AsTerms()[0]
	assert.Equal(t, algebra.MustAlpha("-p"), dd.Alpha())
}
