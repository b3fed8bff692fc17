package mvec_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/spacetime/algebra"
	"github.com/katalvlaran/spacetime/mvec"
	"github.com/katalvlaran/spacetime/quantities"
	"github.com/katalvlaran/spacetime/rational"
)

func mustTerm(s string) mvec.Term {
	return mvec.NewTerm(algebra.MustAlpha(s))
}

// TestSimplify_MergesMatchingKeys verifies duplicate keys fold into one
// term with summed magnitude.
func TestSimplify_MergesMatchingKeys(t *testing.T) {
	m := mvec.New()
	m.Push(mustTerm("23"))
	m.Push(mustTerm("23"))

	s := m.Simplify()
	require.Equal(t, 1, s.Len())
	assert.True(t, s.AsTerms()[0].Magnitude().Equal(rational.FromInt(2)))
}

// TestSimplify_DropsCancelledPairs verifies exact +/- pairs vanish.
func TestSimplify_DropsCancelledPairs(t *testing.T) {
	m := mvec.New()
	m.Push(mustTerm("23"))
	m.Push(mustTerm("-23"))
	m.Push(mustTerm("0"))

	s := m.Simplify()
	require.Equal(t, 1, s.Len())
	assert.Equal(t, algebra.MustAlpha("0"), s.AsTerms()[0].Alpha())
}

// TestSimplify_CanonicalOrderAndIdempotence verifies registry-ordered
// output and that simplifying twice changes nothing.
func TestSimplify_CanonicalOrderAndIdempotence(t *testing.T) {
	m := mvec.New()
	m.Push(mustTerm("03"))
	m.Push(mustTerm("1"))
	m.Push(mustTerm("23"))
	m.Push(mustTerm("p"))

	s := m.Simplify()
	forms := make([]string, 0, s.Len())
	for _, term := range s.AsTerms() {
		forms = append(forms, term.Form().String())
	}
	assert.Equal(t, []string{"p", "23", "1", "03"}, forms, "zet registry order")

	assert.Equal(t, s, s.Simplify(), "simplify is idempotent")
}

// TestSimplify_KeepsDistinctCoefficients verifies same-form terms with
// different coefficients survive side by side.
func TestSimplify_KeepsDistinctCoefficients(t *testing.T) {
	m := mvec.New()
	m.Push(mvec.NewTermSymbol("f", algebra.MustAlpha("23")))
	m.Push(mvec.NewTermSymbol("g", algebra.MustAlpha("23")))

	assert.Equal(t, 2, m.Simplify().Len())
}

// TestFull_VectorPair verifies the simplest grade-raising product.
func TestFull_VectorPair(t *testing.T) {
	left := mvec.FromTerms([]mvec.Term{mustTerm("1")})
	right := mvec.FromTerms([]mvec.Term{mustTerm("2")})

	prod := mvec.Full(left, right)
	require.Equal(t, 1, prod.Len())

	term := prod.AsTerms()[0]
	assert.Equal(t, algebra.MustAlpha("12"), term.Alpha())
	assert.Equal(t, "ξ1.ξ2", term.XiString())
}

// TestFull_BivectorSquare squares the magnetic triple B: the off-diagonal
// products cancel pairwise under simplification and the three squares
// land on the negative point.
func TestFull_BivectorSquare(t *testing.T) {
	b := quantities.B()

	sq := mvec.Full(b, b)
	assert.Equal(t, 9, sq.Len(), "unsimplified Cartesian product")

	s := sq.Simplify()
	require.Equal(t, 3, s.Len(), "only the diagonal survives")
	for _, term := range s.AsTerms() {
		assert.Equal(t, algebra.Point(), term.Form())
		assert.Equal(t, algebra.SignNeg, term.Sign(), "spatial bivectors square negative")
	}
}

// TestFull_IsNotCommutative pins the order sensitivity of the product.
func TestFull_IsNotCommutative(t *testing.T) {
	x := mvec.FromTerms([]mvec.Term{mustTerm("1")})
	y := mvec.FromTerms([]mvec.Term{mustTerm("2")})

	xy := mvec.Full(x, y).AsTerms()[0]
	yx := mvec.Full(y, x).AsTerms()[0]

	assert.Equal(t, xy.Form(), yx.Form())
	assert.NotEqual(t, xy.Sign(), yx.Sign())
}

// TestProject filters by grade discriminant only.
func TestProject(t *testing.T) {
	g := quantities.G()

	assert.Equal(t, 1, g.Project(0).Len())
	assert.Equal(t, 4, g.Project(1).Len())
	assert.Equal(t, 6, g.Project(2).Len())
	assert.Equal(t, 4, g.Project(3).Len())
	assert.Equal(t, 1, g.Project(4).Len())
	assert.True(t, g.Project(2).Project(3).IsEmpty(), "grades are disjoint")
}

// TestGet returns terms of one exact form.
func TestGet(t *testing.T) {
	m := mvec.New()
	m.Push(mustTerm("23"))
	m.Push(mvec.NewTermSymbol("f", algebra.MustAlpha("23")))
	m.Push(mustTerm("31"))

	got := m.Get(algebra.Bivector(algebra.AxisY, algebra.AxisZ))
	assert.Len(t, got, 2)
	assert.Empty(t, m.Get(algebra.Point()))
}

// TestMultiVector_String pins the grade-grouped listing format.
func TestMultiVector_String(t *testing.T) {
	m := mvec.New()
	m.Push(mustTerm("-23"))
	m.Push(mustTerm("p").Scale(rational.FromInt(2)))

	assert.Equal(t, "{\n  ap: ((2)ξp),\n  a23: (-ξ23),\n}", m.String())
	assert.Equal(t, "{\n}", mvec.New().String())
}

// TestFromSources flattens mixed terms and multivectors.
func TestFromSources(t *testing.T) {
	m := mvec.FromSources(mustTerm("p"), quantities.B())
	assert.Equal(t, 4, m.Len())
}
