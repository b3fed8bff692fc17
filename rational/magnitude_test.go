package rational_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/spacetime/rational"
)

// TestNew_Reduces verifies construction normalizes to lowest terms.
func TestNew_Reduces(t *testing.T) {
	m := rational.New(6, 4)
	assert.Equal(t, uint64(3), m.Num())
	assert.Equal(t, uint64(2), m.Den())

	z := rational.New(0, 7)
	assert.True(t, z.IsZero())
	assert.Equal(t, uint64(1), z.Den(), "zero normalizes to 0/1")

	assert.Panics(t, func() { rational.New(1, 0) }, "zero denominator is a defect")
}

// TestMagnitude_ZeroValue verifies the uninitialized Magnitude behaves as 0.
func TestMagnitude_ZeroValue(t *testing.T) {
	var z rational.Magnitude

	assert.True(t, z.IsZero())
	assert.Equal(t, "0", z.String())
	assert.True(t, z.Add(rational.One()).IsOne(), "0 + 1 == 1")
	assert.True(t, z.Mul(rational.New(3, 2)).IsZero(), "0 * x == 0")
}

// TestMagnitude_Arithmetic covers the exact-fraction operations.
func TestMagnitude_Arithmetic(t *testing.T) {
	half := rational.New(1, 2)
	third := rational.New(1, 3)

	assert.True(t, half.Add(third).Equal(rational.New(5, 6)))
	assert.True(t, half.Sub(third).Equal(rational.New(1, 6)))
	assert.True(t, half.Mul(third).Equal(rational.New(1, 6)))
	assert.True(t, half.Div(third).Equal(rational.New(3, 2)))

	assert.True(t, half.MulInt(4).Equal(rational.FromInt(2)))
	assert.True(t, half.DivInt(2).Equal(rational.New(1, 4)))
	assert.True(t, rational.New(2, 3).Inverse().Equal(rational.New(3, 2)))

	assert.Panics(t, func() { third.Sub(half) }, "unsigned subtraction cannot underflow")
	assert.Panics(t, func() { half.Div(rational.Magnitude{}) }, "division by zero")
}

// TestMagnitude_Cmp verifies the cross-multiplied total order.
func TestMagnitude_Cmp(t *testing.T) {
	assert.Equal(t, -1, rational.New(1, 3).Cmp(rational.New(1, 2)))
	assert.Equal(t, 1, rational.New(7, 2).Cmp(rational.FromInt(3)))
	assert.Equal(t, 0, rational.New(2, 4).Cmp(rational.New(1, 2)))
}

// TestMagnitude_String verifies whole and fractional rendering.
func TestMagnitude_String(t *testing.T) {
	assert.Equal(t, "3", rational.FromInt(3).String())
	assert.Equal(t, "3/2", rational.New(3, 2).String())
	assert.Equal(t, "2", rational.New(4, 2).String(), "reduction precedes rendering")
	assert.Equal(t, "1", rational.One().String())
}
