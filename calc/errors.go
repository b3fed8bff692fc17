package calc

import "errors"

var (
	// ErrUnknownOp indicates a step op outside the supported set.
	ErrUnknownOp = errors.New("calc: unknown operation")
	// ErrUnknownQuantity indicates an operand name with no definition.
	ErrUnknownQuantity = errors.New("calc: unknown quantity name")
	// ErrInvalidQuantity indicates a multivector declaration with a bad index list.
	ErrInvalidQuantity = errors.New("calc: invalid multivector declaration")
	// ErrMissingOperand indicates a step without the operands its op requires.
	ErrMissingOperand = errors.New("calc: step is missing a required operand")
	// ErrBadGrade indicates a projection grade outside 0..4.
	ErrBadGrade = errors.New("calc: projection grade must be between 0 and 4")
)
