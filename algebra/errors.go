package algebra

import "errors"

var (
	// ErrInvalidAxis indicates an axis index outside 0..3.
	ErrInvalidAxis = errors.New("algebra: axis index must be one of 0, 1, 2, 3")
	// ErrInvalidGrade indicates an axis tuple of length greater than four.
	ErrInvalidGrade = errors.New("algebra: forms are built from at most four axes")
	// ErrFormNotAllowed indicates a form outside the 16-member registry.
	ErrFormNotAllowed = errors.New("algebra: form is not one of the 16 allowed alpha forms")
	// ErrParseAlpha indicates a malformed textual alpha such as "a5" or "++p".
	ErrParseAlpha = errors.New("algebra: malformed alpha string")
)
