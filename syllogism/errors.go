package syllogism

import "errors"

// Error taxonomy for premise construction and conclusion resolution.
// Every failure is surfaced synchronously as one of these sentinels
// (wrapped with context); callers classify with errors.Is.
var (
	// ErrInvalidCategory reports a premise category that is neither
	// major nor minor.
	ErrInvalidCategory = errors.New("invalid premise category")

	// ErrInvalidRole reports a term-binding pair whose role set does not
	// exactly match the allowed set for the premise's category.
	ErrInvalidRole = errors.New("invalid term role layout")

	// ErrInvalidType reports a proposition type outside the four
	// recognized (quantifier, polarity) pairs.
	ErrInvalidType = errors.New("invalid proposition type")

	// ErrNoMatchingFigure reports a premise pair whose shape, types, or
	// middle-term values match no recognized syllogistic figure.
	ErrNoMatchingFigure = errors.New("no matching syllogistic figure")
)
