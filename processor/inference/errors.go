package inference

import (
	"errors"

	"github.com/c360studio/termlogic/syllogism"
)

// Wire names for the engine's error taxonomy. Callers branch on these
// rather than parsing error strings.
const (
	ErrKindInvalidCategory  = "invalid_category"
	ErrKindInvalidRole      = "invalid_role"
	ErrKindInvalidType      = "invalid_type"
	ErrKindNoMatchingFigure = "no_matching_figure"
	ErrKindBadRequest       = "bad_request"
)

// classifyError maps an engine error to its wire name.
func classifyError(err error) string {
	switch {
	case errors.Is(err, syllogism.ErrInvalidCategory):
		return ErrKindInvalidCategory
	case errors.Is(err, syllogism.ErrInvalidRole):
		return ErrKindInvalidRole
	case errors.Is(err, syllogism.ErrInvalidType):
		return ErrKindInvalidType
	case errors.Is(err, syllogism.ErrNoMatchingFigure):
		return ErrKindNoMatchingFigure
	default:
		return ErrKindBadRequest
	}
}
