package ui

import (
	stderrors "errors"

	"github.com/shawn-sandy/acss/internal/errors"
)

// The renderer error taxonomy. All three are programmer errors: they are
// surfaced to the caller and never retried or recovered internally.

// IsUnknownVariant reports whether err is an unsupported-variant failure.
func IsUnknownVariant(err error) bool {
	return hasCode(err, errors.CodeUnknownVariant)
}

// IsPropertyConflict reports whether err is an ambiguous property failure.
func IsPropertyConflict(err error) bool {
	return hasCode(err, errors.CodePropertyConflict)
}

// IsMalformedStyles reports whether err is a style-shape failure.
func IsMalformedStyles(err error) bool {
	return hasCode(err, errors.CodeMalformedStyles)
}

func hasCode(err error, code string) bool {
	var e *errors.Error
	if stderrors.As(err, &e) {
		return e.Code == code
	}
	return false
}
