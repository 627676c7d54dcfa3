package runtime

import (
	"sort"
	"strings"

	"github.com/manav03panchal/encore/internal/errors"
)

// Exit codes.
const (
	ExitOK     = 0
	ExitUser   = 1
	ExitSystem = 2
)

// GetSuggestion returns a suggestion for an error, if available.
func GetSuggestion(err error) string {
	return errors.GetSuggestion(err)
}

// FormatError formats an error for the terminal. Form validation errors
// list each field on its own line; other errors carry their suggestion.
func FormatError(err error) string {
	if err == nil {
		return ""
	}

	if fe, ok := errors.AsFieldErrors(err); ok {
		fields := make([]string, 0, len(fe))
		for f := range fe {
			fields = append(fields, f)
		}
		sort.Strings(fields)

		var b strings.Builder
		b.WriteString("Please fix the following:")
		for _, f := range fields {
			b.WriteString("\n  " + f + ": " + fe[f])
		}
		return b.String()
	}

	return errors.FormatByCategory(err)
}

// FieldErrors returns the per-field messages carried by err, if any.
func FieldErrors(err error) map[string]string {
	if fe, ok := errors.AsFieldErrors(err); ok {
		return fe
	}
	return nil
}

// ExitCode maps an error to the process exit status.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	if errors.Classify(err) == errors.CategorySystem {
		return ExitSystem
	}
	return ExitUser
}
