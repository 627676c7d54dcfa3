package errors

import "errors"

// Suggestions maps common errors to helpful suggestions.
var Suggestions = map[error]string{
	// User input errors
	ErrSongNotFound:       "Use 'encore playlist' to see song IDs.",
	ErrInvalidSongID:      "Song IDs are the numbers shown by 'encore playlist'.",
	ErrInvalidRoute:       "Use 'encore nav routes' to list the screens.",
	ErrUnknownSetting:     "Settings are 'notifications' and 'dark-mode'.",
	ErrUnknownField:       "Use 'encore signup show' or 'encore profile show' to see the fields.",
	ErrFormInvalid:        "Fix the fields listed above, then submit again.",
	ErrInvalidBirthDate:   "Try formats like 'March 3 1999', '1999-03-03' or '3/3/1999'.",
	ErrNotSignedUp:        "Create an account with 'encore signup submit'.",
	ErrNotSignedIn:        "Sign in with 'encore login'.",
	ErrInvalidCredentials: "Check your username or email and password.",

	// System errors
	ErrDiskFull:          "Free up disk space and try again. Changes made this session are kept in memory.",
	ErrDatabaseCorrupted: "Run 'encore doctor' to diagnose the database.",
	ErrPermissionDenied:  "Check file permissions in your data directory (~/.local/share/encore/).",
}

// GetSuggestion returns a suggestion for an error, if available.
// It walks the error chain to find matching suggestions.
func GetSuggestion(err error) string {
	if err == nil {
		return ""
	}

	// A UserError carrying its own suggestion wins over the generic one
	if ue, ok := AsUserError(err); ok && ue.Suggestion != "" {
		return ue.Suggestion
	}

	for knownErr, suggestion := range Suggestions {
		if errors.Is(err, knownErr) {
			return suggestion
		}
	}

	return ""
}
