// Package validate provides input validation helpers for encore forms and
// commands. Messages match the ones the mobile app shows next to each field.
package validate

import (
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/manav03panchal/encore/internal/errors"
	"github.com/manav03panchal/encore/internal/logging"
)

// Genres lists the selectable favorite genres in picker order.
var Genres = []string{"Pop", "Rock", "Jazz", "Classical", "Hip-Hop"}

const (
	// MinUsernameLength is the minimum length for a username.
	MinUsernameLength = 3
	// MaxUsernameLength is the maximum length for a username.
	MaxUsernameLength = 20
	// MinNameLength is the minimum length for a first or last name.
	MinNameLength = 2
	// MinPasswordLength is the minimum length for a password.
	MinPasswordLength = 6
)

var (
	usernameRegex = regexp.MustCompile(`^[a-zA-Z0-9_]+$`)
	emailRegex    = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

var std = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Registration only fails for empty tags or nil funcs.
	_ = v.RegisterValidation("username", func(fl validator.FieldLevel) bool {
		return usernameRegex.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("loose_email", func(fl validator.FieldLevel) bool {
		return emailRegex.MatchString(fl.Field().String())
	})
	return v
}

// check runs a single validator tag against value.
func check(value any, tag string) bool {
	return std.Var(value, tag) == nil
}

// fieldError builds the error reported for a field. Sensitive values are
// never attached to the error.
func fieldError(field, value, message string) error {
	if logging.IsSensitiveField(field) {
		value = ""
	}
	return &errors.UserError{
		Message: message,
		Field:   field,
		Value:   value,
		Cause:   errors.ErrFormInvalid,
	}
}

// Message returns the user-facing message of a validation error.
func Message(err error) string {
	if err == nil {
		return ""
	}
	if ue, ok := errors.AsUserError(err); ok {
		return ue.Message
	}
	return err.Error()
}

// Username validates a username.
func Username(value string) error {
	if !check(value, "required") {
		return fieldError("username", value, "Username is required")
	}
	if !check(value, "min=3,max=20") {
		return fieldError("username", value, "Username must be 3-20 characters")
	}
	if !check(value, "username") {
		return fieldError("username", value, "Username can only contain letters, numbers, and underscores")
	}
	return nil
}

// Email validates an email address. Only the shape local@domain.tld is
// checked.
func Email(value string) error {
	if !check(value, "required") {
		return fieldError("email", value, "Email is required")
	}
	if !check(value, "loose_email") {
		return fieldError("email", value, "Please enter a valid email address")
	}
	return nil
}

// Genre validates the favorite genre on the profile form.
func Genre(value string) error {
	return genre(value, "Please select a favorite genre")
}

// FavoriteGenre validates the favorite genre on the signup form.
func FavoriteGenre(value string) error {
	return genre(value, "Please select your favorite genre")
}

func genre(value, missing string) error {
	if !check(value, "required") {
		return fieldError("genre", value, missing)
	}
	if !check(value, "oneof="+strings.Join(Genres, " ")) {
		return fieldError("genre", value, "Genre must be one of "+strings.Join(Genres, ", "))
	}
	return nil
}

// FirstName validates a first name.
func FirstName(value string) error {
	return personName("firstName", value, "First name")
}

// LastName validates a last name.
func LastName(value string) error {
	return personName("lastName", value, "Last name")
}

func personName(field, value, label string) error {
	if !check(strings.TrimSpace(value), "required") {
		return fieldError(field, value, label+" is required")
	}
	if !check(value, "min=2") {
		return fieldError(field, value, label+" too short")
	}
	return nil
}

// Password validates a new password.
func Password(value string) error {
	if !check(value, "required") {
		return fieldError("password", value, "Password is required")
	}
	if !check(value, "min=6") {
		return fieldError("password", value, "Password must be at least 6 characters")
	}
	return nil
}

// BirthDate validates that every birth date part has been picked.
func BirthDate(month, day, year string) error {
	if month == "" || day == "" || year == "" {
		return fieldError("birthDate", month+"/"+day+"/"+year, "Please select your complete birth date")
	}
	return nil
}

// SongName validates a song name for the playlist.
func SongName(value string) error {
	if strings.TrimSpace(value) == "" {
		return errors.NewUserError("Song name cannot be empty", "Provide a song name, like 'encore playlist add \"Blue in Green\"'")
	}
	return nil
}
