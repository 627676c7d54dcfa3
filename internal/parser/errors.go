package parser

import (
	"fmt"
	"strings"

	"github.com/manav03panchal/encore/internal/errors"
)

// ParseError represents an input parsing error with helpful suggestions.
type ParseError struct {
	Input      string
	Field      string
	Message    string
	Examples   []string
	Suggestion string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid %s '%s': %s", e.Field, e.Input, e.Message)
}

// Unwrap lets birth date failures match errors.ErrInvalidBirthDate.
func (e *ParseError) Unwrap() error {
	switch e.Field {
	case "birth date", "month", "day", "year":
		return errors.ErrInvalidBirthDate
	}
	return nil
}

// NewParseError creates a new parse error with examples.
func NewParseError(field, input, message string, examples ...string) *ParseError {
	return &ParseError{
		Input:    input,
		Field:    field,
		Message:  message,
		Examples: examples,
	}
}

// FormatWithExamples returns the error message with example suggestions.
func (e *ParseError) FormatWithExamples() string {
	var sb strings.Builder
	sb.WriteString(e.Error())

	if len(e.Examples) > 0 {
		sb.WriteString("\n\nValid examples:\n")
		for _, ex := range e.Examples {
			sb.WriteString("  - ")
			sb.WriteString(ex)
			sb.WriteString("\n")
		}
	}

	if e.Suggestion != "" {
		sb.WriteString("\n")
		sb.WriteString(e.Suggestion)
	}

	return sb.String()
}

// BirthDateExamples provides example birth date formats.
var BirthDateExamples = []string{
	"March 3 1999",
	"1999-03-03",
	"3 Mar 1999",
}

// MonthExamples provides example month formats.
var MonthExamples = []string{
	"03",
	"3",
	"March",
	"mar",
}

// AssignmentExamples provides example field assignments.
var AssignmentExamples = []string{
	"username=neo_99",
	"genre=Jazz",
	"email neo@example.com",
}

// NewBirthDateError creates a birth date parse error with standard examples.
func NewBirthDateError(input string) *ParseError {
	return &ParseError{
		Input:      input,
		Field:      "birth date",
		Message:    "could not parse date",
		Examples:   BirthDateExamples,
		Suggestion: "Write the date with a month name, like 'March 3 1999'.",
	}
}

// NewMonthError creates a month parse error with standard examples.
func NewMonthError(input string) *ParseError {
	return &ParseError{
		Input:      input,
		Field:      "month",
		Message:    "not a month",
		Examples:   MonthExamples,
		Suggestion: "Use a month number from 1 to 12 or a month name.",
	}
}

// NewAssignmentError creates a field assignment parse error with standard examples.
func NewAssignmentError(input string) *ParseError {
	return &ParseError{
		Input:    input,
		Field:    "assignment",
		Message:  "expected field=value",
		Examples: AssignmentExamples,
	}
}

// ToUserError converts a ParseError to a UserError for consistent handling.
func (e *ParseError) ToUserError() *errors.UserError {
	suggestion := e.Suggestion
	if len(e.Examples) > 0 && suggestion == "" {
		suggestion = fmt.Sprintf("Try: %s", strings.Join(e.Examples[:min(3, len(e.Examples))], ", "))
	}

	ue := errors.NewUserErrorWithField(e.Field, e.Input, e.Message, suggestion)
	ue.Cause = e.Unwrap()
	return ue
}
