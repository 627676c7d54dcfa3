package parser

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/manav03panchal/encore/internal/errors"
)

func TestParseErrorError(t *testing.T) {
	err := &ParseError{
		Input:   "someday",
		Field:   "birth date",
		Message: "could not parse date",
	}
	result := err.Error()
	assert.Contains(t, result, "invalid birth date")
	assert.Contains(t, result, "someday")
	assert.Contains(t, result, "could not parse date")
}

func TestNewParseError(t *testing.T) {
	err := NewParseError("month", "xyz", "not a month", "03", "March")
	assert.Equal(t, "month", err.Field)
	assert.Equal(t, "xyz", err.Input)
	assert.Equal(t, "not a month", err.Message)
	assert.Len(t, err.Examples, 2)
	assert.Equal(t, "03", err.Examples[0])
}

func TestFormatWithExamples(t *testing.T) {
	t.Run("with_examples", func(t *testing.T) {
		result := NewBirthDateError("someday").FormatWithExamples()
		assert.Contains(t, result, "invalid birth date")
		assert.Contains(t, result, "Valid examples:")
		assert.Contains(t, result, "March 3 1999")
		assert.Contains(t, result, "1999-03-03")
	})

	t.Run("with_suggestion", func(t *testing.T) {
		result := NewMonthError("13").FormatWithExamples()
		assert.Contains(t, result, "Use a month number from 1 to 12")
	})

	t.Run("no_examples_no_suggestion", func(t *testing.T) {
		err := &ParseError{Input: "x", Field: "day", Message: "bad"}
		assert.Equal(t, err.Error(), err.FormatWithExamples())
	})
}

func TestParseErrorUnwrap(t *testing.T) {
	assert.True(t, stderrors.Is(NewBirthDateError("x"), errors.ErrInvalidBirthDate))
	assert.True(t, stderrors.Is(NewMonthError("x"), errors.ErrInvalidBirthDate))
	assert.False(t, stderrors.Is(NewAssignmentError("x"), errors.ErrInvalidBirthDate))
}

func TestToUserError(t *testing.T) {
	t.Run("uses_suggestion", func(t *testing.T) {
		ue := NewBirthDateError("someday").ToUserError()
		assert.Equal(t, "birth date", ue.Field)
		assert.Equal(t, "someday", ue.Value)
		assert.Contains(t, ue.Suggestion, "March 3 1999")
		assert.True(t, stderrors.Is(ue, errors.ErrInvalidBirthDate))
	})

	t.Run("falls_back_to_examples", func(t *testing.T) {
		ue := NewAssignmentError("oops").ToUserError()
		assert.Equal(t, "Try: username=neo_99, genre=Jazz, email neo@example.com", ue.Suggestion)
	})
}
