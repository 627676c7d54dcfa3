package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAssignments(t *testing.T) {
	t.Run("equals_form", func(t *testing.T) {
		got, err := ParseAssignments([]string{"username=neo_99", "genre=Hip-Hop"})
		require.NoError(t, err)
		assert.Equal(t, []Assignment{
			{Field: "username", Value: "neo_99"},
			{Field: "genre", Value: "Hip-Hop"},
		}, got)
	})

	t.Run("pair_form", func(t *testing.T) {
		got, err := ParseAssignments([]string{"first-name", "Ada", "email", "ada@example.com"})
		require.NoError(t, err)
		assert.Equal(t, []Assignment{
			{Field: "firstname", Value: "Ada"},
			{Field: "email", Value: "ada@example.com"},
		}, got)
	})

	t.Run("value_may_contain_equals", func(t *testing.T) {
		got, err := ParseAssignments([]string{"password=a=b"})
		require.NoError(t, err)
		assert.Equal(t, "a=b", got[0].Value)
	})

	t.Run("empty_value_allowed", func(t *testing.T) {
		got, err := ParseAssignments([]string{"genre="})
		require.NoError(t, err)
		assert.Equal(t, "", got[0].Value)
	})

	t.Run("missing_value", func(t *testing.T) {
		_, err := ParseAssignments([]string{"username"})
		assert.Error(t, err)
	})

	t.Run("missing_field", func(t *testing.T) {
		_, err := ParseAssignments([]string{"=value"})
		assert.Error(t, err)
	})
}

func TestNormalizeField(t *testing.T) {
	for _, in := range []string{"firstName", "first_name", "first-name", " FIRSTNAME "} {
		assert.Equal(t, "firstname", NormalizeField(in))
	}
}
