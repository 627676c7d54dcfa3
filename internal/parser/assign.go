package parser

import (
	"strings"
)

// Assignment is a single field=value pair from the command line.
type Assignment struct {
	Field string
	Value string
}

// ParseAssignments parses command arguments into field assignments. Each
// argument may be "field=value", or a bare field name followed by its value
// as the next argument. Field names are lowercased and dashes and
// underscores are dropped, so "first-name", "first_name" and "firstName"
// all name the same field.
func ParseAssignments(args []string) ([]Assignment, error) {
	var out []Assignment

	for i := 0; i < len(args); i++ {
		arg := args[i]
		if field, value, ok := strings.Cut(arg, "="); ok {
			field = NormalizeField(field)
			if field == "" {
				return nil, NewAssignmentError(arg)
			}
			out = append(out, Assignment{Field: field, Value: value})
			continue
		}

		field := NormalizeField(arg)
		if field == "" || i+1 >= len(args) {
			return nil, NewAssignmentError(arg)
		}
		out = append(out, Assignment{Field: field, Value: args[i+1]})
		i++
	}

	return out, nil
}

// NormalizeField canonicalizes a field name for lookup.
func NormalizeField(field string) string {
	field = strings.ToLower(strings.TrimSpace(field))
	return strings.NewReplacer("-", "", "_", "", " ", "").Replace(field)
}
