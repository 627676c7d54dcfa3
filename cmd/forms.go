package cmd

import (
	"strings"

	"github.com/manav03panchal/encore/internal/errors"
	"github.com/manav03panchal/encore/internal/form"
	"github.com/manav03panchal/encore/internal/logging"
	"github.com/manav03panchal/encore/internal/parser"
)

// fieldResult is the outcome of setting one field.
type fieldResult struct {
	Label   string
	Message string
}

// setFields applies field assignments to a draft. A single bare field name
// prompts for its value, hidden for sensitive fields.
func setFields[T any](d *form.Draft[T], args []string) ([]fieldResult, error) {
	assignments, err := assignmentsFor(d, args)
	if err != nil {
		return nil, err
	}

	results := make([]fieldResult, 0, len(assignments))
	values := make(map[string]string, len(assignments))
	for _, a := range assignments {
		msg, err := d.Set(a.Field, a.Value)
		if err != nil {
			return results, err
		}
		values[a.Field] = a.Value
		results = append(results, fieldResult{Label: d.Label(a.Field), Message: msg})
	}
	ctx.Log.Debug("form fields set", logging.KeyForm, d.Name(), "fields", logging.MaskMap(values))
	return results, nil
}

func assignmentsFor[T any](d *form.Draft[T], args []string) ([]parser.Assignment, error) {
	if len(args) != 1 || strings.Contains(args[0], "=") {
		assignments, err := parser.ParseAssignments(args)
		var pe *parser.ParseError
		if errors.As(err, &pe) {
			return nil, pe.ToUserError()
		}
		return assignments, err
	}

	field := args[0]
	var (
		value string
		err   error
	)
	if d.Sensitive(field) {
		value, err = readSecret(d.Label(field))
	} else {
		value, err = readValue(d.Label(field))
	}
	if err != nil {
		return nil, err
	}
	return []parser.Assignment{{Field: parser.NormalizeField(field), Value: value}}, nil
}

// printFieldResults reports each field set, or the form when JSON is
// selected.
func printFieldResults[T any](d *form.Draft[T], results []fieldResult) error {
	if ctx.IsJSON() {
		return ctx.JSONFormatter().PrintForm(d.Name(), d.Fields(), d.Errors())
	}

	cli := ctx.CLIFormatter()
	for _, r := range results {
		if r.Message != "" {
			cli.Warning(r.Label + ": " + r.Message)
			continue
		}
		cli.Success(r.Label + " saved")
	}
	return nil
}

// clearDraft empties a draft and reports it.
func clearDraft[T any](d *form.Draft[T], title string) error {
	d.Clear()
	if ctx.IsJSON() {
		return ctx.JSONFormatter().PrintAction("cleared", title+" cleared")
	}
	ctx.CLIFormatter().Success(title + " cleared")
	return nil
}
