// Package form implements the signup and profile form drafts. A draft keeps
// the values typed so far, validates each field as it changes, and caches
// itself to the key-value store so an interrupted form can be resumed.
package form

import (
	"encoding/json"
	"fmt"

	"github.com/manav03panchal/encore/internal/errors"
	"github.com/manav03panchal/encore/internal/logging"
	"github.com/manav03panchal/encore/internal/parser"
	"github.com/manav03panchal/encore/internal/storage"
	"github.com/manav03panchal/encore/internal/validate"
)

// Field describes one input of a form of type T.
type Field[T any] struct {
	// Name is the field's key in the cached draft.
	Name  string
	Label string
	// Sensitive values are masked when shown or logged.
	Sensitive bool
	// Virtual fields are computed from other fields and not listed.
	Virtual bool
	// ErrorKey groups several fields under one error. Defaults to Name.
	ErrorKey string

	Get func(*T) string
	Set func(*T, string) error
	// Validate checks the field against the whole form.
	Validate func(*T) error
}

func (f Field[T]) errorKey() string {
	if f.ErrorKey != "" {
		return f.ErrorKey
	}
	return f.Name
}

// FieldValue is a field's current state for display.
type FieldValue struct {
	Name  string `json:"name"`
	Label string `json:"label"`
	Value string `json:"value"`
	Error string `json:"error,omitempty"`
}

// Draft is an in-progress form.
type Draft[T any] struct {
	kv     storage.KV
	key    string
	name   string
	fields []Field[T]

	data T
	errs map[string]string
}

func newDraft[T any](kv storage.KV, key, name string, fields []Field[T]) *Draft[T] {
	return &Draft[T]{
		kv:     kv,
		key:    key,
		name:   name,
		fields: fields,
		errs:   make(map[string]string),
	}
}

// Name returns the form name used in logs and messages.
func (d *Draft[T]) Name() string { return d.name }

// Load restores the cached draft over empty defaults. Read and decode
// failures are logged and leave the draft empty.
func (d *Draft[T]) Load() T {
	raw, ok, err := d.kv.GetItem(d.key)
	if err != nil {
		logging.Warn("failed to load draft", logging.KeyForm, d.name, logging.KeyError, err)
		return d.data
	}
	if !ok {
		return d.data
	}

	var data T
	if err := json.Unmarshal([]byte(raw), &data); err != nil {
		logging.Warn("failed to decode draft", logging.KeyForm, d.name, logging.KeyError, err)
		return d.data
	}
	d.data = data
	return d.data
}

// Data returns the current values.
func (d *Draft[T]) Data() T { return d.data }

// Set updates a field, validates it and caches the draft. It returns the
// field's validation message, or "" when the value is valid. An error is
// returned only when the field is unknown or the value cannot be parsed, in
// which case the draft is unchanged.
func (d *Draft[T]) Set(field, value string) (string, error) {
	f, ok := d.lookup(field)
	if !ok {
		return "", &errors.UserError{
			Message: fmt.Sprintf("unknown %s field", d.name),
			Field:   "field",
			Value:   field,
			Cause:   errors.ErrUnknownField,
		}
	}

	if err := f.Set(&d.data, value); err != nil {
		var pe *parser.ParseError
		if errors.As(err, &pe) {
			return "", pe.ToUserError()
		}
		return "", err
	}

	msg := validate.Message(f.Validate(&d.data))
	d.setError(f.errorKey(), msg)
	d.save()

	logging.LogOperation("set field", logging.KeyForm, d.name, logging.KeyField, f.Name, f.Name, f.Get(&d.data))
	return msg, nil
}

// Errors returns the current field errors keyed by error key.
func (d *Draft[T]) Errors() map[string]string {
	out := make(map[string]string, len(d.errs))
	for k, v := range d.errs {
		out[k] = v
	}
	return out
}

// Validate checks every field and replaces the current errors. It returns
// nil when the form is valid.
func (d *Draft[T]) Validate() errors.FieldErrors {
	d.errs = make(map[string]string)
	for _, f := range d.fields {
		if f.Virtual {
			continue
		}
		if msg := validate.Message(f.Validate(&d.data)); msg != "" {
			d.errs[f.errorKey()] = msg
		}
	}
	if len(d.errs) == 0 {
		return nil
	}
	return errors.FieldErrors(d.Errors())
}

// Fields lists every non-virtual field with its value and error. Sensitive
// values are masked.
func (d *Draft[T]) Fields() []FieldValue {
	out := make([]FieldValue, 0, len(d.fields))
	for _, f := range d.fields {
		if f.Virtual {
			continue
		}
		v := f.Get(&d.data)
		if f.Sensitive {
			v = logging.MaskValue(v)
		}
		out = append(out, FieldValue{
			Name:  f.Name,
			Label: f.Label,
			Value: v,
			Error: d.errs[f.errorKey()],
		})
	}
	return out
}

// Sensitive reports whether field holds a secret.
func (d *Draft[T]) Sensitive(field string) bool {
	f, ok := d.lookup(field)
	return ok && f.Sensitive
}

// Label returns the display label of field, or field itself when unknown.
func (d *Draft[T]) Label(field string) string {
	if f, ok := d.lookup(field); ok {
		return f.Label
	}
	return field
}

// FieldNames returns the settable field names in form order.
func (d *Draft[T]) FieldNames() []string {
	names := make([]string, 0, len(d.fields))
	for _, f := range d.fields {
		names = append(names, f.Name)
	}
	return names
}

// Clear empties the draft and removes it from storage. Removal failures are
// logged.
func (d *Draft[T]) Clear() {
	var zero T
	d.data = zero
	d.errs = make(map[string]string)
	if err := d.kv.RemoveItem(d.key); err != nil {
		logging.Warn("failed to clear draft", logging.KeyForm, d.name, logging.KeyError, err)
	}
}

func (d *Draft[T]) lookup(field string) (Field[T], bool) {
	want := parser.NormalizeField(field)
	for _, f := range d.fields {
		if parser.NormalizeField(f.Name) == want {
			return f, true
		}
	}
	return Field[T]{}, false
}

func (d *Draft[T]) setError(key, msg string) {
	if msg == "" {
		delete(d.errs, key)
		return
	}
	d.errs[key] = msg
}

// save caches the draft. Failures are logged and the draft stays in memory.
func (d *Draft[T]) save() {
	data, err := json.Marshal(d.data)
	if err != nil {
		logging.Warn("failed to encode draft", logging.KeyForm, d.name, logging.KeyError, err)
		return
	}
	if err := d.kv.SetItem(d.key, string(data)); err != nil {
		logging.Warn("failed to cache draft", logging.KeyForm, d.name, logging.KeyError, err)
	}
}
