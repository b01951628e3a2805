package validify

import (
	"errors"
	"fmt"
	"strings"
)

// Error is a single validation error: either a FieldError attributable to one
// field of the record, or a SchemaError attributable to the record as a whole.
type Error interface {
	error
	validationError()
}

// FieldError describes a violation of one rule on one field. Kind carries the
// violating rule's tag (for example "length" or "required") unless the
// declaration overrode it with a code. Location is filled in by the walker as
// recursion unwinds; a rule only knows its own field, not its ancestry.
type FieldError struct {
	Field    string
	Kind     string
	Code     string
	Message  string
	Location Location
}

// NewFieldError creates a field error for the given field name and violation
// kind, with the location pointing at the field from the record root.
func NewFieldError(field, kind string) *FieldError {
	return &FieldError{
		Field:    field,
		Kind:     kind,
		Location: Location{}.Field(field),
	}
}

func (e *FieldError) Error() string {
	var b strings.Builder
	b.WriteString(e.Location.String())
	b.WriteString(": ")
	b.WriteString(e.Kind)
	if e.Code != "" {
		fmt.Fprintf(&b, " (%s)", e.Code)
	}
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	return b.String()
}

func (e *FieldError) validationError() {}

// SchemaError describes a whole-record violation reported by a schema
// validation hook. It carries no location.
type SchemaError struct {
	Name    string
	Message string
}

// NewSchemaError creates a schema error with a violation name and an optional
// message.
func NewSchemaError(name, message string) *SchemaError {
	return &SchemaError{Name: name, Message: message}
}

func (e *SchemaError) Error() string {
	if e.Message == "" {
		return e.Name
	}
	return e.Name + ": " + e.Message
}

func (e *SchemaError) validationError() {}

// Errors is the aggregate result of a validation run: an ordered,
// non-deduplicated collection of field and schema errors. A fresh collection
// is built per run.
type Errors []Error

func (e Errors) Error() string {
	if len(e) == 0 {
		return "validation failed"
	}

	parts := make([]string, len(e))
	for i, err := range e {
		parts[i] = err.Error()
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Add appends a single error to the collection.
func (e *Errors) Add(err Error) {
	*e = append(*e, err)
}

// Merge appends every error from another collection, preserving order.
func (e *Errors) Merge(other Errors) {
	*e = append(*e, other...)
}

func (e Errors) Len() int {
	return len(e)
}

func (e Errors) Empty() bool {
	return len(e) == 0
}

// Fail reports whether the collection represents a failed validation.
func (e Errors) Fail() bool {
	return len(e) > 0
}

// FieldErrors returns the field-level subset in insertion order.
func (e Errors) FieldErrors() []*FieldError {
	var out []*FieldError
	for _, err := range e {
		if fe, ok := err.(*FieldError); ok {
			out = append(out, fe)
		}
	}
	return out
}

// SchemaErrors returns the record-level subset in insertion order.
func (e Errors) SchemaErrors() []*SchemaError {
	var out []*SchemaError
	for _, err := range e {
		if se, ok := err.(*SchemaError); ok {
			out = append(out, se)
		}
	}
	return out
}

// Fields returns the distinct names of fields with at least one error, in
// first-occurrence order.
func (e Errors) Fields() []string {
	var fields []string
	seen := make(map[string]bool)
	for _, err := range e {
		fe, ok := err.(*FieldError)
		if !ok || seen[fe.Field] {
			continue
		}
		seen[fe.Field] = true
		fields = append(fields, fe.Field)
	}
	return fields
}

// AsErrors extracts an Errors collection from an error using errors.As.
func AsErrors(err error) (Errors, bool) {
	if err == nil {
		return nil, false
	}
	var verrs Errors
	if errors.As(err, &verrs) {
		return verrs, true
	}
	return nil, false
}
