package validify

import "errors"

// Validatable is implemented by record types that declare ordered rule lists
// for their fields. Validation is expected to bind the returned specs to the
// receiver's fields, so records are walked through pointers.
type Validatable interface {
	Validation() []FieldSpec
}

// SchemaValidator is the optional whole-record hook, run after field-level
// modification. It may return a single *SchemaError, a whole Errors
// collection, or any other error, which is wrapped as a schema violation.
type SchemaValidator interface {
	ValidateSchema() error
}

// recordView exposes sibling field values to rules such as MustMatch.
type recordView struct {
	fields []FieldSpec
}

func (r recordView) FieldValue(name string) (any, bool) {
	for _, f := range r.fields {
		if f.name == name && f.value != nil {
			return f.value(), true
		}
	}
	return nil, false
}

// Modify runs the modification pass: every field's modifiers in declaration
// order, in place, descending into nested records. Modifiers cannot fail.
func Modify(rec Validatable) {
	for _, f := range rec.Validation() {
		if f.modify != nil {
			f.modify()
		}
	}
}

// Validate runs the validation pass over the record as it currently is:
// every declared validator on every field is attempted, errors accumulate
// without short-circuiting, and the schema hook (when present) contributes
// last. Returns nil or the full Errors collection.
func Validate(rec Validatable) error {
	errs := validateRecord(rec)
	if errs.Empty() {
		return nil
	}
	return errs
}

// Validify applies modification and then validation, the way an inbound
// record is processed after conversion from its payload.
func Validify(rec Validatable) error {
	Modify(rec)
	return Validate(rec)
}

func validateRecord(rec Validatable) Errors {
	fields := rec.Validation()
	view := recordView{fields: fields}

	var errs Errors
	for _, f := range fields {
		if f.validate == nil {
			continue
		}
		errs.Merge(f.validate(view))
	}

	// The schema hook runs regardless of field-level failures so that both
	// kinds accumulate in the same result.
	if sv, ok := rec.(SchemaValidator); ok {
		if err := sv.ValidateSchema(); err != nil {
			errs.Merge(asSchemaResult(err))
		}
	}
	return errs
}

func asSchemaResult(err error) Errors {
	var se *SchemaError
	if errors.As(err, &se) {
		return Errors{se}
	}
	if verrs, ok := AsErrors(err); ok {
		return verrs
	}
	return Errors{NewSchemaError("schema", err.Error())}
}
