package validify_test

import (
	"github.com/dmitrymomot/validify"
)

// singleField wraps one value in a minimal validatable record so individual
// rules can be exercised through the public walker surface.
type singleField[T any] struct {
	value T
	rules []validify.Rule[T]
}

func (s *singleField[T]) Validation() []validify.FieldSpec {
	return []validify.FieldSpec{
		validify.Field("value", &s.value, s.rules...),
	}
}

func validateValue[T any](v T, rules ...validify.Rule[T]) error {
	rec := &singleField[T]{value: v, rules: rules}
	return validify.Validate(rec)
}

func modifyValue[T any](v T, rules ...validify.Rule[T]) T {
	rec := &singleField[T]{value: v, rules: rules}
	validify.Modify(rec)
	return rec.value
}

// fieldErrors unwraps the field-level errors of a validation result; nil
// input yields nil.
func fieldErrors(err error) []*validify.FieldError {
	errs, ok := validify.AsErrors(err)
	if !ok {
		return nil
	}
	return errs.FieldErrors()
}
