package validify

import "errors"

// Violation kinds of the built-in rule catalog. A failing rule tags its error
// with its kind unless the declaration supplied an explicit code.
const (
	KindRequired       = "required"
	KindLength         = "length"
	KindRange          = "range"
	KindEmail          = "email"
	KindURL            = "url"
	KindPhone          = "phone"
	KindNonControlChar = "non_control_char"
	KindCreditCard     = "credit_card"
	KindIP             = "ip"
	KindUUID           = "uuid"
	KindMustMatch      = "must_match"
	KindContains       = "contains"
	KindContainsNot    = "contains_not"
	KindIn             = "is_in"
	KindNotIn          = "not_in"
	KindRegex          = "regex"
	KindCustom         = "custom"

	KindTrim       = "trim"
	KindUppercase  = "uppercase"
	KindLowercase  = "lowercase"
	KindCapitalize = "capitalize"

	KindBefore        = "before"
	KindAfter         = "after"
	KindBeforeNow     = "before_now"
	KindAfterNow      = "after_now"
	KindBeforeFromNow = "before_from_now"
	KindAfterFromNow  = "after_from_now"
	KindInPeriod      = "in_period"
)

// Record gives a validator read access to sibling field values while the
// walker processes a record. Absent optional siblings read as a nil value.
type Record interface {
	FieldValue(name string) (any, bool)
}

// Rule describes one modification or one validation of a field holding a T.
// Rules are pure descriptions built by the catalog constructors; a rule only
// ever evaluates against a present value, except Required which the field
// descriptor applies on absence.
type Rule[T any] struct {
	kind    string
	code    string
	message string
	modify  func(*T)
	check   func(T, Record) []*FieldError
}

// WithCode returns a copy of the rule whose failures carry the given machine
// code instead of the default violation tag alone.
func (r Rule[T]) WithCode(code string) Rule[T] {
	r.code = code
	return r
}

// WithMessage returns a copy of the rule whose failures carry the given
// human-readable message.
func (r Rule[T]) WithMessage(message string) Rule[T] {
	r.message = message
	return r
}

// newRule builds a validator that fails with a single error of the rule's
// kind when check returns false.
func newRule[T any](kind string, check func(T) bool) Rule[T] {
	return Rule[T]{
		kind: kind,
		check: func(v T, _ Record) []*FieldError {
			if check(v) {
				return nil
			}
			return []*FieldError{{Kind: kind}}
		},
	}
}

func newModifier[T any](kind string, fn func(*T)) Rule[T] {
	return Rule[T]{kind: kind, modify: fn}
}

// ModifyWith wraps a user-supplied function mutating the field's value in
// place. Custom modifiers cannot fail.
func ModifyWith[T any](fn func(*T)) Rule[T] {
	return newModifier(KindCustom, fn)
}

// Custom wraps a user-supplied validator. The function may report a single
// *FieldError, a whole Errors collection for multi-violation validators, or
// any other error which is wrapped under the custom kind. The walker supplies
// field name and location; whatever location a returned error carries is
// discarded.
func Custom[T any](fn func(T) error) Rule[T] {
	return Rule[T]{
		kind: KindCustom,
		check: func(v T, _ Record) []*FieldError {
			err := fn(v)
			if err == nil {
				return nil
			}

			var fes []*FieldError
			var fe *FieldError
			if errors.As(err, &fe) {
				fes = []*FieldError{fe}
			} else if verrs, ok := AsErrors(err); ok {
				fes = verrs.FieldErrors()
			} else {
				fes = []*FieldError{{Kind: KindCustom, Message: err.Error()}}
			}
			for _, fe := range fes {
				fe.Field = ""
				fe.Location = Location{}
			}
			return fes
		},
	}
}

// Required fails when an optional field is absent. It is the only rule that
// runs on absence; on present values it always passes. Declaring it on a
// non-optional field is a no-op.
func Required[T any]() Rule[T] {
	return Rule[T]{kind: KindRequired}
}
