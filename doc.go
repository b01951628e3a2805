// Package validify is a declarative validation-and-modification engine for
// structured records such as deserialized web payloads. A record declares,
// per field, an ordered list of modifiers (trim, case conversion, custom
// transforms) and validators (length, range, format, membership, temporal and
// cross-field constraints); the engine produces the transformed record
// together with a structured collection of every constraint violation, each
// tagged with its location inside the record.
//
// # Architecture
//
// Each source file groups a family of rules for a specific concern
// (string_rules.go, format_rules.go, time_rules.go, and so on). Every exported
// rule function constructs and returns a typed Rule value; there is no hidden
// global state, so the package is stateless between runs and goroutine-safe
// as long as a record is not mutated concurrently with its own walk.
//
// Core building blocks:
//   - Rule[T]: typed description of one modifier or validator
//   - FieldSpec: a field name bound to its ordered rule list
//   - Errors: ordered aggregate of FieldError and SchemaError values
//   - Location: JSON-Pointer-like path tagging every field error
//
// # Declaring rules
//
// A record implements Validatable by binding its fields to rules:
//
//	type Signup struct {
//		Email    string
//		Password string
//		Confirm  string
//	}
//
//	func (s *Signup) Validation() []validify.FieldSpec {
//		return []validify.FieldSpec{
//			validify.Field("email", &s.Email,
//				validify.Trim(), validify.Lowercase(), validify.Email()),
//			validify.Field("password", &s.Password,
//				validify.Length(validify.Min(8))),
//			validify.Field("confirm", &s.Confirm,
//				validify.MustMatch[string]("password")),
//		}
//	}
//
// Modifiers run first, in declaration order, each feeding the next;
// validators then run against the resulting value and accumulate errors
// without short-circuiting. Nested validatable records declared with Nested
// and NestedSlice are walked recursively, extending error locations with the
// field name and, for sequence elements, the zero-based index.
//
// # Two-phase payloads
//
// Inbound data that may be incomplete is first carried by a loosely-typed
// payload where every required field is optional. ValidifyPayload checks
// required-field presence, converts to the target record, applies modifiers
// and runs validation in one call:
//
//	user, err := validify.ValidifyPayload(payload)
//	if err != nil {
//		errs, _ := validify.AsErrors(err)
//		// render errs as the API error response
//	}
//
// # Error handling
//
// Validation results surface as a single Errors value implementing the error
// interface; use AsErrors (or errors.As) to recover the collection and its
// field-only and schema-only views. Declaration mistakes (malformed patterns,
// malformed literal dates, negative BeforeFromNow intervals) panic at rule
// construction, because they are programmer errors rather than input errors.
package validify
