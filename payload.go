package validify

// Presence records whether one required field of a loosely-typed payload was
// actually supplied.
type Presence struct {
	Name    string
	Present bool
}

// Has builds the presence entry for a payload field represented as a pointer.
func Has[T any](name string, ptr *T) Presence {
	return Presence{Name: name, Present: ptr != nil}
}

// Payload is the loosely-typed counterpart of a record type T: every field
// that is non-optional on T is optional on the payload, so deserialization of
// incomplete input succeeds and completeness is checked here instead.
type Payload[T any] interface {
	// Presence lists the target record's required fields in declaration
	// order, with whether each was supplied.
	Presence() []Presence

	// Convert builds the fully-typed record. It is only called once every
	// required field is known to be present.
	Convert() T
}

// ValidifyPayload runs the two-phase lifecycle: the required-field pre-check
// over the loosely-typed payload, conversion to the target record, the
// modification pass, and the validation pass. The pre-check is the one
// fail-fast point: when any required field is absent the result carries
// exactly one required error per absent field and nothing else runs.
// On success the returned record is the modified instance.
func ValidifyPayload[T any, P interface {
	*T
	Validatable
}](payload Payload[T]) (T, error) {
	var zero T

	var missing Errors
	for _, p := range payload.Presence() {
		if !p.Present {
			missing.Add(NewFieldError(p.Name, KindRequired))
		}
	}
	if missing.Fail() {
		return zero, missing
	}

	rec := payload.Convert()
	if err := Validify(P(&rec)); err != nil {
		return zero, err
	}
	return rec, nil
}
