package validify

// FieldSpec binds one field of a record to its name, presence, and ordered
// rule list. Specs are built by the Field, Optional, Nested and NestedSlice
// constructors inside a record's Validation method; the walker never looks
// past this surface.
type FieldSpec struct {
	name     string
	value    func() any
	modify   func()
	validate func(rec Record) Errors
}

// Name returns the declared field name.
func (f FieldSpec) Name() string { return f.name }

// Field declares an always-present field. Modifiers run in declaration order,
// each feeding the next; validators run against the resulting value and
// contribute errors independently.
func Field[T any](name string, ptr *T, rules ...Rule[T]) FieldSpec {
	return FieldSpec{
		name:  name,
		value: func() any { return *ptr },
		modify: func() {
			for _, r := range rules {
				if r.modify != nil {
					r.modify(ptr)
				}
			}
		},
		validate: func(rec Record) Errors {
			return runChecks(name, *ptr, rules, rec)
		},
	}
}

// Optional declares a field whose absence is represented by a nil pointer.
// Rules are skipped while the value is absent, except Required, which fails
// exactly then.
func Optional[T any](name string, ptr **T, rules ...Rule[T]) FieldSpec {
	return FieldSpec{
		name: name,
		value: func() any {
			if *ptr == nil {
				return nil
			}
			return **ptr
		},
		modify: func() {
			if *ptr == nil {
				return
			}
			for _, r := range rules {
				if r.modify != nil {
					r.modify(*ptr)
				}
			}
		},
		validate: func(rec Record) Errors {
			if *ptr == nil {
				return absenceErrors(name, rules)
			}
			return runChecks(name, **ptr, rules, rec)
		},
	}
}

// Nested declares a field holding another validatable record. Modification
// and validation descend into the nested record's own declarations, and every
// nested error's location is extended by this field's name. A nil pointer is
// treated as an absent optional field.
func Nested[T any, P interface {
	*T
	Validatable
}](name string, rec P) FieldSpec {
	return FieldSpec{
		name: name,
		value: func() any {
			if rec == nil {
				return nil
			}
			return *rec
		},
		modify: func() {
			if rec != nil {
				Modify(rec)
			}
		},
		validate: func(_ Record) Errors {
			if rec == nil {
				return nil
			}
			errs := validateRecord(rec)
			prefixErrors(errs, fieldSegment(name))
			return errs
		},
	}
}

// NestedSlice declares a field holding a sequence of validatable records.
// Each element is descended into independently; element errors gain both the
// field name and the element's zero-based index in their location.
func NestedSlice[T any, P interface {
	*T
	Validatable
}](name string, items []T) FieldSpec {
	return FieldSpec{
		name:  name,
		value: func() any { return items },
		modify: func() {
			for i := range items {
				Modify(P(&items[i]))
			}
		},
		validate: func(_ Record) Errors {
			var out Errors
			for i := range items {
				errs := validateRecord(P(&items[i]))
				prefixErrors(errs, indexSegment(i))
				prefixErrors(errs, fieldSegment(name))
				out.Merge(errs)
			}
			return out
		},
	}
}

// runChecks evaluates every validator of a present field, finalizing each
// error with the field name, declared overrides, and the field's location
// segment.
func runChecks[T any](name string, v T, rules []Rule[T], rec Record) Errors {
	var out Errors
	for _, r := range rules {
		if r.check == nil || r.kind == KindRequired {
			continue
		}
		for _, fe := range r.check(v, rec) {
			finalize(fe, name, r.code, r.message)
			out.Add(fe)
		}
	}
	return out
}

// absenceErrors reports one required violation per Required declaration on an
// absent optional field. All other rules are silently skipped.
func absenceErrors[T any](name string, rules []Rule[T]) Errors {
	var out Errors
	for _, r := range rules {
		if r.kind != KindRequired {
			continue
		}
		fe := &FieldError{Kind: KindRequired}
		finalize(fe, name, r.code, r.message)
		out.Add(fe)
	}
	return out
}

func finalize(fe *FieldError, name, code, message string) {
	if fe.Field == "" {
		fe.Field = name
	}
	if code != "" {
		fe.Code = code
	}
	if message != "" {
		fe.Message = message
	}
	fe.Location = fe.Location.prefix(fieldSegment(name))
}

// prefixErrors pushes a path segment onto every field error bubbling up from
// a nested record. Schema errors carry no location and pass through.
func prefixErrors(errs Errors, seg segment) {
	for _, err := range errs {
		if fe, ok := err.(*FieldError); ok {
			fe.Location = fe.Location.prefix(seg)
		}
	}
}
