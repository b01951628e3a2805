package validify

// In checks membership by equality against a declared collection of allowed
// values, typically a package-level constant slice.
func In[T comparable](allowed []T) Rule[T] {
	return newRule(KindIn, func(v T) bool {
		for _, a := range allowed {
			if v == a {
				return true
			}
		}
		return false
	})
}

// NotIn checks that the value equals none of the declared forbidden values.
func NotIn[T comparable](forbidden []T) Rule[T] {
	return newRule(KindNotIn, func(v T) bool {
		for _, f := range forbidden {
			if v == f {
				return false
			}
		}
		return true
	})
}

// MustMatch checks that the field equals the named sibling field. The walker
// supplies the sibling's value through the record view; a missing sibling or
// a sibling of a different type fails the rule.
func MustMatch[T comparable](sibling string) Rule[T] {
	return Rule[T]{
		kind: KindMustMatch,
		check: func(v T, rec Record) []*FieldError {
			if rec != nil {
				if other, ok := rec.FieldValue(sibling); ok {
					if ov, ok := other.(T); ok && ov == v {
						return nil
					}
				}
			}
			return []*FieldError{{Kind: KindMustMatch}}
		},
	}
}
