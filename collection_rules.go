package validify

import "strings"

// LengthOption is a typed bound parameter for the length rules. Min, Max and
// Equal are freely combinable; declaring Equal alongside Min/Max is redundant
// but not an error.
type LengthOption func(*lengthBounds)

type lengthBounds struct {
	min, max, equal          int
	hasMin, hasMax, hasEqual bool
}

func Min(n int) LengthOption {
	return func(b *lengthBounds) { b.min, b.hasMin = n, true }
}

func Max(n int) LengthOption {
	return func(b *lengthBounds) { b.max, b.hasMax = n, true }
}

func Equal(n int) LengthOption {
	return func(b *lengthBounds) { b.equal, b.hasEqual = n, true }
}

func resolveBounds(opts []LengthOption) lengthBounds {
	var b lengthBounds
	for _, opt := range opts {
		opt(&b)
	}
	return b
}

func (b lengthBounds) ok(n int) bool {
	if b.hasEqual && n != b.equal {
		return false
	}
	if b.hasMin && n < b.min {
		return false
	}
	if b.hasMax && n > b.max {
		return false
	}
	return true
}

// Length checks a string's length against the declared bounds.
func Length(opts ...LengthOption) Rule[string] {
	b := resolveBounds(opts)
	return newRule(KindLength, func(s string) bool {
		return b.ok(len(s))
	})
}

// SliceLength checks the number of elements of a sequence field.
func SliceLength[S ~[]E, E any](opts ...LengthOption) Rule[S] {
	b := resolveBounds(opts)
	return newRule(KindLength, func(s S) bool {
		return b.ok(len(s))
	})
}

// MapLength checks the number of entries of a mapping field.
func MapLength[M ~map[K]V, K comparable, V any](opts ...LengthOption) Rule[M] {
	b := resolveBounds(opts)
	return newRule(KindLength, func(m M) bool {
		return b.ok(len(m))
	})
}

// Contains checks that a string contains the given substring.
func Contains(sub string) Rule[string] {
	return newRule(KindContains, func(s string) bool {
		return strings.Contains(s, sub)
	})
}

// ContainsNot checks that a string does not contain the given substring.
func ContainsNot(sub string) Rule[string] {
	return newRule(KindContainsNot, func(s string) bool {
		return !strings.Contains(s, sub)
	})
}

// ContainsElement checks sequence membership by equality.
func ContainsElement[S ~[]E, E comparable](elem E) Rule[S] {
	return newRule(KindContains, func(s S) bool {
		for _, e := range s {
			if e == elem {
				return true
			}
		}
		return false
	})
}

// ContainsNotElement checks that no element of a sequence equals the given
// value.
func ContainsNotElement[S ~[]E, E comparable](elem E) Rule[S] {
	return newRule(KindContainsNot, func(s S) bool {
		for _, e := range s {
			if e == elem {
				return false
			}
		}
		return true
	})
}

// ContainsKey checks key presence on a mapping field.
func ContainsKey[M ~map[K]V, K comparable, V any](key K) Rule[M] {
	return newRule(KindContains, func(m M) bool {
		_, ok := m[key]
		return ok
	})
}

// ContainsNotKey checks key absence on a mapping field.
func ContainsNotKey[M ~map[K]V, K comparable, V any](key K) Rule[M] {
	return newRule(KindContainsNot, func(m M) bool {
		_, ok := m[key]
		return !ok
	})
}

// Each applies the given element rules to every element of a sequence field.
// Modifiers rewrite elements in place; validator errors gain the element's
// zero-based index in their location. A failing element never suppresses
// evaluation of the others.
func Each[T any](rules ...Rule[T]) Rule[[]T] {
	return Rule[[]T]{
		kind: "each",
		modify: func(vs *[]T) {
			for i := range *vs {
				for _, r := range rules {
					if r.modify != nil {
						r.modify(&(*vs)[i])
					}
				}
			}
		},
		check: func(vs []T, rec Record) []*FieldError {
			var out []*FieldError
			for i, v := range vs {
				for _, r := range rules {
					if r.check == nil || r.kind == KindRequired {
						continue
					}
					for _, fe := range r.check(v, rec) {
						if r.code != "" {
							fe.Code = r.code
						}
						if r.message != "" {
							fe.Message = r.message
						}
						fe.Location = fe.Location.prefix(indexSegment(i))
						out = append(out, fe)
					}
				}
			}
			return out
		},
	}
}
