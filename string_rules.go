package validify

import (
	"strings"
	"unicode"
)

// String modifiers. Each one rewrites the field's value in place and feeds
// the next modifier in the declaration order; none of them can fail. Applied
// to a sequence field through Each, they rewrite every element.

// Trim removes leading and trailing whitespace.
func Trim() Rule[string] {
	return newModifier(KindTrim, func(s *string) {
		*s = strings.TrimSpace(*s)
	})
}

// Uppercase converts the value to uppercase.
func Uppercase() Rule[string] {
	return newModifier(KindUppercase, func(s *string) {
		*s = strings.ToUpper(*s)
	})
}

// Lowercase converts the value to lowercase.
func Lowercase() Rule[string] {
	return newModifier(KindLowercase, func(s *string) {
		*s = strings.ToLower(*s)
	})
}

// Capitalize uppercases the first character only, leaving the remainder
// untouched. Empty strings pass through unchanged.
func Capitalize() Rule[string] {
	return newModifier(KindCapitalize, func(s *string) {
		runes := []rune(*s)
		if len(runes) == 0 {
			return
		}
		runes[0] = unicode.ToUpper(runes[0])
		*s = string(runes)
	})
}
