package validify

import "regexp"

// Match checks the value against a precompiled pattern. Compile patterns at
// package level with regexp.MustCompile; a malformed pattern is a declaration
// error, not a validation failure.
func Match(re *regexp.Regexp) Rule[string] {
	return newRule(KindRegex, func(s string) bool {
		return re.MatchString(s)
	})
}

// MatchNot checks that the value does not match a precompiled pattern.
func MatchNot(re *regexp.Regexp) Rule[string] {
	return newRule(KindRegex, func(s string) bool {
		return !re.MatchString(s)
	})
}
