package validify

import (
	"fmt"
	"time"
)

// TimeOption adjusts a temporal rule's boundary handling or clock.
type TimeOption func(*timeOpts)

type timeOpts struct {
	inclusive    bool
	hasInclusive bool
	now          func() time.Time
}

// Inclusive makes the rule's boundary comparisons accept equality.
func Inclusive() TimeOption {
	return func(o *timeOpts) { o.inclusive, o.hasInclusive = true, true }
}

// Exclusive makes the rule's boundary comparisons reject equality.
func Exclusive() TimeOption {
	return func(o *timeOpts) { o.inclusive, o.hasInclusive = false, true }
}

// WithNow overrides the clock the rule evaluates against. The default is
// time.Now, read at evaluation time, not at declaration time.
func WithNow(now func() time.Time) TimeOption {
	return func(o *timeOpts) { o.now = now }
}

// resolveTimeOpts applies options over the operator's default inclusiveness:
// the FromNow operators default to inclusive, the rest to exclusive.
func resolveTimeOpts(inclusiveDefault bool, opts []TimeOption) timeOpts {
	o := timeOpts{inclusive: inclusiveDefault, now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func beforeTarget(v, target time.Time, inclusive bool) bool {
	if inclusive {
		return !v.After(target)
	}
	return v.Before(target)
}

func afterTarget(v, target time.Time, inclusive bool) bool {
	if inclusive {
		return !v.Before(target)
	}
	return v.After(target)
}

// Before checks that the value precedes the target instant. Exclusive by
// default.
func Before(target time.Time, opts ...TimeOption) Rule[time.Time] {
	o := resolveTimeOpts(false, opts)
	return newRule(KindBefore, func(v time.Time) bool {
		return beforeTarget(v, target, o.inclusive)
	})
}

// After checks that the value follows the target instant. Exclusive by
// default.
func After(target time.Time, opts ...TimeOption) Rule[time.Time] {
	o := resolveTimeOpts(false, opts)
	return newRule(KindAfter, func(v time.Time) bool {
		return afterTarget(v, target, o.inclusive)
	})
}

// BeforeNow checks that the value precedes the evaluation-time clock.
func BeforeNow(opts ...TimeOption) Rule[time.Time] {
	o := resolveTimeOpts(false, opts)
	return newRule(KindBeforeNow, func(v time.Time) bool {
		return beforeTarget(v, o.now(), o.inclusive)
	})
}

// AfterNow checks that the value follows the evaluation-time clock.
func AfterNow(opts ...TimeOption) Rule[time.Time] {
	o := resolveTimeOpts(false, opts)
	return newRule(KindAfterNow, func(v time.Time) bool {
		return afterTarget(v, o.now(), o.inclusive)
	})
}

// BeforeFromNow checks that the value precedes now+interval. Inclusive by
// default. A negative interval is a declaration error and panics.
func BeforeFromNow(interval time.Duration, opts ...TimeOption) Rule[time.Time] {
	if interval < 0 {
		panic(fmt.Sprintf("validify: BeforeFromNow declared with negative interval %s", interval))
	}
	o := resolveTimeOpts(true, opts)
	return newRule(KindBeforeFromNow, func(v time.Time) bool {
		return beforeTarget(v, o.now().Add(interval), o.inclusive)
	})
}

// AfterFromNow checks that the value follows now-interval. Inclusive by
// default. A negative interval is a declaration error and panics.
func AfterFromNow(interval time.Duration, opts ...TimeOption) Rule[time.Time] {
	if interval < 0 {
		panic(fmt.Sprintf("validify: AfterFromNow declared with negative interval %s", interval))
	}
	o := resolveTimeOpts(true, opts)
	return newRule(KindAfterFromNow, func(v time.Time) bool {
		return afterTarget(v, o.now().Add(-interval), o.inclusive)
	})
}

// InPeriod checks that the value falls within [now-interval, now+interval],
// inclusive at both ends. A negative interval is tolerated: the two computed
// bounds are reordered so the window stays valid.
func InPeriod(interval time.Duration, opts ...TimeOption) Rule[time.Time] {
	o := resolveTimeOpts(true, opts)
	return newRule(KindInPeriod, func(v time.Time) bool {
		now := o.now()
		lo := now.Add(-interval)
		hi := now.Add(interval)
		if hi.Before(lo) {
			lo, hi = hi, lo
		}
		return afterTarget(v, lo, o.inclusive) && beforeTarget(v, hi, o.inclusive)
	})
}

// MustParseTime parses a literal date/time declaration in the given layout
// and panics when it is malformed, the same way regexp.MustCompile treats a
// bad pattern. Intended for package-level rule declarations.
func MustParseTime(layout, value string) time.Time {
	t, err := time.Parse(layout, value)
	if err != nil {
		panic(fmt.Sprintf("validify: MustParseTime(%q, %q): %v", layout, value, err))
	}
	return t
}
