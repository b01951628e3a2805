package validify

// Numeric constrains the range rules to Go's built-in number types.
type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Range checks that a numeric value lies within [min, max], inclusive at
// both ends.
func Range[T Numeric](min, max T) Rule[T] {
	return newRule(KindRange, func(v T) bool {
		return v >= min && v <= max
	})
}

// AtLeast checks the lower bound only, inclusive.
func AtLeast[T Numeric](min T) Rule[T] {
	return newRule(KindRange, func(v T) bool {
		return v >= min
	})
}

// AtMost checks the upper bound only, inclusive.
func AtMost[T Numeric](max T) Rule[T] {
	return newRule(KindRange, func(v T) bool {
		return v <= max
	})
}
