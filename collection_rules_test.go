package validify_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/validify"
)

func TestLength(t *testing.T) {
	t.Run("min and max bounds", func(t *testing.T) {
		rule := func() validify.Rule[string] {
			return validify.Length(validify.Min(2), validify.Max(5))
		}
		assert.NoError(t, validateValue("ab", rule()))
		assert.NoError(t, validateValue("abcde", rule()))
		assert.Error(t, validateValue("a", rule()))
		assert.Error(t, validateValue("abcdef", rule()))
	})

	t.Run("equal bound", func(t *testing.T) {
		assert.NoError(t, validateValue("lower me", validify.Length(validify.Equal(8))))
		assert.Error(t, validateValue("toolong string", validify.Length(validify.Equal(8))))
	})

	t.Run("equal alongside min and max is redundant but legal", func(t *testing.T) {
		rule := validify.Length(validify.Min(1), validify.Max(10), validify.Equal(4))
		assert.NoError(t, validateValue("abcd", rule))
		assert.Error(t, validateValue("abc", rule))
	})

	t.Run("failure is tagged length", func(t *testing.T) {
		err := validateValue("toolong string", validify.Length(validify.Equal(8)))
		fes := fieldErrors(err)
		require.Len(t, fes, 1)
		assert.Equal(t, validify.KindLength, fes[0].Kind)
		assert.Empty(t, fes[0].Code)
		assert.Empty(t, fes[0].Message)
	})

	t.Run("validators run after modifiers", func(t *testing.T) {
		rec := &singleField[string]{
			value: " Lower ME ",
			rules: []validify.Rule[string]{
				validify.Trim(),
				validify.Lowercase(),
				validify.Length(validify.Equal(8)),
			},
		}
		require.NoError(t, validify.Validify(rec))
		assert.Equal(t, "lower me", rec.value)
	})
}

func TestSliceAndMapLength(t *testing.T) {
	t.Run("slice element count", func(t *testing.T) {
		rule := validify.SliceLength[[]int](validify.Min(1), validify.Max(3))
		assert.NoError(t, validateValue([]int{1, 2}, rule))
		assert.Error(t, validateValue([]int{}, rule))
		assert.Error(t, validateValue([]int{1, 2, 3, 4}, rule))
	})

	t.Run("map entry count", func(t *testing.T) {
		rule := validify.MapLength[map[string]int](validify.Max(1))
		assert.NoError(t, validateValue(map[string]int{"a": 1}, rule))
		assert.Error(t, validateValue(map[string]int{"a": 1, "b": 2}, rule))
	})
}

func TestContains(t *testing.T) {
	t.Run("substring on strings", func(t *testing.T) {
		assert.NoError(t, validateValue("hello world", validify.Contains("world")))
		assert.Error(t, validateValue("hello", validify.Contains("world")))
	})

	t.Run("contains_not on strings", func(t *testing.T) {
		assert.NoError(t, validateValue("hello", validify.ContainsNot("spam")))
		assert.Error(t, validateValue("buy spam now", validify.ContainsNot("spam")))
	})

	t.Run("membership on sequences", func(t *testing.T) {
		assert.NoError(t, validateValue([]string{"a", "b"}, validify.ContainsElement[[]string]("a")))
		assert.Error(t, validateValue([]string{"a", "b"}, validify.ContainsElement[[]string]("c")))
		assert.NoError(t, validateValue([]string{"a"}, validify.ContainsNotElement[[]string]("c")))
		assert.Error(t, validateValue([]string{"c"}, validify.ContainsNotElement[[]string]("c")))
	})

	t.Run("key presence on mappings", func(t *testing.T) {
		m := map[string]int{"limit": 10}
		assert.NoError(t, validateValue(m, validify.ContainsKey[map[string]int]("limit")))
		assert.Error(t, validateValue(m, validify.ContainsKey[map[string]int]("offset")))
		assert.NoError(t, validateValue(m, validify.ContainsNotKey[map[string]int]("offset")))
		assert.Error(t, validateValue(m, validify.ContainsNotKey[map[string]int]("limit")))
	})
}

func TestEach(t *testing.T) {
	t.Run("element errors carry the index", func(t *testing.T) {
		err := validateValue([]string{"ok!", "x", "fine"},
			validify.Each(validify.Length(validify.Min(3))))

		fes := fieldErrors(err)
		require.Len(t, fes, 1)
		assert.Equal(t, "value", fes[0].Field)
		assert.Equal(t, "/value/1", fes[0].Location.String())
	})

	t.Run("a failing element does not suppress later elements", func(t *testing.T) {
		err := validateValue([]string{"x", "ok!", "y"},
			validify.Each(validify.Length(validify.Min(3))))

		fes := fieldErrors(err)
		require.Len(t, fes, 2)
		assert.Equal(t, "/value/0", fes[0].Location.String())
		assert.Equal(t, "/value/2", fes[1].Location.String())
	})

	t.Run("mixes modifiers and validators", func(t *testing.T) {
		rec := &singleField[[]string]{
			value: []string{" CAT ", " DOG "},
			rules: []validify.Rule[[]string]{
				validify.Each(validify.Trim(), validify.Lowercase(), validify.In([]string{"cat", "dog"})),
			},
		}
		require.NoError(t, validify.Validify(rec))
		assert.Equal(t, []string{"cat", "dog"}, rec.value)
	})

	t.Run("element rule overrides apply per element", func(t *testing.T) {
		err := validateValue([]string{"x"},
			validify.Each(validify.Length(validify.Min(3)).WithCode("too_short")))

		fes := fieldErrors(err)
		require.Len(t, fes, 1)
		assert.Equal(t, "too_short", fes[0].Code)
	})
}
