package validify_test

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/validify"
)

func TestCustom(t *testing.T) {
	t.Run("plain error becomes a custom violation", func(t *testing.T) {
		rule := validify.Custom(func(s string) error {
			if strings.Contains(s, " ") {
				return errors.New("must not contain spaces")
			}
			return nil
		})

		require.NoError(t, validateValue("no-spaces", rule))

		err := validateValue("has spaces", rule)
		fes := fieldErrors(err)
		require.Len(t, fes, 1)
		assert.Equal(t, validify.KindCustom, fes[0].Kind)
		assert.Equal(t, "must not contain spaces", fes[0].Message)
		assert.Equal(t, "value", fes[0].Field)
		assert.Equal(t, "/value", fes[0].Location.String())
	})

	t.Run("field error keeps its own tag", func(t *testing.T) {
		rule := validify.Custom(func(s string) error {
			fe := validify.NewFieldError("ignored", "reserved_word")
			fe.Message = fmt.Sprintf("%q is reserved", s)
			return fe
		})

		err := validateValue("admin", rule)
		fes := fieldErrors(err)
		require.Len(t, fes, 1)
		assert.Equal(t, "reserved_word", fes[0].Kind)
		assert.Equal(t, `"admin" is reserved`, fes[0].Message)

		// The declaring field supplies name and location, not the callback.
		assert.Equal(t, "value", fes[0].Field)
		assert.Equal(t, "/value", fes[0].Location.String())
	})

	t.Run("can report several violations at once", func(t *testing.T) {
		rule := validify.Custom(func(s string) error {
			var errs validify.Errors
			if len(s) < 4 {
				errs.Add(validify.NewFieldError("", "too_short"))
			}
			if !strings.ContainsAny(s, "0123456789") {
				errs.Add(validify.NewFieldError("", "no_digit"))
			}
			if errs.Fail() {
				return errs
			}
			return nil
		})

		err := validateValue("ab", rule)
		fes := fieldErrors(err)
		require.Len(t, fes, 2)
		assert.Equal(t, "too_short", fes[0].Kind)
		assert.Equal(t, "no_digit", fes[1].Kind)
		for _, fe := range fes {
			assert.Equal(t, "/value", fe.Location.String())
		}
	})

	t.Run("works on non-string types", func(t *testing.T) {
		even := validify.Custom(func(n int) error {
			if n%2 != 0 {
				return errors.New("must be even")
			}
			return nil
		})

		require.NoError(t, validateValue(4, even))
		assert.Error(t, validateValue(5, even))
	})
}

func TestRuleOverrides(t *testing.T) {
	t.Run("with code and message annotate the error", func(t *testing.T) {
		rule := validify.Email().WithCode("bad_email").WithMessage("use a real address")

		err := validateValue("nope", rule)
		fes := fieldErrors(err)
		require.Len(t, fes, 1)
		assert.Equal(t, validify.KindEmail, fes[0].Kind)
		assert.Equal(t, "bad_email", fes[0].Code)
		assert.Equal(t, "use a real address", fes[0].Message)
	})

	t.Run("overrides copy instead of mutating the original", func(t *testing.T) {
		base := validify.Email()
		annotated := base.WithCode("bad_email")

		err := validateValue("nope", base)
		fes := fieldErrors(err)
		require.Len(t, fes, 1)
		assert.Empty(t, fes[0].Code)

		err = validateValue("nope", annotated)
		fes = fieldErrors(err)
		require.Len(t, fes, 1)
		assert.Equal(t, "bad_email", fes[0].Code)
	})
}
