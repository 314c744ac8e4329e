package stepper

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRequireValue(t *testing.T) {
	v := RequireValue("enter a name")
	w := newFakeWidget("name", 10, 1)

	t.Run("empty required", func(t *testing.T) {
		r := v.Validate(w, false)
		require.Equal(t, Invalid, r.Kind())
		require.Equal(t, "enter a name", r.Message())
		require.False(t, r.IsValid())
	})

	t.Run("blank optional", func(t *testing.T) {
		w.value = "   "
		require.Equal(t, ValidIncomplete, v.Validate(w, true).Kind())
	})

	t.Run("filled", func(t *testing.T) {
		w.value = "acme"
		require.Equal(t, ValidComplete, v.Validate(w, false).Kind())
	})

	t.Run("content without value", func(t *testing.T) {
		btn := NewButton("b", "ok", testCommon())
		require.Equal(t, ValidComplete, v.Validate(btn, false).Kind())
	})
}

func TestChain(t *testing.T) {
	calls := 0
	counting := ValidatorFunc(func(Widget, bool) Result {
		calls++
		return ValidCompleteResult
	})
	w := newFakeWidget("c", 1, 1)

	require.Equal(t, ValidComplete, Chain(counting, AlwaysValid{}).Validate(w, false).Kind())
	require.Equal(t, 1, calls)

	r := Chain(RequireValue("missing"), counting).Validate(w, false)
	require.Equal(t, "missing", r.Message())
	require.Equal(t, 1, calls, "chain stops at the first non-complete result")

	require.Equal(t, ValidComplete, Chain().Validate(w, false).Kind())
}

func TestResultKindString(t *testing.T) {
	require.Equal(t, "invalid", Invalid.String())
	require.Equal(t, "valid-incomplete", ValidIncomplete.String())
	require.Equal(t, "valid-complete", ValidComplete.String())
}
