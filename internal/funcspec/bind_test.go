package funcspec

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/tracegraph/internal/nest"
)

// newFoo mirrors the running example: foo(x, a=1, b=2).
func newFoo(t *testing.T) *Descriptor {
	t.Helper()
	d, err := NewDescriptor("foo", []string{"x", "a", "b"}, map[string]any{"a": 1, "b": 2}, nil)
	require.NoError(t, err)
	return d
}

func TestBind(t *testing.T) {
	t.Run("defaults fill trailing positions", func(t *testing.T) {
		d := newFoo(t)
		bound, residual, err := d.Bind([]any{23}, nil)
		require.NoError(t, err)
		assert.Equal(t, nest.Tuple{23, 1, 2}, bound)
		assert.Empty(t, residual)
	})

	t.Run("keyword overrides default", func(t *testing.T) {
		d := newFoo(t)
		bound, residual, err := d.Bind([]any{23}, map[string]any{"b": 9})
		require.NoError(t, err)
		assert.Equal(t, nest.Tuple{23, 1, 9}, bound)
		assert.Empty(t, residual)
	})

	t.Run("all keyword overrides", func(t *testing.T) {
		d := newFoo(t)
		bound, residual, err := d.Bind([]any{23}, map[string]any{"a": 7, "b": 9})
		require.NoError(t, err)
		assert.Equal(t, nest.Tuple{23, 7, 9}, bound)
		assert.Empty(t, residual)
	})

	t.Run("unknown keywords pass through", func(t *testing.T) {
		d := newFoo(t)
		bound, residual, err := d.Bind([]any{23}, map[string]any{"verbose": true})
		require.NoError(t, err)
		assert.Equal(t, nest.Tuple{23, 1, 2}, bound)
		assert.Equal(t, map[string]any{"verbose": true}, residual)
	})

	t.Run("caller kwargs map is not mutated", func(t *testing.T) {
		d := newFoo(t)
		kwargs := map[string]any{"a": 7}
		_, _, err := d.Bind([]any{23}, kwargs)
		require.NoError(t, err)
		assert.Equal(t, map[string]any{"a": 7}, kwargs)
	})

	t.Run("full positional call", func(t *testing.T) {
		d := newFoo(t)
		bound, residual, err := d.Bind([]any{1, 2, 3}, nil)
		require.NoError(t, err)
		assert.Equal(t, nest.Tuple{1, 2, 3}, bound)
		assert.Empty(t, residual)
	})
}

func TestBindMissingArgument(t *testing.T) {
	d := newFoo(t)
	_, _, err := d.Bind(nil, map[string]any{"a": 7})

	var missing *MissingArgumentError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "x", missing.ArgName)
	assert.Contains(t, err.Error(), `foo() requires argument "x"`)
}

func TestBindTooManyArguments(t *testing.T) {
	d := newFoo(t)
	_, _, err := d.Bind([]any{1, 2, 3, 4}, nil)

	var tooMany *TooManyArgumentsError
	require.ErrorAs(t, err, &tooMany)
	assert.Contains(t, err.Error(), `requires 3 arguments`)
	assert.Contains(t, err.Error(), "received 4")
}

func TestBindAmbiguousDecorator(t *testing.T) {
	d := newFoo(t)

	t.Run("type value in first excess slot", func(t *testing.T) {
		_, _, err := d.Bind([]any{1, 2, 3, reflect.TypeOf(struct{}{})}, nil)
		var ambiguous *AmbiguousDecoratorError
		require.ErrorAs(t, err, &ambiguous)
		assert.Contains(t, err.Error(), "more than one decorator")
	})

	t.Run("plain value in first excess slot stays generic", func(t *testing.T) {
		_, _, err := d.Bind([]any{reflect.TypeOf(0), 2, 3, 4}, nil)
		var tooMany *TooManyArgumentsError
		require.ErrorAs(t, err, &tooMany, "only the first excess argument triggers the sharper diagnosis")
	})
}

func TestBindLengthLaw(t *testing.T) {
	// For every count of trailing keyword overrides, the bound tuple has
	// exactly one slot per declared argument and no residual declared
	// keywords.
	d, err := NewDescriptor("f", []string{"p", "q", "r", "s"},
		map[string]any{"q": 10, "r": 20, "s": 30}, nil)
	require.NoError(t, err)

	overrides := []map[string]any{
		{},
		{"s": 1},
		{"r": 1, "s": 2},
		{"q": 1, "r": 2, "s": 3},
	}
	for _, kwargs := range overrides {
		bound, residual, err := d.Bind([]any{0}, kwargs)
		require.NoError(t, err)
		assert.Len(t, bound, 4)
		for name := range kwargs {
			assert.NotContains(t, residual, name)
		}
	}
}
