package nest

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/tracegraph/internal/tensor"
)

func TestFlatten(t *testing.T) {
	t.Run("leaf flattens to itself", func(t *testing.T) {
		assert.Equal(t, []any{42}, Flatten(42))
	})

	t.Run("nested sequences flatten depth-first", func(t *testing.T) {
		tree := []any{1, Tuple{2, []any{3, 4}}, 5}
		assert.Equal(t, []any{1, 2, 3, 4, 5}, Flatten(tree))
	})

	t.Run("mappings flatten in sorted key order", func(t *testing.T) {
		tree := map[string]any{"b": 2, "a": 1, "c": []any{3, 4}}
		assert.Equal(t, []any{1, 2, 3, 4}, Flatten(tree))
	})

	t.Run("nil leaf is preserved", func(t *testing.T) {
		assert.Equal(t, []any{nil}, Flatten(nil))
	})
}

func TestPack(t *testing.T) {
	t.Run("round trip restores the tree", func(t *testing.T) {
		trees := []any{
			7,
			[]any{1, 2, 3},
			Tuple{1, []any{"x", "y"}, map[string]any{"k": 3.5}},
			map[string]any{"a": Tuple{1, 2}, "b": []any{map[string]any{"n": nil}}},
		}
		for _, tree := range trees {
			packed, err := Pack(tree, Flatten(tree))
			require.NoError(t, err)
			if diff := cmp.Diff(tree, packed); diff != "" {
				t.Errorf("round trip mismatch (-want +got):\n%s", diff)
			}
		}
	})

	t.Run("container types survive packing", func(t *testing.T) {
		packed, err := Pack(Tuple{1, []any{2}}, []any{"a", "b"})
		require.NoError(t, err)
		tup, ok := packed.(Tuple)
		require.True(t, ok, "tuple template must pack to Tuple")
		_, ok = tup[1].([]any)
		assert.True(t, ok, "list element must stay a list")
	})

	t.Run("too few values", func(t *testing.T) {
		_, err := Pack([]any{1, 2}, []any{9})
		assert.ErrorContains(t, err, "ran out of values")
	})

	t.Run("too many values", func(t *testing.T) {
		_, err := Pack([]any{1}, []any{9, 10})
		assert.ErrorContains(t, err, "received 2 values")
	})
}

func TestKindOf(t *testing.T) {
	arr, err := tensor.NewArray(tensor.Float32, []int{2}, []float32{1, 2})
	require.NoError(t, err)

	cases := []struct {
		name  string
		value any
		want  Kind
	}{
		{"list", []any{1}, KindSequence},
		{"tuple", Tuple{1}, KindSequence},
		{"mapping", map[string]any{"a": 1}, KindMapping},
		{"array", arr, KindArray},
		{"tensor", tensor.NewTensor("w", tensor.Float64, []int{3}), KindTensor},
		{"int", 3, KindConstant},
		{"string", "hi", KindConstant},
		{"nil", nil, KindConstant},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, KindOf(tc.value))
		})
	}
}

func TestIsTensorLike(t *testing.T) {
	arr, err := tensor.NewArray(tensor.Int64, []int{1}, []int64{5})
	require.NoError(t, err)

	assert.True(t, IsTensorLike(arr))
	assert.True(t, IsTensorLike(tensor.NewTensor("t", tensor.Bool, nil)))
	assert.False(t, IsTensorLike(5))
	assert.False(t, IsTensorLike([]any{arr}), "containers are not tensor-like, their leaves are")
}
