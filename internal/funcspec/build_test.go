package funcspec

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/tracegraph/internal/graph"
	"github.com/vk/tracegraph/internal/nest"
	"github.com/vk/tracegraph/internal/spec"
	"github.com/vk/tracegraph/internal/tensor"
)

func TestBuildInputs(t *testing.T) {
	d, err := NewDescriptor("f", []string{"x"}, nil, nil)
	require.NoError(t, err)

	t.Run("unnamed descriptor gets positional feed name", func(t *testing.T) {
		g := graph.New()
		resolved := []any{spec.New(tensor.Float32, []int{-1, 4})}

		built, err := d.BuildInputs(context.Background(), resolved, g)
		require.NoError(t, err)

		list, ok := built.([]any)
		require.True(t, ok)
		node, ok := list[0].(*graph.Node)
		require.True(t, ok)
		assert.Equal(t, "feed_0", node.Name())
		assert.Equal(t, []int{-1, 4}, node.Shape())
		assert.Equal(t, tensor.Float32, node.DType())
		assert.True(t, node.IsFeed())
		assert.False(t, node.NeedCheckFeed())
	})

	t.Run("named descriptor keeps its name", func(t *testing.T) {
		g := graph.New()
		resolved := []any{spec.New(tensor.Int64, []int{2}).Named("ids")}

		built, err := d.BuildInputs(context.Background(), resolved, g)
		require.NoError(t, err)

		node := built.([]any)[0].(*graph.Node)
		assert.Equal(t, "ids", node.Name())
	})

	t.Run("constants pass through and create no nodes", func(t *testing.T) {
		g := graph.New()
		resolved := nest.Tuple{spec.New(tensor.Float32, []int{1}), "adam", 5}

		built, err := d.BuildInputs(context.Background(), resolved, g)
		require.NoError(t, err)

		tup := built.(nest.Tuple)
		assert.IsType(t, &graph.Node{}, tup[0])
		assert.Equal(t, "adam", tup[1])
		assert.Equal(t, 5, tup[2])
		assert.Len(t, g.Feeds(), 1)
	})

	t.Run("generated names use flat positions", func(t *testing.T) {
		g := graph.New()
		resolved := []any{
			spec.New(tensor.Float32, []int{1}),
			"skip",
			map[string]any{"k": spec.New(tensor.Float32, []int{1})},
		}

		_, err := d.BuildInputs(context.Background(), resolved, g)
		require.NoError(t, err)

		feeds := g.Feeds()
		require.Len(t, feeds, 2)
		assert.Equal(t, "feed_0", feeds[0].Name())
		assert.Equal(t, "feed_2", feeds[1].Name(), "the constant still occupies flat position 1")
	})

	t.Run("nested shape is preserved", func(t *testing.T) {
		g := graph.New()
		resolved := nest.Tuple{
			[]any{spec.New(tensor.Float32, []int{1}), spec.New(tensor.Float64, []int{2})},
			map[string]any{"c": 3},
		}

		built, err := d.BuildInputs(context.Background(), resolved, g)
		require.NoError(t, err)

		tup, ok := built.(nest.Tuple)
		require.True(t, ok)
		inner, ok := tup[0].([]any)
		require.True(t, ok)
		assert.Len(t, inner, 2)
		m, ok := tup[1].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, 3, m["c"])
	})

	t.Run("target graph overrides ambient graph", func(t *testing.T) {
		ambient := graph.New()
		target := graph.New()
		ctx := graph.WithActive(context.Background(), ambient)

		_, err := d.BuildInputs(ctx, []any{spec.New(tensor.Float32, []int{1})}, target)
		require.NoError(t, err)

		assert.Len(t, target.Feeds(), 1)
		assert.Empty(t, ambient.Feeds(), "construction must be redirected to the target graph")
	})
}
