package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/tracegraph/internal/tensor"
)

func TestNew(t *testing.T) {
	g := New()
	require.NotNil(t, g)
	assert.NotEmpty(t, g.ID())
	assert.Empty(t, g.Nodes())
	assert.NotEqual(t, g.ID(), New().ID(), "each graph gets its own identity")
}

func TestAddFeed(t *testing.T) {
	g := New()
	n := g.GlobalBlock().AddFeed("x", []int{-1, 4}, tensor.Float32)

	assert.Equal(t, "x", n.Name())
	assert.Equal(t, []int{-1, 4}, n.Shape())
	assert.Equal(t, tensor.Float32, n.DType())
	assert.True(t, n.IsFeed())
	assert.False(t, n.NeedCheckFeed(), "feed validation is deferred to execution")

	got, ok := g.Node("x")
	require.True(t, ok)
	assert.Same(t, n, got)
}

func TestAddFeedNameCollision(t *testing.T) {
	g := New()
	b := g.GlobalBlock()

	first := b.AddFeed("x", []int{1}, tensor.Float32)
	second := b.AddFeed("x", []int{2}, tensor.Float32)
	third := b.AddFeed("x", []int{3}, tensor.Float32)

	assert.Equal(t, "x", first.Name())
	assert.Equal(t, "x_1", second.Name())
	assert.Equal(t, "x_2", third.Name())
	assert.Len(t, g.Feeds(), 3)
}

func TestFeedsInsertionOrder(t *testing.T) {
	g := New()
	b := g.GlobalBlock()
	b.AddFeed("b", []int{1}, tensor.Int32)
	b.AddFeed("a", []int{1}, tensor.Int32)

	feeds := g.Feeds()
	require.Len(t, feeds, 2)
	assert.Equal(t, "b", feeds[0].Name())
	assert.Equal(t, "a", feeds[1].Name())
}

func TestNodeString(t *testing.T) {
	g := New()
	n := g.GlobalBlock().AddFeed("feed_0", []int{-1, 4}, tensor.Float32)
	assert.Equal(t, `placeholder("feed_0", [-1, 4], float32)`, n.String())
}
