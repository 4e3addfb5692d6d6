package graph

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/tracegraph/internal/tensor"
)

func TestActiveAbsent(t *testing.T) {
	_, ok := Active(context.Background())
	assert.False(t, ok)

	_, err := ActiveBlock(context.Background())
	assert.ErrorIs(t, err, ErrNoActiveGraph)
}

func TestWithActiveNesting(t *testing.T) {
	outer := New()
	inner := New()

	ctx := WithActive(context.Background(), outer)
	got, ok := Active(ctx)
	require.True(t, ok)
	assert.Same(t, outer, got)

	// Entering a nested scope redirects construction; the outer context is
	// untouched, so the previous target is restored simply by returning.
	nested := WithActive(ctx, inner)
	got, ok = Active(nested)
	require.True(t, ok)
	assert.Same(t, inner, got)

	got, ok = Active(ctx)
	require.True(t, ok)
	assert.Same(t, outer, got, "outer scope must survive nested switches")
}

func TestActiveIsolationAcrossGoroutines(t *testing.T) {
	// Two tracers with separate contexts must not contaminate each other's
	// graphs.
	g1 := New()
	g2 := New()

	var wg sync.WaitGroup
	build := func(g *Graph, name string) {
		defer wg.Done()
		ctx := WithActive(context.Background(), g)
		block, err := ActiveBlock(ctx)
		require.NoError(t, err)
		for i := 0; i < 50; i++ {
			block.AddFeed(name, []int{1}, tensor.Float32)
		}
	}

	wg.Add(2)
	go build(g1, "a")
	go build(g2, "b")
	wg.Wait()

	assert.Len(t, g1.Feeds(), 50)
	assert.Len(t, g2.Feeds(), 50)
	_, crossed := g1.Node("b")
	assert.False(t, crossed)
}
