package graph

import (
	"context"
	"errors"
)

// key is an unexported type to prevent collisions with context keys from other packages.
type key struct{}

// activeKey is the key for the active *Graph in a context.Context.
var activeKey = key{}

// ErrNoActiveGraph is returned when a construction primitive is used outside
// a static-construction scope.
var ErrNoActiveGraph = errors.New("no active graph: construction requires a context entered with graph.WithActive")

// WithActive returns a context in which g is the construction target.
// Scopes nest: deriving a child context with a different graph redirects
// construction for that scope only, and the previous target is restored
// the moment the child context goes out of use, on every exit path.
func WithActive(ctx context.Context, g *Graph) context.Context {
	return context.WithValue(ctx, activeKey, g)
}

// Active returns the construction-target graph for the current context.
func Active(ctx context.Context) (*Graph, bool) {
	g, ok := ctx.Value(activeKey).(*Graph)
	return g, ok
}

// ActiveBlock returns the global block of the active graph, failing when no
// static-construction scope is in effect.
func ActiveBlock(ctx context.Context) (*Block, error) {
	g, ok := Active(ctx)
	if !ok {
		return nil, ErrNoActiveGraph
	}
	return g.GlobalBlock(), nil
}
