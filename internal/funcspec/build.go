package funcspec

import (
	"context"
	"fmt"

	"github.com/vk/tracegraph/internal/ctxlog"
	"github.com/vk/tracegraph/internal/graph"
	"github.com/vk/tracegraph/internal/nest"
	"github.com/vk/tracegraph/internal/spec"
)

// BuildInputs constructs one feed node per input descriptor in the resolved
// tree, inside g's global block, and repacks the results into the original
// nested shape. Leaves that are not descriptors (pass-through constants)
// are kept as-is. Unnamed descriptors get a generated name from their flat
// position, "feed_0", "feed_1", and so on.
//
// Construction runs inside a static-construction scope for g: all graph
// primitives invoked here target g regardless of whatever graph was active
// in the caller's context, and the caller's scope is untouched on return.
func (d *Descriptor) BuildInputs(ctx context.Context, resolved any, g *graph.Graph) (any, error) {
	ctx = graph.WithActive(ctx, g)
	block, err := graph.ActiveBlock(ctx)
	if err != nil {
		return nil, err
	}
	logger := ctxlog.FromContext(ctx).With("function", d.name, "graph", g.ID())

	flat := nest.Flatten(resolved)
	inputs := make([]any, len(flat))
	for i, leaf := range flat {
		in, ok := leaf.(*spec.Input)
		if !ok {
			inputs[i] = leaf
			continue
		}
		name := in.Name
		if name == "" {
			name = fmt.Sprintf("feed_%d", i)
		}
		node := block.AddFeed(name, in.Shape, in.DType)
		logger.Debug("Created feed placeholder.", "name", node.Name(), "shape", node.Shape(), "dtype", node.DType())
		inputs[i] = node
	}

	return nest.Pack(resolved, inputs)
}
