package graph

import (
	"fmt"

	"github.com/vk/tracegraph/internal/tensor"
)

// Node is a symbolic value in a graph. During tracing the only nodes the
// builder creates are external feeds; everything else a traced function
// closes over stays outside the graph as a constant.
type Node struct {
	name          string
	shape         []int
	dtype         tensor.DType
	isFeed        bool
	needCheckFeed bool
}

// Name returns the node's unique name within its graph.
func (n *Node) Name() string { return n.name }

// Shape returns a copy of the node's shape.
func (n *Node) Shape() []int { return append([]int(nil), n.shape...) }

// DType returns the node's element type.
func (n *Node) DType() tensor.DType { return n.dtype }

// IsFeed reports whether the node is an external-feed placeholder.
func (n *Node) IsFeed() bool { return n.isFeed }

// NeedCheckFeed reports whether fed values must be validated against the
// node's shape and dtype at feed time. Placeholders built while tracing
// defer that check to execution.
func (n *Node) NeedCheckFeed() bool { return n.needCheckFeed }

func (n *Node) String() string {
	return fmt.Sprintf("placeholder(%q, %s, %s)", n.name, tensor.ShapeString(n.shape), n.dtype)
}
