package graph

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/vk/tracegraph/internal/tensor"
)

// Graph is a static computation graph under construction. Nodes are held in
// insertion order; names are unique within a graph.
type Graph struct {
	id string

	mu      sync.Mutex
	nodes   []*Node
	byName  map[string]*Node
	nameSeq map[string]int
	global  *Block
}

// New creates an empty graph with a unique identity.
func New() *Graph {
	g := &Graph{
		id:      uuid.NewString(),
		byName:  make(map[string]*Node),
		nameSeq: make(map[string]int),
	}
	g.global = &Block{graph: g}
	return g
}

// ID returns the graph's unique identifier.
func (g *Graph) ID() string { return g.id }

// GlobalBlock returns the graph's top-level block, the insertion target for
// feed nodes.
func (g *Graph) GlobalBlock() *Block { return g.global }

// Node looks up a node by name.
func (g *Graph) Node(name string) (*Node, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	n, ok := g.byName[name]
	return n, ok
}

// Nodes returns all nodes in insertion order.
func (g *Graph) Nodes() []*Node {
	g.mu.Lock()
	defer g.mu.Unlock()
	return append([]*Node(nil), g.nodes...)
}

// Feeds returns the external-feed nodes in insertion order.
func (g *Graph) Feeds() []*Node {
	g.mu.Lock()
	defer g.mu.Unlock()
	var feeds []*Node
	for _, n := range g.nodes {
		if n.isFeed {
			feeds = append(feeds, n)
		}
	}
	return feeds
}

// Block is an insertion scope within a graph. Only the global block exists
// during tracing.
type Block struct {
	graph *Graph
}

// Graph returns the graph this block belongs to.
func (b *Block) Graph() *Graph { return b.graph }

// AddFeed inserts an external-feed placeholder node. The node is marked so
// that feed validation is deferred to execution time rather than checked
// while tracing. If name is already taken within the graph, a numeric
// suffix is appended to keep node names unique.
func (b *Block) AddFeed(name string, shape []int, dtype tensor.DType) *Node {
	g := b.graph
	g.mu.Lock()
	defer g.mu.Unlock()

	unique := name
	for {
		if _, taken := g.byName[unique]; !taken {
			break
		}
		g.nameSeq[name]++
		unique = fmt.Sprintf("%s_%d", name, g.nameSeq[name])
	}

	n := &Node{
		name:          unique,
		shape:         append([]int(nil), shape...),
		dtype:         dtype,
		isFeed:        true,
		needCheckFeed: false,
	}
	g.nodes = append(g.nodes, n)
	g.byName[unique] = n
	return n
}
