package ir

// Graph owns the ordered collection of nodes for one construction session.
//
// It is the sole node-creation entry point, assigns node identities, caches
// the session's root-slot node, and holds the branch stack used by the
// control-flow builder. A Graph and everything it owns belong to a single
// construction goroutine; concurrent construction of independent graphs is
// fine because no state is shared between sessions.
type Graph struct {
	registry Registry
	nodes    []*Node

	root   *Node
	frames []*branchFrame
}

// NewGraph creates an empty graph backed by the given registry.
func NewGraph(registry Registry) *Graph {
	return &Graph{registry: registry}
}

// AddNode creates a node of the named type, assigns it the next identity,
// and appends it to the graph. It fails with ErrUnknownNodeType if the
// registry does not know the type.
func (g *Graph) AddNode(typeName string) (*Node, error) {
	spec, ok := g.registry.SpecOf(typeName)
	if !ok {
		return nil, wiref(ErrUnknownNodeType, "no spec for node type %q", typeName)
	}
	n := newNode(spec, g, len(g.nodes))
	g.nodes = append(g.nodes, n)
	return n, nil
}

// Root returns the graph's root-slot node, creating it on first call. Every
// later call returns the same node.
func (g *Graph) Root() (*Node, error) {
	if g.root != nil {
		return g.root, nil
	}
	n, err := g.AddNode("RootSlot")
	if err != nil {
		return nil, err
	}
	g.root = n
	return n, nil
}

// Nodes returns the graph's nodes in insertion order. The returned slice is
// a copy; the nodes are shared.
func (g *Graph) Nodes() []*Node {
	out := make([]*Node, len(g.nodes))
	copy(out, g.nodes)
	return out
}

// Len returns the number of nodes in the graph.
func (g *Graph) Len() int { return len(g.nodes) }
