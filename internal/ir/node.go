package ir

// Node is a graph vertex: one instance of a NodeSpec with a stable integer
// identity, bound inputs, and optional literal content.
//
// Nodes are created only through Graph.AddNode, which assigns the identity.
// Identity never changes after creation; inputs and content are mutated only
// through the validated operations below.
type Node struct {
	spec  *NodeSpec
	graph *Graph
	id    int

	// bound holds, per declared input, the connected outputs in append
	// order. Order is semantically significant for list inputs.
	bound map[string][]Output

	content    any
	hasContent bool
}

func newNode(spec *NodeSpec, graph *Graph, id int) *Node {
	n := &Node{
		spec:  spec,
		graph: graph,
		id:    id,
		bound: make(map[string][]Output, len(spec.Inputs)),
	}
	for _, in := range spec.Inputs {
		n.bound[in.Name] = nil
	}
	return n
}

// ID returns the node's identity: its 0-based insertion index in the graph.
func (n *Node) ID() int { return n.id }

// Spec returns the node's immutable schema.
func (n *Node) Spec() *NodeSpec { return n.spec }

// Graph returns the graph that owns this node.
func (n *Node) Graph() *Graph { return n.graph }

// Port resolves name to an Output handle if it is a declared output, or an
// Input handle if it is a declared input.
func (n *Node) Port(name string) (Port, error) {
	if _, ok := n.spec.OutputType(name); ok {
		return Output{node: n, name: name}, nil
	}
	if _, ok := n.spec.InputType(name); ok {
		return Input{node: n, name: name}, nil
	}
	return nil, wiref(ErrUnknownPort, "node %s has no port %q", n.spec.Name, name)
}

// Output returns a handle to the named output.
func (n *Node) Output(name string) (Output, error) {
	if _, ok := n.spec.OutputType(name); !ok {
		return Output{}, wiref(ErrUnknownPort, "node %s has no output %q", n.spec.Name, name)
	}
	return Output{node: n, name: name}, nil
}

// Input returns a handle to the named input.
func (n *Node) Input(name string) (Input, error) {
	if _, ok := n.spec.InputType(name); !ok {
		return Input{}, wiref(ErrUnknownPort, "node %s has no input %q", n.spec.Name, name)
	}
	return Input{node: n, name: name}, nil
}

// OnlyOutput returns the node's single output, conventionally named "*".
func (n *Node) OnlyOutput() (Output, error) {
	return n.Output("*")
}

// Bound returns the outputs bound to the named input, in append order. The
// returned slice is a copy.
func (n *Node) Bound(name string) ([]Output, error) {
	outs, ok := n.bound[name]
	if !ok {
		return nil, wiref(ErrUnknownPort, "node %s has no input %q", n.spec.Name, name)
	}
	cp := make([]Output, len(outs))
	copy(cp, outs)
	return cp, nil
}

// addInput validates and records a binding of out into the named input.
// The caller guarantees the input name is declared.
func (n *Node) addInput(name string, out Output) error {
	declared, _ := n.spec.InputType(name)

	if declared.IsList() {
		elem, err := declared.Element()
		if err != nil {
			return err
		}
		if out.Datatype() != elem {
			return wiref(ErrTypeMismatch,
				"cannot connect a %s output to the %s input %q of node %s",
				out.Datatype(), elem, name, n.spec.Name)
		}
		n.bound[name] = append(n.bound[name], out)
		return nil
	}

	// Arity before type: a bound scalar input rejects any second bind,
	// no matter what the new output carries.
	if len(n.bound[name]) > 0 {
		return wiref(ErrDuplicateBinding,
			"input %q of node %s is already connected", name, n.spec.Name)
	}
	if out.Datatype() != declared {
		return wiref(ErrTypeMismatch,
			"cannot connect a %s output to the %s input %q of node %s",
			out.Datatype(), declared, name, n.spec.Name)
	}
	n.bound[name] = append(n.bound[name], out)
	return nil
}

// SetContent sets the node's literal content. It fails with ErrNoContentSlot
// if the spec declares no content type, and with ErrContentTypeMismatch if
// the value's runtime kind differs from the declared content type.
func (n *Node) SetContent(v any) error {
	if !n.spec.HasContent() {
		return wiref(ErrNoContentSlot, "node %s has no content to set", n.spec.Name)
	}
	kind, ok := contentKind(v)
	if !ok || kind != n.spec.ContentType {
		return wiref(ErrContentTypeMismatch,
			"node %s takes %s content, not %T", n.spec.Name, n.spec.ContentType, v)
	}
	n.content = v
	n.hasContent = true
	return nil
}

// Content returns the node's literal content, or nil if none has been set.
// It fails with ErrNoContentSlot if the spec declares no content type.
func (n *Node) Content() (any, error) {
	if !n.spec.HasContent() {
		return nil, wiref(ErrNoContentSlot, "node %s has no content", n.spec.Name)
	}
	if !n.hasContent {
		return nil, nil
	}
	return n.content, nil
}

// FirstInputImpulse returns the name of the node's first declared impulse
// input. Impulse inputs are always of the ImpulseList kind.
func (n *Node) FirstInputImpulse() (string, error) {
	for _, in := range n.spec.Inputs {
		if in.Type == DatatypeImpulseList {
			return in.Name, nil
		}
	}
	return "", wiref(ErrMissingImpulseInput, "node %s has no input impulses", n.spec.Name)
}

// FirstOutputImpulse returns the node's first declared impulse output.
func (n *Node) FirstOutputImpulse() (Output, error) {
	for _, out := range n.spec.Outputs {
		if out.Type == DatatypeImpulse {
			return Output{node: n, name: out.Name}, nil
		}
	}
	return Output{}, wiref(ErrMissingImpulseOutput, "node %s has no output impulses", n.spec.Name)
}

// FirstOutputOfType returns the first declared output whose datatype equals
// t, or t's element type if t is a list kind.
func (n *Node) FirstOutputOfType(t Datatype) (Output, error) {
	if t.IsList() {
		elem, err := t.Element()
		if err != nil {
			return Output{}, err
		}
		t = elem
	}
	for _, out := range n.spec.Outputs {
		if out.Type == t {
			return Output{node: n, name: out.Name}, nil
		}
	}
	return Output{}, wiref(ErrNoMatchingOutput, "node %s has no output of type %s", n.spec.Name, t)
}

func contentKind(v any) (Datatype, bool) {
	switch v.(type) {
	case string:
		return DatatypeString, true
	case int:
		return DatatypeInt, true
	case bool:
		return DatatypeBool, true
	case float64:
		return DatatypeFloat, true
	default:
		return DatatypeInvalid, false
	}
}
