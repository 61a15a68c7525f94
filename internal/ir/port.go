package ir

// Port is a transient, typed handle into a node's named slot. Ports are not
// stored in the graph; they are minted on demand and carry no state beyond
// the (node, slot) pair they address.
type Port interface {
	Node() *Node
	Slot() string
	Datatype() Datatype
}

// Output is a handle to a node's named output slot.
type Output struct {
	node *Node
	name string
}

// Node returns the node the output belongs to.
func (o Output) Node() *Node { return o.node }

// Slot returns the output's slot name.
func (o Output) Slot() string { return o.name }

// Datatype returns the declared datatype of the output.
func (o Output) Datatype() Datatype {
	t, _ := o.node.spec.OutputType(o.name)
	return t
}

// Input is a handle to a node's named input slot.
type Input struct {
	node *Node
	name string
}

// Node returns the node the input belongs to.
func (i Input) Node() *Node { return i.node }

// Slot returns the input's slot name.
func (i Input) Slot() string { return i.name }

// Datatype returns the datatype an incoming connection must carry: the
// declared input type, or its element type for list inputs.
func (i Input) Datatype() Datatype {
	t := i.declared()
	if t.IsList() {
		elem, err := t.Element()
		if err != nil {
			return DatatypeInvalid
		}
		return elem
	}
	return t
}

func (i Input) declared() Datatype {
	t, _ := i.node.spec.InputType(i.name)
	return t
}

// Connect binds out into this input.
//
// A scalar input accepts exactly one binding and rejects a second with
// ErrDuplicateBinding. A list input appends, and the append order is
// preserved as the semantic order of the connections. The output's datatype
// must equal the input's (element-adjusted) datatype.
func (i Input) Connect(out Output) error {
	return i.node.addInput(i.name, out)
}

// ConnectNode binds the first output of n whose datatype matches this
// input's datatype, in n's declaration order. It fails with
// ErrNoMatchingOutput if n declares no such output.
func (i Input) ConnectNode(n *Node) error {
	out, err := n.FirstOutputOfType(i.declared())
	if err != nil {
		return err
	}
	return i.Connect(out)
}
