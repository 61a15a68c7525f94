package ir

// Chain wires sequential control flow. It tracks a cursor over the current
// impulse output, the one still awaiting a downstream consumer, and advances
// it as nodes are appended.
//
// Chains opened by Graph.If and Graph.Else participate in the graph's branch
// stack and must be closed when their block ends; plain chains from NewChain
// carry no frame and Close is a no-op for them.
type Chain struct {
	graph   *Graph
	cursor  Output
	history []*Node

	frame  *branchFrame
	role   chainRole
	closed bool
}

type chainRole int

const (
	roleFree chainRole = iota
	roleTrue
	roleElse
)

// Branch frames move through open, else-pending, else-open, and else-closed
// in that order. Only an else-pending frame at the top of the stack accepts
// Else.
type frameState int

const (
	frameOpen frameState = iota
	frameElsePending
	frameElseOpen
	frameElseClosed
)

type branchFrame struct {
	ifNode *Node
	state  frameState
	depth  int // index of this frame in the graph's stack
}

// NewChain opens a chain rooted at the given output. It fails with
// ErrNotAnImpulse if the output does not carry impulses.
func NewChain(out Output) (*Chain, error) {
	if out.Datatype() != DatatypeImpulse {
		return nil, wiref(ErrNotAnImpulse,
			"output %q of node %s is not an impulse", out.Slot(), out.Node().Spec().Name)
	}
	return &Chain{graph: out.Node().graph, cursor: out}, nil
}

// Append wires the chain's current impulse into n's first impulse input and
// advances the cursor to n's first impulse output. This is the only way
// sequential impulse edges are created outside of branch setup.
func (c *Chain) Append(n *Node) error {
	if c.closed {
		return wiref(ErrChainClosed, "cannot append to a closed chain")
	}
	inputName, err := n.FirstInputImpulse()
	if err != nil {
		return err
	}
	next, err := n.FirstOutputImpulse()
	if err != nil {
		return err
	}
	if err := n.addInput(inputName, c.cursor); err != nil {
		return err
	}
	c.cursor = next
	c.history = append(c.history, n)
	return nil
}

// Cursor returns the impulse output currently awaiting a consumer.
func (c *Chain) Cursor() Output { return c.cursor }

// Nodes returns the chain's recorded nodes in order. Chains opened by If or
// Else start with their If node; appended nodes follow.
func (c *Chain) Nodes() []*Node {
	out := make([]*Node, len(c.history))
	copy(out, c.history)
	return out
}

// Close ends the chain's block. A closed chain is terminal: it accepts no
// further appends.
//
// For a true-chain, Close parks its frame as else-pending so a sibling Else
// can resolve to it. For an else-chain, Close pops the frame. Either way,
// inner frames still sitting above this chain's own frame are discharged:
// their block has ended, so a later Else must not target them.
func (c *Chain) Close() {
	if c.closed {
		return
	}
	c.closed = true
	if c.frame == nil {
		return
	}

	g := c.graph
	if c.frame.depth < len(g.frames) && g.frames[c.frame.depth] == c.frame {
		keep := c.frame.depth
		if c.role == roleTrue {
			keep++
		}
		g.frames = g.frames[:keep]
	}
	if c.role == roleTrue {
		c.frame.state = frameElsePending
	} else {
		c.frame.state = frameElseClosed
	}
}

// If creates an If node, wires trigger into its impulse input and condition
// into its condition input, and opens the chain for the true branch. The
// branch is pushed on the graph's stack and stays there until the matching
// Else (if any) closes, so an If and its Else must be siblings: every branch
// opened between them has to fully close first.
func (g *Graph) If(trigger, condition Output) (*Chain, error) {
	if trigger.Datatype() != DatatypeImpulse {
		return nil, wiref(ErrNotAnImpulse,
			"output %q of node %s is not an impulse", trigger.Slot(), trigger.Node().Spec().Name)
	}
	if condition.Datatype() != DatatypeBool {
		return nil, wiref(ErrNotABoolean,
			"output %q of node %s is not a bool", condition.Slot(), condition.Node().Spec().Name)
	}

	ifNode, err := g.AddNode("If")
	if err != nil {
		return nil, err
	}
	impulseIn, err := ifNode.Input("impulse")
	if err != nil {
		return nil, err
	}
	if err := impulseIn.Connect(trigger); err != nil {
		return nil, err
	}
	conditionIn, err := ifNode.Input("condition")
	if err != nil {
		return nil, err
	}
	if err := conditionIn.Connect(condition); err != nil {
		return nil, err
	}

	trueOut, err := ifNode.Output("true")
	if err != nil {
		return nil, err
	}
	chain, err := NewChain(trueOut)
	if err != nil {
		return nil, err
	}

	frame := &branchFrame{ifNode: ifNode, state: frameOpen, depth: len(g.frames)}
	g.frames = append(g.frames, frame)
	chain.history = append(chain.history, ifNode)
	chain.frame = frame
	chain.role = roleTrue
	return chain, nil
}

// Else opens the chain for the false branch of the most recently closed If.
// It resolves against the top of the branch stack: the top frame must be
// else-pending, anything else is a structural error.
func (g *Graph) Else() (*Chain, error) {
	if len(g.frames) == 0 {
		return nil, wiref(ErrDanglingElse, "no open if to attach an else to")
	}
	top := g.frames[len(g.frames)-1]
	switch top.state {
	case frameOpen:
		return nil, wiref(ErrDanglingElse,
			"true branch of node %d is still open", top.ifNode.ID())
	case frameElseOpen, frameElseClosed:
		return nil, wiref(ErrDanglingElse,
			"else of node %d was already taken", top.ifNode.ID())
	}

	falseOut, err := top.ifNode.Output("false")
	if err != nil {
		return nil, err
	}
	chain, err := NewChain(falseOut)
	if err != nil {
		return nil, err
	}
	top.state = frameElseOpen
	chain.history = append(chain.history, top.ifNode)
	chain.frame = top
	chain.role = roleElse
	return chain, nil
}
