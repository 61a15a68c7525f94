package ir

// Operand is the sum type over the kinds of values an output can be
// combined with. Adding a new operand kind means adding a variant here plus
// its combinator rule in Combine; existing cases stay untouched.
type Operand interface {
	isOperand()
}

// IntLiteral is a raw integer operand.
type IntLiteral int

func (IntLiteral) isOperand() {}

// StringLiteral is a raw string operand.
type StringLiteral string

func (StringLiteral) isOperand() {}

// OutputOperand is another node's output, which must carry the same
// datatype as the output it is combined with.
type OutputOperand struct {
	Out Output
}

func (OutputOperand) isOperand() {}

// Combine produces and wires a new node implementing the combination of
// this output with the operand, and returns that node.
//
// Dispatch is by the operand's kind: an integer literal of value 1 selects
// the increment node, any other integer literal or a matching Int output
// selects the integer accumulator (with a fresh literal-holder node for raw
// literals), and string operands select the string accumulator. It fails
// with ErrTypeMismatch when the operand's datatype differs from the
// output's, and with ErrUnsupportedCombination when no combinator is
// defined for the pairing.
func (o Output) Combine(op Operand) (*Node, error) {
	g := o.node.graph

	switch v := op.(type) {
	case IntLiteral:
		if o.Datatype() != DatatypeInt {
			return nil, wiref(ErrTypeMismatch,
				"cannot combine an integer with the %s output %q of node %s",
				o.Datatype(), o.name, o.node.spec.Name)
		}
		if v == 1 {
			inc, err := g.AddNode("PlusOne<Int>")
			if err != nil {
				return nil, err
			}
			value, err := inc.Input("value")
			if err != nil {
				return nil, err
			}
			if err := value.Connect(o); err != nil {
				return nil, err
			}
			return inc, nil
		}
		return g.literalAccumulator("Plus<Int>", o, "IntInput", int(v))

	case StringLiteral:
		if o.Datatype() != DatatypeString {
			return nil, wiref(ErrTypeMismatch,
				"cannot combine a string with the %s output %q of node %s",
				o.Datatype(), o.name, o.node.spec.Name)
		}
		return g.literalAccumulator("Plus<String>", o, "StringInput", string(v))

	case OutputOperand:
		if v.Out.Datatype() != o.Datatype() {
			return nil, wiref(ErrTypeMismatch,
				"cannot combine a %s output with a %s output",
				v.Out.Datatype(), o.Datatype())
		}
		switch o.Datatype() {
		case DatatypeString:
			return g.accumulator("Plus<String>", v.Out, o)
		case DatatypeInt:
			return g.accumulator("Plus<Int>", o, v.Out)
		default:
			return nil, wiref(ErrUnsupportedCombination,
				"no combinator for two %s outputs", o.Datatype())
		}

	default:
		return nil, wiref(ErrUnsupportedCombination, "no combinator for operand %T", op)
	}
}

// Combine combines the node's only output with the operand.
func (n *Node) Combine(op Operand) (*Node, error) {
	out, err := n.OnlyOutput()
	if err != nil {
		return nil, err
	}
	return out.Combine(op)
}

// literalAccumulator creates an accumulator node plus a fresh holder node
// carrying the raw literal, then appends the source output and the holder's
// output to the accumulator's "values" input in that order.
func (g *Graph) literalAccumulator(accType string, src Output, holderType string, v any) (*Node, error) {
	acc, err := g.AddNode(accType)
	if err != nil {
		return nil, err
	}
	holder, err := g.AddNode(holderType)
	if err != nil {
		return nil, err
	}
	if err := holder.SetContent(v); err != nil {
		return nil, err
	}
	values, err := acc.Input("values")
	if err != nil {
		return nil, err
	}
	if err := values.Connect(src); err != nil {
		return nil, err
	}
	if err := values.ConnectNode(holder); err != nil {
		return nil, err
	}
	return acc, nil
}

// accumulator creates an accumulator node of the given type and appends the
// outputs to its "values" input in order.
func (g *Graph) accumulator(typeName string, outs ...Output) (*Node, error) {
	node, err := g.AddNode(typeName)
	if err != nil {
		return nil, err
	}
	values, err := node.Input("values")
	if err != nil {
		return nil, err
	}
	for _, out := range outs {
		if err := values.Connect(out); err != nil {
			return nil, err
		}
	}
	return node, nil
}
