// Package value offers thin typed wrappers over ir outputs, so host-facing
// builders can compose common subgraphs without naming node types or port
// slots. Each wrapper carries the output it stands for; the owning graph is
// reached through the output's node.
package value

import (
	"fmt"

	"xelogen/internal/ir"
)

// Slot wraps an output of the Slot datatype.
type Slot struct {
	out ir.Output
}

// SlotFrom wraps out, which must carry the Slot datatype.
func SlotFrom(out ir.Output) (Slot, error) {
	if out.Datatype() != ir.DatatypeSlot {
		return Slot{}, fmt.Errorf("%w: output %q of node %s is not a slot",
			ir.ErrTypeMismatch, out.Slot(), out.Node().Spec().Name)
	}
	return Slot{out: out}, nil
}

// Root returns the graph's root slot as a Slot value.
func Root(g *ir.Graph) (Slot, error) {
	n, err := g.Root()
	if err != nil {
		return Slot{}, err
	}
	out, err := n.OnlyOutput()
	if err != nil {
		return Slot{}, err
	}
	return Slot{out: out}, nil
}

// Output returns the wrapped output.
func (s Slot) Output() ir.Output { return s.out }

// NumChildren appends a child-count node reading this slot and returns its
// integer output.
func (s Slot) NumChildren() (Int, error) {
	g := s.out.Node().Graph()
	n, err := g.AddNode("NumChildren")
	if err != nil {
		return Int{}, err
	}
	in, err := n.Input("slot")
	if err != nil {
		return Int{}, err
	}
	if err := in.Connect(s.out); err != nil {
		return Int{}, err
	}
	out, err := n.OnlyOutput()
	if err != nil {
		return Int{}, err
	}
	return Int{out: out}, nil
}

// Int wraps an output of the Int datatype.
type Int struct {
	out ir.Output
}

// IntFrom wraps out, which must carry the Int datatype.
func IntFrom(out ir.Output) (Int, error) {
	if out.Datatype() != ir.DatatypeInt {
		return Int{}, fmt.Errorf("%w: output %q of node %s is not an int",
			ir.ErrTypeMismatch, out.Slot(), out.Node().Spec().Name)
	}
	return Int{out: out}, nil
}

// Output returns the wrapped output.
func (i Int) Output() ir.Output { return i.out }

// Plus combines this value with a raw integer and returns the result.
func (i Int) Plus(n int) (Int, error) {
	node, err := i.out.Combine(ir.IntLiteral(n))
	if err != nil {
		return Int{}, err
	}
	out, err := node.OnlyOutput()
	if err != nil {
		return Int{}, err
	}
	return Int{out: out}, nil
}

// Add combines this value with another Int and returns the result.
func (i Int) Add(other Int) (Int, error) {
	node, err := i.out.Combine(ir.OutputOperand{Out: other.out})
	if err != nil {
		return Int{}, err
	}
	out, err := node.OnlyOutput()
	if err != nil {
		return Int{}, err
	}
	return Int{out: out}, nil
}
