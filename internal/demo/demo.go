// Package demo builds the reference example program: a pulse-driven write
// of a dynamic variable whose value is derived from the scene root's child
// count. It exercises every composition primitive and doubles as the
// end-to-end fixture for the builder.
package demo

import (
	"xelogen/internal/ir"
)

// Build assembles the example program on a fresh graph backed by reg.
func Build(reg ir.Registry) (*ir.Graph, error) {
	g := ir.NewGraph(reg)

	pulse, err := g.AddNode("Pulse")
	if err != nil {
		return nil, err
	}
	root, err := g.Root()
	if err != nil {
		return nil, err
	}
	numChildren, err := g.AddNode("NumChildren")
	if err != nil {
		return nil, err
	}
	write, err := g.AddNode("WriteDynVar<Int>")
	if err != nil {
		return nil, err
	}
	str, err := g.AddNode("StringInput")
	if err != nil {
		return nil, err
	}
	addOne, err := g.AddNode("PlusOne<Int>")
	if err != nil {
		return nil, err
	}

	if err := connectNode(numChildren, "slot", root); err != nil {
		return nil, err
	}
	if err := connectNode(addOne, "value", numChildren); err != nil {
		return nil, err
	}

	if err := str.SetContent("World/Meow"); err != nil {
		return nil, err
	}
	concat, err := g.AddNode("Plus<String>")
	if err != nil {
		return nil, err
	}
	if err := connectNode(concat, "values", str); err != nil {
		return nil, err
	}
	if err := connectNode(concat, "values", str); err != nil {
		return nil, err
	}

	if err := connectNode(write, "write", pulse); err != nil {
		return nil, err
	}
	if err := connectNode(write, "name", concat); err != nil {
		return nil, err
	}

	// value = (addOne + 1) + 2
	extra, err := addOne.Combine(ir.IntLiteral(1))
	if err != nil {
		return nil, err
	}
	total, err := extra.Combine(ir.IntLiteral(2))
	if err != nil {
		return nil, err
	}
	if err := connectNode(write, "value", total); err != nil {
		return nil, err
	}

	// Loop the write's success impulse back into itself.
	success, err := write.Output("success")
	if err != nil {
		return nil, err
	}
	chain, err := ir.NewChain(success)
	if err != nil {
		return nil, err
	}
	if err := chain.Append(write); err != nil {
		return nil, err
	}
	chain.Close()

	return g, nil
}

func connectNode(n *ir.Node, input string, from *ir.Node) error {
	in, err := n.Input(input)
	if err != nil {
		return err
	}
	return in.ConnectNode(from)
}
