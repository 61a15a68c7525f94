package ir_test

import (
	"testing"

	"xelogen/internal/catalog"
	"xelogen/internal/ir"
)

func newGraph(t *testing.T) *ir.Graph {
	t.Helper()
	return ir.NewGraph(catalog.Builtin())
}

func mustAdd(t *testing.T, g *ir.Graph, typeName string) *ir.Node {
	t.Helper()
	n, err := g.AddNode(typeName)
	if err != nil {
		t.Fatalf("AddNode(%q): %v", typeName, err)
	}
	return n
}

func mustOutput(t *testing.T, n *ir.Node, name string) ir.Output {
	t.Helper()
	out, err := n.Output(name)
	if err != nil {
		t.Fatalf("Output(%q) on %s: %v", name, n.Spec().Name, err)
	}
	return out
}

func mustInput(t *testing.T, n *ir.Node, name string) ir.Input {
	t.Helper()
	in, err := n.Input(name)
	if err != nil {
		t.Fatalf("Input(%q) on %s: %v", name, n.Spec().Name, err)
	}
	return in
}

// assertContains fails unless the named input of n holds an output of the
// given source node.
func assertContains(t *testing.T, n *ir.Node, inputName string, src *ir.Node) {
	t.Helper()
	bound, err := n.Bound(inputName)
	if err != nil {
		t.Fatalf("Bound(%q) on %s: %v", inputName, n.Spec().Name, err)
	}
	for _, out := range bound {
		if out.Node().ID() == src.ID() {
			return
		}
	}
	t.Fatalf("input %q of %d<%s> does not contain an output of %d<%s>, but should",
		inputName, n.ID(), n.Spec().Name, src.ID(), src.Spec().Name)
}

// assertNotContains fails if the named input of n holds an output of the
// given source node.
func assertNotContains(t *testing.T, n *ir.Node, inputName string, src *ir.Node) {
	t.Helper()
	bound, err := n.Bound(inputName)
	if err != nil {
		t.Fatalf("Bound(%q) on %s: %v", inputName, n.Spec().Name, err)
	}
	for _, out := range bound {
		if out.Node().ID() == src.ID() {
			t.Fatalf("input %q of %d<%s> contains an output of %d<%s>, but should not",
				inputName, n.ID(), n.Spec().Name, src.ID(), src.Spec().Name)
		}
	}
}
