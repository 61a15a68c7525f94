// Package render dumps a graph in insertion order for inspection. It reads
// nodes and bindings only; it never mutates the graph.
package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"xelogen/internal/ir"
)

var (
	idStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	typeStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	contentStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
)

// Program writes one block per node, in insertion order: the node's id and
// type, then its literal content or the sources bound to each input.
func Program(w io.Writer, g *ir.Graph) error {
	for _, n := range g.Nodes() {
		if err := node(w, n); err != nil {
			return err
		}
	}
	return nil
}

func node(w io.Writer, n *ir.Node) error {
	if _, err := fmt.Fprintf(w, "%s %s\n",
		idStyle.Render(strconv.Itoa(n.ID())),
		typeStyle.Render(n.Spec().Name)); err != nil {
		return err
	}

	if n.Spec().HasContent() {
		content, err := n.Content()
		if err != nil {
			return err
		}
		if content != nil {
			_, err := fmt.Fprintf(w, "    %s\n", contentStyle.Render(fmt.Sprintf("%#v", content)))
			return err
		}
	}

	for _, in := range n.Spec().Inputs {
		bound, err := n.Bound(in.Name)
		if err != nil {
			return err
		}
		parts := make([]string, 0, len(bound))
		for _, out := range bound {
			parts = append(parts, fmt.Sprintf("%d<%s>:%s",
				out.Node().ID(), out.Node().Spec().Name, out.Slot()))
		}
		if _, err := fmt.Fprintf(w, "    %s from [%s]\n", in.Name, strings.Join(parts, ", ")); err != nil {
			return err
		}
	}
	return nil
}
