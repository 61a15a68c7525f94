package lint

import (
	"strings"

	"xelogen/internal/ir"
)

// DynVarNames checks the naming of dynamic variable writes. Variable names
// without a "/" separator live in the global namespace, which tends to be a
// surprise rather than a choice, so the pass flags WriteDynVar-family nodes
// whose name input is missing, empty, or separator-free.
type DynVarNames struct{}

// Name implements Pass.
func (DynVarNames) Name() string { return "dynvar-names" }

// Run implements Pass.
func (DynVarNames) Run(g *ir.Graph, r *Reporter) {
	for _, n := range g.Nodes() {
		if !strings.HasPrefix(n.Spec().Name, "WriteDynVar") {
			continue
		}
		bound, err := n.Bound("name")
		if err != nil {
			continue
		}
		if len(bound) == 0 {
			r.Warnf(n, "name input is not connected")
			continue
		}
		src := bound[0].Node()
		if src.Spec().Name != "StringInput" {
			// Name is computed; nothing static to check.
			continue
		}
		content, err := src.Content()
		if err != nil || content == nil {
			r.Warnf(n, "name input is empty")
			continue
		}
		name, ok := content.(string)
		if !ok {
			continue
		}
		if !strings.Contains(name, "/") {
			r.Warnf(n, "variable name %q has no namespace separator; consider adding one", name)
		}
	}
}
