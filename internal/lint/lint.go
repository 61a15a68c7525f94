// Package lint runs advisory passes over a finished graph. Passes never
// mutate the graph and never fail construction: each one reports warnings
// through a Reporter and the engine sums the counts.
package lint

import (
	"fmt"
	"log/slog"

	"xelogen/internal/ir"
)

// Pass is one independent lint check.
type Pass interface {
	// Name identifies the pass in warning output.
	Name() string
	// Run scans the graph and reports any findings. It must not mutate
	// the graph.
	Run(g *ir.Graph, r *Reporter)
}

// Engine is a session-local collection of passes, run in registration
// order.
type Engine struct {
	logger *slog.Logger
	passes []Pass
}

// NewEngine creates an engine that logs warnings through the given logger.
// A nil logger falls back to slog.Default.
func NewEngine(logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{logger: logger}
}

// Register appends a pass. Passes run in registration order.
func (e *Engine) Register(p Pass) {
	e.passes = append(e.passes, p)
}

// Run executes every registered pass over the graph and returns the total
// number of warnings reported.
func (e *Engine) Run(g *ir.Graph) int {
	total := 0
	for _, p := range e.passes {
		r := &Reporter{logger: e.logger, pass: p.Name()}
		p.Run(g, r)
		total += r.count
	}
	return total
}

// Reporter is the warning sink handed to each pass.
type Reporter struct {
	logger *slog.Logger
	pass   string
	count  int
}

// Warnf logs one warning about a node and counts it.
func (r *Reporter) Warnf(n *ir.Node, format string, args ...any) {
	r.count++
	r.logger.Warn(fmt.Sprintf(format, args...),
		"pass", r.pass,
		"node", n.ID(),
		"type", n.Spec().Name,
	)
}

// Count returns the number of warnings reported so far.
func (r *Reporter) Count() int { return r.count }
