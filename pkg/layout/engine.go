package layout

import (
	"context"
	"io"

	"github.com/charmbracelet/log"

	"github.com/troubleduxj/flowlayout/pkg/errors"
	"github.com/troubleduxj/flowlayout/pkg/observability"
)

// Engine computes node positions for workflow diagrams. It is stateless apart
// from its logger and safe for concurrent use.
type Engine struct {
	logger *log.Logger
}

// New creates an engine. A nil logger discards all output.
func New(logger *log.Logger) *Engine {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Engine{logger: logger}
}

// Layout positions the given nodes. The input slices are never mutated: the
// result carries copies of the nodes, in input order, with their positions
// replaced. Empty input yields an empty result with zero bounds.
//
// With AlgorithmAuto the engine consults [Recommend] and records the chosen
// algorithm and the selection reason on the result.
func (e *Engine) Layout(ctx context.Context, nodes []Node, connections []Connection, cfg Config) (*Result, error) {
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if len(nodes) == 0 {
		e.logger.Debug("layout requested for empty diagram")
		return &Result{Nodes: []Node{}, Algorithm: cfg.Algorithm}, nil
	}

	g, err := BuildGraph(nodes, connections, e.logger)
	if err != nil {
		return nil, err
	}

	algorithm := cfg.Algorithm
	reason := ""
	if algorithm == AlgorithmAuto {
		rec := Recommend(g)
		algorithm = rec.Algorithm
		reason = rec.Reason
		e.logger.Debug("algorithm auto-selected",
			"algorithm", algorithm.String(),
			"nodes", g.NodeCount(),
			"connections", g.ConnectionCount())
	}

	observability.Layout().OnLayoutStart(ctx, algorithm.String(), g.NodeCount(), g.ConnectionCount())

	positions, iterations, err := e.run(ctx, algorithm, g, cfg)
	if err != nil {
		observability.Layout().OnLayoutError(ctx, algorithm.String(), err)
		return nil, err
	}

	// Defensive copies: callers keep their input untouched.
	out := make([]Node, len(nodes))
	copy(out, nodes)
	for i := range out {
		if pos, ok := positions[out[i].ID]; ok {
			out[i].Position = pos
		}
	}

	result := &Result{
		Nodes:      out,
		Bounds:     boundsOf(out),
		Algorithm:  algorithm,
		Reason:     reason,
		Iterations: iterations,
	}
	observability.Layout().OnLayoutDone(ctx, algorithm.String(), iterations)
	return result, nil
}

// Recommend builds the graph model and returns the selector's recommendation
// without running a layout. Useful for previews and the recommend API.
func (e *Engine) Recommend(nodes []Node, connections []Connection) (Recommendation, error) {
	g, err := BuildGraph(nodes, connections, e.logger)
	if err != nil {
		return Recommendation{}, err
	}
	return Recommend(g), nil
}

// run dispatches to the concrete algorithm. The rank-based and geometric
// algorithms are pure functions of the graph; the force family additionally
// reports its iteration count and honors context cancellation.
func (e *Engine) run(ctx context.Context, algorithm Algorithm, g *Graph, cfg Config) (map[string]Position, int, error) {
	switch algorithm {
	case AlgorithmHierarchical:
		return layoutHierarchical(g, cfg), 0, nil
	case AlgorithmTree:
		return layoutTree(g, cfg), 0, nil
	case AlgorithmLayered:
		return layoutLayered(g, cfg), 0, nil
	case AlgorithmForceDirected:
		return layoutForce(ctx, g, cfg)
	case AlgorithmOrganic:
		return layoutOrganic(ctx, g, cfg)
	case AlgorithmCircular:
		return layoutCircular(g, cfg), 0, nil
	case AlgorithmGrid:
		return layoutGrid(g, cfg), 0, nil
	}
	return nil, 0, errors.New(errors.ErrCodeInvalidAlgorithm,
		"no layout implementation for algorithm %q", algorithm.String())
}
