package render

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/troubleduxj/flowlayout/pkg/graph"
)

// pointsPerInch converts layout pixels (treated as points) into the inch
// units Graphviz uses for node dimensions.
const pointsPerInch = 72.0

// Options configures DOT generation.
type Options struct {
	// Detailed includes the node type and coordinates in labels.
	// When false, only the display label is shown.
	Detailed bool

	// HideConnections omits edges, drawing the nodes alone.
	HideConnections bool
}

// ToDOT converts a computed layout to Graphviz DOT with every node pinned at
// its computed position. A Layout document does not carry connections, so
// they are passed alongside; use [DiagramDOT] when rendering straight from a
// positioned diagram. Render the result with the neato engine ([SVG], [PNG]);
// layout engines that ignore pin flags would discard the positions.
//
// Graphviz places nodes by center point, matching the layout engine's
// convention, so coordinates transfer directly. The Y axis is flipped because
// Graphviz grows upward while diagram coordinates grow downward.
func ToDOT(l graph.Layout, connections []graph.Connection, opts Options) string {
	return writeDOT(l.Nodes, connections, l.Bounds.MaxY, opts)
}

// DiagramDOT renders a diagram whose nodes already carry positions, for
// example after [graph.Diagram.ApplyResult]. This is the export command's
// path, where the original connections are at hand.
func DiagramDOT(d graph.Diagram, opts Options) string {
	maxY := 0.0
	for _, n := range d.Nodes {
		h := n.Height
		if h <= 0 {
			h = defaultHeight
		}
		if y := n.Y + h/2; y > maxY {
			maxY = y
		}
	}
	return writeDOT(d.Nodes, d.Connections, maxY, opts)
}

// Default node footprint, matching the layout engine's defaults.
const (
	defaultWidth  = 120.0
	defaultHeight = 60.0
)

func writeDOT(nodes []graph.Node, connections []graph.Connection, maxY float64, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  layout=neato;\n")
	buf.WriteString("  splines=line;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fixedsize=true];\n")
	buf.WriteString("\n")

	for _, n := range nodes {
		w, h := n.Width, n.Height
		if w <= 0 {
			w = defaultWidth
		}
		if h <= 0 {
			h = defaultHeight
		}
		label := fmtLabel(n, opts.Detailed)
		fmt.Fprintf(&buf, "  %q [label=%q, pos=\"%g,%g!\", width=%.3f, height=%.3f];\n",
			n.ID, label, n.X, maxY-n.Y, w/pointsPerInch, h/pointsPerInch)
	}

	if !opts.HideConnections && len(connections) > 0 {
		buf.WriteString("\n")
		for _, c := range connections {
			fmt.Fprintf(&buf, "  %q -> %q;\n", c.From, c.To)
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

func fmtLabel(n graph.Node, detailed bool) string {
	label := n.DisplayLabel()
	if !detailed {
		return label
	}

	parts := []string{label}
	if n.Type != "" {
		parts = append(parts, "type: "+n.Type)
	}
	parts = append(parts, fmt.Sprintf("(%.0f, %.0f)", n.X, n.Y))
	return strings.Join(parts, "\n")
}
