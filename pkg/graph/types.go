package graph

import (
	"encoding/json"

	"github.com/troubleduxj/flowlayout/pkg/layout"
)

// =============================================================================
// Diagram - Workflow Diagram Serialization
// =============================================================================

// Diagram is the canonical serialization format for workflow diagrams.
// Used for files, API requests, storage, and caching.
//
// The format preserves order: nodes and connections round-trip in exactly the
// order they were written, because the layout engine treats input order as
// meaningful.
type Diagram struct {
	Nodes       []Node       `json:"nodes"`
	Connections []Connection `json:"connections,omitempty"`
}

// =============================================================================
// Node - Unified Node Type
// =============================================================================

// Node is the unified node type for all serialization contexts.
// Used in both Diagram and Layout types for consistency.
type Node struct {
	ID     string         `json:"id"`
	Type   string         `json:"type,omitempty"`   // Display tag (icon/label choice)
	Label  string         `json:"label,omitempty"`  // Display label (defaults to ID)
	X      float64        `json:"x,omitempty"`      // Center coordinate
	Y      float64        `json:"y,omitempty"`      // Center coordinate
	Width  float64        `json:"width,omitempty"`  // Zero means the engine default
	Height float64        `json:"height,omitempty"` // Zero means the engine default
	Meta   map[string]any `json:"meta,omitempty"`
}

// DisplayLabel returns the label if set, otherwise the ID.
func (n *Node) DisplayLabel() string {
	if n.Label != "" {
		return n.Label
	}
	return n.ID
}

// =============================================================================
// Connection - Directed Edge
// =============================================================================

// Connection represents a directed edge in the workflow diagram.
type Connection struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// =============================================================================
// Diagram ↔ Engine Conversion
// =============================================================================

// ToLayout converts the diagram into the engine's input types, preserving
// order. Display-only fields (Label, Meta) do not cross the boundary; callers
// that need them after layout should match result nodes back by ID.
func (d Diagram) ToLayout() ([]layout.Node, []layout.Connection) {
	nodes := make([]layout.Node, len(d.Nodes))
	for i, n := range d.Nodes {
		nodes[i] = layout.Node{
			ID:       n.ID,
			Type:     n.Type,
			Position: layout.Position{X: n.X, Y: n.Y},
			Size:     layout.Size{Width: n.Width, Height: n.Height},
		}
	}
	connections := make([]layout.Connection, len(d.Connections))
	for i, c := range d.Connections {
		connections[i] = layout.Connection{From: c.From, To: c.To}
	}
	return nodes, connections
}

// ApplyResult returns a copy of the diagram with node coordinates replaced by
// the result's positions. Nodes absent from the result keep their coordinates.
func (d Diagram) ApplyResult(result *layout.Result) Diagram {
	positions := make(map[string]layout.Position, len(result.Nodes))
	for _, n := range result.Nodes {
		positions[n.ID] = n.Position
	}

	out := Diagram{
		Nodes:       make([]Node, len(d.Nodes)),
		Connections: d.Connections,
	}
	for i, n := range d.Nodes {
		n.Meta = copyMeta(n.Meta)
		if pos, ok := positions[n.ID]; ok {
			n.X, n.Y = pos.X, pos.Y
		}
		out.Nodes[i] = n
	}
	return out
}

// copyMeta creates a shallow copy of metadata to avoid mutation.
func copyMeta(m map[string]any) map[string]any {
	if m == nil {
		return nil
	}
	result := make(map[string]any, len(m))
	for k, v := range m {
		result[k] = v
	}
	return result
}

// UnmarshalDiagram deserializes JSON bytes to a Diagram.
func UnmarshalDiagram(data []byte) (Diagram, error) {
	var d Diagram
	if err := json.Unmarshal(data, &d); err != nil {
		return Diagram{}, err
	}
	return d, nil
}
