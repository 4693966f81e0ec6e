package graph

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/troubleduxj/flowlayout/pkg/layout"
)

// =============================================================================
// Layout - Computed Layout Serialization
// =============================================================================

// Layout is the serialization format for one layout run: positioned nodes,
// the bounding box, and which algorithm produced them. It is what the HTTP
// API returns and what the cache stores.
type Layout struct {
	Algorithm string `json:"algorithm"`
	Reason    string `json:"reason,omitempty"`

	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Bounds Box     `json:"bounds"`

	// Iterations is populated for the force-directed family.
	Iterations int `json:"iterations,omitempty"`

	Nodes []Node `json:"nodes"`
}

// Box is the axis-aligned bounding box of a layout.
type Box struct {
	MinX float64 `json:"min_x"`
	MinY float64 `json:"min_y"`
	MaxX float64 `json:"max_x"`
	MaxY float64 `json:"max_y"`
}

// FromResult converts an engine result into its serialization format.
// Node order follows the result, which follows the input.
func FromResult(result *layout.Result) Layout {
	out := Layout{
		Algorithm:  result.Algorithm.String(),
		Reason:     result.Reason,
		Width:      result.Bounds.Width(),
		Height:     result.Bounds.Height(),
		Iterations: result.Iterations,
		Bounds: Box{
			MinX: result.Bounds.MinX,
			MinY: result.Bounds.MinY,
			MaxX: result.Bounds.MaxX,
			MaxY: result.Bounds.MaxY,
		},
		Nodes: make([]Node, len(result.Nodes)),
	}
	for i, n := range result.Nodes {
		out.Nodes[i] = Node{
			ID:     n.ID,
			Type:   n.Type,
			X:      n.Position.X,
			Y:      n.Position.Y,
			Width:  n.Size.Width,
			Height: n.Size.Height,
		}
	}
	return out
}

// =============================================================================
// Layout Serialization API
// =============================================================================

// MarshalLayout serializes a Layout to pretty-printed JSON bytes.
func MarshalLayout(l Layout) ([]byte, error) {
	return json.MarshalIndent(l, "", "  ")
}

// UnmarshalLayout deserializes JSON bytes into a Layout.
// Validates that required fields are present.
func UnmarshalLayout(data []byte) (Layout, error) {
	var l Layout
	if err := json.Unmarshal(data, &l); err != nil {
		return Layout{}, fmt.Errorf("unmarshal layout: %w", err)
	}
	if l.Algorithm == "" {
		return Layout{}, fmt.Errorf("layout must name its algorithm")
	}
	return l, nil
}

// WriteLayoutFile writes a Layout to a JSON file.
func WriteLayoutFile(l Layout, path string) error {
	data, err := MarshalLayout(l)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// ReadLayoutFile reads a Layout from a JSON file.
func ReadLayoutFile(path string) (Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Layout{}, fmt.Errorf("read %s: %w", path, err)
	}
	return UnmarshalLayout(data)
}
