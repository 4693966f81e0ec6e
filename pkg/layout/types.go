package layout

import "math"

// Default node dimensions, used when a node arrives without a size.
// Workflow editors typically draw nodes around this footprint.
const (
	DefaultNodeWidth  = 120.0
	DefaultNodeHeight = 60.0
)

// Position is a 2-D point. Node positions refer to the node's center.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Size is a node's visual extent, used for overlap and spacing math.
type Size struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Node is a workflow-diagram node. Type is a display tag (icon/label choice)
// and never influences layout. Position is output: the engine overwrites it
// on the copies it returns and leaves the caller's structs untouched.
type Node struct {
	ID       string   `json:"id"`
	Type     string   `json:"type,omitempty"`
	Position Position `json:"position"`
	Size     Size     `json:"size,omitempty"`
}

// EffectiveSize returns the node's size with defaults applied for missing
// dimensions.
func (n Node) EffectiveSize() Size {
	s := n.Size
	if s.Width <= 0 {
		s.Width = DefaultNodeWidth
	}
	if s.Height <= 0 {
		s.Height = DefaultNodeHeight
	}
	return s
}

// Connection is a directed edge between two nodes. A connection whose
// endpoint does not exist is dropped during graph construction; it never
// causes the referencing node to be excluded.
type Connection struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// Bounds is the minimal axis-aligned rectangle containing all laid-out
// nodes, including their extents. The zero value is the zero-sized box.
type Bounds struct {
	MinX float64 `json:"min_x"`
	MinY float64 `json:"min_y"`
	MaxX float64 `json:"max_x"`
	MaxY float64 `json:"max_y"`
}

// Width returns the horizontal extent of the bounds.
func (b Bounds) Width() float64 { return b.MaxX - b.MinX }

// Height returns the vertical extent of the bounds.
func (b Bounds) Height() float64 { return b.MaxY - b.MinY }

// Result is the outcome of one layout run: the input nodes (copied, in input
// order) with updated positions, and the bounding box of the arrangement.
// When the algorithm was auto-selected, Algorithm and Reason record the
// selector's choice.
type Result struct {
	Nodes     []Node    `json:"nodes"`
	Bounds    Bounds    `json:"bounds"`
	Algorithm Algorithm `json:"algorithm"`
	Reason    string    `json:"reason,omitempty"`

	// Iterations is the number of simulation steps the force-directed and
	// organic algorithms ran before converging or hitting the cap. Zero for
	// the deterministic algorithms.
	Iterations int `json:"iterations,omitempty"`
}

// boundsOf computes the bounding box of positioned nodes including their
// sizes. Returns the zero box for an empty slice.
func boundsOf(nodes []Node) Bounds {
	if len(nodes) == 0 {
		return Bounds{}
	}
	b := Bounds{
		MinX: math.Inf(1), MinY: math.Inf(1),
		MaxX: math.Inf(-1), MaxY: math.Inf(-1),
	}
	for _, n := range nodes {
		s := n.EffectiveSize()
		b.MinX = math.Min(b.MinX, n.Position.X-s.Width/2)
		b.MaxX = math.Max(b.MaxX, n.Position.X+s.Width/2)
		b.MinY = math.Min(b.MinY, n.Position.Y-s.Height/2)
		b.MaxY = math.Max(b.MaxY, n.Position.Y+s.Height/2)
	}
	return b
}
