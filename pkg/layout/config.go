package layout

import (
	"strings"

	"github.com/troubleduxj/flowlayout/pkg/errors"
)

// Algorithm identifies a layout strategy. The zero value (AlgorithmAuto)
// asks the engine to pick one via [Recommend]. Unrecognized identifiers are
// rejected when parsing, so a dispatched Algorithm is always valid.
type Algorithm int

const (
	// AlgorithmAuto delegates the choice to the selector.
	AlgorithmAuto Algorithm = iota
	// AlgorithmHierarchical ranks nodes by topological depth and orders each
	// rank to reduce crossings. The general-purpose choice for DAGs.
	AlgorithmHierarchical
	// AlgorithmTree is the hierarchical layout with a single-parent view of
	// multi-parent nodes during ordering. Best for tree-shaped flows.
	AlgorithmTree
	// AlgorithmLayered lays out each connected component independently with
	// the hierarchical machinery, then tiles the components side by side.
	AlgorithmLayered
	// AlgorithmForceDirected runs a repulsion/spring simulation.
	AlgorithmForceDirected
	// AlgorithmOrganic is force-directed with component-clustered seeding.
	AlgorithmOrganic
	// AlgorithmCircular places nodes on a single ring in BFS order.
	AlgorithmCircular
	// AlgorithmGrid packs nodes into a near-square grid, ignoring edges.
	AlgorithmGrid
)

// algorithmNames maps each algorithm to its canonical identifier, as used in
// JSON, CLI flags, and the HTTP API.
var algorithmNames = map[Algorithm]string{
	AlgorithmAuto:          "auto",
	AlgorithmHierarchical:  "hierarchical",
	AlgorithmTree:          "tree",
	AlgorithmLayered:       "layered",
	AlgorithmForceDirected: "forceDirected",
	AlgorithmOrganic:       "organic",
	AlgorithmCircular:      "circular",
	AlgorithmGrid:          "grid",
}

// String returns the canonical identifier for the algorithm.
func (a Algorithm) String() string {
	if s, ok := algorithmNames[a]; ok {
		return s
	}
	return "unknown"
}

// Valid reports whether the algorithm is a known variant (including Auto).
func (a Algorithm) Valid() bool {
	_, ok := algorithmNames[a]
	return ok
}

// MarshalText implements encoding.TextMarshaler.
func (a Algorithm) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *Algorithm) UnmarshalText(text []byte) error {
	parsed, err := ParseAlgorithm(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// ParseAlgorithm parses an algorithm identifier. The empty string maps to
// AlgorithmAuto. Matching is case-insensitive and ignores hyphens and
// underscores, so "force-directed" and "forceDirected" are equivalent.
func ParseAlgorithm(s string) (Algorithm, error) {
	if s == "" {
		return AlgorithmAuto, nil
	}
	norm := strings.ToLower(strings.NewReplacer("-", "", "_", "").Replace(s))
	for a, name := range algorithmNames {
		if norm == strings.ToLower(name) {
			return a, nil
		}
	}
	return AlgorithmAuto, errors.New(errors.ErrCodeInvalidAlgorithm,
		"unknown algorithm: %q (must be one of: hierarchical, tree, layered, forceDirected, organic, circular, grid)", s)
}

// Direction selects the rank axis for the rank-based algorithms.
type Direction int

const (
	// DirectionTB places ranks top to bottom (rank axis is Y).
	DirectionTB Direction = iota
	// DirectionLR places ranks left to right (rank axis is X).
	DirectionLR
)

// String returns "TB" or "LR".
func (d Direction) String() string {
	if d == DirectionLR {
		return "LR"
	}
	return "TB"
}

// ParseDirection parses "TB" or "LR" (case-insensitive). Empty defaults to TB.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToUpper(s) {
	case "", "TB":
		return DirectionTB, nil
	case "LR":
		return DirectionLR, nil
	}
	return DirectionTB, errors.New(errors.ErrCodeInvalidDirection,
		"unknown direction: %q (must be TB or LR)", s)
}

// Alignment controls how shorter ranks are aligned against the widest rank.
type Alignment int

const (
	// AlignCenter centers each rank on the widest rank (default).
	AlignCenter Alignment = iota
	// AlignStart flushes each rank to the layout origin side.
	AlignStart
	// AlignEnd flushes each rank to the far side.
	AlignEnd
)

// String returns "center", "start", or "end".
func (a Alignment) String() string {
	switch a {
	case AlignStart:
		return "start"
	case AlignEnd:
		return "end"
	}
	return "center"
}

// ParseAlignment parses "start", "center", or "end" (case-insensitive).
// Empty defaults to center.
func ParseAlignment(s string) (Alignment, error) {
	switch strings.ToLower(s) {
	case "", "center":
		return AlignCenter, nil
	case "start":
		return AlignStart, nil
	case "end":
		return AlignEnd, nil
	}
	return AlignCenter, errors.New(errors.ErrCodeInvalidAlignment,
		"unknown alignment: %q (must be start, center, or end)", s)
}

// Empirical defaults. The spacing values match what the hosting diagram
// editor exposes on its sliders; the force constants are tuned for graphs of
// up to a few hundred nodes and are deliberately kept configurable instead
// of being re-derived.
const (
	DefaultNodeSpacing  = 60.0
	DefaultLevelSpacing = 100.0
	DefaultPadding      = 40.0

	DefaultSeed          = uint64(42)
	DefaultMaxIterations = 300
	DefaultConvergence   = 0.5

	// DefaultDensityThreshold separates dense cyclic graphs (force-directed)
	// from sparse ones (organic) in the selector, in edges per node.
	DefaultDensityThreshold = 1.5
)

// Config controls a layout run. The zero value is usable after
// [Config.SetDefaults]; the engine applies defaults automatically.
type Config struct {
	// Algorithm selects the strategy; AlgorithmAuto invokes the selector.
	Algorithm Algorithm

	// Direction is the rank axis for hierarchical/tree/layered.
	Direction Direction

	// NodeSpacing is the minimum gap between siblings in a rank, in px.
	NodeSpacing float64

	// LevelSpacing is the gap between ranks or rings, in px.
	LevelSpacing float64

	// Padding is the margin from the layout origin, in px.
	Padding float64

	// Alignment aligns shorter ranks against the widest rank.
	Alignment Alignment

	// Seed drives the deterministic initial placement of the force-directed
	// and organic algorithms. Identical input and seed reproduce identical
	// runs.
	Seed uint64

	// MaxIterations caps the force simulation. Zero means the default.
	MaxIterations int

	// Convergence is the per-iteration displacement below which the force
	// simulation stops early, in px. Zero means the default.
	Convergence float64
}

// SetDefaults fills zero-valued fields with the package defaults.
// It is idempotent.
func (c *Config) SetDefaults() {
	if c.NodeSpacing == 0 {
		c.NodeSpacing = DefaultNodeSpacing
	}
	if c.LevelSpacing == 0 {
		c.LevelSpacing = DefaultLevelSpacing
	}
	if c.Padding == 0 {
		c.Padding = DefaultPadding
	}
	if c.Seed == 0 {
		c.Seed = DefaultSeed
	}
	if c.MaxIterations == 0 {
		c.MaxIterations = DefaultMaxIterations
	}
	if c.Convergence == 0 {
		c.Convergence = DefaultConvergence
	}
}

// Validate checks the configuration and returns a typed validation error for
// the first problem found. Call SetDefaults first; Validate does not apply
// defaults.
func (c *Config) Validate() error {
	if !c.Algorithm.Valid() {
		return errors.New(errors.ErrCodeInvalidAlgorithm, "unknown algorithm value: %d", int(c.Algorithm))
	}
	if c.Direction != DirectionTB && c.Direction != DirectionLR {
		return errors.New(errors.ErrCodeInvalidDirection, "unknown direction value: %d", int(c.Direction))
	}
	if c.Alignment != AlignStart && c.Alignment != AlignCenter && c.Alignment != AlignEnd {
		return errors.New(errors.ErrCodeInvalidAlignment, "unknown alignment value: %d", int(c.Alignment))
	}
	if err := errors.ValidateSpacing("nodeSpacing", c.NodeSpacing); err != nil {
		return err
	}
	if err := errors.ValidateSpacing("levelSpacing", c.LevelSpacing); err != nil {
		return err
	}
	if err := errors.ValidateSpacing("padding", c.Padding); err != nil {
		return err
	}
	if c.MaxIterations < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "maxIterations cannot be negative: %d", c.MaxIterations)
	}
	if c.Convergence < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "convergence cannot be negative: %g", c.Convergence)
	}
	return nil
}
