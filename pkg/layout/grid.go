package layout

import "math"

// layoutGrid packs nodes into the smallest near-square grid in input order,
// ignoring connections entirely. Cell size is the largest node extent plus
// the configured spacing, so no two cells overlap regardless of node sizes.
func layoutGrid(g *Graph, cfg Config) map[string]Position {
	nodes := g.Nodes()
	positions := make(map[string]Position, len(nodes))
	if len(nodes) == 0 {
		return positions
	}

	cols := int(math.Ceil(math.Sqrt(float64(len(nodes)))))
	if cols < 1 {
		cols = 1
	}

	maxW, maxH := 0.0, 0.0
	for _, n := range nodes {
		s := n.EffectiveSize()
		maxW = math.Max(maxW, s.Width)
		maxH = math.Max(maxH, s.Height)
	}
	cellW := maxW + cfg.NodeSpacing
	cellH := maxH + cfg.LevelSpacing

	for i, n := range nodes {
		col := i % cols
		row := i / cols
		positions[n.ID] = Position{
			X: cfg.Padding + float64(col)*cellW + maxW/2,
			Y: cfg.Padding + float64(row)*cellH + maxH/2,
		}
	}
	return positions
}
