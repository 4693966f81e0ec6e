package layout

import "math"

// layoutCircular places all nodes on a single ring. Ordering follows a
// breadth-first traversal (ignoring edge direction) from the lowest-degree
// root, which keeps connected nodes adjacent on the ring and minimizes long
// chords. The radius grows with the node count so the arc between neighbors
// stays at least NodeSpacing plus the widest node extent.
func layoutCircular(g *Graph, cfg Config) map[string]Position {
	nodes := g.Nodes()
	positions := make(map[string]Position, len(nodes))
	if len(nodes) == 0 {
		return positions
	}

	order := ringOrder(g)

	maxExtent := 0.0
	for _, n := range nodes {
		s := n.EffectiveSize()
		maxExtent = math.Max(maxExtent, math.Max(s.Width, s.Height))
	}

	n := float64(len(order))
	// Arc length between adjacent nodes >= NodeSpacing + widest extent, so
	// center distances clear the spacing floor even after chord shrinkage.
	radius := n * (cfg.NodeSpacing + maxExtent) / (2 * math.Pi)
	radius = math.Max(radius, cfg.LevelSpacing)

	centerX := cfg.Padding + radius + maxExtent/2
	centerY := cfg.Padding + radius + maxExtent/2

	step := 2 * math.Pi / n
	for i, id := range order {
		angle := -math.Pi/2 + float64(i)*step // start at twelve o'clock
		positions[id] = Position{
			X: centerX + radius*math.Cos(angle),
			Y: centerY + radius*math.Sin(angle),
		}
	}
	return positions
}

// ringOrder returns all node ids in BFS order from the lowest-degree root,
// covering remaining components (and unreachable nodes) in input order.
func ringOrder(g *Graph) []string {
	start := ""
	for _, id := range g.Roots() {
		if start == "" || g.Degree(id) < g.Degree(start) {
			start = id
		}
	}

	order := make([]string, 0, g.NodeCount())
	visited := make(map[string]bool, g.NodeCount())

	bfs := func(seed string) {
		queue := []string{seed}
		visited[seed] = true
		for len(queue) > 0 {
			id := queue[0]
			queue = queue[1:]
			order = append(order, id)
			for _, next := range g.Children(id) {
				if !visited[next] {
					visited[next] = true
					queue = append(queue, next)
				}
			}
			for _, next := range g.Parents(id) {
				if !visited[next] {
					visited[next] = true
					queue = append(queue, next)
				}
			}
		}
	}

	if start != "" {
		bfs(start)
	}
	for _, n := range g.Nodes() {
		if !visited[n.ID] {
			bfs(n.ID)
		}
	}
	return order
}
