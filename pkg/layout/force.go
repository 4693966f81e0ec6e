package layout

import (
	"context"
	"hash/fnv"
	"math"
)

// forceDamping scales the net force into a per-iteration velocity. Values
// below 1 make the simulation settle instead of oscillating.
const forceDamping = 0.85

// minSeparation caps the repulsion denominator so coincident nodes do not
// produce singular forces.
const minSeparation = 1.0

// layoutForce runs the repulsion/spring simulation with id-hashed initial
// placement. Returns the positions and the number of iterations executed.
// The context is checked between iterations so long simulations can be
// cancelled; on cancellation the positions computed so far are discarded and
// the context error is returned.
func layoutForce(ctx context.Context, g *Graph, cfg Config) (map[string]Position, int, error) {
	nodes := g.Nodes()
	pos := make([]Position, len(nodes))

	// Deterministic pseudo-random scatter over an area that grows with the
	// node count, so dense graphs start spread out.
	spread := math.Sqrt(float64(len(nodes))) * (cfg.NodeSpacing + cfg.LevelSpacing)
	if spread <= 0 {
		spread = 1
	}
	for i, n := range nodes {
		u, v := unitPair(cfg.Seed, n.ID)
		pos[i] = Position{X: u * spread, Y: v * spread}
	}

	return simulate(ctx, g, cfg, pos)
}

// layoutOrganic is the force simulation with clustering-aware seeding: each
// connected component starts around its own centroid, with centroids spread
// apart on a coarse grid, so disconnected subgraphs settle as visually
// separate clusters.
func layoutOrganic(ctx context.Context, g *Graph, cfg Config) (map[string]Position, int, error) {
	nodes := g.Nodes()
	pos := make([]Position, len(nodes))

	index := make(map[string]int, len(nodes))
	for i, n := range nodes {
		index[n.ID] = i
	}

	components := g.Components()
	cols := int(math.Ceil(math.Sqrt(float64(len(components)))))
	if cols < 1 {
		cols = 1
	}

	for k, component := range components {
		// Component centroid on a coarse grid; cell size scales with the
		// component so large clusters get room.
		cell := math.Sqrt(float64(len(component)))*(cfg.NodeSpacing+cfg.LevelSpacing) + cfg.LevelSpacing
		cx := float64(k%cols) * cell * 2
		cy := float64(k/cols) * cell * 2

		jitter := math.Sqrt(float64(len(component))) * cfg.NodeSpacing
		if jitter <= 0 {
			jitter = 1
		}
		for _, id := range component {
			u, v := unitPair(cfg.Seed, id)
			i := index[id]
			pos[i] = Position{X: cx + (u-0.5)*jitter, Y: cy + (v-0.5)*jitter}
		}
	}

	return simulate(ctx, g, cfg, pos)
}

// simulate iterates the physical model: inverse-square repulsion between
// every node pair, spring attraction along every connection, velocities
// damped by a constant factor. Stops at the iteration cap or as soon as the
// largest per-node displacement falls below the convergence threshold.
func simulate(ctx context.Context, g *Graph, cfg Config, pos []Position) (map[string]Position, int, error) {
	nodes := g.Nodes()
	n := len(nodes)

	index := make(map[string]int, n)
	for i, node := range nodes {
		index[node.ID] = i
	}
	type edge struct{ a, b int }
	edges := make([]edge, 0, g.ConnectionCount())
	for _, c := range g.Connections() {
		if c.From == c.To {
			continue // self-loops exert no spring force
		}
		edges = append(edges, edge{index[c.From], index[c.To]})
	}

	restLength := (cfg.NodeSpacing + cfg.LevelSpacing) / 2
	if restLength <= 0 {
		restLength = 1
	}
	repulsion := restLength * restLength

	fx := make([]float64, n)
	fy := make([]float64, n)

	iterations := 0
	for iterations < cfg.MaxIterations {
		if err := ctx.Err(); err != nil {
			return nil, iterations, err
		}
		iterations++

		for i := range fx {
			fx[i], fy[i] = 0, 0
		}

		// All-pairs repulsion, inverse to squared distance.
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				dx := pos[i].X - pos[j].X
				dy := pos[i].Y - pos[j].Y
				dist := math.Hypot(dx, dy)
				if dist < minSeparation {
					// Coincident nodes: push apart along a deterministic axis.
					dist = minSeparation
					dx, dy = 1, 0
				}
				force := repulsion / (dist * dist)
				ux, uy := dx/dist, dy/dist
				fx[i] += force * ux
				fy[i] += force * uy
				fx[j] -= force * ux
				fy[j] -= force * uy
			}
		}

		// Spring attraction along connections, proportional to the stretch
		// beyond the rest length.
		for _, e := range edges {
			dx := pos[e.b].X - pos[e.a].X
			dy := pos[e.b].Y - pos[e.a].Y
			dist := math.Hypot(dx, dy)
			if dist < minSeparation {
				dist = minSeparation
			}
			force := (dist - restLength) / restLength
			ux, uy := dx/dist, dy/dist
			fx[e.a] += force * ux
			fy[e.a] += force * uy
			fx[e.b] -= force * ux
			fy[e.b] -= force * uy
		}

		maxDisp := 0.0
		for i := 0; i < n; i++ {
			vx := fx[i] * forceDamping
			vy := fy[i] * forceDamping
			pos[i].X += vx
			pos[i].Y += vy
			if d := math.Hypot(vx, vy); d > maxDisp {
				maxDisp = d
			}
		}

		if maxDisp < cfg.Convergence {
			break
		}
	}

	translateToPadding(nodes, pos, cfg.Padding)

	result := make(map[string]Position, n)
	for i, node := range nodes {
		result[node.ID] = pos[i]
	}
	return result, iterations, nil
}

// translateToPadding shifts all positions so the arrangement's top-left
// extent sits at (padding, padding).
func translateToPadding(nodes []Node, pos []Position, padding float64) {
	if len(nodes) == 0 {
		return
	}
	minX, minY := math.Inf(1), math.Inf(1)
	for i, n := range nodes {
		s := n.EffectiveSize()
		minX = math.Min(minX, pos[i].X-s.Width/2)
		minY = math.Min(minY, pos[i].Y-s.Height/2)
	}
	for i := range pos {
		pos[i].X += padding - minX
		pos[i].Y += padding - minY
	}
}

// unitPair derives two floats in [0, 1) from the seed and the node id, via
// FNV hashing and a splitmix64 finalizer. The same seed and id always yield
// the same pair, which is what makes force runs reproducible.
func unitPair(seed uint64, id string) (float64, float64) {
	h := fnv.New64a()
	h.Write([]byte(id))
	x := splitmix64(seed ^ h.Sum64())
	y := splitmix64(x)
	return unitFloat(x), unitFloat(y)
}

func splitmix64(x uint64) uint64 {
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	return x ^ (x >> 31)
}

func unitFloat(x uint64) float64 {
	return float64(x>>11) / float64(1<<53)
}
