package layout

import (
	"sort"
)

// orderingPasses is the number of barycenter sweeps over the ranks.
// Four alternating down/up passes settle most diagrams; more passes rarely
// remove further crossings.
const orderingPasses = 4

// layoutHierarchical ranks the whole graph by topological depth and orders
// each rank with the barycenter heuristic.
func layoutHierarchical(g *Graph, cfg Config) map[string]Position {
	return rankedLayout(g, cfg, allNodeIDs(g), false, 0)
}

// layoutTree is the hierarchical layout with multi-parent nodes reduced to
// their first discovered parent for ordering purposes. Rank assignment and
// the connections themselves are unchanged.
func layoutTree(g *Graph, cfg Config) map[string]Position {
	return rankedLayout(g, cfg, allNodeIDs(g), true, 0)
}

// layoutLayered lays out every connected component independently and tiles
// the components along the cross axis, separated by NodeSpacing.
func layoutLayered(g *Graph, cfg Config) map[string]Position {
	positions := make(map[string]Position, g.NodeCount())
	crossOffset := 0.0
	for _, component := range g.Components() {
		part := rankedLayout(g, cfg, component, false, crossOffset)
		extent := 0.0
		for id, pos := range part {
			positions[id] = pos
			node, _ := g.Node(id)
			s := node.EffectiveSize()
			far := crossCoord(pos, cfg.Direction) + crossSize(s, cfg.Direction)/2 - cfg.Padding
			if far > extent {
				extent = far
			}
		}
		crossOffset = extent + cfg.NodeSpacing
	}
	return positions
}

// rankedLayout runs the shared rank pipeline over a subset of nodes:
// longest-path rank assignment, barycenter ordering, coordinate assignment.
// crossOffset shifts the whole arrangement along the cross axis, which the
// layered variant uses to tile components.
func rankedLayout(g *Graph, cfg Config, ids []string, singleParent bool, crossOffset float64) map[string]Position {
	if len(ids) == 0 {
		return map[string]Position{}
	}
	ranks := assignRanks(g, ids)
	ordered := buildRankOrder(g, ranks, ids)
	orderRanks(g, ordered, ranks, singleParent)
	return assignRankCoordinates(g, ordered, cfg, crossOffset)
}

func allNodeIDs(g *Graph) []string {
	ids := make([]string, 0, g.NodeCount())
	for _, n := range g.Nodes() {
		ids = append(ids, n.ID)
	}
	return ids
}

// assignRanks computes longest-path-from-root ranks over the given subset
// with a Kahn-style topological traversal, as in layered drawing. Back-edges
// are excluded so cyclic inputs still get finite ranks; the acyclic
// reduction guarantees the queue drains completely.
func assignRanks(g *Graph, ids []string) map[string]int {
	inSubset := make(map[string]bool, len(ids))
	for _, id := range ids {
		inSubset[id] = true
	}

	inDegree := make(map[string]int, len(ids))
	ranks := make(map[string]int, len(ids))
	queue := make([]string, 0, len(ids))

	for _, id := range ids {
		degree := 0
		for _, parent := range g.Parents(id) {
			if inSubset[parent] && !g.IsBackEdge(Connection{From: parent, To: id}) {
				degree++
			}
		}
		inDegree[id] = degree
		if degree == 0 {
			queue = append(queue, id)
		}
	}

	for len(queue) > 0 {
		curr := queue[0]
		queue = queue[1:]

		for _, child := range g.Children(curr) {
			if !inSubset[child] || g.IsBackEdge(Connection{From: curr, To: child}) {
				continue
			}
			if rank := ranks[curr] + 1; rank > ranks[child] {
				ranks[child] = rank
			}
			inDegree[child]--
			if inDegree[child] == 0 {
				queue = append(queue, child)
			}
		}
	}

	return ranks
}

// buildRankOrder groups the subset by rank, preserving input order within
// each rank as the initial (and tie-breaking) order.
func buildRankOrder(g *Graph, ranks map[string]int, ids []string) [][]string {
	inSubset := make(map[string]bool, len(ids))
	maxRank := 0
	for _, id := range ids {
		inSubset[id] = true
		if r := ranks[id]; r > maxRank {
			maxRank = r
		}
	}

	ordered := make([][]string, maxRank+1)
	for _, n := range g.Nodes() {
		if inSubset[n.ID] {
			r := ranks[n.ID]
			ordered[r] = append(ordered[r], n.ID)
		}
	}
	return ordered
}

// orderRanks reduces crossings with the iterative barycenter heuristic:
// alternating downward and upward sweeps reposition each node at the mean
// order position of its neighbors in the adjacent rank. Sorting is stable,
// so ties keep input order and the result is deterministic.
func orderRanks(g *Graph, ordered [][]string, ranks map[string]int, singleParent bool) {
	if len(ordered) < 2 {
		return
	}

	firstParent := map[string]string{}
	if singleParent {
		for _, rank := range ordered {
			for _, id := range rank {
				if parents := g.Parents(id); len(parents) > 0 {
					firstParent[id] = parents[0]
				}
			}
		}
	}

	for pass := 0; pass < orderingPasses; pass++ {
		if pass%2 == 0 {
			for r := 1; r < len(ordered); r++ {
				sweepRank(g, ordered, ranks, r, r-1, singleParent, firstParent)
			}
		} else {
			for r := len(ordered) - 2; r >= 0; r-- {
				sweepRank(g, ordered, ranks, r, r+1, singleParent, firstParent)
			}
		}
	}
}

// sweepRank re-sorts ordered[r] by each node's barycenter in the adjacent
// rank adj. Nodes with no neighbor in the adjacent rank keep their current
// position as their barycenter, which leaves them roughly in place.
func sweepRank(g *Graph, ordered [][]string, ranks map[string]int, r, adj int, singleParent bool, firstParent map[string]string) {
	rank := ordered[r]
	adjPos := make(map[string]int, len(ordered[adj]))
	for i, id := range ordered[adj] {
		adjPos[id] = i
	}

	type entry struct {
		id  string
		bc  float64
		pos int
	}
	entries := make([]entry, len(rank))
	for i, id := range rank {
		entries[i] = entry{id: id, bc: barycenter(g, id, ranks, adjPos, adj < r, singleParent, firstParent, float64(i)), pos: i}
	}

	sort.SliceStable(entries, func(i, j int) bool { return entries[i].bc < entries[j].bc })

	for i, e := range entries {
		rank[i] = e.id
	}
}

// barycenter returns the mean adjacent-rank position of the node's
// neighbors, or fallback when it has none there. useParents selects which
// side of the node the adjacent rank is on.
func barycenter(g *Graph, id string, ranks map[string]int, adjPos map[string]int, useParents, singleParent bool, firstParent map[string]string, fallback float64) float64 {
	var neighbors []string
	if useParents {
		if singleParent {
			if p, ok := firstParent[id]; ok {
				neighbors = []string{p}
			}
		} else {
			neighbors = g.Parents(id)
		}
	} else {
		neighbors = g.Children(id)
	}

	sum, count := 0.0, 0
	for _, n := range neighbors {
		if pos, ok := adjPos[n]; ok {
			sum += float64(pos)
			count++
		}
	}
	if count == 0 {
		return fallback
	}
	return sum / float64(count)
}

// assignRankCoordinates converts the ordered ranks into positions. The rank
// axis advances by LevelSpacing per rank; the cross axis walks each rank
// honoring node sizes and NodeSpacing, then shifts the whole rank per the
// configured alignment relative to the widest rank.
func assignRankCoordinates(g *Graph, ordered [][]string, cfg Config, crossOffset float64) map[string]Position {
	extents := make([]float64, len(ordered))
	maxExtent := 0.0
	for r, rank := range ordered {
		extent := 0.0
		for i, id := range rank {
			node, _ := g.Node(id)
			extent += crossSize(node.EffectiveSize(), cfg.Direction)
			if i > 0 {
				extent += cfg.NodeSpacing
			}
		}
		extents[r] = extent
		if extent > maxExtent {
			maxExtent = extent
		}
	}

	positions := make(map[string]Position)
	for r, rank := range ordered {
		shift := 0.0
		switch cfg.Alignment {
		case AlignCenter:
			shift = (maxExtent - extents[r]) / 2
		case AlignEnd:
			shift = maxExtent - extents[r]
		}

		main := cfg.Padding + float64(r)*cfg.LevelSpacing
		cursor := cfg.Padding + crossOffset + shift
		for _, id := range rank {
			node, _ := g.Node(id)
			size := crossSize(node.EffectiveSize(), cfg.Direction)
			center := cursor + size/2
			positions[id] = makePosition(main, center, cfg.Direction)
			cursor += size + cfg.NodeSpacing
		}
	}
	return positions
}

// crossSize returns the node extent along the cross axis for the direction.
func crossSize(s Size, d Direction) float64 {
	if d == DirectionLR {
		return s.Height
	}
	return s.Width
}

// crossCoord returns the position's cross-axis coordinate for the direction.
func crossCoord(p Position, d Direction) float64 {
	if d == DirectionLR {
		return p.Y
	}
	return p.X
}

// makePosition builds a position from rank-axis and cross-axis coordinates.
func makePosition(main, cross float64, d Direction) Position {
	if d == DirectionLR {
		return Position{X: main, Y: cross}
	}
	return Position{X: cross, Y: main}
}

// Ranks exposes the longest-path rank of every node, for callers that want
// to inspect or test the layering (e.g. rank monotonicity checks).
func Ranks(g *Graph) map[string]int {
	return assignRanks(g, allNodeIDs(g))
}
