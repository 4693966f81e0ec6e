package layout

import "fmt"

// Recommendation is the selector's verdict: which algorithm fits the graph's
// shape, and a short justification suitable for showing to the user before
// they commit to the layout.
type Recommendation struct {
	Algorithm Algorithm `json:"algorithm"`
	Reason    string    `json:"reason"`
}

// Recommend inspects the graph's shape and recommends a layout algorithm.
//
// The decision table, first match wins:
//
//   - at most one node, or no connections        -> grid
//   - acyclic, every node has at most one parent -> tree
//   - acyclic, single connected component        -> hierarchical
//   - acyclic, multiple components               -> layered
//   - cyclic, density > threshold                -> forceDirected
//   - cyclic                                     -> organic
//
// The degenerate row is checked first: a lone node technically satisfies the
// tree condition too, but grid is the only sensible answer for it.
func Recommend(g *Graph) Recommendation {
	switch {
	case g.NodeCount() <= 1 || g.ConnectionCount() == 0:
		return Recommendation{
			Algorithm: AlgorithmGrid,
			Reason:    "The diagram has no connections to follow, so a compact grid arrangement works best.",
		}

	case !g.HasCycle() && g.MaxParent() <= 1:
		return Recommendation{
			Algorithm: AlgorithmTree,
			Reason:    "Every node has a single parent and there are no cycles, so a tree layout shows the flow most clearly.",
		}

	case !g.HasCycle() && len(g.Components()) == 1:
		return Recommendation{
			Algorithm: AlgorithmHierarchical,
			Reason:    "The diagram is a connected acyclic flow, so a hierarchical layout ranks it by depth.",
		}

	case !g.HasCycle():
		return Recommendation{
			Algorithm: AlgorithmLayered,
			Reason: fmt.Sprintf("The diagram has %d disconnected groups without cycles, so a layered layout places each group side by side.",
				len(g.Components())),
		}

	case g.Density() > DefaultDensityThreshold:
		return Recommendation{
			Algorithm: AlgorithmForceDirected,
			Reason: fmt.Sprintf("The diagram contains cycles and is densely connected (%.1f connections per node), so a force-directed layout untangles it best.",
				g.Density()),
		}

	default:
		return Recommendation{
			Algorithm: AlgorithmOrganic,
			Reason:    "The diagram contains cycles but is sparsely connected, so an organic layout groups related nodes naturally.",
		}
	}
}
