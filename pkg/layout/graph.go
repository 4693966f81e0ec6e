package layout

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/troubleduxj/flowlayout/pkg/errors"
)

// Graph is the derived adjacency view the algorithms work on. It is built
// once per layout run from the caller's nodes and connections, holds copies
// of both, and is never mutated after construction, so a single Graph can be
// handed to any algorithm (or several, concurrently).
type Graph struct {
	nodes []Node
	index map[string]int // node id -> position in nodes

	connections []Connection // valid connections, input order

	outgoing map[string][]string // id -> child ids, connection order
	incoming map[string][]string // id -> parent ids, connection order

	roots []string // in-degree 0, input order (synthetic roots for pure cycles)
	sinks []string // out-degree 0, input order

	backEdges  map[Connection]bool
	components [][]string // undirected components, node ids in input order
	hasCycle   bool
}

// BuildGraph validates nodes and connections and derives the adjacency
// representation. Duplicate node ids are a validation error. Connections
// referencing unknown node ids are dropped with a warning on logger; the
// graph is still built from the remaining edges. A nil logger discards the
// warnings.
func BuildGraph(nodes []Node, connections []Connection, logger *log.Logger) (*Graph, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	g := &Graph{
		nodes:     make([]Node, len(nodes)),
		index:     make(map[string]int, len(nodes)),
		outgoing:  make(map[string][]string, len(nodes)),
		incoming:  make(map[string][]string, len(nodes)),
		backEdges: make(map[Connection]bool),
	}

	for i, n := range nodes {
		if err := errors.ValidateNodeID(n.ID); err != nil {
			return nil, err
		}
		if _, exists := g.index[n.ID]; exists {
			return nil, errors.New(errors.ErrCodeDuplicateNodeID, "duplicate node id: %q", n.ID)
		}
		g.nodes[i] = n
		g.index[n.ID] = i
	}

	for _, c := range connections {
		_, fromOK := g.index[c.From]
		_, toOK := g.index[c.To]
		if !fromOK || !toOK {
			logger.Warn("dropping connection with unknown endpoint",
				"from", c.From, "to", c.To)
			continue
		}
		g.connections = append(g.connections, c)
		g.outgoing[c.From] = append(g.outgoing[c.From], c.To)
		g.incoming[c.To] = append(g.incoming[c.To], c.From)
	}

	g.findRootsAndSinks()
	g.detectBackEdges()
	g.findComponents()

	return g, nil
}

// NodeCount returns the number of nodes.
func (g *Graph) NodeCount() int { return len(g.nodes) }

// ConnectionCount returns the number of valid connections.
func (g *Graph) ConnectionCount() int { return len(g.connections) }

// Nodes returns the graph's node copies in input order.
// The returned slice must not be modified.
func (g *Graph) Nodes() []Node { return g.nodes }

// Connections returns the valid connections in input order.
// The returned slice must not be modified.
func (g *Graph) Connections() []Connection { return g.connections }

// Node returns the node with the given id and true, or a zero Node and false.
func (g *Graph) Node(id string) (Node, bool) {
	i, ok := g.index[id]
	if !ok {
		return Node{}, false
	}
	return g.nodes[i], true
}

// Children returns the ids this node connects to, in connection order.
func (g *Graph) Children(id string) []string { return g.outgoing[id] }

// Parents returns the ids that connect to this node, in connection order.
func (g *Graph) Parents(id string) []string { return g.incoming[id] }

// InDegree returns the number of incoming connections.
func (g *Graph) InDegree(id string) int { return len(g.incoming[id]) }

// OutDegree returns the number of outgoing connections.
func (g *Graph) OutDegree(id string) int { return len(g.outgoing[id]) }

// Degree returns the total degree, ignoring edge direction.
func (g *Graph) Degree(id string) int { return len(g.incoming[id]) + len(g.outgoing[id]) }

// Roots returns the entry nodes. For graphs with no in-degree-0 node (pure
// cycles), every node with minimum in-degree acts as a synthetic root.
func (g *Graph) Roots() []string { return g.roots }

// Sinks returns nodes with no outgoing connections.
func (g *Graph) Sinks() []string { return g.sinks }

// HasCycle reports whether a directed cycle exists.
func (g *Graph) HasCycle() bool { return g.hasCycle }

// IsBackEdge reports whether the connection was classified as a back-edge
// during DFS. Rank assignment skips back-edges so cycles cannot create
// infinite rank chains; the connection itself is still part of the graph.
func (g *Graph) IsBackEdge(c Connection) bool { return g.backEdges[c] }

// BackEdgeCount returns the number of detected back-edges.
func (g *Graph) BackEdgeCount() int { return len(g.backEdges) }

// Components returns the undirected connected components. Each component
// lists node ids in input order; components are ordered by their first node.
func (g *Graph) Components() [][]string { return g.components }

// Density returns connections per node, the selector's density measure.
// Returns 0 for an empty graph.
func (g *Graph) Density() float64 {
	if len(g.nodes) == 0 {
		return 0
	}
	return float64(len(g.connections)) / float64(len(g.nodes))
}

// MaxParent reports whether any node has more than one parent.
func (g *Graph) MaxParent() int {
	max := 0
	for _, n := range g.nodes {
		if d := len(g.incoming[n.ID]); d > max {
			max = d
		}
	}
	return max
}

func (g *Graph) findRootsAndSinks() {
	minIn := -1
	for _, n := range g.nodes {
		in := len(g.incoming[n.ID])
		if in == 0 {
			g.roots = append(g.roots, n.ID)
		}
		if len(g.outgoing[n.ID]) == 0 {
			g.sinks = append(g.sinks, n.ID)
		}
		if minIn < 0 || in < minIn {
			minIn = in
		}
	}

	// Pure cycle: no natural root. Treat every minimum in-degree node as a
	// synthetic root so traversals and rank assignment have entry points.
	if len(g.roots) == 0 && len(g.nodes) > 0 {
		for _, n := range g.nodes {
			if len(g.incoming[n.ID]) == minIn {
				g.roots = append(g.roots, n.ID)
			}
		}
	}
}

// detectBackEdges classifies connections with a white/gray/black DFS.
// A connection into a gray (on-stack) node is a back-edge and marks a cycle.
// Traversal starts from roots, then any remaining unvisited node, both in
// input order, so classification is deterministic.
func (g *Graph) detectBackEdges() {
	const (
		white = iota
		gray
		black
	)

	color := make(map[string]int, len(g.nodes))

	var dfs func(id string)
	dfs = func(id string) {
		color[id] = gray
		for _, child := range g.outgoing[id] {
			switch color[child] {
			case white:
				dfs(child)
			case gray:
				g.backEdges[Connection{From: id, To: child}] = true
				g.hasCycle = true
			}
		}
		color[id] = black
	}

	for _, id := range g.roots {
		if color[id] == white {
			dfs(id)
		}
	}
	for _, n := range g.nodes {
		if color[n.ID] == white {
			dfs(n.ID)
		}
	}
}

// findComponents computes undirected reachability with BFS seeded in input
// order, so component membership and ordering are deterministic.
func (g *Graph) findComponents() {
	visited := make(map[string]bool, len(g.nodes))

	for _, seed := range g.nodes {
		if visited[seed.ID] {
			continue
		}
		var member []string
		queue := []string{seed.ID}
		visited[seed.ID] = true
		for len(queue) > 0 {
			id := queue[0]
			queue = queue[1:]
			member = append(member, id)
			for _, next := range g.outgoing[id] {
				if !visited[next] {
					visited[next] = true
					queue = append(queue, next)
				}
			}
			for _, next := range g.incoming[id] {
				if !visited[next] {
					visited[next] = true
					queue = append(queue, next)
				}
			}
		}
		// Re-emit members in input order for stable downstream iteration.
		ordered := make([]string, 0, len(member))
		inComponent := make(map[string]bool, len(member))
		for _, id := range member {
			inComponent[id] = true
		}
		for _, n := range g.nodes {
			if inComponent[n.ID] {
				ordered = append(ordered, n.ID)
			}
		}
		g.components = append(g.components, ordered)
	}
}
