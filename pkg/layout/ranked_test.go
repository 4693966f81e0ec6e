package layout

import (
	"math"
	"testing"
)

func TestRanksFollowLongestPath(t *testing.T) {
	// a -> b -> c with a shortcut a -> c: longest path puts c on rank 2.
	g, err := BuildGraph(makeNodes("a", "b", "c"), []Connection{
		{From: "a", To: "b"},
		{From: "b", To: "c"},
		{From: "a", To: "c"},
	}, nil)
	if err != nil {
		t.Fatalf("BuildGraph() error = %v", err)
	}

	ranks := Ranks(g)
	want := map[string]int{"a": 0, "b": 1, "c": 2}
	for id, r := range want {
		if ranks[id] != r {
			t.Errorf("rank(%s) = %d, want %d", id, ranks[id], r)
		}
	}
}

func TestRanksMonotonicAcrossConnections(t *testing.T) {
	g, err := BuildGraph(makeNodes("a", "b", "c", "d", "e"), []Connection{
		{From: "a", To: "b"},
		{From: "a", To: "c"},
		{From: "b", To: "d"},
		{From: "c", To: "d"},
		{From: "d", To: "e"},
		{From: "e", To: "b"}, // back-edge, exempt from monotonicity
	}, nil)
	if err != nil {
		t.Fatalf("BuildGraph() error = %v", err)
	}

	ranks := Ranks(g)
	for _, c := range g.Connections() {
		if g.IsBackEdge(c) {
			continue
		}
		if ranks[c.To] < ranks[c.From]+1 {
			t.Errorf("rank(%s)=%d, rank(%s)=%d: child rank must exceed parent rank",
				c.From, ranks[c.From], c.To, ranks[c.To])
		}
	}
}

func TestHierarchicalPlacesRanksOnLevels(t *testing.T) {
	g, err := BuildGraph(makeNodes("a", "b", "c", "d"), []Connection{
		{From: "a", To: "b"},
		{From: "a", To: "c"},
		{From: "b", To: "d"},
		{From: "c", To: "d"},
	}, nil)
	if err != nil {
		t.Fatalf("BuildGraph() error = %v", err)
	}

	cfg := defaultCfg()
	positions := layoutHierarchical(g, cfg)
	if len(positions) != 4 {
		t.Fatalf("layoutHierarchical() positioned %d nodes, want 4", len(positions))
	}

	// Top-to-bottom: rank axis is Y, one level per rank.
	if positions["a"].Y != cfg.Padding {
		t.Errorf("Y(a) = %v, want %v", positions["a"].Y, cfg.Padding)
	}
	if positions["b"].Y != positions["c"].Y {
		t.Errorf("Y(b) = %v, Y(c) = %v: same rank must share a level", positions["b"].Y, positions["c"].Y)
	}
	if got, want := positions["d"].Y-positions["b"].Y, cfg.LevelSpacing; got != want {
		t.Errorf("level gap = %v, want %v", got, want)
	}
}

func TestHierarchicalSiblingSpacing(t *testing.T) {
	g, err := BuildGraph(makeNodes("root", "s1", "s2", "s3"), []Connection{
		{From: "root", To: "s1"},
		{From: "root", To: "s2"},
		{From: "root", To: "s3"},
	}, nil)
	if err != nil {
		t.Fatalf("BuildGraph() error = %v", err)
	}

	cfg := defaultCfg()
	positions := layoutHierarchical(g, cfg)

	// Center gaps between adjacent siblings must clear node width + spacing.
	want := DefaultNodeWidth + cfg.NodeSpacing
	for _, pair := range [][2]string{{"s1", "s2"}, {"s2", "s3"}} {
		gap := math.Abs(positions[pair[1]].X - positions[pair[0]].X)
		if gap < want {
			t.Errorf("gap(%s, %s) = %v, want >= %v", pair[0], pair[1], gap, want)
		}
	}
}

func TestHierarchicalLeftRightSwapsAxes(t *testing.T) {
	g, err := BuildGraph(makeNodes("a", "b"), []Connection{
		{From: "a", To: "b"},
	}, nil)
	if err != nil {
		t.Fatalf("BuildGraph() error = %v", err)
	}

	cfg := defaultCfg()
	cfg.Direction = DirectionLR
	positions := layoutHierarchical(g, cfg)

	if positions["a"].X != cfg.Padding {
		t.Errorf("X(a) = %v, want %v (rank axis should be X in LR mode)", positions["a"].X, cfg.Padding)
	}
	if got, want := positions["b"].X-positions["a"].X, cfg.LevelSpacing; got != want {
		t.Errorf("rank gap on X = %v, want %v", got, want)
	}
	if positions["a"].Y != positions["b"].Y {
		t.Errorf("Y(a) = %v, Y(b) = %v: chain should stay on one cross line", positions["a"].Y, positions["b"].Y)
	}
}

func TestTreeKeepsRanksWithMultipleParents(t *testing.T) {
	// d has two parents. The tree view orders it under its first parent, but
	// rank assignment still honors both connections.
	g, err := BuildGraph(makeNodes("a", "b", "c", "d"), []Connection{
		{From: "a", To: "b"},
		{From: "a", To: "c"},
		{From: "b", To: "d"},
		{From: "c", To: "d"},
	}, nil)
	if err != nil {
		t.Fatalf("BuildGraph() error = %v", err)
	}

	cfg := defaultCfg()
	positions := layoutTree(g, cfg)
	if len(positions) != 4 {
		t.Fatalf("layoutTree() positioned %d nodes, want 4", len(positions))
	}
	if positions["d"].Y <= positions["b"].Y {
		t.Errorf("Y(d) = %v, Y(b) = %v: d must rank below both parents", positions["d"].Y, positions["b"].Y)
	}
}

func TestLayeredTilesComponentsApart(t *testing.T) {
	g, err := BuildGraph(makeNodes("a", "b", "x", "y"), []Connection{
		{From: "a", To: "b"},
		{From: "x", To: "y"},
	}, nil)
	if err != nil {
		t.Fatalf("BuildGraph() error = %v", err)
	}

	cfg := defaultCfg()
	positions := layoutLayered(g, cfg)
	if len(positions) != 4 {
		t.Fatalf("layoutLayered() positioned %d nodes, want 4", len(positions))
	}

	// Components tile along the cross axis (X in TB mode) without overlap.
	firstMax := math.Max(positions["a"].X, positions["b"].X) + DefaultNodeWidth/2
	secondMin := math.Min(positions["x"].X, positions["y"].X) - DefaultNodeWidth/2
	if secondMin-firstMax < cfg.NodeSpacing {
		t.Errorf("component gap = %v, want >= %v", secondMin-firstMax, cfg.NodeSpacing)
	}
}

func TestRankedLayoutHandlesCycles(t *testing.T) {
	g, err := BuildGraph(makeNodes("a", "b", "c"), []Connection{
		{From: "a", To: "b"},
		{From: "b", To: "c"},
		{From: "c", To: "a"},
	}, nil)
	if err != nil {
		t.Fatalf("BuildGraph() error = %v", err)
	}

	positions := layoutHierarchical(g, defaultCfg())
	if len(positions) != 3 {
		t.Fatalf("layoutHierarchical() positioned %d nodes, want 3", len(positions))
	}
	for id, pos := range positions {
		if math.IsNaN(pos.X) || math.IsNaN(pos.Y) || math.IsInf(pos.X, 0) || math.IsInf(pos.Y, 0) {
			t.Errorf("position(%s) = %v, want finite coordinates", id, pos)
		}
	}
}

func TestAlignmentShiftsShortRanks(t *testing.T) {
	// Rank 0 has one node, rank 1 has three: rank 0 is the short one.
	g, err := BuildGraph(makeNodes("root", "s1", "s2", "s3"), []Connection{
		{From: "root", To: "s1"},
		{From: "root", To: "s2"},
		{From: "root", To: "s3"},
	}, nil)
	if err != nil {
		t.Fatalf("BuildGraph() error = %v", err)
	}

	cfgStart := defaultCfg()
	cfgStart.Alignment = AlignStart
	cfgCenter := defaultCfg()
	cfgCenter.Alignment = AlignCenter
	cfgEnd := defaultCfg()
	cfgEnd.Alignment = AlignEnd

	start := layoutHierarchical(g, cfgStart)["root"].X
	center := layoutHierarchical(g, cfgCenter)["root"].X
	end := layoutHierarchical(g, cfgEnd)["root"].X

	if !(start < center && center < end) {
		t.Errorf("root X by alignment: start=%v center=%v end=%v, want strictly increasing", start, center, end)
	}
}
