package layout

import "testing"

func TestGridUsesNearSquareColumns(t *testing.T) {
	g, err := BuildGraph(makeNodes("a", "b", "c", "d", "e", "f", "g", "h", "i"), nil, nil)
	if err != nil {
		t.Fatalf("BuildGraph() error = %v", err)
	}

	positions := layoutGrid(g, defaultCfg())
	if len(positions) != 9 {
		t.Fatalf("layoutGrid() positioned %d nodes, want 9", len(positions))
	}

	// Nine nodes pack as a 3x3 grid in input order.
	if positions["a"].X != positions["d"].X || positions["d"].X != positions["g"].X {
		t.Errorf("column 0 is not aligned: %v, %v, %v", positions["a"].X, positions["d"].X, positions["g"].X)
	}
	if positions["a"].Y != positions["b"].Y || positions["b"].Y != positions["c"].Y {
		t.Errorf("row 0 is not aligned: %v, %v, %v", positions["a"].Y, positions["b"].Y, positions["c"].Y)
	}
	if positions["d"].Y <= positions["a"].Y {
		t.Errorf("Y(d) = %v, want below row 0 at %v", positions["d"].Y, positions["a"].Y)
	}
}

func TestGridCellSpacing(t *testing.T) {
	g, err := BuildGraph(makeNodes("a", "b", "c", "d"), nil, nil)
	if err != nil {
		t.Fatalf("BuildGraph() error = %v", err)
	}

	cfg := defaultCfg()
	positions := layoutGrid(g, cfg)

	if got, want := positions["b"].X-positions["a"].X, DefaultNodeWidth+cfg.NodeSpacing; got != want {
		t.Errorf("column pitch = %v, want %v", got, want)
	}
	if got, want := positions["c"].Y-positions["a"].Y, DefaultNodeHeight+cfg.LevelSpacing; got != want {
		t.Errorf("row pitch = %v, want %v", got, want)
	}
}

func TestGridSingleNode(t *testing.T) {
	g, err := BuildGraph(makeNodes("only"), nil, nil)
	if err != nil {
		t.Fatalf("BuildGraph() error = %v", err)
	}

	cfg := defaultCfg()
	positions := layoutGrid(g, cfg)

	want := Position{X: cfg.Padding + DefaultNodeWidth/2, Y: cfg.Padding + DefaultNodeHeight/2}
	if positions["only"] != want {
		t.Errorf("position = %v, want %v", positions["only"], want)
	}
}

func TestGridIgnoresConnections(t *testing.T) {
	g, err := BuildGraph(makeNodes("a", "b", "c"), []Connection{
		{From: "c", To: "a"},
		{From: "a", To: "c"},
	}, nil)
	if err != nil {
		t.Fatalf("BuildGraph() error = %v", err)
	}

	withEdges := layoutGrid(g, defaultCfg())

	plain, err := BuildGraph(makeNodes("a", "b", "c"), nil, nil)
	if err != nil {
		t.Fatalf("BuildGraph() error = %v", err)
	}
	withoutEdges := layoutGrid(plain, defaultCfg())

	for id := range withEdges {
		if withEdges[id] != withoutEdges[id] {
			t.Errorf("position(%s) = %v with edges, %v without: grid must ignore connections",
				id, withEdges[id], withoutEdges[id])
		}
	}
}
