package layout

import "testing"

func TestRecommendDecisionTable(t *testing.T) {
	tests := []struct {
		name        string
		nodes       []Node
		connections []Connection
		want        Algorithm
	}{
		{
			name:  "single node",
			nodes: makeNodes("only"),
			want:  AlgorithmGrid,
		},
		{
			name:  "nodes without connections",
			nodes: makeNodes("a", "b", "c", "d"),
			want:  AlgorithmGrid,
		},
		{
			name:  "chain is a tree",
			nodes: makeNodes("a", "b", "c", "d", "e"),
			connections: []Connection{
				{From: "a", To: "b"},
				{From: "b", To: "c"},
				{From: "c", To: "d"},
				{From: "d", To: "e"},
			},
			want: AlgorithmTree,
		},
		{
			name:  "branching tree",
			nodes: makeNodes("root", "l", "r", "ll", "lr"),
			connections: []Connection{
				{From: "root", To: "l"},
				{From: "root", To: "r"},
				{From: "l", To: "ll"},
				{From: "l", To: "lr"},
			},
			want: AlgorithmTree,
		},
		{
			name:  "diamond needs hierarchy",
			nodes: makeNodes("a", "b", "c", "d"),
			connections: []Connection{
				{From: "a", To: "b"},
				{From: "a", To: "c"},
				{From: "b", To: "d"},
				{From: "c", To: "d"},
			},
			want: AlgorithmHierarchical,
		},
		{
			name:  "disconnected dags get layered",
			nodes: makeNodes("a", "b", "c", "x", "y"),
			connections: []Connection{
				{From: "a", To: "b"},
				{From: "a", To: "c"},
				{From: "b", To: "c"},
				{From: "x", To: "y"},
			},
			want: AlgorithmLayered,
		},
		{
			name:  "sparse cycle gets organic",
			nodes: makeNodes("a", "b", "c"),
			connections: []Connection{
				{From: "a", To: "b"},
				{From: "b", To: "c"},
				{From: "c", To: "a"},
			},
			want: AlgorithmOrganic,
		},
		{
			name:  "dense cycle gets force directed",
			nodes: makeNodes("a", "b", "c", "d"),
			connections: []Connection{
				{From: "a", To: "b"},
				{From: "b", To: "c"},
				{From: "c", To: "d"},
				{From: "d", To: "a"},
				{From: "a", To: "c"},
				{From: "b", To: "d"},
				{From: "c", To: "a"},
			},
			want: AlgorithmForceDirected,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := BuildGraph(tt.nodes, tt.connections, nil)
			if err != nil {
				t.Fatalf("BuildGraph() error = %v", err)
			}
			rec := Recommend(g)
			if rec.Algorithm != tt.want {
				t.Errorf("Recommend() = %v, want %v", rec.Algorithm, tt.want)
			}
			if rec.Reason == "" {
				t.Error("Recommend() returned an empty reason")
			}
		})
	}
}

func TestRecommendDensityBoundary(t *testing.T) {
	// Exactly at the threshold (6 connections / 4 nodes = 1.5) stays organic;
	// only strictly denser graphs switch to force-directed.
	g, err := BuildGraph(makeNodes("a", "b", "c", "d"), []Connection{
		{From: "a", To: "b"},
		{From: "b", To: "c"},
		{From: "c", To: "d"},
		{From: "d", To: "a"},
		{From: "a", To: "c"},
		{From: "b", To: "d"},
	}, nil)
	if err != nil {
		t.Fatalf("BuildGraph() error = %v", err)
	}
	if rec := Recommend(g); rec.Algorithm != AlgorithmOrganic {
		t.Errorf("Recommend() at density 1.5 = %v, want %v", rec.Algorithm, AlgorithmOrganic)
	}
}
