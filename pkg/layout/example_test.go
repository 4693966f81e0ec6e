package layout_test

import (
	"context"
	"fmt"

	"github.com/troubleduxj/flowlayout/pkg/layout"
)

func Example() {
	nodes := []layout.Node{
		{ID: "trigger", Type: "webhook"},
		{ID: "transform", Type: "script"},
		{ID: "notify", Type: "email"},
	}
	connections := []layout.Connection{
		{From: "trigger", To: "transform"},
		{From: "transform", To: "notify"},
	}

	engine := layout.New(nil)
	result, err := engine.Layout(context.Background(), nodes, connections, layout.Config{})
	if err != nil {
		fmt.Println("layout failed:", err)
		return
	}

	fmt.Println("algorithm:", result.Algorithm)
	fmt.Println("reason:", result.Reason)
	for _, n := range result.Nodes {
		fmt.Printf("%s: (%.0f, %.0f)\n", n.ID, n.Position.X, n.Position.Y)
	}
	// Output:
	// algorithm: tree
	// reason: Every node has a single parent and there are no cycles, so a tree layout shows the flow most clearly.
	// trigger: (100, 40)
	// transform: (100, 140)
	// notify: (100, 240)
}

func ExampleEngine_Recommend() {
	nodes := []layout.Node{
		{ID: "a"}, {ID: "b"}, {ID: "c"},
	}
	connections := []layout.Connection{
		{From: "a", To: "b"},
		{From: "b", To: "c"},
		{From: "c", To: "a"},
	}

	rec, err := layout.New(nil).Recommend(nodes, connections)
	if err != nil {
		fmt.Println("recommend failed:", err)
		return
	}
	fmt.Println(rec.Algorithm)
	// Output:
	// organic
}
