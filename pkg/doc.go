// Package pkg provides the core libraries for Flowlayout diagram layout.
//
// # Overview
//
// Flowlayout assigns positions to workflow diagram nodes so editors can offer
// one-click automatic arrangement. The pkg directory is organized into five
// main areas:
//
//  1. [layout] - Layout engine (graph model, algorithms, selector, orchestrator)
//  2. [graph] - Serialization types for diagrams and layout results
//  3. [pipeline] - Orchestration (load → layout → export) with caching
//  4. [render] - DOT/SVG/PNG output with pinned positions
//  5. [cache], [errors], [observability] - Shared infrastructure
//
// # Architecture
//
// The typical data flow through Flowlayout:
//
//	diagram.json (nodes + connections)
//	         ↓
//	    [graph] package (read + validate wire format)
//	         ↓
//	    [pipeline] package (caching, run ids, stage timing)
//	         ↓
//	    [layout] package (algorithm selection + positioning)
//	         ↓
//	    SVG/PNG/DOT/JSON output
//
// # Quick Start
//
// Load a diagram and compute a layout:
//
//	import (
//	    "context"
//	    "github.com/troubleduxj/flowlayout/pkg/graph"
//	    "github.com/troubleduxj/flowlayout/pkg/pipeline"
//	)
//
//	// 1. Load the diagram
//	d, _ := graph.ReadDiagramFile("workflow.json")
//
//	// 2. Run the pipeline (nil cache and keyer use sensible defaults)
//	runner := pipeline.NewRunner(nil, nil, nil)
//	defer runner.Close()
//
//	// 3. Compute positions; "auto" picks an algorithm from the structure
//	doc, _ := runner.ComputeLayout(context.Background(), d, pipeline.Options{})
//
//	// 4. Write the result
//	_ = graph.WriteLayoutFile(doc, "workflow.layout.json")
//
// # Main Packages
//
// [layout] - The layout engine. BuildGraph derives the structural model
// (roots, sinks, cycles, components, density); the hierarchical, tree,
// layered, forceDirected, organic, circular, and grid algorithms assign
// positions; Recommend picks an algorithm with a human-readable reason;
// Engine.Layout orchestrates validation, selection, dispatch, and bounds.
//
// [graph] - Wire formats. Diagram (nodes + connections) is the input; Layout
// (positioned nodes, bounds, algorithm, reason) is the output. Round trips
// preserve node order.
//
// [pipeline] - The load → layout → export flow shared by the CLI and the
// HTTP API. Layouts are cached by diagram content hash plus every
// position-affecting option, so identical inputs never recompute.
//
// [render] - Graphviz output. ToDOT pins the computed positions with
// pos="x,y!" and neato renders SVG/PNG without re-layouting.
//
// [cache] - Cache interface with file, Redis, and null backends, SHA-256
// content hashing, and key derivation.
//
// [errors] - Structured errors with machine-readable codes, shared by the
// CLI (exit messages) and the API (status mapping).
//
// [observability] - Hook interfaces for layout, cache, and server events
// with no-op defaults.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...          # All tests
//	go test ./pkg/layout/...   # Specific package
//	go test -run Example       # Examples only
//
// [layout]: https://pkg.go.dev/github.com/troubleduxj/flowlayout/pkg/layout
// [graph]: https://pkg.go.dev/github.com/troubleduxj/flowlayout/pkg/graph
// [pipeline]: https://pkg.go.dev/github.com/troubleduxj/flowlayout/pkg/pipeline
// [render]: https://pkg.go.dev/github.com/troubleduxj/flowlayout/pkg/render
// [cache]: https://pkg.go.dev/github.com/troubleduxj/flowlayout/pkg/cache
// [errors]: https://pkg.go.dev/github.com/troubleduxj/flowlayout/pkg/errors
// [observability]: https://pkg.go.dev/github.com/troubleduxj/flowlayout/pkg/observability
package pkg
