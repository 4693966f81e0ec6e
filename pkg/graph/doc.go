// Package graph provides serialization types for workflow diagrams and
// computed layouts.
//
// This package defines the canonical wire format for Flowlayout's diagram
// data, used for JSON files, API requests and responses, and caching.
//
// # Architecture
//
// The package sits at the serialization boundary between the layout engine's
// internal types and external formats:
//
//   - [Diagram], [Layout]: Serialization types (this package)
//   - pkg/layout.Node, pkg/layout.Result: Engine input and output
//
// Use [Diagram.ToLayout] and [FromResult] to convert between them.
//
// # Diagram Serialization
//
// Diagrams use a simple node-link JSON format:
//
//	{
//	  "nodes": [{"id": "trigger", "type": "webhook"}, {"id": "notify"}],
//	  "connections": [{"from": "trigger", "to": "notify"}]
//	}
//
// Common operations:
//
//	d, _ := graph.ReadDiagramFile("flow.json")     // File → Diagram
//	graph.WriteDiagramFile(d, "flow.json")         // Diagram → File
//	data, _ := graph.MarshalDiagram(d)             // Diagram → []byte
//	parsed, _ := graph.UnmarshalDiagram(data)      // []byte → Diagram
//
// Node order is preserved exactly: the layout engine treats input order as
// meaningful (ordering ties, component tiling, reproducibility), so the
// serialization never reorders nodes or connections.
//
// # Layout Serialization
//
// A [Layout] records the outcome of one engine run: positioned nodes, the
// bounding box, and which algorithm produced it:
//
//	result, _ := engine.Layout(ctx, nodes, connections, cfg)
//	doc := graph.FromResult(result)
//	graph.WriteLayoutFile(doc, "flow.layout.json")
//
// # Concurrency
//
// All functions are safe for concurrent reads but not concurrent writes.
package graph
