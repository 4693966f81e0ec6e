// Package render exports computed layouts as images.
//
// # Overview
//
// This package transforms a computed layout into visual outputs:
//
//   - [ToDOT]: Graphviz DOT with pinned node positions
//   - [SVG], [PNG]: rendered images via the Graphviz neato engine
//
// Because every node position is pinned (pos="x,y!"), Graphviz does no layout
// of its own: the output shows exactly the coordinates the layout engine
// computed. Connections are routed as straight lines between the pinned
// positions.
//
// # Usage
//
//	doc := graph.FromResult(result)
//	dot := render.ToDOT(doc, render.Options{})
//	svg, err := render.SVG(ctx, doc, render.Options{})
//	png, err := render.PNG(ctx, doc, render.Options{})
package render
