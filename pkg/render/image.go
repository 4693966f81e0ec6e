package render

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"

	"github.com/goccy/go-graphviz"

	"github.com/troubleduxj/flowlayout/pkg/graph"
)

// SVG renders a layout to SVG. Positions are pinned, so the output mirrors
// the layout engine's coordinates exactly.
func SVG(ctx context.Context, l graph.Layout, connections []graph.Connection, opts Options) ([]byte, error) {
	return renderDOT(ctx, ToDOT(l, connections, opts), graphviz.SVG)
}

// PNG renders a layout to PNG.
func PNG(ctx context.Context, l graph.Layout, connections []graph.Connection, opts Options) ([]byte, error) {
	return renderDOT(ctx, ToDOT(l, connections, opts), graphviz.PNG)
}

// DiagramSVG renders a positioned diagram to SVG.
func DiagramSVG(ctx context.Context, d graph.Diagram, opts Options) ([]byte, error) {
	return renderDOT(ctx, DiagramDOT(d, opts), graphviz.SVG)
}

// DiagramPNG renders a positioned diagram to PNG.
func DiagramPNG(ctx context.Context, d graph.Diagram, opts Options) ([]byte, error) {
	return renderDOT(ctx, DiagramDOT(d, opts), graphviz.PNG)
}

// renderDOT runs Graphviz over a DOT string and returns the rendered bytes.
func renderDOT(ctx context.Context, dot string, format graphviz.Format) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, format, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	if format == graphviz.SVG {
		return normalizeViewBox(buf.Bytes()), nil
	}
	return buf.Bytes(), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox rewrites the root svg element so the image scales cleanly
// when embedded. Graphviz emits a translated viewBox with absolute units;
// browsers handle a zero-origin viewBox with explicit dimensions better.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}
