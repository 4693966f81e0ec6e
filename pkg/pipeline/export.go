package pipeline

import (
	"context"
	"fmt"

	"github.com/troubleduxj/flowlayout/pkg/graph"
	"github.com/troubleduxj/flowlayout/pkg/render"
)

// =============================================================================
// Export Stage
// =============================================================================

// Export generates artifacts for every requested format from a computed
// layout. Connections are passed alongside because the layout document only
// carries positioned nodes.
func (r *Runner) Export(ctx context.Context, doc graph.Layout, connections []graph.Connection, opts Options) (map[string][]byte, error) {
	opts.SetExportDefaults()
	if err := ValidateFormats(opts.Formats); err != nil {
		return nil, err
	}

	renderOpts := render.Options{Detailed: opts.Detailed}
	artifacts := make(map[string][]byte, len(opts.Formats))

	for _, format := range opts.Formats {
		data, err := exportFormat(ctx, doc, connections, format, renderOpts)
		if err != nil {
			return nil, fmt.Errorf("export %s: %w", format, err)
		}
		artifacts[format] = data
	}
	return artifacts, nil
}

func exportFormat(ctx context.Context, doc graph.Layout, connections []graph.Connection, format string, opts render.Options) ([]byte, error) {
	switch format {
	case FormatJSON:
		return graph.MarshalLayout(doc)
	case FormatDOT:
		return []byte(render.ToDOT(doc, connections, opts)), nil
	case FormatSVG:
		return render.SVG(ctx, doc, connections, opts)
	case FormatPNG:
		return render.PNG(ctx, doc, connections, opts)
	}
	return nil, fmt.Errorf("invalid format: %q", format)
}
