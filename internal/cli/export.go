package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/troubleduxj/flowlayout/pkg/graph"
	"github.com/troubleduxj/flowlayout/pkg/pipeline"
)

// exportCommand creates the export command for rendering diagrams to files.
func (c *CLI) exportCommand() *cobra.Command {
	var (
		output     string
		formats    string
		noCache    bool
		redisAddr  string
		configPath string
	)
	opts := pipeline.Options{}

	cmd := &cobra.Command{
		Use:   "export [diagram.json]",
		Short: "Render a workflow diagram to SVG, PNG, DOT, or JSON",
		Long: `Render a workflow diagram to one or more output formats.

The export command runs the full pipeline: it computes the layout (reusing
the cache when the diagram and options are unchanged) and writes one file per
requested format next to the input, or under the path given with --output.

Formats: svg (default), png, dot, json.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := loadConfigDefaults(&opts, configPath); err != nil {
				return err
			}
			opts.Formats = parseFormats(formats)
			return c.runExport(cmd.Context(), args[0], opts, output, noCache, redisAddr)
		},
	}

	// Common flags
	cmd.Flags().StringVarP(&output, "output", "o", "", "output base path (default: input without extension)")
	cmd.Flags().StringVarP(&formats, "formats", "f", "", "comma-separated output formats: svg (default), png, dot, json")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().StringVar(&redisAddr, "redis", "", "redis address for a shared layout cache (default: file cache)")
	cmd.Flags().StringVar(&configPath, "config", "", "config file with layout defaults (default: ~/.config/flowlayout/config.toml)")
	cmd.Flags().BoolVar(&opts.Detailed, "detailed", false, "include node type and position in rendered labels")

	addLayoutFlags(cmd, &opts)

	return cmd
}

// runExport loads the diagram, runs the pipeline, and writes one file per format.
func (c *CLI) runExport(ctx context.Context, input string, opts pipeline.Options, output string, noCache bool, redisAddr string) error {
	d, err := graph.ReadDiagramFile(input)
	if err != nil {
		return fmt.Errorf("load diagram %s: %w", input, err)
	}

	runner, err := c.newRunner(ctx, noCache, redisAddr)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	opts.Logger = c.Logger

	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Exporting %s...", strings.Join(opts.Formats, ", ")))
	spinner.Start()

	result, err := runner.Execute(ctx, d, opts)
	if err != nil {
		spinner.StopWithError("Export failed")
		return fmt.Errorf("export: %w", err)
	}
	spinner.Stop()

	if ctx.Err() != nil {
		return ctx.Err()
	}

	base := output
	if base == "" {
		base = strings.TrimSuffix(input, filepath.Ext(input))
	}

	printSuccess("Export complete (%s)", result.Layout.Algorithm)
	for _, format := range opts.Formats {
		path := base + "." + format
		if err := os.WriteFile(path, result.Artifacts[format], 0o644); err != nil {
			return fmt.Errorf("write output %s: %w", path, err)
		}
		printFile(path)
	}
	printStats(result.Stats.NodeCount, result.Stats.ConnectionCount, result.CacheInfo.LayoutHit)

	return nil
}
