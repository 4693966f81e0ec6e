package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/troubleduxj/flowlayout/pkg/graph"
	"github.com/troubleduxj/flowlayout/pkg/pipeline"
)

// layoutCommand creates the layout command for computing diagram layouts.
func (c *CLI) layoutCommand() *cobra.Command {
	var (
		output     string
		noCache    bool
		redisAddr  string
		configPath string
	)
	opts := pipeline.Options{}

	cmd := &cobra.Command{
		Use:   "layout [diagram.json]",
		Short: "Compute node positions for a workflow diagram",
		Long: `Compute node positions for a workflow diagram.

The layout command takes a diagram.json file (nodes and connections) and
computes a position for every node. The output is a layout.json file. The
'export' command renders the same diagram to SVG/PNG/DOT, reusing the cached
layout.

With -a auto (the default) an algorithm is chosen from the diagram structure
and the reason is recorded in the output.

Results are cached locally for faster subsequent runs.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := loadConfigDefaults(&opts, configPath); err != nil {
				return err
			}
			return c.runLayout(cmd.Context(), args[0], opts, output, noCache, redisAddr)
		},
	}

	// Common flags
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: <input>.layout.json)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().StringVar(&redisAddr, "redis", "", "redis address for a shared layout cache (default: file cache)")
	cmd.Flags().StringVar(&configPath, "config", "", "config file with layout defaults (default: ~/.config/flowlayout/config.toml)")

	addLayoutFlags(cmd, &opts)

	return cmd
}

// runLayout loads the diagram, computes the layout, and writes output.
func (c *CLI) runLayout(ctx context.Context, input string, opts pipeline.Options, output string, noCache bool, redisAddr string) error {
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

	spinner := newSpinnerWithContext(ctx, "Computing layout...")
	spinner.Start()

	doc, cacheHit, err := runner.ComputeLayoutWithCacheInfo(ctx, d, opts)
	if err != nil {
		spinner.StopWithError("Layout failed")
		return fmt.Errorf("compute layout: %w", err)
	}
	spinner.Stop()

	if ctx.Err() != nil {
		return ctx.Err()
	}

	outputPath := output
	if outputPath == "" {
		base := strings.TrimSuffix(input, filepath.Ext(input))
		outputPath = base + ".layout.json"
	}

	if err := graph.WriteLayoutFile(doc, outputPath); err != nil {
		return fmt.Errorf("write output %s: %w", outputPath, err)
	}

	printSuccess("Layout complete (%s)", doc.Algorithm)
	if doc.Reason != "" {
		printDetail("%s", doc.Reason)
	}
	printFile(outputPath)
	printStats(len(d.Nodes), len(d.Connections), cacheHit)
	printNewline()
	printNextStep("Render", "flowlayout export "+input)

	return nil
}
