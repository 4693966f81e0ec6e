// Package pipeline provides the layout → export pipeline for Flowlayout.
//
// This package implements the complete load → layout → export flow that can
// be used by CLI, API, and worker components. By centralizing this logic, we
// ensure consistent behavior across all entry points and avoid code
// duplication.
//
// # Architecture
//
// The pipeline consists of two stages:
//
//  1. Layout: Compute node positions for the workflow diagram
//  2. Export: Generate output in various formats (SVG, PNG, DOT, JSON)
//
// Each stage can be run independently or as part of the complete pipeline,
// and each stage caches by content hash: identical diagrams with identical
// options never recompute.
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	opts := pipeline.Options{
//	    Algorithm: "auto",
//	    Formats:   []string{"svg"},
//	}
//	result, err := runner.Execute(ctx, diagram, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["svg"]
//
// Run individual stages:
//
//	// Layout only
//	doc, err := runner.ComputeLayout(ctx, diagram, opts)
//
//	// Export with an existing layout
//	artifacts, err := runner.Export(ctx, doc, diagram.Connections, opts)
package pipeline

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/troubleduxj/flowlayout/pkg/cache"
	"github.com/troubleduxj/flowlayout/pkg/graph"
	"github.com/troubleduxj/flowlayout/pkg/layout"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI, API, and Worker
// =============================================================================

// Format constants for output formats.
const (
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatDOT  = "dot"
	FormatJSON = "json"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG:  true,
	FormatPNG:  true,
	FormatDOT:  true,
	FormatJSON: true,
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for the layout pipeline.
// This struct supports JSON serialization for API requests.
type Options struct {
	// Layout options. Empty strings select the engine defaults
	// ("auto", "TB", "center").
	Algorithm    string  `json:"algorithm,omitempty"`
	Direction    string  `json:"direction,omitempty"`
	Alignment    string  `json:"alignment,omitempty"`
	NodeSpacing  float64 `json:"node_spacing,omitempty"`
	LevelSpacing float64 `json:"level_spacing,omitempty"`
	Padding      float64 `json:"padding,omitempty"`
	Seed         uint64  `json:"seed,omitempty"`

	// Refresh bypasses the cache and recomputes.
	Refresh bool `json:"refresh,omitempty"`

	// Export options
	Formats  []string `json:"formats,omitempty"`
	Detailed bool     `json:"detailed,omitempty"` // Verbose node labels in exports

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool `json:"-"`
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// RunID uniquely identifies this pipeline run in logs and API responses.
	RunID string

	// DiagramHash is the content hash of the input diagram.
	DiagramHash string

	// Layout contains the computed layout (positions, bounds, algorithm).
	Layout graph.Layout

	// Artifacts contains exported outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	NodeCount       int
	ConnectionCount int
	LayoutTime      time.Duration
	ExportTime      time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	LayoutHit bool // Whether the layout came from cache
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return fmt.Errorf("invalid format: %q (must be one of: svg, png, dot, json)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks all fields and applies defaults for the full
// pipeline. This method is idempotent - calling it multiple times has the
// same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if _, err := o.LayoutConfig(); err != nil {
		return err
	}
	o.SetExportDefaults()
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	if o.Logger == nil {
		o.Logger = log.New(io.Discard)
	}
	o.validated = true
	return nil
}

// LayoutConfig parses the string-typed options into an engine Config with
// defaults applied. Returns a typed validation error for bad identifiers.
func (o *Options) LayoutConfig() (layout.Config, error) {
	algorithm, err := layout.ParseAlgorithm(o.Algorithm)
	if err != nil {
		return layout.Config{}, err
	}
	direction, err := layout.ParseDirection(o.Direction)
	if err != nil {
		return layout.Config{}, err
	}
	alignment, err := layout.ParseAlignment(o.Alignment)
	if err != nil {
		return layout.Config{}, err
	}

	cfg := layout.Config{
		Algorithm:    algorithm,
		Direction:    direction,
		Alignment:    alignment,
		NodeSpacing:  o.NodeSpacing,
		LevelSpacing: o.LevelSpacing,
		Padding:      o.Padding,
		Seed:         o.Seed,
	}
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return layout.Config{}, err
	}
	return cfg, nil
}

// SetExportDefaults sets default values for the export stage.
func (o *Options) SetExportDefaults() {
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatJSON}
	}
}

// LayoutKeyOpts returns cache key options for layout computation.
// Every field that changes the computed positions participates.
func (o *Options) LayoutKeyOpts(cfg layout.Config) cache.LayoutKeyOpts {
	return cache.LayoutKeyOpts{
		Algorithm:    cfg.Algorithm.String(),
		Direction:    cfg.Direction.String(),
		NodeSpacing:  cfg.NodeSpacing,
		LevelSpacing: cfg.LevelSpacing,
		Padding:      cfg.Padding,
		Alignment:    cfg.Alignment.String(),
		Seed:         cfg.Seed,
	}
}
