package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/troubleduxj/flowlayout/pkg/cache"
	"github.com/troubleduxj/flowlayout/pkg/graph"
	"github.com/troubleduxj/flowlayout/pkg/layout"
	"github.com/troubleduxj/flowlayout/pkg/observability"
)

// Runner encapsulates pipeline execution with caching.
// Both CLI and API can use this to avoid duplicating caching logic.
//
// The Runner is stateless except for the cache, engine, and logger - it
// doesn't store pipeline results. Multiple goroutines can safely use the
// same Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger

	engine *layout.Engine
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
		engine: layout.New(logger),
	}
}

// Execute runs the complete layout → export pipeline with caching.
func (r *Runner) Execute(ctx context.Context, d graph.Diagram, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	r.applyLogger(&opts)

	result := &Result{
		RunID:     uuid.NewString(),
		Artifacts: make(map[string][]byte),
	}
	result.Stats.NodeCount = len(d.Nodes)
	result.Stats.ConnectionCount = len(d.Connections)

	// Stage 1: Layout
	layoutStart := time.Now()
	doc, layoutHit, err := r.ComputeLayoutWithCacheInfo(ctx, d, opts)
	if err != nil {
		return nil, fmt.Errorf("layout: %w", err)
	}
	result.Layout = doc
	result.Stats.LayoutTime = time.Since(layoutStart)
	result.CacheInfo.LayoutHit = layoutHit

	if data, err := graph.MarshalDiagram(d); err == nil {
		result.DiagramHash = cache.Hash(data)
	}

	r.Logger.Info("computed layout",
		"run", result.RunID,
		"algorithm", doc.Algorithm,
		"nodes", len(doc.Nodes),
		"cached", layoutHit,
		"duration", result.Stats.LayoutTime)

	// Stage 2: Export
	exportStart := time.Now()
	artifacts, err := r.Export(ctx, doc, d.Connections, opts)
	if err != nil {
		return nil, fmt.Errorf("export: %w", err)
	}
	result.Artifacts = artifacts
	result.Stats.ExportTime = time.Since(exportStart)

	r.Logger.Info("exported outputs",
		"run", result.RunID,
		"formats", opts.Formats,
		"duration", result.Stats.ExportTime)

	return result, nil
}

// ComputeLayoutWithCacheInfo computes a layout with caching and returns
// cache hit info.
func (r *Runner) ComputeLayoutWithCacheInfo(ctx context.Context, d graph.Diagram, opts Options) (graph.Layout, bool, error) {
	cfg, err := opts.LayoutConfig()
	if err != nil {
		return graph.Layout{}, false, err
	}
	r.applyLogger(&opts)

	// Compute cache key from diagram content and layout options
	diagramData, err := graph.MarshalDiagram(d)
	if err != nil {
		return graph.Layout{}, false, fmt.Errorf("serialize diagram for cache key: %w", err)
	}
	diagramHash := cache.Hash(diagramData)
	cacheKey := r.Keyer.LayoutKey(diagramHash, opts.LayoutKeyOpts(cfg))

	// Try cache first (unless refresh requested)
	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			cached, err := graph.UnmarshalLayout(data)
			if err == nil {
				observability.Cache().OnCacheHit(ctx, "layout")
				return cached, true, nil // Cache hit
			}
			// If deserialization fails, fall through to recompute
		}
		observability.Cache().OnCacheMiss(ctx, "layout")
	}

	// Compute layout
	nodes, connections := d.ToLayout()
	layoutResult, err := r.engine.Layout(ctx, nodes, connections, cfg)
	if err != nil {
		return graph.Layout{}, false, err
	}
	doc := graph.FromResult(layoutResult)

	// Cache the result
	if data, err := graph.MarshalLayout(doc); err == nil {
		if err := r.Cache.Set(ctx, cacheKey, data, cache.LayoutTTL); err == nil {
			observability.Cache().OnCacheSet(ctx, "layout", len(data))
		}
	}

	return doc, false, nil // Cache miss
}

// ComputeLayout is a convenience wrapper that calls
// ComputeLayoutWithCacheInfo and discards the cache hit info.
func (r *Runner) ComputeLayout(ctx context.Context, d graph.Diagram, opts Options) (graph.Layout, error) {
	doc, _, err := r.ComputeLayoutWithCacheInfo(ctx, d, opts)
	return doc, err
}

// Recommend returns the selector's algorithm recommendation for a diagram
// without computing a layout.
func (r *Runner) Recommend(d graph.Diagram) (layout.Recommendation, error) {
	nodes, connections := d.ToLayout()
	return r.engine.Recommend(nodes, connections)
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
