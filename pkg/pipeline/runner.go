package pipeline

import (
	"bytes"
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/graphforge/graphgen/pkg/cache"
	"github.com/graphforge/graphgen/pkg/errors"
	"github.com/graphforge/graphgen/pkg/gen"
	"github.com/graphforge/graphgen/pkg/graph"
	"github.com/graphforge/graphgen/pkg/graphio"
	"github.com/graphforge/graphgen/pkg/observability"
	"github.com/graphforge/graphgen/pkg/render/dot"
)

// Runner encapsulates pipeline execution with caching.
// Both CLI and API can use this to avoid duplicating caching logic.
//
// The Runner is stateless except for the cache and logger - it doesn't
// store run results. Multiple goroutines can safely use the same Runner
// with different options.
type Runner struct {
	Cache  cache.Cache
	Logger *log.Logger

	// TTL bounds the lifetime of cache entries written by this runner.
	// A TTL <= 0 stores entries without expiry.
	TTL time.Duration
}

// NewRunner creates a runner with the given cache.
// If c is nil, a NullCache is used (caching disabled).
// If logger is nil, the default logger is used.
func NewRunner(c cache.Cache, logger *log.Logger) *Runner {
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Logger: logger,
		TTL:    DefaultTTL,
	}
}

// Run executes the complete generate → encode → render pipeline with
// caching.
func (r *Runner) Run(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	start := time.Now()

	g, docBytes, docHit, err := r.document(ctx, opts)
	if err != nil {
		return nil, err
	}

	result := &Result{
		Graph:  g,
		Doc:    graphio.FromGraph(g),
		Format: opts.Format,
	}

	r.Logger.Info("prepared graph",
		"vertices", g.VertexCount(),
		"edges", g.EdgeCount(),
		"depth", g.Depth(),
		"cache_hit", docHit)

	output, artifactHit, err := r.artifact(ctx, g, docBytes, opts)
	if err != nil {
		return nil, err
	}
	result.Output = output
	if opts.Format == FormatJSON {
		result.CacheHit = docHit
	} else {
		result.CacheHit = artifactHit
	}

	result.Elapsed = time.Since(start)
	r.Logger.Info("pipeline finished",
		"format", result.Format,
		"bytes", len(result.Output),
		"cache_hit", result.CacheHit,
		"duration", result.Elapsed)

	return result, nil
}

// document returns the generated graph together with its encoded
// document, consulting the cache first. A cached entry that fails replay
// validation is discarded and regenerated.
func (r *Runner) document(ctx context.Context, opts Options) (*graph.Graph, []byte, bool, error) {
	key := cache.GraphKey(opts.Depth, opts.NewVertices, opts.Seed)

	if !opts.NoCache {
		if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
			if g, err := graphio.ReadGraph(bytes.NewReader(data)); err == nil {
				observability.Cache().OnCacheHit(ctx, cache.KeyTypeGraph)
				return g, data, true, nil
			}
			// Corrupt entry, fall through and regenerate
		}
		observability.Cache().OnCacheMiss(ctx, cache.KeyTypeGraph)
	}

	genStart := time.Now()
	observability.Generator().OnGenerateStart(ctx, opts.Depth, opts.NewVertices, opts.Seed)
	g, err := gen.Generate(opts.Params())
	if err != nil {
		observability.Generator().OnGenerateComplete(ctx, 0, 0, time.Since(genStart), err)
		return nil, nil, false, errors.Wrap(errors.ErrCodeInternal, err, "generate graph")
	}
	observability.Generator().OnGenerateComplete(ctx, g.VertexCount(), g.EdgeCount(), time.Since(genStart), nil)

	data, err := graphio.MarshalGraph(g)
	if err != nil {
		return nil, nil, false, errors.Wrap(errors.ErrCodeInternal, err, "encode graph")
	}

	if !opts.NoCache {
		if err := r.Cache.Set(ctx, key, data, r.TTL); err == nil {
			observability.Cache().OnCacheSet(ctx, cache.KeyTypeGraph, len(data))
		}
	}
	return g, data, false, nil
}

// artifact converts the document to the requested output format. JSON is
// the document itself and DOT is cheap to build, so only SVG and PNG
// renders go through the artifact cache.
func (r *Runner) artifact(ctx context.Context, g *graph.Graph, docBytes []byte, opts Options) ([]byte, bool, error) {
	if opts.Format == FormatJSON {
		return docBytes, false, nil
	}

	src := dot.ToDOT(g, dot.Options{Detailed: opts.Detailed})
	if opts.Format == FormatDOT {
		return []byte(src), false, nil
	}

	keyFormat := opts.Format
	if opts.Detailed {
		keyFormat += ":detailed"
	}
	key := cache.ArtifactKey(cache.Hash(docBytes), keyFormat)

	if !opts.NoCache {
		if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
			observability.Cache().OnCacheHit(ctx, cache.KeyTypeArtifact)
			return data, true, nil
		}
		observability.Cache().OnCacheMiss(ctx, cache.KeyTypeArtifact)
	}

	renderStart := time.Now()
	observability.Generator().OnRenderStart(ctx, opts.Format)
	var output []byte
	var err error
	switch opts.Format {
	case FormatSVG:
		output, err = dot.RenderSVG(ctx, src)
	case FormatPNG:
		output, err = dot.RenderPNG(ctx, src)
	}
	observability.Generator().OnRenderComplete(ctx, opts.Format, len(output), time.Since(renderStart), err)
	if err != nil {
		return nil, false, errors.Wrap(errors.ErrCodeInternal, err, "render %s", opts.Format)
	}

	if !opts.NoCache {
		if err := r.Cache.Set(ctx, key, output, r.TTL); err == nil {
			observability.Cache().OnCacheSet(ctx, cache.KeyTypeArtifact, len(output))
		}
	}
	return output, false, nil
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}
