// Package pipeline provides the core generation pipeline for graphgen.
//
// This package implements the complete generate → encode → render pipeline
// that can be used by CLI and API components. By centralizing this logic,
// we ensure consistent behavior across all entry points and keep cache-key
// policy in one place.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Generate: Grow a seeded graph from the generation parameters
//  2. Encode: Serialize the graph to its canonical JSON document
//  3. Render: Optionally convert the document to DOT, SVG, or PNG
//
// Generated documents and rendered artifacts are cached separately, so a
// repeat run with the same parameters but a new output format reuses the
// cached document and only renders.
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(cache, logger)
//	opts := pipeline.Options{
//	    Depth:       6,
//	    NewVertices: 3,
//	    Seed:        42,
//	    Format:      pipeline.FormatSVG,
//	}
//	result, err := runner.Run(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Output
package pipeline

import (
	"time"

	"github.com/graphforge/graphgen/pkg/errors"
	"github.com/graphforge/graphgen/pkg/gen"
	"github.com/graphforge/graphgen/pkg/graph"
	"github.com/graphforge/graphgen/pkg/graphio"
)

// Format constants for output formats.
const (
	FormatJSON = "json"
	FormatDOT  = "dot"
	FormatSVG  = "svg"
	FormatPNG  = "png"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatJSON: true,
	FormatDOT:  true,
	FormatSVG:  true,
	FormatPNG:  true,
}

// DefaultTTL bounds the lifetime of cache entries written by a Runner
// unless overridden.
const DefaultTTL = 24 * time.Hour

// Options contains all configuration for one pipeline run.
// This struct supports JSON serialization for API requests.
type Options struct {
	// Generation parameters
	Depth       int    `json:"depth"`
	NewVertices int    `json:"new_vertices"`
	Seed        uint64 `json:"seed"`

	// Output options
	Format   string `json:"format,omitempty"`   // json (default), dot, svg, png
	Detailed bool   `json:"detailed,omitempty"` // layer labels in rendered output

	// NoCache bypasses cache reads and writes for this run.
	NoCache bool `json:"no_cache,omitempty"`
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Graph is the generated graph.
	Graph *graph.Graph

	// Doc is the canonical document form of Graph.
	Doc *graphio.Document

	// Output is the encoded result in the requested format.
	Output []byte

	// Format echoes the output format of Output.
	Format string

	// CacheHit reports whether Output was served from the cache.
	CacheHit bool

	// Elapsed is the total run duration.
	Elapsed time.Duration
}

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat, "invalid format: %q (must be one of: json, dot, svg, png)", format)
	}
	return nil
}

// ValidateAndSetDefaults checks the generation parameters and applies the
// default output format.
func (o *Options) ValidateAndSetDefaults() error {
	if o.Depth < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "depth must be non-negative, got %d", o.Depth)
	}
	if o.NewVertices < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "new_vertices must be non-negative, got %d", o.NewVertices)
	}
	if o.Format == "" {
		o.Format = FormatJSON
	}
	return ValidateFormat(o.Format)
}

// Params returns the generator parameters for this run.
func (o *Options) Params() gen.Params {
	return gen.Params{
		Depth:       graph.Depth(o.Depth),
		NewVertices: o.NewVertices,
		Seed:        o.Seed,
	}
}
