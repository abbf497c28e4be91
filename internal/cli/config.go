package cli

import (
	"os"

	"github.com/BurntSushi/toml"

	apperrors "github.com/graphforge/graphgen/pkg/errors"
)

// fileConfig mirrors the TOML configuration file accepted by the generate
// command. All fields are optional; flags given on the command line take
// precedence over values read from the file.
//
// Example:
//
//	[generator]
//	depth = 6
//	new_vertices = 3
//	seed = 42
//
//	[output]
//	path = "graph.json"
//	format = "svg"
type fileConfig struct {
	Generator generatorConfig `toml:"generator"`
	Output    outputConfig    `toml:"output"`
}

type generatorConfig struct {
	// Depth and NewVertices are pointers so an explicit 0 in the file can
	// be told apart from an absent key.
	Depth       *int    `toml:"depth"`
	NewVertices *int    `toml:"new_vertices"`
	Seed        *uint64 `toml:"seed"`
}

type outputConfig struct {
	Path   string `toml:"path"`
	Format string `toml:"format"`
}

// loadConfig reads and decodes a TOML config file.
// Unknown keys are rejected so typos surface instead of being ignored.
func loadConfig(path string) (*fileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeInvalidConfig, err, "read config %s", path)
	}

	var cfg fileConfig
	meta, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeInvalidConfig, err, "parse config %s", path)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return nil, apperrors.New(apperrors.ErrCodeInvalidConfig, "unknown config key %q in %s", undecoded[0].String(), path)
	}

	if cfg.Generator.Depth != nil && *cfg.Generator.Depth < 0 {
		return nil, apperrors.New(apperrors.ErrCodeInvalidConfig, "generator.depth must be non-negative, got %d", *cfg.Generator.Depth)
	}
	if cfg.Generator.NewVertices != nil && *cfg.Generator.NewVertices < 0 {
		return nil, apperrors.New(apperrors.ErrCodeInvalidConfig, "generator.new_vertices must be non-negative, got %d", *cfg.Generator.NewVertices)
	}
	return &cfg, nil
}
