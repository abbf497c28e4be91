package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	apperrors "github.com/graphforge/graphgen/pkg/errors"
	"github.com/graphforge/graphgen/pkg/graph"
	"github.com/graphforge/graphgen/pkg/pipeline"
	"github.com/graphforge/graphgen/pkg/store"
)

// generateOpts holds the command-line flags for the generate command.
type generateOpts struct {
	depth       int    // target depth of the layered growth phase
	newVertices int    // branching trials per vertex per layer
	seed        uint64 // RNG seed; fixed seed reproduces the graph exactly
	config      string // optional TOML config file
	output      string // output path, "-" for stdout
	format      string // json, dot, svg or png
	save        string // store the result under this name
	noCache     bool   // bypass the generation cache
	detailed    bool   // include depth labels in rendered output
}

// unsetFlag marks an integer flag the user did not supply. Zero is a valid
// depth and branching factor, so absence needs its own value.
const unsetFlag = -1

// generateCommand creates the generate command, the main entry point of the
// CLI. Missing parameters are filled from the config file when one is given,
// and prompted for interactively as a last resort.
func (c *CLI) generateCommand() *cobra.Command {
	opts := generateOpts{
		depth:       unsetFlag,
		newVertices: unsetFlag,
		seed:        defaultSeed,
		output:      defaultOutput,
		format:      pipeline.FormatJSON,
	}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Grow a seeded layered graph",
		Long: `Generate grows a random directed graph layer by layer and writes it in the
requested format. Growth starts from a single root; every edge is colored by
the depth relationship of its endpoints (grey growth, green self-loops,
yellow lateral, red skip-level).

The same seed always produces the same graph.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runGenerate(cmd, &opts)
		},
	}

	cmd.Flags().IntVarP(&opts.depth, "depth", "d", opts.depth, "target graph depth (prompted when omitted)")
	cmd.Flags().IntVarP(&opts.newVertices, "new-vertices", "n", opts.newVertices, "branching trials per vertex per layer (prompted when omitted)")
	cmd.Flags().Uint64Var(&opts.seed, "seed", opts.seed, "random seed")
	cmd.Flags().StringVar(&opts.config, "config", "", "TOML config file")
	cmd.Flags().StringVarP(&opts.output, "output", "o", opts.output, "output file ('-' for stdout)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "output format: json (default), dot, svg, png")
	cmd.Flags().StringVar(&opts.save, "save", "", "also save the graph locally under this name")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "bypass the generation cache")
	cmd.Flags().BoolVar(&opts.detailed, "detailed", false, "include depth labels in rendered output")

	return cmd
}

func (c *CLI) runGenerate(cmd *cobra.Command, opts *generateOpts) error {
	ctx := cmd.Context()

	if err := c.resolveGenerateOpts(cmd, opts); err != nil {
		return err
	}
	if err := pipeline.ValidateFormat(opts.format); err != nil {
		printError("%s", apperrors.UserMessage(err))
		return err
	}
	if opts.save != "" {
		if err := apperrors.ValidateGraphName(opts.save); err != nil {
			printError("%s", apperrors.UserMessage(err))
			return err
		}
	}

	runner, err := c.newRunner(opts.noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	prog := newProgress(c.Logger)
	result, err := runner.Run(ctx, pipeline.Options{
		Depth:       opts.depth,
		NewVertices: opts.newVertices,
		Seed:        opts.seed,
		Format:      opts.format,
		Detailed:    opts.detailed,
		NoCache:     opts.noCache,
	})
	if err != nil {
		printError("%s", apperrors.UserMessage(err))
		return err
	}
	prog.done(fmt.Sprintf("Generated %d vertices, %d edges", result.Graph.VertexCount(), result.Graph.EdgeCount()))

	printSuccess("Generated graph (depth %d, seed %d)", opts.depth, opts.seed)
	printStats(result.Graph.VertexCount(), result.Graph.EdgeCount(), int(result.Graph.Depth()), result.CacheHit)
	printColorCounts(countColors(result.Graph))

	if opts.save != "" {
		if err := c.saveRecord(ctx, opts, result); err != nil {
			return err
		}
	}

	if err := writeOutput(opts.output, result.Output); err != nil {
		return err
	}
	if opts.output != "-" {
		printFile(opts.output)
		if opts.format == pipeline.FormatJSON {
			printNextStep("Render it", fmt.Sprintf("graphgen render -i %s -f svg", opts.output))
		}
	}
	return nil
}

// resolveGenerateOpts fills depth, new-vertices and seed from the config
// file and, failing that, from an interactive prompt. Flags given on the
// command line always win.
func (c *CLI) resolveGenerateOpts(cmd *cobra.Command, opts *generateOpts) error {
	if opts.config != "" {
		cfg, err := loadConfig(opts.config)
		if err != nil {
			printError("%s", apperrors.UserMessage(err))
			return err
		}
		if opts.depth == unsetFlag && cfg.Generator.Depth != nil {
			opts.depth = *cfg.Generator.Depth
		}
		if opts.newVertices == unsetFlag && cfg.Generator.NewVertices != nil {
			opts.newVertices = *cfg.Generator.NewVertices
		}
		if !cmd.Flags().Changed("seed") && cfg.Generator.Seed != nil {
			opts.seed = *cfg.Generator.Seed
		}
		if !cmd.Flags().Changed("output") && cfg.Output.Path != "" {
			opts.output = cfg.Output.Path
		}
		if !cmd.Flags().Changed("format") && cfg.Output.Format != "" {
			opts.format = cfg.Output.Format
		}
	}

	var err error
	if opts.depth == unsetFlag {
		if opts.depth, err = promptInt("Target depth"); err != nil {
			return err
		}
	}
	if opts.newVertices == unsetFlag {
		if opts.newVertices, err = promptInt("New vertices per step"); err != nil {
			return err
		}
	}

	if opts.depth < 0 {
		return apperrors.New(apperrors.ErrCodeInvalidInput, "depth must be non-negative, got %d", opts.depth)
	}
	if opts.newVertices < 0 {
		return apperrors.New(apperrors.ErrCodeInvalidInput, "new-vertices must be non-negative, got %d", opts.newVertices)
	}
	return nil
}

// saveRecord persists the generated document in the local store.
func (c *CLI) saveRecord(ctx context.Context, opts *generateOpts, result *pipeline.Result) error {
	st, err := c.newLocalStore()
	if err != nil {
		return err
	}
	defer st.Close()

	rec := store.NewRecord(opts.save, opts.depth, opts.newVertices, opts.seed, result.Doc)
	if err := st.Save(ctx, rec); err != nil {
		if errors.Is(err, store.ErrExists) {
			printError("Graph %q already exists", opts.save)
			return apperrors.Wrap(apperrors.ErrCodeGraphExists, err, "graph %q already exists", opts.save)
		}
		return fmt.Errorf("save graph %q: %w", opts.save, err)
	}
	printSuccess("Saved as %s", StyleHighlight.Render(opts.save))
	printNextStep("Show it", fmt.Sprintf("graphgen graphs show %s", opts.save))
	return nil
}

// newLocalStore opens the file store in the user data directory.
func (c *CLI) newLocalStore() (*store.FileStore, error) {
	dir, err := dataDir()
	if err != nil {
		return nil, fmt.Errorf("get data dir: %w", err)
	}
	return store.NewFileStore(dir)
}

// writeOutput writes data to path, or to stdout when path is "-".
func writeOutput(path string, data []byte) error {
	if path == "-" {
		_, err := os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// countColors tallies edges by wire color name for the summary line.
func countColors(g *graph.Graph) map[string]int {
	counts := make(map[string]int, 4)
	for _, e := range g.Edges() {
		counts[e.Color.String()]++
	}
	return counts
}
