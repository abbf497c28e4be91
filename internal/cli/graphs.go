package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/graphforge/graphgen/pkg/client"
	apperrors "github.com/graphforge/graphgen/pkg/errors"
	"github.com/graphforge/graphgen/pkg/graphio"
	"github.com/graphforge/graphgen/pkg/pipeline"
	"github.com/graphforge/graphgen/pkg/render/dot"
	"github.com/graphforge/graphgen/pkg/store"
)

// graphsCommand creates the graphs command for managing saved graphs.
// By default it operates on the local file store; with --server it talks
// to a running API server instead.
func (c *CLI) graphsCommand() *cobra.Command {
	var server string

	cmd := &cobra.Command{
		Use:   "graphs",
		Short: "List, show and delete saved graphs",
	}
	cmd.PersistentFlags().StringVar(&server, "server", "", "API server URL (default: local store)")

	cmd.AddCommand(c.graphsListCommand(&server))
	cmd.AddCommand(c.graphsShowCommand(&server))
	cmd.AddCommand(c.graphsDeleteCommand(&server))

	return cmd
}

// graphsListCommand creates the "graphs list" subcommand.
func (c *CLI) graphsListCommand(server *string) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List saved graphs, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			records, err := c.listRecords(cmd.Context(), *server)
			if err != nil {
				printError("%s", apperrors.UserMessage(err))
				return err
			}
			if len(records) == 0 {
				printInfo("No saved graphs")
				printNextStep("Save one", "graphgen generate -d 4 -n 3 --save demo")
				return nil
			}
			for i, rec := range records {
				if i > 0 {
					printNewline()
				}
				fmt.Println(StyleHighlight.Render(rec.Name))
				printKeyValue("depth", strconv.Itoa(rec.Depth))
				printKeyValue("new-vertices", strconv.Itoa(rec.NewVertices))
				printKeyValue("seed", strconv.FormatUint(rec.Seed, 10))
				printKeyValue("created", rec.CreatedAt.Local().Format("2006-01-02 15:04:05"))
			}
			return nil
		},
	}
}

// graphsShowCommand creates the "graphs show" subcommand.
func (c *CLI) graphsShowCommand(server *string) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "show NAME",
		Short: "Print a saved graph as JSON or DOT",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runGraphsShow(cmd.Context(), *server, args[0], format)
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", pipeline.FormatJSON, "output format: json (default), dot")

	return cmd
}

func (c *CLI) runGraphsShow(ctx context.Context, server, name, format string) error {
	if format != pipeline.FormatJSON && format != pipeline.FormatDOT {
		err := apperrors.New(apperrors.ErrCodeInvalidFormat, "invalid format: %q (must be 'json' or 'dot')", format)
		printError("%s", apperrors.UserMessage(err))
		return err
	}

	// Server DOT rendering has its own endpoint; everything else goes
	// through the record.
	if server != "" && format == pipeline.FormatDOT {
		api, err := client.New(server)
		if err != nil {
			return err
		}
		src, err := api.DOT(ctx, name)
		if err != nil {
			printError("%s", apperrors.UserMessage(err))
			return err
		}
		fmt.Print(src)
		return nil
	}

	rec, err := c.getRecord(ctx, server, name)
	if err != nil {
		printError("%s", apperrors.UserMessage(err))
		return err
	}

	switch format {
	case pipeline.FormatJSON:
		data, err := json.MarshalIndent(rec, "", "  ")
		if err != nil {
			return fmt.Errorf("encode record: %w", err)
		}
		fmt.Println(string(data))
	case pipeline.FormatDOT:
		g, err := graphio.ToGraph(rec.Graph)
		if err != nil {
			printError("%s", apperrors.UserMessage(err))
			return err
		}
		fmt.Print(dot.ToDOT(g, dot.Options{}))
	}
	return nil
}

// graphsDeleteCommand creates the "graphs delete" subcommand.
func (c *CLI) graphsDeleteCommand(server *string) *cobra.Command {
	return &cobra.Command{
		Use:   "delete NAME",
		Short: "Delete a saved graph",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.deleteRecord(cmd.Context(), *server, args[0]); err != nil {
				printError("%s", apperrors.UserMessage(err))
				return err
			}
			printSuccess("Deleted %s", StyleHighlight.Render(args[0]))
			return nil
		},
	}
}

// =============================================================================
// Local / Remote Dispatch
// =============================================================================

func (c *CLI) listRecords(ctx context.Context, server string) ([]*store.Record, error) {
	if server != "" {
		api, err := client.New(server)
		if err != nil {
			return nil, err
		}
		return api.List(ctx)
	}
	st, err := c.newLocalStore()
	if err != nil {
		return nil, err
	}
	defer st.Close()
	return st.List(ctx)
}

func (c *CLI) getRecord(ctx context.Context, server, name string) (*store.Record, error) {
	if server != "" {
		api, err := client.New(server)
		if err != nil {
			return nil, err
		}
		return api.Get(ctx, name)
	}
	st, err := c.newLocalStore()
	if err != nil {
		return nil, err
	}
	defer st.Close()

	rec, err := st.Get(ctx, name)
	if errors.Is(err, store.ErrNotFound) {
		return nil, apperrors.Wrap(apperrors.ErrCodeGraphNotFound, err, "graph %q not found", name)
	}
	return rec, err
}

func (c *CLI) deleteRecord(ctx context.Context, server, name string) error {
	if server != "" {
		api, err := client.New(server)
		if err != nil {
			return err
		}
		return api.Delete(ctx, name)
	}
	st, err := c.newLocalStore()
	if err != nil {
		return err
	}
	defer st.Close()

	if err := st.Delete(ctx, name); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return apperrors.Wrap(apperrors.ErrCodeGraphNotFound, err, "graph %q not found", name)
		}
		return err
	}
	return nil
}
