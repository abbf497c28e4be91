package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/graphforge/graphgen/internal/api"
	"github.com/graphforge/graphgen/pkg/cache"
	apperrors "github.com/graphforge/graphgen/pkg/errors"
	"github.com/graphforge/graphgen/pkg/pipeline"
	"github.com/graphforge/graphgen/pkg/store"
)

// Server environment variables, loaded after an optional .env file.
const (
	envAddr      = "GRAPHGEN_ADDR"
	envStore     = "GRAPHGEN_STORE"      // file (default) or mongo
	envDataDir   = "GRAPHGEN_DATA_DIR"   // file store directory
	envMongoURI  = "GRAPHGEN_MONGO_URI"  // mongodb://localhost:27017
	envMongoDB   = "GRAPHGEN_MONGO_DB"   // database name, default graphgen
	envCache     = "GRAPHGEN_CACHE"      // memory (default), file, redis, off
	envRedisAddr = "GRAPHGEN_REDIS_ADDR" // localhost:6379
	envCacheTTL  = "GRAPHGEN_CACHE_TTL"  // Go duration, e.g. 24h
)

// memoryCacheSize bounds the in-process cache used by the server.
const memoryCacheSize = 256

// serveCommand creates the serve command, which runs the HTTP API server
// until the process is interrupted.
func (c *CLI) serveCommand() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the graphgen HTTP API server",
		Long: `Serve runs the graphgen HTTP API. Configuration comes from a .env file in
the working directory (when present) and environment variables; the --addr
flag overrides both.

Backends default to the local file store and an in-memory cache; set
GRAPHGEN_STORE=mongo or GRAPHGEN_CACHE=redis to use external services.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd, addr)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default :8080)")

	return cmd
}

func (c *CLI) runServe(cmd *cobra.Command, addr string) error {
	ctx := cmd.Context()

	// Missing .env is the normal case outside deployments.
	if err := godotenv.Load(); err == nil {
		c.Logger.Debug("loaded .env file")
	}

	if addr == "" {
		addr = envOr(envAddr, ":8080")
	}

	st, err := c.newServeStore(ctx)
	if err != nil {
		printError("%s", apperrors.UserMessage(err))
		return err
	}
	defer st.Close()

	serveCache, err := c.newServeCache(ctx)
	if err != nil {
		printError("%s", apperrors.UserMessage(err))
		return err
	}

	runner := pipeline.NewRunner(serveCache, c.Logger)
	defer runner.Close()
	if ttl := os.Getenv(envCacheTTL); ttl != "" {
		d, err := time.ParseDuration(ttl)
		if err != nil {
			return apperrors.Wrap(apperrors.ErrCodeInvalidConfig, err, "parse %s", envCacheTTL)
		}
		runner.TTL = d
	}

	printInfo("Serving on %s", StyleHighlight.Render(addr))
	return api.NewServer(st, runner, c.Logger).Serve(ctx, addr)
}

// newServeStore builds the record store selected by GRAPHGEN_STORE.
func (c *CLI) newServeStore(ctx context.Context) (store.Store, error) {
	switch backend := envOr(envStore, "file"); backend {
	case "file":
		dir := os.Getenv(envDataDir)
		if dir == "" {
			var err error
			if dir, err = dataDir(); err != nil {
				return nil, fmt.Errorf("get data dir: %w", err)
			}
		}
		c.Logger.Info("using file store", "dir", dir)
		return store.NewFileStore(dir)
	case "mongo":
		uri := envOr(envMongoURI, "mongodb://localhost:27017")
		db := envOr(envMongoDB, appName)
		c.Logger.Info("using mongo store", "db", db)
		return store.NewMongoStore(ctx, uri, db)
	default:
		return nil, apperrors.New(apperrors.ErrCodeInvalidConfig, "unknown store backend: %q (must be 'file' or 'mongo')", backend)
	}
}

// newServeCache builds the cache selected by GRAPHGEN_CACHE.
func (c *CLI) newServeCache(ctx context.Context) (cache.Cache, error) {
	switch backend := envOr(envCache, "memory"); backend {
	case "memory":
		return cache.NewMemoryCache(memoryCacheSize, pipeline.DefaultTTL), nil
	case "file":
		dir, err := cacheDir()
		if err != nil {
			return nil, fmt.Errorf("get cache dir: %w", err)
		}
		return cache.NewFileCache(dir)
	case "redis":
		return cache.NewRedisCache(ctx, envOr(envRedisAddr, "localhost:6379"))
	case "off":
		return cache.NewNullCache(), nil
	default:
		return nil, apperrors.New(apperrors.ErrCodeInvalidConfig, "unknown cache backend: %q (must be 'memory', 'file', 'redis' or 'off')", backend)
	}
}

// envOr returns the environment variable value or a fallback when unset.
func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
