package main

import (
	"context"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/KirkDiggler/charm-tracker/internal/catalog"
	"github.com/KirkDiggler/charm-tracker/internal/config"
	"github.com/KirkDiggler/charm-tracker/internal/errors"
	"github.com/KirkDiggler/charm-tracker/internal/logging"
	"github.com/KirkDiggler/charm-tracker/internal/orchestrators/charm"
)

// annotationNoStore marks commands that never touch the charm store
const annotationNoStore = "charms/no-store"

// rootFlags holds the persistent flags; zero values mean "use the environment"
type rootFlags struct {
	backend     string
	dbPath      string
	redisAddr   string
	snapshotKey string
	catalogPath string
	verbose     bool
}

// cli carries the dependencies built once per invocation
type cli struct {
	flags rootFlags

	cfg     *config.Config
	logger  *zap.Logger
	catalog *catalog.Catalog
	store   charm.Service
	closers []func() error
}

// execute runs the command tree with the given arguments and streams.
// Resources opened during setup are released even when the command fails.
func execute(ctx context.Context, args []string, in io.Reader, out, errOut io.Writer) error {
	c := &cli{}
	defer c.teardown()

	rootCmd := c.newRootCmd()
	rootCmd.SetArgs(args)
	rootCmd.SetIn(in)
	rootCmd.SetOut(out)
	rootCmd.SetErr(errOut)

	return rootCmd.ExecuteContext(ctx)
}

func (c *cli) newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "charms",
		Short: "Track and filter a charm inventory",
		Long: `charms keeps an inventory of charms: up to three skills each, three armor
decoration slots and one weapon slot. Charms can be added, edited, deleted,
filtered by skills and minimum slot sizes, and moved in bulk as text.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return c.setup(cmd)
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			c.teardown()
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&c.flags.backend, "backend", "", "Storage backend: memory, sqlite or redis (env CHARMS_BACKEND)")
	flags.StringVar(&c.flags.dbPath, "db", "", "SQLite database file (env CHARMS_DB_PATH)")
	flags.StringVar(&c.flags.redisAddr, "redis-addr", "", "Redis host:port or redis:// URL (env CHARMS_REDIS_ADDR)")
	flags.StringVar(&c.flags.snapshotKey, "key", "", "Snapshot key (env CHARMS_SNAPSHOT_KEY)")
	flags.StringVar(&c.flags.catalogPath, "catalog", "", "YAML skill catalog (env CHARMS_CATALOG)")
	flags.BoolVarP(&c.flags.verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(c.newAddCmd())
	rootCmd.AddCommand(c.newListCmd())
	rootCmd.AddCommand(c.newEditCmd())
	rootCmd.AddCommand(c.newDeleteCmd())
	rootCmd.AddCommand(c.newClearCmd())
	rootCmd.AddCommand(c.newImportCmd())
	rootCmd.AddCommand(c.newExportCmd())
	rootCmd.AddCommand(c.newSkillsCmd())
	rootCmd.AddCommand(c.newCheckCmd())
	rootCmd.AddCommand(c.newTUICmd())

	return rootCmd
}

// loadConfig reads the environment and applies any flags the user set
func (c *cli) loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeFailedPrecondition, "invalid configuration")
	}

	flags := cmd.Flags()
	if flags.Changed("backend") {
		cfg.Backend = c.flags.backend
	}
	if flags.Changed("db") {
		cfg.DBPath = c.flags.dbPath
	}
	if flags.Changed("redis-addr") {
		cfg.RedisAddr = c.flags.redisAddr
	}
	if flags.Changed("key") {
		cfg.SnapshotKey = c.flags.snapshotKey
	}
	if flags.Changed("catalog") {
		cfg.CatalogPath = c.flags.catalogPath
	}
	if flags.Changed("verbose") {
		cfg.Verbose = c.flags.verbose
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeFailedPrecondition, "invalid configuration")
	}
	return cfg, nil
}

func (c *cli) setup(cmd *cobra.Command) error {
	cfg, err := c.loadConfig(cmd)
	if err != nil {
		return err
	}
	c.cfg = cfg

	logger, err := logging.New(logging.Options{Verbose: cfg.Verbose})
	if err != nil {
		return err
	}
	c.logger = logger

	cat, err := catalog.Load(cfg.CatalogPath)
	if err != nil {
		return errors.Wrap(err, "failed to load skill catalog")
	}
	c.catalog = cat

	if cmd.Annotations[annotationNoStore] == "true" {
		return nil
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	store, closers, err := openStore(ctx, cfg, logger)
	if err != nil {
		return err
	}
	c.store = store
	c.closers = closers

	logger.Debug("store ready",
		zap.String("backend", cfg.Backend),
		zap.String("key", cfg.SnapshotKeyOrDefault()))
	return nil
}

func (c *cli) teardown() {
	for i := len(c.closers) - 1; i >= 0; i-- {
		if err := c.closers[i](); err != nil && c.logger != nil {
			c.logger.Warn("failed to close resource", zap.Error(err))
		}
	}
	c.closers = nil

	if c.logger != nil {
		_ = c.logger.Sync()
		c.logger = nil
	}
}
