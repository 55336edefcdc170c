// Package cli implements the mandala command-line interface.
//
// # Commands
//
//   - render: export a mandala to SVG, PNG, PDF, JSON, DOT or an outline
//   - inspect: list the items of a mandala with their placement
//   - resolve: map a position to its dimension and scale
//   - edit: drive the interactive canvas from the terminal
//   - serve: run the HTTP export server
//   - cache: manage the artifact cache
//
// All commands accept --verbose (-v) for debug logging and --config for a
// TOML configuration file. The logger travels in the command context.
package cli

import (
	"context"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/mandala/pkg/buildinfo"
	"github.com/matzehuels/mandala/pkg/cache"
	"github.com/matzehuels/mandala/pkg/config"
	"github.com/matzehuels/mandala/pkg/errors"
	mio "github.com/matzehuels/mandala/pkg/io"
	"github.com/matzehuels/mandala/pkg/mandala"
	"github.com/matzehuels/mandala/pkg/pipeline"
	"github.com/matzehuels/mandala/pkg/store"
)

const appName = "mandala"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger     *log.Logger
	ConfigPath string
	Config     config.Config
}

// New creates a CLI logging to w at level.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		Config: config.Default(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Mandala lays out and exports collaborative mandala diagrams",
		Long:         `Mandala lays out notes, characters and images on a circular diagram of dimensions and scales, and exports the result as SVG, PNG, PDF or JSON.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(c.ConfigPath)
			if err != nil {
				return err
			}
			c.Config = cfg
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.ConfigPath, "config", "", "config file (default ~/.config/mandala/config.toml)")

	root.AddCommand(c.renderCommand())
	root.AddCommand(c.inspectCommand())
	root.AddCommand(c.resolveCommand())
	root.AddCommand(c.editCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// newCache opens the configured cache. noCache forces the null cache.
func (c *CLI) newCache(ctx context.Context, noCache bool) (cache.Cache, error) {
	cfg := c.Config.Cache
	if noCache || cfg.Backend == config.CacheNone {
		return cache.NewNullCache(), nil
	}
	if cfg.Backend == config.CacheRedis {
		return cache.NewRedisCache(ctx, cache.RedisConfig{Addr: cfg.RedisAddr, DB: cfg.RedisDB})
	}
	dir := cfg.Dir
	if dir == "" {
		d, err := cache.DefaultDir()
		if err != nil {
			c.Logger.Warn("cache disabled", "error", err)
			return cache.NewNullCache(), nil
		}
		dir = d
	}
	return cache.NewFileCache(dir)
}

// newKeyer returns the configured keyer.
func (c *CLI) newKeyer() cache.Keyer {
	if c.Config.Cache.Prefix != "" {
		return cache.NewScopedKeyer(nil, c.Config.Cache.Prefix)
	}
	return cache.NewDefaultKeyer()
}

// newStore opens the configured document store.
func (c *CLI) newStore(ctx context.Context) (store.Store, error) {
	cfg := c.Config.Store
	if cfg.Backend == config.StoreMongo {
		return store.NewMongoStore(ctx, store.MongoConfig{
			URI:        cfg.MongoURI,
			Database:   cfg.Database,
			Collection: cfg.Collection,
		})
	}
	return store.NewFileStore(cfg.Dir)
}

// newRunner creates a pipeline runner over the configured store and cache.
func (c *CLI) newRunner(ctx context.Context, src store.Source, noCache bool) (*pipeline.Runner, error) {
	ch, err := c.newCache(ctx, noCache)
	if err != nil {
		return nil, err
	}
	return pipeline.NewRunner(src, ch, c.newKeyer(), loggerFromContext(ctx)), nil
}

// loadDocument reads a mandala from a JSON file when arg names one, and
// from the configured store otherwise.
func (c *CLI) loadDocument(ctx context.Context, arg string) (*mandala.Mandala, error) {
	if isDocumentFile(arg) {
		return mio.ImportJSON(arg)
	}
	st, err := c.newStore(ctx)
	if err != nil {
		return nil, err
	}
	defer st.Close()
	return st.Load(ctx, arg)
}

func isDocumentFile(arg string) bool {
	if strings.HasSuffix(strings.ToLower(arg), ".json") {
		return true
	}
	info, err := os.Stat(arg)
	return err == nil && !info.IsDir()
}

// parseFormats parses a comma-separated format string into a slice.
func parseFormats(s string) []string {
	if s == "" {
		return []string{pipeline.FormatSVG}
	}
	return strings.Split(s, ",")
}

// parseFilter builds a filter from --dimension and --tag values.
func parseFilter(dimensions, tags []string) mandala.Filter {
	f := mandala.Filter{}
	if len(dimensions) > 0 {
		f["dimension"] = dimensions
	}
	if len(tags) > 0 {
		f["tags"] = tags
	}
	return f
}

// ErrorMessage returns the text shown to the user for err.
func ErrorMessage(err error) string {
	if errors.GetCode(err) != "" {
		return errors.UserMessage(err)
	}
	return err.Error()
}
