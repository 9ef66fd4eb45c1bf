package cli

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/babelgraph/pkg/buildinfo"
	"github.com/matzehuels/babelgraph/pkg/cache"
	"github.com/matzehuels/babelgraph/pkg/config"
	"github.com/matzehuels/babelgraph/pkg/errors"
	"github.com/matzehuels/babelgraph/pkg/graph"
	bgio "github.com/matzehuels/babelgraph/pkg/io"
	"github.com/matzehuels/babelgraph/pkg/observability"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "babelgraph"

	extBGX  = ".bgx"
	extJSON = ".json"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
	Config config.Config

	configPath string
	verbose    bool
}

// New creates a new CLI instance with a default logger and the built-in
// configuration.
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
		Use:   appName,
		Short: "babelgraph builds, lays out and analyzes graphs",
		Long: `babelgraph is a CLI for building graphs from classic generators, placing their
vertices in 3D, relaxing the layout and computing structural metrics such as
shortest paths, PageRank, clustering and homophily.`,
		Version:           buildinfo.Resolved(),
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: c.setup,
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/babelgraph/config.toml)")

	root.AddCommand(c.generateCommand())
	root.AddCommand(c.layoutCommand())
	root.AddCommand(c.relaxCommand())
	root.AddCommand(c.analyzeCommand())
	root.AddCommand(c.exportCommand())
	root.AddCommand(c.infoCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// setup runs before every command: it applies --verbose, loads the config
// file, installs the logging hooks and attaches the logger to the context.
func (c *CLI) setup(cmd *cobra.Command, args []string) error {
	if c.verbose {
		c.SetLogLevel(LogDebug)
	}

	var err error
	if c.configPath != "" {
		c.Config, err = config.Load(c.configPath)
	} else {
		c.Config, err = config.LoadDefault()
	}
	if err != nil {
		return err
	}

	hooks := &logHooks{logger: c.Logger}
	observability.SetEngineHooks(hooks)
	observability.SetCacheHooks(hooks)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(withLogger(ctx, c.Logger))
	return nil
}

// =============================================================================
// Cache Factory
// =============================================================================

// newCache returns the analysis cache: a null cache with noCache, redis
// when redisAddr is set, the file cache otherwise. The result is
// instrumented so hits and misses reach the observability hooks.
func (c *CLI) newCache(ctx context.Context, noCache bool, redisAddr string) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	if redisAddr != "" {
		rc, err := cache.NewRedisCache(ctx, cache.RedisOptions{Addr: redisAddr, Prefix: appName + ":"})
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeNetwork, err, "connect to redis at %s", redisAddr)
		}
		return cache.Instrument(rc, "analysis"), nil
	}
	dir, err := c.cacheDir()
	if err != nil {
		c.Logger.Warn("no cache directory, caching disabled", "err", err)
		return cache.NewNullCache(), nil
	}
	fc, err := cache.NewFileCache(dir)
	if err != nil {
		return nil, err
	}
	return cache.Instrument(fc, "analysis"), nil
}

// analysisKeyer scopes report keys by the configured namespace when reports
// go to a shared redis instance. A nil keyer means the default keys.
func (c *CLI) analysisKeyer(shared bool) cache.Keyer {
	ns := c.Config.Cache.Namespace
	if !shared || ns == "" {
		return nil
	}
	return cache.NewScopedKeyer(nil, ns+":")
}

// cacheTTL is the configured lifetime of cache entries.
func (c *CLI) cacheTTL() time.Duration {
	return time.Duration(c.Config.Cache.TTL)
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the configured cache directory, falling back to the XDG
// standard location (~/.cache/babelgraph/).
func (c *CLI) cacheDir() (string, error) {
	if c.Config.Cache.Dir != "" {
		return c.Config.Cache.Dir, nil
	}
	return cacheDir()
}

// cacheDir returns the cache directory using XDG standard (~/.cache/babelgraph/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}

// =============================================================================
// Graph Files
// =============================================================================

// loadedGraph is a graph read from disk together with the hash of the file
// contents, which keys the analysis cache.
type loadedGraph struct {
	*graph.Graph
	path string
	hash string
}

// loadGraph reads a .bgx or .json file. Skipped .bgx rows are reported as a
// warning; the rest of the file is still used.
func loadGraph(ctx context.Context, path string) (*loadedGraph, error) {
	if err := errors.ValidateExtension(path, extBGX, extJSON); err != nil {
		return nil, err
	}
	logger := loggerFromContext(ctx)
	hooks := observability.Engine()
	hooks.OnLoadStart(ctx, path)
	start := time.Now()

	data, err := os.ReadFile(path)
	if err != nil {
		err = errors.Wrap(errors.ErrCodeFileNotFound, err, "read %s", path)
		hooks.OnLoadComplete(ctx, path, 0, 0, time.Since(start), err)
		return nil, err
	}

	var g *graph.Graph
	if strings.EqualFold(filepath.Ext(path), extJSON) {
		g, err = bgio.ReadJSON(bytes.NewReader(data))
	} else {
		g, err = bgio.ReadBGX(bytes.NewReader(data), bgio.WithLogger(logger))
		if err != nil && g != nil && errors.Is(err, errors.ErrCodeInvalidFormat) {
			printWarning("%s: skipped %d malformed rows", path, len(errors.Lines(err)))
			err = nil
		}
	}
	if err != nil {
		hooks.OnLoadComplete(ctx, path, 0, 0, time.Since(start), err)
		return nil, err
	}
	hooks.OnLoadComplete(ctx, path, g.VertexCount(), g.EdgeCount(), time.Since(start), nil)
	return &loadedGraph{Graph: g, path: path, hash: cache.Hash(data)}, nil
}

// saveGraph writes g to path, choosing the format by extension.
func saveGraph(g *graph.Graph, path string) error {
	if err := errors.ValidateExtension(path, extBGX, extJSON); err != nil {
		return err
	}
	if strings.EqualFold(filepath.Ext(path), extJSON) {
		return bgio.ExportJSON(g, path)
	}
	return bgio.ExportBGX(g, path)
}

// outputPath returns output if set and input otherwise.
func outputPath(output, input string) string {
	if output != "" {
		return output
	}
	return input
}

// basePath strips the extension from output, or derives a name from input
// when output is empty.
func basePath(output, input string) string {
	if output != "" {
		return strings.TrimSuffix(output, filepath.Ext(output))
	}
	return strings.TrimSuffix(input, filepath.Ext(input))
}

// saveAndReport writes g and prints where it went.
func saveAndReport(g *graph.Graph, path string) error {
	if err := saveGraph(g, path); err != nil {
		return err
	}
	printSuccess("Wrote %s", path)
	printStats(g.VertexCount(), g.EdgeCount())
	return nil
}

// checkSeed turns a zero seed into a fresh one and logs it so runs can be
// repeated.
func checkSeed(ctx context.Context, seed uint64) uint64 {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	loggerFromContext(ctx).Debug("random seed", "seed", seed)
	return seed
}

// wrapInput marks err as an input problem unless it already carries a code.
func wrapInput(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	if errors.GetCode(err) != "" {
		return err
	}
	return errors.Wrap(errors.ErrCodeInvalidInput, err, format, args...)
}

// formatFloat prints metrics compactly.
func formatFloat(f float64) string {
	return fmt.Sprintf("%.4g", f)
}
