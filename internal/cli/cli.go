// Package cli implements the make-expr-answer command-line interface.
//
// This package provides commands for searching arithmetic expressions that
// reach a target value, counting solutions across target ranges and digit
// combinations, reporting achievable-target coverage, rendering expression
// trees, and serving the solver over HTTP. The CLI is built using cobra
// and supports verbose logging via the charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - solve: Print every distinct expression reaching a target
//   - count: Tabulate solution counts over a target range
//   - combos: Tabulate solution counts over digit combinations
//   - coverage: Report contiguous achievable-target ranges
//   - render: Draw a solution's expression tree (DOT, SVG, PNG)
//   - serve: Run the JSON HTTP API
//   - cache: Manage the solution-count cache
//
// All commands support --verbose (-v) for debug-level logging. The
// optional config file (~/.config/make-expr-answer/config.toml) supplies
// defaults for workers and the cache backend; flags override it.
package cli

import (
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/ldo/make-expr-answer/pkg/buildinfo"
	"github.com/ldo/make-expr-answer/pkg/cache"
	"github.com/ldo/make-expr-answer/pkg/expr"
	"github.com/ldo/make-expr-answer/pkg/query"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for directories and display.
const appName = "make-expr-answer"

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
	Config Config
}

// New creates a new CLI instance with a default logger and the on-disk
// configuration (falling back to defaults when no file exists).
func New(w io.Writer, level log.Level) *CLI {
	c := &CLI{
		Logger: log.NewWithOptions(w, log.Options{
			ReportTimestamp: true,
			TimeFormat:      "15:04:05.00",
			Level:           level,
		}),
	}
	cfg, err := loadConfig()
	if err != nil {
		c.Logger.Warn("ignoring config file", "err", err)
		cfg = defaultConfig()
	}
	c.Config = cfg
	return c
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Find arithmetic expressions that reach a target value",
		Long:         `make-expr-answer searches for all distinct ways to combine a given set of numbers, each used exactly once, with + - × ÷ into an expression that evaluates exactly to a target value.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	// Register all subcommands
	root.AddCommand(c.solveCommand())
	root.AddCommand(c.countCommand())
	root.AddCommand(c.combosCommand())
	root.AddCommand(c.coverageCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Runner Factory
// =============================================================================

// solver builds the expression solver configured by flags/config.
func (c *CLI) solver(workers int) expr.Solver {
	if workers == 0 {
		workers = c.Config.Workers
	}
	return expr.Solver{Workers: workers}
}

// newRunner creates a query runner for CLI use.
func (c *CLI) newRunner(workers int, noCache bool) *query.Runner {
	return query.NewRunner(c.newCache(noCache), c.solver(workers), c.Logger)
}

func (c *CLI) newCache(noCache bool) cache.Cache {
	if noCache || c.Config.Cache == cacheOff {
		return cache.NewNullCache()
	}
	if c.Config.Cache == cacheRedis {
		redis, err := cache.NewRedisCache(c.Config.Redis)
		if err != nil {
			c.Logger.Warn("redis unavailable, caching disabled", "addr", c.Config.Redis, "err", err)
			return cache.NewNullCache()
		}
		return redis
	}
	dir, err := cacheDir()
	if err != nil {
		return cache.NewNullCache()
	}
	fc, err := cache.NewFileCache(dir)
	if err != nil {
		c.Logger.Warn("file cache unavailable, caching disabled", "dir", dir, "err", err)
		return cache.NewNullCache()
	}
	return fc
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the cache directory using XDG standard (~/.cache/make-expr-answer/).
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

// configDir returns the config directory using XDG standard (~/.config/make-expr-answer/).
func configDir() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName), nil
}
