package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/frainlabs/frain/internal/config"
	"github.com/frainlabs/frain/pkg/buildinfo"
	"github.com/frainlabs/frain/pkg/graph"
	frainio "github.com/frainlabs/frain/pkg/io"
	"github.com/frainlabs/frain/pkg/workspace"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for display.
	appName = "frain"

	formatJSON = "json"
	formatDOT  = "dot"
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

	configFile string
	verbose    bool
	cfg        *config.Config
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "Frain compiles C4 architecture models into graph payloads",
		Long: `Frain builds C4 architecture models (people, software systems, containers
and components) from declarative documents and compiles them into the graph
payload consumed by the Frain diagram service.`,
		Version:           buildinfo.Version,
		SilenceUsage:      true,
		PersistentPreRunE: c.loadConfig,
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.PersistentFlags().StringVar(&c.configFile, "config", "", "config file (default: ./frain.yaml)")
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(c.buildCommand())
	root.AddCommand(c.validateCommand())
	root.AddCommand(c.inspectCommand())
	root.AddCommand(c.initCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// loadConfig reads settings before any subcommand runs and applies the
// configured log level. --verbose always wins.
func (c *CLI) loadConfig(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(c.configFile)
	if err != nil {
		return err
	}
	c.cfg = cfg

	level := parseLevel(cfg.Log.Level)
	if c.verbose {
		level = LogDebug
	}
	c.SetLogLevel(level)
	c.Logger.Debug("loaded config", "config", cfg.String())

	cmd.SetContext(withLogger(cmd.Context(), c.Logger))
	return nil
}

// settings returns the loaded settings, or defaults when a command runs
// without the root pre-run (as in tests that call a subcommand directly).
func (c *CLI) settings() *config.Config {
	if c.cfg == nil {
		return &config.Config{Log: config.LogConfig{Level: "info"}, Output: config.OutputConfig{Format: formatJSON}}
	}
	return c.cfg
}

// =============================================================================
// Model Loading
// =============================================================================

// loadModel reads the document at path and applies it to a new workspace
// built from the configured credentials.
func (c *CLI) loadModel(ctx context.Context, path string) (*workspace.Workspace, error) {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	ws, err := workspace.New(c.settings().Workspace(), workspace.WithLogger(logger))
	if err != nil {
		return nil, err
	}

	logger.Debug("reading model", "path", path)
	doc, err := frainio.ReadModelFile(path)
	if err != nil {
		return nil, err
	}

	applied, err := frainio.Apply(doc, ws)
	if err != nil {
		return nil, fmt.Errorf("applying %s: %w", path, err)
	}
	logger.Debug("applied model",
		"entities", len(applied.Keys),
		"relations", applied.Relations,
		"views", applied.Views)

	prog.done("Loaded " + path)
	return ws, nil
}

// viewCount returns the number of container and component views in p.
func viewCount(p *graph.Payload) int {
	return len(p.Views.ContainerViews) + len(p.Views.ComponentViews)
}
