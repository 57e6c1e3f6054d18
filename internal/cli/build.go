package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/frainlabs/frain/pkg/graph"
	frainio "github.com/frainlabs/frain/pkg/io"
)

// buildOpts holds the flags of the build command.
type buildOpts struct {
	output string
	format string
	check  bool
}

// buildCommand creates the build command for compiling a model document.
func (c *CLI) buildCommand() *cobra.Command {
	opts := buildOpts{}

	cmd := &cobra.Command{
		Use:   "build [model-file]",
		Short: "Compile a model document into a graph payload",
		Long: `Compile a model document (TOML, YAML or JSON) into the graph payload.

The payload is written as JSON by default. Use --format dot to emit a
Graphviz graph instead. Without --output the result goes to stdout.`,
		Example: `  # Write the payload to stdout
  frain build model.toml

  # Write a DOT graph to a file
  frain build model.yaml -f dot -o model.dot`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runBuild(cmd, args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: stdout)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "", "output format: json or dot (default from config)")
	cmd.Flags().BoolVar(&opts.check, "check", true, "parse DOT output with Graphviz before writing it")

	return cmd
}

func (c *CLI) runBuild(cmd *cobra.Command, path string, opts buildOpts) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	format := opts.format
	if format == "" {
		format = c.settings().Output.Format
	}
	if format != formatJSON && format != formatDOT {
		return fmt.Errorf("unsupported output format %q (want %s or %s)", format, formatJSON, formatDOT)
	}

	ws, err := c.loadModel(ctx, path)
	if err != nil {
		return err
	}

	prog := newProgress(logger)
	payload := ws.Build()
	if n := len(payload.Warnings); n > 0 {
		printWarning(cmd.ErrOrStderr(), "%d compiler warnings, run with -v for details", n)
	}
	prog.done(fmt.Sprintf("Built %d nodes", payload.Nodes.Len()))

	if err := c.writeBuild(cmd, payload, format, opts); err != nil {
		return err
	}

	if opts.output != "" {
		out := cmd.OutOrStdout()
		printSuccess(out, "Built %s", payload.Views.SystemContext.Title)
		printStats(out, payload.Nodes.Len(), len(payload.Edges), viewCount(payload))
		printFile(out, opts.output)
	}
	return nil
}

func (c *CLI) writeBuild(cmd *cobra.Command, p *graph.Payload, format string, opts buildOpts) error {
	if format == formatJSON {
		if opts.output == "" {
			return graph.WritePayload(p, cmd.OutOrStdout())
		}
		return graph.WritePayloadFile(p, opts.output)
	}

	dot := frainio.ToDOT(p)
	if opts.check {
		if err := frainio.CheckDOT(cmd.Context(), dot); err != nil {
			return err
		}
	}
	if opts.output == "" {
		return frainio.WriteDOT(p, cmd.OutOrStdout())
	}
	return frainio.ExportDOT(p, opts.output)
}
