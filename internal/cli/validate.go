package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// validateCommand creates the validate command for checking model references.
func (c *CLI) validateCommand() *cobra.Command {
	var strict bool

	cmd := &cobra.Command{
		Use:   "validate [model-file]",
		Short: "Report relations and views that do not resolve",
		Long: `Build a model document and report compiler warnings and references to
elements that are not registered in the workspace.

Such references are legal and are kept in the payload. Use --strict to
treat any finding as an error.`,
		Example: `  frain validate model.toml
  frain validate model.yaml --strict`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runValidate(cmd, args[0], strict)
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "exit with an error when any issue is found")

	return cmd
}

func (c *CLI) runValidate(cmd *cobra.Command, path string, strict bool) error {
	ws, err := c.loadModel(cmd.Context(), path)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	payload := ws.Build()
	for _, w := range payload.Warnings {
		printWarning(out, "%s: %s", w.Type, w.Message)
	}
	issues := ws.Validate()
	for _, issue := range issues {
		printWarning(out, "%s: %s", issue.Type, issue.Message)
		if issue.Suggestion != "" {
			printDetail(out, "%s", issue.Suggestion)
		}
	}

	found := len(payload.Warnings) + len(issues)
	if found == 0 {
		printSuccess(out, "No issues in %s", path)
		printStats(out, payload.Nodes.Len(), len(payload.Edges), viewCount(payload))
		return nil
	}

	if strict {
		printError(out, "%d issues found", found)
		return fmt.Errorf("%s: %d issues found", path, found)
	}
	printInfo(out, "%d issues found", found)
	return nil
}
