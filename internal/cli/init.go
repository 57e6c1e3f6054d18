package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	frainio "github.com/frainlabs/frain/pkg/io"
)

const defaultModelFile = "model.toml"

// initCommand creates the init command for writing a starter model document.
func (c *CLI) initCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init [path]",
		Short: "Write a starter model document",
		Long: `Write a starter model document to path (default: model.toml).

The format follows the file extension: .toml, .yaml, .yml or .json.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := defaultModelFile
			if len(args) == 1 {
				path = args[0]
			}
			return c.runInit(cmd, path, force)
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")

	return cmd
}

func (c *CLI) runInit(cmd *cobra.Command, path string, force bool) error {
	logger := loggerFromContext(cmd.Context())

	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%s already exists (use --force to overwrite)", path)
		}
	}

	doc := starterDocument()
	if err := frainio.WriteModelFile(doc, path); err != nil {
		return err
	}
	logger.Debug("wrote starter model", "path", path, "entities", doc.EntityCount())

	out := cmd.OutOrStdout()
	printSuccess(out, "Created starter model")
	printFile(out, path)
	printNextStep(out, "Build it", appName+" build "+path)
	return nil
}

// starterDocument returns a small model with one of each element kind.
func starterDocument() *frainio.Document {
	return &frainio.Document{
		Title:       "My System",
		Description: "System context of My System",
		People: []frainio.EntityDoc{
			{Key: "user", Name: "User", Description: "A user of My System"},
		},
		Systems: []frainio.SystemDoc{
			{
				Key:         "system",
				Name:        "My System",
				Description: "The system being modelled",
				Containers: []frainio.ContainerDoc{
					{
						Key:         "web",
						Name:        "Web App",
						Description: "Serves the user interface",
						Technology:  "Go",
						Components: []frainio.ComponentDoc{
							{Key: "handlers", Name: "Handlers", Description: "HTTP handlers", Technology: "net/http"},
						},
					},
					{
						Key:         "db",
						Name:        "Database",
						Description: "Stores application data",
						Technology:  "PostgreSQL",
						Style:       &frainio.StyleDoc{Shape: "database"},
					},
				},
			},
		},
		ExternalSystems: []frainio.EntityDoc{
			{Key: "mail", Name: "Mail Provider", Description: "Delivers email"},
		},
		Relations: []frainio.RelationDoc{
			{From: "user", To: "web", Description: "Uses", Technology: "HTTPS"},
			{From: "web", To: "db", Description: "Reads and writes", Technology: "SQL"},
			{From: "web", To: "mail", Description: "Sends email", Technology: "SMTP"},
		},
		ContainerViews: []frainio.ContainerViewDoc{
			{System: "system", Title: "Containers", Description: "Containers of My System"},
		},
		ComponentViews: []frainio.ComponentViewDoc{
			{Container: "web", Title: "Web App", Description: "Components of the web app"},
		},
	}
}
