package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/frainlabs/frain/pkg/graph"
)

// elementOrder is the display order of element types.
var elementOrder = []graph.ElementType{
	graph.ElementTypePerson,
	graph.ElementTypeSoftwareSystem,
	graph.ElementTypeContainer,
	graph.ElementTypeComponent,
	graph.ElementTypeExternalSoftwareSystem,
}

// inspectCommand creates the inspect command for summarizing a model.
func (c *CLI) inspectCommand() *cobra.Command {
	var list bool

	cmd := &cobra.Command{
		Use:   "inspect [model-file]",
		Short: "Summarize the elements, edges and views of a model",
		Example: `  frain inspect model.toml
  frain inspect model.toml --list`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := c.loadModel(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			printInspect(cmd.OutOrStdout(), ws.Build(), list)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&list, "list", "l", false, "list every node and edge")

	return cmd
}

func printInspect(w io.Writer, p *graph.Payload, list bool) {
	fmt.Fprintln(w, StyleTitle.Render(p.Views.SystemContext.Title))
	if d := p.Views.SystemContext.Description; d != "" {
		fmt.Fprintln(w, StyleDim.Render(d))
	}
	fmt.Fprintln(w)

	counts := make(map[graph.ElementType]int)
	for _, n := range p.Nodes.Nodes() {
		counts[n.ElementType]++
	}

	printKeyValue(w, "workspace", p.WorkspaceID)
	for _, t := range elementOrder {
		printKeyValue(w, string(t), strconv.Itoa(counts[t]))
	}
	printKeyValue(w, "relations", strconv.Itoa(len(p.Edges)))
	printKeyValue(w, "container views", strconv.Itoa(len(p.Views.ContainerViews)))
	printKeyValue(w, "component views", strconv.Itoa(len(p.Views.ComponentViews)))

	if !list {
		return
	}

	fmt.Fprintln(w)
	for _, n := range p.Nodes.Nodes() {
		label := fmt.Sprintf("%s (%s)", n.Name, n.ElementType)
		if parent, ok := p.Node(n.ParentID); ok {
			label += " in " + parent.Name
		}
		printInfo(w, "%s", label)
	}
	for _, e := range p.Edges {
		printDetail(w, "%s %s %s: %s", nodeName(p, e.Source), iconArrow, nodeName(p, e.Target), e.Description)
	}
}

// nodeName returns the name of the node with id, or id itself when the node
// is not in the payload.
func nodeName(p *graph.Payload, id string) string {
	if n, ok := p.Node(id); ok {
		return n.Name
	}
	return id
}
