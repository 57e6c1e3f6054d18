package io

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/frainlabs/frain/pkg/graph"
)

var dotShapes = map[string]string{
	"rectangle":    "box",
	"rounded-box":  "box",
	"web-browser":  "tab",
	"mobile-phone": "box",
	"database":     "cylinder",
	"person":       "box",
}

// ToDOT converts a payload to Graphviz DOT. Every node is declared once with
// its name, technology and colors; nodes with children get a dashed cluster
// holding those children, nested the same way the model is. Edges keep
// payload order and are labelled with their description and technology.
//
// Edges to ids without a node are kept; Graphviz draws them as bare nodes.
func ToDOT(p *graph.Payload) string {
	nodes := p.Nodes
	if nodes == nil {
		nodes = graph.NewNodeIndex()
	}

	children := make(map[string][]graph.Node)
	for _, n := range nodes.Nodes() {
		if n.HasParent() {
			children[n.ParentID] = append(children[n.ParentID], n)
		}
	}

	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  compound=true;\n")
	if title := p.Views.SystemContext.Title; title != "" {
		fmt.Fprintf(&buf, "  label=%s;\n", dotQuote(title))
		buf.WriteString("  labelloc=t;\n")
	}
	buf.WriteString("  node [style=\"filled\", fontsize=14, margin=\"0.2,0.1\"];\n")
	buf.WriteString("\n")

	for _, n := range nodes.Nodes() {
		fmt.Fprintf(&buf, "  %s [%s];\n", dotQuote(n.ID), strings.Join(nodeAttrs(n), ", "))
	}

	for _, n := range nodes.Nodes() {
		// Clusters start at the outermost registered parent.
		if n.HasParent() && nodes.Has(n.ParentID) {
			continue
		}
		writeCluster(&buf, n, children, 1)
	}

	buf.WriteString("\n")
	for _, e := range p.Edges {
		fmt.Fprintf(&buf, "  %s -> %s", dotQuote(e.Source), dotQuote(e.Target))
		if label := edgeLabel(e); label != "" {
			fmt.Fprintf(&buf, " [label=%s]", dotQuote(label))
		}
		buf.WriteString(";\n")
	}

	buf.WriteString("}\n")
	return buf.String()
}

func writeCluster(buf *bytes.Buffer, parent graph.Node, children map[string][]graph.Node, depth int) {
	kids := children[parent.ID]
	if len(kids) == 0 {
		return
	}
	indent := strings.Repeat("  ", depth)
	fmt.Fprintf(buf, "%ssubgraph %s {\n", indent, dotQuote("cluster_"+parent.ID))
	fmt.Fprintf(buf, "%s  label=%s;\n", indent, dotQuote(parent.Name))
	fmt.Fprintf(buf, "%s  style=dashed;\n", indent)
	for _, k := range kids {
		fmt.Fprintf(buf, "%s  %s;\n", indent, dotQuote(k.ID))
		writeCluster(buf, k, children, depth+1)
	}
	fmt.Fprintf(buf, "%s}\n", indent)
}

func nodeAttrs(n graph.Node) []string {
	label := n.Name
	if n.Technology != "" {
		label += "\n[" + n.Technology + "]"
	}
	shape, ok := dotShapes[n.Styles.Shape]
	if !ok {
		shape = "box"
	}
	attrs := []string{
		"label=" + dotQuote(label),
		"shape=" + shape,
	}
	if n.Styles.Shape == "rounded-box" || n.Styles.Shape == "person" {
		attrs = append(attrs, `style="rounded,filled"`)
	}
	if n.Styles.BackgroundColor != "" {
		attrs = append(attrs, "fillcolor="+dotQuote(n.Styles.BackgroundColor))
	}
	if n.Styles.Color != "" {
		attrs = append(attrs, "fontcolor="+dotQuote(n.Styles.Color))
	}
	if n.Description != "" {
		attrs = append(attrs, "tooltip="+dotQuote(n.Description))
	}
	return attrs
}

func edgeLabel(e graph.Edge) string {
	switch {
	case e.Description != "" && e.Technology != "":
		return e.Description + "\n[" + e.Technology + "]"
	case e.Technology != "":
		return "[" + e.Technology + "]"
	default:
		return e.Description
	}
}

var dotEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`, "\n", `\n`)

// dotQuote returns s as a DOT double-quoted string. Unlike %q it leaves
// non-ASCII text alone, which DOT reads as UTF-8.
func dotQuote(s string) string {
	return `"` + dotEscaper.Replace(s) + `"`
}

// WriteDOT writes the DOT form of p to w.
func WriteDOT(p *graph.Payload, w io.Writer) error {
	if _, err := io.WriteString(w, ToDOT(p)); err != nil {
		return fmt.Errorf("write dot: %w", err)
	}
	return nil
}

// ExportDOT writes the DOT form of p to a file at path.
func ExportDOT(p *graph.Payload, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteDOT(p, f)
}

// CheckDOT parses dot with Graphviz and reports syntax errors. Nothing is
// rendered.
func CheckDOT(ctx context.Context, dot string) error {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return fmt.Errorf("parse DOT: %w", err)
	}
	return g.Close()
}
