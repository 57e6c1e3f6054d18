package graph

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/frainlabs/frain/pkg/observability"
)

// WarningType classifies a compiler diagnostic.
type WarningType string

// Warning types.
const (
	// WarningMissingID marks an element that had no identifier and was skipped.
	WarningMissingID WarningType = "missing_id"
	// WarningMissingTarget marks a relation with an empty target that was skipped.
	WarningMissingTarget WarningType = "missing_target"
	// WarningDuplicateElement marks a repeated element id; only the first
	// occurrence contributes a node, every occurrence contributes edges.
	WarningDuplicateElement WarningType = "duplicate_element"
)

// Warning is a non-fatal anomaly found while compiling. The offending node or
// edge is absent from the output; everything else is compiled normally.
type Warning struct {
	Type     WarningType `json:"type"`
	SourceID string      `json:"sourceId,omitempty"`
	Index    int         `json:"index"` // element index, or relation index for WarningMissingTarget
	Message  string      `json:"message"`
}

// Input is the compiler's view of a registry: diagram metadata plus the flat,
// ordered element list.
type Input struct {
	Title       string
	Description string
	Elements    []Element
}

// Output is the result of one compilation. Every call returns freshly
// allocated collections that share nothing with the input.
type Output struct {
	Nodes    *NodeIndex
	Edges    []Edge
	Context  ContextInfo
	Warnings []Warning
}

// Compiler turns element lists into node indexes and edge lists.
// The zero value is usable and logs through log.Default().
type Compiler struct {
	Logger *log.Logger
}

// NewCompiler creates a compiler that logs to logger.
// If logger is nil, log.Default() is used.
func NewCompiler(logger *log.Logger) *Compiler {
	return &Compiler{Logger: logger}
}

// Compile runs a compilation with a default compiler.
func Compile(in Input) *Output {
	return (&Compiler{}).Compile(in)
}

// Compile maps in.Elements to one node per distinct id and one edge per
// relation.
//
// Nodes keep the order in which their ids first appear; a repeated id keeps
// its first node. Edges are emitted for every occurrence of every element,
// grouped by element position and in declaration order within it. Edges are never sorted, merged or checked for cycles, and an edge whose
// target has no node in the output is kept as is.
func (c *Compiler) Compile(in Input) *Output {
	logger := c.logger()
	hooks := observability.Compile()
	start := time.Now()

	logger.Debug("building graph payload", "title", in.Title, "elements", len(in.Elements))
	hooks.OnCompileStart(in.Title, len(in.Elements))

	out := &Output{
		Nodes:   NewNodeIndex(),
		Edges:   []Edge{},
		Context: ContextInfo{Title: in.Title, Description: in.Description},
	}
	warn := func(w Warning) {
		out.Warnings = append(out.Warnings, w)
		hooks.OnCompileWarning(string(w.Type), w.SourceID, w.Message)
	}

	for i, el := range in.Elements {
		if el.ID == "" {
			logger.Warn("skipping element without identifier", "index", i, "name", el.Name)
			warn(Warning{
				Type:    WarningMissingID,
				Index:   i,
				Message: fmt.Sprintf("element at index %d has no identifier", i),
			})
			continue
		}
		if out.Nodes.Has(el.ID) {
			logger.Warn("duplicate element keeps its first node", "index", i, "id", el.ID)
			warn(Warning{
				Type:     WarningDuplicateElement,
				SourceID: el.ID,
				Index:    i,
				Message:  fmt.Sprintf("element %s registered more than once", el.ID),
			})
			continue
		}
		out.Nodes.Set(Node{
			ID:          el.ID,
			Name:        el.Name,
			Description: el.Description,
			Technology:  el.Technology,
			ElementType: el.ElementType,
			Styles:      el.Styles,
			ParentID:    el.ParentID,
		})
	}

	for _, el := range in.Elements {
		if el.ID == "" {
			continue
		}
		for j, rel := range el.Relations {
			if rel.TargetID == "" {
				logger.Warn("skipping relation without valid target", "source", el.ID, "relation", j)
				warn(Warning{
					Type:     WarningMissingTarget,
					SourceID: el.ID,
					Index:    j,
					Message:  fmt.Sprintf("relation %d of %s has no target", j, el.ID),
				})
				continue
			}
			out.Edges = append(out.Edges, Edge{
				Source:      el.ID,
				Target:      rel.TargetID,
				Description: rel.Description,
				Technology:  rel.Technology,
			})
		}
	}

	logger.Debug("graph payload prepared",
		"nodes", out.Nodes.Len(),
		"edges", len(out.Edges),
		"warnings", len(out.Warnings))
	hooks.OnCompileComplete(out.Nodes.Len(), len(out.Edges), len(out.Warnings), time.Since(start))

	return out
}

func (c *Compiler) logger() *log.Logger {
	if c == nil || c.Logger == nil {
		return log.Default().WithPrefix("graph")
	}
	return c.Logger.WithPrefix("graph")
}
