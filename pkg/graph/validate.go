package graph

import "fmt"

// IssueType classifies a finding of [Validate].
type IssueType string

// Issue types.
const (
	IssueDanglingEdgeSource IssueType = "dangling_edge_source"
	IssueDanglingEdgeTarget IssueType = "dangling_edge_target"
	IssueDanglingParent     IssueType = "dangling_parent"
	IssueDanglingView       IssueType = "dangling_view"
	IssueViewTargetKind     IssueType = "view_target_kind"
)

// SeverityWarning is the severity of every issue reported by [Validate].
// References to unregistered elements are legal in a payload; they are
// surfaced so callers can decide whether they are mistakes.
const SeverityWarning = "warning"

// Issue is one consistency finding about a compiled payload.
type Issue struct {
	Type       IssueType `json:"type"`
	Severity   string    `json:"severity"`
	NodeID     string    `json:"node_id,omitempty"`
	Message    string    `json:"message"`
	Suggestion string    `json:"suggestion,omitempty"`
}

// Validate checks the referential integrity of p and returns every finding in
// a stable order: edges, then parents, then container views, then component
// views. A nil result means every reference resolves.
//
// Validate never modifies p.
func Validate(p *Payload) []Issue {
	if p == nil {
		return nil
	}
	nodes := p.Nodes
	if nodes == nil {
		nodes = NewNodeIndex()
	}

	var issues []Issue

	for i, e := range p.Edges {
		if !nodes.Has(e.Source) {
			issues = append(issues, Issue{
				Type: IssueDanglingEdgeSource, Severity: SeverityWarning, NodeID: e.Source,
				Message:    fmt.Sprintf("edge %d source %s is not a registered element", i, e.Source),
				Suggestion: "Register the source element in the workspace",
			})
		}
		if !nodes.Has(e.Target) {
			issues = append(issues, Issue{
				Type: IssueDanglingEdgeTarget, Severity: SeverityWarning, NodeID: e.Target,
				Message:    fmt.Sprintf("edge %d from %s points at unregistered element %s", i, e.Source, e.Target),
				Suggestion: "Add the target through the workspace so it appears in the node index",
			})
		}
	}

	for _, n := range nodes.Nodes() {
		if n.HasParent() && !nodes.Has(n.ParentID) {
			issues = append(issues, Issue{
				Type: IssueDanglingParent, Severity: SeverityWarning, NodeID: n.ID,
				Message:    fmt.Sprintf("%s %s has unregistered parent %s", n.ElementType, n.ID, n.ParentID),
				Suggestion: "Register the owning element",
			})
		}
	}

	for i, v := range p.Views.ContainerViews {
		issues = appendViewIssue(issues, nodes, v.TargetSystemID, ElementTypeSoftwareSystem,
			fmt.Sprintf("container view %d (%s)", i, v.Title))
	}
	for i, v := range p.Views.ComponentViews {
		issues = appendViewIssue(issues, nodes, v.TargetContainerID, ElementTypeContainer,
			fmt.Sprintf("component view %d (%s)", i, v.Title))
	}

	return issues
}

func appendViewIssue(issues []Issue, nodes *NodeIndex, targetID string, want ElementType, label string) []Issue {
	n, ok := nodes.Get(targetID)
	if !ok {
		return append(issues, Issue{
			Type: IssueDanglingView, Severity: SeverityWarning, NodeID: targetID,
			Message:    fmt.Sprintf("%s targets %s, which has no node", label, targetID),
			Suggestion: "Add the target through the workspace or drop the view",
		})
	}
	if n.ElementType != want {
		return append(issues, Issue{
			Type: IssueViewTargetKind, Severity: SeverityWarning, NodeID: targetID,
			Message: fmt.Sprintf("%s targets a %s, want %s", label, n.ElementType, want),
		})
	}
	return issues
}
