package graph

import (
	"encoding/json"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// =============================================================================
// Constants
// =============================================================================

// ElementType is the wire discriminant for a node's kind.
type ElementType string

// Element types.
const (
	ElementTypePerson                 ElementType = "person"
	ElementTypeSoftwareSystem         ElementType = "software_system"
	ElementTypeExternalSoftwareSystem ElementType = "external_software_system"
	ElementTypeContainer              ElementType = "container"
	ElementTypeComponent              ElementType = "component"
)

// View type tags.
const (
	ContainerViewType = "container-view"
	ComponentViewType = "component-view"
)

// =============================================================================
// Element - Compiler Input
// =============================================================================

// Styles is the visual style attached to every node.
type Styles struct {
	Shape           string `json:"shape"`
	Color           string `json:"color"`
	BackgroundColor string `json:"backgroundColor"`
}

// RelationRef is one outgoing relation of an [Element].
type RelationRef struct {
	TargetID    string `json:"targetId"`
	Description string `json:"description"`
	Technology  string `json:"technology"`
}

// Element is a flat snapshot of one modeled entity, including its outgoing
// relations in declaration order.
type Element struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Technology  string        `json:"technology"`
	ElementType ElementType   `json:"elementType"`
	Styles      Styles        `json:"styles"`
	ParentID    string        `json:"parentId,omitempty"`
	Relations   []RelationRef `json:"relations"`
}

// =============================================================================
// Node / Edge - Compiler Output
// =============================================================================

// Node is one entry of the compiled node index.
// ParentID is omitted from JSON for top-level elements.
type Node struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Technology  string      `json:"technology"`
	ElementType ElementType `json:"elementType"`
	Styles      Styles      `json:"styles"`
	ParentID    string      `json:"parentId,omitempty"`
}

// HasParent reports whether the node is nested inside another element.
func (n Node) HasParent() bool { return n.ParentID != "" }

// Edge is a directed, described connection between two node ids.
type Edge struct {
	Source      string `json:"source"`
	Target      string `json:"target"`
	Description string `json:"description"`
	Technology  string `json:"technology"`
}

// NodeIndex maps node ids to nodes and remembers insertion order, so JSON
// output lists nodes in first-appearance order.
//
// The zero value is not usable - use [NewNodeIndex].
type NodeIndex struct {
	m *orderedmap.OrderedMap[string, Node]
}

// NewNodeIndex creates an empty index.
func NewNodeIndex() *NodeIndex {
	return &NodeIndex{m: orderedmap.New[string, Node]()}
}

// Set stores n under n.ID. Replacing an existing id keeps its position.
func (x *NodeIndex) Set(n Node) {
	x.m.Set(n.ID, n)
}

// Get returns the node with the given id.
func (x *NodeIndex) Get(id string) (Node, bool) {
	return x.m.Get(id)
}

// Has reports whether id is present.
func (x *NodeIndex) Has(id string) bool {
	_, ok := x.m.Get(id)
	return ok
}

// Len returns the number of nodes.
func (x *NodeIndex) Len() int { return x.m.Len() }

// IDs returns node ids in insertion order.
func (x *NodeIndex) IDs() []string {
	ids := make([]string, 0, x.m.Len())
	for p := x.m.Oldest(); p != nil; p = p.Next() {
		ids = append(ids, p.Key)
	}
	return ids
}

// Nodes returns copies of all nodes in insertion order.
func (x *NodeIndex) Nodes() []Node {
	nodes := make([]Node, 0, x.m.Len())
	for p := x.m.Oldest(); p != nil; p = p.Next() {
		nodes = append(nodes, p.Value)
	}
	return nodes
}

// MarshalJSON writes the index as a JSON object in insertion order.
func (x *NodeIndex) MarshalJSON() ([]byte, error) {
	return x.m.MarshalJSON()
}

// UnmarshalJSON reads a JSON object, keeping the document's key order.
func (x *NodeIndex) UnmarshalJSON(data []byte) error {
	if x.m == nil {
		x.m = orderedmap.New[string, Node]()
	}
	return x.m.UnmarshalJSON(data)
}

var (
	_ json.Marshaler   = (*NodeIndex)(nil)
	_ json.Unmarshaler = (*NodeIndex)(nil)
)

// =============================================================================
// Views
// =============================================================================

// ContextInfo is the diagram-level title and description.
type ContextInfo struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// ContainerView is the serialized form of a container-level view over one
// software system.
type ContainerView struct {
	Type           string `json:"type"`
	TargetSystemID string `json:"targetSystemId"`
	Title          string `json:"title"`
	Description    string `json:"description"`
}

// ComponentView is the serialized form of a component-level view over one
// container.
type ComponentView struct {
	Type              string `json:"type"`
	TargetContainerID string `json:"targetContainerId"`
	Title             string `json:"title"`
	Description       string `json:"description"`
}

// Views groups the system context with every declared view, in declaration
// order.
type Views struct {
	SystemContext  ContextInfo     `json:"systemContext"`
	ContainerViews []ContainerView `json:"containerViews"`
	ComponentViews []ComponentView `json:"componentViews"`
}

// =============================================================================
// Payload
// =============================================================================

// Payload is the document produced by a workspace build.
// Warnings are compiler diagnostics and are not serialized.
type Payload struct {
	WorkspaceID string     `json:"workspaceId"`
	Nodes       *NodeIndex `json:"nodes"`
	Edges       []Edge     `json:"edges"`
	Views       Views      `json:"views"`
	Warnings    []Warning  `json:"-"`
}

// NewPayload returns a payload with empty, non-nil collections so that it
// serializes as {} and [] rather than null.
func NewPayload(workspaceID string) *Payload {
	return &Payload{
		WorkspaceID: workspaceID,
		Nodes:       NewNodeIndex(),
		Edges:       []Edge{},
		Views: Views{
			ContainerViews: []ContainerView{},
			ComponentViews: []ComponentView{},
		},
	}
}

// Node returns the node with the given id.
func (p *Payload) Node(id string) (Node, bool) {
	if p.Nodes == nil {
		return Node{}, false
	}
	return p.Nodes.Get(id)
}
