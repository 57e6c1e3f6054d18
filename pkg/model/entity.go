package model

import (
	"github.com/frainlabs/frain/pkg/errors"
	"github.com/frainlabs/frain/pkg/graph"
)

// Element is anything a relation can point at.
type Element interface {
	ID() string
}

// =============================================================================
// Specs
// =============================================================================

// ElementSpec describes a top-level entity: a person or a software system.
// Style overrides the kind's preset when non-nil.
type ElementSpec struct {
	Name        string
	Description string
	Style       *Style
}

// ContainedSpec describes a container or component. Technology is required.
type ContainedSpec struct {
	Name        string
	Description string
	Technology  string
	Style       *Style
}

// RelationSpec describes a relation. Both fields may be empty.
type RelationSpec struct {
	Description string
	Technology  string
}

// =============================================================================
// Relation
// =============================================================================

// Relation is a directed edge owned by its source entity.
type Relation struct {
	targetID    string
	description string
	technology  string
}

// TargetID returns the id of the entity the relation points at.
func (r Relation) TargetID() string { return r.targetID }

func (r Relation) Description() string { return r.description }

func (r Relation) Technology() string { return r.technology }

// =============================================================================
// Entity
// =============================================================================

// Entity is one node of the architecture model. All fields are fixed at
// creation except the relation and child lists, which only grow.
type Entity struct {
	id          string
	name        string
	description string
	technology  string
	kind        Kind
	style       Style
	parentID    string
	relations   []Relation
	children    []*Entity
}

func newEntity(id string, kind Kind, name, description, technology, parentID string, style *Style) (*Entity, error) {
	if err := errors.ValidateText("name", name); err != nil {
		return nil, err
	}
	if err := errors.ValidateText("description", description); err != nil {
		return nil, err
	}
	if kind == KindContainer || kind == KindComponent {
		if err := errors.ValidateText("technology", technology); err != nil {
			return nil, err
		}
	}
	st := PresetStyle(kind)
	if style != nil {
		if err := style.Validate(); err != nil {
			return nil, err
		}
		st = *style
	}
	return &Entity{
		id:          id,
		name:        name,
		description: description,
		technology:  technology,
		kind:        kind,
		style:       st,
		parentID:    parentID,
	}, nil
}

// ID returns the entity's id, or "" for a nil entity.
func (e *Entity) ID() string {
	if e == nil {
		return ""
	}
	return e.id
}

func (e *Entity) Name() string        { return e.name }
func (e *Entity) Description() string { return e.description }
func (e *Entity) Technology() string  { return e.technology }
func (e *Entity) Kind() Kind          { return e.kind }
func (e *Entity) Style() Style        { return e.style }

// ParentID returns the owner's id for containers and components, and ""
// otherwise.
func (e *Entity) ParentID() string { return e.parentID }

// Use declares a relation from e to target. The target is not checked; a nil
// target records an empty target id, which the compiler drops with a warning.
func (e *Entity) Use(target Element, spec RelationSpec) {
	var targetID string
	if target != nil {
		targetID = target.ID()
	}
	e.relations = append(e.relations, Relation{
		targetID:    targetID,
		description: spec.Description,
		technology:  spec.Technology,
	})
}

// Relations returns the outgoing relations in declaration order.
func (e *Entity) Relations() []Relation {
	out := make([]Relation, len(e.relations))
	copy(out, e.relations)
	return out
}

// snapshot copies e into the compiler's input form.
func (e *Entity) snapshot() graph.Element {
	rels := make([]graph.RelationRef, len(e.relations))
	for i, r := range e.relations {
		rels[i] = graph.RelationRef{
			TargetID:    r.targetID,
			Description: r.description,
			Technology:  r.technology,
		}
	}
	return graph.Element{
		ID:          e.id,
		Name:        e.name,
		Description: e.description,
		Technology:  e.technology,
		ElementType: e.kind.ElementType(),
		Styles:      e.style.toGraph(),
		ParentID:    e.parentID,
		Relations:   rels,
	}
}

// =============================================================================
// Typed handles
// =============================================================================

// Person is a human user of a system.
type Person struct{ *Entity }

// SoftwareSystem is a system in scope; it owns containers.
type SoftwareSystem struct{ *Entity }

// ExternalSoftwareSystem is a system outside the modeled scope.
type ExternalSoftwareSystem struct{ *Entity }

// Container is a deployable unit inside a software system; it owns
// components.
type Container struct{ *Entity }

// Component is a building block inside a container.
type Component struct{ *Entity }

// ID returns the handle's id. A nil handle has id "", so passing one to
// Use records an empty target.
func (p *Person) ID() string {
	if p == nil {
		return ""
	}
	return p.Entity.ID()
}

func (s *SoftwareSystem) ID() string {
	if s == nil {
		return ""
	}
	return s.Entity.ID()
}

func (x *ExternalSoftwareSystem) ID() string {
	if x == nil {
		return ""
	}
	return x.Entity.ID()
}

func (c *Container) ID() string {
	if c == nil {
		return ""
	}
	return c.Entity.ID()
}

func (c *Component) ID() string {
	if c == nil {
		return ""
	}
	return c.Entity.ID()
}

// Containers returns the system's containers in creation order.
func (s *SoftwareSystem) Containers() []*Container {
	out := make([]*Container, len(s.children))
	for i, c := range s.children {
		out[i] = &Container{c}
	}
	return out
}

// Components returns the container's components in creation order.
func (c *Container) Components() []*Component {
	out := make([]*Component, len(c.children))
	for i, child := range c.children {
		out[i] = &Component{child}
	}
	return out
}

// newContainer builds a container owned by s and links it into s's child
// list. It does not register the container anywhere else; see
// Context.AddContainer.
func (s *SoftwareSystem) newContainer(id string, spec ContainedSpec) (*Container, error) {
	e, err := newEntity(id, KindContainer, spec.Name, spec.Description, spec.Technology, s.id, spec.Style)
	if err != nil {
		return nil, err
	}
	s.children = append(s.children, e)
	return &Container{e}, nil
}

// newComponent builds a component owned by c and links it into c's child
// list.
func (c *Container) newComponent(id string, spec ContainedSpec) (*Component, error) {
	e, err := newEntity(id, KindComponent, spec.Name, spec.Description, spec.Technology, c.id, spec.Style)
	if err != nil {
		return nil, err
	}
	c.children = append(c.children, e)
	return &Component{e}, nil
}
