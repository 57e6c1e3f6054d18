package model

import (
	"github.com/frainlabs/frain/pkg/errors"
	"github.com/frainlabs/frain/pkg/graph"
)

// Context is the registry of every entity that appears in a compiled diagram,
// plus the diagram's title and description. Entities are kept in creation
// order and never removed.
type Context struct {
	title       string
	description string
	elements    []*Entity
	ids         map[string]struct{}
	newID       IDGenerator
}

// Option configures a Context.
type Option func(*Context)

// WithIDGenerator replaces the default random UUID generator.
func WithIDGenerator(g IDGenerator) Option {
	return func(c *Context) {
		if g != nil {
			c.newID = g
		}
	}
}

// NewContext creates an empty context with no title or description.
func NewContext(opts ...Option) *Context {
	c := &Context{
		ids:   make(map[string]struct{}),
		newID: NewUUID,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Context) Title() string       { return c.title }
func (c *Context) Description() string { return c.description }

// SetTitle sets the diagram title (1-100 characters).
func (c *Context) SetTitle(title string) error {
	if err := errors.ValidateText("title", title); err != nil {
		return errors.Wrap(errors.ErrCodeValidation, err, "error setting title to context diagram")
	}
	c.title = title
	return nil
}

// SetDescription sets the diagram description (1-100 characters).
func (c *Context) SetDescription(description string) error {
	if err := errors.ValidateText("description", description); err != nil {
		return errors.Wrap(errors.ErrCodeValidation, err, "error setting description to context diagram")
	}
	c.description = description
	return nil
}

// =============================================================================
// Factories
// =============================================================================

// AddPerson creates and registers a person.
func (c *Context) AddPerson(spec ElementSpec) (*Person, error) {
	e, err := c.addTopLevel(KindPerson, TechnologyPerson, spec)
	if err != nil {
		return nil, err
	}
	return &Person{e}, nil
}

// AddSoftwareSystem creates and registers a software system.
func (c *Context) AddSoftwareSystem(spec ElementSpec) (*SoftwareSystem, error) {
	e, err := c.addTopLevel(KindSoftwareSystem, TechnologySoftwareSystem, spec)
	if err != nil {
		return nil, err
	}
	return &SoftwareSystem{e}, nil
}

// AddExternalSoftwareSystem creates and registers an external software system.
func (c *Context) AddExternalSoftwareSystem(spec ElementSpec) (*ExternalSoftwareSystem, error) {
	e, err := c.addTopLevel(KindExternalSoftwareSystem, TechnologyExternalSoftwareSystem, spec)
	if err != nil {
		return nil, err
	}
	return &ExternalSoftwareSystem{e}, nil
}

// AddContainer creates a container owned by system and registers it. On
// return the container's parent id is system's id, it is the last entry of
// system.Containers() and the last element of the context.
//
// The system itself need not be registered in c.
func (c *Context) AddContainer(system *SoftwareSystem, spec ContainedSpec) (*Container, error) {
	if system == nil || system.Entity == nil {
		return nil, errors.New(errors.ErrCodeInvalidReference, "container %q has no owning software system", spec.Name)
	}
	id, err := c.nextID()
	if err != nil {
		return nil, err
	}
	child, err := system.newContainer(id, spec)
	if err != nil {
		return nil, err
	}
	c.register(child.Entity)
	return child, nil
}

// AddComponent creates a component owned by container and registers it.
func (c *Context) AddComponent(container *Container, spec ContainedSpec) (*Component, error) {
	if container == nil || container.Entity == nil {
		return nil, errors.New(errors.ErrCodeInvalidReference, "component %q has no owning container", spec.Name)
	}
	id, err := c.nextID()
	if err != nil {
		return nil, err
	}
	child, err := container.newComponent(id, spec)
	if err != nil {
		return nil, err
	}
	c.register(child.Entity)
	return child, nil
}

func (c *Context) addTopLevel(kind Kind, technology string, spec ElementSpec) (*Entity, error) {
	id, err := c.nextID()
	if err != nil {
		return nil, err
	}
	e, err := newEntity(id, kind, spec.Name, spec.Description, technology, "", spec.Style)
	if err != nil {
		return nil, err
	}
	c.register(e)
	return e, nil
}

func (c *Context) nextID() (string, error) {
	id := c.newID()
	if id == "" {
		return "", errors.New(errors.ErrCodeInternal, "id generator returned an empty id")
	}
	if _, dup := c.ids[id]; dup {
		return "", errors.New(errors.ErrCodeDuplicateID, "id generator returned %s twice", id)
	}
	return id, nil
}

func (c *Context) register(e *Entity) {
	c.ids[e.id] = struct{}{}
	c.elements = append(c.elements, e)
}

// =============================================================================
// Read access
// =============================================================================

// Len returns the number of registered entities.
func (c *Context) Len() int { return len(c.elements) }

// Elements returns the registered entities in creation order. The slice is a
// copy; the entities are shared.
func (c *Context) Elements() []*Entity {
	out := make([]*Entity, len(c.elements))
	copy(out, c.elements)
	return out
}

// Contains reports whether an entity with the given id is registered.
func (c *Context) Contains(id string) bool {
	_, ok := c.ids[id]
	return ok
}

// Snapshot copies every registered entity into compiler input, in creation
// order. Nothing in the result aliases the model.
func (c *Context) Snapshot() []graph.Element {
	out := make([]graph.Element, len(c.elements))
	for i, e := range c.elements {
		out[i] = e.snapshot()
	}
	return out
}

// CompileInput returns the context's metadata and snapshot as compiler input.
func (c *Context) CompileInput() graph.Input {
	return graph.Input{
		Title:       c.title,
		Description: c.description,
		Elements:    c.Snapshot(),
	}
}
