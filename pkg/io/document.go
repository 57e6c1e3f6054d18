package io

// Document is a declarative model.
type Document struct {
	Title           string             `toml:"title,omitempty" yaml:"title,omitempty" json:"title,omitempty"`
	Description     string             `toml:"description,omitempty" yaml:"description,omitempty" json:"description,omitempty"`
	People          []EntityDoc        `toml:"people,omitempty" yaml:"people,omitempty" json:"people,omitempty"`
	Systems         []SystemDoc        `toml:"systems,omitempty" yaml:"systems,omitempty" json:"systems,omitempty"`
	ExternalSystems []EntityDoc        `toml:"external_systems,omitempty" yaml:"external_systems,omitempty" json:"external_systems,omitempty"`
	Relations       []RelationDoc      `toml:"relations,omitempty" yaml:"relations,omitempty" json:"relations,omitempty"`
	ContainerViews  []ContainerViewDoc `toml:"container_views,omitempty" yaml:"container_views,omitempty" json:"container_views,omitempty"`
	ComponentViews  []ComponentViewDoc `toml:"component_views,omitempty" yaml:"component_views,omitempty" json:"component_views,omitempty"`
}

// EntityDoc describes a person or an external system.
type EntityDoc struct {
	Key         string    `toml:"key" yaml:"key" json:"key"`
	Name        string    `toml:"name" yaml:"name" json:"name"`
	Description string    `toml:"description" yaml:"description" json:"description"`
	Style       *StyleDoc `toml:"style,omitempty" yaml:"style,omitempty" json:"style,omitempty"`
}

// SystemDoc describes a software system and its containers.
type SystemDoc struct {
	Key         string         `toml:"key" yaml:"key" json:"key"`
	Name        string         `toml:"name" yaml:"name" json:"name"`
	Description string         `toml:"description" yaml:"description" json:"description"`
	Style       *StyleDoc      `toml:"style,omitempty" yaml:"style,omitempty" json:"style,omitempty"`
	Containers  []ContainerDoc `toml:"containers,omitempty" yaml:"containers,omitempty" json:"containers,omitempty"`
}

// ContainerDoc describes a container and its components.
type ContainerDoc struct {
	Key         string         `toml:"key" yaml:"key" json:"key"`
	Name        string         `toml:"name" yaml:"name" json:"name"`
	Description string         `toml:"description" yaml:"description" json:"description"`
	Technology  string         `toml:"technology" yaml:"technology" json:"technology"`
	Style       *StyleDoc      `toml:"style,omitempty" yaml:"style,omitempty" json:"style,omitempty"`
	Components  []ComponentDoc `toml:"components,omitempty" yaml:"components,omitempty" json:"components,omitempty"`
}

// ComponentDoc describes a component.
type ComponentDoc struct {
	Key         string    `toml:"key" yaml:"key" json:"key"`
	Name        string    `toml:"name" yaml:"name" json:"name"`
	Description string    `toml:"description" yaml:"description" json:"description"`
	Technology  string    `toml:"technology" yaml:"technology" json:"technology"`
	Style       *StyleDoc `toml:"style,omitempty" yaml:"style,omitempty" json:"style,omitempty"`
}

// StyleDoc overrides parts of an entity's preset style. Empty fields keep the
// preset value.
type StyleDoc struct {
	Shape           string `toml:"shape,omitempty" yaml:"shape,omitempty" json:"shape,omitempty"`
	Color           string `toml:"color,omitempty" yaml:"color,omitempty" json:"color,omitempty"`
	BackgroundColor string `toml:"background_color,omitempty" yaml:"background_color,omitempty" json:"background_color,omitempty"`
}

// RelationDoc declares a relation between two entity keys.
type RelationDoc struct {
	From        string `toml:"from" yaml:"from" json:"from"`
	To          string `toml:"to" yaml:"to" json:"to"`
	Description string `toml:"description,omitempty" yaml:"description,omitempty" json:"description,omitempty"`
	Technology  string `toml:"technology,omitempty" yaml:"technology,omitempty" json:"technology,omitempty"`
}

// ContainerViewDoc declares a container view over a system key.
type ContainerViewDoc struct {
	System      string `toml:"system" yaml:"system" json:"system"`
	Title       string `toml:"title" yaml:"title" json:"title"`
	Description string `toml:"description,omitempty" yaml:"description,omitempty" json:"description,omitempty"`
}

// ComponentViewDoc declares a component view over a container key.
type ComponentViewDoc struct {
	Container   string `toml:"container" yaml:"container" json:"container"`
	Title       string `toml:"title" yaml:"title" json:"title"`
	Description string `toml:"description,omitempty" yaml:"description,omitempty" json:"description,omitempty"`
}

// EntityCount returns the number of entities the document declares.
func (d *Document) EntityCount() int {
	n := len(d.People) + len(d.ExternalSystems)
	for _, s := range d.Systems {
		n++
		for _, c := range s.Containers {
			n += 1 + len(c.Components)
		}
	}
	return n
}
