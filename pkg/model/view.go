package model

import "github.com/frainlabs/frain/pkg/graph"

// ViewSpec holds a view's title and description. Neither is validated.
type ViewSpec struct {
	Title       string
	Description string
}

// ContainerView presents the containers of one software system.
type ContainerView struct {
	system      *SoftwareSystem
	title       string
	description string
}

// NewContainerView creates a view over system. The system does not have to be
// registered in any context.
func NewContainerView(system *SoftwareSystem, spec ViewSpec) *ContainerView {
	return &ContainerView{system: system, title: spec.Title, description: spec.Description}
}

func (v *ContainerView) TargetSystem() *SoftwareSystem { return v.system }

// TargetSystemID returns the target's id, or "" if the view has no target.
func (v *ContainerView) TargetSystemID() string {
	if v.system == nil {
		return ""
	}
	return v.system.ID()
}

func (v *ContainerView) Title() string       { return v.title }
func (v *ContainerView) Description() string { return v.description }

// ToSerializable returns the view's wire form.
func (v *ContainerView) ToSerializable() graph.ContainerView {
	return graph.ContainerView{
		Type:           graph.ContainerViewType,
		TargetSystemID: v.TargetSystemID(),
		Title:          v.title,
		Description:    v.description,
	}
}

// ComponentView presents the components of one container.
type ComponentView struct {
	container   *Container
	title       string
	description string
}

// NewComponentView creates a view over container.
func NewComponentView(container *Container, spec ViewSpec) *ComponentView {
	return &ComponentView{container: container, title: spec.Title, description: spec.Description}
}

func (v *ComponentView) TargetContainer() *Container { return v.container }

// TargetContainerID returns the target's id, or "" if the view has no target.
func (v *ComponentView) TargetContainerID() string {
	if v.container == nil {
		return ""
	}
	return v.container.ID()
}

func (v *ComponentView) Title() string       { return v.title }
func (v *ComponentView) Description() string { return v.description }

// ToSerializable returns the view's wire form.
func (v *ComponentView) ToSerializable() graph.ComponentView {
	return graph.ComponentView{
		Type:              graph.ComponentViewType,
		TargetContainerID: v.TargetContainerID(),
		Title:             v.title,
		Description:       v.description,
	}
}
