package model

import (
	"fmt"

	"github.com/frainlabs/frain/pkg/errors"
	"github.com/frainlabs/frain/pkg/graph"
)

// Kind discriminates the five entity variants.
type Kind string

// Entity kinds.
const (
	KindPerson                 Kind = "person"
	KindSoftwareSystem         Kind = "software_system"
	KindExternalSoftwareSystem Kind = "external_software_system"
	KindContainer              Kind = "container"
	KindComponent              Kind = "component"
)

// ElementType returns the wire discriminant for k.
func (k Kind) ElementType() graph.ElementType { return graph.ElementType(k) }

// Technology labels used for kinds that have no free-text technology.
const (
	TechnologyPerson                 = "Person"
	TechnologySoftwareSystem         = "Software System"
	TechnologyExternalSoftwareSystem = "External Software System"
)

// Shape is the outline a renderer should draw for a node.
type Shape string

// Supported shapes.
const (
	ShapeRectangle   Shape = "rectangle"
	ShapeRoundedBox  Shape = "rounded-box"
	ShapeWebBrowser  Shape = "web-browser"
	ShapeMobilePhone Shape = "mobile-phone"
	ShapeDatabase    Shape = "database"
	ShapePerson      Shape = "person"
)

// Valid reports whether s is one of the supported shapes.
func (s Shape) Valid() bool {
	switch s {
	case ShapeRectangle, ShapeRoundedBox, ShapeWebBrowser, ShapeMobilePhone, ShapeDatabase, ShapePerson:
		return true
	}
	return false
}

// Style is the visual style of an entity. Colors are lowercase six-digit hex.
type Style struct {
	Shape           Shape
	Color           string
	BackgroundColor string
}

var presets = map[Kind]Style{
	KindPerson:                 {Shape: ShapePerson, Color: "#ffffff", BackgroundColor: "#003668"},
	KindSoftwareSystem:         {Shape: ShapeRectangle, Color: "#ffffff", BackgroundColor: "#0055a4"},
	KindExternalSoftwareSystem: {Shape: ShapeRectangle, Color: "#ffffff", BackgroundColor: "#81788a"},
	KindContainer:              {Shape: ShapeRoundedBox, Color: "#ffffff", BackgroundColor: "#0097d1"},
	KindComponent:              {Shape: ShapeRoundedBox, Color: "#ffffff", BackgroundColor: "#50b5ed"},
}

// PresetStyle returns the default style for kind.
// Unknown kinds get a plain white-on-black rectangle.
func PresetStyle(kind Kind) Style {
	if s, ok := presets[kind]; ok {
		return s
	}
	return Style{Shape: ShapeRectangle, Color: "#ffffff", BackgroundColor: "#000000"}
}

// Validate checks the shape and both colors.
func (s Style) Validate() error {
	if !s.Shape.Valid() {
		e := errors.New(errors.ErrCodeValidation, "shape %q is not supported", s.Shape)
		e.Field = "shape"
		return e
	}
	if err := errors.ValidateHexColor("color", s.Color); err != nil {
		return err
	}
	return errors.ValidateHexColor("backgroundColor", s.BackgroundColor)
}

func (s Style) String() string {
	return fmt.Sprintf("%s %s on %s", s.Shape, s.Color, s.BackgroundColor)
}

func (s Style) toGraph() graph.Styles {
	return graph.Styles{
		Shape:           string(s.Shape),
		Color:           s.Color,
		BackgroundColor: s.BackgroundColor,
	}
}
