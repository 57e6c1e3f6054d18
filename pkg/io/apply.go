package io

import (
	"github.com/frainlabs/frain/pkg/errors"
	"github.com/frainlabs/frain/pkg/model"
	"github.com/frainlabs/frain/pkg/observability"
	"github.com/frainlabs/frain/pkg/workspace"
)

// Applied maps document keys to the entities created for them.
type Applied struct {
	Keys      []string // in creation order
	Entities  map[string]*model.Entity
	Relations int
	Views     int
}

// Entity returns the entity created for key.
func (a *Applied) Entity(key string) (*model.Entity, bool) {
	e, ok := a.Entities[key]
	return e, ok
}

// Apply creates doc's entities, relations and views on ws. Entities are
// created in document order: people, systems with their containers and
// components depth-first, then external systems. Relations and views follow.
//
// Apply stops at the first error; entities created before it stay in ws.
func Apply(doc *Document, ws *workspace.Workspace) (applied *Applied, err error) {
	a := &applier{
		ws:         ws,
		ctx:        ws.Context(),
		systems:    make(map[string]*model.SoftwareSystem),
		containers: make(map[string]*model.Container),
		out:        &Applied{Entities: make(map[string]*model.Entity)},
	}
	defer func() {
		observability.Document().OnDocumentApply(len(a.out.Keys), a.out.Relations, a.out.Views, err)
	}()

	if err := a.metadata(doc); err != nil {
		return nil, err
	}
	if err := a.entities(doc); err != nil {
		return nil, err
	}
	if err := a.relations(doc.Relations); err != nil {
		return nil, err
	}
	if err := a.views(doc); err != nil {
		return nil, err
	}
	return a.out, nil
}

type applier struct {
	ws         *workspace.Workspace
	ctx        *model.Context
	systems    map[string]*model.SoftwareSystem
	containers map[string]*model.Container
	out        *Applied
}

func (a *applier) metadata(doc *Document) error {
	if doc.Title != "" {
		if err := a.ctx.SetTitle(doc.Title); err != nil {
			return err
		}
	}
	if doc.Description != "" {
		if err := a.ctx.SetDescription(doc.Description); err != nil {
			return err
		}
	}
	return nil
}

func (a *applier) entities(doc *Document) error {
	for _, p := range doc.People {
		if err := a.claim(p.Key, "person"); err != nil {
			return err
		}
		st, err := styleFor(model.KindPerson, p.Style)
		if err != nil {
			return wrapKey(err, "person", p.Key)
		}
		person, err := a.ctx.AddPerson(model.ElementSpec{Name: p.Name, Description: p.Description, Style: st})
		if err != nil {
			return wrapKey(err, "person", p.Key)
		}
		a.record(p.Key, person.Entity)
	}

	for _, s := range doc.Systems {
		if err := a.system(s); err != nil {
			return err
		}
	}

	for _, x := range doc.ExternalSystems {
		if err := a.claim(x.Key, "external system"); err != nil {
			return err
		}
		st, err := styleFor(model.KindExternalSoftwareSystem, x.Style)
		if err != nil {
			return wrapKey(err, "external system", x.Key)
		}
		ext, err := a.ctx.AddExternalSoftwareSystem(model.ElementSpec{Name: x.Name, Description: x.Description, Style: st})
		if err != nil {
			return wrapKey(err, "external system", x.Key)
		}
		a.record(x.Key, ext.Entity)
	}
	return nil
}

func (a *applier) system(s SystemDoc) error {
	if err := a.claim(s.Key, "system"); err != nil {
		return err
	}
	st, err := styleFor(model.KindSoftwareSystem, s.Style)
	if err != nil {
		return wrapKey(err, "system", s.Key)
	}
	sys, err := a.ctx.AddSoftwareSystem(model.ElementSpec{Name: s.Name, Description: s.Description, Style: st})
	if err != nil {
		return wrapKey(err, "system", s.Key)
	}
	a.record(s.Key, sys.Entity)
	a.systems[s.Key] = sys

	for _, c := range s.Containers {
		if err := a.claim(c.Key, "container"); err != nil {
			return err
		}
		st, err := styleFor(model.KindContainer, c.Style)
		if err != nil {
			return wrapKey(err, "container", c.Key)
		}
		ct, err := a.ws.AddContainer(sys, model.ContainedSpec{
			Name: c.Name, Description: c.Description, Technology: c.Technology, Style: st,
		})
		if err != nil {
			return wrapKey(err, "container", c.Key)
		}
		a.record(c.Key, ct.Entity)
		a.containers[c.Key] = ct

		for _, k := range c.Components {
			if err := a.claim(k.Key, "component"); err != nil {
				return err
			}
			st, err := styleFor(model.KindComponent, k.Style)
			if err != nil {
				return wrapKey(err, "component", k.Key)
			}
			comp, err := a.ws.AddComponent(ct, model.ContainedSpec{
				Name: k.Name, Description: k.Description, Technology: k.Technology, Style: st,
			})
			if err != nil {
				return wrapKey(err, "component", k.Key)
			}
			a.record(k.Key, comp.Entity)
		}
	}
	return nil
}

func (a *applier) relations(rels []RelationDoc) error {
	for i, r := range rels {
		from, ok := a.out.Entities[r.From]
		if !ok {
			return errors.New(errors.ErrCodeInvalidReference, "relation %d: unknown source %q", i, r.From)
		}
		to, ok := a.out.Entities[r.To]
		if !ok {
			return errors.New(errors.ErrCodeInvalidReference, "relation %d: unknown target %q", i, r.To)
		}
		from.Use(to, model.RelationSpec{Description: r.Description, Technology: r.Technology})
		a.out.Relations++
	}
	return nil
}

func (a *applier) views(doc *Document) error {
	for i, v := range doc.ContainerViews {
		sys, ok := a.systems[v.System]
		if !ok {
			return errors.New(errors.ErrCodeInvalidReference, "container view %d: %q is not a software system", i, v.System)
		}
		a.ws.CreateContainerView(sys, model.ViewSpec{Title: v.Title, Description: v.Description})
		a.out.Views++
	}
	for i, v := range doc.ComponentViews {
		ct, ok := a.containers[v.Container]
		if !ok {
			return errors.New(errors.ErrCodeInvalidReference, "component view %d: %q is not a container", i, v.Container)
		}
		a.ws.CreateComponentView(ct, model.ViewSpec{Title: v.Title, Description: v.Description})
		a.out.Views++
	}
	return nil
}

func (a *applier) claim(key, what string) error {
	if key == "" {
		return errors.New(errors.ErrCodeInvalidReference, "%s without key", what)
	}
	if _, dup := a.out.Entities[key]; dup {
		return errors.New(errors.ErrCodeDuplicateID, "duplicate key %q", key)
	}
	return nil
}

func (a *applier) record(key string, e *model.Entity) {
	a.out.Keys = append(a.out.Keys, key)
	a.out.Entities[key] = e
}

// styleFor merges an override onto kind's preset. A nil override keeps the
// preset.
func styleFor(kind model.Kind, sd *StyleDoc) (*model.Style, error) {
	if sd == nil {
		return nil, nil
	}
	st := model.PresetStyle(kind)
	if sd.Shape != "" {
		st.Shape = model.Shape(sd.Shape)
	}
	if sd.Color != "" {
		st.Color = sd.Color
	}
	if sd.BackgroundColor != "" {
		st.BackgroundColor = sd.BackgroundColor
	}
	if err := st.Validate(); err != nil {
		return nil, err
	}
	return &st, nil
}

func wrapKey(err error, what, key string) error {
	return errors.Wrap(errors.GetCode(err), err, "%s %q", what, key)
}
