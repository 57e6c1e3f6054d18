// Package workspace provides the entry point for building architecture
// diagrams: a [Workspace] owns one model registry and its views, and turns
// them into a [graph.Payload].
//
// # Usage
//
//	ws, err := workspace.New(workspace.Config{
//	    WorkspaceID: os.Getenv("FRAIN_WORKSPACE_ID"),
//	    APIKey:      os.Getenv("FRAIN_API_KEY"),
//	    APISecret:   os.Getenv("FRAIN_API_SECRET"),
//	})
//	if err != nil {
//	    return err
//	}
//	ctx := ws.Context()
//	shop, _ := ctx.AddSoftwareSystem(model.ElementSpec{Name: "Shop", Description: "Online shop"})
//	api, _ := ws.AddContainer(shop, model.ContainedSpec{Name: "API", Description: "Orders", Technology: "Go"})
//	ws.CreateContainerView(shop, model.ViewSpec{Title: "Shop", Description: "Containers"})
//	payload := ws.Build()
//
// Build may be called any number of times; each call returns an independent
// payload.
package workspace

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/frainlabs/frain/pkg/graph"
	"github.com/frainlabs/frain/pkg/model"
	"github.com/frainlabs/frain/pkg/observability"
)

// Workspace owns a model registry, its container views and its component
// views. It is not safe for concurrent use.
type Workspace struct {
	cfg            Config
	model          *model.Context
	containerViews []*model.ContainerView
	componentViews []*model.ComponentView
	compiler       *graph.Compiler
	logger         *log.Logger
}

type options struct {
	ids    model.IDGenerator
	logger *log.Logger
}

// Option configures a Workspace.
type Option func(*options)

// WithIDGenerator sets the generator used for entity ids.
func WithIDGenerator(g model.IDGenerator) Option {
	return func(o *options) { o.ids = g }
}

// WithLogger sets the logger used by the workspace and its compiler.
// If nil, log.Default() is used.
func WithLogger(l *log.Logger) Option {
	return func(o *options) { o.logger = l }
}

// New validates cfg and returns an empty workspace. On a configuration error
// no workspace is returned.
func New(cfg Config, opts ...Option) (*Workspace, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = log.Default()
	}

	var ctxOpts []model.Option
	if o.ids != nil {
		ctxOpts = append(ctxOpts, model.WithIDGenerator(o.ids))
	}

	return &Workspace{
		cfg:      cfg,
		model:    model.NewContext(ctxOpts...),
		compiler: graph.NewCompiler(o.logger),
		logger:   o.logger,
	}, nil
}

// ID returns the workspace id.
func (w *Workspace) ID() string { return w.cfg.WorkspaceID }

// Context returns the registry. People and software systems are added
// through it directly.
func (w *Workspace) Context() *model.Context { return w.model }

// AddContainer creates a container inside system and registers it.
func (w *Workspace) AddContainer(system *model.SoftwareSystem, spec model.ContainedSpec) (*model.Container, error) {
	return w.model.AddContainer(system, spec)
}

// AddComponent creates a component inside container and registers it.
func (w *Workspace) AddComponent(container *model.Container, spec model.ContainedSpec) (*model.Component, error) {
	return w.model.AddComponent(container, spec)
}

// CreateContainerView declares a container view over system. The system does
// not have to be registered; see Validate.
func (w *Workspace) CreateContainerView(system *model.SoftwareSystem, spec model.ViewSpec) *model.ContainerView {
	v := model.NewContainerView(system, spec)
	w.containerViews = append(w.containerViews, v)
	return v
}

// CreateComponentView declares a component view over container.
func (w *Workspace) CreateComponentView(container *model.Container, spec model.ViewSpec) *model.ComponentView {
	v := model.NewComponentView(container, spec)
	w.componentViews = append(w.componentViews, v)
	return v
}

// ContainerViews returns the container views in declaration order.
func (w *Workspace) ContainerViews() []*model.ContainerView {
	out := make([]*model.ContainerView, len(w.containerViews))
	copy(out, w.containerViews)
	return out
}

// ComponentViews returns the component views in declaration order.
func (w *Workspace) ComponentViews() []*model.ComponentView {
	out := make([]*model.ComponentView, len(w.componentViews))
	copy(out, w.componentViews)
	return out
}

// Build compiles the registry and serializes every view into a new payload.
// Nothing in the payload is shared with the workspace or with earlier
// payloads. Compiler warnings are attached to the payload, not returned as
// errors.
func (w *Workspace) Build() *graph.Payload {
	start := time.Now()
	out := w.compiler.Compile(w.model.CompileInput())

	p := graph.NewPayload(w.cfg.WorkspaceID)
	p.Nodes = out.Nodes
	p.Edges = out.Edges
	p.Warnings = out.Warnings
	p.Views.SystemContext = out.Context
	for _, v := range w.containerViews {
		p.Views.ContainerViews = append(p.Views.ContainerViews, v.ToSerializable())
	}
	for _, v := range w.componentViews {
		p.Views.ComponentViews = append(p.Views.ComponentViews, v.ToSerializable())
	}

	views := len(p.Views.ContainerViews) + len(p.Views.ComponentViews)
	w.logger.Debug("built workspace payload",
		"workspace", w.cfg.WorkspaceID,
		"nodes", p.Nodes.Len(),
		"edges", len(p.Edges),
		"views", views)
	observability.Build().OnBuild(w.cfg.WorkspaceID, p.Nodes.Len(), len(p.Edges), views, time.Since(start))

	return p
}

// Validate builds a payload and reports references that do not resolve:
// relations to unregistered entities and views over unregistered targets.
// These are legal; Validate exists so callers can catch them on purpose.
func (w *Workspace) Validate() []graph.Issue {
	return graph.Validate(w.Build())
}
