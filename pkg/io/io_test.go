package io

import (
	"bytes"
	"context"
	"io"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/frainlabs/frain/pkg/errors"
	"github.com/frainlabs/frain/pkg/graph"
	"github.com/frainlabs/frain/pkg/model"
	"github.com/frainlabs/frain/pkg/workspace"
)

func newWorkspace(t *testing.T) *workspace.Workspace {
	t.Helper()
	ws, err := workspace.New(workspace.Config{
		WorkspaceID: "550e8400-e29b-41d4-a716-446655440002",
		APIKey:      "550e8400-e29b-41d4-a716-446655440000",
		APISecret:   "550e8400-e29b-41d4-a716-446655440001",
	}, workspace.WithIDGenerator(model.SequentialIDs(t.Name())), workspace.WithLogger(log.New(io.Discard)))
	if err != nil {
		t.Fatalf("workspace.New: %v", err)
	}
	return ws
}

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path    string
		want    Format
		wantErr bool
	}{
		{"model.toml", FormatTOML, false},
		{"model.yaml", FormatYAML, false},
		{"dir/model.YML", FormatYAML, false},
		{"model.json", FormatJSON, false},
		{"model.xml", "", true},
		{"model", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := FormatFromPath(tt.path)
			if (err != nil) != tt.wantErr {
				t.Fatalf("FormatFromPath(%q) error = %v, wantErr %v", tt.path, err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, errors.ErrCodeInvalidFormat) {
				t.Errorf("code = %v, want %v", errors.GetCode(err), errors.ErrCodeInvalidFormat)
			}
			if got != tt.want {
				t.Errorf("FormatFromPath(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}

func TestReadModelFileFormatsAgree(t *testing.T) {
	want, err := ReadModelFile(filepath.Join("testdata", "fake-store.toml"))
	if err != nil {
		t.Fatalf("ReadModelFile(toml): %v", err)
	}
	if want.Title != "Fake Store API" || want.EntityCount() != 7 {
		t.Fatalf("toml doc = %q with %d entities", want.Title, want.EntityCount())
	}

	for _, name := range []string{"fake-store.yaml", "fake-store.json"} {
		got, err := ReadModelFile(filepath.Join("testdata", name))
		if err != nil {
			t.Fatalf("ReadModelFile(%s): %v", name, err)
		}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("%s decodes differently from fake-store.toml:\n got %+v\nwant %+v", name, got, want)
		}
	}
}

func TestReadModelRejectsUnknownFields(t *testing.T) {
	tests := []struct {
		format Format
		input  string
	}{
		{FormatTOML, "title = \"x\"\ncolour = \"red\"\n"},
		{FormatYAML, "title: x\ncolour: red\n"},
		{FormatJSON, `{"title": "x", "colour": "red"}`},
	}

	for _, tt := range tests {
		t.Run(string(tt.format), func(t *testing.T) {
			_, err := ReadModel(strings.NewReader(tt.input), tt.format)
			if !errors.Is(err, errors.ErrCodeInvalidFormat) {
				t.Errorf("ReadModel error = %v, want %v", err, errors.ErrCodeInvalidFormat)
			}
		})
	}
}

func TestReadModelEmptyYAML(t *testing.T) {
	doc, err := ReadModel(strings.NewReader(""), FormatYAML)
	if err != nil {
		t.Fatalf("ReadModel: %v", err)
	}
	if doc.EntityCount() != 0 {
		t.Errorf("EntityCount() = %d, want 0", doc.EntityCount())
	}
}

func TestReadModelFileMissing(t *testing.T) {
	_, err := ReadModelFile(filepath.Join(t.TempDir(), "missing.toml"))
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("error = %v, want %v", err, errors.ErrCodeFileNotFound)
	}
}

func TestApplyFakeStore(t *testing.T) {
	doc, err := ReadModelFile(filepath.Join("testdata", "fake-store.toml"))
	if err != nil {
		t.Fatalf("ReadModelFile: %v", err)
	}
	ws := newWorkspace(t)

	applied, err := Apply(doc, ws)
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}

	wantKeys := []string{"customer", "store", "api", "catalog", "checkout", "db", "stripe"}
	if !reflect.DeepEqual(applied.Keys, wantKeys) {
		t.Errorf("Keys = %v, want %v", applied.Keys, wantKeys)
	}
	if applied.Relations != 4 || applied.Views != 2 {
		t.Errorf("Relations = %d, Views = %d, want 4, 2", applied.Relations, applied.Views)
	}

	p := ws.Build()
	if p.Views.SystemContext.Title != "Fake Store API" {
		t.Errorf("title = %q", p.Views.SystemContext.Title)
	}

	ids := make([]string, len(wantKeys))
	for i, k := range wantKeys {
		e, ok := applied.Entity(k)
		if !ok {
			t.Fatalf("no entity for key %q", k)
		}
		ids[i] = e.ID()
	}
	if got := p.Nodes.IDs(); !reflect.DeepEqual(got, ids) {
		t.Errorf("node order = %v, want %v", got, ids)
	}

	store, _ := applied.Entity("store")
	api, _ := applied.Entity("api")
	db, _ := p.Node(ids[5])
	if db.ParentID != store.ID() {
		t.Errorf("db parent = %q, want %q", db.ParentID, store.ID())
	}
	if db.Styles.Shape != "database" || db.Styles.BackgroundColor != "#0097d1" {
		t.Errorf("db styles = %+v, want database shape on container preset", db.Styles)
	}
	if catalog, _ := p.Node(ids[3]); catalog.ParentID != api.ID() {
		t.Errorf("catalog parent = %q, want %q", catalog.ParentID, api.ID())
	}

	if len(p.Edges) != 4 {
		t.Fatalf("edges = %d, want 4", len(p.Edges))
	}
	// Edges follow element order, not document relation order.
	stripe, _ := applied.Entity("stripe")
	customer, _ := applied.Entity("customer")
	want := []graph.Edge{
		{Source: customer.ID(), Target: store.ID(), Description: "Use"},
		{Source: store.ID(), Target: stripe.ID(), Description: "Use", Technology: "https"},
	}
	for i, w := range want {
		if p.Edges[i] != w {
			t.Errorf("edge[%d] = %+v, want %+v", i, p.Edges[i], w)
		}
	}

	if issues := ws.Validate(); len(issues) != 0 {
		t.Errorf("Validate() = %+v, want none", issues)
	}
}

func TestApplyErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  Document
		code errors.Code
	}{
		{
			name: "missing key",
			doc:  Document{People: []EntityDoc{{Name: "A", Description: "a"}}},
			code: errors.ErrCodeInvalidReference,
		},
		{
			name: "duplicate key",
			doc: Document{
				People:          []EntityDoc{{Key: "x", Name: "A", Description: "a"}},
				ExternalSystems: []EntityDoc{{Key: "x", Name: "B", Description: "b"}},
			},
			code: errors.ErrCodeDuplicateID,
		},
		{
			name: "unknown relation target",
			doc: Document{
				People:    []EntityDoc{{Key: "p", Name: "A", Description: "a"}},
				Relations: []RelationDoc{{From: "p", To: "ghost"}},
			},
			code: errors.ErrCodeInvalidReference,
		},
		{
			name: "container view on person",
			doc: Document{
				People:         []EntityDoc{{Key: "p", Name: "A", Description: "a"}},
				ContainerViews: []ContainerViewDoc{{System: "p", Title: "t"}},
			},
			code: errors.ErrCodeInvalidReference,
		},
		{
			name: "component view on system",
			doc: Document{
				Systems:        []SystemDoc{{Key: "s", Name: "S", Description: "s"}},
				ComponentViews: []ComponentViewDoc{{Container: "s", Title: "t"}},
			},
			code: errors.ErrCodeInvalidReference,
		},
		{
			name: "container without technology",
			doc: Document{
				Systems: []SystemDoc{{Key: "s", Name: "S", Description: "s", Containers: []ContainerDoc{
					{Key: "c", Name: "C", Description: "c"},
				}}},
			},
			code: errors.ErrCodeValidation,
		},
		{
			name: "bad style color",
			doc: Document{
				People: []EntityDoc{{Key: "p", Name: "A", Description: "a", Style: &StyleDoc{Color: "#FFF"}}},
			},
			code: errors.ErrCodeValidation,
		},
		{
			name: "title too long",
			doc:  Document{Title: strings.Repeat("t", 101)},
			code: errors.ErrCodeValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Apply(&tt.doc, newWorkspace(t))
			if !errors.Is(err, tt.code) {
				t.Errorf("Apply error = %v, want code %v", err, tt.code)
			}
		})
	}
}

func TestWriteModelRoundTrip(t *testing.T) {
	doc, err := ReadModelFile(filepath.Join("testdata", "fake-store.toml"))
	if err != nil {
		t.Fatalf("ReadModelFile: %v", err)
	}

	for _, format := range []Format{FormatTOML, FormatYAML, FormatJSON} {
		t.Run(string(format), func(t *testing.T) {
			var buf bytes.Buffer
			if err := WriteModel(doc, &buf, format); err != nil {
				t.Fatalf("WriteModel: %v", err)
			}
			got, err := ReadModel(&buf, format)
			if err != nil {
				t.Fatalf("ReadModel: %v\n%s", err, buf.String())
			}
			if !reflect.DeepEqual(got, doc) {
				t.Errorf("round trip changed document:\n got %+v\nwant %+v", got, doc)
			}
		})
	}
}

func TestToDOT(t *testing.T) {
	doc, err := ReadModelFile(filepath.Join("testdata", "fake-store.yaml"))
	if err != nil {
		t.Fatalf("ReadModelFile: %v", err)
	}
	ws := newWorkspace(t)
	applied, err := Apply(doc, ws)
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	p := ws.Build()
	dot := ToDOT(p)

	store, _ := applied.Entity("store")
	api, _ := applied.Entity("api")
	stripe, _ := applied.Entity("stripe")

	for _, want := range []string{
		"digraph G {",
		`label="Fake Store API";`,
		`subgraph "cluster_` + store.ID() + `" {`,
		`subgraph "cluster_` + api.ID() + `" {`,
		`label="Catalog Handler\n[net/http]"`,
		"shape=cylinder",
		`fillcolor="#0055a4"`,
		`"` + store.ID() + `" -> "` + stripe.ID() + `" [label="Use\n[https]"];`,
	} {
		if !strings.Contains(dot, want) {
			t.Errorf("DOT output missing %q:\n%s", want, dot)
		}
	}

	if err := CheckDOT(context.Background(), dot); err != nil {
		t.Errorf("CheckDOT: %v\n%s", err, dot)
	}
}

func TestToDOTEscaping(t *testing.T) {
	p := graph.NewPayload("ws")
	p.Nodes.Set(graph.Node{ID: "a", Name: `Say "hi"`, Technology: `C:\bin`})
	p.Edges = append(p.Edges, graph.Edge{Source: "a", Target: "ghost"})

	dot := ToDOT(p)
	if !strings.Contains(dot, `label="Say \"hi\"\n[C:\\bin]"`) {
		t.Errorf("label not escaped:\n%s", dot)
	}
	if !strings.Contains(dot, `"a" -> "ghost";`) {
		t.Errorf("dangling edge missing:\n%s", dot)
	}
	if err := CheckDOT(context.Background(), dot); err != nil {
		t.Errorf("CheckDOT: %v", err)
	}
}
