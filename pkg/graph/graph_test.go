package graph

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"
)

func samplePayload() *Payload {
	p := NewPayload("0f8fad5b-d9cb-469f-a165-70867728950e")
	p.Nodes.Set(Node{ID: "zeta", Name: "Zeta", ElementType: ElementTypePerson})
	p.Nodes.Set(Node{ID: "alpha", Name: "Alpha", ElementType: ElementTypeSoftwareSystem})
	p.Nodes.Set(Node{ID: "mid", Name: "Mid", ElementType: ElementTypeContainer, ParentID: "alpha"})
	p.Edges = append(p.Edges, Edge{Source: "zeta", Target: "mid", Description: "Uses", Technology: "HTTPS"})
	p.Views.SystemContext = ContextInfo{Title: "Shop", Description: "Online shop"}
	p.Views.ContainerViews = append(p.Views.ContainerViews,
		ContainerView{Type: ContainerViewType, TargetSystemID: "alpha", Title: "Containers", Description: "All"})
	p.Warnings = []Warning{{Type: WarningMissingID, Message: "dropped"}}
	return p
}

func TestMarshalPayloadKeyOrder(t *testing.T) {
	data, err := MarshalPayload(samplePayload())
	if err != nil {
		t.Fatalf("MarshalPayload: %v", err)
	}
	s := string(data)

	zeta := strings.Index(s, `"zeta": {`)
	alpha := strings.Index(s, `"alpha": {`)
	mid := strings.Index(s, `"mid": {`)
	if zeta < 0 || alpha < 0 || mid < 0 {
		t.Fatalf("node keys missing from output:\n%s", s)
	}
	if !(zeta < alpha && alpha < mid) {
		t.Errorf("node keys out of insertion order:\n%s", s)
	}

	for _, key := range []string{"workspaceId", "nodes", "edges", "views", "systemContext", "containerViews", "componentViews", "targetSystemId"} {
		if !strings.Contains(s, `"`+key+`"`) {
			t.Errorf("output missing key %q", key)
		}
	}
	if strings.Count(s, `"parentId"`) != 1 {
		t.Errorf("parentId should appear only for nested nodes:\n%s", s)
	}
	if strings.Contains(s, "dropped") || strings.Contains(strings.ToLower(s), `"warnings"`) {
		t.Error("warnings must not be serialized")
	}
}

func TestMarshalPayloadEmptyCollections(t *testing.T) {
	data, err := MarshalPayload(NewPayload("ws"))
	if err != nil {
		t.Fatalf("MarshalPayload: %v", err)
	}
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got := string(raw["nodes"]); got != "{}" {
		t.Errorf("nodes = %s, want {}", got)
	}
	if got := string(raw["edges"]); got != "[]" {
		t.Errorf("edges = %s, want []", got)
	}
}

func TestReadPayloadPreservesOrder(t *testing.T) {
	var buf bytes.Buffer
	if err := WritePayload(samplePayload(), &buf); err != nil {
		t.Fatalf("WritePayload: %v", err)
	}

	p, err := ReadPayload(&buf)
	if err != nil {
		t.Fatalf("ReadPayload: %v", err)
	}
	if got, want := p.Nodes.IDs(), []string{"zeta", "alpha", "mid"}; !equalStrings(got, want) {
		t.Errorf("IDs() = %v, want %v", got, want)
	}
	n, ok := p.Node("mid")
	if !ok || n.ParentID != "alpha" {
		t.Errorf("Node(mid) = %+v, %v", n, ok)
	}
	if len(p.Edges) != 1 || p.Edges[0].Technology != "HTTPS" {
		t.Errorf("Edges = %+v", p.Edges)
	}
	if p.Views.ComponentViews == nil {
		t.Error("ComponentViews should be non-nil after read")
	}
	if p.Warnings != nil {
		t.Errorf("Warnings = %v, want nil", p.Warnings)
	}
}

func TestPayloadFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "payload.json")
	if err := WritePayloadFile(samplePayload(), path); err != nil {
		t.Fatalf("WritePayloadFile: %v", err)
	}
	p, err := ReadPayloadFile(path)
	if err != nil {
		t.Fatalf("ReadPayloadFile: %v", err)
	}
	if p.WorkspaceID != "0f8fad5b-d9cb-469f-a165-70867728950e" {
		t.Errorf("WorkspaceID = %q", p.WorkspaceID)
	}
	if p.Views.SystemContext.Title != "Shop" {
		t.Errorf("SystemContext = %+v", p.Views.SystemContext)
	}
}

func TestReadPayloadErrors(t *testing.T) {
	if _, err := ReadPayload(strings.NewReader("{not json")); err == nil {
		t.Error("expected decode error")
	}
	if _, err := ReadPayloadFile(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("expected open error")
	}
}
