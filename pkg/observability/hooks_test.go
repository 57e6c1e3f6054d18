package observability

import (
	"errors"
	"testing"
	"time"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	c := NoopCompileHooks{}
	c.OnCompileStart("Fake Store", 6)
	c.OnCompileWarning("missing_target", "api", "relation 0 of api has no target")
	c.OnCompileComplete(6, 5, 1, time.Millisecond)

	b := NoopBuildHooks{}
	b.OnBuild("4b3c5d2e-1f60-4a7b-8c9d-0e1f2a3b4c5d", 6, 5, 2, time.Millisecond)

	d := NoopDocumentHooks{}
	d.OnDocumentLoad("toml", "model.toml", time.Millisecond, nil)
	d.OnDocumentApply(6, 5, 2, errors.New("boom"))
}

func TestGlobalHooksRegistry(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	if _, ok := Compile().(NoopCompileHooks); !ok {
		t.Error("Compile() should return NoopCompileHooks by default")
	}
	if _, ok := Build().(NoopBuildHooks); !ok {
		t.Error("Build() should return NoopBuildHooks by default")
	}
	if _, ok := Document().(NoopDocumentHooks); !ok {
		t.Error("Document() should return NoopDocumentHooks by default")
	}

	customCompile := &testCompileHooks{}
	SetCompileHooks(customCompile)
	if Compile() != customCompile {
		t.Error("SetCompileHooks should set custom hooks")
	}

	customBuild := &testBuildHooks{}
	SetBuildHooks(customBuild)
	if Build() != customBuild {
		t.Error("SetBuildHooks should set custom hooks")
	}

	customDocument := &testDocumentHooks{}
	SetDocumentHooks(customDocument)
	if Document() != customDocument {
		t.Error("SetDocumentHooks should set custom hooks")
	}

	// nil is ignored
	SetCompileHooks(nil)
	if Compile() != customCompile {
		t.Error("SetCompileHooks(nil) should keep existing hooks")
	}

	Reset()
	if _, ok := Compile().(NoopCompileHooks); !ok {
		t.Error("Reset() should restore NoopCompileHooks")
	}
	if _, ok := Build().(NoopBuildHooks); !ok {
		t.Error("Reset() should restore NoopBuildHooks")
	}
	if _, ok := Document().(NoopDocumentHooks); !ok {
		t.Error("Reset() should restore NoopDocumentHooks")
	}
}

type testCompileHooks struct{ NoopCompileHooks }
type testBuildHooks struct{ NoopBuildHooks }
type testDocumentHooks struct{ NoopDocumentHooks }
