// Package observability provides hooks for metrics, tracing, and logging.
//
// Library packages emit events through the hooks registered here instead of
// depending on an observability backend. The defaults are no-ops; a binary
// registers its own implementations at startup.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetCompileHooks(&myCompileHooks{})
//	    observability.SetBuildHooks(&myBuildHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Compile().OnCompileStart(title, len(elements))
//	// ... compile ...
//	observability.Compile().OnCompileComplete(nodes, edges, warnings, duration)
package observability

import (
	"sync"
	"time"
)

// =============================================================================
// Compile Hooks
// =============================================================================

// CompileHooks receives events from the graph compiler.
type CompileHooks interface {
	OnCompileStart(title string, elementCount int)
	// OnCompileWarning is called once per skipped element or relation.
	OnCompileWarning(kind, sourceID, message string)
	OnCompileComplete(nodeCount, edgeCount, warningCount int, duration time.Duration)
}

// =============================================================================
// Build Hooks
// =============================================================================

// BuildHooks receives events from workspace payload builds.
type BuildHooks interface {
	OnBuild(workspaceID string, nodeCount, edgeCount, viewCount int, duration time.Duration)
}

// =============================================================================
// Document Hooks
// =============================================================================

// DocumentHooks receives events from model document loading.
type DocumentHooks interface {
	OnDocumentLoad(format, path string, duration time.Duration, err error)
	OnDocumentApply(elementCount, relationCount, viewCount int, err error)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopCompileHooks is a no-op implementation of CompileHooks.
type NoopCompileHooks struct{}

func (NoopCompileHooks) OnCompileStart(string, int)                     {}
func (NoopCompileHooks) OnCompileWarning(string, string, string)        {}
func (NoopCompileHooks) OnCompileComplete(int, int, int, time.Duration) {}

// NoopBuildHooks is a no-op implementation of BuildHooks.
type NoopBuildHooks struct{}

func (NoopBuildHooks) OnBuild(string, int, int, int, time.Duration) {}

// NoopDocumentHooks is a no-op implementation of DocumentHooks.
type NoopDocumentHooks struct{}

func (NoopDocumentHooks) OnDocumentLoad(string, string, time.Duration, error) {}
func (NoopDocumentHooks) OnDocumentApply(int, int, int, error)                {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	compileHooks  CompileHooks  = NoopCompileHooks{}
	buildHooks    BuildHooks    = NoopBuildHooks{}
	documentHooks DocumentHooks = NoopDocumentHooks{}
	hooksMu       sync.RWMutex
)

// SetCompileHooks registers custom compile hooks.
// This should be called once at application startup before any compilation.
func SetCompileHooks(h CompileHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		compileHooks = h
	}
}

// SetBuildHooks registers custom build hooks.
func SetBuildHooks(h BuildHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		buildHooks = h
	}
}

// SetDocumentHooks registers custom document hooks.
func SetDocumentHooks(h DocumentHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		documentHooks = h
	}
}

// Compile returns the registered compile hooks.
func Compile() CompileHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return compileHooks
}

// Build returns the registered build hooks.
func Build() BuildHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return buildHooks
}

// Document returns the registered document hooks.
func Document() DocumentHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return documentHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	compileHooks = NoopCompileHooks{}
	buildHooks = NoopBuildHooks{}
	documentHooks = NoopDocumentHooks{}
}
