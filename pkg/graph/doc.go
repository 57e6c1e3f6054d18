// Package graph provides the compiled payload format for architecture models
// and the compiler that produces it.
//
// This package defines the canonical wire format handed to rendering and
// visualization tools. It sits at the serialization boundary between the
// in-memory model and external consumers:
//
//   - pkg/model: entities, relations, views (in-memory, append-only)
//   - [Element]: a flat snapshot of one entity, the compiler's input
//   - [Payload]: node index, edge list and views (this package)
//
// # Core Types
//
//   - [Element], [RelationRef]: compiler input
//   - [Node], [NodeIndex], [Edge]: compiler output
//   - [ContainerView], [ComponentView], [Views]: serialized view descriptors
//   - [Payload]: the full document emitted by a workspace build
//
// # Compilation
//
// [Compile] is a pure structural transform. Every element with an id becomes
// one node; every relation with a target becomes one edge, in declaration
// order. Elements without an id and relations without a target are dropped
// and reported as [Warning] records rather than errors. Edges that point at
// ids missing from the node index pass through unchanged:
//
//	out := graph.Compile(graph.Input{Title: "Shop", Elements: elems})
//	for _, w := range out.Warnings {
//	    fmt.Println(w.Message)
//	}
//
// # Validation
//
// Consistency checks live in [Validate], a separate pass over a finished
// payload that reports dangling edges, parents and view targets as [Issue]
// records. Compilation never calls it.
//
// # Payload Serialization
//
//	{
//	  "workspaceId": "...",
//	  "nodes": {"<id>": {"id": "<id>", "name": "API", "elementType": "container", ...}},
//	  "edges": [{"source": "<id>", "target": "<id>", "description": "Uses", "technology": "gRPC"}],
//	  "views": {"systemContext": {...}, "containerViews": [...], "componentViews": [...]}
//	}
//
// Node keys are written in first-appearance order so repeated builds diff
// cleanly.
//
// # Concurrency
//
// Compile is safe for concurrent use. Payload values are not safe for
// concurrent mutation.
package graph
