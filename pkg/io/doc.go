// Package io reads declarative architecture models and writes compiled
// payloads in formats external tools understand.
//
// # Model Documents
//
// A model document lists the entities of one diagram by key, the relations
// between those keys, and the views over them. The same structure can be
// written as TOML, YAML or JSON:
//
//	title = "Fake Store API"
//	description = "A fake store API for testing purposes"
//
//	[[people]]
//	key = "customer"
//	name = "Customers"
//	description = "A customer"
//
//	[[systems]]
//	key = "store"
//	name = "Fake Store"
//	description = "A fake store for testing purposes"
//
//	  [[systems.containers]]
//	  key = "api"
//	  name = "API"
//	  description = "REST API"
//	  technology = "Go"
//
//	[[relations]]
//	from = "customer"
//	to = "store"
//	description = "Use"
//
//	[[container_views]]
//	system = "store"
//	title = "Fake Store containers"
//
// Keys exist only in the document. Entity ids are assigned by the workspace
// the document is applied to.
//
// # Import
//
// Use [ReadModelFile] to load a document by file extension, or [ReadModel] to
// decode one from any io.Reader. Unknown fields are rejected. [Apply] then
// creates the document's entities, relations and views on a workspace:
//
//	doc, err := io.ReadModelFile("store.toml")
//	if err != nil {
//	    return err
//	}
//	if _, err := io.Apply(doc, ws); err != nil {
//	    return err
//	}
//	payload := ws.Build()
//
// # Export
//
// Payload JSON is written by the graph package. This package adds DOT output
// for Graphviz-based tooling: [ToDOT] produces a digraph with one cluster per
// parent element, and [CheckDOT] parses DOT text to confirm it is well formed.
package io
