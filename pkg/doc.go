// Package pkg provides the core libraries for Frain architecture models.
//
// # Overview
//
// Frain describes software architecture with the C4 model: people, software
// systems, containers and components, linked by relations and grouped into
// views. The pkg directory is organized into these areas:
//
//  1. [model] - Entities, styles, relations and the registry that owns them
//  2. [workspace] - Credentials, views and the build entry point
//  3. [graph] - The compiler and the serialized payload
//  4. [io] - Declarative model documents and DOT export
//  5. [errors], [observability], [buildinfo] - Shared infrastructure
//
// # Architecture
//
// The typical data flow through Frain:
//
//	Model document (TOML / YAML / JSON)   or   Go code
//	         ↓                                    ↓
//	    [io] package (read + apply)  →  [workspace] package
//	                                              ↓
//	                                   [model] package (registry)
//	                                              ↓
//	                                   [graph] package (compile)
//	                                              ↓
//	                                   JSON payload / DOT graph
//
// # Quick Start
//
// Build a payload from code:
//
//	ws, err := workspace.New(cfg)
//	if err != nil {
//	    return err
//	}
//	ctx := ws.Context()
//	user, _ := ctx.AddPerson(model.ElementSpec{Name: "User", Description: "Shops online"})
//	shop, _ := ctx.AddSoftwareSystem(model.ElementSpec{Name: "Shop", Description: "Sells things"})
//	user.Use(shop, model.RelationSpec{Description: "Buys from"})
//	payload := ws.Build()
//
// Or from a document:
//
//	doc, err := io.ReadModelFile("model.toml")
//	if err != nil {
//	    return err
//	}
//	if _, err := io.Apply(doc, ws); err != nil {
//	    return err
//	}
//	err = graph.WritePayloadFile(ws.Build(), "payload.json")
package pkg
