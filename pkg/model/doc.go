// Package model provides the in-memory architecture model: people, software
// systems, containers and components, the relations between them, and the
// views that present them.
//
// # Entities
//
// Every modeled node is an [Entity] with a [Kind] discriminant. Typed handles
// ([Person], [SoftwareSystem], [ExternalSoftwareSystem], [Container],
// [Component]) wrap an entity and restrict which children it may own:
//
//   - a SoftwareSystem owns Containers
//   - a Container owns Components
//   - Person and ExternalSoftwareSystem own nothing
//
// Entities are created only through a [Context], which assigns the id,
// validates the spec and registers the entity in one step:
//
//	ctx := model.NewContext()
//	shop, err := ctx.AddSoftwareSystem(model.ElementSpec{Name: "Shop", Description: "Online shop"})
//	api, err := ctx.AddContainer(shop, model.ContainedSpec{
//	    Name: "API", Description: "Order API", Technology: "Go",
//	})
//
// A child returned by AddContainer or AddComponent is linked to its owner and
// present in the context's element list. There is no other way to obtain one.
//
// # Relations
//
// [Entity.Use] records a directed [Relation] on the source entity. Targets are
// not checked: a relation may point at an entity registered in another
// context, or nowhere at all. Self-loops and repeated relations are kept.
//
// # Identifiers
//
// Ids come from an [IDGenerator]. The default produces random v4 UUIDs;
// [SequentialIDs] produces a reproducible sequence for tests and golden files.
//
// # Concurrency
//
// A Context and its entities are not safe for concurrent mutation. Build the
// model from one goroutine, then compile it.
package model
