package graph_test

import (
	"fmt"

	"github.com/frainlabs/frain/pkg/graph"
)

func ExampleCompile() {
	out := graph.Compile(graph.Input{
		Title: "Fake Store",
		Elements: []graph.Element{
			{ID: "shopper", Name: "Shopper", ElementType: graph.ElementTypePerson, Relations: []graph.RelationRef{
				{TargetID: "web", Description: "Browses", Technology: "HTTPS"},
			}},
			{ID: "store", Name: "Store", ElementType: graph.ElementTypeSoftwareSystem},
			{ID: "web", Name: "Web", ElementType: graph.ElementTypeContainer, ParentID: "store", Relations: []graph.RelationRef{
				{TargetID: "payments", Description: "Charges cards", Technology: "REST"},
			}},
		},
	})

	for _, n := range out.Nodes.Nodes() {
		if n.HasParent() {
			fmt.Printf("%s (%s in %s)\n", n.ID, n.ElementType, n.ParentID)
			continue
		}
		fmt.Printf("%s (%s)\n", n.ID, n.ElementType)
	}
	for _, e := range out.Edges {
		fmt.Printf("%s -> %s: %s [%s]\n", e.Source, e.Target, e.Description, e.Technology)
	}
	// Output:
	// shopper (person)
	// store (software_system)
	// web (container in store)
	// shopper -> web: Browses [HTTPS]
	// web -> payments: Charges cards [REST]
}

func ExampleValidate() {
	p := graph.NewPayload("ws")
	p.Nodes.Set(graph.Node{ID: "store", ElementType: graph.ElementTypeSoftwareSystem})
	p.Views.ComponentViews = append(p.Views.ComponentViews, graph.ComponentView{
		Type:              graph.ComponentViewType,
		TargetContainerID: "api",
		Title:             "API internals",
	})

	for _, issue := range graph.Validate(p) {
		fmt.Println(issue.Type, issue.NodeID)
	}
	// Output:
	// dangling_view api
}

func ExampleMarshalPayload() {
	p := graph.NewPayload("ws-1")
	p.Nodes.Set(graph.Node{ID: "user", Name: "User", ElementType: graph.ElementTypePerson})

	data, err := graph.MarshalPayload(p)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	fmt.Print(string(data))
	// Output:
	// {
	//   "workspaceId": "ws-1",
	//   "nodes": {
	//     "user": {
	//       "id": "user",
	//       "name": "User",
	//       "description": "",
	//       "technology": "",
	//       "elementType": "person",
	//       "styles": {
	//         "shape": "",
	//         "color": "",
	//         "backgroundColor": ""
	//       }
	//     }
	//   },
	//   "edges": [],
	//   "views": {
	//     "systemContext": {
	//       "title": "",
	//       "description": ""
	//     },
	//     "containerViews": [],
	//     "componentViews": []
	//   }
	// }
}
