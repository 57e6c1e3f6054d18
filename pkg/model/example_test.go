package model_test

import (
	"fmt"

	"github.com/frainlabs/frain/pkg/model"
)

func ExampleContext_AddContainer() {
	ctx := model.NewContext(model.WithIDGenerator(model.SequentialIDs("example")))

	shop, err := ctx.AddSoftwareSystem(model.ElementSpec{Name: "Fake Store", Description: "Sells fake goods"})
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	api, err := ctx.AddContainer(shop, model.ContainedSpec{
		Name:        "API",
		Description: "Order and catalog API",
		Technology:  "Go",
	})
	if err != nil {
		fmt.Println("Error:", err)
		return
	}

	fmt.Println(api.ParentID() == shop.ID())
	fmt.Println(len(shop.Containers()), ctx.Len())
	fmt.Println(api.Style())
	// Output:
	// true
	// 1 2
	// rounded-box #ffffff on #0097d1
}

func ExampleEntity_Use() {
	ctx := model.NewContext()
	customer, _ := ctx.AddPerson(model.ElementSpec{Name: "Customers", Description: "A customer"})
	shop, _ := ctx.AddSoftwareSystem(model.ElementSpec{Name: "Fake Store", Description: "Sells fake goods"})

	customer.Use(shop, model.RelationSpec{Description: "Browses", Technology: "HTTPS"})
	customer.Use(shop, model.RelationSpec{Description: "Pays"})

	for _, r := range customer.Relations() {
		fmt.Printf("%s [%s] same target: %v\n", r.Description(), r.Technology(), r.TargetID() == shop.ID())
	}
	// Output:
	// Browses [HTTPS] same target: true
	// Pays [] same target: true
}
