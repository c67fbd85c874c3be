package fas_test

import (
	"fmt"

	"github.com/matzehuels/sfas/pkg/fas"
	"github.com/matzehuels/sfas/pkg/graph"
)

func ExampleOrder() {
	// A three-cycle where c→a is the heaviest edge: the order keeps it
	// forward and sacrifices the unit-weight b→c instead.
	g := graph.New()
	_ = g.AddEdge("a", "b", 1)
	_ = g.AddEdge("b", "c", 1)
	_ = g.AddEdge("c", "a", 2)

	res, _ := fas.Order(g, fas.Options{Seed: 0})
	fmt.Println("Order:", res.Order)
	fmt.Println("Feedback weight:", res.FeedbackWeight)
	// Output:
	// Order: [c a b]
	// Feedback weight: 1
}

func ExampleOrder_acyclic() {
	// Acyclic input: the result is an exact topological order with zero
	// backward weight.
	g := graph.New()
	_ = g.AddEdge("build", "test", 1)
	_ = g.AddEdge("test", "release", 1)

	res, _ := fas.Order(g, fas.Options{})
	fmt.Println("Order:", res.Order)
	fmt.Println("Backward edges:", len(res.FeedbackEdges))
	// Output:
	// Order: [build test release]
	// Backward edges: 0
}
