package builder_test

import (
	"fmt"

	"github.com/katalvlaran/cayley/builder"
)

// ExampleCayleyTree builds a two-generation ternary tree and lists it
// generation by generation.
func ExampleCayleyTree() {
	tree, err := builder.CayleyTree(2, 3)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("nodes:", tree.NodeNumber())
	for gen := 0; gen <= tree.Generations(); gen++ {
		fmt.Println(gen, tree.NodesInGeneration(gen))
	}
	nbrs, _ := tree.NearestNeighbors("1")
	fmt.Println("neighbors of 1:", nbrs)

	// Output:
	// nodes: 10
	// 0 [0]
	// 1 [1 2 3]
	// 2 [4 5 6 7 8 9]
	// neighbors of 1: [0 4 5]
}

// ExampleIdeology wires a small chamber with the linear policy.
func ExampleIdeology() {
	members := []builder.Member{
		{Name: "Ames", Rank: 1, Ideology: 0.2},
		{Name: "Bell", Rank: 2, Ideology: 0.4},
		{Name: "Cole", Rank: 3, Ideology: 0.6},
		{Name: "Dunn", Rank: 4, Ideology: 0.8},
	}
	net, err := builder.Ideology(members, builder.PolicyLinear)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("center %.2f\n", net.Center())
	fmt.Println(net.Links())

	// Output:
	// center 0.50
	// [[Ames Bell] [Bell Cole] [Cole Dunn]]
}
