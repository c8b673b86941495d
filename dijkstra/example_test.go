package dijkstra_test

import (
	"fmt"

	"github.com/katalvlaran/routefinder/core"
	"github.com/katalvlaran/routefinder/dijkstra"
)

// triangle builds A—B(3), B—C(1), A—C(10) plus the isolated Z.
func triangle() *core.Graph {
	g := core.NewGraph()
	for _, v := range []string{"A", "B", "C", "Z"} {
		_ = g.AddVertex(v)
	}
	_ = g.AddEdge("A", "B", 3)
	_ = g.AddEdge("B", "C", 1)
	_ = g.AddEdge("A", "C", 10)

	return g
}

// ExampleFindPath shows the detour beating the direct edge.
func ExampleFindPath() {
	g := triangle()

	route := dijkstra.FindPath(g, "A", "C")
	dist := dijkstra.Distances(g, "A")

	fmt.Println(route)
	fmt.Println("distance:", dist["C"])
	// Output:
	// A → B → C
	// distance: 4
}

// ExampleDistances prints every reachable location sorted by distance and
// reports unreachable ones separately.
func ExampleDistances() {
	g := triangle()

	dist := dijkstra.Distances(g, "A")
	for _, e := range dist.Sorted() {
		fmt.Printf("%s: %d\n", e.Label, e.Distance)
	}
	fmt.Println("Z reachable:", dist.Reachable("Z"))
	fmt.Println("unknown source:", len(dijkstra.Distances(g, "nowhere")))
	// Output:
	// A: 0
	// B: 3
	// C: 4
	// Z reachable: false
	// unknown source: 0
}

// ExampleShortestPath demonstrates a closed road via WithInfEdgeThreshold.
func ExampleShortestPath() {
	g := triangle()

	route, cost := dijkstra.ShortestPath(g, "A", "C", dijkstra.WithInfEdgeThreshold(3))
	fmt.Println(route.Empty(), cost == dijkstra.Infinity)

	route, cost = dijkstra.ShortestPath(g, "C", "A")
	fmt.Println(route, cost)
	// Output:
	// true true
	// C → B → A 4
}
