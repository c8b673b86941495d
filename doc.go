// Package routefinder computes shortest routes over weighted road networks.
//
// The module is organised in small packages:
//
//	core/     - thread-safe undirected weighted graph (locations and roads)
//	dijkstra/ - shortest distances and routes: lazy-deletion heap, early exit
//	bfs/      - unweighted traversal and connected components
//	builder/  - deterministic graph constructors (path, cycle, grid, random)
//	network/  - YAML/JSON network files and the built-in Bangalore network
//
// The routefinder command (cmd/routefinder) ties them together:
//
//	go run ./cmd/routefinder -from Majestic -to Whitefield
//
// Quick start:
//
//	g := core.NewGraph()
//	_ = g.AddVertex("A")
//	_ = g.AddVertex("B")
//	_ = g.AddEdge("A", "B", 5)
//
//	route := dijkstra.FindPath(g, "A", "B") // [A B]
//	dist := dijkstra.Distances(g, "A")      // map[A:0 B:5]
package routefinder
