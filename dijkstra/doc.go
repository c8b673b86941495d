// Package dijkstra answers shortest-route questions over a core.Graph with
// non-negative integer weights.
//
// Overview:
//
//   - Distances(g, source) returns the full DistanceTable from source: one entry per
//     vertex, Infinity for vertices that cannot be reached.
//   - FindPath(g, source, destination) returns one cheapest Route, stopping as soon as
//     destination is finalized.
//   - ShortestPath also returns the cost; RouteCost re-sums any Route against the graph.
//
// Failure semantics:
//
//   - Unknown labels never produce errors: Distances returns an empty table and
//     FindPath an empty Route. Callers distinguish "unprocessable" (empty table) from
//     "unreachable" (entry == Infinity, or empty Route with a known destination).
//   - Option constructors panic on meaningless values (ErrBadMaxDistance,
//     ErrBadInfThreshold), the only panics in the package.
//
// Options:
//
//   - WithMaxDistance(x):       vertices farther than x stay at Infinity.
//   - WithInfEdgeThreshold(t):  edges with weight ≥ t are treated as closed.
//
// Performance and complexity:
//
//   - Time:  O((V + E) log V); each edge relaxation may push one heap entry.
//   - Space: O(V + E) worst case under the lazy decrease-key strategy.
//
// Thread safety:
//
//   - Every query allocates its own distance, predecessor, visited and heap state.
//     Any number of queries may run concurrently against one graph as long as the
//     graph is no longer being built.
//
// Ties:
//
//   - Equal-distance heap entries pop in insertion order. Which of several equal-cost
//     routes is returned is otherwise unspecified; only its cost is guaranteed minimal.
package dijkstra
