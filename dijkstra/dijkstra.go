// Package dijkstra implements Dijkstra's shortest-path algorithm on core.Graph.
//
// Notes on implementation choices:
//
//   - We use a "lazy" decrease-key strategy: a shorter distance pushes a duplicate heap
//     entry and the outdated one is skipped when popped (its vertex is already visited).
//   - Heap entries carry an insertion sequence, so equal distances pop first-in first-out.
//   - Every query owns its dist/prev/visited/heap state; the graph is only read.
//   - Query-time problems (unknown labels) never error; they yield empty results.
package dijkstra

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/routefinder/core"
)

// Distances computes the shortest distance from source to every vertex of g.
//
// Returns:
//
//   - a DistanceTable holding one entry per vertex: 0 for source, the shortest distance
//     for reached vertices, Infinity for unreached ones.
//   - an empty table if g is nil or source is not a vertex of g.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func Distances(g *core.Graph, source string, opts ...Option) DistanceTable {
	if g == nil || !g.HasVertex(source) {
		return DistanceTable{}
	}

	r := newRunner(g, source, resolve(opts), false)
	r.process("")

	return r.dist
}

// FindPath returns one shortest route from source to destination.
//
// The search stops as soon as destination is popped from the heap: vertices are
// finalized in non-decreasing distance order, so its distance can no longer improve.
//
// Returns:
//
//   - [source, ..., destination] on success; [source] when source == destination.
//   - an empty Route if either label is unknown or destination is unreachable.
//
// When several routes share the minimal cost, which one is returned is unspecified.
func FindPath(g *core.Graph, source, destination string, opts ...Option) Route {
	route, _ := ShortestPath(g, source, destination, opts...)

	return route
}

// ShortestPath is FindPath that also reports the route's total cost.
// The cost is Infinity whenever the returned route is empty.
func ShortestPath(g *core.Graph, source, destination string, opts ...Option) (Route, int64) {
	if g == nil || !g.HasVertex(source) || !g.HasVertex(destination) {
		return Route{}, Infinity
	}

	r := newRunner(g, source, resolve(opts), true)
	r.process(destination)

	route := r.route(destination)
	if route.Empty() {
		return route, Infinity
	}

	return route, r.dist[destination]
}

// RouteCost sums the edge weights along route. Between two consecutive labels the
// cheapest connecting edge is used. An empty route costs Infinity; a single known
// label costs 0.
//
// Errors:
//   - ErrBrokenRoute if a label is unknown or two consecutive labels are not adjacent.
//   - ErrCostOverflow if the total would reach Infinity.
func RouteCost(g *core.Graph, route Route) (int64, error) {
	if route.Empty() {
		return Infinity, nil
	}
	if g == nil || !g.HasVertex(route[0]) {
		return 0, fmt.Errorf("%w: unknown vertex %q", ErrBrokenRoute, route.Source())
	}

	var total int64
	for i := 1; i < len(route); i++ {
		best := Infinity
		for _, e := range g.Neighbors(route[i-1]) {
			if e.To == route[i] && e.Weight < best {
				best = e.Weight
			}
		}
		if best == Infinity {
			return 0, fmt.Errorf("%w: %s → %s", ErrBrokenRoute, route[i-1], route[i])
		}
		if best >= Infinity-total {
			return 0, fmt.Errorf("%w: at %s → %s", ErrCostOverflow, route[i-1], route[i])
		}
		total += best
	}

	return total, nil
}

// runner holds the mutable state for a single query.
type runner struct {
	g       *core.Graph       // read-only within a query
	source  string            // query origin
	options Options           // thresholds
	dist    DistanceTable     // vertex → best known distance
	prev    map[string]string // vertex → predecessor; nil when paths are not needed
	visited map[string]bool   // finalized vertices
	pq      nodePQ            // lazy min-heap
	seq     uint64            // insertion counter for FIFO tie-breaks
}

// newRunner sets dist[v] = Infinity for every vertex, dist[source] = 0,
// and seeds the heap with (source, 0).
func newRunner(g *core.Graph, source string, cfg Options, trackPath bool) *runner {
	vertices := g.Vertices()

	r := &runner{
		g:       g,
		source:  source,
		options: cfg,
		dist:    make(DistanceTable, len(vertices)),
		visited: make(map[string]bool, len(vertices)),
		pq:      make(nodePQ, 0, len(vertices)),
	}
	if trackPath {
		r.prev = make(map[string]string, len(vertices))
	}

	for _, v := range vertices {
		r.dist[v] = Infinity
	}
	r.dist[source] = 0

	heap.Init(&r.pq)
	r.push(source, 0)

	return r
}

func (r *runner) push(id string, d int64) {
	heap.Push(&r.pq, &nodeItem{id: id, dist: d, seq: r.seq})
	r.seq++
}

// process is the main loop. It stops when the heap is exhausted, when the next
// distance exceeds MaxDistance, or when target (if non-empty) is finalized.
func (r *runner) process(target string) {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		u := item.id

		// Stale entry for an already finalized vertex.
		if r.visited[u] {
			continue
		}
		if item.dist > r.options.MaxDistance {
			break
		}

		r.visited[u] = true
		if u == target {
			return
		}

		r.relax(u)
	}
}

// relax tries to improve every neighbour of the finalized vertex u.
func (r *runner) relax(u string) {
	du := r.dist[u]
	for _, e := range r.g.Neighbors(u) {
		if e.Weight >= r.options.InfEdgeThreshold {
			continue // closed road
		}
		// A sum reaching Infinity would collide with the sentinel.
		if e.Weight >= Infinity-du {
			continue
		}

		newDist := du + e.Weight
		if newDist > r.options.MaxDistance || newDist >= r.dist[e.To] {
			continue
		}

		r.dist[e.To] = newDist
		if r.prev != nil {
			r.prev[e.To] = u
		}
		r.push(e.To, newDist)
	}
}

// route walks predecessor links back from destination and reverses them.
// The result is empty unless the walk ends at the source.
func (r *runner) route(destination string) Route {
	if !r.visited[destination] {
		return Route{}
	}

	var backwards []string
	for cur := destination; cur != ""; cur = r.prev[cur] {
		backwards = append(backwards, cur)
	}
	if backwards[len(backwards)-1] != r.source {
		return Route{}
	}

	route := make(Route, len(backwards))
	for i, label := range backwards {
		route[len(backwards)-1-i] = label
	}

	return route
}

// nodeItem is a heap entry: a vertex, the distance it was pushed with, and
// its insertion sequence.
type nodeItem struct {
	id   string
	dist int64
	seq  uint64
}

// nodePQ is a min-heap of *nodeItem ordered by (dist, seq).
type nodePQ []*nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].seq < pq[j].seq
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push is called by heap.Push; x must be *nodeItem.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

// Pop is called by heap.Pop.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
