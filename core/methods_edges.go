// File: methods_edges.go
// Role: Edge insertion and neighbourhood queries: AddEdge/Neighbors/Edges/EdgeCount.
//
// Determinism:
//   - Neighbors() preserves insertion order.
//   - Edges() returns segments sorted by (From, To, Weight).
//
// Concurrency:
//   - AddEdge under the write lock; queries under the read lock.
package core

import (
	"fmt"
	"sort"
)

// AddEdge connects src and dest with an undirected edge of the given weight.
//
// Steps:
//  1. Validate labels and weight.
//  2. Under the write lock, verify both endpoints exist (ErrVertexNotFound).
//  3. Append dest/weight to src and src/weight to dest.
//
// A self-loop (src == dest) is stored as a single adjacency entry.
//
// Errors:
//   - ErrEmptyVertexID: src or dest is "".
//   - ErrNegativeWeight: weight < 0.
//   - ErrVertexNotFound: an endpoint was never added via AddVertex; the error names
//     the missing label and the graph is left unchanged.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(src, dest string, weight int64) error {
	if src == "" || dest == "" {
		return ErrEmptyVertexID
	}
	if weight < 0 {
		return fmt.Errorf("%w: %s—%s weight=%d", ErrNegativeWeight, src, dest, weight)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	// Endpoints must pre-exist; auto-creation would hide caller typos.
	if _, ok := g.adjacency[src]; !ok {
		return fmt.Errorf("%w: %q", ErrVertexNotFound, src)
	}
	if _, ok := g.adjacency[dest]; !ok {
		return fmt.Errorf("%w: %q", ErrVertexNotFound, dest)
	}

	g.adjacency[src] = append(g.adjacency[src], Edge{To: dest, Weight: weight})
	if src != dest {
		g.adjacency[dest] = append(g.adjacency[dest], Edge{To: src, Weight: weight})
	}
	g.edgeCount++

	return nil
}

// Neighbors returns a copy of the adjacency list of label.
// Unknown and isolated vertices both yield an empty slice.
//
// Complexity: O(d) where d is the degree of label.
func (g *Graph) Neighbors(label string) []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	adj := g.adjacency[label]
	out := make([]Edge, len(adj))
	copy(out, adj)

	return out
}

// EdgeCount returns the number of undirected edges added so far.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCount
}

// Edges enumerates every undirected edge once as a Segment with From <= To.
// Parallel edges are reported individually.
//
// Complexity: O(E log E).
func (g *Graph) Edges() []Segment {
	g.mu.RLock()
	segs := make([]Segment, 0, g.edgeCount)
	for from, adj := range g.adjacency {
		for _, e := range adj {
			// Each mirrored pair is seen from both sides; keep the from<=to half.
			if from <= e.To {
				segs = append(segs, Segment{From: from, To: e.To, Weight: e.Weight})
			}
		}
	}
	g.mu.RUnlock()

	sort.Slice(segs, func(i, j int) bool {
		if segs[i].From != segs[j].From {
			return segs[i].From < segs[j].From
		}
		if segs[i].To != segs[j].To {
			return segs[i].To < segs[j].To
		}

		return segs[i].Weight < segs[j].Weight
	})

	return segs
}
