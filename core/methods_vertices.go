// File: methods_vertices.go
// Role: Vertex lifecycle & queries.
//
// Determinism:
//   - Vertices() returns labels sorted lexicographically ascending.
//
// Concurrency:
//   - Mutations take the write lock, queries the read lock.
package core

import "sort"

// AddVertex inserts a vertex with an empty adjacency list if it is missing.
//
// Implementation:
//   - Stage 1: Validate non-empty label (ErrEmptyVertexID).
//   - Stage 2: Under the write lock, register the label unless already present.
//
// Behavior highlights:
//   - Idempotent: adding an existing vertex is a no-op and never touches its edges.
//
// Errors:
//   - ErrEmptyVertexID: if label == "".
//
// Complexity:
//   - Time O(1) amortized, Space O(1) amortized.
func (g *Graph) AddVertex(label string) error {
	if label == "" {
		return ErrEmptyVertexID
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if _, exists := g.adjacency[label]; exists {
		return nil // no-op for existing vertex
	}
	g.adjacency[label] = nil

	return nil
}

// HasVertex reports whether the vertex label exists (empty label ⇒ false).
// Complexity: O(1).
func (g *Graph) HasVertex(label string) bool {
	if label == "" {
		return false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.adjacency[label]

	return ok
}

// Vertices returns all vertex labels sorted ascending.
// Complexity: O(V log V).
func (g *Graph) Vertices() []string {
	g.mu.RLock()
	labels := make([]string, 0, len(g.adjacency))
	for label := range g.adjacency {
		labels = append(labels, label)
	}
	g.mu.RUnlock()

	sort.Strings(labels)

	return labels
}

// VertexCount returns the number of vertices.
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adjacency)
}
