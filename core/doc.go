// Package core provides the weighted, undirected graph that every routefinder
// algorithm runs on.
//
// Vertices are opaque string labels (location names); they are referenced by label,
// never by index. Each undirected connection A—B with weight w is stored as two
// adjacency entries, A→B and B→A, carrying the same w.
//
// Lifecycle:
//
//   - Build once: AddVertex every label, then AddEdge between existing labels.
//   - Query many: Neighbors, HasVertex, Vertices, Edges are read-only and may be
//     called from any number of goroutines.
//
// Core Methods:
//
//	NewGraph() *Graph
//	AddVertex(label string) error                   // O(1), idempotent
//	AddEdge(src, dest string, weight int64) error   // O(1), endpoints must exist
//	HasVertex(label string) bool                    // O(1)
//	Neighbors(label string) []Edge                  // O(d), copy; empty if unknown
//	Vertices() []string                             // O(V log V), sorted
//	Edges() []Segment                               // O(E log E), each edge once
//	VertexCount() int / EdgeCount() int             // O(1)
//
// Errors:
//
//	ErrEmptyVertexID   – zero-length label
//	ErrVertexNotFound  – AddEdge endpoint never added (construction-time misuse)
//	ErrNegativeWeight  – AddEdge with weight < 0
//
// AddEdge deliberately refuses to auto-create endpoints: a misspelled label in a
// route list is reported immediately instead of producing a silent island.
package core
