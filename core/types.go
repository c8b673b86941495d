// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Edge, Segment and Graph declarations, sentinel errors and the NewGraph constructor.
//
// Errors:
//
//	ErrEmptyVertexID   - vertex label is the empty string.
//	ErrVertexNotFound  - an edge endpoint was never added as a vertex.
//	ErrNegativeWeight  - an edge weight below zero was supplied.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided vertex label is empty.
	// The empty label is reserved by algorithms as "no predecessor".
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates AddEdge referenced a vertex that was never added.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrNegativeWeight indicates AddEdge received a weight below zero.
	ErrNegativeWeight = errors.New("core: negative edge weight")
)

// Edge is one adjacency entry: the neighbouring vertex and the cost to reach it.
//
// An undirected connection between A and B is stored as two Edges,
// A→B and B→A, both carrying the same Weight.
type Edge struct {
	// To is the destination vertex label.
	To string

	// Weight is the non-negative cost of traversing the connection.
	Weight int64
}

// Segment describes one undirected connection exactly once, with From <= To.
// It is the enumeration unit of Graph.Edges.
type Segment struct {
	From   string
	To     string
	Weight int64
}

// Graph is an undirected, weighted graph over string-labelled vertices.
//
// adjacency maps every vertex label to its outgoing Edges; the map key set is the
// vertex set. edgeCount counts undirected connections (a mirrored pair counts once).
//
// Graph is safe for concurrent use. It is intended to be built once and then
// queried read-only; algorithms take a read lock per Neighbors call only.
type Graph struct {
	mu sync.RWMutex // guards adjacency and edgeCount

	adjacency map[string][]Edge
	edgeCount int
}

// NewGraph creates an empty Graph.
// Complexity: O(1).
func NewGraph() *Graph {
	return &Graph{adjacency: make(map[string][]Edge)}
}
