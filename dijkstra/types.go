// Package dijkstra defines the result types and configuration options
// for Dijkstra's shortest-path queries over a core.Graph.
package dijkstra

import (
	"errors"
	"math"
	"sort"
	"strings"
)

// Infinity is the sentinel distance of a vertex that was not reached.
// No computed distance ever equals Infinity.
const Infinity int64 = math.MaxInt64

// Sentinel errors.
var (
	// ErrBrokenRoute indicates RouteCost was given two consecutive labels
	// that are not adjacent in the graph.
	ErrBrokenRoute = errors.New("dijkstra: route uses a missing edge")

	// ErrCostOverflow indicates RouteCost summed past the Infinity sentinel.
	ErrCostOverflow = errors.New("dijkstra: route cost overflows")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold indicates that InfEdgeThreshold was set to zero or negative,
	// which would treat every edge as impassable.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")
)

// DistanceTable maps each vertex label to its shortest distance from a fixed source.
// Unreached vertices hold Infinity. An empty table means the query could not be
// processed, e.g. because the source is not a vertex of the graph.
type DistanceTable map[string]int64

// Reachable reports whether label has a finite distance in the table.
func (t DistanceTable) Reachable(label string) bool {
	d, ok := t[label]

	return ok && d != Infinity
}

// Entry is one finite row of a DistanceTable.
type Entry struct {
	Label    string `json:"label"`
	Distance int64  `json:"distance"`
}

// Sorted returns the finite entries ordered by ascending distance, ties by label.
// Unreached vertices are omitted.
func (t DistanceTable) Sorted() []Entry {
	out := make([]Entry, 0, len(t))
	for label, d := range t {
		if d == Infinity {
			continue
		}
		out = append(out, Entry{Label: label, Distance: d})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Distance != out[j].Distance {
			return out[i].Distance < out[j].Distance
		}

		return out[i].Label < out[j].Label
	})

	return out
}

// Route is an ordered sequence of labels from source to destination inclusive.
// An empty Route means no path exists or the query could not be processed.
type Route []string

// Empty reports whether the route holds no vertices.
func (r Route) Empty() bool { return len(r) == 0 }

// Source returns the first label, or "" for an empty route.
func (r Route) Source() string {
	if len(r) == 0 {
		return ""
	}

	return r[0]
}

// Destination returns the last label, or "" for an empty route.
func (r Route) Destination() string {
	if len(r) == 0 {
		return ""
	}

	return r[len(r)-1]
}

// String joins the labels with " → ".
func (r Route) String() string { return strings.Join(r, " → ") }

// Options configures a query.
//
// MaxDistance      – vertices farther than this are never finalized. Must be ≥ 0.
// InfEdgeThreshold – edges with weight ≥ this value are impassable. Must be > 0.
//
// Both default to Infinity, i.e. no cap and no impassable edges.
type Options struct {
	MaxDistance      int64
	InfEdgeThreshold int64
}

// Option represents a functional option for configuring a query.
type Option func(*Options)

// DefaultOptions returns Options with no distance cap and no impassable edges.
func DefaultOptions() Options {
	return Options{
		MaxDistance:      Infinity,
		InfEdgeThreshold: Infinity,
	}
}

// WithMaxDistance caps exploration: vertices whose shortest distance would exceed
// max stay at Infinity. Panics with ErrBadMaxDistance if max < 0.
func WithMaxDistance(max int64) Option {
	if max < 0 {
		// Option constructors are the one place allowed to panic on bad input.
		panic(ErrBadMaxDistance.Error())
	}

	return func(o *Options) { o.MaxDistance = max }
}

// WithInfEdgeThreshold treats edges with weight ≥ threshold as closed roads.
// Panics with ErrBadInfThreshold if threshold <= 0.
func WithInfEdgeThreshold(threshold int64) Option {
	if threshold <= 0 {
		panic(ErrBadInfThreshold.Error())
	}

	return func(o *Options) { o.InfEdgeThreshold = threshold }
}

func resolve(opts []Option) Options {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
