package main

import (
	"fmt"
	"io"
	"strings"

	json "github.com/goccy/go-json"

	"github.com/katalvlaran/routefinder/dijkstra"
)

// outcome classifies a query result for the caller.
type outcome int

const (
	outcomeFound       outcome = iota // finite route
	outcomeUnreachable                // both labels known, no connecting roads
	outcomeUnprocessed                // empty distance table
)

// report is everything printed for one query.
type report struct {
	Network   string           `json:"network"`
	From      string           `json:"from"`
	To        string           `json:"to"`
	Unit      string           `json:"unit,omitempty"`
	Found     bool             `json:"found"`
	Distance  *int64           `json:"distance,omitempty"`
	Route     []string         `json:"route"`
	Distances []dijkstra.Entry `json:"distances"`

	outcome outcome
}

// newReport classifies the raw query results. An empty table means the query
// could not be processed; an empty route or an Infinity entry means unreachable.
func newReport(network, unit, from, to string, dist dijkstra.DistanceTable, route dijkstra.Route, cost int64) report {
	r := report{
		Network:   network,
		From:      from,
		To:        to,
		Unit:      unit,
		Route:     []string{},
		Distances: []dijkstra.Entry{},
	}
	switch {
	case len(dist) == 0:
		r.outcome = outcomeUnprocessed
	case route.Empty() || !dist.Reachable(to):
		r.outcome = outcomeUnreachable
	default:
		r.outcome = outcomeFound
		r.Found = true
		r.Distance = &cost
		r.Route = route
		r.Distances = dist.Sorted()
	}

	return r
}

func (r report) withUnit(d int64) string {
	if r.Unit == "" {
		return fmt.Sprintf("%d", d)
	}

	return fmt.Sprintf("%d %s", d, r.Unit)
}

func (r report) writeText(w io.Writer) error {
	var b strings.Builder
	switch r.outcome {
	case outcomeUnprocessed:
		b.WriteString("ERROR: unable to process route\n")
	case outcomeUnreachable:
		fmt.Fprintf(&b, "No route found between %s and %s\n", r.From, r.To)
	default:
		b.WriteString("=== SHORTEST ROUTE FOUND ===\n")
		fmt.Fprintf(&b, "From: %s → To: %s\n", r.From, r.To)
		fmt.Fprintf(&b, "Total Distance: %s\n", r.withUnit(*r.Distance))
		fmt.Fprintf(&b, "Route: %s\n", dijkstra.Route(r.Route))
		fmt.Fprintf(&b, "\n=== ALL DISTANCES FROM %s ===\n", r.From)
		for _, e := range r.Distances {
			fmt.Fprintf(&b, "%s: %s\n", e.Label, r.withUnit(e.Distance))
		}
	}
	_, err := io.WriteString(w, b.String())

	return err
}

func (r report) writeJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(r)
}
