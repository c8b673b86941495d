// Package network loads location graphs from YAML or JSON documents and turns
// them into core.Graph values.
package network

import (
	"errors"
	"path/filepath"
	"strings"
)

// Sentinel errors.
var (
	// ErrInvalidNetwork indicates a document that cannot become a graph.
	ErrInvalidNetwork = errors.New("network: invalid network")

	// ErrUnknownFormat indicates a file extension or Format value that is not supported.
	ErrUnknownFormat = errors.New("network: unknown format")
)

// Format selects the document encoding.
type Format int

const (
	// FormatYAML decodes with gopkg.in/yaml.v3.
	FormatYAML Format = iota
	// FormatJSON decodes with github.com/goccy/go-json.
	FormatJSON
)

func (f Format) String() string {
	switch f {
	case FormatYAML:
		return "yaml"
	case FormatJSON:
		return "json"
	default:
		return "unknown"
	}
}

// FormatFromPath picks the Format from a file extension (.yaml, .yml, .json).
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return 0, ErrUnknownFormat
	}
}

// Road is one undirected connection between two declared locations.
type Road struct {
	From     string `yaml:"from" json:"from"`
	To       string `yaml:"to" json:"to"`
	Distance int64  `yaml:"distance" json:"distance"`
}

// Network is the on-disk description of a location graph.
//
// Locations are added to the graph first, in document order, then Roads.
// Unit is informational (e.g. "km") and is echoed by reports.
type Network struct {
	Name      string   `yaml:"name" json:"name"`
	Unit      string   `yaml:"unit,omitempty" json:"unit,omitempty"`
	Locations []string `yaml:"locations" json:"locations"`
	Roads     []Road   `yaml:"roads" json:"roads"`
}

// HasLocation reports whether label is declared (case-sensitive).
func (n *Network) HasLocation(label string) bool {
	for _, l := range n.Locations {
		if l == label {
			return true
		}
	}

	return false
}
