package network

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"os"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/routefinder/core"
)

//go:embed bangalore.yaml
var defaultNetwork []byte

// Default returns the built-in Bangalore network (12 locations, 14 roads, km).
func Default() (*Network, error) {
	n, err := decodeBytes(defaultNetwork, FormatYAML)
	if err != nil {
		return nil, fmt.Errorf("network: embedded default: %w", err)
	}

	return n, nil
}

// LoadFile reads and validates the document at path; the extension picks the format.
func LoadFile(path string) (*Network, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", err, path)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	n, err := Decode(f, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return n, nil
}

// Decode reads one document from r and validates it. Unknown fields are rejected.
func Decode(r io.Reader, format Format) (*Network, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	return decodeBytes(data, format)
}

func decodeBytes(data []byte, format Format) (*Network, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, fmt.Errorf("%w: empty document", ErrInvalidNetwork)
	}

	var n Network
	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&n); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidNetwork, err)
		}
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&n); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidNetwork, err)
		}
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownFormat, int(format))
	}

	if err := n.Validate(); err != nil {
		return nil, err
	}

	return &n, nil
}

// Encode writes n to w in the given format.
func (n *Network) Encode(w io.Writer, format Format) error {
	switch format {
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(n); err != nil {
			return err
		}

		return enc.Close()
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")

		return enc.Encode(n)
	default:
		return fmt.Errorf("%w: %d", ErrUnknownFormat, int(format))
	}
}

// Validate checks the document without building a graph:
// at least one location, no empty labels, non-negative distances and
// roads between declared locations only. Duplicate locations are allowed.
func (n *Network) Validate() error {
	if len(n.Locations) == 0 {
		return fmt.Errorf("%w: no locations", ErrInvalidNetwork)
	}

	declared := make(map[string]struct{}, len(n.Locations))
	for i, l := range n.Locations {
		if l == "" {
			return fmt.Errorf("%w: location %d is empty", ErrInvalidNetwork, i)
		}
		declared[l] = struct{}{}
	}
	for i, r := range n.Roads {
		if _, ok := declared[r.From]; !ok {
			return fmt.Errorf("%w: road %d: undeclared location %q", ErrInvalidNetwork, i, r.From)
		}
		if _, ok := declared[r.To]; !ok {
			return fmt.Errorf("%w: road %d: undeclared location %q", ErrInvalidNetwork, i, r.To)
		}
		if r.Distance < 0 {
			return fmt.Errorf("%w: road %d: negative distance %d", ErrInvalidNetwork, i, r.Distance)
		}
	}

	return nil
}

// Graph builds a core.Graph: every location first, then every road.
// Construction errors from core are wrapped with the road index.
func (n *Network) Graph() (*core.Graph, error) {
	g := core.NewGraph()
	for i, l := range n.Locations {
		if err := g.AddVertex(l); err != nil {
			return nil, fmt.Errorf("%w: location %d: %w", ErrInvalidNetwork, i, err)
		}
	}
	for i, r := range n.Roads {
		if err := g.AddEdge(r.From, r.To, r.Distance); err != nil {
			return nil, fmt.Errorf("%w: road %d: %w", ErrInvalidNetwork, i, err)
		}
	}

	return g, nil
}

// FromGraph describes g as a Network: sorted locations and one road per edge.
func FromGraph(g *core.Graph, name, unit string) *Network {
	n := &Network{Name: name, Unit: unit, Locations: g.Vertices()}
	for _, s := range g.Edges() {
		n.Roads = append(n.Roads, Road{From: s.From, To: s.To, Distance: s.Weight})
	}

	return n
}
