// Command routefinder prints the shortest route between two locations of a
// network and the distance from the start to every other location.
//
// Usage:
//
//	routefinder -from Majestic -to Whitefield
//	routefinder -network city.yaml -from A -to B -format json
//	routefinder -list
//	routefinder -network city.json -export city.yaml
//
// Without -network the built-in Bangalore network is used.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/routefinder/bfs"
	"github.com/katalvlaran/routefinder/dijkstra"
	"github.com/katalvlaran/routefinder/network"
)

const (
	exitOK          = 0
	exitNoRoute     = 1
	exitUsage       = 2
	exitWriteFailed = 3
)

var errUsage = errors.New("usage")

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

type config struct {
	networkPath string
	from        string
	to          string
	format      string
	list        bool
	exportPath  string
	logLevel    string
}

func parseFlags(args []string, stderr io.Writer) (config, error) {
	var cfg config
	fs := flag.NewFlagSet("routefinder", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&cfg.networkPath, "network", "", "YAML or JSON network file (default: built-in Bangalore network)")
	fs.StringVar(&cfg.from, "from", "", "starting location (case-sensitive)")
	fs.StringVar(&cfg.to, "to", "", "destination (case-sensitive)")
	fs.StringVar(&cfg.format, "format", "text", "output format: text or json")
	fs.BoolVar(&cfg.list, "list", false, "print the available locations and exit")
	fs.StringVar(&cfg.exportPath, "export", "", "write the loaded network to a .yaml/.yml/.json file and exit")
	fs.StringVar(&cfg.logLevel, "log-level", "warn", "log level: debug, info, warn, error")

	if err := fs.Parse(args); err != nil {
		return cfg, fmt.Errorf("%w: %v", errUsage, err)
	}
	if fs.NArg() > 0 {
		return cfg, fmt.Errorf("%w: unexpected arguments %v", errUsage, fs.Args())
	}
	if cfg.format != "text" && cfg.format != "json" {
		return cfg, fmt.Errorf("%w: unknown -format %q", errUsage, cfg.format)
	}

	return cfg, nil
}

func newLogger(w io.Writer, level string) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("%w: %v", errUsage, err)
	}

	logger := zerolog.New(zerolog.NewConsoleWriter(func(cw *zerolog.ConsoleWriter) {
		cw.Out = w
		cw.NoColor = true
		cw.PartsExclude = []string{zerolog.TimestampFieldName}
	}))

	return logger.Level(lvl), nil
}

func loadNetwork(path string) (*network.Network, error) {
	if path == "" {
		return network.Default()
	}

	return network.LoadFile(path)
}

// run is main without the process exit, so it can be tested.
func run(args []string, stdout, stderr io.Writer) int {
	cfg, err := parseFlags(args, stderr)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitUsage
	}
	logger, err := newLogger(stderr, cfg.logLevel)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitUsage
	}

	net, err := loadNetwork(cfg.networkPath)
	if err != nil {
		logger.Error().Err(err).Str("network", cfg.networkPath).Msg("cannot load network")
		return exitUsage
	}
	g, err := net.Graph()
	if err != nil {
		logger.Error().Err(err).Str("network", net.Name).Msg("cannot build graph")
		return exitUsage
	}
	logger.Debug().
		Str("network", net.Name).
		Int("locations", g.VertexCount()).
		Int("roads", g.EdgeCount()).
		Msg("network loaded")
	if comps := bfs.Components(g); len(comps) > 1 {
		logger.Warn().Int("components", len(comps)).Msg("network is not connected; some routes do not exist")
	}

	if cfg.list {
		printLocations(stdout, net.Locations)
		return exitOK
	}
	if cfg.exportPath != "" {
		if err := exportNetwork(cfg.exportPath, network.FromGraph(g, net.Name, net.Unit)); err != nil {
			logger.Error().Err(err).Str("path", cfg.exportPath).Msg("cannot export network")
			if errors.Is(err, network.ErrUnknownFormat) {
				return exitUsage
			}
			return exitWriteFailed
		}
		logger.Info().Str("path", cfg.exportPath).Msg("network exported")
		return exitOK
	}

	if err := validateEndpoints(net, cfg.from, cfg.to); err != nil {
		fmt.Fprintln(stderr, err)
		printLocations(stderr, net.Locations)
		return exitUsage
	}

	dist := dijkstra.Distances(g, cfg.from)
	route, cost := dijkstra.ShortestPath(g, cfg.from, cfg.to)
	logger.Info().
		Str("from", cfg.from).
		Str("to", cfg.to).
		Int("hops", len(route)).
		Msg("query done")

	rep := newReport(net.Name, net.Unit, cfg.from, cfg.to, dist, route, cost)
	if cfg.format == "json" {
		err = rep.writeJSON(stdout)
	} else {
		err = rep.writeText(stdout)
	}
	if err != nil {
		logger.Error().Err(err).Msg("write report")
		return exitWriteFailed
	}
	if !rep.Found {
		return exitNoRoute
	}

	return exitOK
}

// validateEndpoints rejects missing or unknown labels and identical endpoints.
func validateEndpoints(net *network.Network, from, to string) error {
	switch {
	case from == "" || to == "":
		return fmt.Errorf("%w: both -from and -to are required", errUsage)
	case !net.HasLocation(from):
		return fmt.Errorf("invalid location: %q; choose from the list below (case-sensitive)", from)
	case !net.HasLocation(to):
		return fmt.Errorf("invalid location: %q; choose from the list below (case-sensitive)", to)
	case from == to:
		return errors.New("destination cannot be same as starting location")
	}

	return nil
}

// exportNetwork writes n to path in the format picked by its extension.
func exportNetwork(path string, n *network.Network) (err error) {
	format, err := network.FormatFromPath(path)
	if err != nil {
		return fmt.Errorf("%w: %q", err, path)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	return n.Encode(f, format)
}

func printLocations(w io.Writer, locations []string) {
	fmt.Fprintln(w, "Available locations:")
	for i, l := range locations {
		fmt.Fprintf(w, "%d. %s\n", i+1, l)
	}
}
