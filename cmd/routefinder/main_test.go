package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/routefinder/dijkstra"
	"github.com/katalvlaran/routefinder/network"
)

func runCLI(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(args, &stdout, &stderr)

	return code, stdout.String(), stderr.String()
}

func TestRun_TextReport(t *testing.T) {
	code, out, errOut := runCLI(t, "-from", "Majestic", "-to", "Koramangala")
	require.Equal(t, exitOK, code, errOut)

	const want = `=== SHORTEST ROUTE FOUND ===
From: Majestic → To: Koramangala
Total Distance: 9 km
Route: Majestic → MG Road → Brigade Road → Koramangala

=== ALL DISTANCES FROM Majestic ===
Majestic: 0 km
MG Road: 3 km
Brigade Road: 4 km
Banashankari: 8 km
Indiranagar: 8 km
Koramangala: 9 km
BTM Layout: 12 km
HSR Layout: 12 km
Jayanagar: 13 km
Marathahalli: 16 km
Electronic City: 24 km
Whitefield: 26 km
`
	assert.Equal(t, want, out)
	assert.Empty(t, errOut)
}

func TestRun_JSONReport(t *testing.T) {
	code, out, _ := runCLI(t, "-from", "Majestic", "-to", "Whitefield", "-format", "json")
	require.Equal(t, exitOK, code)

	var got report
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "Bangalore", got.Network)
	assert.True(t, got.Found)
	require.NotNil(t, got.Distance)
	assert.Equal(t, int64(26), *got.Distance)
	assert.Equal(t, "Majestic", got.Route[0])
	assert.Equal(t, "Whitefield", got.Route[len(got.Route)-1])
	assert.Len(t, got.Distances, 12)
}

func TestRun_List(t *testing.T) {
	code, out, _ := runCLI(t, "-list")
	require.Equal(t, exitOK, code)
	assert.Contains(t, out, "Available locations:\n1. ")
	assert.Contains(t, out, "12. ")
}

func TestRun_UsageErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"missing to", []string{"-from", "Majestic"}, "both -from and -to are required"},
		{"unknown from", []string{"-from", "majestic", "-to", "Whitefield"}, `invalid location: "majestic"`},
		{"unknown to", []string{"-from", "Majestic", "-to", "Mars"}, `invalid location: "Mars"`},
		{"same endpoints", []string{"-from", "Majestic", "-to", "Majestic"}, "destination cannot be same as starting location"},
		{"bad format", []string{"-format", "xml"}, `unknown -format "xml"`},
		{"bad log level", []string{"-log-level", "loud"}, "usage"},
		{"stray argument", []string{"extra"}, "unexpected arguments"},
		{"missing file", []string{"-network", "/nonexistent/net.yaml", "-list"}, "cannot load network"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			code, out, errOut := runCLI(t, tc.args...)
			assert.Equal(t, exitUsage, code)
			assert.Empty(t, out)
			assert.Contains(t, errOut, tc.want)
		})
	}
}

func TestRun_InvalidLocationListsChoices(t *testing.T) {
	_, _, errOut := runCLI(t, "-from", "Nowhere", "-to", "Majestic")
	assert.Contains(t, errOut, "Available locations:")
	assert.Contains(t, errOut, "Whitefield")
}

func TestRun_NoRoute(t *testing.T) {
	path := filepath.Join(t.TempDir(), "split.yaml")
	doc := "name: split\nlocations: [A, B, C]\nroads:\n  - {from: A, to: B, distance: 2}\n"
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))

	code, out, errOut := runCLI(t, "-network", path, "-from", "A", "-to", "C")
	assert.Equal(t, exitNoRoute, code)
	assert.Equal(t, "No route found between A and C\n", out)
	assert.Contains(t, errOut, "not connected")

	code, out, _ = runCLI(t, "-network", path, "-from", "A", "-to", "B", "-log-level", "error")
	assert.Equal(t, exitOK, code)
	assert.Contains(t, out, "Total Distance: 2\n")
	assert.NotContains(t, out, "C:")
}

func TestNewReport_Outcomes(t *testing.T) {
	r := newReport("n", "km", "A", "B", dijkstra.DistanceTable{}, dijkstra.Route{}, dijkstra.Infinity)
	assert.Equal(t, outcomeUnprocessed, r.outcome)
	assert.False(t, r.Found)

	var buf bytes.Buffer
	require.NoError(t, r.writeText(&buf))
	assert.Equal(t, "ERROR: unable to process route\n", buf.String())

	buf.Reset()
	require.NoError(t, r.writeJSON(&buf))
	assert.JSONEq(t, `{"network":"n","from":"A","to":"B","unit":"km","found":false,"route":[],"distances":[]}`, buf.String())

	table := dijkstra.DistanceTable{"A": 0, "B": dijkstra.Infinity}
	r = newReport("n", "", "A", "B", table, dijkstra.Route{}, dijkstra.Infinity)
	assert.Equal(t, outcomeUnreachable, r.outcome)
	assert.Nil(t, r.Distance)
}

func TestRun_ExportRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bangalore.json")

	code, out, errOut := runCLI(t, "-export", path)
	require.Equal(t, exitOK, code, errOut)
	assert.Empty(t, out)

	exported, err := network.LoadFile(path)
	require.NoError(t, err)
	orig, err := network.Default()
	require.NoError(t, err)
	assert.Equal(t, orig.Name, exported.Name)
	assert.Equal(t, orig.Unit, exported.Unit)
	assert.ElementsMatch(t, orig.Locations, exported.Locations)
	assert.Len(t, exported.Roads, len(orig.Roads))

	code, out, _ = runCLI(t, "-network", path, "-from", "Majestic", "-to", "Koramangala")
	require.Equal(t, exitOK, code)
	assert.Contains(t, out, "Total Distance: 9 km\n")
}

func TestRun_ExportErrors(t *testing.T) {
	dir := t.TempDir()

	code, _, errOut := runCLI(t, "-export", filepath.Join(dir, "net.txt"))
	assert.Equal(t, exitUsage, code)
	assert.Contains(t, errOut, "cannot export network")

	code, _, errOut = runCLI(t, "-export", filepath.Join(dir, "missing", "net.yaml"))
	assert.Equal(t, exitWriteFailed, code)
	assert.Contains(t, errOut, "cannot export network")
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestRun_WriteFailureHasOwnExitCode(t *testing.T) {
	var stderr bytes.Buffer
	for _, format := range []string{"text", "json"} {
		code := run([]string{"-from", "Majestic", "-to", "Whitefield", "-format", format}, failingWriter{}, &stderr)
		assert.Equal(t, exitWriteFailed, code, format)
		assert.NotEqual(t, exitNoRoute, code)
	}
	assert.Contains(t, stderr.String(), "write report")
}
