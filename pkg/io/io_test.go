package io

import (
	"bytes"
	"io"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/matzehuels/babelgraph/pkg/errors"
	"github.com/matzehuels/babelgraph/pkg/graph"
)

func quiet() ReadOption { return WithLogger(log.New(io.Discard)) }

func sample(t *testing.T) *graph.Graph {
	t.Helper()
	g := graph.New()
	a := g.AddVertex("alice")
	b := g.AddVertex("Smith, Bob")
	c := g.AddVertex()
	g.SetColor(b, 3)
	g.SetPosition(a, r3.Vec{X: 0.1, Y: -2.5, Z: 1e-7})
	g.SetPosition(c, r3.Vec{X: 1.0 / 3.0})
	if _, err := g.AddEdge(a, b); err != nil {
		t.Fatal(err)
	}
	id, err := g.AddEdge(b, c)
	if err != nil {
		t.Fatal(err)
	}
	g.SetWeight(id, 2.75)
	return g
}

func TestWriteBGX(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteBGX(sample(t), &buf); err != nil {
		t.Fatalf("WriteBGX: %v", err)
	}
	want := strings.Join([]string{
		"#VERTICES",
		"0,0,alice,0.1,-2.5,1e-07",
		"1,3,Smith  Bob,0,0,0",
		"2,0, ,0.3333333333333333,0,0",
		"#EDGES",
		"0,0,1,1",
		"1,1,2,2.75",
		"",
	}, "\n")
	if got := buf.String(); got != want {
		t.Errorf("WriteBGX output:\n%s\nwant:\n%s", got, want)
	}
}

func TestBGXRoundTrip(t *testing.T) {
	g := sample(t)
	g.RemoveVertex(0)
	g.AddVertex("late")

	var buf bytes.Buffer
	if err := WriteBGX(g, &buf); err != nil {
		t.Fatalf("WriteBGX: %v", err)
	}
	got, err := ReadBGX(&buf, quiet())
	if err != nil {
		t.Fatalf("ReadBGX: %v", err)
	}

	if got.VertexCount() != g.VertexCount() || got.EdgeCount() != g.EdgeCount() {
		t.Fatalf("counts = %d/%d, want %d/%d",
			got.VertexCount(), got.EdgeCount(), g.VertexCount(), g.EdgeCount())
	}
	g.Vertices(func(v graph.Vertex) bool {
		w, ok := got.Vertex(v.ID)
		if !ok {
			t.Errorf("vertex %d missing", v.ID)
			return true
		}
		if v.Name == "Smith, Bob" {
			v.Name = "Smith  Bob"
		}
		if w != v {
			t.Errorf("vertex %d = %+v, want %+v", v.ID, w, v)
		}
		return true
	})
	g.Edges(func(e graph.Edge) bool {
		if f, ok := got.Edge(e.ID); !ok || f != e {
			t.Errorf("edge %d = %+v, want %+v", e.ID, f, e)
		}
		return true
	})
	if err := got.Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}
}

func TestReadBGXCounters(t *testing.T) {
	in := "#VERTICES\n7,0,a,0,0,0\n2,1,b,0,0,0\n#EDGES\n40,7,2,1\n"
	g, err := ReadBGX(strings.NewReader(in), quiet())
	if err != nil {
		t.Fatalf("ReadBGX: %v", err)
	}
	if got := g.NextVertexID(); got != 8 {
		t.Errorf("NextVertexID = %d, want 8", got)
	}
	if got := g.NextEdgeID(); got != 41 {
		t.Errorf("NextEdgeID = %d, want 41", got)
	}
	if id := g.AddVertex(); id != 8 {
		t.Errorf("AddVertex after load = %d, want 8", id)
	}
	if !g.Directed() {
		t.Error("loaded graph must be directed")
	}
}

func TestReadBGXMalformedRows(t *testing.T) {
	in := strings.Join([]string{
		"#VERTICES",
		"0,0,a,0,0,0",
		"1,0,b,0,0",       // 3: too few fields
		"x,0,c,0,0,0",     // 4: bad id
		"2,0,c,0,0,nope",  // 5: bad coordinate
		"0,1,dup,0,0,0",   // 6: duplicate id
		"3,,0,d,,1,2,3",   // empty tokens are skipped: 6 fields
		"",
		"#EDGES",
		"0,0,3,1",
		"1,0,9,1",   // 11: unknown vertex
		"2,3,3,1",   // 12: self-loop
		"3,0,3,1",   // 13: duplicate pair
		"4,3,0",     // 14: too few fields
		"5,3,0,1.5",
	}, "\r\n")

	g, err := ReadBGX(strings.NewReader(in), quiet())
	if g == nil {
		t.Fatal("graph must be returned on row errors")
	}
	if !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Fatalf("err = %v, want code %s", err, errors.ErrCodeInvalidFormat)
	}

	var lines []int
	for _, le := range errors.Lines(err) {
		lines = append(lines, le.Line)
	}
	want := []int{3, 4, 5, 6, 11, 12, 13, 14}
	if len(lines) != len(want) {
		t.Fatalf("skipped lines = %v, want %v", lines, want)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("skipped lines = %v, want %v", lines, want)
			break
		}
	}

	if g.VertexCount() != 2 || g.EdgeCount() != 2 {
		t.Errorf("counts = %d/%d, want 2/2", g.VertexCount(), g.EdgeCount())
	}
	if got := g.Name(3); got != "d" {
		t.Errorf("Name(3) = %q, want %q", got, "d")
	}
	if got := g.Position(3); got != (r3.Vec{X: 1, Y: 2, Z: 3}) {
		t.Errorf("Position(3) = %v", got)
	}
	if got := g.Weight(3, 0); got != 1.5 {
		t.Errorf("Weight(3, 0) = %v, want 1.5", got)
	}
	if got := g.NextEdgeID(); got != 6 {
		t.Errorf("NextEdgeID = %d, want 6", got)
	}
}

func TestReadBGXMissingHeader(t *testing.T) {
	tests := []struct {
		name      string
		in        string
		wantEdges int
	}{
		{"wrong case", "#vertices\n0,0,a,0,0,0\n#EDGES\n", 0},
		{"no sections", "0,0,a,0,0,0\n1,0,b,0,0,0\n", 0},
		{"edges only", "#EDGES\n0,0,1,1\n", 0},
		{"empty input", "", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := ReadBGX(strings.NewReader(tt.in), quiet())
			if g == nil {
				t.Fatal("graph must be returned")
			}
			if g.VertexCount() != 0 {
				t.Errorf("VertexCount = %d, want 0", g.VertexCount())
			}
			if !errors.Is(err, errors.ErrCodeInvalidFormat) {
				t.Errorf("err = %v, want code %s", err, errors.ErrCodeInvalidFormat)
			}
			lines := errors.Lines(err)
			if len(lines) == 0 || lines[0].Line != 1 {
				t.Errorf("Lines = %v, want the header error on line 1", lines)
			}
		})
	}
}

func TestReadBGXEmptyInputLogsMissingHeader(t *testing.T) {
	var buf bytes.Buffer
	_, err := ReadBGX(strings.NewReader(""), WithLogger(log.New(&buf)))
	if err == nil {
		t.Fatal("empty input must report the missing header")
	}
	if !strings.Contains(buf.String(), "missing vertex header") {
		t.Errorf("log output %q does not mention the missing header", buf.String())
	}
}

func TestReadBGXRejectsControlCharacterNames(t *testing.T) {
	in := "#VERTICES\n0,0,ok,0,0,0\n1,0,bad\x07bell,0,0,0\n#EDGES\n"
	g, err := ReadBGX(strings.NewReader(in), quiet())
	if g.VertexCount() != 1 {
		t.Errorf("VertexCount = %d, want 1", g.VertexCount())
	}
	lines := errors.Lines(err)
	if len(lines) != 1 || lines[0].Line != 3 {
		t.Errorf("Lines = %v, want one rejected row on line 3", lines)
	}
}

func TestJSONKeepsEmptyName(t *testing.T) {
	g := sample(t)
	if err := g.SetName(0, ""); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := WriteJSON(g, &buf); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}
	got, err := ReadJSON(&buf)
	if err != nil {
		t.Fatalf("ReadJSON: %v", err)
	}
	if got.Name(0) != "" {
		t.Errorf("Name(0) = %q, want empty", got.Name(0))
	}
}

func TestReadBGXLogsSkippedRows(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New(&buf)
	_, _ = ReadBGX(strings.NewReader("#VERTICES\n0,0\n#EDGES\n"), WithLogger(logger))
	if !strings.Contains(buf.String(), "skipping malformed row") {
		t.Errorf("log output %q does not mention the skipped row", buf.String())
	}
}

func TestImportExportBGX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "g.bgx")
	g := sample(t)
	if err := ExportBGX(g, path); err != nil {
		t.Fatalf("ExportBGX: %v", err)
	}
	got, err := ImportBGX(path, quiet())
	if err != nil {
		t.Fatalf("ImportBGX: %v", err)
	}
	if got.EdgeCount() != g.EdgeCount() {
		t.Errorf("EdgeCount = %d, want %d", got.EdgeCount(), g.EdgeCount())
	}

	_, err = ImportBGX(filepath.Join(t.TempDir(), "missing.bgx"))
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("err = %v, want code %s", err, errors.ErrCodeFileNotFound)
	}
}

func TestJSONRoundTrip(t *testing.T) {
	g := sample(t)
	g.MakeUndirected()

	var buf bytes.Buffer
	if err := WriteJSON(g, &buf); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}
	got, err := ReadJSON(&buf)
	if err != nil {
		t.Fatalf("ReadJSON: %v", err)
	}
	if got.Directed() {
		t.Error("directedness flag lost")
	}
	if got.EdgeCount() != g.EdgeCount() {
		t.Errorf("EdgeCount = %d, want %d", got.EdgeCount(), g.EdgeCount())
	}
	if got.Name(1) != "Smith, Bob" {
		t.Errorf("Name(1) = %q, JSON must keep commas", got.Name(1))
	}
	if got.NextEdgeID() != g.NextEdgeID() {
		t.Errorf("NextEdgeID = %d, want %d", got.NextEdgeID(), g.NextEdgeID())
	}
}

func TestReadJSON(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		wantErr  bool
		directed bool
		edges    int
	}{
		{"defaults", `{"nodes":[{"id":0},{"id":1}],"edges":[{"id":0,"from":0,"to":1}]}`, false, true, 1},
		{"undirected adds reciprocal", `{"directed":false,"nodes":[{"id":0},{"id":1}],"edges":[{"id":5,"from":0,"to":1}]}`, false, false, 2},
		{"unknown endpoint", `{"nodes":[{"id":0}],"edges":[{"id":0,"from":0,"to":1}]}`, true, false, 0},
		{"duplicate node", `{"nodes":[{"id":0},{"id":0}],"edges":[]}`, true, false, 0},
		{"malformed", `{"nodes":`, true, false, 0},
		{"control character name", `{"nodes":[{"id":0,"name":"a\u0000b"}],"edges":[]}`, true, false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := ReadJSON(strings.NewReader(tt.in))
			if (err != nil) != tt.wantErr {
				t.Fatalf("ReadJSON error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if g.Directed() != tt.directed {
				t.Errorf("Directed = %v, want %v", g.Directed(), tt.directed)
			}
			if g.EdgeCount() != tt.edges {
				t.Errorf("EdgeCount = %d, want %d", g.EdgeCount(), tt.edges)
			}
			if g.Name(0) != graph.DefaultName {
				t.Errorf("Name(0) = %q, want default", g.Name(0))
			}
		})
	}
}
