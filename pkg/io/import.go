package io

import (
	"bufio"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/matzehuels/babelgraph/pkg/errors"
	"github.com/matzehuels/babelgraph/pkg/graph"
)

const (
	vertexHeader = "#VERTICES"
	edgeHeader   = "#EDGES"

	vertexFields = 6
	edgeFields   = 4
)

// ReadOption configures [ReadBGX] and [ImportBGX].
type ReadOption func(*reader)

// WithLogger sets the logger skipped rows are reported to. The default is
// log.Default().
func WithLogger(l *log.Logger) ReadOption {
	return func(r *reader) {
		if l != nil {
			r.logger = l
		}
	}
}

type reader struct {
	logger *log.Logger
	g      *graph.Graph
	errs   []error
}

// skip records a row that could not be used.
func (r *reader) skip(line int, format string, args ...any) {
	reason := fmt.Sprintf(format, args...)
	r.logger.Warn("skipping malformed row", "line", line, "reason", reason)
	r.errs = append(r.errs, &errors.LineError{Line: line, Reason: reason})
}

// missingHeader records a first line (or empty input) that is not the
// vertex header.
func (r *reader) missingHeader(got string) {
	r.logger.Error("missing vertex header, skipping vertex section", "want", vertexHeader, "got", got)
	r.errs = append(r.errs, &errors.LineError{Line: 1, Reason: "missing " + vertexHeader + " header"})
}

// ReadBGX decodes a .bgx document from r into a new directed graph.
//
// Malformed rows are logged and skipped. The graph is returned even when
// the error is non-nil; in that case the error has code
// [errors.ErrCodeInvalidFormat] and lists every skipped line. A read error
// from r is returned as is, together with whatever was parsed before it.
//
// ReadBGX does not close r.
func ReadBGX(r io.Reader, opts ...ReadOption) (*graph.Graph, error) {
	rd := &reader{logger: log.Default(), g: graph.New()}
	for _, opt := range opts {
		opt(rd)
	}

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	line := 0
	inEdges := false
	for sc.Scan() {
		line++
		text := strings.TrimRight(sc.Text(), "\r")

		if line == 1 && text != vertexHeader {
			rd.missingHeader(text)
			inEdges = text == edgeHeader || skipToEdges(sc, &line)
			if !inEdges {
				break
			}
			continue
		}
		switch {
		case line == 1:
			continue
		case text == edgeHeader:
			inEdges = true
			continue
		case strings.TrimSpace(text) == "":
			continue
		}

		if inEdges {
			rd.edge(line, text)
		} else {
			rd.vertex(line, text)
		}
	}
	if err := sc.Err(); err != nil {
		return rd.g, fmt.Errorf("read line %d: %w", line+1, err)
	}
	if line == 0 {
		rd.missingHeader("")
	}

	if len(rd.errs) > 0 {
		return rd.g, errors.Wrap(errors.ErrCodeInvalidFormat, stderrors.Join(rd.errs...),
			"%d malformed rows", len(rd.errs))
	}
	return rd.g, nil
}

// skipToEdges advances sc past the edge header. It reports false when the
// input ends first.
func skipToEdges(sc *bufio.Scanner, line *int) bool {
	for sc.Scan() {
		*line++
		if strings.TrimRight(sc.Text(), "\r") == edgeHeader {
			return true
		}
	}
	return false
}

// tokens splits a row on commas, dropping empty fields.
func tokens(text string) []string {
	parts := strings.Split(text, ",")
	out := parts[:0]
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

func (r *reader) vertex(line int, text string) {
	f := tokens(text)
	if len(f) != vertexFields {
		r.skip(line, "vertex row has %d fields, want %d", len(f), vertexFields)
		return
	}
	id, err := strconv.Atoi(strings.TrimSpace(f[0]))
	if err != nil {
		r.skip(line, "vertex id %q: %v", f[0], err)
		return
	}
	color, err := strconv.Atoi(strings.TrimSpace(f[1]))
	if err != nil {
		r.skip(line, "vertex color %q: %v", f[1], err)
		return
	}
	var pos [3]float64
	for i := range pos {
		pos[i], err = strconv.ParseFloat(strings.TrimSpace(f[3+i]), 64)
		if err != nil {
			r.skip(line, "vertex coordinate %q: %v", f[3+i], err)
			return
		}
	}
	if err := errors.ValidateName(f[2]); err != nil {
		r.skip(line, "vertex %d: %s", id, errors.UserMessage(err))
		return
	}
	v := graph.Vertex{
		ID:       id,
		Name:     f[2],
		Color:    color,
		Position: r3.Vec{X: pos[0], Y: pos[1], Z: pos[2]},
	}
	if err := r.g.RestoreVertex(v); err != nil {
		r.skip(line, "%v", err)
	}
}

func (r *reader) edge(line int, text string) {
	f := tokens(text)
	if len(f) != edgeFields {
		r.skip(line, "edge row has %d fields, want %d", len(f), edgeFields)
		return
	}
	var ids [3]int
	for i := range ids {
		n, err := strconv.Atoi(strings.TrimSpace(f[i]))
		if err != nil {
			r.skip(line, "edge field %q: %v", f[i], err)
			return
		}
		ids[i] = n
	}
	w, err := strconv.ParseFloat(strings.TrimSpace(f[3]), 64)
	if err != nil {
		r.skip(line, "edge weight %q: %v", f[3], err)
		return
	}
	if err := r.g.RestoreEdge(graph.Edge{ID: ids[0], From: ids[1], To: ids[2], Weight: w}); err != nil {
		r.skip(line, "%v", err)
	}
}

// ImportBGX reads the .bgx file at path. Errors opening the file have code
// [errors.ErrCodeFileNotFound]; everything else behaves as [ReadBGX].
func ImportBGX(path string, opts ...ReadOption) (*graph.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
	}
	defer f.Close()
	return ReadBGX(f, opts...)
}

// ReadJSON decodes a node-link JSON document from r.
//
// Nodes and edges keep their ids. A node without a "name" key gets the
// default name; an explicit empty name is kept. Names longer than
// [errors.MaxNameLength] or holding control characters are rejected. Each
// edge must reference known node ids and must not repeat a pair or form a
// self-loop. When "directed" is false
// the graph is switched to undirected mode after loading, which adds any
// missing reciprocal records.
//
// ReadJSON returns an error on the first invalid node or edge; unlike
// [ReadBGX] it does not return a partial graph. ReadJSON does not close r.
func ReadJSON(r io.Reader) (*graph.Graph, error) {
	var data document
	if err := json.NewDecoder(r).Decode(&data); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode")
	}

	g := graph.New()
	for _, n := range data.Nodes {
		v := graph.Vertex{
			ID:       n.ID,
			Name:     graph.DefaultName,
			Color:    n.Color,
			Position: r3.Vec{X: n.X, Y: n.Y, Z: n.Z},
		}
		if n.Name != nil {
			if err := errors.ValidateName(*n.Name); err != nil {
				return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "node %d", n.ID)
			}
			v.Name = *n.Name
		}
		if err := g.RestoreVertex(v); err != nil {
			return nil, fmt.Errorf("node %d: %w", n.ID, err)
		}
	}
	for _, e := range data.Edges {
		w := graph.DefaultWeight
		if e.Weight != nil {
			w = *e.Weight
		}
		if err := g.RestoreEdge(graph.Edge{ID: e.ID, From: e.From, To: e.To, Weight: w}); err != nil {
			return nil, fmt.Errorf("edge %d->%d: %w", e.From, e.To, err)
		}
	}
	if data.Directed != nil && !*data.Directed {
		g.MakeUndirected()
	}
	return g, nil
}

// ImportJSON reads a node-link JSON file at path and returns the decoded
// graph.
func ImportJSON(path string) (*graph.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
	}
	defer f.Close()
	return ReadJSON(f)
}
