package io

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/matzehuels/babelgraph/pkg/graph"
)

type document struct {
	Directed *bool  `json:"directed,omitempty"`
	Nodes    []node `json:"nodes"`
	Edges    []edge `json:"edges"`
}

type node struct {
	ID    int     `json:"id"`
	Name  *string `json:"name"`
	Color int     `json:"color"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Z     float64 `json:"z"`
}

type edge struct {
	ID     int      `json:"id"`
	From   int      `json:"from"`
	To     int      `json:"to"`
	Weight *float64 `json:"weight,omitempty"`
}

// bgxName makes a vertex name safe for a single comma-separated field.
func bgxName(name string) string {
	name = strings.ReplaceAll(name, ",", " ")
	name = strings.NewReplacer("\n", " ", "\r", " ").Replace(name)
	if name == "" {
		return graph.DefaultName
	}
	return name
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// WriteBGX encodes g in the .bgx format and writes it to w.
// Vertices and edges are written in ascending id order.
func WriteBGX(g *graph.Graph, w io.Writer) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintln(bw, vertexHeader)
	g.Vertices(func(v graph.Vertex) bool {
		fmt.Fprintf(bw, "%d,%d,%s,%s,%s,%s\n", v.ID, v.Color, bgxName(v.Name),
			formatFloat(v.Position.X), formatFloat(v.Position.Y), formatFloat(v.Position.Z))
		return true
	})

	fmt.Fprintln(bw, edgeHeader)
	g.Edges(func(e graph.Edge) bool {
		fmt.Fprintf(bw, "%d,%d,%d,%s\n", e.ID, e.From, e.To, formatFloat(e.Weight))
		return true
	})

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("write bgx: %w", err)
	}
	return nil
}

// ExportBGX writes g to a .bgx file at path.
// This is a convenience wrapper around [WriteBGX] for file-based output.
func ExportBGX(g *graph.Graph, path string) error {
	return export(path, func(w io.Writer) error { return WriteBGX(g, w) })
}

// WriteJSON encodes g as a node-link JSON document and writes it to w.
// The output can be re-imported with [ReadJSON].
func WriteJSON(g *graph.Graph, w io.Writer) error {
	directed := g.Directed()
	out := document{
		Directed: &directed,
		Nodes:    make([]node, 0, g.VertexCount()),
		Edges:    make([]edge, 0, g.EdgeCount()),
	}
	g.Vertices(func(v graph.Vertex) bool {
		name := v.Name
		out.Nodes = append(out.Nodes, node{
			ID:    v.ID,
			Name:  &name,
			Color: v.Color,
			X:     v.Position.X,
			Y:     v.Position.Y,
			Z:     v.Position.Z,
		})
		return true
	})
	g.Edges(func(e graph.Edge) bool {
		weight := e.Weight
		out.Edges = append(out.Edges, edge{ID: e.ID, From: e.From, To: e.To, Weight: &weight})
		return true
	})

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ExportJSON writes g to a JSON file at path.
func ExportJSON(g *graph.Graph, path string) error {
	return export(path, func(w io.Writer) error { return WriteJSON(g, w) })
}

func export(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
