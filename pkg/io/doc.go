// Package io reads and writes graphs in the .bgx text format and in a
// node-link JSON format.
//
// # BGX Format
//
// A .bgx file has two sections in fixed order, one record per line and
// comma-separated fields:
//
//	#VERTICES
//	<id>,<color>,<name>,<x>,<y>,<z>
//	...
//	#EDGES
//	<id>,<from>,<to>,<weight>
//	...
//
// The file does not record whether the graph was undirected; an undirected
// graph is saved as its reciprocal edge records and loads back as a directed
// graph holding both records.
//
// # Reading
//
// [ReadBGX] and [ImportBGX] are lenient. Each row that cannot be used
// (wrong field count, unparsable number, unknown endpoint, duplicate id,
// self-loop) is logged and skipped, and the load carries on. If the first
// line is not exactly "#VERTICES" the vertex section is skipped. After the
// load both id counters sit one past the largest id read, so later
// mutations never reuse an id from the file.
//
// The graph is always returned. When rows were skipped the error has code
// [errors.ErrCodeInvalidFormat] and [errors.Lines] lists the offending lines:
//
//	g, err := io.ImportBGX("lattice.bgx")
//	for _, le := range errors.Lines(err) {
//	    fmt.Println(le.Line, le.Reason)
//	}
//
// # Writing
//
// [WriteBGX] and [ExportBGX] write every vertex then every edge in ascending
// id order. Floats use the shortest representation that reads back to the
// same value. Names cannot contain commas in this format; they are written
// with commas replaced by spaces, and an empty name is written as a single
// space.
//
// # JSON Format
//
// [WriteJSON] and [ReadJSON] use a node-link document for interchange with
// other tools:
//
//	{
//	  "directed": true,
//	  "nodes": [{"id": 0, "name": "a", "color": 2, "x": 0.1, "y": 0, "z": 0}],
//	  "edges": [{"id": 0, "from": 0, "to": 1, "weight": 1}]
//	}
//
// Unlike .bgx, JSON keeps the directedness flag. [ReadJSON] is strict and
// fails on the first bad node or edge.
//
// [errors.ErrCodeInvalidFormat]: github.com/matzehuels/babelgraph/pkg/errors.ErrCodeInvalidFormat
// [errors.Lines]: github.com/matzehuels/babelgraph/pkg/errors.Lines
package io
