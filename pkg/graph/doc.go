// Package graph provides the mutable graph store at the center of babelgraph.
//
// A [Graph] owns a table of vertices and a table of edges, both keyed by integer
// ids that are assigned from monotonic counters and never reused. Vertices carry
// a display name, a color/group tag and a 3D position; edges carry a scalar
// weight. Adjacency is kept as ordered sets of edge ids on each vertex, so no
// entity ever holds a pointer to another.
//
// # Directedness
//
// A new graph is directed. [Graph.MakeUndirected] switches it to undirected mode
// for the rest of its lifetime: every logical connection is then stored as two
// reciprocal directed edge records, each with its own id.
//
// # Fail-soft contract
//
// Queries on unknown ids return sentinels (-1, 0, false, nil) instead of errors.
// Mutations return an error describing why nothing happened (unknown id,
// self-loop, duplicate edge), and leave the graph untouched. Callers that only
// care about the resulting graph can ignore those errors:
//
//	g := graph.New()
//	a, b := g.AddVertex("a"), g.AddVertex("b")
//	_, _ = g.AddEdge(a, b)
//	_, err := g.AddEdge(a, a) // ErrSelfLoop, graph unchanged
//
// Only caller programming errors (negative counts) are rejected with
// [ErrNegativeCount].
//
// # Ordering
//
// All iteration (ids, neighbor lists, [Graph.Vertices], [Graph.Edges]) is in
// ascending id order, which keeps layouts and analysis deterministic.
//
// # Concurrency
//
// A Graph is not safe for concurrent use. The engine assumes a single owner
// that serializes mutation, layout and analysis calls.
package graph
