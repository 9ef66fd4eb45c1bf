package graph

import (
	"slices"

	"gonum.org/v1/gonum/spatial/r3"
)

// ValidVertex reports whether a vertex with the given id exists.
func (g *Graph) ValidVertex(id int) bool {
	_, ok := g.vertices.Get(id)
	return ok
}

// ValidEdge reports whether an edge with the given id exists.
func (g *Graph) ValidEdge(id int) bool {
	_, ok := g.edges.Get(id)
	return ok
}

// Vertex returns a snapshot of the vertex with the given id.
func (g *Graph) Vertex(id int) (Vertex, bool) {
	v, ok := g.vertices.Get(id)
	if !ok {
		return Vertex{}, false
	}
	return v.Vertex, true
}

// Edge returns a snapshot of the edge with the given id.
func (g *Graph) Edge(id int) (Edge, bool) {
	e, ok := g.edges.Get(id)
	if !ok {
		return Edge{}, false
	}
	return *e, true
}

// Name returns the vertex name, or "" for an unknown id.
func (g *Graph) Name(id int) string {
	v, _ := g.Vertex(id)
	return v.Name
}

// Color returns the vertex color/group tag, or -1 for an unknown id.
func (g *Graph) Color(id int) int {
	v, ok := g.Vertex(id)
	if !ok {
		return -1
	}
	return v.Color
}

// Position returns the vertex position, or the origin for an unknown id.
func (g *Graph) Position(id int) r3.Vec {
	v, _ := g.Vertex(id)
	return v.Position
}

// Endpoints returns the positions of an edge's from and to vertices.
func (g *Graph) Endpoints(edgeID int) (from, to r3.Vec, ok bool) {
	e, ok := g.edges.Get(edgeID)
	if !ok {
		return r3.Vec{}, r3.Vec{}, false
	}
	return g.Position(e.From), g.Position(e.To), true
}

// InDegree returns the number of edges ending at the vertex (0 if unknown).
func (g *Graph) InDegree(id int) int {
	v, ok := g.vertices.Get(id)
	if !ok {
		return 0
	}
	return v.in.Len()
}

// OutDegree returns the number of edges starting at the vertex (0 if unknown).
func (g *Graph) OutDegree(id int) int {
	v, ok := g.vertices.Get(id)
	if !ok {
		return 0
	}
	return v.out.Len()
}

// Degree returns InDegree + OutDegree. In an undirected graph every
// connection therefore counts twice.
func (g *Graph) Degree(id int) int { return g.InDegree(id) + g.OutDegree(id) }

// InNeighbors returns the sources of the vertex's incoming edges, ordered by
// edge id. Returns nil for an unknown id.
func (g *Graph) InNeighbors(id int) []int {
	v, ok := g.vertices.Get(id)
	if !ok {
		return nil
	}
	var out []int
	v.in.Scan(func(eid int) bool {
		e, _ := g.edges.Get(eid)
		out = append(out, e.From)
		return true
	})
	return out
}

// OutNeighbors returns the targets of the vertex's outgoing edges, ordered by
// edge id. Returns nil for an unknown id.
func (g *Graph) OutNeighbors(id int) []int {
	v, ok := g.vertices.Get(id)
	if !ok {
		return nil
	}
	var out []int
	v.out.Scan(func(eid int) bool {
		e, _ := g.edges.Get(eid)
		out = append(out, e.To)
		return true
	})
	return out
}

// Neighbors returns the in-neighbors followed by any out-neighbors not
// already listed.
func (g *Graph) Neighbors(id int) []int {
	all := g.InNeighbors(id)
	for _, n := range g.OutNeighbors(id) {
		if !slices.Contains(all, n) {
			all = append(all, n)
		}
	}
	return all
}

// FromToConnected reports whether an edge from u to v exists.
func (g *Graph) FromToConnected(u, v int) bool {
	return g.EdgeID(u, v) >= 0
}

// Connected reports whether u and v are connected in either direction.
func (g *Graph) Connected(u, v int) bool {
	return g.FromToConnected(u, v) || g.FromToConnected(v, u)
}

// EdgeID returns the id of the u->v edge, or -1 if there is none.
func (g *Graph) EdgeID(u, v int) int {
	src, ok := g.vertices.Get(u)
	if !ok {
		return -1
	}
	found := -1
	src.out.Scan(func(eid int) bool {
		if e, _ := g.edges.Get(eid); e.To == v {
			found = eid
			return false
		}
		return true
	})
	return found
}

// Weight returns the weight of the u->v edge, or 0 if there is none.
func (g *Graph) Weight(u, v int) float64 {
	e, ok := g.edges.Get(g.EdgeID(u, v))
	if !ok {
		return 0
	}
	return e.Weight
}

// VertexIDs returns all vertex ids in ascending order.
func (g *Graph) VertexIDs() []int {
	ids := make([]int, 0, g.vertices.Len())
	g.vertices.Scan(func(id int, _ *vertex) bool {
		ids = append(ids, id)
		return true
	})
	return ids
}

// EdgeIDs returns all edge ids in ascending order.
func (g *Graph) EdgeIDs() []int {
	ids := make([]int, 0, g.edges.Len())
	g.edges.Scan(func(id int, _ *Edge) bool {
		ids = append(ids, id)
		return true
	})
	return ids
}

// Vertices calls fn for every vertex in ascending id order until fn
// returns false.
func (g *Graph) Vertices(fn func(Vertex) bool) {
	g.vertices.Scan(func(_ int, v *vertex) bool { return fn(v.Vertex) })
}

// Edges calls fn for every edge record in ascending id order until fn
// returns false.
func (g *Graph) Edges(fn func(Edge) bool) {
	g.edges.Scan(func(_ int, e *Edge) bool { return fn(*e) })
}
