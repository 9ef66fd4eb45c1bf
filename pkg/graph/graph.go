package graph

import (
	"errors"
	"fmt"

	"github.com/tidwall/btree"
	"gonum.org/v1/gonum/spatial/r3"
)

var (
	// ErrUnknownVertex is returned by mutations that reference a vertex id
	// that is not (or no longer) in the graph.
	ErrUnknownVertex = errors.New("unknown vertex")

	// ErrUnknownEdge is returned by mutations that reference an edge id or a
	// vertex pair with no connecting edge.
	ErrUnknownEdge = errors.New("unknown edge")

	// ErrSelfLoop is returned by [Graph.AddEdge] when from == to.
	ErrSelfLoop = errors.New("self-loop edges are not allowed")

	// ErrDuplicateEdge is returned by [Graph.AddEdge] when the pair is already
	// connected: from->to in a directed graph, either direction otherwise.
	ErrDuplicateEdge = errors.New("edge already exists")

	// ErrDuplicateID is returned by [Graph.RestoreVertex] and
	// [Graph.RestoreEdge] when the explicit id is already taken.
	ErrDuplicateID = errors.New("duplicate id")

	// ErrNegativeCount is returned when a caller asks for a negative number of
	// vertices. This is a programming error rather than a soft failure.
	ErrNegativeCount = errors.New("count must not be negative")

	// ErrBrokenAdjacency is returned by [Graph.Validate] when a vertex's
	// adjacency sets are not the inverse projection of the edge table.
	ErrBrokenAdjacency = errors.New("adjacency does not match edge table")
)

// DefaultName is the display name given to vertices created without one.
const DefaultName = " "

// DefaultWeight is the weight assigned to every new edge.
const DefaultWeight = 1.0

// Vertex is a read-only snapshot of a vertex.
type Vertex struct {
	ID       int
	Name     string
	Color    int    // group tag; 0-7 by convention
	Position r3.Vec // 3D position
}

// Edge is a read-only snapshot of a directed edge record.
type Edge struct {
	ID     int
	From   int
	To     int
	Weight float64
}

type vertex struct {
	Vertex
	in  btree.Set[int] // ids of edges ending here
	out btree.Set[int] // ids of edges starting here
}

// Graph is a directed or undirected graph of named, colored, positioned
// vertices. The zero value is not usable; use [New].
type Graph struct {
	vertices   btree.Map[int, *vertex]
	edges      btree.Map[int, *Edge]
	undirected bool
	nextVertex int
	nextEdge   int
}

// New returns an empty directed graph with both id counters at zero.
func New() *Graph {
	return &Graph{}
}

// Directed reports whether the graph is still in directed mode.
func (g *Graph) Directed() bool { return !g.undirected }

// VertexCount returns the number of vertices.
func (g *Graph) VertexCount() int { return g.vertices.Len() }

// EdgeCount returns the number of directed edge records. An undirected
// connection counts twice.
func (g *Graph) EdgeCount() int { return g.edges.Len() }

// NextVertexID returns the id the next [Graph.AddVertex] call will assign.
func (g *Graph) NextVertexID() int { return g.nextVertex }

// NextEdgeID returns the id the next successful [Graph.AddEdge] call will assign.
func (g *Graph) NextEdgeID() int { return g.nextEdge }

// AddVertex adds a vertex and returns its id. The optional name defaults to
// [DefaultName]; the color is 0 and the position is the origin.
func (g *Graph) AddVertex(name ...string) int {
	id := g.nextVertex
	g.nextVertex++
	v := &vertex{Vertex: Vertex{ID: id, Name: DefaultName}}
	if len(name) > 0 {
		v.Name = name[0]
	}
	g.vertices.Set(id, v)
	return id
}

// AddVertices adds n blank vertices. It returns [ErrNegativeCount] for n < 0.
func (g *Graph) AddVertices(n int) error {
	if n < 0 {
		return fmt.Errorf("add %d vertices: %w", n, ErrNegativeCount)
	}
	for range n {
		g.AddVertex()
	}
	return nil
}

// RemoveVertex removes the vertex and every edge incident to it, in both
// directions. Returns [ErrUnknownVertex] if the id is not present.
func (g *Graph) RemoveVertex(id int) error {
	v, ok := g.vertices.Get(id)
	if !ok {
		return ErrUnknownVertex
	}
	for _, eid := range append(setKeys(&v.in), setKeys(&v.out)...) {
		g.unlink(eid)
	}
	g.vertices.Delete(id)
	return nil
}

// AddEdge connects from to to with weight [DefaultWeight] and returns the new
// edge id. In an undirected graph the reciprocal record is added as well,
// under the following id. On failure it returns -1 and one of
// [ErrUnknownVertex], [ErrSelfLoop] or [ErrDuplicateEdge].
func (g *Graph) AddEdge(from, to int) (int, error) {
	if !g.ValidVertex(from) || !g.ValidVertex(to) {
		return -1, ErrUnknownVertex
	}
	if from == to {
		return -1, ErrSelfLoop
	}
	if g.undirected && g.Connected(from, to) || g.FromToConnected(from, to) {
		return -1, ErrDuplicateEdge
	}
	id := g.link(from, to, DefaultWeight)
	if g.undirected {
		g.link(to, from, DefaultWeight)
	}
	return id, nil
}

// link inserts an edge record without checking invariants.
func (g *Graph) link(from, to int, weight float64) int {
	id := g.nextEdge
	g.nextEdge++
	g.insertEdge(&Edge{ID: id, From: from, To: to, Weight: weight})
	return id
}

func (g *Graph) insertEdge(e *Edge) {
	g.edges.Set(e.ID, e)
	src, _ := g.vertices.Get(e.From)
	dst, _ := g.vertices.Get(e.To)
	src.out.Insert(e.ID)
	dst.in.Insert(e.ID)
}

// unlink erases a single edge record and its adjacency entries.
func (g *Graph) unlink(id int) {
	e, ok := g.edges.Get(id)
	if !ok {
		return
	}
	if src, ok := g.vertices.Get(e.From); ok {
		src.out.Delete(id)
	}
	if dst, ok := g.vertices.Get(e.To); ok {
		dst.in.Delete(id)
	}
	g.edges.Delete(id)
}

// RemoveEdge removes the edge with the given id. In an undirected graph the
// reciprocal record is removed too. Returns [ErrUnknownEdge] if absent.
func (g *Graph) RemoveEdge(id int) error {
	e, ok := g.edges.Get(id)
	if !ok {
		return ErrUnknownEdge
	}
	from, to := e.From, e.To
	g.unlink(id)
	if g.undirected {
		if rid := g.EdgeID(to, from); rid >= 0 {
			g.unlink(rid)
		}
	}
	return nil
}

// RemoveEdgeBetween removes the from->to edge (and its reciprocal in an
// undirected graph). Returns [ErrUnknownEdge] if the pair is not connected.
func (g *Graph) RemoveEdgeBetween(from, to int) error {
	id := g.EdgeID(from, to)
	if id < 0 && g.undirected {
		id = g.EdgeID(to, from)
	}
	if id < 0 {
		return ErrUnknownEdge
	}
	return g.RemoveEdge(id)
}

// MakeUndirected switches the graph to undirected mode and adds the missing
// reciprocal edge for every existing edge. Calling it again adds nothing.
func (g *Graph) MakeUndirected() {
	g.undirected = true
	var missing []Edge
	g.edges.Scan(func(_ int, e *Edge) bool {
		if !g.FromToConnected(e.To, e.From) {
			missing = append(missing, *e)
		}
		return true
	})
	for _, e := range missing {
		g.link(e.To, e.From, DefaultWeight)
	}
}

// SetName renames a vertex.
func (g *Graph) SetName(id int, name string) error {
	v, ok := g.vertices.Get(id)
	if !ok {
		return ErrUnknownVertex
	}
	v.Name = name
	return nil
}

// SetColor sets a vertex's color/group tag.
func (g *Graph) SetColor(id, color int) error {
	v, ok := g.vertices.Get(id)
	if !ok {
		return ErrUnknownVertex
	}
	v.Color = color
	return nil
}

// SetPosition moves a vertex.
func (g *Graph) SetPosition(id int, p r3.Vec) error {
	v, ok := g.vertices.Get(id)
	if !ok {
		return ErrUnknownVertex
	}
	v.Position = p
	return nil
}

// SetWeight changes the weight of a single edge record.
func (g *Graph) SetWeight(edgeID int, w float64) error {
	e, ok := g.edges.Get(edgeID)
	if !ok {
		return ErrUnknownEdge
	}
	e.Weight = w
	return nil
}

// RestoreVertex inserts a vertex with an explicit id, as decoders do. The
// vertex counter is raised to id+1 if needed so later ids stay unique.
func (g *Graph) RestoreVertex(v Vertex) error {
	if v.ID < 0 {
		return fmt.Errorf("vertex %d: %w", v.ID, ErrNegativeCount)
	}
	if g.ValidVertex(v.ID) {
		return fmt.Errorf("vertex %d: %w", v.ID, ErrDuplicateID)
	}
	g.vertices.Set(v.ID, &vertex{Vertex: v})
	g.nextVertex = max(g.nextVertex, v.ID+1)
	return nil
}

// RestoreEdge inserts an edge with an explicit id between existing vertices.
// Self-loops and duplicate pairs are rejected exactly as in [Graph.AddEdge];
// the reciprocal record is never added implicitly. The edge counter is
// raised to id+1 if needed.
func (g *Graph) RestoreEdge(e Edge) error {
	switch {
	case e.ID < 0:
		return fmt.Errorf("edge %d: %w", e.ID, ErrNegativeCount)
	case g.ValidEdge(e.ID):
		return fmt.Errorf("edge %d: %w", e.ID, ErrDuplicateID)
	case !g.ValidVertex(e.From) || !g.ValidVertex(e.To):
		return fmt.Errorf("edge %d (%d->%d): %w", e.ID, e.From, e.To, ErrUnknownVertex)
	case e.From == e.To:
		return fmt.Errorf("edge %d: %w", e.ID, ErrSelfLoop)
	case g.FromToConnected(e.From, e.To):
		return fmt.Errorf("edge %d (%d->%d): %w", e.ID, e.From, e.To, ErrDuplicateEdge)
	}
	g.insertEdge(&e)
	g.nextEdge = max(g.nextEdge, e.ID+1)
	return nil
}

// Clone returns a deep copy of the graph, including its counters and mode.
func (g *Graph) Clone() *Graph {
	c := &Graph{undirected: g.undirected, nextVertex: g.nextVertex, nextEdge: g.nextEdge}
	g.vertices.Scan(func(id int, v *vertex) bool {
		c.vertices.Set(id, &vertex{Vertex: v.Vertex})
		return true
	})
	g.edges.Scan(func(_ int, e *Edge) bool {
		cp := *e
		c.insertEdge(&cp)
		return true
	})
	return c
}

// Validate checks that every vertex's adjacency sets are exactly the inverse
// projection of the edge table. A graph built only through this package's
// API always validates; the check exists for decoders and tests.
func (g *Graph) Validate() error {
	var err error
	g.vertices.Scan(func(id int, v *vertex) bool {
		v.out.Scan(func(eid int) bool {
			if e, ok := g.edges.Get(eid); !ok || e.From != id {
				err = fmt.Errorf("vertex %d out-edge %d: %w", id, eid, ErrBrokenAdjacency)
			}
			return err == nil
		})
		v.in.Scan(func(eid int) bool {
			if e, ok := g.edges.Get(eid); !ok || e.To != id {
				err = fmt.Errorf("vertex %d in-edge %d: %w", id, eid, ErrBrokenAdjacency)
			}
			return err == nil
		})
		return err == nil
	})
	if err != nil {
		return err
	}
	g.edges.Scan(func(eid int, e *Edge) bool {
		src, ok1 := g.vertices.Get(e.From)
		dst, ok2 := g.vertices.Get(e.To)
		if !ok1 || !ok2 || !src.out.Contains(eid) || !dst.in.Contains(eid) {
			err = fmt.Errorf("edge %d (%d->%d): %w", eid, e.From, e.To, ErrBrokenAdjacency)
		}
		return err == nil
	})
	return err
}

// setKeys copies an adjacency set into an ascending slice.
func setKeys(s *btree.Set[int]) []int {
	keys := make([]int, 0, s.Len())
	s.Scan(func(k int) bool {
		keys = append(keys, k)
		return true
	})
	return keys
}
