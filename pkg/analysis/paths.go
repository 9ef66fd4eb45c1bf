package analysis

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/matzehuels/babelgraph/pkg/graph"
)

// Distances is an all-pairs shortest-path matrix. Rows and columns follow
// ascending vertex id; unreachable pairs hold +Inf.
type Distances struct {
	ids   []int
	index map[int]int
	m     *mat.Dense // nil for an empty graph
}

// ShortestPaths runs Floyd-Warshall over g. The initial matrix holds the
// edge weight for every directed edge, 0 on the diagonal and +Inf elsewhere;
// it is then relaxed through every intermediate vertex in id order.
//
// Time O(V³), space O(V²).
func ShortestPaths(g *graph.Graph) *Distances {
	ids := g.VertexIDs()
	d := &Distances{ids: ids, index: make(map[int]int, len(ids))}
	for i, id := range ids {
		d.index[id] = i
	}
	n := len(ids)
	if n == 0 {
		return d
	}

	data := make([]float64, n*n)
	for i := range data {
		data[i] = math.Inf(1)
	}
	for i := range n {
		data[i*n+i] = 0
	}
	g.Edges(func(e graph.Edge) bool {
		data[d.index[e.From]*n+d.index[e.To]] = e.Weight
		return true
	})

	for k := range n {
		baseK := k * n
		for i := range n {
			ik := data[i*n+k]
			if math.IsInf(ik, 1) {
				continue
			}
			baseI := i * n
			for j := range n {
				kj := data[baseK+j]
				if math.IsInf(kj, 1) {
					continue
				}
				if cand := ik + kj; cand < data[baseI+j] {
					data[baseI+j] = cand
				}
			}
		}
	}

	d.m = mat.NewDense(n, n, data)
	return d
}

// Len returns the number of vertices covered.
func (d *Distances) Len() int { return len(d.ids) }

// IDs returns the vertex ids in matrix order.
func (d *Distances) IDs() []int { return d.ids }

// Index returns the matrix row of a vertex id, or -1 if it is not covered.
func (d *Distances) Index(id int) int {
	i, ok := d.index[id]
	if !ok {
		return -1
	}
	return i
}

// At returns the shortest distance from u to v, +Inf when v is unreachable
// or either id is unknown.
func (d *Distances) At(u, v int) float64 {
	i, j := d.Index(u), d.Index(v)
	if i < 0 || j < 0 {
		return math.Inf(1)
	}
	return d.m.At(i, j)
}

// reachable reports whether a distance counts as a real path. Distances of
// N or more are treated as unreachable, as with unit weights no simple path
// can be that long.
func (d *Distances) reachable(dist float64) bool {
	return dist < float64(len(d.ids))
}

// AveragePathLengths returns, per vertex, the row sum of its distances
// divided by N-1. A value of N or more (which includes any unreachable
// target) is reported as -1. A single-vertex graph reports 0.
func (d *Distances) AveragePathLengths() map[int]float64 {
	n := len(d.ids)
	out := make(map[int]float64, n)
	for i, id := range d.ids {
		if n == 1 {
			out[id] = 0
			continue
		}
		avg := floats.Sum(d.m.RawRowView(i)) / float64(n-1)
		if avg >= float64(n) {
			avg = -1
		}
		out[id] = avg
	}
	return out
}

// GraphAveragePathLength returns the sum of all distances divided by
// N(N-1), or -1 when that is N or more (a disconnected graph). Graphs with
// fewer than two vertices report 0.
func (d *Distances) GraphAveragePathLength() float64 {
	n := len(d.ids)
	if n < 2 {
		return 0
	}
	sum := 0.0
	for i := range n {
		sum += floats.Sum(d.m.RawRowView(i))
	}
	avg := sum / float64(n*(n-1))
	if avg >= float64(n) {
		return -1
	}
	return avg
}

// ClosenessCentrality returns, per vertex, the mean distance to the
// vertices it can actually reach, excluding itself. A vertex that reaches
// only itself reports 0.
func (d *Distances) ClosenessCentrality() map[int]float64 {
	out := make(map[int]float64, len(d.ids))
	for i, id := range d.ids {
		sum, count := 0.0, 0
		for _, dist := range d.m.RawRowView(i) {
			if d.reachable(dist) {
				sum += dist
				count++
			}
		}
		if count <= 1 {
			out[id] = 0
			continue
		}
		out[id] = sum / float64(count-1)
	}
	return out
}

// AveragePathLengths is shorthand for ShortestPaths(g).AveragePathLengths().
func AveragePathLengths(g *graph.Graph) map[int]float64 {
	return ShortestPaths(g).AveragePathLengths()
}

// GraphAveragePathLength is shorthand for ShortestPaths(g).GraphAveragePathLength().
func GraphAveragePathLength(g *graph.Graph) float64 {
	return ShortestPaths(g).GraphAveragePathLength()
}

// ClosenessCentrality is shorthand for ShortestPaths(g).ClosenessCentrality().
func ClosenessCentrality(g *graph.Graph) map[int]float64 {
	return ShortestPaths(g).ClosenessCentrality()
}
