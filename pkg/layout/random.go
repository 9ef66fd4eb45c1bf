package layout

import (
	"math/rand/v2"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/matzehuels/babelgraph/pkg/graph"
)

// Random moves every vertex to a uniform random point inside b.
func Random(g *graph.Graph, rng *rand.Rand, b Bounds) {
	for _, id := range g.VertexIDs() {
		g.SetPosition(id, randomPoint(rng, b))
	}
}

// RandomVertex moves one vertex to a uniform random point inside b. It
// returns [graph.ErrUnknownVertex] for an unknown id.
func RandomVertex(g *graph.Graph, rng *rand.Rand, id int, b Bounds) error {
	if !g.ValidVertex(id) {
		return graph.ErrUnknownVertex
	}
	return g.SetPosition(id, randomPoint(rng, b))
}

func randomPoint(rng *rand.Rand, b Bounds) r3.Vec {
	s := b.Size()
	return r3.Vec{
		X: b.Min.X + rng.Float64()*s.X,
		Y: b.Min.Y + rng.Float64()*s.Y,
		Z: b.Min.Z + rng.Float64()*s.Z,
	}
}
