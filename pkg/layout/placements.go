package layout

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/matzehuels/babelgraph/pkg/graph"
)

// spiralWraps is the number of full turns the spiral makes.
const spiralWraps = 2

// maxLayers is the number of rows used by [LayersByGroup].
const maxLayers = 5

// Circle places the vertices evenly on a circle of the given radius in the
// z = 0 plane. The i-th vertex in id order sits at angle i·2π/N.
func Circle(g *graph.Graph, radius float64) {
	ids := g.VertexIDs()
	step := 2 * math.Pi / float64(len(ids))
	for i, id := range ids {
		angle := step * float64(i)
		g.SetPosition(id, r3.Vec{X: radius * math.Cos(angle), Y: radius * math.Sin(angle)})
	}
}

// Spiral places the vertices on a rising spiral of two turns. Angle and
// distance from the axis grow linearly with the ordinal i; z climbs from
// -radius in steps of 2·radius/N.
func Spiral(g *graph.Graph, radius float64) {
	ids := g.VertexIDs()
	n := float64(len(ids))
	step := spiralWraps * 2 * math.Pi / n
	radStep := radius / (1.1 * n)
	zStep := 2 * radius / n
	for i, id := range ids {
		fi := float64(i)
		angle := step * fi
		g.SetPosition(id, r3.Vec{
			X: fi * radStep * math.Cos(angle),
			Y: fi * radStep * math.Sin(angle),
			Z: -radius + fi*zStep,
		})
	}
}

// Sphere spreads the vertices over a sphere using a ceil(√N) × ceil(√N)
// grid of polar and azimuthal steps (π/√N and 2π/√N). The azimuth keeps
// advancing across rows, which staggers consecutive rings.
func Sphere(g *graph.Graph, radius float64) {
	ids := g.VertexIDs()
	if len(ids) == 0 {
		return
	}
	root := math.Sqrt(float64(len(ids)))
	dTheta := math.Pi / root
	dPhi := 2 * math.Pi / root
	steps := int(math.Ceil(root))

	theta, phi := 0.0, 0.0
	next := 0
	for range steps {
		for range steps {
			if next == len(ids) {
				break
			}
			phi += dPhi
			g.SetPosition(ids[next], r3.Vec{
				X: radius * math.Sin(theta) * math.Cos(phi),
				Y: radius * math.Sin(theta) * math.Sin(phi),
				Z: radius * math.Cos(theta),
			})
			next++
		}
		theta += dTheta
	}
}

// LayersByGroup arranges vertices in horizontal rows by color: color c goes
// to row min(c, 4), so colors four and up share the last row. Within a row
// vertices advance along x in id order and the row is centered on x = 0.
// Rows are yStep = 2·xStep apart, with xStep = radius/(2·nodeSize·N).
func LayersByGroup(g *graph.Graph, radius, nodeSize float64) {
	ids := g.VertexIDs()
	if len(ids) == 0 {
		return
	}
	xStep := radius / (2 * nodeSize * float64(len(ids)))
	yStep := 2 * xStep

	var count, next [maxLayers]float64
	for _, id := range ids {
		count[layerOf(g.Color(id))]++
	}
	for i := range next {
		next[i] = -xStep * count[i] / 2
	}
	for _, id := range ids {
		layer := layerOf(g.Color(id))
		g.SetPosition(id, r3.Vec{X: next[layer], Y: float64(layer) * yStep})
		next[layer] += xStep
	}
}

func layerOf(color int) int {
	return max(0, min(color, maxLayers-1))
}
