package layout

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/matzehuels/babelgraph/pkg/graph"
)

// Fruchterman-Reingold defaults.
const (
	DefaultFRIterations = 100
	DefaultCooling      = 0.98
)

// FROption customizes [FruchtermanReingold].
type FROption func(*frConfig)

type frConfig struct {
	iterations int
	cooling    float64
}

// WithFRIterations sets the number of iterations. Panics on n < 0.
func WithFRIterations(n int) FROption {
	if n < 0 {
		panic("layout: WithFRIterations(n<0)")
	}
	return func(c *frConfig) { c.iterations = n }
}

// WithCooling sets the factor applied to the temperature after each
// iteration. Panics outside (0, 1].
func WithCooling(f float64) FROption {
	if f <= 0 || f > 1 {
		panic("layout: WithCooling(f out of (0,1])")
	}
	return func(c *frConfig) { c.cooling = f }
}

// FruchtermanReingold runs a force-directed layout inside b, starting from
// the current positions.
//
// The characteristic length is k = ∛(volume/N), or √(area/N) when b is
// flat along z. Each iteration every vertex is repelled by every other
// vertex closer than the largest extent of b with force k²/d, and the two
// endpoints of every edge record attract each other with force d²/k. The
// summed displacement is capped at the temperature, which starts at the
// largest extent and is multiplied by the cooling factor after every
// iteration, and the result is clamped to b.
//
// The layout can settle in local minima where vertices overlap; coincident
// vertices exert no repulsion on each other.
func FruchtermanReingold(g *graph.Graph, b Bounds, opts ...FROption) error {
	cfg := frConfig{iterations: DefaultFRIterations, cooling: DefaultCooling}
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := b.Validate(); err != nil {
		return err
	}
	ids := g.VertexIDs()
	if len(ids) == 0 {
		return nil
	}

	n := float64(len(ids))
	s := b.Size()
	var k float64
	if b.Is2D() {
		k = math.Sqrt(s.X * s.Y / n)
	} else {
		k = math.Cbrt(s.X * s.Y * s.Z / n)
	}
	if k == 0 {
		return fmt.Errorf("fruchterman-reingold: %w: size %v", ErrDegenerateBounds, s)
	}

	zone := b.Largest()
	t := zone
	pos := make(map[int]r3.Vec, len(ids))
	for _, id := range ids {
		pos[id] = g.Position(id)
	}

	for range cfg.iterations {
		disp := make(map[int]r3.Vec, len(ids))

		for _, u := range ids {
			for _, v := range ids {
				if u == v {
					continue
				}
				diff := r3.Sub(pos[v], pos[u])
				d := r3.Norm(diff)
				if d == 0 || d >= zone {
					continue
				}
				// Unit vector times -k²/d pushes u away from v.
				disp[u] = r3.Add(disp[u], r3.Scale(-k*k/(d*d), diff))
			}
		}

		g.Edges(func(e graph.Edge) bool {
			diff := r3.Sub(pos[e.To], pos[e.From])
			d := r3.Norm(diff)
			if d == 0 {
				return true
			}
			pull := r3.Scale(d/k, diff) // (d²/k) along the unit vector
			disp[e.From] = r3.Add(disp[e.From], pull)
			disp[e.To] = r3.Sub(disp[e.To], pull)
			return true
		})

		for _, id := range ids {
			step := disp[id]
			if l := r3.Norm(step); l > t {
				step = r3.Scale(t/l, step)
			}
			pos[id] = b.Clamp(r3.Add(pos[id], step))
		}
		t *= cfg.cooling
	}

	for _, id := range ids {
		g.SetPosition(id, pos[id])
	}
	return nil
}
