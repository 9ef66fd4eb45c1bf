package layout

import (
	"time"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/matzehuels/babelgraph/pkg/graph"
)

// Relaxation defaults, matching the interactive auto-arrange mode.
const (
	DefaultForce    = 0.5
	DefaultMin      = 0.05
	DefaultMax      = 0.1
	DefaultInterval = time.Second
)

// minForce replaces non-positive force values.
const minForce = 0.001

// SelfOrganize performs one relaxation step and is meant to be called
// repeatedly.
//
// First every edge record pulls its endpoints together or pushes them
// apart: with v = to - from and r = |v|, both endpoints move by
// 0.5·a·v toward each other, where a = -(max - r) / (50·(max - min)). Edges
// longer than max contract and shorter ones stretch. When min >= max the
// range is empty and the edge pass is skipped.
//
// Then every vertex, in id order, is pushed away from every other vertex by
// an inverse-square term of strength 0.01·force². Positions update in
// place, so later vertices see earlier moves. Coincident vertices exert no
// force on each other.
//
// force is clamped to (0, 1]; non-positive values become 0.001.
func SelfOrganize(g *graph.Graph, force, min, max float64) {
	switch {
	case force > 1:
		force = 1
	case force <= 0:
		force = minForce
	}
	if min > max {
		min, max = max, min
	}

	if max > min {
		span := 100 * (max - min) / 2
		g.Edges(func(e graph.Edge) bool {
			from, to := g.Position(e.From), g.Position(e.To)
			v := r3.Sub(to, from)
			attraction := -(max - r3.Norm(v)) / span
			d := r3.Scale(0.5*attraction, v)
			g.SetPosition(e.From, r3.Add(from, d))
			g.SetPosition(e.To, r3.Sub(to, d))
			return true
		})
	}

	strength := 0.01 * force * force
	ids := g.VertexIDs()
	for _, self := range ids {
		p := g.Position(self)
		var d r3.Vec
		for _, other := range ids {
			if other == self {
				continue
			}
			v := r3.Sub(g.Position(other), p)
			r := r3.Norm(v)
			if r == 0 {
				continue
			}
			d = r3.Add(d, r3.Scale(-strength/(r*r*r), v))
		}
		g.SetPosition(self, r3.Add(p, d))
	}
}

// Arranger is the periodic auto-arrange driver. It owns no timer: the
// caller invokes [Arranger.Tick] on its own schedule, typically every
// Interval while Enabled is set.
type Arranger struct {
	Enabled  bool
	Force    float64
	Min      float64
	Max      float64
	Interval time.Duration
}

// NewArranger returns a disabled arranger with the default parameters.
func NewArranger() *Arranger {
	return &Arranger{
		Force:    DefaultForce,
		Min:      DefaultMin,
		Max:      DefaultMax,
		Interval: DefaultInterval,
	}
}

// Tick runs one [SelfOrganize] step when the arranger is enabled and the
// graph has vertices. It reports whether a step ran.
func (a *Arranger) Tick(g *graph.Graph) bool {
	if !a.Enabled || g.VertexCount() == 0 {
		return false
	}
	SelfOrganize(g, a.Force, a.Min, a.Max)
	return true
}

// SetDelay maps a speed slider in [1, 1000] to the tick interval: position
// s gives 1001-s milliseconds, so the far right ticks every millisecond.
// Out-of-range values are clamped.
func (a *Arranger) SetDelay(slider int) {
	slider = max(1, min(slider, 1000))
	a.Interval = time.Duration(1001-slider) * time.Millisecond
}

// Slider is the inverse of [Arranger.SetDelay]: the slider position that
// produces the current interval, clamped to [1, 1000].
func (a *Arranger) Slider() int {
	ms := int(a.Interval / time.Millisecond)
	return max(1, min(1001-ms, 1000))
}
