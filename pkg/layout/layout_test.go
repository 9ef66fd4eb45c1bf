package layout

import (
	"math"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/matzehuels/babelgraph/pkg/generate"
	"github.com/matzehuels/babelgraph/pkg/graph"
)

const eps = 1e-9

func assertVec(t *testing.T, want, got r3.Vec, msgAndArgs ...any) {
	t.Helper()
	assert.InDelta(t, want.X, got.X, eps, msgAndArgs...)
	assert.InDelta(t, want.Y, got.Y, eps, msgAndArgs...)
	assert.InDelta(t, want.Z, got.Z, eps, msgAndArgs...)
}

func finite(v r3.Vec) bool {
	for _, c := range []float64{v.X, v.Y, v.Z} {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return false
		}
	}
	return true
}

func TestBounds(t *testing.T) {
	b := Bounds{Min: r3.Vec{X: -1, Y: -2, Z: 0}, Max: r3.Vec{X: 1, Y: 2, Z: 0}}

	require.NoError(t, b.Validate())
	assert.Equal(t, 4.0, b.Largest())
	assert.True(t, b.Is2D())
	assert.False(t, DefaultBounds().Is2D())
	assert.Equal(t, r3.Vec{X: 1, Y: -2, Z: 0}, b.Clamp(r3.Vec{X: 5, Y: -7, Z: 3}))
	assert.True(t, b.Contains(r3.Vec{X: 0.5, Y: 1}))
	assert.False(t, b.Contains(r3.Vec{X: 0.5, Y: 1, Z: 0.1}))

	bad := Bounds{Min: r3.Vec{X: 1}, Max: r3.Vec{X: -1}}
	assert.ErrorIs(t, bad.Validate(), ErrInvalidBounds)
}

func TestRandomStaysInBounds(t *testing.T) {
	g, err := generate.Empty(50)
	require.NoError(t, err)
	b := Bounds{Min: r3.Vec{X: 2, Y: -3, Z: 0}, Max: r3.Vec{X: 4, Y: -1, Z: 10}}

	Random(g, rand.New(rand.NewPCG(1, 2)), b)
	g.Vertices(func(v graph.Vertex) bool {
		assert.True(t, b.Contains(v.Position), "vertex %d at %v", v.ID, v.Position)
		return true
	})

	other, _ := generate.Empty(50)
	Random(other, rand.New(rand.NewPCG(1, 2)), b)
	assert.Equal(t, g.Position(17), other.Position(17), "same seed, same layout")
}

func TestRandomVertex(t *testing.T) {
	g, _ := generate.Empty(2)
	rng := rand.New(rand.NewPCG(3, 3))
	b := DefaultBounds()

	require.NoError(t, RandomVertex(g, rng, 1, b))
	assert.Equal(t, r3.Vec{}, g.Position(0), "other vertices untouched")
	assert.True(t, b.Contains(g.Position(1)))
	assert.ErrorIs(t, RandomVertex(g, rng, 9, b), graph.ErrUnknownVertex)
}

func TestCircle(t *testing.T) {
	g, _ := generate.Empty(4)
	Circle(g, 2)

	assertVec(t, r3.Vec{X: 2}, g.Position(0))
	assertVec(t, r3.Vec{Y: 2}, g.Position(1))
	assertVec(t, r3.Vec{X: -2}, g.Position(2))
	assertVec(t, r3.Vec{Y: -2}, g.Position(3))
}

func TestCircleUsesOrdinalNotID(t *testing.T) {
	g, _ := generate.Empty(3)
	require.NoError(t, g.RemoveVertex(0))
	Circle(g, 1)

	// Two vertices left: ids 1 and 2 sit opposite each other.
	assertVec(t, r3.Vec{X: 1}, g.Position(1))
	assertVec(t, r3.Vec{X: -1}, g.Position(2))
}

func TestSpiral(t *testing.T) {
	g, _ := generate.Empty(4)
	Spiral(g, 1)

	assertVec(t, r3.Vec{Z: -1}, g.Position(0))
	for i := range 4 {
		assert.InDelta(t, -1+0.5*float64(i), g.Position(i).Z, eps, "z of %d", i)
		want := float64(i) / (1.1 * 4)
		assert.InDelta(t, want, math.Hypot(g.Position(i).X, g.Position(i).Y), eps, "radius of %d", i)
	}
}

func TestSphere(t *testing.T) {
	g, _ := generate.Empty(10)
	Sphere(g, 3)

	assertVec(t, r3.Vec{Z: 3}, g.Position(0), "first vertex sits on the pole")
	g.Vertices(func(v graph.Vertex) bool {
		assert.InDelta(t, 3, r3.Norm(v.Position), 1e-9, "vertex %d", v.ID)
		return true
	})
}

func TestLayersByGroup(t *testing.T) {
	g, _ := generate.Empty(4)
	g.SetColor(2, 1)
	g.SetColor(3, 5)

	// xStep = 2 / (2 * 0.05 * 4) = 5, yStep = 10.
	LayersByGroup(g, 2, 0.05)

	assertVec(t, r3.Vec{X: -5}, g.Position(0))
	assertVec(t, r3.Vec{X: 0}, g.Position(1))
	assertVec(t, r3.Vec{X: -2.5, Y: 10}, g.Position(2))
	assertVec(t, r3.Vec{X: -2.5, Y: 40}, g.Position(3), "colors past four share the last row")
}

func TestPlacementsOnEmptyGraph(t *testing.T) {
	g := graph.New()
	assert.NotPanics(t, func() {
		Circle(g, 1)
		Spiral(g, 1)
		Sphere(g, 1)
		LayersByGroup(g, 1, 0.05)
		SelfOrganize(g, 0.5, 0.05, 0.1)
	})
	assert.NoError(t, FruchtermanReingold(g, DefaultBounds()))
}

func TestSelfOrganizeContractsLongEdge(t *testing.T) {
	g, _ := generate.Empty(2)
	g.AddEdge(0, 1)
	g.SetPosition(1, r3.Vec{X: 1})

	SelfOrganize(g, DefaultForce, DefaultMin, DefaultMax)

	d := r3.Norm(r3.Sub(g.Position(1), g.Position(0)))
	assert.Less(t, d, 1.0)
	assert.Greater(t, d, 0.0)
	// Both passes are nearly symmetric, so the midpoint barely moves.
	mid := r3.Scale(0.5, r3.Add(g.Position(0), g.Position(1)))
	assert.InDelta(t, 0.5, mid.X, 1e-3)
}

func TestSelfOrganizeRepels(t *testing.T) {
	g, _ := generate.Empty(2)
	g.SetPosition(1, r3.Vec{X: 0.1})

	SelfOrganize(g, 1, DefaultMin, DefaultMax)

	assert.Greater(t, g.Position(1).X-g.Position(0).X, 0.1)
}

func TestSelfOrganizeDegenerateInputs(t *testing.T) {
	g, err := generate.Complete(4)
	require.NoError(t, err)
	g.SetPosition(3, r3.Vec{X: 0.2})

	for _, args := range [][3]float64{
		{0, 0.05, 0.1},   // force clamped up
		{7, 0.05, 0.1},   // force clamped down
		{0.5, 0.1, 0.1},  // empty range skips the edge pass
		{0.5, 0.2, 0.05}, // swapped range
	} {
		SelfOrganize(g, args[0], args[1], args[2])
		g.Vertices(func(v graph.Vertex) bool {
			assert.True(t, finite(v.Position), "args %v vertex %d at %v", args, v.ID, v.Position)
			return true
		})
	}
}

func TestArranger(t *testing.T) {
	g, _ := generate.Empty(2)
	g.SetPosition(1, r3.Vec{X: 0.1})
	a := NewArranger()

	assert.False(t, a.Enabled)
	assert.Equal(t, DefaultInterval, a.Interval)
	assert.False(t, a.Tick(g), "disabled arranger must not move anything")
	assert.Equal(t, r3.Vec{}, g.Position(0))

	a.Enabled = true
	assert.True(t, a.Tick(g))
	assert.NotEqual(t, r3.Vec{}, g.Position(0))

	assert.False(t, a.Tick(graph.New()), "nothing to move")
}

func TestArrangerSetDelay(t *testing.T) {
	cases := []struct {
		slider int
		want   time.Duration
	}{
		{1, 1000 * time.Millisecond},
		{500, 501 * time.Millisecond},
		{1000, time.Millisecond},
		{-3, 1000 * time.Millisecond},
		{5000, time.Millisecond},
	}
	a := NewArranger()
	for _, tc := range cases {
		a.SetDelay(tc.slider)
		assert.Equal(t, tc.want, a.Interval, "slider %d", tc.slider)
	}

	a.SetDelay(700)
	assert.Equal(t, 700, a.Slider())
	assert.Equal(t, 1, NewArranger().Slider(), "one second is the slowest setting")
	a.Interval = time.Hour
	assert.Equal(t, 1, a.Slider())
}

func TestFruchtermanReingoldStaysInBounds(t *testing.T) {
	g, err := generate.KRegular(12, 4)
	require.NoError(t, err)
	b := DefaultBounds()
	Random(g, rand.New(rand.NewPCG(5, 5)), b)

	require.NoError(t, FruchtermanReingold(g, b))
	g.Vertices(func(v graph.Vertex) bool {
		assert.True(t, finite(v.Position), "vertex %d", v.ID)
		assert.True(t, b.Contains(v.Position), "vertex %d at %v", v.ID, v.Position)
		return true
	})
}

func TestFruchtermanReingold2D(t *testing.T) {
	g, err := generate.BinaryTree(7)
	require.NoError(t, err)
	b := Bounds{Min: r3.Vec{X: -1, Y: -1}, Max: r3.Vec{X: 1, Y: 1}}
	Random(g, rand.New(rand.NewPCG(8, 8)), b)

	require.NoError(t, FruchtermanReingold(g, b, WithFRIterations(20), WithCooling(0.9)))
	g.Vertices(func(v graph.Vertex) bool {
		assert.Zero(t, v.Position.Z, "vertex %d left the plane", v.ID)
		return true
	})
}

func TestFruchtermanReingoldBadBounds(t *testing.T) {
	g, _ := generate.Empty(3)

	flat := Bounds{Min: r3.Vec{X: -1}, Max: r3.Vec{X: 1}}
	assert.ErrorIs(t, FruchtermanReingold(g, flat), ErrDegenerateBounds)

	inverted := Bounds{Min: r3.Vec{X: 1, Y: 1, Z: 1}, Max: r3.Vec{}}
	assert.ErrorIs(t, FruchtermanReingold(g, inverted), ErrInvalidBounds)

	assert.Panics(t, func() { WithCooling(0) })
	assert.Panics(t, func() { WithFRIterations(-1) })
}
