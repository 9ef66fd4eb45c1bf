package layout

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

var (
	// ErrInvalidBounds is returned when a bound's minimum exceeds its maximum.
	ErrInvalidBounds = errors.New("invalid bounds")

	// ErrDegenerateBounds is returned by force-directed layouts when the box
	// has no area to spread vertices over.
	ErrDegenerateBounds = errors.New("bounds have no usable extent")
)

// Bounds is an axis-aligned box. A box whose z extent is zero is treated as
// a 2D drawing area.
type Bounds struct {
	Min r3.Vec `json:"min"`
	Max r3.Vec `json:"max"`
}

// DefaultBounds returns the cube [-1, 1]³.
func DefaultBounds() Bounds {
	return Bounds{Min: r3.Vec{X: -1, Y: -1, Z: -1}, Max: r3.Vec{X: 1, Y: 1, Z: 1}}
}

// Validate checks that Min <= Max on every axis.
func (b Bounds) Validate() error {
	if b.Min.X > b.Max.X || b.Min.Y > b.Max.Y || b.Min.Z > b.Max.Z {
		return fmt.Errorf("%w: min %v exceeds max %v", ErrInvalidBounds, b.Min, b.Max)
	}
	return nil
}

// Size returns the extent along each axis.
func (b Bounds) Size() r3.Vec { return r3.Sub(b.Max, b.Min) }

// Largest returns the largest extent of the box.
func (b Bounds) Largest() float64 {
	s := b.Size()
	return math.Max(s.X, math.Max(s.Y, s.Z))
}

// Is2D reports whether the box is flat along z.
func (b Bounds) Is2D() bool { return b.Max.Z == b.Min.Z }

// Clamp returns p moved onto the nearest point inside the box.
func (b Bounds) Clamp(p r3.Vec) r3.Vec {
	return r3.Vec{
		X: clamp(p.X, b.Min.X, b.Max.X),
		Y: clamp(p.Y, b.Min.Y, b.Max.Y),
		Z: clamp(p.Z, b.Min.Z, b.Max.Z),
	}
}

// Contains reports whether p lies inside the box, borders included.
func (b Bounds) Contains(p r3.Vec) bool {
	return b.Clamp(p) == p
}

func clamp(v, lo, hi float64) float64 {
	return math.Min(hi, math.Max(lo, v))
}
