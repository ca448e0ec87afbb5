package material

import (
	"github.com/df07/go-portable-raytracer/pkg/core"
	"github.com/df07/go-portable-raytracer/pkg/numeric"
)

// ColorSourceKind identifies how a ColorSource computes its color
type ColorSourceKind uint8

const (
	SourceSolid ColorSourceKind = iota
	SourceChecker
	SourceNoise
)

// ColorSource provides spatially-varying colors for materials. Like materials and
// primitives it is a closed set of variants evaluated with one switch.
type ColorSource struct {
	Kind  ColorSourceKind
	Color core.Vec3 // Solid color, or the even cells of a checker

	Odd       core.Vec3    // Checker: color of the odd cells
	Frequency numeric.Real // Checker: cells per 2π world units. Noise: stripe scale

	Noise *Perlin // Noise: shared read-only tables
}

// NewSolidColor creates a new solid color source
func NewSolidColor(color core.Vec3) ColorSource {
	return ColorSource{Kind: SourceSolid, Color: color}
}

// Evaluate returns color at given UV coordinates and 3D point.
// UV is used by image-style sources, point by procedural ones.
func (c *ColorSource) Evaluate(uv core.Vec2, point core.Vec3) core.Vec3 {
	switch c.Kind {
	case SourceChecker:
		return c.evaluateChecker(point)
	case SourceNoise:
		return c.evaluateNoise(point)
	default:
		return c.Color
	}
}

// IsFinite reports whether every color the source can produce is finite
func (c *ColorSource) IsFinite() bool {
	return c.Color.IsFinite() && c.Odd.IsFinite() && numeric.IsFinite(c.Frequency)
}
