package material

import (
	"github.com/df07/go-portable-raytracer/pkg/core"
	"github.com/df07/go-portable-raytracer/pkg/numeric"
)

// NewCheckerTexture creates a solid 3D checker pattern. The sign of
// sin(fx)·sin(fy)·sin(fz) selects the cell color, so the pattern wraps
// any surface without texture coordinates.
func NewCheckerTexture(frequency numeric.Real, even, odd core.Vec3) ColorSource {
	return ColorSource{
		Kind:      SourceChecker,
		Color:     even,
		Odd:       odd,
		Frequency: frequency,
	}
}

func (c *ColorSource) evaluateChecker(point core.Vec3) core.Vec3 {
	f := c.Frequency
	sines := numeric.Sin(f*point.X) * numeric.Sin(f*point.Y) * numeric.Sin(f*point.Z)
	if sines < 0 {
		return c.Odd
	}
	return c.Color
}
