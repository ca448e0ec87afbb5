package material

import (
	"github.com/df07/go-portable-raytracer/pkg/core"
	"github.com/df07/go-portable-raytracer/pkg/numeric"
)

// NewMetal creates a new metal material. Fuzz is clamped to [0, 1].
func NewMetal(albedo core.Vec3, fuzz numeric.Real) Material {
	return Material{Kind: KindMetal, Albedo: NewSolidColor(albedo), Fuzz: numeric.Clamp(fuzz, 0, 1)}
}

func (m *Material) scatterMetal(rayIn core.Ray, hit *core.HitRecord, rng *numeric.Rand) (ScatterResult, bool) {
	reflected := rayIn.Direction.Normalize().Reflect(hit.Normal)

	// Add fuzziness by perturbing the reflection direction
	if m.Fuzz > 0 {
		reflected = reflected.Add(core.RandomInUnitSphere(rng).Multiply(m.Fuzz))
	}

	// Perturbed into the surface: absorbed
	if reflected.Dot(hit.Normal) <= 0 {
		return ScatterResult{}, false
	}

	return ScatterResult{
		Scattered:   scatteredRay(rayIn, hit, reflected),
		Attenuation: m.Albedo.Evaluate(hit.UV, hit.Point).Clamp(0, 1),
	}, true
}
