package material

import (
	"github.com/df07/go-portable-raytracer/pkg/core"
	"github.com/df07/go-portable-raytracer/pkg/numeric"
)

// NewLambertian creates a new lambertian material with solid color
func NewLambertian(albedo core.Vec3) Material {
	return Material{Kind: KindLambertian, Albedo: NewSolidColor(albedo)}
}

// NewTexturedLambertian creates a new lambertian material with texture
func NewTexturedLambertian(albedo ColorSource) Material {
	return Material{Kind: KindLambertian, Albedo: albedo}
}

// scatterLambertian offsets the normal by a random unit vector, which gives a
// cosine-weighted direction over the hemisphere
func (m *Material) scatterLambertian(rayIn core.Ray, hit *core.HitRecord, rng *numeric.Rand) (ScatterResult, bool) {
	direction := hit.Normal.Add(core.RandomUnitVector(rng))

	// Catch degenerate scatter direction
	if direction.NearZero() {
		direction = hit.Normal
	}

	return ScatterResult{
		Scattered:   scatteredRay(rayIn, hit, direction),
		Attenuation: m.Albedo.Evaluate(hit.UV, hit.Point).Clamp(0, 1),
	}, true
}
