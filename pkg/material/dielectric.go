package material

import (
	"github.com/df07/go-portable-raytracer/pkg/core"
	"github.com/df07/go-portable-raytracer/pkg/numeric"
)

// NewDielectric creates a new dielectric material (e.g. 1.5 for glass)
func NewDielectric(refractiveIndex numeric.Real) Material {
	return Material{Kind: KindDielectric, RefractiveIndex: refractiveIndex}
}

// scatterDielectric always continues the path, choosing reflection or refraction
// with probability given by Schlick's approximation
func (m *Material) scatterDielectric(rayIn core.Ray, hit *core.HitRecord, rng *numeric.Rand) (ScatterResult, bool) {
	// Entering the material from air, or leaving it
	refractionRatio := m.RefractiveIndex
	if hit.FrontFace {
		refractionRatio = 1 / m.RefractiveIndex
	}

	unitDirection := rayIn.Direction.Normalize()
	cosTheta := numeric.Min(-unitDirection.Dot(hit.Normal), 1)
	sinTheta := numeric.Sqrt(numeric.Max(0, 1-cosTheta*cosTheta))

	// Total internal reflection
	cannotRefract := refractionRatio*sinTheta > 1

	var direction core.Vec3
	if cannotRefract || Reflectance(cosTheta, refractionRatio) > rng.Float() {
		direction = unitDirection.Reflect(hit.Normal)
	} else {
		direction = unitDirection.Refract(hit.Normal, refractionRatio)
	}

	return ScatterResult{
		Scattered:   scatteredRay(rayIn, hit, direction),
		Attenuation: core.NewVec3(1, 1, 1),
	}, true
}

// Reflectance calculates the Fresnel reflectance using Schlick's approximation
func Reflectance(cosine, refractionRatio numeric.Real) numeric.Real {
	r0 := (1 - refractionRatio) / (1 + refractionRatio)
	r0 = r0 * r0
	x := 1 - cosine
	return r0 + (1-r0)*x*x*x*x*x
}
