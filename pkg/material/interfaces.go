package material

import (
	"errors"
	"fmt"

	"github.com/df07/go-portable-raytracer/pkg/core"
	"github.com/df07/go-portable-raytracer/pkg/numeric"
)

// ErrInvalidMaterial is returned by Validate for out-of-range parameters
var ErrInvalidMaterial = errors.New("invalid material")

// Kind identifies the scattering model of a Material
type Kind uint8

const (
	KindLambertian Kind = iota
	KindMetal
	KindDielectric
	KindEmissive
)

// String returns the material model name
func (k Kind) String() string {
	switch k {
	case KindLambertian:
		return "lambertian"
	case KindMetal:
		return "metal"
	case KindDielectric:
		return "dielectric"
	case KindEmissive:
		return "emissive"
	default:
		return "unknown"
	}
}

// Material is a scattering policy for a surface. Scenes keep materials in a table
// and geometry refers to them by index, so a Material is shared read-only by every
// primitive and worker that uses it.
type Material struct {
	Kind            Kind
	Albedo          ColorSource  // Lambertian, Metal
	Fuzz            numeric.Real // Metal: 0 = perfect mirror, 1 = very fuzzy
	RefractiveIndex numeric.Real // Dielectric
	Emission        ColorSource  // Emissive
}

// ScatterResult contains the result of material scattering
type ScatterResult struct {
	Scattered   core.Ray  // The scattered ray, starting at the hit point
	Attenuation core.Vec3 // Color attenuation
}

// Scatter decides whether and how the incoming ray continues after hitting the
// surface. It returns false when the ray is absorbed. All randomness comes from rng.
func (m *Material) Scatter(rayIn core.Ray, hit *core.HitRecord, rng *numeric.Rand) (ScatterResult, bool) {
	switch m.Kind {
	case KindLambertian:
		return m.scatterLambertian(rayIn, hit, rng)
	case KindMetal:
		return m.scatterMetal(rayIn, hit, rng)
	case KindDielectric:
		return m.scatterDielectric(rayIn, hit, rng)
	default:
		return ScatterResult{}, false
	}
}

// Emitted returns the light emitted at the hit point; black for non-emissive materials
func (m *Material) Emitted(hit *core.HitRecord) core.Vec3 {
	if m.Kind != KindEmissive {
		return core.Vec3{}
	}
	return m.Emission.Evaluate(hit.UV, hit.Point)
}

// Validate checks the material parameters
func (m *Material) Validate() error {
	switch m.Kind {
	case KindLambertian, KindMetal:
		if !m.Albedo.IsFinite() {
			return fmt.Errorf("%w: %s albedo is not finite", ErrInvalidMaterial, m.Kind)
		}
		if m.Kind == KindMetal && !(m.Fuzz >= 0 && m.Fuzz <= 1) {
			return fmt.Errorf("%w: metal fuzz %v outside [0, 1]", ErrInvalidMaterial, m.Fuzz)
		}
	case KindDielectric:
		if !(m.RefractiveIndex > 0) || !numeric.IsFinite(m.RefractiveIndex) {
			return fmt.Errorf("%w: refractive index %v", ErrInvalidMaterial, m.RefractiveIndex)
		}
	case KindEmissive:
		if !m.Emission.IsFinite() {
			return fmt.Errorf("%w: emission is not finite", ErrInvalidMaterial)
		}
	default:
		return fmt.Errorf("%w: unknown kind %d", ErrInvalidMaterial, m.Kind)
	}
	return nil
}

// scatteredRay starts a continuation ray at the hit point, keeping the incoming ray's time
func scatteredRay(rayIn core.Ray, hit *core.HitRecord, direction core.Vec3) core.Ray {
	return core.NewRayAtTime(hit.Point, direction, rayIn.Time)
}
