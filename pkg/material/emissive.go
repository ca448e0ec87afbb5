package material

import "github.com/df07/go-portable-raytracer/pkg/core"

// NewEmissive creates a new emissive material. Emission may exceed 1 per channel.
// Emissive surfaces never scatter; the integrator adds their emission directly.
func NewEmissive(emission core.Vec3) Material {
	return Material{Kind: KindEmissive, Emission: NewSolidColor(emission)}
}
