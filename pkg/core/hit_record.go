package core

import "github.com/df07/go-portable-raytracer/pkg/numeric"

// HitRecord contains information about a ray-object intersection
type HitRecord struct {
	Point     Vec3         // Point of intersection
	Normal    Vec3         // Unit surface normal, always facing the incoming ray
	T         numeric.Real // Parameter t along the ray
	Material  int          // Index into the scene's material table
	FrontFace bool         // Whether the ray hit the outside of the surface
	UV        Vec2         // Texture coordinates
}

// SetFaceNormal orients the normal against the ray and records which side was hit.
// outwardNormal must be unit length.
func (h *HitRecord) SetFaceNormal(ray Ray, outwardNormal Vec3) {
	h.FrontFace = ray.Direction.Dot(outwardNormal) < 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Negate()
	}
}
