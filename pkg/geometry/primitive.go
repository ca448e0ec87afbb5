package geometry

import (
	"github.com/df07/go-portable-raytracer/pkg/core"
	"github.com/df07/go-portable-raytracer/pkg/numeric"
)

// Kind identifies the shape stored in a Primitive
type Kind uint8

const (
	KindSphere Kind = iota
	KindMovingSphere
	KindTriangle
	KindBox
)

// String returns the shape name
func (k Kind) String() string {
	switch k {
	case KindSphere:
		return "sphere"
	case KindMovingSphere:
		return "moving_sphere"
	case KindTriangle:
		return "triangle"
	case KindBox:
		return "box"
	default:
		return "unknown"
	}
}

// Primitive is one intersectable shape. The set of shapes is closed: every
// operation dispatches with a single switch on Kind, so primitives can live by
// value in a flat slice without interfaces or heap boxing.
//
// Field use by kind:
//
//	KindSphere:       Center, Radius
//	KindMovingSphere: Center (at Time0), Center1 (at Time1), Radius, Time0, Time1
//	KindTriangle:     V0, V1, V2, normal
//	KindBox:          V0 (min corner), V1 (max corner)
type Primitive struct {
	Kind     Kind
	Material int // Index into the scene's material table

	Center  core.Vec3
	Center1 core.Vec3
	Radius  numeric.Real
	Time0   numeric.Real
	Time1   numeric.Real

	V0, V1, V2 core.Vec3
	normal     core.Vec3

	bbox core.AABB
}

// Hit tests the ray against the primitive within [tMin, tMax] and fills rec on success.
// rec is left untouched on a miss.
func (p *Primitive) Hit(ray core.Ray, tMin, tMax numeric.Real, rec *core.HitRecord) bool {
	switch p.Kind {
	case KindSphere:
		return hitSphere(p.Center, p.Radius, p.Material, ray, tMin, tMax, rec)
	case KindMovingSphere:
		return hitSphere(p.centerAt(ray.Time), p.Radius, p.Material, ray, tMin, tMax, rec)
	case KindTriangle:
		return p.hitTriangle(ray, tMin, tMax, rec)
	case KindBox:
		return p.hitBox(ray, tMin, tMax, rec)
	default:
		return false
	}
}

// BoundingBox returns the cached axis-aligned bounding box
func (p *Primitive) BoundingBox() core.AABB {
	return p.bbox
}
