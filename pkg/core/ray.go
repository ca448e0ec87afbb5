package core

import "github.com/df07/go-portable-raytracer/pkg/numeric"

// Ray represents a ray with an origin, a direction and a point in time.
// Direction is not required to be unit length.
type Ray struct {
	Origin    Vec3
	Direction Vec3
	Time      numeric.Real
}

// NewRay creates a new ray at time zero
func NewRay(origin, direction Vec3) Ray {
	return Ray{Origin: origin, Direction: direction}
}

// NewRayAtTime creates a new ray that exists at time t
func NewRayAtTime(origin, direction Vec3, t numeric.Real) Ray {
	return Ray{Origin: origin, Direction: direction, Time: t}
}

// At returns the point at parameter t along the ray
func (r Ray) At(t numeric.Real) Vec3 {
	return r.Origin.Add(r.Direction.Multiply(t))
}

// InvDirection returns the per-axis reciprocal of the direction.
// Zero components yield signed infinities following IEEE rules.
func (r Ray) InvDirection() Vec3 {
	return Vec3{1 / r.Direction.X, 1 / r.Direction.Y, 1 / r.Direction.Z}
}
