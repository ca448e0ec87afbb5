package geometry

import (
	"github.com/df07/go-portable-raytracer/pkg/core"
	"github.com/df07/go-portable-raytracer/pkg/numeric"
)

// NewSphere creates a sphere primitive. A negative radius keeps the same surface but
// flips the outward normal, which turns a dielectric sphere into a hollow bubble.
func NewSphere(center core.Vec3, radius numeric.Real, material int) Primitive {
	r := numeric.Abs(radius)
	extent := core.NewVec3(r, r, r)
	return Primitive{
		Kind:     KindSphere,
		Material: material,
		Center:   center,
		Radius:   radius,
		bbox:     core.NewAABB(center.Subtract(extent), center.Add(extent)),
	}
}

// NewMovingSphere creates a sphere that moves linearly from center0 at time0
// to center1 at time1. Outside that interval the motion is extrapolated.
func NewMovingSphere(center0, center1 core.Vec3, time0, time1, radius numeric.Real, material int) Primitive {
	r := numeric.Abs(radius)
	extent := core.NewVec3(r, r, r)
	box0 := core.NewAABB(center0.Subtract(extent), center0.Add(extent))
	box1 := core.NewAABB(center1.Subtract(extent), center1.Add(extent))
	return Primitive{
		Kind:     KindMovingSphere,
		Material: material,
		Center:   center0,
		Center1:  center1,
		Radius:   radius,
		Time0:    time0,
		Time1:    time1,
		bbox:     box0.Union(box1),
	}
}

// centerAt returns the moving sphere's center at time t
func (p *Primitive) centerAt(t numeric.Real) core.Vec3 {
	span := p.Time1 - p.Time0
	if span == 0 {
		return p.Center
	}
	return p.Center.Add(p.Center1.Subtract(p.Center).Multiply((t - p.Time0) / span))
}

func hitSphere(center core.Vec3, radius numeric.Real, material int, ray core.Ray, tMin, tMax numeric.Real, rec *core.HitRecord) bool {
	// Vector from ray origin to sphere center
	oc := ray.Origin.Subtract(center)

	// Quadratic equation coefficients: at² + 2bt + c = 0
	a := ray.Direction.LengthSquared()
	if a == 0 {
		return false
	}
	halfB := oc.Dot(ray.Direction)
	c := oc.LengthSquared() - radius*radius

	discriminant := halfB*halfB - a*c
	if discriminant < 0 {
		return false
	}
	sqrtD := numeric.Sqrt(discriminant)

	// Try the closer intersection point first
	root := (-halfB - sqrtD) / a
	if root < tMin || root > tMax {
		root = (-halfB + sqrtD) / a
		if root < tMin || root > tMax {
			return false
		}
	}

	rec.T = root
	rec.Point = ray.At(root)
	rec.Material = material

	// Dividing by the signed radius flips the normal of negative-radius spheres
	outwardNormal := rec.Point.Subtract(center).Divide(radius)
	rec.SetFaceNormal(ray, outwardNormal)
	rec.UV = sphereUV(outwardNormal)
	return true
}

// sphereUV maps a point on the unit sphere to texture coordinates:
// u is the angle around the Y axis from X=-1, v the angle from Y=-1 to Y=+1.
func sphereUV(p core.Vec3) core.Vec2 {
	theta := numeric.Acos(numeric.Clamp(-p.Y, -1, 1))
	phi := numeric.Atan2(-p.Z, p.X) + numeric.Pi
	return core.NewVec2(phi/(2*numeric.Pi), theta/numeric.Pi)
}
