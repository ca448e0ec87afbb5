package geometry

import (
	"github.com/df07/go-portable-raytracer/pkg/core"
	"github.com/df07/go-portable-raytracer/pkg/numeric"
)

// NewBox creates a solid axis-aligned box spanning the two corners (in any order)
func NewBox(a, b core.Vec3, material int) Primitive {
	box := core.NewAABBFromPoints(a, b)
	return Primitive{
		Kind:     KindBox,
		Material: material,
		V0:       box.Min,
		V1:       box.Max,
		bbox:     box,
	}
}

// hitBox intersects the three slabs, keeping track of which axis bounds the entry and
// exit distances so the face normal is known without a second pass.
func (p *Primitive) hitBox(ray core.Ray, tMin, tMax numeric.Real, rec *core.HitRecord) bool {
	inv := ray.InvDirection()
	tNear, tFar := numeric.Inf(-1), numeric.Inf(1)
	nearAxis, farAxis := 0, 0

	for axis := 0; axis < 3; axis++ {
		o := ray.Origin.Axis(axis)
		i := inv.Axis(axis)
		t0 := (p.V0.Axis(axis) - o) * i
		t1 := (p.V1.Axis(axis) - o) * i
		if i < 0 {
			t0, t1 = t1, t0
		}
		// 0*Inf: origin on the slab plane of a parallel ray
		if t0 != t0 {
			t0 = numeric.Inf(-1)
		}
		if t1 != t1 {
			t1 = numeric.Inf(1)
		}
		if t0 > tNear {
			tNear, nearAxis = t0, axis
		}
		if t1 < tFar {
			tFar, farAxis = t1, axis
		}
	}
	if tFar < tNear {
		return false
	}

	// Entry face first, exit face when the ray starts inside the box
	t, axis := tNear, nearAxis
	if t < tMin || t > tMax {
		t, axis = tFar, farAxis
		if t < tMin || t > tMax {
			return false
		}
	}

	rec.T = t
	rec.Point = ray.At(t)
	rec.Material = p.Material

	var outward core.Vec3
	center := p.bbox.Center()
	sign := numeric.Real(1)
	if rec.Point.Axis(axis) < center.Axis(axis) {
		sign = -1
	}
	switch axis {
	case 0:
		outward = core.NewVec3(sign, 0, 0)
	case 1:
		outward = core.NewVec3(0, sign, 0)
	default:
		outward = core.NewVec3(0, 0, sign)
	}
	rec.SetFaceNormal(ray, outward)
	rec.UV = p.boxUV(rec.Point, axis)
	return true
}

// boxUV projects the hit point onto the face's two remaining axes, normalized to [0,1]
func (p *Primitive) boxUV(point core.Vec3, axis int) core.Vec2 {
	a, b := (axis+1)%3, (axis+2)%3
	size := p.bbox.Size()
	var u, v numeric.Real
	if s := size.Axis(a); s > 0 {
		u = (point.Axis(a) - p.V0.Axis(a)) / s
	}
	if s := size.Axis(b); s > 0 {
		v = (point.Axis(b) - p.V0.Axis(b)) / s
	}
	return core.NewVec2(u, v)
}
