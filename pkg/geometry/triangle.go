package geometry

import (
	"github.com/df07/go-portable-raytracer/pkg/core"
	"github.com/df07/go-portable-raytracer/pkg/numeric"
)

// NewTriangle creates a triangle primitive from three vertices.
// The geometric normal follows the right-hand rule over v0, v1, v2. The bounding box
// is padded by Epsilon so axis-aligned triangles never have a zero-thickness box.
func NewTriangle(v0, v1, v2 core.Vec3, material int) Primitive {
	edge1 := v1.Subtract(v0)
	edge2 := v2.Subtract(v0)
	return Primitive{
		Kind:     KindTriangle,
		Material: material,
		V0:       v0,
		V1:       v1,
		V2:       v2,
		normal:   edge1.Cross(edge2).Normalize(),
		bbox:     core.NewAABBFromPoints(v0, v1, v2).Expand(numeric.Epsilon),
	}
}

// Normal returns the triangle's cached geometric normal
func (p *Primitive) Normal() core.Vec3 {
	return p.normal
}

// hitTriangle uses the Möller-Trumbore algorithm
func (p *Primitive) hitTriangle(ray core.Ray, tMin, tMax numeric.Real, rec *core.HitRecord) bool {
	edge1 := p.V1.Subtract(p.V0)
	edge2 := p.V2.Subtract(p.V0)

	h := ray.Direction.Cross(edge2)
	a := edge1.Dot(h)

	// Ray parallel to the triangle plane, or a zero-area triangle
	if a > -numeric.Epsilon && a < numeric.Epsilon {
		return false
	}

	f := 1 / a
	s := ray.Origin.Subtract(p.V0)
	u := f * s.Dot(h)
	if u < 0 || u > 1 {
		return false
	}

	q := s.Cross(edge1)
	v := f * ray.Direction.Dot(q)
	if v < 0 || u+v > 1 {
		return false
	}

	t := f * edge2.Dot(q)
	if t < tMin || t > tMax {
		return false
	}

	rec.T = t
	rec.Point = ray.At(t)
	rec.Material = p.Material
	rec.SetFaceNormal(ray, p.normal)
	rec.UV = core.NewVec2(u, v)
	return true
}
