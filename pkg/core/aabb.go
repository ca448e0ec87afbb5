package core

import "github.com/df07/go-portable-raytracer/pkg/numeric"

// AABB represents an axis-aligned bounding box
type AABB struct {
	Min Vec3 // Minimum corner
	Max Vec3 // Maximum corner
}

// NewAABB creates a new AABB from min and max points
func NewAABB(min, max Vec3) AABB {
	return AABB{Min: min, Max: max}
}

// EmptyAABB returns an inverted box that is the identity for Union
func EmptyAABB() AABB {
	inf := numeric.Inf(1)
	return AABB{
		Min: Vec3{inf, inf, inf},
		Max: Vec3{-inf, -inf, -inf},
	}
}

// NewAABBFromPoints creates an AABB that bounds all given points
func NewAABBFromPoints(points ...Vec3) AABB {
	if len(points) == 0 {
		return AABB{}
	}

	min := points[0]
	max := points[0]

	for _, point := range points[1:] {
		min.X = numeric.Min(min.X, point.X)
		min.Y = numeric.Min(min.Y, point.Y)
		min.Z = numeric.Min(min.Z, point.Z)

		max.X = numeric.Max(max.X, point.X)
		max.Y = numeric.Max(max.Y, point.Y)
		max.Z = numeric.Max(max.Z, point.Z)
	}

	return AABB{Min: min, Max: max}
}

// Hit tests if a ray intersects with this AABB using the slab method
func (aabb AABB) Hit(ray Ray, tMin, tMax numeric.Real) bool {
	return aabb.HitInv(ray.Origin, ray.InvDirection(), tMin, tMax)
}

// HitInv is Hit with the ray's inverse direction already computed.
// Traversal computes the inverse once per ray and reuses it for every node.
func (aabb AABB) HitInv(origin, invDir Vec3, tMin, tMax numeric.Real) bool {
	_, _, ok := Slab(aabb.Min, aabb.Max, origin, invDir, tMin, tMax)
	return ok
}

// Slab intersects the ray interval [tMin, tMax] with the three slabs of a box and
// returns the narrowed interval. A zero direction component gives an infinite inverse;
// when the origin lies exactly on that slab plane the product 0*Inf is NaN, and the
// axis is then treated as unbounded rather than poisoning the interval.
func Slab(min, max, origin, invDir Vec3, tMin, tMax numeric.Real) (numeric.Real, numeric.Real, bool) {
	for axis := 0; axis < 3; axis++ {
		inv := invDir.Axis(axis)
		o := origin.Axis(axis)

		t0 := (min.Axis(axis) - o) * inv
		t1 := (max.Axis(axis) - o) * inv
		if inv < 0 {
			t0, t1 = t1, t0
		}
		if t0 != t0 {
			t0 = numeric.Inf(-1)
		}
		if t1 != t1 {
			t1 = numeric.Inf(1)
		}

		if t0 > tMin {
			tMin = t0
		}
		if t1 < tMax {
			tMax = t1
		}
		if tMax < tMin {
			return tMin, tMax, false
		}
	}
	return tMin, tMax, true
}

// Union returns an AABB that bounds both this AABB and another
func (aabb AABB) Union(other AABB) AABB {
	min := Vec3{
		X: numeric.Min(aabb.Min.X, other.Min.X),
		Y: numeric.Min(aabb.Min.Y, other.Min.Y),
		Z: numeric.Min(aabb.Min.Z, other.Min.Z),
	}
	max := Vec3{
		X: numeric.Max(aabb.Max.X, other.Max.X),
		Y: numeric.Max(aabb.Max.Y, other.Max.Y),
		Z: numeric.Max(aabb.Max.Z, other.Max.Z),
	}
	return AABB{Min: min, Max: max}
}

// Contains reports whether other lies entirely inside this box (boundaries inclusive)
func (aabb AABB) Contains(other AABB) bool {
	return aabb.Min.X <= other.Min.X && aabb.Min.Y <= other.Min.Y && aabb.Min.Z <= other.Min.Z &&
		aabb.Max.X >= other.Max.X && aabb.Max.Y >= other.Max.Y && aabb.Max.Z >= other.Max.Z
}

// Center returns the center point of the AABB
func (aabb AABB) Center() Vec3 {
	return aabb.Min.Add(aabb.Max).Multiply(0.5)
}

// Size returns the size (extent) of the AABB along each axis
func (aabb AABB) Size() Vec3 {
	return aabb.Max.Subtract(aabb.Min)
}

// LongestAxis returns the axis (0=X, 1=Y, 2=Z) with the longest extent
func (aabb AABB) LongestAxis() int {
	size := aabb.Size()
	if size.X > size.Y && size.X > size.Z {
		return 0 // X axis
	}
	if size.Y > size.Z {
		return 1 // Y axis
	}
	return 2 // Z axis
}

// IsValid returns true if this is a valid AABB (min <= max for all axes)
func (aabb AABB) IsValid() bool {
	return aabb.Min.X <= aabb.Max.X &&
		aabb.Min.Y <= aabb.Max.Y &&
		aabb.Min.Z <= aabb.Max.Z
}

// Expand returns an AABB expanded by the given amount in all directions
func (aabb AABB) Expand(amount numeric.Real) AABB {
	expansion := NewVec3(amount, amount, amount)
	return AABB{
		Min: aabb.Min.Subtract(expansion),
		Max: aabb.Max.Add(expansion),
	}
}
