package core

import "github.com/df07/go-portable-raytracer/pkg/numeric"

// The Sample* functions map uniform samples in [0,1) to points without rejection loops,
// so every draw costs a fixed number of generator calls. The Random* functions pull
// those samples from an explicit generator.

// SampleOnUnitSphere generates a uniform random direction on the unit sphere
func SampleOnUnitSphere(sample Vec2) Vec3 {
	z := 1 - 2*sample.X // z ∈ [-1, 1]
	r := numeric.Sqrt(numeric.Max(0, 1-z*z))
	phi := 2 * numeric.Pi * sample.Y
	x := r * numeric.Cos(phi)
	y := r * numeric.Sin(phi)
	return NewVec3(x, y, z)
}

// SamplePointInUnitDisk generates a random point in a unit disk using concentric mapping
func SamplePointInUnitDisk(sample Vec2) Vec3 {
	// Map sample to [-1,1]² and handle degeneracy at the origin
	uOffset := NewVec2(2*sample.X-1, 2*sample.Y-1)
	if uOffset.X == 0 && uOffset.Y == 0 {
		return NewVec3(0, 0, 0)
	}

	var theta, r numeric.Real
	if numeric.Abs(uOffset.X) > numeric.Abs(uOffset.Y) {
		r = uOffset.X
		theta = numeric.Pi / 4 * (uOffset.Y / uOffset.X)
	} else {
		r = uOffset.Y
		theta = numeric.Pi/2 - numeric.Pi/4*(uOffset.X/uOffset.Y)
	}

	return NewVec3(r*numeric.Cos(theta), r*numeric.Sin(theta), 0)
}

// SamplePointInUnitSphere generates a random point inside a unit sphere using the inverse CDF:
// r = ∛u₁, φ = 2πu₂, cos(θ) = 2u₃ - 1
func SamplePointInUnitSphere(sample Vec3) Vec3 {
	r := numeric.Pow(sample.X, 1.0/3.0)
	phi := 2 * numeric.Pi * sample.Y
	cosTheta := 2*sample.Z - 1
	sinTheta := numeric.Sqrt(numeric.Max(0, 1-cosTheta*cosTheta))

	x := r * sinTheta * numeric.Cos(phi)
	y := r * sinTheta * numeric.Sin(phi)
	z := r * cosTheta

	return NewVec3(x, y, z)
}

// RandomUnitVector returns a uniformly distributed unit vector
func RandomUnitVector(rng *numeric.Rand) Vec3 {
	return SampleOnUnitSphere(NewVec2(rng.Float(), rng.Float()))
}

// RandomInUnitSphere returns a point uniformly distributed inside the unit sphere
func RandomInUnitSphere(rng *numeric.Rand) Vec3 {
	return SamplePointInUnitSphere(NewVec3(rng.Float(), rng.Float(), rng.Float()))
}

// RandomInUnitDisk returns a point uniformly distributed in the unit disk on the z=0 plane
func RandomInUnitDisk(rng *numeric.Rand) Vec3 {
	return SamplePointInUnitDisk(NewVec2(rng.Float(), rng.Float()))
}

// RandomInRange returns a uniform value in [lo, hi)
func RandomInRange(rng *numeric.Rand, lo, hi numeric.Real) numeric.Real {
	return lo + (hi-lo)*rng.Float()
}
