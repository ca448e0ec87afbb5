package core

import "github.com/df07/go-portable-raytracer/pkg/numeric"

// Vec3 represents a 3D vector, point or RGB color
type Vec3 struct {
	X, Y, Z numeric.Real
}

// NewVec3 creates a new Vec3
func NewVec3(x, y, z numeric.Real) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

// Vec2 holds a 2D sample or texture coordinate
type Vec2 struct {
	X, Y numeric.Real
}

// NewVec2 creates a new Vec2
func NewVec2(x, y numeric.Real) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns the sum of two vectors
func (v Vec3) Add(other Vec3) Vec3 {
	return Vec3{v.X + other.X, v.Y + other.Y, v.Z + other.Z}
}

// Subtract returns the difference of two vectors
func (v Vec3) Subtract(other Vec3) Vec3 {
	return Vec3{v.X - other.X, v.Y - other.Y, v.Z - other.Z}
}

// Multiply returns the vector scaled by a scalar
func (v Vec3) Multiply(scalar numeric.Real) Vec3 {
	return Vec3{v.X * scalar, v.Y * scalar, v.Z * scalar}
}

// Divide returns the vector divided by a scalar
func (v Vec3) Divide(scalar numeric.Real) Vec3 {
	inv := 1 / scalar
	return Vec3{v.X * inv, v.Y * inv, v.Z * inv}
}

// Length returns the magnitude of the vector
func (v Vec3) Length() numeric.Real {
	return numeric.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// LengthSquared returns the squared magnitude of the vector
func (v Vec3) LengthSquared() numeric.Real {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

// Dot returns the dot product of two vectors
func (v Vec3) Dot(other Vec3) numeric.Real {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

// Clamp returns a vector with components clamped to [min, max]. NaN components become min.
func (v Vec3) Clamp(minVal, maxVal numeric.Real) Vec3 {
	return Vec3{
		X: numeric.Clamp(v.X, minVal, maxVal),
		Y: numeric.Clamp(v.Y, minVal, maxVal),
		Z: numeric.Clamp(v.Z, minVal, maxVal),
	}
}

// GammaCorrect applies gamma correction to color values
func (v Vec3) GammaCorrect(gamma numeric.Real) Vec3 {
	if gamma == 2 {
		return Vec3{
			X: numeric.Sqrt(numeric.Max(0, v.X)),
			Y: numeric.Sqrt(numeric.Max(0, v.Y)),
			Z: numeric.Sqrt(numeric.Max(0, v.Z)),
		}
	}
	invGamma := 1 / gamma
	return Vec3{
		X: numeric.Pow(numeric.Max(0, v.X), invGamma),
		Y: numeric.Pow(numeric.Max(0, v.Y), invGamma),
		Z: numeric.Pow(numeric.Max(0, v.Z), invGamma),
	}
}

// Normalize returns a unit vector in the same direction.
// The zero vector normalizes to the zero vector.
func (v Vec3) Normalize() Vec3 {
	length := v.Length()
	if length == 0 {
		return Vec3{0, 0, 0}
	}
	return Vec3{v.X / length, v.Y / length, v.Z / length}
}

// Cross returns the cross product of two vectors
func (v Vec3) Cross(other Vec3) Vec3 {
	return Vec3{
		X: v.Y*other.Z - v.Z*other.Y,
		Y: v.Z*other.X - v.X*other.Z,
		Z: v.X*other.Y - v.Y*other.X,
	}
}

// MultiplyVec returns component-wise multiplication of two vectors
func (v Vec3) MultiplyVec(other Vec3) Vec3 {
	return Vec3{
		X: v.X * other.X,
		Y: v.Y * other.Y,
		Z: v.Z * other.Z,
	}
}

// Luminance returns the perceptual luminance of an RGB color
// Uses standard luminance weights: 0.299*R + 0.587*G + 0.114*B
func (v Vec3) Luminance() numeric.Real {
	return 0.299*v.X + 0.587*v.Y + 0.114*v.Z
}

// MaxComponent returns the largest of the three components
func (v Vec3) MaxComponent() numeric.Real {
	return numeric.Max(v.X, numeric.Max(v.Y, v.Z))
}

// Negate returns the negative of the vector
func (v Vec3) Negate() Vec3 {
	return Vec3{
		X: -v.X,
		Y: -v.Y,
		Z: -v.Z,
	}
}

// Axis returns component i (0=X, 1=Y, 2=Z)
func (v Vec3) Axis(i int) numeric.Real {
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	default:
		return v.Z
	}
}

// NearZero reports whether every component is close to zero
func (v Vec3) NearZero() bool {
	const s = 1e-6
	return numeric.Abs(v.X) < s && numeric.Abs(v.Y) < s && numeric.Abs(v.Z) < s
}

// IsFinite reports whether no component is NaN or infinite
func (v Vec3) IsFinite() bool {
	return numeric.IsFinite(v.X) && numeric.IsFinite(v.Y) && numeric.IsFinite(v.Z)
}

// Sanitize replaces NaN and infinite components with zero
func (v Vec3) Sanitize() Vec3 {
	if !numeric.IsFinite(v.X) {
		v.X = 0
	}
	if !numeric.IsFinite(v.Y) {
		v.Y = 0
	}
	if !numeric.IsFinite(v.Z) {
		v.Z = 0
	}
	return v
}

// Reflect reflects v about the normal n
func (v Vec3) Reflect(n Vec3) Vec3 {
	return v.Subtract(n.Multiply(2 * v.Dot(n)))
}

// Refract bends the unit vector v through a surface with normal n.
// etaRatio is the ratio of refractive indices (incident over transmitted).
func (v Vec3) Refract(n Vec3, etaRatio numeric.Real) Vec3 {
	cosTheta := numeric.Min(v.Negate().Dot(n), 1)
	rOutPerp := v.Add(n.Multiply(cosTheta)).Multiply(etaRatio)
	rOutParallel := n.Multiply(-numeric.Sqrt(numeric.Abs(1 - rOutPerp.LengthSquared())))
	return rOutPerp.Add(rOutParallel)
}
