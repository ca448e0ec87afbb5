//go:build !lowprec && !tinygo

package numeric

import "math"

// Real is the scalar type used by every part of the engine.
// The default build uses float64; see backend_compact.go for the float32 build.
type Real = float64

// Rand is the random generator used by this build.
type Rand = PCG

// Backend names the active numeric backend
const Backend = "float64"

// Epsilon is the smallest magnitude treated as non-zero by geometric tests
const Epsilon Real = 1e-8

// Sqrt returns the square root of x
func Sqrt(x Real) Real { return math.Sqrt(x) }

// Sin returns the sine of x (radians)
func Sin(x Real) Real { return math.Sin(x) }

// Cos returns the cosine of x (radians)
func Cos(x Real) Real { return math.Cos(x) }

// Tan returns the tangent of x (radians)
func Tan(x Real) Real { return math.Tan(x) }

// Pow returns x**y
func Pow(x, y Real) Real { return math.Pow(x, y) }

// Floor returns the greatest integer value less than or equal to x
func Floor(x Real) Real { return math.Floor(x) }

// Abs returns the absolute value of x
func Abs(x Real) Real { return math.Abs(x) }

// Acos returns the arccosine of x
func Acos(x Real) Real { return math.Acos(x) }

// Atan2 returns the arc tangent of y/x
func Atan2(y, x Real) Real { return math.Atan2(y, x) }

// Inf returns positive infinity if sign >= 0, negative infinity if sign < 0
func Inf(sign int) Real { return math.Inf(sign) }

// IsFinite reports whether x is neither NaN nor an infinity
func IsFinite(x Real) bool { return !math.IsNaN(x) && !math.IsInf(x, 0) }

// unitFloat maps the high 53 bits of u onto [0, 1)
func unitFloat(u uint64) Real {
	return Real(u>>11) * (1.0 / (1 << 53))
}
