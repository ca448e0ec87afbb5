//go:build lowprec || tinygo

package numeric

import "github.com/chewxy/math32"

// Real is the scalar type used by every part of the engine.
// Constrained builds (TinyGo or -tags lowprec) use float32.
type Real = float32

// Rand is the random generator used by this build.
type Rand = XorShift

// Backend names the active numeric backend
const Backend = "float32"

// Epsilon is the smallest magnitude treated as non-zero by geometric tests
const Epsilon Real = 1e-6

// Sqrt returns the square root of x
func Sqrt(x Real) Real { return math32.Sqrt(x) }

// Sin returns the sine of x (radians)
func Sin(x Real) Real { return math32.Sin(x) }

// Cos returns the cosine of x (radians)
func Cos(x Real) Real { return math32.Cos(x) }

// Tan returns the tangent of x (radians)
func Tan(x Real) Real { return math32.Tan(x) }

// Pow returns x**y
func Pow(x, y Real) Real { return math32.Pow(x, y) }

// Floor returns the greatest integer value less than or equal to x
func Floor(x Real) Real { return math32.Floor(x) }

// Abs returns the absolute value of x
func Abs(x Real) Real { return math32.Abs(x) }

// Acos returns the arccosine of x
func Acos(x Real) Real { return math32.Acos(x) }

// Atan2 returns the arc tangent of y/x
func Atan2(y, x Real) Real { return math32.Atan2(y, x) }

// Inf returns positive infinity if sign >= 0, negative infinity if sign < 0
func Inf(sign int) Real { return math32.Inf(sign) }

// IsFinite reports whether x is neither NaN nor an infinity
func IsFinite(x Real) bool { return !math32.IsNaN(x) && !math32.IsInf(x, 0) }

// unitFloat maps the high 24 bits of u onto [0, 1)
func unitFloat(u uint64) Real {
	return Real(u>>40) * (1.0 / (1 << 24))
}
