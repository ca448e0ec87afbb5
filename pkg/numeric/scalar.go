package numeric

// Pi in the build's precision
const Pi Real = 3.14159265358979323846264338327950288419716939937510582097494459

// Min returns the smaller of a and b
func Min(a, b Real) Real {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of a and b
func Max(a, b Real) Real {
	if a > b {
		return a
	}
	return b
}

// Clamp limits x to [lo, hi]. NaN maps to lo.
func Clamp(x, lo, hi Real) Real {
	if !(x >= lo) {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// Radians converts degrees to radians
func Radians(degrees Real) Real {
	return degrees * Pi / 180
}
