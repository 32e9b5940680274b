package common

// Lerp blends a toward b by t.
func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Progress is how far elapsed has run through total, clamped to [0, 1].
func Progress(elapsed, total int) float64 {
	if total <= 0 {
		return 1
	}
	return Clamp(float64(elapsed)/float64(total), 0, 1)
}
