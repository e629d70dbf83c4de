package gamemath

// ApplyDamping scales speed by a damping factor in (0, 1].
func ApplyDamping(speed, factor float64) float64 {
	return speed * factor
}

// ClampSpeed clamps a value to [-max, max].
func ClampSpeed(speed, max float64) float64 {
	if speed > max {
		return max
	}
	if speed < -max {
		return -max
	}
	return speed
}

// Clamp restricts v to [lo, hi]. The second result reports whether v was
// outside the range.
func Clamp(v, lo, hi float64) (float64, bool) {
	if v < lo {
		return lo, true
	}
	if v > hi {
		return hi, true
	}
	return v, false
}
