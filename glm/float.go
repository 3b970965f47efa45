package glm

import "golang.org/x/exp/constraints"

type float interface {
	constraints.Float
}

type numeric interface {
	float | constraints.Unsigned
}

// Lerp interpolates linearly between a and b. A factor of 0 yields a,
// a factor of 1 yields b.
func Lerp[T float](a, b, factor T) T {
	return a + (b-a)*factor
}

// Clamp restricts value to the closed interval [lo, hi].
func Clamp[T numeric](value, lo, hi T) T {
	return max(lo, min(value, hi))
}
