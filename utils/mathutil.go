package utils

import (
	"math"
	"math/rand"
)

// Mod is the floored modulo the generated code expects: the result always
// carries the sign of y. A zero divisor yields 0.
func Mod(x int, y int) int {
	if y == 0 {
		return 0
	}
	return ((x % y) + y) % y
}

func Clamp(low int, high int, x int) int {
	return min(max(low, x), high)
}

func Sign(x int) int {
	switch {
	case x < 0:
		return -1
	case x > 0:
		return 1
	default:
		return 0
	}
}

func Pow(x int, n int) int {
	if n < 0 {
		return 0
	}
	result := 1
	for i := 0; i < n; i++ {
		result *= x
	}
	return result
}

// Sqrt is the integer square root, 0 for negative input.
func Sqrt(x int) int {
	if x < 0 {
		return 0
	}
	return int(math.Sqrt(float64(x)))
}

// Random returns a uniform value in [0, max], or 0 when max is not positive.
func Random(max int) int {
	if max <= 0 {
		return 0
	}
	return rand.Intn(max + 1)
}
