// Package spectral is the least-squares trigonometric spectral engine:
// coefficient solving, the Fourier sweep, the spectral window, CLEAN peak
// extraction, and pass-band filtering by Fourier synthesis.
package spectral

import (
	"gonum.org/v1/gonum/floats"
)

// TwoPiMicro converts a cyclic frequency in microhertz into an angular
// frequency in radians/second: omega = freq * TwoPiMicro.
const TwoPiMicro = 2 * 3.14159265358979323846264338327950288 * 1e-6

// Sum returns the sequential sum of x. Not Kahan-compensated.
func Sum(x []float64) float64 {
	return floats.Sum(x)
}

// Mean returns Sum(x) / len(x). Panics if x is empty, matching the
// caller-validates-N-boundary discipline of the rest of this package.
func Mean(x []float64) float64 {
	if len(x) == 0 {
		panic("spectral: Mean of empty slice")
	}
	return Sum(x) / float64(len(x))
}

// Diff writes y[i] = x[i+1] - x[i] for i in [0, len(x)-1). y must have
// capacity for len(x)-1 elements.
func Diff(x []float64, y []float64) {
	for i := 0; i < len(x)-1; i++ {
		y[i] = x[i+1] - x[i]
	}
}

// ScaAdd adds a to every element of x, in place.
func ScaAdd(x []float64, a float64) {
	for i := range x {
		x[i] += a
	}
}

// Linspace fills x[i] = a + i*rate for i in [0, len(x)).
func Linspace(x []float64, a, rate float64) {
	for i := range x {
		x[i] = a + float64(i)*rate
	}
}

// StepCount returns the K for which a + K*rate < b <= a + (K+1)*rate (up to
// the rounding of the repeated addition): the smallest number of strict
// increments from a by rate needed to reach or exceed b, minus one. A grid
// of StepCount(a, b, rate) points from a therefore ends at a + (K-1)*rate.
//
// This "minus one" is intentional, not an off-by-one bug: it reproduces the
// original implementation's grid sizing bit-for-bit, and callers rely on
// the last grid point staying strictly below b.
func StepCount(a, b, rate float64) int {
	steps := 0
	val := a
	for {
		val += rate
		steps++
		if val >= b {
			break
		}
	}
	return steps - 1
}

// Median returns the median of a sorted copy of x; x itself is unmodified.
func Median(x []float64) float64 {
	y := make([]float64, len(x))
	copy(y, x)
	quicksort(y, 0, len(y)-1)

	n := len(y)
	if n%2 == 0 {
		return (y[n/2] + y[n/2-1]) / 2.0
	}
	return y[n/2]
}

// quicksort sorts y[first:last+1] ascending in place. It mirrors arrlib.c's
// quicksort (Hoare-ish partition around the first element) rather than
// reaching for sort.Float64s, since the spec pins quicksort as the
// reference algorithm for bit-compatible median behavior across ports.
func quicksort(y []float64, first, last int) {
	if first >= last {
		return
	}

	pivot := first
	i, j := first, last
	for i < j {
		for y[i] <= y[pivot] && i < last {
			i++
		}
		for y[j] > y[pivot] {
			j--
		}
		if i < j {
			y[i], y[j] = y[j], y[i]
		}
	}

	y[pivot], y[j] = y[j], y[pivot]
	quicksort(y, first, j-1)
	quicksort(y, j+1, last)
}
