package spectral

import "math"

// Window computes the power of the window function over freq at reference
// frequency f0 (microHz), built from sin(omega0*t)/cos(omega0*t) synthetic
// signals sampled at the observed times (spec.md §4.E). window[i] receives
//
//	0.5 * (Psin(freq[i]) + Pcos(freq[i]))
func Window(time, freq []float64, f0 float64, window []float64) {
	n := len(time)
	datasin := make([]float64, n)
	datacos := make([]float64, n)
	omega0 := f0 * TwoPiMicro
	for k := 0; k < n; k++ {
		datasin[k] = math.Sin(omega0 * time[k])
		datacos[k] = math.Cos(omega0 * time[k])
	}

	forEachChunk(len(freq), func(lo, hi int) {
		for i := lo; i < hi; i++ {
			omega := freq[i] * TwoPiMicro
			aSin, bSin, aCos, bCos := windowCoeffs(time, datasin, datacos, omega)
			window[i] = 0.5 * ((aSin*aSin + bSin*bSin) + (aCos*aCos + bCos*bCos))
		}
	})
}

// WindowWeighted is the weighted variant of Window.
func WindowWeighted(time, freq, weight []float64, f0 float64, window []float64) {
	n := len(time)
	datasin := make([]float64, n)
	datacos := make([]float64, n)
	omega0 := f0 * TwoPiMicro
	for k := 0; k < n; k++ {
		datasin[k] = math.Sin(omega0 * time[k])
		datacos[k] = math.Cos(omega0 * time[k])
	}
	wsum := Sum(weight)

	forEachChunk(len(freq), func(lo, hi int) {
		for i := lo; i < hi; i++ {
			omega := freq[i] * TwoPiMicro
			aSin, bSin, aCos, bCos := windowCoeffsWeighted(time, datasin, datacos, weight, omega, wsum)
			window[i] = 0.5 * ((aSin*aSin + bSin*bSin) + (aCos*aCos + bCos*bCos))
		}
	})
}

// WindowSum builds a fresh frequency grid of StepCount(low, high, rate)
// points starting at low with step rate, computes the window at f0 over
// that grid, and returns its sum. It owns its grid and window scratch
// buffers for the duration of the call (spec.md §4.E).
func WindowSum(f0, low, high, rate float64, time, weight []float64, useWeight bool) float64 {
	m := StepCount(low, high, rate)
	freq := make([]float64, m)
	Linspace(freq, low, rate)

	win := make([]float64, m)
	if useWeight {
		WindowWeighted(time, freq, weight, f0, win)
	} else {
		Window(time, freq, f0, win)
	}
	return Sum(win)
}
