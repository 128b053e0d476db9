package spectral

import "math"

// Bandpass reconstructs a filtered copy of flux by inverse synthesis on
// the band [f1, f2], against the full sampling grid [low, high, rate] used
// to normalize the window (pass.c: bandpass). flux is not modified; the
// returned slice is a fresh result array, and the returned mean is the
// mean that was subtracted from a working copy before synthesis; the
// caller adds it back to result (flux itself still carries it).
func Bandpass(time, flux, weight []float64, f1, f2, low, high, rate float64, useWeight bool) (result []float64, mean float64) {
	fcenter := (f1 + f2) / 2.0
	sumwin := WindowSum(fcenter, low, high, rate, time, weight, useWeight)

	m := StepCount(f1, f2, rate)
	freq := make([]float64, m)
	Linspace(freq, f1, rate)

	mean = Mean(flux)
	working := make([]float64, len(flux))
	copy(working, flux)
	ScaAdd(working, -mean)

	alpha := make([]float64, m)
	beta := make([]float64, m)
	power := make([]float64, m)
	if useWeight {
		SweepWeighted(time, working, weight, freq, power, alpha, beta)
	} else {
		Sweep(time, working, freq, power, alpha, beta)
	}

	result = make([]float64, len(time))
	forEachChunk(len(time), func(lo, hi int) {
		for i := lo; i < hi; i++ {
			var sumfilt float64
			for j := 0; j < m; j++ {
				omega := freq[j] * TwoPiMicro
				sumfilt += alpha[j]*math.Sin(omega*time[i]) + beta[j]*math.Cos(omega*time[i])
			}
			result[i] = sumfilt / sumwin
		}
	})

	return result, mean
}

// Lowpass is bandpass on [rate, fHigh]: the band starts at one grid step,
// not at zero, because the coefficient solver's D is singular at omega=0
// (spec.md §9 -- a deliberate choice, not a bug, preserved from the
// original implementation).
func Lowpass(time, flux, weight []float64, fHigh, low, high, rate float64, useWeight bool) (result []float64, mean float64) {
	return Bandpass(time, flux, weight, rate, fHigh, low, high, rate, useWeight)
}

// Highpass is flux - Lowpass(flux, fLow): everything not passed by the
// matching lowpass filter (spec.md §4.G).
func Highpass(time, flux, weight []float64, fLow, low, high, rate float64, useWeight bool) (result []float64, mean float64) {
	lp, lpMean := Lowpass(time, flux, weight, fLow, low, high, rate, useWeight)

	result = make([]float64, len(flux))
	for i := range flux {
		result[i] = flux[i] - lpMean - lp[i]
	}
	return result, lpMean
}
