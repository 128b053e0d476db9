package spectral

import "math"

// CleanComponent is one extracted sinusoid: the peak frequency (microHz)
// and fitted coefficients, logged by CLEAN after each iteration
// (spec.md §4.F).
type CleanComponent struct {
	Index int
	Freq  float64
	Power float64
	Alpha float64
	Beta  float64
}

// Clean iteratively extracts the K strongest sinusoids from flux (a
// mean-subtracted working copy owned by the caller), subtracting each one
// in the time domain before searching for the next. freq is the full user
// grid; it is reused unchanged across iterations -- spec.md §9 notes the
// CLEAN loop does no grid refinement beyond the golden-section step inside
// the peak finder itself. flux is mutated in place into the residual.
func Clean(time, flux, freq []float64, k int) ([]CleanComponent, error) {
	return clean(time, flux, freq, k, func(t, f, fr []float64) (Peak, error) {
		return FindPeak(t, f, fr)
	})
}

// CleanWeighted is the weighted variant of Clean.
func CleanWeighted(time, flux, weight, freq []float64, k int) ([]CleanComponent, error) {
	return clean(time, flux, freq, k, func(t, f, fr []float64) (Peak, error) {
		return FindPeakWeighted(t, f, weight, fr)
	})
}

func clean(time, flux, freq []float64, k int, findPeak func(time, flux, freq []float64) (Peak, error)) ([]CleanComponent, error) {
	components := make([]CleanComponent, 0, k)

	for iter := 0; iter < k; iter++ {
		peak, err := findPeak(time, flux, freq)
		if err != nil {
			return components, err
		}

		omega := peak.Freq * TwoPiMicro
		for j := range flux {
			flux[j] -= peak.Alpha*math.Sin(omega*time[j]) + peak.Beta*math.Cos(omega*time[j])
		}

		components = append(components, CleanComponent{
			Index: iter,
			Freq:  peak.Freq,
			Power: peak.Alpha*peak.Alpha + peak.Beta*peak.Beta,
			Alpha: peak.Alpha,
			Beta:  peak.Beta,
		})
	}

	return components, nil
}
