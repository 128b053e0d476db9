package spectral

// Sweep evaluates the power spectrum (and, if alpha/beta are non-nil, the
// coefficients themselves) over the frequency grid freq (cyclic, microHz),
// writing into power[i] = alpha(omega_i)^2 + beta(omega_i)^2. alpha and
// beta may be nil if the caller only wants power.
//
// The loop is embarrassingly parallel across i (spec.md §4.C): every
// output slot depends only on that slot's frequency, so each goroutine
// owns a disjoint contiguous range of i and there is no shared mutable
// state to protect.
func Sweep(time, flux, freq []float64, power, alpha, beta []float64) {
	forEachChunk(len(freq), func(lo, hi int) {
		for i := lo; i < hi; i++ {
			omega := freq[i] * TwoPiMicro
			a, b := Coeffs(time, flux, omega)
			power[i] = a*a + b*b
			if alpha != nil {
				alpha[i] = a
			}
			if beta != nil {
				beta[i] = b
			}
		}
	})
}

// SweepWeighted is the weighted variant of Sweep. wsum = sum(weight) is
// computed once outside the parallel region and shared read-only across
// workers (spec.md §4.C: "Weighted variant pre-computes wsum ... once
// outside the parallel region and passes it to every solver call").
func SweepWeighted(time, flux, weight, freq []float64, power, alpha, beta []float64) {
	wsum := Sum(weight)

	forEachChunk(len(freq), func(lo, hi int) {
		for i := lo; i < hi; i++ {
			omega := freq[i] * TwoPiMicro
			a, b := CoeffsWeighted(time, flux, weight, omega, wsum)
			power[i] = a*a + b*b
			if alpha != nil {
				alpha[i] = a
			}
			if beta != nil {
				beta[i] = b
			}
		}
	})
}
