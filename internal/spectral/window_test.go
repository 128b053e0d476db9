package spectral

import (
	"math"
	"testing"
)

func TestWindowPeaksAtZeroLag(t *testing.T) {
	n := 400
	time := make([]float64, n)
	for i := range time {
		time[i] = float64(i) * 10
	}

	f0 := 1000.0
	freq := make([]float64, StepCount(f0-50, f0+50, 1))
	Linspace(freq, f0-50, 1)

	win := make([]float64, len(freq))
	Window(time, freq, f0, win)

	best := 0
	for i := range win {
		if win[i] > win[best] {
			best = i
		}
	}
	if math.Abs(freq[best]-f0) > 1 {
		t.Errorf("window peak at %v microHz, want ~%v", freq[best], f0)
	}
}

func TestWindowSumPositive(t *testing.T) {
	n := 200
	time := make([]float64, n)
	weight := make([]float64, n)
	for i := range time {
		time[i] = float64(i)
		weight[i] = 1.0
	}

	sum := WindowSum(1000, 500, 1500, 1, time, weight, false)
	if sum <= 0 {
		t.Errorf("WindowSum = %v, want > 0", sum)
	}

	sumW := WindowSum(1000, 500, 1500, 1, time, weight, true)
	if math.Abs(sum-sumW) > 1e-6 {
		t.Errorf("weighted(w=1) WindowSum %v != unweighted %v", sumW, sum)
	}
}
