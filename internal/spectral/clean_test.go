package spectral

import (
	"math"
	"testing"
)

func TestCleanExtractsTwoTones(t *testing.T) {
	n := 1000
	time := make([]float64, n)
	for i := range time {
		time[i] = float64(i) * 10
	}
	f1, f2 := 2000.0, 3500.0
	flux := sineFlux(time, 1.0, 0.0, f1*TwoPiMicro)
	second := sineFlux(time, 0.0, 0.6, f2*TwoPiMicro)
	for i := range flux {
		flux[i] += second[i]
	}

	freq := make([]float64, StepCount(1000, 5000, 1))
	Linspace(freq, 1000, 1)

	work := append([]float64(nil), flux...)
	components, err := Clean(time, work, freq, 2)
	if err != nil {
		t.Fatalf("Clean returned error: %v", err)
	}
	if len(components) != 2 {
		t.Fatalf("len(components) = %d, want 2", len(components))
	}

	found := map[float64]bool{}
	for _, c := range components {
		found[math.Round(c.Freq/10)*10] = true
	}
	if !found[2000] || !found[3500] {
		t.Errorf("components = %+v, want frequencies near 2000 and 3500", components)
	}
}

func TestCleanResidualShrinks(t *testing.T) {
	n := 500
	time := make([]float64, n)
	for i := range time {
		time[i] = float64(i)
	}
	flux := sineFlux(time, 1.0, 0.3, 2500*TwoPiMicro)

	freq := make([]float64, StepCount(1000, 5000, 1))
	Linspace(freq, 1000, 1)

	before := Sum(squareEach(flux))
	work := append([]float64(nil), flux...)
	if _, err := Clean(time, work, freq, 1); err != nil {
		t.Fatalf("Clean returned error: %v", err)
	}
	after := Sum(squareEach(work))

	if after >= before {
		t.Errorf("residual energy %v did not shrink below original %v", after, before)
	}
}

func squareEach(x []float64) []float64 {
	y := make([]float64, len(x))
	for i, v := range x {
		y[i] = v * v
	}
	return y
}
