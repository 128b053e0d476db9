package spectral

import "testing"

func TestSum(t *testing.T) {
	tests := []struct {
		name string
		x    []float64
		want float64
	}{
		{"empty", []float64{}, 0},
		{"single", []float64{3.5}, 3.5},
		{"several", []float64{1, 2, 3, 4}, 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Sum(tt.x); got != tt.want {
				t.Errorf("Sum(%v) = %v, want %v", tt.x, got, tt.want)
			}
		})
	}
}

func TestMean(t *testing.T) {
	x := []float64{2, 4, 6}
	if got := Mean(x); got != 4 {
		t.Errorf("Mean(%v) = %v, want 4", x, got)
	}
}

func TestMeanEmptyPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Mean(nil) did not panic")
		}
	}()
	Mean(nil)
}

func TestDiff(t *testing.T) {
	x := []float64{1, 3, 6, 10}
	y := make([]float64, len(x)-1)
	Diff(x, y)
	want := []float64{2, 3, 4}
	for i := range want {
		if y[i] != want[i] {
			t.Errorf("Diff()[%d] = %v, want %v", i, y[i], want[i])
		}
	}
}

func TestScaAdd(t *testing.T) {
	x := []float64{1, 2, 3}
	ScaAdd(x, 10)
	want := []float64{11, 12, 13}
	for i := range want {
		if x[i] != want[i] {
			t.Errorf("ScaAdd()[%d] = %v, want %v", i, x[i], want[i])
		}
	}
}

func TestLinspace(t *testing.T) {
	x := make([]float64, 5)
	Linspace(x, 10, 2)
	want := []float64{10, 12, 14, 16, 18}
	for i := range want {
		if x[i] != want[i] {
			t.Errorf("Linspace()[%d] = %v, want %v", i, x[i], want[i])
		}
	}
}

func TestStepCount(t *testing.T) {
	tests := []struct {
		name       string
		a, b, rate float64
		want       int
	}{
		{"exact multiple", 0, 10, 1, 9},
		{"one step", 0, 1, 1, 0},
		{"rate of 4", 1000, 5000, 4, 999},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StepCount(tt.a, tt.b, tt.rate); got != tt.want {
				t.Errorf("StepCount(%v, %v, %v) = %v, want %v", tt.a, tt.b, tt.rate, got, tt.want)
			}
		})
	}
}

func TestMedian(t *testing.T) {
	tests := []struct {
		name string
		x    []float64
		want float64
	}{
		{"odd", []float64{5, 1, 3}, 3},
		{"even", []float64{4, 1, 3, 2}, 2.5},
		{"single", []float64{7}, 7},
		{"already sorted", []float64{1, 2, 3, 4, 5}, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			orig := append([]float64(nil), tt.x...)
			if got := Median(tt.x); got != tt.want {
				t.Errorf("Median(%v) = %v, want %v", tt.x, got, tt.want)
			}
			for i := range orig {
				if tt.x[i] != orig[i] {
					t.Errorf("Median mutated its input at %d: %v != %v", i, tt.x[i], orig[i])
				}
			}
		})
	}
}
