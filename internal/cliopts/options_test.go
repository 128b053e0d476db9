package cliopts

import (
	"errors"
	"testing"
)

func TestParsePowerspecManualGrid(t *testing.T) {
	argv := []string{"-q", "-w", "-tday", "-f", "1000", "5000", "1", "in.dat", "out.dat"}
	opts, err := ParsePowerspec(argv)
	if err != nil {
		t.Fatalf("ParsePowerspec returned error: %v", err)
	}
	if !opts.Quiet || !opts.Weighted {
		t.Errorf("opts = %+v, want Quiet and Weighted set", opts)
	}
	if opts.Unit != Days {
		t.Errorf("Unit = %v, want Days", opts.Unit)
	}
	if opts.Grid.Auto {
		t.Error("Grid.Auto = true, want false for a manual grid")
	}
	if opts.Grid.Low != 1000 || opts.Grid.High != 5000 || opts.Grid.Rate != 1 {
		t.Errorf("Grid = %+v, want {1000 5000 1 false}", opts.Grid)
	}
	if opts.Input != "in.dat" || opts.Output != "out.dat" {
		t.Errorf("Input/Output = %q/%q", opts.Input, opts.Output)
	}
}

func TestParsePowerspecAutoGrid(t *testing.T) {
	argv := []string{"-f", "auto", "in.dat", "out.dat"}
	opts, err := ParsePowerspec(argv)
	if err != nil {
		t.Fatalf("ParsePowerspec returned error: %v", err)
	}
	if !opts.Grid.Auto {
		t.Error("Grid.Auto = false, want true")
	}
}

func TestParsePowerspecWindow(t *testing.T) {
	argv := []string{"-window", "1234.5", "-f", "auto", "in.dat", "out.dat"}
	opts, err := ParsePowerspec(argv)
	if err != nil {
		t.Fatalf("ParsePowerspec returned error: %v", err)
	}
	if !opts.HasWindow || opts.WindowF0 != 1234.5 {
		t.Errorf("HasWindow/WindowF0 = %v/%v, want true/1234.5", opts.HasWindow, opts.WindowF0)
	}
}

func TestParsePowerspecMissingGridIsArgError(t *testing.T) {
	argv := []string{"in.dat", "out.dat"}
	_, err := ParsePowerspec(argv)
	var argErr *ArgError
	if !errors.As(err, &argErr) {
		t.Fatalf("expected *ArgError, got %v", err)
	}
}

func TestParseFcleanRequiresK(t *testing.T) {
	argv := []string{"-f", "auto", "in.dat", "out.dat"}
	_, err := ParseFclean(argv)
	var argErr *ArgError
	if !errors.As(err, &argErr) {
		t.Fatalf("expected *ArgError for missing -n, got %v", err)
	}
}

func TestParseFcleanWithK(t *testing.T) {
	argv := []string{"-n", "5", "-f", "1000", "5000", "1", "in.dat", "out.dat"}
	opts, err := ParseFclean(argv)
	if err != nil {
		t.Fatalf("ParseFclean returned error: %v", err)
	}
	if opts.K != 5 {
		t.Errorf("K = %d, want 5", opts.K)
	}
}

func TestParseFilterModes(t *testing.T) {
	tests := []struct {
		name  string
		argv  []string
		mode  FilterMode
		band1 float64
		band2 float64
	}{
		{"band", []string{"-band", "2000", "3000", "-f", "1000", "5000", "1", "i", "o"}, Band, 2000, 3000},
		{"low", []string{"-low", "2000", "-f", "1000", "5000", "1", "i", "o"}, Low, 2000, 0},
		{"high", []string{"-high", "2000", "-f", "1000", "5000", "1", "i", "o"}, High, 2000, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts, err := ParseFilter(tt.argv)
			if err != nil {
				t.Fatalf("ParseFilter returned error: %v", err)
			}
			if opts.Mode != tt.mode {
				t.Errorf("Mode = %v, want %v", opts.Mode, tt.mode)
			}
			if opts.Band1 != tt.band1 || opts.Band2 != tt.band2 {
				t.Errorf("Band1/Band2 = %v/%v, want %v/%v", opts.Band1, opts.Band2, tt.band1, tt.band2)
			}
		})
	}
}

func TestParseFilterRequiresMode(t *testing.T) {
	argv := []string{"-f", "auto", "i", "o"}
	_, err := ParseFilter(argv)
	var argErr *ArgError
	if !errors.As(err, &argErr) {
		t.Fatalf("expected *ArgError for missing filter mode, got %v", err)
	}
}

func TestFastImpliesQuiet(t *testing.T) {
	argv := []string{"-fast", "-f", "1000", "5000", "1", "in.dat", "out.dat"}
	opts, err := ParsePowerspec(argv)
	if err != nil {
		t.Fatalf("ParsePowerspec returned error: %v", err)
	}
	if !opts.Quiet {
		t.Error("-fast did not imply Quiet")
	}
}

func TestFastRejectsAutoGrid(t *testing.T) {
	argv := []string{"-fast", "-f", "auto", "in.dat", "out.dat"}
	_, err := ParsePowerspec(argv)
	var argErr *ArgError
	if !errors.As(err, &argErr) {
		t.Fatalf("expected *ArgError for -fast with auto grid, got %v", err)
	}
}

func TestManualGridRejectsRateTooLarge(t *testing.T) {
	argv := []string{"-f", "1000", "1010", "50", "in.dat", "out.dat"}
	_, err := ParsePowerspec(argv)
	var argErr *ArgError
	if !errors.As(err, &argErr) {
		t.Fatalf("expected *ArgError for rate >= high-low, got %v", err)
	}
}

func TestResolveGridAuto(t *testing.T) {
	low, high, rate, err := ResolveGrid(Grid{Auto: true}, 2.0, 1000.0)
	if err != nil {
		t.Fatalf("ResolveGrid returned error: %v", err)
	}
	if low != 5 {
		t.Errorf("low = %v, want 5", low)
	}
	if high != 250000 {
		t.Errorf("high = %v, want 250000", high)
	}
	if rate != 250 {
		t.Errorf("rate = %v, want 250", rate)
	}
}

func TestResolveGridManualPassesThrough(t *testing.T) {
	g := Grid{Low: 1, High: 2, Rate: 0.1}
	low, high, rate, err := ResolveGrid(g, 999, 999)
	if err != nil {
		t.Fatalf("ResolveGrid returned error: %v", err)
	}
	if low != 1 || high != 2 || rate != 0.1 {
		t.Errorf("got %v/%v/%v, want pass-through of manual grid", low, high, rate)
	}
}
