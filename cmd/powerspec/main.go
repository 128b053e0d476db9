// Command powerspec computes the least-squares power spectrum of an
// irregularly sampled time series, and optionally its spectral window
// function, over a frequency grid (spec.md §4.C, §4.E).
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/mossum/tsafourier/internal/cliopts"
	"github.com/mossum/tsafourier/internal/spectral"
	"github.com/mossum/tsafourier/internal/tsio"
)

func main() {
	opts, err := cliopts.ParsePowerspec(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "powerspec: %v\n", err)
		fmt.Fprintln(os.Stderr, "usage: powerspec [-q] [-w] [-tsec|-tday|-tms] [-noprep] [-fast] [-window F0] -f {auto | low high rate} input output")
		os.Exit(1)
	}

	if err := run(opts); err != nil {
		log.Print(err)
		os.Exit(1)
	}
}

func run(opts cliopts.Options) error {
	in, err := os.Open(opts.Input)
	if err != nil {
		return fmt.Errorf("opening input: %w", err)
	}
	defer in.Close()

	series, err := tsio.ReadSeries(in, opts.Weighted)
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}
	scale := opts.Unit.Scale()
	for i := range series.Time {
		series.Time[i] *= scale
	}

	if !opts.NoPrep && !opts.HasWindow {
		mean := spectral.Mean(series.Flux)
		spectral.ScaAdd(series.Flux, -mean)
	}

	if !opts.Quiet {
		if opts.HasWindow {
			log.Printf("powerspec: computing the spectral window of %s centered at f0=%.3f uHz", opts.Input, opts.WindowF0)
		} else {
			log.Printf("powerspec: computing the power spectrum of %s", opts.Input)
		}
		if nyq, suggestedRate, ok := nyquistInfo(series); ok {
			log.Printf("powerspec: Nyquist estimate %.3f uHz, suggested minimum sampling rate %.6f uHz", nyq, suggestedRate)
		}
	}

	low, high, rate, err := resolveGrid(opts, series)
	if err != nil {
		return err
	}
	if !opts.Quiet {
		log.Printf("powerspec: frequency range [%.3f, %.3f] uHz at rate %.6f uHz", low, high, rate)
	}

	m := spectral.StepCount(low, high, rate)
	freq := make([]float64, m)
	spectral.Linspace(freq, low, rate)

	// Mutually exclusive with the power sweep below, mirroring
	// powerspec.c's "if (windowmode == 0) fourier(...) else
	// windowfunction(...)" branch: window mode has no use for power,
	// alpha, or beta, so it skips the sweep entirely (SPEC_FULL.md §4,
	// "pseudo fast-mode").
	target := freq
	var values []float64
	if opts.HasWindow {
		win := make([]float64, m)
		if opts.Weighted {
			spectral.WindowWeighted(series.Time, freq, series.Weight, opts.WindowF0, win)
		} else {
			spectral.Window(series.Time, freq, opts.WindowF0, win)
		}
		values = win
	} else {
		power := make([]float64, m)
		alpha := make([]float64, m)
		beta := make([]float64, m)
		if opts.Weighted {
			spectral.SweepWeighted(series.Time, series.Flux, series.Weight, freq, power, alpha, beta)
		} else {
			spectral.Sweep(series.Time, series.Flux, freq, power, alpha, beta)
		}
		values = power
	}

	out, err := os.Create(opts.Output)
	if err != nil {
		return fmt.Errorf("opening output: %w", err)
	}
	defer out.Close()

	if err := tsio.WriteColumns(out, target, values); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}

	if !opts.Quiet {
		log.Printf("powerspec: %d samples, %d frequency bins, wrote output to %s", len(series.Time), m, opts.Output)
	}
	return nil
}

func resolveGrid(opts cliopts.Options, series tsio.Series) (low, high, rate float64, err error) {
	if !opts.Grid.Auto {
		return cliopts.ResolveGrid(opts.Grid, 0, 0)
	}
	medianDt, baseline := sampling(series)
	return cliopts.ResolveGrid(opts.Grid, medianDt, baseline)
}

// nyquistInfo reports the Nyquist frequency and four-times-oversampled
// rate implied by the data's own sampling, independent of which grid the
// run actually uses -- an informational line from the original driver
// (SPEC_FULL.md §4).
func nyquistInfo(series tsio.Series) (nyquist, suggestedRate float64, ok bool) {
	if len(series.Time) < 2 {
		return 0, 0, false
	}
	medianDt, baseline := sampling(series)
	if medianDt <= 0 || baseline <= 0 {
		return 0, 0, false
	}
	return 1e6 / (2 * medianDt), 1e6 / (4 * baseline), true
}

func sampling(series tsio.Series) (medianDt, baseline float64) {
	dt := make([]float64, len(series.Time)-1)
	spectral.Diff(series.Time, dt)
	medianDt = spectral.Median(dt)
	baseline = series.Time[len(series.Time)-1] - series.Time[0]
	return medianDt, baseline
}
