// Command fclean extracts the K strongest sinusoidal components from an
// irregularly sampled time series via iterative CLEAN (spec.md §4.F). It
// writes two artifacts: the CLEANed residual series to the given output
// path, and the extracted components to output+".cleanlog" (spec.md §6).
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
	opts, err := cliopts.ParseFclean(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "fclean: %v\n", err)
		fmt.Fprintln(os.Stderr, "usage: fclean [-q] [-w] [-tsec|-tday|-tms] [-noprep] [-fast] -n K -f {auto | low high rate} input output")
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

	var mean float64
	if !opts.NoPrep {
		mean = spectral.Mean(series.Flux)
		spectral.ScaAdd(series.Flux, -mean)
	}

	if !opts.Quiet {
		log.Printf("fclean: extracting up to %d component(s) from %s", opts.K, opts.Input)
	}

	low, high, rate, err := resolveGrid(opts, series)
	if err != nil {
		return err
	}
	if !opts.Quiet {
		log.Printf("fclean: frequency range [%.3f, %.3f] uHz at rate %.6f uHz", low, high, rate)
	}
	m := spectral.StepCount(low, high, rate)
	freq := make([]float64, m)
	spectral.Linspace(freq, low, rate)

	var components []spectral.CleanComponent
	var cleanErr error
	if opts.Weighted {
		components, cleanErr = spectral.CleanWeighted(series.Time, series.Flux, series.Weight, freq, opts.K)
	} else {
		components, cleanErr = spectral.Clean(series.Time, series.Flux, freq, opts.K)
	}

	// series.Flux was mutated into the residual by Clean/CleanWeighted;
	// restore the mean subtracted above before writing it out as the
	// CLEANed time series (spec.md §4.F).
	spectral.ScaAdd(series.Flux, mean)

	out, err := os.Create(opts.Output)
	if err != nil {
		return fmt.Errorf("opening output: %w", err)
	}
	defer out.Close()

	if opts.Weighted {
		err = tsio.WriteColumnsWeighted(out, series.Time, series.Flux, series.Weight)
	} else {
		err = tsio.WriteColumns(out, series.Time, series.Flux)
	}
	if err != nil {
		return fmt.Errorf("writing output: %w", err)
	}

	logPath := opts.Output + ".cleanlog"
	logFile, err := os.Create(logPath)
	if err != nil {
		return fmt.Errorf("opening clean log: %w", err)
	}
	defer logFile.Close()

	if err := tsio.WriteCleanLog(logFile, components); err != nil {
		return fmt.Errorf("writing clean log: %w", err)
	}

	if !opts.Quiet {
		log.Printf("fclean: %d samples, %d requested component(s), %d extracted, residual written to %s, log written to %s", len(series.Time), opts.K, len(components), opts.Output, logPath)
	}

	if cleanErr != nil {
		return fmt.Errorf("CLEAN loop: %w", cleanErr)
	}
	return nil
}

func resolveGrid(opts cliopts.Options, series tsio.Series) (low, high, rate float64, err error) {
	if !opts.Grid.Auto {
		return cliopts.ResolveGrid(opts.Grid, 0, 0)
	}
	dt := make([]float64, len(series.Time)-1)
	spectral.Diff(series.Time, dt)
	medianDt := spectral.Median(dt)
	baseline := series.Time[len(series.Time)-1] - series.Time[0]
	return cliopts.ResolveGrid(opts.Grid, medianDt, baseline)
}
