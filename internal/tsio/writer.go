package tsio

import (
	"bufio"
	"fmt"
	"io"

	"github.com/mossum/tsafourier/internal/spectral"
)

// WriteColumns writes the two-column "%15.9e %18.9e" format used for power
// spectra, filtered series, and window functions (spec.md §6).
func WriteColumns(w io.Writer, x, y []float64) error {
	if len(x) != len(y) {
		return fmt.Errorf("writing columns: len(x)=%d != len(y)=%d", len(x), len(y))
	}
	bw := bufio.NewWriter(w)
	for i := range x {
		if _, err := fmt.Fprintf(bw, "%15.9e %18.9e\n", x[i], y[i]); err != nil {
			return fmt.Errorf("writing columns: %w", err)
		}
	}
	return bw.Flush()
}

// WriteColumnsWeighted writes the three-column filtered-series-with-weight
// format, preserving the original weight column unchanged (spec.md §6).
func WriteColumnsWeighted(w io.Writer, time, flux, weight []float64) error {
	if len(time) != len(flux) || len(time) != len(weight) {
		return fmt.Errorf("writing weighted columns: mismatched lengths")
	}
	bw := bufio.NewWriter(w)
	for i := range time {
		if _, err := fmt.Fprintf(bw, "%15.9e %18.9e %15.9e\n", time[i], flux[i], weight[i]); err != nil {
			return fmt.Errorf("writing weighted columns: %w", err)
		}
	}
	return bw.Flush()
}

// WriteCleanLog writes the .cleanlog format: a header block followed by
// one "%6d %15.6f %12.6f %12.6f %12.6f" line per extracted component
// (spec.md §6).
func WriteCleanLog(w io.Writer, components []spectral.CleanComponent) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "# CLEAN log: %d component(s)\n", len(components)); err != nil {
		return fmt.Errorf("writing clean log: %w", err)
	}
	if _, err := fmt.Fprintf(bw, "#%5s %15s %12s %12s %12s\n", "iter", "freq(uHz)", "power", "alpha", "beta"); err != nil {
		return fmt.Errorf("writing clean log: %w", err)
	}
	for _, c := range components {
		if _, err := fmt.Fprintf(bw, "%6d %15.6f %12.6f %12.6f %12.6f\n", c.Index, c.Freq, c.Power, c.Alpha, c.Beta); err != nil {
			return fmt.Errorf("writing clean log: %w", err)
		}
	}
	return bw.Flush()
}
