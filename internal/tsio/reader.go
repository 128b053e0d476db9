// Package tsio reads and writes the whitespace-column time-series files
// the three drivers consume and produce (spec.md §6).
package tsio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Series is an unweighted or weighted sample set read from an input file.
type Series struct {
	Time   []float64
	Flux   []float64
	Weight []float64 // nil unless the file carried a third column
}

// ReadSeries reads whitespace-separated ASCII records, one per line, of
// either "time flux" or "time flux weight" (when weighted is true), so
// weighted fixes the expected column count. Blank lines are skipped; the
// first line with a different count of fields, or with a field that is not
// a number, terminates reading at that point rather than erroring, and
// none of its values are kept, mirroring the original reader's
// line-counting pass (fileio.c: cmdarg/readcols).
func ReadSeries(r io.Reader, weighted bool) (Series, error) {
	wantCols := 2
	if weighted {
		wantCols = 3
	}

	var s Series
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != wantCols {
			break
		}

		t, err := strconv.ParseFloat(fields[0], 64)
		if err != nil {
			break
		}
		f, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			break
		}

		var w float64
		if weighted {
			w, err = strconv.ParseFloat(fields[2], 64)
			if err != nil {
				break
			}
		}

		s.Time = append(s.Time, t)
		s.Flux = append(s.Flux, f)
		if weighted {
			s.Weight = append(s.Weight, w)
		}
	}
	if err := scanner.Err(); err != nil {
		return Series{}, fmt.Errorf("reading time series: %w", err)
	}
	if len(s.Time) < 2 {
		return Series{}, fmt.Errorf("reading time series: need at least 2 samples, got %d", len(s.Time))
	}
	return s, nil
}
