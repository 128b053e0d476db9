// Package cliopts parses the shared argument grammar of the powerspec,
// fclean, and filter drivers. None of the three tools' flag sets is a
// strict subset of flag.FlagSet's model (concatenated unit flags like
// -tsec, variable-arity flags like -f that takes either one token or
// three), so the scan is hand-rolled over os.Args the way the original
// driver's cmdarg does it.
package cliopts

import (
	"fmt"
	"log"
	"strconv"
	"strings"
)

// TimeUnit is the time-column scale applied before the core ever sees a
// sample time.
type TimeUnit int

const (
	Seconds TimeUnit = iota
	Days
	Megaseconds
)

// Seconds per unit, applied as a multiplier to the raw column value.
func (u TimeUnit) Scale() float64 {
	switch u {
	case Days:
		return 86400
	case Megaseconds:
		return 1e6
	default:
		return 1
	}
}

// FilterMode selects which of the three pass-band shapes a filter run uses.
type FilterMode int

const (
	NoFilter FilterMode = iota
	Band
	Low
	High
)

func (m FilterMode) String() string {
	switch m {
	case Band:
		return "band"
	case Low:
		return "low"
	case High:
		return "high"
	default:
		return "none"
	}
}

// Grid holds a manually specified or auto-computed sampling grid for the
// frequency axis, in the core's microHz convention.
type Grid struct {
	Low, High, Rate float64
	Auto            bool
}

// Options is the parsed, validated form of one driver invocation's
// command line. It carries nothing the core needs to know about argv
// syntax -- only the values the driver passes on to internal/tsio and
// internal/spectral.
type Options struct {
	Quiet     bool
	Weighted  bool
	Unit      TimeUnit
	NoPrep    bool
	Fast      bool
	WindowF0  float64
	HasWindow bool
	Grid      Grid

	// fclean
	K int

	// filter
	Mode         FilterMode
	Band1, Band2 float64

	Input, Output string
}

// ArgError is an argument-parsing or validation failure. Per the driver's
// error taxonomy it always maps to exit code 1 with a usage message.
type ArgError struct {
	msg string
}

func (e *ArgError) Error() string { return e.msg }

func argErrorf(format string, args ...any) error {
	return &ArgError{msg: fmt.Sprintf(format, args...)}
}

// Kind distinguishes which driver is parsing, since each has a different
// tail grammar (-window F0, -n K, -{band|low|high}).
type Kind int

const (
	KindPowerspec Kind = iota
	KindFclean
	KindFilter
)

// Parse scans argv (excluding argv[0]) for the given driver kind.
func Parse(k Kind, argv []string) (Options, error) {
	opts := Options{Unit: Seconds}
	i := 0

	next := func(flag string) (string, error) {
		i++
		if i >= len(argv) {
			return "", argErrorf("%s requires an argument", flag)
		}
		return argv[i], nil
	}
	nextFloat := func(flag string) (float64, error) {
		s, err := next(flag)
		if err != nil {
			return 0, err
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, argErrorf("%s: %q is not a number", flag, s)
		}
		return v, nil
	}

	haveGrid := false
	haveMode := k != KindFilter

	for ; i < len(argv); i++ {
		a := argv[i]
		switch {
		case a == "-q":
			opts.Quiet = true
		case a == "-w":
			opts.Weighted = true
		case a == "-tsec":
			opts.Unit = Seconds
		case a == "-tday":
			opts.Unit = Days
		case a == "-tms":
			opts.Unit = Megaseconds
		case strings.HasPrefix(a, "-t"):
			log.Printf("unknown time unit %q, assuming seconds", a)
			opts.Unit = Seconds
		case a == "-noprep":
			opts.NoPrep = true
		case a == "-fast":
			opts.Fast = true
		case a == "-window" && k == KindPowerspec:
			v, err := nextFloat("-window")
			if err != nil {
				return Options{}, err
			}
			opts.WindowF0 = v
			opts.HasWindow = true
		case a == "-n" && k == KindFclean:
			s, err := next("-n")
			if err != nil {
				return Options{}, err
			}
			n, err := strconv.Atoi(s)
			if err != nil || n <= 0 {
				return Options{}, argErrorf("-n requires a positive integer, got %q", s)
			}
			opts.K = n
		case a == "-band" && k == KindFilter:
			f1, err := nextFloat("-band")
			if err != nil {
				return Options{}, err
			}
			f2, err := nextFloat("-band")
			if err != nil {
				return Options{}, err
			}
			opts.Mode = Band
			opts.Band1, opts.Band2 = f1, f2
			haveMode = true
		case a == "-low" && k == KindFilter:
			f, err := nextFloat("-low")
			if err != nil {
				return Options{}, err
			}
			opts.Mode = Low
			opts.Band1 = f
			haveMode = true
		case a == "-high" && k == KindFilter:
			f, err := nextFloat("-high")
			if err != nil {
				return Options{}, err
			}
			opts.Mode = High
			opts.Band1 = f
			haveMode = true
		case a == "-f":
			s, err := next("-f")
			if err != nil {
				return Options{}, err
			}
			if s == "auto" {
				opts.Grid = Grid{Auto: true}
			} else {
				low, err := strconv.ParseFloat(s, 64)
				if err != nil {
					return Options{}, argErrorf("-f: %q is not a number and not \"auto\"", s)
				}
				high, err := nextFloat("-f")
				if err != nil {
					return Options{}, err
				}
				rate, err := nextFloat("-f")
				if err != nil {
					return Options{}, err
				}
				if high <= low {
					return Options{}, argErrorf("-f: high (%v) must exceed low (%v)", high, low)
				}
				if rate <= 0 || rate >= high-low {
					return Options{}, argErrorf("-f: rate (%v) must satisfy 0 < rate < high-low (%v)", rate, high-low)
				}
				opts.Grid = Grid{Low: low, High: high, Rate: rate}
			}
			haveGrid = true
		default:
			if len(a) > 0 && a[0] == '-' {
				return Options{}, argErrorf("unrecognized flag %q", a)
			}
			// First non-flag token is input, second is output; anything
			// further is an argument-count error.
			if opts.Input == "" {
				opts.Input = a
			} else if opts.Output == "" {
				opts.Output = a
			} else {
				return Options{}, argErrorf("unexpected extra argument %q", a)
			}
		}
	}

	if opts.Fast {
		opts.Quiet = true
	}

	if !haveGrid {
		return Options{}, argErrorf("missing required -f {auto | low high rate}")
	}
	if !haveMode {
		return Options{}, argErrorf("filter requires one of -band f1 f2, -low f, -high f")
	}
	if opts.Grid.Auto && opts.Fast {
		return Options{}, argErrorf("-fast disables auto sampling; specify -f low high rate explicitly")
	}
	if opts.Input == "" || opts.Output == "" {
		return Options{}, argErrorf("missing input and/or output file")
	}

	return opts, nil
}

// ParsePowerspec parses powerspec's argument grammar.
func ParsePowerspec(argv []string) (Options, error) { return Parse(KindPowerspec, argv) }

// ParseFclean parses fclean's argument grammar.
func ParseFclean(argv []string) (Options, error) {
	opts, err := Parse(KindFclean, argv)
	if err != nil {
		return Options{}, err
	}
	if opts.K <= 0 {
		return Options{}, argErrorf("fclean requires -n K")
	}
	return opts, nil
}

// ParseFilter parses filter's argument grammar.
func ParseFilter(argv []string) (Options, error) { return Parse(KindFilter, argv) }

// ResolveGrid turns an auto or manual Grid into concrete low/high/rate
// values given the sample times (already unit-converted to seconds).
// Auto sampling sets low = 5 µHz, high = Nyquist from the median sample
// spacing, rate for four-times oversampling over the time baseline
// (spec.md §6).
func ResolveGrid(g Grid, medianDt, baseline float64) (low, high, rate float64, err error) {
	if !g.Auto {
		return g.Low, g.High, g.Rate, nil
	}
	if medianDt <= 0 {
		return 0, 0, 0, argErrorf("auto sampling requires a positive median sample spacing")
	}
	low = 5
	high = 1e6 / (2 * medianDt)
	rate = 1e6 / (4 * baseline)
	if rate <= 0 || rate >= high-low {
		return 0, 0, 0, argErrorf("auto sampling produced an invalid grid (low=%v high=%v rate=%v)", low, high, rate)
	}
	return low, high, rate, nil
}
