package spectral

import (
	"fmt"
	"math"
)

// goldenRatio and its complement, used by GoldenSectionMin's two-point
// bracket invariant (fmin.c: GOLD / IGOLD).
const (
	goldenRatio      = 0.6180339887498948482046
	inverseGoldRatio = 0.3819660112501051517954
	maxGoldenIter    = 100
)

// ConvergenceError reports that GoldenSectionMin exhausted its iteration
// budget without reaching the requested tolerance. Per spec.md §7 this is
// the one fatal numerical error the core can raise.
type ConvergenceError struct {
	MaxIter int
}

func (e *ConvergenceError) Error() string {
	return fmt.Sprintf("golden-section search: accuracy not reached in %d iterations", e.MaxIter)
}

// GoldenSectionMin finds the minimum of f on [a, b] via golden-section
// search to within tolerance eps, returning the minimizing x. a must be
// less than b. Mirrors fmin.c: fmin_golden's two-point invariant: at every
// iteration the smaller of f(x1), f(x2) tells us which half of [a, b] to
// keep, and the kept evaluation is reused rather than recomputed.
func GoldenSectionMin(f func(float64) float64, a, b, eps float64) (float64, error) {
	x1 := goldenRatio*a + inverseGoldRatio*b
	x2 := inverseGoldRatio*a + goldenRatio*b
	fx1 := f(x1)
	fx2 := f(x2)

	for i := 0; i < maxGoldenIter; i++ {
		if fx1 < fx2 {
			b = x2
			x2 = x1
			fx2 = fx1
			x1 = goldenRatio*a + inverseGoldRatio*b
			fx1 = f(x1)
		} else {
			a = x1
			x1 = x2
			fx1 = fx2
			x2 = inverseGoldRatio*a + goldenRatio*b
			fx2 = f(x2)
		}

		if math.Abs(b-a) < eps {
			return a + (b-a)/2, nil
		}
	}

	return 0, &ConvergenceError{MaxIter: maxGoldenIter}
}
