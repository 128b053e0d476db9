package spectral

import "math"

// Coeffs fits flux by alpha*sin(omega*t) + beta*cos(omega*t) in the
// least-squares sense at a single angular frequency omega, unweighted.
//
// Closed-form normal equations (see tsfourier.c: alpbet):
//
//	S  = sum f*sin(omega*t)
//	C  = sum f*cos(omega*t)
//	CC = sum cos^2(omega*t)
//	SC = sum sin(omega*t)*cos(omega*t)
//	SS = N - CC          (sin^2 + cos^2 = 1, avoids a trig accumulation)
//	D  = SS*CC - SC^2
//	alpha = (S*CC - C*SC) / D
//	beta  = (C*SS - S*SC) / D
//
// D can be near zero at pathological frequencies; callers must tolerate
// non-finite results rather than treat them as an error (spec.md §4.B).
func Coeffs(time, flux []float64, omega float64) (alpha, beta float64) {
	n := len(time)
	var s, c, cc, sc float64

	for i := 0; i < n; i++ {
		sn := math.Sin(omega * time[i])
		cn := math.Cos(omega * time[i])

		s += flux[i] * sn
		c += flux[i] * cn
		cc += cn * cn
		sc += sn * cn
	}

	ss := float64(n) - cc
	d := ss*cc - sc*sc

	alpha = (s*cc - c*sc) / d
	beta = (c*ss - s*sc) / d
	return alpha, beta
}

// CoeffsWeighted is the weighted variant of Coeffs: every accumulated term
// is scaled by the matching weight, and W = wsum = sum(weight) replaces N.
// wsum is passed in rather than recomputed so that a sweep over many
// frequencies pays for it once (spec.md §4.C).
func CoeffsWeighted(time, flux, weight []float64, omega, wsum float64) (alpha, beta float64) {
	n := len(time)
	var s, c, cc, sc float64

	for i := 0; i < n; i++ {
		w := weight[i]
		sn := math.Sin(omega * time[i])
		cn := math.Cos(omega * time[i])

		s += w * flux[i] * sn
		c += w * flux[i] * cn
		cc += w * cn * cn
		sc += w * sn * cn
	}

	ss := wsum - cc
	d := ss*cc - sc*sc

	alpha = (s*cc - c*sc) / d
	beta = (c*ss - s*sc) / d
	return alpha, beta
}

// windowCoeffs fits two synthetic signals, sin(omega0*t) and cos(omega0*t),
// against sin(omega*t)/cos(omega*t) simultaneously, sharing the CC/SC/SS
// accumulation between the two fits (window.c: windowalpbet). Used by the
// spectral window (§4.E).
func windowCoeffs(time, datasin, datacos []float64, omega float64) (alphaSin, betaSin, alphaCos, betaCos float64) {
	n := len(time)
	var ssin, csin, scos, ccos, cc, sc float64

	for i := 0; i < n; i++ {
		sn := math.Sin(omega * time[i])
		cn := math.Cos(omega * time[i])

		ssin += datasin[i] * sn
		csin += datasin[i] * cn
		scos += datacos[i] * sn
		ccos += datacos[i] * cn

		cc += cn * cn
		sc += sn * cn
	}

	ss := float64(n) - cc
	d := ss*cc - sc*sc

	alphaSin = (ssin*cc - csin*sc) / d
	betaSin = (csin*ss - ssin*sc) / d
	alphaCos = (scos*cc - ccos*sc) / d
	betaCos = (ccos*ss - scos*sc) / d
	return alphaSin, betaSin, alphaCos, betaCos
}

// windowCoeffsWeighted is the weighted variant of windowCoeffs.
func windowCoeffsWeighted(time, datasin, datacos, weight []float64, omega, wsum float64) (alphaSin, betaSin, alphaCos, betaCos float64) {
	n := len(time)
	var ssin, csin, scos, ccos, cc, sc float64

	for i := 0; i < n; i++ {
		w := weight[i]
		sn := math.Sin(omega * time[i])
		cn := math.Cos(omega * time[i])

		ssin += w * datasin[i] * sn
		csin += w * datasin[i] * cn
		scos += w * datacos[i] * sn
		ccos += w * datacos[i] * cn

		cc += w * cn * cn
		sc += w * sn * cn
	}

	ss := wsum - cc
	d := ss*cc - sc*sc

	alphaSin = (ssin*cc - csin*sc) / d
	betaSin = (csin*ss - ssin*sc) / d
	alphaCos = (scos*cc - ccos*sc) / d
	betaCos = (ccos*ss - scos*sc) / d
	return alphaSin, betaSin, alphaCos, betaCos
}
