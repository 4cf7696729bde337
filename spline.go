// Copyright (c) 2025 hitoshi.mukai.b@gmail.com. All rights reserved.
// You are free to use this source code for any purpose. The copyright remains with the author.
// The author accepts no liability for any damages arising from the use of this source code.
//
// Last modified: 2025.10.12
//

package gootl

import (
	"sort"
	"strconv"
)

// End condition of the cubic spline (0: natural, 1: quadratic)
type SplineEnd int

const (
	SplineNatural   SplineEnd = iota // Zero second derivative at both ends
	SplineQuadratic                  // End slopes from the parabola through the 3 outermost samples (IERS SPLINE)
)

func (p *SplineEnd) Set(s string) error {
	i, err := strconv.ParseInt(s, 10, 0)
	if err != nil {
		return err
	}
	*p = SplineEnd(i)
	return nil
}

func (p *SplineEnd) String() string {
	switch *p {
	case SplineNatural:
		return "natural"
	case SplineQuadratic:
		return "quadratic"
	default:
		return "UNKNOWN!"
	}
}

// Cubic spline through (xs, ys) with second derivatives S at the samples
type Spline struct {
	Xs []float64
	Ys []float64
	S  []float64
}

// Fit a spline. xs must be strictly increasing. Zero samples give an empty spline.
func NewSpline(xs, ys []float64, end SplineEnd) *Spline {
	return &Spline{
		Xs: xs,
		Ys: ys,
		S:  FitSpline(xs, ys, end),
	}
}

func (sp *Spline) Len() int {
	return len(sp.Xs)
}

func (sp *Spline) Eval(x float64) float64 {
	return EvalSpline(x, sp.Xs, sp.Ys, sp.S)
}

// Find the second derivatives of the cubic spline through (xs, ys).
// - Series too short for a cubic (n <= 2, or n <= 3 with quadratic ends) get straight lines (all zero)
// - A failure of the linear solver also falls back to straight lines
func FitSpline(xs, ys []float64, end SplineEnd) []float64 {

	n := min(len(xs), len(ys))
	s := make([]float64, n)
	if n <= 2 || (end == SplineQuadratic && n <= 3) {
		return s
	}

	// Intervals and slopes
	h := make([]float64, n-1)
	slope := make([]float64, n-1)
	for i := range h {
		h[i] = xs[i+1] - xs[i]
		if h[i] <= 0 {
			PrintD(1, "spline: xs not strictly increasing at %d (%g, %g), straight lines used\n", i, xs[i], xs[i+1])
			return s
		}
		slope[i] = (ys[i+1] - ys[i]) / h[i]
	}

	// Continuity of the first derivative at the interior samples
	dl := make([]float64, n-1)
	d := make([]float64, n)
	du := make([]float64, n-1)
	b := make([]float64, n)
	for i := 1; i < n-1; i++ {
		dl[i-1] = h[i-1]
		d[i] = 2.0 * (h[i-1] + h[i])
		du[i] = h[i]
		b[i] = 6.0 * (slope[i] - slope[i-1])
	}

	// End conditions
	switch end {
	case SplineQuadratic:
		q1 := quadSlope(ys[1]-ys[0], xs[1]-xs[0], ys[2]-ys[0], xs[2]-xs[0])
		qn := quadSlope(ys[n-2]-ys[n-1], xs[n-2]-xs[n-1], ys[n-3]-ys[n-1], xs[n-3]-xs[n-1])
		d[0] = 2.0 * h[0]
		du[0] = h[0]
		b[0] = 6.0 * (slope[0] - q1)
		dl[n-2] = h[n-2]
		d[n-1] = 2.0 * h[n-2]
		b[n-1] = 6.0 * (qn - slope[n-2])
	default:
		d[0] = 1.0
		d[n-1] = 1.0
	}

	x, err := SolveTri(dl, d, du, b)
	if err != nil {
		PrintD(1, "spline: %s, straight lines used\n", err.Error())
		return s
	}
	return x
}

// Slope at the origin of the parabola through (0, 0), (x1, u1) and (x2, u2)
func quadSlope(u1, x1, u2, x2 float64) float64 {
	return (u1/SQ(x1) - u2/SQ(x2)) / (1.0/x1 - 1.0/x2)
}

// Evaluate the cubic spline with second derivatives s at x.
// - Outside [xs[0], xs[n-1]] the value at the nearest end is returned
// - An empty spline evaluates to 0
func EvalSpline(x float64, xs, ys, s []float64) float64 {

	n := min(len(xs), len(ys), len(s))
	if n == 0 {
		return 0.0
	}
	if x <= xs[0] {
		return ys[0]
	}
	if x >= xs[n-1] {
		return ys[n-1]
	}

	// xs[k1] <= x < xs[k2]
	k1 := sort.Search(n, func(i int) bool { return xs[i] > x }) - 1
	k2 := k1 + 1

	dy := xs[k2] - x
	dy1 := x - xs[k1]
	dk := xs[k2] - xs[k1]
	f1 := (s[k1]*dy*dy*dy + s[k2]*dy1*dy1*dy1) / (6.0 * dk)
	f2 := dy1 * (ys[k2]/dk - s[k2]*dk/6.0)
	f3 := dy * (ys[k1]/dk - s[k1]*dk/6.0)
	return f1 + f2 + f3
}
