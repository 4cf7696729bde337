// Copyright (c) 2025 hitoshi.mukai.b@gmail.com. All rights reserved.
// You are free to use this source code for any purpose. The copyright remains with the author.
// The author accepts no liability for any damages arising from the use of this source code.
//
// Last modified: 2025.10.12
//

package gootl

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/interp"
)

func TestSplineEmpty(t *testing.T) {
	for _, end := range []SplineEnd{SplineNatural, SplineQuadratic} {
		sp := NewSpline(nil, nil, end)
		assert.Equal(t, 0, sp.Len())
		assert.Empty(t, sp.S)
		assert.Equal(t, 0.0, sp.Eval(1.0))
	}
}

func TestSplineOneSample(t *testing.T) {
	sp := NewSpline([]float64{1.93}, []float64{1.58}, SplineNatural)
	assert.Equal(t, []float64{0}, sp.S)
	for _, x := range []float64{0, 1.93, 2.4} {
		assert.Equal(t, 1.58, sp.Eval(x))
	}
}

func TestSplineTwoSamples(t *testing.T) {
	xs := []float64{1.0, 2.0}
	ys := []float64{3.0, 5.0}
	sp := NewSpline(xs, ys, SplineNatural)
	assert.Equal(t, []float64{0, 0}, sp.S)
	assert.InDelta(t, 4.0, sp.Eval(1.5), 1e-15)
	assert.InDelta(t, 3.5, sp.Eval(1.25), 1e-15)

	// Nearest end value outside the samples
	assert.Equal(t, 3.0, sp.Eval(0.5))
	assert.Equal(t, 5.0, sp.Eval(2.5))
}

func TestSplineNaturalMatchesGonum(t *testing.T) {
	xs := []float64{0.80, 0.89, 0.93, 1.00, 1.003, 1.10}
	ys := []float64{2.1, -0.3, 0.7, 1.9, 2.0, -1.2}
	sp := NewSpline(xs, ys, SplineNatural)
	assert.Equal(t, 0.0, sp.S[0])
	assert.Equal(t, 0.0, sp.S[len(xs)-1])

	var nc interp.NaturalCubic
	require.NoError(t, nc.Fit(xs, ys))
	for x := 0.80; x <= 1.10; x += 0.0037 {
		assert.InDelta(t, nc.Predict(x), sp.Eval(x), 1e-10, "x=%g", x)
	}
}

func TestSplineInterpolates(t *testing.T) {
	xs := []float64{0.89, 0.93, 0.96, 1.00, 1.003}
	ys := []float64{0.4, -0.3, 0.1, 0.9, 1.0}
	for _, end := range []SplineEnd{SplineNatural, SplineQuadratic} {
		sp := NewSpline(xs, ys, end)
		for i := range xs {
			assert.InDelta(t, ys[i], sp.Eval(xs[i]), 1e-12, "%s %d", &end, i)
		}
	}
}

func TestSplineLinear(t *testing.T) {
	xs := []float64{0.0, 0.5, 1.5, 2.0, 4.0}
	ys := make([]float64, len(xs))
	for i, x := range xs {
		ys[i] = 3*x - 1
	}
	for _, end := range []SplineEnd{SplineNatural, SplineQuadratic} {
		sp := NewSpline(xs, ys, end)
		assert.True(t, floats.EqualApprox(sp.S, make([]float64, len(xs)), 1e-9), "%s: %v", &end, sp.S)
		assert.InDelta(t, 3*2.7-1, sp.Eval(2.7), 1e-9)
	}
}

func TestSplineQuadraticEnds(t *testing.T) {
	f := func(x float64) float64 { return 2*x*x - 3*x + 1 }
	xs := []float64{0.0, 1.0, 2.0, 3.0, 4.5}
	ys := make([]float64, len(xs))
	for i, x := range xs {
		ys[i] = f(x)
	}

	// A parabola is reproduced exactly
	sp := NewSpline(xs, ys, SplineQuadratic)
	for _, s := range sp.S {
		assert.InDelta(t, 4.0, s, 1e-9)
	}
	for _, x := range []float64{0.2, 0.5, 1.7, 2.7, 4.0} {
		assert.InDelta(t, f(x), sp.Eval(x), 1e-9, "x=%g", x)
	}

	// Not with natural ends
	spn := NewSpline(xs, ys, SplineNatural)
	assert.Greater(t, math.Abs(f(0.5)-spn.Eval(0.5)), 1e-3)
}

func TestSplineQuadraticShort(t *testing.T) {
	xs := []float64{1.0, 2.0, 3.0}
	ys := []float64{1.0, 4.0, 9.0}
	assert.Equal(t, []float64{0, 0, 0}, FitSpline(xs, ys, SplineQuadratic))
	assert.NotEqual(t, []float64{0, 0, 0}, FitSpline(xs, ys, SplineNatural))
}

func TestSplineNotIncreasing(t *testing.T) {
	xs := []float64{1.0, 2.0, 2.0, 3.0}
	ys := []float64{1.0, 4.0, 5.0, 9.0}
	assert.Equal(t, []float64{0, 0, 0, 0}, FitSpline(xs, ys, SplineNatural))
}

func TestSplineEndFlag(t *testing.T) {
	var e SplineEnd
	require.NoError(t, e.Set("1"))
	assert.Equal(t, SplineQuadratic, e)
	assert.Equal(t, "quadratic", e.String())
	assert.Error(t, e.Set("q"))
}

func TestSolveTri(t *testing.T) {
	// [2 1 0; 1 3 1; 0 1 2] x = [4 10 8] -> x = [1 2 3]
	x, err := SolveTri([]float64{1, 1}, []float64{2, 3, 2}, []float64{1, 1}, []float64{4, 10, 8})
	require.NoError(t, err)
	assert.True(t, floats.EqualApprox(x, []float64{1, 2, 3}, 1e-12), "%v", x)

	x, err = SolveTri(nil, []float64{4}, nil, []float64{2})
	require.NoError(t, err)
	assert.InDelta(t, 0.5, x[0], 1e-15)

	_, err = SolveTri([]float64{1}, []float64{2, 3, 2}, []float64{1, 1}, []float64{4, 10, 8})
	assert.Error(t, err)
	_, err = SolveTri([]float64{1, 1}, []float64{2, 3, 2}, []float64{1, 1}, []float64{4, 10})
	assert.Error(t, err)
	_, err = SolveTri(nil, nil, nil, nil)
	assert.Error(t, err)

	// Singular
	_, err = SolveTri([]float64{0, 0}, []float64{0, 0, 0}, []float64{0, 0}, []float64{1, 1, 1})
	assert.Error(t, err)
}

func TestSortKeys(t *testing.T) {
	v := []float64{1.93, 0.07, 1.00, 2.00, 0.93}
	key := SortKeys(v)
	assert.Equal(t, []int{1, 4, 2, 0, 3}, key)
	assert.Equal(t, []float64{0.07, 0.93, 1.00, 1.93, 2.00}, Permute(v, key))

	// Ties keep their order
	assert.Equal(t, []int{2, 0, 1, 3}, SortKeys([]float64{1, 1, 0, 2}))
	assert.Empty(t, SortKeys(nil))
}
