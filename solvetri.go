// Copyright (c) 2025 hitoshi.mukai.b@gmail.com. All rights reserved.
// You are free to use this source code for any purpose. The copyright remains with the author.
// The author accepts no liability for any damages arising from the use of this source code.
//
// Last modified: 2025.10.12
//

package gootl

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Solve the tridiagonal system A x = b
// - dl: sub-diagonal (n-1), d: main diagonal (n), du: super-diagonal (n-1)
func SolveTri(dl, d, du, b []float64) (x []float64, err error) {

	n := len(d)
	if n == 0 {
		return nil, fmt.Errorf("empty tridiagonal system")
	}
	if len(dl) != n-1 || len(du) != n-1 {
		return nil, fmt.Errorf("invalid diagonal size. dl(%d), d(%d), du(%d)", len(dl), n, len(du))
	}
	if len(b) != n {
		return nil, fmt.Errorf("invalid vector size. A(%d x %d), b(%d x 1)", n, n, len(b))
	}

	// A (the diagonals are used as backing slices, SolveVecTo works on a copy)
	A := mat.NewTridiag(n, dl, d, du)

	// Solve for x (x = A^-1 b)
	var xv mat.VecDense
	err = A.SolveVecTo(&xv, false, mat.NewVecDense(n, append([]float64(nil), b...)))
	if err != nil {
		return nil, err
	}
	x = xv.RawVector().Data
	for i := range x {
		if math.IsNaN(x[i]) || math.IsInf(x[i], 0) {
			return nil, fmt.Errorf("tridiagonal system has no finite solution (x[%d]=%g)", i, x[i])
		}
	}
	return
}
