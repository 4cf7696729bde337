// Copyright (c) 2025 hitoshi.mukai.b@gmail.com. All rights reserved.
// You are free to use this source code for any purpose. The copyright remains with the author.
// The author accepts no liability for any damages arising from the use of this source code.
//
// Last modified: 2025.10.12
//

package gootl

import (
	"golang.org/x/exp/slices"
)

// Harmonic is one entry of the tidal potential catalog
type Harmonic struct {
	Doodson Doodson // Doodson number
	Amp     float64 // Cartwright-Edden amplitude
}

// CatalogAt returns the i-th catalog entry (0 <= i < NT)
func CatalogAt(i int) Harmonic {
	return Harmonic{Doodson: catIdd[i], Amp: catAmp[i]}
}

// Harmonics returns a copy of the whole catalog in catalog order
func Harmonics() []Harmonic {
	hs := make([]Harmonic, NT)
	for i := range hs {
		hs[i] = CatalogAt(i)
	}
	return hs
}

// FindHarmonic returns the index of the first catalog entry with Doodson number d, or -1
func FindHarmonic(d Doodson) int {
	return slices.IndexFunc(catIdd[:], func(c Doodson) bool { return c.Dist(d) == 0 })
}

// Doodson numbers of the catalog.
// Semidiurnal block first, then diurnal, then long-period, each sorted by decreasing absolute amplitude.
var catIdd = [NT]Doodson{
	{2, 0, 0, 0, 0, 0}, {2, 2, -2, 0, 0, 0}, {2, -1, 0, 1, 0, 0},
	{2, 2, 0, 0, 0, 0}, {2, 2, 0, 0, 1, 0}, {2, 0, 0, 0, -1, 0},
	{2, -1, 2, -1, 0, 0}, {2, -2, 2, 0, 0, 0}, {2, 1, 0, -1, 0, 0},
	{2, 2, -3, 0, 0, 1}, {2, -2, 0, 2, 0, 0}, {2, -3, 2, 1, 0, 0},
	{2, 1, -2, 1, 0, 0}, {2, -1, 0, 1, -1, 0}, {2, 3, 0, -1, 0, 0},
	{2, 1, 0, 1, 0, 0}, {2, 2, 0, 0, 2, 0}, {2, 2, -1, 0, 0, -1},
	{2, 0, -1, 0, 0, 1}, {2, 1, 0, 1, 1, 0}, {2, 3, 0, -1, 1, 0},
	{2, 0, 1, 0, 0, -1}, {2, 0, -2, 2, 0, 0}, {2, -3, 0, 3, 0, 0},
	{2, -2, 3, 0, 0, -1}, {2, 4, 0, 0, 0, 0}, {2, -1, 1, 1, 0, -1},
	{2, -1, 3, -1, 0, -1}, {2, 2, 0, 0, -1, 0}, {2, -1, -1, 1, 0, 1},
	{2, 4, 0, 0, 1, 0}, {2, -3, 4, -1, 0, 0}, {2, -1, 2, -1, -1, 0},
	{2, 3, -2, 1, 0, 0}, {2, 1, 2, -1, 0, 0}, {2, -4, 2, 2, 0, 0},
	{2, 4, -2, 0, 0, 0}, {2, 0, 2, 0, 0, 0}, {2, -2, 2, 0, -1, 0},
	{2, 2, -4, 0, 0, 2}, {2, 2, -2, 0, -1, 0}, {2, 1, 0, -1, -1, 0},
	{2, -1, 1, 0, 0, 0}, {2, 2, -1, 0, 0, 1}, {2, 2, 1, 0, 0, -1},
	{2, -2, 0, 2, -1, 0}, {2, -2, 4, -2, 0, 0}, {2, 2, 2, 0, 0, 0},
	{2, -4, 4, 0, 0, 0}, {2, -1, 0, -1, -2, 0}, {2, 1, 2, -1, 1, 0},
	{2, -1, -2, 3, 0, 0}, {2, 3, -2, 1, 1, 0}, {2, 4, 0, -2, 0, 0},
	{2, 0, 0, 2, 0, 0}, {2, 0, 2, -2, 0, 0}, {2, 0, 2, 0, 1, 0},
	{2, -3, 3, 1, 0, -1}, {2, 0, 0, 0, -2, 0}, {2, 4, 0, 0, 2, 0},
	{2, 4, -2, 0, 1, 0}, {2, 0, 0, 0, 0, 2}, {2, 1, 0, 1, 2, 0},
	{2, 0, -2, 0, -2, 0}, {2, -2, 1, 0, 0, 1}, {2, -2, 1, 2, 0, -1},
	{2, -1, 1, -1, 0, 1}, {2, 5, 0, -1, 0, 0}, {2, 1, -3, 1, 0, 1},
	{2, -2, -1, 2, 0, 1}, {2, 3, 0, -1, 2, 0}, {2, 1, -2, 1, -1, 0},
	{2, 5, 0, -1, 1, 0}, {2, -4, 0, 4, 0, 0}, {2, -3, 2, 1, -1, 0},
	{2, -2, 1, 1, 0, 0}, {2, 4, 0, -2, 1, 0}, {2, 0, 0, 2, 1, 0},
	{2, -5, 4, 1, 0, 0}, {2, 0, 2, 0, 2, 0}, {2, -1, 2, 1, 0, 0},
	{2, 5, -2, -1, 0, 0}, {2, 1, -1, 0, 0, 0}, {2, 2, -2, 0, 0, 2},
	{2, -5, 2, 3, 0, 0}, {2, -1, -2, 1, -2, 0}, {2, -3, 5, -1, 0, -1},
	{2, -1, 0, 0, 0, 1}, {2, -2, 0, 0, -2, 0}, {2, 0, -1, 1, 0, 0},
	{2, -3, 1, 1, 0, 1}, {2, 3, 0, -1, -1, 0}, {2, 1, 0, 1, -1, 0},
	{2, -1, 2, 1, 1, 0}, {2, 0, -3, 2, 0, 1}, {2, 1, -1, -1, 0, 1},
	{2, -3, 0, 3, -1, 0}, {2, 0, -2, 2, -1, 0}, {2, -4, 3, 2, 0, -1},
	{2, -1, 0, 1, -2, 0}, {2, 5, 0, -1, 2, 0}, {2, -4, 5, 0, 0, -1},
	{2, -2, 4, 0, 0, -2}, {2, -1, 0, 1, 0, 2}, {2, -2, -2, 4, 0, 0},
	{2, 3, -2, -1, -1, 0}, {2, -2, 5, -2, 0, -1}, {2, 0, -1, 0, -1, 1},
	{2, 5, -2, -1, 1, 0}, {1, 1, 0, 0, 0, 0}, {1, -1, 0, 0, 0, 0},
	{1, 1, -2, 0, 0, 0}, {1, -2, 0, 1, 0, 0}, {1, 1, 0, 0, 1, 0},
	{1, -1, 0, 0, -1, 0}, {1, 2, 0, -1, 0, 0}, {1, 0, 0, 1, 0, 0},
	{1, 3, 0, 0, 0, 0}, {1, -2, 2, -1, 0, 0}, {1, -2, 0, 1, -1, 0},
	{1, -3, 2, 0, 0, 0}, {1, 0, 0, -1, 0, 0}, {1, 1, 0, 0, -1, 0},
	{1, 3, 0, 0, 1, 0}, {1, 1, -3, 0, 0, 1}, {1, -3, 0, 2, 0, 0},
	{1, 1, 2, 0, 0, 0}, {1, 0, 0, 1, 1, 0}, {1, 2, 0, -1, 1, 0},
	{1, 0, 2, -1, 0, 0}, {1, 2, -2, 1, 0, 0}, {1, 3, -2, 0, 0, 0},
	{1, -1, 2, 0, 0, 0}, {1, 1, 1, 0, 0, -1}, {1, 1, -1, 0, 0, 1},
	{1, 4, 0, -1, 0, 0}, {1, -4, 2, 1, 0, 0}, {1, 0, -2, 1, 0, 0},
	{1, -2, 2, -1, -1, 0}, {1, 3, 0, -2, 0, 0}, {1, -1, 0, 2, 0, 0},
	{1, -1, 0, 0, -2, 0}, {1, 3, 0, 0, 2, 0}, {1, -3, 2, 0, -1, 0},
	{1, 4, 0, -1, 1, 0}, {1, 0, 0, -1, -1, 0}, {1, 1, -2, 0, -1, 0},
	{1, -3, 0, 2, -1, 0}, {1, 1, 0, 0, 2, 0}, {1, 1, -1, 0, 0, -1},
	{1, -1, -1, 0, 0, 1}, {1, 0, 2, -1, 1, 0}, {1, -1, 1, 0, 0, -1},
	{1, -1, -2, 2, 0, 0}, {1, 2, -2, 1, 1, 0}, {1, -4, 0, 3, 0, 0},
	{1, -1, 2, 0, 1, 0}, {1, 3, -2, 0, 1, 0}, {1, 2, 0, -1, -1, 0},
	{1, 0, 0, 1, -1, 0}, {1, -2, 2, 1, 0, 0}, {1, 4, -2, -1, 0, 0},
	{1, -3, 3, 0, 0, -1}, {1, -2, 1, 1, 0, -1}, {1, -2, 3, -1, 0, -1},
	{1, 0, -2, 1, -1, 0}, {1, -2, -1, 1, 0, 1}, {1, 4, -2, 1, 0, 0},
	{1, -4, 4, -1, 0, 0}, {1, -4, 2, 1, -1, 0}, {1, 5, -2, 0, 0, 0},
	{1, 3, 0, -2, 1, 0}, {1, -5, 2, 2, 0, 0}, {1, 2, 0, 1, 0, 0},
	{1, 1, 3, 0, 0, -1}, {1, -2, 0, 1, -2, 0}, {1, 4, 0, -1, 2, 0},
	{1, 1, -4, 0, 0, 2}, {1, 5, 0, -2, 0, 0}, {1, -1, 0, 2, 1, 0},
	{1, -2, 1, 0, 0, 0}, {1, 4, -2, 1, 1, 0}, {1, -3, 4, -2, 0, 0},
	{1, -1, 3, 0, 0, -1}, {1, 3, -3, 0, 0, 1}, {1, 5, -2, 0, 1, 0},
	{1, 1, 2, 0, 1, 0}, {1, 2, 0, 1, 1, 0}, {1, -5, 4, 0, 0, 0},
	{1, -2, 0, -1, -2, 0}, {1, 5, 0, -2, 1, 0}, {1, 1, 2, -2, 0, 0},
	{1, 1, -2, 2, 0, 0}, {1, -2, 2, 1, 1, 0}, {1, 0, 3, -1, 0, -1},
	{1, 2, -3, 1, 0, 1}, {1, -2, -2, 3, 0, 0}, {1, -1, 2, -2, 0, 0},
	{1, -4, 3, 1, 0, -1}, {1, -4, 0, 3, -1, 0}, {1, -1, -2, 2, -1, 0},
	{1, -2, 0, 3, 0, 0}, {1, 4, 0, -3, 0, 0}, {1, 0, 1, 1, 0, -1},
	{1, 2, -1, -1, 0, 1}, {1, 2, -2, 1, -1, 0}, {1, 0, 0, -1, -2, 0},
	{1, 2, 0, 1, 2, 0}, {1, 2, -2, -1, -1, 0}, {1, 0, 0, 1, 2, 0},
	{1, 0, 1, 0, 0, 0}, {1, 2, -1, 0, 0, 0}, {1, 0, 2, -1, -1, 0},
	{1, -1, -2, 0, -2, 0}, {1, -3, 1, 0, 0, 1}, {1, 3, -2, 0, -1, 0},
	{1, -1, -1, 0, -1, 1}, {1, 4, -2, -1, 1, 0}, {1, 2, 1, -1, 0, -1},
	{1, 0, -1, 1, 0, 1}, {1, -2, 4, -1, 0, 0}, {1, 4, -4, 1, 0, 0},
	{1, -3, 1, 2, 0, -1}, {1, -3, 3, 0, -1, -1}, {1, 1, 2, 0, 2, 0},
	{1, 1, -2, 0, -2, 0}, {1, 3, 0, 0, 3, 0}, {1, -1, 2, 0, -1, 0},
	{1, -2, 1, -1, 0, 1}, {1, 0, -3, 1, 0, 1}, {1, -3, -1, 2, 0, 1},
	{1, 2, 0, -1, 2, 0}, {1, 6, -2, -1, 0, 0}, {1, 2, 2, -1, 0, 0},
	{1, -1, 1, 0, -1, -1}, {1, -2, 3, -1, -1, -1}, {1, -1, 0, 0, 0, 2},
	{1, -5, 0, 4, 0, 0}, {1, 1, 0, 0, 0, -2}, {1, -2, 1, 1, -1, -1},
	{1, 1, -1, 0, 1, 1}, {1, 1, 2, 0, 0, -2}, {1, -3, 1, 1, 0, 0},
	{1, -4, 4, -1, -1, 0}, {1, 1, 0, -2, -1, 0}, {1, -2, -1, 1, -1, 1},
	{1, -3, 2, 2, 0, 0}, {1, 5, -2, -2, 0, 0}, {1, 3, -4, 2, 0, 0},
	{1, 1, -2, 0, 0, 2}, {1, -1, 4, -2, 0, 0}, {1, 2, 2, -1, 1, 0},
	{1, -5, 2, 2, -1, 0}, {1, 1, -3, 0, -1, 1}, {1, 1, 1, 0, 1, -1},
	{1, 6, -2, -1, 1, 0}, {1, -2, 2, -1, -2, 0}, {1, 4, -2, 1, 2, 0},
	{1, -6, 4, 1, 0, 0}, {1, 5, -4, 0, 0, 0}, {1, -3, 4, 0, 0, 0},
	{1, 1, 2, -2, 1, 0}, {1, -2, 1, 0, -1, 0}, {0, 2, 0, 0, 0, 0},
	{0, 1, 0, -1, 0, 0}, {0, 0, 2, 0, 0, 0}, {0, 0, 0, 0, 1, 0},
	{0, 2, 0, 0, 1, 0}, {0, 3, 0, -1, 0, 0}, {0, 1, -2, 1, 0, 0},
	{0, 2, -2, 0, 0, 0}, {0, 3, 0, -1, 1, 0}, {0, 0, 1, 0, 0, -1},
	{0, 2, 0, -2, 0, 0}, {0, 2, 0, 0, 2, 0}, {0, 3, -2, 1, 0, 0},
	{0, 1, 0, -1, -1, 0}, {0, 1, 0, -1, 1, 0}, {0, 4, -2, 0, 0, 0},
	{0, 1, 0, 1, 0, 0}, {0, 0, 3, 0, 0, -1}, {0, 4, 0, -2, 0, 0},
	{0, 3, -2, 1, 1, 0}, {0, 3, -2, -1, 0, 0}, {0, 4, -2, 0, 1, 0},
	{0, 0, 2, 0, 1, 0}, {0, 1, 0, 1, 1, 0}, {0, 4, 0, -2, 1, 0},
	{0, 3, 0, -1, 2, 0}, {0, 5, -2, -1, 0, 0}, {0, 1, 2, -1, 0, 0},
	{0, 1, -2, 1, -1, 0}, {0, 1, -2, 1, 1, 0}, {0, 2, -2, 0, -1, 0},
	{0, 2, -3, 0, 0, 1}, {0, 2, -2, 0, 1, 0}, {0, 0, 2, -2, 0, 0},
	{0, 1, -3, 1, 0, 1}, {0, 0, 0, 0, 2, 0}, {0, 0, 1, 0, 0, 1},
	{0, 1, 2, -1, 1, 0}, {0, 3, 0, -3, 0, 0}, {0, 2, 1, 0, 0, -1},
	{0, 1, -1, -1, 0, 1}, {0, 1, 0, 1, 2, 0}, {0, 5, -2, -1, 1, 0},
	{0, 2, -1, 0, 0, 1}, {0, 2, 2, -2, 0, 0}, {0, 1, -1, 0, 0, 0},
	{0, 5, 0, -3, 0, 0}, {0, 2, 0, -2, 1, 0}, {0, 1, 1, -1, 0, -1},
	{0, 3, -4, 1, 0, 0}, {0, 0, 2, 0, 2, 0}, {0, 2, 0, -2, -1, 0},
	{0, 4, -3, 0, 0, 1}, {0, 3, -1, -1, 0, 1}, {0, 0, 2, 0, 0, -2},
	{0, 3, -3, 1, 0, 1}, {0, 2, -4, 2, 0, 0}, {0, 4, -2, -2, 0, 0},
	{0, 3, 1, -1, 0, -1}, {0, 5, -4, 1, 0, 0}, {0, 3, -2, -1, -1, 0},
	{0, 3, -2, 1, 2, 0}, {0, 4, -4, 0, 0, 0}, {0, 6, -2, -2, 0, 0},
	{0, 5, 0, -3, 1, 0}, {0, 4, -2, 0, 2, 0}, {0, 2, 2, -2, 1, 0},
	{0, 0, 4, 0, 0, -2}, {0, 3, -1, 0, 0, 0}, {0, 3, -3, -1, 0, 1},
	{0, 4, 0, -2, 2, 0}, {0, 1, -2, -1, -1, 0}, {0, 2, -1, 0, 0, -1},
	{0, 4, -4, 2, 0, 0}, {0, 2, 1, 0, 1, -1}, {0, 3, -2, -1, 1, 0},
	{0, 4, -3, 0, 1, 1}, {0, 2, 0, 0, 3, 0}, {0, 6, -4, 0, 0, 0},}

// Cartwright-Edden amplitudes of the catalog (same order as catIdd)
var catAmp = [NT]float64{
	0.632208, 0.294107, 0.121046, 0.079915, 0.023818, -0.023589, 0.022994,
	0.019333, -0.017871, 0.017192, 0.016018, 0.004671, -0.004662, -0.004519,
	0.004470, 0.004467, 0.002589, -0.002455, -0.002172, 0.001972, 0.001947,
	0.001914, -0.001898, 0.001802, 0.001304, 0.001170, 0.001130, 0.001061,
	-0.001022, -0.001017, 0.001014, 0.000901, -0.000857, 0.000855, 0.000855,
	0.000772, 0.000741, 0.000741, -0.000721, 0.000698, 0.000658, 0.000654,
	-0.000653, 0.000633, 0.000626, -0.000598, 0.000590, 0.000544, 0.000479,
	-0.000464, 0.000413, -0.000390, 0.000373, 0.000366, 0.000366, -0.000360,
	-0.000355, 0.000354, 0.000329, 0.000328, 0.000319, 0.000302, 0.000279,
	-0.000274, -0.000272, 0.000248, -0.000225, 0.000224, -0.000223, -0.000216,
	0.000211, 0.000209, 0.000194, 0.000185, -0.000174, -0.000171, 0.000159,
	0.000131, 0.000127, 0.000120, 0.000118, 0.000117, 0.000108, 0.000107,
	0.000105, -0.000102, 0.000102, 0.000099, -0.000096, 0.000095, -0.000089,
	-0.000085, -0.000084, -0.000081, -0.000077, -0.000072, -0.000067, 0.000066,
	0.000064, 0.000063, 0.000063, 0.000063, 0.000062, 0.000062, -0.000060,
	0.000056, 0.000053, 0.000051, 0.000050, 0.368645, -0.262232, -0.121995,
	-0.050208, 0.050031, -0.049470, 0.020620, 0.020613, 0.011279, -0.009530,
	-0.009469, -0.008012, 0.007414, -0.007300, 0.007227, -0.007131, -0.006644,
	0.005249, 0.004137, 0.004087, 0.003944, 0.003943, 0.003420, 0.003418,
	0.002885, 0.002884, 0.002160, -0.001936, 0.001934, -0.001798, 0.001690,
	0.001689, 0.001516, 0.001514, -0.001511, 0.001383, 0.001372, 0.001371,
	-0.001253, -0.001075, 0.001020, 0.000901, 0.000865, -0.000794, 0.000788,
	0.000782, -0.000747, -0.000745, 0.000670, -0.000603, -0.000597, 0.000542,
	0.000542, -0.000541, -0.000469, -0.000440, 0.000438, 0.000422, 0.000410,
	-0.000374, -0.000365, 0.000345, 0.000335, -0.000321, -0.000319, 0.000307,
	0.000291, 0.000290, -0.000289, 0.000286, 0.000275, 0.000271, 0.000263,
	-0.000245, 0.000225, 0.000225, 0.000221, -0.000202, -0.000200, -0.000199,
	0.000192, 0.000183, 0.000183, 0.000183, -0.000170, 0.000169, 0.000168,
	0.000162, 0.000149, -0.000147, -0.000141, 0.000138, 0.000136, 0.000136,
	0.000127, 0.000127, -0.000126, -0.000121, -0.000121, 0.000117, -0.000116,
	-0.000114, -0.000114, -0.000114, 0.000114, 0.000113, 0.000109, 0.000108,
	0.000106, -0.000106, -0.000106, 0.000105, 0.000104, -0.000103, -0.000100,
	-0.000100, -0.000100, 0.000099, -0.000098, 0.000093, 0.000093, 0.000090,
	-0.000088, 0.000083, -0.000083, -0.000082, -0.000081, -0.000079, -0.000077,
	-0.000075, -0.000075, -0.000075, 0.000071, 0.000071, -0.000071, 0.000068,
	0.000068, 0.000065, 0.000065, 0.000064, 0.000064, 0.000064, -0.000064,
	-0.000060, 0.000056, 0.000056, 0.000053, 0.000053, 0.000053, -0.000053,
	0.000053, 0.000053, 0.000052, 0.000050, -0.066607, -0.035184, -0.030988,
	0.027929, -0.027616, -0.012753, -0.006728, -0.005837, -0.005286, -0.004921,
	-0.002884, -0.002583, -0.002422, 0.002310, 0.002283, -0.002037, 0.001883,
	-0.001811, -0.001687, -0.001004, -0.000925, -0.000844, 0.000766, 0.000766,
	-0.000700, -0.000495, -0.000492, 0.000491, 0.000483, 0.000437, -0.000416,
	-0.000384, 0.000374, -0.000312, -0.000288, -0.000273, 0.000259, 0.000245,
	-0.000232, 0.000229, -0.000216, 0.000206, -0.000204, -0.000202, 0.000200,
	0.000195, -0.000190, 0.000187, 0.000180, -0.000179, 0.000170, 0.000153,
	-0.000137, -0.000119, -0.000119, -0.000112, -0.000110, -0.000110, 0.000107,
	-0.000095, -0.000095, -0.000091, -0.000090, -0.000081, -0.000079, -0.000079,
	0.000077, -0.000073, 0.000069, -0.000067, -0.000066, 0.000065, 0.000064,
	-0.000062, 0.000060, 0.000059, -0.000056, 0.000055, -0.000051,
}
