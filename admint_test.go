// Copyright (c) 2025 hitoshi.mukai.b@gmail.com. All rights reserved.
// You are free to use this source code for any purpose. The copyright remains with the author.
// The author accepts no liability for any damages arising from the use of this source code.
//
// Last modified: 2025.10.12
//

package gootl

import (
	"math"
	"os"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	ddM2 = Doodson{2, 0, 0, 0, 0, 0}
	ddK1 = Doodson{1, 1, 0, 0, 0, 0}
	ddO1 = Doodson{1, -1, 0, 0, 0, 0}
)

// Frequencies from a table, everything else at the species number with zero phase
type stubArgs map[Doodson]float64

func (a stubArgs) FreqPhase(d Doodson) (float64, float64) {
	if f, ok := a[d]; ok {
		return f, 0.0
	}
	return float64(d.Species()), 0.0
}

func angleDiff(a, b float64) float64 {
	return math.Remainder(a-b, 360.0)
}

func readONSA(t *testing.T) *BLQSite {
	t.Helper()
	fp, err := os.Open("testdata/onsa.blq")
	require.NoError(t, err)
	defer fp.Close()
	sites, err := ReadBLQ(fp)
	require.NoError(t, err)
	require.NotEmpty(t, sites)
	return sites[0]
}

func TestAdmintM2Only(t *testing.T) {
	sol := Admint([]Constituent{{ddM2, 1.0, 0.0}}, testEpoch, nil)

	require.Len(t, sol.Samples, 1)
	assert.InDelta(t, 1.9322736, sol.Samples[0].Freq, 1e-6)
	assert.InDelta(t, 1.0/0.632208, sol.Samples[0].Re, 1e-12)
	assert.Equal(t, 0.0, sol.Samples[0].Im)
	assert.Equal(t, 0, sol.NLp)
	assert.Equal(t, 0, sol.NDi)
	assert.Equal(t, 1, sol.NSd)

	// Semidiurnal and diurnal blocks only, with the count one short
	assert.Equal(t, 262, sol.NOut)
	assert.Equal(t, 263, sol.Len())
	assert.Equal(t, ddM2, sol.Doodson[0])
	assert.InDelta(t, 1.0, sol.Amp[0], 1e-12)

	for j := 0; j < sol.Len(); j++ {
		h := CatalogAt(j)
		assert.Equal(t, h.Doodson, sol.Doodson[j])
		if h.Doodson.Species() == Semidiurnal {
			assert.InDelta(t, h.Amp/0.632208, sol.Amp[j], 1e-12, "slot %d", j)
		} else {
			assert.Equal(t, 0.0, sol.Amp[j], "slot %d", j)
		}
		assert.Greater(t, sol.Phase[j], -360.0)
		assert.LessOrEqual(t, sol.Phase[j], 180.0)
	}

	// Zero phase sample, so the phase is that of the equilibrium tide
	_, p := NewDoodsonArgs(testEpoch).FreqPhase(ddM2)
	assert.InDelta(t, 0.0, angleDiff(sol.Phase[0], p), 1e-9)
}

func TestAdmintUnmatched(t *testing.T) {
	ref := Admint([]Constituent{{ddM2, 1.0, 0.0}}, testEpoch, nil)
	sol := Admint([]Constituent{
		{Doodson{9, 9, 9, 9, 9, 9}, 5.0, 10.0},
		{ddM2, 1.0, 0.0},
		{Doodson{3, 0, 0, 0, 0, 0}, 1.0, 0.0},
	}, testEpoch, nil)
	assert.Equal(t, ref, sol)
}

func TestAdmintDuplicate(t *testing.T) {
	ref := Admint([]Constituent{{ddM2, 1.0, 0.0}}, testEpoch, nil)
	sol := Admint([]Constituent{{ddM2, 1.0, 0.0}, {ddM2, 1.0, 0.0}}, testEpoch, nil)

	assert.Len(t, sol.Samples, 2)
	assert.Equal(t, 2, sol.NSd)
	assert.Equal(t, ref.NOut, sol.NOut)
	assert.Equal(t, ref.Doodson, sol.Doodson)
	assert.Equal(t, ref.Amp, sol.Amp)
	assert.Equal(t, ref.Phase, sol.Phase)
}

func TestAdmintCapacity(t *testing.T) {
	ins := make([]Constituent, 25)
	for i := range ins {
		h := CatalogAt(i)
		ins[i] = Constituent{h.Doodson, math.Abs(h.Amp), 0.0}
	}
	sol := Admint(ins, testEpoch, nil)

	require.Len(t, sol.Samples, NCON)
	assert.Equal(t, NCON, sol.NSd)
	used := map[Doodson]bool{}
	for _, s := range sol.Samples {
		used[s.Doodson] = true
	}
	for i := range ins {
		assert.Equal(t, i < NCON, used[ins[i].Doodson], "input %d", i)
	}

	// Samples are sorted by frequency
	for i := 1; i < len(sol.Samples); i++ {
		assert.Less(t, sol.Samples[i-1].Freq, sol.Samples[i].Freq)
	}
}

func TestAdmintEmpty(t *testing.T) {
	sol := Admint(nil, testEpoch, nil)
	assert.Empty(t, sol.Samples)
	assert.Equal(t, 262, sol.NOut)
	for j := 0; j < sol.Len(); j++ {
		assert.NotEqual(t, LongPeriod, sol.Doodson[j].Species())
		assert.Equal(t, 0.0, sol.Amp[j])
		assert.Greater(t, sol.Phase[j], -360.0)
		assert.LessOrEqual(t, sol.Phase[j], 180.0)
	}
}

func TestAdmintSpeciesLimit(t *testing.T) {
	opt := NewAdmOpt()
	opt.Args = func(ep Epoch) FreqPhaser {
		return stubArgs{ddM2: 0.5, ddO1: 0.9, ddK1: 1.0}
	}
	sol := Admint([]Constituent{{ddM2, 1.0, 0.0}, {ddO1, 1.0, 0.0}, {ddK1, 2.0, 0.0}}, testEpoch, opt)

	// The sample on the limit belongs to no species, yet the diurnal splines take the first two samples
	assert.Equal(t, 0, sol.NLp)
	assert.Equal(t, 2, sol.NDi)
	assert.Equal(t, 0, sol.NSd)
	assert.Equal(t, 262, sol.NOut)

	assert.Equal(t, ddK1, sol.Doodson[109])
	assert.InDelta(t, 0.368645/0.262232, sol.Amp[109], 1e-12)
	assert.Equal(t, ddO1, sol.Doodson[110])
	assert.InDelta(t, 1.0, math.Abs(sol.Amp[110]), 1e-12)
	for j := 0; j < 109; j++ {
		assert.Equal(t, 0.0, sol.Amp[j])
	}
}

func TestAdmintSamplePoints(t *testing.T) {
	site := readONSA(t)
	args := NewDoodsonArgs(testEpoch)
	for _, end := range []SplineEnd{SplineNatural, SplineQuadratic} {
		opt := NewAdmOpt()
		opt.End = end
		for c := Radial; c <= South; c++ {
			sol := Admint(site.Constituents(c), testEpoch, opt)
			assert.Equal(t, 3, sol.NLp)
			assert.Equal(t, 4, sol.NDi)
			assert.Equal(t, 4, sol.NSd)
			assert.Equal(t, NT-1, sol.NOut)

			for i, w := range BLQWaves {
				k := FindHarmonic(w.Doodson)
				require.GreaterOrEqual(t, k, 0)
				require.Equal(t, w.Doodson, sol.Doodson[k])

				ta := CatalogAt(k).Amp
				assert.InDelta(t, math.Copysign(site.Amp[c][i], ta), sol.Amp[k], 1e-12, "%s %s %s", &end, c, w.Name)

				_, p := args.FreqPhase(w.Doodson)
				p += w.Doodson.Species().PhaseOffset() - site.Phase[c][i]
				assert.InDelta(t, 0.0, angleDiff(sol.Phase[k], p), 1e-6, "%s %s %s", &end, c, w.Name)
			}
			for j := 0; j < sol.Len(); j++ {
				assert.Greater(t, sol.Phase[j], -180.0)
				assert.Less(t, sol.Phase[j], 360.0)
			}
		}
	}
}

func TestAdmintDeterministic(t *testing.T) {
	ins := readONSA(t).Constituents(West)
	ref := Admint(ins, testEpoch, nil)
	assert.Equal(t, ref, Admint(ins, testEpoch, nil))

	sols := make([]*AdmSol, 8)
	var wg sync.WaitGroup
	for i := range sols {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			sols[i] = Admint(ins, testEpoch, nil)
		}(i)
	}
	wg.Wait()
	for i := range sols {
		assert.Equal(t, ref, sols[i])
	}
}

func TestAdmintSite(t *testing.T) {
	site := readONSA(t)
	sols := AdmintSite(site, testEpoch, nil)
	for c := Radial; c <= South; c++ {
		require.NotNil(t, sols[c])
		assert.Equal(t, Admint(site.Constituents(c), testEpoch, nil), sols[c])
	}
	assert.NotEqual(t, sols[Radial].Amp, sols[West].Amp)
}
