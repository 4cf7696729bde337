// Copyright (c) 2025 hitoshi.mukai.b@gmail.com. All rights reserved.
// You are free to use this source code for any purpose. The copyright remains with the author.
// The author accepts no liability for any damages arising from the use of this source code.
//
// Last modified: 2025.10.12
//

package gootl

import (
	"math"
)

// Loading amplitude and phase measured at one constituent
type Constituent struct {
	Doodson Doodson // Doodson number (must match a catalog entry)
	Amp     float64 // Amplitude
	Phase   float64 // Phase [deg]
}

// Admittance at one constituent, normalized by the Cartwright-Edden amplitude
type AdmSample struct {
	Doodson Doodson // Matched catalog harmonic
	Freq    float64 // Frequency [cycles/day]
	Re      float64 // Real part
	Im      float64 // Imaginary part
}

// Options for the admittance interpolation
type AdmOpt struct {
	End  SplineEnd                 // End condition of the splines
	Args func(ep Epoch) FreqPhaser // Provider of frequencies and phases for the epoch
}

// Constructor with default values
func NewAdmOpt() *AdmOpt {
	return &AdmOpt{
		End:  SplineNatural,
		Args: func(ep Epoch) FreqPhaser { return CachedDoodsonArgs(ep) },
	}
}

// Result of the admittance interpolation.
// Slots are filled in catalog order. Note that NOut is one less than the number of filled slots,
// i.e. the valid slots are 0..NOut (this count follows the IERS ADMINT routine).
type AdmSol struct {
	Epoch   Epoch
	Amp     [NT]float64 // Amplitude
	Freq    [NT]float64 // Frequency [cycles/day]
	Phase   [NT]float64 // Phase [deg]
	Doodson [NT]Doodson // Catalog harmonic of each slot
	NOut    int         // Number of filled slots minus one

	NLp     int         // Number of long-period samples
	NDi     int         // Number of diurnal samples
	NSd     int         // Number of semidiurnal samples
	Samples []AdmSample // Admittance samples sorted by frequency
}

// Number of filled slots
func (p *AdmSol) Len() int {
	return p.NOut + 1
}

// Interpolate the admittance given at a subset of constituents to all harmonics of the catalog.
// - Inputs that match no catalog entry are ignored
// - At most NCON samples are used, later matches are dropped
// - Long-period harmonics are skipped when no long-period sample is given
func Admint(ins []Constituent, ep Epoch, opt *AdmOpt) *AdmSol {

	if opt == nil {
		opt = NewAdmOpt()
	}
	var args FreqPhaser
	if opt.Args != nil {
		args = opt.Args(ep)
	} else {
		args = CachedDoodsonArgs(ep)
	}

	sol := &AdmSol{Epoch: ep}

	// Admittance at the matching constituents
	var buf [NCON]AdmSample
	k := 0
	for l := range ins {
		in := &ins[l]
		matched := false
		for kk := 0; kk < NT; kk++ {
			if catIdd[kk].Dist(in.Doodson) != 0 {
				continue
			}
			matched = true
			if k >= NCON {
				PrintD(2, "admint: %s (input %d) dropped, already %d samples\n", in.Doodson.Number(), l, NCON)
				continue
			}
			ta := math.Abs(catAmp[kk])
			fr, _ := args.FreqPhase(catIdd[kk])
			buf[k] = AdmSample{
				Doodson: catIdd[kk],
				Freq:    fr,
				Re:      in.Amp * math.Cos(DTR*in.Phase) / ta,
				Im:      in.Amp * math.Sin(DTR*in.Phase) / ta,
			}
			k++
		}
		if !matched {
			PrintD(2, "admint: %s (input %d) not in catalog\n", in.Doodson.Number(), l)
		}
	}

	// Sort by frequency and separate the species
	rf := make([]float64, k)
	for i := range rf {
		rf[i] = buf[i].Freq
	}
	key := SortKeys(rf)
	sol.Samples = make([]AdmSample, k)
	rl := make([]float64, k)
	aim := make([]float64, k)
	for i, j := range key {
		sol.Samples[i] = buf[j]
		rf[i] = buf[j].Freq
		rl[i] = buf[j].Re
		aim[i] = buf[j].Im
	}
	for _, f := range rf {
		// Samples exactly on a species limit belong to no species
		if f < FLpMax {
			sol.NLp++
		}
		if f < FDiMax && f > FLpMax {
			sol.NDi++
		}
		if f < FSdMax && f > FDiMax {
			sol.NSd++
		}
	}
	nlp, ndi, nsd := sol.NLp, sol.NDi, sol.NSd
	PrintD(2, "admint: %d samples (lp=%d di=%d sd=%d)\n", k, nlp, ndi, nsd)

	// Splines of the real and imaginary parts for each species.
	// The long-period pair exists only when there are long-period samples.
	var spl [3][2]*Spline
	if nlp > 0 {
		spl[LongPeriod][0] = NewSpline(rf[:nlp], rl[:nlp], opt.End)
		spl[LongPeriod][1] = NewSpline(rf[:nlp], aim[:nlp], opt.End)
	}
	i0, i1 := nlp, nlp+ndi
	spl[Diurnal][0] = NewSpline(rf[i0:i1], rl[i0:i1], opt.End)
	spl[Diurnal][1] = NewSpline(rf[i0:i1], aim[i0:i1], opt.End)
	i0, i1 = nlp+ndi, nlp+ndi+nsd
	spl[Semidiurnal][0] = NewSpline(rf[i0:i1], rl[i0:i1], opt.End)
	spl[Semidiurnal][1] = NewSpline(rf[i0:i1], aim[i0:i1], opt.End)

	// Evaluate all harmonics using the interpolated admittance
	j := 0
	for i := 0; i < NT; i++ {
		sp := catIdd[i].Species()
		if int(sp)+nlp == 0 {
			continue
		}
		f, p := args.FreqPhase(catIdd[i])
		p += sp.PhaseOffset() // Phase of the equilibrium tide
		re := spl[sp][0].Eval(f)
		am := spl[sp][1].Eval(f)
		sol.Doodson[j] = catIdd[i]
		sol.Freq[j] = f
		sol.Amp[j] = catAmp[i] * math.Sqrt(re*re+am*am)
		p += math.Atan2(am, re) / DTR
		if p > 180.0 {
			p -= 360.0
		}
		sol.Phase[j] = p
		PrintD(4, "admint: %3d %s f=%.9f amp=%.6e ph=%9.4f\n", j, catIdd[i].Number(), f, sol.Amp[j], p)
		j++
	}
	sol.NOut = j - 1

	return sol
}
