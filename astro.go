// Copyright (c) 2025 hitoshi.mukai.b@gmail.com. All rights reserved.
// You are free to use this source code for any purpose. The copyright remains with the author.
// The author accepts no liability for any damages arising from the use of this source code.
//
// Last modified: 2025.10.12
//

package gootl

import (
	"math"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// Provider of the instantaneous frequency [cycles/day] and phase [deg] of a harmonic
type FreqPhaser interface {
	FreqPhase(d Doodson) (freq, phase float64)
}

// Doodson arguments and their rates for one epoch
type DoodsonArgs struct {
	Epoch Epoch
	T     float64    // Julian centuries (TT) since J2000.0
	D     [6]float64 // Arguments [deg]
	DD    [6]float64 // Rates [cycles/day]
}

// Compute the Doodson arguments for the epoch.
// The result is immutable and can be shared by concurrent callers.
func NewDoodsonArgs(ep Epoch) *DoodsonArgs {
	t := ep.Centuries()
	dayfr := ep.DayFr()

	// IERS expressions for the Delaunay arguments [deg]
	f1 := 134.9634025100 + t*(477198.8675605000+t*(0.0088553333+t*(0.0000143431+t*(-0.0000000680))))
	f2 := 357.5291091806 + t*(35999.0502911389+t*(-0.0001536667+t*(0.0000000378+t*(-0.0000000032))))
	f3 := 93.2720906200 + t*(483202.0174577222+t*(-0.0035420000+t*(-0.0000002881+t*(0.0000000012))))
	f4 := 297.8501954694 + t*(445267.1114469445+t*(-0.0017696111+t*(0.0000018314+t*(-0.0000000088))))
	f5 := 125.0445550100 + t*(-1934.1362619722+t*(0.0020756111+t*(0.0000021394+t*(-0.0000000165))))

	a := &DoodsonArgs{Epoch: ep, T: t}

	// Doodson (Darwin) variables
	a.D[0] = 360.0*dayfr - f4
	a.D[1] = f3 + f5
	a.D[2] = a.D[1] - f4
	a.D[3] = a.D[1] - f1
	a.D[4] = -f5
	a.D[5] = a.D[2] - f2

	// Rates of the Delaunay variables [cycles/day]
	fd1 := 0.0362916471 + 0.0000000013*t
	fd2 := 0.0027377786
	fd3 := 0.0367481951 - 0.0000000005*t
	fd4 := 0.0338631920 - 0.0000000003*t
	fd5 := -0.0001470938 + 0.0000000003*t
	a.DD[0] = 1.0 - fd4
	a.DD[1] = fd3 + fd5
	a.DD[2] = a.DD[1] - fd4
	a.DD[3] = a.DD[1] - fd1
	a.DD[4] = -fd5
	a.DD[5] = a.DD[2] - fd2

	PrintD(4, "doodson args %s: T=%.12f D=%v DD=%v\n", ep, t, a.D, a.DD)
	return a
}

// Arguments already computed, keyed by epoch
var argsCache = gocache.New(time.Hour, time.Hour)

// Doodson arguments of the epoch, computed once and shared by the calls at the same epoch
func CachedDoodsonArgs(ep Epoch) *DoodsonArgs {
	k := ep.String()
	if v, ok := argsCache.Get(k); ok {
		return v.(*DoodsonArgs)
	}
	a := NewDoodsonArgs(ep)
	argsCache.Set(k, a, gocache.DefaultExpiration)
	return a
}

// Frequency [cycles/day] and phase [deg, 0-360) of the harmonic
func (a *DoodsonArgs) FreqPhase(d Doodson) (freq, phase float64) {
	for i := range d {
		freq += float64(d[i]) * a.DD[i]
		phase += float64(d[i]) * a.D[i]
	}
	phase = math.Mod(phase, 360.0)
	if phase < 0.0 {
		phase += 360.0
	}
	return
}

// Leap second epochs (decimal year) since 1972.
// TAI - UTC was 10 s on 1972/1/1 and grows by one second at each entry.
var leapYears = [...]float64{
	1972.5, 1973.0, 1974.0, 1975.0, 1976.0, 1977.0, 1978.0, 1979.0, 1980.0,
	1981.5, 1982.5, 1983.5, 1985.5, 1988.0, 1990.0, 1991.0, 1992.5, 1993.5,
	1994.5, 1996.0, 1997.5, 1999.0, 2006.0, 2009.0, 2012.5, 2015.5, 2017.0,
}

// TT - UT before 1972 [sec], every 5 years from 1960
var preLeap = [...]float64{33.15, 35.73, 40.18}

// TT - UTC [sec] at the decimal year
func ETUTC(year float64) float64 {
	if year >= 1972.0 {
		d := 42.184 // 32.184 + 10
		for _, y := range leapYears {
			if year >= y {
				d += 1.0
			}
		}
		return d
	}
	// Piecewise linear between the tabulated values and 42.184 at 1972
	x := (year - 1960.0) / 5.0
	switch {
	case x <= 0:
		return preLeap[0]
	case x >= 2:
		return preLeap[2] + (42.184-preLeap[2])*(year-1970.0)/2.0
	}
	i := int(x)
	return preLeap[i] + (preLeap[i+1]-preLeap[i])*(x-float64(i))
}
