// Copyright (c) 2025 hitoshi.mukai.b@gmail.com. All rights reserved.
// You are free to use this source code for any purpose. The copyright remains with the author.
// The author accepts no liability for any damages arising from the use of this source code.
//
// Last modified: 2025.10.12
//

package gootl

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// BLQ format of the ocean loading service by Bos and Scherneck
// http://holt.oso.chalmers.se/loading/
//

// Constituents of a BLQ record in column order
var BLQWaves = [NBLQ]struct {
	Name    string
	Doodson Doodson
}{
	{"M2", Doodson{2, 0, 0, 0, 0, 0}},
	{"S2", Doodson{2, 2, -2, 0, 0, 0}},
	{"N2", Doodson{2, -1, 0, 1, 0, 0}},
	{"K2", Doodson{2, 2, 0, 0, 0, 0}},
	{"K1", Doodson{1, 1, 0, 0, 0, 0}},
	{"O1", Doodson{1, -1, 0, 0, 0, 0}},
	{"P1", Doodson{1, 1, -2, 0, 0, 0}},
	{"Q1", Doodson{1, -2, 0, 1, 0, 0}},
	{"Mf", Doodson{0, 2, 0, 0, 0, 0}},
	{"Mm", Doodson{0, 1, 0, -1, 0, 0}},
	{"Ssa", Doodson{0, 0, 2, 0, 0, 0}},
}

// Ocean loading coefficients of one site
type BLQSite struct {
	Name  string
	Pos   *PosLLH          // Position from the "lon/lat:" comment (nil if absent)
	Amp   [3][NBLQ]float64 // Amplitude [m] (radial, west, south)
	Phase [3][NBLQ]float64 // Phase [deg], lag positive
}

// Constituents of one component.
// The phase sign is changed so that lags are negative.
func (p *BLQSite) Constituents(c Comp) []Constituent {
	cs := make([]Constituent, NBLQ)
	for i := range cs {
		cs[i] = Constituent{
			Doodson: BLQWaves[i].Doodson,
			Amp:     p.Amp[c][i],
			Phase:   -p.Phase[c][i],
		}
	}
	return cs
}

// Read all sites of a BLQ file
func ReadBLQ(r io.Reader) ([]*BLQSite, error) {
	var sites []*BLQSite
	var site *BLQSite
	row := 0
	ln := 0
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		ln++
		s := sc.Text()
		t := strings.TrimSpace(s)
		if len(t) == 0 {
			continue
		}

		// Comment line
		if strings.HasPrefix(t, "$$") {
			if site != nil && row == 0 {
				if i := strings.Index(t, "lon/lat:"); i >= 0 {
					pos := new(PosLLH)
					if err := pos.SetLonLat(t[i+len("lon/lat:"):]); err != nil {
						return nil, fmt.Errorf("line %d: invalid position of %s: %w", ln, site.Name, err)
					}
					site.Pos = pos
				}
			}
			continue
		}

		// Site name
		if site == nil {
			site = &BLQSite{Name: strings.Fields(t)[0]}
			row = 0
			continue
		}

		// Amplitude rows then phase rows
		v, err := parseBLQRow(t)
		if err != nil {
			return nil, fmt.Errorf("line %d: site %s: %w", ln, site.Name, err)
		}
		if row < 3 {
			site.Amp[row] = v
		} else {
			site.Phase[row-3] = v
		}
		row++
		if row == 6 {
			PrintD(3, "blq: site %s read\n", site.Name)
			sites = append(sites, site)
			site = nil
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if site != nil {
		return nil, fmt.Errorf("site %s: incomplete record (%d of 6 rows)", site.Name, row)
	}
	return sites, nil
}

func parseBLQRow(s string) (v [NBLQ]float64, err error) {
	f := strings.Fields(s)
	if len(f) != NBLQ {
		return v, fmt.Errorf("%d values found, %d expected", len(f), NBLQ)
	}
	for i := range f {
		v[i], err = strconv.ParseFloat(f[i], 64)
		if err != nil {
			return v, err
		}
	}
	return v, nil
}

// Interpolate the admittance of the three components of a site
func AdmintSite(site *BLQSite, ep Epoch, opt *AdmOpt) [3]*AdmSol {
	var sols [3]*AdmSol
	for c := Radial; c <= South; c++ {
		PrintD(2, "admint: site %s component %s\n", site.Name, c)
		sols[c] = Admint(site.Constituents(c), ep, opt)
	}
	return sols
}
