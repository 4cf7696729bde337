// Copyright (c) 2025 hitoshi.mukai.b@gmail.com. All rights reserved.
// You are free to use this source code for any purpose. The copyright remains with the author.
// The author accepts no liability for any damages arising from the use of this source code.
//
// Last modified: 2025.10.12
//

package gootl

import (
	"fmt"
	"strconv"
	"strings"
)

// Type representing a Doodson number as 6 integer multipliers of the fundamental arguments
// (tau, s, h, p, N', ps)
type Doodson [6]int

// Tidal species
type Species int

const (
	LongPeriod Species = iota
	Diurnal
	Semidiurnal
)

func (p Species) String() string {
	switch p {
	case LongPeriod:
		return "long-period"
	case Diurnal:
		return "diurnal"
	case Semidiurnal:
		return "semidiurnal"
	default:
		return "UNKNOWN!"
	}
}

// Phase offset of the equilibrium tide for the species [deg]
func (p Species) PhaseOffset() float64 {
	switch p {
	case LongPeriod:
		return 180.0
	case Diurnal:
		return 90.0
	default:
		return 0.0
	}
}

// Extract the species from the first multiplier
func (p *Doodson) Species() Species {
	return Species(p[0])
}

// Sum of absolute differences of the multipliers (0 means identical)
func (p *Doodson) Dist(d Doodson) int {
	n := 0
	for i := range p {
		n += abs(p[i] - d[i])
	}
	return n
}

// Classical notation like "255.555" (each multiplier but the first is offset by 5)
func (p *Doodson) Number() string {
	var b strings.Builder
	for i, v := range p {
		if i > 0 {
			v += 5
		}
		if i == 3 {
			b.WriteByte('.')
		}
		if v >= 0 && v <= 9 {
			b.WriteByte(byte('0' + v))
		} else {
			b.WriteByte('X') // Out of range for the single digit notation
		}
	}
	return b.String()
}

// Convert to string
func (p *Doodson) String() string {
	return fmt.Sprintf("%2d%3d%3d%3d%3d%3d", p[0], p[1], p[2], p[3], p[4], p[5])
}

// Read 6 integers separated by spaces or commas
func (p *Doodson) Set(s string) error {
	f := strings.FieldsFunc(s, func(r rune) bool { return r == ',' || r == ' ' || r == '\t' })
	if len(f) != 6 {
		return fmt.Errorf("doodson number needs 6 integers, got %d (%q)", len(f), s)
	}
	for i := range f {
		v, err := strconv.Atoi(f[i])
		if err != nil {
			return fmt.Errorf("invalid doodson multiplier %q: %w", f[i], err)
		}
		p[i] = v
	}
	return nil
}

func abs(i int) int {
	if i < 0 {
		return -i
	}
	return i
}
