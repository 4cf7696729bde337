// Copyright (c) 2025 hitoshi.mukai.b@gmail.com. All rights reserved.
// You are free to use this source code for any purpose. The copyright remains with the author.
// The author accepts no liability for any damages arising from the use of this source code.
//
// Last modified: 2025.10.12
//

package gootl

import (
	"cmp"
	"fmt"
	"os"
	"strings"
	"time"

	"golang.org/x/exp/slices"
)

// ------------------------------------
// Mini functions
// ------------------------------------

func SQ(x float64) float64 {
	return x * x
}

func ToDeg(rad float64) float64 {
	return rad / DTR
}

func ToRad(deg float64) float64 {
	return deg * DTR
}

// ------------------------------------
// Debug print function
// ------------------------------------

func PrintA(format string, a ...any) {
	fmt.Fprintf(os.Stderr, format, a...)
}

func PrintAIf(cond bool, format string, a ...any) {
	if cond {
		PrintA(format, a...)
	}
}

// Debug display level
var DBG_ int

// Debug display
func PrintD(v int, format string, a ...any) {
	PrintAIf(DBG_ >= v, format, a...)
}

func PrintE(err error) {
	fmt.Fprintf(os.Stderr, "err=%s\n", err.Error())
}

// ------------------------------------
// Sorting
// ------------------------------------

// Return the permutation that sorts v in ascending order (ties keep their order)
func SortKeys(v []float64) []int {
	key := make([]int, len(v))
	for i := range key {
		key[i] = i
	}
	slices.SortStableFunc(key, func(a, b int) int {
		return cmp.Compare(v[a], v[b])
	})
	return key
}

// Return v reordered by the permutation key
func Permute(v []float64, key []int) []float64 {
	w := make([]float64, len(key))
	for i, k := range key {
		w[i] = v[k]
	}
	return w
}

// ------------------------------------
// For command argument parsing
// ------------------------------------

// Displacement component of a BLQ record (0: radial, 1: west, 2: south)
type Comp int

const (
	Radial Comp = iota
	West
	South
)

func (p Comp) String() string {
	switch p {
	case Radial:
		return "R"
	case West:
		return "W"
	case South:
		return "S"
	default:
		return "?"
	}
}

type CompVar []Comp

func (p *CompVar) Set(s string) error {
	*p = []Comp{}
	for _, a := range strings.Split(s, ",") {
		switch strings.ToUpper(strings.TrimSpace(a)) {
		case "R", "U":
			*p = append(*p, Radial)
		case "W":
			*p = append(*p, West)
		case "S":
			*p = append(*p, South)
		default:
			return fmt.Errorf("unknown component %q", a)
		}
	}
	return nil
}

func (p *CompVar) String() string {
	s := make([]string, len(*p))
	for i, c := range *p {
		s[i] = c.String()
	}
	return strings.Join(s, ",")
}

func (p *CompVar) Contains(c Comp) bool {
	return slices.Contains(*p, c)
}

// Date and Time Parser (for command arguments)
type TimeStr time.Time

func (p *TimeStr) MarshalText() (text []byte, err error) {
	text, err = time.Time(*p).MarshalText()
	if err != nil {
		return nil, err
	}
	return text, nil
}

func (p *TimeStr) UnmarshalText(text []byte) error {
	s := string(text)
	t, err := time.Parse("2006/01/02 15:04:05", s)
	if err != nil {
		return err
	}
	*p = TimeStr(t)
	return nil
}

func NewTimeStr(t time.Time) *TimeStr {
	m := new(TimeStr)
	*m = TimeStr(t)
	return m
}
