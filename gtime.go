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
	"strconv"
	"strings"
	"time"
)

//-------------------------------------------------------------------
// Epoch
//-------------------------------------------------------------------

// Epoch in UTC as used by the tidal argument computation
type Epoch struct {
	Year int // Year
	Doy  int // Day of year (1-366)
	Hour int
	Min  int
	Sec  int
}

func NewEpoch(dt time.Time) Epoch {
	t := dt.UTC()
	return Epoch{
		Year: t.Year(),
		Doy:  t.YearDay(),
		Hour: t.Hour(),
		Min:  t.Minute(),
		Sec:  t.Second(),
	}
}

func (p Epoch) ToTime() time.Time {
	return time.Date(p.Year, 1, p.Doy, p.Hour, p.Min, p.Sec, 0, time.UTC) // Day of year overflows into month/day
}

// Julian day number of the calendar date (integer, noon based)
func (p Epoch) JulDay() int {
	t := p.ToTime()
	y, m, d := t.Year(), int(t.Month()), t.Day()
	return 367*y - 7*(y+(m+9)/12)/4 - 3*((y+(m-9)/7)/100+1)/4 + 275*m/9 + d + 1721029
}

// Fraction of the day.
// The seconds divisor 84600 is kept from the IERS routine so that arguments agree with its output.
func (p Epoch) DayFr() float64 {
	return float64(p.Hour)/24.0 + float64(p.Min)/1440.0 + float64(p.Sec)/84600.0
}

// Decimal year
func (p Epoch) DecYear() float64 {
	return float64(p.Year) + (float64(p.Doy)+p.DayFr())/(365.0+float64(leap(p.Year)))
}

// Julian centuries (TT) since J2000.0
func (p Epoch) Centuries() float64 {
	delta := ETUTC(p.DecYear())
	djd := float64(p.JulDay()) - J2000 + p.DayFr()
	return (djd + delta/86400.0) / 36525.0
}

// Read "YYYY DOY HH MM SS"
func (p *Epoch) Set(s string) error {
	f := strings.Fields(s)
	if len(f) != 5 {
		return fmt.Errorf("epoch needs 5 integers (year doy hour min sec), got %d", len(f))
	}
	v := [5]int{}
	for i := range f {
		var err error
		v[i], err = strconv.Atoi(f[i])
		if err != nil {
			return fmt.Errorf("invalid epoch field %q: %w", f[i], err)
		}
	}
	*p = Epoch{Year: v[0], Doy: v[1], Hour: v[2], Min: v[3], Sec: v[4]}
	return nil
}

// Convert to string
func (p Epoch) String() string {
	return fmt.Sprintf("%4d %03d %02d:%02d:%02d", p.Year, p.Doy, p.Hour, p.Min, p.Sec)
}

// 1 in leap years (the divisible-by-4 rule used by the IERS routine)
func leap(year int) int {
	return 1 - (year%4+3)/4
}

//-------------------------------------------------------------------
// GTime
//-------------------------------------------------------------------

// GPS time
type GTime struct {
	Week int
	Sec  float64
}

func NewGTime(dt time.Time) *GTime {
	t := dt.Unix()
	t -= time.Date(1980, 1, 6, 0, 0, 0, 0, time.UTC).Unix() // Elapsed seconds since 1980/1/6 00:00:00
	return &GTime{
		Week: int(t / (3600 * 24 * 7)),
		Sec:  float64(t%(3600*24*7)) + float64(dt.Nanosecond())/1000000000,
	}
}

func (p *GTime) ToTime() time.Time {
	o := time.Date(1980, 1, 6, 0, 0, 0, 0, time.UTC).Unix() // GPS time starts from 1980/1/6 00:00:00
	i := int64(math.Trunc(p.Sec))
	t := int64(3600*24*7*p.Week) + i + o
	n := int64((p.Sec - float64(i)) * 1e9)
	return time.Unix(t, n) // Unix time is the elapsed seconds since 1970/1/1 00:00:00
}

// UTC epoch of the GPS time (GPS - UTC = LS)
func (p *GTime) Epoch() Epoch {
	return NewEpoch(p.ToTime().Add(-LS * time.Second))
}

// Read "week sec"
func (p *GTime) Set(s string) error {
	var err error
	f := strings.Fields(s)
	if len(f) != 2 {
		return fmt.Errorf("gps time needs week and seconds, got %q", s)
	}
	p.Week, err = strconv.Atoi(f[0])
	if err != nil {
		return err
	}
	p.Sec, err = strconv.ParseFloat(f[1], 64)
	if err != nil {
		return err
	}
	return nil
}

func (p *GTime) String() string {
	return fmt.Sprintf("%d %.3f", p.Week, p.Sec)
}
