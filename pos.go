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
)

//-------------------------------------------------------------------
// PosLLH
//-------------------------------------------------------------------

// Site position (latitude and longitude in radians, ellipsoidal height in meters)
type PosLLH struct {
	Lat float64
	Lon float64
	Hei float64
}

func NewPosLLH(lat, lon, hei float64) *PosLLH {
	return &PosLLH{
		Lat: lat,
		Lon: lon,
		Hei: hei,
	}
}

func (llh *PosLLH) ToXYZ() PosXYZ {
	// Ellipsoid parameters
	f := Fe                     // Flattening
	a := Re                     // Semi-major axis
	e := math.Sqrt(f * (2 - f)) // Eccentricity

	// Conversion to Cartesian coordinates
	n := a / math.Sqrt(1-e*e*math.Sin(llh.Lat)*math.Sin(llh.Lat))
	return PosXYZ{
		X: (n + llh.Hei) * math.Cos(llh.Lat) * math.Cos(llh.Lon),
		Y: (n + llh.Hei) * math.Cos(llh.Lat) * math.Sin(llh.Lon),
		Z: (n*(1-e*e) + llh.Hei) * math.Sin(llh.Lat),
	}
}

// Read "lon lat hei" in degrees and meters, the order used in BLQ headers
func (llh *PosLLH) SetLonLat(s string) error {
	f := strings.Fields(s)
	if len(f) < 2 {
		return fmt.Errorf("lon/lat needs at least 2 values, got %q", s)
	}
	v := [3]float64{}
	for i := 0; i < len(f) && i < 3; i++ {
		var err error
		v[i], err = strconv.ParseFloat(f[i], 64)
		if err != nil {
			return err
		}
	}
	llh.Lon = ToRad(v[0])
	llh.Lat = ToRad(v[1])
	llh.Hei = v[2]
	return nil
}

// Convert to string (degrees)
func (llh *PosLLH) String() string {
	return fmt.Sprintf("%.8f %.8f %.4f", ToDeg(llh.Lat), ToDeg(llh.Lon), llh.Hei)
}

//-------------------------------------------------------------------
// PosXYZ
//-------------------------------------------------------------------

type PosXYZ struct {
	X float64
	Y float64
	Z float64
}

// Convert to string
func (pos *PosXYZ) String() string {
	return fmt.Sprintf("%.4f %.4f %.4f", pos.X, pos.Y, pos.Z)
}
