// Copyright (c) 2025 hitoshi.mukai.b@gmail.com. All rights reserved.
// You are free to use this source code for any purpose. The copyright remains with the author.
// The author accepts no liability for any damages arising from the use of this source code.
//
// Last modified: 2025.10.12
//

package gootl

const (
	PI    = 3.1415926535897932  // Pi
	DTR   = 0.01745329252       // Degrees to radians (value used by the IERS routines)
	Re    = 6378137.0           // Earth's radius [m]
	Fe    = 1.0 / 298.257223563 // Earth's flattening
	LS    = 18                  // Leap seconds (GPS - UTC)
	NT    = 342                 // Number of harmonics in the catalog
	NCON  = 20                  // Maximum number of constituents used as admittance samples
	NBLQ  = 11                  // Number of constituents in a BLQ record
	J2000 = 2451545.0           // Julian date of J2000.0
)

// Frequency limits of the tidal species [cycles/day]
const (
	FLpMax = 0.5 // Long-period: f < FLpMax
	FDiMax = 1.5 // Diurnal: FLpMax < f < FDiMax
	FSdMax = 2.5 // Semidiurnal: FDiMax < f < FSdMax
)
