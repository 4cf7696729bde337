// Copyright (c) 2025 hitoshi.mukai.b@gmail.com. All rights reserved.
// You are free to use this source code for any purpose. The copyright remains with the author.
// The author accepts no liability for any damages arising from the use of this source code.
//
// Last modified: 2025.10.12
//

package gootl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDoodsonSpecies(t *testing.T) {
	m2 := Doodson{2, 0, 0, 0, 0, 0}
	k1 := Doodson{1, 1, 0, 0, 0, 0}
	mf := Doodson{0, 2, 0, 0, 0, 0}
	assert.Equal(t, Semidiurnal, m2.Species())
	assert.Equal(t, Diurnal, k1.Species())
	assert.Equal(t, LongPeriod, mf.Species())

	assert.Equal(t, 180.0, LongPeriod.PhaseOffset())
	assert.Equal(t, 90.0, Diurnal.PhaseOffset())
	assert.Equal(t, 0.0, Semidiurnal.PhaseOffset())
	assert.Equal(t, "diurnal", Diurnal.String())
}

func TestDoodsonDist(t *testing.T) {
	d := Doodson{2, -1, 0, 1, 0, 0}
	assert.Equal(t, 0, d.Dist(Doodson{2, -1, 0, 1, 0, 0}))
	assert.Equal(t, 2, d.Dist(Doodson{2, 1, 0, 1, 0, 0}))
	assert.Equal(t, 5, d.Dist(Doodson{1, 0, 1, 0, 0, 1}))
}

func TestDoodsonNumber(t *testing.T) {
	for _, tc := range []struct {
		d    Doodson
		want string
	}{
		{Doodson{2, 0, 0, 0, 0, 0}, "255.555"},
		{Doodson{2, 2, -2, 0, 0, 0}, "273.555"},
		{Doodson{1, -1, 0, 0, 0, 0}, "145.555"},
		{Doodson{0, 0, 2, 0, 0, 0}, "057.555"},
		{Doodson{2, 0, 0, 0, -1, 0}, "255.545"},
		{Doodson{1, -6, 4, 1, 0, 0}, "1X9.655"},
	} {
		assert.Equal(t, tc.want, tc.d.Number())
	}
}

func TestDoodsonSet(t *testing.T) {
	var d Doodson
	require.NoError(t, d.Set("2,-1,0,1,0,0"))
	assert.Equal(t, Doodson{2, -1, 0, 1, 0, 0}, d)
	require.NoError(t, d.Set(" 1 1 -2  0 0 0"))
	assert.Equal(t, Doodson{1, 1, -2, 0, 0, 0}, d)
	assert.Equal(t, " 1  1 -2  0  0  0", d.String())

	assert.Error(t, d.Set("2 0 0 0 0"))
	assert.Error(t, d.Set("2 0 0 0 0 x"))
}
