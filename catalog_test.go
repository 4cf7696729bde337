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
)

func TestCatalogBlocks(t *testing.T) {
	n := [3]int{}
	prev := Semidiurnal
	for i, h := range Harmonics() {
		sp := h.Doodson.Species()
		assert.LessOrEqual(t, int(sp), int(prev), "species order broken at %d", i)
		prev = sp
		n[sp]++
		assert.NotZero(t, h.Amp, "zero amplitude at %d", i)
	}
	assert.Equal(t, [3]int{79, 154, 109}, n)
}

func TestCatalogEntries(t *testing.T) {
	m2 := CatalogAt(0)
	assert.Equal(t, Doodson{2, 0, 0, 0, 0, 0}, m2.Doodson)
	assert.Equal(t, 0.632208, m2.Amp)

	k1 := CatalogAt(109)
	assert.Equal(t, Doodson{1, 1, 0, 0, 0, 0}, k1.Doodson)
	assert.Equal(t, 0.368645, k1.Amp)

	last := CatalogAt(NT - 1)
	assert.Equal(t, Doodson{0, 6, -4, 0, 0, 0}, last.Doodson)
	assert.Equal(t, -0.000051, last.Amp)
}

func TestFindHarmonic(t *testing.T) {
	for i, w := range BLQWaves {
		assert.GreaterOrEqual(t, FindHarmonic(w.Doodson), 0, "%s (%d) not in catalog", w.Name, i)
	}
	assert.Equal(t, 0, FindHarmonic(Doodson{2, 0, 0, 0, 0, 0}))
	assert.Equal(t, 110, FindHarmonic(Doodson{1, -1, 0, 0, 0, 0}))
	assert.Equal(t, -1, FindHarmonic(Doodson{3, 0, 0, 0, 0, 0}))
}

func TestCatalogUnique(t *testing.T) {
	seen := map[Doodson]int{}
	for i := 0; i < NT; i++ {
		d := CatalogAt(i).Doodson
		j, ok := seen[d]
		assert.False(t, ok, "%s at %d and %d", d.Number(), j, i)
		seen[d] = i
	}
}

func TestHarmonicsIsCopy(t *testing.T) {
	hs := Harmonics()
	hs[0].Amp = 0
	hs[0].Doodson[0] = 9
	assert.Equal(t, 0.632208, CatalogAt(0).Amp)
	assert.Equal(t, Doodson{2, 0, 0, 0, 0, 0}, CatalogAt(0).Doodson)
}
