// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package units

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cogentcore.org/retained/math32"
)

func TestToDots(t *testing.T) {
	tests := map[Units]float32{
		UnitDot: 50,
		UnitPx:  100,
		UnitDp:  60,
		UnitPt:  133.33333,
		UnitPc:  1600,
		UnitIn:  9600,
		UnitCm:  3779.5276,
		UnitMm:  377.95276,
	}
	uc := Context{DPIX: 192, DPIY: 192}
	for unit, want := range tests {
		v := New(50, unit)
		have := uc.HDots(v)
		assert.InDelta(t, want, have, 0.001, unit.String())
	}
}

func TestDPIAxes(t *testing.T) {
	uc := Context{DPIX: 100, DPIY: 200}
	assert.Equal(t, float32(200), uc.HDots(In(2)))
	assert.Equal(t, float32(400), uc.VDots(In(2)))
	assert.Equal(t, float32(200), uc.ToDots(In(2), math32.X))
	assert.Equal(t, float32(400), uc.ToDots(In(2), math32.Y))
	assert.Equal(t, float32(7), uc.VDots(Dot(7)))
	assert.Equal(t, In(2), uc.ToUnits(400, math32.Y, UnitIn))
	assert.Equal(t, Dot(13), uc.ToUnits(13, math32.X, UnitDot))
}

func TestValueConvert(t *testing.T) {
	var ctxt Context
	ctxt.Defaults()
	for _, un := range UnitsValues() {
		v1 := New(1.0, un)
		s1 := fmt.Sprintf("%v = %v dots", v1, ctxt.HDots(v1))
		v2, err := StringToValue("1.0" + un.String())
		require.NoError(t, err)
		s2 := fmt.Sprintf("%v = %v dots", v2, ctxt.HDots(v2))
		assert.Equal(t, s1, s2)
	}
}

func TestStringToValue(t *testing.T) {
	v, err := StringToValue(" 2.5in ")
	require.NoError(t, err)
	assert.Equal(t, In(2.5), v)

	v, err = StringToValue("40")
	require.NoError(t, err)
	assert.Equal(t, Dot(40), v)

	_, err = StringToValue("12furlongs")
	assert.Error(t, err)

	_, err = StringToValue("px")
	assert.Error(t, err)

	var u Units
	require.NoError(t, u.UnmarshalText([]byte("MM")))
	assert.Equal(t, UnitMm, u)
	assert.Equal(t, "mm", u.String())
	assert.Error(t, u.SetString("furlong"))
	assert.Equal(t, UnitMm, u)
}
