// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"testing"

	"cogentcore.org/retained/math32"
	"cogentcore.org/retained/units"
	"github.com/stretchr/testify/assert"
)

func TestBoxLeftRightWidth(t *testing.T) {
	ts := newTestScene(t)
	l := ts.layer("L")
	e := NewElement()
	l.AddChild(e)

	e.SetLeft(units.Dot(50))
	e.SetRight(units.Dot(e.Left() + e.Units().HDots(units.In(3))))
	assert.Equal(t, float32(300), e.Width())
	assert.Equal(t, float32(200), e.CenterX())

	e.SetTop(units.In(1))
	e.SetHeight(units.In(0.5))
	assert.Equal(t, float32(200), e.Top())
	assert.Equal(t, float32(300), e.Bottom())
	assert.Equal(t, float32(250), e.CenterY())
	assert.Equal(t, math32.B2(50, 200, 350, 300), e.Bounds())
}

func TestBoxDerivations(t *testing.T) {
	e := NewElement()
	e.SetCenterX(units.Dot(100)).SetWidth(units.Dot(40))
	assert.Equal(t, float32(80), e.Left())
	assert.Equal(t, float32(120), e.Right())

	e.ResetArrangement()
	e.SetRight(units.Dot(120)).SetCenterX(units.Dot(100))
	assert.Equal(t, float32(80), e.Left())
	assert.Equal(t, float32(40), e.Width())

	e.ResetArrangement()
	e.SetLeft(units.Dot(10)).SetCenterX(units.Dot(30))
	assert.Equal(t, float32(40), e.Width())
	assert.Equal(t, float32(50), e.Right())

	e.ResetArrangement()
	e.SetBottom(units.Dot(90)).SetHeight(units.Dot(20))
	assert.Equal(t, float32(70), e.Top())
	assert.Equal(t, float32(80), e.CenterY())
}

func TestBoxPriority(t *testing.T) {
	e := NewElement()
	// width+right comes before width+centerX and right+centerX
	e.SetWidth(units.Dot(10)).SetRight(units.Dot(100)).SetCenterX(units.Dot(0))
	assert.Equal(t, float32(90), e.Left())

	e.ResetArrangement()
	// left+right comes before left+width
	e.SetLeft(units.Dot(0)).SetRight(units.Dot(10)).SetWidth(units.Dot(100))
	assert.Equal(t, float32(5), e.CenterX())
}

func TestBoxUnderivable(t *testing.T) {
	e := NewElement()
	e.SetLeft(units.Dot(10))
	assert.Equal(t, float32(0), e.Width())
	assert.False(t, e.IsSet("width"))
	assert.True(t, e.IsSet("left"))

	e.SetWidth(units.Dot(5))
	assert.Equal(t, float32(15), e.Right())
	assert.True(t, e.IsSet("right"))

	e.ResetArrangement()
	assert.False(t, e.IsSet("left"))
	assert.Equal(t, float32(0), e.Left())
	assert.Panics(t, func() { e.IsSet("depth") })
}

func TestBoxUnattachedUnits(t *testing.T) {
	e := NewElement()
	e.SetLeft(units.In(1)).SetTop(units.In(1))
	assert.Equal(t, float32(96), e.Left())
	assert.Equal(t, float32(96), e.Top())
}

func TestTotalBounds(t *testing.T) {
	e := NewElement()
	e.SetBoundsDots(math32.B2(10, 10, 20, 20))
	assert.Equal(t, e.Bounds(), e.TotalBounds())
	e.SetVisualBounds(math32.B2(5, 5, 25, 25))
	assert.Equal(t, math32.B2(5, 5, 25, 25), e.TotalBounds())
	e.ResetArrangement()
	assert.Equal(t, math32.Box2{}, e.TotalBounds())
}
