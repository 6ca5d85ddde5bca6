// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"testing"

	"cogentcore.org/retained/math32"
	"github.com/stretchr/testify/assert"
)

func TestElementAtPoint(t *testing.T) {
	ts := newTestScene(t)
	l := ts.layer("L")
	a := ts.child(&l.Element, "A", math32.B2(10, 10, 50, 50))
	a1 := ts.child(a, "A1", math32.B2(10, 10, 30, 30))
	a2 := ts.child(a, "A2", math32.B2(20, 20, 40, 40))
	ts.m.UpdateEverything()

	p := func(x, y float32) *Element {
		return ts.m.ElementAtPoint(math32.Vec2(x, y)).Element
	}
	assert.Equal(t, a1, p(12, 12))
	assert.Equal(t, a2, p(25, 25), "last child wins")
	assert.Equal(t, a, p(45, 45))
	assert.Nil(t, p(70, 70), "layer root is never the result")

	a2.SetVisible(false)
	assert.Equal(t, a1, p(25, 25))
	a1.SetConsumesInput(false)
	assert.Equal(t, a, p(25, 25))
	a.SetConsumesInput(false)
	assert.Nil(t, p(25, 25), "subtree of a non consuming element is excluded")
}

func TestElementAtPointDisabledAncestor(t *testing.T) {
	ts := newTestScene(t)
	l := ts.layer("L")
	a := ts.child(&l.Element, "A", math32.B2(10, 10, 50, 50))
	a1 := ts.child(a, "A1", math32.B2(10, 10, 30, 30))
	ts.m.UpdateEverything()

	a.SetEnabled(false)
	qi := ts.m.ElementAtPoint(math32.Vec2(12, 12))
	assert.Equal(t, a1, qi.Element)
	assert.True(t, qi.HasDisabledAncestor)

	qi = ts.m.ElementAtPoint(math32.Vec2(45, 45))
	assert.Equal(t, a, qi.Element)
	assert.False(t, qi.HasDisabledAncestor)

	qi = a1.ElementAtPoint(math32.Vec2(12, 12))
	assert.Equal(t, a1, qi.Element)
	assert.True(t, qi.HasDisabledAncestor)
}

func TestElementAtPointLayers(t *testing.T) {
	ts := newTestScene(t)
	l1 := ts.layer("L1")
	l2 := ts.layer("L2")
	low := ts.child(&l1.Element, "Low", math32.B2(0, 0, 50, 50))
	high := ts.child(&l2.Element, "High", math32.B2(40, 40, 60, 60))
	ts.m.UpdateEverything()

	assert.Equal(t, high, ts.m.ElementAtPoint(math32.Vec2(45, 45)).Element)
	assert.Equal(t, low, ts.m.ElementAtPoint(math32.Vec2(10, 10)).Element, "falls through the top layer")

	l2.SetVisible(false)
	assert.Equal(t, low, ts.m.ElementAtPoint(math32.Vec2(45, 45)).Element)
}

func TestElementAtPointTotalBoundsPrune(t *testing.T) {
	ts := newTestScene(t)
	l := ts.layer("L")
	a := ts.child(&l.Element, "A", math32.B2(10, 10, 20, 20))
	kid := ts.child(a, "Kid", math32.B2(10, 10, 20, 20))
	a.SetArrangeCallback(func(e *Element) {
		e.SetBoundsDots(math32.B2(10, 10, 20, 20))
		e.SetVisualBounds(math32.B2(0, 0, 30, 30))
	})
	kid.SetArrangeCallback(func(e *Element) {
		e.SetBoundsDots(math32.B2(22, 22, 28, 28))
	})
	ts.m.UpdateEverything()

	assert.Equal(t, kid, ts.m.ElementAtPoint(math32.Vec2(25, 25)).Element)
	assert.Nil(t, ts.m.ElementAtPoint(math32.Vec2(5, 5)).Element, "visual bounds alone are not a hit")
}
