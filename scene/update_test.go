// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"testing"

	"cogentcore.org/retained/math32"
	"github.com/stretchr/testify/assert"
)

// twoBoxes is a layer L with two overlapping children A and B.
func twoBoxes(t *testing.T) (ts *testScene, l *Layer, a, b *Element) {
	ts = newTestScene(t)
	l = ts.layer("L")
	a = ts.child(&l.Element, "A", math32.B2(10, 10, 30, 30))
	b = ts.child(&l.Element, "B", math32.B2(20, 20, 40, 40))
	return
}

func moveTo(ts *testScene, name string, box math32.Box2) {
	ts.boxes[name] = &box
}

func TestUpdateEverything(t *testing.T) {
	ts, _, a, _ := twoBoxes(t)
	assert.False(t, a.IsInitialUpdated())
	ts.m.UpdateEverything()
	diff(t, []string{"clip (0, 0, 100, 100)", "draw L", "draw A", "draw B", "unclip"}, ts.all())
	assert.Equal(t, math32.B2(0, 0, 100, 100), ts.m.TakeRedrawnRegion())
	assert.True(t, a.IsInitialUpdated())
	assert.Equal(t, math32.B2(10, 10, 30, 30), a.Bounds())
	assert.Equal(t, 1, ts.arranges["A"])
	assert.False(t, ts.m.InCycle())

	ts.m.UpdateEverything()
	assert.Equal(t, 2, ts.arranges["A"])
}

func TestUpdateEverythingSubtree(t *testing.T) {
	ts, _, a, _ := twoBoxes(t)
	kid := ts.child(a, "A1", math32.B2(12, 12, 18, 18))
	ts.m.UpdateEverything()
	ts.all()
	ts.m.TakeRedrawnRegion()

	ts.m.UpdateOrAddPending(a, UpdateEverything)
	diff(t, []string{"A", "A1"}, ts.draws())
	assert.Equal(t, math32.B2(10, 10, 30, 30), ts.m.TakeRedrawnRegion())
	assert.Equal(t, 2, ts.arranges["A1"])
	assert.True(t, kid.IsInitialUpdated())
}

func TestUpdateModifyUnchanged(t *testing.T) {
	ts, _, a, _ := twoBoxes(t)
	ts.m.UpdateEverything()
	ts.all()
	ts.m.TakeRedrawnRegion()

	a.UpdateAfterModify()
	diff(t, []string{"clip (10, 10, 30, 30)", "draw L (10, 10, 30, 30)", "draw A (10, 10, 30, 30)", "unclip"}, ts.all())
	assert.Equal(t, math32.B2(10, 10, 30, 30), ts.m.TakeRedrawnRegion())
	assert.Equal(t, 2, ts.arranges["A"])
}

func TestUpdateModifyOverlapping(t *testing.T) {
	ts, _, a, b := twoBoxes(t)
	a.RegisterOverlappingElement(b)
	ts.m.UpdateEverything()
	ts.all()

	a.UpdateAfterModify()
	diff(t, []string{"L (10, 10, 30, 30)", "A (10, 10, 30, 30)", "B (20, 20, 30, 30)"}, ts.draws())
	assert.Equal(t, 1, ts.arranges["B"], "overlapping siblings are only drawn")

	b.UpdateAfterModify()
	diff(t, []string{"L (20, 20, 40, 40)", "B (20, 20, 40, 40)"}, ts.draws())
}

func TestUpdateModifyMoved(t *testing.T) {
	ts, _, a, b := twoBoxes(t)
	kid := ts.record(NewElement(), "A1", nil)
	a.AddChild(kid)
	a.RegisterArrangeDependent(b)
	ts.m.UpdateEverything()
	ts.all()
	ts.m.TakeRedrawnRegion()

	moveTo(ts, "A", math32.B2(50, 50, 70, 70))
	a.UpdateAfterModify()
	diff(t, []string{
		"L (10, 10, 70, 70)", "A (50, 50, 70, 70)", "A1 (50, 50, 70, 70)",
		"L (20, 20, 40, 40)", "B (20, 20, 40, 40)",
	}, ts.draws())
	assert.Equal(t, math32.B2(50, 50, 70, 70), kid.Bounds())
	assert.Equal(t, 2, ts.arranges["A1"])
	assert.Equal(t, 2, ts.arranges["B"])
	assert.Equal(t, math32.B2(10, 10, 70, 70), ts.m.TakeRedrawnRegion())
	assert.Equal(t, 1, ts.arranges["L"])

	// unmoved: dependents and children are left alone
	a.UpdateAfterModify()
	diff(t, []string{"L (50, 50, 70, 70)", "A (50, 50, 70, 70)", "A1 (50, 50, 70, 70)"}, ts.draws())
	assert.Equal(t, 2, ts.arranges["A1"])
	assert.Equal(t, 2, ts.arranges["B"])
}

func TestUpdateAlwaysRearrangeDescendants(t *testing.T) {
	ts, _, a, _ := twoBoxes(t)
	kid := ts.record(NewElement(), "A1", nil)
	a.AddChild(kid)
	ts.m.UpdateEverything()
	ts.all()

	a.UpdateAfterModify()
	assert.Equal(t, 1, ts.arranges["A1"])
	a.SetAlwaysRearrangeDescendants(true)
	a.UpdateAfterModify()
	assert.Equal(t, 2, ts.arranges["A1"])
}

func TestUpdateMutualDependents(t *testing.T) {
	ts, _, a, b := twoBoxes(t)
	a.RegisterArrangeDependent(b)
	b.RegisterArrangeDependent(a)
	ts.m.UpdateEverything()
	ts.all()

	moveTo(ts, "A", math32.B2(60, 10, 80, 30))
	moveTo(ts, "B", math32.B2(60, 40, 80, 60))
	a.UpdateAfterModify()
	diff(t, []string{"L (10, 10, 80, 30)", "A (60, 10, 80, 30)", "L (20, 20, 80, 60)", "B (60, 40, 80, 60)"}, ts.draws())
	assert.Equal(t, 2, ts.arranges["A"])
	assert.Equal(t, 2, ts.arranges["B"])
}

func TestUpdateAdd(t *testing.T) {
	ts, l, _, _ := twoBoxes(t)
	early := ts.child(&l.Element, "E", math32.B2(0, 0, 5, 5))
	early.UpdateAfterAdd()
	early.UpdateAfterModify()
	assert.Empty(t, ts.draws(), "nothing is drawn before the first update")

	ts.m.UpdateEverything()
	ts.all()
	ts.m.TakeRedrawnRegion()

	c := ts.child(&l.Element, "C", math32.B2(60, 60, 80, 80))
	c.UpdateAfterModify()
	assert.Empty(t, ts.draws(), "modify before add is ignored")
	c.UpdateAfterAdd()
	diff(t, []string{"L (60, 60, 80, 80)", "C (60, 60, 80, 80)"}, ts.draws())
	assert.Equal(t, math32.B2(60, 60, 80, 80), ts.m.TakeRedrawnRegion())

	p := ts.record(NewElement(), "P", nil)
	l.AddChild(p)
	kid := ts.child(p, "K", math32.B2(1, 1, 2, 2))
	kid.UpdateAfterAdd()
	assert.Empty(t, ts.draws(), "parent not drawn yet")
	assert.False(t, kid.IsInitialUpdated())

	p.UpdateAfterAdd()
	diff(t, []string{"L", "P", "K (1, 1, 2, 2)"}, trimAreas(ts.draws(), "L", "P"))
	assert.True(t, kid.IsInitialUpdated())
}

// trimAreas removes the draw areas of the named draws.
func trimAreas(draws []string, names ...string) []string {
	for i, d := range draws {
		for _, n := range names {
			if len(d) > len(n) && d[:len(n)+1] == n+" " {
				draws[i] = n
			}
		}
	}
	return draws
}

func TestUpdateAddFromArrange(t *testing.T) {
	ts := newTestScene(t)
	l := ts.layer("L")
	p := ts.child(&l.Element, "P", math32.B2(0, 0, 50, 50))
	addNow := false
	var kid *Element
	p.SetArrangeCallback(func(e *Element) {
		e.SetBoundsDots(math32.B2(0, 0, 50, 50))
		if addNow && kid == nil {
			kid = ts.record(NewElement(), "K", nil)
			e.AddChild(kid)
			kid.UpdateAfterAdd()
		}
	})
	ts.m.UpdateEverything()
	ts.all()

	addNow = true
	p.UpdateAfterModify()
	diff(t, []string{"L (0, 0, 50, 50)", "P (0, 0, 50, 50)", "K (0, 0, 50, 50)"}, ts.draws())
	assert.Equal(t, 1, ts.arranges["K"])
	assert.Equal(t, math32.B2(0, 0, 50, 50), kid.Bounds())
	assert.False(t, p.hasFlag(flagChildRequestedArrange))
}

func TestUpdatePendingQueue(t *testing.T) {
	ts, _, a, b := twoBoxes(t)
	ts.m.UpdateEverything()
	ts.all()

	var inCycle []bool
	a.SetDrawCallback(func(e *Element, area *math32.Box2) {
		ts.log = append(ts.log, "draw A")
		inCycle = append(inCycle, ts.m.InCycle())
		b.UpdateAfterModify()
	})
	b.SetDrawCallback(func(e *Element, area *math32.Box2) {
		ts.log = append(ts.log, "draw B")
		inCycle = append(inCycle, ts.m.InCycle())
		a.UpdateAfterModify()
	})

	a.UpdateAfterModify()
	diff(t, []string{"L (10, 10, 30, 30)", "A", "L (20, 20, 40, 40)", "B"}, ts.draws())
	assert.Equal(t, []bool{true, true}, inCycle)
	assert.False(t, ts.m.InCycle())

	// a new cycle updates them again
	a.UpdateAfterModify()
	diff(t, []string{"L (10, 10, 30, 30)", "A", "L (20, 20, 40, 40)", "B"}, ts.draws())
}

func TestUpdateCoveredByOpaqueLayer(t *testing.T) {
	ts := newTestScene(t)
	l1 := ts.layer("L1")
	a := ts.child(&l1.Element, "A", math32.B2(10, 10, 30, 30))
	kid := ts.record(NewElement(), "A1", nil)
	a.AddChild(kid)
	l2 := ts.layer("L2")
	l2.SetOpaqueArea(math32.B2(0, 0, 100, 100))
	ts.m.UpdateEverything()
	ts.all()
	ts.m.TakeRedrawnRegion()

	a.UpdateAfterModify()
	assert.Empty(t, ts.all())
	assert.Equal(t, 2, ts.arranges["A"])
	assert.True(t, ts.m.TakeRedrawnRegion().IsEmpty())

	moveTo(ts, "A", math32.B2(20, 20, 40, 40))
	a.UpdateAfterModify()
	assert.Empty(t, ts.all())
	assert.Equal(t, 2, ts.arranges["A1"], "children are still arranged")
	assert.Equal(t, math32.B2(20, 20, 40, 40), kid.Bounds())

	l2.SetVisible(false)
	l2.UpdateAfterModify()
	ts.all()
	a.UpdateAfterModify()
	diff(t, []string{"L1 (20, 20, 40, 40)", "A (20, 20, 40, 40)", "A1 (20, 20, 40, 40)"}, ts.draws())
}

func TestUpdateLayers(t *testing.T) {
	ts := newTestScene(t)
	ts.layer("L0")
	l1 := ts.layer("L1")
	l2 := ts.layer("L2")
	l3 := ts.layer("L3")
	a := ts.child(&l2.Element, "A", math32.B2(10, 10, 30, 30))
	ts.child(&l3.Element, "T", math32.B2(50, 50, 90, 90))
	l1.SetOpaqueArea(math32.B2(0, 0, 100, 100))
	ts.m.UpdateEverything()
	diff(t, []string{"L0", "L1", "L2", "A", "L3", "T"}, ts.draws())

	a.UpdateAfterModify()
	diff(t, []string{"L1 (10, 10, 30, 30)", "L2 (10, 10, 30, 30)", "A (10, 10, 30, 30)", "L3 (10, 10, 30, 30)"}, ts.draws())

	l1.ClearOpaqueArea()
	a.UpdateAfterModify()
	diff(t, []string{"L0 (10, 10, 30, 30)", "L1 (10, 10, 30, 30)", "L2 (10, 10, 30, 30)", "A (10, 10, 30, 30)", "L3 (10, 10, 30, 30)"}, ts.draws())

	l2.SetOpaqueArea(math32.B2(0, 0, 50, 50))
	a.UpdateAfterModify()
	diff(t, []string{"L2 (10, 10, 30, 30)", "A (10, 10, 30, 30)", "L3 (10, 10, 30, 30)"}, ts.draws())

	assert.Equal(t, []*Layer{ts.m.BottomLayer(), l1, l2, l3}, ts.m.Layers())
	assert.Equal(t, l3, ts.m.TopLayer())
}

func TestUpdateVisibility(t *testing.T) {
	ts, _, a, b := twoBoxes(t)
	a.RegisterOverlappingElement(b)
	ts.m.UpdateEverything()
	ts.all()

	a.SetVisible(false)
	a.UpdateAfterModify()
	diff(t, []string{"L (10, 10, 30, 30)", "B (20, 20, 30, 30)"}, ts.draws())

	a.UpdateAfterModify()
	assert.Empty(t, ts.draws(), "invisible before and after")

	a.SetVisible(true)
	a.UpdateAfterModify()
	diff(t, []string{"L (10, 10, 30, 30)", "A (10, 10, 30, 30)", "B (20, 20, 30, 30)"}, ts.draws())
}

func TestUpdateInvisibleAncestor(t *testing.T) {
	ts := newTestScene(t)
	l := ts.layer("L")
	p := ts.child(&l.Element, "P", math32.B2(0, 0, 50, 50))
	kid := ts.child(p, "K", math32.B2(10, 10, 20, 20))
	ts.m.UpdateEverything()
	ts.all()

	p.SetVisible(false)
	kid.UpdateAfterModify()
	assert.Empty(t, ts.draws())
	assert.Equal(t, 2, ts.arranges["K"])

	ts.m.UpdateEverything()
	diff(t, []string{"L"}, ts.draws())
	assert.Equal(t, 2, ts.arranges["K"], "hidden subtrees are not arranged")
}

func TestUpdateClipToBounds(t *testing.T) {
	ts, _, a, _ := twoBoxes(t)
	a.SetClipToBounds(true)
	inner := ts.child(a, "A1", math32.B2(0, 0, 50, 50))
	outside := ts.child(a, "A2", math32.B2(50, 50, 60, 60))
	ts.m.UpdateEverything()
	diff(t, []string{
		"clip (0, 0, 100, 100)", "draw L",
		"unclip", "clip (10, 10, 30, 30)", "draw A", "draw A1", "draw A2",
		"unclip", "clip (0, 0, 100, 100)", "draw B", "unclip",
	}, ts.all())

	inner.UpdateAfterModify()
	diff(t, []string{
		"clip (0, 0, 50, 50)", "draw L (0, 0, 50, 50)",
		"unclip", "clip (10, 10, 30, 30)", "draw A (10, 10, 30, 30)", "draw A1 (0, 0, 50, 50)",
		"unclip", "clip (0, 0, 50, 50)", "unclip",
	}, ts.all())

	outside.UpdateAfterModify()
	diff(t, []string{"L (50, 50, 60, 60)"}, ts.draws())
}

func TestRemoveLayer(t *testing.T) {
	ts := newTestScene(t)
	l1 := ts.layer("L1")
	ts.child(&l1.Element, "A", math32.B2(10, 10, 30, 30))
	l2 := ts.layer("L2")
	c := ts.child(&l2.Element, "C", math32.B2(60, 60, 80, 80))
	ts.m.UpdateEverything()
	ts.all()
	ts.m.TakeRedrawnRegion()

	ts.m.RemoveLayer(l2)
	diff(t, []string{"L1 (0, 0, 100, 100)", "A (10, 10, 30, 30)"}, ts.draws())
	assert.Equal(t, math32.B2(0, 0, 100, 100), ts.m.TakeRedrawnRegion())
	assert.True(t, l2.IsDestroyed())
	assert.True(t, c.IsDestroyed())
	assert.Equal(t, []*Layer{l1}, ts.m.Layers())
	assert.Panics(t, func() { ts.m.RemoveLayer(l2) })

	ts.m.RemoveLayer(l1)
	assert.Nil(t, ts.m.BottomLayer())
	assert.Nil(t, ts.m.TopLayer())
	assert.Empty(t, ts.draws())
}

func TestRemoveLayerOverOpaque(t *testing.T) {
	ts := newTestScene(t)
	l1 := ts.layer("L1")
	ts.child(&l1.Element, "A", math32.B2(10, 10, 30, 30))
	l2 := ts.layer("L2")
	ts.child(&l2.Element, "B", math32.B2(40, 40, 50, 50))
	l3 := ts.layer("L3")
	ts.child(&l3.Element, "C", math32.B2(60, 60, 80, 80))
	ts.m.UpdateEverything()
	ts.all()
	ts.m.TakeRedrawnRegion()

	l2.SetOpaqueArea(math32.B2(0, 0, 100, 100))
	ts.m.RemoveLayer(l3)
	diff(t, []string{"L2 (0, 0, 100, 100)", "B (40, 40, 50, 50)"}, ts.draws())
	assert.Equal(t, math32.B2(0, 0, 100, 100), ts.m.TakeRedrawnRegion())

	ts.m.RemoveLayer(l2)
	diff(t, []string{"L1 (0, 0, 100, 100)", "A (10, 10, 30, 30)"}, ts.draws())
}

func TestCreateLayerBelow(t *testing.T) {
	ts := newTestScene(t)
	mid := ts.m.CreateLayerAbove(nil)
	bottom := ts.m.CreateLayerBelow(nil)
	top := ts.m.CreateLayerAbove(mid)
	between := ts.m.CreateLayerBelow(top)
	assert.Equal(t, []*Layer{bottom, mid, between, top}, ts.m.Layers())
	assert.Equal(t, mid, between.Below())
	assert.Equal(t, top, between.Above())

	other := newTestScene(t)
	assert.Panics(t, func() { ts.m.CreateLayerAbove(other.m.CreateLayerAbove(nil)) })
}

func TestUpdateForeignManager(t *testing.T) {
	ts := newTestScene(t)
	other := newTestScene(t)
	e := ts.child(&other.layer("O").Element, "E", math32.B2(0, 0, 1, 1))
	assert.Panics(t, func() { ts.m.UpdateOrAddPending(e, UpdateModifying) })
	assert.Equal(t, "Modifying", UpdateModifying.String())
	assert.Equal(t, "9", UpdateTypes(9).String())
	assert.Len(t, UpdateTypesValues(), int(UpdateTypesN))

	var typ UpdateTypes
	assert.NoError(t, typ.SetString("Adding"))
	assert.Equal(t, UpdateAdding, typ)
	assert.Error(t, typ.SetString("Resizing"))
}
