// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package widgets

import (
	"testing"

	"cogentcore.org/retained/events"
	"cogentcore.org/retained/math32"
	"cogentcore.org/retained/scene"
	"github.com/stretchr/testify/assert"
)

// testScene is a manager with one layer, without a host.
type testScene struct {
	t *testing.T
	m *scene.Manager
	l *scene.Layer

	// draws counts the draws of every placed element.
	draws map[*scene.Element]int
}

func newTestScene(t *testing.T) *testScene {
	ts := &testScene{t: t, draws: map[*scene.Element]int{}}
	ts.m = scene.NewManager(scene.HostFuncs{})
	ts.m.SetBounds(math32.B2(0, 0, 200, 200))
	ts.l = ts.m.CreateLayerAbove(nil)
	return ts
}

// place adds the node to the layer at the given bounds.
func (ts *testScene) place(n scene.Node, box math32.Box2) {
	e := n.AsElement()
	e.SetArrangeCallback(func(e *scene.Element) {
		e.SetBoundsDots(box)
	})
	e.SetDrawCallback(func(e *scene.Element, area *math32.Box2) {
		ts.draws[e]++
	})
	ts.l.AddChild(n)
}

func (ts *testScene) point(id events.InputID, x, y float32) bool {
	return ts.m.NotifyNewPoint(id, math32.Vec2(x, y))
}

func (ts *testScene) down(id events.InputID) bool { return ts.m.NotifyDown(id) }

func (ts *testScene) up(id events.InputID) bool { return ts.m.NotifyUp(id) }

func TestMachineRows(t *testing.T) {
	var log []string
	m := machine[ButtonStates]{rows: []row[ButtonStates]{
		{from: ButtonIdle, on: events.Push, guard: func(in *events.Input) bool { return in.Pressed }, to: ButtonEngaged},
		{from: ButtonIdle, on: events.Push, to: keepState, action: func(in *events.Input) { log = append(log, "kept") }},
		{from: anyState, on: events.Leave, to: ButtonIdle},
	}}
	push := events.NewInput(events.PointerID, events.Push, math32.Vec2(0, 0), false)
	assert.True(t, m.handle(push, false))
	assert.Equal(t, ButtonIdle, m.state)
	assert.Equal(t, []string{"kept"}, log)

	push.Pressed = true
	assert.True(t, m.handle(push, false))
	assert.Equal(t, ButtonEngaged, m.state)

	assert.False(t, m.handle(events.NewInput(events.PointerID, events.Move, math32.Vec2(0, 0), true), false))
	assert.True(t, m.handle(events.NewInput(events.PointerID, events.Leave, math32.Vec2(0, 0), true), false))
	assert.Equal(t, ButtonIdle, m.state)
}
