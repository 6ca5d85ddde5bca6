// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package widgets provides the standard controls built on the scene
// graph: [Button], [Slider], [Scrollbar], [Knob] and the [Grid] layout.
// Each control runs a small state machine over the notifications it
// receives from the input router, and redraws itself when it changes
// state. Drawing itself is left to the draw callback of each control,
// which can use the state and geometry methods of the control.
package widgets

//go:generate core generate

import (
	"log/slog"

	"cogentcore.org/retained/events"
	"cogentcore.org/retained/scene"
)

const (
	// anyState matches every state in the from column of a row.
	anyState = -1

	// keepState in the to column makes a row an internal transition
	// that only runs its action.
	keepState = -2
)

// row is one transition of a widget state machine.
type row[S ~int32] struct {
	from   S
	on     events.Actions
	guard  func(in *events.Input) bool
	to     S
	action func(in *events.Input)
}

// machine is the state machine of a widget, driven by the
// notifications the widget receives from the input router.
// Rows are checked in order and the first match wins.
type machine[S ~int32] struct {
	state S
	rows  []row[S]
}

// handle runs the first row matching the notification, and returns
// whether a row matched, in which case the widget must be redrawn.
// Transitions are logged when trace is set.
func (m *machine[S]) handle(in *events.Input, trace bool) bool {
	for i := range m.rows {
		r := &m.rows[i]
		if r.on != in.Action || (r.from != S(anyState) && r.from != m.state) {
			continue
		}
		if r.guard != nil && !r.guard(in) {
			continue
		}
		from := m.state
		if r.to != S(keepState) {
			m.state = r.to
		}
		if r.action != nil {
			r.action(in)
		}
		if trace {
			slog.Info("widget transition", "action", in.Action, "from", from, "to", m.state)
		}
		return true
	}
	return false
}

// notify runs the machine of a widget on a notification, after the
// base [scene.Control] bookkeeping, and updates the widget when the
// machine handled it.
func notify[S ~int32](c *scene.Control, m *machine[S], in *events.Input) bool {
	c.NotifyInput(in)
	trace := false
	if mgr := c.Manager(); mgr != nil {
		trace = mgr.DebugSettings().InputTrace
	}
	if !m.handle(in, trace) {
		return false
	}
	c.UpdateAfterModify()
	return true
}
