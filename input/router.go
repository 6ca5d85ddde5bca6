// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package input routes primitive pointer and touch events to the
// controls under them. Each concurrent input contact runs its own
// hierarchical state machine that decides when a control is entered,
// pushed, released, escaped or left, and sends those notifications
// to the control through the [Target] interface.
package input

import (
	"log/slog"

	"cogentcore.org/retained/events"
	"cogentcore.org/retained/math32"
)

// Target is a control that can receive input notifications.
type Target interface {

	// NotifyInput delivers one notification and returns whether
	// the screen needs to be updated as a result.
	NotifyInput(in *events.Input) bool

	// InputEnabled returns whether the control is enabled,
	// taking its ancestors into account.
	InputEnabled() bool

	// InputAttached returns whether the control is still part of
	// a live scene. Detached controls receive no notifications.
	InputAttached() bool

	// CaptureOwner returns the input that currently has the
	// control claimed, or 0 if none.
	CaptureOwner() events.InputID
}

// FindFunc is a hit test: it returns the control at the given point,
// if any, and whether any of its ancestors is disabled.
type FindFunc func(p math32.Vector2) (t Target, hasDisabledAncestor bool)

// Router owns the [Input] of every input contact seen so far and
// feeds them primitive events. It is not safe for concurrent use;
// hosts receiving input on another goroutine can go through an
// [events.Queue] and [Router.ProcessQueue].
type Router struct {

	// Find is the hit test used to locate the control under an input.
	Find FindFunc

	// Trace logs every transition and notification.
	Trace bool

	// inputs is indexed by [events.InputID].
	inputs []*Input

	processing bool
	deferred   []func() bool
}

// NewRouter returns a new router using the given hit test.
func NewRouter(find FindFunc) *Router {
	return &Router{Find: find}
}

// Input returns the input for the given id, or nil if no event has
// been seen for it yet.
func (r *Router) Input(id events.InputID) *Input {
	if int(id) < 0 || int(id) >= len(r.inputs) {
		return nil
	}
	return r.inputs[id]
}

// Inputs returns all of the inputs seen so far, in id order.
func (r *Router) Inputs() []*Input {
	var ins []*Input
	for _, in := range r.inputs {
		if in != nil {
			ins = append(ins, in)
		}
	}
	return ins
}

// input returns the input for the given id, creating it if needed.
func (r *Router) input(id events.InputID) *Input {
	if id < events.PointerID {
		panic("input.Router: invalid input id " + id.String())
	}
	for int(id) >= len(r.inputs) {
		r.inputs = append(r.inputs, nil)
	}
	in := r.inputs[id]
	if in == nil {
		in = &Input{router: r, id: id, state: Idle, contact: id.IsPointer()}
		r.inputs[id] = in
	}
	return in
}

// hitTest updates what is under the given input.
func (r *Router) hitTest(in *Input) {
	in.atop = nil
	in.atopEnabled = false
	if !in.contact || r.Find == nil {
		return
	}
	t, disabledAncestor := r.Find(in.point)
	if t == nil {
		return
	}
	in.atop = t
	in.atopEnabled = !disabledAncestor && t.InputEnabled()
}

// run runs f unless another call is in progress, in which case f is
// deferred until that call finishes. Deferred calls report their
// screen update through the outer call.
func (r *Router) run(f func() bool) bool {
	if r.processing {
		r.deferred = append(r.deferred, f)
		return false
	}
	r.processing = true
	defer func() {
		r.processing = false
		r.deferred = nil
	}()
	upd := f()
	for len(r.deferred) > 0 {
		d := r.deferred[0]
		r.deferred = r.deferred[1:]
		if d() {
			upd = true
		}
	}
	return upd
}

// settleOthers re-evaluates the guards of every input except the
// given one, as one input's capture can change another's state.
func (r *Router) settleOthers(id events.InputID) bool {
	upd := false
	for _, in := range r.inputs {
		if in == nil || in.id == id {
			continue
		}
		if in.process(noEvent) {
			upd = true
		}
	}
	return upd
}

// NotifyNewPoint tells the router that the given input moved to p.
// It returns whether the screen needs to be updated.
func (r *Router) NotifyNewPoint(id events.InputID, p math32.Vector2) bool {
	return r.run(func() bool {
		in := r.input(id)
		in.point = p
		in.contact = true
		r.hitTest(in)
		upd := in.process(moveEvent)
		return r.settleOthers(id) || upd
	})
}

// NotifyDown tells the router that the given input was pressed.
// It returns whether the screen needs to be updated.
func (r *Router) NotifyDown(id events.InputID) bool {
	return r.run(func() bool {
		in := r.input(id)
		in.pressed = true
		in.contact = true
		r.hitTest(in)
		upd := in.process(downEvent)
		return r.settleOthers(id) || upd
	})
}

// NotifyUp tells the router that the given input was released.
// A touch contact ends with its release.
// It returns whether the screen needs to be updated.
func (r *Router) NotifyUp(id events.InputID) bool {
	return r.run(func() bool {
		in := r.input(id)
		in.pressed = false
		if id.IsTouch() {
			in.contact = false
			in.atop = nil
		}
		upd := in.process(upEvent)
		return r.settleOthers(id) || upd
	})
}

// Refresh hit tests every input again at its last point and
// re-evaluates its guards. It is used when the scene changes under
// inputs that did not move: a control was disabled, removed or moved.
func (r *Router) Refresh() bool {
	return r.run(func() bool {
		if r.Trace {
			slog.Info("input refresh", "inputs", len(r.Inputs()))
		}
		upd := false
		for _, in := range r.inputs {
			if in == nil {
				continue
			}
			r.hitTest(in)
			if in.process(noEvent) {
				upd = true
			}
		}
		return upd
	})
}

// ProcessQueue routes every event waiting in the given queue, in order,
// and returns whether the screen needs to be updated.
func (r *Router) ProcessQueue(q *events.Queue) bool {
	upd := false
	for {
		ev, ok := q.Next()
		if !ok {
			return upd
		}
		var u bool
		switch ev.Kind {
		case events.RawPoint:
			u = r.NotifyNewPoint(ev.ID, ev.Point)
		case events.RawDown:
			u = r.NotifyDown(ev.ID)
		case events.RawUp:
			u = r.NotifyUp(ev.ID)
		}
		if u {
			upd = true
		}
	}
}
