// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package input

import (
	"log/slog"

	"cogentcore.org/retained/events"
	"cogentcore.org/retained/math32"
)

// transition is one row of the input state machine table.
// A row with to == noState is an internal transition that only
// runs its action.
type transition struct {
	from   States
	event  machineEvents
	guard  func(in *Input) bool
	to     States
	action func(in *Input)
}

// transitions is evaluated for the current state first and then for
// each enclosing region; within a state the first row whose event and
// guard match wins.
var transitions = []transition{
	{from: Idle, event: anyEvent, guard: (*Input).atopIsEligible, to: hasTarget},

	{from: Retarget, event: anyEvent, guard: (*Input).atopIsEligible, to: hasTarget},
	{from: Retarget, event: anyEvent, to: Idle},

	{from: HasDisabled, event: targetBecameEnabled, to: hasEnabled},

	{from: DecideTargetIsBusy, event: anyEvent, guard: (*Input).targetIsBusy, to: HasBusy},
	{from: DecideTargetIsBusy, event: anyEvent, to: hasAvailable},

	{from: HasBusy, event: anyEvent, guard: (*Input).targetIsNotBusy, to: DecideTargetIsBusy},

	{from: DecideEventType, event: anyEvent, guard: (*Input).isPressed, to: Engaged},
	{from: DecideEventType, event: anyEvent, to: Pending},

	{from: Pending, event: moveEvent, guard: (*Input).isAtopTarget, action: sendAction(events.Move)},
	{from: Pending, event: downEvent, guard: (*Input).isAtopTarget, to: Engaged, action: sendAction(events.Push)},

	{from: Engaged, event: moveEvent, guard: (*Input).isAtopTarget, action: sendAction(events.Move)},
	{from: Engaged, event: moveEvent, to: EngagedRemotely, action: sendAction(events.EngagedEscape)},
	{from: Engaged, event: upEvent, to: Pending, action: sendAction(events.Release)},

	{from: EngagedRemotely, event: moveEvent, guard: (*Input).isAtopTarget, to: Engaged, action: sendAction(events.EngagedReturn)},
	{from: EngagedRemotely, event: moveEvent, action: sendAction(events.Move)},
	{from: EngagedRemotely, event: upEvent, guard: (*Input).isPointer, to: Pending, action: sendAction(events.Release)},

	{from: hasEnabled, event: targetBecameDisabled, to: HasDisabled},

	{from: hasTarget, event: anyEvent, guard: (*Input).shouldRetarget, to: Retarget},
}

func sendAction(action events.Actions) func(in *Input) {
	return func(in *Input) {
		in.send(action)
	}
}

// maxSettle bounds the number of synthetic events used to settle
// transient states after one real event.
const maxSettle = 32

// Input is the state of one concurrent input contact: the mouse
// pointer or one touch point. It is created lazily by a [Router]
// and never destroyed.
type Input struct {
	router *Router
	id     events.InputID
	state  States

	point   math32.Vector2
	pressed bool

	// contact is whether the input is touching the surface. The
	// pointer is always in contact; a touch is in contact from its
	// first point or press until it is released.
	contact bool

	// atop is the control under the input, from the last hit test.
	atop Target

	// atopEnabled is whether atop was enabled, including ancestors,
	// at the last hit test.
	atopEnabled bool

	// target is the control the input is directed at while in the
	// targeted region.
	target Target

	// targetEnabled is the last known enabled status of target.
	targetEnabled bool

	updateScreen bool
}

// ID returns the input id.
func (in *Input) ID() events.InputID { return in.id }

// State returns the current state of the input.
func (in *Input) State() States { return in.state }

// Point returns the last known location of the input.
func (in *Input) Point() math32.Vector2 { return in.point }

// IsPressed returns whether the input is pressed.
func (in *Input) IsPressed() bool { return in.pressed }

// Target returns the control the input is directed at, if any.
func (in *Input) Target() Target { return in.target }

// Atop returns the control under the input at the last hit test.
func (in *Input) Atop() Target { return in.atop }

////////  Guards

func (in *Input) atopIsEligible() bool {
	return in.contact && in.atop != nil && in.atop.InputAttached()
}

func (in *Input) isAtopTarget() bool {
	return in.atop != nil && in.atop == in.target
}

func (in *Input) isPressed() bool {
	return in.pressed
}

func (in *Input) isPointer() bool {
	return in.id.IsPointer()
}

func (in *Input) targetIsGone() bool {
	return in.target == nil || !in.target.InputAttached()
}

func (in *Input) targetIsBusy() bool {
	if in.targetIsGone() {
		return false
	}
	owner := in.target.CaptureOwner()
	return owner != 0 && owner != in.id
}

func (in *Input) targetIsNotBusy() bool {
	return !in.targetIsBusy()
}

// shouldRetarget is whether the target must be dropped: it was
// removed, the touch contact ended, or the input is no longer on it
// while not engaged.
func (in *Input) shouldRetarget() bool {
	if in.targetIsGone() || !in.contact {
		return true
	}
	return !in.isAtopTarget() && !in.state.IsEngaged()
}

////////  Actions

// send notifies the target, unless it has been detached.
func (in *Input) send(action events.Actions) {
	if in.targetIsGone() {
		return
	}
	ev := events.NewInput(in.id, action, in.point, in.pressed)
	if in.router.Trace {
		slog.Info("input notify", "id", in.id, "action", action, "point", in.point, "pressed", in.pressed)
	}
	if in.target.NotifyInput(ev) {
		in.updateScreen = true
	}
}

func (in *Input) enter(s States) {
	switch s {
	case hasTarget:
		in.target = in.atop
		in.targetEnabled = in.atopEnabled
	case hasAvailable:
		in.send(events.Busy)
		in.send(events.Enter)
	}
}

func (in *Input) exit(s, leaf States, ev machineEvents) {
	switch s {
	case hasAvailable:
		if ev == upEvent && leaf.IsEngaged() {
			in.send(events.Release)
		}
		in.send(events.Leave)
		in.send(events.Available)
	case hasTarget:
		in.target = nil
		in.targetEnabled = false
	}
}

// initial returns the state entered by default inside a region.
func (in *Input) initial(s States) States {
	switch s {
	case hasTarget:
		if in.targetEnabled {
			return hasEnabled
		}
		return HasDisabled
	case hasEnabled:
		return DecideTargetIsBusy
	case hasAvailable:
		return DecideEventType
	}
	return noState
}

////////  Processing

// dispatch runs the first matching transition for the event, looking
// at the current state first and then its enclosing regions.
// It returns false if no row matched.
func (in *Input) dispatch(ev machineEvents) bool {
	for s := in.state; s != noState; s = s.parent() {
		for i := range transitions {
			tr := &transitions[i]
			if tr.from != s || (tr.event != anyEvent && tr.event != ev) {
				continue
			}
			if tr.guard != nil && !tr.guard(in) {
				continue
			}
			in.take(tr, ev)
			return true
		}
	}
	return false
}

func (in *Input) take(tr *transition, ev machineEvents) {
	if tr.to == noState {
		if tr.action != nil {
			tr.action(in)
		}
		return
	}
	leaf := in.state
	common := commonRegion(tr.from, tr.to)
	for s := leaf; s != common; s = s.parent() {
		in.exit(s, leaf, ev)
	}
	if tr.action != nil {
		tr.action(in)
	}
	var path []States
	for s := tr.to; s != common; s = s.parent() {
		path = append(path, s)
	}
	for i := len(path) - 1; i >= 0; i-- {
		in.enter(path[i])
	}
	s := tr.to
	for next := in.initial(s); next != noState; next = in.initial(s) {
		in.enter(next)
		s = next
	}
	if in.router.Trace {
		slog.Info("input transition", "id", in.id, "event", ev, "from", leaf, "to", s)
	}
	in.state = s
}

// checkEnabled raises the enabled change events when the target's
// enabled status differs from the last known one.
func (in *Input) checkEnabled() {
	if !in.state.HasTarget() || in.targetIsGone() {
		return
	}
	en := in.target.InputEnabled()
	if en == in.targetEnabled {
		return
	}
	in.targetEnabled = en
	if en {
		in.dispatch(targetBecameEnabled)
	} else {
		in.dispatch(targetBecameDisabled)
	}
	in.settle()
}

// settle feeds synthetic events until no transition applies.
func (in *Input) settle() {
	for range maxSettle {
		if !in.dispatch(noEvent) {
			return
		}
	}
}

// process runs one event through the machine and returns whether
// any notification asked for a screen update.
func (in *Input) process(ev machineEvents) bool {
	in.updateScreen = false
	in.checkEnabled()
	if ev != noEvent {
		in.dispatch(ev)
	}
	in.settle()
	upd := in.updateScreen
	in.updateScreen = false
	return upd
}
