// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package widgets

import (
	"cogentcore.org/retained/events"
	"cogentcore.org/retained/scene"
)

// Button is a control that is clicked by pushing and releasing an
// input over it. Dragging out of the button while pushed and
// releasing outside of it does not click it.
type Button struct {
	scene.Control

	machine machine[ButtonStates]

	onClick []func(bt *Button)
}

// ButtonStates are the states of a [Button].
type ButtonStates int32 //enums:enum -trim-prefix Button

const (
	// ButtonIdle is the state when no input is over the button.
	ButtonIdle ButtonStates = iota

	// ButtonPending is the state when an input is over the button
	// without pushing it.
	ButtonPending

	// ButtonEngaged is the state when an input is pushing the button.
	ButtonEngaged

	// ButtonEngagedRemotely is the state when an input pushed the
	// button and was then moved out of it while still pressed.
	ButtonEngagedRemotely
)

// NewButton returns a new button.
func NewButton() *Button {
	bt := &Button{}
	bt.InitElement(bt)
	bt.machine.rows = []row[ButtonStates]{
		{from: ButtonIdle, on: events.Enter, to: ButtonPending},
		{from: ButtonPending, on: events.Push, to: ButtonEngaged},
		{from: ButtonEngaged, on: events.EngagedEscape, to: ButtonEngagedRemotely},
		{from: ButtonEngagedRemotely, on: events.EngagedReturn, to: ButtonEngaged},
		{from: ButtonEngaged, on: events.Release, to: ButtonPending, action: bt.click},
		{from: ButtonEngagedRemotely, on: events.Release, to: ButtonIdle},
		{from: anyState, on: events.Leave, to: ButtonIdle},
	}
	return bt
}

// State returns the current state of the button.
func (bt *Button) State() ButtonStates { return bt.machine.state }

// OnClick adds a function called every time the button is clicked.
func (bt *Button) OnClick(fun func(bt *Button)) *Button {
	bt.onClick = append(bt.onClick, fun)
	return bt
}

func (bt *Button) click(in *events.Input) {
	for _, fun := range bt.onClick {
		fun(bt)
	}
}

func (bt *Button) NotifyInput(in *events.Input) bool {
	return notify(&bt.Control, &bt.machine, in)
}
