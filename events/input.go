// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package events defines the input vocabulary shared by the input
// router and the controls it notifies: input identifiers, the kinds
// of notification actions, and the notification record itself.
package events

//go:generate core generate

import (
	"fmt"
	"strconv"

	"cogentcore.org/retained/math32"
)

// InputID identifies one concurrent input contact. The mouse pointer
// is always [PointerID]; touch contacts use ids starting at 2.
type InputID int

// PointerID is the InputID of the mouse pointer.
const PointerID InputID = 1

// IsPointer returns whether the id is the mouse pointer.
func (id InputID) IsPointer() bool {
	return id == PointerID
}

// IsTouch returns whether the id is a touch contact.
func (id InputID) IsTouch() bool {
	return id > PointerID
}

// Type returns the input type implied by the id.
func (id InputID) Type() InputTypes {
	if id.IsPointer() {
		return InputPointer
	}
	return InputTouch
}

func (id InputID) String() string {
	if id == 0 {
		return "none"
	}
	if id.IsPointer() {
		return "pointer"
	}
	return "touch" + strconv.Itoa(int(id))
}

// InputTypes is the kind of device behind an input.
type InputTypes int32 //enums:enum -trim-prefix Input

const (
	InputPointer InputTypes = iota
	InputTouch
)

// Actions are the notifications an input sends to its target control.
type Actions int32 //enums:enum

const (
	// Enter is sent when an input starts targeting a control.
	// [Input.Pressed] reports whether it was already pressed.
	Enter Actions = iota

	// Leave is sent when an input stops targeting a control.
	Leave

	// Move is sent when the input moves while targeting a control,
	// either on top of it or while engaged away from it.
	Move

	// Push is sent when the input is pressed on top of its target.
	Push

	// Release is sent when a press that started on the target ends.
	Release

	// EngagedEscape is sent when a pressed input leaves the bounds
	// of its target without releasing.
	EngagedEscape

	// EngagedReturn is sent when an escaped input comes back on
	// top of its target while still pressed.
	EngagedReturn

	// Busy claims the control for the input; other inputs treat the
	// control as busy until [Available] is sent.
	Busy

	// Available releases the claim made with [Busy].
	Available
)

// Input is one notification sent from an input to a control.
type Input struct {

	// ID is the input contact that produced the notification.
	ID InputID

	// Type is the device kind of the input.
	Type InputTypes

	// Action is what happened.
	Action Actions

	// Point is the last known location of the input, in dots.
	Point math32.Vector2

	// Pressed is whether the input is currently pressed.
	Pressed bool

	handled bool
}

// NewInput returns a new notification for the given id.
func NewInput(id InputID, action Actions, p math32.Vector2, pressed bool) *Input {
	return &Input{ID: id, Type: id.Type(), Action: action, Point: p, Pressed: pressed}
}

// SetHandled marks the notification as handled, which stops
// further [Listeners] from being called for it.
func (in *Input) SetHandled() {
	in.handled = true
}

// IsHandled returns whether [Input.SetHandled] has been called.
func (in *Input) IsHandled() bool {
	return in.handled
}

func (in *Input) String() string {
	return fmt.Sprintf("%v{ID: %v, Type: %v, Point: %v, Pressed: %v}", in.Action, in.ID, in.Type, in.Point, in.Pressed)
}
