// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package widgets

import (
	"cogentcore.org/retained/events"
	"cogentcore.org/retained/math32"
	"cogentcore.org/retained/scene"
)

// Knob is a rotary control. Its value is turned by dragging the
// input up or down while the knob is pushed, by the vertical
// distance from the push point scaled by the sensitivity.
type Knob struct {
	scene.Control

	// Value is the current value. It defaults to 0.
	Value float32

	// Min is the minimum possible value. It defaults to 0.
	Min float32

	// Max is the maximum value supported. It defaults to 1.
	Max float32

	// Sensitivity is the value change per dot of vertical drag.
	// It defaults to 0.01.
	Sensitivity float32

	machine machine[KnobStates]

	// startY and startValue are where the current turn started.
	startY     float32
	startValue float32

	onChange []func(kb *Knob)
}

// KnobStates are the states of a [Knob].
type KnobStates int32 //enums:enum -trim-prefix Knob

const (
	// KnobIdle is the state when no input is over the knob.
	KnobIdle KnobStates = iota

	// KnobHovered is the state when an input is over the knob
	// without pushing it.
	KnobHovered

	// KnobTurning is the state while the knob is pushed.
	KnobTurning
)

// knobSweep is the angle covered by the whole range, in degrees.
const knobSweep = 270

// NewKnob returns a new knob.
func NewKnob() *Knob {
	kb := &Knob{Max: 1, Sensitivity: 0.01}
	kb.InitElement(kb)
	kb.machine.rows = []row[KnobStates]{
		{from: KnobIdle, on: events.Enter, to: KnobHovered},
		{from: KnobHovered, on: events.Push, to: KnobTurning, action: kb.startTurn},
		{from: KnobTurning, on: events.Move, to: keepState, action: kb.turn},
		{from: KnobTurning, on: events.EngagedEscape, to: keepState, action: kb.turn},
		{from: KnobTurning, on: events.EngagedReturn, to: keepState, action: kb.turn},
		{from: KnobTurning, on: events.Release, to: KnobHovered, action: kb.turn},
		{from: anyState, on: events.Leave, to: KnobIdle},
	}
	return kb
}

// State returns the current state of the knob.
func (kb *Knob) State() KnobStates { return kb.machine.state }

// OnChange adds a function called when the value is changed by input.
func (kb *Knob) OnChange(fun func(kb *Knob)) *Knob {
	kb.onChange = append(kb.onChange, fun)
	return kb
}

// SetRange sets [Knob.Min] and [Knob.Max], clamping the value.
func (kb *Knob) SetRange(lo, hi float32) *Knob {
	kb.Min, kb.Max = lo, hi
	kb.Value = math32.Clamp(kb.Value, kb.Min, kb.Max)
	return kb
}

// SetSensitivity sets [Knob.Sensitivity].
func (kb *Knob) SetSensitivity(sensitivity float32) *Knob {
	kb.Sensitivity = sensitivity
	return kb
}

// SetValue sets the value, clamped to the range, and redraws the
// knob. It does not call the change functions.
func (kb *Knob) SetValue(value float32) *Knob {
	value = math32.Clamp(value, kb.Min, kb.Max)
	if kb.Value != value {
		kb.Value = value
		kb.UpdateAfterModify()
	}
	return kb
}

// Angle returns the rotation of the knob for the current value, in
// radians clockwise from straight up: the range is centered on it.
func (kb *Knob) Angle() float32 {
	prel := float32(0.5)
	if kb.Max > kb.Min {
		prel = (kb.Value - kb.Min) / (kb.Max - kb.Min)
	}
	return math32.DegToRad((prel - 0.5) * knobSweep)
}

func (kb *Knob) startTurn(in *events.Input) {
	kb.startY = in.Point.Y
	kb.startValue = kb.Value
}

// turn sets the value from the distance dragged up since the push.
func (kb *Knob) turn(in *events.Input) {
	value := kb.startValue + (kb.startY-in.Point.Y)*kb.Sensitivity
	value = math32.Clamp(value, kb.Min, kb.Max)
	if value == kb.Value {
		return
	}
	kb.Value = value
	for _, fun := range kb.onChange {
		fun(kb)
	}
}

func (kb *Knob) NotifyInput(in *events.Input) bool {
	return notify(&kb.Control, &kb.machine, in)
}
