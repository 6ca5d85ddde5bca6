// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package widgets

import (
	"cogentcore.org/retained/events"
	"cogentcore.org/retained/math32"
	"cogentcore.org/retained/scene"
)

// Slider is a control that sets a value within a range by dragging
// a thumb along its track. The value follows the input for as long
// as the slider is pushed, including when the input is moved out of it.
type Slider struct {
	scene.Control

	// Dim is the dimension along which the slider slides.
	Dim math32.Dims

	// Value is the current value, represented by the position of the thumb.
	// It defaults to 0.5.
	Value float32

	// Min is the minimum possible value.
	// It defaults to 0.
	Min float32

	// Max is the maximum value supported.
	// It defaults to 1.
	Max float32

	// Step is the increment the value is snapped to, if non-zero.
	Step float32

	// ThumbSize is the size of the thumb along the track, in dots.
	ThumbSize float32

	machine machine[SliderStates]

	// lastValue is the value of the last change event.
	lastValue float32

	onChange []func(sr *Slider)
}

// SliderStates are the states of a [Slider].
type SliderStates int32 //enums:enum -trim-prefix Slider

const (
	// SliderIdle is the state when no input is over the slider.
	SliderIdle SliderStates = iota

	// SliderHovered is the state when an input is over the slider
	// without pushing it.
	SliderHovered

	// SliderSliding is the state while the slider is pushed.
	SliderSliding
)

// NewSlider returns a new horizontal slider.
func NewSlider() *Slider {
	sr := &Slider{Value: 0.5, Max: 1}
	sr.InitElement(sr)
	sr.lastValue = sr.Value
	sr.machine.rows = []row[SliderStates]{
		{from: SliderIdle, on: events.Enter, to: SliderHovered},
		{from: SliderHovered, on: events.Push, to: SliderSliding, action: sr.slide},
		{from: SliderSliding, on: events.Move, to: keepState, action: sr.slide},
		{from: SliderSliding, on: events.EngagedEscape, to: keepState, action: sr.slide},
		{from: SliderSliding, on: events.EngagedReturn, to: keepState, action: sr.slide},
		{from: SliderSliding, on: events.Release, to: SliderHovered, action: sr.slide},
		{from: anyState, on: events.Leave, to: SliderIdle},
	}
	return sr
}

// State returns the current state of the slider.
func (sr *Slider) State() SliderStates { return sr.machine.state }

// OnChange adds a function called when the value is changed by input.
func (sr *Slider) OnChange(fun func(sr *Slider)) *Slider {
	sr.onChange = append(sr.onChange, fun)
	return sr
}

// SetDim sets [Slider.Dim].
func (sr *Slider) SetDim(dim math32.Dims) *Slider {
	sr.Dim = dim
	return sr
}

// SetRange sets [Slider.Min] and [Slider.Max], clamping the value.
func (sr *Slider) SetRange(lo, hi float32) *Slider {
	sr.Min, sr.Max = lo, hi
	sr.Value = math32.Clamp(sr.Value, sr.Min, sr.Max)
	return sr
}

// SetStep sets [Slider.Step].
func (sr *Slider) SetStep(step float32) *Slider {
	sr.Step = step
	return sr
}

// SetThumbSize sets [Slider.ThumbSize].
func (sr *Slider) SetThumbSize(size float32) *Slider {
	sr.ThumbSize = size
	return sr
}

// SetValue sets the value, clamped and snapped, and redraws the
// slider. It does not call the change functions.
func (sr *Slider) SetValue(value float32) *Slider {
	value = sr.snapValue(math32.Clamp(value, sr.Min, sr.Max))
	if sr.Value != value {
		sr.Value = value
		sr.UpdateAfterModify()
	}
	sr.lastValue = sr.Value
	return sr
}

// snapValue snaps the value to [Slider.Step] if it is set.
func (sr *Slider) snapValue(value float32) float32 {
	if sr.Step <= 0 {
		return value
	}
	value = sr.Min + sr.Step*math32.Round((value-sr.Min)/sr.Step)
	return math32.Clamp(value, sr.Min, sr.Max)
}

// sliderSize returns the size available for the center of the thumb.
func (sr *Slider) sliderSize() float32 {
	return sr.Bounds().Size().Dim(sr.Dim) - sr.ThumbSize
}

// valueAt returns the value for the thumb centered at the given point.
func (sr *Slider) valueAt(p math32.Vector2) float32 {
	sz := sr.sliderSize()
	if sz <= 0 {
		return sr.Min
	}
	pos := p.Dim(sr.Dim) - sr.Bounds().Min.Dim(sr.Dim) - 0.5*sr.ThumbSize
	prel := math32.Clamp(pos/sz, 0, 1)
	return sr.snapValue(sr.Min + prel*(sr.Max-sr.Min))
}

// ThumbBounds returns the bounds of the thumb for the current value.
func (sr *Slider) ThumbBounds() math32.Box2 {
	b := sr.Bounds()
	prel := float32(0)
	if sr.Max > sr.Min {
		prel = (sr.Value - sr.Min) / (sr.Max - sr.Min)
	}
	start := b.Min.Dim(sr.Dim) + prel*max(sr.sliderSize(), 0)
	b.Min.SetDim(sr.Dim, start)
	b.Max.SetDim(sr.Dim, start+sr.ThumbSize)
	return b
}

func (sr *Slider) slide(in *events.Input) {
	sr.Value = sr.valueAt(in.Point)
	sr.sendChange()
}

// sendChange calls the change functions if the value is different
// from the last one.
func (sr *Slider) sendChange() {
	if sr.Value == sr.lastValue {
		return
	}
	sr.lastValue = sr.Value
	for _, fun := range sr.onChange {
		fun(sr)
	}
}

func (sr *Slider) NotifyInput(in *events.Input) bool {
	return notify(&sr.Control, &sr.machine, in)
}
