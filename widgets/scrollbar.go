// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package widgets

import (
	"cogentcore.org/retained/events"
	"cogentcore.org/retained/math32"
	"cogentcore.org/retained/scene"
)

// Scrollbar is a control for scrolling content of which only a part
// is visible. The thumb is sized by the visible part and is dragged by
// the point at which it was grabbed. Pushing the track outside of the
// thumb scrolls by one page toward the input.
type Scrollbar struct {
	scene.Control

	// Dim is the dimension along which the scrollbar scrolls.
	Dim math32.Dims

	// Value is the start of the visible part of the content,
	// between Min and Max minus the visible part.
	Value float32

	// Min is the start of the content. It defaults to 0.
	Min float32

	// Max is the end of the content. It defaults to 1.
	Max float32

	// VisiblePercent is the proportion (1 max) of the content that is
	// visible. It determines the size of the thumb and its range of
	// motion: if 1, the thumb fills the track and cannot move.
	VisiblePercent float32

	// PageStep is the amount a push on the track scrolls by.
	// Zero scrolls by the visible part of the content.
	PageStep float32

	machine machine[ScrollbarStates]

	// grab is the offset of the input from the thumb start along
	// Dim when the thumb was pushed.
	grab float32

	onScroll []func(sb *Scrollbar)
}

// ScrollbarStates are the states of a [Scrollbar].
type ScrollbarStates int32 //enums:enum -trim-prefix Scrollbar

const (
	// ScrollbarIdle is the state when no input is over the scrollbar.
	ScrollbarIdle ScrollbarStates = iota

	// ScrollbarHovered is the state when an input is over the
	// scrollbar without pushing it.
	ScrollbarHovered

	// ScrollbarDragging is the state while the thumb is pushed.
	ScrollbarDragging

	// ScrollbarPaging is the state while the track is pushed.
	ScrollbarPaging
)

// NewScrollbar returns a new vertical scrollbar.
func NewScrollbar() *Scrollbar {
	sb := &Scrollbar{Dim: math32.Y, Max: 1, VisiblePercent: 1}
	sb.InitElement(sb)
	sb.machine.rows = []row[ScrollbarStates]{
		{from: ScrollbarIdle, on: events.Enter, to: ScrollbarHovered},
		{from: ScrollbarHovered, on: events.Push, guard: sb.onThumb, to: ScrollbarDragging, action: sb.grabThumb},
		{from: ScrollbarHovered, on: events.Push, to: ScrollbarPaging, action: sb.page},
		{from: ScrollbarDragging, on: events.Move, to: keepState, action: sb.drag},
		{from: ScrollbarDragging, on: events.EngagedEscape, to: keepState, action: sb.drag},
		{from: ScrollbarDragging, on: events.EngagedReturn, to: keepState, action: sb.drag},
		{from: ScrollbarDragging, on: events.Release, to: ScrollbarHovered},
		{from: ScrollbarPaging, on: events.Release, to: ScrollbarHovered},
		{from: anyState, on: events.Leave, to: ScrollbarIdle},
	}
	return sb
}

// State returns the current state of the scrollbar.
func (sb *Scrollbar) State() ScrollbarStates { return sb.machine.state }

// OnScroll adds a function called when the value is changed by input.
func (sb *Scrollbar) OnScroll(fun func(sb *Scrollbar)) *Scrollbar {
	sb.onScroll = append(sb.onScroll, fun)
	return sb
}

// SetDim sets [Scrollbar.Dim].
func (sb *Scrollbar) SetDim(dim math32.Dims) *Scrollbar {
	sb.Dim = dim
	return sb
}

// SetRange sets [Scrollbar.Min] and [Scrollbar.Max].
func (sb *Scrollbar) SetRange(lo, hi float32) *Scrollbar {
	sb.Min, sb.Max = lo, hi
	sb.Value = sb.clampValue(sb.Value)
	return sb
}

// SetVisiblePercent sets [Scrollbar.VisiblePercent], clamped to [0, 1].
func (sb *Scrollbar) SetVisiblePercent(pct float32) *Scrollbar {
	sb.VisiblePercent = math32.Clamp(pct, 0, 1)
	sb.Value = sb.clampValue(sb.Value)
	return sb
}

// SetPageStep sets [Scrollbar.PageStep].
func (sb *Scrollbar) SetPageStep(step float32) *Scrollbar {
	sb.PageStep = step
	return sb
}

// SetValue sets the value, clamped to the range of motion, and
// redraws the scrollbar. It does not call the scroll functions.
func (sb *Scrollbar) SetValue(value float32) *Scrollbar {
	value = sb.clampValue(value)
	if sb.Value != value {
		sb.Value = value
		sb.UpdateAfterModify()
	}
	return sb
}

// effectiveMax returns the largest value: Max minus the visible part.
func (sb *Scrollbar) effectiveMax() float32 {
	return sb.Max - math32.Clamp(sb.VisiblePercent, 0, 1)*(sb.Max-sb.Min)
}

func (sb *Scrollbar) clampValue(value float32) float32 {
	return math32.Clamp(value, sb.Min, max(sb.effectiveMax(), sb.Min))
}

// thumbSize returns the size of the thumb along Dim, which is at
// least the thickness of the scrollbar.
func (sb *Scrollbar) thumbSize() float32 {
	sz := sb.Bounds().Size()
	track := sz.Dim(sb.Dim)
	return min(max(math32.Clamp(sb.VisiblePercent, 0, 1)*track, sz.Dim(math32.OtherDim(sb.Dim))), track)
}

// ThumbBounds returns the bounds of the thumb for the current value.
func (sb *Scrollbar) ThumbBounds() math32.Box2 {
	b := sb.Bounds()
	th := sb.thumbSize()
	prel := float32(0)
	if effmax := sb.effectiveMax(); effmax > sb.Min {
		prel = (sb.Value - sb.Min) / (effmax - sb.Min)
	}
	start := b.Min.Dim(sb.Dim) + prel*(b.Size().Dim(sb.Dim)-th)
	b.Min.SetDim(sb.Dim, start)
	b.Max.SetDim(sb.Dim, start+th)
	return b
}

func (sb *Scrollbar) onThumb(in *events.Input) bool {
	return sb.ThumbBounds().ContainsPoint(in.Point)
}

func (sb *Scrollbar) grabThumb(in *events.Input) {
	sb.grab = in.Point.Dim(sb.Dim) - sb.ThumbBounds().Min.Dim(sb.Dim)
}

// drag moves the thumb so that it keeps its grab offset to the input.
func (sb *Scrollbar) drag(in *events.Input) {
	b := sb.Bounds()
	motion := b.Size().Dim(sb.Dim) - sb.thumbSize()
	if motion <= 0 {
		return
	}
	start := in.Point.Dim(sb.Dim) - sb.grab - b.Min.Dim(sb.Dim)
	prel := math32.Clamp(start/motion, 0, 1)
	sb.scrollTo(sb.Min + prel*(sb.effectiveMax()-sb.Min))
}

// page scrolls by one page toward the input.
func (sb *Scrollbar) page(in *events.Input) {
	step := sb.PageStep
	if step <= 0 {
		step = math32.Clamp(sb.VisiblePercent, 0, 1) * (sb.Max - sb.Min)
	}
	if in.Point.Dim(sb.Dim) < sb.ThumbBounds().Min.Dim(sb.Dim) {
		step = -step
	}
	sb.scrollTo(sb.Value + step)
}

func (sb *Scrollbar) scrollTo(value float32) {
	value = sb.clampValue(value)
	if value == sb.Value {
		return
	}
	sb.Value = value
	for _, fun := range sb.onScroll {
		fun(sb)
	}
}

func (sb *Scrollbar) NotifyInput(in *events.Input) bool {
	return notify(&sb.Control, &sb.machine, in)
}
