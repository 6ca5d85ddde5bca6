// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scene provides a retained-mode scene graph: a tree of
// elements with a lazily resolved box model, z-ordered layers with
// opaque areas, an update engine that re-arranges and redraws only
// the regions that changed, and hit testing that feeds the input
// router.
//
// Elements do not paint pixels themselves. Drawing is delegated to
// draw callbacks (or Draw overrides) and clipping to the [Host] that
// owns the [Manager].
package scene

//go:generate core generate

import (
	"fmt"
	"strings"

	"cogentcore.org/core/enums"
	"cogentcore.org/retained/math32"
)

// Node is the interface implemented by every element type. All of the
// functionality is provided by [Element], which must be embedded in
// every element type; the methods here are the hooks that types can
// override.
type Node interface {

	// AsElement returns the [Element] of the node.
	AsElement() *Element

	// PrepareViewModel is called right before Arrange in every
	// arrange pass. By default it runs the view model callback or
	// copies the view model of the parent.
	PrepareViewModel()

	// Arrange positions the element by calling the box model setters.
	// By default it runs the arrange callback or fills the parent.
	Arrange()

	// Draw draws the element itself (not its children). area is nil
	// when everything must be drawn, and otherwise is the region to
	// redraw, already intersected with the element's total bounds.
	Draw(area *math32.Box2)
}

// ArrangeFunc is an arrange callback.
type ArrangeFunc func(e *Element)

// DrawFunc is a draw callback, with the same area as [Node.Draw].
type DrawFunc func(e *Element, area *math32.Box2)

// ViewModelFunc is a view model callback.
type ViewModelFunc func(e *Element)

// Element is the base type of every node in the scene graph.
// It must be initialized with [Element.InitElement], which the
// constructors do.
type Element struct {

	// This is the value of this element as its true underlying type,
	// used to call overridden [Node] methods from the base type.
	This Node

	// TypeName is the name of the element type, for diagnostics.
	TypeName string

	manager *Manager
	layer   *Layer

	parent      *Element
	firstChild  *Element
	lastChild   *Element
	prevSibling *Element
	nextSibling *Element
	numChildren int

	box             boxModel
	visualBounds    math32.Box2
	hasVisualBounds bool

	flags elementFlags

	viewModel any

	arrangeCallback   ArrangeFunc
	drawCallback      DrawFunc
	viewModelCallback ViewModelFunc

	// arrangeDependents are elements in the same layer that must be
	// re-arranged when this one moves or resizes.
	arrangeDependents weakList

	// overlappedBy are later siblings that overlap this element and
	// must be redrawn on top of it when it is modified.
	overlappedBy weakList
}

// NewElement returns a new plain element.
func NewElement() *Element {
	e := &Element{}
	e.InitElement(e)
	return e
}

// InitElement initializes the element with the given node as its
// underlying value, which must embed this element.
func (e *Element) InitElement(this Node) {
	if this.AsElement() != e {
		panic("scene.Element.InitElement: node does not embed this element")
	}
	e.This = this
	e.TypeName = strings.TrimPrefix(fmt.Sprintf("%T", this), "*")
	if i := strings.LastIndexByte(e.TypeName, '.'); i >= 0 {
		e.TypeName = e.TypeName[i+1:]
	}
	e.flags = 0
	e.setFlag(true, flagVisible, flagEnabled, flagConsumesInput)
}

func (e *Element) AsElement() *Element {
	return e
}

// String returns the path of the element.
func (e *Element) String() string {
	if e == nil || e.This == nil {
		return "nil"
	}
	return e.Path()
}

// Manager returns the manager the element is attached to, if any.
func (e *Element) Manager() *Manager { return e.manager }

// debugSettings returns the debugging settings of the manager of the
// element, or [DebugSettings] if it has none.
func (e *Element) debugSettings() *DebugSettingsData {
	if e.manager != nil {
		return e.manager.debug
	}
	return DebugSettings
}

// Layer returns the layer the element belongs to, if any.
func (e *Element) Layer() *Layer { return e.layer }

////////  Flags

// elementFlags are the boolean states of an [Element].
type elementFlags int64 //enums:bitflag -trim-prefix flag

const (
	flagVisible elementFlags = iota
	flagEnabled
	flagClipToBounds
	flagConsumesInput
	flagAlwaysRearrangeDescendants

	// flagInitialUpdated is set once the element has been arranged
	// for the first time; updates are ignored before that.
	flagInitialUpdated

	// flagInArrange is set while the element's Arrange runs.
	flagInArrange

	// flagChildRequestedArrange is set when a child was added while
	// the element's Arrange was running.
	flagChildRequestedArrange

	// flagLastVisible is the visibility at the end of the last arrange.
	flagLastVisible

	// flagDestroyed is set when the element was removed from its tree.
	flagDestroyed
)

// hasFlag returns whether the given flag is set.
func (e *Element) hasFlag(f elementFlags) bool {
	return e.flags.HasFlag(f)
}

// setFlag sets the given flags to the given value.
func (e *Element) setFlag(on bool, f ...enums.BitFlag) {
	e.flags.SetFlag(on, f...)
}

// IsVisible returns whether the element is visible itself.
func (e *Element) IsVisible() bool { return e.hasFlag(flagVisible) }

// SetVisible sets whether the element is visible. Call
// [Element.UpdateAfterModify] to apply the change to the screen.
func (e *Element) SetVisible(visible bool) *Element {
	e.setFlag(visible, flagVisible)
	return e
}

// IsEnabled returns whether the element is enabled itself.
func (e *Element) IsEnabled() bool { return e.hasFlag(flagEnabled) }

// SetEnabled sets whether the element is enabled. Inputs over the
// element are re-evaluated right away.
func (e *Element) SetEnabled(enabled bool) *Element {
	if e.IsEnabled() == enabled {
		return e
	}
	e.setFlag(enabled, flagEnabled)
	if e.manager != nil {
		e.manager.router.Refresh()
	}
	return e
}

// ClipToBounds returns whether drawing of the element and its
// descendants is clipped to its bounds.
func (e *Element) ClipToBounds() bool { return e.hasFlag(flagClipToBounds) }

// SetClipToBounds sets whether drawing is clipped to the bounds.
func (e *Element) SetClipToBounds(clip bool) *Element {
	e.setFlag(clip, flagClipToBounds)
	return e
}

// ConsumesInput returns whether the element takes part in hit testing.
func (e *Element) ConsumesInput() bool { return e.hasFlag(flagConsumesInput) }

// SetConsumesInput sets whether the element and its subtree take
// part in hit testing.
func (e *Element) SetConsumesInput(consumes bool) *Element {
	e.setFlag(consumes, flagConsumesInput)
	return e
}

// AlwaysRearrangeDescendants returns whether every update of the
// element re-arranges all of its descendants.
func (e *Element) AlwaysRearrangeDescendants() bool {
	return e.hasFlag(flagAlwaysRearrangeDescendants)
}

// SetAlwaysRearrangeDescendants sets whether every update of the
// element re-arranges all of its descendants, even when its own
// geometry did not change.
func (e *Element) SetAlwaysRearrangeDescendants(always bool) *Element {
	e.setFlag(always, flagAlwaysRearrangeDescendants)
	return e
}

// IsDestroyed returns whether the element was removed from its tree.
func (e *Element) IsDestroyed() bool { return e.hasFlag(flagDestroyed) }

// IsInitialUpdated returns whether the element has been arranged
// by the update engine at least once.
func (e *Element) IsInitialUpdated() bool { return e.hasFlag(flagInitialUpdated) }

// hasInvisibleAncestor returns whether any ancestor is invisible.
func (e *Element) hasInvisibleAncestor() bool {
	for p := e.parent; p != nil; p = p.parent {
		if !p.IsVisible() {
			return true
		}
	}
	return false
}

// HasDisabledAncestor returns whether any ancestor is disabled.
func (e *Element) HasDisabledAncestor() bool {
	for p := e.parent; p != nil; p = p.parent {
		if !p.IsEnabled() {
			return true
		}
	}
	return false
}

////////  View model and callbacks

// ViewModel returns the view model of the element.
func (e *Element) ViewModel() any { return e.viewModel }

// SetViewModel sets the view model of the element.
func (e *Element) SetViewModel(vm any) *Element {
	e.viewModel = vm
	return e
}

// SetArrangeCallback sets the function used by the default
// [Node.Arrange] to position the element.
func (e *Element) SetArrangeCallback(fun ArrangeFunc) *Element {
	e.arrangeCallback = fun
	return e
}

// SetDrawCallback sets the function used by the default [Node.Draw].
func (e *Element) SetDrawCallback(fun DrawFunc) *Element {
	e.drawCallback = fun
	return e
}

// SetViewModelCallback sets the function used by the default
// [Node.PrepareViewModel].
func (e *Element) SetViewModelCallback(fun ViewModelFunc) *Element {
	e.viewModelCallback = fun
	return e
}

func (e *Element) PrepareViewModel() {
	if e.viewModelCallback != nil {
		e.viewModelCallback(e)
		return
	}
	if e.parent != nil {
		e.viewModel = e.parent.viewModel
	}
}

func (e *Element) Arrange() {
	if e.arrangeCallback != nil {
		e.arrangeCallback(e)
		return
	}
	e.FillParent()
}

// FillParent sets the box of the element to the bounds of its parent.
func (e *Element) FillParent() {
	if e.parent == nil {
		return
	}
	pb := e.parent.Bounds()
	e.SetBoundsDots(pb)
}

func (e *Element) Draw(area *math32.Box2) {
	if e.drawCallback != nil {
		e.drawCallback(e, area)
	}
}

////////  Update entry points

// UpdateAfterAdd arranges and draws the element after it has been
// added to a tree that is already on screen. It does nothing while
// the parent has not been drawn yet, and when the element is added
// from the Arrange of an ancestor it only marks that ancestor so that
// its children are arranged right after.
func (e *Element) UpdateAfterAdd() {
	if e.manager == nil || e.IsDestroyed() {
		return
	}
	for p := e.parent; p != nil; p = p.parent {
		if p.hasFlag(flagInArrange) {
			p.setFlag(true, flagChildRequestedArrange)
			return
		}
	}
	if e.parent != nil && !e.parent.IsInitialUpdated() {
		return
	}
	e.manager.UpdateOrAddPending(e.This, UpdateAdding)
}

// UpdateAfterModify re-arranges and redraws the element after its
// state or view model changed. It does nothing before the element
// has been drawn for the first time.
func (e *Element) UpdateAfterModify() {
	if e.manager == nil || e.IsDestroyed() || !e.IsInitialUpdated() {
		return
	}
	e.manager.UpdateOrAddPending(e.This, UpdateModifying)
}
