// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"cogentcore.org/retained/math32"
	"cogentcore.org/retained/units"
)

// boxSides index the eight values of a [boxModel]. Each axis has
// a start, an end, a center and a size.
type boxSides int32 //enums:enum -trim-prefix side -transform lower-camel

const (
	sideLeft boxSides = iota
	sideRight
	sideCenterX
	sideWidth
	sideTop
	sideBottom
	sideCenterY
	sideHeight
)

// axis offsets from the start of each axis.
const (
	axisStart = iota
	axisEnd
	axisCenter
	axisSize
)

// boxModel holds the position of an element along both axes, in dots.
// Values that were not set are derived lazily from the ones that were,
// and memoized until the next reset.
type boxModel struct {
	values [boxSidesN]float32
	set    [boxSidesN]bool
}

func (b *boxModel) reset() {
	*b = boxModel{}
}

func (b *boxModel) setValue(s boxSides, v float32) {
	b.values[s] = v
	b.set[s] = true
}

// value returns the value of the given side, deriving it if it has
// not been set. A value that cannot be derived is 0 and stays unset.
func (b *boxModel) value(s boxSides) float32 {
	if b.set[s] {
		return b.values[s]
	}
	base := s - s%4
	v, ok := b.derive(base, s-base)
	if !ok {
		return 0
	}
	b.setValue(s, v)
	return v
}

// derive computes one side of an axis from two others, trying the
// combinations in a fixed priority order.
func (b *boxModel) derive(base, side boxSides) (float32, bool) {
	has := func(o boxSides) bool { return b.set[base+o] }
	get := func(o boxSides) float32 { return b.values[base+o] }
	switch side {
	case axisStart:
		switch {
		case has(axisSize) && has(axisEnd):
			return get(axisEnd) - get(axisSize), true
		case has(axisSize) && has(axisCenter):
			return get(axisCenter) - get(axisSize)/2, true
		case has(axisEnd) && has(axisCenter):
			return 2*get(axisCenter) - get(axisEnd), true
		}
	case axisEnd:
		switch {
		case has(axisStart) && has(axisSize):
			return get(axisStart) + get(axisSize), true
		case has(axisCenter) && has(axisSize):
			return get(axisCenter) + get(axisSize)/2, true
		case has(axisStart) && has(axisCenter):
			return 2*get(axisCenter) - get(axisStart), true
		}
	case axisCenter:
		switch {
		case has(axisStart) && has(axisEnd):
			return (get(axisStart) + get(axisEnd)) / 2, true
		case has(axisStart) && has(axisSize):
			return get(axisStart) + get(axisSize)/2, true
		case has(axisEnd) && has(axisSize):
			return get(axisEnd) - get(axisSize)/2, true
		}
	case axisSize:
		switch {
		case has(axisStart) && has(axisEnd):
			return get(axisEnd) - get(axisStart), true
		case has(axisStart) && has(axisCenter):
			return 2 * (get(axisCenter) - get(axisStart)), true
		case has(axisEnd) && has(axisCenter):
			return 2 * (get(axisEnd) - get(axisCenter)), true
		}
	}
	return 0, false
}

// ResetArrangement clears every box value, and the visual bounds,
// so that nothing from a previous arrange pass is reused.
// The update engine calls it before every Arrange.
func (e *Element) ResetArrangement() {
	e.box.reset()
	e.visualBounds = math32.Box2{}
	e.hasVisualBounds = false
}

// Units returns the unit context used to convert setter values into
// dots: the one of the manager, or 96 DPI when not attached.
func (e *Element) Units() *units.Context {
	if e.manager != nil {
		return &e.manager.units
	}
	return &defaultUnits
}

var defaultUnits = units.Context{DPIX: units.PxPerInch, DPIY: units.PxPerInch}

func (e *Element) hdots(v units.Value) float32 { return e.Units().HDots(v) }
func (e *Element) vdots(v units.Value) float32 { return e.Units().VDots(v) }

// Left returns the left edge, in dots.
func (e *Element) Left() float32 { return e.box.value(sideLeft) }

// Right returns the right edge, in dots.
func (e *Element) Right() float32 { return e.box.value(sideRight) }

// CenterX returns the horizontal center, in dots.
func (e *Element) CenterX() float32 { return e.box.value(sideCenterX) }

// Width returns the width, in dots.
func (e *Element) Width() float32 { return e.box.value(sideWidth) }

// Top returns the top edge, in dots.
func (e *Element) Top() float32 { return e.box.value(sideTop) }

// Bottom returns the bottom edge, in dots.
func (e *Element) Bottom() float32 { return e.box.value(sideBottom) }

// CenterY returns the vertical center, in dots.
func (e *Element) CenterY() float32 { return e.box.value(sideCenterY) }

// Height returns the height, in dots.
func (e *Element) Height() float32 { return e.box.value(sideHeight) }

// IsSet returns whether the given box value has been set or derived
// since the last [Element.ResetArrangement]. The names are left, right,
// centerX, width, top, bottom, centerY and height.
func (e *Element) IsSet(name string) bool {
	var s boxSides
	if err := s.SetString(name); err != nil {
		panic("scene.Element.IsSet: unknown box value " + name)
	}
	return e.box.set[s]
}

// SetLeft sets the left edge, converted with the X DPI.
func (e *Element) SetLeft(v units.Value) *Element {
	e.box.setValue(sideLeft, e.hdots(v))
	return e
}

// SetRight sets the right edge, converted with the X DPI.
func (e *Element) SetRight(v units.Value) *Element {
	e.box.setValue(sideRight, e.hdots(v))
	return e
}

// SetCenterX sets the horizontal center, converted with the X DPI.
func (e *Element) SetCenterX(v units.Value) *Element {
	e.box.setValue(sideCenterX, e.hdots(v))
	return e
}

// SetWidth sets the width, converted with the X DPI.
func (e *Element) SetWidth(v units.Value) *Element {
	e.box.setValue(sideWidth, e.hdots(v))
	return e
}

// SetTop sets the top edge, converted with the Y DPI.
func (e *Element) SetTop(v units.Value) *Element {
	e.box.setValue(sideTop, e.vdots(v))
	return e
}

// SetBottom sets the bottom edge, converted with the Y DPI.
func (e *Element) SetBottom(v units.Value) *Element {
	e.box.setValue(sideBottom, e.vdots(v))
	return e
}

// SetCenterY sets the vertical center, converted with the Y DPI.
func (e *Element) SetCenterY(v units.Value) *Element {
	e.box.setValue(sideCenterY, e.vdots(v))
	return e
}

// SetHeight sets the height, converted with the Y DPI.
func (e *Element) SetHeight(v units.Value) *Element {
	e.box.setValue(sideHeight, e.vdots(v))
	return e
}

// SetBoundsDots sets the left, top, right and bottom edges from
// the given box in dots.
func (e *Element) SetBoundsDots(b math32.Box2) *Element {
	e.box.setValue(sideLeft, b.Min.X)
	e.box.setValue(sideTop, b.Min.Y)
	e.box.setValue(sideRight, b.Max.X)
	e.box.setValue(sideBottom, b.Max.Y)
	return e
}

// Bounds returns the layout box of the element, in dots.
func (e *Element) Bounds() math32.Box2 {
	return math32.B2(e.Left(), e.Top(), e.Right(), e.Bottom())
}

// SetVisualBounds sets the area the element actually paints when it
// is larger than its layout box. It must contain the layout box and
// is cleared by [Element.ResetArrangement], so it is set from Arrange.
func (e *Element) SetVisualBounds(b math32.Box2) *Element {
	e.visualBounds = b
	e.hasVisualBounds = true
	return e
}

// TotalBounds returns the visual bounds if they were set,
// and otherwise the layout bounds.
func (e *Element) TotalBounds() math32.Box2 {
	if e.hasVisualBounds {
		return e.visualBounds
	}
	return e.Bounds()
}
