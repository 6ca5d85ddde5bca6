// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import "cogentcore.org/retained/math32"

// Layer is an independently z-ordered root of the scene graph.
// Layers are created and removed by their [Manager], which keeps them
// in a doubly linked list from bottom to top.
type Layer struct {
	Element

	below *Layer
	above *Layer

	opaqueArea    math32.Box2
	hasOpaqueArea bool
}

// Below returns the layer under this one, or nil.
func (l *Layer) Below() *Layer { return l.below }

// Above returns the layer over this one, or nil.
func (l *Layer) Above() *Layer { return l.above }

// SetOpaqueArea declares an area that the layer always paints fully,
// so that lower layers need not be redrawn under it.
func (l *Layer) SetOpaqueArea(area math32.Box2) *Layer {
	l.opaqueArea = area
	l.hasOpaqueArea = true
	return l
}

// ClearOpaqueArea removes the opaque area of the layer.
func (l *Layer) ClearOpaqueArea() *Layer {
	l.opaqueArea = math32.Box2{}
	l.hasOpaqueArea = false
	return l
}

// OpaqueArea returns the opaque area of the layer, and false if it
// has none.
func (l *Layer) OpaqueArea() (math32.Box2, bool) {
	return l.opaqueArea, l.hasOpaqueArea
}

// covers returns whether the layer is visible and its opaque area
// contains the given region.
func (l *Layer) covers(region math32.Box2) bool {
	return l.hasOpaqueArea && l.IsVisible() && l.opaqueArea.ContainsBox(region)
}

// Arrange runs the arrange callback if there is one, and otherwise
// fills the bounds of the manager.
func (l *Layer) Arrange() {
	if l.arrangeCallback != nil {
		l.arrangeCallback(&l.Element)
		return
	}
	if l.manager != nil {
		l.SetBoundsDots(l.manager.bounds)
	}
}
