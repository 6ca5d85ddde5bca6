// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"cogentcore.org/retained/input"
	"cogentcore.org/retained/math32"
)

// QueryInfo is the result of a hit test.
type QueryInfo struct {

	// Element is the element found, or nil.
	Element *Element

	// HasDisabledAncestor is whether any ancestor of the element
	// is disabled. A disabled ancestor does not prevent the hit.
	HasDisabledAncestor bool
}

// ElementAtPoint returns the topmost element of the subtree at the
// given point. Only visible elements that consume input take part,
// together with their subtrees; among children the last one wins.
// Total bounds of the ancestors prune the search.
func (e *Element) ElementAtPoint(p math32.Vector2) QueryInfo {
	qi, _ := e.elementAtPoint(p, e.HasDisabledAncestor(), true)
	return qi
}

func (e *Element) elementAtPoint(p math32.Vector2, disabledAncestor, self bool) (QueryInfo, bool) {
	if !e.IsVisible() || !e.ConsumesInput() || !e.TotalBounds().ContainsPoint(p) {
		return QueryInfo{}, false
	}
	kidDisabled := disabledAncestor || !e.IsEnabled()
	for c := e.lastChild; c != nil; c = c.prevSibling {
		if qi, ok := c.elementAtPoint(p, kidDisabled, true); ok {
			return qi, true
		}
	}
	if self && e.Bounds().ContainsPoint(p) {
		return QueryInfo{Element: e, HasDisabledAncestor: disabledAncestor}, true
	}
	return QueryInfo{}, false
}

// ElementAtPoint returns the topmost element at the given point,
// searching the layers from the top. A layer itself is never the
// result, so points over empty parts of a layer reach lower layers.
func (m *Manager) ElementAtPoint(p math32.Vector2) QueryInfo {
	for l := m.top; l != nil; l = l.below {
		if qi, ok := l.elementAtPoint(p, false, false); ok {
			return qi
		}
	}
	return QueryInfo{}
}

// findTarget is the hit test of the input router: it returns the
// nearest [input.Target] at or above the element at the point.
func (m *Manager) findTarget(p math32.Vector2) (input.Target, bool) {
	qi := m.ElementAtPoint(p)
	for e := qi.Element; e != nil; e = e.parent {
		if t, ok := e.This.(input.Target); ok {
			return t, e.HasDisabledAncestor()
		}
	}
	return nil, false
}
