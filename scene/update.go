// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"log/slog"

	"cogentcore.org/retained/math32"
)

// UpdateTypes are the kinds of updates run by the update engine.
type UpdateTypes int32 //enums:enum -trim-prefix Update,update

const (
	// UpdateEverything arranges and draws a whole subtree without
	// tracking what changed, as on startup or resize.
	UpdateEverything UpdateTypes = iota

	// UpdateAdding arranges and draws an element that was just added.
	UpdateAdding

	// UpdateModifying re-arranges an element whose state changed and
	// redraws the region it covered before and after.
	UpdateModifying

	// updateRemoving repaints the region a removed subtree covered.
	updateRemoving
)

// pendingUpdate is an update waiting in the queue of a [Manager].
type pendingUpdate struct {
	e   *Element
	typ UpdateTypes

	// region is the area to repaint for removals.
	region math32.Box2
}

// UpdateOrAddPending runs an update of the given kind for the node.
// When an update cycle is already running, for example when a draw
// or arrange callback asks for an update, it is queued instead and
// run in order once the current update is done.
func (m *Manager) UpdateOrAddPending(n Node, typ UpdateTypes) {
	e := n.AsElement()
	if e.IsDestroyed() {
		return
	}
	if e.manager != m {
		panic("scene.Manager.UpdateOrAddPending: " + e.Path() + " does not belong to this manager")
	}
	m.run(pendingUpdate{e: e, typ: typ})
}

// UpdateEverything arranges and draws all of the layers.
func (m *Manager) UpdateEverything() {
	m.run(pendingUpdate{typ: UpdateEverything})
}

// updateRemoved repaints the region a removed child of parent covered.
func (m *Manager) updateRemoved(parent *Element, region math32.Box2) {
	m.run(pendingUpdate{e: parent, typ: updateRemoving, region: region})
}

// updateRemovedLayer repaints the region a removed layer covered.
func (m *Manager) updateRemovedLayer(region math32.Box2) {
	m.run(pendingUpdate{typ: updateRemoving, region: region})
}

// InCycle returns whether an update cycle is running.
func (m *Manager) InCycle() bool { return m.inCycle }

func (m *Manager) run(pu pendingUpdate) {
	if m.inCycle {
		if m.debug.UpdateTrace {
			slog.Info("update queued", "type", pu.typ, "element", pu.e, "pending", len(m.pending)+1)
		}
		m.pending = append(m.pending, pu)
		return
	}
	m.cycle(pu)
	if m.geometryChanged {
		m.geometryChanged = false
		m.router.Refresh()
	}
}

// cycle processes the update and then everything it queued, in order.
func (m *Manager) cycle(pu pendingUpdate) {
	m.inCycle = true
	clear(m.updated)
	defer func() {
		m.inCycle = false
		m.pending = nil
		clear(m.updated)
	}()
	m.process(pu)
	for len(m.pending) > 0 {
		next := m.pending[0]
		m.pending = m.pending[1:]
		m.process(next)
	}
}

func (m *Manager) process(pu pendingUpdate) {
	if pu.e != nil && (pu.e.IsDestroyed() || pu.e.manager != m) {
		return
	}
	switch pu.typ {
	case UpdateEverything:
		m.updateEverything(pu.e)
	case updateRemoving:
		if pu.e == nil {
			m.redrawRemovedLayer(pu.region)
		} else {
			m.redrawRemoved(pu.e, pu.region)
		}
	default:
		m.updateElement(pu.e, pu.typ)
	}
}

////////  Arrange and draw

// arrange runs the arrange pass of one element.
func (m *Manager) arrange(e *Element) {
	e.ResetArrangement()
	e.setFlag(false, flagChildRequestedArrange)
	e.This.PrepareViewModel()
	e.setFlag(true, flagInArrange)
	func() {
		defer e.setFlag(false, flagInArrange)
		e.This.Arrange()
	}()
	e.setFlag(true, flagInitialUpdated)
	e.setFlag(e.IsVisible(), flagLastVisible)
	if m.debug.ArrangeTrace {
		slog.Info("arrange", "element", e.Path(), "bounds", e.Bounds(), "visible", e.IsVisible())
	}
}

// draw calls the Draw of one element.
func (m *Manager) draw(e *Element, area *math32.Box2) {
	if m.debug.DrawTrace {
		if area == nil {
			slog.Info("draw", "element", e.Path())
		} else {
			slog.Info("draw", "element", e.Path(), "area", *area)
		}
	}
	e.This.Draw(area)
}

// drawTree arranges the element when asked to, and draws it and its
// subtree within the area. A nil area draws everything.
func (m *Manager) drawTree(e *Element, area *math32.Box2, rearrange bool) {
	if rearrange {
		m.arrange(e)
	}
	kids := rearrange || e.hasFlag(flagChildRequestedArrange)
	e.setFlag(false, flagChildRequestedArrange)
	m.drawArranged(e, area, kids)
}

// drawArranged draws an element that is already arranged, and then its
// children, re-arranging them when asked to. Elements outside of the
// area are only arranged.
func (m *Manager) drawArranged(e *Element, area *math32.Box2, rearrangeKids bool) {
	if !e.IsVisible() {
		return
	}
	var sub *math32.Box2
	draw := !m.clips.IsEmptyRegion()
	if area != nil {
		r := area.Intersect(e.TotalBounds())
		draw = draw && !r.IsEmpty()
		sub = &r
	}
	if !draw && !rearrangeKids {
		return
	}
	if draw {
		if e.ClipToBounds() {
			m.clips.Push(e.Bounds())
			defer m.clips.Pop()
		}
		m.draw(e, sub)
	} else {
		area = &math32.Box2{}
	}
	for c := e.firstChild; c != nil; {
		next := c.nextSibling
		m.drawTree(c, area, rearrangeKids)
		c = next
	}
}

// drawAncestors draws the ancestors of the element within the region,
// pushing the clip of those that clip to their bounds. It returns the
// number of pushed clips.
func (m *Manager) drawAncestors(e *Element, region math32.Box2) int {
	var chain []*Element
	for p := e.parent; p != nil; p = p.parent {
		chain = append(chain, p)
	}
	pushes := 0
	for i := len(chain) - 1; i >= 0; i-- {
		a := chain[i]
		if a.ClipToBounds() {
			m.clips.Push(a.Bounds())
			pushes++
		}
		r := region.Intersect(a.TotalBounds())
		if !r.IsEmpty() && !m.clips.IsEmptyRegion() {
			m.draw(a, &r)
		}
	}
	return pushes
}

func (m *Manager) popClips(n int) {
	for range n {
		m.clips.Pop()
	}
}

// coveredAbove returns whether a layer above the given one is opaque
// over the whole region.
func (m *Manager) coveredAbove(l *Layer, region math32.Box2) bool {
	for a := l.above; a != nil; a = a.above {
		if a.covers(region) {
			return true
		}
	}
	return false
}

// drawLowerLayers redraws the layers under the given one within the
// region, starting from the highest one that is opaque over it.
func (m *Manager) drawLowerLayers(l *Layer, region math32.Box2) {
	if l.below == nil {
		return
	}
	first := m.bottom
	for b := l.below; b != nil; b = b.below {
		if b.covers(region) {
			first = b
			break
		}
	}
	for b := first; b != nil && b != l; b = b.above {
		m.drawTree(&b.Element, &region, false)
	}
}

// drawHigherLayers redraws the layers over the given one within the region.
func (m *Manager) drawHigherLayers(l *Layer, region math32.Box2) {
	if l.above == nil {
		return
	}
	m.clips.Push(region)
	defer m.clips.Pop()
	for a := l.above; a != nil; a = a.above {
		m.drawTree(&a.Element, &region, false)
	}
}

////////  Updates

// updateEverything arranges and draws the subtree of the element,
// or all of the layers when it is nil.
func (m *Manager) updateEverything(e *Element) {
	if e == nil {
		if m.debug.UpdateTrace {
			slog.Info("update", "type", UpdateEverything, "bounds", m.bounds)
		}
		m.clips.Push(m.bounds)
		defer m.clips.Pop()
		for l := m.bottom; l != nil; {
			next := l.above
			m.updated[&l.Element] = struct{}{}
			m.drawTree(&l.Element, nil, true)
			l = next
		}
		m.redrawn = m.redrawn.Union(m.bounds)
		m.geometryChanged = true
		return
	}
	if m.debug.UpdateTrace {
		slog.Info("update", "type", UpdateEverything, "element", e.Path())
	}
	m.updated[e] = struct{}{}
	if e.hasInvisibleAncestor() {
		return
	}
	m.clips.Push(m.bounds)
	defer m.clips.Pop()
	pushes := 0
	for p := e.parent; p != nil; p = p.parent {
		if p.ClipToBounds() {
			m.clips.Push(p.Bounds())
			pushes++
		}
	}
	defer m.popClips(pushes)
	m.drawTree(e, nil, true)
	m.redrawn = m.redrawn.Union(e.TotalBounds())
	m.geometryChanged = true
}

// updateElement runs an adding or modifying update of one element.
func (m *Manager) updateElement(e *Element, typ UpdateTypes) {
	if _, done := m.updated[e]; done {
		return
	}
	m.updated[e] = struct{}{}
	if typ == UpdateModifying && !e.IsInitialUpdated() {
		return
	}

	wasVisible := e.IsInitialUpdated() && e.hasFlag(flagLastVisible)
	var before, beforeTotal math32.Box2
	if e.IsInitialUpdated() {
		before, beforeTotal = e.Bounds(), e.TotalBounds()
	}
	m.arrange(e)
	nowVisible := e.IsVisible()
	after, afterTotal := e.Bounds(), e.TotalBounds()

	moved := before != after
	totalChanged := beforeTotal != afterTotal
	visChanged := wasVisible != nowVisible
	if moved || totalChanged || visChanged {
		m.geometryChanged = true
	}
	var region math32.Box2
	if wasVisible {
		region = beforeTotal
	}
	if nowVisible {
		region = region.Union(afterTotal)
	}
	kids := typ == UpdateAdding || moved || totalChanged || visChanged ||
		e.hasFlag(flagChildRequestedArrange) || e.AlwaysRearrangeDescendants()
	e.setFlag(false, flagChildRequestedArrange)

	if m.debug.UpdateTrace {
		slog.Info("update", "type", typ, "element", e.Path(), "region", region, "moved", moved, "visibilityChanged", visChanged, "rearrangeChildren", kids)
	}

	switch {
	case !wasVisible && !nowVisible, e.hasInvisibleAncestor():
		return
	case region.IsEmpty(), m.coveredAbove(e.layer, region):
		if kids && nowVisible {
			m.drawArranged(e, &math32.Box2{}, true)
		}
	default:
		m.redraw(e, region, typ, kids)
	}

	if typ == UpdateModifying && moved {
		for _, d := range e.arrangeDependents.live() {
			m.updateElement(d, UpdateModifying)
		}
	}
}

// redraw repaints the region of an updated element: the layers under
// it, its ancestors, the element with its children and overlapping
// siblings, and then the layers over it.
func (m *Manager) redraw(e *Element, region math32.Box2, typ UpdateTypes, rearrangeKids bool) {
	func() {
		m.clips.Push(region)
		defer m.clips.Pop()
		if !e.layer.covers(region) {
			m.drawLowerLayers(e.layer, region)
		}
		defer m.popClips(m.drawAncestors(e, region))
		m.drawArranged(e, &region, rearrangeKids)
		if typ == UpdateModifying {
			for _, o := range e.overlappedBy.live() {
				m.drawTree(o, &region, false)
			}
		}
	}()
	m.drawHigherLayers(e.layer, region)
	m.redrawn = m.redrawn.Union(region)
}

// redrawRemoved repaints the region a removed child of parent covered:
// the parent with its remaining children, and everything around it.
func (m *Manager) redrawRemoved(parent *Element, region math32.Box2) {
	if m.debug.UpdateTrace {
		slog.Info("update", "type", updateRemoving, "parent", parent.Path(), "region", region)
	}
	m.geometryChanged = true
	if region.IsEmpty() || !parent.IsVisible() || parent.hasInvisibleAncestor() || m.coveredAbove(parent.layer, region) {
		return
	}
	func() {
		m.clips.Push(region)
		defer m.clips.Pop()
		if !parent.layer.covers(region) {
			m.drawLowerLayers(parent.layer, region)
		}
		defer m.popClips(m.drawAncestors(parent, region))
		m.drawArranged(parent, &region, false)
	}()
	m.drawHigherLayers(parent.layer, region)
	m.redrawn = m.redrawn.Union(region)
}

// redrawRemovedLayer repaints the region a removed layer covered,
// drawing every remaining layer from the highest one that is opaque
// over it.
func (m *Manager) redrawRemovedLayer(region math32.Box2) {
	if m.debug.UpdateTrace {
		slog.Info("update", "type", updateRemoving, "layer", true, "region", region)
	}
	m.geometryChanged = true
	if region.IsEmpty() || m.bottom == nil {
		return
	}
	first := m.bottom
	for l := m.top; l != nil; l = l.below {
		if l.covers(region) {
			first = l
			break
		}
	}
	m.clips.Push(region)
	defer m.clips.Pop()
	for l := first; l != nil; l = l.above {
		m.drawTree(&l.Element, &region, false)
	}
	m.redrawn = m.redrawn.Union(region)
}
