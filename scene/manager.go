// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"cogentcore.org/retained/clip"
	"cogentcore.org/retained/events"
	"cogentcore.org/retained/input"
	"cogentcore.org/retained/math32"
	"cogentcore.org/retained/units"
)

// Host is what a [Manager] needs from the application that renders it.
type Host interface {

	// PushClip starts clipping drawing to the given region.
	PushClip(region math32.Box2)

	// PopClip ends the clipping started by the last PushClip.
	PopClip()

	// DPI returns the horizontal and vertical dots per inch of the
	// surface. Zero values fall back to the display settings of
	// the manager.
	DPI() (x, y float32)
}

// HostFuncs implements [Host] with functions, any of which can be nil.
type HostFuncs struct {
	Push  func(region math32.Box2)
	Pop   func()
	DPIXY func() (x, y float32)
}

func (h HostFuncs) PushClip(region math32.Box2) {
	if h.Push != nil {
		h.Push(region)
	}
}

func (h HostFuncs) PopClip() {
	if h.Pop != nil {
		h.Pop()
	}
}

func (h HostFuncs) DPI() (x, y float32) {
	if h.DPIXY != nil {
		return h.DPIXY()
	}
	return 0, 0
}

// Manager owns the layers of one independently rendered surface, the
// inputs over it and its clip stack, and runs the update engine.
type Manager struct {
	host   Host
	units  units.Context
	bounds math32.Box2

	bottom *Layer
	top    *Layer

	clips     clip.Stack
	hostClips int

	router *input.Router

	// inCycle is set while an update cycle runs; updates requested
	// during a cycle are queued in pending.
	inCycle bool
	pending []pendingUpdate

	// updated holds the elements updated in the current cycle.
	updated map[*Element]struct{}

	// geometryChanged is set when an update of the current cycle
	// moved, resized, showed or hid an element.
	geometryChanged bool

	redrawn math32.Box2

	display *DisplaySettingsData
	debug   *DebugSettingsData
}

// NewManager returns a new manager drawing through the given host.
// It uses the process-wide [DisplaySettings] and [DebugSettings]
// until others are set with [Manager.SetDisplaySettings] and
// [Manager.SetDebugSettings].
func NewManager(host Host) *Manager {
	m := &Manager{host: host, updated: map[*Element]struct{}{}}
	m.display = DisplaySettings
	m.debug = DebugSettings
	m.clips.Changed = m.clipChanged
	m.router = input.NewRouter(m.findTarget)
	m.UpdateDPI()
	return m
}

// clipChanged forwards the effective clip region to the host,
// which only ever has one clip pushed.
func (m *Manager) clipChanged(region math32.Box2, clipped bool) {
	if m.hostClips > 0 {
		m.host.PopClip()
		m.hostClips--
	}
	if clipped {
		m.host.PushClip(region)
		m.hostClips++
	}
}

// UpdateDPI reads the DPI of the host again. Call [Manager.UpdateEverything]
// afterwards so that the new values are used.
func (m *Manager) UpdateDPI() {
	x, y := m.host.DPI()
	if x <= 0 {
		x = m.display.DPI
	}
	if y <= 0 {
		y = m.display.DPI
	}
	m.units.Set(x, y)
}

// DisplaySettings returns the display settings used by the manager.
func (m *Manager) DisplaySettings() *DisplaySettingsData { return m.display }

// SetDisplaySettings sets the display settings used by the manager,
// and reads the DPI of the host again with them.
func (m *Manager) SetDisplaySettings(ds *DisplaySettingsData) *Manager {
	m.display = ds
	m.UpdateDPI()
	return m
}

// DebugSettings returns the debugging settings used by the manager.
func (m *Manager) DebugSettings() *DebugSettingsData { return m.debug }

// SetDebugSettings sets the debugging settings used by the manager
// and by the controls in its layers.
func (m *Manager) SetDebugSettings(db *DebugSettingsData) *Manager {
	m.debug = db
	return m
}

// Units returns the unit context of the surface.
func (m *Manager) Units() *units.Context { return &m.units }

// Bounds returns the bounds of the surface.
func (m *Manager) Bounds() math32.Box2 { return m.bounds }

// SetBounds sets the bounds of the surface. Call
// [Manager.UpdateEverything] afterwards to re-arrange everything.
func (m *Manager) SetBounds(b math32.Box2) *Manager {
	m.bounds = b
	return m
}

// Router returns the input router of the surface.
func (m *Manager) Router() *input.Router { return m.router }

// BottomLayer returns the lowest layer, or nil.
func (m *Manager) BottomLayer() *Layer { return m.bottom }

// TopLayer returns the highest layer, or nil.
func (m *Manager) TopLayer() *Layer { return m.top }

// Layers returns the layers from bottom to top.
func (m *Manager) Layers() []*Layer {
	var ls []*Layer
	for l := m.bottom; l != nil; l = l.above {
		ls = append(ls, l)
	}
	return ls
}

func (m *Manager) newLayer() *Layer {
	l := &Layer{}
	l.InitElement(l)
	l.manager = m
	l.layer = l
	return l
}

// CreateLayerAbove creates a new layer right above the given one,
// or at the top when it is nil.
func (m *Manager) CreateLayerAbove(existing *Layer) *Layer {
	if existing == nil {
		existing = m.top
	}
	l := m.newLayer()
	if existing == nil {
		m.bottom, m.top = l, l
		return l
	}
	m.checkLayer(existing)
	l.below = existing
	l.above = existing.above
	if existing.above != nil {
		existing.above.below = l
	} else {
		m.top = l
	}
	existing.above = l
	return l
}

// CreateLayerBelow creates a new layer right below the given one,
// or at the bottom when it is nil.
func (m *Manager) CreateLayerBelow(existing *Layer) *Layer {
	if existing == nil {
		existing = m.bottom
	}
	l := m.newLayer()
	if existing == nil {
		m.bottom, m.top = l, l
		return l
	}
	m.checkLayer(existing)
	l.above = existing
	l.below = existing.below
	if existing.below != nil {
		existing.below.above = l
	} else {
		m.bottom = l
	}
	existing.below = l
	return l
}

func (m *Manager) checkLayer(l *Layer) {
	if l.manager != m || l.IsDestroyed() {
		panic("scene.Manager: layer does not belong to this manager")
	}
}

// RemoveLayer removes the given layer and destroys its subtree,
// repainting what it covered.
func (m *Manager) RemoveLayer(l *Layer) {
	m.checkLayer(l)
	region := l.TotalBounds()
	drawn := l.IsInitialUpdated() && l.hasFlag(flagLastVisible)
	if l.below != nil {
		l.below.above = l.above
	} else {
		m.bottom = l.above
	}
	if l.above != nil {
		l.above.below = l.below
	} else {
		m.top = l.below
	}
	l.below, l.above = nil, nil
	l.destroy()
	if drawn {
		m.updateRemovedLayer(region)
	}
	m.router.Refresh()
}

// NotifyNewPoint routes a new location of the given input and
// returns whether the screen needs to be updated.
func (m *Manager) NotifyNewPoint(id events.InputID, p math32.Vector2) bool {
	m.router.Trace = m.debug.InputTrace
	return m.router.NotifyNewPoint(id, p)
}

// NotifyDown routes a press of the given input and returns whether
// the screen needs to be updated.
func (m *Manager) NotifyDown(id events.InputID) bool {
	m.router.Trace = m.debug.InputTrace
	return m.router.NotifyDown(id)
}

// NotifyUp routes a release of the given input and returns whether
// the screen needs to be updated.
func (m *Manager) NotifyUp(id events.InputID) bool {
	m.router.Trace = m.debug.InputTrace
	return m.router.NotifyUp(id)
}

// ProcessQueue routes all of the events waiting in the given queue.
func (m *Manager) ProcessQueue(q *events.Queue) bool {
	m.router.Trace = m.debug.InputTrace
	return m.router.ProcessQueue(q)
}

// TakeRedrawnRegion returns the union of everything redrawn since the
// last call, which the host needs to present, and resets it.
func (m *Manager) TakeRedrawnRegion() math32.Box2 {
	r := m.redrawn
	m.redrawn = math32.Box2{}
	return r
}
