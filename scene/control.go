// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"log/slog"

	"cogentcore.org/retained/events"
)

// Control is an element that receives input notifications.
// It implements [input.Target]; widget types embed it and override
// [Control.NotifyInput], calling the base method first so that the
// capture claimed by [events.Busy] is tracked.
type Control struct {
	Element

	// Listeners are called for every notification, after the
	// capture bookkeeping.
	Listeners events.Listeners

	captureOwner events.InputID
}

// NewControl returns a new plain control.
func NewControl() *Control {
	c := &Control{}
	c.InitElement(c)
	return c
}

// On adds a listener for the given action.
func (c *Control) On(action events.Actions, fun func(in *events.Input)) *Control {
	c.Listeners.Add(action, fun)
	return c
}

// NotifyInput tracks the capture of the control and calls the listeners.
// It returns whether the screen needs to be updated, which is never
// the case for a plain control.
func (c *Control) NotifyInput(in *events.Input) bool {
	switch in.Action {
	case events.Busy:
		c.captureOwner = in.ID
	case events.Available:
		if c.captureOwner == in.ID {
			c.captureOwner = 0
		}
	}
	if c.debugSettings().InputTrace {
		slog.Info("notify", "control", c.Path(), "input", in)
	}
	c.Listeners.Call(in)
	return false
}

// InputEnabled returns whether the control and all of its ancestors
// are enabled.
func (c *Control) InputEnabled() bool {
	return c.IsEnabled() && !c.HasDisabledAncestor()
}

// InputAttached returns whether the control is part of a live scene.
func (c *Control) InputAttached() bool {
	return c.manager != nil && !c.IsDestroyed()
}

// CaptureOwner returns the input that has claimed the control, or 0.
func (c *Control) CaptureOwner() events.InputID {
	return c.captureOwner
}

// IsCaptured returns whether an input has claimed the control.
func (c *Control) IsCaptured() bool {
	return c.captureOwner != 0
}

func (c *Control) destroyed() {
	c.captureOwner = 0
	c.Listeners = nil
}
