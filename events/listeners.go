// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

// Listeners registers lists of listener functions for the
// different input actions a control can receive.
// Listeners are closures with all context captured.
type Listeners map[Actions][]func(in *Input)

// Init ensures that the map is constructed.
func (ls *Listeners) Init() {
	if *ls != nil {
		return
	}
	*ls = make(map[Actions][]func(*Input))
}

// Add adds a function for the given action.
func (ls *Listeners) Add(action Actions, fun func(*Input)) {
	ls.Init()
	(*ls)[action] = append((*ls)[action], fun)
}

// Call calls all functions for the given notification.
// It goes in reverse order so the last functions added are the first
// called, and it stops when the notification is marked as handled.
func (ls *Listeners) Call(in *Input) {
	if in.IsHandled() {
		return
	}
	fs := (*ls)[in.Action]
	for i := len(fs) - 1; i >= 0; i-- {
		fs[i](in)
		if in.IsHandled() {
			break
		}
	}
}

// Len returns the number of functions registered for the given action.
func (ls *Listeners) Len(action Actions) int {
	return len((*ls)[action])
}
