// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package clip provides an intersection stack of nested clip rectangles.
// Each pushed rectangle is intersected with the current effective region,
// and popping restores the previous effective region exactly. A callback
// is notified only when the effective region actually changes, so that
// hosts can translate it into scissor or software clip operations without
// redundant state changes.
package clip

import (
	"cogentcore.org/retained/math32"
)

// Stack is a stack of nested clip rectangles. The zero value is an empty
// stack that does not clip.
type Stack struct {

	// Changed is called whenever the effective clip region changes.
	// clipped is false when the stack became empty, in which case
	// region is the zero box and nothing should be clipped.
	Changed func(region math32.Box2, clipped bool)

	// regions are the effective regions, each one already intersected
	// with everything below it.
	regions []math32.Box2
}

// Push intersects the given region with the current effective region
// and makes the result the new effective region.
func (s *Stack) Push(region math32.Box2) {
	prev, had := s.Current()
	eff := region
	if had {
		eff = prev.Intersect(region)
	} else if eff.IsEmpty() {
		eff = math32.Box2{}
	}
	s.regions = append(s.regions, eff)
	if !had || eff != prev {
		s.changed(eff, true)
	}
}

// Pop removes the top region, restoring the previous effective region.
// It panics if the stack is empty, since that means pushes and pops were
// not paired.
func (s *Stack) Pop() {
	n := len(s.regions)
	if n == 0 {
		panic("clip.Stack.Pop: pop without matching push")
	}
	top := s.regions[n-1]
	s.regions = s.regions[:n-1]
	cur, has := s.Current()
	if !has {
		s.changed(math32.Box2{}, false)
		return
	}
	if cur != top {
		s.changed(cur, true)
	}
}

// Current returns the current effective region, and false if
// the stack is empty (no clipping).
func (s *Stack) Current() (math32.Box2, bool) {
	n := len(s.regions)
	if n == 0 {
		return math32.Box2{}, false
	}
	return s.regions[n-1], true
}

// Depth returns the number of pushed regions.
func (s *Stack) Depth() int {
	return len(s.regions)
}

// IsEmptyRegion returns whether the stack clips everything away,
// in which case drawing can be skipped altogether.
func (s *Stack) IsEmptyRegion() bool {
	cur, has := s.Current()
	return has && cur.IsEmpty()
}

// Reset clears the stack, notifying a change if it was clipping.
func (s *Stack) Reset() {
	if len(s.regions) == 0 {
		return
	}
	s.regions = s.regions[:0]
	s.changed(math32.Box2{}, false)
}

func (s *Stack) changed(region math32.Box2, clipped bool) {
	if s.Changed != nil {
		s.Changed(region, clipped)
	}
}
