// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package input

//go:generate core generate

// States are the states of an [Input] state machine. The exported
// values are the leaf states an input can rest in (or pass through);
// the unexported values are the composite regions that nest them:
//
//	Idle
//	Retarget
//	hasTarget
//	    HasDisabled
//	    hasEnabled
//	        DecideTargetIsBusy
//	        HasBusy
//	        hasAvailable
//	            DecideEventType
//	            Pending
//	            Engaged
//	            EngagedRemotely
type States int32 //enums:enum

const (
	noState States = iota

	// Idle is when no eligible control is under the input.
	Idle

	// Retarget is a transient state between targets.
	Retarget

	hasTarget

	// HasDisabled is when the target is disabled.
	HasDisabled

	hasEnabled

	// DecideTargetIsBusy is a transient state deciding between
	// [HasBusy] and the available states.
	DecideTargetIsBusy

	// HasBusy is when the target is captured by another input.
	HasBusy

	hasAvailable

	// DecideEventType is a transient state deciding between
	// [Pending] and [Engaged].
	DecideEventType

	// Pending is when the input is over its target and not pressed.
	Pending

	// Engaged is when the input is pressed over its target.
	Engaged

	// EngagedRemotely is when the input is pressed but has
	// moved away from its target.
	EngagedRemotely
)

// parent returns the region directly enclosing the state.
func (s States) parent() States {
	switch s {
	case HasDisabled, hasEnabled:
		return hasTarget
	case DecideTargetIsBusy, HasBusy, hasAvailable:
		return hasEnabled
	case DecideEventType, Pending, Engaged, EngagedRemotely:
		return hasAvailable
	}
	return noState
}

// IsTransient returns whether the state is only passed through.
func (s States) IsTransient() bool {
	return s == Retarget || s == DecideTargetIsBusy || s == DecideEventType
}

// In returns whether the state is the given state or nested in it.
func (s States) In(region States) bool {
	for ; s != noState; s = s.parent() {
		if s == region {
			return true
		}
	}
	return false
}

// HasTarget returns whether the state is inside the targeted region.
func (s States) HasTarget() bool {
	return s.In(hasTarget)
}

// IsEngaged returns whether the state is [Engaged] or [EngagedRemotely].
func (s States) IsEngaged() bool {
	return s == Engaged || s == EngagedRemotely
}

// commonRegion returns the innermost region enclosing both states.
func commonRegion(a, b States) States {
	for p := a.parent(); p != noState; p = p.parent() {
		if b.In(p) {
			return p
		}
	}
	return noState
}

// machineEvents are the events an [Input] state machine reacts to.
type machineEvents int32 //enums:enum

const (
	// noEvent is the synthetic event used to re-evaluate guards.
	noEvent machineEvents = iota
	moveEvent
	downEvent
	upEvent
	targetBecameEnabled
	targetBecameDisabled

	// anyEvent matches every event in a transition row.
	anyEvent
)
