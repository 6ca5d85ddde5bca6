// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import (
	"sync"

	"cogentcore.org/retained/math32"
)

// Raw is a primitive input event as delivered by a host before it
// is routed: a new location, a press or a release for one input.
type Raw struct {

	// ID is the input contact.
	ID InputID

	// Kind is what happened.
	Kind RawKinds

	// Point is the new location, only used for [RawPoint].
	Point math32.Vector2
}

// RawKinds are the kinds of [Raw] events.
type RawKinds int32 //enums:enum -trim-prefix Raw

const (
	// RawPoint is a new location of the input. Consecutive points
	// of the same input are compressed in a [Queue].
	RawPoint RawKinds = iota

	// RawDown is a press of the input.
	RawDown

	// RawUp is a release of the input.
	RawUp
)

// Queue is a FIFO raw event queue, used by hosts that receive input
// on a different goroutine than the one that owns the scene. It is
// safe for concurrent use, and the zero value is ready to use.
//
// Point events are subject to compression: if the last event added
// (and not yet processed) is a point of the same input, it is
// replaced by the latest one. Presses and releases are never
// compressed, and keep their order relative to points.
type Queue struct {
	mu     sync.Mutex
	events []Raw

	// compressed is the number of point events replaced so far.
	compressed uint64
}

// Send adds an event to the end of the queue, compressing it into
// the last event if both are points of the same input.
func (q *Queue) Send(ev Raw) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if n := len(q.events); n > 0 && ev.Kind == RawPoint {
		last := &q.events[n-1]
		if last.Kind == RawPoint && last.ID == ev.ID {
			last.Point = ev.Point
			q.compressed++
			return
		}
	}
	q.events = append(q.events, ev)
}

// Next removes and returns the next event in the queue.
// It returns false if the queue is empty.
func (q *Queue) Next() (Raw, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.events) == 0 {
		return Raw{}, false
	}
	ev := q.events[0]
	q.events = q.events[1:]
	if len(q.events) == 0 {
		q.events = q.events[:0:0]
	}
	return ev, true
}

// Len returns the number of events waiting in the queue.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.events)
}

// Compressed returns the number of point events that were replaced
// by a later point of the same input.
func (q *Queue) Compressed() uint64 {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.compressed
}
