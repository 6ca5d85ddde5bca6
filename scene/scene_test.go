// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"strings"
	"testing"

	"cogentcore.org/retained/math32"
	"github.com/google/go-cmp/cmp"
)

// testScene is a manager with a recording host.
type testScene struct {
	t        *testing.T
	m        *Manager
	log      []string
	boxes    map[string]*math32.Box2
	arranges map[string]int
}

func newTestScene(t *testing.T) *testScene {
	ts := &testScene{t: t, boxes: map[string]*math32.Box2{}, arranges: map[string]int{}}
	ts.m = NewManager(HostFuncs{
		Push: func(region math32.Box2) { ts.log = append(ts.log, "clip "+region.String()) },
		Pop:  func() { ts.log = append(ts.log, "unclip") },
		DPIXY: func() (float32, float32) {
			return 100, 200
		},
	})
	ts.m.SetBounds(math32.B2(0, 0, 100, 100))
	return ts
}

// record sets the callbacks of the element so that its draws and
// arranges are recorded under the given name. A nil box fills the parent.
func (ts *testScene) record(e *Element, name string, box *math32.Box2) *Element {
	if box != nil {
		ts.boxes[name] = box
	}
	e.SetDrawCallback(func(e *Element, area *math32.Box2) {
		if area == nil {
			ts.log = append(ts.log, "draw "+name)
		} else {
			ts.log = append(ts.log, "draw "+name+" "+area.String())
		}
	})
	e.SetArrangeCallback(func(e *Element) {
		ts.arranges[name]++
		if b := ts.boxes[name]; b != nil {
			e.SetBoundsDots(*b)
		} else if e.Parent() != nil {
			e.FillParent()
		} else {
			e.SetBoundsDots(ts.m.Bounds())
		}
	})
	return e
}

// layer creates a recorded layer on top.
func (ts *testScene) layer(name string) *Layer {
	l := ts.m.CreateLayerAbove(nil)
	ts.record(&l.Element, name, nil)
	return l
}

// child adds a recorded child with the given box to the parent.
func (ts *testScene) child(parent *Element, name string, box math32.Box2) *Element {
	e := NewElement()
	ts.record(e, name, &box)
	parent.AddChild(e)
	return e
}

// draws returns the draws recorded since the last call.
func (ts *testScene) draws() []string {
	var ds []string
	for _, l := range ts.log {
		if strings.HasPrefix(l, "draw ") {
			ds = append(ds, strings.TrimPrefix(l, "draw "))
		}
	}
	ts.log = nil
	return ds
}

// all returns everything recorded since the last call.
func (ts *testScene) all() []string {
	l := ts.log
	ts.log = nil
	return l
}

func diff(t *testing.T, want, got []string) {
	t.Helper()
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("trace mismatch (-want +got):\n%s", d)
	}
}
