// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

// RegisterArrangeDependent registers an element whose arrangement
// depends on this one, so that it is re-arranged whenever this one
// moves or resizes. Both must belong to the same layer. The reference
// is weak: it is dropped once the dependent is removed.
func (e *Element) RegisterArrangeDependent(dependent Node) {
	d := dependent.AsElement()
	if e.layer == nil || d.layer != e.layer {
		panic("scene.Element.RegisterArrangeDependent: " + d.TypeName + " is not in the same layer as " + e.Path())
	}
	if d == e {
		panic("scene.Element.RegisterArrangeDependent: an element cannot depend on itself")
	}
	e.arrangeDependents.add(d)
}

// RegisterOverlappingElement registers a later sibling that overlaps
// this element, so that it is redrawn on top whenever this one is
// modified. The reference is weak: it is dropped once the sibling
// is removed.
func (e *Element) RegisterOverlappingElement(overlapping Node) {
	o := overlapping.AsElement()
	if e.parent == nil || o.parent != e.parent {
		panic("scene.Element.RegisterOverlappingElement: " + o.TypeName + " is not a sibling of " + e.Path())
	}
	for s := e.nextSibling; s != nil; s = s.nextSibling {
		if s == o {
			e.overlappedBy.add(o)
			return
		}
	}
	panic("scene.Element.RegisterOverlappingElement: " + o.Path() + " is not drawn after " + e.Path())
}

// ArrangeDependents returns the live arrange dependents.
func (e *Element) ArrangeDependents() []*Element {
	return e.arrangeDependents.live()
}

// OverlappingElements returns the live overlapping siblings.
func (e *Element) OverlappingElements() []*Element {
	return e.overlappedBy.live()
}
