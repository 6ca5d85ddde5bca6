// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"strconv"
	"strings"
)

const (
	// Continue = true can be returned from tree iteration functions to continue
	// processing down the tree, as compared to Break = false which stops this branch.
	Continue = true

	// Break = false can be returned from tree iteration functions to stop processing
	// this branch of the tree.
	Break = false
)

// Parent returns the parent element, or nil for a root.
func (e *Element) Parent() *Element { return e.parent }

// FirstChild returns the first child, which is drawn first.
func (e *Element) FirstChild() *Element { return e.firstChild }

// LastChild returns the last child, which is drawn last and so is on top.
func (e *Element) LastChild() *Element { return e.lastChild }

// PrevSibling returns the previous sibling, drawn before this element.
func (e *Element) PrevSibling() *Element { return e.prevSibling }

// NextSibling returns the next sibling, drawn after this element.
func (e *Element) NextSibling() *Element { return e.nextSibling }

// NumChildren returns the number of children.
func (e *Element) NumChildren() int { return e.numChildren }

// HasChildren returns whether the element has any children.
func (e *Element) HasChildren() bool { return e.firstChild != nil }

// SingleChild returns the only child of the element, or nil if it has
// none. It panics if the element has more than one child.
func (e *Element) SingleChild() *Element {
	if e.numChildren > 1 {
		panic("scene.Element.SingleChild: " + e.Path() + " has " + strconv.Itoa(e.numChildren) + " children")
	}
	return e.firstChild
}

// Children returns the children in draw order.
func (e *Element) Children() []*Element {
	kids := make([]*Element, 0, e.numChildren)
	for c := e.firstChild; c != nil; c = c.nextSibling {
		kids = append(kids, c)
	}
	return kids
}

// checkAddable panics if the given node cannot be added as a child.
func (e *Element) checkAddable(child Node) *Element {
	c := child.AsElement()
	if c.This == nil {
		c.InitElement(child)
	}
	switch {
	case c == e:
		panic("scene.Element.AddChild: cannot add an element to itself")
	case c.parent != nil:
		panic("scene.Element.AddChild: " + c.Path() + " already has a parent")
	case c.IsDestroyed():
		panic("scene.Element.AddChild: " + c.TypeName + " was removed and cannot be reused")
	case e.IsDestroyed():
		panic("scene.Element.AddChild: cannot add to removed element " + e.TypeName)
	}
	if _, isLayer := c.This.(*Layer); isLayer {
		panic("scene.Element.AddChild: layers can only be created by a Manager")
	}
	for p := e; p != nil; p = p.parent {
		if p == c {
			panic("scene.Element.AddChild: cannot add an ancestor as a child")
		}
	}
	return c
}

// adopt sets the parent, manager and layer of the new child subtree.
func (e *Element) adopt(c *Element) {
	c.parent = e
	e.numChildren++
	c.WalkDown(func(d *Element) bool {
		d.manager = e.manager
		d.layer = e.layer
		return Continue
	})
}

// AddChild adds the given node as the last child of the element, on top
// of the other children. It panics if the node already has a parent.
// The manager and layer of the element are copied down the new subtree.
// Call [Element.UpdateAfterAdd] on the child to put it on the screen.
func (e *Element) AddChild(child Node) *Element {
	c := e.checkAddable(child)
	c.prevSibling = e.lastChild
	if e.lastChild != nil {
		e.lastChild.nextSibling = c
	} else {
		e.firstChild = c
	}
	e.lastChild = c
	e.adopt(c)
	return e
}

// InsertChildBefore adds the given node as a child right before the
// given existing child, so that it is drawn under it. A nil before
// adds the child last, like [Element.AddChild].
func (e *Element) InsertChildBefore(child, before Node) *Element {
	if before == nil {
		return e.AddChild(child)
	}
	b := before.AsElement()
	if b.parent != e {
		panic("scene.Element.InsertChildBefore: " + b.TypeName + " is not a child of " + e.Path())
	}
	c := e.checkAddable(child)
	c.nextSibling = b
	c.prevSibling = b.prevSibling
	if b.prevSibling != nil {
		b.prevSibling.nextSibling = c
	} else {
		e.firstChild = c
	}
	b.prevSibling = c
	e.adopt(c)
	return e
}

// unlink removes the child from the sibling list of the element.
func (e *Element) unlink(c *Element) {
	if c.prevSibling != nil {
		c.prevSibling.nextSibling = c.nextSibling
	} else {
		e.firstChild = c.nextSibling
	}
	if c.nextSibling != nil {
		c.nextSibling.prevSibling = c.prevSibling
	} else {
		e.lastChild = c.prevSibling
	}
	c.prevSibling = nil
	c.nextSibling = nil
	c.parent = nil
	e.numChildren--
}

// RemoveChild removes the given child and its subtree from the tree,
// repaints the area it covered and re-targets any input that was on it.
// The removed elements are destroyed: their links, callbacks and weak
// lists are cleared and further updates on them do nothing.
// It panics if the node is not a child of the element.
func (e *Element) RemoveChild(child Node) {
	c := child.AsElement()
	if c.parent != e {
		panic("scene.Element.RemoveChild: " + c.TypeName + " is not a child of " + e.Path())
	}
	m := e.manager
	region := c.TotalBounds()
	drawn := c.IsInitialUpdated() && c.hasFlag(flagLastVisible)
	e.unlink(c)
	c.destroy()
	if m == nil {
		return
	}
	if drawn {
		m.updateRemoved(e, region)
	}
	m.router.Refresh()
}

// destroy clears the subtree so that nothing refers to it anymore.
func (e *Element) destroy() {
	for c := e.firstChild; c != nil; {
		next := c.nextSibling
		c.destroy()
		c = next
	}
	e.firstChild = nil
	e.lastChild = nil
	e.prevSibling = nil
	e.nextSibling = nil
	e.parent = nil
	e.numChildren = 0
	e.manager = nil
	e.layer = nil
	e.arrangeCallback = nil
	e.drawCallback = nil
	e.viewModelCallback = nil
	e.arrangeDependents = nil
	e.overlappedBy = nil
	e.viewModel = nil
	e.setFlag(true, flagDestroyed)
	if d, ok := e.This.(interface{ destroyed() }); ok {
		d.destroyed()
	}
}

// WalkDown calls the given function on the element and all of its
// descendants in depth-first draw order. It stops walking the current
// branch if the function returns [Break].
func (e *Element) WalkDown(fun func(e *Element) bool) {
	if !fun(e) {
		return
	}
	for c := e.firstChild; c != nil; {
		next := c.nextSibling
		c.WalkDown(fun)
		c = next
	}
}

// WalkUpParent calls the given function on all of the parents of the
// element (but not the element itself), stopping when it returns
// [Break]. It returns whether walking was finished.
func (e *Element) WalkUpParent(fun func(e *Element) bool) bool {
	for p := e.parent; p != nil; p = p.parent {
		if !fun(p) {
			return false
		}
	}
	return true
}

// IndexInParent returns the index of the element among its siblings,
// or -1 for a root.
func (e *Element) IndexInParent() int {
	if e.parent == nil {
		return -1
	}
	i := 0
	for c := e.parent.firstChild; c != e; c = c.nextSibling {
		i++
	}
	return i
}

// Path returns the path of the element from its root, made of the
// type names and sibling indexes, like "/Layer/Grid/Button2".
func (e *Element) Path() string {
	var parts []string
	for c := e; c != nil; c = c.parent {
		name := c.TypeName
		if c.parent != nil {
			name += strconv.Itoa(c.IndexInParent())
		}
		parts = append(parts, name)
	}
	var sb strings.Builder
	for i := len(parts) - 1; i >= 0; i-- {
		sb.WriteByte('/')
		sb.WriteString(parts[i])
	}
	return sb.String()
}
