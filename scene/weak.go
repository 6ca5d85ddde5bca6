// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import "weak"

// weakList is a list of weak references to elements. References to
// elements that were collected or removed from their tree are pruned
// lazily when the list is iterated.
type weakList []weak.Pointer[Element]

func (wl *weakList) add(e *Element) {
	*wl = append(*wl, weak.Make(e))
}

// live prunes expired references and returns the remaining elements,
// in registration order.
func (wl *weakList) live() []*Element {
	var els []*Element
	n := 0
	for _, w := range *wl {
		e := w.Value()
		if e == nil || e.IsDestroyed() {
			continue
		}
		(*wl)[n] = w
		n++
		els = append(els, e)
	}
	clear((*wl)[n:])
	*wl = (*wl)[:n]
	return els
}

func (wl *weakList) len() int {
	return len(*wl)
}
