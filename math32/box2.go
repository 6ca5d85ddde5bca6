// Copyright 2019 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Initially copied from G3N: github.com/g3n/engine/math32
// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
// with modifications needed to suit Cogent Core functionality.

package math32

import (
	"fmt"
	"image"

	"golang.org/x/image/math/fixed"
)

// Box2 represents a 2D rectangle defined by two points:
// the point with minimum coordinates (left, top) and the point
// with maximum coordinates (right, bottom). A box with zero or
// negative width or height is empty.
type Box2 struct {
	Min Vector2
	Max Vector2
}

// B2 returns a new [Box2] from the given left, top, right and bottom coordinates.
func B2(x0, y0, x1, y1 float32) Box2 {
	return Box2{Vec2(x0, y0), Vec2(x1, y1)}
}

// B2FromRect returns a new [Box2] from the given [image.Rectangle].
func B2FromRect(rect image.Rectangle) Box2 {
	b := Box2{}
	b.SetFromRect(rect)
	return b
}

// B2FromFixed returns a new [Box2] from the given [fixed.Rectangle26_6].
func B2FromFixed(rect fixed.Rectangle26_6) Box2 {
	b := Box2{}
	b.Min.SetFixed(rect.Min)
	b.Max.SetFixed(rect.Max)
	return b
}

// SetFromRect set this bounding box from an image.Rectangle
func (b *Box2) SetFromRect(rect image.Rectangle) {
	b.Min = Vector2FromPoint(rect.Min)
	b.Max = Vector2FromPoint(rect.Max)
}

// ToRect returns image.Rectangle version of this bbox, using floor for min
// and Ceil for max.
func (b Box2) ToRect() image.Rectangle {
	rect := image.Rectangle{}
	rect.Min = b.Min.ToPointFloor()
	rect.Max = b.Max.ToPointCeil()
	return rect
}

// ToFixed returns fixed.Rectangle26_6 version of this bbox.
func (b Box2) ToFixed() fixed.Rectangle26_6 {
	return fixed.Rectangle26_6{Min: b.Min.ToFixed(), Max: b.Max.ToFixed()}
}

// IsEmpty returns whether this box covers no area.
func (b Box2) IsEmpty() bool {
	return b.Max.X <= b.Min.X || b.Max.Y <= b.Min.Y
}

// Canon returns the canonical version of the box.
// The returned rectangle has minimum and maximum coordinates swapped
// if necessary so that it is well-formed.
func (b Box2) Canon() Box2 {
	if b.Max.X < b.Min.X {
		b.Min.X, b.Max.X = b.Max.X, b.Min.X
	}
	if b.Max.Y < b.Min.Y {
		b.Min.Y, b.Max.Y = b.Max.Y, b.Min.Y
	}
	return b
}

// Center calculates the center point of this bounding box.
func (b Box2) Center() Vector2 {
	return b.Min.Add(b.Max).MulScalar(0.5)
}

// Size calculates the size of this bounding box: the vector from
// its minimum point to its maximum point.
func (b Box2) Size() Vector2 {
	return b.Max.Sub(b.Min)
}

// Area returns the area of the box, or 0 if it is empty.
func (b Box2) Area() float32 {
	if b.IsEmpty() {
		return 0
	}
	sz := b.Size()
	return sz.X * sz.Y
}

// ContainsPoint returns if this bounding box contains the specified point.
// The minimum edges are inclusive and the maximum edges exclusive, so that
// adjacent boxes never both contain the same point.
func (b Box2) ContainsPoint(point Vector2) bool {
	return point.X >= b.Min.X && point.X < b.Max.X &&
		point.Y >= b.Min.Y && point.Y < b.Max.Y
}

// ContainsBox returns if this bounding box contains other box.
// An empty box is contained by any box.
func (b Box2) ContainsBox(box Box2) bool {
	if box.IsEmpty() {
		return true
	}
	return (b.Min.X <= box.Min.X) && (box.Max.X <= b.Max.X) && (b.Min.Y <= box.Min.Y) && (box.Max.Y <= b.Max.Y)
}

// Intersects returns if other box overlaps this one by a non-zero area.
func (b Box2) Intersects(other Box2) bool {
	return !b.Intersect(other).IsEmpty()
}

// Intersect returns the intersection with other box.
// The result is the zero Box2 if the boxes do not overlap,
// so that all empty intersections compare equal.
func (b Box2) Intersect(other Box2) Box2 {
	other.Min.SetMax(b.Min)
	other.Max.SetMin(b.Max)
	if other.IsEmpty() {
		return Box2{}
	}
	return other
}

// Union returns the smallest box containing both this box and other.
// Empty boxes do not contribute to the union.
func (b Box2) Union(other Box2) Box2 {
	if b.IsEmpty() {
		return other
	}
	if other.IsEmpty() {
		return b
	}
	other.Min.SetMin(b.Min)
	other.Max.SetMax(b.Max)
	return other
}

// ExcludeWith returns the part of this box that is not covered by other,
// as a single rectangle. If other covers the box completely the result is
// empty; if they do not overlap the box is returned unchanged. Otherwise
// the uncovered strips below, above, to the right of and to the left of
// other are considered and the one with the largest area is returned.
// Equal areas are resolved in that order: bottom over top, right over left.
func (b Box2) ExcludeWith(other Box2) Box2 {
	if b.IsEmpty() {
		return Box2{}
	}
	ov := b.Intersect(other)
	if ov.IsEmpty() {
		return b
	}
	if other.ContainsBox(b) {
		return Box2{}
	}
	strips := [...]Box2{
		B2(b.Min.X, ov.Max.Y, b.Max.X, b.Max.Y), // bottom
		B2(b.Min.X, b.Min.Y, b.Max.X, ov.Min.Y), // top
		B2(ov.Max.X, b.Min.Y, b.Max.X, b.Max.Y), // right
		B2(b.Min.X, b.Min.Y, ov.Min.X, b.Max.Y), // left
	}
	best := Box2{}
	bestArea := float32(0)
	for _, s := range strips {
		if a := s.Area(); a > bestArea {
			best, bestArea = s, a
		}
	}
	return best
}

// Translate returns translated position of this box by offset.
func (b Box2) Translate(offset Vector2) Box2 {
	nb := Box2{}
	nb.Min = b.Min.Add(offset)
	nb.Max = b.Max.Add(offset)
	return nb
}

// ProjectX projects normalized value along the X dimension of this box
func (b Box2) ProjectX(v float32) float32 {
	return b.Min.X + v*(b.Max.X-b.Min.X)
}

// ProjectY projects normalized value along the Y dimension of this box
func (b Box2) ProjectY(v float32) float32 {
	return b.Min.Y + v*(b.Max.Y-b.Min.Y)
}

// String implements the [fmt.Stringer] interface.
func (b Box2) String() string {
	return fmt.Sprintf("(%g, %g, %g, %g)", b.Min.X, b.Min.Y, b.Max.X, b.Max.Y)
}
