// Copyright 2024 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBox2Intersect(t *testing.T) {
	a := B2(1, 1, 10, 10)
	b := B2(2, 2, 12, 6)
	assert.Equal(t, B2(2, 2, 10, 6), a.Intersect(b))
	assert.Equal(t, B2(2, 2, 10, 6), b.Intersect(a))
	assert.True(t, a.Intersects(b))

	disjoint := B2(20, 20, 30, 30)
	assert.True(t, a.Intersect(disjoint).IsEmpty())
	assert.Equal(t, Box2{}, a.Intersect(disjoint))
	assert.False(t, a.Intersects(disjoint))

	touching := B2(10, 1, 20, 10)
	assert.False(t, a.Intersects(touching))
}

func TestBox2Union(t *testing.T) {
	a := B2(1, 1, 10, 10)
	assert.Equal(t, B2(0, 1, 12, 14), a.Union(B2(0, 5, 12, 14)))
	assert.Equal(t, a, a.Union(Box2{}))
	assert.Equal(t, a, Box2{}.Union(a))
}

func TestBox2Contains(t *testing.T) {
	b := B2(0, 0, 10, 10)
	assert.True(t, b.ContainsPoint(Vec2(0, 0)))
	assert.True(t, b.ContainsPoint(Vec2(9.5, 9.5)))
	assert.False(t, b.ContainsPoint(Vec2(10, 5)))
	assert.False(t, b.ContainsPoint(Vec2(-1, 5)))

	assert.True(t, b.ContainsBox(B2(2, 2, 10, 10)))
	assert.False(t, b.ContainsBox(B2(2, 2, 11, 10)))
	assert.True(t, b.ContainsBox(Box2{}))
}

func TestBox2Rect(t *testing.T) {
	b := B2(0.5, 1.5, 9.5, 10.2)
	assert.Equal(t, image.Rect(0, 1, 10, 11), b.ToRect())
	assert.Equal(t, B2(0, 1, 10, 11), B2FromRect(b.ToRect()))
	assert.Equal(t, B2(1, 2, 3, 4), B2FromFixed(B2(1, 2, 3, 4).ToFixed()))
	assert.Equal(t, Vec2(5, 5), B2(0, 0, 10, 10).Center())
	assert.Equal(t, float32(0), B2(5, 5, 5, 10).Area())
}

func TestBox2ExcludeWith(t *testing.T) {
	b := B2(0, 0, 10, 10)
	tests := []struct {
		name  string
		other Box2
		want  Box2
	}{
		{"contained", B2(-1, -1, 11, 11), Box2{}},
		{"same", B2(0, 0, 10, 10), Box2{}},
		{"disjoint", B2(20, 20, 30, 30), b},
		{"touching", B2(10, 0, 20, 10), b},
		{"left edge", B2(-5, -5, 4, 15), B2(4, 0, 10, 10)},
		{"right edge", B2(6, -5, 15, 15), B2(0, 0, 6, 10)},
		{"top edge", B2(-5, -5, 15, 3), B2(0, 3, 10, 10)},
		{"bottom edge", B2(-5, 7, 15, 15), B2(0, 0, 10, 7)},
		{"vertical middle prefers right", B2(4, -5, 6, 15), B2(6, 0, 10, 10)},
		{"horizontal middle prefers bottom", B2(-5, 4, 15, 6), B2(0, 6, 10, 10)},
		{"center prefers bottom", B2(4, 4, 6, 6), B2(0, 6, 10, 10)},
		{"top left corner", B2(-5, -5, 5, 3), B2(0, 3, 10, 10)},
		{"bottom right corner", B2(3, 5, 15, 15), B2(0, 0, 10, 5)},
		{"narrow right corner", B2(8, -5, 15, 5), B2(0, 0, 8, 10)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, b.ExcludeWith(tt.other))
		})
	}
}
