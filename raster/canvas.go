// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package raster provides an in-memory surface that a scene manager
// can draw into, and the encoding of its snapshots in the usual
// image formats.
package raster

import (
	"image"
	"image/color"

	"cogentcore.org/retained/math32"
	"golang.org/x/image/draw"
)

// Canvas is an RGBA image that implements the host of a scene
// manager: clipping is applied to every [Canvas.Fill].
type Canvas struct {

	// Image is the image drawn into.
	Image *image.RGBA

	// DPIX and DPIY are the dots per inch reported to the manager.
	// Zero values use the display settings.
	DPIX, DPIY float32

	// clips are the pushed clip rectangles, the last one in effect.
	clips []image.Rectangle
}

// NewCanvas returns a new transparent canvas of the given size.
func NewCanvas(width, height int) *Canvas {
	return &Canvas{Image: image.NewRGBA(image.Rect(0, 0, width, height))}
}

// Bounds returns the bounds of the canvas as a box, to use as the
// bounds of a manager.
func (c *Canvas) Bounds() math32.Box2 {
	return math32.B2FromRect(c.Image.Bounds())
}

func (c *Canvas) PushClip(region math32.Box2) {
	c.clips = append(c.clips, c.clip().Intersect(region.ToRect()))
}

func (c *Canvas) PopClip() {
	if len(c.clips) > 0 {
		c.clips = c.clips[:len(c.clips)-1]
	}
}

func (c *Canvas) DPI() (x, y float32) {
	return c.DPIX, c.DPIY
}

// Clipped returns whether a clip is in effect.
func (c *Canvas) Clipped() bool {
	return len(c.clips) > 0
}

// clip returns the rectangle drawing is limited to.
func (c *Canvas) clip() image.Rectangle {
	if len(c.clips) == 0 {
		return c.Image.Bounds()
	}
	return c.clips[len(c.clips)-1]
}

// Fill fills the area with the color, blending it over what is
// already drawn, within the current clip.
func (c *Canvas) Fill(area math32.Box2, clr color.Color) {
	r := c.clip().Intersect(area.ToRect())
	if r.Empty() {
		return
	}
	draw.Draw(c.Image, r, image.NewUniform(clr), image.Point{}, draw.Over)
}

// Clear makes the area transparent, within the current clip.
func (c *Canvas) Clear(area math32.Box2) {
	r := c.clip().Intersect(area.ToRect())
	if r.Empty() {
		return
	}
	draw.Draw(c.Image, r, image.Transparent, image.Point{}, draw.Src)
}
