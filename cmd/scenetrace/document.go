// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"fmt"
	"image/color"
	"os"

	"cogentcore.org/retained/events"
	"cogentcore.org/retained/math32"
	"cogentcore.org/retained/units"
	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"
)

// document is a scene and the script of inputs played over it.
type document struct {

	// Size is the width and height of the surface in dots.
	Size [2]int `yaml:"size"`

	// DPI is reported by the host on both axes; zero uses the
	// display settings.
	DPI float32 `yaml:"dpi"`

	// Debug turns on debug traces in addition to the debug settings.
	Debug debugFlags `yaml:"debug"`

	// Layers are listed from bottom to top.
	Layers []layerDoc `yaml:"layers"`

	Steps []step `yaml:"steps"`
}

// debugFlags has the fields of [scene.DebugSettingsData] that a
// document can turn on.
type debugFlags struct {
	UpdateTrace  bool `yaml:"updateTrace"`
	ArrangeTrace bool `yaml:"arrangeTrace"`
	DrawTrace    bool `yaml:"drawTrace"`
	InputTrace   bool `yaml:"inputTrace"`
}

type layerDoc struct {
	Name string `yaml:"name"`

	// Color fills the layer; the bottom layer is cleared first.
	Color string `yaml:"color"`

	// Opaque is the opaque area of the layer, if any.
	Opaque []float32 `yaml:"opaque"`

	Hidden   bool         `yaml:"hidden"`
	Elements []elementDoc `yaml:"elements"`
}

// elementDoc describes one element. Kind is one of element, control,
// button, slider, scrollbar, knob and grid; the default is element.
type elementDoc struct {
	Name string `yaml:"name"`
	Kind string `yaml:"kind"`

	// Box is the bounds of the element in dots. Without one, the
	// element fills its parent.
	Box []float32 `yaml:"box"`

	Color    string `yaml:"color"`
	Clip     bool   `yaml:"clip"`
	Hidden   bool   `yaml:"hidden"`
	Disabled bool   `yaml:"disabled"`

	// Range is the minimum and maximum of a slider, scrollbar or knob.
	Range []float32 `yaml:"range"`

	// Step is the step of a slider or the page step of a scrollbar.
	Step float32 `yaml:"step"`

	// Visible is the visible percent of a scrollbar.
	Visible float32 `yaml:"visible"`

	// Vertical makes a slider vertical or a scrollbar horizontal
	// when false.
	Vertical *bool `yaml:"vertical"`

	// Cols and Gap lay out the cells of a grid.
	Cols int         `yaml:"cols"`
	Gap  units.Value `yaml:"gap"`

	Children []elementDoc `yaml:"children"`
}

// step is one action of the script. Exactly one field is set.
type step struct {
	Point    *pointStep      `yaml:"point"`
	Down     *events.InputID `yaml:"down"`
	Up       *events.InputID `yaml:"up"`
	Show     string          `yaml:"show"`
	Hide     string          `yaml:"hide"`
	Enable   string          `yaml:"enable"`
	Disable  string          `yaml:"disable"`
	Move     *moveStep       `yaml:"move"`
	Remove   string          `yaml:"remove"`
	Snapshot string          `yaml:"snapshot"`
}

type pointStep struct {
	ID events.InputID `yaml:"id"`
	At []float32      `yaml:"at"`
}

type moveStep struct {
	Name string    `yaml:"name"`
	Box  []float32 `yaml:"box"`
}

// parseDocument decodes a document, rejecting unknown fields.
func parseDocument(data []byte) (*document, error) {
	doc := &document{}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(doc); err != nil {
		return nil, fmt.Errorf("scenetrace: decoding document: %w", err)
	}
	if doc.Size[0] <= 0 || doc.Size[1] <= 0 {
		return nil, fmt.Errorf("scenetrace: size %v must be positive", doc.Size)
	}
	return doc, nil
}

// openDocument reads and decodes the document in the given file.
func openDocument(filename string) (*document, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	return parseDocument(data)
}

// toBox converts four numbers to a box.
func toBox(v []float32) (math32.Box2, error) {
	if len(v) != 4 {
		return math32.Box2{}, fmt.Errorf("scenetrace: box %v needs 4 numbers", v)
	}
	return math32.B2(v[0], v[1], v[2], v[3]), nil
}

// parseColor parses a hex color; an empty string is no color.
func parseColor(s string) (color.Color, error) {
	if s == "" {
		return nil, nil
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return nil, fmt.Errorf("scenetrace: color %q: %w", s, err)
	}
	return c, nil
}
