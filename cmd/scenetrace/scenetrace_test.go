// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"image/color"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"cogentcore.org/retained/raster"
	"cogentcore.org/retained/scene"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const buttonSlider = `
size: [100, 60]
layers:
  - name: base
    color: "#ffffff"
    opaque: [0, 0, 100, 60]
    elements:
      - name: ok
        kind: button
        box: [10, 10, 40, 30]
        color: "#3366cc"
      - name: vol
        kind: slider
        box: [50, 10, 90, 20]
        step: 0.25
        color: "#cccccc"
steps:
  - point: {id: 1, at: [20, 20]}
  - down: 1
  - up: 1
  - point: {id: 1, at: [80, 15]}
  - down: 1
  - up: 1
  - hide: ok
  - snapshot: snap.png
`

func play(t *testing.T, src string) (*player, []string) {
	doc, err := parseDocument([]byte(src))
	require.NoError(t, err)
	var out bytes.Buffer
	p, err := newPlayer(doc, &out)
	require.NoError(t, err)
	p.dir = t.TempDir()
	require.NoError(t, p.run())
	return p, strings.Split(strings.TrimSpace(out.String()), "\n")
}

func TestPlay(t *testing.T) {
	p, lines := play(t, buttonSlider)
	want := []string{
		"draw base",
		"draw ok",
		"draw vol",
		"present (0, 0, 100, 60)",
		// enter
		"draw base (10, 10, 40, 30)",
		"draw ok (10, 10, 40, 30)",
		"present (10, 10, 40, 30)",
		// push
		"draw base (10, 10, 40, 30)",
		"draw ok (10, 10, 40, 30)",
		"present (10, 10, 40, 30)",
		// release
		"click ok",
		"draw base (10, 10, 40, 30)",
		"draw ok (10, 10, 40, 30)",
		"present (10, 10, 40, 30)",
		// leave ok, enter vol
		"draw base (10, 10, 40, 30)",
		"draw ok (10, 10, 40, 30)",
		"draw base (50, 10, 90, 20)",
		"draw vol (50, 10, 90, 20)",
		"present (10, 10, 90, 30)",
		// push
		"change vol 0.75",
		"draw base (50, 10, 90, 20)",
		"draw vol (50, 10, 90, 20)",
		"present (50, 10, 90, 20)",
		// release
		"draw base (50, 10, 90, 20)",
		"draw vol (50, 10, 90, 20)",
		"present (50, 10, 90, 20)",
		// hide
		"draw base (10, 10, 40, 30)",
		"present (10, 10, 40, 30)",
	}
	assert.Equal(t, want, lines)

	im := p.canvas.Image
	assert.Equal(t, color.RGBA{255, 255, 255, 255}, im.RGBAAt(20, 20), "hidden button")
	assert.Equal(t, color.RGBA{0xcc, 0xcc, 0xcc, 0xff}, im.RGBAAt(55, 15))
	assert.Equal(t, color.RGBA{255, 255, 255, 255}, im.RGBAAt(5, 5))

	snap, err := raster.Open(filepath.Join(p.dir, "snap.png"))
	require.NoError(t, err)
	assert.Equal(t, im.Bounds(), snap.Bounds())
}

func TestPlayClips(t *testing.T) {
	doc, err := parseDocument([]byte(`
size: [50, 50]
layers:
  - name: base
    elements:
      - name: panel
        box: [10, 10, 40, 40]
        clip: true
        children:
          - name: kid
            box: [0, 0, 50, 50]
            color: "#ff0000"
`))
	require.NoError(t, err)
	var out bytes.Buffer
	p, err := newPlayer(doc, &out)
	require.NoError(t, err)
	p.clips = true
	require.NoError(t, p.run())
	assert.Equal(t, []string{
		"clip (0, 0, 50, 50)",
		"draw base",
		"unclip",
		"clip (10, 10, 40, 40)",
		"draw panel",
		"draw kid",
		"unclip",
		"clip (0, 0, 50, 50)",
		"unclip",
		"present (0, 0, 50, 50)",
	}, strings.Split(strings.TrimSpace(out.String()), "\n"))
	assert.Equal(t, color.RGBA{255, 0, 0, 255}, p.canvas.Image.RGBAAt(10, 10))
	assert.Equal(t, color.RGBA{}, p.canvas.Image.RGBAAt(5, 5), "kid is clipped")
}

func TestPlayGridAndRemove(t *testing.T) {
	_, lines := play(t, `
size: [100, 100]
layers:
  - name: base
    elements:
      - name: grid
        kind: grid
        cols: 2
        gap: 10px
        box: [0, 0, 110, 50]
        children:
          - {name: a, kind: button}
          - {name: b, kind: button}
          - {name: c, kind: button}
  - name: top
steps:
  - point: {id: 2, at: [70, 10]}
  - down: 2
  - up: 2
  - remove: top
  - remove: a
`)
	assert.Contains(t, lines, "click b")
	assert.NotContains(t, lines, "click a")
	assert.Contains(t, lines, "draw top")
}

func TestDebugSettings(t *testing.T) {
	saved := *scene.DebugSettings
	defer func() { *scene.DebugSettings = saved }()
	scene.DebugSettings.UpdateTrace = true
	scene.DebugSettings.DrawTrace = false

	db, err := debugSettings(&debugFlags{DrawTrace: true})
	require.NoError(t, err)
	assert.True(t, db.DrawTrace)
	assert.True(t, db.UpdateTrace, "unset flags are left as they are")
	assert.False(t, scene.DebugSettings.DrawTrace)

	doc, err := parseDocument([]byte("size: [10, 10]\ndebug: {drawTrace: true}\n"))
	require.NoError(t, err)
	p, err := newPlayer(doc, io.Discard)
	require.NoError(t, err)
	require.NoError(t, p.run())
	assert.True(t, p.m.DebugSettings().DrawTrace)
	assert.NotSame(t, scene.DebugSettings, p.m.DebugSettings())
	assert.False(t, scene.DebugSettings.DrawTrace)
}

func TestDocumentErrors(t *testing.T) {
	for name, src := range map[string]string{
		"unknown field": "size: [10, 10]\nfoo: 1\n",
		"no size":       "layers: []\n",
		"empty":         "",
	} {
		_, err := parseDocument([]byte(src))
		assert.Error(t, err, name)
	}
	for name, src := range map[string]string{
		"bad color":      "size: [10, 10]\nlayers: [{name: l, color: blue}]\n",
		"bad box":        "size: [10, 10]\nlayers: [{name: l, elements: [{name: e, box: [1, 2]}]}]\n",
		"duplicate name": "size: [10, 10]\nlayers: [{name: l, elements: [{name: l}]}]\n",
		"unknown kind":   "size: [10, 10]\nlayers: [{name: l, elements: [{name: e, kind: dial}]}]\n",
		"bad range":      "size: [10, 10]\nlayers: [{name: l, elements: [{name: e, kind: knob, range: [1]}]}]\n",
	} {
		doc, err := parseDocument([]byte(src))
		require.NoError(t, err, name)
		_, err = newPlayer(doc, &bytes.Buffer{})
		assert.Error(t, err, name)
	}

	doc, err := parseDocument([]byte("size: [10, 10]\nsteps: [{hide: nothing}]\n"))
	require.NoError(t, err)
	p, err := newPlayer(doc, &bytes.Buffer{})
	require.NoError(t, err)
	assert.ErrorContains(t, p.run(), "step 1")
}

func TestPlayFile(t *testing.T) {
	dir := t.TempDir()
	fn := filepath.Join(dir, "scene.yaml")
	require.NoError(t, os.WriteFile(fn, []byte(buttonSlider), 0644))
	out := filepath.Join(dir, "final.bmp")
	var trace bytes.Buffer
	require.NoError(t, playFile(fn, &options{out: out}, &trace))
	assert.Contains(t, trace.String(), "click ok")
	_, err := os.Stat(filepath.Join(dir, "snap.png"))
	assert.NoError(t, err)
	im, err := raster.Open(out)
	require.NoError(t, err)
	assert.Equal(t, 100, im.Bounds().Dx())

	assert.Error(t, playFile(filepath.Join(dir, "missing.yaml"), &options{}, &trace))
}

func TestRootCommand(t *testing.T) {
	t.Setenv("RETAINED_SETTINGS", t.TempDir())
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"settings"})
	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "Display:")
	assert.Contains(t, out.String(), "debug-settings.toml")

	cmd = newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{})
	assert.Error(t, cmd.Execute(), "a document is required")
}
