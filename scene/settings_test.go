// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettingsSaveLoad(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("RETAINED_SETTINGS", dir)
	assert.Equal(t, dir, SettingsDir())

	ds := &DisplaySettingsData{SettingsBase: SettingsBase{Name: "Display", File: "display.toml"}}
	assert.Equal(t, filepath.Join(dir, "display.toml"), ds.Filename())
	assert.Equal(t, "Display", ds.Label())

	require.NoError(t, LoadSettings(ds), "missing file is not an error")
	assert.Equal(t, float32(96), ds.DPI)

	ds.DPI = 144
	require.NoError(t, SaveSettings(ds))
	ds.DPI = 0
	require.NoError(t, LoadSettings(ds))
	assert.Equal(t, float32(144), ds.DPI)

	require.NoError(t, os.WriteFile(ds.Filename(), []byte("not toml at all"), 0644))
	assert.Error(t, LoadSettings(ds))
	assert.Equal(t, float32(96), ds.DPI, "defaults are kept on error")
}

func TestDebugSettingsSaveLoad(t *testing.T) {
	dir := t.TempDir()
	db := &DebugSettingsData{SettingsBase: SettingsBase{Name: "Debug", File: filepath.Join(dir, "sub", "debug.toml")}}
	db.UpdateTrace = true
	db.InputTrace = true
	require.NoError(t, SaveSettings(db))

	db.Defaults()
	assert.False(t, db.UpdateTrace)
	require.NoError(t, OpenSettings(db))
	assert.True(t, db.UpdateTrace)
	assert.True(t, db.InputTrace)
	assert.False(t, db.DrawTrace)
}

func TestManagerFallbackDPI(t *testing.T) {
	old := DisplaySettings.DPI
	t.Cleanup(func() { DisplaySettings.DPI = old })
	DisplaySettings.DPI = 120
	m := NewManager(HostFuncs{})
	assert.Equal(t, float32(120), m.Units().DPIX)
	assert.Equal(t, float32(120), m.Units().DPIY)
}

func TestManagerOwnSettings(t *testing.T) {
	ds := &DisplaySettingsData{DPI: 200}
	db := &DebugSettingsData{UpdateTrace: true}
	m := NewManager(HostFuncs{}).SetDisplaySettings(ds).SetDebugSettings(db)
	assert.Equal(t, float32(200), m.Units().DPIX)
	assert.Equal(t, float32(200), m.Units().DPIY)
	assert.Same(t, db, m.DebugSettings())
	assert.Same(t, ds, m.DisplaySettings())

	other := NewManager(HostFuncs{})
	assert.Same(t, DisplaySettings, other.DisplaySettings())
	assert.Same(t, DebugSettings, other.DebugSettings())
	assert.Equal(t, DisplaySettings.DPI, other.Units().DPIX)
	assert.False(t, DebugSettings.UpdateTrace)

	l := m.CreateLayerAbove(nil)
	c := NewControl()
	assert.Same(t, DebugSettings, c.debugSettings(), "no manager yet")
	l.AddChild(c)
	assert.Same(t, db, c.debugSettings())
}
