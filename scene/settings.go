// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"cogentcore.org/retained/base/iox/tomlx"
	"cogentcore.org/retained/units"
)

// AllSettings are all of the settings of the scene package.
var AllSettings = []Settings{DisplaySettings, DebugSettings}

// Settings is the interface that describes the functionality common
// to all settings data types.
type Settings interface {

	// Label returns the label text for the settings.
	Label() string

	// Filename returns the full filename/filepath at which the settings are stored.
	Filename() string

	// Defaults sets the default values for all of the settings.
	Defaults()

	// Apply does anything necessary to apply the settings.
	Apply()
}

// SettingsBase contains base settings logic that other settings data types can extend.
type SettingsBase struct {

	// Name is the name of the settings.
	Name string `toml:"-"`

	// File is the filename/filepath at which the settings are stored relative to [SettingsDir].
	File string `toml:"-"`
}

// Label returns the label text for the settings.
func (sb *SettingsBase) Label() string {
	return sb.Name
}

// Filename returns the full filename/filepath at which the settings are stored.
func (sb *SettingsBase) Filename() string {
	if filepath.IsAbs(sb.File) {
		return sb.File
	}
	return filepath.Join(SettingsDir(), sb.File)
}

// Defaults does nothing by default and can be extended by other settings data types.
func (sb *SettingsBase) Defaults() {}

// Apply does nothing by default and can be extended by other settings data types.
func (sb *SettingsBase) Apply() {}

// SettingsDir returns the directory holding the settings files:
// the RETAINED_SETTINGS environment variable if set, and otherwise
// a Retained directory in the user configuration directory.
func SettingsDir() string {
	if dir := os.Getenv("RETAINED_SETTINGS"); dir != "" {
		return dir
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = os.TempDir()
	}
	return filepath.Join(dir, "Retained")
}

// OpenSettings opens the given settings from their [Settings.Filename].
func OpenSettings(se Settings) error {
	return tomlx.Open(se, se.Filename())
}

// SaveSettings saves the given settings to their [Settings.Filename],
// creating the directory as needed.
func SaveSettings(se Settings) error {
	fnm := se.Filename()
	if err := os.MkdirAll(filepath.Dir(fnm), 0755); err != nil {
		return err
	}
	return tomlx.Save(se, fnm)
}

// LoadSettings sets the defaults of, opens, and applies the given settings.
// It is not an error for the settings file to not exist.
func LoadSettings(se Settings) error {
	se.Defaults()
	err := OpenSettings(se)
	// we always apply the settings even if we can't open them
	// to apply at least the default values
	se.Apply()
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

// LoadAllSettings loads all of [AllSettings].
func LoadAllSettings() error {
	var errs []error
	for _, se := range AllSettings {
		if err := LoadSettings(se); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// DisplaySettings are the currently active display settings.
var DisplaySettings = &DisplaySettingsData{
	SettingsBase: SettingsBase{
		Name: "Display",
		File: "display-settings.toml",
	},
	DPI: units.PxPerInch,
}

// DisplaySettingsData is the data type for display settings.
type DisplaySettingsData struct {
	SettingsBase

	// DPI is the dots per inch used on both axes when a host
	// does not report its own.
	DPI float32
}

func (ds *DisplaySettingsData) Defaults() {
	ds.DPI = units.PxPerInch
}

// DebugSettings are the currently active debugging settings.
var DebugSettings = &DebugSettingsData{
	SettingsBase: SettingsBase{
		Name: "Debug",
		File: "debug-settings.toml",
	},
}

// DebugSettingsData is the data type for debugging settings.
type DebugSettingsData struct {
	SettingsBase

	// Log every update run or queued by the update engine
	UpdateTrace bool

	// Log every element arrangement
	ArrangeTrace bool

	// Log every element draw
	DrawTrace bool

	// Log every input transition and notification
	InputTrace bool
}

func (db *DebugSettingsData) Defaults() {
	db.UpdateTrace = false
	db.ArrangeTrace = false
	db.DrawTrace = false
	db.InputTrace = false
}
