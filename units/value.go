// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package units

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// Value and units, and converted value into raw pixels (dots in DPI)
type Value struct {

	// Value is the value in terms of the specified unit
	Value float32

	// Unit is the unit used for the value
	Unit Units
}

// New creates a new value with the given unit type
func New(val float32, un Units) Value {
	return Value{Value: val, Unit: un}
}

// Dot returns a new dot value:
// UnitDot = actual real display pixels
func Dot(val float32) Value {
	return Value{Value: val, Unit: UnitDot}
}

// Px returns a new px value:
// UnitPx = pixels -- 1px = 1/96th of 1in -- these are NOT raw display pixels
func Px(val float32) Value {
	return Value{Value: val, Unit: UnitPx}
}

// Dp returns a new dp value:
// UnitDp = density-independent pixels -- 1dp = 1/160th of 1in
func Dp(val float32) Value {
	return Value{Value: val, Unit: UnitDp}
}

// Pt returns a new pt value:
// UnitPt = points -- 1pt = 1/72th of 1in
func Pt(val float32) Value {
	return Value{Value: val, Unit: UnitPt}
}

// Pc returns a new pc value:
// UnitPc = picas -- 1pc = 1/6th of 1in
func Pc(val float32) Value {
	return Value{Value: val, Unit: UnitPc}
}

// In returns a new in value:
// UnitIn = inches
func In(val float32) Value {
	return Value{Value: val, Unit: UnitIn}
}

// Cm returns a new cm value:
// UnitCm = centimeters -- 1cm = 1in/2.54
func Cm(val float32) Value {
	return Value{Value: val, Unit: UnitCm}
}

// Mm returns a new mm value:
// UnitMm = millimeters -- 1mm = 1/10th of cm
func Mm(val float32) Value {
	return Value{Value: val, Unit: UnitMm}
}

// String implements the [fmt.Stringer] interface.
func (v Value) String() string {
	return fmt.Sprintf("%g%s", v.Value, v.Unit.String())
}

// ToDots converts the value to dots along the given DPI.
func (v Value) ToDots(dpi float32) float32 {
	if v.Unit == UnitDot {
		return v.Value
	}
	return v.Value * dpi / v.Unit.perInch()
}

// StringToValue converts a string to a value representation,
// such as "2in", "12.5px" or "40" (dots when no unit is given).
func StringToValue(str string) (Value, error) {
	str = strings.TrimSpace(str)
	i := strings.IndexFunc(str, func(r rune) bool {
		return unicode.IsLetter(r) || r == '%'
	})
	num, un := str, ""
	if i >= 0 {
		num, un = str[:i], str[i:]
	}
	var v Value
	f, err := strconv.ParseFloat(strings.TrimSpace(num), 32)
	if err != nil {
		return v, fmt.Errorf("units.StringToValue: invalid number in %q: %w", str, err)
	}
	v.Value = float32(f)
	if un != "" {
		if err := v.Unit.SetString(un); err != nil {
			return v, err
		}
	}
	return v, nil
}

// MarshalText implements the [encoding.TextMarshaler] interface.
func (v Value) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
func (v *Value) UnmarshalText(text []byte) error {
	nv, err := StringToValue(string(text))
	if err != nil {
		return err
	}
	*v = nv
	return nil
}
