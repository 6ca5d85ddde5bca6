// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package units supports the physical and device length units used to position
elements in the scene graph.

The unit is stored along with a value, and is converted into raw display pixels
("dots") with a [Context] that holds the horizontal and vertical DPI of the
surface. Horizontal lengths are converted with the X DPI and vertical lengths
with the Y DPI, so that surfaces with non-square pixels are laid out correctly.

'Dots' are used as term for underlying raw display pixels because "Pixel" and the px unit
are actually not conventionally used as raw display pixels in the current HiDPI
environment.  See https://developer.mozilla.org/en/docs/Web/CSS/length -- 1 px = 1/96 in
Also supporting dp = density-independent pixel = 1/160 in
*/
package units

//go:generate core generate

// standard conversion factors -- Px = DPI-independent pixel instead of actual "dot" raw pixel
const (
	PxPerInch = 96.0
	DpPerInch = 160.0
	MmPerInch = 25.4
	CmPerInch = 2.54
	PtPerInch = 72.0
	PcPerInch = 6.0
)

// Units is an enum that represents a unit (dot, px, in, etc)
type Units int32 //enums:enum -trim-prefix Unit -transform lower -accept-lower

const (
	// UnitDot = actual real display pixels
	UnitDot Units = iota

	// UnitPx = pixels -- 1px = 1/96th of 1in -- these are NOT raw display pixels
	UnitPx

	// UnitDp = density-independent pixels -- 1dp = 1/160th of 1in
	UnitDp

	// UnitPt = points -- 1pt = 1/72th of 1in
	UnitPt

	// UnitPc = picas -- 1pc = 1/6th of 1in
	UnitPc

	// UnitIn = inches
	UnitIn

	// UnitCm = centimeters -- 1cm = 1in/2.54
	UnitCm

	// UnitMm = millimeters -- 1mm = 1/10th of cm
	UnitMm
)

// perInch returns how many of the given unit make up one inch,
// or 0 for [UnitDot], which depends on the DPI.
func (u Units) perInch() float32 {
	switch u {
	case UnitPx:
		return PxPerInch
	case UnitDp:
		return DpPerInch
	case UnitPt:
		return PtPerInch
	case UnitPc:
		return PcPerInch
	case UnitIn:
		return 1
	case UnitCm:
		return CmPerInch
	case UnitMm:
		return MmPerInch
	}
	return 0
}
