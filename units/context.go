// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package units

import "cogentcore.org/retained/math32"

// Context specifies everything about the current context necessary for converting
// the number into specific display-dependent pixels (dots). One context is
// held per independently rendered surface.
type Context struct {

	// DPIX is the horizontal dots per inch of the surface.
	DPIX float32

	// DPIY is the vertical dots per inch of the surface.
	DPIY float32
}

// Defaults sets the DPI of both axes to the standard 96.
func (uc *Context) Defaults() {
	uc.DPIX = PxPerInch
	uc.DPIY = PxPerInch
}

// Set sets the DPI of both axes.
func (uc *Context) Set(dpiX, dpiY float32) {
	uc.DPIX = dpiX
	uc.DPIY = dpiY
}

// DPI returns the dots per inch along the given dimension.
func (uc *Context) DPI(dim math32.Dims) float32 {
	if dim == math32.Y {
		return uc.DPIY
	}
	return uc.DPIX
}

// ToDots converts the given value into dots along the given dimension.
func (uc *Context) ToDots(v Value, dim math32.Dims) float32 {
	return v.ToDots(uc.DPI(dim))
}

// HDots converts the given horizontal value into dots using the X DPI.
func (uc *Context) HDots(v Value) float32 {
	return v.ToDots(uc.DPIX)
}

// VDots converts the given vertical value into dots using the Y DPI.
func (uc *Context) VDots(v Value) float32 {
	return v.ToDots(uc.DPIY)
}

// ToUnits converts the given number of dots along the given dimension
// into a value with the given unit.
func (uc *Context) ToUnits(dots float32, dim math32.Dims, un Units) Value {
	if un == UnitDot {
		return Dot(dots)
	}
	return New(dots*un.perInch()/uc.DPI(dim), un)
}
