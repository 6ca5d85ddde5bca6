// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

//go:generate core generate

// Dims is a list of vector dimension (component) names
type Dims int32 //enums:enum

const (
	// X is the horizontal dimension.
	X Dims = iota

	// Y is the vertical dimension.
	Y
)

// OtherDim returns the other dimension for 2D X,Y
func OtherDim(d Dims) Dims {
	switch d {
	case X:
		return Y
	default:
		return X
	}
}
