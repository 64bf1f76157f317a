// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package display provides the surfaces that views draw rasters onto.
package display

import (
	"image"

	"cogentcore.org/imageview/geom"
)

// Display is a surface that views draw onto. A display keeps a
// framebuffer and a saved background; a view restores the background
// under its rect with Load before drawing its new content.
type Display interface {

	// Bounds returns the rect of the whole display.
	Bounds() geom.Rect

	// Save snapshots the current framebuffer as the background.
	Save() error

	// Load restores the saved background within the given rect.
	Load(r geom.Rect) error

	// DrawImage blends the given raster onto the framebuffer with its
	// top-left corner at the given point, converting it to the color
	// space of the display. Parts outside of the display are clipped.
	DrawImage(img *image.NRGBA, at geom.Point) error

	// Flush pushes the framebuffer to the underlying device.
	Flush() error
}
