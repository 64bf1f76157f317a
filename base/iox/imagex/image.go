// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package imagex

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

// CloneAsNRGBA returns a non-premultiplied RGBA copy of the supplied image,
// with its bounds moved to start at (0, 0).
func CloneAsNRGBA(src image.Image) *image.NRGBA {
	if src == nil {
		return nil
	}
	bounds := src.Bounds()
	img := image.NewNRGBA(image.Rectangle{Max: bounds.Size()})
	draw.Draw(img, img.Bounds(), src, bounds.Min, draw.Src)
	return img
}

// AsNRGBA returns the image as an NRGBA: if it already is one whose bounds
// start at (0, 0), then it returns that image directly.
// Otherwise it returns a clone.
func AsNRGBA(src image.Image) *image.NRGBA {
	if src == nil {
		return nil
	}
	if nrgba, ok := src.(*image.NRGBA); ok && nrgba.Rect.Min == (image.Point{}) {
		return nrgba
	}
	return CloneAsNRGBA(src)
}

// Uniform returns a new w x h NRGBA image filled completely with the given color.
func Uniform(c color.Color, w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
	return img
}
