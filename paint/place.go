// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package paint

import (
	"image"

	"cogentcore.org/imageview/geom"
	"golang.org/x/image/draw"
)

// AlignOffset returns the x offset of content of width inner
// within a width of outer for the given alignment. The offset
// is 0 when the content is wider than the container.
func AlignOffset(align geom.Alignments, outer, inner int) int {
	free := max(outer-inner, 0)
	switch align {
	case geom.Center:
		return free / 2
	case geom.Right:
		return free
	}
	return 0
}

// Place returns a raster of exactly the size of the given rect with img
// drawn onto a transparent background at the x offset given by
// [AlignOffset] and a y offset of 0. Content outside the rect is clipped.
// If img already has the size of the rect, it is returned unchanged.
func Place(img *image.NRGBA, rect geom.Rect, align geom.Alignments) *image.NRGBA {
	if img == nil {
		return nil
	}
	b := img.Bounds()
	if b.Size() == rect.Size() {
		return img
	}
	bg := image.NewNRGBA(image.Rect(0, 0, rect.W, rect.H))
	x := AlignOffset(align, rect.W, b.Dx())
	// vertical align top
	dr := image.Rect(x, 0, x+b.Dx(), b.Dy())
	draw.Draw(bg, dr, img, b.Min, draw.Over)
	return bg
}
