// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package paint

import (
	"image"

	"github.com/chewxy/math32"
)

// ClampRadius returns the border radius actually used by [Round]
// for a raster of the given size: min(radius, w/2, h/2), never negative.
func ClampRadius(radius int, size image.Point) int {
	return max(0, min(radius, size.X/2, size.Y/2))
}

// Round makes the corners of the given image transparent outside of a
// circle with the given radius, clamped by [ClampRadius]. A pixel is
// outside when its center is farther than the radius from the center
// of the corner circle. Only the alpha channel of corner pixels changes.
func Round(img *image.NRGBA, radius int) {
	if img == nil {
		return
	}
	b := img.Bounds()
	r := ClampRadius(radius, b.Size())
	if r == 0 {
		return
	}
	rf := float32(r)
	for y := 0; y < r; y++ {
		dy := rf - (float32(y) + 0.5)
		for x := 0; x < r; x++ {
			dx := rf - (float32(x) + 0.5)
			if math32.Hypot(dx, dy) <= rf {
				continue
			}
			clearAlpha(img, b.Min.X+x, b.Min.Y+y)
			clearAlpha(img, b.Max.X-1-x, b.Min.Y+y)
			clearAlpha(img, b.Min.X+x, b.Max.Y-1-y)
			clearAlpha(img, b.Max.X-1-x, b.Max.Y-1-y)
		}
	}
}

func clearAlpha(img *image.NRGBA, x, y int) {
	img.Pix[img.PixOffset(x, y)+3] = 0
}
