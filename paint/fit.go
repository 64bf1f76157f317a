// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package paint

import (
	"fmt"
	"image"

	"cogentcore.org/imageview/base/iox/imagex"
	"cogentcore.org/imageview/geom"
	"cogentcore.org/imageview/styles"
)

// FitSize returns the size that a source image of size src should
// have in the given rect according to the given image mode, and
// whether that requires scaling:
//   - [styles.ImageRaw] always keeps the source size.
//   - [styles.ImageCover] stretches to exactly the rect size.
//   - [styles.ImageContain] fits within the rect keeping the source
//     aspect ratio, with at least one side equal to the rect's.
//
// Cover and contain do not scale a source that already has the
// rect size. Contain of a source with a zero side returns
// [ErrInvalidDimension]. All arithmetic is integer, rounding down.
func FitSize(mode styles.ImageModes, src image.Point, rect geom.Rect) (image.Point, bool, error) {
	size := rect.Size()
	switch mode {
	case styles.ImageRaw:
		return src, false, nil
	case styles.ImageCover:
		if src == size {
			return src, false, nil
		}
		return size, true, nil
	case styles.ImageContain:
		if src == size {
			return src, false, nil
		}
		if src.X <= 0 || src.Y <= 0 {
			return image.Point{}, false, fmt.Errorf("paint.FitSize: contain of %dx%d source: %w", src.X, src.Y, ErrInvalidDimension)
		}
		h := min(size.Y, size.X*src.Y/src.X)
		w := min(size.X, size.Y*src.X/src.Y)
		return image.Pt(w, h), true, nil
	}
	return image.Point{}, false, fmt.Errorf("paint.FitSize: invalid image mode %v", mode)
}

// Fit returns the given image resized according to the given image
// mode in the given rect (see [FitSize]), using the given resizer.
// When no scaling is needed, the result is src converted to NRGBA,
// which may be src itself.
func Fit(r Resizer, src image.Image, mode styles.ImageModes, rect geom.Rect) (*image.NRGBA, error) {
	size, scale, err := FitSize(mode, src.Bounds().Size(), rect)
	if err != nil {
		return nil, err
	}
	if !scale {
		return imagex.AsNRGBA(src), nil
	}
	return Resize(r, src, size.X, size.Y)
}
