// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package paint

import (
	"errors"
	"fmt"
	"image"

	"cogentcore.org/imageview/base/iox/imagex"
	"github.com/anthonynsimon/bild/transform"
	"github.com/nfnt/resize"
	"golang.org/x/image/draw"
)

// ErrInvalidDimension is returned when a source or target raster
// has a zero or negative width or height where a size is required.
var ErrInvalidDimension = errors.New("invalid image dimension")

// ResizeError is returned by [Resize] when a raster cannot be resampled.
type ResizeError struct {
	From, To image.Point
	Err      error
}

func (e *ResizeError) Error() string {
	return fmt.Sprintf("paint: cannot resize %dx%d to %dx%d: %v", e.From.X, e.From.Y, e.To.X, e.To.Y, e.Err)
}

func (e *ResizeError) Unwrap() error {
	return e.Err
}

// Resizer is a resampling primitive that produces a raster of
// exactly w x h from the given source.
type Resizer interface {
	Resize(src image.Image, w, h int) (*image.NRGBA, error)
}

// BildResizer resizes using [transform.Resize].
// A nil Filter uses the bilinear [transform.Linear] filter.
// It is a pointer because the zero [transform.ResampleFilter]
// is [transform.NearestNeighbor].
type BildResizer struct {
	Filter *transform.ResampleFilter
}

func (r BildResizer) Resize(src image.Image, w, h int) (*image.NRGBA, error) {
	f := transform.Linear
	if r.Filter != nil {
		f = *r.Filter
	}
	return imagex.AsNRGBA(transform.Resize(src, w, h, f)), nil
}

// DrawResizer resizes using a [draw.Interpolator].
// The zero value uses [draw.BiLinear].
type DrawResizer struct {
	Interpolator draw.Interpolator
}

func (r DrawResizer) Resize(src image.Image, w, h int) (*image.NRGBA, error) {
	in := r.Interpolator
	if in == nil {
		in = draw.BiLinear
	}
	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	in.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst, nil
}

// NfntResizer resizes using [resize.Resize] with bilinear interpolation.
type NfntResizer struct{}

func (NfntResizer) Resize(src image.Image, w, h int) (*image.NRGBA, error) {
	return imagex.AsNRGBA(resize.Resize(uint(w), uint(h), src, resize.Bilinear)), nil
}

// DefaultResizer is the [Resizer] used when none is specified.
var DefaultResizer Resizer = BildResizer{}

// ResizerFor returns the [Resizer] with the given name:
// "bild" (the default, also for ""), "xdraw", or "nfnt".
func ResizerFor(name string) (Resizer, error) {
	switch name {
	case "", "bild":
		return BildResizer{}, nil
	case "xdraw":
		return DrawResizer{}, nil
	case "nfnt":
		return NfntResizer{}, nil
	}
	return nil, fmt.Errorf("paint.ResizerFor: unknown resizer %q", name)
}

// Resize resamples src to exactly w x h using the given resizer
// ([DefaultResizer] if nil). Any failure, including non-positive
// source or target sizes, is returned as a [*ResizeError].
func Resize(r Resizer, src image.Image, w, h int) (*image.NRGBA, error) {
	if r == nil {
		r = DefaultResizer
	}
	from := src.Bounds().Size()
	to := image.Pt(w, h)
	if w <= 0 || h <= 0 || from.X <= 0 || from.Y <= 0 {
		return nil, &ResizeError{From: from, To: to, Err: ErrInvalidDimension}
	}
	dst, err := r.Resize(src, w, h)
	if err != nil {
		return nil, &ResizeError{From: from, To: to, Err: err}
	}
	if dst == nil || dst.Bounds().Size() != to {
		return nil, &ResizeError{From: from, To: to, Err: errors.New("resizer returned a raster of the wrong size")}
	}
	return dst, nil
}
