// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package geom provides the integer layout geometry shared by
// views and displays.
package geom

import (
	"fmt"
	"image"
)

// Point is a position in display pixels.
type Point struct {
	X int `json:"x" toml:"x" yaml:"x"`
	Y int `json:"y" toml:"y" yaml:"y"`
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// Image returns the point as an [image.Point].
func (p Point) Image() image.Point {
	return image.Pt(p.X, p.Y)
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Rect is a layout rectangle: X and Y give its top-left position on the
// display, and W and H give both its size and the size of any raster
// rendered for it. W and H are never negative.
type Rect struct {
	X int `json:"x" toml:"x" yaml:"x"`
	Y int `json:"y" toml:"y" yaml:"y"`
	W int `json:"w" toml:"w" yaml:"w"`
	H int `json:"h" toml:"h" yaml:"h"`
}

// R is shorthand for Rect{X: x, Y: y, W: w, H: h}.
// Negative sizes are clamped to zero.
func R(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: max(w, 0), H: max(h, 0)}
}

// TopLeft returns the position of the rect.
func (r Rect) TopLeft() Point {
	return Point{X: r.X, Y: r.Y}
}

// Size returns the width and height of the rect.
func (r Rect) Size() image.Point {
	return image.Pt(r.W, r.H)
}

// Bounds returns the rect in absolute display coordinates.
func (r Rect) Bounds() image.Rectangle {
	return image.Rect(r.X, r.Y, r.X+r.W, r.Y+r.H)
}

// Empty returns whether the rect has no area.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Bottom returns the y coordinate just below the rect.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Union returns the smallest rect containing both r and o.
// An empty rect does not contribute.
func (r Rect) Union(o Rect) Rect {
	if r.Empty() {
		return o
	}
	if o.Empty() {
		return r
	}
	u := r.Bounds().Union(o.Bounds())
	return Rect{X: u.Min.X, Y: u.Min.Y, W: u.Dx(), H: u.Dy()}
}

func (r Rect) String() string {
	return fmt.Sprintf("%dx%d@(%d,%d)", r.W, r.H, r.X, r.Y)
}
