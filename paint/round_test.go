// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package paint

import (
	"image"
	"testing"

	"cogentcore.org/imageview/base/iox/imagex"
	"github.com/stretchr/testify/assert"
)

func TestClampRadius(t *testing.T) {
	assert.Equal(t, 20, ClampRadius(1000, image.Pt(40, 40)))
	assert.Equal(t, 5, ClampRadius(5, image.Pt(40, 40)))
	assert.Equal(t, 7, ClampRadius(100, image.Pt(40, 15)))
	assert.Equal(t, 0, ClampRadius(-3, image.Pt(40, 40)))
	assert.Equal(t, 0, ClampRadius(8, image.Pt(1, 40)))
}

func TestRoundClampEquivalence(t *testing.T) {
	for _, sz := range []image.Point{{40, 40}, {31, 12}, {9, 64}} {
		half := min(sz.X, sz.Y) / 2
		want := imagex.Uniform(red, sz.X, sz.Y)
		Round(want, half)
		for _, radius := range []int{half, half + 1, 1000} {
			got := imagex.Uniform(red, sz.X, sz.Y)
			Round(got, radius)
			assert.Equal(t, want.Pix, got.Pix, "size %v radius %d", sz, radius)
		}
	}
}

func TestRoundCorners(t *testing.T) {
	img := imagex.Uniform(red, 40, 40)
	Round(img, 1000)

	for _, p := range []image.Point{{0, 0}, {39, 0}, {0, 39}, {39, 39}, {5, 1}, {34, 38}} {
		c := img.NRGBAAt(p.X, p.Y)
		assert.Equal(t, uint8(0), c.A, "alpha at %v", p)
		assert.Equal(t, uint8(255), c.R, "red at %v", p)
	}
	for _, p := range []image.Point{{19, 19}, {20, 0}, {0, 20}, {39, 20}, {20, 39}, {19, 0}, {6, 6}} {
		assert.Equal(t, red, img.NRGBAAt(p.X, p.Y), "pixel at %v", p)
	}
}

func TestRoundNoop(t *testing.T) {
	img := imagex.Uniform(red, 10, 10)
	want := append([]uint8(nil), img.Pix...)
	Round(img, 0)
	assert.Equal(t, want, img.Pix)
	Round(img, -4)
	assert.Equal(t, want, img.Pix)
	Round(nil, 3)

	thin := imagex.Uniform(red, 1, 30)
	Round(thin, 10)
	assert.Equal(t, red, thin.NRGBAAt(0, 0))
}

func TestRoundSmallRadius(t *testing.T) {
	img := imagex.Uniform(red, 20, 10)
	Round(img, 2)
	assert.Equal(t, uint8(0), img.NRGBAAt(0, 0).A)
	assert.Equal(t, uint8(255), img.NRGBAAt(1, 0).A)
	assert.Equal(t, uint8(255), img.NRGBAAt(0, 1).A)
	assert.Equal(t, uint8(0), img.NRGBAAt(19, 9).A)
	assert.Equal(t, uint8(255), img.NRGBAAt(2, 2).A)
}
