// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package display

import (
	"errors"
	"image"
	"image/color"

	"cogentcore.org/imageview/geom"
	"golang.org/x/image/draw"
)

// Memory is a [Display] backed by an in-memory framebuffer.
// It is the base of the other displays and is used directly in tests.
type Memory struct {

	// Space is the color space of the framebuffer.
	Space ColorSpaces

	// Blits is the number of images drawn so far.
	Blits int

	// Loads is the number of background restores so far.
	Loads int

	fb *image.RGBA
	bg *image.RGBA
}

// NewMemory returns a new w x h [Memory] display in the given color space,
// with its framebuffer and background filled with the given color.
func NewMemory(w, h int, space ColorSpaces, background color.Color) *Memory {
	m := &Memory{Space: space}
	r := image.Rect(0, 0, max(w, 0), max(h, 0))
	m.fb = image.NewRGBA(r)
	m.bg = image.NewRGBA(r)
	bc := space.Convert(color.RGBAModel.Convert(background).(color.RGBA))
	bc.A = 255
	draw.Draw(m.fb, r, image.NewUniform(bc), image.Point{}, draw.Src)
	draw.Draw(m.bg, r, image.NewUniform(bc), image.Point{}, draw.Src)
	return m
}

func (m *Memory) Bounds() geom.Rect {
	return geom.R(0, 0, m.fb.Rect.Dx(), m.fb.Rect.Dy())
}

// Image returns the framebuffer.
func (m *Memory) Image() *image.RGBA {
	return m.fb
}

func (m *Memory) Save() error {
	copy(m.bg.Pix, m.fb.Pix)
	return nil
}

func (m *Memory) Load(r geom.Rect) error {
	dr := r.Bounds().Intersect(m.fb.Rect)
	draw.Draw(m.fb, dr, m.bg, dr.Min, draw.Src)
	m.Loads++
	return nil
}

func (m *Memory) DrawImage(img *image.NRGBA, at geom.Point) error {
	if img == nil {
		return errors.New("display.Memory.DrawImage: nil image")
	}
	b := img.Bounds()
	dr := image.Rectangle{Min: at.Image(), Max: at.Image().Add(b.Size())}
	draw.Draw(m.fb, dr, img, b.Min, draw.Over)
	m.convert(dr.Intersect(m.fb.Rect))
	m.Blits++
	return nil
}

func (m *Memory) Flush() error {
	return nil
}

// convert converts the framebuffer pixels within r to the color space.
func (m *Memory) convert(r image.Rectangle) {
	if m.Space == RGBA {
		return
	}
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			m.fb.SetRGBA(x, y, m.Space.Convert(m.fb.RGBAAt(x, y)))
		}
	}
}
