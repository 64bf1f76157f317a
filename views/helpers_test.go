// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package views

import (
	"bytes"
	"image"
	"image/color"
	"io/fs"
	"testing"
	"testing/fstest"

	"cogentcore.org/imageview/base/errors"
	"cogentcore.org/imageview/base/iox/imagex"
	"cogentcore.org/imageview/display"
	"cogentcore.org/imageview/geom"
	"cogentcore.org/imageview/styles"
	"github.com/stretchr/testify/require"
)

var (
	red   = color.NRGBA{255, 0, 0, 255}
	green = color.NRGBA{0, 255, 0, 255}
	black = color.RGBA{0, 0, 0, 255}
)

// countingFS is a filesystem of generated png files
// that counts how many times each file is opened.
type countingFS struct {
	fstest.MapFS
	opens map[string]int
}

func newCountingFS() *countingFS {
	return &countingFS{MapFS: fstest.MapFS{}, opens: map[string]int{}}
}

func (c *countingFS) Open(name string) (fs.File, error) {
	c.opens[name]++
	return c.MapFS.Open(name)
}

// addPNG adds a w x h png of the given color to the filesystem.
func (c *countingFS) addPNG(t *testing.T, name string, clr color.NRGBA, w, h int) {
	t.Helper()
	var buf bytes.Buffer
	if errors.Test(t, imagex.Write(imagex.Uniform(clr, w, h), &buf, imagex.PNG)) != nil {
		t.FailNow()
	}
	c.MapFS[name] = &fstest.MapFile{Data: buf.Bytes()}
}

func newDisplay() *display.Memory {
	return display.NewMemory(200, 200, display.RGBA, black)
}

// failingDisplay is a display whose writes fail.
type failingDisplay struct {
	*display.Memory
	failLoad bool
}

func (f *failingDisplay) Load(r geom.Rect) error {
	if f.failLoad {
		return errors.New("framebuffer unavailable")
	}
	return f.Memory.Load(r)
}

func (f *failingDisplay) DrawImage(img *image.NRGBA, at geom.Point) error {
	return errors.New("framebuffer write failed")
}

type failingResizer struct{}

func (failingResizer) Resize(src image.Image, w, h int) (*image.NRGBA, error) {
	return nil, errors.New("incompatible pixel format")
}

func assertUniform(t *testing.T, img image.Image, r image.Rectangle, c color.NRGBA) {
	t.Helper()
	want := color.RGBAModel.Convert(c).(color.RGBA)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			got := color.RGBAModel.Convert(img.At(x, y)).(color.RGBA)
			if !imagex.CompareColors(got, want, 2) {
				t.Errorf("expected %v at (%d, %d), but got %v", want, x, y, got)
				return
			}
		}
	}
}

func drawView(t *testing.T, v View, d display.Display) {
	t.Helper()
	ok, err := v.Draw(d, styles.NewStylesheet())
	require.NoError(t, err)
	require.True(t, ok)
}

func toNRGBA(c color.RGBA) color.NRGBA {
	return color.NRGBAModel.Convert(c).(color.NRGBA)
}
