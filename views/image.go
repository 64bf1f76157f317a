// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package views

import (
	"context"
	"image"
	"io/fs"
	"log/slog"

	"cogentcore.org/imageview/base/iox/imagex"
	"cogentcore.org/imageview/display"
	"cogentcore.org/imageview/events"
	"cogentcore.org/imageview/geom"
	"cogentcore.org/imageview/paint"
	"cogentcore.org/imageview/styles"
)

// Image is a leaf view that displays an image file scaled into its rect.
//
// The image is decoded, scaled according to the mode, rounded, and
// placed on a transparent canvas of exactly the rect size the first
// time it is drawn; the result is cached. By default the cache is
// only cleared by setting a different path: later changes to the mode,
// border radius, alignment, or size have no visible effect until
// then (see [CachePolicies]). A failure to load is cached too, and the
// image then stays dirty on every draw without ever retrying.
type Image struct {
	rect         geom.Rect
	path         string
	cache        imageCache
	mode         styles.ImageModes
	borderRadius int
	alignment    geom.Alignments
	dirty        bool

	fsys        fs.FS
	resizer     paint.Resizer
	cachePolicy CachePolicies
}

var _ View = (*Image)(nil)

// NewImage returns a new image showing the file at the given path
// in the given rect. An empty path means no image.
func NewImage(rect geom.Rect, path string, mode styles.ImageModes) *Image {
	return &Image{
		rect:      rect,
		path:      path,
		mode:      mode,
		alignment: geom.Left,
		dirty:     true,
	}
}

// NewEmptyImage returns a new image with no path.
func NewEmptyImage(rect geom.Rect, mode styles.ImageModes) *Image {
	return NewImage(rect, "", mode)
}

// Path returns the path of the image file, or "" if there is none.
func (im *Image) Path() string { return im.path }

// Rect returns the layout rect of the image.
func (im *Image) Rect() geom.Rect { return im.rect }

// Mode returns the image mode.
func (im *Image) Mode() styles.ImageModes { return im.mode }

// BorderRadius returns the requested border radius.
func (im *Image) BorderRadius() int { return im.borderRadius }

// Alignment returns the horizontal alignment.
func (im *Image) Alignment() geom.Alignments { return im.alignment }

// CachePolicy returns the cache policy.
func (im *Image) CachePolicy() CachePolicies { return im.cachePolicy }

// SetPath sets the path of the image file; "" removes the image.
// A different path clears the cache and marks the image dirty;
// the same path does nothing, so a failed load is not retried.
func (im *Image) SetPath(path string) *Image {
	if path != im.path {
		im.cache.reset()
		im.dirty = true
		im.path = path
	}
	return im
}

// SetBorderRadius sets the border radius and marks the image dirty.
// It does not clear the cache.
func (im *Image) SetBorderRadius(radius int) *Image {
	im.borderRadius = radius
	im.dirty = true
	return im
}

// SetAlignment sets the horizontal alignment. It neither clears the
// cache nor marks the image dirty, except under [CacheByRender].
func (im *Image) SetAlignment(alignment geom.Alignments) *Image {
	if im.cachePolicy == CacheByRender && alignment != im.alignment {
		im.dirty = true
	}
	im.alignment = alignment
	return im
}

// SetMode sets the image mode. It neither clears the cache nor
// marks the image dirty, except under [CacheByRender].
func (im *Image) SetMode(mode styles.ImageModes) *Image {
	if im.cachePolicy == CacheByRender && mode != im.mode {
		im.dirty = true
	}
	im.mode = mode
	return im
}

// SetSize sets the size of the rect and marks the image dirty.
// It does not clear the cache.
func (im *Image) SetSize(w, h int) *Image {
	im.rect = geom.R(im.rect.X, im.rect.Y, w, h)
	im.dirty = true
	return im
}

// SetFS sets the filesystem that the path is opened in; nil means the
// operating system. It clears the cache and marks the image dirty.
func (im *Image) SetFS(fsys fs.FS) *Image {
	im.fsys = fsys
	im.cache.reset()
	im.dirty = true
	return im
}

// SetResizer sets the resizer used for scaling; nil means
// [paint.DefaultResizer]. It does not clear the cache.
func (im *Image) SetResizer(r paint.Resizer) *Image {
	im.resizer = r
	return im
}

// SetCachePolicy sets the cache policy.
func (im *Image) SetCachePolicy(p CachePolicies) *Image {
	im.cachePolicy = p
	return im
}

// Raster returns the cached raster without rendering it:
// nil if the image has not been rendered yet or failed to render.
func (im *Image) Raster() *image.NRGBA {
	return im.cache.img
}

// raster returns the cached raster, rendering it first if needed.
func (im *Image) raster() *image.NRGBA {
	key := cacheKey{
		path:   im.path,
		mode:   im.mode,
		radius: im.borderRadius,
		align:  im.alignment,
		size:   im.rect.Size(),
	}
	return im.cache.get(key, im.cachePolicy, im.render)
}

// render renders the raster, logging and returning nil on failure.
func (im *Image) render() *image.NRGBA {
	img, err := im.load()
	if err != nil {
		slog.Error("views.Image: failed to load image", "path", im.path, "err", err)
		return nil
	}
	return img
}

func (im *Image) load() (*image.NRGBA, error) {
	var src image.Image
	var err error
	if im.fsys != nil {
		src, _, err = imagex.OpenFS(im.fsys, im.path)
	} else {
		src, _, err = imagex.Open(im.path)
	}
	if err != nil {
		return nil, err
	}
	img, err := paint.Fit(im.resizer, src, im.mode, im.rect)
	if err != nil {
		return nil, err
	}
	if im.borderRadius != 0 {
		paint.Round(img, im.borderRadius)
	}
	return paint.Place(img, im.rect, im.alignment), nil
}

// Draw restores the display background under the rect and draws the
// raster on top of it, if there is one. Afterwards the image is clean,
// unless it has a path whose image failed to load.
func (im *Image) Draw(d display.Display, s *styles.Stylesheet) (bool, error) {
	var img *image.NRGBA
	if im.path != "" {
		img = im.raster()
	}
	loaded := img != nil

	if err := d.Load(im.rect); err != nil {
		return false, err
	}
	if img != nil {
		slog.Debug("views.Image: drawing image", "rect", im.rect)
		if err := d.DrawImage(img, im.rect.TopLeft()); err != nil {
			return false, err
		}
	}

	im.dirty = !loaded && im.path != ""
	return true, nil
}

func (im *Image) ShouldDraw() bool {
	return im.dirty
}

func (im *Image) SetShouldDraw() {
	im.dirty = true
}

func (im *Image) HandleKeyEvent(ctx context.Context, ev events.Key, cmds chan<- events.Command, bubble *[]events.Command) (bool, error) {
	return false, nil
}

func (im *Image) Children() []View {
	return nil
}

func (im *Image) BoundingBox(s *styles.Stylesheet) geom.Rect {
	return im.rect
}

// SetPosition moves the rect and marks the image dirty.
// It does not clear the cache.
func (im *Image) SetPosition(p geom.Point) {
	im.rect.X = p.X
	im.rect.Y = p.Y
	im.dirty = true
}
