// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package views

import (
	"image"
	"testing"

	"cogentcore.org/imageview/geom"
	"cogentcore.org/imageview/styles"
	"github.com/stretchr/testify/assert"
)

func TestImageCache(t *testing.T) {
	computed := 0
	compute := func() *image.NRGBA {
		computed++
		return image.NewNRGBA(image.Rect(0, 0, 1, 1))
	}
	key := cacheKey{path: "a.png", mode: styles.ImageContain, size: image.Pt(10, 10)}

	var c imageCache
	first := c.get(key, CacheByPath, compute)
	assert.Same(t, first, c.get(key, CacheByPath, compute))
	assert.Equal(t, 1, computed)

	changed := key
	changed.mode = styles.ImageCover
	changed.radius = 4
	changed.align = geom.Right
	changed.size = image.Pt(20, 20)
	assert.Same(t, first, c.get(changed, CacheByPath, compute))
	assert.Equal(t, 1, computed)

	second := c.get(changed, CacheByRender, compute)
	assert.NotSame(t, first, second)
	assert.Equal(t, 2, computed)
	assert.Same(t, second, c.get(changed, CacheByRender, compute))

	changed.path = "b.png"
	c.get(changed, CacheByPath, compute)
	assert.Equal(t, 3, computed)

	c.reset()
	assert.Nil(t, c.img)
	c.get(changed, CacheByPath, compute)
	assert.Equal(t, 4, computed)
}

func TestImageCacheNil(t *testing.T) {
	computed := 0
	compute := func() *image.NRGBA {
		computed++
		return nil
	}
	var c imageCache
	key := cacheKey{path: "missing.png"}
	for range 3 {
		assert.Nil(t, c.get(key, CacheByPath, compute))
	}
	assert.Equal(t, 1, computed)
}

func TestCachePolicies(t *testing.T) {
	var p CachePolicies
	assert.NoError(t, p.SetString("Render"))
	assert.Equal(t, CacheByRender, p)
	assert.Equal(t, "render", p.String())
	assert.Error(t, p.UnmarshalText([]byte("always")))
	assert.Equal(t, "CachePolicies(7)", CachePolicies(7).String())
	b, err := CacheByPath.MarshalText()
	assert.NoError(t, err)
	assert.Equal(t, "path", string(b))
}
