// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package views

import (
	"fmt"
	"image"
	"strings"

	"cogentcore.org/imageview/geom"
	"cogentcore.org/imageview/styles"
)

// CachePolicies determine which changes to an [Image]
// cause its rendered raster to be recomputed.
type CachePolicies int32

const (
	// CacheByPath recomputes the raster only when the path changes.
	// Changes to the mode, border radius, alignment, or size keep
	// showing the raster rendered with the old values.
	CacheByPath CachePolicies = iota

	// CacheByRender recomputes the raster whenever the path, mode,
	// border radius, alignment, or size differ from the values it
	// was rendered with.
	CacheByRender

	cachePoliciesN
)

var cachePoliciesNames = [...]string{"path", "render"}

func (c CachePolicies) String() string {
	if c < 0 || c >= cachePoliciesN {
		return fmt.Sprintf("CachePolicies(%d)", int32(c))
	}
	return cachePoliciesNames[c]
}

// SetString sets the cache policy from its name, ignoring case.
func (c *CachePolicies) SetString(s string) error {
	for i, nm := range cachePoliciesNames {
		if strings.EqualFold(nm, s) {
			*c = CachePolicies(i)
			return nil
		}
	}
	return fmt.Errorf("%q is not a valid value for type CachePolicies", s)
}

// MarshalText implements the [encoding.TextMarshaler] interface.
func (c CachePolicies) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
func (c *CachePolicies) UnmarshalText(text []byte) error {
	return c.SetString(string(text))
}

// cacheKey is everything a rendered raster depends on.
type cacheKey struct {
	path   string
	mode   styles.ImageModes
	radius int
	align  geom.Alignments
	size   image.Point
}

// imageCache holds at most one rendered raster, which may be nil
// when rendering failed. A failure is cached like a success.
type imageCache struct {
	valid bool
	key   cacheKey
	img   *image.NRGBA
}

// get returns the cached raster if it is valid for the given key under
// the given policy, and otherwise computes, stores, and returns it.
func (c *imageCache) get(key cacheKey, policy CachePolicies, compute func() *image.NRGBA) *image.NRGBA {
	if c.valid && c.matches(key, policy) {
		return c.img
	}
	c.img = compute()
	c.key = key
	c.valid = true
	return c.img
}

func (c *imageCache) matches(key cacheKey, policy CachePolicies) bool {
	if policy == CacheByRender {
		return c.key == key
	}
	return c.key.path == key.path
}

// reset clears the cache so that the next get recomputes.
func (c *imageCache) reset() {
	*c = imageCache{}
}
