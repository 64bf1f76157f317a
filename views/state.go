// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package views

import (
	"cogentcore.org/imageview/geom"
	"cogentcore.org/imageview/styles"
)

// ImageState is the serializable description of an [Image].
// The rendered raster is never part of it.
type ImageState struct {
	Rect         geom.Rect         `json:"rect" toml:"rect" yaml:"rect"`
	Path         string            `json:"path,omitempty" toml:"path,omitempty" yaml:"path,omitempty"`
	Mode         styles.ImageModes `json:"mode" toml:"mode" yaml:"mode"`
	BorderRadius int               `json:"border_radius,omitempty" toml:"border_radius,omitempty" yaml:"border_radius,omitempty"`
	Alignment    geom.Alignments   `json:"alignment" toml:"alignment" yaml:"alignment"`
}

// State returns the description of the image.
func (im *Image) State() ImageState {
	return ImageState{
		Rect:         im.rect,
		Path:         im.path,
		Mode:         im.mode,
		BorderRadius: im.borderRadius,
		Alignment:    im.alignment,
	}
}

// NewImageFromState returns a new dirty image with an empty cache
// matching the given description.
func NewImageFromState(st ImageState) *Image {
	return NewImage(st.Rect, st.Path, st.Mode).
		SetBorderRadius(st.BorderRadius).
		SetAlignment(st.Alignment)
}
