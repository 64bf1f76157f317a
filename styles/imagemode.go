// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package styles

import (
	"fmt"
	"strings"
)

// ImageModes are the different ways in which an image
// can be fit into the rect of the widget displaying it.
type ImageModes int32

const (
	// ImageRaw indicates that the image will not be resized.
	ImageRaw ImageModes = iota

	// ImageCover indicates that the image will fill the entire rect.
	// Despite the name, it stretches to the exact rect size
	// rather than clipping to keep the aspect ratio.
	ImageCover

	// ImageContain indicates that the image will resize as large as
	// possible while fully fitting within the rect and maintaining
	// its aspect ratio. Therefore, it may not fill the entire rect.
	ImageContain

	imageModesN
)

var imageModesNames = [...]string{"raw", "cover", "contain"}

// ImageModesValues returns all possible values for the type ImageModes.
func ImageModesValues() []ImageModes {
	return []ImageModes{ImageRaw, ImageCover, ImageContain}
}

// String returns the lower-case name of the image mode.
func (i ImageModes) String() string {
	if i < 0 || i >= imageModesN {
		return fmt.Sprintf("ImageModes(%d)", int32(i))
	}
	return imageModesNames[i]
}

// SetString sets the image mode from its name, ignoring case.
func (i *ImageModes) SetString(s string) error {
	for n, nm := range imageModesNames {
		if strings.EqualFold(nm, s) {
			*i = ImageModes(n)
			return nil
		}
	}
	return fmt.Errorf("%q is not a valid value for type ImageModes", s)
}

// MarshalText implements the [encoding.TextMarshaler] interface.
func (i ImageModes) MarshalText() ([]byte, error) {
	return []byte(i.String()), nil
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
func (i *ImageModes) UnmarshalText(text []byte) error {
	return i.SetString(string(text))
}
