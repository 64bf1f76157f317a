// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package display

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// ColorSpaces are the pixel formats that a display can show.
type ColorSpaces int32

const (
	// RGBA shows colors as they are.
	RGBA ColorSpaces = iota

	// RGB565 quantizes colors to 5 bits of red, 6 of green,
	// and 5 of blue, as on 16-bit framebuffers.
	RGB565

	// Gray shows the CIE L* lightness of colors, as on e-ink panels.
	Gray

	colorSpacesN
)

var colorSpacesNames = [...]string{"rgba", "rgb565", "gray"}

// ColorSpacesValues returns all possible values for the type ColorSpaces.
func ColorSpacesValues() []ColorSpaces {
	return []ColorSpaces{RGBA, RGB565, Gray}
}

func (c ColorSpaces) String() string {
	if c < 0 || c >= colorSpacesN {
		return fmt.Sprintf("ColorSpaces(%d)", int32(c))
	}
	return colorSpacesNames[c]
}

// SetString sets the color space from its name, ignoring case.
func (c *ColorSpaces) SetString(s string) error {
	for i, nm := range colorSpacesNames {
		if strings.EqualFold(nm, s) {
			*c = ColorSpaces(i)
			return nil
		}
	}
	return fmt.Errorf("%q is not a valid value for type ColorSpaces", s)
}

// MarshalText implements the [encoding.TextMarshaler] interface.
func (c ColorSpaces) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
func (c *ColorSpaces) UnmarshalText(text []byte) error {
	return c.SetString(string(text))
}

// Convert returns the given opaque color as shown in the color space.
func (c ColorSpaces) Convert(clr color.RGBA) color.RGBA {
	switch c {
	case RGB565:
		return color.RGBA{expand(clr.R>>3, 5), expand(clr.G>>2, 6), expand(clr.B>>3, 5), clr.A}
	case Gray:
		l, _, _ := toColorful(clr).Lab()
		g, _, _ := colorful.Lab(l, 0, 0).Clamped().RGB255()
		return color.RGBA{g, g, g, clr.A}
	}
	return clr
}

// expand scales a value of the given bit depth back to 8 bits.
func expand(v uint8, bits uint) uint8 {
	return v<<(8-bits) | v>>(2*bits-8)
}

func toColorful(c color.RGBA) colorful.Color {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}

// Hex returns the hex code of the given color, ignoring alpha.
func Hex(c color.RGBA) string {
	return toColorful(c).Hex()
}
