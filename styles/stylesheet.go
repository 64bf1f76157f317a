// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package styles provides the image modes and the stylesheet
// shared by all views.
package styles

import (
	"fmt"
	"image/color"
	"path/filepath"
	"strings"

	"cogentcore.org/imageview/base/iox/tomlx"
	"cogentcore.org/imageview/base/iox/yamlx"
	"cogentcore.org/imageview/geom"
	"github.com/lucasb-eyer/go-colorful"
)

// Stylesheet contains the theme values passed to every view when
// it is drawn and laid out. The image fields are the defaults used
// for images created from a layout that does not set them, and for
// the image rendered by the imageview render command.
type Stylesheet struct {

	// Background is the hex color of the display background.
	Background string `json:"background" toml:"background" yaml:"background"`

	// Gap is the vertical space between the children of a column.
	Gap int `json:"gap" toml:"gap" yaml:"gap"`

	// Mode is the default image mode.
	Mode ImageModes `json:"mode" toml:"mode" yaml:"mode"`

	// Alignment is the default horizontal image alignment.
	Alignment geom.Alignments `json:"alignment" toml:"alignment" yaml:"alignment"`

	// BorderRadius is the default image border radius.
	BorderRadius int `json:"border_radius" toml:"border_radius" yaml:"border_radius"`
}

// Defaults sets the default values of the stylesheet.
func (s *Stylesheet) Defaults() {
	s.Background = "#000000"
	s.Gap = 8
	s.Mode = ImageContain
	s.Alignment = geom.Left
	s.BorderRadius = 0
}

// NewStylesheet returns a new stylesheet with default values.
func NewStylesheet() *Stylesheet {
	s := &Stylesheet{}
	s.Defaults()
	return s
}

// BackgroundColor returns the parsed [Stylesheet.Background],
// which is opaque black if it is not a valid hex color.
func (s *Stylesheet) BackgroundColor() color.RGBA {
	c, err := colorful.Hex(s.Background)
	if err != nil {
		return color.RGBA{A: 255}
	}
	r, g, b := c.Clamped().RGB255()
	return color.RGBA{r, g, b, 255}
}

// Validate returns an error if any stylesheet value is unusable.
func (s *Stylesheet) Validate() error {
	if _, err := colorful.Hex(s.Background); err != nil {
		return fmt.Errorf("styles.Stylesheet: invalid background %q: %w", s.Background, err)
	}
	if s.Gap < 0 {
		return fmt.Errorf("styles.Stylesheet: negative gap %d", s.Gap)
	}
	if s.BorderRadius < 0 {
		return fmt.Errorf("styles.Stylesheet: negative border radius %d", s.BorderRadius)
	}
	return nil
}

// Open reads the stylesheet from the given TOML or YAML file, chosen
// by extension, on top of its current values, and validates the result.
func (s *Stylesheet) Open(filename string) error {
	var err error
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".toml":
		err = tomlx.Open(s, filename)
	case ".yaml", ".yml":
		err = yamlx.Open(s, filename)
	default:
		return fmt.Errorf("styles.Stylesheet.Open: unsupported file extension %q", filepath.Ext(filename))
	}
	if err != nil {
		return err
	}
	return s.Validate()
}
