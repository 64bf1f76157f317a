// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"cogentcore.org/imageview/base/iox/tomlx"
	"cogentcore.org/imageview/base/iox/yamlx"
	"cogentcore.org/imageview/display"
	"cogentcore.org/imageview/geom"
	"cogentcore.org/imageview/paint"
	"cogentcore.org/imageview/styles"
	"cogentcore.org/imageview/views"
	"github.com/mitchellh/go-homedir"
	"golang.org/x/sync/errgroup"
)

// Layout is a TOML or YAML file describing a display
// and the images drawn onto it.
type Layout struct {

	// Width and Height are the display size in pixels.
	Width  int `json:"width" toml:"width" yaml:"width"`
	Height int `json:"height" toml:"height" yaml:"height"`

	// Space is the display color space.
	Space display.ColorSpaces `json:"space" toml:"space" yaml:"space"`

	// Resizer is the name of the resizer, see [paint.ResizerFor].
	Resizer string `json:"resizer" toml:"resizer" yaml:"resizer"`

	// CachePolicy is the cache policy of every image.
	CachePolicy views.CachePolicies `json:"cache_policy" toml:"cache_policy" yaml:"cache_policy"`

	// Out is the png file to render to. It defaults to the layout
	// file name with a .png extension; relative paths are relative
	// to the directory of the layout file.
	Out string `json:"out" toml:"out" yaml:"out"`

	// Column stacks the images in a column at Position
	// instead of using their own positions.
	Column bool `json:"column" toml:"column" yaml:"column"`

	// Position is the top-left corner of the column.
	Position geom.Point `json:"position" toml:"position" yaml:"position"`

	// Stylesheet is passed to every image when it is drawn.
	Stylesheet styles.Stylesheet `json:"stylesheet" toml:"stylesheet" yaml:"stylesheet"`

	// Images are the images to draw, in order.
	Images []LayoutImage `json:"images" toml:"images" yaml:"images"`
}

// LayoutImage is an image of a [Layout]. Omitted modes, alignments,
// and border radii are taken from the stylesheet of the layout.
type LayoutImage struct {
	Rect geom.Rect `json:"rect" toml:"rect" yaml:"rect"`

	// Path may start with ~, and a relative path is relative
	// to the directory of the layout file.
	Path string `json:"path,omitempty" toml:"path,omitempty" yaml:"path,omitempty"`

	Mode         *styles.ImageModes `json:"mode,omitempty" toml:"mode,omitempty" yaml:"mode,omitempty"`
	Alignment    *geom.Alignments   `json:"alignment,omitempty" toml:"alignment,omitempty" yaml:"alignment,omitempty"`
	BorderRadius *int               `json:"border_radius,omitempty" toml:"border_radius,omitempty" yaml:"border_radius,omitempty"`
}

// State returns the description of the image, with
// omitted values taken from the given stylesheet.
func (li *LayoutImage) State(s *styles.Stylesheet) views.ImageState {
	st := views.ImageState{
		Rect:         li.Rect,
		Path:         li.Path,
		Mode:         s.Mode,
		Alignment:    s.Alignment,
		BorderRadius: s.BorderRadius,
	}
	if li.Mode != nil {
		st.Mode = *li.Mode
	}
	if li.Alignment != nil {
		st.Alignment = *li.Alignment
	}
	if li.BorderRadius != nil {
		st.BorderRadius = *li.BorderRadius
	}
	return st
}

// Defaults sets the default values of the layout.
func (l *Layout) Defaults() {
	l.Width = 320
	l.Height = 240
	l.Space = display.RGBA
	l.Stylesheet.Defaults()
}

// OpenLayout reads the layout from the given TOML or YAML file,
// chosen by extension, resolves its paths, and validates it.
func OpenLayout(filename string) (*Layout, error) {
	l := &Layout{}
	l.Defaults()
	var err error
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".toml":
		err = tomlx.Open(l, filename)
	case ".yaml", ".yml":
		err = yamlx.Open(l, filename)
	default:
		return nil, fmt.Errorf("layout %q: unsupported file extension %q", filename, filepath.Ext(filename))
	}
	if err != nil {
		return nil, fmt.Errorf("layout %q: %w", filename, err)
	}
	if err := l.resolve(filename); err != nil {
		return nil, fmt.Errorf("layout %q: %w", filename, err)
	}
	if err := l.Validate(); err != nil {
		return nil, fmt.Errorf("layout %q: %w", filename, err)
	}
	return l, nil
}

// resolve expands and anchors all paths of the layout
// at the directory of the given layout file.
func (l *Layout) resolve(filename string) error {
	dir := filepath.Dir(filename)
	if l.Out == "" {
		l.Out = strings.TrimSuffix(filename, filepath.Ext(filename)) + ".png"
	} else {
		out, err := resolvePath(dir, l.Out)
		if err != nil {
			return err
		}
		l.Out = out
	}
	for i := range l.Images {
		p, err := resolvePath(dir, l.Images[i].Path)
		if err != nil {
			return err
		}
		l.Images[i].Path = p
	}
	return nil
}

func resolvePath(dir, path string) (string, error) {
	if path == "" {
		return "", nil
	}
	p, err := homedir.Expand(path)
	if err != nil {
		return "", err
	}
	if !filepath.IsAbs(p) {
		p = filepath.Join(dir, p)
	}
	return p, nil
}

// Validate returns an error if any layout value is unusable.
func (l *Layout) Validate() error {
	if l.Width <= 0 || l.Height <= 0 {
		return fmt.Errorf("invalid display size %dx%d", l.Width, l.Height)
	}
	if _, err := paint.ResizerFor(l.Resizer); err != nil {
		return err
	}
	if err := l.Stylesheet.Validate(); err != nil {
		return err
	}
	for i := range l.Images {
		if r := l.Images[i].State(&l.Stylesheet).BorderRadius; r < 0 {
			return fmt.Errorf("image %d: negative border radius %d", i, r)
		}
	}
	return nil
}

// Build returns the view trees of the layout: one column holding
// every image, or one image per tree.
func (l *Layout) Build() ([]views.View, error) {
	rs, err := paint.ResizerFor(l.Resizer)
	if err != nil {
		return nil, err
	}
	ims := make([]views.View, len(l.Images))
	for i := range l.Images {
		st := l.Images[i].State(&l.Stylesheet)
		ims[i] = views.NewImageFromState(st).SetResizer(rs).SetCachePolicy(l.CachePolicy)
	}
	if l.Column {
		return []views.View{views.NewColumn(l.Position, ims...)}, nil
	}
	return ims, nil
}

// Render draws the layout onto a new file display and saves it.
func (l *Layout) Render() error {
	roots, err := l.Build()
	if err != nil {
		return err
	}
	d := display.NewFile(l.Out, l.Width, l.Height, l.Space, l.Stylesheet.BackgroundColor())
	if err := drawAndFlush(d, &l.Stylesheet, roots...); err != nil {
		return err
	}
	slog.Info("rendered layout", "out", l.Out, "images", len(l.Images))
	return nil
}

// RenderLayouts opens and renders the given layout files concurrently,
// each onto its own display, returning the first error.
func RenderLayouts(ctx context.Context, filenames ...string) error {
	g, ctx := errgroup.WithContext(ctx)
	for _, fn := range filenames {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			l, err := OpenLayout(fn)
			if err != nil {
				return err
			}
			return l.Render()
		})
	}
	return g.Wait()
}
