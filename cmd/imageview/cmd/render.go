// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"cogentcore.org/imageview/base/errors"
	"cogentcore.org/imageview/display"
	"cogentcore.org/imageview/geom"
	"cogentcore.org/imageview/paint"
	"cogentcore.org/imageview/styles"
	"cogentcore.org/imageview/views"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// RenderConfig contains the options of the render command.
type RenderConfig struct {

	// Width and Height are the display size in pixels.
	Width, Height int

	// Mode, Align, Radius, and Background override the stylesheet
	// when their flags are given.
	Mode       string
	Align      string
	Radius     int
	Background string

	// Style is an optional TOML or YAML stylesheet file.
	Style string

	// Resizer is the name of the resizer, see [paint.ResizerFor].
	Resizer string

	// Space is the display color space.
	Space string

	// Cache is the image cache policy.
	Cache string

	// Out is the png file to render to; the terminal is used if it is empty.
	Out string

	// Term renders to the terminal; it cannot be combined with Out.
	Term bool

	// Layouts are layout files to render instead of a single image.
	Layouts []string

	// Watch re-renders the image every time its file changes.
	Watch bool
}

func newRenderCommand() *cobra.Command {
	c := &RenderConfig{}
	cmd := &cobra.Command{
		Use:   "render [image]",
		Short: "Render an image or layout files",
		Long: `Render draws an image widget filling a display of the given size,
or every image of one or more layout files, each onto its own display.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := c.Stylesheet(cmd.Flags())
			if err != nil {
				return err
			}
			return Render(cmd.Context(), c, st, args, cmd.OutOrStdout())
		},
	}
	f := cmd.Flags()
	f.IntVar(&c.Width, "width", 320, "display width in pixels")
	f.IntVar(&c.Height, "height", 240, "display height in pixels")
	f.StringVar(&c.Mode, "mode", "contain", "image mode: raw, cover, or contain")
	f.StringVar(&c.Align, "align", "left", "horizontal alignment: left, center, or right")
	f.IntVar(&c.Radius, "radius", 0, "border radius in pixels")
	f.StringVar(&c.Background, "background", "#000000", "display background hex color")
	f.StringVar(&c.Style, "style", "", "stylesheet file (.toml, .yaml, or .yml)")
	f.StringVar(&c.Resizer, "resizer", "bild", "resizer: bild, xdraw, or nfnt")
	f.StringVar(&c.Space, "space", "rgba", "display color space: rgba, rgb565, or gray")
	f.StringVar(&c.Cache, "cache", "path", "image cache policy: path or render")
	f.StringVarP(&c.Out, "out", "o", "", "png file to render to")
	f.BoolVar(&c.Term, "term", false, "render to the terminal")
	f.StringArrayVar(&c.Layouts, "layout", nil, "layout file to render (can be repeated)")
	f.BoolVarP(&c.Watch, "watch", "w", false, "re-render when the image file changes")
	return cmd
}

// Stylesheet returns the stylesheet read from [RenderConfig.Style], if any,
// with the values of the given flags applied on top of it.
// Without flags, every style option is applied.
func (c *RenderConfig) Stylesheet(flags *pflag.FlagSet) (*styles.Stylesheet, error) {
	st := styles.NewStylesheet()
	if c.Style != "" {
		if err := st.Open(c.Style); err != nil {
			return nil, err
		}
	}
	changed := func(name string) bool {
		return flags == nil || flags.Changed(name)
	}
	if changed("mode") {
		if err := st.Mode.SetString(c.Mode); err != nil {
			return nil, err
		}
	}
	if changed("align") {
		if err := st.Alignment.SetString(c.Align); err != nil {
			return nil, err
		}
	}
	if changed("radius") {
		st.BorderRadius = c.Radius
	}
	if changed("background") {
		st.Background = c.Background
	}
	return st, st.Validate()
}

// Render renders the image given in args, or the layout files of the
// config, stopping only when watching and the context is done.
func Render(ctx context.Context, c *RenderConfig, st *styles.Stylesheet, args []string, stdout io.Writer) error {
	if len(c.Layouts) > 0 {
		if len(args) > 0 {
			return errors.New("render: an image cannot be combined with --layout")
		}
		if c.Watch {
			return errors.New("render: --watch needs a single image")
		}
		return RenderLayouts(ctx, c.Layouts...)
	}
	if len(args) != 1 {
		return errors.New("render: an image or at least one --layout is required")
	}
	if c.Out != "" && c.Term {
		return errors.New("render: --out and --term cannot be combined")
	}
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("render: invalid display size %dx%d", c.Width, c.Height)
	}
	var space display.ColorSpaces
	if err := space.SetString(c.Space); err != nil {
		return err
	}
	var cache views.CachePolicies
	if err := cache.SetString(c.Cache); err != nil {
		return err
	}
	rs, err := paint.ResizerFor(c.Resizer)
	if err != nil {
		return err
	}
	path, err := homedir.Expand(args[0])
	if err != nil {
		return err
	}

	var d display.Display
	if c.Out != "" {
		d = display.NewFile(c.Out, c.Width, c.Height, space, st.BackgroundColor())
	} else {
		d = display.NewTerminal(stdout, c.Width, c.Height, space, st.BackgroundColor())
	}
	im := views.NewImage(geom.R(0, 0, c.Width, c.Height), path, st.Mode).
		SetBorderRadius(st.BorderRadius).
		SetAlignment(st.Alignment).
		SetResizer(rs).
		SetCachePolicy(cache)
	if err := drawAndFlush(d, st, im); err != nil {
		return err
	}
	if !c.Watch {
		return nil
	}
	return Watch(ctx, path, func() error {
		// setting a different path is the only way to force a reload
		im.SetPath("").SetPath(path)
		return drawAndFlush(d, st, im)
	})
}

// drawAndFlush draws the dirty views of the given trees and flushes the display.
func drawAndFlush(d display.Display, st *styles.Stylesheet, roots ...views.View) error {
	for _, v := range roots {
		drawn, err := views.DrawTree(v, d, st)
		if err != nil {
			return err
		}
		slog.Debug("render: drew view tree", "drawn", drawn, "bounds", v.BoundingBox(st))
	}
	return d.Flush()
}
