// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/color"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"cogentcore.org/imageview/base/errors"
	"cogentcore.org/imageview/base/iox/imagex"
	"cogentcore.org/imageview/base/logx"
	"cogentcore.org/imageview/display"
	"cogentcore.org/imageview/geom"
	"cogentcore.org/imageview/styles"
	"cogentcore.org/imageview/views"
	"github.com/mitchellh/go-homedir"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	red   = color.NRGBA{255, 0, 0, 255}
	green = color.NRGBA{0, 255, 0, 255}
)

func writePNG(t *testing.T, filename string, c color.NRGBA, w, h int) string {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(filename), 0o755))
	require.NoError(t, imagex.Save(imagex.Uniform(c, w, h), filename))
	return filename
}

func writeFile(t *testing.T, filename, content string) string {
	t.Helper()
	errors.Test(t, os.WriteFile(filename, []byte(content), 0o644))
	return filename
}

func openRGBA(t *testing.T, filename string) *image.RGBA {
	t.Helper()
	img, _, err := imagex.Open(filename)
	require.NoError(t, err)
	rgba := image.NewRGBA(img.Bounds())
	for y := img.Bounds().Min.Y; y < img.Bounds().Max.Y; y++ {
		for x := img.Bounds().Min.X; x < img.Bounds().Max.X; x++ {
			rgba.Set(x, y, img.At(x, y))
		}
	}
	return rgba
}

func assertColor(t *testing.T, want, got color.RGBA, msgAndArgs ...any) {
	t.Helper()
	if !imagex.CompareColors(got, want, 2) {
		assert.Fail(t, fmt.Sprintf("expected color %v, but got %v", want, got), msgAndArgs...)
	}
}

func setHome(t *testing.T, dir string) {
	t.Setenv("HOME", dir)
	homedir.DisableCache = true
	t.Cleanup(func() { homedir.DisableCache = false })
}

func TestOpenLayoutTOML(t *testing.T) {
	dir := t.TempDir()
	setHome(t, dir)
	fn := writeFile(t, filepath.Join(dir, "home.toml"), `
width = 100
height = 80
space = "rgb565"
resizer = "xdraw"
cache_policy = "render"
column = true

[position]
x = 4
y = 6

[stylesheet]
background = "#102030"
gap = 2

[[images]]
path = "red.png"
mode = "cover"
border_radius = 3
[images.rect]
w = 40
h = 20

[[images]]
path = "~/pics/green.png"
mode = "contain"
alignment = "center"
[images.rect]
w = 40
h = 30

[[images]]
mode = "raw"
`)
	l, err := OpenLayout(fn)
	require.NoError(t, err)
	assert.Equal(t, 100, l.Width)
	assert.Equal(t, 80, l.Height)
	assert.Equal(t, display.RGB565, l.Space)
	assert.Equal(t, "xdraw", l.Resizer)
	assert.Equal(t, views.CacheByRender, l.CachePolicy)
	assert.True(t, l.Column)
	assert.Equal(t, geom.Pt(4, 6), l.Position)
	assert.Equal(t, "#102030", l.Stylesheet.Background)
	assert.Equal(t, 2, l.Stylesheet.Gap)
	assert.Equal(t, styles.ImageContain, l.Stylesheet.Mode, "unset stylesheet values keep their defaults")
	assert.Equal(t, filepath.Join(dir, "home.png"), l.Out)

	require.Len(t, l.Images, 3)
	assert.Equal(t, views.ImageState{
		Rect:         geom.R(0, 0, 40, 20),
		Path:         filepath.Join(dir, "red.png"),
		Mode:         styles.ImageCover,
		BorderRadius: 3,
	}, l.Images[0].State(&l.Stylesheet))
	assert.Equal(t, filepath.Join(dir, "pics", "green.png"), l.Images[1].Path)
	assert.Equal(t, geom.Center, l.Images[1].State(&l.Stylesheet).Alignment)
	assert.Equal(t, "", l.Images[2].Path)
	assert.Equal(t, styles.ImageRaw, l.Images[2].State(&l.Stylesheet).Mode)

	roots, err := l.Build()
	require.NoError(t, err)
	require.Len(t, roots, 1)
	assert.Len(t, roots[0].Children(), 3)
	assert.Equal(t, geom.R(4, 6, 40, 52), roots[0].BoundingBox(&l.Stylesheet))
}

func TestOpenLayoutYAML(t *testing.T) {
	dir := t.TempDir()
	fn := writeFile(t, filepath.Join(dir, "panel.yaml"), `
width: 64
height: 32
out: renders/panel.png
stylesheet:
  background: "#ffffff"
images:
  - path: /abs/a.png
    mode: raw
    rect: {x: 1, y: 2, w: 30, h: 10}
  - path: b.png
    mode: cover
    rect: {x: 32, y: 0, w: 32, h: 32}
`)
	l, err := OpenLayout(fn)
	require.NoError(t, err)
	assert.Equal(t, 64, l.Width)
	assert.Equal(t, display.RGBA, l.Space)
	assert.Equal(t, filepath.Join(dir, "renders", "panel.png"), l.Out)
	assert.Equal(t, "/abs/a.png", l.Images[0].Path)
	assert.Equal(t, geom.R(1, 2, 30, 10), l.Images[0].Rect)
	assert.Equal(t, filepath.Join(dir, "b.png"), l.Images[1].Path)

	roots, err := l.Build()
	require.NoError(t, err)
	assert.Len(t, roots, 2)
	im := roots[1].(*views.Image)
	assert.Equal(t, styles.ImageCover, im.Mode())
	assert.True(t, im.ShouldDraw())
}

func TestLayoutImageDefaults(t *testing.T) {
	dir := t.TempDir()
	layouts := map[string]string{
		"defaults.toml": `
[stylesheet]
mode = "cover"
alignment = "right"
border_radius = 7

[[images]]
path = "a.png"
rect = {w = 10, h = 10}

[[images]]
path = "b.png"
mode = "raw"
alignment = "left"
border_radius = 0
rect = {w = 10, h = 10}
`,
		"defaults.yaml": `
stylesheet:
  mode: cover
  alignment: right
  border_radius: 7
images:
  - path: a.png
    rect: {w: 10, h: 10}
  - path: b.png
    mode: raw
    alignment: left
    border_radius: 0
    rect: {w: 10, h: 10}
`,
	}
	for name, content := range layouts {
		t.Run(name, func(t *testing.T) {
			l, err := OpenLayout(writeFile(t, filepath.Join(dir, name), content))
			require.NoError(t, err)
			roots, err := l.Build()
			require.NoError(t, err)
			require.Len(t, roots, 2)

			inherited := roots[0].(*views.Image)
			assert.Equal(t, styles.ImageCover, inherited.Mode())
			assert.Equal(t, geom.Right, inherited.Alignment())
			assert.Equal(t, 7, inherited.BorderRadius())

			explicit := roots[1].(*views.Image)
			assert.Equal(t, styles.ImageRaw, explicit.Mode())
			assert.Equal(t, geom.Left, explicit.Alignment())
			assert.Equal(t, 0, explicit.BorderRadius())
		})
	}
}

func TestOpenLayoutErrors(t *testing.T) {
	dir := t.TempDir()
	tests := map[string]string{
		"size.toml":    "width = 0",
		"resizer.toml": `resizer = "lanczos"`,
		"mode.toml":    "[[images]]\nmode = \"stretch\"",
		"radius.yaml":  "images:\n  - border_radius: -1",
		"style.yaml":   "stylesheet:\n  background: nope",
		"broken.yaml":  "width: [",
		"layout.json":  "{}",
	}
	for name, content := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := OpenLayout(writeFile(t, filepath.Join(dir, name), content))
			assert.Error(t, err)
		})
	}
	_, err := OpenLayout(filepath.Join(dir, "missing.toml"))
	assert.Error(t, err)
}

func TestRenderLayouts(t *testing.T) {
	dir := t.TempDir()
	writePNG(t, filepath.Join(dir, "red.png"), red, 10, 10)
	writePNG(t, filepath.Join(dir, "green.png"), green, 20, 10)
	a := writeFile(t, filepath.Join(dir, "a.toml"), `
width = 40
height = 40
column = true
[stylesheet]
gap = 5
[[images]]
path = "red.png"
mode = "cover"
rect = {w = 20, h = 10}
[[images]]
path = "green.png"
mode = "raw"
rect = {w = 20, h = 10}
`)
	b := writeFile(t, filepath.Join(dir, "b.yaml"), `
width: 30
height: 20
stylesheet:
  background: "#0000ff"
images:
  - path: missing.png
    rect: {x: 0, y: 0, w: 10, h: 10}
  - path: red.png
    mode: contain
    alignment: right
    rect: {x: 10, y: 0, w: 20, h: 20}
`)
	require.NoError(t, RenderLayouts(t.Context(), a, b))

	ai := openRGBA(t, filepath.Join(dir, "a.png"))
	assert.Equal(t, image.Rect(0, 0, 40, 40), ai.Bounds())
	assertColor(t, color.RGBA{255, 0, 0, 255}, ai.RGBAAt(19, 9))
	assert.Equal(t, color.RGBA{0, 0, 0, 255}, ai.RGBAAt(5, 12), "gap")
	assert.Equal(t, color.RGBA{0, 255, 0, 255}, ai.RGBAAt(0, 15))

	bi := openRGBA(t, filepath.Join(dir, "b.png"))
	assert.Equal(t, image.Rect(0, 0, 30, 20), bi.Bounds())
	blue := color.RGBA{0, 0, 255, 255}
	assert.Equal(t, blue, bi.RGBAAt(5, 5), "missing image shows the background")
	assertColor(t, color.RGBA{255, 0, 0, 255}, bi.RGBAAt(15, 15))

	assert.Error(t, RenderLayouts(t.Context(), a, filepath.Join(dir, "missing.toml")))

	ctx, cancel := context.WithCancel(t.Context())
	cancel()
	assert.ErrorIs(t, RenderLayouts(ctx, a), context.Canceled)
}

func TestRenderImage(t *testing.T) {
	dir := t.TempDir()
	img := writePNG(t, filepath.Join(dir, "tall.png"), red, 10, 20)
	out := filepath.Join(dir, "out.png")

	c := &RenderConfig{Width: 40, Height: 10, Mode: "contain", Align: "center", Background: "#00ff00",
		Resizer: "nfnt", Space: "rgba", Cache: "path", Out: out}
	st, err := c.Stylesheet(nil)
	require.NoError(t, err)
	require.NoError(t, Render(t.Context(), c, st, []string{img}, nil))

	oi := openRGBA(t, out)
	assert.Equal(t, image.Rect(0, 0, 40, 10), oi.Bounds())
	assert.Equal(t, color.RGBA{0, 255, 0, 255}, oi.RGBAAt(0, 5))
	assertColor(t, color.RGBA{255, 0, 0, 255}, oi.RGBAAt(20, 5))
	assert.Equal(t, color.RGBA{0, 255, 0, 255}, oi.RGBAAt(39, 5))
}

func TestRenderTerminal(t *testing.T) {
	dir := t.TempDir()
	img := writePNG(t, filepath.Join(dir, "red.png"), red, 4, 4)
	c := &RenderConfig{Width: 6, Height: 4, Mode: "raw", Align: "left", Background: "#000000",
		Resizer: "bild", Space: "gray", Cache: "render", Term: true}
	st, err := c.Stylesheet(nil)
	require.NoError(t, err)
	var buf bytes.Buffer
	require.NoError(t, Render(t.Context(), c, st, []string{img}, &buf))
	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	assert.Len(t, lines, 2)
	assert.Equal(t, 6, strings.Count(lines[0], "▀"))
}

func TestRenderErrors(t *testing.T) {
	img := writePNG(t, filepath.Join(t.TempDir(), "red.png"), red, 4, 4)
	st := styles.NewStylesheet()
	base := func() *RenderConfig {
		return &RenderConfig{Width: 10, Height: 10, Resizer: "bild", Space: "rgba", Cache: "path", Out: filepath.Join(t.TempDir(), "o.png")}
	}
	tests := map[string]struct {
		edit func(c *RenderConfig)
		args []string
	}{
		"no image":       {func(c *RenderConfig) {}, nil},
		"out and term":   {func(c *RenderConfig) { c.Term = true }, []string{img}},
		"bad size":       {func(c *RenderConfig) { c.Width = 0 }, []string{img}},
		"bad space":      {func(c *RenderConfig) { c.Space = "cmyk" }, []string{img}},
		"bad cache":      {func(c *RenderConfig) { c.Cache = "never" }, []string{img}},
		"bad resizer":    {func(c *RenderConfig) { c.Resizer = "lanczos" }, []string{img}},
		"image + layout": {func(c *RenderConfig) { c.Layouts = []string{"a.toml"} }, []string{img}},
		"watch + layout": {func(c *RenderConfig) { c.Layouts = []string{"a.toml"}; c.Watch = true }, nil},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			c := base()
			tt.edit(c)
			assert.Error(t, Render(t.Context(), c, st, tt.args, nil))
		})
	}

	c := &RenderConfig{Mode: "stretch"}
	_, err := c.Stylesheet(nil)
	assert.Error(t, err)
}

func TestRootCommand(t *testing.T) {
	oldLevel, oldLogger := logx.UserLevel, slog.Default()
	t.Cleanup(func() {
		logx.UserLevel = oldLevel
		slog.SetDefault(oldLogger)
	})

	dir := t.TempDir()
	img := writePNG(t, filepath.Join(dir, "red.png"), red, 8, 8)
	style := writeFile(t, filepath.Join(dir, "style.toml"), `
background = "#0000ff"
mode = "raw"
alignment = "right"
`)
	out := filepath.Join(dir, "out.png")

	root := NewRootCommand()
	root.SetArgs([]string{"render", "--vv", "--width", "16", "--height", "8", "--style", style, "--out", out, img})
	require.NoError(t, root.ExecuteContext(t.Context()))
	assert.Equal(t, slog.LevelDebug, logx.UserLevel)

	oi := openRGBA(t, out)
	assert.Equal(t, image.Rect(0, 0, 16, 8), oi.Bounds())
	assert.Equal(t, color.RGBA{0, 0, 255, 255}, oi.RGBAAt(0, 0), "stylesheet alignment is kept")
	assert.Equal(t, color.RGBA{255, 0, 0, 255}, oi.RGBAAt(15, 0))

	root = NewRootCommand()
	root.SetArgs([]string{"render", "-q", "--style", style, "--align", "left", "--width", "16", "--height", "8", "--out", out, img})
	require.NoError(t, root.ExecuteContext(t.Context()))
	assert.Equal(t, slog.LevelError, logx.UserLevel)
	oi = openRGBA(t, out)
	assert.Equal(t, color.RGBA{255, 0, 0, 255}, oi.RGBAAt(0, 0), "flags override the stylesheet")

	root = NewRootCommand()
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"render", "a.png", "b.png"})
	assert.Error(t, root.ExecuteContext(t.Context()))
}

func TestWatch(t *testing.T) {
	dir := t.TempDir()
	fn := writePNG(t, filepath.Join(dir, "red.png"), red, 4, 4)
	writePNG(t, filepath.Join(dir, "other.png"), green, 4, 4)

	var redraws atomic.Int32
	ctx, cancel := context.WithCancel(t.Context())
	done := make(chan error, 1)
	go func() {
		done <- Watch(ctx, fn, func() error {
			redraws.Add(1)
			return nil
		})
	}()

	assert.Eventually(t, func() bool {
		_ = imagex.Save(imagex.Uniform(green, 4, 4), fn)
		return redraws.Load() > 0
	}, 5*time.Second, 50*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watch did not stop after the context was canceled")
	}
}
