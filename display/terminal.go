// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package display

import (
	"image/color"
	"io"
	"strings"

	"github.com/muesli/termenv"
)

// Terminal is a [Memory] display that renders its framebuffer to a
// terminal on every [Terminal.Flush], using upper half block characters
// so that each character cell shows two pixel rows.
type Terminal struct {
	*Memory
	out *termenv.Output
}

// NewTerminal returns a new w x h [Terminal] display writing to the given
// writer. The color profile is detected from the writer unless given
// by the options.
func NewTerminal(w io.Writer, width, height int, space ColorSpaces, background color.Color, opts ...termenv.OutputOption) *Terminal {
	return &Terminal{Memory: NewMemory(width, height, space, background), out: termenv.NewOutput(w, opts...)}
}

func (t *Terminal) Flush() error {
	fb := t.Image()
	b := fb.Bounds()
	var sb strings.Builder
	for y := b.Min.Y; y < b.Max.Y; y += 2 {
		for x := b.Min.X; x < b.Max.X; x++ {
			top := fb.RGBAAt(x, y)
			bottom := top
			if y+1 < b.Max.Y {
				bottom = fb.RGBAAt(x, y+1)
			}
			s := t.out.String("▀").
				Foreground(t.out.Color(Hex(top))).
				Background(t.out.Color(Hex(bottom)))
			sb.WriteString(s.String())
		}
		sb.WriteByte('\n')
	}
	_, err := io.WriteString(t.out, sb.String())
	return err
}
