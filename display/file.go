// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package display

import (
	"image/color"

	"cogentcore.org/imageview/base/iox/imagex"
)

// File is a [Memory] display that saves its framebuffer to
// an image file on every [File.Flush].
type File struct {
	*Memory

	// Filename is the file to save to; its extension selects the format.
	Filename string
}

// NewFile returns a new w x h [File] display saving to the given filename.
func NewFile(filename string, w, h int, space ColorSpaces, background color.Color) *File {
	return &File{Memory: NewMemory(w, h, space, background), Filename: filename}
}

func (f *File) Flush() error {
	return imagex.Save(f.Image(), f.Filename)
}
