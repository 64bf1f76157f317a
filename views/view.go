// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package views provides the view tree drawn onto a display:
// the [View] interface, the [Image] widget, and the [Column] container.
package views

import (
	"context"

	"cogentcore.org/imageview/display"
	"cogentcore.org/imageview/events"
	"cogentcore.org/imageview/geom"
	"cogentcore.org/imageview/styles"
)

// View is a node of the view tree. All methods are called from the
// single goroutine driving the tree.
type View interface {

	// Draw draws the view onto the given display. It returns whether
	// anything was drawn, and an error only if the display failed.
	Draw(d display.Display, s *styles.Stylesheet) (bool, error)

	// ShouldDraw returns whether the view needs to be drawn.
	ShouldDraw() bool

	// SetShouldDraw marks the view as needing to be drawn.
	SetShouldDraw()

	// HandleKeyEvent handles the given key event, returning whether it
	// was handled. Commands can be sent on cmds or appended to bubble
	// for the parent to process.
	HandleKeyEvent(ctx context.Context, ev events.Key, cmds chan<- events.Command, bubble *[]events.Command) (bool, error)

	// Children returns the children of the view, which is empty for leaves.
	Children() []View

	// BoundingBox returns the rect covered by the view.
	BoundingBox(s *styles.Stylesheet) geom.Rect

	// SetPosition moves the top-left corner of the view.
	SetPosition(p geom.Point)
}

// DrawTree draws the given view and then its descendants, depth first,
// skipping every view whose [View.ShouldDraw] is false. It returns
// whether anything was drawn, stopping at the first error.
func DrawTree(v View, d display.Display, s *styles.Stylesheet) (bool, error) {
	drawn := false
	if v.ShouldDraw() {
		ok, err := v.Draw(d, s)
		if err != nil {
			return drawn, err
		}
		drawn = ok
	}
	for _, c := range v.Children() {
		ok, err := DrawTree(c, d, s)
		drawn = drawn || ok
		if err != nil {
			return drawn, err
		}
	}
	return drawn, nil
}

// NeedsDraw returns whether the given view or any of its
// descendants should be drawn.
func NeedsDraw(v View) bool {
	if v.ShouldDraw() {
		return true
	}
	for _, c := range v.Children() {
		if NeedsDraw(c) {
			return true
		}
	}
	return false
}
