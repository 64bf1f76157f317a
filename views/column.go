// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package views

import (
	"context"

	"cogentcore.org/imageview/display"
	"cogentcore.org/imageview/events"
	"cogentcore.org/imageview/geom"
	"cogentcore.org/imageview/styles"
)

// Column is a container view that stacks its children vertically,
// left-aligned at its position and separated by [styles.Stylesheet.Gap].
type Column struct {
	pos      geom.Point
	rect     geom.Rect
	children []View
	dirty    bool
}

var _ View = (*Column)(nil)

// NewColumn returns a new column at the given position.
func NewColumn(pos geom.Point, children ...View) *Column {
	return &Column{pos: pos, rect: geom.Rect{X: pos.X, Y: pos.Y}, children: children, dirty: true}
}

// Add appends the given view to the column and marks it dirty.
func (c *Column) Add(v View) *Column {
	c.children = append(c.children, v)
	c.dirty = true
	return c
}

// Layout positions the children and updates the rect of the column.
// Only children that are not already in place are moved.
func (c *Column) Layout(s *styles.Stylesheet) {
	rect := geom.Rect{X: c.pos.X, Y: c.pos.Y}
	y := c.pos.Y
	for i, ch := range c.children {
		if i > 0 {
			y += s.Gap
		}
		want := geom.Pt(c.pos.X, y)
		if ch.BoundingBox(s).TopLeft() != want {
			ch.SetPosition(want)
		}
		bb := ch.BoundingBox(s)
		rect = rect.Union(bb)
		y += bb.H
	}
	c.rect = rect
}

// Draw lays out the column, clears its rect, and marks every child as
// needing to be drawn so that [DrawTree] redraws them on top.
func (c *Column) Draw(d display.Display, s *styles.Stylesheet) (bool, error) {
	old := c.rect
	c.Layout(s)
	if err := d.Load(old.Union(c.rect)); err != nil {
		return false, err
	}
	for _, ch := range c.children {
		ch.SetShouldDraw()
	}
	c.dirty = false
	return true, nil
}

func (c *Column) ShouldDraw() bool {
	return c.dirty
}

func (c *Column) SetShouldDraw() {
	c.dirty = true
}

// HandleKeyEvent offers the event to each child in order
// until one handles it.
func (c *Column) HandleKeyEvent(ctx context.Context, ev events.Key, cmds chan<- events.Command, bubble *[]events.Command) (bool, error) {
	for _, ch := range c.children {
		handled, err := ch.HandleKeyEvent(ctx, ev, cmds, bubble)
		if err != nil || handled {
			return handled, err
		}
	}
	return false, nil
}

func (c *Column) Children() []View {
	return c.children
}

func (c *Column) BoundingBox(s *styles.Stylesheet) geom.Rect {
	c.Layout(s)
	return c.rect
}

func (c *Column) SetPosition(p geom.Point) {
	c.pos = p
	c.dirty = true
}
