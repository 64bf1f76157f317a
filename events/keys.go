// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package events defines the key events delivered to views and the
// commands that views can send to or bubble up to their owner.
package events

import "fmt"

// Keys are the physical buttons of a handheld device.
type Keys int32

const (
	KeyUnknown Keys = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyA
	KeyB
	KeyX
	KeyY
	KeyStart
	KeySelect
	KeyL
	KeyR
	KeyMenu
	KeyPower

	keysN
)

var keysNames = [...]string{"Unknown", "Up", "Down", "Left", "Right", "A", "B", "X", "Y", "Start", "Select", "L", "R", "Menu", "Power"}

func (k Keys) String() string {
	if k < 0 || k >= keysN {
		return fmt.Sprintf("Keys(%d)", int32(k))
	}
	return keysNames[k]
}

// Key is a key press or release event.
type Key struct {

	// Code is the button the event is for.
	Code Keys

	// Pressed is whether the button went down (true) or up (false).
	Pressed bool
}

func (k Key) String() string {
	if k.Pressed {
		return k.Code.String() + " down"
	}
	return k.Code.String() + " up"
}

// Command is a request from a view to its owner, either sent
// directly on a command channel or bubbled up through the view tree.
type Command struct {

	// Name identifies the command.
	Name string

	// Data is any data associated with the command.
	Data any
}

func (c Command) String() string {
	if c.Data == nil {
		return c.Name
	}
	return fmt.Sprintf("%s(%v)", c.Name, c.Data)
}
