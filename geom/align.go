// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import (
	"fmt"
	"strings"
)

// Alignments are the horizontal placements of content inside a rect.
// There is no vertical counterpart: content is always top-anchored.
type Alignments int32

const (
	// Left places content at the left edge.
	Left Alignments = iota

	// Center places content in the horizontal middle,
	// rounding the offset down.
	Center

	// Right places content at the right edge.
	Right

	alignmentsN
)

var alignmentsNames = [...]string{"left", "center", "right"}

// AlignmentsValues returns all possible values for the type Alignments.
func AlignmentsValues() []Alignments {
	return []Alignments{Left, Center, Right}
}

// String returns the lower-case name of the alignment.
func (a Alignments) String() string {
	if a < 0 || a >= alignmentsN {
		return fmt.Sprintf("Alignments(%d)", int32(a))
	}
	return alignmentsNames[a]
}

// SetString sets the alignment from its name, ignoring case.
func (a *Alignments) SetString(s string) error {
	for i, nm := range alignmentsNames {
		if strings.EqualFold(nm, s) {
			*a = Alignments(i)
			return nil
		}
	}
	return fmt.Errorf("%q is not a valid value for type Alignments", s)
}

// MarshalText implements the [encoding.TextMarshaler] interface.
func (a Alignments) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
func (a *Alignments) UnmarshalText(text []byte) error {
	return a.SetString(string(text))
}
