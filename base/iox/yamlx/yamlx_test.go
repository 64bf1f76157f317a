// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package yamlx

import (
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type settings struct {
	Name   string `yaml:"name"`
	Radius int    `yaml:"radius"`
}

func TestSaveOpen(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, Save(&settings{Name: "contain", Radius: 3}, fn))

	var s settings
	require.NoError(t, Open(&s, fn))
	assert.Equal(t, settings{Name: "contain", Radius: 3}, s)
}

func TestRead(t *testing.T) {
	s := settings{Name: "keep"}
	require.NoError(t, Read(&s, strings.NewReader("")))
	assert.Equal(t, "keep", s.Name)

	fsys := fstest.MapFS{"s.yml": {Data: []byte("radius: 9\n")}}
	require.NoError(t, OpenFS(&s, fsys, "s.yml"))
	assert.Equal(t, settings{Name: "keep", Radius: 9}, s)

	assert.Error(t, ReadBytes(&s, []byte("radius: [")))
}
