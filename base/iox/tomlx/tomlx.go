// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tomlx opens and saves values in the TOML format.
package tomlx

import (
	"bufio"
	"errors"
	"io"
	"io/fs"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Open reads the given value from the given TOML file.
func Open(v any, filename string) error {
	fp, err := os.Open(filename)
	if err != nil {
		return err
	}
	defer fp.Close()
	return Read(v, bufio.NewReader(fp))
}

// OpenFiles reads the given value from the given TOML files in order,
// so that later files overwrite the settings of earlier ones.
// It returns the joined errors of any files that could not be read.
func OpenFiles(v any, filenames ...string) error {
	var errs []error
	for _, fn := range filenames {
		errs = append(errs, Open(v, fn))
	}
	return errors.Join(errs...)
}

// OpenFS reads the given value from the given TOML file
// in the given filesystem.
func OpenFS(v any, fsys fs.FS, filename string) error {
	fp, err := fsys.Open(filename)
	if err != nil {
		return err
	}
	defer fp.Close()
	return Read(v, bufio.NewReader(fp))
}

// Read reads the given value from the given reader in TOML format.
func Read(v any, r io.Reader) error {
	return toml.NewDecoder(r).Decode(v)
}

// ReadBytes reads the given value from the given TOML bytes.
func ReadBytes(v any, data []byte) error {
	return toml.Unmarshal(data, v)
}

// Save writes the given value to the given TOML file.
func Save(v any, filename string) error {
	fp, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer fp.Close()
	bw := bufio.NewWriter(fp)
	err = Write(v, bw)
	if err != nil {
		return err
	}
	return bw.Flush()
}

// Write writes the given value to the given writer in TOML format.
func Write(v any, w io.Writer) error {
	return toml.NewEncoder(w).Encode(v)
}
