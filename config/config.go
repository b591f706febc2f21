// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config reads and writes shot rule options as TOML files.
package config

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"cogentcore.org/previs/shot"
	"github.com/pelletier/go-toml/v2"
)

// Open reads the options from the given TOML file. The defaults are
// applied first, so the file only needs to name the options it changes.
func Open(filename string) (shot.Options, error) {
	f, err := os.Open(filename)
	if err != nil {
		return shot.DefaultOptions(), err
	}
	defer f.Close()
	opts, err := Read(f)
	if err != nil {
		return opts, fmt.Errorf("config: %s: %w", filename, err)
	}
	return opts, nil
}

// Read reads the options in TOML from the given reader,
// on top of the defaults.
func Read(r io.Reader) (shot.Options, error) {
	opts := shot.DefaultOptions()
	dec := toml.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&opts); err != nil {
		return shot.DefaultOptions(), err
	}
	return opts, Validate(&opts)
}

// Validate returns an error if the options cannot be used by a rule.
func Validate(opts *shot.Options) error {
	if opts.Radius < 0 {
		return fmt.Errorf("radius must not be negative: %g", opts.Radius)
	}
	if opts.HeadRadius < 0 {
		return fmt.Errorf("head_radius must not be negative: %g", opts.HeadRadius)
	}
	if opts.Workers < 0 {
		return fmt.Errorf("workers must not be negative: %d", opts.Workers)
	}
	return nil
}

// Save writes the options to the given TOML file.
func Save(filename string, opts shot.Options) error {
	var b bytes.Buffer
	if err := Write(&b, opts); err != nil {
		return err
	}
	return os.WriteFile(filename, b.Bytes(), 0644)
}

// Write writes the options in TOML to the given writer.
func Write(w io.Writer, opts shot.Options) error {
	return toml.NewEncoder(w).Encode(opts)
}
