// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"path/filepath"
	"strings"
	"testing"

	"cogentcore.org/previs/shot"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPartialOverride(t *testing.T) {
	opts, err := Read(strings.NewReader("radius = 2.5\nexclude_primary = true\nprimary_attachments = \"AllAttachments\"\nplane = \"PlaneXZ\"\n"))
	require.NoError(t, err)
	want := shot.DefaultOptions()
	want.Radius = 2.5
	want.ExcludePrimary = true
	want.PrimaryAttachments = shot.AllAttachments
	want.Plane = shot.PlaneXZ
	assert.Equal(t, want, opts)

	opts, err = Read(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, shot.DefaultOptions(), opts)
}

func TestReadErrors(t *testing.T) {
	_, err := Read(strings.NewReader("radius = \"far\"\n"))
	assert.Error(t, err)
	_, err = Read(strings.NewReader("radius_meters = 3\n"))
	assert.Error(t, err)
	_, err = Read(strings.NewReader("workers = -1\n"))
	assert.Error(t, err)

	opts, err := Open(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
	assert.Equal(t, shot.DefaultOptions(), opts)
}

func TestSaveOpen(t *testing.T) {
	opts := shot.DefaultOptions()
	opts.Radius = 3
	opts.CompanionAttachments = shot.NoAttachments
	opts.Workers = 8
	fn := filepath.Join(t.TempDir(), "options.toml")
	require.NoError(t, Save(fn, opts))

	got, err := Open(fn)
	require.NoError(t, err)
	assert.Equal(t, opts, got)
}
