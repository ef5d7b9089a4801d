// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"cogentcore.org/slate/config"
	"cogentcore.org/slate/widget"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewView(t *testing.T) {
	v := newView(nil)
	require.Equal(t, 2, v.Root().NumChildren())
	assert.Equal(t, "Hello", v.Root().Children()[0].String())
	assert.Equal(t, "World", v.Root().Children()[1].String())

	v = newView([]string{"one", "two", "three"})
	require.Equal(t, 3, v.Root().NumChildren())
	for _, w := range v.Root().Children() {
		assert.Equal(t, widget.KindText, w.Kind())
	}
}

func execute(t *testing.T, args ...string) error {
	t.Helper()
	cmd := newCommand()
	cmd.SetArgs(args)
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	return cmd.Execute()
}

func TestWriteConfig(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "out.toml")
	require.NoError(t, execute(t, "--title", "Flags", "--width", "640", "--write-config", out))

	cfg := &config.Config{}
	require.NoError(t, cfg.Open(out))
	assert.Equal(t, "Flags", cfg.Title)
	assert.Equal(t, 640, cfg.Width)
	assert.Equal(t, 600, cfg.Height)
}

func TestFlagsOverrideConfigFile(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.toml")
	require.NoError(t, os.WriteFile(in, []byte("title = \"File\"\nheight = 300\nfont = \"latin-modern\"\n"), 0666))
	out := filepath.Join(dir, "out.toml")
	require.NoError(t, execute(t, "-c", in, "--height", "400", "--write-config", out))

	cfg := &config.Config{}
	require.NoError(t, cfg.Open(out))
	assert.Equal(t, "File", cfg.Title)
	assert.Equal(t, 400, cfg.Height)
	assert.Equal(t, "latin-modern", cfg.Font)
}

func TestInvalidFlags(t *testing.T) {
	out := filepath.Join(t.TempDir(), "out.toml")
	assert.ErrorIs(t, execute(t, "--width=-5", "--write-config", out), config.ErrInvalid)
	assert.NoFileExists(t, out)
	assert.ErrorIs(t, execute(t, "--font", "nope", "--write-config", out), config.ErrInvalid)
	assert.Error(t, execute(t, "-c", filepath.Join(t.TempDir(), "missing.toml")))
}
