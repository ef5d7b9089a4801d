// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"fmt"
	"image/color"
	"testing"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectFormat(t *testing.T) {
	f, err := SelectFormat([]wgpu.TextureFormat{wgpu.TextureFormatBGRA8Unorm, wgpu.TextureFormatRGBA8UnormSrgb})
	require.NoError(t, err)
	assert.Equal(t, wgpu.TextureFormatRGBA8UnormSrgb, f)

	f, err = SelectFormat([]wgpu.TextureFormat{wgpu.TextureFormatRGBA8Unorm, wgpu.TextureFormatBGRA8Unorm})
	require.NoError(t, err)
	assert.Equal(t, wgpu.TextureFormatRGBA8Unorm, f)

	_, err = SelectFormat(nil)
	assert.ErrorIs(t, err, ErrNoSurfaceFormat)
}

func TestSelectPresentMode(t *testing.T) {
	modes := []wgpu.PresentMode{wgpu.PresentModeFifo, wgpu.PresentModeImmediate}
	assert.Equal(t, wgpu.PresentModeFifo, SelectPresentMode(modes, ""))
	assert.Equal(t, wgpu.PresentModeImmediate, SelectPresentMode(modes, "immediate"))
	assert.Equal(t, wgpu.PresentModeFifo, SelectPresentMode(modes, "mailbox"))
	assert.Equal(t, wgpu.PresentModeFifo, SelectPresentMode(modes, "bogus"))
	assert.Equal(t, wgpu.PresentModeFifo, SelectPresentMode(nil, "immediate"))
}

func TestSelectAlphaMode(t *testing.T) {
	assert.Equal(t, wgpu.CompositeAlphaModePremultiplied,
		SelectAlphaMode([]wgpu.CompositeAlphaMode{wgpu.CompositeAlphaModePremultiplied, wgpu.CompositeAlphaModeOpaque}))
	assert.Equal(t, wgpu.CompositeAlphaModeAuto, SelectAlphaMode(nil))
}

func TestPresentModeName(t *testing.T) {
	for nm, m := range PresentModes {
		assert.Equal(t, nm, PresentModeName(m))
	}
}

func TestClassifySurfaceError(t *testing.T) {
	assert.NoError(t, ClassifySurfaceError(nil))

	tests := map[string]error{
		"Timeout":                 ErrSurfaceTimeout,
		"surface timeout":         ErrSurfaceTimeout,
		"Lost":                    ErrSurfaceLost,
		"DeviceLost":              ErrSurfaceLost,
		"OutOfMemory":             ErrOutOfMemory,
		"out of memory":           ErrOutOfMemory,
		"Outdated":                ErrSurfaceOutdated,
		"something else entirely": ErrSurfaceOutdated,
	}
	for msg, want := range tests {
		err := ClassifySurfaceError(fmt.Errorf("GetCurrentTexture(): %s", msg))
		assert.ErrorIs(t, err, want, msg)
		assert.Contains(t, err.Error(), msg)
	}

	assert.Same(t, ErrSurfaceLost, ClassifySurfaceError(ErrSurfaceLost))
}

func TestClearValue(t *testing.T) {
	c := clearValue(color.RGBA{0xff, 0x00, 0x80, 0xff}, false)
	assert.InDelta(t, 1.0, c.R, 1e-9)
	assert.InDelta(t, 0.0, c.G, 1e-9)
	assert.InDelta(t, 128.0/255, c.B, 1e-9)
	assert.InDelta(t, 1.0, c.A, 1e-9)

	c = clearValue(color.RGBA{0xff, 0x00, 0x80, 0xff}, true)
	assert.InDelta(t, 1.0, c.R, 1e-6)
	assert.InDelta(t, 0.0, c.G, 1e-6)
	assert.InDelta(t, 0.2158, c.B, 1e-3)
	assert.InDelta(t, 1.0, c.A, 1e-9)
}
