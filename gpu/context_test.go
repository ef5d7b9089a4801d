// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"fmt"
	"image"
	"image/color"
	"testing"

	"cogentcore.org/slate/base/errors"
	"cogentcore.org/slate/text"
	"cogentcore.org/slate/widget"
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestContext(t *testing.T, size image.Point) (*Context, *fakeBackend, *fakeBrush, *recorder) {
	t.Helper()
	rec := &recorder{}
	be := newFakeBackend(rec)
	br := &fakeBrush{rec: rec}
	c, err := NewContext(be, br, size, nil)
	require.NoError(t, err)
	rec.calls = nil
	return c, be, br, rec
}

func helloWorld() *widget.View {
	return widget.NewView().Add(widget.NewText("Hello")).Add(widget.NewText("World"))
}

func TestNewContext(t *testing.T) {
	rec := &recorder{}
	be := newFakeBackend(rec)
	c, err := NewContext(be, &fakeBrush{rec: rec}, image.Pt(800, 600), nil)
	require.NoError(t, err)

	want := SurfaceConfig{
		Format:      wgpu.TextureFormatBGRA8UnormSrgb,
		Width:       800,
		Height:      600,
		PresentMode: wgpu.PresentModeFifo,
		AlphaMode:   wgpu.CompositeAlphaModeOpaque,
	}
	assert.Equal(t, want, c.Config())
	assert.Equal(t, []SurfaceConfig{want}, be.configs)
	assert.Equal(t, image.Pt(800, 600), c.Size())
	assert.Equal(t, float32(text.DefaultSize), c.FontSize())
	assert.Equal(t, DefaultOptions().Background, c.ClearColor())
}

func TestNewContextPresentMode(t *testing.T) {
	rec := &recorder{}
	opts := DefaultOptions()
	opts.PresentMode = "mailbox"
	c, err := NewContext(newFakeBackend(rec), &fakeBrush{rec: rec}, image.Pt(10, 10), opts)
	require.NoError(t, err)
	assert.Equal(t, wgpu.PresentModeMailbox, c.Config().PresentMode)

	opts.PresentMode = "immediate"
	c, err = NewContext(newFakeBackend(rec), &fakeBrush{rec: rec}, image.Pt(10, 10), opts)
	require.NoError(t, err)
	assert.Equal(t, wgpu.PresentModeFifo, c.Config().PresentMode, "unsupported mode falls back to the first one")
}

func TestNewContextNoFormats(t *testing.T) {
	rec := &recorder{}
	be := newFakeBackend(rec)
	be.caps.Formats = nil
	_, err := NewContext(be, &fakeBrush{rec: rec}, image.Pt(800, 600), nil)
	assert.ErrorIs(t, err, ErrNoSurfaceFormat)
	assert.Empty(t, be.configs)
}

func TestNewContextClampsSize(t *testing.T) {
	c, _, _, _ := newTestContext(t, image.Pt(0, -5))
	assert.Equal(t, image.Pt(1, 1), c.Size())
	assert.Equal(t, image.Pt(1, 1), c.Config().Size())
}

func TestReconfigure(t *testing.T) {
	c, be, br, rec := newTestContext(t, image.Pt(800, 600))

	c.Reconfigure(image.Pt(1024, 768))
	assert.Equal(t, image.Pt(1024, 768), c.Size())
	assert.Equal(t, 1024, c.Config().Width)
	assert.Equal(t, 768, c.Config().Height)
	assert.Equal(t, [][2]int{{1024, 768}}, br.sizes)
	assert.Equal(t, []string{"configure 1024x768", "resize brush 1024x768"}, rec.calls)
	assert.Len(t, be.configs, 2)
	format := c.Config().Format

	for _, sz := range []image.Point{{0, 768}, {1024, 0}, {0, 0}, {-1, 100}, {100, -1}} {
		c.Reconfigure(sz)
		assert.Equal(t, image.Pt(1024, 768), c.Size(), "size %v", sz)
		assert.Equal(t, image.Pt(1024, 768), c.Config().Size(), "size %v", sz)
	}
	assert.Len(t, be.configs, 2, "non-positive sizes must not be applied")
	assert.Len(t, br.sizes, 1)
	assert.Equal(t, format, c.Config().Format)
}

func TestRender(t *testing.T) {
	c, be, br, rec := newTestContext(t, image.Pt(800, 600))

	require.NoError(t, c.Render(helloWorld()))
	white := color.RGBA{0xff, 0xff, 0xff, 0xff}
	assert.Equal(t, [][]text.Section{{
		{Text: "Hello", X: 0, Y: 0, Size: 32, Color: white},
		{Text: "World", X: 0, Y: 32, Size: 32, Color: white},
	}}, br.drawn)
	assert.Equal(t, [][]string{{"clear", "text"}}, be.submitted)
	assert.Equal(t, []color.RGBA{{0x1e, 0x1e, 0x2e, 0xff}}, be.clears)
	assert.Equal(t, []string{
		"acquire",
		"encode clear",
		`queue "Hello"`,
		`queue "World"`,
		"draw text",
		"submit [clear text]",
		"present",
		"release text",
		"release clear",
		"release frame",
	}, rec.calls)
}

func TestRenderSkipsNonText(t *testing.T) {
	c, _, br, _ := newTestContext(t, image.Pt(800, 600))
	view := widget.NewView()
	view.Add(widget.NewText("Hello")).Add(widget.NewRoot()).Add(widget.NewText("World"))

	require.NoError(t, c.Render(view))
	require.Len(t, br.drawn, 1)
	require.Len(t, br.drawn[0], 2)
	assert.Equal(t, float32(0), br.drawn[0][0].Y)
	assert.Equal(t, "World", br.drawn[0][1].Text)
	assert.Equal(t, float32(32), br.drawn[0][1].Y)
}

func TestRenderEmptyView(t *testing.T) {
	c, be, br, _ := newTestContext(t, image.Pt(800, 600))
	require.NoError(t, c.Render(widget.NewView()))
	assert.Equal(t, [][]string{{"clear", "text"}}, be.submitted)
	require.Len(t, br.drawn, 1)
	assert.Empty(t, br.drawn[0])
}

func TestRenderAcquireErrors(t *testing.T) {
	tests := []struct {
		msg  string
		want error
	}{
		{"Timeout", ErrSurfaceTimeout},
		{"Outdated", ErrSurfaceOutdated},
		{"Lost", ErrSurfaceLost},
		{"OutOfMemory", ErrOutOfMemory},
	}
	for _, tt := range tests {
		t.Run(tt.msg, func(t *testing.T) {
			c, be, br, rec := newTestContext(t, image.Pt(800, 600))
			be.acquireErr = fmt.Errorf("wgpu.(*Surface).GetCurrentTexture(): %s", tt.msg)

			err := c.Render(helloWorld())
			assert.ErrorIs(t, err, tt.want)
			assert.Empty(t, br.queued)
			assert.Empty(t, br.drawn)
			assert.Empty(t, be.submitted)
			assert.Equal(t, []string{"acquire failed"}, rec.calls)
		})
	}
}

func TestRenderDrawError(t *testing.T) {
	c, be, br, rec := newTestContext(t, image.Pt(800, 600))
	br.drawErr = errors.New("upload failed")

	err := c.Render(helloWorld())
	assert.ErrorIs(t, err, br.drawErr)
	assert.Empty(t, be.submitted)
	assert.NotContains(t, rec.calls, "present")
	assert.Contains(t, rec.calls, "release clear")
	assert.Contains(t, rec.calls, "release frame")
}

func TestRenderRepeatable(t *testing.T) {
	c, _, br, _ := newTestContext(t, image.Pt(800, 600))
	view := helloWorld()
	require.NoError(t, c.Render(view))
	require.NoError(t, c.Render(view))
	require.Len(t, br.drawn, 2)
	assert.Equal(t, br.drawn[0], br.drawn[1])
}

func TestRelease(t *testing.T) {
	c, be, br, _ := newTestContext(t, image.Pt(800, 600))
	c.Release()
	c.Release()
	assert.Equal(t, 1, be.released)
	assert.Equal(t, 1, br.released)
	assert.Error(t, c.Render(helloWorld()))
}

func TestLayout(t *testing.T) {
	root := widget.NewRoot()
	root.AddChild(widget.NewText("a")).AddChild(widget.NewRoot()).AddChild(widget.NewText("b")).AddChild(widget.NewText("c"))

	secs := Layout(root, 20)
	assert.Equal(t, []text.Section{
		{Text: "a", Y: 0, Size: 20},
		{Text: "b", Y: 20, Size: 20},
		{Text: "c", Y: 40, Size: 20},
	}, secs)
	assert.Equal(t, secs, Layout(root, 20))
	assert.Empty(t, Layout(widget.NewRoot(), 20))
}

func TestOptionsDefaults(t *testing.T) {
	var o *Options
	assert.Equal(t, DefaultOptions(), o.orDefaults())

	o = &Options{Font: "latin-modern"}
	od := o.orDefaults()
	assert.Equal(t, float32(text.DefaultSize), od.FontSize)
	assert.Equal(t, "latin-modern", od.Font)
	assert.Zero(t, o.FontSize, "the given options are not modified")

	o = &Options{FontSize: 1e6}
	assert.Equal(t, float32(text.MaxSize), o.orDefaults().FontSize)
	assert.Equal(t, float32(1e6), o.FontSize)
}
