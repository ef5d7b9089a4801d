// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"fmt"
	"image"
	"image/color"
	"log/slog"

	"cogentcore.org/slate/base/errors"
)

// Context is the graphics state of a window: its configured surface,
// the brush that draws text, and the colors and font size used to
// render a view. A Context must only be used on the main thread.
type Context struct {
	backend Backend
	brush   Brush

	// config is the configuration last applied to the surface.
	config SurfaceConfig

	// size is the last positive size given to Reconfigure.
	size image.Point

	clear    color.RGBA
	fore     color.RGBA
	fontSize float32
}

// NewContext returns a new [Context] that renders through the given
// backend and brush. It selects the surface format, present mode and
// alpha mode from the backend capabilities and configures the surface
// to the given size. Non-positive dimensions are clamped to 1. Nil
// options use [DefaultOptions].
func NewContext(backend Backend, brush Brush, size image.Point, opts *Options) (*Context, error) {
	opts = opts.orDefaults()
	caps := backend.Capabilities()
	format, err := SelectFormat(caps.Formats)
	if err != nil {
		return nil, err
	}
	size.X, size.Y = max(size.X, 1), max(size.Y, 1)
	c := &Context{
		backend: backend,
		brush:   brush,
		config: SurfaceConfig{
			Format:      format,
			Width:       size.X,
			Height:      size.Y,
			PresentMode: SelectPresentMode(caps.PresentModes, opts.PresentMode),
			AlphaMode:   SelectAlphaMode(caps.AlphaModes),
		},
		size:     size,
		clear:    opts.Background,
		fore:     opts.Foreground,
		fontSize: opts.FontSize,
	}
	if err := backend.Configure(c.config); err != nil {
		return nil, fmt.Errorf("gpu: configuring surface: %w", err)
	}
	slog.Info("surface configured", "config", c.config.String())
	return c, nil
}

// Reconfigure applies the given size to the surface and the brush.
// It does nothing if either dimension is not positive, which is
// what the window reports while it is minimized.
func (c *Context) Reconfigure(size image.Point) {
	if size.X <= 0 || size.Y <= 0 {
		slog.Debug("ignoring non-positive surface size", "width", size.X, "height", size.Y)
		return
	}
	c.size = size
	c.config.Width = size.X
	c.config.Height = size.Y
	errors.Log(c.backend.Configure(c.config))
	c.brush.Resize(size.X, size.Y)
	slog.Debug("surface resized", "width", size.X, "height", size.Y)
}

// Config returns the configuration last applied to the surface.
func (c *Context) Config() SurfaceConfig {
	return c.config
}

// Size returns the last positive size given to [Context.Reconfigure],
// or the initial size.
func (c *Context) Size() image.Point {
	return c.size
}

// FontSize returns the font size that text widgets are drawn with.
func (c *Context) FontSize() float32 {
	return c.fontSize
}

// ClearColor returns the color the surface is cleared to each frame.
func (c *Context) ClearColor() color.RGBA {
	return c.clear
}

// SetClearColor sets the color the surface is cleared to each frame.
func (c *Context) SetClearColor(clr color.RGBA) {
	c.clear = clr
}

// Release releases the brush and the backend. It is safe to call
// more than once.
func (c *Context) Release() {
	if c.brush != nil {
		c.brush.Release()
		c.brush = nil
	}
	if c.backend != nil {
		c.backend.Release()
		c.backend = nil
	}
}
