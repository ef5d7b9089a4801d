// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gpu owns the WebGPU rendering surface of a window and
// draws a [widget.View] into it each frame: it clears the surface to
// the background color and composites the text of the view on top.
package gpu

import (
	"image/color"

	"cogentcore.org/slate/fonts"
	"cogentcore.org/slate/text"
)

// Options are the settings used to create a [Context].
type Options struct {

	// FontSize is the font size of text widgets, in pixels.
	// It is also the vertical distance between stacked widgets.
	FontSize float32

	// Font is the name of the embedded font to draw text with.
	// See [fonts.Names].
	Font string

	// Background is the color the surface is cleared to.
	Background color.RGBA

	// Foreground is the color of text.
	Foreground color.RGBA

	// PresentMode is the name of the preferred present mode
	// (see [PresentModes]). If it is empty or not supported by
	// the surface, the first reported mode is used.
	PresentMode string
}

// Defaults sets the default values of the options.
func (o *Options) Defaults() {
	o.FontSize = text.DefaultSize
	o.Font = fonts.Default
	o.Background = color.RGBA{0x1e, 0x1e, 0x2e, 0xff}
	o.Foreground = color.RGBA{0xff, 0xff, 0xff, 0xff}
	o.PresentMode = ""
}

// DefaultOptions returns new [Options] with default values.
func DefaultOptions() *Options {
	o := &Options{}
	o.Defaults()
	return o
}

// orDefaults returns o, or the default options if o is nil.
// A non-positive font size is replaced by the default, and one
// above [text.MaxSize] is reduced to it.
func (o *Options) orDefaults() *Options {
	if o == nil {
		return DefaultOptions()
	}
	switch {
	case o.FontSize <= 0:
		oc := *o
		oc.FontSize = text.DefaultSize
		return &oc
	case o.FontSize > text.MaxSize:
		oc := *o
		oc.FontSize = text.MaxSize
		return &oc
	}
	return o
}
