// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package text shapes and rasterizes queued sections of text into
// an RGBA overlay the size of the viewport, which the gpu package
// then composites onto the window surface.
package text

import (
	"fmt"
	"image/color"
)

// DefaultSize is the default font size, in pixels.
const DefaultSize = 32

// MaxSize is the largest font size, in pixels, that is drawn.
// Sections with a larger size are skipped.
const MaxSize = 512

// Section is a single run of text queued for drawing.
type Section struct {
	// Text is the string to draw. It is drawn on a single line.
	Text string

	// X and Y are the position of the top-left corner of the text
	// on the screen, in pixels.
	X, Y float32

	// Size is the font size in pixels.
	Size float32

	// Color is the color of the text.
	Color color.RGBA
}

func (s Section) String() string {
	return fmt.Sprintf("%q at (%g,%g) size %g", s.Text, s.X, s.Y, s.Size)
}
