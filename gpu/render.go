// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"fmt"

	"cogentcore.org/slate/base/errors"
	"cogentcore.org/slate/text"
	"cogentcore.org/slate/widget"
)

// errReleased is returned by Render after Release.
var errReleased = errors.New("gpu: context released")

// Layout returns the text sections for the text widgets of the given
// root. The Nth text widget is placed at (0, N*fontSize); other kinds
// of widgets are skipped and take no space.
func Layout(root *widget.Root, fontSize float32) []text.Section {
	var secs []text.Section
	n := 0
	for _, w := range root.Children() {
		if w.Kind() != widget.KindText {
			continue
		}
		secs = append(secs, text.Section{
			Text: w.String(),
			X:    0,
			Y:    float32(n) * fontSize,
			Size: fontSize,
		})
		n++
	}
	return secs
}

// Render draws one frame of the given view: it acquires the next
// surface texture, clears it to the background color, draws the
// text of the view over it, submits both command buffers in that
// order and presents the frame. Failures to acquire the frame are
// returned as one of the surface errors (see [ClassifySurfaceError]).
func (c *Context) Render(view *widget.View) error {
	if c.backend == nil {
		return errReleased
	}
	frame, err := c.backend.Acquire()
	if err != nil {
		return ClassifySurfaceError(err)
	}
	defer frame.Release()

	clearCmd, err := c.backend.EncodeClear(frame, c.clear)
	if err != nil {
		return fmt.Errorf("gpu: encoding clear pass: %w", err)
	}
	defer clearCmd.Release()

	for _, s := range Layout(view.Root(), c.fontSize) {
		s.Color = c.fore
		c.brush.Queue(s)
	}
	textCmd, err := c.brush.DrawQueued(frame)
	if err != nil {
		return fmt.Errorf("gpu: drawing text: %w", err)
	}
	if textCmd != nil {
		defer textCmd.Release()
	}

	if err := c.backend.Submit(clearCmd, textCmd); err != nil {
		return fmt.Errorf("gpu: submitting frame: %w", err)
	}
	frame.Present()
	return nil
}
