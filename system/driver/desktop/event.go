// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package desktop

import (
	"image"

	"cogentcore.org/slate/events"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// fbResized is the glfw framebuffer size callback.
func (w *Window) fbResized(gw *glfw.Window, width, height int) {
	w.Events.Send(events.NewResize(image.Pt(width, height)))
}

// scaleChanged is the glfw content scale callback. The framebuffer
// size is what the surface needs, so that is what is sent.
func (w *Window) scaleChanged(gw *glfw.Window, x, y float32) {
	width, height := gw.GetFramebufferSize()
	w.Events.Send(events.NewScaleChange(image.Pt(width, height)))
}

// closeRequested is the glfw close callback.
func (w *Window) closeRequested(gw *glfw.Window) {
	w.Events.Send(events.NewEvent(events.WindowClose))
}

// refresh is the glfw window refresh callback, called when the
// contents of the window are damaged, such as after being uncovered.
func (w *Window) refresh(gw *glfw.Window) {
	w.RequestRedraw()
}
