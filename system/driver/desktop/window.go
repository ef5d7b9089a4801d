// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package desktop provides the native window for desktop platforms,
// using glfw. A [Window] is at once the window managed by a
// [system.Host], the source of its events, and the source of the
// WebGPU surface that the host renders into.
package desktop

import (
	"fmt"
	"image"
	"log/slog"
	"runtime"

	"cogentcore.org/slate/events"
	"cogentcore.org/slate/gpu"
	"cogentcore.org/slate/system"
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/cogentcore/webgpu/wgpuglfw"
	"github.com/go-gl/glfw/v3.3/glfw"
)

func init() {
	// glfw requires all calls to be made from the main thread
	runtime.LockOSThread()
}

var (
	_ system.Window     = (*Window)(nil)
	_ events.Source     = (*Window)(nil)
	_ gpu.SurfaceSource = (*Window)(nil)
)

// Window is a glfw window. It must only be used on the main thread.
type Window struct {

	// Glw is the glfw window.
	Glw *glfw.Window

	// Events are the pending events of the window, filled in
	// by the glfw callbacks.
	Events events.Queue

	title string

	// wait blocks until there are platform events and processes them.
	// It is glfw.WaitEvents unless replaced in tests.
	wait func()
}

// NewWindow initializes glfw and opens a new resizable window with
// the given title and size in screen coordinates. The window has no
// client API, since it is only drawn into through WebGPU.
// Call [Window.Destroy] when done with it.
func NewWindow(title string, size image.Point) (*Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("desktop: initializing glfw: %w", err)
	}
	glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI)
	glfw.WindowHint(glfw.Resizable, glfw.True)
	glw, err := glfw.CreateWindow(size.X, size.Y, title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("desktop: creating window: %w", err)
	}
	w := &Window{Glw: glw, title: title, wait: glfw.WaitEvents}
	glw.SetFramebufferSizeCallback(w.fbResized)
	glw.SetContentScaleCallback(w.scaleChanged)
	glw.SetCloseCallback(w.closeRequested)
	glw.SetRefreshCallback(w.refresh)
	// the first frame is drawn without waiting for an expose event
	w.RequestRedraw()
	slog.Info("window opened", "title", title, "size", w.Size())
	return w, nil
}

// Next returns the next pending event. When there are none, it blocks
// in glfw until there are new platform events, processes them, and
// follows them with an [events.EventsDrained] event, so it never runs
// out. An idle or minimized window therefore does not spin.
func (w *Window) Next() (events.Event, bool) {
	if w.Events.Len() == 0 {
		if w.wait != nil {
			w.wait()
		}
		w.Events.Send(events.NewEvent(events.EventsDrained))
	}
	return w.Events.Next()
}

// RequestRedraw queues a [events.WindowPaint] event.
func (w *Window) RequestRedraw() {
	w.Events.Send(events.NewEvent(events.WindowPaint))
}

// Size returns the size of the framebuffer in pixels.
func (w *Window) Size() image.Point {
	width, height := w.Glw.GetFramebufferSize()
	return image.Pt(width, height)
}

// Title returns the title of the window.
func (w *Window) Title() string {
	return w.title
}

// SetTitle sets the title of the window.
func (w *Window) SetTitle(title string) {
	w.title = title
	w.Glw.SetTitle(title)
}

// SetSize sets the size of the window in screen coordinates.
func (w *Window) SetSize(size image.Point) {
	w.Glw.SetSize(size.X, size.Y)
}

// SurfaceDescriptor returns the descriptor for creating a WebGPU
// surface for the window.
func (w *Window) SurfaceDescriptor() *wgpu.SurfaceDescriptor {
	return wgpuglfw.GetSurfaceDescriptor(w.Glw)
}

// Destroy closes the window and terminates glfw.
func (w *Window) Destroy() {
	w.Events.Clear()
	if w.Glw != nil {
		w.Glw.Destroy()
		w.Glw = nil
	}
	glfw.Terminate()
}
