// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package system hosts a single native window: it runs the event
// loop, forwards size changes to the renderer, and redraws the view
// each time the pending events have been drained.
package system

import (
	"image"
	"log/slog"

	"cogentcore.org/slate/base/errors"
	"cogentcore.org/slate/events"
	"cogentcore.org/slate/gpu"
	"cogentcore.org/slate/widget"
)

// ErrSourceExhausted is returned by [Host.Run] when the event source
// has no more events and the host never started closing.
var ErrSourceExhausted = errors.New("system: event source exhausted")

// Window is the native window that a [Host] manages.
type Window interface {

	// RequestRedraw asks for a [events.WindowPaint] event to be delivered.
	RequestRedraw()

	// Size returns the size of the window framebuffer in pixels.
	Size() image.Point

	// SetTitle sets the title of the window.
	SetTitle(title string)

	// SetSize sets the size of the window in screen coordinates.
	SetSize(size image.Point)
}

// Renderer draws views into the window surface. It is implemented
// by [*gpu.Context].
type Renderer interface {
	Reconfigure(size image.Point)
	Render(view *widget.View) error
	Size() image.Point
	Release()
}

var _ Renderer = (*gpu.Context)(nil)

// Host owns a window, its renderer and the view drawn into it,
// and moves through [States] as events arrive.
type Host struct {

	// Window is the native window.
	Window Window

	// View is the widget tree drawn each frame.
	View *widget.View

	// Update, if set, is called before each frame is rendered.
	Update func()

	state    States
	renderer Renderer
}

// NewHost returns a new [Uninitialized] host for the given window and view.
func NewHost(win Window, view *widget.View) *Host {
	return &Host{Window: win, View: view}
}

// State returns the current state of the host.
func (h *Host) State() States {
	return h.state
}

// Renderer returns the renderer, which is only valid in the
// [Ready] and [Closing] states.
func (h *Host) Renderer() Renderer {
	return h.renderer
}

// Ready attaches the given renderer and moves the host to [Ready].
// It only has an effect while the host is [Uninitialized].
func (h *Host) Ready(r Renderer) {
	if h.state != Uninitialized {
		slog.Warn("host is already initialized", "state", h.state)
		return
	}
	h.renderer = r
	h.setState(Ready)
}

func (h *Host) setState(s States) {
	slog.Debug("host state", "from", h.state, "to", s)
	h.state = s
}

// HandleEvent handles the given event according to the current state.
// Events are ignored unless the host is [Ready].
func (h *Host) HandleEvent(ev events.Event) {
	if h.state != Ready {
		return
	}
	switch ev.Type {
	case events.WindowClose:
		h.setState(Closing)
	case events.WindowResize, events.ScaleChange:
		h.renderer.Reconfigure(ev.Size)
	case events.EventsDrained:
		h.Window.RequestRedraw()
	case events.WindowPaint:
		h.paint()
	}
}

// paint renders one frame and handles its surface errors.
func (h *Host) paint() {
	if h.Update != nil {
		h.Update()
	}
	err := h.renderer.Render(h.View)
	switch {
	case err == nil:
	case errors.Is(err, gpu.ErrOutOfMemory):
		slog.Error("closing window after fatal render error", "err", err)
		h.setState(Closing)
	case errors.Is(err, gpu.ErrSurfaceLost):
		slog.Warn("reconfiguring lost surface", "err", err)
		h.renderer.Reconfigure(h.renderer.Size())
	default:
		slog.Warn("dropped frame", "err", err)
	}
}

// Run handles the events of the given source until the host starts
// closing, at which point it releases the renderer, moves to
// [Terminated] and returns nil. It returns [ErrSourceExhausted] if the
// source runs out of events first.
func (h *Host) Run(src events.Source) error {
	for {
		ev, ok := src.Next()
		if !ok {
			return ErrSourceExhausted
		}
		h.HandleEvent(ev)
		if h.state == Closing {
			h.terminate()
			return nil
		}
	}
}

func (h *Host) terminate() {
	if h.renderer != nil {
		h.renderer.Release()
		h.renderer = nil
	}
	h.setState(Terminated)
}
