// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"image/color"

	"cogentcore.org/slate/text"
)

// Backend is the device side of a [Context]: the window surface and
// the device and queue that render into it. [Init] uses a WebGPU
// implementation.
type Backend interface {

	// Capabilities returns what the surface supports.
	Capabilities() Capabilities

	// Configure applies the given configuration to the surface.
	Configure(sc SurfaceConfig) error

	// Acquire returns the next surface texture to render into.
	Acquire() (Frame, error)

	// EncodeClear returns a command buffer with a single render pass
	// that clears the frame to the given color.
	EncodeClear(f Frame, clear color.RGBA) (CommandBuffer, error)

	// Submit submits the given command buffers to the queue in order.
	// Nil buffers are skipped.
	Submit(cmds ...CommandBuffer) error

	// Release releases the surface, device and all related resources.
	Release()
}

// Frame is an acquired surface texture.
type Frame interface {

	// Present schedules the frame for display.
	Present()

	// Release releases the frame texture after it has been presented
	// or abandoned.
	Release()
}

// CommandBuffer is a finished, not yet submitted, set of commands.
type CommandBuffer interface {
	Release()
}

// Brush draws text onto frames. It accumulates queued sections and
// draws all of them at once.
type Brush interface {

	// Queue adds a section to be drawn by the next DrawQueued.
	Queue(s text.Section)

	// Resize sets the size of the viewport in pixels.
	Resize(width, height int)

	// DrawQueued returns a command buffer that draws the queued text
	// over the existing content of the frame. It empties the queue
	// even if it fails.
	DrawQueued(f Frame) (CommandBuffer, error)

	// Release releases the GPU resources of the brush.
	Release()
}
