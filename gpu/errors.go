// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"fmt"
	"strings"

	"cogentcore.org/slate/base/errors"
)

var (
	// ErrNoAdapter is returned by [Init] when no adapter or device
	// compatible with the window surface can be obtained.
	ErrNoAdapter = errors.New("gpu: no compatible adapter or device")

	// ErrNoSurfaceFormat is returned when the surface reports no formats.
	ErrNoSurfaceFormat = errors.New("gpu: surface reports no formats")
)

// The surface errors that a frame can fail with.
// Timeout and Outdated drop the frame, Lost requires the surface to
// be reconfigured, and OutOfMemory is fatal.
var (
	ErrSurfaceTimeout  = errors.New("gpu: surface timeout")
	ErrSurfaceOutdated = errors.New("gpu: surface outdated")
	ErrSurfaceLost     = errors.New("gpu: surface lost")
	ErrOutOfMemory     = errors.New("gpu: out of memory")
)

// ClassifySurfaceError returns the given error wrapped in the surface
// error it corresponds to, based on its text. Errors that are already
// surface errors are returned unchanged, as is nil. Anything that is
// not recognized is treated as [ErrSurfaceOutdated].
//
// Classification is by text because wgpu.Surface.GetCurrentTexture in
// cogentcore/webgpu v0.23.0 returns only an error message and drops the
// SurfaceGetCurrentTextureStatus code.
// TODO: switch on the status code once the binding exposes it.
func ClassifySurfaceError(err error) error {
	if err == nil {
		return nil
	}
	for _, se := range []error{ErrOutOfMemory, ErrSurfaceLost, ErrSurfaceTimeout, ErrSurfaceOutdated} {
		if errors.Is(err, se) {
			return err
		}
	}
	msg := strings.NewReplacer(" ", "", "_", "", "-", "").Replace(strings.ToLower(err.Error()))
	switch {
	case strings.Contains(msg, "outofmemory"):
		return fmt.Errorf("%w: %w", ErrOutOfMemory, err)
	case strings.Contains(msg, "lost"):
		return fmt.Errorf("%w: %w", ErrSurfaceLost, err)
	case strings.Contains(msg, "timeout"):
		return fmt.Errorf("%w: %w", ErrSurfaceTimeout, err)
	}
	return fmt.Errorf("%w: %w", ErrSurfaceOutdated, err)
}
