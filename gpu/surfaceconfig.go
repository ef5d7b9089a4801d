// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"fmt"
	"image"
	"slices"

	"github.com/cogentcore/webgpu/wgpu"
)

// SurfaceConfig is the configuration applied to the window surface.
// Width and Height are always the last applied positive size.
type SurfaceConfig struct {
	Format        wgpu.TextureFormat
	Width, Height int
	PresentMode   wgpu.PresentMode
	AlphaMode     wgpu.CompositeAlphaMode
}

// Size returns the size of the surface as a point.
func (sc SurfaceConfig) Size() image.Point {
	return image.Pt(sc.Width, sc.Height)
}

func (sc SurfaceConfig) String() string {
	return fmt.Sprintf("%dx%d format=%v present=%s alpha=%v", sc.Width, sc.Height, sc.Format, PresentModeName(sc.PresentMode), sc.AlphaMode)
}

// configuration returns the WebGPU form of the config.
func (sc SurfaceConfig) configuration() *wgpu.SurfaceConfiguration {
	return &wgpu.SurfaceConfiguration{
		Usage:       wgpu.TextureUsageRenderAttachment,
		Format:      sc.Format,
		Width:       uint32(sc.Width),
		Height:      uint32(sc.Height),
		PresentMode: sc.PresentMode,
		AlphaMode:   sc.AlphaMode,
	}
}

// Capabilities are what a surface supports on a given adapter,
// each list in the order of preference reported by the backend.
type Capabilities struct {
	Formats      []wgpu.TextureFormat
	PresentModes []wgpu.PresentMode
	AlphaModes   []wgpu.CompositeAlphaMode
}

// PresentModes are the names of the present modes that can be
// requested in [Options.PresentMode].
var PresentModes = map[string]wgpu.PresentMode{
	"fifo":         wgpu.PresentModeFifo,
	"fifo-relaxed": wgpu.PresentModeFifoRelaxed,
	"immediate":    wgpu.PresentModeImmediate,
	"mailbox":      wgpu.PresentModeMailbox,
}

// PresentModeName returns the name of the given present mode
// as used in [PresentModes].
func PresentModeName(mode wgpu.PresentMode) string {
	for nm, m := range PresentModes {
		if m == mode {
			return nm
		}
	}
	return fmt.Sprintf("PresentMode(%d)", mode)
}

// IsSRGB returns whether the given format stores sRGB-encoded color,
// in which case the GPU converts linear shader output on write.
func IsSRGB(format wgpu.TextureFormat) bool {
	switch format {
	case wgpu.TextureFormatRGBA8UnormSrgb, wgpu.TextureFormatBGRA8UnormSrgb:
		return true
	}
	return false
}

// SelectFormat returns the first sRGB format in the given list,
// or else the first format. It returns [ErrNoSurfaceFormat] if
// the list is empty.
func SelectFormat(formats []wgpu.TextureFormat) (wgpu.TextureFormat, error) {
	if len(formats) == 0 {
		return wgpu.TextureFormatUndefined, ErrNoSurfaceFormat
	}
	if i := slices.IndexFunc(formats, IsSRGB); i >= 0 {
		return formats[i], nil
	}
	return formats[0], nil
}

// SelectPresentMode returns the mode named by want if it is in the
// given list, and otherwise the first mode in the list. FIFO is
// returned for an empty list, since every surface must support it.
func SelectPresentMode(modes []wgpu.PresentMode, want string) wgpu.PresentMode {
	if m, ok := PresentModes[want]; ok && slices.Contains(modes, m) {
		return m
	}
	if len(modes) == 0 {
		return wgpu.PresentModeFifo
	}
	return modes[0]
}

// SelectAlphaMode returns the first mode in the given list,
// or the automatic mode if the list is empty.
func SelectAlphaMode(modes []wgpu.CompositeAlphaMode) wgpu.CompositeAlphaMode {
	if len(modes) == 0 {
		return wgpu.CompositeAlphaModeAuto
	}
	return modes[0]
}
