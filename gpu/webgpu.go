// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"fmt"
	"image"
	"image/color"
	"log/slog"

	"cogentcore.org/slate/fonts"
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/lucasb-eyer/go-colorful"
)

// SurfaceSource is a native window that a WebGPU surface can be
// created for.
type SurfaceSource interface {

	// SurfaceDescriptor returns the platform descriptor of the window.
	SurfaceDescriptor() *wgpu.SurfaceDescriptor

	// Size returns the current size of the window framebuffer in pixels.
	Size() image.Point
}

// Init creates a WebGPU surface for the given window, negotiates an
// adapter and device for it, builds the text brush and configures the
// surface to the current window size. It blocks until the adapter and
// device requests resolve. Any error it returns is fatal for the window.
// IMPORTANT: must be called on the main thread.
func Init(src SurfaceSource, opts *Options) (*Context, error) {
	opts = opts.orDefaults()
	font, err := fonts.Open(opts.Font)
	if err != nil {
		return nil, fmt.Errorf("gpu: %w", err)
	}
	be, err := newWebGPUBackend(src)
	if err != nil {
		return nil, err
	}
	format, err := SelectFormat(be.caps.Formats)
	if err != nil {
		be.Release()
		return nil, err
	}
	size := src.Size()
	br, err := newOverlayBrush(be, format, font, image.Pt(max(size.X, 1), max(size.Y, 1)))
	if err != nil {
		be.Release()
		return nil, fmt.Errorf("gpu: creating text brush: %w", err)
	}
	c, err := NewContext(be, br, size, opts)
	if err != nil {
		br.Release()
		be.Release()
		return nil, err
	}
	return c, nil
}

// webgpuBackend is the WebGPU implementation of [Backend].
type webgpuBackend struct {
	instance *wgpu.Instance
	surface  *wgpu.Surface
	adapter  *wgpu.Adapter
	device   *wgpu.Device
	queue    *wgpu.Queue
	caps     Capabilities

	// format is the currently configured surface format.
	format wgpu.TextureFormat
}

func newWebGPUBackend(src SurfaceSource) (*webgpuBackend, error) {
	b := &webgpuBackend{}
	b.instance = wgpu.CreateInstance(nil)
	b.surface = b.instance.CreateSurface(src.SurfaceDescriptor())
	adapter, err := b.instance.RequestAdapter(&wgpu.RequestAdapterOptions{
		CompatibleSurface: b.surface,
		PowerPreference:   wgpu.PowerPreferenceHighPerformance,
	})
	if err != nil || adapter == nil {
		b.Release()
		return nil, fmt.Errorf("%w: requesting adapter: %v", ErrNoAdapter, err)
	}
	b.adapter = adapter
	slog.Info("adapter selected")

	device, err := adapter.RequestDevice(&wgpu.DeviceDescriptor{Label: "slate"})
	if err != nil || device == nil {
		b.Release()
		return nil, fmt.Errorf("%w: requesting device: %v", ErrNoAdapter, err)
	}
	b.device = device
	b.queue = device.GetQueue()

	caps := b.surface.GetCapabilities(adapter)
	b.caps = Capabilities{
		Formats:      caps.Formats,
		PresentModes: caps.PresentModes,
		AlphaModes:   caps.AlphaModes,
	}
	slog.Debug("surface capabilities", "formats", b.caps.Formats, "presentModes", b.caps.PresentModes, "alphaModes", b.caps.AlphaModes)
	return b, nil
}

func (b *webgpuBackend) Capabilities() Capabilities {
	return b.caps
}

func (b *webgpuBackend) Configure(sc SurfaceConfig) error {
	if sc.Width <= 0 || sc.Height <= 0 {
		return fmt.Errorf("gpu: invalid surface size %dx%d", sc.Width, sc.Height)
	}
	b.surface.Configure(b.adapter, b.device, sc.configuration())
	b.format = sc.Format
	return nil
}

func (b *webgpuBackend) Acquire() (Frame, error) {
	tex, err := b.surface.GetCurrentTexture()
	if err != nil {
		return nil, err
	}
	view, err := tex.CreateView(nil)
	if err != nil {
		tex.Release()
		return nil, err
	}
	return &webgpuFrame{surface: b.surface, texture: tex, view: view}, nil
}

func (b *webgpuBackend) EncodeClear(f Frame, clear color.RGBA) (CommandBuffer, error) {
	fr, ok := f.(*webgpuFrame)
	if !ok {
		return nil, fmt.Errorf("gpu: frame of type %T was not acquired from WebGPU", f)
	}
	enc, err := b.device.CreateCommandEncoder(&wgpu.CommandEncoderDescriptor{Label: "clear"})
	if err != nil {
		return nil, err
	}
	defer enc.Release()
	pass := enc.BeginRenderPass(&wgpu.RenderPassDescriptor{
		ColorAttachments: []wgpu.RenderPassColorAttachment{{
			View:       fr.view,
			LoadOp:     wgpu.LoadOpClear,
			StoreOp:    wgpu.StoreOpStore,
			ClearValue: clearValue(clear, IsSRGB(b.format)),
		}},
	})
	pass.End()
	pass.Release() // must happen before Finish
	buf, err := enc.Finish(nil)
	if err != nil {
		return nil, err
	}
	return &webgpuCommands{buf: buf}, nil
}

func (b *webgpuBackend) Submit(cmds ...CommandBuffer) error {
	bufs := make([]*wgpu.CommandBuffer, 0, len(cmds))
	for _, c := range cmds {
		if c == nil {
			continue
		}
		wc, ok := c.(*webgpuCommands)
		if !ok {
			return fmt.Errorf("gpu: command buffer of type %T was not encoded by WebGPU", c)
		}
		bufs = append(bufs, wc.buf)
	}
	if len(bufs) > 0 {
		b.queue.Submit(bufs...)
	}
	return nil
}

func (b *webgpuBackend) Release() {
	if b.queue != nil {
		b.queue.Release()
		b.queue = nil
	}
	if b.device != nil {
		b.device.Release()
		b.device = nil
	}
	if b.adapter != nil {
		b.adapter.Release()
		b.adapter = nil
	}
	if b.surface != nil {
		b.surface.Release()
		b.surface = nil
	}
	if b.instance != nil {
		b.instance.Release()
		b.instance = nil
	}
}

// clearValue returns the WebGPU clear value for the given color.
// Clear values are in the linear space of the render target, so the
// color is linearized for sRGB targets to keep its on-screen value.
func clearValue(c color.RGBA, srgb bool) wgpu.Color {
	cf := colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
	a := float64(c.A) / 255
	if srgb {
		r, g, b := cf.LinearRgb()
		return wgpu.Color{R: r, G: g, B: b, A: a}
	}
	return wgpu.Color{R: cf.R, G: cf.G, B: cf.B, A: a}
}

// webgpuFrame is the WebGPU implementation of [Frame].
type webgpuFrame struct {
	surface *wgpu.Surface
	texture *wgpu.Texture
	view    *wgpu.TextureView
}

func (f *webgpuFrame) Present() {
	f.surface.Present()
}

func (f *webgpuFrame) Release() {
	if f.view != nil {
		f.view.Release()
		f.view = nil
	}
	if f.texture != nil {
		f.texture.Release()
		f.texture = nil
	}
}

// webgpuCommands is the WebGPU implementation of [CommandBuffer].
type webgpuCommands struct {
	buf *wgpu.CommandBuffer
}

func (c *webgpuCommands) Release() {
	if c.buf != nil {
		c.buf.Release()
		c.buf = nil
	}
}
