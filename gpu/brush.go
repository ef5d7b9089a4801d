// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	_ "embed"
	"fmt"
	"image"

	"cogentcore.org/slate/base/errors"
	"cogentcore.org/slate/text"
	"github.com/cogentcore/webgpu/wgpu"
)

//go:embed shaders/overlay.wgsl
var overlayShader string

// overlayBrush is the WebGPU implementation of [Brush]. Queued text
// is rasterized on the CPU into an image the size of the viewport,
// which is uploaded to a texture and blended over the frame with
// premultiplied alpha.
type overlayBrush struct {
	device *wgpu.Device
	queue  *wgpu.Queue
	raster *text.Rasterizer

	// texFormat is the format of the overlay texture, which is sRGB
	// if and only if the surface is.
	texFormat wgpu.TextureFormat

	pipeline  *wgpu.RenderPipeline
	texture   *wgpu.Texture
	view      *wgpu.TextureView
	bindGroup *wgpu.BindGroup
	size      image.Point
}

func newOverlayBrush(be *webgpuBackend, format wgpu.TextureFormat, font []byte, size image.Point) (*overlayBrush, error) {
	raster, err := text.NewRasterizer(font, size)
	if err != nil {
		return nil, err
	}
	br := &overlayBrush{
		device:    be.device,
		queue:     be.queue,
		raster:    raster,
		texFormat: wgpu.TextureFormatRGBA8Unorm,
	}
	if IsSRGB(format) {
		br.texFormat = wgpu.TextureFormatRGBA8UnormSrgb
	}
	if err := br.configPipeline(format); err != nil {
		br.Release()
		return nil, err
	}
	if err := br.configTexture(size); err != nil {
		br.Release()
		return nil, err
	}
	return br, nil
}

// configPipeline creates the render pipeline that draws the overlay
// onto a target of the given format.
func (br *overlayBrush) configPipeline(format wgpu.TextureFormat) error {
	sh, err := br.device.CreateShaderModule(&wgpu.ShaderModuleDescriptor{
		Label:          "overlay",
		WGSLDescriptor: &wgpu.ShaderModuleWGSLDescriptor{Code: overlayShader},
	})
	if err != nil {
		return err
	}
	defer sh.Release()
	pl, err := br.device.CreateRenderPipeline(&wgpu.RenderPipelineDescriptor{
		Label: "overlay",
		Vertex: wgpu.VertexState{
			Module:     sh,
			EntryPoint: "vs_main",
		},
		Primitive: wgpu.PrimitiveState{
			Topology:  wgpu.PrimitiveTopologyTriangleList,
			FrontFace: wgpu.FrontFaceCCW,
			CullMode:  wgpu.CullModeNone,
		},
		Multisample: wgpu.MultisampleState{
			Count: 1,
			Mask:  0xFFFFFFFF,
		},
		Fragment: &wgpu.FragmentState{
			Module:     sh,
			EntryPoint: "fs_main",
			Targets: []wgpu.ColorTargetState{{
				Format:    format,
				Blend:     &wgpu.BlendStatePremultipliedAlphaBlending,
				WriteMask: wgpu.ColorWriteMaskAll,
			}},
		},
	})
	if err != nil {
		return err
	}
	br.pipeline = pl
	return nil
}

// configTexture (re)creates the overlay texture and its bind group
// at the given size.
func (br *overlayBrush) configTexture(size image.Point) error {
	br.releaseTexture()
	tex, err := br.device.CreateTexture(&wgpu.TextureDescriptor{
		Label: "overlay",
		Size: wgpu.Extent3D{
			Width:              uint32(size.X),
			Height:             uint32(size.Y),
			DepthOrArrayLayers: 1,
		},
		MipLevelCount: 1,
		SampleCount:   1,
		Dimension:     wgpu.TextureDimension2D,
		Format:        br.texFormat,
		Usage:         wgpu.TextureUsageTextureBinding | wgpu.TextureUsageCopyDst,
	})
	if err != nil {
		return err
	}
	br.texture = tex
	view, err := tex.CreateView(nil)
	if err != nil {
		return err
	}
	br.view = view
	layout := br.pipeline.GetBindGroupLayout(0)
	defer layout.Release()
	bg, err := br.device.CreateBindGroup(&wgpu.BindGroupDescriptor{
		Label:  "overlay",
		Layout: layout,
		Entries: []wgpu.BindGroupEntry{{
			Binding:     0,
			TextureView: view,
		}},
	})
	if err != nil {
		return err
	}
	br.bindGroup = bg
	br.size = size
	return nil
}

func (br *overlayBrush) Queue(s text.Section) {
	br.raster.Queue(s)
}

func (br *overlayBrush) Resize(width, height int) {
	size := image.Pt(width, height)
	if width <= 0 || height <= 0 || size == br.size {
		return
	}
	br.raster.Resize(size)
	errors.Log(br.configTexture(size))
}

func (br *overlayBrush) DrawQueued(f Frame) (CommandBuffer, error) {
	img := br.raster.Render()
	fr, ok := f.(*webgpuFrame)
	if !ok {
		return nil, fmt.Errorf("gpu: frame of type %T was not acquired from WebGPU", f)
	}
	if br.bindGroup == nil {
		return nil, fmt.Errorf("gpu: text overlay has no texture")
	}
	sz := img.Rect.Size()
	extent := wgpu.Extent3D{Width: uint32(sz.X), Height: uint32(sz.Y), DepthOrArrayLayers: 1}
	br.queue.WriteTexture(
		&wgpu.ImageCopyTexture{
			Aspect:   wgpu.TextureAspectAll,
			Texture:  br.texture,
			MipLevel: 0,
			Origin:   wgpu.Origin3D{X: 0, Y: 0, Z: 0},
		},
		img.Pix,
		&wgpu.TextureDataLayout{
			Offset:       0,
			BytesPerRow:  uint32(img.Stride),
			RowsPerImage: uint32(sz.Y),
		},
		&extent,
	)

	enc, err := br.device.CreateCommandEncoder(&wgpu.CommandEncoderDescriptor{Label: "text"})
	if err != nil {
		return nil, err
	}
	defer enc.Release()
	pass := enc.BeginRenderPass(&wgpu.RenderPassDescriptor{
		ColorAttachments: []wgpu.RenderPassColorAttachment{{
			View:    fr.view,
			LoadOp:  wgpu.LoadOpLoad,
			StoreOp: wgpu.StoreOpStore,
		}},
	})
	pass.SetPipeline(br.pipeline)
	pass.SetBindGroup(0, br.bindGroup, nil)
	pass.Draw(3, 1, 0, 0)
	pass.End()
	pass.Release() // must happen before Finish
	buf, err := enc.Finish(nil)
	if err != nil {
		return nil, err
	}
	return &webgpuCommands{buf: buf}, nil
}

func (br *overlayBrush) releaseTexture() {
	if br.bindGroup != nil {
		br.bindGroup.Release()
		br.bindGroup = nil
	}
	if br.view != nil {
		br.view.Release()
		br.view = nil
	}
	if br.texture != nil {
		br.texture.Release()
		br.texture = nil
	}
	br.size = image.Point{}
}

func (br *overlayBrush) Release() {
	br.releaseTexture()
	if br.pipeline != nil {
		br.pipeline.Release()
		br.pipeline = nil
	}
}
