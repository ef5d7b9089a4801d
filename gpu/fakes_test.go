// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"fmt"
	"image/color"

	"cogentcore.org/slate/text"
	"github.com/cogentcore/webgpu/wgpu"
)

// recorder is a shared, ordered log of calls made on the fakes.
type recorder struct {
	calls []string
}

func (r *recorder) add(format string, args ...any) {
	r.calls = append(r.calls, fmt.Sprintf(format, args...))
}

type fakeFrame struct {
	rec *recorder
}

func (f *fakeFrame) Present() { f.rec.add("present") }
func (f *fakeFrame) Release() { f.rec.add("release frame") }

type fakeCommands struct {
	rec  *recorder
	name string
}

func (c *fakeCommands) Release() { c.rec.add("release %s", c.name) }

type fakeBackend struct {
	rec        *recorder
	caps       Capabilities
	configs    []SurfaceConfig
	acquireErr error
	submitted  [][]string
	clears     []color.RGBA
	released   int
}

func newFakeBackend(rec *recorder) *fakeBackend {
	return &fakeBackend{
		rec: rec,
		caps: Capabilities{
			Formats:      []wgpu.TextureFormat{wgpu.TextureFormatBGRA8Unorm, wgpu.TextureFormatBGRA8UnormSrgb},
			PresentModes: []wgpu.PresentMode{wgpu.PresentModeFifo, wgpu.PresentModeMailbox},
			AlphaModes:   []wgpu.CompositeAlphaMode{wgpu.CompositeAlphaModeOpaque, wgpu.CompositeAlphaModePremultiplied},
		},
	}
}

func (b *fakeBackend) Capabilities() Capabilities { return b.caps }

func (b *fakeBackend) Configure(sc SurfaceConfig) error {
	b.rec.add("configure %dx%d", sc.Width, sc.Height)
	b.configs = append(b.configs, sc)
	return nil
}

func (b *fakeBackend) Acquire() (Frame, error) {
	if b.acquireErr != nil {
		b.rec.add("acquire failed")
		return nil, b.acquireErr
	}
	b.rec.add("acquire")
	return &fakeFrame{rec: b.rec}, nil
}

func (b *fakeBackend) EncodeClear(f Frame, clear color.RGBA) (CommandBuffer, error) {
	b.rec.add("encode clear")
	b.clears = append(b.clears, clear)
	return &fakeCommands{rec: b.rec, name: "clear"}, nil
}

func (b *fakeBackend) Submit(cmds ...CommandBuffer) error {
	var names []string
	for _, c := range cmds {
		if c == nil {
			continue
		}
		names = append(names, c.(*fakeCommands).name)
	}
	b.rec.add("submit %v", names)
	b.submitted = append(b.submitted, names)
	return nil
}

func (b *fakeBackend) Release() {
	b.rec.add("release backend")
	b.released++
}

type fakeBrush struct {
	rec      *recorder
	queued   []text.Section
	drawn    [][]text.Section
	sizes    [][2]int
	drawErr  error
	released int
}

func (br *fakeBrush) Queue(s text.Section) {
	br.rec.add("queue %q", s.Text)
	br.queued = append(br.queued, s)
}

func (br *fakeBrush) Resize(width, height int) {
	br.rec.add("resize brush %dx%d", width, height)
	br.sizes = append(br.sizes, [2]int{width, height})
}

func (br *fakeBrush) DrawQueued(f Frame) (CommandBuffer, error) {
	br.drawn = append(br.drawn, br.queued)
	br.queued = nil
	if br.drawErr != nil {
		br.rec.add("draw failed")
		return nil, br.drawErr
	}
	br.rec.add("draw text")
	return &fakeCommands{rec: br.rec, name: "text"}, nil
}

func (br *fakeBrush) Release() {
	br.rec.add("release brush")
	br.released++
}
