// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package renderbuffer

import (
	"errors"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/renderbuffer/format"
	"github.com/gogpu/renderbuffer/surface"
)

var errFakeOOM = errors.New("fake: out of device memory")

// fakeAllocator records calls and creates plain images.
type fakeAllocator struct {
	supported []int
	fail      bool

	colorCalls int
	depthCalls int
	lastSample int
	lastFormat gputypes.TextureFormat
	released   int
}

func newFakeAllocator() *fakeAllocator {
	return &fakeAllocator{supported: []int{1, 2, 4}}
}

func (a *fakeAllocator) create(w, h int, f gputypes.TextureFormat, samples int) (*surface.Image, error) {
	a.lastSample = samples
	a.lastFormat = f
	if a.fail {
		return nil, errFakeOOM
	}
	return surface.NewImage(surface.Descriptor{
		Width:  w,
		Height: h,
		Format: f,
		Depth:  surface.DepthForSamples(samples),
	}, surface.WithReleaseFunc(func(*surface.Image) { a.released++ }))
}

func (a *fakeAllocator) CreateRenderTarget(w, h int, f gputypes.TextureFormat, samples int, lockable bool) (*surface.Image, error) {
	a.colorCalls++
	return a.create(w, h, f, samples)
}

func (a *fakeAllocator) CreateDepthStencilSurface(w, h int, f gputypes.TextureFormat, samples int, lockable bool) (*surface.Image, error) {
	a.depthCalls++
	return a.create(w, h, f, samples)
}

func (a *fakeAllocator) SupportedMultisampleCount(requested int) int {
	return surface.ClampSamples(a.supported, requested)
}

func (a *fakeAllocator) calls() int { return a.colorCalls + a.depthCalls }

// limitedAllocator adds a dimension limit to fakeAllocator.
type limitedAllocator struct {
	*fakeAllocator
	max int
}

func (a limitedAllocator) MaxDimension() int { return a.max }

// fakeTexture is a single-level texture that counts proxy references.
type fakeTexture struct {
	image     *surface.Image
	format    format.Format
	proxyRefs int
	added     []*Renderbuffer
	released  []*Renderbuffer
}

func newFakeTexture(w, h int) *fakeTexture {
	img, err := surface.NewImage(surface.Descriptor{
		Width:  w,
		Height: h,
		Format: gputypes.TextureFormatRGBA8Unorm,
	})
	if err != nil {
		panic(err)
	}
	return &fakeTexture{image: img, format: format.RGBA8}
}

func (t *fakeTexture) AddProxyRef(rb *Renderbuffer) {
	t.proxyRefs++
	t.added = append(t.added, rb)
}

func (t *fakeTexture) ReleaseProxy(rb *Renderbuffer) {
	t.proxyRefs--
	t.released = append(t.released, rb)
}

func (t *fakeTexture) level(i int) *surface.Image {
	if i != 0 {
		return nil
	}
	return t.image
}

func (t *fakeTexture) Width(i int) int {
	if img := t.level(i); img != nil {
		return img.Width()
	}
	return 0
}

func (t *fakeTexture) Height(i int) int {
	if img := t.level(i); img != nil {
		return img.Height()
	}
	return 0
}

func (t *fakeTexture) Format(i int) format.Format {
	if t.level(i) == nil {
		return format.None
	}
	return t.format
}

func (t *fakeTexture) InternalFormat(i int) gputypes.TextureFormat {
	if img := t.level(i); img != nil {
		return img.Format()
	}
	return gputypes.TextureFormatUndefined
}

func (t *fakeTexture) RenderTarget(i int) *surface.Image {
	img := t.level(i)
	if img != nil {
		img.AddRef()
	}
	return img
}

func (t *fakeTexture) SharedImage(i int) *surface.Image {
	img := t.level(i)
	if img != nil {
		img.AddRef()
		img.MarkShared()
	}
	return img
}

func (t *fakeTexture) IsShared(i int) bool {
	img := t.level(i)
	return img != nil && img.IsShared()
}
