// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package renderbuffer

import (
	"fmt"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/renderbuffer/format"
	"github.com/gogpu/renderbuffer/surface"
)

// Storage is the pixel storage behind a Renderbuffer.
//
// Accessors have no side effects. RenderTarget and SharedImage return an
// owned reference that the caller must release, or nil when the storage has
// no backing image.
type Storage interface {
	// Width returns the width in pixels.
	Width() int

	// Height returns the height in pixels.
	Height() int

	// Format returns the public format reported to callers.
	Format() format.Format

	// InternalFormat returns the pixel format of the backing image.
	InternalFormat() gputypes.TextureFormat

	// Samples returns the multisample count, 0 for single-sampled storage.
	Samples() int

	// RenderTarget returns the backing image with a reference added.
	RenderTarget() *surface.Image

	// SharedImage is like RenderTarget and also marks the image shared.
	SharedImage() *surface.Image

	// IsShared reports whether the backing image is marked shared. Storage
	// with no backing image is never shared.
	IsShared() bool

	// Delegate returns the object that owns the backing memory on the
	// renderbuffer's behalf, or nil when the storage owns it itself.
	Delegate() ProxyOwner

	// Destroy drops the storage's references to its backing resources.
	Destroy()
}

// ProxyOwner is implemented by objects that keep a proxy reference count for
// renderbuffers viewing their memory.
type ProxyOwner interface {
	AddProxyRef(proxy *Renderbuffer)
	ReleaseProxy(proxy *Renderbuffer)
}

// Texture is the part of a 2D texture a TextureStorage needs.
type Texture interface {
	ProxyOwner

	Width(level int) int
	Height(level int) int
	Format(level int) format.Format
	InternalFormat(level int) gputypes.TextureFormat

	// RenderTarget returns the level's image with a reference added, or nil.
	RenderTarget(level int) *surface.Image

	// SharedImage is like RenderTarget and also marks the image shared.
	SharedImage(level int) *surface.Image

	IsShared(level int) bool
}

// dedicated is the state shared by storages that own their surface.
type dedicated struct {
	width    int
	height   int
	format   format.Format
	internal gputypes.TextureFormat
	samples  int
	image    *surface.Image
}

func emptyDedicated() dedicated {
	return dedicated{
		format:   format.RGBA4,
		internal: gputypes.TextureFormatRGBA8Unorm,
	}
}

// adopt takes a reference on img and copies its attributes.
func (d *dedicated) adopt(img *surface.Image, public func(gputypes.TextureFormat) format.Format) {
	img.AddRef()
	d.image = img
	d.width = img.Width()
	d.height = img.Height()
	d.internal = img.Format()
	d.format = public(d.internal)
	d.samples = surface.SamplesFromDepth(img.Depth())
}

// Width returns the width in pixels.
func (d *dedicated) Width() int { return d.width }

// Height returns the height in pixels.
func (d *dedicated) Height() int { return d.height }

// Format returns the public format.
func (d *dedicated) Format() format.Format { return d.format }

// InternalFormat returns the internal pixel format.
func (d *dedicated) InternalFormat() gputypes.TextureFormat { return d.internal }

// Samples returns the multisample count.
func (d *dedicated) Samples() int { return d.samples }

// RenderTarget returns the backing image with a reference added, or nil.
func (d *dedicated) RenderTarget() *surface.Image {
	if d.image == nil {
		return nil
	}
	d.image.AddRef()
	return d.image
}

// SharedImage returns the backing image with a reference added and marks
// it shared, or returns nil.
func (d *dedicated) SharedImage() *surface.Image {
	if d.image == nil {
		return nil
	}
	d.image.AddRef()
	d.image.MarkShared()
	return d.image
}

// IsShared reports whether the backing image is marked shared.
func (d *dedicated) IsShared() bool {
	return d.image != nil && d.image.IsShared()
}

// Delegate returns nil: dedicated storage owns its surface.
func (d *dedicated) Delegate() ProxyOwner { return nil }

// Destroy releases the backing image. Calling it again does nothing.
func (d *dedicated) Destroy() {
	if d.image != nil {
		d.image.Release()
		d.image = nil
	}
}

// allocate requests a surface when both dimensions are positive. It returns
// nil for empty sizes and an ErrOutOfMemory error when the allocator fails.
func allocate(kind string, width, height int, create func() (*surface.Image, error)) (*surface.Image, error) {
	if width <= 0 || height <= 0 {
		return nil, nil
	}

	img, err := create()
	if err == nil && img != nil {
		Logger().Debug("renderbuffer: surface allocated", "kind", kind, "image", img)
		return img, nil
	}
	if img != nil {
		img.Release()
	}

	Logger().Warn("renderbuffer: surface allocation failed",
		"kind", kind, "width", width, "height", height, "err", err)
	if err != nil {
		return nil, fmt.Errorf("%w: %s %dx%d: %w", ErrOutOfMemory, kind, width, height, err)
	}
	return nil, fmt.Errorf("%w: %s %dx%d", ErrOutOfMemory, kind, width, height)
}
