// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package texture provides the 2D texture a renderbuffer can view.
//
// Only what attaching a texture level to a renderbuffer needs is modelled:
// per-level images and metadata, the texture's own reference count, and the
// proxy reference count kept on behalf of renderbuffers viewing it.
package texture

import (
	"errors"
	"fmt"
	"image"

	"github.com/gogpu/gputypes"
	"golang.org/x/image/draw"

	"github.com/gogpu/renderbuffer"
	"github.com/gogpu/renderbuffer/format"
	"github.com/gogpu/renderbuffer/object"
	"github.com/gogpu/renderbuffer/surface"
)

// MaxLevels is the number of mip levels a Texture2D can hold.
const MaxLevels = 14

// Texture errors.
var (
	// ErrInvalidLevel is returned for a mip level outside [0, MaxLevels).
	ErrInvalidLevel = errors.New("texture: invalid level")

	// ErrLevelUndefined is returned when a level has no image.
	ErrLevelUndefined = errors.New("texture: level has no image")

	// ErrNoPixels is returned when uploading to a device-resident image.
	ErrNoPixels = errors.New("texture: image has no CPU pixel store")

	// ErrInvalidFormat is returned for formats a texture level cannot hold.
	ErrInvalidFormat = errors.New("texture: invalid format")

	// ErrDestroyed is returned when modifying a destroyed texture.
	ErrDestroyed = errors.New("texture: destroyed")
)

type level struct {
	image  *surface.Image
	format format.Format
}

// Texture2D is a named, reference-counted 2D texture.
//
// The texture is destroyed, releasing every level image, once both its own
// reference count and its proxy reference count are zero. A new texture has
// neither. Texture2D is not safe for concurrent use.
type Texture2D struct {
	obj    object.Named
	alloc  surface.Allocator
	levels [MaxLevels]level

	proxyRefs int
	proxy     *renderbuffer.Renderbuffer
	destroyed bool
}

var _ renderbuffer.Texture = (*Texture2D)(nil)

// New creates an empty texture whose levels are allocated from alloc.
func New(name object.Name, alloc surface.Allocator) *Texture2D {
	return &Texture2D{
		obj:   object.NewNamed(name),
		alloc: alloc,
	}
}

// Name returns the texture's name.
func (t *Texture2D) Name() object.Name { return t.obj.Name() }

// RefCount returns the texture's own reference count.
func (t *Texture2D) RefCount() int { return t.obj.RefCount() }

// ProxyRefCount returns the number of proxy references held by renderbuffers.
func (t *Texture2D) ProxyRefCount() int { return t.proxyRefs }

// Destroyed reports whether the texture has been destroyed.
func (t *Texture2D) Destroyed() bool { return t.destroyed }

// AddRef adds an application reference.
func (t *Texture2D) AddRef() { t.obj.IncRef() }

// Release drops an application reference. The texture survives while
// renderbuffers still proxy it.
func (t *Texture2D) Release() {
	if t.obj.DecRef() == 0 && t.proxyRefs == 0 {
		t.destroy()
	}
}

// AddProxyRef records a reference taken by a renderbuffer viewing the texture.
func (t *Texture2D) AddProxyRef(proxy *renderbuffer.Renderbuffer) {
	t.proxyRefs++
	renderbuffer.Logger().Debug("texture: proxy reference added",
		"texture", t.Name(), "renderbuffer", proxy.Name(), "proxyRefs", t.proxyRefs)
}

// ReleaseProxy drops a proxy reference. When the last one goes, the cached
// proxy renderbuffer is dropped, and the texture is destroyed if the
// application no longer references it either.
func (t *Texture2D) ReleaseProxy(proxy *renderbuffer.Renderbuffer) {
	if t.proxyRefs > 0 {
		t.proxyRefs--
	}
	renderbuffer.Logger().Debug("texture: proxy reference released",
		"texture", t.Name(), "renderbuffer", proxy.Name(), "proxyRefs", t.proxyRefs)

	if t.proxyRefs == 0 {
		t.proxy = nil
		if t.obj.RefCount() == 0 {
			t.destroy()
		}
	}
}

// Renderbuffer returns the renderbuffer presenting level 0 of the texture,
// creating it on first use. It carries the texture's name. The same
// renderbuffer is returned until the proxy reference count drops to zero.
func (t *Texture2D) Renderbuffer() *renderbuffer.Renderbuffer {
	if t.proxy == nil {
		t.proxy = renderbuffer.New(t.Name(), renderbuffer.NewTextureStorage(t, 0))
	}
	return t.proxy
}

func (t *Texture2D) destroy() {
	if t.destroyed {
		return
	}
	for i := range t.levels {
		t.clearLevel(i)
	}
	t.proxy = nil
	t.destroyed = true
	renderbuffer.Logger().Debug("texture: destroyed", "texture", t.Name())
}

func (t *Texture2D) clearLevel(i int) {
	lv := &t.levels[i]
	if lv.image == nil {
		return
	}
	if lv.image.IsShared() {
		renderbuffer.Logger().Debug("texture: orphaning shared level image",
			"texture", t.Name(), "level", i, "image", lv.image)
	}
	lv.image.Release()
	*lv = level{}
}

func checkLevel(i int) error {
	if i < 0 || i >= MaxLevels {
		return fmt.Errorf("%w: %d", ErrInvalidLevel, i)
	}
	return nil
}

// SetLevel defines a mip level of the given size and public format,
// releasing any previous image. A zero width or height leaves the level
// undefined. Depth and stencil formats allocate a depth/stencil surface.
func (t *Texture2D) SetLevel(i, width, height int, f format.Format) error {
	if t.destroyed {
		return ErrDestroyed
	}
	if err := checkLevel(i); err != nil {
		return err
	}
	internal := format.ToInternal(f)
	if internal == gputypes.TextureFormatUndefined {
		return fmt.Errorf("%w: %v", ErrInvalidFormat, f)
	}

	t.clearLevel(i)
	if width <= 0 || height <= 0 {
		return nil
	}

	var (
		img *surface.Image
		err error
	)
	if format.IsDepthStencil(internal) {
		img, err = t.alloc.CreateDepthStencilSurface(width, height, internal, 0, false)
	} else {
		img, err = t.alloc.CreateRenderTarget(width, height, internal, 0, true)
	}
	if err != nil {
		return fmt.Errorf("texture: level %d %dx%d: %w", i, width, height, err)
	}
	if img == nil {
		return fmt.Errorf("texture: level %d %dx%d: %w", i, width, height, renderbuffer.ErrOutOfMemory)
	}

	t.levels[i] = level{image: img, format: f}
	return nil
}

// SetLevelImage makes an existing image the content of a mip level. The
// texture takes its own reference. A nil image leaves the level undefined.
func (t *Texture2D) SetLevelImage(i int, img *surface.Image) error {
	if t.destroyed {
		return ErrDestroyed
	}
	if err := checkLevel(i); err != nil {
		return err
	}

	if img != nil {
		img.AddRef()
	}
	t.clearLevel(i)
	if img == nil {
		return nil
	}

	f := format.FromColor(img.Format())
	if format.IsDepthStencil(img.Format()) {
		f = format.FromDepthStencil(img.Format())
	}
	t.levels[i] = level{image: img, format: f}
	return nil
}

// Upload copies src into a level's CPU pixel store, scaling it when its size
// differs from the level's.
func (t *Texture2D) Upload(i int, src image.Image) error {
	if err := checkLevel(i); err != nil {
		return err
	}
	img := t.levels[i].image
	if img == nil {
		return fmt.Errorf("%w: %d", ErrLevelUndefined, i)
	}
	dst := img.Pixels()
	if dst == nil {
		return ErrNoPixels
	}

	sb := src.Bounds()
	db := dst.Bounds()
	if sb.Dx() == db.Dx() && sb.Dy() == db.Dy() {
		draw.Draw(dst, db, src, sb.Min, draw.Src)
		return nil
	}
	draw.BiLinear.Scale(dst, db, src, sb, draw.Src, nil)
	return nil
}

// Levels returns the number of defined levels starting at level 0.
func (t *Texture2D) Levels() int {
	n := 0
	for n < MaxLevels && t.levels[n].image != nil {
		n++
	}
	return n
}

func (t *Texture2D) levelImage(i int) *surface.Image {
	if i < 0 || i >= MaxLevels {
		return nil
	}
	return t.levels[i].image
}

// Width returns the width of a level, or 0 if it is undefined.
func (t *Texture2D) Width(i int) int {
	if img := t.levelImage(i); img != nil {
		return img.Width()
	}
	return 0
}

// Height returns the height of a level, or 0 if it is undefined.
func (t *Texture2D) Height(i int) int {
	if img := t.levelImage(i); img != nil {
		return img.Height()
	}
	return 0
}

// Format returns the public format of a level, or format.None.
func (t *Texture2D) Format(i int) format.Format {
	if t.levelImage(i) == nil {
		return format.None
	}
	return t.levels[i].format
}

// InternalFormat returns the internal format of a level, or
// gputypes.TextureFormatUndefined.
func (t *Texture2D) InternalFormat(i int) gputypes.TextureFormat {
	if img := t.levelImage(i); img != nil {
		return img.Format()
	}
	return gputypes.TextureFormatUndefined
}

// RenderTarget returns a level image with a reference added, or nil.
func (t *Texture2D) RenderTarget(i int) *surface.Image {
	img := t.levelImage(i)
	if img != nil {
		img.AddRef()
	}
	return img
}

// SharedImage returns a level image with a reference added and marks it
// shared, or returns nil.
func (t *Texture2D) SharedImage(i int) *surface.Image {
	img := t.levelImage(i)
	if img != nil {
		img.AddRef()
		img.MarkShared()
	}
	return img
}

// IsShared reports whether a level image is marked shared.
func (t *Texture2D) IsShared(i int) bool {
	img := t.levelImage(i)
	return img != nil && img.IsShared()
}
