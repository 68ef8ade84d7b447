// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package texture

import (
	"errors"
	"image"
	"image/color"
	"testing"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/renderbuffer"
	"github.com/gogpu/renderbuffer/backend/software"
	"github.com/gogpu/renderbuffer/format"
	"github.com/gogpu/renderbuffer/surface"
)

func newTexture(t *testing.T) (*Texture2D, *software.Allocator) {
	t.Helper()
	alloc := software.New()
	tex := New(1, alloc)
	if err := tex.SetLevel(0, 64, 32, format.RGBA8); err != nil {
		t.Fatalf("SetLevel(0) error = %v", err)
	}
	return tex, alloc
}

func TestSetLevel(t *testing.T) {
	tex, alloc := newTexture(t)

	if tex.Width(0) != 64 || tex.Height(0) != 32 {
		t.Errorf("level 0 size = %dx%d, want 64x32", tex.Width(0), tex.Height(0))
	}
	if tex.Format(0) != format.RGBA8 {
		t.Errorf("Format(0) = %v, want %v", tex.Format(0), format.RGBA8)
	}
	if tex.InternalFormat(0) != gputypes.TextureFormatRGBA8Unorm {
		t.Errorf("InternalFormat(0) = %v, want RGBA8Unorm", tex.InternalFormat(0))
	}
	if tex.Levels() != 1 {
		t.Errorf("Levels() = %d, want 1", tex.Levels())
	}
	if tex.Width(1) != 0 || tex.Format(1) != format.None {
		t.Error("undefined level should report zero size and no format")
	}

	if err := tex.SetLevel(0, 0, 0, format.RGBA8); err != nil {
		t.Fatalf("SetLevel(0, 0x0) error = %v", err)
	}
	if tex.Levels() != 0 || alloc.Stats().ImageCount != 0 {
		t.Error("zero-size SetLevel should free the level")
	}
}

func TestSetLevelDepthStencil(t *testing.T) {
	tex := New(1, software.New())
	if err := tex.SetLevel(0, 8, 8, format.Depth24Stencil8); err != nil {
		t.Fatalf("SetLevel error = %v", err)
	}
	if tex.InternalFormat(0) != gputypes.TextureFormatDepth24PlusStencil8 {
		t.Errorf("InternalFormat(0) = %v, want Depth24PlusStencil8", tex.InternalFormat(0))
	}
}

func TestSetLevelErrors(t *testing.T) {
	tex := New(1, software.New(software.WithMemoryBudget(16)))

	if err := tex.SetLevel(-1, 4, 4, format.RGBA8); !errors.Is(err, ErrInvalidLevel) {
		t.Errorf("SetLevel(-1) error = %v, want %v", err, ErrInvalidLevel)
	}
	if err := tex.SetLevel(MaxLevels, 4, 4, format.RGBA8); !errors.Is(err, ErrInvalidLevel) {
		t.Errorf("SetLevel(MaxLevels) error = %v, want %v", err, ErrInvalidLevel)
	}
	if err := tex.SetLevel(0, 4, 4, format.None); !errors.Is(err, ErrInvalidFormat) {
		t.Errorf("SetLevel(None) error = %v, want %v", err, ErrInvalidFormat)
	}
	if err := tex.SetLevel(0, 4, 4, format.RGBA8); !errors.Is(err, software.ErrBudgetExceeded) {
		t.Errorf("SetLevel over budget error = %v, want %v", err, software.ErrBudgetExceeded)
	}
}

func TestUpload(t *testing.T) {
	tex, _ := newTexture(t)
	red := color.RGBA{R: 0xff, A: 0xff}

	src := image.NewRGBA(image.Rect(0, 0, 64, 32))
	for y := range 32 {
		for x := range 64 {
			src.SetRGBA(x, y, red)
		}
	}
	if err := tex.Upload(0, src); err != nil {
		t.Fatalf("Upload error = %v", err)
	}

	img := tex.RenderTarget(0)
	defer img.Release()
	if got := img.Pixels().At(10, 10); got != red {
		t.Errorf("At(10, 10) = %v, want %v", got, red)
	}

	// A smaller source is scaled to the level size.
	blue := image.NewUniform(color.RGBA{B: 0xff, A: 0xff})
	small := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for y := range 4 {
		for x := range 4 {
			small.Set(x, y, blue.C)
		}
	}
	if err := tex.Upload(0, small); err != nil {
		t.Fatalf("Upload(scaled) error = %v", err)
	}
	if got := img.Pixels().At(63, 31); got != blue.C {
		t.Errorf("At(63, 31) = %v, want %v", got, blue.C)
	}

	if err := tex.Upload(2, src); !errors.Is(err, ErrLevelUndefined) {
		t.Errorf("Upload(undefined level) error = %v, want %v", err, ErrLevelUndefined)
	}
}

func TestUploadNoPixels(t *testing.T) {
	img, err := surface.NewImage(surface.Descriptor{Width: 4, Height: 4, Format: gputypes.TextureFormatRGBA8Unorm})
	if err != nil {
		t.Fatalf("NewImage error = %v", err)
	}
	tex := New(1, software.New())
	if err := tex.SetLevelImage(0, img); err != nil {
		t.Fatalf("SetLevelImage error = %v", err)
	}
	img.Release()

	if err := tex.Upload(0, image.NewRGBA(image.Rect(0, 0, 4, 4))); !errors.Is(err, ErrNoPixels) {
		t.Errorf("Upload error = %v, want %v", err, ErrNoPixels)
	}
}

func TestSetLevelImage(t *testing.T) {
	img, err := surface.NewImage(surface.Descriptor{Width: 8, Height: 4, Format: gputypes.TextureFormatBGRA8Unorm})
	if err != nil {
		t.Fatalf("NewImage error = %v", err)
	}
	tex := New(1, software.New())
	if err := tex.SetLevelImage(0, img); err != nil {
		t.Fatalf("SetLevelImage error = %v", err)
	}
	if img.RefCount() != 2 {
		t.Errorf("RefCount() = %d, want 2", img.RefCount())
	}
	if tex.Format(0) != format.BGRA8 {
		t.Errorf("Format(0) = %v, want %v", tex.Format(0), format.BGRA8)
	}

	if err := tex.SetLevelImage(0, nil); err != nil {
		t.Fatalf("SetLevelImage(nil) error = %v", err)
	}
	if img.RefCount() != 1 {
		t.Errorf("RefCount() after clearing level = %d, want 1", img.RefCount())
	}
	img.Release()
}

func TestRenderbufferProxy(t *testing.T) {
	tex, _ := newTexture(t)

	rb := tex.Renderbuffer()
	if rb != tex.Renderbuffer() {
		t.Error("Renderbuffer() should return the cached proxy")
	}
	if rb.Name() != tex.Name() {
		t.Errorf("proxy Name() = %d, want %d", rb.Name(), tex.Name())
	}
	if rb.Width() != 64 || rb.Height() != 32 || rb.Format() != format.RGBA8 || rb.Samples() != 0 {
		t.Errorf("proxy = %dx%d %v samples=%d, want 64x32 RGBA8 samples=0",
			rb.Width(), rb.Height(), rb.Format(), rb.Samples())
	}

	rb.AddRef()
	rb.AddRef()
	if tex.ProxyRefCount() != 2 {
		t.Errorf("ProxyRefCount() = %d, want 2", tex.ProxyRefCount())
	}
	rb.Release()
	rb.Release()
	if tex.ProxyRefCount() != 0 {
		t.Errorf("ProxyRefCount() = %d, want 0", tex.ProxyRefCount())
	}
	if tex.Renderbuffer() == rb {
		t.Error("proxy should be dropped once its references are gone")
	}
}

func TestProxyKeepsTextureAlive(t *testing.T) {
	tex, alloc := newTexture(t)
	tex.AddRef()

	rb := tex.Renderbuffer()
	rb.AddRef()

	tex.Release()
	if tex.Destroyed() {
		t.Fatal("texture destroyed while a renderbuffer proxies it")
	}
	img := rb.RenderTarget()
	if img == nil {
		t.Fatal("RenderTarget() through proxy = nil")
	}
	img.Release()

	rb.Release()
	if !tex.Destroyed() {
		t.Error("texture should be destroyed when the last proxy reference goes")
	}
	if alloc.Stats().ImageCount != 0 {
		t.Errorf("ImageCount = %d, want 0", alloc.Stats().ImageCount)
	}
	if err := tex.SetLevel(0, 4, 4, format.RGBA8); !errors.Is(err, ErrDestroyed) {
		t.Errorf("SetLevel on destroyed texture error = %v, want %v", err, ErrDestroyed)
	}
}

func TestSetStorageReleasesTexture(t *testing.T) {
	alloc := software.New()
	tex, _ := newTexture(t)
	tex.AddRef()

	rb := renderbuffer.New(7, renderbuffer.NewTextureStorage(tex, 0))
	rb.AddRef()
	rb.AddRef()
	if tex.ProxyRefCount() != 2 {
		t.Fatalf("ProxyRefCount() = %d, want 2", tex.ProxyRefCount())
	}

	if err := rb.Define(alloc, 16, 16, format.RGBA8, 0); err != nil {
		t.Fatalf("Define error = %v", err)
	}
	if tex.ProxyRefCount() != 0 {
		t.Errorf("ProxyRefCount() after Define = %d, want 0", tex.ProxyRefCount())
	}
	if tex.Destroyed() {
		t.Error("texture still referenced by the application was destroyed")
	}
	tex.Release()
	if !tex.Destroyed() {
		t.Error("texture should be destroyed after its last reference")
	}
}

func TestSharedLevel(t *testing.T) {
	tex, _ := newTexture(t)
	rb := tex.Renderbuffer()

	if rb.IsShared() {
		t.Fatal("IsShared() before SharedImage = true")
	}
	img := rb.SharedImage()
	if !rb.IsShared() || !tex.IsShared(0) {
		t.Error("level should be shared after SharedImage")
	}
	img.Release()
}
