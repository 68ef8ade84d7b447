// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package renderbuffer

import (
	"errors"
	"testing"

	"github.com/gogpu/renderbuffer/format"
)

func TestNewStorageVariants(t *testing.T) {
	tests := []struct {
		format     format.Format
		wantKind   string
		wantFormat format.Format
	}{
		{format.RGBA4, "color", format.RGBA4},
		{format.RGB5A1, "color", format.RGB5A1},
		{format.RGB565, "color", format.RGB565},
		{format.RGB8, "color", format.RGB8},
		{format.RGBA8, "color", format.RGBA8},
		{format.BGRA8, "color", format.BGRA8},
		{format.Depth16, "DepthOnly", format.Depth16},
		{format.Depth24, "DepthOnly", format.Depth16},
		{format.Stencil8, "StencilOnly", format.Stencil8},
		{format.Depth24Stencil8, "Combined", format.Depth24Stencil8},
	}

	for _, tt := range tests {
		t.Run(tt.format.String(), func(t *testing.T) {
			alloc := newFakeAllocator()
			s, err := NewStorage(alloc, 16, 16, tt.format, 0)
			if err != nil {
				t.Fatalf("NewStorage error = %v", err)
			}
			defer s.Destroy()

			kind := "color"
			if ds, ok := s.(*DepthStencilStorage); ok {
				kind = ds.Kind().String()
			}
			if kind != tt.wantKind {
				t.Errorf("storage kind = %s, want %s", kind, tt.wantKind)
			}
			if s.Format() != tt.wantFormat {
				t.Errorf("Format() = %v, want %v", s.Format(), tt.wantFormat)
			}
		})
	}
}

func TestNewStorageValidation(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
		format        format.Format
		samples       int
		want          error
	}{
		{"negative width", -1, 4, format.RGBA8, 0, ErrInvalidValue},
		{"negative height", 4, -1, format.RGBA8, 0, ErrInvalidValue},
		{"negative samples", 4, 4, format.RGBA8, -1, ErrInvalidValue},
		{"too wide", MaxRenderbufferSize + 1, 4, format.RGBA8, 0, ErrInvalidValue},
		{"not renderable", 4, 4, format.Depth32F, 0, ErrInvalidEnum},
		{"none", 4, 4, format.None, 0, ErrInvalidEnum},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			alloc := newFakeAllocator()
			s, err := NewStorage(alloc, tt.width, tt.height, tt.format, tt.samples)
			if !errors.Is(err, tt.want) {
				t.Errorf("NewStorage error = %v, want %v", err, tt.want)
			}
			if s != nil {
				t.Error("NewStorage should return nil storage on validation error")
			}
			if alloc.calls() != 0 {
				t.Errorf("allocator calls = %d, want 0", alloc.calls())
			}
		})
	}
}

func TestNewStorageAllocatorLimit(t *testing.T) {
	alloc := limitedAllocator{fakeAllocator: newFakeAllocator(), max: 64}

	if _, err := NewStorage(alloc, 65, 1, format.RGBA8, 0); !errors.Is(err, ErrInvalidValue) {
		t.Errorf("NewStorage(65x1) error = %v, want %v", err, ErrInvalidValue)
	}
	s, err := NewStorage(alloc, 64, 64, format.RGBA8, 0)
	if err != nil {
		t.Fatalf("NewStorage(64x64) error = %v", err)
	}
	s.Destroy()
}

func TestDefine(t *testing.T) {
	alloc := newFakeAllocator()
	rb := NewEmpty(1)
	rb.AddRef()
	defer rb.Release()

	if err := rb.Define(alloc, 256, 128, format.RGBA8, 4); err != nil {
		t.Fatalf("Define error = %v", err)
	}
	if rb.Width() != 256 || rb.Height() != 128 || rb.Samples() != 4 || rb.Format() != format.RGBA8 {
		t.Errorf("renderbuffer = %dx%d samples=%d %v, want 256x128 samples=4 RGBA8",
			rb.Width(), rb.Height(), rb.Samples(), rb.Format())
	}

	img := rb.RenderTarget()
	if img == nil {
		t.Fatal("RenderTarget() = nil")
	}
	img.Release()

	if err := rb.Define(alloc, 64, 64, format.Depth24Stencil8, 0); err != nil {
		t.Fatalf("redefine error = %v", err)
	}
	if alloc.released != 1 {
		t.Errorf("images released after redefine = %d, want 1", alloc.released)
	}
	if rb.Format() != format.Depth24Stencil8 {
		t.Errorf("Format() = %v, want %v", rb.Format(), format.Depth24Stencil8)
	}
}

func TestDefineInvalidKeepsStorage(t *testing.T) {
	alloc := newFakeAllocator()
	rb := NewEmpty(1)
	if err := rb.Define(alloc, 8, 8, format.RGBA8, 0); err != nil {
		t.Fatalf("Define error = %v", err)
	}
	before := rb.Storage()

	if err := rb.Define(alloc, 8, 8, format.Format(0x1234), 0); !errors.Is(err, ErrInvalidEnum) {
		t.Errorf("Define error = %v, want %v", err, ErrInvalidEnum)
	}
	if rb.Storage() != before {
		t.Error("invalid Define should leave the storage unchanged")
	}
}

func TestDefineOutOfMemory(t *testing.T) {
	alloc := newFakeAllocator()
	rb := NewEmpty(1)
	if err := rb.Define(alloc, 8, 8, format.RGBA8, 0); err != nil {
		t.Fatalf("Define error = %v", err)
	}

	alloc.fail = true
	err := rb.Define(alloc, 32, 32, format.RGBA8, 0)
	if !errors.Is(err, ErrOutOfMemory) {
		t.Errorf("Define error = %v, want %v", err, ErrOutOfMemory)
	}
	if rb.RenderTarget() != nil {
		t.Error("RenderTarget() after failed Define should be nil")
	}
	if alloc.released != 1 {
		t.Errorf("previous image released = %d, want 1", alloc.released)
	}
}
