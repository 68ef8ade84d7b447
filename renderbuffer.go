// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package renderbuffer

import (
	"github.com/gogpu/gputypes"

	"github.com/gogpu/renderbuffer/format"
	"github.com/gogpu/renderbuffer/object"
	"github.com/gogpu/renderbuffer/surface"
)

// Renderbuffer is a named, reference-counted attachment handle.
//
// It owns exactly one Storage at a time and never a nil one. Its identity is
// independent of the storage: SetStorage redefines what the handle points at
// while references to the handle remain valid.
//
// A new Renderbuffer has no references. It is destroyed when Release drops
// the last reference taken with AddRef; destruction destroys the current
// storage.
type Renderbuffer struct {
	obj       object.Named
	storage   Storage
	onDestroy func(*Renderbuffer)
	destroyed bool
}

// Option configures a Renderbuffer during creation.
type Option func(*Renderbuffer)

// WithDestroyFunc sets a function called after the renderbuffer is destroyed,
// typically to remove its name from a namespace.
func WithDestroyFunc(fn func(*Renderbuffer)) Option {
	return func(rb *Renderbuffer) {
		rb.onDestroy = fn
	}
}

// New creates a renderbuffer with the given name and initial storage.
// It panics if storage is nil.
func New(name object.Name, storage Storage, opts ...Option) *Renderbuffer {
	if storage == nil {
		panic("renderbuffer: nil storage")
	}
	rb := &Renderbuffer{
		obj:     object.NewNamed(name),
		storage: storage,
	}
	for _, opt := range opts {
		opt(rb)
	}
	return rb
}

// NewEmpty creates a renderbuffer with empty color storage.
func NewEmpty(name object.Name, opts ...Option) *Renderbuffer {
	return New(name, AdoptColorStorage(nil), opts...)
}

// Name returns the renderbuffer's name.
func (rb *Renderbuffer) Name() object.Name { return rb.obj.Name() }

// RefCount returns the renderbuffer's own reference count.
func (rb *Renderbuffer) RefCount() int { return rb.obj.RefCount() }

// AddRef adds a reference. The storage's delegate, if any, receives a proxy
// reference first.
func (rb *Renderbuffer) AddRef() {
	if d := rb.storage.Delegate(); d != nil {
		d.AddProxyRef(rb)
	}
	rb.obj.IncRef()
}

// Release drops a reference. The storage's delegate, if any, has its proxy
// reference released first. Dropping the last reference destroys the
// renderbuffer. Releasing an unreferenced renderbuffer panics.
func (rb *Renderbuffer) Release() {
	if rb.obj.RefCount() == 0 {
		panic("renderbuffer: released too many times")
	}
	if d := rb.storage.Delegate(); d != nil {
		d.ReleaseProxy(rb)
	}
	if rb.obj.DecRef() == 0 {
		rb.destroy()
	}
}

func (rb *Renderbuffer) destroy() {
	rb.storage.Destroy()
	rb.destroyed = true
	Logger().Debug("renderbuffer: destroyed", "name", rb.Name())
	if rb.onDestroy != nil {
		rb.onDestroy(rb)
	}
}

// Destroyed reports whether the last reference has been released.
func (rb *Renderbuffer) Destroyed() bool { return rb.destroyed }

// Storage returns the current storage.
func (rb *Renderbuffer) Storage() Storage { return rb.storage }

// SetStorage installs s in place of the current storage, which is destroyed.
// It panics if s is nil.
//
// Proxy references follow the handle: for each reference the renderbuffer
// holds, the new storage's delegate gains one before the old delegate loses
// one. A texture is therefore not destroyed while switching between two of
// its own levels.
func (rb *Renderbuffer) SetStorage(s Storage) {
	if s == nil {
		panic("renderbuffer: nil storage")
	}
	old := rb.storage
	if s == old {
		return
	}

	refs := rb.obj.RefCount()
	if d := s.Delegate(); d != nil {
		for range refs {
			d.AddProxyRef(rb)
		}
	}
	if d := old.Delegate(); d != nil {
		for range refs {
			d.ReleaseProxy(rb)
		}
	}

	old.Destroy()
	rb.storage = s

	Logger().Debug("renderbuffer: storage replaced",
		"name", rb.Name(), "width", s.Width(), "height", s.Height(),
		"format", s.Format(), "samples", s.Samples(), "proxyRefs", refs)
}

// Width returns the storage width.
func (rb *Renderbuffer) Width() int { return rb.storage.Width() }

// Height returns the storage height.
func (rb *Renderbuffer) Height() int { return rb.storage.Height() }

// Format returns the storage's public format.
func (rb *Renderbuffer) Format() format.Format { return rb.storage.Format() }

// InternalFormat returns the storage's internal format.
func (rb *Renderbuffer) InternalFormat() gputypes.TextureFormat {
	return rb.storage.InternalFormat()
}

// Samples returns the storage's sample count.
func (rb *Renderbuffer) Samples() int { return rb.storage.Samples() }

// RedSize returns the red channel size in bits.
func (rb *Renderbuffer) RedSize() int { return rb.channelSize(format.Red) }

// GreenSize returns the green channel size in bits.
func (rb *Renderbuffer) GreenSize() int { return rb.channelSize(format.Green) }

// BlueSize returns the blue channel size in bits.
func (rb *Renderbuffer) BlueSize() int { return rb.channelSize(format.Blue) }

// AlphaSize returns the alpha channel size in bits.
func (rb *Renderbuffer) AlphaSize() int { return rb.channelSize(format.Alpha) }

// DepthSize returns the depth channel size in bits.
func (rb *Renderbuffer) DepthSize() int { return rb.channelSize(format.Depth) }

// StencilSize returns the stencil channel size in bits.
func (rb *Renderbuffer) StencilSize() int { return rb.channelSize(format.Stencil) }

func (rb *Renderbuffer) channelSize(c format.Channel) int {
	return format.SizeOf(c, rb.storage.InternalFormat())
}

// RenderTarget returns the backing image with a reference added, or nil.
// The caller must release the returned image.
func (rb *Renderbuffer) RenderTarget() *surface.Image { return rb.storage.RenderTarget() }

// SharedImage returns the backing image with a reference added and marks it
// shared, or returns nil. The caller must release the returned image.
func (rb *Renderbuffer) SharedImage() *surface.Image { return rb.storage.SharedImage() }

// IsShared reports whether the backing image is marked shared.
func (rb *Renderbuffer) IsShared() bool { return rb.storage.IsShared() }
