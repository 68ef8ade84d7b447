// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/gogpu/gputypes"
	"golang.org/x/image/draw"
)

// Image errors.
var (
	// ErrInvalidDimensions is returned when width or height is not positive.
	ErrInvalidDimensions = errors.New("surface: invalid dimensions")

	// ErrUndefinedFormat is returned when an image is described without a format.
	ErrUndefinedFormat = errors.New("surface: undefined format")
)

// Descriptor describes an image to create.
type Descriptor struct {
	// Label is an optional debug name.
	Label string

	// Width is the image width in pixels.
	Width int

	// Height is the image height in pixels.
	Height int

	// Format is the internal pixel format.
	Format gputypes.TextureFormat

	// Depth is the slice count. Multisampled images store their sample
	// count here; values below 1 are stored as 1.
	Depth int

	// Usage lists how the image may be bound.
	Usage gputypes.TextureUsage
}

// Image is a reference-counted pixel-memory resource.
//
// The reference count and shared flag are atomic, so an image handed to
// another goroutine may be released there. Everything else is immutable
// after creation.
type Image struct {
	desc Descriptor

	refs   atomic.Int32
	shared atomic.Bool

	pixels    draw.Image
	native    any
	onRelease func(*Image)
}

// Option configures an Image during creation.
type Option func(*Image)

// WithPixels attaches a CPU pixel store to the image.
func WithPixels(p draw.Image) Option {
	return func(img *Image) {
		img.pixels = p
	}
}

// WithNative attaches a backend handle, such as a hal.Texture, to the image.
func WithNative(h any) Option {
	return func(img *Image) {
		img.native = h
	}
}

// WithReleaseFunc sets the function called once the last reference is
// released. Allocators use it to free the memory behind the image.
func WithReleaseFunc(fn func(*Image)) Option {
	return func(img *Image) {
		img.onRelease = fn
	}
}

// NewImage creates an image holding a single reference owned by the caller.
func NewImage(desc Descriptor, opts ...Option) (*Image, error) {
	if desc.Width <= 0 || desc.Height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, desc.Width, desc.Height)
	}
	if desc.Format == gputypes.TextureFormatUndefined {
		return nil, ErrUndefinedFormat
	}
	if desc.Depth < 1 {
		desc.Depth = 1
	}

	img := &Image{desc: desc}
	for _, opt := range opts {
		opt(img)
	}
	img.refs.Store(1)
	return img, nil
}

// Label returns the debug name.
func (img *Image) Label() string { return img.desc.Label }

// Width returns the image width in pixels.
func (img *Image) Width() int { return img.desc.Width }

// Height returns the image height in pixels.
func (img *Image) Height() int { return img.desc.Height }

// Depth returns the slice count.
func (img *Image) Depth() int { return img.desc.Depth }

// Format returns the internal pixel format.
func (img *Image) Format() gputypes.TextureFormat { return img.desc.Format }

// Usage returns the usage flags the image was created with.
func (img *Image) Usage() gputypes.TextureUsage { return img.desc.Usage }

// Extent returns the image size as a gputypes.Extent3D.
func (img *Image) Extent() gputypes.Extent3D {
	//nolint:gosec // G115: dimensions are validated positive in NewImage
	return gputypes.Extent3D{
		Width:              uint32(img.desc.Width),
		Height:             uint32(img.desc.Height),
		DepthOrArrayLayers: uint32(img.desc.Depth),
	}
}

// Pixels returns the CPU pixel store, or nil for device-resident images.
func (img *Image) Pixels() draw.Image { return img.pixels }

// Native returns the backend handle, or nil if the allocator set none.
func (img *Image) Native() any { return img.native }

// AddRef adds a reference to the image.
func (img *Image) AddRef() {
	if img.refs.Add(1) <= 1 {
		panic("surface: AddRef on released image")
	}
}

// Release drops a reference. When the last reference is dropped the
// release function runs. Releasing more references than were taken panics.
func (img *Image) Release() {
	n := img.refs.Add(-1)
	switch {
	case n < 0:
		panic("surface: image released too many times")
	case n == 0 && img.onRelease != nil:
		img.onRelease(img)
	}
}

// RefCount returns the current number of references.
func (img *Image) RefCount() int { return int(img.refs.Load()) }

// MarkShared marks the image as visible to consumers outside its owner.
// It reports whether this call changed the flag.
func (img *Image) MarkShared() bool {
	return img.shared.CompareAndSwap(false, true)
}

// IsShared reports whether MarkShared has been called.
func (img *Image) IsShared() bool { return img.shared.Load() }

// String returns a short description for logging.
func (img *Image) String() string {
	return fmt.Sprintf("Image[%q %dx%dx%d %v refs=%d shared=%v]",
		img.desc.Label, img.desc.Width, img.desc.Height, img.desc.Depth,
		img.desc.Format, img.RefCount(), img.IsShared())
}
