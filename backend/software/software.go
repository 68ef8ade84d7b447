// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package software

import (
	"errors"
	"fmt"
	"image"
	"slices"

	"github.com/gogpu/gputypes"
	"golang.org/x/image/draw"

	"github.com/gogpu/renderbuffer"
	"github.com/gogpu/renderbuffer/backend"
	"github.com/gogpu/renderbuffer/format"
	"github.com/gogpu/renderbuffer/surface"
)

// Default configuration.
const (
	// DefaultMemoryBudgetMB is the default memory budget (256 MB).
	DefaultMemoryBudgetMB = 256

	// DefaultMaxDimension is the default largest width or height.
	DefaultMaxDimension = renderbuffer.MaxRenderbufferSize
)

// DefaultSampleCounts are the multisample counts supported by default.
var DefaultSampleCounts = []int{1, 2, 4, 8}

// Software allocator errors.
var (
	// ErrBudgetExceeded is returned when an allocation would exceed the
	// memory budget.
	ErrBudgetExceeded = errors.New("software: memory budget exceeded")

	// ErrUnsupportedFormat is returned for formats without a pixel store.
	ErrUnsupportedFormat = errors.New("software: unsupported format")
)

// init registers the software backend on package import.
func init() {
	backend.Register(backend.BackendSoftware, func() (surface.Allocator, error) {
		return New(), nil
	})
}

// Allocator creates images backed by CPU pixel stores.
//
// Allocator is safe for concurrent use.
type Allocator struct {
	opts   options
	budget *budget
}

var (
	_ surface.Allocator   = (*Allocator)(nil)
	_ surface.SizeLimiter = (*Allocator)(nil)
)

// New creates a software allocator.
func New(opts ...Option) *Allocator {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Allocator{
		opts:   o,
		budget: &budget{total: o.budgetBytes},
	}
}

// SampleCounts returns the supported multisample counts in ascending order.
func (a *Allocator) SampleCounts() []int {
	counts := slices.Clone(a.opts.sampleCounts)
	slices.Sort(counts)
	return counts
}

// SupportedMultisampleCount returns the supported count for a request.
func (a *Allocator) SupportedMultisampleCount(requested int) int {
	return surface.ClampSamples(a.opts.sampleCounts, requested)
}

// MaxDimension returns the largest width or height accepted.
func (a *Allocator) MaxDimension() int { return a.opts.maxDimension }

// Stats returns current memory usage.
func (a *Allocator) Stats() MemoryStats { return a.budget.stats() }

// CreateRenderTarget creates a color image.
func (a *Allocator) CreateRenderTarget(width, height int, f gputypes.TextureFormat, samples int, lockable bool) (*surface.Image, error) {
	if format.IsDepthStencil(f) {
		return nil, fmt.Errorf("%w: %v is not a color format", ErrUnsupportedFormat, f)
	}
	img, err := a.create("color", width, height, f, samples, lockable)
	if err != nil {
		return nil, err
	}
	if a.opts.clearColor != nil {
		dst := img.Pixels()
		draw.Draw(dst, dst.Bounds(), image.NewUniform(a.opts.clearColor), image.Point{}, draw.Src)
	}
	return img, nil
}

// CreateDepthStencilSurface creates a depth and/or stencil image.
func (a *Allocator) CreateDepthStencilSurface(width, height int, f gputypes.TextureFormat, samples int, lockable bool) (*surface.Image, error) {
	if !format.IsDepthStencil(f) {
		return nil, fmt.Errorf("%w: %v is not a depth/stencil format", ErrUnsupportedFormat, f)
	}
	return a.create("depth/stencil", width, height, f, samples, lockable)
}

func (a *Allocator) create(kind string, width, height int, f gputypes.TextureFormat, samples int, lockable bool) (*surface.Image, error) {
	maxDim := a.opts.maxDimension
	if width <= 0 || height <= 0 || width > maxDim || height > maxDim {
		return nil, fmt.Errorf("%w: %dx%d (max %d)", surface.ErrInvalidDimensions, width, height, maxDim)
	}

	bpp := format.BytesPerPixel(f)
	if bpp == 0 {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedFormat, f)
	}

	samples = a.SupportedMultisampleCount(samples)
	depth := surface.DepthForSamples(samples)

	//nolint:gosec // G115: dimensions are bounded by maxDimension
	size := uint64(width) * uint64(height) * uint64(bpp) * uint64(depth)
	if err := a.budget.reserve(size); err != nil {
		return nil, err
	}

	pixels, err := newPixels(width, height, bpp)
	if err != nil {
		a.budget.free(size)
		return nil, err
	}

	usage := gputypes.TextureUsageRenderAttachment | gputypes.TextureUsageTextureBinding
	if lockable {
		usage |= gputypes.TextureUsageCopySrc | gputypes.TextureUsageCopyDst
	}

	img, err := surface.NewImage(surface.Descriptor{
		Label:  fmt.Sprintf("software %s %dx%d", kind, width, height),
		Width:  width,
		Height: height,
		Format: f,
		Depth:  depth,
		Usage:  usage,
	},
		surface.WithPixels(pixels),
		surface.WithReleaseFunc(func(*surface.Image) { a.budget.free(size) }),
	)
	if err != nil {
		a.budget.free(size)
		return nil, err
	}

	renderbuffer.Logger().Debug("software: image created",
		"kind", kind, "width", width, "height", height, "format", f,
		"samples", samples, "bytes", size)
	return img, nil
}

// newPixels returns a zeroed pixel store with bpp bytes per pixel. Stores
// hold one sample per pixel; multisampled images resolve into them.
func newPixels(width, height, bpp int) (draw.Image, error) {
	r := image.Rect(0, 0, width, height)
	switch bpp {
	case 1:
		return image.NewGray(r), nil
	case 2:
		return image.NewGray16(r), nil
	case 4:
		return image.NewRGBA(r), nil
	case 8:
		return image.NewRGBA64(r), nil
	default:
		return nil, fmt.Errorf("%w: %d bytes per pixel", ErrUnsupportedFormat, bpp)
	}
}
