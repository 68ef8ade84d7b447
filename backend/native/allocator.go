// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

//go:build !nogpu

package native

import (
	"fmt"
	"sync/atomic"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/renderbuffer"
	"github.com/gogpu/renderbuffer/backend"
	"github.com/gogpu/renderbuffer/surface"
)

// halProvider is implemented by device providers that expose their HAL
// objects. Both methods return any to keep gpucontext free of a wgpu import.
type halProvider interface {
	HalDevice() any
	HalQueue() any
}

// Allocator creates images backed by HAL textures.
//
// Allocator is safe for concurrent use if the device is.
type Allocator struct {
	device        hal.Device
	opts          options
	surfaceFormat gputypes.TextureFormat
	live          atomic.Int64
	serial        atomic.Uint64
}

var (
	_ surface.Allocator   = (*Allocator)(nil)
	_ surface.SizeLimiter = (*Allocator)(nil)
)

// New creates an allocator on device.
func New(device hal.Device, opts ...Option) (*Allocator, error) {
	if device == nil {
		return nil, ErrNilDevice
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Allocator{device: device, opts: o}, nil
}

// NewFromProvider creates an allocator on the HAL device of a host
// application's device provider. The provider's surface format is kept
// for SurfaceFormat.
func NewFromProvider(provider gpucontext.DeviceProvider, opts ...Option) (*Allocator, error) {
	if provider == nil {
		return nil, ErrNilDevice
	}
	hp, ok := provider.(halProvider)
	if !ok {
		return nil, fmt.Errorf("%w: %T does not expose HalDevice", ErrNoHALDevice, provider)
	}
	raw := hp.HalDevice()
	if raw == nil {
		return nil, ErrNilDevice
	}
	device, ok := raw.(hal.Device)
	if !ok {
		return nil, fmt.Errorf("%w: HalDevice returned %T", ErrNoHALDevice, raw)
	}

	a, err := New(device, opts...)
	if err != nil {
		return nil, err
	}
	a.surfaceFormat = provider.SurfaceFormat()
	return a, nil
}

// Register registers the provider's device as the native backend. Each
// call of the factory creates a new allocator on the same device.
func Register(provider gpucontext.DeviceProvider, opts ...Option) {
	backend.Register(backend.BackendNative, func() (surface.Allocator, error) {
		return NewFromProvider(provider, opts...)
	})
}

// Device returns the HAL device.
func (a *Allocator) Device() hal.Device { return a.device }

// SurfaceFormat returns the host's preferred surface format, or
// gputypes.TextureFormatUndefined when the allocator was not created from
// a provider.
func (a *Allocator) SurfaceFormat() gputypes.TextureFormat { return a.surfaceFormat }

// SupportedMultisampleCount returns the supported count for a request.
func (a *Allocator) SupportedMultisampleCount(requested int) int {
	return surface.ClampSamples(a.opts.sampleCounts, requested)
}

// MaxDimension returns the largest width or height accepted.
func (a *Allocator) MaxDimension() int { return a.opts.maxDimension }

// Live returns the number of textures created and not yet destroyed.
func (a *Allocator) Live() int { return int(a.live.Load()) }

// CreateRenderTarget creates a color texture.
func (a *Allocator) CreateRenderTarget(width, height int, f gputypes.TextureFormat, samples int, lockable bool) (*surface.Image, error) {
	return a.create("color", width, height, f, samples, lockable)
}

// CreateDepthStencilSurface creates a depth and/or stencil texture.
func (a *Allocator) CreateDepthStencilSurface(width, height int, f gputypes.TextureFormat, samples int, lockable bool) (*surface.Image, error) {
	return a.create("depth_stencil", width, height, f, samples, lockable)
}

func (a *Allocator) create(kind string, width, height int, f gputypes.TextureFormat, samples int, lockable bool) (*surface.Image, error) {
	maxDim := a.opts.maxDimension
	if width <= 0 || height <= 0 || width > maxDim || height > maxDim {
		return nil, fmt.Errorf("%w: width=%d, height=%d", ErrInvalidDimensions, width, height)
	}

	samples = a.SupportedMultisampleCount(samples)
	sampleCount := max(samples, 1)

	usage := gputypes.TextureUsageRenderAttachment
	if sampleCount == 1 {
		usage |= gputypes.TextureUsageTextureBinding
	}
	if lockable {
		usage |= gputypes.TextureUsageCopySrc | gputypes.TextureUsageCopyDst
	}

	label := fmt.Sprintf("%s_%s_%d", a.opts.label, kind, a.serial.Add(1))

	//nolint:gosec // G115: dimensions are bounded by maxDimension
	tex, err := a.device.CreateTexture(&hal.TextureDescriptor{
		Label: label,
		Size: hal.Extent3D{
			Width:              uint32(width),
			Height:             uint32(height),
			DepthOrArrayLayers: 1,
		},
		MipLevelCount: 1,
		SampleCount:   uint32(sampleCount),
		Dimension:     gputypes.TextureDimension2D,
		Format:        f,
		Usage:         usage,
	})
	if err != nil {
		return nil, fmt.Errorf("create %s texture: %w", kind, err)
	}

	img, err := surface.NewImage(surface.Descriptor{
		Label:  label,
		Width:  width,
		Height: height,
		Format: f,
		Depth:  surface.DepthForSamples(samples),
		Usage:  usage,
	},
		surface.WithNative(tex),
		surface.WithReleaseFunc(func(*surface.Image) {
			a.device.DestroyTexture(tex)
			a.live.Add(-1)
			renderbuffer.Logger().Debug("native: texture destroyed", "label", label)
		}),
	)
	if err != nil {
		a.device.DestroyTexture(tex)
		return nil, err
	}

	a.live.Add(1)
	renderbuffer.Logger().Debug("native: texture created",
		"label", label, "width", width, "height", height, "format", f, "samples", sampleCount)
	return img, nil
}
