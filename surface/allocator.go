// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"slices"

	"github.com/gogpu/gputypes"
)

// Allocator creates device surfaces for renderbuffers and textures.
//
// Create methods return an image holding one reference owned by the
// caller. A failed allocation returns a nil image and a non-nil error.
// The lockable flag requests an image the CPU can read back.
type Allocator interface {
	// CreateRenderTarget creates a color surface.
	CreateRenderTarget(width, height int, format gputypes.TextureFormat, samples int, lockable bool) (*Image, error)

	// CreateDepthStencilSurface creates a depth and/or stencil surface.
	CreateDepthStencilSurface(width, height int, format gputypes.TextureFormat, samples int, lockable bool) (*Image, error)

	// SupportedMultisampleCount returns the sample count the device uses
	// when requested samples are asked for.
	SupportedMultisampleCount(requested int) int
}

// DefaultSampleCounts are the multisample counts assumed when a backend is
// not configured with its own.
var DefaultSampleCounts = []int{4, 2, 1}

// ClampSamples picks the supported sample count for a request.
//
// A request of zero or less means no multisampling and returns 0. Otherwise
// the smallest supported count not below the request is returned, or the
// largest supported count when every count is below the request. The result
// never exceeds the largest supported count.
func ClampSamples(supported []int, requested int) int {
	if requested <= 0 || len(supported) == 0 {
		return 0
	}

	counts := slices.Clone(supported)
	slices.Sort(counts)

	for _, n := range counts {
		if n >= requested {
			return n
		}
	}
	return counts[len(counts)-1]
}

// SamplesFromDepth recovers the sample count of an image from its slice
// count. Odd slice counts carry no multisample information, so the low bit
// is dropped: a single-slice image reports 0 samples.
func SamplesFromDepth(depth int) int {
	return depth &^ 1
}

// DepthForSamples returns the slice count an allocator stores for an image
// created with the given sample count.
func DepthForSamples(samples int) int {
	if samples < 1 {
		return 1
	}
	return samples
}

// SizeLimiter is implemented by allocators that cap surface dimensions.
type SizeLimiter interface {
	// MaxDimension returns the largest width or height the allocator
	// accepts.
	MaxDimension() int
}
