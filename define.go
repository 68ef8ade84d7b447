// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package renderbuffer

import (
	"fmt"

	"github.com/gogpu/renderbuffer/format"
	"github.com/gogpu/renderbuffer/surface"
)

// MaxRenderbufferSize is the largest width or height accepted by NewStorage
// when the allocator does not report its own limit.
const MaxRenderbufferSize = 8192

// NewStorage validates a renderbuffer definition and allocates the matching
// storage variant:
//
//   - color-renderable formats get a ColorStorage
//   - Depth16 and Depth24 get a depth-only DepthStencilStorage
//   - Stencil8 gets a stencil-only DepthStencilStorage
//   - Depth24Stencil8 gets a combined DepthStencilStorage
//
// Validation failures return a nil storage and ErrInvalidEnum or
// ErrInvalidValue. An allocation failure returns an empty storage together
// with an error wrapping ErrOutOfMemory.
func NewStorage(alloc surface.Allocator, width, height int, f format.Format, samples int) (Storage, error) {
	if width < 0 || height < 0 || samples < 0 {
		return nil, fmt.Errorf("%w: %dx%d samples=%d", ErrInvalidValue, width, height, samples)
	}

	limit := MaxRenderbufferSize
	if l, ok := alloc.(surface.SizeLimiter); ok {
		limit = l.MaxDimension()
	}
	if width > limit || height > limit {
		return nil, fmt.Errorf("%w: %dx%d exceeds %d", ErrInvalidValue, width, height, limit)
	}

	switch {
	case format.IsColorRenderable(f):
		return NewColorStorage(alloc, width, height, f, samples)
	case f == format.Depth16 || f == format.Depth24:
		return NewDepthStencilStorage(alloc, width, height, samples, DepthOnly)
	case f == format.Stencil8:
		return NewDepthStencilStorage(alloc, width, height, samples, StencilOnly)
	case f == format.Depth24Stencil8:
		return NewDepthStencilStorage(alloc, width, height, samples, Combined)
	default:
		return nil, fmt.Errorf("%w: %v", ErrInvalidEnum, f)
	}
}

// Define replaces the renderbuffer's storage with a newly allocated one, as
// NewStorage describes. On a validation error the renderbuffer is unchanged.
// On an allocation failure the empty storage is still installed and the
// error is returned.
func (rb *Renderbuffer) Define(alloc surface.Allocator, width, height int, f format.Format, samples int) error {
	s, err := NewStorage(alloc, width, height, f, samples)
	if s == nil {
		return err
	}
	rb.SetStorage(s)
	return err
}
