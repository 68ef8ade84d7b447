// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package renderbuffer

import (
	"github.com/gogpu/renderbuffer/format"
	"github.com/gogpu/renderbuffer/surface"
)

// ColorStorage owns a dedicated color surface.
type ColorStorage struct {
	dedicated
}

var _ Storage = (*ColorStorage)(nil)

// AdoptColorStorage wraps an existing color image, such as a window-system
// back buffer. The storage takes its own reference; the caller keeps theirs.
// The public format is derived from the image's internal format and the
// sample count from its slice count.
//
// A nil image yields an empty storage.
func AdoptColorStorage(img *surface.Image) *ColorStorage {
	s := &ColorStorage{dedicated: emptyDedicated()}
	if img != nil {
		s.adopt(img, format.FromColor)
	}
	return s
}

// NewColorStorage allocates a color surface of the given size and public
// format. The sample count is first clamped to what alloc supports.
//
// When width or height is not positive no surface is requested and the
// storage is empty; this is not an error. When the allocator fails the
// returned storage records the requested attributes but has no image, and
// the error wraps ErrOutOfMemory. The storage is never nil.
func NewColorStorage(alloc surface.Allocator, width, height int, f format.Format, samples int) (*ColorStorage, error) {
	internal := format.ToInternal(f)
	supported := alloc.SupportedMultisampleCount(samples)

	img, err := allocate("color", width, height, func() (*surface.Image, error) {
		return alloc.CreateRenderTarget(width, height, internal, supported, false)
	})

	return &ColorStorage{dedicated: dedicated{
		width:    width,
		height:   height,
		format:   f,
		internal: internal,
		samples:  supported,
		image:    img,
	}}, err
}
