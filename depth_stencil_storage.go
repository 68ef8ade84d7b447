// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package renderbuffer

import (
	"fmt"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/renderbuffer/format"
	"github.com/gogpu/renderbuffer/surface"
)

// DepthStencilKind selects the format a DepthStencilStorage reports.
type DepthStencilKind uint8

const (
	// Combined reports the packed depth/stencil format.
	Combined DepthStencilKind = iota

	// DepthOnly reports Depth16.
	DepthOnly

	// StencilOnly reports Stencil8.
	StencilOnly
)

// String returns the kind name.
func (k DepthStencilKind) String() string {
	switch k {
	case Combined:
		return "Combined"
	case DepthOnly:
		return "DepthOnly"
	case StencilOnly:
		return "StencilOnly"
	default:
		return fmt.Sprintf("DepthStencilKind(%d)", k)
	}
}

// reported returns the public format shown for a storage that has an image.
func (k DepthStencilKind) reported(combined format.Format) format.Format {
	switch k {
	case DepthOnly:
		return format.Depth16
	case StencilOnly:
		return format.Stencil8
	default:
		return combined
	}
}

// DepthStencilStorage owns a dedicated packed depth/stencil surface.
//
// The surface always carries both depth and stencil planes. The kind only
// changes the public format, so that a renderbuffer requested as depth-only
// or stencil-only reports a matching format when queried. An empty storage
// reports the packed format regardless of kind.
type DepthStencilStorage struct {
	dedicated
	kind DepthStencilKind
}

var _ Storage = (*DepthStencilStorage)(nil)

// AdoptDepthStencilStorage wraps an existing depth/stencil image. The storage
// takes its own reference; the caller keeps theirs. A nil image yields an
// empty storage.
func AdoptDepthStencilStorage(img *surface.Image, kind DepthStencilKind) *DepthStencilStorage {
	s := &DepthStencilStorage{dedicated: emptyDedicated(), kind: kind}
	if img != nil {
		s.adopt(img, format.FromDepthStencil)
		s.format = kind.reported(s.format)
	}
	return s
}

// NewDepthStencilStorage allocates a Depth24PlusStencil8 surface. Sizes,
// sample clamping and failures behave as in NewColorStorage.
func NewDepthStencilStorage(alloc surface.Allocator, width, height, samples int, kind DepthStencilKind) (*DepthStencilStorage, error) {
	internal := gputypes.TextureFormatDepth24PlusStencil8
	supported := alloc.SupportedMultisampleCount(samples)

	img, err := allocate("depth/stencil", width, height, func() (*surface.Image, error) {
		return alloc.CreateDepthStencilSurface(width, height, internal, supported, false)
	})

	s := &DepthStencilStorage{
		dedicated: dedicated{
			width:    width,
			height:   height,
			format:   format.Depth24Stencil8,
			internal: internal,
			samples:  supported,
			image:    img,
		},
		kind: kind,
	}
	if img != nil {
		s.format = kind.reported(s.format)
	}
	return s, err
}

// Kind returns how the storage presents itself.
func (s *DepthStencilStorage) Kind() DepthStencilKind { return s.kind }
