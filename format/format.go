// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package format maps renderbuffer formats between the public enumeration
// seen by API callers and the internal pixel formats used by allocators.
//
// Public formats carry the numeric values of their OpenGL ES counterparts so
// they can be passed through unchanged from an API front end. Internal
// formats are [gputypes.TextureFormat] values.
package format

import (
	"fmt"

	"github.com/gogpu/gputypes"
)

// Format is a public renderbuffer format.
type Format uint32

// Public renderbuffer formats.
const (
	// None is the zero value and names no format.
	None Format = 0

	// RGBA4 is 4-bit RGBA. It is the default format of an empty storage.
	RGBA4 Format = 0x8056

	// RGB5A1 is 5-bit RGB with a 1-bit alpha.
	RGB5A1 Format = 0x8057

	// RGB565 is 5/6/5-bit RGB.
	RGB565 Format = 0x8D62

	// RGB8 is 8-bit RGB.
	RGB8 Format = 0x8051

	// RGBA8 is 8-bit RGBA.
	RGBA8 Format = 0x8058

	// BGRA8 is 8-bit BGRA, the usual window-system back buffer layout.
	BGRA8 Format = 0x93A1

	// Depth16 is 16-bit depth.
	Depth16 Format = 0x81A5

	// Depth24 is 24-bit depth.
	Depth24 Format = 0x81A6

	// Depth32F is 32-bit floating point depth.
	Depth32F Format = 0x8CAC

	// Stencil8 is 8-bit stencil.
	Stencil8 Format = 0x8D48

	// Depth24Stencil8 is packed 24-bit depth and 8-bit stencil.
	Depth24Stencil8 Format = 0x88F0
)

// String returns a human-readable name for the format.
func (f Format) String() string {
	switch f {
	case None:
		return "None"
	case RGBA4:
		return "RGBA4"
	case RGB5A1:
		return "RGB5A1"
	case RGB565:
		return "RGB565"
	case RGB8:
		return "RGB8"
	case RGBA8:
		return "RGBA8"
	case BGRA8:
		return "BGRA8"
	case Depth16:
		return "Depth16"
	case Depth24:
		return "Depth24"
	case Depth32F:
		return "Depth32F"
	case Stencil8:
		return "Stencil8"
	case Depth24Stencil8:
		return "Depth24Stencil8"
	default:
		return fmt.Sprintf("Unknown(0x%04X)", uint32(f))
	}
}

// Parse returns the format with the given name as printed by String.
func Parse(name string) (Format, bool) {
	for _, f := range all {
		if f.String() == name {
			return f, true
		}
	}
	return None, false
}

var all = [...]Format{
	RGBA4, RGB5A1, RGB565, RGB8, RGBA8, BGRA8,
	Depth16, Depth24, Depth32F, Stencil8, Depth24Stencil8,
}

// IsColorRenderable reports whether f can back a color attachment.
func IsColorRenderable(f Format) bool {
	switch f {
	case RGBA4, RGB5A1, RGB565, RGB8, RGBA8, BGRA8:
		return true
	}
	return false
}

// IsDepthRenderable reports whether f can back a depth attachment.
func IsDepthRenderable(f Format) bool {
	switch f {
	case Depth16, Depth24, Depth32F, Depth24Stencil8:
		return true
	}
	return false
}

// IsStencilRenderable reports whether f can back a stencil attachment.
func IsStencilRenderable(f Format) bool {
	switch f {
	case Stencil8, Depth24Stencil8:
		return true
	}
	return false
}

// ToInternal converts a public format to the internal format an allocator
// should create. Formats the internal set cannot express exactly are
// widened: 4, 5 and 6 bit color is stored as RGBA8, and every depth or
// stencil format except Depth32F is stored as packed depth/stencil.
// Unknown formats return gputypes.TextureFormatUndefined.
func ToInternal(f Format) gputypes.TextureFormat {
	switch f {
	case RGBA4, RGB5A1, RGB565, RGB8, RGBA8:
		return gputypes.TextureFormatRGBA8Unorm
	case BGRA8:
		return gputypes.TextureFormatBGRA8Unorm
	case Depth16, Depth24, Stencil8, Depth24Stencil8:
		return gputypes.TextureFormatDepth24PlusStencil8
	case Depth32F:
		return gputypes.TextureFormatDepth32Float
	default:
		return gputypes.TextureFormatUndefined
	}
}

// FromColor returns the public format reported for an adopted color image
// with the given internal format. Internal formats with no public
// equivalent report RGBA4, the default of an empty storage.
func FromColor(f gputypes.TextureFormat) Format {
	switch f {
	case gputypes.TextureFormatRGBA8Unorm, gputypes.TextureFormatRGBA8UnormSrgb:
		return RGBA8
	case gputypes.TextureFormatBGRA8Unorm, gputypes.TextureFormatBGRA8UnormSrgb:
		return BGRA8
	default:
		return RGBA4
	}
}

// FromDepthStencil returns the public format reported for an adopted depth
// or stencil image with the given internal format.
func FromDepthStencil(f gputypes.TextureFormat) Format {
	switch f {
	case gputypes.TextureFormatDepth32Float:
		return Depth32F
	default:
		return Depth24Stencil8
	}
}
