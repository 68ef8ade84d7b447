// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package format

import "github.com/gogpu/gputypes"

// Channel identifies one component of a pixel.
type Channel uint8

// Pixel channels.
const (
	Red Channel = iota
	Green
	Blue
	Alpha
	Depth
	Stencil
)

// String returns the channel name.
func (c Channel) String() string {
	switch c {
	case Red:
		return "red"
	case Green:
		return "green"
	case Blue:
		return "blue"
	case Alpha:
		return "alpha"
	case Depth:
		return "depth"
	case Stencil:
		return "stencil"
	default:
		return "unknown"
	}
}

// bits lists channel sizes in Channel order.
type bits [6]uint8

var channelBits = map[gputypes.TextureFormat]bits{
	gputypes.TextureFormatRGBA8Unorm:          {8, 8, 8, 8, 0, 0},
	gputypes.TextureFormatRGBA8UnormSrgb:      {8, 8, 8, 8, 0, 0},
	gputypes.TextureFormatBGRA8Unorm:          {8, 8, 8, 8, 0, 0},
	gputypes.TextureFormatBGRA8UnormSrgb:      {8, 8, 8, 8, 0, 0},
	gputypes.TextureFormatR8Unorm:             {8, 0, 0, 0, 0, 0},
	gputypes.TextureFormatR32Float:            {32, 0, 0, 0, 0, 0},
	gputypes.TextureFormatRG32Float:           {32, 32, 0, 0, 0, 0},
	gputypes.TextureFormatRGBA32Float:         {32, 32, 32, 32, 0, 0},
	gputypes.TextureFormatDepth24PlusStencil8: {0, 0, 0, 0, 24, 8},
	gputypes.TextureFormatDepth32Float:        {0, 0, 0, 0, 32, 0},
}

// SizeOf returns the number of bits channel c occupies in internal format
// f. Unknown formats and absent channels report 0.
func SizeOf(c Channel, f gputypes.TextureFormat) int {
	if int(c) >= len(bits{}) {
		return 0
	}
	return int(channelBits[f][c])
}

// BytesPerPixel returns the storage size of one sample of f, or 0 for
// unknown formats.
func BytesPerPixel(f gputypes.TextureFormat) int {
	b, ok := channelBits[f]
	if !ok {
		return 0
	}
	total := 0
	for _, n := range b {
		total += int(n)
	}
	return total / 8
}

// IsDepthStencil reports whether f holds depth or stencil data.
func IsDepthStencil(f gputypes.TextureFormat) bool {
	b := channelBits[f]
	return b[Depth] != 0 || b[Stencil] != 0
}
