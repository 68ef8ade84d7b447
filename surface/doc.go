// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package surface defines the pixel-memory resource shared by renderbuffers
// and textures, and the allocator contract that creates it.
//
// # Images
//
// An [Image] is a reference-counted surface: width, height, an internal
// [gputypes.TextureFormat], a slice count and usage flags, plus whatever the
// allocator attached to it (a CPU pixel store or a native GPU handle).
// NewImage returns an image holding one reference owned by the caller.
// AddRef and Release move the count; the allocator's release hook runs when
// it reaches zero.
//
//	img, _ := alloc.CreateRenderTarget(256, 128, gputypes.TextureFormatRGBA8Unorm, 4, false)
//	defer img.Release()
//
// An image may be marked shared when it is handed to a consumer outside the
// owning object graph. Marking is idempotent and permanent.
//
// # Allocators
//
// An [Allocator] creates render-target and depth/stencil images and answers
// which multisample count the device uses for a requested one. Concrete
// allocators live under backend/.
package surface
