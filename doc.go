// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package renderbuffer manages renderable surface attachments used as color,
// depth and stencil targets.
//
// # Overview
//
// A [Renderbuffer] is a named, reference-counted handle that owns exactly one
// [Storage] at a time. The storage decides where the pixels live:
//
//   - [ColorStorage] owns a dedicated color surface.
//   - [DepthStencilStorage] owns a dedicated packed depth/stencil surface and
//     may present it as depth-only or stencil-only.
//   - [TextureStorage] is a live view of a texture's mip level.
//
// SetStorage swaps the storage without changing the handle's identity, so a
// renderbuffer can be allocated, later pointed at a texture level, and back,
// while outstanding references to the handle stay valid.
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/renderbuffer"
//	    "github.com/gogpu/renderbuffer/backend/software"
//	    "github.com/gogpu/renderbuffer/format"
//	)
//
//	alloc := software.New()
//	storage, err := renderbuffer.NewColorStorage(alloc, 256, 128, format.RGBA8, 4)
//	if err != nil {
//	    // errors.Is(err, renderbuffer.ErrOutOfMemory)
//	}
//	rb := renderbuffer.New(1, storage)
//	rb.AddRef()
//	defer rb.Release()
//
//	img := rb.RenderTarget() // owned reference, may be nil
//	if img != nil {
//	    defer img.Release()
//	}
//
// # Reference Counting
//
// RenderTarget and SharedImage return an image with its count incremented;
// the caller releases it on every path. A renderbuffer that views a texture
// forwards its own AddRef and Release to the texture as proxy references, so
// the texture outlives the application's handle to it for as long as the
// renderbuffer is referenced.
//
// # Threading
//
// Renderbuffers and storages are not safe for concurrent use; callers
// serialize access. Images may be released from any goroutine.
//
// # Allocators
//
// Storages never reach for a global device. The [surface.Allocator] is passed
// to each constructor; backend/software and backend/native provide one.
package renderbuffer
