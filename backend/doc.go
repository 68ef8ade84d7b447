// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package backend provides a registry of surface allocators.
//
// Renderbuffer storage allocates its images through a surface.Allocator.
// Backends register a factory for their allocator under a name and are
// selected at runtime.
//
// # Backend Registration
//
// The software backend registers itself on import:
//
//	import _ "github.com/gogpu/renderbuffer/backend/software"
//
// The native backend needs a device, so it registers when given one:
//
//	native.Register(provider)
//
// # Backend Selection
//
// Use Default to get an allocator from the best available backend, or Get
// to request a specific backend by name:
//
//	alloc, name, err := backend.Default()
//
//	alloc, err := backend.Get(backend.BackendSoftware)
//
// # Available Backends
//
//   - "native": textures on a gogpu/wgpu HAL device
//   - "software": CPU pixel stores (always available once imported)
package backend
