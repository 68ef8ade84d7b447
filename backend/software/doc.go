// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package software provides a CPU surface allocator.
//
// Images created by the allocator carry an in-memory pixel store
// (image.RGBA, image.Gray and friends, usable with golang.org/x/image/draw)
// instead of a device handle. Allocations are charged against a memory
// budget and returned to it when the image's last reference is released.
//
// The package registers itself with the backend registry on import:
//
//	import _ "github.com/gogpu/renderbuffer/backend/software"
//
// Device characteristics can be configured with options or loaded from a
// TOML profile:
//
//	p, err := software.LoadProfile("lowend.toml")
//	if err != nil {
//		log.Fatal(err)
//	}
//	alloc := software.New(p.Options()...)
package software
