// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package native provides a surface allocator on a gogpu/wgpu HAL device.
//
// Images created by the allocator carry a hal.Texture as their native
// handle and destroy it when their last reference is released. A
// multisampled image stores its sample count in its slice count, so the
// storage reading it back recovers the count.
//
// The allocator is built from a hal.Device directly or from a host's
// gpucontext.DeviceProvider:
//
//	alloc, err := native.NewFromProvider(app)
//	if err != nil {
//		log.Fatal(err)
//	}
//
// Register makes the provider's device the preferred backend:
//
//	native.Register(app)
//	alloc, name, err := backend.Default() // name == "native"
package native
