// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

//go:build nogpu

package native

import (
	"github.com/gogpu/gpucontext"

	"github.com/gogpu/renderbuffer/backend"
	"github.com/gogpu/renderbuffer/surface"
)

// NewFromProvider always fails when built with the nogpu tag.
func NewFromProvider(provider gpucontext.DeviceProvider, opts ...Option) (surface.Allocator, error) {
	return nil, ErrNoGPU
}

// Register registers a factory that always fails, so backend.Default
// falls back to another backend.
func Register(provider gpucontext.DeviceProvider, opts ...Option) {
	backend.Register(backend.BackendNative, func() (surface.Allocator, error) {
		return nil, ErrNoGPU
	})
}
