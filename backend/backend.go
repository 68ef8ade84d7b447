// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package backend

import (
	"errors"

	"github.com/gogpu/renderbuffer/surface"
)

// Backend name constants.
const (
	// BackendSoftware is the name of the CPU allocator.
	BackendSoftware = "software"
	// BackendNative is the name of the HAL allocator (gogpu/wgpu).
	BackendNative = "native"
)

// Common backend errors.
var (
	// ErrBackendNotAvailable is returned when a requested backend is not
	// registered or its factory fails.
	ErrBackendNotAvailable = errors.New("backend: not available")
)

// Factory creates an allocator. A factory may fail, for example when the
// device it wraps has been lost.
type Factory func() (surface.Allocator, error)
