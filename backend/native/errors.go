// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package native

import "errors"

// Default configuration.
const (
	// DefaultMaxDimension matches gputypes.DefaultLimits().MaxTextureDimension2D.
	DefaultMaxDimension = 8192
)

// DefaultSampleCounts are the multisample counts every WebGPU device
// supports.
var DefaultSampleCounts = []int{1, 4}

// Package errors for the native backend.
var (
	// ErrNilDevice is returned when creating an allocator without a device.
	ErrNilDevice = errors.New("native: HAL device is nil")

	// ErrNoHALDevice is returned when a device provider does not expose a
	// HAL device.
	ErrNoHALDevice = errors.New("native: provider has no HAL device")

	// ErrNoGPU is returned when the package is built without GPU support.
	ErrNoGPU = errors.New("native: built without GPU support")

	// ErrInvalidDimensions is returned when width or height is out of range.
	ErrInvalidDimensions = errors.New("native: invalid dimensions")
)
