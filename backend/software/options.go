// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package software

import (
	"image/color"
	"slices"
)

// Option configures an Allocator.
type Option func(*options)

type options struct {
	sampleCounts []int
	budgetBytes  uint64
	maxDimension int
	clearColor   color.Color
}

func defaultOptions() options {
	return options{
		sampleCounts: DefaultSampleCounts,
		budgetBytes:  DefaultMemoryBudgetMB * 1024 * 1024,
		maxDimension: DefaultMaxDimension,
	}
}

// WithSampleCounts sets the multisample counts the allocator supports.
// Non-positive counts are ignored. An empty list disables multisampling.
func WithSampleCounts(counts ...int) Option {
	return func(o *options) {
		o.sampleCounts = slices.DeleteFunc(slices.Clone(counts), func(n int) bool {
			return n <= 0
		})
	}
}

// WithMemoryBudget sets the total bytes the allocator may hold at once.
// Zero means unlimited.
func WithMemoryBudget(bytes uint64) Option {
	return func(o *options) {
		o.budgetBytes = bytes
	}
}

// WithMaxDimension sets the largest width or height accepted.
func WithMaxDimension(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.maxDimension = n
		}
	}
}

// WithClearColor fills every new color target with c.
// Without it new targets are transparent black.
func WithClearColor(c color.Color) Option {
	return func(o *options) {
		o.clearColor = c
	}
}
