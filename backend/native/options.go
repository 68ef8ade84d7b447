// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package native

import "slices"

// Option configures an Allocator.
type Option func(*options)

type options struct {
	sampleCounts []int
	label        string
	maxDimension int
}

func defaultOptions() options {
	return options{
		sampleCounts: DefaultSampleCounts,
		label:        "renderbuffer",
		maxDimension: DefaultMaxDimension,
	}
}

// WithSampleCounts sets the multisample counts the device supports.
// Non-positive counts are ignored.
func WithSampleCounts(counts ...int) Option {
	return func(o *options) {
		o.sampleCounts = slices.DeleteFunc(slices.Clone(counts), func(n int) bool {
			return n <= 0
		})
	}
}

// WithLabel sets the prefix of debug labels given to created textures.
func WithLabel(label string) Option {
	return func(o *options) {
		o.label = label
	}
}

// WithMaxDimension sets the largest width or height accepted, usually the
// device's MaxTextureDimension2D limit.
func WithMaxDimension(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.maxDimension = n
		}
	}
}
