// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package renderbuffer

import "errors"

// Renderbuffer errors.
var (
	// ErrOutOfMemory is returned when a backing surface could not be
	// allocated. The storage returned alongside it is valid but empty.
	ErrOutOfMemory = errors.New("renderbuffer: out of memory")

	// ErrInvalidEnum is returned when a format cannot back a renderbuffer.
	ErrInvalidEnum = errors.New("renderbuffer: invalid format")

	// ErrInvalidValue is returned for negative or oversized dimensions and
	// negative sample counts.
	ErrInvalidValue = errors.New("renderbuffer: invalid value")
)
