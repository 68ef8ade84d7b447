// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package software

import (
	"fmt"
	"sync"
)

// MemoryStats contains allocator memory usage statistics.
type MemoryStats struct {
	// TotalBytes is the memory budget in bytes, 0 if unlimited.
	TotalBytes uint64

	// UsedBytes is the memory held by live images.
	UsedBytes uint64

	// ImageCount is the number of live images.
	ImageCount int

	// RejectedCount is the number of allocations refused by the budget.
	RejectedCount uint64
}

// String returns a human-readable string of memory stats.
func (s MemoryStats) String() string {
	if s.TotalBytes == 0 {
		return fmt.Sprintf("Memory[%d KB used, unlimited, %d images, %d rejected]",
			s.UsedBytes/1024, s.ImageCount, s.RejectedCount)
	}
	return fmt.Sprintf("Memory[%.1f%% used, %d/%d KB, %d images, %d rejected]",
		float64(s.UsedBytes)/float64(s.TotalBytes)*100,
		s.UsedBytes/1024, s.TotalBytes/1024, s.ImageCount, s.RejectedCount)
}

// budget tracks bytes held by live images. It is safe for concurrent use
// because images may be released from any goroutine.
type budget struct {
	mu       sync.Mutex
	total    uint64
	used     uint64
	count    int
	rejected uint64
}

// reserve charges n bytes, failing with ErrBudgetExceeded if that would
// exceed the budget.
func (b *budget) reserve(n uint64) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.total != 0 && b.used+n > b.total {
		b.rejected++
		return fmt.Errorf("%w: need %d bytes, %d of %d in use",
			ErrBudgetExceeded, n, b.used, b.total)
	}
	b.used += n
	b.count++
	return nil
}

// free returns n bytes reserved earlier.
func (b *budget) free(n uint64) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.used -= min(n, b.used)
	if b.count > 0 {
		b.count--
	}
}

func (b *budget) stats() MemoryStats {
	b.mu.Lock()
	defer b.mu.Unlock()

	return MemoryStats{
		TotalBytes:    b.total,
		UsedBytes:     b.used,
		ImageCount:    b.count,
		RejectedCount: b.rejected,
	}
}
