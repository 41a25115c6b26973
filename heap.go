// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

package pal

import (
	"sync"
	"sync/atomic"
	"unsafe"

	"golang.org/x/exp/slog"
)

// heapBackend is one native allocator. Exactly one is created per process.
type heapBackend interface {
	alloc(size uintptr) unsafe.Pointer
	realloc(p unsafe.Pointer, size uintptr) unsafe.Pointer
	free(p unsafe.Pointer)
	usableSize(p unsafe.Pointer) uintptr
	validate() bool
	zeroesOnGrow() bool
	name() string
}

var (
	heapOnce sync.Once
	heap     heapBackend

	heapAllocs   atomic.Uint64
	heapFrees    atomic.Uint64
	heapFailures atomic.Uint64
)

func processHeap() heapBackend {
	heapOnce.Do(func() {
		b, err := newNativeHeap()
		if err != nil {
			Logger().Warn("native heap unavailable, using Go runtime heap", slog.Any("error", err))
			b = newGoHeap()
		}
		heap = b
	})
	return heap
}

// HeapStatistics counts heap calls since process start.
type HeapStatistics struct {
	Allocations uint64 // successful Alloc and Realloc calls
	Frees       uint64 // Free calls with a non-nil pointer
	Failures    uint64 // Alloc and Realloc calls that returned nil
}

// HeapStats returns a snapshot of the heap counters.
func HeapStats() HeapStatistics {
	return HeapStatistics{
		Allocations: heapAllocs.Load(),
		Frees:       heapFrees.Load(),
		Failures:    heapFailures.Load(),
	}
}

// HeapBackend names the allocator serving this process, e.g. "libc",
// "win32-heap" or "go".
func HeapBackend() string {
	return processHeap().name()
}

// ReallocZeroFills reports whether Realloc zeroes the bytes added when a block
// grows. The Windows heap and the Go fallback do; libc realloc does not, so
// callers on those platforms must clear grown regions themselves.
func ReallocZeroFills() bool {
	return processHeap().zeroesOnGrow()
}

// Alloc returns size bytes of zero-initialized memory from the process heap, or
// nil if the allocator refuses the request. Alloc(0) returns nil.
//
// The block must be released with Free; native blocks are invisible to the Go
// garbage collector.
func Alloc(size uintptr) unsafe.Pointer {
	if size == 0 {
		return nil
	}
	p := processHeap().alloc(size)
	if p == nil {
		heapFailures.Add(1)
		return nil
	}
	heapAllocs.Add(1)
	return p
}

// Realloc resizes a block obtained from Alloc or Realloc. A nil p behaves like
// Alloc; a zero size frees p and returns nil.
//
// On failure Realloc returns nil and p remains valid and owned by the caller.
// Whether grown bytes are zeroed depends on the platform, see [ReallocZeroFills].
func Realloc(p unsafe.Pointer, size uintptr) unsafe.Pointer {
	if p == nil {
		return Alloc(size)
	}
	if size == 0 {
		Free(p)
		return nil
	}
	np := processHeap().realloc(p, size)
	if np == nil {
		heapFailures.Add(1)
		return nil
	}
	heapAllocs.Add(1)
	return np
}

// Free releases a block obtained from Alloc or Realloc. Freeing nil is a no-op.
// Freeing the same block twice is undefined, as with the native allocator.
func Free(p unsafe.Pointer) {
	if p == nil {
		return
	}
	heapFrees.Add(1)
	processHeap().free(p)
}

// UsableSize reports the allocator's block size for p. Zero means the platform
// offers no such introspection, not that the block is empty.
func UsableSize(p unsafe.Pointer) uintptr {
	if p == nil {
		return 0
	}
	return processHeap().usableSize(p)
}

// ValidateHeap checks the integrity of the process heap where the platform
// supports it. It always reports true on allocators without a validator.
func ValidateHeap() bool {
	return processHeap().validate()
}

// Bytes returns a slice view of the first n bytes of a heap block. The slice is
// only valid until the block is freed or reallocated.
func Bytes(p unsafe.Pointer, n int) []byte {
	if p == nil || n <= 0 {
		return nil
	}
	return unsafe.Slice((*byte)(p), n)
}
