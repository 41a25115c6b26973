// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

package pal

import (
	"sync"
	"unsafe"
)

// goHeapDefaultLimit bounds a single block when physical memory is unknown.
// The runtime aborts, rather than panics, when the OS cannot back a slice, so
// requests must be refused before make.
const goHeapDefaultLimit = 1 << 31

// goHeap is the "default allocator" used where no native heap can be opened.
// Blocks are ordinary Go slices pinned in a map until freed, so pointers handed
// out stay valid and are never moved or collected.
type goHeap struct {
	mu     sync.Mutex
	blocks map[unsafe.Pointer][]byte
	limit  uintptr // largest single block
}

func newGoHeap() *goHeap {
	return newGoHeapLimit(goHeapLimit(QueryMemoryStatus()))
}

func newGoHeapLimit(limit uintptr) *goHeap {
	return &goHeap{blocks: make(map[unsafe.Pointer][]byte), limit: limit}
}

// goHeapLimit caps a block at the physical memory of the machine.
func goHeapLimit(ms MemoryStatus) uintptr {
	if !ms.Known() {
		return goHeapDefaultLimit
	}
	if ms.TotalPhys > uint64(^uintptr(0)) {
		return ^uintptr(0)
	}
	return uintptr(ms.TotalPhys)
}

func (h *goHeap) name() string { return "go" }

func (h *goHeap) zeroesOnGrow() bool { return true }

func (h *goHeap) validate() bool { return true }

func (h *goHeap) makeBlock(size uintptr) (buf []byte) {
	if size > h.limit {
		return nil
	}
	defer func() {
		if recover() != nil {
			buf = nil
		}
	}()
	return make([]byte, size)
}

func (h *goHeap) alloc(size uintptr) unsafe.Pointer {
	buf := h.makeBlock(size)
	if buf == nil {
		return nil
	}
	p := unsafe.Pointer(&buf[0])
	h.mu.Lock()
	h.blocks[p] = buf
	h.mu.Unlock()
	return p
}

func (h *goHeap) realloc(p unsafe.Pointer, size uintptr) unsafe.Pointer {
	h.mu.Lock()
	old, ok := h.blocks[p]
	h.mu.Unlock()
	if !ok {
		return nil
	}
	buf := h.makeBlock(size)
	if buf == nil {
		return nil
	}
	copy(buf, old)
	np := unsafe.Pointer(&buf[0])
	h.mu.Lock()
	delete(h.blocks, p)
	h.blocks[np] = buf
	h.mu.Unlock()
	return np
}

func (h *goHeap) free(p unsafe.Pointer) {
	h.mu.Lock()
	delete(h.blocks, p)
	h.mu.Unlock()
}

func (h *goHeap) usableSize(p unsafe.Pointer) uintptr {
	h.mu.Lock()
	defer h.mu.Unlock()
	return uintptr(len(h.blocks[p]))
}
