// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

//go:build windows

package pal

import (
	"unsafe"

	"github.com/cockroachdb/errors"
	"golang.org/x/sys/windows"
)

const heapZeroMemory = 0x00000008

var (
	kernel32        = windows.NewLazySystemDLL("kernel32.dll")
	procHeapCreate  = kernel32.NewProc("HeapCreate")
	procHeapAlloc   = kernel32.NewProc("HeapAlloc")
	procHeapReAlloc = kernel32.NewProc("HeapReAlloc")
	procHeapFree    = kernel32.NewProc("HeapFree")
	procHeapSize    = kernel32.NewProc("HeapSize")
	procHeapValid   = kernel32.NewProc("HeapValidate")
)

// winHeap is a private growable heap created once with HeapCreate(0, 0, 0).
type winHeap struct {
	handle uintptr
}

func newNativeHeap() (heapBackend, error) {
	if err := procHeapCreate.Find(); err != nil {
		return nil, errors.Wrap(err, "HeapCreate")
	}
	h, _, callErr := procHeapCreate.Call(0, 0, 0)
	if h == 0 {
		return nil, errors.Wrap(callErr, "HeapCreate")
	}
	return &winHeap{handle: h}, nil
}

func (h *winHeap) name() string { return "win32-heap" }

func (h *winHeap) zeroesOnGrow() bool { return true }

// ptr converts an address returned by the heap. The memory is outside the Go
// heap, so the conversion cannot confuse the garbage collector.
func ptr(addr uintptr) unsafe.Pointer {
	return *(*unsafe.Pointer)(unsafe.Pointer(&addr))
}

func (h *winHeap) alloc(size uintptr) unsafe.Pointer {
	r, _, _ := procHeapAlloc.Call(h.handle, heapZeroMemory, size)
	return ptr(r)
}

func (h *winHeap) realloc(p unsafe.Pointer, size uintptr) unsafe.Pointer {
	r, _, _ := procHeapReAlloc.Call(h.handle, heapZeroMemory, uintptr(p), size)
	return ptr(r)
}

func (h *winHeap) free(p unsafe.Pointer) {
	procHeapFree.Call(h.handle, 0, uintptr(p))
}

func (h *winHeap) usableSize(p unsafe.Pointer) uintptr {
	r, _, _ := procHeapSize.Call(h.handle, 0, uintptr(p))
	if r == ^uintptr(0) {
		return 0
	}
	return r
}

func (h *winHeap) validate() bool {
	r, _, _ := procHeapValid.Call(h.handle, 0, 0)
	return r != 0
}
