// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

//go:build darwin || linux || freebsd

package pal

import (
	"unsafe"

	"github.com/cockroachdb/errors"
	"github.com/ebitengine/purego"
)

// libcHeap forwards to the C library allocator. The handle of the opened C
// library doubles as the process heap handle.
type libcHeap struct {
	handle uintptr

	cCalloc  func(n, size uintptr) unsafe.Pointer
	cRealloc func(p unsafe.Pointer, size uintptr) unsafe.Pointer
	cFree    func(p unsafe.Pointer)
	cUsable  func(p unsafe.Pointer) uintptr
}

func newNativeHeap() (heapBackend, error) {
	var (
		handle uintptr
		err    error
	)
	for _, name := range libcNames {
		handle, err = purego.Dlopen(name, purego.RTLD_NOW|purego.RTLD_GLOBAL)
		if err == nil {
			break
		}
	}
	if handle == 0 {
		return nil, errors.Wrapf(err, "open C library (tried %v)", libcNames)
	}

	h := &libcHeap{handle: handle}
	for _, reg := range []struct {
		fptr interface{}
		name string
	}{
		{&h.cCalloc, "calloc"},
		{&h.cRealloc, "realloc"},
		{&h.cFree, "free"},
	} {
		if err := registerSymbol(reg.fptr, handle, reg.name); err != nil {
			return nil, errors.Wrap(err, "C allocator")
		}
	}
	// Introspection is optional: without it UsableSize reports 0.
	if err := registerSymbol(&h.cUsable, handle, usableSizeSymbol); err != nil {
		h.cUsable = nil
	}
	return h, nil
}

func (h *libcHeap) name() string { return "libc" }

func (h *libcHeap) zeroesOnGrow() bool { return false }

func (h *libcHeap) validate() bool { return true }

func (h *libcHeap) alloc(size uintptr) unsafe.Pointer {
	return h.cCalloc(1, size)
}

func (h *libcHeap) realloc(p unsafe.Pointer, size uintptr) unsafe.Pointer {
	return h.cRealloc(p, size)
}

func (h *libcHeap) free(p unsafe.Pointer) {
	h.cFree(p)
}

func (h *libcHeap) usableSize(p unsafe.Pointer) uintptr {
	if h.cUsable == nil {
		return 0
	}
	return h.cUsable(p)
}
