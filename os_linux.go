// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

//go:build linux

package pal

const (
	currentOS     = Linux
	libraryPrefix = "lib"

	// LibraryExt is the file extension of shared libraries on this platform.
	LibraryExt = ".so"
)

// glibc first, then musl.
var libcNames = []string{"libc.so.6", "libc.so", "libc.musl-x86_64.so.1", "libc.musl-aarch64.so.1"}

const usableSizeSymbol = "malloc_usable_size"
