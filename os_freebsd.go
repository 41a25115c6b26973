// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

//go:build freebsd

package pal

const (
	currentOS     = GenericUnix
	libraryPrefix = "lib"

	// LibraryExt is the file extension of shared libraries on this platform.
	LibraryExt = ".so"
)

var libcNames = []string{"libc.so.7"}

const usableSizeSymbol = "malloc_usable_size"
