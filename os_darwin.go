// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

//go:build darwin

package pal

const (
	currentOS     = MacOS
	libraryPrefix = "lib"

	// LibraryExt is the file extension of shared libraries on this platform.
	LibraryExt = ".dylib"
)

var libcNames = []string{"/usr/lib/libSystem.B.dylib"}

const usableSizeSymbol = "malloc_size"
