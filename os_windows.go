// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

//go:build windows

package pal

const (
	currentOS     = Windows
	libraryPrefix = ""

	// LibraryExt is the file extension of shared libraries on this platform.
	LibraryExt = ".dll"
)
