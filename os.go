// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

package pal

// OS identifies the operating system family the package was built for.
type OS int

const (
	GenericUnix OS = iota
	Windows
	MacOS
	Linux
)

var osNames = map[OS]string{
	GenericUnix: "unix",
	Windows:     "windows",
	MacOS:       "macos",
	Linux:       "linux",
}

func (o OS) String() string {
	if name, ok := osNames[o]; ok {
		return name
	}
	return "unknown"
}

// Current returns the OS family selected at build time. It never changes during
// the lifetime of the process.
func Current() OS {
	return currentOS
}

// LibraryName returns the platform file name of the shared library base, e.g.
// "libamod.so" on Linux, "libamod.dylib" on macOS and "amod.dll" on Windows.
func LibraryName(base string) string {
	return libraryPrefix + base + LibraryExt
}
