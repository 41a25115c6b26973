// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

//go:build !windows && !darwin && !linux && !freebsd

package pal

func openLibrary(string) (uintptr, error) {
	return 0, ErrUnsupported
}

func symbolAddr(uintptr, string) (uintptr, error) {
	return 0, ErrUnsupported
}

func closeLibrary(uintptr) error {
	return ErrUnsupported
}

func bindFunc(interface{}, uintptr) error {
	return ErrUnsupported
}
