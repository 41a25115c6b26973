// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

//go:build !windows

package pal

func showNativeMessageBox(string, string, bool) error {
	return ErrUnsupported
}
