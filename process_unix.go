// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

//go:build !windows

package pal

import "github.com/adrg/xdg"

func moduleHandle() uintptr {
	return 0
}

// prefRoot is the XDG data home: $XDG_DATA_HOME or ~/.local/share on Linux and
// other Unix systems, ~/Library/Application Support on macOS.
func prefRoot() (string, error) {
	return xdg.DataHome, nil
}
