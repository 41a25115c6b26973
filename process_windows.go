// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

//go:build windows

package pal

import (
	"github.com/cockroachdb/errors"
	"golang.org/x/sys/windows"
)

func moduleHandle() uintptr {
	var h windows.Handle
	if err := windows.GetModuleHandleEx(0, nil, &h); err != nil {
		return 0
	}
	return uintptr(h)
}

// prefRoot is the roaming application data folder (CSIDL_APPDATA).
func prefRoot() (string, error) {
	dir, err := windows.KnownFolderPath(windows.FOLDERID_RoamingAppData, windows.KF_FLAG_DEFAULT)
	if err != nil {
		return "", errors.Wrap(err, "resolve roaming application data folder")
	}
	return dir, nil
}
