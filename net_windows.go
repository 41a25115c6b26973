// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

//go:build windows

package pal

import (
	"github.com/cockroachdb/errors"
	"golang.org/x/sys/windows"
)

// winsockVersion requests Winsock 2.2.
const winsockVersion = 0x0202

func platformSocketStartup() error {
	var data windows.WSAData
	if err := windows.WSAStartup(winsockVersion, &data); err != nil {
		return errors.Wrap(err, "WSAStartup")
	}
	return nil
}

func platformSocketCleanup() {
	_ = windows.WSACleanup()
}
