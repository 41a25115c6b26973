// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

//go:build windows

package pal

import (
	"golang.org/x/exp/slog"
	"golang.org/x/sys/windows"
)

var procSetProcessDPIAware = windows.NewLazySystemDLL("user32.dll").NewProc("SetProcessDPIAware")

func setDPIAware() {
	if err := procSetProcessDPIAware.Find(); err != nil {
		Logger().Debug("SetProcessDPIAware unavailable", slog.Any("error", err))
		return
	}
	procSetProcessDPIAware.Call()
}
