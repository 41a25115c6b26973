// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

//go:build windows

package pal

import (
	"unsafe"

	"golang.org/x/exp/slog"
)

var procGlobalMemoryStatusEx = kernel32.NewProc("GlobalMemoryStatusEx")

// memoryStatusEx mirrors MEMORYSTATUSEX.
type memoryStatusEx struct {
	Length               uint32
	MemoryLoad           uint32
	TotalPhys            uint64
	AvailPhys            uint64
	TotalPageFile        uint64
	AvailPageFile        uint64
	TotalVirtual         uint64
	AvailVirtual         uint64
	AvailExtendedVirtual uint64
}

func queryMemoryStatus() MemoryStatus {
	if err := procGlobalMemoryStatusEx.Find(); err != nil {
		Logger().Debug("GlobalMemoryStatusEx unavailable", slog.Any("error", err))
		return MemoryStatus{}
	}
	ms := memoryStatusEx{Length: uint32(unsafe.Sizeof(memoryStatusEx{}))}
	r, _, err := procGlobalMemoryStatusEx.Call(uintptr(unsafe.Pointer(&ms)))
	if r == 0 {
		Logger().Debug("GlobalMemoryStatusEx failed", slog.Any("error", err))
		return MemoryStatus{}
	}
	return MemoryStatus{TotalPhys: ms.TotalPhys, AvailPhys: ms.AvailPhys}
}
