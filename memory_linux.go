// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

//go:build linux

package pal

import (
	"os"

	"golang.org/x/exp/slog"
	"golang.org/x/sys/unix"
)

const meminfoPath = "/proc/meminfo"

func queryMemoryStatus() MemoryStatus {
	f, err := os.Open(meminfoPath)
	if err == nil {
		defer f.Close()
		ms, perr := parseMeminfo(f)
		if perr == nil {
			return ms
		}
		err = perr
	}
	Logger().Debug("meminfo unavailable, using sysinfo", slog.Any("error", err))

	var si unix.Sysinfo_t
	if err := unix.Sysinfo(&si); err != nil {
		Logger().Debug("sysinfo failed", slog.Any("error", err))
		return MemoryStatus{}
	}
	unit := uint64(si.Unit)
	if unit == 0 {
		unit = 1
	}
	return MemoryStatus{
		TotalPhys: uint64(si.Totalram) * unit,
		AvailPhys: (uint64(si.Freeram) + uint64(si.Bufferram)) * unit,
	}
}
